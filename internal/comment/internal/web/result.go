package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/showcase/internal/comment/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	transientErrorResult = ginx.Result{
		Code: errs.TransientError.Code,
		Msg:  errs.TransientError.Msg,
	}
	invalidContentResult = ginx.Result{
		Code: errs.InvalidContentError.Code,
		Msg:  errs.InvalidContentError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.NotFoundError.Code,
		Msg:  errs.NotFoundError.Msg,
	}
	depthExceededResult = ginx.Result{
		Code: errs.DepthExceededError.Code,
		Msg:  errs.DepthExceededError.Msg,
	}
	forbiddenResult = ginx.Result{
		Code: errs.ForbiddenError.Code,
		Msg:  errs.ForbiddenError.Msg,
	}
	invalidTargetResult = ginx.Result{
		Code: errs.InvalidTargetError.Code,
		Msg:  errs.InvalidTargetError.Msg,
	}
	unauthorizedResult = ginx.Result{
		Code: errs.UnauthorizedError.Code,
		Msg:  errs.UnauthorizedError.Msg,
	}
	invalidSortResult = ginx.Result{
		Code: errs.InvalidSortError.Code,
		Msg:  errs.InvalidSortError.Msg,
	}
)
