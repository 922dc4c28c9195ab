package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/showcase/internal/interactive/internal/errs"
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
	invalidTargetTypeResult = ginx.Result{
		Code: errs.InvalidTargetTypeError.Code,
		Msg:  errs.InvalidTargetTypeError.Msg,
	}
	unauthorizedResult = ginx.Result{
		Code: errs.UnauthorizedError.Code,
		Msg:  errs.UnauthorizedError.Msg,
	}
	targetNotFoundResult = ginx.Result{
		Code: errs.TargetNotFoundError.Code,
		Msg:  errs.TargetNotFoundError.Msg,
	}
)
