// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/showcase/internal/comment/internal/domain"
	"github.com/ecodeclub/showcase/internal/comment/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.CommentService
}

func NewHandler(svc service.CommentService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	group := server.Group("/comment")
	group.POST("/create", ginx.BS[CreateReq](h.Create))
	// 只有内容作者可以调用，再次调用同一个评论就是取消
	group.POST("/best-answer", ginx.BS[BestAnswerReq](h.SelectBestAnswer))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	group := server.Group("/comment")
	// 一级评论分页，每一条一级评论带着自己完整的回复
	group.POST("/list", ginx.B[ListReq](h.List))
	group.POST("/tree", ginx.B[TreeReq](h.Tree))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.Create(ctx.Request.Context(), domain.Comment{
		ContentItemID: req.ContentItemID,
		Uid:           sess.Claims().Uid,
		ParentID:      req.ParentID,
		Content:       req.Content,
	})
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: h.toVO(domain.CommentNode{Comment: c}),
	}, nil
}

func (h *Handler) SelectBestAnswer(ctx *ginx.Context, req BestAnswerReq, sess session.Session) (ginx.Result, error) {
	state, err := h.svc.SelectBestAnswer(ctx.Request.Context(), sess.Claims().Uid, req.ContentItemID, req.CommentID)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: BestAnswerResp{
			ContentItemID: state.ContentItemID,
			BestAnswerID:  state.CommentID,
		},
	}, nil
}

func (h *Handler) Tree(ctx *ginx.Context, req TreeReq) (ginx.Result, error) {
	nodes, err := h.svc.Tree(ctx.Request.Context(), req.ContentItemID, req.Sort, h.viewer(ctx))
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: CommentTree{
			Comments: h.toVOs(nodes),
		},
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	page, err := h.svc.Page(ctx.Request.Context(), req.ContentItemID, req.Sort, req.Page, req.PageSize, h.viewer(ctx))
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: CommentList{
			Comments:   h.toVOs(page.Items),
			Page:       page.Page,
			PageSize:   page.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
			HasNext:    page.HasNext,
			HasPrev:    page.HasPrev,
		},
	}, nil
}

// 公开接口，没登录就是匿名访问
func (h *Handler) viewer(ctx *ginx.Context) int64 {
	sess, err := session.Get(ctx)
	if err != nil {
		return 0
	}
	return sess.Claims().Uid
}

func (h *Handler) errResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return unauthorizedResult, nil
	case errors.Is(err, service.ErrInvalidContent):
		return invalidContentResult, nil
	case errors.Is(err, service.ErrInvalidSort):
		return invalidSortResult, nil
	case errors.Is(err, service.ErrContentItemNotFound),
		errors.Is(err, service.ErrParentNotFound),
		errors.Is(err, service.ErrCommentNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrDepthExceeded):
		return depthExceededResult, nil
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, nil
	case errors.Is(err, service.ErrInvalidTarget):
		return invalidTargetResult, nil
	case errors.Is(err, service.ErrTransientStore):
		return transientErrorResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) toVOs(nodes []domain.CommentNode) []Comment {
	return slice.Map(nodes, func(_ int, src domain.CommentNode) Comment {
		return h.toVO(src)
	})
}

func (h *Handler) toVO(n domain.CommentNode) Comment {
	return Comment{
		ID:            n.ID,
		ContentItemID: n.ContentItemID,
		Uid:           n.Uid,
		ParentID:      n.ParentID,
		AncestorID:    n.AncestorID,
		Depth:         n.Depth,
		Content:       n.Content,
		LikeCnt:       n.LikeCnt,
		RepliesCnt:    n.RepliesCnt,
		BestAnswer:    n.BestAnswer,
		Liked:         n.LikedByViewer,
		Replies:       h.toVOs(n.Children),
		Ctime:         n.Ctime,
		Utime:         n.Utime,
	}
}
