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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/showcase/internal/interactive/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.LikeService
}

func NewHandler(svc service.LikeService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/intr")
	g.POST("/like/toggle", ginx.BS[LikeReq](h.LikeToggle))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) LikeToggle(ctx *ginx.Context, req LikeReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.Toggle(ctx.Request.Context(), sess.Claims().Uid, req.TargetType, req.TargetId)
	switch {
	case err == nil:
		return ginx.Result{
			Data: LikeResp{
				Liked:   res.Liked,
				LikeCnt: res.LikeCnt,
			},
		}, nil
	case errors.Is(err, service.ErrUnauthorized):
		return unauthorizedResult, nil
	case errors.Is(err, service.ErrInvalidTargetType):
		return invalidTargetTypeResult, nil
	case errors.Is(err, service.ErrTargetNotFound):
		return targetNotFoundResult, nil
	case errors.Is(err, service.ErrTransientStore):
		return transientErrorResult, err
	default:
		return systemErrorResult, err
	}
}
