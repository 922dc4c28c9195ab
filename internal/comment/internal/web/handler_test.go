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
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/showcase/internal/comment/internal/domain"
	"github.com/ecodeclub/showcase/internal/comment/internal/service"
	commentmocks "github.com/ecodeclub/showcase/internal/comment/mocks"
	"github.com/ecodeclub/showcase/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T, svc service.CommentService, uid int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	hdl := NewHandler(svc)
	hdl.PublicRoutes(server)
	server.Use(func(ctx *gin.Context) {
		if uid > 0 {
			_, err := session.NewSessionBuilder(&gctx.Context{Context: ctx}, uid).Build()
			require.NoError(t, err)
		}
	})
	hdl.PrivateRoutes(server)
	return server
}

func newJSONRequest(t *testing.T, path string, body any) *http.Request {
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandler_Create(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(svc *commentmocks.MockCommentService)
		req      CreateReq
		wantCode int
		wantData Comment
	}{
		{
			name: "创建成功",
			mock: func(svc *commentmocks.MockCommentService) {
				svc.EXPECT().Create(gomock.Any(), domain.Comment{
					ContentItemID: 11,
					Uid:           1,
					ParentID:      21,
					Content:       "回复",
				}).Return(domain.Comment{
					ID:            22,
					ContentItemID: 11,
					Uid:           1,
					ParentID:      21,
					AncestorID:    21,
					Depth:         1,
					Content:       "回复",
				}, nil)
			},
			req: CreateReq{ContentItemID: 11, ParentID: 21, Content: "回复"},
			wantData: Comment{
				ID:            22,
				ContentItemID: 11,
				Uid:           1,
				ParentID:      21,
				AncestorID:    21,
				Depth:         1,
				Content:       "回复",
				Replies:       []Comment{},
			},
		},
		{
			name: "层级过深",
			mock: func(svc *commentmocks.MockCommentService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.Comment{}, service.ErrDepthExceeded)
			},
			req:      CreateReq{ContentItemID: 11, ParentID: 24, Content: "回复"},
			wantCode: depthExceededResult.Code,
		},
		{
			name: "内容不合法",
			mock: func(svc *commentmocks.MockCommentService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.Comment{}, service.ErrInvalidContent)
			},
			req:      CreateReq{ContentItemID: 11, Content: "   "},
			wantCode: invalidContentResult.Code,
		},
		{
			name: "父评论不存在",
			mock: func(svc *commentmocks.MockCommentService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.Comment{}, service.ErrParentNotFound)
			},
			req:      CreateReq{ContentItemID: 11, ParentID: 404, Content: "回复"},
			wantCode: notFoundResult.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := commentmocks.NewMockCommentService(ctrl)
			tc.mock(svc)
			server := newServer(t, svc, 1)

			recorder := test.NewJSONResponseRecorder[Comment]()
			server.ServeHTTP(recorder, newJSONRequest(t, "/comment/create", tc.req))
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.wantCode == 0 {
				assert.Equal(t, tc.wantData, res.Data)
			}
		})
	}
}

func TestHandler_SelectBestAnswer(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(svc *commentmocks.MockCommentService)
		wantCode int
		wantData BestAnswerResp
	}{
		{
			name: "选择成功",
			mock: func(svc *commentmocks.MockCommentService) {
				svc.EXPECT().SelectBestAnswer(gomock.Any(), int64(2), int64(11), int64(21)).
					Return(domain.BestAnswerState{ContentItemID: 11, CommentID: 21}, nil)
			},
			wantData: BestAnswerResp{ContentItemID: 11, BestAnswerID: 21},
		},
		{
			name: "不是作者",
			mock: func(svc *commentmocks.MockCommentService) {
				svc.EXPECT().SelectBestAnswer(gomock.Any(), int64(2), int64(11), int64(21)).
					Return(domain.BestAnswerState{}, service.ErrForbidden)
			},
			wantCode: forbiddenResult.Code,
		},
		{
			name: "回复不能成为最佳答案",
			mock: func(svc *commentmocks.MockCommentService) {
				svc.EXPECT().SelectBestAnswer(gomock.Any(), int64(2), int64(11), int64(21)).
					Return(domain.BestAnswerState{}, service.ErrInvalidTarget)
			},
			wantCode: invalidTargetResult.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := commentmocks.NewMockCommentService(ctrl)
			tc.mock(svc)
			server := newServer(t, svc, 2)

			recorder := test.NewJSONResponseRecorder[BestAnswerResp]()
			server.ServeHTTP(recorder, newJSONRequest(t, "/comment/best-answer",
				BestAnswerReq{ContentItemID: 11, CommentID: 21}))
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantData, res.Data)
		})
	}
}

func TestHandler_Tree(t *testing.T) {
	liked := true
	nodes := []domain.CommentNode{
		{
			Comment:       domain.Comment{ID: 21, ContentItemID: 11, Uid: 3, Content: "a", RepliesCnt: 1},
			LikedByViewer: &liked,
			Children: []domain.CommentNode{
				{Comment: domain.Comment{ID: 22, ContentItemID: 11, Uid: 4, ParentID: 21, AncestorID: 21, Depth: 1, Content: "b"}},
			},
		},
	}

	t.Run("匿名访问", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := commentmocks.NewMockCommentService(ctrl)
		svc.EXPECT().Tree(gomock.Any(), int64(11), "mostLiked", int64(0)).
			Return([]domain.CommentNode{{Comment: nodes[0].Comment, Children: nodes[0].Children}}, nil)
		server := newServer(t, svc, 0)

		recorder := test.NewJSONResponseRecorder[CommentTree]()
		server.ServeHTTP(recorder, newJSONRequest(t, "/comment/tree",
			TreeReq{ContentItemID: 11, Sort: "mostLiked"}))
		require.Equal(t, http.StatusOK, recorder.Code)
		res := recorder.MustScan()
		require.Len(t, res.Data.Comments, 1)
		assert.Nil(t, res.Data.Comments[0].Liked)
		require.Len(t, res.Data.Comments[0].Replies, 1)
		assert.Equal(t, int64(22), res.Data.Comments[0].Replies[0].ID)
	})

	t.Run("不支持的排序", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := commentmocks.NewMockCommentService(ctrl)
		svc.EXPECT().Tree(gomock.Any(), int64(11), "hottest", int64(0)).
			Return(nil, service.ErrInvalidSort)
		server := newServer(t, svc, 0)

		recorder := test.NewJSONResponseRecorder[CommentTree]()
		server.ServeHTTP(recorder, newJSONRequest(t, "/comment/tree",
			TreeReq{ContentItemID: 11, Sort: "hottest"}))
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, invalidSortResult.Code, recorder.MustScan().Code)
	})
}
