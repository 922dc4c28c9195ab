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

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ecodeclub/showcase/internal/comment/internal/domain"
	"github.com/ecodeclub/showcase/internal/comment/internal/event"
	evtmocks "github.com/ecodeclub/showcase/internal/comment/internal/event/mocks"
	repomocks "github.com/ecodeclub/showcase/internal/comment/internal/repository/mocks"
	"github.com/ecodeclub/showcase/internal/content"
	contentmocks "github.com/ecodeclub/showcase/internal/content/mocks"
	"github.com/ecodeclub/showcase/internal/interactive"
	intrmocks "github.com/ecodeclub/showcase/internal/interactive/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	repo     *repomocks.MockCommentRepository
	content  *contentmocks.MockService
	like     *intrmocks.MockLikeService
	producer *evtmocks.MockMutationEventProducer
}

func newTestService(ctrl *gomock.Controller, cfg domain.Config) (CommentService, mocks) {
	m := mocks{
		repo:     repomocks.NewMockCommentRepository(ctrl),
		content:  contentmocks.NewMockService(ctrl),
		like:     intrmocks.NewMockLikeService(ctrl),
		producer: evtmocks.NewMockMutationEventProducer(ctrl),
	}
	return NewCommentService(m.repo, m.content, m.like, m.producer, cfg), m
}

func TestCommentService_Create(t *testing.T) {
	t.Parallel()

	cfg := domain.Config{
		DefaultMaxDepth: 3,
		MaxDepth:        map[string]int{content.KindPost: 1},
	}

	testCases := []struct {
		name    string
		mock    func(m mocks)
		req     domain.Comment
		wantRes domain.Comment
		wantErr error
	}{
		{
			name: "创建一级评论",
			mock: func(m mocks) {
				m.content.EXPECT().Get(gomock.Any(), int64(11)).
					Return(content.ContentItem{ID: 11, Kind: content.KindProject, AuthorID: 2}, nil)
				m.repo.EXPECT().Create(gomock.Any(), domain.Comment{
					ContentItemID: 11,
					Uid:           1,
					Content:       "很好的项目",
				}, 3).Return(domain.Comment{
					ID:            21,
					ContentItemID: 11,
					Uid:           1,
					Content:       "很好的项目",
					Ctime:         100,
					Utime:         100,
				}, nil)
				m.producer.EXPECT().Produce(gomock.Any(), event.MutationEvent{
					ContentItemID: 11,
					TargetType:    interactive.TargetComment,
					TargetID:      21,
					Action:        event.ActionComment,
					Uid:           1,
				}).Return(nil)
			},
			req: domain.Comment{
				ContentItemID: 11,
				Uid:           1,
				Content:       "  很好的项目 \n",
			},
			wantRes: domain.Comment{
				ID:            21,
				ContentItemID: 11,
				Uid:           1,
				Content:       "很好的项目",
				Ctime:         100,
				Utime:         100,
			},
		},
		{
			name: "按照内容类型使用最大深度",
			mock: func(m mocks) {
				m.content.EXPECT().Get(gomock.Any(), int64(12)).
					Return(content.ContentItem{ID: 12, Kind: content.KindPost, AuthorID: 2}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), 1).
					Return(domain.Comment{}, ErrDepthExceeded)
			},
			req: domain.Comment{
				ContentItemID: 12,
				Uid:           1,
				ParentID:      31,
				Content:       "回复",
			},
			wantErr: ErrDepthExceeded,
		},
		{
			name: "发送消息失败不影响结果",
			mock: func(m mocks) {
				m.content.EXPECT().Get(gomock.Any(), int64(11)).
					Return(content.ContentItem{ID: 11, Kind: content.KindProject}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), 3).
					Return(domain.Comment{ID: 22, ContentItemID: 11, Uid: 1, ParentID: 21, Depth: 1, Content: "回复"}, nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock error"))
			},
			req: domain.Comment{
				ContentItemID: 11,
				Uid:           1,
				ParentID:      21,
				Content:       "回复",
			},
			wantRes: domain.Comment{ID: 22, ContentItemID: 11, Uid: 1, ParentID: 21, Depth: 1, Content: "回复"},
		},
		{
			name: "未登录",
			mock: func(m mocks) {},
			req: domain.Comment{
				ContentItemID: 11,
				Content:       "匿名评论",
			},
			wantErr: ErrUnauthorized,
		},
		{
			name:    "内容全是空白",
			mock:    func(m mocks) {},
			req:     domain.Comment{ContentItemID: 11, Uid: 1, Content: " \t\n "},
			wantErr: ErrInvalidContent,
		},
		{
			name:    "内容过长",
			mock:    func(m mocks) {},
			req:     domain.Comment{ContentItemID: 11, Uid: 1, Content: string(make([]rune, 501))},
			wantErr: ErrInvalidContent,
		},
		{
			name: "内容不存在",
			mock: func(m mocks) {
				m.content.EXPECT().Get(gomock.Any(), int64(404)).
					Return(content.ContentItem{}, fmt.Errorf("%w: id=404", content.ErrContentItemNotFound))
			},
			req:     domain.Comment{ContentItemID: 404, Uid: 1, Content: "评论"},
			wantErr: ErrContentItemNotFound,
		},
		{
			name: "父评论不存在",
			mock: func(m mocks) {
				m.content.EXPECT().Get(gomock.Any(), int64(11)).
					Return(content.ContentItem{ID: 11, Kind: content.KindProject}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), 3).
					Return(domain.Comment{}, ErrParentNotFound)
			},
			req:     domain.Comment{ContentItemID: 11, Uid: 1, ParentID: 999, Content: "回复"},
			wantErr: ErrParentNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newTestService(ctrl, cfg)
			tc.mock(m)

			res, err := svc.Create(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestCommentService_SelectBestAnswer(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		mock      func(m mocks)
		uid       int64
		commentID int64
		wantRes   domain.BestAnswerState
		wantErr   error
	}{
		{
			name: "作者选择最佳答案",
			mock: func(m mocks) {
				m.content.EXPECT().Get(gomock.Any(), int64(11)).
					Return(content.ContentItem{ID: 11, AuthorID: 2}, nil)
				m.repo.EXPECT().SelectBestAnswer(gomock.Any(), int64(11), int64(21)).
					Return(domain.BestAnswerState{ContentItemID: 11, CommentID: 21}, nil)
				m.producer.EXPECT().Produce(gomock.Any(), event.MutationEvent{
					ContentItemID: 11,
					TargetType:    interactive.TargetComment,
					TargetID:      21,
					Action:        event.ActionBestAnswer,
					Uid:           2,
				}).Return(nil)
			},
			uid:       2,
			commentID: 21,
			wantRes:   domain.BestAnswerState{ContentItemID: 11, CommentID: 21},
		},
		{
			name: "再次选择就是取消",
			mock: func(m mocks) {
				m.content.EXPECT().Get(gomock.Any(), int64(11)).
					Return(content.ContentItem{ID: 11, AuthorID: 2}, nil)
				m.repo.EXPECT().SelectBestAnswer(gomock.Any(), int64(11), int64(21)).
					Return(domain.BestAnswerState{ContentItemID: 11}, nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			uid:       2,
			commentID: 21,
			wantRes:   domain.BestAnswerState{ContentItemID: 11},
		},
		{
			name: "不是作者",
			mock: func(m mocks) {
				m.content.EXPECT().Get(gomock.Any(), int64(11)).
					Return(content.ContentItem{ID: 11, AuthorID: 2}, nil)
			},
			uid:       3,
			commentID: 21,
			wantErr:   ErrForbidden,
		},
		{
			name:      "未登录",
			mock:      func(m mocks) {},
			uid:       0,
			commentID: 21,
			wantErr:   ErrUnauthorized,
		},
		{
			name: "回复不能成为最佳答案",
			mock: func(m mocks) {
				m.content.EXPECT().Get(gomock.Any(), int64(11)).
					Return(content.ContentItem{ID: 11, AuthorID: 2}, nil)
				m.repo.EXPECT().SelectBestAnswer(gomock.Any(), int64(11), int64(22)).
					Return(domain.BestAnswerState{}, ErrInvalidTarget)
			},
			uid:       2,
			commentID: 22,
			wantErr:   ErrInvalidTarget,
		},
		{
			name: "评论不存在",
			mock: func(m mocks) {
				m.content.EXPECT().Get(gomock.Any(), int64(11)).
					Return(content.ContentItem{ID: 11, AuthorID: 2}, nil)
				m.repo.EXPECT().SelectBestAnswer(gomock.Any(), int64(11), int64(404)).
					Return(domain.BestAnswerState{}, ErrCommentNotFound)
			},
			uid:       2,
			commentID: 404,
			wantErr:   ErrCommentNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newTestService(ctrl, domain.Config{})
			tc.mock(m)

			res, err := svc.SelectBestAnswer(context.Background(), tc.uid, 11, tc.commentID)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestCommentService_Tree(t *testing.T) {
	t.Parallel()

	rows := []domain.Comment{
		{ID: 1, ContentItemID: 11, Uid: 5, Content: "a", Ctime: 100},
		{ID: 2, ContentItemID: 11, Uid: 6, Content: "b", Ctime: 200, BestAnswer: true},
		{ID: 3, ContentItemID: 11, Uid: 7, ParentID: 1, AncestorID: 1, Depth: 1, Content: "c", Ctime: 300},
		{ID: 4, ContentItemID: 11, Uid: 8, ParentID: 3, AncestorID: 1, Depth: 2, Content: "d", Ctime: 400},
	}

	t.Run("登录用户带点赞状态", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl, domain.Config{DefaultMaxDepth: 3})
		m.content.EXPECT().Get(gomock.Any(), int64(11)).
			Return(content.ContentItem{ID: 11, Kind: content.KindProject}, nil)
		m.repo.EXPECT().Thread(gomock.Any(), int64(11)).Return(rows, nil)
		m.like.EXPECT().LikedTargets(gomock.Any(), int64(9), interactive.TargetComment, []int64{2, 1, 3, 4}).
			Return(map[int64]bool{3: true}, nil)

		roots, err := svc.Tree(context.Background(), 11, "latest", 9)
		require.NoError(t, err)
		require.Len(t, roots, 2)
		// 最佳答案在前
		assert.Equal(t, int64(2), roots[0].ID)
		assert.Equal(t, int64(1), roots[1].ID)
		require.Len(t, roots[1].Children, 1)
		reply := roots[1].Children[0]
		assert.Equal(t, int64(3), reply.ID)
		require.NotNil(t, reply.LikedByViewer)
		assert.True(t, *reply.LikedByViewer)
		require.NotNil(t, roots[0].LikedByViewer)
		assert.False(t, *roots[0].LikedByViewer)
		require.Len(t, reply.Children, 1)
		assert.Equal(t, int64(4), reply.Children[0].ID)
	})

	t.Run("匿名访问没有点赞状态", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl, domain.Config{DefaultMaxDepth: 3})
		m.content.EXPECT().Get(gomock.Any(), int64(11)).
			Return(content.ContentItem{ID: 11, Kind: content.KindProject}, nil)
		m.repo.EXPECT().Thread(gomock.Any(), int64(11)).Return(rows, nil)

		roots, err := svc.Tree(context.Background(), 11, "", 0)
		require.NoError(t, err)
		require.Len(t, roots, 2)
		assert.Nil(t, roots[0].LikedByViewer)
		assert.Nil(t, roots[1].Children[0].LikedByViewer)
	})

	t.Run("超过最大深度的回复不展示", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl, domain.Config{
			MaxDepth: map[string]int{content.KindPost: 1},
		})
		m.content.EXPECT().Get(gomock.Any(), int64(11)).
			Return(content.ContentItem{ID: 11, Kind: content.KindPost}, nil)
		m.repo.EXPECT().Thread(gomock.Any(), int64(11)).Return(rows, nil)

		roots, err := svc.Tree(context.Background(), 11, "oldest", 0)
		require.NoError(t, err)
		require.Len(t, roots, 2)
		assert.Equal(t, int64(2), roots[0].ID)
		assert.Equal(t, int64(1), roots[1].ID)
		require.Len(t, roots[1].Children, 1)
		assert.Empty(t, roots[1].Children[0].Children)
	})

	t.Run("不支持的排序", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newTestService(ctrl, domain.Config{})
		_, err := svc.Tree(context.Background(), 11, "hottest", 0)
		assert.ErrorIs(t, err, ErrInvalidSort)
	})

	t.Run("内容不存在", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl, domain.Config{})
		m.content.EXPECT().Get(gomock.Any(), int64(404)).
			Return(content.ContentItem{}, content.ErrContentItemNotFound)
		m.repo.EXPECT().Thread(gomock.Any(), int64(404)).Return(nil, nil).AnyTimes()

		_, err := svc.Tree(context.Background(), 404, "", 0)
		assert.ErrorIs(t, err, ErrContentItemNotFound)
	})

	t.Run("查询点赞状态失败", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl, domain.Config{})
		m.content.EXPECT().Get(gomock.Any(), int64(11)).
			Return(content.ContentItem{ID: 11, Kind: content.KindProject}, nil)
		m.repo.EXPECT().Thread(gomock.Any(), int64(11)).Return(rows, nil)
		m.like.EXPECT().LikedTargets(gomock.Any(), int64(9), interactive.TargetComment, gomock.Any()).
			Return(nil, errors.New("mock error"))

		roots, err := svc.Tree(context.Background(), 11, "", 9)
		assert.Error(t, err)
		assert.Nil(t, roots)
	})
}

func TestCommentService_Page(t *testing.T) {
	t.Parallel()

	// 10 条一级评论，ctime 越大越新
	rows := make([]domain.Comment, 0, 10)
	for i := int64(1); i <= 10; i++ {
		rows = append(rows, domain.Comment{
			ID:            i,
			ContentItemID: 11,
			Uid:           100 + i,
			Content:       fmt.Sprintf("评论 %d", i),
			Ctime:         i * 100,
		})
	}

	testCases := []struct {
		name     string
		page     int
		pageSize int
		viewer   int64
		mock     func(m mocks)

		wantIDs        []int64
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{
			name:     "第一页",
			page:     1,
			pageSize: 7,
			mock:     func(m mocks) {},
			wantIDs:  []int64{10, 9, 8, 7, 6, 5, 4},

			wantTotalPages: 2,
			wantHasNext:    true,
		},
		{
			name:     "第二页",
			page:     2,
			pageSize: 7,
			mock:     func(m mocks) {},
			wantIDs:  []int64{3, 2, 1},

			wantTotalPages: 2,
			wantHasPrev:    true,
		},
		{
			name:     "超出最后一页",
			page:     3,
			pageSize: 7,
			mock:     func(m mocks) {},
			wantIDs:  []int64{},

			wantTotalPages: 2,
			wantHasPrev:    true,
		},
		{
			name:     "只查当前页的点赞状态",
			page:     2,
			pageSize: 7,
			viewer:   9,
			mock: func(m mocks) {
				m.like.EXPECT().LikedTargets(gomock.Any(), int64(9), interactive.TargetComment, []int64{3, 2, 1}).
					Return(map[int64]bool{2: true}, nil)
			},
			wantIDs: []int64{3, 2, 1},

			wantTotalPages: 2,
			wantHasPrev:    true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newTestService(ctrl, domain.Config{})
			m.content.EXPECT().Get(gomock.Any(), int64(11)).
				Return(content.ContentItem{ID: 11, Kind: content.KindProject}, nil)
			m.repo.EXPECT().Thread(gomock.Any(), int64(11)).Return(rows, nil)
			tc.mock(m)

			res, err := svc.Page(context.Background(), 11, "latest", tc.page, tc.pageSize, tc.viewer)
			require.NoError(t, err)
			ids := make([]int64, 0, len(res.Items))
			for _, item := range res.Items {
				ids = append(ids, item.ID)
				if tc.viewer > 0 {
					require.NotNil(t, item.LikedByViewer)
					assert.Equal(t, item.ID == 2, *item.LikedByViewer)
				} else {
					assert.Nil(t, item.LikedByViewer)
				}
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.Equal(t, int64(10), res.Total)
			assert.Equal(t, tc.wantTotalPages, res.TotalPages)
			assert.Equal(t, tc.wantHasNext, res.HasNext)
			assert.Equal(t, tc.wantHasPrev, res.HasPrev)
		})
	}
}
