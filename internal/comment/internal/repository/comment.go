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

package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/showcase/internal/comment/internal/domain"
	"github.com/ecodeclub/showcase/internal/comment/internal/repository/cache"
	"github.com/ecodeclub/showcase/internal/comment/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrParentNotFound  = dao.ErrParentNotFound
	ErrCommentNotFound = dao.ErrCommentNotFound
	ErrDepthExceeded   = dao.ErrDepthExceeded
	ErrInvalidTarget   = dao.ErrInvalidTarget
	ErrTransientStore  = dao.ErrTransientStore
)

//go:generate mockgen -source=./comment.go -package=repomocks -destination=./mocks/comment.mock.go CommentRepository
type CommentRepository interface {
	Create(ctx context.Context, c domain.Comment, maxDepth int) (domain.Comment, error)
	// Thread 某个内容下所有的评论，优先读缓存
	Thread(ctx context.Context, contentItemID int64) ([]domain.Comment, error)
	SelectBestAnswer(ctx context.Context, contentItemID, commentID int64) (domain.BestAnswerState, error)
	InvalidateThread(ctx context.Context, contentItemID int64) error
}

type CachedCommentRepository struct {
	dao    dao.CommentDAO
	cache  cache.ThreadCache
	logger *elog.Component
}

func NewCachedCommentRepository(d dao.CommentDAO, c cache.ThreadCache) CommentRepository {
	return &CachedCommentRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedCommentRepository) Create(ctx context.Context, c domain.Comment, maxDepth int) (domain.Comment, error) {
	res, err := r.dao.Create(ctx, r.toEntity(c), maxDepth)
	if err != nil {
		return domain.Comment{}, err
	}
	r.invalidate(ctx, c.ContentItemID)
	return r.toDomain(res), nil
}

// Thread 缓存里面只用内容、父子关系这些写了就不会变的字段，
// 点赞数、回复数和最佳答案每次都从数据库的同一条查询里面拿。
// 缓存里缺了某条评论就说明缓存落后了，直接回源
func (r *CachedCommentRepository) Thread(ctx context.Context, contentItemID int64) ([]domain.Comment, error) {
	states, err := r.dao.FindThreadStates(ctx, contentItemID)
	if err != nil {
		return nil, err
	}
	if len(states) == 0 {
		return []domain.Comment{}, nil
	}
	cached, err := r.cache.GetThread(ctx, contentItemID)
	if err == nil {
		if res, ok := r.mergeStates(cached, states); ok {
			return res, nil
		}
	} else if !errors.Is(err, cache.ErrThreadNotFound) {
		r.logger.Warn("读取评论缓存失败",
			elog.FieldErr(err),
			elog.Int64("contentItemId", contentItemID))
	}
	found, err := r.dao.FindThread(ctx, contentItemID)
	if err != nil {
		return nil, err
	}
	res := slice.Map(found, func(_ int, src dao.Comment) domain.Comment {
		return r.toDomain(src)
	})
	if err1 := r.cache.SetThread(ctx, contentItemID, res); err1 != nil {
		r.logger.Warn("回写评论缓存失败",
			elog.FieldErr(err1),
			elog.Int64("contentItemId", contentItemID))
	}
	return res, nil
}

func (r *CachedCommentRepository) mergeStates(cached []domain.Comment, states []dao.Comment) ([]domain.Comment, bool) {
	byID := make(map[int64]domain.Comment, len(cached))
	for _, c := range cached {
		byID[c.ID] = c
	}
	res := make([]domain.Comment, 0, len(states))
	for _, st := range states {
		c, ok := byID[st.Id]
		if !ok {
			return nil, false
		}
		c.LikeCnt = st.LikeCnt
		c.RepliesCnt = st.RepliesCnt
		c.BestAnswer = st.BestAnswer
		c.Utime = st.Utime
		res = append(res, c)
	}
	return res, true
}

func (r *CachedCommentRepository) SelectBestAnswer(ctx context.Context, contentItemID, commentID int64) (domain.BestAnswerState, error) {
	bestAnswerID, err := r.dao.SelectBestAnswer(ctx, contentItemID, commentID)
	if err != nil {
		return domain.BestAnswerState{}, err
	}
	r.invalidate(ctx, contentItemID)
	return domain.BestAnswerState{
		ContentItemID: contentItemID,
		CommentID:     bestAnswerID,
	}, nil
}

func (r *CachedCommentRepository) InvalidateThread(ctx context.Context, contentItemID int64) error {
	return r.cache.DelThread(ctx, contentItemID)
}

// 数据库已经提交了，删除缓存失败只能等过期
func (r *CachedCommentRepository) invalidate(ctx context.Context, contentItemID int64) {
	if err := r.cache.DelThread(ctx, contentItemID); err != nil {
		r.logger.Error("删除评论缓存失败",
			elog.FieldErr(err),
			elog.Int64("contentItemId", contentItemID))
	}
}

func (r *CachedCommentRepository) toEntity(c domain.Comment) dao.Comment {
	return dao.Comment{
		Id:            c.ID,
		ContentItemId: c.ContentItemID,
		Uid:           c.Uid,
		ParentId:      sql.Null[int64]{V: c.ParentID, Valid: c.ParentID > 0},
		Content:       c.Content,
	}
}

func (r *CachedCommentRepository) toDomain(c dao.Comment) domain.Comment {
	return domain.Comment{
		ID:            c.Id,
		ContentItemID: c.ContentItemId,
		Uid:           c.Uid,
		ParentID:      c.ParentId.V,
		AncestorID:    c.AncestorId.V,
		Depth:         c.Depth,
		Content:       c.Content,
		LikeCnt:       c.LikeCnt,
		RepliesCnt:    c.RepliesCnt,
		BestAnswer:    c.BestAnswer,
		Ctime:         c.Ctime,
		Utime:         c.Utime,
	}
}
