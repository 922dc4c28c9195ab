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

	"github.com/ecodeclub/showcase/internal/comment/internal/domain"
	"github.com/ecodeclub/showcase/internal/comment/internal/event"
	"github.com/ecodeclub/showcase/internal/comment/internal/repository"
	"github.com/ecodeclub/showcase/internal/content"
	"github.com/ecodeclub/showcase/internal/interactive"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnauthorized        = errors.New("未登录")
	ErrForbidden           = errors.New("只有内容作者才能选择最佳答案")
	ErrContentItemNotFound = content.ErrContentItemNotFound
	ErrParentNotFound      = repository.ErrParentNotFound
	ErrCommentNotFound     = repository.ErrCommentNotFound
	ErrDepthExceeded       = repository.ErrDepthExceeded
	ErrInvalidTarget       = repository.ErrInvalidTarget
	ErrTransientStore      = repository.ErrTransientStore
	ErrInvalidContent      = domain.ErrInvalidContent
	ErrInvalidSort         = domain.ErrInvalidSort
)

//go:generate mockgen -source=./comment.go -package=commentmocks -destination=../../mocks/comment.mock.go CommentService
type CommentService interface {
	// Create 创建评论或者回复
	Create(ctx context.Context, c domain.Comment) (domain.Comment, error)
	// SelectBestAnswer 只有内容作者可以操作，选中已经是最佳答案的评论就是取消
	SelectBestAnswer(ctx context.Context, uid, contentItemID, commentID int64) (domain.BestAnswerState, error)
	// Tree 某个内容下完整的评论树，viewer <= 0 代表匿名访问
	Tree(ctx context.Context, contentItemID int64, sort string, viewer int64) ([]domain.CommentNode, error)
	// Page 对一级评论分页
	Page(ctx context.Context, contentItemID int64, sort string, page, pageSize int, viewer int64) (domain.Page, error)
	InvalidateThread(ctx context.Context, contentItemID int64) error
}

type commentService struct {
	repo       repository.CommentRepository
	contentSvc content.Service
	likeSvc    interactive.Service
	producer   event.MutationEventProducer
	cfg        domain.Config
	logger     *elog.Component
}

func NewCommentService(repo repository.CommentRepository,
	contentSvc content.Service,
	likeSvc interactive.Service,
	producer event.MutationEventProducer,
	cfg domain.Config) CommentService {
	return &commentService{
		repo:       repo,
		contentSvc: contentSvc,
		likeSvc:    likeSvc,
		producer:   producer,
		cfg:        cfg,
		logger:     elog.DefaultLogger,
	}
}

func (s *commentService) Create(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	if c.Uid <= 0 {
		return domain.Comment{}, ErrUnauthorized
	}
	text, err := domain.NormalizeContent(c.Content)
	if err != nil {
		return domain.Comment{}, err
	}
	c.Content = text
	item, err := s.contentSvc.Get(ctx, c.ContentItemID)
	if err != nil {
		return domain.Comment{}, err
	}
	res, err := s.repo.Create(ctx, c, s.cfg.MaxDepthOf(item.Kind))
	if err != nil {
		return domain.Comment{}, err
	}
	s.produce(ctx, event.MutationEvent{
		ContentItemID: res.ContentItemID,
		TargetType:    interactive.TargetComment,
		TargetID:      res.ID,
		Action:        event.ActionComment,
		Uid:           res.Uid,
	})
	return res, nil
}

func (s *commentService) SelectBestAnswer(ctx context.Context, uid, contentItemID, commentID int64) (domain.BestAnswerState, error) {
	if uid <= 0 {
		return domain.BestAnswerState{}, ErrUnauthorized
	}
	item, err := s.contentSvc.Get(ctx, contentItemID)
	if err != nil {
		return domain.BestAnswerState{}, err
	}
	if item.AuthorID != uid {
		return domain.BestAnswerState{}, fmt.Errorf("%w: uid=%d, authorId=%d", ErrForbidden, uid, item.AuthorID)
	}
	state, err := s.repo.SelectBestAnswer(ctx, contentItemID, commentID)
	if err != nil {
		return domain.BestAnswerState{}, err
	}
	s.produce(ctx, event.MutationEvent{
		ContentItemID: contentItemID,
		TargetType:    interactive.TargetComment,
		TargetID:      commentID,
		Action:        event.ActionBestAnswer,
		Uid:           uid,
	})
	return state, nil
}

func (s *commentService) Tree(ctx context.Context, contentItemID int64, sort string, viewer int64) ([]domain.CommentNode, error) {
	forest, err := s.forest(ctx, contentItemID, sort)
	if err != nil {
		return nil, err
	}
	if err = s.fillViewerLikes(ctx, viewer, forest.IDs(), forest.Roots); err != nil {
		return nil, err
	}
	return forest.Roots, nil
}

func (s *commentService) Page(ctx context.Context, contentItemID int64, sort string, page, pageSize int, viewer int64) (domain.Page, error) {
	forest, err := s.forest(ctx, contentItemID, sort)
	if err != nil {
		return domain.Page{}, err
	}
	res := domain.Paginate(forest.Roots, page, pageSize, s.cfg.PageSizeLimit())
	// 只查当前页里面的点赞状态
	if err = s.fillViewerLikes(ctx, viewer, domain.Forest{Roots: res.Items}.IDs(), res.Items); err != nil {
		return domain.Page{}, err
	}
	return res, nil
}

func (s *commentService) InvalidateThread(ctx context.Context, contentItemID int64) error {
	return s.repo.InvalidateThread(ctx, contentItemID)
}

func (s *commentService) forest(ctx context.Context, contentItemID int64, sort string) (domain.Forest, error) {
	policy, err := domain.ParseSortPolicy(sort)
	if err != nil {
		return domain.Forest{}, err
	}
	var (
		eg   errgroup.Group
		item content.ContentItem
		rows []domain.Comment
	)
	eg.Go(func() error {
		var err error
		item, err = s.contentSvc.Get(ctx, contentItemID)
		return err
	})
	eg.Go(func() error {
		var err error
		rows, err = s.repo.Thread(ctx, contentItemID)
		return err
	})
	if err = eg.Wait(); err != nil {
		return domain.Forest{}, err
	}
	forest := domain.BuildForest(contentItemID, rows, policy, s.cfg.MaxDepthOf(item.Kind))
	if forest.Omitted > 0 {
		s.logger.Debug("部分评论没有挂到评论树上",
			elog.Int64("contentItemId", contentItemID),
			elog.Int("omitted", forest.Omitted))
	}
	return forest, nil
}

func (s *commentService) fillViewerLikes(ctx context.Context, viewer int64, ids []int64, nodes []domain.CommentNode) error {
	if viewer <= 0 || len(nodes) == 0 {
		return nil
	}
	liked, err := s.likeSvc.LikedTargets(ctx, viewer, interactive.TargetComment, ids)
	if err != nil {
		return err
	}
	domain.ApplyViewerLikes(nodes, liked)
	return nil
}

func (s *commentService) produce(ctx context.Context, evt event.MutationEvent) {
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送评论变更消息失败",
			elog.FieldErr(err),
			elog.Any("event", evt))
	}
}
