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

	"github.com/ecodeclub/showcase/internal/interactive/internal/domain"
	"github.com/ecodeclub/showcase/internal/interactive/internal/event"
	"github.com/ecodeclub/showcase/internal/interactive/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ErrUnauthorized      = errors.New("未登录")
	ErrInvalidTargetType = repository.ErrUnknownTargetType
	ErrTargetNotFound    = repository.ErrTargetNotFound
	ErrTransientStore    = repository.ErrTransientStore
)

var toggleCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "engagement",
	Name:      "like_toggle_total",
	Help:      "点赞切换次数，按照对象类型和结果统计",
}, []string{"target_type", "result"})

//go:generate mockgen -source=./like.go -package=intrmocks -destination=../../mocks/like.mock.go LikeService
type LikeService interface {
	// Toggle 没点赞过就点赞，点赞过就取消，返回切换后的状态
	Toggle(ctx context.Context, uid int64, targetType string, targetId int64) (domain.LikeToggle, error)
	// LikedTargets 返回 targetIds 中 uid 点赞过的部分
	LikedTargets(ctx context.Context, uid int64, targetType string, targetIds []int64) (map[int64]bool, error)
}

type likeService struct {
	repo     repository.LikeRepository
	producer event.MutationEventProducer
	logger   *elog.Component
}

func NewLikeService(repo repository.LikeRepository, producer event.MutationEventProducer) LikeService {
	return &likeService{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *likeService) Toggle(ctx context.Context, uid int64, targetType string, targetId int64) (domain.LikeToggle, error) {
	if uid <= 0 {
		return domain.LikeToggle{}, ErrUnauthorized
	}
	if !domain.IsValidTargetType(targetType) {
		return domain.LikeToggle{}, fmt.Errorf("%w: %s", ErrInvalidTargetType, targetType)
	}
	if targetId <= 0 {
		return domain.LikeToggle{}, fmt.Errorf("%w: id=%d", ErrTargetNotFound, targetId)
	}
	res, err := s.repo.Toggle(ctx, uid, targetType, targetId)
	if err != nil {
		toggleCounter.WithLabelValues(targetType, "failed").Inc()
		return domain.LikeToggle{}, err
	}
	result := "unliked"
	if res.Liked {
		result = "liked"
	}
	toggleCounter.WithLabelValues(targetType, result).Inc()

	evt := event.MutationEvent{
		ContentItemID: res.ContentItemID,
		TargetType:    targetType,
		TargetID:      targetId,
		Action:        event.ActionLike,
		Uid:           uid,
	}
	if err1 := s.producer.Produce(ctx, evt); err1 != nil {
		// 点赞已经提交了，消息发送失败只影响缓存的新鲜度
		s.logger.Error("发送互动变更消息失败",
			elog.FieldErr(err1),
			elog.Any("event", evt))
	}
	return res, nil
}

func (s *likeService) LikedTargets(ctx context.Context, uid int64, targetType string, targetIds []int64) (map[int64]bool, error) {
	if uid <= 0 || len(targetIds) == 0 {
		return map[int64]bool{}, nil
	}
	if !domain.IsValidTargetType(targetType) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTargetType, targetType)
	}
	return s.repo.LikedTargets(ctx, uid, targetType, targetIds)
}
