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

	"github.com/ecodeclub/showcase/internal/interactive/internal/domain"
	"github.com/ecodeclub/showcase/internal/interactive/internal/repository/dao"
)

var (
	ErrTargetNotFound    = dao.ErrTargetNotFound
	ErrUnknownTargetType = dao.ErrUnknownTargetType
	ErrTransientStore    = dao.ErrTransientStore
)

//go:generate mockgen -source=./like.go -package=repomocks -destination=./mocks/like.mock.go LikeRepository
type LikeRepository interface {
	Toggle(ctx context.Context, uid int64, targetType string, targetId int64) (domain.LikeToggle, error)
	LikedTargets(ctx context.Context, uid int64, targetType string, targetIds []int64) (map[int64]bool, error)
}

type likeRepository struct {
	dao dao.LikeDAO
}

func NewLikeRepository(d dao.LikeDAO) LikeRepository {
	return &likeRepository{dao: d}
}

func (r *likeRepository) Toggle(ctx context.Context, uid int64, targetType string, targetId int64) (domain.LikeToggle, error) {
	res, err := r.dao.Toggle(ctx, uid, targetType, targetId)
	if err != nil {
		return domain.LikeToggle{}, err
	}
	return domain.LikeToggle{
		TargetType:    targetType,
		TargetID:      targetId,
		ContentItemID: res.ContentItemId,
		Liked:         res.Liked,
		LikeCnt:       res.LikeCnt,
	}, nil
}

func (r *likeRepository) LikedTargets(ctx context.Context, uid int64, targetType string, targetIds []int64) (map[int64]bool, error) {
	likes, err := r.dao.FindUserLikes(ctx, uid, targetType, targetIds)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]bool, len(likes))
	for _, l := range likes {
		res[l.TargetId] = true
	}
	return res, nil
}
