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

	"github.com/ecodeclub/showcase/internal/content/internal/domain"
	"github.com/ecodeclub/showcase/internal/content/internal/repository"
)

var ErrContentItemNotFound = errors.New("内容不存在")

//go:generate mockgen -source=./content.go -package=contentmocks -destination=../../mocks/content.mock.go Service
type Service interface {
	// Get 查找内容，不存在的时候返回 ErrContentItemNotFound
	Get(ctx context.Context, id int64) (domain.ContentItem, error)
}

type service struct {
	repo repository.ContentItemRepository
}

func NewService(repo repository.ContentItemRepository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, id int64) (domain.ContentItem, error) {
	item, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrContentItemNotFound) {
		return domain.ContentItem{}, fmt.Errorf("%w: id=%d", ErrContentItemNotFound, id)
	}
	return item, err
}
