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

	"github.com/ecodeclub/showcase/internal/content/internal/domain"
	"github.com/ecodeclub/showcase/internal/content/internal/repository/dao"
)

var ErrContentItemNotFound = dao.ErrRecordNotFound

type ContentItemRepository interface {
	Get(ctx context.Context, id int64) (domain.ContentItem, error)
}

type contentItemRepository struct {
	dao dao.ContentItemDAO
}

func NewContentItemRepository(d dao.ContentItemDAO) ContentItemRepository {
	return &contentItemRepository{dao: d}
}

func (r *contentItemRepository) Get(ctx context.Context, id int64) (domain.ContentItem, error) {
	item, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.ContentItem{}, err
	}
	return r.toDomain(item), nil
}

func (r *contentItemRepository) toDomain(item dao.ContentItem) domain.ContentItem {
	return domain.ContentItem{
		ID:       item.ID,
		Kind:     item.Kind,
		AuthorID: item.AuthorID,
		LikeCnt:  item.LikeCnt,
		Ctime:    item.Ctime,
		Utime:    item.Utime,
	}
}
