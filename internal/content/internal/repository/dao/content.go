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

package dao

import (
	"context"
	"errors"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

// ContentItem 项目或者帖子。这里只关心作者和点赞计数，其余字段由内容模块自己维护
type ContentItem struct {
	ID       int64  `gorm:"primaryKey,autoIncrement"`
	Kind     string `gorm:"type:varchar(32);not null;comment:'project 或者 post'"`
	AuthorID int64  `gorm:"not null;index"`
	// 冗余的点赞计数，只能由点赞模块在事务内修改
	LikeCnt int64 `gorm:"not null;default:0"`
	Ctime   int64
	Utime   int64
}

func (ContentItem) TableName() string {
	return "content_items"
}

type ContentItemDAO interface {
	FindByID(ctx context.Context, id int64) (ContentItem, error)
}

type GORMContentItemDAO struct {
	db *egorm.Component
}

func NewGORMContentItemDAO(db *egorm.Component) ContentItemDAO {
	return &GORMContentItemDAO{db: db}
}

func (g *GORMContentItemDAO) FindByID(ctx context.Context, id int64) (ContentItem, error) {
	var res ContentItem
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ContentItem{}, ErrRecordNotFound
	}
	return res, err
}
