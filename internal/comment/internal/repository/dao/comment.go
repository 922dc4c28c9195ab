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
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/showcase/internal/pkg/database"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrParentNotFound  = errors.New("父评论不存在")
	ErrCommentNotFound = errors.New("评论不存在")
	ErrDepthExceeded   = errors.New("评论层级超过上限")
	ErrInvalidTarget   = errors.New("最佳答案只能是该内容下的一级评论")
	ErrTransientStore  = errors.New("事务被数据库中止，可以重试")
)

// Comment 表示针对某一内容的评论
type Comment struct {
	Id int64 `gorm:"primaryKey,autoIncrement"`

	ContentItemId int64 `gorm:"not null;index:idx_item_parent,priority:1"`
	Uid           int64 `gorm:"not null;index"`

	// 这两个字段都可以为 NULL。如果是 NULL 就代表它自身就是一级评论
	ParentId   sql.Null[int64] `gorm:"type:bigint;index:idx_item_parent,priority:2"`
	AncestorId sql.Null[int64] `gorm:"type:bigint;index"`
	Depth      int             `gorm:"not null;default:0"`

	Content string `gorm:"type:text;not null"`

	LikeCnt    int64 `gorm:"not null;default:0"`
	RepliesCnt int64 `gorm:"not null;default:0"`
	BestAnswer bool  `gorm:"not null;default:false"`

	Ctime int64
	Utime int64
}

func (Comment) TableName() string {
	return "comments"
}

//go:generate mockgen -source=./comment.go -package=daomocks -destination=./mocks/comment.mock.go CommentDAO
type CommentDAO interface {
	// Create 回复的时候会锁住父评论，校验层级并且更新父评论的回复数
	Create(ctx context.Context, c Comment, maxDepth int) (Comment, error)
	// FindThread 一次查询拿到某个内容下的所有评论，按照时间正序
	FindThread(ctx context.Context, contentItemId int64) ([]Comment, error)
	// FindThreadStates 只查会变化的列，顺序和 FindThread 一致
	FindThreadStates(ctx context.Context, contentItemId int64) ([]Comment, error)
	// SelectBestAnswer 返回操作之后的最佳答案 ID，0 代表取消了最佳答案
	SelectBestAnswer(ctx context.Context, contentItemId, commentId int64) (int64, error)
}

type GORMCommentDAO struct {
	db *egorm.Component
}

func NewGORMCommentDAO(db *egorm.Component) *GORMCommentDAO {
	return &GORMCommentDAO{db: db}
}

func (g *GORMCommentDAO) Create(ctx context.Context, c Comment, maxDepth int) (Comment, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	c.LikeCnt, c.RepliesCnt, c.BestAnswer = 0, 0, false
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !c.ParentId.Valid {
			c.Depth = 0
			c.AncestorId = sql.Null[int64]{}
			return tx.Create(&c).Error
		}
		var parent Comment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", c.ParentId.V).
			First(&parent).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: id=%d", ErrParentNotFound, c.ParentId.V)
		}
		if err != nil {
			return err
		}
		if parent.ContentItemId != c.ContentItemId {
			return fmt.Errorf("%w: id=%d 不属于内容 %d", ErrParentNotFound, parent.Id, c.ContentItemId)
		}
		if parent.Depth+1 > maxDepth {
			return fmt.Errorf("%w: 父评论层级 %d, 上限 %d", ErrDepthExceeded, parent.Depth, maxDepth)
		}
		c.Depth = parent.Depth + 1
		// 父评论是一级评论，那么始祖评论就是父评论，否则和父评论的始祖评论相同
		ancestorId := parent.Id
		if parent.AncestorId.Valid {
			ancestorId = parent.AncestorId.V
		}
		c.AncestorId = sql.Null[int64]{V: ancestorId, Valid: true}
		if err = tx.Create(&c).Error; err != nil {
			return err
		}
		return tx.Model(&Comment{}).
			Where("id = ?", parent.Id).
			Updates(map[string]any{
				"replies_cnt": gorm.Expr("`replies_cnt` + 1"),
				"utime":       now,
			}).Error
	})
	return c, g.wrapErr(err)
}

func (g *GORMCommentDAO) FindThread(ctx context.Context, contentItemId int64) ([]Comment, error) {
	var res []Comment
	err := g.db.WithContext(ctx).
		Where("content_item_id = ?", contentItemId).
		Order("ctime ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMCommentDAO) FindThreadStates(ctx context.Context, contentItemId int64) ([]Comment, error) {
	var res []Comment
	err := g.db.WithContext(ctx).
		Select("id", "like_cnt", "replies_cnt", "best_answer", "utime").
		Where("content_item_id = ?", contentItemId).
		Order("ctime ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMCommentDAO) SelectBestAnswer(ctx context.Context, contentItemId, commentId int64) (int64, error) {
	var bestAnswerId int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 锁住该内容下所有的一级评论，并发选择最佳答案就串行了
		var tops []Comment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("content_item_id = ? AND parent_id IS NULL", contentItemId).
			Find(&tops).Error
		if err != nil {
			return err
		}
		var target Comment
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", commentId).
			First(&target).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: id=%d", ErrCommentNotFound, commentId)
		}
		if err != nil {
			return err
		}
		if target.ContentItemId != contentItemId || target.ParentId.Valid {
			return fmt.Errorf("%w: id=%d", ErrInvalidTarget, commentId)
		}

		now := time.Now().UnixMilli()
		if target.BestAnswer {
			// 再选一次就是取消
			return tx.Model(&Comment{}).
				Where("id = ?", target.Id).
				Updates(map[string]any{
					"best_answer": false,
					"utime":       now,
				}).Error
		}
		err = tx.Model(&Comment{}).
			Where("content_item_id = ? AND best_answer = ?", contentItemId, true).
			Updates(map[string]any{
				"best_answer": false,
				"utime":       now,
			}).Error
		if err != nil {
			return err
		}
		err = tx.Model(&Comment{}).
			Where("id = ?", target.Id).
			Updates(map[string]any{
				"best_answer": true,
				"utime":       now,
			}).Error
		if err != nil {
			return err
		}
		bestAnswerId = target.Id
		return nil
	})
	return bestAnswerId, g.wrapErr(err)
}

func (g *GORMCommentDAO) wrapErr(err error) error {
	if database.IsTransient(err) {
		return fmt.Errorf("%w: %w", ErrTransientStore, err)
	}
	return err
}
