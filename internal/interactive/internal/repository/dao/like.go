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
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/showcase/internal/pkg/database"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	TargetTypeContent = "content"
	TargetTypeComment = "comment"
)

var (
	ErrTargetNotFound    = errors.New("点赞对象不存在")
	ErrUnknownTargetType = errors.New("未知的点赞对象类型")
	ErrDuplicateLike     = errors.New("点赞记录已存在")
	ErrTransientStore    = errors.New("事务被数据库中止，可以重试")
)

// 点赞数冗余在被点赞对象自己的表里面，和点赞记录在同一个事务里维护
type targetTable struct {
	name    string
	columns string
}

var targetTables = map[string]targetTable{
	TargetTypeContent: {name: "content_items", columns: "id, id AS content_item_id, like_cnt"},
	TargetTypeComment: {name: "comments", columns: "id, content_item_id, like_cnt"},
}

const (
	duplicateRetryInitInterval = 10 * time.Millisecond
	duplicateRetryMaxInterval  = 100 * time.Millisecond
	duplicateRetryMaxTimes     = 3
)

type LikeDAO interface {
	Toggle(ctx context.Context, uid int64, targetType string, targetId int64) (ToggleResult, error)
	FindUserLikes(ctx context.Context, uid int64, targetType string, targetIds []int64) ([]UserLike, error)
}

type GORMLikeDAO struct {
	db *egorm.Component
}

func NewGORMLikeDAO(db *egorm.Component) *GORMLikeDAO {
	return &GORMLikeDAO{db: db}
}

func (g *GORMLikeDAO) Toggle(ctx context.Context, uid int64, targetType string, targetId int64) (ToggleResult, error) {
	table, ok := targetTables[targetType]
	if !ok {
		return ToggleResult{}, fmt.Errorf("%w: %s", ErrUnknownTargetType, targetType)
	}
	strategy, err := retry.NewExponentialBackoffRetryStrategy(duplicateRetryInitInterval,
		duplicateRetryMaxInterval, duplicateRetryMaxTimes)
	if err != nil {
		return ToggleResult{}, err
	}
	for {
		res, err := g.toggle(ctx, table, uid, targetType, targetId)
		if !errors.Is(err, ErrDuplicateLike) {
			return res, err
		}
		// 并发插入的时候输了，再来一次就是取消点赞
		interval, ok := strategy.Next()
		if !ok {
			return ToggleResult{}, fmt.Errorf("%w: %w", ErrTransientStore, err)
		}
		select {
		case <-ctx.Done():
			return ToggleResult{}, ctx.Err()
		case <-time.After(interval):
		}
	}
}

func (g *GORMLikeDAO) toggle(ctx context.Context, table targetTable,
	uid int64, targetType string, targetId int64) (ToggleResult, error) {
	var res ToggleResult
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target likeTarget
		// 锁住被点赞对象，同一个对象上的切换操作就串行了
		err := tx.Table(table.name).
			Select(table.columns).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", targetId).
			Take(&target).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s id=%d", ErrTargetNotFound, targetType, targetId)
		}
		if err != nil {
			return err
		}
		res.ContentItemId = target.ContentItemId

		err = tx.Where("uid = ? AND target_type = ? AND target_id = ?", uid, targetType, targetId).
			First(&UserLike{}).Error
		switch {
		case err == nil:
			deleted, err1 := g.deleteLike(tx, table, uid, targetType, targetId)
			if err1 != nil {
				return err1
			}
			res.Liked = false
			res.LikeCnt = target.LikeCnt
			if deleted {
				res.LikeCnt = max(target.LikeCnt-1, 0)
			}
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			err1 := g.insertLike(tx, table, uid, targetType, targetId)
			if err1 != nil {
				return err1
			}
			res.Liked = true
			res.LikeCnt = target.LikeCnt + 1
			return nil
		default:
			return err
		}
	})
	if err != nil {
		if database.IsTransient(err) {
			return ToggleResult{}, fmt.Errorf("%w: %w", ErrTransientStore, err)
		}
		return ToggleResult{}, err
	}
	return res, nil
}

func (g *GORMLikeDAO) insertLike(tx *gorm.DB, table targetTable, uid int64, targetType string, targetId int64) error {
	now := time.Now().UnixMilli()
	err := tx.Create(&UserLike{
		Uid:        uid,
		TargetType: targetType,
		TargetId:   targetId,
		Ctime:      now,
		Utime:      now,
	}).Error
	if database.IsUniqueViolation(err) {
		return fmt.Errorf("%w: uid=%d", ErrDuplicateLike, uid)
	}
	if err != nil {
		return err
	}
	return tx.Table(table.name).
		Where("id = ?", targetId).
		Updates(map[string]any{
			"like_cnt": gorm.Expr("`like_cnt` + 1"),
			"utime":    now,
		}).Error
}

func (g *GORMLikeDAO) deleteLike(tx *gorm.DB, table targetTable, uid int64, targetType string, targetId int64) (bool, error) {
	res := tx.Where("uid = ? AND target_type = ? AND target_id = ?", uid, targetType, targetId).
		Delete(&UserLike{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected < 1 {
		return false, nil
	}
	err := tx.Table(table.name).
		Where("id = ? AND like_cnt > 0", targetId).
		Updates(map[string]any{
			"like_cnt": gorm.Expr("`like_cnt` - 1"),
			"utime":    time.Now().UnixMilli(),
		}).Error
	return err == nil, err
}

func (g *GORMLikeDAO) FindUserLikes(ctx context.Context, uid int64, targetType string, targetIds []int64) ([]UserLike, error) {
	var likes []UserLike
	err := g.db.WithContext(ctx).
		Where("uid = ? AND target_type = ? AND target_id IN ?", uid, targetType, targetIds).
		Find(&likes).Error
	return likes, err
}
