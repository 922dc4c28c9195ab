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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/showcase/internal/comment/internal/domain"
	"github.com/pkg/errors"
)

var ErrThreadNotFound = errors.New("评论缓存不存在")

// ThreadCache 缓存某个内容下所有的扁平评论
//
//go:generate mockgen -source=./thread.go -package=cachemocks -destination=./mocks/thread.mock.go ThreadCache
type ThreadCache interface {
	GetThread(ctx context.Context, contentItemID int64) ([]domain.Comment, error)
	SetThread(ctx context.Context, contentItemID int64, comments []domain.Comment) error
	DelThread(ctx context.Context, contentItemID int64) error
}

type threadCache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewThreadCache(ec ecache.Cache, cfg domain.Config) ThreadCache {
	return &threadCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "comment:",
		},
		expiration: cfg.ThreadExpiration(),
	}
}

func (c *threadCache) GetThread(ctx context.Context, contentItemID int64) ([]domain.Comment, error) {
	val := c.ec.Get(ctx, c.threadKey(contentItemID))
	if val.KeyNotFound() {
		return nil, ErrThreadNotFound
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询评论缓存出错")
	}
	str, err := val.String()
	if err != nil {
		return nil, errors.Wrap(err, "评论缓存类型不对")
	}
	var res []domain.Comment
	err = json.Unmarshal([]byte(str), &res)
	if err != nil {
		return nil, errors.Wrap(err, "反序列化评论失败")
	}
	return res, nil
}

func (c *threadCache) SetThread(ctx context.Context, contentItemID int64, comments []domain.Comment) error {
	data, err := json.Marshal(comments)
	if err != nil {
		return errors.Wrap(err, "序列化评论失败")
	}
	return c.ec.Set(ctx, c.threadKey(contentItemID), string(data), c.expiration)
}

func (c *threadCache) DelThread(ctx context.Context, contentItemID int64) error {
	_, err := c.ec.Delete(ctx, c.threadKey(contentItemID))
	return err
}

func (c *threadCache) threadKey(contentItemID int64) string {
	return fmt.Sprintf("thread:%d", contentItemID)
}
