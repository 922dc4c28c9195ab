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

package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// ThreadInvalidator 收到变更消息之后让评论缓存失效
type ThreadInvalidator interface {
	InvalidateThread(ctx context.Context, contentItemID int64) error
}

type MutationConsumer struct {
	invalidator ThreadInvalidator
	consumer    mq.Consumer
	logger      *elog.Component

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewMutationConsumer(invalidator ThreadInvalidator, q mq.MQ) (*MutationConsumer, error) {
	const groupID = "comment_thread_cache"
	consumer, err := q.Consumer(MutationEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &MutationConsumer{
		invalidator: invalidator,
		consumer:    consumer,
		logger:      elog.DefaultLogger,
	}, nil
}

func (c *MutationConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt MutationEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	if evt.ContentItemID <= 0 {
		c.logger.Warn("变更消息缺少内容ID", elog.Any("event", evt))
		return nil
	}
	err = c.invalidator.InvalidateThread(ctx, evt.ContentItemID)
	if err != nil {
		return fmt.Errorf("删除评论缓存失败 contentItemId=%d: %w", evt.ContentItemID, err)
	}
	return nil
}

// Start 在后台循环消费，直到 ctx 结束或者调用了 Stop
func (c *MutationConsumer) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.mu.Lock()
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()
	go func() {
		defer close(done)
		defer cancel()
		for {
			if ctx.Err() != nil {
				return
			}
			err := c.Consume(ctx)
			if err != nil {
				// Stop 关闭了消费者，这时候的错误不用记
				if ctx.Err() != nil {
					return
				}
				c.logger.Error("消费互动变更消息失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *MutationConsumer) Stop(_ context.Context) error {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()
	return c.consumer.Close()
}
