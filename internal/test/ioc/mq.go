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


package testioc

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/ecodeclub/showcase/config"
)

var (
	q          mq.MQ
	mqInitOnce sync.Once
)

var topics = []config.Topic{
	{Name: "engagement_mutations", Partitions: 1},
}

// InitMQ 集成测试统一用内存队列
func InitMQ() mq.MQ {
	mqInitOnce.Do(func() {
		qq := memory.NewMQ()
		for _, t := range topics {
			if err := qq.CreateTopic(context.Background(), t.Name, t.Partitions); err != nil {
				panic(err)
			}
		}
		q = qq
	})
	return q
}
