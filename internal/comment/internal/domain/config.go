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

package domain

import "time"

const (
	DefaultMaxDepth        = 3
	DefaultPageSize        = 10
	DefaultMaxPageSize     = 50
	DefaultCacheExpiration = 10 * time.Minute
)

type Config struct {
	DefaultMaxDepth int `yaml:"defaultMaxDepth"`
	// 按照内容的类型配置，例如 project 允许三层，post 只允许一层
	MaxDepth        map[string]int `yaml:"maxDepth"`
	MaxPageSize     int            `yaml:"maxPageSize"`
	CacheExpiration time.Duration  `yaml:"cacheExpiration"`
}

func (c Config) MaxDepthOf(kind string) int {
	if d, ok := c.MaxDepth[kind]; ok && d >= 0 {
		return d
	}
	if c.DefaultMaxDepth > 0 {
		return c.DefaultMaxDepth
	}
	return DefaultMaxDepth
}

func (c Config) PageSizeLimit() int {
	if c.MaxPageSize > 0 {
		return c.MaxPageSize
	}
	return DefaultMaxPageSize
}

func (c Config) ThreadExpiration() time.Duration {
	if c.CacheExpiration > 0 {
		return c.CacheExpiration
	}
	return DefaultCacheExpiration
}
