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

package config

// 这里只放基础设施的配置，业务模块的配置例如 comment 由模块自己定义

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Network   string   `yaml:"network"`
	Addresses []string `yaml:"addresses"`
	Topics    []Topic  `yaml:"topics"`
}

type Topic struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

type SessionConfig struct {
	SessionEncryptedKey string `yaml:"sessionEncryptedKey"`
	Cookie              struct {
		Domain string `yaml:"domain"`
	} `yaml:"cookie"`
}
