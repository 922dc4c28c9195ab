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

//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/showcase/internal/comment"
	"github.com/ecodeclub/showcase/internal/content"
	"github.com/ecodeclub/showcase/internal/interactive"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		content.InitModule,
		interactive.InitModule,
		InitCommentConfig,
		comment.InitModule,
		wire.FieldsOf(new(*interactive.Module), "Hdl"),
		wire.FieldsOf(new(*comment.Module), "Hdl"),
		InitSession,
		initGinxServer,
		initConsumers,
	)
	return new(App), nil
}
