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

package startup

import (
	"github.com/ecodeclub/showcase/internal/comment"
	"github.com/ecodeclub/showcase/internal/content"
	"github.com/ecodeclub/showcase/internal/interactive"
	testioc "github.com/ecodeclub/showcase/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule(intrModule *interactive.Module, cfg comment.Config) (*comment.Module, error) {
	wire.Build(testioc.InitDB,
		testioc.InitCache,
		testioc.InitMQ,
		content.InitModule,
		comment.InitModule)
	return new(comment.Module), nil
}

func InitIntrModule() (*interactive.Module, error) {
	wire.Build(testioc.InitDB, testioc.InitMQ, interactive.InitModule)
	return new(interactive.Module), nil
}
