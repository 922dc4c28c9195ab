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

package interactive

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/showcase/internal/interactive/internal/event"
	"github.com/ecodeclub/showcase/internal/interactive/internal/repository"
	"github.com/ecodeclub/showcase/internal/interactive/internal/repository/dao"
	"github.com/ecodeclub/showcase/internal/interactive/internal/service"
	"github.com/ecodeclub/showcase/internal/interactive/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		initLikeDAO,
		repository.NewLikeRepository,
		event.NewMutationEventProducer,
		service.NewLikeService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initLikeDAO(db *egorm.Component) (dao.LikeDAO, error) {
	var err error
	once.Do(func() {
		err = dao.InitTables(db)
	})
	if err != nil {
		return nil, err
	}
	return dao.NewGORMLikeDAO(db), nil
}
