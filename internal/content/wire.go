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

package content

import (
	"sync"

	"github.com/ecodeclub/showcase/internal/content/internal/repository"
	"github.com/ecodeclub/showcase/internal/content/internal/repository/dao"
	"github.com/ecodeclub/showcase/internal/content/internal/service"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		initContentItemDAO,
		repository.NewContentItemRepository,
		service.NewService,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initContentItemDAO(db *egorm.Component) (dao.ContentItemDAO, error) {
	var err error
	once.Do(func() {
		err = dao.InitTables(db)
	})
	if err != nil {
		return nil, err
	}
	return dao.NewGORMContentItemDAO(db), nil
}
