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

package course

import (
	"github.com/ecodeclub/ecourse/internal/course/internal/domain"
	"github.com/ecodeclub/ecourse/internal/course/internal/repository"
	"github.com/ecodeclub/ecourse/internal/course/internal/repository/dao"
	"github.com/ecodeclub/ecourse/internal/course/internal/service"
	"github.com/ecodeclub/ecourse/internal/course/internal/web"
	"github.com/ego-component/egorm"
)

type (
	Service    = service.Service
	Handler    = web.Handler
	Course     = domain.Course
	Enrollment = domain.Enrollment
)

var ErrCourseNotFound = service.ErrCourseNotFound

type Module struct {
	Svc Service
	Hdl *Handler
}

func InitModule(db *egorm.Component) *Module {
	_ = dao.InitTables(db)
	svc := service.NewService(repository.NewRepository(dao.NewGORMCourseDAO(db)))
	return &Module{
		Svc: svc,
		Hdl: web.NewHandler(svc),
	}
}
