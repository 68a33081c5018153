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

package payment

import (
	"sync"

	"github.com/ecodeclub/ecourse/internal/coupon"
	"github.com/ecodeclub/ecourse/internal/course"
	"github.com/ecodeclub/ecourse/internal/notification"
	"github.com/ecodeclub/ecourse/internal/payment/internal/repository"
	"github.com/ecodeclub/ecourse/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/ecourse/internal/payment/internal/service"
	"github.com/ecodeclub/ecourse/internal/payment/internal/web"
	"github.com/ecodeclub/ecourse/internal/pkg/database"
	"github.com/ecodeclub/ecourse/internal/sms"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	transactor database.Transactor,
	couponModule *coupon.Module,
	courseModule *course.Module,
	notificationModule *notification.Module,
	smsModule *sms.Module) *Module {
	wire.Build(
		InitTablesOnce,
		repository.NewRepository,
		service.NewService,
		web.NewAdminHandler,
		wire.FieldsOf(new(*coupon.Module), "Svc"),
		wire.FieldsOf(new(*course.Module), "Svc"),
		wire.FieldsOf(new(*notification.Module), "Svc"),
		wire.FieldsOf(new(*sms.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.PaymentDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMPaymentDAO(db)
}
