//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/ecourse/internal/coupon"
	"github.com/ecodeclub/ecourse/internal/course"
	"github.com/ecodeclub/ecourse/internal/notification"
	"github.com/ecodeclub/ecourse/internal/payment"
	"github.com/ecodeclub/ecourse/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitTransactor)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		coupon.InitModule,
		course.InitModule,
		notification.InitModule,
		user.InitModule,
		InitSMSModule,
		payment.InitModule,
		wire.FieldsOf(new(*coupon.Module), "Hdl", "TeacherHdl"),
		wire.FieldsOf(new(*course.Module), "Hdl"),
		wire.FieldsOf(new(*notification.Module), "Hdl"),
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*payment.Module), "AdminHdl"),
		InitSession,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
