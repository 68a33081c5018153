package user

import (
	"github.com/ecodeclub/ecourse/internal/user/internal/domain"
	"github.com/ecodeclub/ecourse/internal/user/internal/repository/dao"
	"github.com/ecodeclub/ecourse/internal/user/internal/service"
	"github.com/ecodeclub/ecourse/internal/user/internal/web"
	"github.com/ego-component/egorm"
)

type (
	Service = service.Service
	Handler = web.Handler
	User    = domain.User
)

var ErrUserNotFound = service.ErrUserNotFound

type Module struct {
	Svc Service
	Hdl *Handler
}

func InitModule(db *egorm.Component) *Module {
	_ = dao.InitTables(db)
	svc := service.NewService(dao.NewGORMUserDAO(db))
	return &Module{
		Svc: svc,
		Hdl: web.NewHandler(svc),
	}
}
