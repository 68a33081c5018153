package service

import (
	"context"

	"github.com/ecodeclub/ecourse/internal/user/internal/domain"
	"github.com/ecodeclub/ecourse/internal/user/internal/repository/dao"
)

var ErrUserNotFound = dao.ErrUserNotFound

type Service interface {
	FindByID(ctx context.Context, id int64) (domain.User, error)
}

type service struct {
	dao dao.UserDAO
}

func NewService(d dao.UserDAO) Service {
	return &service{dao: d}
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:       u.Id,
		Email:    u.Email,
		Nickname: u.Nickname,
		Phone:    u.Phone,
	}, nil
}
