package repository

import (
	"context"

	"github.com/ecodeclub/ecourse/internal/course/internal/domain"
	"github.com/ecodeclub/ecourse/internal/course/internal/repository/dao"
)

var ErrCourseNotFound = dao.ErrCourseNotFound

type CourseRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Course, error)
	CreateEnrollment(ctx context.Context, e domain.Enrollment) (int64, error)
}

type courseRepository struct {
	dao dao.CourseDAO
}

func NewRepository(d dao.CourseDAO) CourseRepository {
	return &courseRepository{dao: d}
}

func (r *courseRepository) FindByID(ctx context.Context, id int64) (domain.Course, error) {
	c, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Course{}, err
	}
	return domain.Course{
		ID:    c.Id,
		Title: c.Title,
		Price: c.Price,
		Ctime: c.Ctime,
		Utime: c.Utime,
	}, nil
}

func (r *courseRepository) CreateEnrollment(ctx context.Context, e domain.Enrollment) (int64, error) {
	return r.dao.CreateEnrollment(ctx, dao.Enrollment{
		Uid:        e.UID,
		CourseId:   e.CourseID,
		InviteCode: e.InviteCode,
		AmountPaid: e.AmountPaid,
		Currency:   e.Currency,
	})
}
