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

package service

import (
	"context"

	"github.com/ecodeclub/ecourse/internal/course/internal/domain"
	"github.com/ecodeclub/ecourse/internal/course/internal/repository"
)

var ErrCourseNotFound = repository.ErrCourseNotFound

//go:generate mockgen -source=./service.go -destination=../../mocks/course.mock.go -package=coursemocks -typed Service
type Service interface {
	FindByID(ctx context.Context, id int64) (domain.Course, error)
	// Enroll 给学生开通课程访问权
	// 在支付审核的事务里调用，失败会让整个审核回滚
	Enroll(ctx context.Context, e domain.Enrollment) error
}

type service struct {
	repo repository.CourseRepository
}

func NewService(repo repository.CourseRepository) Service {
	return &service{repo: repo}
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Course, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Enroll(ctx context.Context, e domain.Enrollment) error {
	_, err := s.repo.CreateEnrollment(ctx, e)
	return err
}
