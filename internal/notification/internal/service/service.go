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

	"github.com/ecodeclub/ecourse/internal/notification/internal/domain"
	"github.com/ecodeclub/ecourse/internal/notification/internal/repository"
	"golang.org/x/sync/errgroup"
)

var ErrNotificationNotFound = repository.ErrNotificationNotFound

//go:generate mockgen -source=./service.go -destination=../../mocks/notification.mock.go -package=notificationmocks -typed Service
type Service interface {
	// Create 由各个业务流程在自己提交之后调用，失败由调用方自行记日志
	Create(ctx context.Context, n domain.Notification) (int64, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, int64, error)
	UnreadCount(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, uid, id int64) error
}

type service struct {
	repo repository.NotificationRepository
}

func NewService(repo repository.NotificationRepository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, n domain.Notification) (int64, error) {
	return s.repo.Create(ctx, n)
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, int64, error) {
	var (
		eg    errgroup.Group
		ns    []domain.Notification
		total int64
	)
	eg.Go(func() error {
		var err error
		ns, err = s.repo.List(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return ns, total, nil
}

func (s *service) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	return s.repo.UnreadCount(ctx, uid)
}

func (s *service) MarkRead(ctx context.Context, uid, id int64) error {
	return s.repo.MarkRead(ctx, uid, id)
}
