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

package repository

import (
	"context"

	"github.com/ecodeclub/ecourse/internal/notification/internal/domain"
	"github.com/ecodeclub/ecourse/internal/notification/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var ErrNotificationNotFound = dao.ErrNotificationNotFound

type NotificationRepository interface {
	Create(ctx context.Context, n domain.Notification) (int64, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error)
	Total(ctx context.Context, uid int64) (int64, error)
	UnreadCount(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, uid, id int64) error
}

type notificationRepository struct {
	dao dao.NotificationDAO
}

func NewRepository(d dao.NotificationDAO) NotificationRepository {
	return &notificationRepository{dao: d}
}

func (r *notificationRepository) Create(ctx context.Context, n domain.Notification) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(n))
}

func (r *notificationRepository) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error) {
	ns, err := r.dao.FindByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ns, func(idx int, src dao.UserNotification) domain.Notification {
		return r.toDomain(src)
	}), nil
}

func (r *notificationRepository) Total(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUID(ctx, uid)
}

func (r *notificationRepository) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountUnread(ctx, uid)
}

func (r *notificationRepository) MarkRead(ctx context.Context, uid, id int64) error {
	return r.dao.MarkRead(ctx, uid, id)
}

func (r *notificationRepository) toEntity(n domain.Notification) dao.UserNotification {
	return dao.UserNotification{
		Id:       n.ID,
		Uid:      n.UID,
		Type:     n.Type,
		Title:    n.Title,
		Content:  n.Content,
		CourseId: n.CourseID,
		ReadAt:   n.ReadAt,
	}
}

func (r *notificationRepository) toDomain(n dao.UserNotification) domain.Notification {
	return domain.Notification{
		ID:       n.Id,
		UID:      n.Uid,
		Type:     n.Type,
		Title:    n.Title,
		Content:  n.Content,
		CourseID: n.CourseId,
		ReadAt:   n.ReadAt,
		Ctime:    n.Ctime,
		Utime:    n.Utime,
	}
}
