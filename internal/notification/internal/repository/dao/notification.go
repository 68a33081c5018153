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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = gorm.ErrRecordNotFound

type NotificationDAO interface {
	Insert(ctx context.Context, n UserNotification) (int64, error)
	FindByUID(ctx context.Context, uid int64, offset, limit int) ([]UserNotification, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	CountUnread(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, uid, id int64) error
}

type gormNotificationDAO struct {
	db *egorm.Component
}

func NewGORMNotificationDAO(db *egorm.Component) NotificationDAO {
	return &gormNotificationDAO{db: db}
}

func (g *gormNotificationDAO) Insert(ctx context.Context, n UserNotification) (int64, error) {
	now := time.Now().UnixMilli()
	n.Ctime, n.Utime = now, now
	err := g.db.WithContext(ctx).Create(&n).Error
	return n.Id, err
}

func (g *gormNotificationDAO) FindByUID(ctx context.Context, uid int64, offset, limit int) ([]UserNotification, error) {
	var res []UserNotification
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *gormNotificationDAO) CountByUID(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&UserNotification{}).
		Where("uid = ?", uid).Count(&res).Error
	return res, err
}

func (g *gormNotificationDAO) CountUnread(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&UserNotification{}).
		Where("uid = ? AND read_at = 0", uid).Count(&res).Error
	return res, err
}

func (g *gormNotificationDAO) MarkRead(ctx context.Context, uid, id int64) error {
	now := time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&UserNotification{}).
		Where("id = ? AND uid = ? AND read_at = 0", id, uid).
		Updates(map[string]any{
			"read_at": now,
			"utime":   now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// 不存在、不属于该用户、或者已读
		return ErrNotificationNotFound
	}
	return nil
}

type UserNotification struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:通知自增ID"`
	Uid      int64  `gorm:"not null;index:idx_uid_read,priority:1;comment:接收用户ID"`
	Type     string `gorm:"type:varchar(64);not null;comment:通知类型"`
	Title    string `gorm:"type:varchar(255);not null;comment:标题"`
	Content  string `gorm:"type:text;comment:正文"`
	CourseId int64  `gorm:"comment:关联课程ID,0表示无"`
	ReadAt   int64  `gorm:"not null;default:0;index:idx_uid_read,priority:2;comment:已读时间,0表示未读"`
	Ctime    int64
	Utime    int64
}

func (UserNotification) TableName() string {
	return "user_notifications"
}
