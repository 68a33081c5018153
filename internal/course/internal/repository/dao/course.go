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

	"github.com/ecodeclub/ecourse/internal/pkg/database"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrCourseNotFound = gorm.ErrRecordNotFound

type CourseDAO interface {
	FindByID(ctx context.Context, id int64) (Course, error)
	// CreateEnrollment 幂等，同一个学生重复报同一门课不报错
	CreateEnrollment(ctx context.Context, e Enrollment) (int64, error)
	FindEnrollment(ctx context.Context, uid, courseID int64) (Enrollment, error)
}

type gormCourseDAO struct {
	db *egorm.Component
}

func NewGORMCourseDAO(db *egorm.Component) CourseDAO {
	return &gormCourseDAO{db: db}
}

func (g *gormCourseDAO) FindByID(ctx context.Context, id int64) (Course, error) {
	var res Course
	err := g.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (g *gormCourseDAO) CreateEnrollment(ctx context.Context, e Enrollment) (int64, error) {
	now := time.Now().UnixMilli()
	e.Ctime, e.Utime = now, now
	// 挂在 ctx 里的事务上，支付审核回滚时报名记录一起消失
	err := database.TxFromContext(ctx, g.db).WithContext(ctx).
		Attrs(Enrollment{InviteCode: e.InviteCode, AmountPaid: e.AmountPaid, Currency: e.Currency, Ctime: e.Ctime, Utime: e.Utime}).
		Where(Enrollment{Uid: e.Uid, CourseId: e.CourseId}).
		FirstOrCreate(&e).Error
	return e.Id, err
}

func (g *gormCourseDAO) FindEnrollment(ctx context.Context, uid, courseID int64) (Enrollment, error) {
	var res Enrollment
	err := g.db.WithContext(ctx).
		First(&res, "uid = ? AND course_id = ?", uid, courseID).Error
	return res, err
}

type Course struct {
	Id    int64  `gorm:"primaryKey;autoIncrement;comment:课程自增ID"`
	Title string `gorm:"type:varchar(255);not null;comment:课程标题"`
	Price int64  `gorm:"not null;comment:价格;单位为分, 999表示9.99元"`
	Ctime int64
	Utime int64
}

// Enrollment 报名记录，唯一索引保证一个学生一门课只有一条
type Enrollment struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:报名记录自增ID"`
	Uid        int64  `gorm:"not null;uniqueIndex:uniq_uid_course;comment:学生ID"`
	CourseId   int64  `gorm:"not null;uniqueIndex:uniq_uid_course;comment:课程ID"`
	InviteCode string `gorm:"type:varchar(64);comment:邀请码"`
	AmountPaid int64  `gorm:"not null;comment:实付金额;单位为分"`
	Currency   string `gorm:"type:varchar(8);comment:币种"`
	Ctime      int64
	Utime      int64
}
