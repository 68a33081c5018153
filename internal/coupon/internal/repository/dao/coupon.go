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
	"errors"
	"time"

	"github.com/ecodeclub/ecourse/internal/pkg/database"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrCouponNotFound = gorm.ErrRecordNotFound
	// ErrCodeDuplicate 同一命名空间内优惠码重复，唯一索引是最终裁决
	ErrCodeDuplicate = errors.New("优惠码已存在")
	// ErrUsageDuplicate 同一个学生重复核销同一张券
	ErrUsageDuplicate = errors.New("优惠码已被该用户使用")
)

type CouponDAO interface {
	FindActiveAdminByCode(ctx context.Context, code string) (AdminCoupon, error)
	FindActiveTeacherByCode(ctx context.Context, code string) (TeacherCoupon, error)
	UsageExists(ctx context.Context, uid int64, family string, couponID int64) (bool, error)
	InsertUsage(ctx context.Context, u CouponUsage) error

	CreateTeacherCoupon(ctx context.Context, c TeacherCoupon) (int64, error)
	UpdateTeacherCoupon(ctx context.Context, teacherID, id int64, vals map[string]any) (int64, error)
	DeleteTeacherCoupon(ctx context.Context, teacherID, id int64) (int64, error)
	FindTeacherCouponByID(ctx context.Context, teacherID, id int64) (TeacherCoupon, error)
	FindTeacherCoupons(ctx context.Context, teacherID int64, status uint8, offset, limit int) ([]TeacherCoupon, error)
	CountTeacherCoupons(ctx context.Context, teacherID int64, status uint8) (int64, error)
}

type gormCouponDAO struct {
	db *egorm.Component
}

func NewGORMCouponDAO(db *egorm.Component) CouponDAO {
	return &gormCouponDAO{db: db}
}

// tx 优先用 ctx 里的事务句柄，让核销能挂进支付审核的大事务
func (g *gormCouponDAO) tx(ctx context.Context) *egorm.Component {
	return database.TxFromContext(ctx, g.db)
}

func (g *gormCouponDAO) FindActiveAdminByCode(ctx context.Context, code string) (AdminCoupon, error) {
	var res AdminCoupon
	err := g.tx(ctx).WithContext(ctx).
		First(&res, "code = ? AND status = ?", code, statusActive).Error
	return res, err
}

func (g *gormCouponDAO) FindActiveTeacherByCode(ctx context.Context, code string) (TeacherCoupon, error) {
	var res TeacherCoupon
	err := g.tx(ctx).WithContext(ctx).
		First(&res, "code = ? AND status = ?", code, statusActive).Error
	return res, err
}

func (g *gormCouponDAO) UsageExists(ctx context.Context, uid int64, family string, couponID int64) (bool, error) {
	var count int64
	err := g.tx(ctx).WithContext(ctx).Model(&CouponUsage{}).
		Where("uid = ? AND family = ? AND coupon_id = ?", uid, family, couponID).
		Count(&count).Error
	return count > 0, err
}

func (g *gormCouponDAO) InsertUsage(ctx context.Context, u CouponUsage) error {
	now := time.Now().UnixMilli()
	u.Ctime, u.Utime = now, now
	err := g.tx(ctx).WithContext(ctx).Create(&u).Error
	if g.isMySQLUniqueIndexError(err) {
		return ErrUsageDuplicate
	}
	return err
}

func (g *gormCouponDAO) CreateTeacherCoupon(ctx context.Context, c TeacherCoupon) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Create(&c).Error
	if g.isMySQLUniqueIndexError(err) {
		return 0, ErrCodeDuplicate
	}
	return c.Id, err
}

func (g *gormCouponDAO) UpdateTeacherCoupon(ctx context.Context, teacherID, id int64, vals map[string]any) (int64, error) {
	vals["utime"] = time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&TeacherCoupon{}).
		Where("id = ? AND teacher_id = ?", id, teacherID).
		Updates(vals)
	if g.isMySQLUniqueIndexError(res.Error) {
		return 0, ErrCodeDuplicate
	}
	return res.RowsAffected, res.Error
}

func (g *gormCouponDAO) DeleteTeacherCoupon(ctx context.Context, teacherID, id int64) (int64, error) {
	res := g.db.WithContext(ctx).
		Where("id = ? AND teacher_id = ?", id, teacherID).
		Delete(&TeacherCoupon{})
	return res.RowsAffected, res.Error
}

func (g *gormCouponDAO) FindTeacherCouponByID(ctx context.Context, teacherID, id int64) (TeacherCoupon, error) {
	var res TeacherCoupon
	err := g.db.WithContext(ctx).
		First(&res, "id = ? AND teacher_id = ?", id, teacherID).Error
	return res, err
}

func (g *gormCouponDAO) FindTeacherCoupons(ctx context.Context, teacherID int64, status uint8, offset, limit int) ([]TeacherCoupon, error) {
	var res []TeacherCoupon
	builder := g.db.WithContext(ctx).Where("teacher_id = ?", teacherID)
	if status > 0 {
		builder = builder.Where("status = ?", status)
	}
	err := builder.Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *gormCouponDAO) CountTeacherCoupons(ctx context.Context, teacherID int64, status uint8) (int64, error) {
	var count int64
	builder := g.db.WithContext(ctx).Model(&TeacherCoupon{}).Where("teacher_id = ?", teacherID)
	if status > 0 {
		builder = builder.Where("status = ?", status)
	}
	err := builder.Count(&count).Error
	return count, err
}

func (g *gormCouponDAO) isMySQLUniqueIndexError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return true
		}
	}
	return false
}

const statusActive uint8 = 1

// AdminCoupon 管理员发的全局优惠码，本服务只读，数据由运营后台预置
type AdminCoupon struct {
	Id             int64   `gorm:"primaryKey;autoIncrement;comment:优惠券自增ID"`
	Title          string  `gorm:"type:varchar(255);not null;comment:标题"`
	Code           string  `gorm:"type:varchar(64);not null;uniqueIndex:uniq_admin_coupon_code;comment:优惠码,入库前已做TRIM+UPPER归一化"`
	Type           string  `gorm:"type:varchar(16);not null;comment:类型 original=原价 discount=折扣"`
	DiscountType   string  `gorm:"type:varchar(16);comment:折扣方式 amount/percentage,仅discount有效"`
	DiscountAmount float64 `gorm:"type:decimal(10,2);comment:折扣数值,percentage时为百分比"`
	StartAt        int64   `gorm:"comment:生效时间,0表示不限"`
	ExpireAt       int64   `gorm:"comment:失效时间,0表示不限"`
	Status         uint8   `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=启用 2=停用"`
	Ctime          int64
	Utime          int64
}

// TeacherCoupon 老师自己发的优惠码，和管理员的码是两个独立命名空间
type TeacherCoupon struct {
	Id             int64   `gorm:"primaryKey;autoIncrement;comment:优惠券自增ID"`
	TeacherId      int64   `gorm:"not null;index:idx_teacher_id;comment:所属老师ID"`
	Title          string  `gorm:"type:varchar(255);not null;comment:标题"`
	Code           string  `gorm:"type:varchar(64);not null;uniqueIndex:uniq_teacher_coupon_code;comment:优惠码,入库前已做TRIM+UPPER归一化"`
	Type           string  `gorm:"type:varchar(16);not null;comment:类型 original=原价 discount=折扣"`
	DiscountType   string  `gorm:"type:varchar(16);comment:折扣方式 amount/percentage,仅discount有效"`
	DiscountAmount float64 `gorm:"type:decimal(10,2);comment:折扣数值,percentage时为百分比"`
	StartAt        int64   `gorm:"comment:生效时间,0表示不限"`
	ExpireAt       int64   `gorm:"comment:失效时间,0表示不限"`
	Status         uint8   `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=启用 2=停用"`
	Ctime          int64
	Utime          int64
}

// CouponUsage 核销记录，唯一索引保证同一学生对同一张券只能核销一次
type CouponUsage struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:核销记录自增ID"`
	Uid      int64  `gorm:"not null;uniqueIndex:uniq_uid_family_coupon;comment:学生ID"`
	Family   string `gorm:"type:varchar(16);not null;uniqueIndex:uniq_uid_family_coupon;comment:命名空间 admin/teacher"`
	CouponId int64  `gorm:"not null;uniqueIndex:uniq_uid_family_coupon;comment:优惠券ID"`
	Ctime    int64
	Utime    int64
}
