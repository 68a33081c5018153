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

var ErrPaymentNotFound = gorm.ErrRecordNotFound

const (
	statusPending  uint8 = 1
	statusAccepted uint8 = 2
	statusRejected uint8 = 3
)

type PaymentDAO interface {
	// FindPendingByID 只找 pending 的，终态的一律当不存在
	FindPendingByID(ctx context.Context, id int64) (PaymentRequestDetail, error)
	// MarkAccepted 条件更新，只有还在 pending 的行才会被改到
	// 改不到返回 ErrPaymentNotFound，调用方用它回滚整个事务
	MarkAccepted(ctx context.Context, id, reviewedBy int64) error
	MarkRejected(ctx context.Context, id, reviewedBy int64) error
	List(ctx context.Context, q Query) ([]PaymentRequestDetail, error)
	Count(ctx context.Context, q Query) (int64, error)
}

type Query struct {
	Offset int
	Limit  int
	// Status 0 表示不过滤
	Status uint8
	Search string
}

type gormPaymentDAO struct {
	db *egorm.Component
}

func NewGORMPaymentDAO(db *egorm.Component) PaymentDAO {
	return &gormPaymentDAO{db: db}
}

func (g *gormPaymentDAO) FindPendingByID(ctx context.Context, id int64) (PaymentRequestDetail, error) {
	var res PaymentRequestDetail
	err := g.db.WithContext(ctx).
		Table("payment_requests AS pr").
		Select("pr.*, c.title AS course_title, u.email AS user_email, u.nickname AS user_nickname").
		Joins("LEFT JOIN courses AS c ON c.id = pr.course_id").
		Joins("LEFT JOIN users AS u ON u.id = pr.uid").
		Where("pr.id = ? AND pr.status = ?", id, statusPending).
		First(&res).Error
	return res, err
}

func (g *gormPaymentDAO) MarkAccepted(ctx context.Context, id, reviewedBy int64) error {
	return g.markReviewed(ctx, id, reviewedBy, statusAccepted)
}

func (g *gormPaymentDAO) MarkRejected(ctx context.Context, id, reviewedBy int64) error {
	return g.markReviewed(ctx, id, reviewedBy, statusRejected)
}

func (g *gormPaymentDAO) markReviewed(ctx context.Context, id, reviewedBy int64, status uint8) error {
	now := time.Now().UnixMilli()
	res := database.TxFromContext(ctx, g.db).WithContext(ctx).
		Model(&PaymentRequest{}).
		Where("id = ? AND status = ?", id, statusPending).
		Updates(map[string]any{
			"status":      status,
			"reviewed_at": now,
			"reviewed_by": reviewedBy,
			"utime":       now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// 并发的第二次审核会走到这里
		return ErrPaymentNotFound
	}
	return nil
}

func (g *gormPaymentDAO) List(ctx context.Context, q Query) ([]PaymentRequestDetail, error) {
	var res []PaymentRequestDetail
	err := g.listQuery(ctx, q).
		Order("pr.id DESC").
		Offset(q.Offset).Limit(q.Limit).
		Find(&res).Error
	return res, err
}

func (g *gormPaymentDAO) Count(ctx context.Context, q Query) (int64, error) {
	var res int64
	err := g.listQuery(ctx, q).Count(&res).Error
	return res, err
}

// listQuery List 和 Count 共用同一套过滤条件
func (g *gormPaymentDAO) listQuery(ctx context.Context, q Query) *gorm.DB {
	query := g.db.WithContext(ctx).
		Table("payment_requests AS pr").
		Select("pr.*, c.title AS course_title, u.email AS user_email, u.nickname AS user_nickname").
		Joins("LEFT JOIN courses AS c ON c.id = pr.course_id").
		Joins("LEFT JOIN users AS u ON u.id = pr.uid")
	if q.Status > 0 {
		query = query.Where("pr.status = ?", q.Status)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		query = query.Where(
			"c.title LIKE ? OR u.email LIKE ? OR u.nickname LIKE ? OR pr.sender_phone LIKE ? OR pr.transaction_id LIKE ?",
			like, like, like, like, like)
	}
	return query
}

type PaymentRequest struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:支付申请自增ID"`
	CourseId      int64  `gorm:"not null;index;comment:课程ID"`
	Uid           int64  `gorm:"not null;index;comment:提交申请的学生ID"`
	PaymentMethod string `gorm:"type:varchar(32);comment:支付方式"`
	SenderPhone   string `gorm:"type:varchar(32);comment:付款手机号"`
	TransactionId string `gorm:"type:varchar(128);comment:转账流水号"`
	Amount        int64  `gorm:"not null;comment:金额;单位为分, 999表示9.99元"`
	Currency      string `gorm:"type:varchar(8);comment:币种"`
	CouponCode    string `gorm:"type:varchar(64);comment:优惠券码"`
	InviteCode    string `gorm:"type:varchar(64);comment:邀请码"`
	Status        uint8  `gorm:"type:tinyint unsigned;not null;default:1;index;comment:状态 1=待审核 2=已通过 3=已拒绝"`
	ReviewedAt    int64  `gorm:"comment:审核时间"`
	ReviewedBy    int64  `gorm:"comment:审核管理员ID"`
	Ctime         int64
	Utime         int64
}

func (PaymentRequest) TableName() string {
	return "payment_requests"
}

// PaymentRequestDetail 联表查出来的一行，带展示用字段
type PaymentRequestDetail struct {
	PaymentRequest `gorm:"embedded"`
	CourseTitle    string
	UserEmail      string
	UserNickname   string
}
