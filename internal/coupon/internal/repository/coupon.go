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
	"errors"

	"github.com/ecodeclub/ecourse/internal/coupon/internal/domain"
	"github.com/ecodeclub/ecourse/internal/coupon/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var (
	ErrCouponNotFound = dao.ErrCouponNotFound
	ErrCodeDuplicate  = dao.ErrCodeDuplicate
	ErrUsageDuplicate = dao.ErrUsageDuplicate
)

type CouponRepository interface {
	// FindActiveByCode 按归一化后的码查启用状态的券
	// 管理员的码无条件优先，查不到才去看老师的码
	FindActiveByCode(ctx context.Context, code string) (domain.Coupon, error)
	UsageExists(ctx context.Context, uid int64, c domain.Coupon) (bool, error)
	RecordUsage(ctx context.Context, uid int64, c domain.Coupon) error

	Create(ctx context.Context, c domain.Coupon) (int64, error)
	Update(ctx context.Context, teacherID, id int64, c domain.Coupon) error
	Delete(ctx context.Context, teacherID, id int64) error
	FindByID(ctx context.Context, teacherID, id int64) (domain.Coupon, error)
	List(ctx context.Context, teacherID int64, status domain.Status, offset, limit int) ([]domain.Coupon, error)
	Count(ctx context.Context, teacherID int64, status domain.Status) (int64, error)
}

type couponRepository struct {
	dao dao.CouponDAO
}

func NewRepository(d dao.CouponDAO) CouponRepository {
	return &couponRepository{dao: d}
}

func (r *couponRepository) FindActiveByCode(ctx context.Context, code string) (domain.Coupon, error) {
	ac, err := r.dao.FindActiveAdminByCode(ctx, code)
	if err == nil {
		return r.adminToDomain(ac), nil
	}
	if !errors.Is(err, dao.ErrCouponNotFound) {
		return domain.Coupon{}, err
	}
	tc, err := r.dao.FindActiveTeacherByCode(ctx, code)
	if err != nil {
		return domain.Coupon{}, err
	}
	return r.teacherToDomain(tc), nil
}

func (r *couponRepository) UsageExists(ctx context.Context, uid int64, c domain.Coupon) (bool, error) {
	return r.dao.UsageExists(ctx, uid, string(c.Family), c.ID)
}

func (r *couponRepository) RecordUsage(ctx context.Context, uid int64, c domain.Coupon) error {
	return r.dao.InsertUsage(ctx, dao.CouponUsage{
		Uid:      uid,
		Family:   string(c.Family),
		CouponId: c.ID,
	})
}

func (r *couponRepository) Create(ctx context.Context, c domain.Coupon) (int64, error) {
	return r.dao.CreateTeacherCoupon(ctx, r.toEntity(c))
}

func (r *couponRepository) Update(ctx context.Context, teacherID, id int64, c domain.Coupon) error {
	// 全量覆盖，patch 的合并在 service 里完成
	// type 切回 original 时折扣字段要清零，所以这里必须用 map 显式写每一列
	rows, err := r.dao.UpdateTeacherCoupon(ctx, teacherID, id, map[string]any{
		"title":           c.Title,
		"code":            c.Code,
		"type":            string(c.Type),
		"discount_type":   string(c.DiscountType),
		"discount_amount": c.DiscountAmount,
		"start_at":        c.StartAt,
		"expire_at":       c.ExpireAt,
		"status":          c.Status.ToUint8(),
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCouponNotFound
	}
	return nil
}

func (r *couponRepository) Delete(ctx context.Context, teacherID, id int64) error {
	rows, err := r.dao.DeleteTeacherCoupon(ctx, teacherID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCouponNotFound
	}
	return nil
}

func (r *couponRepository) FindByID(ctx context.Context, teacherID, id int64) (domain.Coupon, error) {
	tc, err := r.dao.FindTeacherCouponByID(ctx, teacherID, id)
	if err != nil {
		return domain.Coupon{}, err
	}
	return r.teacherToDomain(tc), nil
}

func (r *couponRepository) List(ctx context.Context, teacherID int64, status domain.Status, offset, limit int) ([]domain.Coupon, error) {
	coupons, err := r.dao.FindTeacherCoupons(ctx, teacherID, status.ToUint8(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(coupons, func(idx int, src dao.TeacherCoupon) domain.Coupon {
		return r.teacherToDomain(src)
	}), nil
}

func (r *couponRepository) Count(ctx context.Context, teacherID int64, status domain.Status) (int64, error) {
	return r.dao.CountTeacherCoupons(ctx, teacherID, status.ToUint8())
}

func (r *couponRepository) adminToDomain(c dao.AdminCoupon) domain.Coupon {
	return domain.Coupon{
		ID:             c.Id,
		Family:         domain.FamilyAdmin,
		Title:          c.Title,
		Code:           c.Code,
		Type:           domain.Type(c.Type),
		DiscountType:   domain.DiscountType(c.DiscountType),
		DiscountAmount: c.DiscountAmount,
		StartAt:        c.StartAt,
		ExpireAt:       c.ExpireAt,
		Status:         domain.Status(c.Status),
		Ctime:          c.Ctime,
		Utime:          c.Utime,
	}
}

func (r *couponRepository) teacherToDomain(c dao.TeacherCoupon) domain.Coupon {
	return domain.Coupon{
		ID:             c.Id,
		Family:         domain.FamilyTeacher,
		TeacherID:      c.TeacherId,
		Title:          c.Title,
		Code:           c.Code,
		Type:           domain.Type(c.Type),
		DiscountType:   domain.DiscountType(c.DiscountType),
		DiscountAmount: c.DiscountAmount,
		StartAt:        c.StartAt,
		ExpireAt:       c.ExpireAt,
		Status:         domain.Status(c.Status),
		Ctime:          c.Ctime,
		Utime:          c.Utime,
	}
}

func (r *couponRepository) toEntity(c domain.Coupon) dao.TeacherCoupon {
	return dao.TeacherCoupon{
		Id:             c.ID,
		TeacherId:      c.TeacherID,
		Title:          c.Title,
		Code:           c.Code,
		Type:           string(c.Type),
		DiscountType:   string(c.DiscountType),
		DiscountAmount: c.DiscountAmount,
		StartAt:        c.StartAt,
		ExpireAt:       c.ExpireAt,
		Status:         c.Status.ToUint8(),
	}
}
