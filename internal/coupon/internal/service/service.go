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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/ecourse/internal/coupon/internal/domain"
	"github.com/ecodeclub/ecourse/internal/coupon/internal/repository"
	"golang.org/x/sync/errgroup"
)

// 对外暴露的业务错误，web 层靠 errors.Is 翻译成状态码
// 文案是稳定契约，前端按这些字符串展示
var (
	ErrCodeRequired      = errors.New("Coupon code is required")
	ErrInvalidCoupon     = errors.New("Invalid coupon code")
	ErrCouponExpired     = errors.New("Coupon is expired or not yet valid")
	ErrCouponAlreadyUsed = errors.New("Coupon already used")
	ErrCodeDuplicate     = errors.New("Coupon code already exists")
	ErrCouponNotFound    = repository.ErrCouponNotFound

	ErrTitleRequired         = errors.New("Title is required")
	ErrInvalidType           = errors.New("Invalid coupon type")
	ErrInvalidDiscountType   = errors.New("Invalid discount type")
	ErrInvalidDiscountAmount = errors.New("Invalid discount amount")
	ErrInvalidStatus         = errors.New("Invalid status")
)

//go:generate mockgen -source=./service.go -destination=../../mocks/coupon.mock.go -package=couponmocks -typed Service
type Service interface {
	// Validate 试算，不落任何数据
	Validate(ctx context.Context, uid int64, code string) (domain.Redemption, error)
	// Apply 核销，校验全部通过后写入核销记录
	// 在支付审核的事务里调用时，核销记录跟着大事务一起提交或回滚
	Apply(ctx context.Context, uid int64, code string) (domain.Redemption, error)

	// 老师端 CRUD，全部按 teacherID 限定所有权
	Create(ctx context.Context, c domain.Coupon) (domain.Coupon, error)
	Update(ctx context.Context, teacherID, id int64, patch domain.CouponPatch) (domain.Coupon, error)
	UpdateStatus(ctx context.Context, teacherID, id int64, status domain.Status) (domain.Coupon, error)
	Delete(ctx context.Context, teacherID, id int64) error
	FindByID(ctx context.Context, teacherID, id int64) (domain.Coupon, error)
	List(ctx context.Context, teacherID int64, status domain.Status, offset, limit int) ([]domain.Coupon, int64, error)
}

type service struct {
	repo repository.CouponRepository
}

func NewService(repo repository.CouponRepository) Service {
	return &service{repo: repo}
}

func (s *service) Validate(ctx context.Context, uid int64, code string) (domain.Redemption, error) {
	return s.resolve(ctx, uid, code, false)
}

func (s *service) Apply(ctx context.Context, uid int64, code string) (domain.Redemption, error) {
	return s.resolve(ctx, uid, code, true)
}

// resolve 校验和核销共用的解析流程，apply 只多最后一步写核销记录
// 所有校验都过了才写，所以核销记录里不会出现没通过校验的券
func (s *service) resolve(ctx context.Context, uid int64, code string, apply bool) (domain.Redemption, error) {
	code = domain.NormalizeCode(code)
	if code == "" {
		return domain.Redemption{}, ErrCodeRequired
	}
	c, err := s.repo.FindActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return domain.Redemption{}, fmt.Errorf("%w: %s", ErrInvalidCoupon, code)
		}
		return domain.Redemption{}, err
	}
	if !c.WithinWindow(time.Now().UnixMilli()) {
		return domain.Redemption{}, fmt.Errorf("%w: %s", ErrCouponExpired, code)
	}
	used, err := s.repo.UsageExists(ctx, uid, c)
	if err != nil {
		return domain.Redemption{}, err
	}
	if used {
		return domain.Redemption{}, fmt.Errorf("%w: %s", ErrCouponAlreadyUsed, code)
	}
	if apply {
		if err = s.repo.RecordUsage(ctx, uid, c); err != nil {
			// 并发下先查后插可能撞唯一索引，以索引为准
			if errors.Is(err, repository.ErrUsageDuplicate) {
				return domain.Redemption{}, fmt.Errorf("%w: %s", ErrCouponAlreadyUsed, code)
			}
			return domain.Redemption{}, err
		}
	}
	return domain.Redemption{
		Coupon: c,
		Label:  c.DiscountLabel(),
	}, nil
}

func (s *service) Create(ctx context.Context, c domain.Coupon) (domain.Coupon, error) {
	c.Code = domain.NormalizeCode(c.Code)
	c.Title = strings.TrimSpace(c.Title)
	if c.Status == 0 {
		c.Status = domain.StatusActive
	}
	c = clearDiscountFieldsIfOriginal(c)
	if err := validateCoupon(c); err != nil {
		return domain.Coupon{}, err
	}
	id, err := s.repo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, repository.ErrCodeDuplicate) {
			return domain.Coupon{}, ErrCodeDuplicate
		}
		return domain.Coupon{}, err
	}
	return s.repo.FindByID(ctx, c.TeacherID, id)
}

func (s *service) Update(ctx context.Context, teacherID, id int64, patch domain.CouponPatch) (domain.Coupon, error) {
	c, err := s.repo.FindByID(ctx, teacherID, id)
	if err != nil {
		return domain.Coupon{}, err
	}
	c = mergePatch(c, patch)
	c.Code = domain.NormalizeCode(c.Code)
	c.Title = strings.TrimSpace(c.Title)
	c = clearDiscountFieldsIfOriginal(c)
	if err = validateCoupon(c); err != nil {
		return domain.Coupon{}, err
	}
	if err = s.repo.Update(ctx, teacherID, id, c); err != nil {
		if errors.Is(err, repository.ErrCodeDuplicate) {
			return domain.Coupon{}, ErrCodeDuplicate
		}
		return domain.Coupon{}, err
	}
	return s.repo.FindByID(ctx, teacherID, id)
}

func (s *service) UpdateStatus(ctx context.Context, teacherID, id int64, status domain.Status) (domain.Coupon, error) {
	if status != domain.StatusActive && status != domain.StatusInactive {
		return domain.Coupon{}, ErrInvalidStatus
	}
	return s.Update(ctx, teacherID, id, domain.CouponPatch{Status: &status})
}

func (s *service) Delete(ctx context.Context, teacherID, id int64) error {
	return s.repo.Delete(ctx, teacherID, id)
}

func (s *service) FindByID(ctx context.Context, teacherID, id int64) (domain.Coupon, error) {
	return s.repo.FindByID(ctx, teacherID, id)
}

func (s *service) List(ctx context.Context, teacherID int64, status domain.Status, offset, limit int) ([]domain.Coupon, int64, error) {
	var (
		eg      errgroup.Group
		coupons []domain.Coupon
		total   int64
	)
	eg.Go(func() error {
		var err error
		coupons, err = s.repo.List(ctx, teacherID, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, teacherID, status)
		return err
	})
	return coupons, total, eg.Wait()
}

func mergePatch(c domain.Coupon, patch domain.CouponPatch) domain.Coupon {
	if patch.Title != nil {
		c.Title = *patch.Title
	}
	if patch.Code != nil {
		c.Code = *patch.Code
	}
	if patch.Type != nil {
		c.Type = *patch.Type
	}
	if patch.DiscountType != nil {
		c.DiscountType = *patch.DiscountType
	}
	if patch.DiscountAmount != nil {
		c.DiscountAmount = *patch.DiscountAmount
	}
	if patch.StartAt != nil {
		c.StartAt = *patch.StartAt
	}
	if patch.ExpireAt != nil {
		c.ExpireAt = *patch.ExpireAt
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	return c
}

// type 切回 original 后折扣相关字段全部清掉
func clearDiscountFieldsIfOriginal(c domain.Coupon) domain.Coupon {
	if c.Type == domain.TypeOriginal {
		c.DiscountType = ""
		c.DiscountAmount = 0
		c.StartAt = 0
		c.ExpireAt = 0
	}
	return c
}

func validateCoupon(c domain.Coupon) error {
	if c.Code == "" {
		return ErrCodeRequired
	}
	if c.Title == "" {
		return ErrTitleRequired
	}
	if c.Status != domain.StatusActive && c.Status != domain.StatusInactive {
		return ErrInvalidStatus
	}
	switch c.Type {
	case domain.TypeOriginal:
		return nil
	case domain.TypeDiscount:
		if c.DiscountType != domain.DiscountAmount && c.DiscountType != domain.DiscountPercentage {
			return ErrInvalidDiscountType
		}
		if c.DiscountAmount < 0 {
			return ErrInvalidDiscountAmount
		}
		if c.DiscountType == domain.DiscountPercentage && c.DiscountAmount > 100 {
			return ErrInvalidDiscountAmount
		}
		return nil
	default:
		return ErrInvalidType
	}
}
