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

package web

import (
	"github.com/ecodeclub/ecourse/internal/coupon/internal/domain"
)

// CouponCodeReq 学生端校验/核销
type CouponCodeReq struct {
	CouponCode string `json:"couponCode"`
}

// Redemption 校验/核销的返回，discountAmount 在非折扣券时为 null
type Redemption struct {
	Title          string   `json:"title"`
	Message        string   `json:"message"`
	CouponType     string   `json:"couponType"`
	CouponID       int64    `json:"couponId"`
	Type           string   `json:"type"`
	DiscountType   string   `json:"discountType,omitempty"`
	DiscountAmount *float64 `json:"discountAmount"`
	Label          string   `json:"label"`
}

func newRedemption(r domain.Redemption, msg string) Redemption {
	res := Redemption{
		Title:        r.Coupon.Title,
		Message:      msg,
		CouponType:   string(r.Coupon.Family),
		CouponID:     r.Coupon.ID,
		Type:         string(r.Coupon.Type),
		DiscountType: string(r.Coupon.DiscountType),
		Label:        r.Label,
	}
	if r.Coupon.Type == domain.TypeDiscount {
		amount := r.Coupon.DiscountAmount
		res.DiscountAmount = &amount
	}
	return res
}

type Coupon struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	CouponCode     string   `json:"couponCode"`
	Type           string   `json:"type"`
	DiscountType   string   `json:"discountType,omitempty"`
	DiscountAmount *float64 `json:"discountAmount"`
	StartAt        int64    `json:"startAt,omitempty"`
	ExpireAt       int64    `json:"expireAt,omitempty"`
	Status         string   `json:"status"`
	Utime          int64    `json:"utime"`
}

func newCoupon(c domain.Coupon) Coupon {
	res := Coupon{
		ID:           c.ID,
		Title:        c.Title,
		CouponCode:   c.Code,
		Type:         string(c.Type),
		DiscountType: string(c.DiscountType),
		StartAt:      c.StartAt,
		ExpireAt:     c.ExpireAt,
		Status:       c.Status.String(),
		Utime:        c.Utime,
	}
	if c.Type == domain.TypeDiscount {
		amount := c.DiscountAmount
		res.DiscountAmount = &amount
	}
	return res
}

// CreateCouponReq 新建，status 不传默认 active
type CreateCouponReq struct {
	Title          string   `json:"title"`
	CouponCode     string   `json:"couponCode"`
	Type           string   `json:"type"`
	DiscountType   string   `json:"discountType"`
	DiscountAmount *float64 `json:"discountAmount"`
	StartAt        *int64   `json:"startAt"`
	ExpireAt       *int64   `json:"expireAt"`
	Status         string   `json:"status"`
}

// UpdateCouponReq 部分更新，没带的字段保持原值
type UpdateCouponReq struct {
	Title          *string  `json:"title"`
	CouponCode     *string  `json:"couponCode"`
	Type           *string  `json:"type"`
	DiscountType   *string  `json:"discountType"`
	DiscountAmount *float64 `json:"discountAmount"`
	StartAt        *int64   `json:"startAt"`
	ExpireAt       *int64   `json:"expireAt"`
	Status         *string  `json:"status"`
}

type UpdateStatusReq struct {
	Status string `json:"status"`
}

type ListCouponsResp struct {
	Coupons    []Coupon `json:"coupons"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalPages int64    `json:"totalPages"`
}
