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
	"testing"

	"github.com/ecodeclub/ecourse/internal/coupon/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidateCoupon(t *testing.T) {
	testCases := []struct {
		name    string
		coupon  domain.Coupon
		wantErr error
	}{
		{
			name: "original 合法",
			coupon: domain.Coupon{
				Code:   "SPRING",
				Title:  "春季促销",
				Type:   domain.TypeOriginal,
				Status: domain.StatusActive,
			},
		},
		{
			name: "缺优惠码",
			coupon: domain.Coupon{
				Title:  "春季促销",
				Type:   domain.TypeOriginal,
				Status: domain.StatusActive,
			},
			wantErr: ErrCodeRequired,
		},
		{
			name: "缺标题",
			coupon: domain.Coupon{
				Code:   "SPRING",
				Type:   domain.TypeOriginal,
				Status: domain.StatusActive,
			},
			wantErr: ErrTitleRequired,
		},
		{
			name: "非法类型",
			coupon: domain.Coupon{
				Code:   "SPRING",
				Title:  "春季促销",
				Type:   "half-price",
				Status: domain.StatusActive,
			},
			wantErr: ErrInvalidType,
		},
		{
			name: "discount 缺折扣类型",
			coupon: domain.Coupon{
				Code:   "SPRING",
				Title:  "春季促销",
				Type:   domain.TypeDiscount,
				Status: domain.StatusActive,
			},
			wantErr: ErrInvalidDiscountType,
		},
		{
			name: "百分比 100 合法",
			coupon: domain.Coupon{
				Code:           "FREE",
				Title:          "免单",
				Type:           domain.TypeDiscount,
				DiscountType:   domain.DiscountPercentage,
				DiscountAmount: 100,
				Status:         domain.StatusActive,
			},
		},
		{
			name: "百分比超过 100",
			coupon: domain.Coupon{
				Code:           "TOOMUCH",
				Title:          "非法",
				Type:           domain.TypeDiscount,
				DiscountType:   domain.DiscountPercentage,
				DiscountAmount: 100.01,
				Status:         domain.StatusActive,
			},
			wantErr: ErrInvalidDiscountAmount,
		},
		{
			name: "负数折扣",
			coupon: domain.Coupon{
				Code:           "NEG",
				Title:          "非法",
				Type:           domain.TypeDiscount,
				DiscountType:   domain.DiscountAmount,
				DiscountAmount: -1,
				Status:         domain.StatusActive,
			},
			wantErr: ErrInvalidDiscountAmount,
		},
		{
			name: "固定金额不受 100 限制",
			coupon: domain.Coupon{
				Code:           "BIG",
				Title:          "大额券",
				Type:           domain.TypeDiscount,
				DiscountType:   domain.DiscountAmount,
				DiscountAmount: 500,
				Status:         domain.StatusActive,
			},
		},
		{
			name: "非法状态",
			coupon: domain.Coupon{
				Code:   "SPRING",
				Title:  "春季促销",
				Type:   domain.TypeOriginal,
				Status: 0,
			},
			wantErr: ErrInvalidStatus,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateCoupon(tc.coupon)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestClearDiscountFieldsIfOriginal(t *testing.T) {
	c := clearDiscountFieldsIfOriginal(domain.Coupon{
		Type:           domain.TypeOriginal,
		DiscountType:   domain.DiscountPercentage,
		DiscountAmount: 20,
		StartAt:        123,
		ExpireAt:       456,
	})
	assert.Equal(t, domain.Coupon{Type: domain.TypeOriginal}, c)

	// discount 不动
	d := domain.Coupon{
		Type:           domain.TypeDiscount,
		DiscountType:   domain.DiscountPercentage,
		DiscountAmount: 20,
	}
	assert.Equal(t, d, clearDiscountFieldsIfOriginal(d))
}

func TestMergePatch(t *testing.T) {
	base := domain.Coupon{
		Title:          "旧标题",
		Code:           "OLD",
		Type:           domain.TypeDiscount,
		DiscountType:   domain.DiscountPercentage,
		DiscountAmount: 10,
		Status:         domain.StatusActive,
	}

	t.Run("空 patch 不改任何字段", func(t *testing.T) {
		assert.Equal(t, base, mergePatch(base, domain.CouponPatch{}))
	})

	t.Run("只改带了的字段", func(t *testing.T) {
		title := "新标题"
		amount := 30.0
		got := mergePatch(base, domain.CouponPatch{
			Title:          &title,
			DiscountAmount: &amount,
		})
		want := base
		want.Title = "新标题"
		want.DiscountAmount = 30
		assert.Equal(t, want, got)
	})
}
