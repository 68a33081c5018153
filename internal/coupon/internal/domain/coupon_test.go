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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCode(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantRes string
	}{
		{
			name:    "小写转大写",
			input:   "abc123",
			wantRes: "ABC123",
		},
		{
			name:    "去掉两端空白",
			input:   "  abc123  ",
			wantRes: "ABC123",
		},
		{
			name:    "已经归一化的不变",
			input:   "ABC123",
			wantRes: "ABC123",
		},
		{
			name:    "空串",
			input:   "",
			wantRes: "",
		},
		{
			name:    "全空白",
			input:   "   ",
			wantRes: "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := NormalizeCode(tc.input)
			assert.Equal(t, tc.wantRes, res)
			// 幂等
			assert.Equal(t, res, NormalizeCode(res))
		})
	}
}

func TestCoupon_WithinWindow(t *testing.T) {
	const now int64 = 1_700_000_000_000
	testCases := []struct {
		name    string
		coupon  Coupon
		wantRes bool
	}{
		{
			name:    "original 不看时间窗口",
			coupon:  Coupon{Type: TypeOriginal, StartAt: now + 1000, ExpireAt: now - 1000},
			wantRes: true,
		},
		{
			name:    "discount 没设时间窗口",
			coupon:  Coupon{Type: TypeDiscount},
			wantRes: true,
		},
		{
			name:    "discount 还没开始",
			coupon:  Coupon{Type: TypeDiscount, StartAt: now + 1000},
			wantRes: false,
		},
		{
			name:    "discount 已经过期",
			coupon:  Coupon{Type: TypeDiscount, ExpireAt: now - 1000},
			wantRes: false,
		},
		{
			name:    "discount 在窗口内",
			coupon:  Coupon{Type: TypeDiscount, StartAt: now - 1000, ExpireAt: now + 1000},
			wantRes: true,
		},
		{
			name:    "边界闭区间, 刚好开始",
			coupon:  Coupon{Type: TypeDiscount, StartAt: now},
			wantRes: true,
		},
		{
			name:    "边界闭区间, 刚好到期",
			coupon:  Coupon{Type: TypeDiscount, ExpireAt: now},
			wantRes: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.coupon.WithinWindow(now))
		})
	}
}

func TestCoupon_DiscountLabel(t *testing.T) {
	testCases := []struct {
		name    string
		coupon  Coupon
		wantRes string
	}{
		{
			name:    "original",
			coupon:  Coupon{Type: TypeOriginal},
			wantRes: "100% (Original)",
		},
		{
			name:    "百分比",
			coupon:  Coupon{Type: TypeDiscount, DiscountType: DiscountPercentage, DiscountAmount: 20},
			wantRes: "20% off",
		},
		{
			name:    "百分比带小数",
			coupon:  Coupon{Type: TypeDiscount, DiscountType: DiscountPercentage, DiscountAmount: 12.5},
			wantRes: "12.5% off",
		},
		{
			name:    "固定金额",
			coupon:  Coupon{Type: TypeDiscount, DiscountType: DiscountAmount, DiscountAmount: 50},
			wantRes: "$50 off",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.coupon.DiscountLabel())
		})
	}
}
