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
	"strconv"
	"strings"
)

// Family 优惠码命名空间，管理员的全局码和老师自己发的码互相独立
type Family string

const (
	FamilyAdmin   Family = "admin"
	FamilyTeacher Family = "teacher"
)

type Type string

const (
	TypeOriginal Type = "original"
	TypeDiscount Type = "discount"
)

type DiscountType string

const (
	DiscountAmount     DiscountType = "amount"
	DiscountPercentage DiscountType = "percentage"
)

type Status uint8

const (
	StatusActive   Status = 1
	StatusInactive Status = 2
)

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

func (s Status) String() string {
	if s == StatusInactive {
		return "inactive"
	}
	return "active"
}

// StatusFromString 解析前端传来的状态字符串，不认识的一律视为非法，返回 0
func StatusFromString(s string) Status {
	switch s {
	case "active":
		return StatusActive
	case "inactive":
		return StatusInactive
	default:
		return 0
	}
}

type Coupon struct {
	ID        int64
	Family    Family
	TeacherID int64 // Family 为 teacher 时的所有者
	Title     string
	Code      string
	Type      Type
	// 下面几个字段只在 Type 为 discount 时有意义
	DiscountType   DiscountType
	DiscountAmount float64
	StartAt        int64 // 毫秒时间戳，0 表示不限
	ExpireAt       int64 // 毫秒时间戳，0 表示不限
	Status         Status
	Ctime          int64
	Utime          int64
}

// WithinWindow 判断 now 是否落在有效期内，闭区间
// original 类型不看时间窗口，只要启用就有效
func (c Coupon) WithinWindow(now int64) bool {
	if c.Type != TypeDiscount {
		return true
	}
	if c.StartAt > 0 && now < c.StartAt {
		return false
	}
	if c.ExpireAt > 0 && now > c.ExpireAt {
		return false
	}
	return true
}

// DiscountLabel 给前端展示用的折扣文案
func (c Coupon) DiscountLabel() string {
	switch {
	case c.Type == TypeOriginal:
		return "100% (Original)"
	case c.DiscountType == DiscountPercentage:
		return formatAmount(c.DiscountAmount) + "% off"
	default:
		return "$" + formatAmount(c.DiscountAmount) + " off"
	}
}

func formatAmount(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}

// CouponPatch 部分更新，nil 表示请求里没带这个字段，保持原值
type CouponPatch struct {
	Title          *string
	Code           *string
	Type           *Type
	DiscountType   *DiscountType
	DiscountAmount *float64
	StartAt        *int64
	ExpireAt       *int64
	Status         *Status
}

// Redemption 一次校验/核销的结果
type Redemption struct {
	Coupon Coupon
	Label  string
}

// NormalizeCode 优惠码归一化，匹配和存储都用归一化后的形式
// 幂等：NormalizeCode(NormalizeCode(x)) == NormalizeCode(x)
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
