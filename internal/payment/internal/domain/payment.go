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

type Status uint8

const (
	StatusPending  Status = 1
	StatusAccepted Status = 2
	StatusRejected Status = 3
)

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusAccepted:
		return "accepted"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

func StatusFromString(s string) Status {
	switch s {
	case "pending":
		return StatusPending
	case "accepted":
		return StatusAccepted
	case "rejected":
		return StatusRejected
	default:
		return 0
	}
}

// PaymentRequest 学生线下转账后提交的支付申请，等管理员人工审核
type PaymentRequest struct {
	ID            int64
	CourseID      int64
	UID           int64
	PaymentMethod string
	SenderPhone   string
	TransactionID string
	// Amount 单位为分
	Amount   int64
	Currency string
	// CouponCode 结账时填的优惠券码，审核通过时才真正核销
	CouponCode string
	InviteCode string
	Status     Status
	ReviewedAt int64
	ReviewedBy int64
	Ctime      int64
	Utime      int64

	// 下面是列表展示用的关联字段，查询时联表带出来
	CourseTitle  string
	UserEmail    string
	UserNickname string
}
