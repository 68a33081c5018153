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

package coupon

import (
	"github.com/ecodeclub/ecourse/internal/coupon/internal/domain"
	"github.com/ecodeclub/ecourse/internal/coupon/internal/service"
	"github.com/ecodeclub/ecourse/internal/coupon/internal/web"
)

type (
	Service        = service.Service
	Handler        = web.Handler
	TeacherHandler = web.TeacherHandler
	Coupon         = domain.Coupon
	Redemption     = domain.Redemption
)

var (
	ErrCodeRequired      = service.ErrCodeRequired
	ErrInvalidCoupon     = service.ErrInvalidCoupon
	ErrCouponExpired     = service.ErrCouponExpired
	ErrCouponAlreadyUsed = service.ErrCouponAlreadyUsed
	ErrCodeDuplicate     = service.ErrCodeDuplicate
)

type Module struct {
	Svc        Service
	Hdl        *Handler
	TeacherHdl *TeacherHandler
}
