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
	"github.com/ecodeclub/ecourse/internal/coupon/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 学生端：下单前试算 + 审核通过时核销
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/coupons")
	g.POST("/validate", ginx.BS[CouponCodeReq](h.Validate))
	g.POST("/apply", ginx.BS[CouponCodeReq](h.Apply))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Validate(ctx *ginx.Context, req CouponCodeReq, sess session.Session) (ginx.Result, error) {
	r, err := h.svc.Validate(ctx.Request.Context(), sess.Claims().Uid, req.CouponCode)
	if err != nil {
		return couponErrResult(ctx, err)
	}
	return ginx.Result{
		Data: newRedemption(r, "Coupon is valid: "+r.Label),
	}, nil
}

func (h *Handler) Apply(ctx *ginx.Context, req CouponCodeReq, sess session.Session) (ginx.Result, error) {
	r, err := h.svc.Apply(ctx.Request.Context(), sess.Claims().Uid, req.CouponCode)
	if err != nil {
		return couponErrResult(ctx, err)
	}
	return ginx.Result{
		Data: newRedemption(r, "Coupon applied: "+r.Label),
	}, nil
}
