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
	"errors"
	"net/http"
	"strconv"

	"github.com/ecodeclub/ecourse/internal/coupon/internal/domain"
	"github.com/ecodeclub/ecourse/internal/coupon/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const (
	defaultCouponLimit = 10
	maxCouponLimit     = 50
)

// TeacherHandler 老师端优惠券 CRUD，所有操作都限定在自己名下
type TeacherHandler struct {
	svc service.Service
}

func NewTeacherHandler(svc service.Service) *TeacherHandler {
	return &TeacherHandler{svc: svc}
}

func (h *TeacherHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/coupons")
	g.GET("", ginx.S(h.List))
	g.GET("/:id", ginx.S(h.Detail))
	g.POST("", ginx.BS[CreateCouponReq](h.Create))
	g.PUT("/:id", ginx.BS[UpdateCouponReq](h.Update))
	g.PATCH("/:id/status", ginx.BS[UpdateStatusReq](h.UpdateStatus))
	g.DELETE("/:id", ginx.S(h.Delete))
}

func (h *TeacherHandler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	page, _ := strconv.Atoi(ctx.Context.Query("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(ctx.Context.Query("limit"))
	// 上限 50，越界一律拉回
	if limit < 1 {
		limit = defaultCouponLimit
	}
	if limit > maxCouponLimit {
		limit = maxCouponLimit
	}
	status := domain.StatusFromString(ctx.Context.Query("status"))
	coupons, total, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid,
		status, (page-1)*limit, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListCouponsResp{
			Coupons: slice.Map(coupons, func(idx int, src domain.Coupon) Coupon {
				return newCoupon(src)
			}),
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: (total + int64(limit) - 1) / int64(limit),
		},
	}, nil
}

func (h *TeacherHandler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, err := couponID(ctx)
	if err != nil {
		return couponNotFoundResult(ctx)
	}
	c, err := h.svc.FindByID(ctx.Request.Context(), sess.Claims().Uid, id)
	if err != nil {
		if errors.Is(err, service.ErrCouponNotFound) {
			return couponNotFoundResult(ctx)
		}
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCoupon(c)}, nil
}

func (h *TeacherHandler) Create(ctx *ginx.Context, req CreateCouponReq, sess session.Session) (ginx.Result, error) {
	c := domain.Coupon{
		Family:       domain.FamilyTeacher,
		TeacherID:    sess.Claims().Uid,
		Title:        req.Title,
		Code:         req.CouponCode,
		Type:         domain.Type(req.Type),
		DiscountType: domain.DiscountType(req.DiscountType),
	}
	if req.DiscountAmount != nil {
		c.DiscountAmount = *req.DiscountAmount
	}
	if req.StartAt != nil {
		c.StartAt = *req.StartAt
	}
	if req.ExpireAt != nil {
		c.ExpireAt = *req.ExpireAt
	}
	if req.Status != "" {
		// 不传走默认 active，传了就必须是认识的值
		st := domain.StatusFromString(req.Status)
		if st == 0 {
			return couponErrResult(ctx, service.ErrInvalidStatus)
		}
		c.Status = st
	}
	created, err := h.svc.Create(ctx.Request.Context(), c)
	if err != nil {
		return couponErrResult(ctx, err)
	}
	ctx.JSON(http.StatusCreated, ginx.Result{Data: newCoupon(created)})
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *TeacherHandler) Update(ctx *ginx.Context, req UpdateCouponReq, sess session.Session) (ginx.Result, error) {
	id, err := couponID(ctx)
	if err != nil {
		return couponNotFoundResult(ctx)
	}
	updated, err := h.svc.Update(ctx.Request.Context(), sess.Claims().Uid, id, h.toPatch(req))
	if err != nil {
		if errors.Is(err, service.ErrCouponNotFound) {
			return couponNotFoundResult(ctx)
		}
		return couponErrResult(ctx, err)
	}
	return ginx.Result{Data: newCoupon(updated)}, nil
}

func (h *TeacherHandler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq, sess session.Session) (ginx.Result, error) {
	id, err := couponID(ctx)
	if err != nil {
		return couponNotFoundResult(ctx)
	}
	updated, err := h.svc.UpdateStatus(ctx.Request.Context(), sess.Claims().Uid, id,
		domain.StatusFromString(req.Status))
	if err != nil {
		if errors.Is(err, service.ErrCouponNotFound) {
			return couponNotFoundResult(ctx)
		}
		return couponErrResult(ctx, err)
	}
	return ginx.Result{Data: newCoupon(updated)}, nil
}

func (h *TeacherHandler) Delete(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, err := couponID(ctx)
	if err != nil {
		return couponNotFoundResult(ctx)
	}
	err = h.svc.Delete(ctx.Request.Context(), sess.Claims().Uid, id)
	if err != nil {
		if errors.Is(err, service.ErrCouponNotFound) {
			return couponNotFoundResult(ctx)
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "Coupon deleted"}, nil
}

func (h *TeacherHandler) toPatch(req UpdateCouponReq) domain.CouponPatch {
	patch := domain.CouponPatch{
		Title:          req.Title,
		Code:           req.CouponCode,
		DiscountAmount: req.DiscountAmount,
		StartAt:        req.StartAt,
		ExpireAt:       req.ExpireAt,
	}
	if req.Type != nil {
		t := domain.Type(*req.Type)
		patch.Type = &t
	}
	if req.DiscountType != nil {
		dt := domain.DiscountType(*req.DiscountType)
		patch.DiscountType = &dt
	}
	if req.Status != nil {
		st := domain.StatusFromString(*req.Status)
		patch.Status = &st
	}
	return patch
}

func couponID(ctx *ginx.Context) (int64, error) {
	return strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
}
