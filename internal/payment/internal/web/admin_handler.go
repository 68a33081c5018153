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
	"strconv"

	"github.com/ecodeclub/ecourse/internal/payment/internal/domain"
	"github.com/ecodeclub/ecourse/internal/payment/internal/repository"
	"github.com/ecodeclub/ecourse/internal/payment/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const (
	defaultRequestLimit = 20
	maxRequestLimit     = 100
)

// AdminHandler 管理端人工审核支付申请
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payment-requests")
	g.GET("", ginx.W(h.List))
	g.PATCH("/:id/accept", ginx.S(h.Accept))
	g.PATCH("/:id/reject", ginx.S(h.Reject))
}

func (h *AdminHandler) List(ctx *ginx.Context) (ginx.Result, error) {
	skip, _ := strconv.Atoi(ctx.Context.Query("skip"))
	if skip < 0 {
		skip = 0
	}
	limit, _ := strconv.Atoi(ctx.Context.Query("limit"))
	// 上限 100，越界一律拉回
	if limit < 1 {
		limit = defaultRequestLimit
	}
	if limit > maxRequestLimit {
		limit = maxRequestLimit
	}
	prs, total, err := h.svc.List(ctx.Request.Context(), repository.Query{
		Offset: skip,
		Limit:  limit,
		Status: domain.StatusFromString(ctx.Context.Query("status")),
		Search: ctx.Context.Query("search"),
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListPaymentRequestsResp{
			Requests: slice.Map(prs, func(idx int, src domain.PaymentRequest) PaymentRequest {
				return newPaymentRequest(src)
			}),
			Total: total,
		},
	}, nil
}

func (h *AdminHandler) Accept(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, err := requestID(ctx)
	if err != nil {
		return requestNotFoundResult(ctx)
	}
	err = h.svc.Accept(ctx.Request.Context(), id, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			return requestNotFoundResult(ctx)
		}
		return reviewErrResult(ctx, err)
	}
	return ginx.Result{
		Data: ReviewResp{Message: "Payment request accepted", RequestID: id},
	}, nil
}

func (h *AdminHandler) Reject(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, err := requestID(ctx)
	if err != nil {
		return requestNotFoundResult(ctx)
	}
	err = h.svc.Reject(ctx.Request.Context(), id, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			return requestNotFoundResult(ctx)
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ReviewResp{Message: "Payment request rejected", RequestID: id},
	}, nil
}

func requestID(ctx *ginx.Context) (int64, error) {
	return strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
}
