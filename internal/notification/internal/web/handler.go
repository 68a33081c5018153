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

	"github.com/ecodeclub/ecourse/internal/notification/internal/domain"
	"github.com/ecodeclub/ecourse/internal/notification/internal/errs"
	"github.com/ecodeclub/ecourse/internal/notification/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/notifications")
	g.GET("", ginx.S(h.List))
	g.GET("/unread-count", ginx.S(h.UnreadCount))
	g.PATCH("/:id/read", ginx.S(h.MarkRead))
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	page, _ := strconv.Atoi(ctx.Context.Query("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(ctx.Context.Query("limit"))
	if limit < 1 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}
	ns, total, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid, (page-1)*limit, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListNotificationsResp{
			Notifications: slice.Map(ns, func(idx int, src domain.Notification) Notification {
				return newNotification(src)
			}),
			Total: total,
		},
	}, nil
}

func (h *Handler) UnreadCount(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	count, err := h.svc.UnreadCount(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: UnreadCountResp{Count: count}}, nil
}

func (h *Handler) MarkRead(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return notificationNotFoundResult(ctx)
	}
	err = h.svc.MarkRead(ctx.Request.Context(), sess.Claims().Uid, id)
	if err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			return notificationNotFoundResult(ctx)
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "Notification marked as read"}, nil
}

func notificationNotFoundResult(ctx *ginx.Context) (ginx.Result, error) {
	ctx.AbortWithStatusJSON(http.StatusNotFound, ginx.Result{
		Code: errs.NotificationNotFound.Code,
		Msg:  "Notification not found",
	})
	return ginx.Result{}, ginx.ErrNoResponse
}
