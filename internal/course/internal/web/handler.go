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

	"github.com/ecodeclub/ecourse/internal/course/internal/errs"
	"github.com/ecodeclub/ecourse/internal/course/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/courses/:id", ginx.W(h.Detail))
}

type Course struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Price int64  `json:"price"`
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return courseNotFoundResult(ctx)
	}
	c, err := h.svc.FindByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return courseNotFoundResult(ctx)
		}
		return ginx.Result{Code: errs.SystemError.Code, Msg: errs.SystemError.Msg}, err
	}
	return ginx.Result{
		Data: Course{ID: c.ID, Title: c.Title, Price: c.Price},
	}, nil
}

func courseNotFoundResult(ctx *ginx.Context) (ginx.Result, error) {
	ctx.AbortWithStatusJSON(http.StatusNotFound, ginx.Result{
		Code: errs.CourseMissing.Code,
		Msg:  "Course not found",
	})
	return ginx.Result{}, ginx.ErrNoResponse
}
