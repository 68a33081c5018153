package web

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/ecourse/internal/coupon/internal/errs"
	"github.com/ecodeclub/ecourse/internal/coupon/internal/service"
	"github.com/ecodeclub/ginx"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

// 固定的已知错误集合，只有这些会按 400 返回，文案是稳定契约
var knownCouponErrors = []error{
	service.ErrCodeRequired,
	service.ErrInvalidCoupon,
	service.ErrCouponExpired,
	service.ErrCouponAlreadyUsed,
	service.ErrCodeDuplicate,
	service.ErrTitleRequired,
	service.ErrInvalidType,
	service.ErrInvalidDiscountType,
	service.ErrInvalidDiscountAmount,
	service.ErrInvalidStatus,
}

// couponErrResult 已知业务错误回 400，不在名单里的一律 500
func couponErrResult(ctx *ginx.Context, err error) (ginx.Result, error) {
	for _, known := range knownCouponErrors {
		if errors.Is(err, known) {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, ginx.Result{
				Code: errs.InvalidParam.Code,
				Msg:  known.Error(),
			})
			return ginx.Result{}, ginx.ErrNoResponse
		}
	}
	return systemErrorResult, err
}

func couponNotFoundResult(ctx *ginx.Context) (ginx.Result, error) {
	ctx.AbortWithStatusJSON(http.StatusNotFound, ginx.Result{
		Code: errs.CouponMissing.Code,
		Msg:  "Coupon not found",
	})
	return ginx.Result{}, ginx.ErrNoResponse
}
