package web

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/ecourse/internal/coupon"
	"github.com/ecodeclub/ecourse/internal/payment/internal/errs"
	"github.com/ecodeclub/ginx"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

// 审核时核销优惠券可能失败，这些按 400 返回给管理员看原因
var knownCouponErrors = []error{
	coupon.ErrCodeRequired,
	coupon.ErrInvalidCoupon,
	coupon.ErrCouponExpired,
	coupon.ErrCouponAlreadyUsed,
}

func reviewErrResult(ctx *ginx.Context, err error) (ginx.Result, error) {
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

// requestNotFoundResult 不存在和已经终态的故意不区分，不暴露内部状态
func requestNotFoundResult(ctx *ginx.Context) (ginx.Result, error) {
	ctx.AbortWithStatusJSON(http.StatusNotFound, ginx.Result{
		Code: errs.RequestMissing.Code,
		Msg:  "Payment request not found or already processed",
	})
	return ginx.Result{}, ginx.ErrNoResponse
}
