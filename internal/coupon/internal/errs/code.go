package errs

var (
	SystemError   = ErrorCode{Code: 512001, Msg: "系统错误"}
	InvalidParam  = ErrorCode{Code: 512002, Msg: "参数非法"}
	CouponMissing = ErrorCode{Code: 512003, Msg: "优惠券不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
