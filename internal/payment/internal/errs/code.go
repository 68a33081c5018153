package errs

var (
	SystemError    = ErrorCode{Code: 513001, Msg: "系统错误"}
	InvalidParam   = ErrorCode{Code: 513002, Msg: "参数错误"}
	RequestMissing = ErrorCode{Code: 513003, Msg: "支付申请不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
