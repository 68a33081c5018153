package errs

var (
	SystemError          = ErrorCode{Code: 514001, Msg: "系统错误"}
	NotificationNotFound = ErrorCode{Code: 514002, Msg: "通知不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
