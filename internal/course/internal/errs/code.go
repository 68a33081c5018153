package errs

var (
	SystemError   = ErrorCode{Code: 516001, Msg: "系统错误"}
	CourseMissing = ErrorCode{Code: 516002, Msg: "课程不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
