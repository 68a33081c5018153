package domain

// SendResult 发送结果，投递失败不算错误，原因带回去由调用方记日志
type SendResult struct {
	Sent      bool
	RequestID string
	Reason    string
}
