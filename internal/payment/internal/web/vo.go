package web

import "github.com/ecodeclub/ecourse/internal/payment/internal/domain"

type PaymentRequest struct {
	ID            int64  `json:"id"`
	CourseID      int64  `json:"courseId"`
	CourseTitle   string `json:"courseTitle"`
	UserID        int64  `json:"userId"`
	UserEmail     string `json:"userEmail"`
	UserNickname  string `json:"userNickname"`
	PaymentMethod string `json:"paymentMethod"`
	SenderPhone   string `json:"senderPhone"`
	TransactionID string `json:"transactionId"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	CouponCode    string `json:"couponCode,omitempty"`
	InviteCode    string `json:"inviteCode,omitempty"`
	Status        string `json:"status"`
	ReviewedAt    int64  `json:"reviewedAt,omitempty"`
	ReviewedBy    int64  `json:"reviewedBy,omitempty"`
	Ctime         int64  `json:"ctime"`
}

func newPaymentRequest(pr domain.PaymentRequest) PaymentRequest {
	return PaymentRequest{
		ID:            pr.ID,
		CourseID:      pr.CourseID,
		CourseTitle:   pr.CourseTitle,
		UserID:        pr.UID,
		UserEmail:     pr.UserEmail,
		UserNickname:  pr.UserNickname,
		PaymentMethod: pr.PaymentMethod,
		SenderPhone:   pr.SenderPhone,
		TransactionID: pr.TransactionID,
		Amount:        pr.Amount,
		Currency:      pr.Currency,
		CouponCode:    pr.CouponCode,
		InviteCode:    pr.InviteCode,
		Status:        pr.Status.String(),
		ReviewedAt:    pr.ReviewedAt,
		ReviewedBy:    pr.ReviewedBy,
		Ctime:         pr.Ctime,
	}
}

type ListPaymentRequestsResp struct {
	Requests []PaymentRequest `json:"requests"`
	Total    int64            `json:"total"`
}

type ReviewResp struct {
	Message   string `json:"message"`
	RequestID int64  `json:"requestId"`
}
