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

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ecodeclub/ecourse/internal/sms/internal/client"
	"github.com/ecodeclub/ecourse/internal/sms/internal/domain"
)

// ErrPhoneRequired 是调用方的编程错误，投递失败不会返回 error
var ErrPhoneRequired = errors.New("手机号码不能为空")

//go:generate mockgen -source=./service.go -destination=../../mocks/sms.mock.go -package=smsmocks -typed Service
type Service interface {
	// SendPaymentAccepted 支付审核通过通知
	SendPaymentAccepted(ctx context.Context, phone, courseTitle string) (domain.SendResult, error)
	// SendPaymentRejected 支付审核拒绝通知
	SendPaymentRejected(ctx context.Context, phone, courseTitle string) (domain.SendResult, error)
}

type Config struct {
	SignName           string `yaml:"signName"`
	AcceptedTemplateID string `yaml:"acceptedTemplateId"`
	RejectedTemplateID string `yaml:"rejectedTemplateId"`
}

type service struct {
	client client.Client
	cfg    Config
}

func NewService(c client.Client, cfg Config) Service {
	return &service{client: c, cfg: cfg}
}

func (s *service) SendPaymentAccepted(ctx context.Context, phone, courseTitle string) (domain.SendResult, error) {
	return s.send(ctx, phone, s.cfg.AcceptedTemplateID, courseTitle)
}

func (s *service) SendPaymentRejected(ctx context.Context, phone, courseTitle string) (domain.SendResult, error) {
	return s.send(ctx, phone, s.cfg.RejectedTemplateID, courseTitle)
}

func (s *service) send(_ context.Context, phone, templateID, courseTitle string) (domain.SendResult, error) {
	normalized := NormalizePhone(phone)
	if normalized == "" {
		return domain.SendResult{}, ErrPhoneRequired
	}
	resp, err := s.client.Send(client.SendReq{
		PhoneNumbers: []string{normalized},
		SignName:     s.cfg.SignName,
		TemplateID:   templateID,
		TemplateParam: map[string]string{
			"course": courseTitle,
		},
	})
	if err != nil {
		// 投递失败只带原因回去，不作为错误
		return domain.SendResult{Sent: false, Reason: err.Error()}, nil
	}
	return domain.SendResult{Sent: true, RequestID: resp.RequestID}, nil
}

// NormalizePhone 去掉空白和连字符，保留开头的 +
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	var b strings.Builder
	for i, r := range phone {
		switch {
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')':
			// 丢弃
		default:
			return ""
		}
	}
	return b.String()
}
