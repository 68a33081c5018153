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
	"fmt"
	"time"

	"github.com/ecodeclub/ecourse/internal/coupon"
	"github.com/ecodeclub/ecourse/internal/course"
	"github.com/ecodeclub/ecourse/internal/notification"
	"github.com/ecodeclub/ecourse/internal/payment/internal/domain"
	"github.com/ecodeclub/ecourse/internal/payment/internal/repository"
	"github.com/ecodeclub/ecourse/internal/pkg/database"
	"github.com/ecodeclub/ecourse/internal/sms"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var ErrPaymentNotFound = repository.ErrPaymentNotFound

const dispatchTimeout = 10 * time.Second

//go:generate mockgen -source=./service.go -destination=../../mocks/payment.mock.go -package=paymentmocks -typed Service
type Service interface {
	// Accept 审核通过。核销优惠券、开课、改状态在同一个事务里，
	// 任何一步失败整个事务回滚，申请保持 pending
	Accept(ctx context.Context, id, adminUID int64) error
	// Reject 审核拒绝。条件更新，只改得动 pending 的申请
	Reject(ctx context.Context, id, adminUID int64) error
	List(ctx context.Context, q repository.Query) ([]domain.PaymentRequest, int64, error)
}

type service struct {
	repo            repository.PaymentRepository
	transactor      database.Transactor
	couponSvc       coupon.Service
	courseSvc       course.Service
	notificationSvc notification.Service
	smsSvc          sms.Service
	logger          *elog.Component
}

func NewService(repo repository.PaymentRepository,
	transactor database.Transactor,
	couponSvc coupon.Service,
	courseSvc course.Service,
	notificationSvc notification.Service,
	smsSvc sms.Service) Service {
	return &service{
		repo:            repo,
		transactor:      transactor,
		couponSvc:       couponSvc,
		courseSvc:       courseSvc,
		notificationSvc: notificationSvc,
		smsSvc:          smsSvc,
		logger:          elog.DefaultLogger,
	}
}

func (s *service) Accept(ctx context.Context, id, adminUID int64) error {
	pr, err := s.repo.FindPendingByID(ctx, id)
	if err != nil {
		return err
	}
	err = s.transactor.WithTx(ctx, func(txCtx context.Context) error {
		if pr.CouponCode != "" {
			// 结账时可能校验过，但那之后状态可能变了，这里以核销为准
			if _, aerr := s.couponSvc.Apply(txCtx, pr.UID, pr.CouponCode); aerr != nil {
				return aerr
			}
		}
		if eerr := s.courseSvc.Enroll(txCtx, course.Enrollment{
			UID:        pr.UID,
			CourseID:   pr.CourseID,
			InviteCode: pr.InviteCode,
			AmountPaid: pr.Amount,
			Currency:   pr.Currency,
		}); eerr != nil {
			return eerr
		}
		return s.repo.MarkAccepted(txCtx, pr.ID, adminUID)
	})
	if err != nil {
		return err
	}
	s.dispatchAccepted(pr)
	return nil
}

func (s *service) Reject(ctx context.Context, id, adminUID int64) error {
	pr, err := s.repo.FindPendingByID(ctx, id)
	if err != nil {
		return err
	}
	if err = s.repo.MarkRejected(ctx, pr.ID, adminUID); err != nil {
		return err
	}
	s.dispatchRejected(pr)
	return nil
}

func (s *service) List(ctx context.Context, q repository.Query) ([]domain.PaymentRequest, int64, error) {
	var (
		eg    errgroup.Group
		prs   []domain.PaymentRequest
		total int64
	)
	eg.Go(func() error {
		var err error
		prs, err = s.repo.List(ctx, q)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, q)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return prs, total, nil
}

// dispatchAccepted 事务提交之后的善后通知，失败只记日志，
// 学生的课已经开了，不能因为短信服务商挂了把审核结果搞砸
func (s *service) dispatchAccepted(pr domain.PaymentRequest) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()
		_, err := s.notificationSvc.Create(ctx, notification.Notification{
			UID:      pr.UID,
			Type:     notification.TypePaymentAccepted,
			Title:    "Payment accepted",
			Content:  fmt.Sprintf("Your payment for %q has been accepted. The course is now available.", pr.CourseTitle),
			CourseID: pr.CourseID,
		})
		if err != nil {
			s.logger.Error("创建支付通过通知失败",
				elog.FieldErr(err),
				elog.Any("requestId", pr.ID),
				elog.Any("uid", pr.UID))
		}
		s.sendSMS(ctx, pr, s.smsSvc.SendPaymentAccepted)
	}()
}

func (s *service) dispatchRejected(pr domain.PaymentRequest) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()
		s.sendSMS(ctx, pr, s.smsSvc.SendPaymentRejected)
	}()
}

func (s *service) sendSMS(ctx context.Context,
	pr domain.PaymentRequest,
	send func(ctx context.Context, phone, courseTitle string) (sms.SendResult, error)) {
	if pr.SenderPhone == "" {
		return
	}
	res, err := send(ctx, pr.SenderPhone, pr.CourseTitle)
	if err != nil {
		s.logger.Error("发送审核结果短信失败",
			elog.FieldErr(err),
			elog.Any("requestId", pr.ID))
		return
	}
	if !res.Sent {
		s.logger.Error("审核结果短信未送达",
			elog.Any("reason", res.Reason),
			elog.Any("requestId", pr.ID))
	}
}
