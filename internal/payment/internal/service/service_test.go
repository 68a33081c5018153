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
	"testing"
	"time"

	"github.com/ecodeclub/ecourse/internal/coupon"
	couponmocks "github.com/ecodeclub/ecourse/internal/coupon/mocks"
	"github.com/ecodeclub/ecourse/internal/course"
	coursemocks "github.com/ecodeclub/ecourse/internal/course/mocks"
	"github.com/ecodeclub/ecourse/internal/notification"
	notificationmocks "github.com/ecodeclub/ecourse/internal/notification/mocks"
	"github.com/ecodeclub/ecourse/internal/payment/internal/domain"
	"github.com/ecodeclub/ecourse/internal/payment/internal/repository"
	paymentmocks "github.com/ecodeclub/ecourse/internal/payment/mocks"
	databasemocks "github.com/ecodeclub/ecourse/internal/pkg/database/mocks"
	"github.com/ecodeclub/ecourse/internal/sms"
	smsmocks "github.com/ecodeclub/ecourse/internal/sms/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testRequestID int64 = 100
	testAdminUID  int64 = 9
	testUID       int64 = 7
	testCourseID  int64 = 3
)

func pendingRequest() domain.PaymentRequest {
	return domain.PaymentRequest{
		ID:          testRequestID,
		CourseID:    testCourseID,
		UID:         testUID,
		SenderPhone: "13800001111",
		Amount:      9900,
		Currency:    "CNY",
		CouponCode:  "SPRING",
		InviteCode:  "INV-1",
		Status:      domain.StatusPending,
		CourseTitle: "Go 进阶",
	}
}

type testDeps struct {
	repo       *paymentmocks.MockPaymentRepository
	transactor *databasemocks.MockTransactor
	couponSvc  *couponmocks.MockService
	courseSvc  *coursemocks.MockService
	notifSvc   *notificationmocks.MockService
	smsSvc     *smsmocks.MockService
}

func newTestService(ctrl *gomock.Controller) (Service, testDeps) {
	deps := testDeps{
		repo:       paymentmocks.NewMockPaymentRepository(ctrl),
		transactor: databasemocks.NewMockTransactor(ctrl),
		couponSvc:  couponmocks.NewMockService(ctrl),
		courseSvc:  coursemocks.NewMockService(ctrl),
		notifSvc:   notificationmocks.NewMockService(ctrl),
		smsSvc:     smsmocks.NewMockService(ctrl),
	}
	svc := NewService(deps.repo, deps.transactor,
		deps.couponSvc, deps.courseSvc, deps.notifSvc, deps.smsSvc)
	return svc, deps
}

// 事务 mock 直接执行闭包，错误原样带回
func passthroughTx(deps testDeps) {
	deps.transactor.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second * 5):
		t.Fatalf("等待 %s 超时", what)
	}
}

func TestService_Accept(t *testing.T) {
	t.Run("带优惠券的申请审核通过", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		pr := pendingRequest()

		deps.repo.EXPECT().FindPendingByID(gomock.Any(), testRequestID).Return(pr, nil)
		passthroughTx(deps)
		deps.couponSvc.EXPECT().Apply(gomock.Any(), testUID, "SPRING").
			Return(coupon.Redemption{}, nil)
		deps.courseSvc.EXPECT().Enroll(gomock.Any(), course.Enrollment{
			UID:        testUID,
			CourseID:   testCourseID,
			InviteCode: "INV-1",
			AmountPaid: 9900,
			Currency:   "CNY",
		}).Return(nil)
		deps.repo.EXPECT().MarkAccepted(gomock.Any(), testRequestID, testAdminUID).Return(nil)

		notified := make(chan struct{})
		smsSent := make(chan struct{})
		deps.notifSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, n notification.Notification) (int64, error) {
				assert.Equal(t, testUID, n.UID)
				assert.Equal(t, notification.TypePaymentAccepted, n.Type)
				assert.Equal(t, testCourseID, n.CourseID)
				close(notified)
				return 1, nil
			})
		deps.smsSvc.EXPECT().SendPaymentAccepted(gomock.Any(), "13800001111", "Go 进阶").
			DoAndReturn(func(ctx context.Context, phone, title string) (sms.SendResult, error) {
				close(smsSent)
				return sms.SendResult{Sent: true}, nil
			})

		err := svc.Accept(context.Background(), testRequestID, testAdminUID)
		require.NoError(t, err)
		waitFor(t, notified, "站内信")
		waitFor(t, smsSent, "短信")
	})

	t.Run("没带优惠券就不碰优惠券模块", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		pr := pendingRequest()
		pr.CouponCode = ""
		pr.SenderPhone = ""

		deps.repo.EXPECT().FindPendingByID(gomock.Any(), testRequestID).Return(pr, nil)
		passthroughTx(deps)
		deps.courseSvc.EXPECT().Enroll(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().MarkAccepted(gomock.Any(), testRequestID, testAdminUID).Return(nil)

		// 没有手机号就只发站内信
		notified := make(chan struct{})
		deps.notifSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, n notification.Notification) (int64, error) {
				close(notified)
				return 1, nil
			})

		err := svc.Accept(context.Background(), testRequestID, testAdminUID)
		require.NoError(t, err)
		waitFor(t, notified, "站内信")
	})

	t.Run("申请不存在或者已经终态", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)

		deps.repo.EXPECT().FindPendingByID(gomock.Any(), testRequestID).
			Return(domain.PaymentRequest{}, ErrPaymentNotFound)

		err := svc.Accept(context.Background(), testRequestID, testAdminUID)
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})

	t.Run("优惠券核销失败整个审核中止", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		pr := pendingRequest()

		deps.repo.EXPECT().FindPendingByID(gomock.Any(), testRequestID).Return(pr, nil)
		passthroughTx(deps)
		deps.couponSvc.EXPECT().Apply(gomock.Any(), testUID, "SPRING").
			Return(coupon.Redemption{}, coupon.ErrCouponAlreadyUsed)

		err := svc.Accept(context.Background(), testRequestID, testAdminUID)
		assert.ErrorIs(t, err, coupon.ErrCouponAlreadyUsed)
	})

	t.Run("开课失败不更新状态", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		pr := pendingRequest()
		mockErr := errors.New("mock: enroll failed")

		deps.repo.EXPECT().FindPendingByID(gomock.Any(), testRequestID).Return(pr, nil)
		passthroughTx(deps)
		deps.couponSvc.EXPECT().Apply(gomock.Any(), testUID, "SPRING").
			Return(coupon.Redemption{}, nil)
		deps.courseSvc.EXPECT().Enroll(gomock.Any(), gomock.Any()).Return(mockErr)

		err := svc.Accept(context.Background(), testRequestID, testAdminUID)
		assert.ErrorIs(t, err, mockErr)
	})

	t.Run("并发第二次审核拿不到 pending 行", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		pr := pendingRequest()
		pr.CouponCode = ""

		deps.repo.EXPECT().FindPendingByID(gomock.Any(), testRequestID).Return(pr, nil)
		passthroughTx(deps)
		deps.courseSvc.EXPECT().Enroll(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().MarkAccepted(gomock.Any(), testRequestID, testAdminUID).
			Return(ErrPaymentNotFound)

		err := svc.Accept(context.Background(), testRequestID, testAdminUID)
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})

	t.Run("通知和短信失败不影响审核结果", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		pr := pendingRequest()
		pr.CouponCode = ""

		deps.repo.EXPECT().FindPendingByID(gomock.Any(), testRequestID).Return(pr, nil)
		passthroughTx(deps)
		deps.courseSvc.EXPECT().Enroll(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().MarkAccepted(gomock.Any(), testRequestID, testAdminUID).Return(nil)

		notified := make(chan struct{})
		smsSent := make(chan struct{})
		deps.notifSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, n notification.Notification) (int64, error) {
				close(notified)
				return 0, errors.New("mock: notification down")
			})
		deps.smsSvc.EXPECT().SendPaymentAccepted(gomock.Any(), "13800001111", "Go 进阶").
			DoAndReturn(func(ctx context.Context, phone, title string) (sms.SendResult, error) {
				close(smsSent)
				return sms.SendResult{Sent: false, Reason: "gateway timeout"}, nil
			})

		err := svc.Accept(context.Background(), testRequestID, testAdminUID)
		require.NoError(t, err)
		waitFor(t, notified, "站内信")
		waitFor(t, smsSent, "短信")
	})
}

func TestService_Reject(t *testing.T) {
	t.Run("拒绝并发送短信", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		pr := pendingRequest()

		deps.repo.EXPECT().FindPendingByID(gomock.Any(), testRequestID).Return(pr, nil)
		deps.repo.EXPECT().MarkRejected(gomock.Any(), testRequestID, testAdminUID).Return(nil)
		smsSent := make(chan struct{})
		deps.smsSvc.EXPECT().SendPaymentRejected(gomock.Any(), "13800001111", "Go 进阶").
			DoAndReturn(func(ctx context.Context, phone, title string) (sms.SendResult, error) {
				close(smsSent)
				return sms.SendResult{Sent: true}, nil
			})

		err := svc.Reject(context.Background(), testRequestID, testAdminUID)
		require.NoError(t, err)
		waitFor(t, smsSent, "短信")
	})

	t.Run("已经终态的申请拒绝不了", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)

		deps.repo.EXPECT().FindPendingByID(gomock.Any(), testRequestID).
			Return(domain.PaymentRequest{}, ErrPaymentNotFound)

		err := svc.Reject(context.Background(), testRequestID, testAdminUID)
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, deps := newTestService(ctrl)
	q := repository.Query{Offset: 0, Limit: 20, Status: domain.StatusPending}
	want := []domain.PaymentRequest{pendingRequest()}

	deps.repo.EXPECT().List(gomock.Any(), q).Return(want, nil)
	deps.repo.EXPECT().Count(gomock.Any(), q).Return(int64(35), nil)

	prs, total, err := svc.List(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, want, prs)
	assert.Equal(t, int64(35), total)
}
