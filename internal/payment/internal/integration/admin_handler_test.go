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

//go:build e2e

package integration

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/ecodeclub/ecourse/internal/coupon"
	"github.com/ecodeclub/ecourse/internal/course"
	"github.com/ecodeclub/ecourse/internal/notification"
	"github.com/ecodeclub/ecourse/internal/payment"
	"github.com/ecodeclub/ecourse/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/ecourse/internal/payment/internal/web"
	"github.com/ecodeclub/ecourse/internal/pkg/database"
	"github.com/ecodeclub/ecourse/internal/sms"
	"github.com/ecodeclub/ecourse/internal/test"
	testioc "github.com/ecodeclub/ecourse/internal/test/ioc"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	adminUID   = int64(9001)
	studentUID = int64(2071)
	courseID   = int64(10)
)

// 审核流程会跨 payment、coupon、course、notification 几张表，
// 其他模块的表结构不对外暴露，这里直接按表名操作
var reviewTables = []string{
	"payment_requests",
	"enrollments",
	"courses",
	"users",
	"admin_coupons",
	"teacher_coupons",
	"coupon_usages",
	"user_notifications",
}

type AdminHandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
}

func (s *AdminHandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	couponModule := coupon.InitModule(s.db)
	courseModule := course.InitModule(s.db)
	notificationModule := notification.InitModule(s.db)
	// 不配置密钥，短信走控制台输出
	smsModule := sms.InitModule(sms.Config{})
	m := payment.InitModule(s.db, database.NewGormTransactor(s.db),
		couponModule, courseModule, notificationModule, smsModule)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  adminUID,
			Data: map[string]string{"creator": "true"},
		}))
	})
	m.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *AdminHandlerTestSuite) TearDownSuite() {
	for _, table := range reviewTables {
		err := s.db.Exec("DROP TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	for _, table := range reviewTables {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *AdminHandlerTestSuite) seedStudentAndCourse() {
	err := s.db.Table("users").Create(map[string]any{
		"id":       studentUID,
		"email":    "student@example.com",
		"nickname": "小王",
		"phone":    "13800001111",
	}).Error
	require.NoError(s.T(), err)
	err = s.db.Table("courses").Create(map[string]any{
		"id":    courseID,
		"title": "Go 进阶",
		"price": 9900,
	}).Error
	require.NoError(s.T(), err)
}

func (s *AdminHandlerTestSuite) seedRequest(pr dao.PaymentRequest) {
	if pr.Status == 0 {
		pr.Status = 1
	}
	err := s.db.Create(&pr).Error
	require.NoError(s.T(), err)
}

func (s *AdminHandlerTestSuite) enrollmentCount() int64 {
	var count int64
	err := s.db.Table("enrollments").
		Where("uid = ? AND course_id = ?", studentUID, courseID).
		Count(&count).Error
	require.NoError(s.T(), err)
	return count
}

func (s *AdminHandlerTestSuite) requestStatus(id int64) uint8 {
	var pr dao.PaymentRequest
	err := s.db.First(&pr, "id = ?", id).Error
	require.NoError(s.T(), err)
	return pr.Status
}

func (s *AdminHandlerTestSuite) TestAccept() {
	s.seedStudentAndCourse()
	err := s.db.Table("admin_coupons").Create(map[string]any{
		"id":     1,
		"title":  "春季促销",
		"code":   "SPRING",
		"type":   "original",
		"status": 1,
	}).Error
	require.NoError(s.T(), err)
	s.seedRequest(dao.PaymentRequest{
		Id:          100,
		CourseId:    courseID,
		Uid:         studentUID,
		SenderPhone: "13800001111",
		Amount:      9900,
		Currency:    "CNY",
		CouponCode:  "SPRING",
		InviteCode:  "INV-1",
	})

	recorder := s.acceptRequest(100)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), web.ReviewResp{
		Message:   "Payment request accepted",
		RequestID: 100,
	}, recorder.MustScan().Data)

	var pr dao.PaymentRequest
	require.NoError(s.T(), s.db.First(&pr, "id = ?", 100).Error)
	assert.Equal(s.T(), uint8(2), pr.Status)
	assert.Equal(s.T(), adminUID, pr.ReviewedBy)
	assert.True(s.T(), pr.ReviewedAt > 0)

	assert.Equal(s.T(), int64(1), s.enrollmentCount())

	var usageCount int64
	require.NoError(s.T(), s.db.Table("coupon_usages").
		Where("uid = ? AND family = ? AND coupon_id = ?", studentUID, "admin", 1).
		Count(&usageCount).Error)
	assert.Equal(s.T(), int64(1), usageCount)

	// 站内信在事务提交之后异步落库
	require.Eventually(s.T(), func() bool {
		var count int64
		err := s.db.Table("user_notifications").
			Where("uid = ? AND type = ?", studentUID, "payment_accepted").
			Count(&count).Error
		return err == nil && count == 1
	}, 5*time.Second, 100*time.Millisecond)

	// 已经通过的再审一次
	recorder = s.acceptRequest(100)
	require.Equal(s.T(), 404, recorder.Code)
	assert.Equal(s.T(), "Payment request not found or already processed",
		recorder.MustScan().Msg)
}

func (s *AdminHandlerTestSuite) TestAcceptCouponFailureKeepsPending() {
	testCases := []struct {
		name    string
		before  func(t *testing.T)
		wantMsg string
	}{
		{
			name:    "优惠码不存在",
			before:  func(t *testing.T) {},
			wantMsg: "Invalid coupon code",
		},
		{
			name: "优惠码已被核销",
			before: func(t *testing.T) {
				err := s.db.Table("admin_coupons").Create(map[string]any{
					"id":     1,
					"title":  "春季促销",
					"code":   "SPRING",
					"type":   "original",
					"status": 1,
				}).Error
				require.NoError(t, err)
				err = s.db.Table("coupon_usages").Create(map[string]any{
					"uid":       studentUID,
					"family":    "admin",
					"coupon_id": 1,
				}).Error
				require.NoError(t, err)
			},
			wantMsg: "Coupon already used",
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.seedStudentAndCourse()
			tc.before(t)
			s.seedRequest(dao.PaymentRequest{
				Id:         101,
				CourseId:   courseID,
				Uid:        studentUID,
				Amount:     9900,
				Currency:   "CNY",
				CouponCode: "SPRING",
			})

			recorder := s.acceptRequest(101)
			require.Equal(t, 400, recorder.Code)
			assert.Equal(t, tc.wantMsg, recorder.MustScan().Msg)
			// 整个事务回滚，申请还在待审核，课也没开
			assert.Equal(t, uint8(1), s.requestStatus(101))
			assert.Equal(t, int64(0), s.enrollmentCount())
			s.TearDownTest()
		})
	}
}

func (s *AdminHandlerTestSuite) TestReject() {
	s.seedStudentAndCourse()
	s.seedRequest(dao.PaymentRequest{
		Id:          102,
		CourseId:    courseID,
		Uid:         studentUID,
		SenderPhone: "13800001111",
		Amount:      9900,
		Currency:    "CNY",
	})

	recorder := s.rejectRequest(102)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), web.ReviewResp{
		Message:   "Payment request rejected",
		RequestID: 102,
	}, recorder.MustScan().Data)

	assert.Equal(s.T(), uint8(3), s.requestStatus(102))
	assert.Equal(s.T(), int64(0), s.enrollmentCount())

	// 终态不能再拒
	recorder = s.rejectRequest(102)
	require.Equal(s.T(), 404, recorder.Code)
}

func (s *AdminHandlerTestSuite) TestList() {
	s.seedStudentAndCourse()
	s.seedRequest(dao.PaymentRequest{
		Id: 1, CourseId: courseID, Uid: studentUID,
		Amount: 9900, Currency: "CNY", TransactionId: "TXN-AAA",
	})
	s.seedRequest(dao.PaymentRequest{
		Id: 2, CourseId: courseID, Uid: studentUID,
		Amount: 4900, Currency: "CNY", TransactionId: "TXN-BBB",
	})
	s.seedRequest(dao.PaymentRequest{
		Id: 3, CourseId: courseID, Uid: studentUID,
		Amount: 1900, Currency: "CNY", Status: 3,
	})

	testCases := []struct {
		name      string
		query     string
		wantTotal int64
		wantIDs   []int64
	}{
		{
			name:      "全量, 新的在前",
			query:     "",
			wantTotal: 3,
			wantIDs:   []int64{3, 2, 1},
		},
		{
			name:      "按状态过滤",
			query:     "?status=pending",
			wantTotal: 2,
			wantIDs:   []int64{2, 1},
		},
		{
			name:      "按流水号搜索",
			query:     "?search=TXN-BBB",
			wantTotal: 1,
			wantIDs:   []int64{2},
		},
		{
			name:      "按课程标题搜索",
			query:     "?status=pending&search=" + url.QueryEscape("Go 进阶"),
			wantTotal: 2,
			wantIDs:   []int64{2, 1},
		},
		{
			name:      "分页",
			query:     "?skip=1&limit=1",
			wantTotal: 3,
			wantIDs:   []int64{2},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/payment-requests"+tc.query, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.ListPaymentRequestsResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			resp := recorder.MustScan().Data
			assert.Equal(t, tc.wantTotal, resp.Total)
			ids := make([]int64, 0, len(resp.Requests))
			for _, r := range resp.Requests {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
			if len(resp.Requests) > 0 {
				// 联表带出来的展示字段
				assert.Equal(t, "Go 进阶", resp.Requests[0].CourseTitle)
				assert.Equal(t, "student@example.com", resp.Requests[0].UserEmail)
			}
		})
	}
}

func (s *AdminHandlerTestSuite) acceptRequest(id int64) *test.JSONResponseRecorder[web.ReviewResp] {
	return s.doReview(id, "accept")
}

func (s *AdminHandlerTestSuite) rejectRequest(id int64) *test.JSONResponseRecorder[web.ReviewResp] {
	return s.doReview(id, "reject")
}

func (s *AdminHandlerTestSuite) doReview(id int64, action string) *test.JSONResponseRecorder[web.ReviewResp] {
	req, err := http.NewRequest(http.MethodPatch,
		"/payment-requests/"+strconv.FormatInt(id, 10)+"/"+action, nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.ReviewResp]()
	s.server.ServeHTTP(recorder, req)
	return recorder
}

func TestAdminHandler(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}
