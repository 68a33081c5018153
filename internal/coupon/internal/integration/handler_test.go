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
	"testing"
	"time"

	"github.com/ecodeclub/ecourse/internal/coupon"
	"github.com/ecodeclub/ecourse/internal/coupon/internal/repository/dao"
	"github.com/ecodeclub/ecourse/internal/coupon/internal/web"
	"github.com/ecodeclub/ecourse/internal/test"
	testioc "github.com/ecodeclub/ecourse/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(2061)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	m := coupon.InitModule(s.db)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownSuite() {
	for _, table := range []string{"admin_coupons", "teacher_coupons", "coupon_usages"} {
		err := s.db.Exec("DROP TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"admin_coupons", "teacher_coupons", "coupon_usages"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TestValidate() {
	amount20 := 20.0
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		after    func(t *testing.T)
		req      web.CouponCodeReq
		wantCode int
		wantResp test.Result[web.Redemption]
	}{
		{
			name: "管理员命名空间的折扣券",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.AdminCoupon{
					Id:             1,
					Title:          "春季促销",
					Code:           "SPRING20",
					Type:           "discount",
					DiscountType:   "percentage",
					DiscountAmount: 20,
					Status:         1,
				}).Error
				require.NoError(t, err)
			},
			after: func(t *testing.T) {
				// 试算不落核销记录
				var count int64
				err := s.db.Model(&dao.CouponUsage{}).Count(&count).Error
				require.NoError(t, err)
				assert.Equal(t, int64(0), count)
			},
			// 归一化之后才匹配
			req:      web.CouponCodeReq{CouponCode: "  spring20 "},
			wantCode: 200,
			wantResp: test.Result[web.Redemption]{
				Data: web.Redemption{
					Title:          "春季促销",
					Message:        "Coupon is valid: 20% off",
					CouponType:     "admin",
					CouponID:       1,
					Type:           "discount",
					DiscountType:   "percentage",
					DiscountAmount: &amount20,
					Label:          "20% off",
				},
			},
		},
		{
			name: "老师命名空间的原价券",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.TeacherCoupon{
					Id:        1,
					TeacherId: 999,
					Title:     "老师免单",
					Code:      "TFREE",
					Type:      "original",
					Status:    1,
				}).Error
				require.NoError(t, err)
			},
			after:    func(t *testing.T) {},
			req:      web.CouponCodeReq{CouponCode: "TFREE"},
			wantCode: 200,
			wantResp: test.Result[web.Redemption]{
				Data: web.Redemption{
					Title:      "老师免单",
					Message:    "Coupon is valid: 100% (Original)",
					CouponType: "teacher",
					CouponID:   1,
					Type:       "original",
					Label:      "100% (Original)",
				},
			},
		},
		{
			name: "两个命名空间同码, 管理员优先",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.AdminCoupon{
					Id:             5,
					Title:          "管理员同码",
					Code:           "BOTH",
					Type:           "discount",
					DiscountType:   "percentage",
					DiscountAmount: 20,
					Status:         1,
				}).Error
				require.NoError(t, err)
				err = s.db.Create(&dao.TeacherCoupon{
					Id:        5,
					TeacherId: 999,
					Title:     "老师同码",
					Code:      "BOTH",
					Type:      "original",
					Status:    1,
				}).Error
				require.NoError(t, err)
			},
			after:    func(t *testing.T) {},
			req:      web.CouponCodeReq{CouponCode: "both"},
			wantCode: 200,
			wantResp: test.Result[web.Redemption]{
				Data: web.Redemption{
					Title:          "管理员同码",
					Message:        "Coupon is valid: 20% off",
					CouponType:     "admin",
					CouponID:       5,
					Type:           "discount",
					DiscountType:   "percentage",
					DiscountAmount: &amount20,
					Label:          "20% off",
				},
			},
		},
		{
			name:     "空优惠码",
			before:   func(t *testing.T) {},
			after:    func(t *testing.T) {},
			req:      web.CouponCodeReq{CouponCode: "   "},
			wantCode: 400,
			wantResp: test.Result[web.Redemption]{
				Code: 512002,
				Msg:  "Coupon code is required",
			},
		},
		{
			name:     "不存在的优惠码",
			before:   func(t *testing.T) {},
			after:    func(t *testing.T) {},
			req:      web.CouponCodeReq{CouponCode: "NOPE"},
			wantCode: 400,
			wantResp: test.Result[web.Redemption]{
				Code: 512002,
				Msg:  "Invalid coupon code",
			},
		},
		{
			name: "停用的券当不存在",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.AdminCoupon{
					Id:     2,
					Title:  "下架",
					Code:   "GONE",
					Type:   "original",
					Status: 2,
				}).Error
				require.NoError(t, err)
			},
			after:    func(t *testing.T) {},
			req:      web.CouponCodeReq{CouponCode: "GONE"},
			wantCode: 400,
			wantResp: test.Result[web.Redemption]{
				Code: 512002,
				Msg:  "Invalid coupon code",
			},
		},
		{
			name: "已经过期",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.AdminCoupon{
					Id:             3,
					Title:          "过期券",
					Code:           "OLD",
					Type:           "discount",
					DiscountType:   "amount",
					DiscountAmount: 50,
					ExpireAt:       time.Now().Add(-time.Hour).UnixMilli(),
					Status:         1,
				}).Error
				require.NoError(t, err)
			},
			after:    func(t *testing.T) {},
			req:      web.CouponCodeReq{CouponCode: "OLD"},
			wantCode: 400,
			wantResp: test.Result[web.Redemption]{
				Code: 512002,
				Msg:  "Coupon is expired or not yet valid",
			},
		},
		{
			name: "已被本人核销过",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.AdminCoupon{
					Id:     4,
					Title:  "一次性",
					Code:   "ONCE",
					Type:   "original",
					Status: 1,
				}).Error
				require.NoError(t, err)
				err = s.db.Create(&dao.CouponUsage{
					Uid:      uid,
					Family:   "admin",
					CouponId: 4,
				}).Error
				require.NoError(t, err)
			},
			after:    func(t *testing.T) {},
			req:      web.CouponCodeReq{CouponCode: "ONCE"},
			wantCode: 400,
			wantResp: test.Result[web.Redemption]{
				Code: 512002,
				Msg:  "Coupon already used",
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/coupons/validate", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Redemption]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
			tc.after(t)
			s.TearDownTest()
		})
	}
}

func (s *HandlerTestSuite) TestApply() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		after    func(t *testing.T)
		req      web.CouponCodeReq
		wantCode int
		wantMsg  string
	}{
		{
			name: "核销成功落记录",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.AdminCoupon{
					Id:     1,
					Title:  "春季促销",
					Code:   "SPRING",
					Type:   "original",
					Status: 1,
				}).Error
				require.NoError(t, err)
			},
			after: func(t *testing.T) {
				var usage dao.CouponUsage
				err := s.db.First(&usage, "uid = ? AND family = ? AND coupon_id = ?",
					uid, "admin", 1).Error
				require.NoError(t, err)
				assert.True(t, usage.Ctime > 0)
			},
			req:      web.CouponCodeReq{CouponCode: "spring"},
			wantCode: 200,
			wantMsg:  "Coupon applied: 100% (Original)",
		},
		{
			name: "同码核销落在管理员命名空间",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.AdminCoupon{
					Id:     2,
					Title:  "管理员同码",
					Code:   "BOTH",
					Type:   "original",
					Status: 1,
				}).Error
				require.NoError(t, err)
				err = s.db.Create(&dao.TeacherCoupon{
					Id:        7,
					TeacherId: 999,
					Title:     "老师同码",
					Code:      "BOTH",
					Type:      "original",
					Status:    1,
				}).Error
				require.NoError(t, err)
			},
			after: func(t *testing.T) {
				var usage dao.CouponUsage
				err := s.db.First(&usage, "uid = ?", uid).Error
				require.NoError(t, err)
				assert.Equal(t, "admin", usage.Family)
				assert.Equal(t, int64(2), usage.CouponId)
			},
			req:      web.CouponCodeReq{CouponCode: "BOTH"},
			wantCode: 200,
			wantMsg:  "Coupon applied: 100% (Original)",
		},
		{
			name: "重复核销被唯一索引挡住",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.AdminCoupon{
					Id:     1,
					Title:  "春季促销",
					Code:   "SPRING",
					Type:   "original",
					Status: 1,
				}).Error
				require.NoError(t, err)
				err = s.db.Create(&dao.CouponUsage{
					Uid:      uid,
					Family:   "admin",
					CouponId: 1,
				}).Error
				require.NoError(t, err)
			},
			after:    func(t *testing.T) {},
			req:      web.CouponCodeReq{CouponCode: "SPRING"},
			wantCode: 400,
			wantMsg:  "Coupon already used",
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/coupons/apply", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Redemption]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			res := recorder.MustScan()
			if tc.wantCode == 200 {
				assert.Equal(t, tc.wantMsg, res.Data.Message)
			} else {
				assert.Equal(t, tc.wantMsg, res.Msg)
			}
			tc.after(t)
			s.TearDownTest()
		})
	}
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
