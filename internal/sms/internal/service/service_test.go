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

	"github.com/ecodeclub/ecourse/internal/sms/internal/client"
	clientmocks "github.com/ecodeclub/ecourse/internal/sms/internal/client/mocks"
	"github.com/ecodeclub/ecourse/internal/sms/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantRes string
	}{
		{
			name:    "纯数字不变",
			input:   "13800001111",
			wantRes: "13800001111",
		},
		{
			name:    "保留开头的加号",
			input:   "+8613800001111",
			wantRes: "+8613800001111",
		},
		{
			name:    "去掉空格和连字符",
			input:   "138 0000-1111",
			wantRes: "13800001111",
		},
		{
			name:    "去掉括号",
			input:   "(86) 138 0000 1111",
			wantRes: "8613800001111",
		},
		{
			name:    "加号不在开头算非法",
			input:   "86+13800001111",
			wantRes: "",
		},
		{
			name:    "带字母算非法",
			input:   "138abc",
			wantRes: "",
		},
		{
			name:    "空串",
			input:   "",
			wantRes: "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, NormalizePhone(tc.input))
		})
	}
}

func testConfig() Config {
	return Config{
		SignName:           "妙影科技",
		AcceptedTemplateID: "SMS_ACCEPT_001",
		RejectedTemplateID: "SMS_REJECT_001",
	}
}

func TestService_SendPaymentAccepted(t *testing.T) {
	t.Run("归一化手机号并走通过模板", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		c := clientmocks.NewMockClient(ctrl)
		c.EXPECT().Send(client.SendReq{
			PhoneNumbers: []string{"13800001111"},
			SignName:     "妙影科技",
			TemplateID:   "SMS_ACCEPT_001",
			TemplateParam: map[string]string{
				"course": "Go 进阶",
			},
		}).Return(client.SendResp{RequestID: "req-1"}, nil)

		svc := NewService(c, testConfig())
		res, err := svc.SendPaymentAccepted(context.Background(), "138 0000-1111", "Go 进阶")
		require.NoError(t, err)
		assert.Equal(t, domain.SendResult{Sent: true, RequestID: "req-1"}, res)
	})

	t.Run("网关报错只带原因回去", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		c := clientmocks.NewMockClient(ctrl)
		c.EXPECT().Send(gomock.Any()).
			Return(client.SendResp{}, errors.New("mock: gateway timeout"))

		svc := NewService(c, testConfig())
		res, err := svc.SendPaymentAccepted(context.Background(), "13800001111", "Go 进阶")
		require.NoError(t, err)
		assert.False(t, res.Sent)
		assert.Equal(t, "mock: gateway timeout", res.Reason)
	})

	t.Run("手机号归一化后为空是调用方错误", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := NewService(clientmocks.NewMockClient(ctrl), testConfig())
		_, err := svc.SendPaymentAccepted(context.Background(), "abc", "Go 进阶")
		assert.ErrorIs(t, err, ErrPhoneRequired)
	})
}

func TestService_SendPaymentRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := clientmocks.NewMockClient(ctrl)
	c.EXPECT().Send(gomock.Any()).
		DoAndReturn(func(req client.SendReq) (client.SendResp, error) {
			assert.Equal(t, "SMS_REJECT_001", req.TemplateID)
			return client.SendResp{RequestID: "req-2"}, nil
		})

	svc := NewService(c, testConfig())
	res, err := svc.SendPaymentRejected(context.Background(), "13800001111", "Go 进阶")
	require.NoError(t, err)
	assert.Equal(t, domain.SendResult{Sent: true, RequestID: "req-2"}, res)
}
