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

package sms

import (
	"github.com/ecodeclub/ecourse/internal/sms/internal/client"
	"github.com/ecodeclub/ecourse/internal/sms/internal/domain"
	"github.com/ecodeclub/ecourse/internal/sms/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

type (
	Service    = service.Service
	SendResult = domain.SendResult
)

var ErrPhoneRequired = service.ErrPhoneRequired

type Config struct {
	Provider        string         `yaml:"provider"`
	AccessKeyID     string         `yaml:"accessKeyId"`
	AccessKeySecret string         `yaml:"accessKeySecret"`
	Template        service.Config `yaml:"template"`
}

type Module struct {
	Svc Service
}

// InitModule 密钥没配齐就降级到控制台输出，不会让进程起不来
func InitModule(cfg Config) *Module {
	return &Module{Svc: service.NewService(newClient(cfg), cfg.Template)}
}

func newClient(cfg Config) client.Client {
	if cfg.Provider != "aliyun" || cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" {
		return client.NewConsoleClient()
	}
	c, err := client.NewAliyunSMS(cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		elog.DefaultLogger.Error("初始化阿里云短信客户端失败，降级到控制台输出", elog.FieldErr(err))
		return client.NewConsoleClient()
	}
	return c
}
