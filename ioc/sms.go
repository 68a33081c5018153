package ioc

import (
	"github.com/ecodeclub/ecourse/internal/sms"
	"github.com/gotomicro/ego/core/econf"
)

func InitSMSModule() *sms.Module {
	var cfg sms.Config
	err := econf.UnmarshalKey("sms", &cfg)
	if err != nil {
		panic(err)
	}
	return sms.InitModule(cfg)
}
