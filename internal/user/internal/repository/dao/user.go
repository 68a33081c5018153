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

package dao

import (
	"context"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrUserNotFound = gorm.ErrRecordNotFound

type UserDAO interface {
	FindByID(ctx context.Context, id int64) (User, error)
}

type gormUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &gormUserDAO{db: db}
}

func (g *gormUserDAO) FindByID(ctx context.Context, id int64) (User, error) {
	var res User
	err := g.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

// User 账号主体由独立的认证服务维护，这里只读
type User struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:用户自增ID"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_user_email;comment:邮箱"`
	Nickname string `gorm:"type:varchar(128);comment:昵称"`
	Phone    string `gorm:"type:varchar(32);comment:手机号"`
	Ctime    int64
	Utime    int64
}
