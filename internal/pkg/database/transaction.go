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

package database

import (
	"context"

	"github.com/ego-component/egorm"
)

type txKey struct{}

// Transactor 把多个 DAO 的写操作包进同一个数据库事务里
// fn 内部通过 TxFromContext 拿到事务句柄，fn 返回 error 则整体回滚
//
//go:generate mockgen -source=./transaction.go -destination=./mocks/transaction.mock.go -package=databasemocks -typed Transactor
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type gormTransactor struct {
	db *egorm.Component
}

func NewGormTransactor(db *egorm.Component) Transactor {
	return &gormTransactor{db: db}
}

func (g *gormTransactor) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// TxFromContext 返回 ctx 中的事务句柄，没有事务时退回 db 本身
func TxFromContext(ctx context.Context, db *egorm.Component) *egorm.Component {
	if tx, ok := ctx.Value(txKey{}).(*egorm.Component); ok {
		return tx
	}
	return db
}
