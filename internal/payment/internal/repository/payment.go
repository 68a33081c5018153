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

package repository

import (
	"context"

	"github.com/ecodeclub/ecourse/internal/payment/internal/domain"
	"github.com/ecodeclub/ecourse/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var ErrPaymentNotFound = dao.ErrPaymentNotFound

//go:generate mockgen -source=./payment.go -destination=../../mocks/payment_repo.mock.go -package=paymentmocks -typed PaymentRepository
type PaymentRepository interface {
	FindPendingByID(ctx context.Context, id int64) (domain.PaymentRequest, error)
	MarkAccepted(ctx context.Context, id, reviewedBy int64) error
	MarkRejected(ctx context.Context, id, reviewedBy int64) error
	List(ctx context.Context, q Query) ([]domain.PaymentRequest, error)
	Count(ctx context.Context, q Query) (int64, error)
}

type Query struct {
	Offset int
	Limit  int
	Status domain.Status
	Search string
}

type paymentRepository struct {
	dao dao.PaymentDAO
}

func NewRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{dao: d}
}

func (r *paymentRepository) FindPendingByID(ctx context.Context, id int64) (domain.PaymentRequest, error) {
	pr, err := r.dao.FindPendingByID(ctx, id)
	if err != nil {
		return domain.PaymentRequest{}, err
	}
	return r.toDomain(pr), nil
}

func (r *paymentRepository) MarkAccepted(ctx context.Context, id, reviewedBy int64) error {
	return r.dao.MarkAccepted(ctx, id, reviewedBy)
}

func (r *paymentRepository) MarkRejected(ctx context.Context, id, reviewedBy int64) error {
	return r.dao.MarkRejected(ctx, id, reviewedBy)
}

func (r *paymentRepository) List(ctx context.Context, q Query) ([]domain.PaymentRequest, error) {
	prs, err := r.dao.List(ctx, r.toQuery(q))
	if err != nil {
		return nil, err
	}
	return slice.Map(prs, func(idx int, src dao.PaymentRequestDetail) domain.PaymentRequest {
		return r.toDomain(src)
	}), nil
}

func (r *paymentRepository) Count(ctx context.Context, q Query) (int64, error) {
	return r.dao.Count(ctx, r.toQuery(q))
}

func (r *paymentRepository) toQuery(q Query) dao.Query {
	return dao.Query{
		Offset: q.Offset,
		Limit:  q.Limit,
		Status: q.Status.ToUint8(),
		Search: q.Search,
	}
}

func (r *paymentRepository) toDomain(pr dao.PaymentRequestDetail) domain.PaymentRequest {
	return domain.PaymentRequest{
		ID:            pr.Id,
		CourseID:      pr.CourseId,
		UID:           pr.Uid,
		PaymentMethod: pr.PaymentMethod,
		SenderPhone:   pr.SenderPhone,
		TransactionID: pr.TransactionId,
		Amount:        pr.Amount,
		Currency:      pr.Currency,
		CouponCode:    pr.CouponCode,
		InviteCode:    pr.InviteCode,
		Status:        domain.Status(pr.Status),
		ReviewedAt:    pr.ReviewedAt,
		ReviewedBy:    pr.ReviewedBy,
		Ctime:         pr.Ctime,
		Utime:         pr.Utime,
		CourseTitle:   pr.CourseTitle,
		UserEmail:     pr.UserEmail,
		UserNickname:  pr.UserNickname,
	}
}
