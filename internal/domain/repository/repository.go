package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Xausdorf/card-gateway/internal/domain/entity"
	"github.com/Xausdorf/card-gateway/internal/domain/result"
)

// PaymentRepository must be safe for concurrent use. Insert fails with an internal error
// when the id is already present and leaves the stored payment untouched.
type PaymentRepository interface {
	Insert(ctx context.Context, payment *entity.Payment) result.Result[result.Unit]
	FindByID(ctx context.Context, id uuid.UUID) result.Result[*entity.Payment]
}
