package bank

import (
	"context"

	"github.com/Xausdorf/card-gateway/internal/domain/entity"
	"github.com/Xausdorf/card-gateway/internal/domain/result"
)

// Authorization is the bank's decision. AuthorizationCode is empty unless Authorized.
type Authorization struct {
	Authorized        bool
	AuthorizationCode string
}

func Authorized(code string) Authorization {
	return Authorization{Authorized: true, AuthorizationCode: code}
}

func Declined() Authorization {
	return Authorization{}
}

type Gateway interface {
	Authorize(ctx context.Context, req *entity.ValidatedPaymentRequest) result.Result[Authorization]
}
