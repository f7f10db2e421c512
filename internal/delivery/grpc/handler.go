package grpc

import (
	"context"
	"math"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/Xausdorf/card-gateway/gen/pb"
	"github.com/Xausdorf/card-gateway/internal/domain/apperror"
	"github.com/Xausdorf/card-gateway/internal/domain/entity"
	"github.com/Xausdorf/card-gateway/internal/usecase/payment"
)

type Handler struct {
	pb.UnimplementedPaymentGatewayServer

	paymentUC *payment.UseCase
}

func NewHandler(paymentUC *payment.UseCase) *Handler {
	return &Handler{paymentUC: paymentUC}
}

func (h *Handler) PostPayment(ctx context.Context, req *pb.PostPaymentRequest) (*pb.Payment, error) {
	p, appErr := h.paymentUC.PostPayment(ctx, entity.PaymentRequest{
		CardNumber:  req.GetCardNumber(),
		ExpiryMonth: narrow(req.GetExpiryMonth()),
		ExpiryYear:  narrow(req.GetExpiryYear()),
		Currency:    req.GetCurrency(),
		Amount:      req.GetAmount(),
		CVV:         req.GetCvv(),
	}).Unwrap()
	if appErr != nil {
		return nil, toStatus(appErr)
	}
	return toMessage(p), nil
}

func (h *Handler) GetPayment(ctx context.Context, req *pb.GetPaymentRequest) (*pb.Payment, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, toStatus(apperror.PaymentNotFound())
	}

	p, appErr := h.paymentUC.GetPayment(ctx, id).Unwrap()
	if appErr != nil {
		return nil, toStatus(appErr)
	}
	return toMessage(p), nil
}

// narrow maps values that do not fit in int to -1, which the validator rejects as out of range.
func narrow(v int64) int {
	if v < math.MinInt || v > math.MaxInt {
		return -1
	}
	return int(v)
}

func toMessage(p *entity.Payment) *pb.Payment {
	return &pb.Payment{
		Id:                 p.ID().String(),
		Status:             mapStatus(p.Status()),
		CardNumberLastFour: p.CardLastFour(),
		ExpiryMonth:        int64(p.ExpiryMonth()),
		ExpiryYear:         int64(p.ExpiryYear()),
		Currency:           p.Currency().String(),
		Amount:             p.Amount(),
	}
}

func mapStatus(s entity.PaymentStatus) pb.PaymentStatus {
	switch s {
	case entity.StatusAuthorized:
		return pb.PaymentStatus_PAYMENT_STATUS_AUTHORIZED
	case entity.StatusDeclined:
		return pb.PaymentStatus_PAYMENT_STATUS_DECLINED
	default:
		return pb.PaymentStatus_PAYMENT_STATUS_UNSPECIFIED
	}
}

func toStatus(appErr *apperror.Error) error {
	return status.Error(codeFor(appErr.Kind), appErr.Description)
}

func codeFor(kind apperror.Kind) codes.Code {
	switch kind {
	case apperror.KindValidation:
		return codes.InvalidArgument
	case apperror.KindNotFound:
		return codes.NotFound
	case apperror.KindSubServiceUnavailable:
		return codes.Unavailable
	case apperror.KindInternal:
		return codes.Internal
	default:
		return codes.Internal
	}
}
