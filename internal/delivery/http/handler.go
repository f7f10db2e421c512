package http //nolint:revive // directory-based package name, imported with alias

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xausdorf/card-gateway/internal/domain/apperror"
	"github.com/Xausdorf/card-gateway/internal/domain/entity"
	"github.com/Xausdorf/card-gateway/internal/infrastructure/logging"
	"github.com/Xausdorf/card-gateway/internal/usecase/payment"
	"github.com/Xausdorf/card-gateway/internal/usecase/receipt"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	paymentUC *payment.UseCase
	receiptUC *receipt.UseCase
}

func NewHandler(paymentUC *payment.UseCase, receiptUC *receipt.UseCase) *Handler {
	return &Handler{
		paymentUC: paymentUC,
		receiptUC: receiptUC,
	}
}

type PostPaymentRequest struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	Currency    string `json:"currency"`
	Amount      int64  `json:"amount"`
	CVV         string `json:"cvv"`
}

// PaymentResponse is returned by both create and retrieve.
type PaymentResponse struct {
	ID                 string `json:"id"`
	Status             string `json:"status"`
	CardNumberLastFour string `json:"card_number_last_four"`
	ExpiryMonth        int    `json:"expiry_month"`
	ExpiryYear         int    `json:"expiry_year"`
	Currency           string `json:"currency"`
	Amount             int64  `json:"amount"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) HandlePostPayment(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	var req PostPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return
	}

	p, appErr := h.paymentUC.PostPayment(r.Context(), entity.PaymentRequest{
		CardNumber:  req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		Currency:    req.Currency,
		Amount:      req.Amount,
		CVV:         req.CVV,
	}).Unwrap()
	if appErr != nil {
		writeError(w, r, appErr)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) HandleGetPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := paymentID(r)
	if !ok {
		writeError(w, r, apperror.PaymentNotFound())
		return
	}

	p, appErr := h.paymentUC.GetPayment(r.Context(), id).Unwrap()
	if appErr != nil {
		writeError(w, r, appErr)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) HandleReceipt(w http.ResponseWriter, r *http.Request) {
	id, ok := paymentID(r)
	if !ok {
		writeError(w, r, apperror.PaymentNotFound())
		return
	}

	png, appErr := h.receiptUC.Execute(r.Context(), id).Unwrap()
	if appErr != nil {
		writeError(w, r, appErr)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(png)
}

func (h *Handler) HandleLive(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func paymentID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func toResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID().String(),
		Status:             string(p.Status()),
		CardNumberLastFour: p.CardLastFour(),
		ExpiryMonth:        p.ExpiryMonth(),
		ExpiryYear:         p.ExpiryYear(),
		Currency:           p.Currency().String(),
		Amount:             p.Amount(),
	}
}

func statusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindSubServiceUnavailable:
		return http.StatusServiceUnavailable
	case apperror.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, appErr *apperror.Error) {
	status := statusFor(appErr.Kind)
	if status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("request_failed",
			zap.String("kind", appErr.Kind.String()),
			zap.String("error", appErr.Description),
		)
	}
	writeJSON(w, status, ErrorResponse{Error: appErr.Description})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
