package qrgenerator

import (
	"encoding/json"
	"errors"
	"fmt"

	qr "github.com/skip2/go-qrcode"

	"github.com/Xausdorf/card-gateway/internal/domain/receipt"
)

const DefaultSize = 256

var ErrInvalidSize = errors.New("qr size must be positive")

type Option func(*Generator)

// WithRecoveryLevel sets the error correction level of produced codes.
func WithRecoveryLevel(level qr.RecoveryLevel) Option {
	return func(g *Generator) {
		g.level = level
	}
}

// Generator renders receipt data as a square PNG QR code.
type Generator struct {
	size  int
	level qr.RecoveryLevel
}

func NewGenerator(size int, opts ...Option) (*Generator, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	g := &Generator{size: size, level: qr.Medium}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Generator) Generate(data receipt.Data) ([]byte, error) {
	content, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal receipt: %w", err)
	}
	png, err := qr.Encode(string(content), g.level, g.size)
	if err != nil {
		return nil, fmt.Errorf("encode receipt %s: %w", data.PaymentID, err)
	}
	return png, nil
}
