package grpcclient

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/Xausdorf/card-gateway/gen/pb"
	"github.com/Xausdorf/card-gateway/internal/domain/entity"
)

// Client calls the PaymentGateway service. Extra dial options are appended after the
// insecure transport credentials.
type Client struct {
	client pb.PaymentGatewayClient
	conn   *grpc.ClientConn
}

func NewClient(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return &Client{
		client: pb.NewPaymentGatewayClient(conn),
		conn:   conn,
	}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) PostPayment(ctx context.Context, req entity.PaymentRequest) (*pb.Payment, error) {
	return c.client.PostPayment(ctx, &pb.PostPaymentRequest{
		CardNumber:  req.CardNumber,
		ExpiryMonth: int64(req.ExpiryMonth),
		ExpiryYear:  int64(req.ExpiryYear),
		Currency:    req.Currency,
		Amount:      req.Amount,
		Cvv:         req.CVV,
	})
}

func (c *Client) GetPayment(ctx context.Context, id string) (*pb.Payment, error) {
	return c.client.GetPayment(ctx, &pb.GetPaymentRequest{Id: id})
}
