package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	pb "github.com/Xausdorf/card-gateway/gen/pb"
	"github.com/Xausdorf/card-gateway/internal/domain/entity"
	"github.com/Xausdorf/card-gateway/internal/infrastructure/grpcclient"
)

var Version = "dev"

const callTimeout = 30 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:          "paymentctl",
		Short:        "Submit and inspect card payments through the gateway's gRPC API",
		Version:      Version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("addr", "localhost:50051", "gateway gRPC address")

	rootCmd.AddCommand(payCmd())
	rootCmd.AddCommand(getCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func payCmd() *cobra.Command {
	var req entity.PaymentRequest

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Submit a payment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd, func(ctx context.Context, c *grpcclient.Client) (*pb.Payment, error) {
				return c.PostPayment(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&req.CardNumber, "card", "", "card number")
	cmd.Flags().IntVar(&req.ExpiryMonth, "month", 0, "expiry month (1-12)")
	cmd.Flags().IntVar(&req.ExpiryYear, "year", 0, "expiry year (four digits)")
	cmd.Flags().StringVar(&req.Currency, "currency", "", "ISO 4217 currency code")
	cmd.Flags().Int64Var(&req.Amount, "amount", 0, "amount in minor units")
	cmd.Flags().StringVar(&req.CVV, "cvv", "", "card verification value")

	return cmd
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Fetch a payment by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *grpcclient.Client) (*pb.Payment, error) {
				return c.GetPayment(ctx, args[0])
			})
		},
	}
}

func withClient(cmd *cobra.Command, call func(context.Context, *grpcclient.Client) (*pb.Payment, error)) error {
	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return err
	}

	client, err := grpcclient.NewClient(addr)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
	defer cancel()

	p, err := call(ctx, client)
	if err != nil {
		st := status.Convert(err)
		return fmt.Errorf("%s: %s", st.Code(), st.Message())
	}

	out, err := protojson.MarshalOptions{Multiline: true, UseProtoNames: true, EmitUnpopulated: true}.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode payment: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
