package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/Xausdorf/card-gateway/gen/pb"
	grpchandler "github.com/Xausdorf/card-gateway/internal/delivery/grpc"
	httpdelivery "github.com/Xausdorf/card-gateway/internal/delivery/http"
	"github.com/Xausdorf/card-gateway/internal/infrastructure/bankclient"
	"github.com/Xausdorf/card-gateway/internal/infrastructure/config"
	"github.com/Xausdorf/card-gateway/internal/infrastructure/logging"
	"github.com/Xausdorf/card-gateway/internal/infrastructure/memory"
	"github.com/Xausdorf/card-gateway/internal/infrastructure/metrics"
	"github.com/Xausdorf/card-gateway/internal/infrastructure/qrgenerator"
	"github.com/Xausdorf/card-gateway/internal/usecase/payment"
	"github.com/Xausdorf/card-gateway/internal/usecase/receipt"
)

const (
	readHeaderTimeout     = 5 * time.Second
	gracefulShutdownDelay = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	bank, err := bankclient.NewClient(cfg.BankURL,
		bankclient.WithTimeout(cfg.BankTimeout),
		bankclient.WithObserver(m),
	)
	if err != nil {
		return fmt.Errorf("init bank client: %w", err)
	}

	qrGen, err := qrgenerator.NewGenerator(cfg.ReceiptQRSize)
	if err != nil {
		return fmt.Errorf("init qr generator: %w", err)
	}

	payments := memory.NewPaymentRepository()
	paymentUC := payment.NewUseCase(bank, payments, payment.WithObserver(m))
	receiptUC := receipt.NewUseCase(payments, qrGen)

	router := httpdelivery.NewRouter(
		httpdelivery.NewHandler(paymentUC, receiptUC),
		logger,
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	)
	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterPaymentGatewayServer(grpcSrv, grpchandler.NewHandler(paymentUC))
	healthSrv := health.NewServer()
	healthSrv.SetServingStatus(pb.PaymentGateway_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	reflection.Register(grpcSrv)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPCAddr, err)
	}

	errCh := make(chan error, 2)

	go func() {
		logger.Info("http_server_starting", zap.String("addr", cfg.HTTPAddr))
		if serveErr := httpSrv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http serve: %w", serveErr)
		}
	}()

	go func() {
		logger.Info("grpc_server_starting", zap.String("addr", cfg.GRPCAddr))
		if serveErr := grpcSrv.Serve(lis); serveErr != nil {
			errCh <- fmt.Errorf("grpc serve: %w", serveErr)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
		logger.Error("server_failed", zap.Error(runErr))
	}

	logger.Info("shutting_down")
	healthSrv.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http_shutdown_failed", zap.Error(err))
	}
	grpcSrv.GracefulStop()

	return runErr
}
