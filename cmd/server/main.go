package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/QuangTung97/customer-ban/config"
	"github.com/QuangTung97/customer-ban/pkg/grpclib"
	"github.com/QuangTung97/customer-ban/pkg/otellib"
	"github.com/QuangTung97/customer-ban/service/ban"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/go-sql-driver/mysql"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const serviceName = "customer-ban"

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()

	tracerProvider, shutdown := otellib.InitOtel(serviceName, conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	app := newApplication(conf, logger)
	defer app.close()

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(grpclib.RecoveryHandlerFunc)),
			grpc_ctxtags.UnaryServerInterceptor(),
			grpc_prometheus.UnaryServerInterceptor,

			otellib.UnaryServerInterceptor(tracerProvider),
			otellib.SetTraceInfoInterceptor(logger),

			grpc_zap.UnaryServerInterceptor(logger),
		),
		grpc.ChainStreamInterceptor(
			grpc_recovery.StreamServerInterceptor(),
			grpc_ctxtags.StreamServerInterceptor(),
			grpc_prometheus.StreamServerInterceptor,
			grpc_zap.StreamServerInterceptor(logger),
		),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)

	grpc_prometheus.EnableHandlingTimeHistogram()
	grpc_prometheus.Register(grpcServer)

	service := ban.NewIServiceWrapper(app.coordinator, tracerProvider.Tracer("server"), "service::")
	adminServer := ban.NewServer(service, app.dispatcher, logger)

	if conf.Sweep.Enabled {
		if err := app.sweeper.Start(); err != nil {
			panic(err)
		}
	}

	startHTTPAndGRPCServers(conf, logger, grpcServer, adminServer, func(ctx context.Context) {
		healthServer.Shutdown()

		if err := app.sweeper.Shutdown(); err != nil {
			logger.Error("shutdown sweeper", zap.Error(err))
		}
		if err := app.notifier.Shutdown(ctx); err != nil {
			logger.Error("shutdown notifier", zap.Error(err))
		}
	})
}

func runSweep() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()

	app := newApplication(conf, logger)
	defer app.close()

	result, err := app.sweeper.RunOnce(context.Background())
	if err != nil {
		logger.Error("sweep failed", zap.Error(err))
	}
	fmt.Printf("SKIPPED: %v, EXPIRED: %d, FAILED: %d\n", result.Skipped, result.Expired, result.Failed)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.notifier.Shutdown(ctx); err != nil {
		logger.Error("shutdown notifier", zap.Error(err))
	}
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
		sweepCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func sweepCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "expire due bans once",
		Run: func(cmd *cobra.Command, args []string) {
			runSweep()
		},
	}
}

func startHTTPAndGRPCServers(
	conf config.Config, logger *zap.Logger,
	grpcServer *grpc.Server, adminServer *ban.Server,
	beforeStop func(ctx context.Context),
) {
	logger.Info("listening",
		zap.String("grpc", conf.Server.GRPC.ListenString()),
		zap.String("http", conf.Server.HTTP.ListenString()),
	)

	mux := runtime.NewServeMux()
	if err := adminServer.Register(mux); err != nil {
		panic(err)
	}

	httpMux := http.NewServeMux()
	httpMux.Handle("/metrics", promhttp.Handler())
	httpMux.Handle("/", mux)

	httpServer := &http.Server{
		Addr:              conf.Server.HTTP.ListenString(),
		Handler:           httpMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		logger.Info("Shutdown HTTP server successfully")
	}()

	go func() {
		defer wg.Done()

		listener, err := net.Listen("tcp", conf.Server.GRPC.ListenString())
		if err != nil {
			panic(err)
		}

		err = grpcServer.Serve(listener)
		if err != nil {
			panic(err)
		}
		logger.Info("Shutdown gRPC server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	grpcServer.GracefulStop()
	err := httpServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	wg.Wait()

	beforeStop(ctx)
}
