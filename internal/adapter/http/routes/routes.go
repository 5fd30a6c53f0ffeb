package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "orcamentos_arq/docs"
	"orcamentos_arq/internal/adapter/http/handlers"
	"orcamentos_arq/internal/adapter/http/middleware"
	"orcamentos_arq/internal/adapter/persistence/repository"
	"orcamentos_arq/internal/config"
	"orcamentos_arq/internal/domain/pricing"
	"orcamentos_arq/internal/infrastructure/database"
	"orcamentos_arq/internal/infrastructure/export"
	"orcamentos_arq/internal/infrastructure/metrics"
	"orcamentos_arq/internal/infrastructure/payments"
	"orcamentos_arq/internal/usecase"
	"orcamentos_arq/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router serves.
type Handlers struct {
	Calculation *handlers.CalculationHandler
	Estimate    *handlers.EstimateHandler
	Payment     *handlers.BillingPaymentHandler
}

// NewRouter builds the gin engine with middlewares, swagger, /metrics and the v1 API.
func NewRouter(h Handlers, recorder *metrics.Recorder, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Metrics(recorder))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(recorder.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCalculationRoutes(v1, h.Calculation)
	addBillingRoutes(v1, h.Estimate, h.Payment)

	return router
}

// Run wires the dependencies from cfg and serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	gin.SetMode(cfg.GinMode)

	recorder := metrics.NewWithDefaultCollectors()
	h, err := buildHandlers(ctx, cfg, recorder, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           NewRouter(h, recorder, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func buildHandlers(ctx context.Context, cfg *config.Config, recorder *metrics.Recorder, log *zap.Logger) (Handlers, error) {
	tables, err := pricing.LoadTables(cfg.PricingTablesFile)
	if err != nil {
		return Handlers{}, fmt.Errorf("load pricing tables: %w", err)
	}
	calculator, err := pricing.NewCalculator(tables)
	if err != nil {
		return Handlers{}, fmt.Errorf("build calculator: %w", err)
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return Handlers{}, err
	}
	estimateRepo := repository.NewEstimateDynamoRepository(ddb, cfg.EstimatesTable)
	paymentRepo := repository.NewBillingPaymentDynamoRepository(ddb, cfg.PaymentsTable)

	calculationUseCase := usecase.NewCalculationUseCase(calculator, recorder, log.Named("calculation"))
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, calculationUseCase, export.NewWorkbookExporter(), log.Named("estimate"))

	// A missing token leaves payments unavailable without stopping the service.
	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, log)
	if err != nil {
		log.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewBillingPaymentUseCase(paymentRepo, estimateRepo, paymentGateway, usecase.PaymentOptions{
		MockMode:       cfg.PaymentGatewayMock,
		TestPayerEmail: cfg.MercadoPagoTestPayer,
	}, log.Named("payment"))

	return Handlers{
		Calculation: handlers.NewCalculationHandler(calculationUseCase, log),
		Estimate:    handlers.NewEstimateHandler(estimateUseCase, log),
		Payment:     handlers.NewBillingPaymentHandler(paymentUseCase, cfg.PaymentGatewayMock, log),
	}, nil
}
