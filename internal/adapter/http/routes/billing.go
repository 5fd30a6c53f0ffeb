package routes

import (
	"orcamentos_arq/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCalculations = "/calculations"
	PathEstimates    = "/estimates"
	PathPayments     = "/payments"
	PathPing         = "/ping"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addCalculationRoutes(rg *gin.RouterGroup, calculationHandler *handlers.CalculationHandler) {
	rg.POST(PathCalculations, calculationHandler.Calculate)
}

func addBillingRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, paymentHandler *handlers.BillingPaymentHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		// Status changes address the estimate by project.
		estimates.PATCH("/approve", estimateHandler.ApproveEstimate)
		estimates.PATCH("/reject", estimateHandler.RejectEstimate)
		estimates.PATCH("/cancel", estimateHandler.CancelEstimate)

		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PATCH("/:id/recalculate", estimateHandler.RecalculateEstimate)
		estimates.GET("/:id/export", estimateHandler.ExportEstimate)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:estimate_id", paymentHandler.CreatePaymentByEstimateID)
		payments.GET("/:estimate_id", paymentHandler.GetPaymentByEstimateID)
		payments.GET("/:estimate_id/:payment_id", paymentHandler.GetPayment)
	}
}
