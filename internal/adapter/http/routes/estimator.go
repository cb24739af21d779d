package routes

import (
	"cctv_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathPricing   = "/pricing"
	PathContact   = "/contact"
)

// addStorefrontRoutes registers the public, unauthenticated endpoints.
func addStorefrontRoutes(rg *gin.RouterGroup, estimatorHandler *handlers.EstimatorHandler, pricingHandler *handlers.PricingHandler, inquiryHandler *handlers.InquiryHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("/calculate", estimatorHandler.Calculate)
		estimates.POST("/submit", estimatorHandler.Submit)
		estimates.POST("/export", estimatorHandler.Export)
	}

	rg.GET(PathPricing, pricingHandler.GetPriceTable)
	rg.POST(PathContact, inquiryHandler.SubmitContact)
}
