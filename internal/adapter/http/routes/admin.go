package routes

import (
	"cctv_estimator/internal/adapter/http/handlers"
	"cctv_estimator/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, sessions *middleware.SessionManager, adminHandler *handlers.AdminHandler, pricingHandler *handlers.PricingHandler, inquiryHandler *handlers.InquiryHandler) {
	admin := rg.Group(PathAdmin)
	admin.POST("/login", adminHandler.Login)
	admin.POST("/logout", adminHandler.Logout)
	admin.GET("/session", adminHandler.Session)

	protected := admin.Group("", sessions.RequireAdmin())
	{
		protected.GET("/pricing", pricingHandler.GetPriceTable)
		protected.PUT("/pricing", pricingHandler.PutPriceTable)
		protected.GET("/pricing/fields", pricingHandler.GetPriceFields)
		protected.PUT("/pricing/fields", pricingHandler.PutPriceFields)
		protected.POST("/pricing/reset", pricingHandler.ResetPriceTable)

		protected.GET("/inquiries", inquiryHandler.ListInquiries)
		protected.GET("/inquiries/stream", inquiryHandler.StreamInquiries)
		protected.PATCH("/inquiries/:id/status", inquiryHandler.UpdateStatus)
		protected.DELETE("/inquiries/:id", inquiryHandler.DeleteInquiry)
	}
}
