package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the HTTP surface. Everything under /api requires the
// gateway-forwarded principal header; /health and /metrics do not.
func NewRouter(
	paymentHandler *PaymentHandler,
	reviewHandler *ReviewHandler,
	storeHandler *StoreHandler) *gin.Engine {

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.Use(PrincipalMiddleware())

	payments := api.Group("/payments")
	{
		payments.POST("", paymentHandler.RegisterPayment)
		payments.GET("", paymentHandler.GetPayments)
		payments.POST("/search", paymentHandler.SearchPayments)
		payments.GET("/:paymentId", paymentHandler.GetPayment)
		payments.PATCH("/:paymentId/delete", paymentHandler.RemovePayment)
	}

	reviews := api.Group("/reviews")
	{
		reviews.POST("", reviewHandler.CreateReview)
		reviews.GET("/me", reviewHandler.GetMyReviews)
		reviews.PATCH("/:reviewId", reviewHandler.UpdateReview)
		reviews.PATCH("/:reviewId/delete", reviewHandler.DeleteReview)
	}

	stores := api.Group("/stores")
	{
		stores.GET("/search", storeHandler.SearchStores)
		stores.GET("/:storeId", storeHandler.GetStore)
		stores.GET("/:storeId/reviews", reviewHandler.SearchStoreReviews)
	}

	return router
}
