package handler

import (
	"net/http"
	"time"

	"hotpay/internal/model"

	"github.com/gin-gonic/gin"
)

// Register 注册全部API路由
func Register(r *gin.Engine) {
	merchantHandler := NewMerchantHandler()
	invoiceHandler := NewInvoiceHandler()
	paymentHandler := NewPaymentHandler()
	optionHandler := NewPaymentOptionHandler()

	api := r.Group("/api")
	{
		// 商户
		api.GET("/merchants", merchantHandler.List)
		api.GET("/merchants/:id", merchantHandler.Get)
		api.POST("/merchants", merchantHandler.Create)
		api.PATCH("/merchants/:id", merchantHandler.Update)
		api.DELETE("/merchants/:id", merchantHandler.Delete)

		// 发票
		api.GET("/invoices", invoiceHandler.List)
		api.GET("/invoices/:id", invoiceHandler.Get)
		api.POST("/invoices", invoiceHandler.Create)
		api.PATCH("/invoices/:id", invoiceHandler.Update)
		api.POST("/invoices/:id/mark-paid", invoiceHandler.MarkPaid)
		api.DELETE("/invoices/:id", invoiceHandler.Delete)

		// 支付记录
		api.GET("/payments", paymentHandler.List)
		api.POST("/payments", paymentHandler.Create)

		// 收款方式
		api.GET("/payment-options", optionHandler.List)
		api.POST("/payment-options", optionHandler.Create)
		api.PATCH("/payment-options/:id", optionHandler.Update)
		api.DELETE("/payment-options/:id", optionHandler.Delete)
	}

	// 健康检查 - 简单版本（用于负载均衡器）
	r.GET("/health", func(c *gin.Context) {
		if err := model.CheckDBHealth(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database connection failed",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// 健康检查 - 详细版本（用于监控系统）
	r.GET("/health/detail", func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   "1.0.0",
		}

		dbStatus := "ok"
		if err := model.CheckDBHealth(); err != nil {
			dbStatus = "error: " + err.Error()
			health["status"] = "degraded"
		}
		health["database"] = gin.H{
			"status": dbStatus,
			"stats":  model.GetDBStats(),
		}

		c.JSON(http.StatusOK, health)
	})
}
