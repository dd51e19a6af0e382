package handler

import (
	"errors"
	"net/http"

	"hotpay/internal/service"
	"hotpay/internal/util"

	"github.com/gin-gonic/gin"
)

// PaymentHandler 支付记录处理器
type PaymentHandler struct{}

// NewPaymentHandler 创建支付记录处理器
func NewPaymentHandler() *PaymentHandler {
	return &PaymentHandler{}
}

// List 支付记录列表，支持 invoiceId 过滤
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := service.GetPaymentService().List(c.Query("invoiceId"))
	if err != nil {
		util.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// Create 录入支付记录
// 发票不存在返回404（区别于参数校验400）
func (h *PaymentHandler) Create(c *gin.Context) {
	var req service.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "Invalid request body")
		return
	}

	payment, err := service.GetPaymentService().Create(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			util.NotFound(c, "Invoice")
			return
		}
		util.RespondError(c, err, "Payment")
		return
	}
	c.JSON(http.StatusCreated, payment)
}
