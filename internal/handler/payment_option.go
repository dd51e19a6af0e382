package handler

import (
	"net/http"

	"hotpay/internal/service"
	"hotpay/internal/util"

	"github.com/gin-gonic/gin"
)

// PaymentOptionHandler 收款方式处理器
type PaymentOptionHandler struct{}

// NewPaymentOptionHandler 创建收款方式处理器
func NewPaymentOptionHandler() *PaymentOptionHandler {
	return &PaymentOptionHandler{}
}

// List 收款方式列表，支持 merchantId 过滤
func (h *PaymentOptionHandler) List(c *gin.Context) {
	options, err := service.GetPaymentOptionService().List(c.Query("merchantId"))
	if err != nil {
		util.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

// Create 创建收款方式
func (h *PaymentOptionHandler) Create(c *gin.Context) {
	var req service.CreatePaymentOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "Invalid request body")
		return
	}

	option, err := service.GetPaymentOptionService().Create(&req)
	if err != nil {
		util.RespondError(c, err, "Payment option")
		return
	}
	c.JSON(http.StatusCreated, option)
}

// Update 部分更新收款方式
func (h *PaymentOptionHandler) Update(c *gin.Context) {
	var req service.UpdatePaymentOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "Invalid request body")
		return
	}

	option, err := service.GetPaymentOptionService().Update(c.Param("id"), &req)
	if err != nil {
		util.RespondError(c, err, "Payment option")
		return
	}
	c.JSON(http.StatusOK, option)
}

// Delete 删除收款方式
func (h *PaymentOptionHandler) Delete(c *gin.Context) {
	removed, err := service.GetPaymentOptionService().Delete(c.Param("id"))
	if err != nil {
		util.ServerError(c, err)
		return
	}
	if !removed {
		util.NotFound(c, "Payment option")
		return
	}
	c.Status(http.StatusNoContent)
}
