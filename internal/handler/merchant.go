package handler

import (
	"net/http"

	"hotpay/internal/service"
	"hotpay/internal/util"

	"github.com/gin-gonic/gin"
)

// MerchantHandler 商户处理器
type MerchantHandler struct{}

// NewMerchantHandler 创建商户处理器
func NewMerchantHandler() *MerchantHandler {
	return &MerchantHandler{}
}

// List 商户列表
func (h *MerchantHandler) List(c *gin.Context) {
	merchants, err := service.GetMerchantService().List()
	if err != nil {
		util.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, merchants)
}

// Get 查询单个商户
func (h *MerchantHandler) Get(c *gin.Context) {
	merchant, err := service.GetMerchantService().Get(c.Param("id"))
	if err != nil {
		util.RespondError(c, err, "Merchant")
		return
	}
	c.JSON(http.StatusOK, merchant)
}

// Create 创建商户
func (h *MerchantHandler) Create(c *gin.Context) {
	var req service.CreateMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "Invalid request body")
		return
	}

	merchant, err := service.GetMerchantService().Create(&req)
	if err != nil {
		util.RespondError(c, err, "Merchant")
		return
	}
	c.JSON(http.StatusCreated, merchant)
}

// Update 部分更新商户
func (h *MerchantHandler) Update(c *gin.Context) {
	var req service.UpdateMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "Invalid request body")
		return
	}

	merchant, err := service.GetMerchantService().Update(c.Param("id"), &req)
	if err != nil {
		util.RespondError(c, err, "Merchant")
		return
	}
	c.JSON(http.StatusOK, merchant)
}

// Delete 删除商户（级联删除发票、支付记录和收款方式）
func (h *MerchantHandler) Delete(c *gin.Context) {
	removed, err := service.GetMerchantService().Delete(c.Param("id"))
	if err != nil {
		util.ServerError(c, err)
		return
	}
	if !removed {
		util.NotFound(c, "Merchant")
		return
	}
	c.Status(http.StatusNoContent)
}
