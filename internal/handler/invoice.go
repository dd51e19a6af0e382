package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"hotpay/internal/model"
	"hotpay/internal/service"
	"hotpay/internal/util"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler 发票处理器
type InvoiceHandler struct{}

// NewInvoiceHandler 创建发票处理器
func NewInvoiceHandler() *InvoiceHandler {
	return &InvoiceHandler{}
}

// List 发票列表，支持 merchantId / status / q 过滤
func (h *InvoiceHandler) List(c *gin.Context) {
	var query model.InvoiceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		util.BadRequest(c, "Invalid query parameters")
		return
	}

	invoices, err := service.GetInvoiceService().List(&query)
	if err != nil {
		util.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// Get 查询单张发票
func (h *InvoiceHandler) Get(c *gin.Context) {
	invoice, err := service.GetInvoiceService().Get(c.Param("id"))
	if err != nil {
		util.RespondError(c, err, "Invoice")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// Create 创建发票
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req service.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := service.GetInvoiceService().Create(&req)
	if err != nil {
		util.RespondError(c, err, "Invoice")
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

// Update 部分更新发票
func (h *InvoiceHandler) Update(c *gin.Context) {
	var req service.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := service.GetInvoiceService().Update(c.Param("id"), &req)
	if err != nil {
		util.RespondError(c, err, "Invoice")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// MarkPaid 标记发票已支付，paidAt 由服务端写入
// 请求体可选：{"paidAt": "<RFC3339>"}，省略时取当前时间
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	var req struct {
		PaidAt    *string `json:"paidAt"`
		PaymentID *string `json:"paymentId"` // 兼容字段，接受但不使用
	}
	// 空请求体是合法的；分块传输时 ContentLength 为 -1，不能据此跳过解析
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		util.BadRequest(c, "Invalid request body")
		return
	}

	var paidAt *time.Time
	if req.PaidAt != nil && *req.PaidAt != "" {
		t, err := time.Parse(time.RFC3339, *req.PaidAt)
		if err != nil {
			util.Validation(c, "paidAt", "Invalid paidAt timestamp")
			return
		}
		paidAt = &t
	}

	invoice, err := service.GetInvoiceService().MarkPaid(c.Param("id"), paidAt)
	if err != nil {
		util.RespondError(c, err, "Invoice")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// Delete 删除发票（级联删除其支付记录）
func (h *InvoiceHandler) Delete(c *gin.Context) {
	removed, err := service.GetInvoiceService().Delete(c.Param("id"))
	if err != nil {
		util.ServerError(c, err)
		return
	}
	if !removed {
		util.NotFound(c, "Invoice")
		return
	}
	c.Status(http.StatusNoContent)
}
