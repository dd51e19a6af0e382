package service

import (
	"strings"
	"time"

	"hotpay/internal/model"
	"hotpay/internal/util"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceService 发票服务
type InvoiceService struct{}

var invoiceService *InvoiceService

// GetInvoiceService 获取发票服务
func GetInvoiceService() *InvoiceService {
	if invoiceService == nil {
		invoiceService = &InvoiceService{}
	}
	return invoiceService
}

// CreateInvoiceRequest 创建发票请求
// 金额只接受十进制字符串，不接受JSON数字
type CreateInvoiceRequest struct {
	MerchantID  string         `json:"merchantId"`
	Status      string         `json:"status"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	Currency    string         `json:"currency"`
	Amount      string         `json:"amount"`
	Memo        *string        `json:"memo"`
	Metadata    model.Metadata `json:"metadata"`
	ExpiresAt   *time.Time     `json:"expiresAt"`
}

// UpdateInvoiceRequest 部分更新发票请求，nil 字段保持不变
// paidAt 不可通过通用更新路径写入，只能走 MarkPaid
type UpdateInvoiceRequest struct {
	MerchantID  *string         `json:"merchantId"`
	Status      *string         `json:"status"`
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Currency    *string         `json:"currency"`
	Amount      *string         `json:"amount"`
	Memo        *string         `json:"memo"`
	Metadata    *model.Metadata `json:"metadata"`
	ExpiresAt   *time.Time      `json:"expiresAt"`
}

// List 查询发票列表
// 过滤条件AND组合；q 对标题和描述做大小写不敏感的子串匹配
// 按创建时间倒序，新的在前
func (s *InvoiceService) List(query *model.InvoiceQuery) ([]model.Invoice, error) {
	db := model.GetDB().Model(&model.Invoice{})

	if query.MerchantID != "" {
		db = db.Where("merchant_id = ?", query.MerchantID)
	}
	if query.Status != "" {
		// 状态过滤不校验词表，原样透传
		db = db.Where("status = ?", query.Status)
	}
	if query.Q != "" {
		pattern := "%" + strings.ToLower(query.Q) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var invoices []model.Invoice
	if err := db.Order("created_at DESC").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Get 按ID查询发票
func (s *InvoiceService) Get(id string) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := model.GetDB().First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Create 创建发票
func (s *InvoiceService) Create(req *CreateInvoiceRequest) (*model.Invoice, error) {
	if req.MerchantID == "" {
		return nil, util.NewValidationError("merchantId", "Merchant id is required")
	}
	if req.Title == "" {
		return nil, util.NewValidationError("title", "Title is required")
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.InvoiceStatusUnpaid
	} else if !model.IsValidInvoiceStatus(status) {
		return nil, util.NewValidationError("status", "Invalid invoice status")
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	metadata := req.Metadata
	if metadata == nil {
		metadata = model.Metadata{}
	}

	invoice := model.Invoice{
		MerchantID:  req.MerchantID,
		Status:      status,
		Title:       req.Title,
		Description: req.Description,
		Currency:    currency,
		Amount:      amount,
		Memo:        req.Memo,
		Metadata:    metadata,
		ExpiresAt:   req.ExpiresAt,
	}
	if err := model.GetDB().Create(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Update 部分更新发票
// 不限制状态转换：任意状态都可以直接设置，包括 paid -> draft
func (s *InvoiceService) Update(id string, req *UpdateInvoiceRequest) (*model.Invoice, error) {
	updates := map[string]interface{}{}
	if req.MerchantID != nil {
		if *req.MerchantID == "" {
			return nil, util.NewValidationError("merchantId", "Merchant id is required")
		}
		updates["merchant_id"] = *req.MerchantID
	}
	if req.Status != nil {
		if !model.IsValidInvoiceStatus(*req.Status) {
			return nil, util.NewValidationError("status", "Invalid invoice status")
		}
		updates["status"] = *req.Status
	}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, util.NewValidationError("title", "Title is required")
		}
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Currency != nil {
		if *req.Currency == "" {
			return nil, util.NewValidationError("currency", "Currency is required")
		}
		updates["currency"] = *req.Currency
	}
	if req.Amount != nil {
		amount, err := parseAmount(*req.Amount)
		if err != nil {
			return nil, err
		}
		updates["amount"] = amount
	}
	if req.Memo != nil {
		updates["memo"] = *req.Memo
	}
	if req.Metadata != nil {
		updates["metadata"] = *req.Metadata
	}
	if req.ExpiresAt != nil {
		updates["expires_at"] = *req.ExpiresAt
	}

	var invoice model.Invoice
	if err := model.GetDB().First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := model.GetDB().Model(&invoice).Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := model.GetDB().First(&invoice, "id = ?", id).Error; err != nil {
			return nil, err
		}
	}
	return &invoice, nil
}

// MarkPaid 标记发票已支付
// 无条件设置 status=paid 和 paidAt：重复调用只是刷新 paidAt
// 并发调用采用最后写入获胜，不做CAS
func (s *InvoiceService) MarkPaid(id string, paidAt *time.Time) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := model.GetDB().First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}

	t := time.Now()
	if paidAt != nil {
		t = *paidAt
	}
	updates := map[string]interface{}{
		"status":  model.InvoiceStatusPaid,
		"paid_at": &t,
	}
	if err := model.GetDB().Model(&invoice).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := model.GetDB().First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Delete 删除发票并级联删除其支付记录
func (s *InvoiceService) Delete(id string) (bool, error) {
	var removed bool
	err := model.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&model.Payment{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.Invoice{})
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// parseAmount 解析并校验发票金额：必填、可解析、最多2位小数
// 按数值而不是字符串形态判定小数位，"1.990" 等补零写法合法
func parseAmount(s string) (model.Amount, error) {
	if s == "" {
		return model.Amount{}, util.NewValidationError("amount", "Amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return model.Amount{}, util.NewValidationError("amount", "Amount must be a decimal string")
	}
	if !d.Equal(d.Truncate(model.AmountScale)) {
		return model.Amount{}, util.NewValidationError("amount", "Amount supports at most 2 decimal places")
	}
	return model.Amount{Decimal: d}, nil
}
