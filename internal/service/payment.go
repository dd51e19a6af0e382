package service

import (
	"errors"

	"hotpay/internal/model"
	"hotpay/internal/util"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrInvoiceNotFound 支付引用的发票不存在
// 与参数校验错误区分开：形状校验通过后才做归属检查，映射为404
var ErrInvoiceNotFound = errors.New("invoice not found")

// PaymentService 支付记录服务
type PaymentService struct{}

var paymentService *PaymentService

// GetPaymentService 获取支付记录服务
func GetPaymentService() *PaymentService {
	if paymentService == nil {
		paymentService = &PaymentService{}
	}
	return paymentService
}

// CreatePaymentRequest 创建支付记录请求
type CreatePaymentRequest struct {
	InvoiceID   string  `json:"invoiceId"`
	Chain       string  `json:"chain"`
	AssetSymbol string  `json:"assetSymbol"`
	ToAddress   string  `json:"toAddress"`
	FromAddress *string `json:"fromAddress"`
	Amount      string  `json:"amount"`
	TxHash      *string `json:"txHash"`
	Status      string  `json:"status"`
}

// List 查询支付记录，按检测时间倒序
func (s *PaymentService) List(invoiceID string) ([]model.Payment, error) {
	db := model.GetDB().Model(&model.Payment{})
	if invoiceID != "" {
		db = db.Where("invoice_id = ?", invoiceID)
	}

	var payments []model.Payment
	if err := db.Order("detected_at DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Create 创建支付记录
// 先做形状校验，再检查发票存在；发票不存在返回 ErrInvoiceNotFound
func (s *PaymentService) Create(req *CreatePaymentRequest) (*model.Payment, error) {
	if req.InvoiceID == "" {
		return nil, util.NewValidationError("invoiceId", "Invoice id is required")
	}
	if req.Chain == "" {
		return nil, util.NewValidationError("chain", "Chain is required")
	}
	if req.AssetSymbol == "" {
		return nil, util.NewValidationError("assetSymbol", "Asset symbol is required")
	}
	if req.ToAddress == "" {
		return nil, util.NewValidationError("toAddress", "To address is required")
	}
	amount, err := parseTokenAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.PaymentStatusDetected
	} else if !model.IsValidPaymentStatus(status) {
		return nil, util.NewValidationError("status", "Invalid payment status")
	}

	// 归属检查：支付必须挂在已存在的发票下
	var invoice model.Invoice
	if err := model.GetDB().First(&invoice, "id = ?", req.InvoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	payment := model.Payment{
		InvoiceID:   req.InvoiceID,
		Chain:       req.Chain,
		AssetSymbol: req.AssetSymbol,
		ToAddress:   req.ToAddress,
		FromAddress: req.FromAddress,
		Amount:      amount,
		TxHash:      req.TxHash,
		Status:      status,
	}
	if err := model.GetDB().Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// parseTokenAmount 解析并校验支付金额：必填、可解析、最多18位小数
// 按数值而不是字符串形态判定小数位，末尾补零的写法合法
func parseTokenAmount(s string) (model.TokenAmount, error) {
	if s == "" {
		return model.TokenAmount{}, util.NewValidationError("amount", "Amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return model.TokenAmount{}, util.NewValidationError("amount", "Amount must be a decimal string")
	}
	if !d.Equal(d.Truncate(model.TokenAmountScale)) {
		return model.TokenAmount{}, util.NewValidationError("amount", "Amount supports at most 18 decimal places")
	}
	return model.TokenAmount{Decimal: d}, nil
}
