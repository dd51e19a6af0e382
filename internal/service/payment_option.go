package service

import (
	"hotpay/internal/model"
	"hotpay/internal/util"
)

// PaymentOptionService 收款方式服务
type PaymentOptionService struct{}

var paymentOptionService *PaymentOptionService

// GetPaymentOptionService 获取收款方式服务
func GetPaymentOptionService() *PaymentOptionService {
	if paymentOptionService == nil {
		paymentOptionService = &PaymentOptionService{}
	}
	return paymentOptionService
}

// CreatePaymentOptionRequest 创建收款方式请求
type CreatePaymentOptionRequest struct {
	MerchantID     string `json:"merchantId"`
	Chain          string `json:"chain"`
	AssetSymbol    string `json:"assetSymbol"`
	ReceiveAddress string `json:"receiveAddress"`
	Enabled        *bool  `json:"enabled"`
	SortOrder      *int   `json:"sortOrder"`
}

// UpdatePaymentOptionRequest 部分更新收款方式请求，nil 字段保持不变
type UpdatePaymentOptionRequest struct {
	MerchantID     *string `json:"merchantId"`
	Chain          *string `json:"chain"`
	AssetSymbol    *string `json:"assetSymbol"`
	ReceiveAddress *string `json:"receiveAddress"`
	Enabled        *bool   `json:"enabled"`
	SortOrder      *int    `json:"sortOrder"`
}

// List 查询收款方式
// 确定性三键排序：sortOrder、chain、assetSymbol 全部升序
func (s *PaymentOptionService) List(merchantID string) ([]model.SupportedPaymentOption, error) {
	db := model.GetDB().Model(&model.SupportedPaymentOption{})
	if merchantID != "" {
		db = db.Where("merchant_id = ?", merchantID)
	}

	var options []model.SupportedPaymentOption
	if err := db.Order("sort_order ASC, chain ASC, asset_symbol ASC").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

// Create 创建收款方式
func (s *PaymentOptionService) Create(req *CreatePaymentOptionRequest) (*model.SupportedPaymentOption, error) {
	if req.MerchantID == "" {
		return nil, util.NewValidationError("merchantId", "Merchant id is required")
	}
	if req.Chain == "" {
		return nil, util.NewValidationError("chain", "Chain is required")
	}
	if req.AssetSymbol == "" {
		return nil, util.NewValidationError("assetSymbol", "Asset symbol is required")
	}
	if req.ReceiveAddress == "" {
		return nil, util.NewValidationError("receiveAddress", "Receive address is required")
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	option := model.SupportedPaymentOption{
		MerchantID:     req.MerchantID,
		Chain:          req.Chain,
		AssetSymbol:    req.AssetSymbol,
		ReceiveAddress: req.ReceiveAddress,
		Enabled:        &enabled,
		SortOrder:      sortOrder,
	}
	if err := model.GetDB().Create(&option).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

// Update 部分更新收款方式
func (s *PaymentOptionService) Update(id string, req *UpdatePaymentOptionRequest) (*model.SupportedPaymentOption, error) {
	updates := map[string]interface{}{}
	if req.MerchantID != nil {
		if *req.MerchantID == "" {
			return nil, util.NewValidationError("merchantId", "Merchant id is required")
		}
		updates["merchant_id"] = *req.MerchantID
	}
	if req.Chain != nil {
		if *req.Chain == "" {
			return nil, util.NewValidationError("chain", "Chain is required")
		}
		updates["chain"] = *req.Chain
	}
	if req.AssetSymbol != nil {
		if *req.AssetSymbol == "" {
			return nil, util.NewValidationError("assetSymbol", "Asset symbol is required")
		}
		updates["asset_symbol"] = *req.AssetSymbol
	}
	if req.ReceiveAddress != nil {
		if *req.ReceiveAddress == "" {
			return nil, util.NewValidationError("receiveAddress", "Receive address is required")
		}
		updates["receive_address"] = *req.ReceiveAddress
	}
	if req.Enabled != nil {
		updates["enabled"] = *req.Enabled
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	var option model.SupportedPaymentOption
	if err := model.GetDB().First(&option, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := model.GetDB().Model(&option).Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := model.GetDB().First(&option, "id = ?", id).Error; err != nil {
			return nil, err
		}
	}
	return &option, nil
}

// Delete 删除收款方式，重复删除返回 false
func (s *PaymentOptionService) Delete(id string) (bool, error) {
	result := model.GetDB().Where("id = ?", id).Delete(&model.SupportedPaymentOption{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
