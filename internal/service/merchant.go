package service

import (
	"hotpay/internal/model"
	"hotpay/internal/util"

	"gorm.io/gorm"
)

// MerchantService 商户服务
type MerchantService struct{}

var merchantService *MerchantService

// GetMerchantService 获取商户服务
func GetMerchantService() *MerchantService {
	if merchantService == nil {
		merchantService = &MerchantService{}
	}
	return merchantService
}

// CreateMerchantRequest 创建商户请求
type CreateMerchantRequest struct {
	Name         string  `json:"name"`
	WebsiteURL   *string `json:"websiteUrl"`
	ContactEmail *string `json:"contactEmail"`
}

// UpdateMerchantRequest 部分更新商户请求，nil 字段保持不变
type UpdateMerchantRequest struct {
	Name         *string `json:"name"`
	WebsiteURL   *string `json:"websiteUrl"`
	ContactEmail *string `json:"contactEmail"`
}

// List 查询全部商户，按名称升序
func (s *MerchantService) List() ([]model.Merchant, error) {
	var merchants []model.Merchant
	if err := model.GetDB().Order("name ASC").Find(&merchants).Error; err != nil {
		return nil, err
	}
	return merchants, nil
}

// Get 按ID查询商户
func (s *MerchantService) Get(id string) (*model.Merchant, error) {
	var merchant model.Merchant
	if err := model.GetDB().First(&merchant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &merchant, nil
}

// Create 创建商户
func (s *MerchantService) Create(req *CreateMerchantRequest) (*model.Merchant, error) {
	if req.Name == "" {
		return nil, util.NewValidationError("name", "Name is required")
	}

	merchant := model.Merchant{
		Name:         req.Name,
		WebsiteURL:   req.WebsiteURL,
		ContactEmail: req.ContactEmail,
	}
	if err := model.GetDB().Create(&merchant).Error; err != nil {
		return nil, err
	}
	return &merchant, nil
}

// Update 部分更新商户，空更新是no-op并返回当前记录
func (s *MerchantService) Update(id string, req *UpdateMerchantRequest) (*model.Merchant, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, util.NewValidationError("name", "Name is required")
		}
		updates["name"] = *req.Name
	}
	if req.WebsiteURL != nil {
		updates["website_url"] = *req.WebsiteURL
	}
	if req.ContactEmail != nil {
		updates["contact_email"] = *req.ContactEmail
	}

	var merchant model.Merchant
	if err := model.GetDB().First(&merchant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := model.GetDB().Model(&merchant).Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := model.GetDB().First(&merchant, "id = ?", id).Error; err != nil {
			return nil, err
		}
	}
	return &merchant, nil
}

// Delete 删除商户并级联删除其发票、发票下的支付记录和收款方式
// 返回是否真的删除了记录；重复删除返回 false 而不是错误
func (s *MerchantService) Delete(id string) (bool, error) {
	var removed bool
	err := model.GetDB().Transaction(func(tx *gorm.DB) error {
		invoiceIDs := tx.Model(&model.Invoice{}).Select("id").Where("merchant_id = ?", id)
		if err := tx.Where("invoice_id IN (?)", invoiceIDs).Delete(&model.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("merchant_id = ?", id).Delete(&model.Invoice{}).Error; err != nil {
			return err
		}
		if err := tx.Where("merchant_id = ?", id).Delete(&model.SupportedPaymentOption{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.Merchant{})
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
