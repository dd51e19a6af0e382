package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupportedPaymentOption 商户收款方式表
// 一条记录是商户配置的 (链, 资产, 收款地址) 三元组
type SupportedPaymentOption struct {
	ID             string `gorm:"type:varchar(36);primaryKey" json:"id"`
	MerchantID     string `gorm:"type:varchar(36);not null;index" json:"merchantId"`
	Chain          string `gorm:"type:varchar(50);not null" json:"chain"`
	AssetSymbol    string `gorm:"type:varchar(20);not null" json:"assetSymbol"`
	ReceiveAddress string `gorm:"type:varchar(200);not null" json:"receiveAddress"`
	Enabled        *bool  `gorm:"not null;default:true" json:"enabled"`
	SortOrder      int    `gorm:"not null;default:0" json:"sortOrder"`
}

func (SupportedPaymentOption) TableName() string {
	return "supported_payment_options"
}

// BeforeCreate 服务端生成主键
func (o *SupportedPaymentOption) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
