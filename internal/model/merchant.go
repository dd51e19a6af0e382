package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Merchant 商户表
type Merchant struct {
	ID           string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name         string  `gorm:"type:varchar(200);not null" json:"name"`
	WebsiteURL   *string `gorm:"type:varchar(500)" json:"websiteUrl"`
	ContactEmail *string `gorm:"type:varchar(200)" json:"contactEmail"`
}

func (Merchant) TableName() string {
	return "merchants"
}

// BeforeCreate 服务端生成主键
func (m *Merchant) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
