package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentStatus 支付记录状态
type PaymentStatus = string

const (
	PaymentStatusDetected  PaymentStatus = "detected"  // 已检测到
	PaymentStatusConfirmed PaymentStatus = "confirmed" // 已确认
	PaymentStatusFailed    PaymentStatus = "failed"    // 失败
)

// PaymentStatuses 支付状态词表
var PaymentStatuses = []PaymentStatus{
	PaymentStatusDetected,
	PaymentStatusConfirmed,
	PaymentStatusFailed,
}

// IsValidPaymentStatus 检查状态是否在词表内
func IsValidPaymentStatus(s string) bool {
	for _, v := range PaymentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Payment 支付记录表
// 支付是人工录入的链上转账观察记录，不做链上监控和密码学校验
type Payment struct {
	ID          string        `gorm:"type:varchar(36);primaryKey" json:"id"`
	InvoiceID   string        `gorm:"type:varchar(36);not null;index" json:"invoiceId"`
	Chain       string        `gorm:"type:varchar(50);not null" json:"chain"`
	AssetSymbol string        `gorm:"type:varchar(20);not null" json:"assetSymbol"`
	ToAddress   string        `gorm:"type:varchar(200);not null" json:"toAddress"`
	FromAddress *string       `gorm:"type:varchar(200)" json:"fromAddress"`
	Amount      TokenAmount   `gorm:"not null" json:"amount"`
	TxHash      *string       `gorm:"type:varchar(200)" json:"txHash"`
	Status      PaymentStatus `gorm:"type:varchar(20);not null;default:'detected'" json:"status"`
	DetectedAt  time.Time     `gorm:"autoCreateTime;index" json:"detectedAt"`
	ConfirmedAt *time.Time    `json:"confirmedAt"`
}

func (Payment) TableName() string {
	return "payments"
}

// BeforeCreate 服务端生成主键
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
