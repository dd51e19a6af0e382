package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceStatus 发票状态
// 状态是开放字符串：写入时只校验词表，不强制状态机转换
type InvoiceStatus = string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"     // 草稿
	InvoiceStatusUnpaid    InvoiceStatus = "unpaid"    // 待支付
	InvoiceStatusPaid      InvoiceStatus = "paid"      // 已支付
	InvoiceStatusExpired   InvoiceStatus = "expired"   // 已过期
	InvoiceStatusCancelled InvoiceStatus = "cancelled" // 已取消
)

// InvoiceStatuses 发票状态词表
var InvoiceStatuses = []InvoiceStatus{
	InvoiceStatusDraft,
	InvoiceStatusUnpaid,
	InvoiceStatusPaid,
	InvoiceStatusExpired,
	InvoiceStatusCancelled,
}

// IsValidInvoiceStatus 检查状态是否在词表内
func IsValidInvoiceStatus(s string) bool {
	for _, v := range InvoiceStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Metadata 发票附加数据（任意键值对）
type Metadata map[string]interface{}

// Scan 实现 sql.Scanner 接口
func (m *Metadata) Scan(value interface{}) error {
	if value == nil {
		*m = Metadata{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*m = Metadata{}
		return nil
	}
	if len(bytes) == 0 {
		*m = Metadata{}
		return nil
	}
	return json.Unmarshal(bytes, m)
}

// Value 实现 driver.Valuer 接口
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		m = Metadata{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Invoice 发票表
type Invoice struct {
	ID          string        `gorm:"type:varchar(36);primaryKey" json:"id"`
	MerchantID  string        `gorm:"type:varchar(36);not null;index" json:"merchantId"`
	Status      InvoiceStatus `gorm:"type:varchar(20);not null;default:'unpaid';index" json:"status"`
	Title       string        `gorm:"type:varchar(500);not null" json:"title"`
	Description *string       `gorm:"type:text" json:"description"`
	Currency    string        `gorm:"type:varchar(10);not null;default:'USD'" json:"currency"`
	Amount      Amount        `gorm:"not null" json:"amount"`
	Memo        *string       `gorm:"type:varchar(500)" json:"memo"`
	Metadata    Metadata      `gorm:"type:json" json:"metadata"`
	ExpiresAt   *time.Time    `json:"expiresAt"`
	CreatedAt   time.Time     `gorm:"index" json:"createdAt"`
	PaidAt      *time.Time    `json:"paidAt"` // 仅由 MarkPaid 服务端写入
}

func (Invoice) TableName() string {
	return "invoices"
}

// BeforeCreate 服务端生成主键
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// InvoiceQuery 发票列表查询参数
type InvoiceQuery struct {
	MerchantID string `form:"merchantId"`
	Status     string `form:"status"`
	Q          string `form:"q"`
}
