package model

import (
	"database/sql/driver"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Amount 发票金额（2位小数定标）
// 边界上始终以十进制字符串传输和存储，避免二进制浮点误差
type Amount struct {
	decimal.Decimal
}

// AmountScale 发票金额小数位数
const AmountScale = 2

// NewAmountFromString 从十进制字符串创建金额
func NewAmountFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{Decimal: d}, nil
}

// String 按固定小数位输出
func (a Amount) String() string {
	return a.Decimal.StringFixed(AmountScale)
}

// MarshalJSON 序列化为带引号的十进制字符串
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

// UnmarshalJSON 只接受字符串形式的金额
func (a *Amount) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("amount must be a decimal string: %s", string(data))
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	a.Decimal = d
	return nil
}

// Scan 实现 sql.Scanner 接口
// 兼容四种存储类型：NUMERIC 亲和性的列可能把 "199.00" 存成整数 199
func (a *Amount) Scan(value interface{}) error {
	d, err := scanDecimal(value)
	if err != nil {
		return err
	}
	a.Decimal = d
	return nil
}

// Value 实现 driver.Valuer 接口
func (a Amount) Value() (driver.Value, error) {
	return a.Decimal.StringFixed(AmountScale), nil
}

// GormDBDataType 按方言选择列类型
// SQLite 的 decimal 列是 NUMERIC 亲和性，会把十进制文本降级成 REAL 丢精度，必须用 TEXT 原样保存
func (Amount) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "TEXT"
	}
	return "decimal(18,2)"
}

// TokenAmount 链上支付金额（18位小数定标，适配代币最小粒度）
type TokenAmount struct {
	decimal.Decimal
}

// TokenAmountScale 支付金额小数位数
const TokenAmountScale = 18

// NewTokenAmountFromString 从十进制字符串创建支付金额
func NewTokenAmountFromString(s string) (TokenAmount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return TokenAmount{}, err
	}
	return TokenAmount{Decimal: d}, nil
}

func (a TokenAmount) String() string {
	return a.Decimal.StringFixed(TokenAmountScale)
}

func (a TokenAmount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

func (a *TokenAmount) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("amount must be a decimal string: %s", string(data))
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	a.Decimal = d
	return nil
}

func (a *TokenAmount) Scan(value interface{}) error {
	d, err := scanDecimal(value)
	if err != nil {
		return err
	}
	a.Decimal = d
	return nil
}

func (a TokenAmount) Value() (driver.Value, error) {
	return a.Decimal.StringFixed(TokenAmountScale), nil
}

// GormDBDataType 按方言选择列类型，SQLite 上用 TEXT 保住18位小数
func (TokenAmount) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "TEXT"
	}
	return "decimal(36,18)"
}

func scanDecimal(value interface{}) (decimal.Decimal, error) {
	switch v := value.(type) {
	case nil:
		return decimal.Zero, nil
	case []byte:
		return decimal.NewFromString(string(v))
	case string:
		return decimal.NewFromString(v)
	case int64:
		return decimal.NewFromInt(v), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Zero, fmt.Errorf("unsupported decimal column type %T", value)
	}
}
