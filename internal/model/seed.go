package model

import (
	"log"

	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

// seedDemoData 商户表为空时写入演示商户、收款方式和发票
func seedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Merchant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	merchant := Merchant{
		Name:         "HotPay Demo Store",
		WebsiteURL:   strPtr("https://hotpay.example"),
		ContactEmail: strPtr("billing@hotpay.example"),
	}
	if err := db.Create(&merchant).Error; err != nil {
		return err
	}

	options := []SupportedPaymentOption{
		{
			MerchantID:     merchant.ID,
			Chain:          "Ethereum",
			AssetSymbol:    "USDC",
			ReceiveAddress: "0x6B175474E89094C44Da98b954EedeAC495271d0F",
			Enabled:        boolPtr(true),
			SortOrder:      1,
		},
		{
			MerchantID:     merchant.ID,
			Chain:          "Solana",
			AssetSymbol:    "USDC",
			ReceiveAddress: "9xQeWvG816bUx9EPf8Q7zv1QH3pE6GmYcRUpZJ2xvYp",
			Enabled:        boolPtr(true),
			SortOrder:      2,
		},
		{
			MerchantID:     merchant.ID,
			Chain:          "Polygon",
			AssetSymbol:    "USDT",
			ReceiveAddress: "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174",
			Enabled:        boolPtr(true),
			SortOrder:      3,
		},
	}
	if err := db.Create(&options).Error; err != nil {
		return err
	}

	sub, _ := NewAmountFromString("49.00")
	ship, _ := NewAmountFromString("219.99")
	invoices := []Invoice{
		{
			MerchantID:  merchant.ID,
			Status:      InvoiceStatusUnpaid,
			Title:       "Order #1042",
			Description: strPtr("Premium subscription (monthly) - AnyChain checkout"),
			Currency:    "USD",
			Amount:      sub,
			Memo:        strPtr("SUB-1042"),
			Metadata:    Metadata{"customer": "Acme Co"},
		},
		{
			MerchantID:  merchant.ID,
			Status:      InvoiceStatusUnpaid,
			Title:       "Invoice INV-00018",
			Description: strPtr("Hardware shipment - payment on supported chains"),
			Currency:    "USD",
			Amount:      ship,
			Memo:        strPtr("SHIP-18"),
			Metadata:    Metadata{"po": "PO-8871"},
		},
	}
	if err := db.Create(&invoices).Error; err != nil {
		return err
	}

	log.Printf("Demo merchant seeded: %s (%s)", merchant.Name, merchant.ID)
	return nil
}
