package service

import (
	"errors"
	"testing"
	"time"

	"hotpay/internal/model"
	"hotpay/internal/testutil"
	"hotpay/internal/util"
)

func TestPaymentCreateDefaults(t *testing.T) {
	testutil.SetupTestDB(t)
	m := createTestMerchant(t, "Acme Co")
	inv := createTestInvoice(t, m.ID, "Order #1", "49.00")

	p, err := GetPaymentService().Create(&CreatePaymentRequest{
		InvoiceID:   inv.ID,
		Chain:       "Ethereum",
		AssetSymbol: "USDC",
		ToAddress:   "0xreceive",
		Amount:      "49",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" {
		t.Error("expected server-generated id")
	}
	if p.Status != model.PaymentStatusDetected {
		t.Errorf("got status %q, want detected", p.Status)
	}
	if p.DetectedAt.IsZero() {
		t.Error("detectedAt should be set by the server")
	}
	if p.Amount.String() != "49.000000000000000000" {
		t.Errorf("got amount %q", p.Amount.String())
	}
	if p.TxHash != nil || p.FromAddress != nil {
		t.Error("optional fields should stay null")
	}
}

func TestPaymentCreateValidation(t *testing.T) {
	testutil.SetupTestDB(t)
	m := createTestMerchant(t, "Acme Co")
	inv := createTestInvoice(t, m.ID, "Order #1", "49.00")

	base := CreatePaymentRequest{
		InvoiceID: inv.ID, Chain: "Ethereum", AssetSymbol: "USDC",
		ToAddress: "0xreceive", Amount: "49",
	}

	tests := []struct {
		name   string
		mutate func(*CreatePaymentRequest)
		field  string
	}{
		{"missing invoice id", func(r *CreatePaymentRequest) { r.InvoiceID = "" }, "invoiceId"},
		{"missing chain", func(r *CreatePaymentRequest) { r.Chain = "" }, "chain"},
		{"missing asset", func(r *CreatePaymentRequest) { r.AssetSymbol = "" }, "assetSymbol"},
		{"missing address", func(r *CreatePaymentRequest) { r.ToAddress = "" }, "toAddress"},
		{"missing amount", func(r *CreatePaymentRequest) { r.Amount = "" }, "amount"},
		{"bad amount", func(r *CreatePaymentRequest) { r.Amount = "not-a-number" }, "amount"},
		{"bad status", func(r *CreatePaymentRequest) { r.Status = "pending" }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			_, err := GetPaymentService().Create(&req)
			var ve *util.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("got field %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

// 18位小数的金额经存储往返后逐位保持，不得退化成二进制浮点
func TestPaymentAmountFullPrecisionRoundTrip(t *testing.T) {
	testutil.SetupTestDB(t)
	m := createTestMerchant(t, "Acme Co")
	inv := createTestInvoice(t, m.ID, "Order #1", "49.00")

	const sent = "0.123456789012345678"
	if _, err := GetPaymentService().Create(&CreatePaymentRequest{
		InvoiceID: inv.ID, Chain: "Ethereum", AssetSymbol: "USDC",
		ToAddress: "0xreceive", Amount: sent,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	payments, err := GetPaymentService().List(inv.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(payments) != 1 {
		t.Fatalf("got %d payments", len(payments))
	}
	if got := payments[0].Amount.String(); got != sent {
		t.Errorf("round-trip lost precision: sent %s, got back %s", sent, got)
	}
}

// 末尾补零的金额写法合法，小数位按数值判定
func TestPaymentAmountTrailingZeros(t *testing.T) {
	testutil.SetupTestDB(t)
	m := createTestMerchant(t, "Acme Co")
	inv := createTestInvoice(t, m.ID, "Order #1", "49.00")

	p, err := GetPaymentService().Create(&CreatePaymentRequest{
		InvoiceID: inv.ID, Chain: "Ethereum", AssetSymbol: "USDC",
		ToAddress: "0xreceive", Amount: "0.5000000000000000000",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Amount.String() != "0.500000000000000000" {
		t.Errorf("got amount %q", p.Amount.String())
	}
}

// 发票不存在与参数错误区分开：形状合法但发票缺失返回哨兵错误
func TestPaymentCreateInvoiceNotFound(t *testing.T) {
	testutil.SetupTestDB(t)

	_, err := GetPaymentService().Create(&CreatePaymentRequest{
		InvoiceID: "missing-invoice", Chain: "Ethereum", AssetSymbol: "USDC",
		ToAddress: "0xreceive", Amount: "49",
	})
	if !errors.Is(err, ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}

func TestPaymentListByInvoiceNewestFirst(t *testing.T) {
	testutil.SetupTestDB(t)
	m := createTestMerchant(t, "Acme Co")
	inv := createTestInvoice(t, m.ID, "Order #1", "49.00")
	other := createTestInvoice(t, m.ID, "Order #2", "5.00")

	hash1 := "0xaaa"
	hash2 := "0xbbb"
	if _, err := GetPaymentService().Create(&CreatePaymentRequest{
		InvoiceID: inv.ID, Chain: "Ethereum", AssetSymbol: "USDC",
		ToAddress: "0xreceive", Amount: "20", TxHash: &hash1,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := GetPaymentService().Create(&CreatePaymentRequest{
		InvoiceID: inv.ID, Chain: "Ethereum", AssetSymbol: "USDC",
		ToAddress: "0xreceive", Amount: "29", TxHash: &hash2,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := GetPaymentService().Create(&CreatePaymentRequest{
		InvoiceID: other.ID, Chain: "Solana", AssetSymbol: "USDC",
		ToAddress: "sol-addr", Amount: "5",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	payments, err := GetPaymentService().List(inv.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(payments) != 2 {
		t.Fatalf("got %d payments, want 2", len(payments))
	}
	if payments[0].TxHash == nil || *payments[0].TxHash != hash2 {
		t.Error("newest payment should come first")
	}

	all, err := GetPaymentService().List("")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d payments, want 3", len(all))
	}
}
