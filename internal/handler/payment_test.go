package handler

import (
	"net/http"
	"testing"

	"hotpay/internal/util"

	"github.com/gin-gonic/gin"
)

func TestPaymentAPI(t *testing.T) {
	r := setupRouter(t)
	m := createMerchantAPI(t, r, "Acme Co")
	inv := createInvoiceAPI(t, r, m["id"].(string), "Order #1", "49.00")
	invoiceID := inv["id"].(string)

	w := doJSON(t, r, http.MethodPost, "/api/payments", gin.H{
		"invoiceId":   invoiceID,
		"chain":       "Ethereum",
		"assetSymbol": "USDC",
		"toAddress":   "0xreceive",
		"fromAddress": "0xsender",
		"amount":      "49",
		"txHash":      "0xdeadbeef",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d body %s", w.Code, w.Body.String())
	}
	var p map[string]interface{}
	decodeJSON(t, w, &p)
	if p["status"] != "detected" {
		t.Errorf("got status %v, want detected", p["status"])
	}
	if p["amount"] != "49.000000000000000000" {
		t.Errorf("got amount %v", p["amount"])
	}
	if p["detectedAt"] == nil {
		t.Error("detectedAt should be set by the server")
	}

	// invoiceId 过滤
	w = doJSON(t, r, http.MethodGet, "/api/payments?invoiceId="+invoiceID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	var list []map[string]interface{}
	decodeJSON(t, w, &list)
	if len(list) != 1 {
		t.Errorf("got %d payments, want 1", len(list))
	}

	w = doJSON(t, r, http.MethodGet, "/api/payments?invoiceId=other", nil)
	decodeJSON(t, w, &list)
	if len(list) != 0 {
		t.Errorf("unrelated filter should return empty list, got %d", len(list))
	}
}

// 发票不存在映射为404，与参数校验的400区分开
func TestPaymentAPIInvoiceNotFound(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/payments", gin.H{
		"invoiceId":   "missing-invoice",
		"chain":       "Ethereum",
		"assetSymbol": "USDC",
		"toAddress":   "0xreceive",
		"amount":      "49",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
	var errResp util.ErrorResponse
	decodeJSON(t, w, &errResp)
	if errResp.Message != "Invoice not found" {
		t.Errorf("got message %q", errResp.Message)
	}
	if errResp.Field != "" {
		t.Errorf("404 should not carry field, got %q", errResp.Field)
	}
}

func TestPaymentAPIValidation(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/payments", gin.H{
		"chain":       "Ethereum",
		"assetSymbol": "USDC",
		"toAddress":   "0xreceive",
		"amount":      "49",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	var errResp util.ErrorResponse
	decodeJSON(t, w, &errResp)
	if errResp.Field != "invoiceId" {
		t.Errorf("got field %q, want invoiceId", errResp.Field)
	}
}

func TestPaymentOptionAPI(t *testing.T) {
	r := setupRouter(t)
	m := createMerchantAPI(t, r, "Acme Co")
	merchantID := m["id"].(string)

	w := doJSON(t, r, http.MethodPost, "/api/payment-options", gin.H{
		"merchantId":     merchantID,
		"chain":          "Ethereum",
		"assetSymbol":    "USDC",
		"receiveAddress": "0xreceive",
		"sortOrder":      1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d body %s", w.Code, w.Body.String())
	}
	var opt map[string]interface{}
	decodeJSON(t, w, &opt)
	id := opt["id"].(string)
	if opt["enabled"] != true {
		t.Errorf("got enabled %v, want true", opt["enabled"])
	}

	// 停用
	w = doJSON(t, r, http.MethodPatch, "/api/payment-options/"+id, gin.H{
		"enabled": false,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("patch: status %d body %s", w.Code, w.Body.String())
	}
	decodeJSON(t, w, &opt)
	if opt["enabled"] != false {
		t.Errorf("got enabled %v, want false", opt["enabled"])
	}

	// merchantId 过滤
	w = doJSON(t, r, http.MethodGet, "/api/payment-options?merchantId="+merchantID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	var list []map[string]interface{}
	decodeJSON(t, w, &list)
	if len(list) != 1 {
		t.Errorf("got %d options, want 1", len(list))
	}

	// 删除
	w = doJSON(t, r, http.MethodDelete, "/api/payment-options/"+id, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/api/payment-options/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("repeat delete: status %d, want 404", w.Code)
	}
}
