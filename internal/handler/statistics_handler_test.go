package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finanzo/finanzo-backend/internal/service"
	"github.com/labstack/echo/v4"
)

func newStatisticsFixture(t *testing.T) (*TransactionHandler, *StatisticsHandler) {
	t.Helper()
	ledgerRepo, transactionHandler := newLedgerFixture()
	return transactionHandler, NewStatisticsHandler(service.NewStatisticsService(ledgerRepo))
}

func TestGetTotalsByCategory_Success(t *testing.T) {
	e := echo.New()
	transactionHandler, handler := newStatisticsFixture(t)

	addTransaction(t, transactionHandler, `{"user_uid": "user-1", "category_id": 2, "amount": 50, "date": "2024-03-10", "category_type": "expense"}`)
	addTransaction(t, transactionHandler, `{"user_uid": "user-1", "category_id": 2, "amount": 30, "date": "2024-03-11", "category_type": "expense"}`)
	addTransaction(t, transactionHandler, `{"user_uid": "user-1", "category_id": 1, "amount": 900, "date": "2024-03-11", "category_type": "income"}`)

	req := httptest.NewRequest(http.MethodGet, "/statistics/by-category/user-1/expense?period=all", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/statistics/by-category/:user_uid/:type")
	c.SetParamNames("user_uid", "type")
	c.SetParamValues("user-1", "expense")

	if err := handler.GetTotalsByCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response []CategoryTotalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(response) != 1 {
		t.Fatalf("Expected 1 category total, got %d", len(response))
	}
	if response[0].Category != "Food" {
		t.Errorf("Expected category 'Food', got %q", response[0].Category)
	}
	if response[0].Total.String() != "80" {
		t.Errorf("Expected total 80, got %s", response[0].Total.String())
	}
	if response[0].Color == nil || *response[0].Color != "#E53935" {
		t.Errorf("Expected color '#E53935', got %v", response[0].Color)
	}
}

func TestGetTotalsByCategory_InvalidType(t *testing.T) {
	e := echo.New()
	_, handler := newStatisticsFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/statistics/by-category/user-1/transfer", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/statistics/by-category/:user_uid/:type")
	c.SetParamNames("user_uid", "type")
	c.SetParamValues("user-1", "transfer")

	if err := handler.GetTotalsByCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}

	var response ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Error != "Invalid category type" {
		t.Errorf("Expected error 'Invalid category type', got %q", response.Error)
	}
}

func TestGetTotalsByCategory_NoTransactions(t *testing.T) {
	e := echo.New()
	_, handler := newStatisticsFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/statistics/by-category/nobody/expense?period=all", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/statistics/by-category/:user_uid/:type")
	c.SetParamNames("user_uid", "type")
	c.SetParamValues("nobody", "expense")

	if err := handler.GetTotalsByCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response []CategoryTotalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 0 {
		t.Errorf("Expected no totals, got %d", len(response))
	}
}
