package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/agroboard/internal/domain/models"
	ledgersvc "github.com/mamadbah2/agroboard/internal/service/ledger"
	syncsvc "github.com/mamadbah2/agroboard/internal/service/sync"
	"github.com/mamadbah2/agroboard/internal/store"
)

func setupFarmRouter(st *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	ledger := ledgersvc.NewService(st, nil, nil)
	sync := syncsvc.NewService(nil, st, nil)
	handler := NewFarmHandler(st, ledger, sync, nil)

	r := gin.New()
	farms := r.Group("/api/v1/farms")
	{
		farms.GET("", handler.List)
		farms.POST("", handler.Upsert)
		farms.DELETE("/:id", handler.Delete)
		farms.POST("/:id/sales", handler.RecordSale)
		farms.POST("/:id/expenses", handler.RecordExpense)
	}
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUpsertFarmDefaultsTotalArea(t *testing.T) {
	st := store.New()
	router := setupFarmRouter(st)

	w := postJSON(t, router, "/api/v1/farms", gin.H{
		"name":            "Fazenda Nova",
		"productive_area": "1000",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Farm models.Farm `json:"farm"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Farm.TotalArea != 1200 {
		t.Errorf("total area = %v, want 1200 (productive * 1.2)", resp.Farm.TotalArea)
	}
	if resp.Farm.Type != models.FarmOwned {
		t.Errorf("type = %q, want owned default", resp.Farm.Type)
	}
}

func TestUpsertFarmRejectsProductiveAboveTotal(t *testing.T) {
	router := setupFarmRouter(store.New())

	w := postJSON(t, router, "/api/v1/farms", gin.H{
		"name":            "Fazenda Nova",
		"productive_area": "1500",
		"total_area":      "1000",
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUpsertFarmEditPreservesFinancials(t *testing.T) {
	st := store.New()
	farm := st.UpsertFarm(models.Farm{Name: "Fazenda Vale do Boi", ProductiveArea: 1000, TotalArea: 1200})
	st.AddFarmRevenue(farm.ID, 1000)

	router := setupFarmRouter(st)
	w := postJSON(t, router, "/api/v1/farms", gin.H{
		"id":              farm.ID,
		"name":            "Fazenda Vale do Boi",
		"productive_area": "1100",
		"total_area":      "1300",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	stored, _ := st.GetFarm(farm.ID)
	if stored.Revenue != 1000 {
		t.Errorf("revenue = %v, want 1000 preserved across edit", stored.Revenue)
	}
}

func TestRecordSaleEndpoint(t *testing.T) {
	st := store.New()
	farm := st.UpsertFarm(models.Farm{Name: "Fazenda Vale do Boi", ProductiveArea: 1000, TotalArea: 1200})
	st.UpsertItem(models.InventoryItem{ID: "i1", Name: "Corn Grain", Quantity: 30})

	router := setupFarmRouter(st)
	w := postJSON(t, router, "/api/v1/farms/"+farm.ID+"/sales", gin.H{
		"product":    "corn",
		"unit_price": "50",
		"quantity":   "10",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var result models.SaleResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if result.Farm.Revenue != 500 {
		t.Errorf("revenue = %v, want 500", result.Farm.Revenue)
	}
	if result.Item == nil || result.Item.Quantity != 20 {
		t.Errorf("item = %+v, want quantity 20", result.Item)
	}
}

func TestRecordSaleNonNumericPriceRejected(t *testing.T) {
	st := store.New()
	farm := st.UpsertFarm(models.Farm{Name: "Fazenda Vale do Boi"})

	router := setupFarmRouter(st)
	w := postJSON(t, router, "/api/v1/farms/"+farm.ID+"/sales", gin.H{
		"product":    "corn",
		"unit_price": "abc",
		"quantity":   "10",
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	stored, _ := st.GetFarm(farm.ID)
	if stored.Revenue != 0 {
		t.Errorf("revenue = %v, want 0 after rejected sale", stored.Revenue)
	}
}

func TestRecordSaleUnknownFarmReturns422(t *testing.T) {
	router := setupFarmRouter(store.New())

	w := postJSON(t, router, "/api/v1/farms/missing/sales", gin.H{
		"product":    "corn",
		"unit_price": "50",
		"quantity":   "10",
	})

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
}

func TestRecordExpenseEndpoint(t *testing.T) {
	st := store.New()
	farm := st.UpsertFarm(models.Farm{Name: "Fazenda Vale do Boi"})

	router := setupFarmRouter(st)
	w := postJSON(t, router, "/api/v1/farms/"+farm.ID+"/expenses", gin.H{
		"category": "feed",
		"amount":   "300",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	stored, _ := st.GetFarm(farm.ID)
	if stored.Expenses != 300 {
		t.Errorf("expenses = %v, want 300", stored.Expenses)
	}
}

func TestDeleteFarmEndpoint(t *testing.T) {
	st := store.New()
	farm := st.UpsertFarm(models.Farm{Name: "Gone"})

	router := setupFarmRouter(st)
	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/farms/"+farm.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}

	req, _ = http.NewRequest(http.MethodDelete, "/api/v1/farms/"+farm.ID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 on second delete", w.Code)
	}
}
