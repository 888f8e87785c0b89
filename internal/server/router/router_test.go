package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mamadbah2/agroboard/internal/domain/models"
	"github.com/mamadbah2/agroboard/internal/server/handlers"
	advisorysvc "github.com/mamadbah2/agroboard/internal/service/advisory"
	ledgersvc "github.com/mamadbah2/agroboard/internal/service/ledger"
	subscriptionsvc "github.com/mamadbah2/agroboard/internal/service/subscription"
	syncsvc "github.com/mamadbah2/agroboard/internal/service/sync"
	"github.com/mamadbah2/agroboard/internal/store"
)

func newTestEngine(plan models.PlanTier) http.Handler {
	st := store.New()
	ledger := ledgersvc.NewService(st, nil, nil)
	sync := syncsvc.NewService(nil, st, nil)
	subs := subscriptionsvc.NewService(models.Subscription{Plan: plan, Status: models.SubscriptionActive})

	engine := New(Handlers{
		Farms:        handlers.NewFarmHandler(st, ledger, sync, nil),
		Inventory:    handlers.NewInventoryHandler(st, ledger, sync, nil),
		Fleet:        handlers.NewFleetHandler(st, ledger, sync, nil, nil),
		Herd:         handlers.NewHerdHandler(st, sync, nil),
		Staff:        handlers.NewStaffHandler(st, ledger, sync, nil),
		Subscription: handlers.NewSubscriptionHandler(subs, nil),
		Advisory:     handlers.NewAdvisoryHandler(advisorysvc.NewService(nil, nil), nil),
		Documents:    handlers.NewDocumentsHandler(),
		Sync:         handlers.NewSyncHandler(sync, nil),
	}, subs, nil)

	return engine
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	h := newTestEngine(models.PlanBasic)

	if w := get(h, "/healthz"); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestPlanGating(t *testing.T) {
	tests := []struct {
		name string
		plan models.PlanTier
		path string
		want int
	}{
		{"basic blocked from advisory", models.PlanBasic, "/api/v1/advisory/quotes", http.StatusForbidden},
		{"basic blocked from documents", models.PlanBasic, "/api/v1/documents", http.StatusForbidden},
		{"professional reaches advisory", models.PlanProfessional, "/api/v1/advisory/quotes", http.StatusOK},
		{"professional blocked from documents", models.PlanProfessional, "/api/v1/documents", http.StatusForbidden},
		{"premium reaches documents", models.PlanPremium, "/api/v1/documents", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestEngine(tt.plan)
			if w := get(h, tt.path); w.Code != tt.want {
				t.Errorf("GET %s = %d, want %d", tt.path, w.Code, tt.want)
			}
		})
	}
}

func TestFarmsListOpenToAllPlans(t *testing.T) {
	h := newTestEngine(models.PlanBasic)

	if w := get(h, "/api/v1/farms"); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
