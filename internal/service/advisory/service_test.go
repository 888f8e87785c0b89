package advisory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mamadbah2/agroboard/internal/domain/models"
)

type fakeClient struct {
	reply string
	err   error

	lastSystem  string
	lastHistory []models.ChatMessage
}

func (f *fakeClient) Complete(_ context.Context, system string, history []models.ChatMessage, _ string) (string, error) {
	f.lastSystem = system
	f.lastHistory = history
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeClient) MarketQuotes(context.Context) ([]models.Quote, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.Quote{{Name: "Fat cattle", Value: "R$ 312,00", Trend: "up"}}, nil
}

func (f *fakeClient) Forecast(context.Context, string) (*models.Forecast, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Forecast{Current: models.CurrentWeather{Temp: 28}}, nil
}

func TestAskThreadsConversation(t *testing.T) {
	client := &fakeClient{reply: "rotate the pasture"}
	svc := NewService(client, nil)

	reply, err := svc.Ask(context.Background(), models.AgentPastures, "stocking rate too high?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if reply != "rotate the pasture" {
		t.Errorf("reply = %q", reply)
	}

	if _, err := svc.Ask(context.Background(), models.AgentPastures, "and fertilization?"); err != nil {
		t.Fatalf("second Ask: %v", err)
	}

	// The second call should carry the first exchange as history.
	if len(client.lastHistory) != 2 {
		t.Errorf("history length = %d, want 2", len(client.lastHistory))
	}

	history := svc.History(models.AgentPastures)
	if len(history) != 4 {
		t.Errorf("stored history length = %d, want 4", len(history))
	}
}

func TestAskUsesAgentInstruction(t *testing.T) {
	client := &fakeClient{reply: "ok"}
	svc := NewService(client, nil)

	if _, err := svc.Ask(context.Background(), models.AgentVeterinarian, "vaccination schedule?"); err != nil {
		t.Fatalf("Ask: %v", err)
	}

	if client.lastSystem != agentInstructions[models.AgentVeterinarian] {
		t.Errorf("system = %q, want veterinarian instruction", client.lastSystem)
	}
}

func TestAskUnknownAgentRejected(t *testing.T) {
	svc := NewService(&fakeClient{reply: "ok"}, nil)

	if _, err := svc.Ask(context.Background(), "astrologer", "hello"); err == nil {
		t.Error("expected unknown agent to fail")
	}
}

func TestAskFailureLeavesHistoryUntouched(t *testing.T) {
	client := &fakeClient{err: errors.New("upstream down")}
	svc := NewService(client, nil)

	if _, err := svc.Ask(context.Background(), models.AgentFinance, "cost per arroba?"); err == nil {
		t.Fatal("expected error")
	}

	if got := svc.History(models.AgentFinance); len(got) != 0 {
		t.Errorf("history = %+v, want empty after failed exchange", got)
	}
}

func TestNilClientReportsUnavailable(t *testing.T) {
	svc := NewService(nil, nil)

	if _, err := svc.Ask(context.Background(), models.AgentMarket, "sell now?"); err == nil {
		t.Error("Ask should fail without a client")
	}
	if _, err := svc.Quotes(context.Background()); err == nil {
		t.Error("Quotes should fail without a client")
	}
	if _, err := svc.Forecast(context.Background(), "Campo Grande, MS"); err == nil {
		t.Error("Forecast should fail without a client")
	}
}

func TestSessionHistoryCap(t *testing.T) {
	sm := NewSessionManager()
	for i := 0; i < 30; i++ {
		sm.Append(models.AgentReports, fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
	}

	history := sm.History(models.AgentReports)
	if len(history) != historyCap {
		t.Errorf("history length = %d, want %d", len(history), historyCap)
	}
	if history[len(history)-1].Content != "a29" {
		t.Errorf("last message = %q, want a29", history[len(history)-1].Content)
	}
}
