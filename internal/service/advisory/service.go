package advisory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/agroboard/internal/domain/models"
	client "github.com/mamadbah2/agroboard/pkg/clients/advisory"
)

// agentInstructions holds the system instruction per specialist persona.
var agentInstructions = map[models.AgentRole]string{
	models.AgentVeterinarian: "You are a veterinarian specialized in beef herd health. Suggest vaccination and deworming protocols and diagnose common pasture and feedlot diseases.",
	models.AgentNutritionist: "You are a senior animal scientist focused on precision nutrition. Help formulate diets (pasture, supplementation, semi-confinement) targeting average daily gain.",
	models.AgentMarket:       "You are a commodity market analyst for fat cattle. Analyze livestock cycles, CEPEA and B3 prices, and suggest the best moment to buy or sell animals.",
	models.AgentPastures:     "You are a forage specialist. Focus on rotational grazing, stocking rate per hectare, pasture fertilization and weed control.",
	models.AgentFinance:      "You are a livestock financial management consultant. Compute cost per arroba produced, herd ROI and operation EBITDA.",
	models.AgentAgronomist:   "You are an agronomist specialized in grain crops (soybean/corn). Help with soil management, pest control, fertilization and season planning.",
	models.AgentLivestock:    "You are a beef cattle specialist. Focus on herd handling, animal reproduction, welfare and genetic improvement.",
	models.AgentManagement:   "You are a rural management consultant. Help with input logistics, field staff management and operational process optimization.",
	models.AgentReports:      "You are an agribusiness data analyst. Help interpret financial, productive and zootechnical key performance indicators.",
}

// Service fronts the external advisory provider: per-agent chat sessions,
// market quotes and weather forecasts. It owns no entity state and is never
// called by the ledger core.
type Service struct {
	client   client.Client
	sessions *SessionManager
	logger   *zap.Logger
}

// NewService wires a new advisory service. cl may be nil when no API key is
// configured; every call then reports the service as unavailable.
func NewService(cl client.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:   cl,
		sessions: NewSessionManager(),
		logger:   logger,
	}
}

// Ask sends a prompt to the given agent, threading that agent's running
// conversation. The exchange is recorded only on success.
func (s *Service) Ask(ctx context.Context, role models.AgentRole, prompt string) (string, error) {
	system, ok := agentInstructions[role]
	if !ok {
		return "", fmt.Errorf("unknown agent role %q", role)
	}
	if s.client == nil {
		return "", fmt.Errorf("advisory client not configured")
	}

	history := s.sessions.History(role)
	reply, err := s.client.Complete(ctx, system, history, prompt)
	if err != nil {
		s.logger.Warn("agent completion failed", zap.String("agent", string(role)), zap.Error(err))
		return "", err
	}

	s.sessions.Append(role, prompt, reply)
	return reply, nil
}

// History exposes the stored conversation for an agent.
func (s *Service) History(role models.AgentRole) []models.ChatMessage {
	return s.sessions.History(role)
}

// Quotes fetches the market quotation board.
func (s *Service) Quotes(ctx context.Context) ([]models.Quote, error) {
	if s.client == nil {
		return nil, fmt.Errorf("advisory client not configured")
	}
	quotes, err := s.client.MarketQuotes(ctx)
	if err != nil {
		s.logger.Warn("market quotes failed", zap.Error(err))
		return nil, err
	}
	return quotes, nil
}

// Forecast fetches the structured weather forecast for a location.
func (s *Service) Forecast(ctx context.Context, location string) (*models.Forecast, error) {
	if s.client == nil {
		return nil, fmt.Errorf("advisory client not configured")
	}
	forecast, err := s.client.Forecast(ctx, location)
	if err != nil {
		s.logger.Warn("forecast failed", zap.String("location", location), zap.Error(err))
		return nil, err
	}
	return forecast, nil
}
