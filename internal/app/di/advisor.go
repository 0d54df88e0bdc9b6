package di

import (
	"context"

	"trade_backend/internal/feature/trades/adapters/gemini"
)

// NewAdvisor creates a Gemini-backed RiskAdvisor from environment configuration.
func NewAdvisor(ctx context.Context) (*gemini.RiskAdvisor, error) {
	cfg := gemini.LoadConfig()
	return gemini.NewRiskAdvisor(ctx, cfg)
}
