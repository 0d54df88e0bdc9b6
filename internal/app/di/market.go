// Package di provides dependency injection factories for creating application components.
package di

import (
	"trade_backend/internal/platform/externalapi/yahoo"
	infrahttp "trade_backend/internal/platform/http"
)

// NewMarket creates a fully configured YahooMarket with HTTP client.
func NewMarket() *yahoo.YahooMarket {
	cfg := yahoo.LoadConfig()
	client := infrahttp.NewRestyClient(cfg.BaseURL, cfg.Timeout)
	return yahoo.NewYahooMarket(cfg, client)
}
