// Package api defines the JSON request and response types shared by the HTTP handlers.
package api

import "time"

// ErrorResponse is the uniform error body returned to clients.
// Failure detail is logged server-side only.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterRequest represents the request body for POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserInfo is the public identity slice returned at login.
type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// LoginResponse is the success body for POST /api/auth/login.
type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

// AnalyzeRequest represents a trade-thesis submission for POST /api/trades/analyze.
type AnalyzeRequest struct {
	Ticker     string  `json:"ticker" binding:"required"`
	Timeframe  string  `json:"timeframe" binding:"required"`
	TradeType  string  `json:"trade_type" binding:"required"`
	EntryPrice float64 `json:"entry_price" binding:"required,gt=0"`
	UserReason string  `json:"user_reason" binding:"required"`
}

// FundamentalsResponse carries snapshot metrics alongside an analysis.
// Every field is independently defaulted ("N/A", "0.00%", "Unknown") when the
// snapshot or the individual metric is absent; values are formatted strings
// only at this boundary.
type FundamentalsResponse struct {
	PE              string `json:"pe"`
	DividendYield   string `json:"dividendYield"`
	MarketCap       string `json:"marketCap"`
	DayHigh         string `json:"dayHigh"`
	DayLow          string `json:"dayLow"`
	FiftyDayAverage string `json:"fiftyDayAverage"`
	Trend           string `json:"trend"`
}

// AnalysisResponse is the validated advisor output merged with fundamentals.
// News is an extensibility slot and currently always empty.
type AnalysisResponse struct {
	Critique     string               `json:"critique"`
	Prediction   string               `json:"prediction"`
	Confidence   int                  `json:"confidence"`
	SuggestedSL  float64              `json:"suggested_sl"`
	SuggestedTP  float64              `json:"suggested_tp"`
	Fundamentals FundamentalsResponse `json:"fundamentals"`
	News         []string             `json:"news"`
}

// AnalyzeResponse is the success body for POST /api/trades/analyze.
type AnalyzeResponse struct {
	Message  string           `json:"message"`
	Analysis AnalysisResponse `json:"analysis"`
	TradeID  uint             `json:"tradeId"`
}

// PriceResponse is the success body for GET /api/trades/price/:ticker.
// Numeric fields the provider omitted are absent from the body rather than
// rendered as zero.
type PriceResponse struct {
	Price             float64  `json:"price"`
	Trend             string   `json:"trend"`
	DayHigh           *float64 `json:"dayHigh,omitempty"`
	DayLow            *float64 `json:"dayLow,omitempty"`
	Currency          string   `json:"currency"`
	PERatio           string   `json:"peRatio"`
	MarketCap         *float64 `json:"marketCap,omitempty"`
	DividendYield     string   `json:"dividendYield"`
	LastDividendValue *float64 `json:"lastDividendValue,omitempty"`
	FiftyDayAverage   *float64 `json:"fiftyDayAverage,omitempty"`
	MarketState       string   `json:"marketState"`
}

// ThesisResponse is one record in the GET /api/trades/history result.
type ThesisResponse struct {
	ID                   uint      `json:"id"`
	Ticker               string    `json:"ticker"`
	Timeframe            string    `json:"timeframe"`
	TradeType            string    `json:"trade_type"`
	EntryPrice           float64   `json:"entry_price"`
	UserReason           string    `json:"user_reason"`
	AICritique           string    `json:"ai_critique"`
	SuggestedSL          float64   `json:"suggested_sl"`
	SuggestedTP          float64   `json:"suggested_tp"`
	PredictionConfidence int       `json:"prediction_confidence"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
}
