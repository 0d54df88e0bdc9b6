// Package gemini はGoogle Gemini APIを使用したリスクアドバイザーを提供します。
package gemini

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"trade_backend/internal/feature/trades/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
)

// Config holds configuration for the Gemini risk advisor.
type Config struct {
	APIKey string // API key for authentication
	Model  string // Model name (defaults to DefaultModel)
}

// LoadConfig loads Gemini configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  os.Getenv("GEMINI_MODEL"),
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return cfg
}

// RiskAdvisor はGemini APIを使用してトレード仮説のリスク評価を生成します。
// JSONレスポンスモードで呼び出し、生のJSONテキストを返します。
// 出力の検証は呼び出し元（usecase）が行います。
type RiskAdvisor struct {
	client *genai.Client
	model  string
}

// RiskAdvisorがusecase.RiskAdvisorを実装していることをコンパイル時に検証します。
var _ usecase.RiskAdvisor = (*RiskAdvisor)(nil)

// NewRiskAdvisor は指定された設定でRiskAdvisorの新しいインスタンスを生成します。
func NewRiskAdvisor(ctx context.Context, cfg Config) (*RiskAdvisor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &RiskAdvisor{client: client, model: model}, nil
}

// Assess はシステム指示とユーザーコンテンツでモデルを1回呼び出し、
// モデルが返したテキストをそのまま返します。リトライは行いません。
func (a *RiskAdvisor) Assess(ctx context.Context, system, user string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}
	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(user), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return resp.Text(), nil
}
