package usecase

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"trade_backend/internal/feature/trades/domain/entity"
)

// assessmentDTO はアドバイザーが返すJSONのデコード先です。
// confidenceはモデルが小数で返すことがあるためfloat64で受け、検証時に整数化します。
type assessmentDTO struct {
	Critique    string  `json:"critique"`
	Prediction  string  `json:"prediction"`
	Confidence  float64 `json:"confidence"`
	SuggestedSL float64 `json:"suggested_sl"`
	SuggestedTP float64 `json:"suggested_tp"`
}

// parseAssessment はアドバイザーの生出力を厳密に検証し、RiskAssessmentに変換します。
// 契約違反（非JSON、未知のprediction、範囲外のconfidence、非正の価格）はすべて
// ErrMalformedAssessmentとして報告し、呼び出し元での永続化を防ぎます。
func parseAssessment(raw string) (*entity.RiskAssessment, error) {
	var dto assessmentDTO
	if err := json.Unmarshal([]byte(stripFences(raw)), &dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAssessment, err)
	}

	if dto.Critique == "" {
		return nil, fmt.Errorf("%w: empty critique", ErrMalformedAssessment)
	}
	if dto.Prediction != entity.PredictionSuccess && dto.Prediction != entity.PredictionLoss {
		return nil, fmt.Errorf("%w: unknown prediction %q", ErrMalformedAssessment, dto.Prediction)
	}
	if dto.Confidence < 0 || dto.Confidence > 100 || math.IsNaN(dto.Confidence) {
		return nil, fmt.Errorf("%w: confidence %v out of range", ErrMalformedAssessment, dto.Confidence)
	}
	if dto.SuggestedSL <= 0 || dto.SuggestedTP <= 0 {
		return nil, fmt.Errorf("%w: non-positive price levels (sl=%v, tp=%v)",
			ErrMalformedAssessment, dto.SuggestedSL, dto.SuggestedTP)
	}

	return &entity.RiskAssessment{
		Critique:    dto.Critique,
		Prediction:  dto.Prediction,
		Confidence:  int(math.Round(dto.Confidence)),
		SuggestedSL: dto.SuggestedSL,
		SuggestedTP: dto.SuggestedTP,
	}, nil
}

// stripFences はモデルがJSONモードでも稀に付けるMarkdownフェンスを除去します。
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
