package entity

const (
	// PredictionSuccess はトレードが成功する可能性が高いという予測です。
	PredictionSuccess = "SUCCESS"
	// PredictionLoss はトレードが損失に終わる可能性が高いという予測です。
	PredictionLoss = "LOSS"
)

// RiskAssessment はリスクアドバイザー（LLM）の構造化出力を検証済みの型に落としたものです。
// スキーマ検証を通過したものだけがこの型になり、永続化・返却されます。
type RiskAssessment struct {
	// Critique はユーザーのトレード根拠に対する3点の批判的分析です。
	Critique string

	// Prediction はPredictionSuccessまたはPredictionLossのいずれかです。
	Prediction string

	// Confidence は予測の確信度（0〜100の整数）です。
	Confidence int

	// SuggestedSL は提案された損切り価格です。
	SuggestedSL float64

	// SuggestedTP は提案された利確価格です（リスクリワード比1:2を目標）。
	SuggestedTP float64
}
