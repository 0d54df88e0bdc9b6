// Package entity はtradesフィーチャーのドメインエンティティを定義します。
package entity

import "time"

const (
	// StatusOpen は作成直後のトレード仮説のステータスです。
	// クローズ処理は未実装のため、現状すべてのレコードがこの値を持ちます。
	StatusOpen = "OPEN"
)

// TradeThesis はユーザーが提出したトレード仮説と、そのAIリスク評価の永続化レコードです。
// 1回の分析リクエストの成功につき、ちょうど1件作成されます。
type TradeThesis struct {
	// ID はレコードの一意識別子です。
	ID uint `gorm:"primaryKey"`

	// UserID は仮説を提出したユーザーのIDです。
	UserID uint `gorm:"index;not null"`

	// Ticker は分析対象の銘柄コードです（例: "TCS"）。
	Ticker string `gorm:"size:32;not null"`

	// Timeframe はトレードの想定期間です（例: "swing"）。
	Timeframe string `gorm:"size:32"`

	// TradeType は売買区分です（例: "BUY"）。
	TradeType string `gorm:"size:16"`

	// EntryPrice はユーザーが想定するエントリー価格です。
	EntryPrice float64

	// UserReason はユーザーが記述したトレード根拠です。
	UserReason string `gorm:"type:text"`

	// AICritique はリスクアドバイザーが生成した批評文です。
	AICritique string `gorm:"column:ai_critique;type:text"`

	// SuggestedSL はアドバイザーが提案した損切り価格です。
	SuggestedSL float64 `gorm:"column:suggested_sl"`

	// SuggestedTP はアドバイザーが提案した利確価格です。
	SuggestedTP float64 `gorm:"column:suggested_tp"`

	// PredictionConfidence は予測の確信度（0〜100）です。
	PredictionConfidence int

	// Status はトレードのライフサイクル状態です。作成時は常にStatusOpenです。
	Status string `gorm:"size:16;not null"`

	// CreatedAt はレコードの作成日時です。履歴はこの値の降順で返されます。
	CreatedAt time.Time
}

// TableName は既存スキーマのテーブル名に合わせます。
func (TradeThesis) TableName() string { return "trade_theses" }
