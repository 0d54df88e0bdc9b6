package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"trade_backend/internal/feature/trades/domain/entity"
)

// ThesisRepository はトレード仮説レコードの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ThesisRepository interface {
	// Create は新しいトレード仮説レコードをストレージに永続化します。
	Create(ctx context.Context, thesis *entity.TradeThesis) error

	// FindByUserID は指定ユーザーのレコードを作成日時の降順で取得します。
	FindByUserID(ctx context.Context, userID uint) ([]entity.TradeThesis, error)
}

// MarketRepository は外部の市場データプロバイダーを抽象化します。
// 銘柄が解決できない場合やプロバイダー障害時はErrTickerNotFoundを返します。
type MarketRepository interface {
	GetSnapshot(ctx context.Context, ticker string) (*entity.Snapshot, error)
}

// RiskAdvisor は外部の推論プロバイダー（LLM）を抽象化します。
// Assess はシステム指示とユーザーコンテンツを渡し、生のJSONテキストを返します。
type RiskAdvisor interface {
	Assess(ctx context.Context, system, user string) (string, error)
}

// AnalyzeInput はユーザーが提出するトレード仮説です。
type AnalyzeInput struct {
	Ticker     string
	Timeframe  string
	TradeType  string
	EntryPrice float64
	UserReason string
}

// AnalysisResult は1回の分析の統合結果です。
// Snapshot は市場データが取得できなかった場合nilになります。
type AnalysisResult struct {
	Assessment entity.RiskAssessment
	Snapshot   *entity.Snapshot
	TradeID    uint
}

// tradesUsecase はトレード仮説の分析・履歴・価格参照のビジネスロジックを実装します。
type tradesUsecase struct {
	theses  ThesisRepository
	market  MarketRepository
	advisor RiskAdvisor
}

// NewTradesUsecase はtradesUsecaseの新しいインスタンスを生成します。
func NewTradesUsecase(theses ThesisRepository, market MarketRepository, advisor RiskAdvisor) *tradesUsecase {
	return &tradesUsecase{theses: theses, market: market, advisor: advisor}
}

// Analyze は認証済みユーザーのトレード仮説を分析します。
//
// 処理の流れ:
//  1. 市場スナップショットを取得（失敗は致命的ではなく、プレースホルダーで継続）
//  2. システム指示とユーザーコンテンツを組み立ててアドバイザーを1回呼び出す（リトライなし）
//  3. 出力を厳密に検証（違反はErrMalformedAssessment）
//  4. 検証を通過した場合のみレコードを永続化（単一INSERT、部分書き込みなし）
func (u *tradesUsecase) Analyze(ctx context.Context, userID uint, in AnalyzeInput) (*AnalysisResult, error) {
	snap, err := u.market.GetSnapshot(ctx, in.Ticker)
	if err != nil {
		// スナップショット欠損は分析を止めない
		slog.Warn("market snapshot unavailable", "ticker", in.Ticker, "error", err)
		snap = nil
	}

	raw, err := u.advisor.Assess(ctx, systemPrompt, buildUserContent(in, snap))
	if err != nil {
		return nil, fmt.Errorf("risk advisor request failed: %w", err)
	}

	assessment, err := parseAssessment(raw)
	if err != nil {
		return nil, err
	}

	thesis := &entity.TradeThesis{
		UserID:               userID,
		Ticker:               in.Ticker,
		Timeframe:            in.Timeframe,
		TradeType:            in.TradeType,
		EntryPrice:           in.EntryPrice,
		UserReason:           in.UserReason,
		AICritique:           assessment.Critique,
		SuggestedSL:          assessment.SuggestedSL,
		SuggestedTP:          assessment.SuggestedTP,
		PredictionConfidence: assessment.Confidence,
		Status:               entity.StatusOpen,
	}
	if err := u.theses.Create(ctx, thesis); err != nil {
		return nil, fmt.Errorf("failed to persist trade thesis: %w", err)
	}

	return &AnalysisResult{
		Assessment: *assessment,
		Snapshot:   snap,
		TradeID:    thesis.ID,
	}, nil
}

// History は呼び出しユーザー自身のトレード仮説を新しい順に返します。
func (u *tradesUsecase) History(ctx context.Context, userID uint) ([]entity.TradeThesis, error) {
	return u.theses.FindByUserID(ctx, userID)
}

// Price は指定銘柄の市場スナップショットをそのまま返します。
// 解決できない場合はErrTickerNotFoundを返します。
func (u *tradesUsecase) Price(ctx context.Context, ticker string) (*entity.Snapshot, error) {
	return u.market.GetSnapshot(ctx, ticker)
}
