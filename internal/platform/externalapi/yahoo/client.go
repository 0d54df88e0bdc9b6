package yahoo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"

	"trade_backend/internal/feature/trades/domain/entity"
	"trade_backend/internal/feature/trades/usecase"
	"trade_backend/internal/platform/externalapi/yahoo/dto"
)

const (
	// nseSuffix はインド国立証券取引所（NSE）の銘柄サフィックスです。
	nseSuffix = ".NS"

	// quoteSummaryModules は1回のリクエストで取得するモジュール群です。
	quoteSummaryModules = "price,summaryDetail,defaultKeyStatistics"
)

// YahooMarket はYahoo FinanceのquoteSummaryエンドポイントから市場スナップショットを
// 取得するMarketRepository実装です。
type YahooMarket struct {
	cfg    Config
	client *resty.Client
}

// YahooMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket は指定された設定とrestyクライアントでYahooMarketの新しいインスタンスを生成します。
func NewYahooMarket(cfg Config, client *resty.Client) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client}
}

// normalizeTicker は銘柄コードを大文字化し、NSEサフィックスがなければ付与します。
// 冪等です: 正規化済みの値を再度正規化しても同じ値になります。
func normalizeTicker(ticker string) string {
	symbol := strings.ToUpper(strings.TrimSpace(ticker))
	if !strings.HasSuffix(symbol, nseSuffix) {
		symbol += nseSuffix
	}
	return symbol
}

// GetSnapshot は銘柄の市場スナップショットを取得します。
// 銘柄が解決できない場合・プロバイダーがエラーを返した場合のいずれも
// usecase.ErrTickerNotFoundに集約します（呼び出し元は両者を区別しません）。
func (m *YahooMarket) GetSnapshot(ctx context.Context, ticker string) (*entity.Snapshot, error) {
	symbol := normalizeTicker(ticker)

	var body dto.QuoteSummaryResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetQueryParam("modules", quoteSummaryModules).
		SetResult(&body).
		Get(fmt.Sprintf("/v10/finance/quoteSummary/%s", symbol))
	if err != nil {
		slog.Warn("yahoo quoteSummary request failed", "symbol", symbol, "error", err)
		return nil, usecase.ErrTickerNotFound
	}
	if resp.IsError() {
		slog.Warn("yahoo quoteSummary returned error status", "symbol", symbol, "status", resp.StatusCode())
		return nil, usecase.ErrTickerNotFound
	}
	if apiErr := body.QuoteSummary.Error; apiErr != nil {
		slog.Warn("yahoo quoteSummary returned API error", "symbol", symbol, "code", apiErr.Code)
		return nil, usecase.ErrTickerNotFound
	}
	if len(body.QuoteSummary.Result) == 0 {
		return nil, usecase.ErrTickerNotFound
	}

	return toSnapshot(body.QuoteSummary.Result[0]), nil
}

// toSnapshot はプロバイダーのレスポンスをドメインのSnapshotに変換します。
// 欠損フィールドはnilのまま保持し、既定値への置き換え・配当利回りの整形は
// レスポンス境界に委ねます。
func toSnapshot(r dto.QuoteSummaryResult) *entity.Snapshot {
	snap := &entity.Snapshot{
		CurrentPrice:      raw(r.Price.RegularMarketPrice),
		DayHigh:           optional(r.Price.RegularMarketDayHigh),
		DayLow:            optional(r.Price.RegularMarketDayLow),
		Currency:          r.Price.Currency,
		PERatio:           optional(r.SummaryDetail.TrailingPE),
		MarketCap:         optional(r.Price.MarketCap),
		DividendYield:     optional(r.SummaryDetail.DividendYield),
		LastDividendValue: optional(r.SummaryDetail.LastDividendValue),
		FiftyDayAverage:   optional(r.SummaryDetail.FiftyDayAverage),
		MarketState:       r.Price.MarketState,
	}

	// 厳密な大小比較のため、50日平均と同値の場合はBEARISHになる。
	// 50日平均が欠損している場合はBULLISHと判定しない。
	if fifty := snap.FiftyDayAverage; fifty != nil && snap.CurrentPrice > *fifty {
		snap.Trend = entity.TrendBullish
	} else {
		snap.Trend = entity.TrendBearish
	}

	return snap
}

// raw はnil許容のラップ値から素の数値を取り出します。欠損は0です。
func raw(v *dto.Value) float64 {
	if v == nil {
		return 0
	}
	return v.Raw
}

// optional はnil許容のラップ値を欠損表現付きの数値に変換します。欠損はnilです。
func optional(v *dto.Value) *float64 {
	if v == nil {
		return nil
	}
	return &v.Raw
}
