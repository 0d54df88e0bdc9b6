// Package handler はtradesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trade_backend/internal/api"
	"trade_backend/internal/feature/trades/domain/entity"
	"trade_backend/internal/feature/trades/usecase"
	jwtmw "trade_backend/internal/platform/jwt"
)

// TradesUsecase はトレード仮説操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type TradesUsecase interface {
	Analyze(ctx context.Context, userID uint, in usecase.AnalyzeInput) (*usecase.AnalysisResult, error)
	History(ctx context.Context, userID uint) ([]entity.TradeThesis, error)
	Price(ctx context.Context, ticker string) (*entity.Snapshot, error)
}

// TradeHandler はトレード仮説のHTTPリクエストを処理します。
type TradeHandler struct {
	trades TradesUsecase
}

// NewTradeHandler は指定されたusecaseでTradeHandlerの新しいインスタンスを生成します。
func NewTradeHandler(trades TradesUsecase) *TradeHandler {
	return &TradeHandler{trades: trades}
}

// identity はミドルウェアが設定した検証済みユーザーIDを取り出します。
func identity(c *gin.Context) (uint, bool) {
	v, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		return 0, false
	}
	userID, ok := v.(uint)
	return userID, ok
}

// Price は銘柄の現在の市場スナップショットを返します。
//
// GET /api/trades/price/:ticker
func (h *TradeHandler) Price(c *gin.Context) {
	snap, err := h.trades.Price(c.Request.Context(), c.Param("ticker"))
	if err != nil {
		if errors.Is(err, usecase.ErrTickerNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Ticker not found"})
			return
		}
		slog.Error("price fetch failed", "ticker", c.Param("ticker"), "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Fetch failed"})
		return
	}

	c.JSON(http.StatusOK, api.PriceResponse{
		Price:             snap.CurrentPrice,
		Trend:             snap.Trend,
		DayHigh:           snap.DayHigh,
		DayLow:            snap.DayLow,
		Currency:          snap.Currency,
		PERatio:           formatOptional(snap.PERatio),
		MarketCap:         snap.MarketCap,
		DividendYield:     formatYield(snap.DividendYield),
		LastDividendValue: snap.LastDividendValue,
		FiftyDayAverage:   snap.FiftyDayAverage,
		MarketState:       snap.MarketState,
	})
}

// History は呼び出しユーザーのトレード仮説を新しい順に返します。
//
// GET /api/trades/history
func (h *TradeHandler) History(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing identity"})
		return
	}

	theses, err := h.trades.History(c.Request.Context(), userID)
	if err != nil {
		slog.Error("history fetch failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch history"})
		return
	}

	out := make([]api.ThesisResponse, 0, len(theses))
	for _, th := range theses {
		out = append(out, api.ThesisResponse{
			ID:                   th.ID,
			Ticker:               th.Ticker,
			Timeframe:            th.Timeframe,
			TradeType:            th.TradeType,
			EntryPrice:           th.EntryPrice,
			UserReason:           th.UserReason,
			AICritique:           th.AICritique,
			SuggestedSL:          th.SuggestedSL,
			SuggestedTP:          th.SuggestedTP,
			PredictionConfidence: th.PredictionConfidence,
			Status:               th.Status,
			CreatedAt:            th.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, out)
}

// Analyze はトレード仮説を受け取り、AIリスク評価付きで記録します。
//
// POST /api/trades/analyze
func (h *TradeHandler) Analyze(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing identity"})
		return
	}

	var req api.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("analyze validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	result, err := h.trades.Analyze(c.Request.Context(), userID, usecase.AnalyzeInput{
		Ticker:     req.Ticker,
		Timeframe:  req.Timeframe,
		TradeType:  req.TradeType,
		EntryPrice: req.EntryPrice,
		UserReason: req.UserReason,
	})
	if err != nil {
		// 上流障害・不正出力の詳細はサーバー側ログにのみ残す
		slog.Error("analysis failed", "user_id", userID, "ticker", req.Ticker, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Could not process analysis"})
		return
	}

	c.JSON(http.StatusCreated, api.AnalyzeResponse{
		Message:  "Analysis Complete!",
		Analysis: toAnalysisResponse(result),
		TradeID:  result.TradeID,
	})
}

// toAnalysisResponse は検証済み評価とスナップショットをレスポンスDTOに変換します。
// スナップショット欠損時は各フィールドを個別にデフォルト値で埋めます。
func toAnalysisResponse(result *usecase.AnalysisResult) api.AnalysisResponse {
	fundamentals := api.FundamentalsResponse{
		PE:              "N/A",
		DividendYield:   "0.00%",
		MarketCap:       "N/A",
		DayHigh:         "N/A",
		DayLow:          "N/A",
		FiftyDayAverage: "N/A",
		Trend:           "Unknown",
	}
	if snap := result.Snapshot; snap != nil {
		fundamentals = api.FundamentalsResponse{
			PE:              formatOptional(snap.PERatio),
			DividendYield:   formatYield(snap.DividendYield),
			MarketCap:       formatAmount(snap.MarketCap),
			DayHigh:         formatOptional(snap.DayHigh),
			DayLow:          formatOptional(snap.DayLow),
			FiftyDayAverage: formatOptional(snap.FiftyDayAverage),
			Trend:           snap.Trend,
		}
	}

	return api.AnalysisResponse{
		Critique:     result.Assessment.Critique,
		Prediction:   result.Assessment.Prediction,
		Confidence:   result.Assessment.Confidence,
		SuggestedSL:  result.Assessment.SuggestedSL,
		SuggestedTP:  result.Assessment.SuggestedTP,
		Fundamentals: fundamentals,
		News:         []string{}, // ニュース統合用の拡張スロット
	}
}

// formatOptional は欠損し得る価格系の値を小数2桁で整形します。欠損は"N/A"です。
func formatOptional(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

// formatAmount は欠損し得る金額系の値を整数表記で整形します。欠損は"N/A"です。
func formatAmount(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', 0, 64)
}

// formatYield は素の比率をパーセント文字列（小数2桁）に整形します。
// 欠損（無配当を含む）は"0.00%"になります。
func formatYield(ratio *float64) string {
	if ratio == nil {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", *ratio*100)
}
