package usecase

import (
	"fmt"
	"strconv"

	"trade_backend/internal/feature/trades/domain/entity"
)

// systemPrompt はリスクアドバイザーへの固定のシステム指示です。
// JSONのみを返すこと、および各キーの意味を契約として明示します。
const systemPrompt = `You are a Data-Driven Risk Manager. You have access to LIVE market data.
Compare the user's logic against the provided market stats.
If the user wants to buy but the trend is BEARISH, be extra critical.
Respond ONLY with a JSON object containing exactly these keys:
- "critique": (A critical 3-point analysis of their logic)
- "prediction": (One word: "SUCCESS" or "LOSS" based on probability)
- "confidence": (An integer 0-100)
- "suggested_sl": (A numeric stop-loss price based on standard risk management for the given trade type)
- "suggested_tp": (A numeric take-profit price for a 1:2 risk-reward ratio)`

// buildUserContent は取得済みの市場データとユーザー仮説を埋め込んだユーザープロンプトを組み立てます。
// スナップショットが取得できなかった場合はプレースホルダー（"N/A"/"Unknown"）で継続します。
func buildUserContent(in AnalyzeInput, snap *entity.Snapshot) string {
	price := "N/A"
	trend := "Unknown"
	if snap != nil {
		price = strconv.FormatFloat(snap.CurrentPrice, 'f', -1, 64)
		trend = snap.Trend
	}

	return fmt.Sprintf(`REAL MARKET DATA for %s:
- Current Price: %s
- 50-Day Trend: %s

USER THESIS:
- Trade Type: %s
- Timeframe: %s
- Reason: %s
- Entry Price: %s`,
		in.Ticker, price, trend,
		in.TradeType, in.Timeframe, in.UserReason,
		strconv.FormatFloat(in.EntryPrice, 'f', -1, 64))
}
