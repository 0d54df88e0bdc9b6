// Package dto defines data transfer objects for the Yahoo Finance API responses.
package dto

// Value represents Yahoo's wrapped numeric field ({"raw": 3600.5, "fmt": "3,600.50"}).
// Fields the provider omits decode to a nil *Value.
type Value struct {
	Raw float64 `json:"raw"`
	Fmt string  `json:"fmt,omitempty"`
}

// QuoteSummaryResponse represents the JSON response from the quoteSummary endpoint
// with the price and summaryDetail modules requested.
type QuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []QuoteSummaryResult `json:"result"`
		Error  *APIError            `json:"error"`
	} `json:"quoteSummary"`
}

// QuoteSummaryResult is a single resolved symbol in a quoteSummary response.
type QuoteSummaryResult struct {
	Price struct {
		RegularMarketPrice   *Value `json:"regularMarketPrice"`
		RegularMarketDayHigh *Value `json:"regularMarketDayHigh"`
		RegularMarketDayLow  *Value `json:"regularMarketDayLow"`
		MarketCap            *Value `json:"marketCap"`
		Currency             string `json:"currency"`
		MarketState          string `json:"marketState"`
	} `json:"price"`
	SummaryDetail struct {
		TrailingPE        *Value `json:"trailingPE"`
		DividendYield     *Value `json:"dividendYield"`
		LastDividendValue *Value `json:"lastDividendValue"`
		FiftyDayAverage   *Value `json:"fiftyDayAverage"`
	} `json:"summaryDetail"`
}

// APIError is the error object Yahoo returns for unknown symbols.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
