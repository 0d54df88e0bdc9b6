package entity

const (
	// TrendBullish は現在価格が50日平均を上回っている状態です。
	TrendBullish = "BULLISH"
	// TrendBearish は現在価格が50日平均以下の状態です（同値・50日平均欠損を含む）。
	TrendBearish = "BEARISH"
)

// Snapshot は外部プロバイダーから取得した、ある時点の市場指標の束です。
// リクエストごとに取得され、永続化はされません。
//
// プロバイダーは銘柄を解決できてもモジュール単位・フィールド単位で値を
// 省略することがあるため、欠損し得るフィールドはすべて*float64で表現します。
// 欠損の既定値への置き換えはフィールドごとに独立して、レスポンス境界でのみ行います。
type Snapshot struct {
	// CurrentPrice は現在の市場価格です。
	CurrentPrice float64

	// DayHigh / DayLow は当日の高値・安値です。欠損はnilです。
	DayHigh *float64
	DayLow  *float64

	// Currency は価格の通貨コードです（例: "INR"）。
	Currency string

	// PERatio は実績PERです。赤字企業などではプロバイダーが値を返さないため、
	// 欠損をnilで表現します。
	PERatio *float64

	// MarketCap は時価総額（通貨建ての実数）です。欠損はnilです。
	MarketCap *float64

	// DividendYield は配当利回りの素の比率です（例: 1.5%なら0.015）。
	// パーセント文字列への整形はレスポンス境界でのみ行います。欠損はnilです。
	DividendYield *float64

	// LastDividendValue は直近の1株あたり配当額です。未配当・欠損はnilです。
	LastDividendValue *float64

	// FiftyDayAverage は50日移動平均価格です。欠損はnilです。
	FiftyDayAverage *float64

	// Trend はCurrentPriceとFiftyDayAverageの比較から導出されます。
	// 厳密な大小比較（>）のため、同値はTrendBearishになります。
	// FiftyDayAverageが欠損している場合もTrendBearishです。
	Trend string

	// MarketState は市場の開閉状態です（例: "REGULAR", "CLOSED"）。
	MarketState string
}
