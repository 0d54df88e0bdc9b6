package router

import (
	authhandler "trade_backend/internal/feature/auth/transport/handler"
	tradehandler "trade_backend/internal/feature/trades/transport/handler"
	"trade_backend/internal/platform/http/handler"
	jwtmw "trade_backend/internal/platform/jwt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *authhandler.AuthHandler, trades *tradehandler.TradeHandler) *gin.Engine {
	r := gin.Default()

	// ブラウザクライアント向けCORS
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)

	auth := r.Group("/api/auth")
	{
		// 新規ユーザー登録
		auth.POST("/register", authHandler.Register)
		// ログイン（JWT 発行）
		auth.POST("/login", authHandler.Login)
	}

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	api := r.Group("/api/trades")
	api.Use(jwtmw.AuthRequired())
	{
		api.GET("/price/:ticker", trades.Price)
		api.GET("/history", trades.History)
		api.POST("/analyze", trades.Analyze)
	}

	return r
}
