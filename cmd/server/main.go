package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"trade_backend/internal/app/di"
	"trade_backend/internal/app/router"
	authadapters "trade_backend/internal/feature/auth/adapters"
	authhandler "trade_backend/internal/feature/auth/transport/handler"
	authusecase "trade_backend/internal/feature/auth/usecase"
	tradeadapters "trade_backend/internal/feature/trades/adapters"
	tradehandler "trade_backend/internal/feature/trades/transport/handler"
	tradeusecase "trade_backend/internal/feature/trades/usecase"
	infradb "trade_backend/internal/platform/db"
	jwtmw "trade_backend/internal/platform/jwt"
)

func main() {
	// ローカル開発用。.env が無くても致命的ではない
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env not found, using environment variables")
	}

	// db
	db := infradb.OpenDB()

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Gemini
	advisor, err := di.NewAdvisor(context.Background())
	if err != nil {
		log.Fatalf("failed to create risk advisor: %v", err)
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	thesisRepo := tradeadapters.NewThesisMySQL(db)
	market := di.NewMarket()

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewGenerator(secret, 24*time.Hour))
	tradesUC := tradeusecase.NewTradesUsecase(thesisRepo, market, advisor)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	tradesH := tradehandler.NewTradeHandler(tradesUC)

	// ルータ生成
	r := router.NewRouter(authH, tradesH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
