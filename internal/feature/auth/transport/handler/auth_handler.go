// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"trade_backend/internal/api"
	"trade_backend/internal/feature/auth/domain/entity"
	"trade_backend/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は指定されたユーザー名・メールアドレス・パスワードで新規ユーザーを登録します。
	Register(ctx context.Context, username, email, password string) error
	// Login はユーザーを認証し、成功時にJWTトークンと本人情報を返します。
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterRequestにバインド
// - バリデーションエラー時・メール重複時は400を返却
// - その他の失敗時は500を返却
// - 成功時は201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req api.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Registration failed"})
		return
	}
	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "User created successfully!"})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginRequestにバインド
// - バリデーションエラー時・認証失敗時は400を返却
// - 認証成功時はJWTトークンと本人情報付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid Email or Password"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Login failed"})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.LoginResponse{
		Message: "Login successful!",
		Token:   token,
		User:    api.UserInfo{ID: user.ID, Username: user.Username},
	})
}
