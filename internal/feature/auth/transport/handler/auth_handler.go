// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle_backend/internal/api"
	"vehicle_backend/internal/feature/auth/transport/http/dto"
	jwtmw "vehicle_backend/internal/platform/jwt"
	"vehicle_backend/internal/platform/logger"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Login はユーザーを認証し、成功時に署名済みトークンを返します。
	Login(ctx context.Context, username, password string) (jwtmw.Token, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login はログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却
// - 成功時はトークンと失効時刻付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	log := logger.Get()

	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Str("remote_addr", c.ClientIP()).Msg("login validation failed")
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		log.Warn().Err(err).Str("username", req.Username).Str("remote_addr", c.ClientIP()).Msg("login failed")
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid username or password"})
		return
	}

	log.Info().Str("username", req.Username).Str("remote_addr", c.ClientIP()).Msg("user login successful")
	c.JSON(http.StatusOK, dto.LoginResp{Token: token.Value, ExpiresAt: token.ExpiresAt})
}
