// Package handler はカタログフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vehicle_backend/internal/api"
	"vehicle_backend/internal/feature/catalog/usecase"
	"vehicle_backend/internal/platform/identity"
	"vehicle_backend/internal/platform/logger"
	"vehicle_backend/internal/platform/persistence"
)

// isAdmin はリクエストの認証済みアイデンティティが管理者か判定します。
// 未認証リクエストは非管理者として扱います。
func isAdmin(c *gin.Context) bool {
	id, ok := identity.FromContext(c.Request.Context())
	return ok && id.IsAdmin
}

// parseID はパスパラメータのUUIDを解析し、不正なら400を書き込みます。
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// pageQuery はpageNumber/pageSizeクエリパラメータを読み取ります。
// 解析に失敗した値はユースケース側のデフォルトに正規化されます。
func pageQuery(c *gin.Context) usecase.PageQuery {
	number, _ := strconv.Atoi(c.DefaultQuery("pageNumber", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	return usecase.PageQuery{Number: number, Size: size}
}

// writeDomainError はユースケースのエラーをHTTPステータスに写像します。
func writeDomainError(c *gin.Context, err error, conflictMsg string) {
	switch {
	case errors.Is(err, usecase.ErrBrandNotFound),
		errors.Is(err, usecase.ErrModelNotFound),
		errors.Is(err, usecase.ErrVehicleNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, persistence.ErrConflict):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: conflictMsg})
	default:
		log := logger.Get()
		log.Error().Err(err).Str("path", c.FullPath()).Msg("catalog request failed")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}
