package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vehicle_backend/internal/api"
	"vehicle_backend/internal/feature/catalog/domain/entity"
	"vehicle_backend/internal/feature/catalog/transport/http/dto"
	"vehicle_backend/internal/feature/catalog/usecase"
)

// BrandUsecase はブランド操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー(usecase)ではなくコンシューマー(handler)が定義します。
type BrandUsecase interface {
	List(ctx context.Context, name string, page usecase.PageQuery) (usecase.Page[entity.Brand], error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
	Create(ctx context.Context, name string) (*entity.Brand, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*entity.Brand, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListIncludingDeleted(ctx context.Context) ([]entity.Brand, error)
}

// BrandHandler はブランド操作のHTTPリクエストを処理します。
type BrandHandler struct {
	brands BrandUsecase
}

// NewBrandHandler はBrandHandlerの新しいインスタンスを生成します。
func NewBrandHandler(brands BrandUsecase) *BrandHandler {
	return &BrandHandler{brands: brands}
}

// List はGET /api/brandsを処理します。名前フィルタとページングに対応します。
func (h *BrandHandler) List(c *gin.Context) {
	page, err := h.brands.List(c.Request.Context(), c.Query("name"), pageQuery(c))
	if err != nil {
		writeDomainError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.PaginatedResponse[dto.BrandResp]{
		Items:      dto.NewBrandList(page.Items, isAdmin(c)),
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
	})
}

// Get はGET /api/brands/:idを処理します。
func (h *BrandHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.brands.Get(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dto.NewBrandResp(b, isAdmin(c)))
}

// Create はPOST /api/brandsを処理します。名前重複は409になります。
func (h *BrandHandler) Create(c *gin.Context) {
	var req dto.CreateBrandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	b, err := h.brands.Create(c.Request.Context(), req.Name)
	if err != nil {
		writeDomainError(c, err, "a brand with name '"+req.Name+"' already exists")
		return
	}
	c.JSON(http.StatusCreated, dto.NewBrandResp(b, isAdmin(c)))
}

// Update はPUT /api/brands/:idを処理します。
func (h *BrandHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateBrandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	b, err := h.brands.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		writeDomainError(c, err, "a brand with name '"+req.Name+"' already exists")
		return
	}
	c.JSON(http.StatusOK, dto.NewBrandResp(b, isAdmin(c)))
}

// Delete はDELETE /api/brands/:idを処理します。成功時は204を返します。
func (h *BrandHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.brands.Delete(c.Request.Context(), id); err != nil {
		writeDomainError(c, err, "")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListDeleted はGET /api/brands/deletedを処理します。削除済みを含む全件を返します。
func (h *BrandHandler) ListDeleted(c *gin.Context) {
	brands, err := h.brands.ListIncludingDeleted(c.Request.Context())
	if err != nil {
		writeDomainError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dto.NewBrandList(brands, isAdmin(c)))
}
