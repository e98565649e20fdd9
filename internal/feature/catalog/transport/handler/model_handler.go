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

// ModelUsecase はモデル操作のユースケースを定義します。
type ModelUsecase interface {
	List(ctx context.Context, name string, page usecase.PageQuery) (usecase.Page[entity.Model], error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Model, error)
	Create(ctx context.Context, name string, brandID uuid.UUID) (*entity.Model, error)
	Update(ctx context.Context, id uuid.UUID, name string, brandID uuid.UUID) (*entity.Model, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListIncludingDeleted(ctx context.Context) ([]entity.Model, error)
}

// ModelHandler はモデル操作のHTTPリクエストを処理します。
type ModelHandler struct {
	models ModelUsecase
}

// NewModelHandler はModelHandlerの新しいインスタンスを生成します。
func NewModelHandler(models ModelUsecase) *ModelHandler {
	return &ModelHandler{models: models}
}

// List はGET /api/modelsを処理します。
func (h *ModelHandler) List(c *gin.Context) {
	page, err := h.models.List(c.Request.Context(), c.Query("name"), pageQuery(c))
	if err != nil {
		writeDomainError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.PaginatedResponse[dto.ModelResp]{
		Items:      dto.NewModelList(page.Items, isAdmin(c)),
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
	})
}

// Get はGET /api/models/:idを処理します。
func (h *ModelHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	m, err := h.models.Get(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dto.NewModelResp(m, isAdmin(c)))
}

// Create はPOST /api/modelsを処理します。
// 参照先ブランドが不可視なら404、名前重複なら409になります。
func (h *ModelHandler) Create(c *gin.Context) {
	var req dto.CreateModelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	m, err := h.models.Create(c.Request.Context(), req.Name, req.BrandID)
	if err != nil {
		writeDomainError(c, err, "a model with name '"+req.Name+"' already exists")
		return
	}
	c.JSON(http.StatusCreated, dto.NewModelResp(m, isAdmin(c)))
}

// Update はPUT /api/models/:idを処理します。
func (h *ModelHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateModelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	m, err := h.models.Update(c.Request.Context(), id, req.Name, req.BrandID)
	if err != nil {
		writeDomainError(c, err, "a model with name '"+req.Name+"' already exists")
		return
	}
	c.JSON(http.StatusOK, dto.NewModelResp(m, isAdmin(c)))
}

// Delete はDELETE /api/models/:idを処理します。
func (h *ModelHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.models.Delete(c.Request.Context(), id); err != nil {
		writeDomainError(c, err, "")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListDeleted はGET /api/models/deletedを処理します。
func (h *ModelHandler) ListDeleted(c *gin.Context) {
	models, err := h.models.ListIncludingDeleted(c.Request.Context())
	if err != nil {
		writeDomainError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dto.NewModelList(models, isAdmin(c)))
}
