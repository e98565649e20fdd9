package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vehicle_backend/internal/api"
	"vehicle_backend/internal/feature/catalog/domain/entity"
	"vehicle_backend/internal/feature/catalog/transport/http/dto"
	"vehicle_backend/internal/feature/catalog/usecase"
)

// VehicleUsecase は車両操作のユースケースを定義します。
type VehicleUsecase interface {
	List(ctx context.Context, f usecase.VehicleFilter, page usecase.PageQuery) (usecase.Page[entity.Vehicle], error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	Create(ctx context.Context, in usecase.VehicleInput) (*entity.Vehicle, error)
	Update(ctx context.Context, id uuid.UUID, in usecase.VehicleInput) (*entity.Vehicle, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListIncludingDeleted(ctx context.Context) ([]entity.Vehicle, error)
}

// VehicleHandler は車両操作のHTTPリクエストを処理します。
type VehicleHandler struct {
	vehicles VehicleUsecase
}

// NewVehicleHandler はVehicleHandlerの新しいインスタンスを生成します。
func NewVehicleHandler(vehicles VehicleUsecase) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

// vehicleFilter はクエリパラメータから検索条件を組み立てます。
func vehicleFilter(c *gin.Context) usecase.VehicleFilter {
	f := usecase.VehicleFilter{
		Color:        c.Query("color"),
		LicensePlate: c.Query("licensePlate"),
	}
	if raw := c.Query("year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			f.Year = &year
		}
	}
	return f
}

// List はGET /api/vehiclesを処理します。年式・色・ナンバープレートで絞り込めます。
func (h *VehicleHandler) List(c *gin.Context) {
	page, err := h.vehicles.List(c.Request.Context(), vehicleFilter(c), pageQuery(c))
	if err != nil {
		writeDomainError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.PaginatedResponse[dto.VehicleResp]{
		Items:      dto.NewVehicleList(page.Items, isAdmin(c)),
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
	})
}

// Get はGET /api/vehicles/:idを処理します。
func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	v, err := h.vehicles.Get(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dto.NewVehicleResp(v, isAdmin(c)))
}

// Create はPOST /api/vehiclesを処理します。
// 参照先モデルが不可視なら404、ナンバープレート重複なら409になります。
func (h *VehicleHandler) Create(c *gin.Context) {
	var req dto.CreateVehicleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	v, err := h.vehicles.Create(c.Request.Context(), usecase.VehicleInput{
		Year:         req.Year,
		Color:        req.Color,
		LicensePlate: req.LicensePlate,
		ModelID:      req.ModelID,
	})
	if err != nil {
		writeDomainError(c, err, "a vehicle with license plate '"+req.LicensePlate+"' already exists")
		return
	}
	c.JSON(http.StatusCreated, dto.NewVehicleResp(v, isAdmin(c)))
}

// Update はPUT /api/vehicles/:idを処理します。
func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateVehicleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	v, err := h.vehicles.Update(c.Request.Context(), id, usecase.VehicleInput{
		Year:         req.Year,
		Color:        req.Color,
		LicensePlate: req.LicensePlate,
		ModelID:      req.ModelID,
	})
	if err != nil {
		writeDomainError(c, err, "a vehicle with license plate '"+req.LicensePlate+"' already exists")
		return
	}
	c.JSON(http.StatusOK, dto.NewVehicleResp(v, isAdmin(c)))
}

// Delete はDELETE /api/vehicles/:idを処理します。
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.vehicles.Delete(c.Request.Context(), id); err != nil {
		writeDomainError(c, err, "")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListDeleted はGET /api/vehicles/deletedを処理します。
func (h *VehicleHandler) ListDeleted(c *gin.Context) {
	vehicles, err := h.vehicles.ListIncludingDeleted(c.Request.Context())
	if err != nil {
		writeDomainError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dto.NewVehicleList(vehicles, isAdmin(c)))
}
