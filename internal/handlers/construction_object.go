package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ostrovskiy/construction-supervision-api/internal/dto"
	apierrors "github.com/ostrovskiy/construction-supervision-api/internal/errors"
	"github.com/ostrovskiy/construction-supervision-api/internal/services"
	"github.com/ostrovskiy/construction-supervision-api/internal/utils"
)

// ConstructionObjectHandler coordinates construction site HTTP handlers.
type ConstructionObjectHandler struct {
	objectService *services.ConstructionObjectService
}

// NewConstructionObjectHandler creates a new ConstructionObjectHandler.
func NewConstructionObjectHandler(objectService *services.ConstructionObjectService) *ConstructionObjectHandler {
	return &ConstructionObjectHandler{
		objectService: objectService,
	}
}

// RegisterConstructionObject registers a new construction site.
func (h *ConstructionObjectHandler) RegisterConstructionObject(c *gin.Context) {
	type RegisterConstructionObjectRequest struct {
		Address string  `json:"address" binding:"required"`
		Type    *string `json:"type"`
	}

	var req RegisterConstructionObjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	obj, err := h.objectService.Register(c.Request.Context(), services.RegisterConstructionObjectInput{
		Address: req.Address,
		Type:    req.Type,
	})
	if err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.IDResponse{ID: obj.ID})
}

// ListConstructionObjects returns all registered sites. Without page/limit
// query parameters the full table is returned.
func (h *ConstructionObjectHandler) ListConstructionObjects(c *gin.Context) {
	var page *utils.PaginationParams
	if params, ok := utils.GetPaginationParams(c); ok {
		page = &params
	}

	objs, err := h.objectService.List(c.Request.Context(), page)
	if err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConstructionObjectDTOs(objs))
}
