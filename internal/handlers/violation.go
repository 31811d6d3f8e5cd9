package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ostrovskiy/construction-supervision-api/internal/constants"
	"github.com/ostrovskiy/construction-supervision-api/internal/dto"
	apierrors "github.com/ostrovskiy/construction-supervision-api/internal/errors"
	"github.com/ostrovskiy/construction-supervision-api/internal/models"
	"github.com/ostrovskiy/construction-supervision-api/internal/services"
	"github.com/ostrovskiy/construction-supervision-api/internal/utils"
)

// ViolationHandler coordinates violation HTTP handlers.
type ViolationHandler struct {
	violationService *services.ViolationService
}

// NewViolationHandler creates a new ViolationHandler.
func NewViolationHandler(violationService *services.ViolationService) *ViolationHandler {
	return &ViolationHandler{
		violationService: violationService,
	}
}

// RegisterViolation reports a new violation against a construction site.
func (h *ViolationHandler) RegisterViolation(c *gin.Context) {
	type RegisterViolationRequest struct {
		Description          string `json:"description" binding:"required"`
		Location             string `json:"location" binding:"required"`
		Date                 string `json:"date" binding:"required"`
		ResolutionStatus     string `json:"resolution_status" binding:"required"`
		ContractorID         uint64 `json:"contractor_id" binding:"required"`
		SupervisorID         uint64 `json:"supervisor_id" binding:"required"`
		ConstructionObjectID uint64 `json:"construction_object_id" binding:"required"`
		ViolationClassifier  string `json:"violation_classifier" binding:"required"`
	}

	var req RegisterViolationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	date, err := time.Parse(constants.DateLayout, req.Date)
	if err != nil {
		apierrors.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	violation, err := h.violationService.Register(c.Request.Context(), services.RegisterViolationInput{
		Description:          req.Description,
		Location:             req.Location,
		Date:                 date,
		ResolutionStatus:     models.ResolutionStatus(req.ResolutionStatus),
		ContractorID:         req.ContractorID,
		SupervisorID:         req.SupervisorID,
		ConstructionObjectID: req.ConstructionObjectID,
		ViolationClassifier:  req.ViolationClassifier,
	})
	if err != nil {
		respondViolationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.IDResponse{ID: violation.ID})
}

// GetViolation returns a single violation by id.
func (h *ViolationHandler) GetViolation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	violation, err := h.violationService.Get(c.Request.Context(), id)
	if err != nil {
		respondViolationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToViolationDTO(*violation))
}

// ListViolationsByContractor returns violations filed against a contractor.
func (h *ViolationHandler) ListViolationsByContractor(c *gin.Context) {
	contractorID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var page *utils.PaginationParams
	if params, ok := utils.GetPaginationParams(c); ok {
		page = &params
	}

	violations, err := h.violationService.ListByContractor(c.Request.Context(), contractorID, page)
	if err != nil {
		respondViolationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToViolationDTOs(violations))
}

// ListViolationsByConstructionObject returns violations recorded on a site.
func (h *ViolationHandler) ListViolationsByConstructionObject(c *gin.Context) {
	objectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var page *utils.PaginationParams
	if params, ok := utils.GetPaginationParams(c); ok {
		page = &params
	}

	violations, err := h.violationService.ListByConstructionObject(c.Request.Context(), objectID, page)
	if err != nil {
		respondViolationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToViolationDTOs(violations))
}

// UpdateViolationStatus sets a new resolution status on a violation.
func (h *ViolationHandler) UpdateViolationStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateStatusRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.violationService.UpdateStatus(c.Request.Context(), id, models.ResolutionStatus(req.Status)); err != nil {
		respondViolationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Violation status updated successfully",
	})
}

// DeleteViolation removes a violation.
func (h *ViolationHandler) DeleteViolation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.violationService.Delete(c.Request.Context(), id); err != nil {
		respondViolationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Violation deleted successfully",
	})
}

func respondViolationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrViolationNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUnknownConstructionObject):
		apierrors.UnknownConstructionObject(c, err.Error())
	case errors.Is(err, services.ErrInvalidStatus):
		apierrors.InvalidEnumValue(c, err.Error())
	default:
		respondStorageError(c, err)
	}
}
