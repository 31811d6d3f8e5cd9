package dto

import (
	"github.com/ostrovskiy/construction-supervision-api/internal/constants"
	"github.com/ostrovskiy/construction-supervision-api/internal/models"
)

// ViolationDTO represents a violation in API responses. Dates travel as
// plain YYYY-MM-DD strings.
type ViolationDTO struct {
	ID                   uint64                  `json:"id"`
	Description          string                  `json:"description"`
	Location             string                  `json:"location"`
	Date                 string                  `json:"date"`
	ResolutionStatus     models.ResolutionStatus `json:"resolution_status"`
	ContractorID         uint64                  `json:"contractor_id"`
	SupervisorID         uint64                  `json:"supervisor_id"`
	ConstructionObjectID uint64                  `json:"construction_object_id"`
	ViolationClassifier  string                  `json:"violation_classifier"`
}

// ToViolationDTO converts a Violation model to ViolationDTO
func ToViolationDTO(v models.Violation) ViolationDTO {
	return ViolationDTO{
		ID:                   v.ID,
		Description:          v.Description,
		Location:             v.Location,
		Date:                 v.Date.Format(constants.DateLayout),
		ResolutionStatus:     v.ResolutionStatus,
		ContractorID:         v.ContractorID,
		SupervisorID:         v.SupervisorID,
		ConstructionObjectID: v.ConstructionObjectID,
		ViolationClassifier:  v.ViolationClassifier,
	}
}

// ToViolationDTOs converts a slice of models
func ToViolationDTOs(violations []models.Violation) []ViolationDTO {
	dtos := make([]ViolationDTO, len(violations))
	for i, v := range violations {
		dtos[i] = ToViolationDTO(v)
	}
	return dtos
}
