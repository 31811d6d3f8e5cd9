package dto

import (
	"github.com/ostrovskiy/construction-supervision-api/internal/models"
)

// ConstructionObjectDTO represents a construction site in API responses
type ConstructionObjectDTO struct {
	ID      uint64  `json:"id"`
	Address string  `json:"address"`
	Type    *string `json:"type"`
}

// ToConstructionObjectDTO converts a ConstructionObject model to its DTO
func ToConstructionObjectDTO(obj models.ConstructionObject) ConstructionObjectDTO {
	return ConstructionObjectDTO{
		ID:      obj.ID,
		Address: obj.Address,
		Type:    obj.Type,
	}
}

// ToConstructionObjectDTOs converts a slice of models
func ToConstructionObjectDTOs(objs []models.ConstructionObject) []ConstructionObjectDTO {
	dtos := make([]ConstructionObjectDTO, len(objs))
	for i, obj := range objs {
		dtos[i] = ToConstructionObjectDTO(obj)
	}
	return dtos
}
