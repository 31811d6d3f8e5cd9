package services

import (
	"context"
	"fmt"

	"github.com/ostrovskiy/construction-supervision-api/internal/models"
	"github.com/ostrovskiy/construction-supervision-api/internal/repository"
	"github.com/ostrovskiy/construction-supervision-api/internal/utils"
)

// ConstructionObjectService handles construction site registration and listing.
type ConstructionObjectService struct {
	objectRepo repository.ConstructionObjectRepository
}

// NewConstructionObjectService creates a new ConstructionObjectService.
func NewConstructionObjectService(objectRepo repository.ConstructionObjectRepository) *ConstructionObjectService {
	return &ConstructionObjectService{
		objectRepo: objectRepo,
	}
}

// RegisterConstructionObjectInput represents input for registering a site.
type RegisterConstructionObjectInput struct {
	Address string
	Type    *string
}

// Register creates a new construction object.
func (s *ConstructionObjectService) Register(ctx context.Context, input RegisterConstructionObjectInput) (*models.ConstructionObject, error) {
	obj := &models.ConstructionObject{
		Address: input.Address,
		Type:    input.Type,
	}

	if err := s.objectRepo.Create(ctx, obj); err != nil {
		return nil, fmt.Errorf("failed to create construction object: %w", err)
	}

	return obj, nil
}

// List returns all registered construction objects.
func (s *ConstructionObjectService) List(ctx context.Context, page *utils.PaginationParams) ([]models.ConstructionObject, error) {
	objs, err := s.objectRepo.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list construction objects: %w", err)
	}
	return objs, nil
}
