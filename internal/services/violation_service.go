package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ostrovskiy/construction-supervision-api/internal/models"
	"github.com/ostrovskiy/construction-supervision-api/internal/repository"
	"github.com/ostrovskiy/construction-supervision-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrViolationNotFound         = errors.New("violation not found")
	ErrUnknownConstructionObject = errors.New("construction object does not exist")
	ErrInvalidStatus             = errors.New("resolution status must be one of OPEN, IN_PROGRESS, CLOSED")
)

// ViolationService handles violation business logic. It performs the
// existence checks the store itself keeps silent about: a referenced
// construction object must exist before an insert, and a violation must
// exist before a status update or deletion.
type ViolationService struct {
	violationRepo repository.ViolationRepository
	objectRepo    repository.ConstructionObjectRepository
}

// NewViolationService creates a new ViolationService.
func NewViolationService(violationRepo repository.ViolationRepository, objectRepo repository.ConstructionObjectRepository) *ViolationService {
	return &ViolationService{
		violationRepo: violationRepo,
		objectRepo:    objectRepo,
	}
}

// RegisterViolationInput represents input for reporting a violation.
// ContractorID and SupervisorID are logical references and are not checked
// against the users table.
type RegisterViolationInput struct {
	Description          string
	Location             string
	Date                 time.Time
	ResolutionStatus     models.ResolutionStatus
	ContractorID         uint64
	SupervisorID         uint64
	ConstructionObjectID uint64
	ViolationClassifier  string
}

// Register creates a new violation against an existing construction object.
func (s *ViolationService) Register(ctx context.Context, input RegisterViolationInput) (*models.Violation, error) {
	if !input.ResolutionStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	if _, err := s.objectRepo.FindByID(ctx, input.ConstructionObjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownConstructionObject
		}
		return nil, fmt.Errorf("failed to check construction object: %w", err)
	}

	violation := &models.Violation{
		Description:          input.Description,
		Location:             input.Location,
		Date:                 input.Date,
		ResolutionStatus:     input.ResolutionStatus,
		ContractorID:         input.ContractorID,
		SupervisorID:         input.SupervisorID,
		ConstructionObjectID: input.ConstructionObjectID,
		ViolationClassifier:  input.ViolationClassifier,
	}

	if err := s.violationRepo.Create(ctx, violation); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrUnknownConstructionObject
		}
		return nil, fmt.Errorf("failed to create violation: %w", err)
	}

	return violation, nil
}

// Get returns a violation by id.
func (s *ViolationService) Get(ctx context.Context, id uint64) (*models.Violation, error) {
	violation, err := s.violationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrViolationNotFound
		}
		return nil, fmt.Errorf("failed to find violation: %w", err)
	}
	return violation, nil
}

// ListByContractor returns all violations reported against a contractor.
func (s *ViolationService) ListByContractor(ctx context.Context, contractorID uint64, page *utils.PaginationParams) ([]models.Violation, error) {
	violations, err := s.violationRepo.ListByContractor(ctx, contractorID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list violations: %w", err)
	}
	return violations, nil
}

// ListByConstructionObject returns all violations recorded on a site.
func (s *ViolationService) ListByConstructionObject(ctx context.Context, constructionObjectID uint64, page *utils.PaginationParams) ([]models.Violation, error) {
	violations, err := s.violationRepo.ListByConstructionObject(ctx, constructionObjectID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list violations: %w", err)
	}
	return violations, nil
}

// UpdateStatus sets a new resolution status on an existing violation. Any
// enumerated status may replace any other; there is no transition graph.
func (s *ViolationService) UpdateStatus(ctx context.Context, id uint64, status models.ResolutionStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.violationRepo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update violation status: %w", err)
	}
	return nil
}

// Delete removes an existing violation.
func (s *ViolationService) Delete(ctx context.Context, id uint64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.violationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete violation: %w", err)
	}
	return nil
}
