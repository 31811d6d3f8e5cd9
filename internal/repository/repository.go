package repository

import (
	"context"

	"github.com/ostrovskiy/construction-supervision-api/internal/models"
	"github.com/ostrovskiy/construction-supervision-api/internal/utils"
)

// Every method is one unit of work: it opens its own transaction against
// the store, commits and returns. No method holds state across calls.

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user and fills in the generated id
	Create(ctx context.Context, user *models.User) error

	// FindByLogin finds a user by login
	FindByLogin(ctx context.Context, login string) (*models.User, error)

	// CountAll returns the total number of users
	CountAll(ctx context.Context) (int64, error)
}

// ConstructionObjectRepository defines the interface for site data access
type ConstructionObjectRepository interface {
	// Create inserts a new construction object and fills in the generated id
	Create(ctx context.Context, obj *models.ConstructionObject) error

	// FindByID finds a construction object by ID
	FindByID(ctx context.Context, id uint64) (*models.ConstructionObject, error)

	// List returns all construction objects; a non-nil page narrows the
	// result to one page
	List(ctx context.Context, page *utils.PaginationParams) ([]models.ConstructionObject, error)
}

// ViolationRepository defines the interface for violation data access
type ViolationRepository interface {
	// Create inserts a new violation and fills in the generated id
	Create(ctx context.Context, violation *models.Violation) error

	// FindByID finds a violation by ID
	FindByID(ctx context.Context, id uint64) (*models.Violation, error)

	// ListByContractor returns violations reported against a contractor
	ListByContractor(ctx context.Context, contractorID uint64, page *utils.PaginationParams) ([]models.Violation, error)

	// ListByConstructionObject returns violations recorded on a site
	ListByConstructionObject(ctx context.Context, constructionObjectID uint64, page *utils.PaginationParams) ([]models.Violation, error)

	// UpdateStatus sets the resolution status; a no-op when the id is unknown
	UpdateStatus(ctx context.Context, id uint64, status models.ResolutionStatus) error

	// Delete removes a violation; a no-op when the id is unknown
	Delete(ctx context.Context, id uint64) error
}
