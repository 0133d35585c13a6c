package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	// ProjectStatusActive indicates work is in progress.
	ProjectStatusActive ProjectStatus = "active"
	// ProjectStatusCompleted indicates work has finished.
	ProjectStatusCompleted ProjectStatus = "completed"
	// ProjectStatusArchived indicates the record is retained for history only.
	ProjectStatusArchived ProjectStatus = "archived"
)

// IsValid checks if the ProjectStatus is a valid value.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusArchived:
		return true
	default:
		return false
	}
}

// ProjectType classifies the kind of construction work.
type ProjectType string

const (
	// ProjectTypeCommercial indicates commercial construction.
	ProjectTypeCommercial ProjectType = "commercial"
	// ProjectTypeResidential indicates residential construction.
	ProjectTypeResidential ProjectType = "residential"
	// ProjectTypeIndustrial indicates industrial construction.
	ProjectTypeIndustrial ProjectType = "industrial"
)

// IsValid checks if the ProjectType is a valid value.
func (t ProjectType) IsValid() bool {
	switch t {
	case ProjectTypeCommercial, ProjectTypeResidential, ProjectTypeIndustrial:
		return true
	default:
		return false
	}
}

// Project is the aggregation root for cost entries and change orders.
// Both dependents hold a foreign key to the project, never the reverse;
// relations are reconstructed by query, not held as in-memory collections.
type Project struct {
	ID          uuid.UUID       // The Global Unique Identifier for the project.
	Name        string          // Human-readable project name.
	Number      string          // Unique project number assigned by the firm.
	Description string          // Free-form description of the work.
	Status      ProjectStatus   // Lifecycle state (active, completed, archived).
	Type        ProjectType     // Kind of construction (commercial, residential, industrial).
	Budget      decimal.Decimal // Approved budget, fixed-point currency (12,2).
	StartDate   time.Time       // Scheduled or actual start of work.
	EndDate     *time.Time      // Scheduled or actual end of work. Nil while open-ended.
	CreatedBy   uuid.UUID       // Identity that created the project.
	CreatedAt   time.Time       // Timestamp of record creation.
	UpdatedAt   time.Time       // Timestamp of the last modification.
}
