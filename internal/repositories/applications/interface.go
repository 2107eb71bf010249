package applications

//go:generate mockgen -destination=mock/mock.go -package=mockapplications -source=interface.go

import (
	"context"
	"time"
)

// Status is the lifecycle state of an application record
type Status string

const (
	// StatusLead is a record holding only step 1 contact data
	StatusLead Status = "lead"

	// StatusCompleted is a fully submitted application
	StatusCompleted Status = "completed"
)

// Application is the one persisted record per prospective customer.
// A lead carries contact fields only; a completed application carries
// the full selection and the price computed at submit time.
type Application struct {
	ID             string     `json:"id"`
	Status         Status     `json:"status"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	EntityType     string     `json:"entity_type,omitempty"`
	MembershipType string     `json:"membership_type,omitempty"`
	State          string     `json:"state,omitempty"`
	Price          *int       `json:"price,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Repository persists application records
type Repository interface {
	// Create inserts a new application and returns it with its assigned ID
	Create(ctx context.Context, app *Application) (*Application, error)

	// Get retrieves an application by ID
	Get(ctx context.Context, id string) (*Application, error)

	// Update replaces an existing application's fields
	Update(ctx context.Context, app *Application) (*Application, error)

	// GetLeadByEmail finds the existing lead record for an email, if any.
	// Returns a not_found error when no lead matches.
	GetLeadByEmail(ctx context.Context, email string) (*Application, error)
}
