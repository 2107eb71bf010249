package onboarding

import (
	"time"
)

// EntityType is the legal structure the customer is incorporating
type EntityType string

const (
	EntityTypeLLC   EntityType = "LLC"
	EntityTypeCCorp EntityType = "C_CORP"
)

// MembershipType is the ownership structure of an LLC
type MembershipType string

const (
	MembershipTypeSingle MembershipType = "SINGLE"
	MembershipTypeMulti  MembershipType = "MULTI"
)

// Step numbers in wizard order
const (
	StepContact    = 1
	StepEntityType = 2
	StepMembership = 3
	StepState      = 4
	StepSummary    = 5
	StepThanks     = 6
)

// ContactData is the step 1 payload
type ContactData struct {
	FirstName string `json:"firstName" validate:"required,person_name"`
	LastName  string `json:"lastName" validate:"required,person_name"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,intl_phone"`
}

// FullName joins first and last name the way the applications table stores it
func (c *ContactData) FullName() string {
	return c.FirstName + " " + c.LastName
}

// EntityTypeData is the step 2 payload
type EntityTypeData struct {
	EntityType EntityType `json:"entityType" validate:"required,oneof=LLC C_CORP"`
}

// MembershipData is the step 3 payload
type MembershipData struct {
	MembershipType MembershipType `json:"membershipType" validate:"required,oneof=SINGLE MULTI"`
}

// StateData is the step 4 payload
type StateData struct {
	State string `json:"state" validate:"required"`
}

// SummaryData is the step 5 payload
type SummaryData struct {
	Confirmed bool `json:"confirmed" validate:"eq=true"`
}

// Draft is the working record for one wizard session. It is persisted
// after every mutation and survives reloads until reset.
type Draft struct {
	ID             string          `json:"id"`
	Contact        *ContactData    `json:"contact,omitempty"`
	Entity         *EntityTypeData `json:"entity,omitempty"`
	Membership     *MembershipData `json:"membership,omitempty"`
	State          *StateData      `json:"state,omitempty"`
	Summary        *SummaryData    `json:"summary,omitempty"`
	CurrentStep    int             `json:"current_step"`
	CompletedSteps []int           `json:"completed_steps"`
	ApplicationID  string          `json:"application_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewDraft creates an empty draft positioned at step 1
func NewDraft(id string) *Draft {
	now := time.Now().UTC()
	return &Draft{
		ID:             id,
		CurrentStep:    StepContact,
		CompletedSteps: []int{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsStepCompleted checks if a step has been completed
func (d *Draft) IsStepCompleted(step int) bool {
	if d == nil {
		return false
	}
	for _, completed := range d.CompletedSteps {
		if completed == step {
			return true
		}
	}
	return false
}

// MarkStepCompleted adds a step to the completed set. Steps are only
// ever added, never removed, except through Reset.
func (d *Draft) MarkStepCompleted(step int) {
	if d.IsStepCompleted(step) {
		return
	}
	d.CompletedSteps = append(d.CompletedSteps, step)
}

// SetContact replaces the contact data and marks step 1 complete
func (d *Draft) SetContact(data *ContactData) {
	d.Contact = data
	d.MarkStepCompleted(StepContact)
}

// SetEntityType replaces the entity choice and marks step 2 complete
func (d *Draft) SetEntityType(data *EntityTypeData) {
	d.Entity = data
	d.MarkStepCompleted(StepEntityType)
}

// SetMembership replaces the membership choice and marks step 3 complete
func (d *Draft) SetMembership(data *MembershipData) {
	d.Membership = data
	d.MarkStepCompleted(StepMembership)
}

// SetState replaces the state choice and marks step 4 complete
func (d *Draft) SetState(data *StateData) {
	d.State = data
	d.MarkStepCompleted(StepState)
}

// SetSummary records the final confirmation and marks step 5 complete
func (d *Draft) SetSummary(data *SummaryData) {
	d.Summary = data
	d.MarkStepCompleted(StepSummary)
}

// SetApplicationID assigns the backing record identifier. The first
// assignment wins; later saves reuse it instead of creating new records.
func (d *Draft) SetApplicationID(id string) {
	if d.ApplicationID != "" {
		return
	}
	d.ApplicationID = id
}

// MembershipTypeOrEmpty returns the chosen membership type, or "" when
// the membership step has no data
func (d *Draft) MembershipTypeOrEmpty() MembershipType {
	if d.Membership == nil {
		return ""
	}
	return d.Membership.MembershipType
}

// EntityTypeOrEmpty returns the chosen entity type, or "" when the
// entity step has no data
func (d *Draft) EntityTypeOrEmpty() EntityType {
	if d.Entity == nil {
		return ""
	}
	return d.Entity.EntityType
}

// Confirmed reports whether the final submit has succeeded
func (d *Draft) Confirmed() bool {
	return d.Summary != nil && d.Summary.Confirmed
}

// Reset clears all step data, the completed set, and the record id,
// returning the draft to step 1
func (d *Draft) Reset() {
	d.Contact = nil
	d.Entity = nil
	d.Membership = nil
	d.State = nil
	d.Summary = nil
	d.CurrentStep = StepContact
	d.CompletedSteps = []int{}
	d.ApplicationID = ""
	d.UpdatedAt = time.Now().UTC()
}
