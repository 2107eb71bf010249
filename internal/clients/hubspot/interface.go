package hubspot

//go:generate mockgen -destination=mock/mock.go -package=mockhubspot -source=interface.go

import (
	"context"

	"github.com/incorpora/onboarding-api/internal/domain/onboarding"
)

// Client is the CRM collaborator contract the submission coordinator
// consumes. All calls are best-effort from the coordinator's point of
// view; failures are logged, never fatal.
type Client interface {
	// CreateContact creates a CRM contact and returns its ID
	CreateContact(ctx context.Context, props *ContactProperties) (string, error)

	// CreateCompany creates a CRM company and returns its ID
	CreateCompany(ctx context.Context, props *CompanyProperties) (string, error)

	// AssociateContactCompany links a contact to a company
	AssociateContactCompany(ctx context.Context, contactID, companyID string) error
}

// ContactProperties is the contact payload. Property names are the
// portal's internal ones.
type ContactProperties struct {
	Email     string `json:"email"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Phone     string `json:"phone"`
}

// CompanyProperties is the company payload. Property names are the
// portal's internal ones; values are display labels, not enum codes.
type CompanyProperties struct {
	EntityType     string `json:"tipo_de_compania_en_usa_test"`
	MembershipType string `json:"tipo_de_sociedad_de_la_compania_americana"`
	State          string `json:"estado_de_la_compania_americana"`
}

// membershipLabels maps membership enum values to portal display labels
var membershipLabels = map[onboarding.MembershipType]string{
	onboarding.MembershipTypeSingle: "Single Member",
	onboarding.MembershipTypeMulti:  "Multi Member",
}

// stateLabels maps state codes to portal display labels
var stateLabels = map[string]string{
	"DE": "Delaware",
	"FL": "Florida",
	"NM": "New Mexico",
	"WA": "Washington",
	"WY": "Wyoming",
	"NV": "Nevada",
}

// ContactPropertiesFrom builds the contact payload from step 1 data
func ContactPropertiesFrom(contact *onboarding.ContactData) *ContactProperties {
	if contact == nil {
		return &ContactProperties{}
	}
	return &ContactProperties{
		Email:     contact.Email,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Phone:     contact.Phone,
	}
}

// CompanyPropertiesFrom builds the company payload from the draft's
// selections. Unknown values map to empty strings rather than erroring;
// the CRM side tolerates blanks.
func CompanyPropertiesFrom(entityType onboarding.EntityType, membershipType onboarding.MembershipType, stateCode string) *CompanyProperties {
	return &CompanyProperties{
		EntityType:     string(entityType),
		MembershipType: membershipLabels[membershipType],
		State:          stateLabels[stateCode],
	}
}
