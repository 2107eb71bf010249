package onboarding

import (
	"context"
	"log"

	"github.com/incorpora/onboarding-api/internal/clients/hubspot"
	"github.com/incorpora/onboarding-api/internal/domain/onboarding"
	apperr "github.com/incorpora/onboarding-api/internal/errors"
	applicationsRepo "github.com/incorpora/onboarding-api/internal/repositories/applications"
)

// SyncOutcome is the result of one best-effort CRM call
type SyncOutcome struct {
	ID      string
	Err     error
	Skipped bool
}

// Succeeded reports whether the call ran and worked
func (o SyncOutcome) Succeeded() bool {
	return !o.Skipped && o.Err == nil
}

// CRMSyncResult carries the named outcomes of the three CRM calls so
// callers can assert "primary succeeded despite side-effect failures"
type CRMSyncResult struct {
	Company     SyncOutcome
	Contact     SyncOutcome
	Association SyncOutcome
}

// FinalizeOutput is the result of a successful submission. Success is
// defined by the application upsert; CRM outcomes are informational.
type FinalizeOutput struct {
	ApplicationID string
	// Price is nil when no price is available for the selection
	Price *int
	CRM   CRMSyncResult
}

// Finalize validates the collected draft, upserts the full application
// record, and then syncs to the CRM best-effort. The upsert target is
// picked by priority: the draft's record ID, an existing lead with the
// same email, or a brand new record.
func (s *service) Finalize(ctx context.Context, draftID string, data *onboarding.SummaryData) (*FinalizeOutput, error) {
	if fields := onboarding.ValidateSummary(data); len(fields) > 0 {
		return nil, validationError(fields)
	}

	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}

	// Should not happen when the navigation guard is correct, but the
	// coordinator defends on its own.
	if draft.Contact == nil || draft.Entity == nil || draft.State == nil {
		return nil, apperr.IncompleteData("Datos incompletos")
	}
	if draft.EntityTypeOrEmpty() == onboarding.EntityTypeLLC && draft.Membership == nil {
		return nil, apperr.IncompleteData("Tipo de membresía requerido para LLC")
	}

	var price *int
	if amount, ok := onboarding.CalculatePrice(draft.EntityTypeOrEmpty(), draft.MembershipTypeOrEmpty(), draft.State.State); ok {
		price = &amount
	}

	app := &applicationsRepo.Application{
		Status:         applicationsRepo.StatusCompleted,
		Name:           draft.Contact.FullName(),
		Email:          draft.Contact.Email,
		Phone:          draft.Contact.Phone,
		EntityType:     string(draft.EntityTypeOrEmpty()),
		MembershipType: string(draft.MembershipTypeOrEmpty()),
		State:          draft.State.State,
		Price:          price,
	}

	saved, err := s.upsertApplication(ctx, draft, app)
	if err != nil {
		// Draft data stays in the store; the user retries the submit.
		return nil, err
	}
	log.Printf("[onboarding] application saved: %s", saved.ID)

	draft.SetApplicationID(saved.ID)
	draft.SetSummary(data)
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}

	return &FinalizeOutput{
		ApplicationID: saved.ID,
		Price:         price,
		CRM:           s.syncToCRM(ctx, draft),
	}, nil
}

func (s *service) upsertApplication(ctx context.Context, draft *onboarding.Draft, app *applicationsRepo.Application) (*applicationsRepo.Application, error) {
	// Case 1: the session already owns a record.
	if draft.ApplicationID != "" {
		app.ID = draft.ApplicationID
		return s.applications.Update(ctx, app)
	}

	// Case 2: an earlier session left a lead behind for this email.
	lead, err := s.applications.GetLeadByEmail(ctx, app.Email)
	if err == nil {
		app.ID = lead.ID
		return s.applications.Update(ctx, app)
	}
	if !apperr.HasCode(err, apperr.CodeNotFound) {
		return nil, err
	}

	// Case 3: nothing to reuse.
	return s.applications.Create(ctx, app)
}

// syncToCRM performs the three CRM calls in sequence: company, contact,
// association. The association needs both IDs, so it is skipped when
// either creation failed. Every failure is logged and recorded but
// never fails the submission.
func (s *service) syncToCRM(ctx context.Context, draft *onboarding.Draft) CRMSyncResult {
	var result CRMSyncResult

	companyID, err := s.crm.CreateCompany(ctx, hubspot.CompanyPropertiesFrom(
		draft.EntityTypeOrEmpty(), draft.MembershipTypeOrEmpty(), draft.State.State))
	result.Company = SyncOutcome{ID: companyID, Err: err}
	if err != nil {
		log.Printf("[hubspot] company creation failed: %v", err)
	} else {
		log.Printf("[hubspot] company created: %s", companyID)
	}

	contactID, err := s.crm.CreateContact(ctx, hubspot.ContactPropertiesFrom(draft.Contact))
	result.Contact = SyncOutcome{ID: contactID, Err: err}
	if err != nil {
		log.Printf("[hubspot] contact creation failed: %v", err)
	} else {
		log.Printf("[hubspot] contact created: %s", contactID)
	}

	if !result.Company.Succeeded() || !result.Contact.Succeeded() {
		result.Association = SyncOutcome{Skipped: true}
		return result
	}

	if err := s.crm.AssociateContactCompany(ctx, contactID, companyID); err != nil {
		result.Association = SyncOutcome{Err: err}
		log.Printf("[hubspot] contact-company association failed: %v", err)
	} else {
		result.Association = SyncOutcome{}
	}

	return result
}
