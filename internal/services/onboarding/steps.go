package onboarding

import (
	"context"
	"log"

	"github.com/incorpora/onboarding-api/internal/domain/onboarding"
	applicationsRepo "github.com/incorpora/onboarding-api/internal/repositories/applications"
)

// SaveContact stores step 1. The first successful save also creates the
// backing lead record; its ID sticks to the draft for the rest of the
// session. A lead creation failure is fatal to the save so the wizard
// does not advance past an unpersisted contact.
func (s *service) SaveContact(ctx context.Context, draftID string, data *onboarding.ContactData) (*onboarding.Draft, error) {
	if fields := onboarding.ValidateContact(data); len(fields) > 0 {
		return nil, validationError(fields)
	}

	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if draft.ApplicationID == "" {
		lead, err := s.createLead(ctx, data)
		if err != nil {
			return nil, err
		}
		draft.SetApplicationID(lead.ID)
		log.Printf("[onboarding] lead saved: %s", lead.ID)
	}

	draft.SetContact(data)

	if s.flow.Policy.ForceLLC && draft.Entity == nil {
		// Alternate flow: the entity choice is resolved programmatically.
		draft.SetEntityType(&onboarding.EntityTypeData{EntityType: onboarding.EntityTypeLLC})
	}

	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

func (s *service) createLead(ctx context.Context, contact *onboarding.ContactData) (*applicationsRepo.Application, error) {
	return s.applications.Create(ctx, &applicationsRepo.Application{
		Status: applicationsRepo.StatusLead,
		Name:   contact.FullName(),
		Email:  contact.Email,
		Phone:  contact.Phone,
	})
}

// SaveEntityType stores step 2. Choosing a C Corp resolves the
// membership structure programmatically when the policy says so: the
// membership screen is bypassed and MULTI is recorded for pricing.
func (s *service) SaveEntityType(ctx context.Context, draftID string, data *onboarding.EntityTypeData) (*onboarding.Draft, error) {
	if fields := onboarding.ValidateEntityType(data); len(fields) > 0 {
		return nil, validationError(fields)
	}

	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}

	draft.SetEntityType(data)

	if data.EntityType == onboarding.EntityTypeCCorp && s.flow.Policy.AutoResolveMembership {
		draft.SetMembership(&onboarding.MembershipData{MembershipType: onboarding.MembershipTypeMulti})
	}

	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

// SaveMembership stores step 3
func (s *service) SaveMembership(ctx context.Context, draftID string, data *onboarding.MembershipData) (*onboarding.Draft, error) {
	if fields := onboarding.ValidateMembership(data); len(fields) > 0 {
		return nil, validationError(fields)
	}

	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}

	draft.SetMembership(data)

	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

// SaveState stores step 4
func (s *service) SaveState(ctx context.Context, draftID string, data *onboarding.StateData) (*onboarding.Draft, error) {
	if fields := onboarding.ValidateState(data); len(fields) > 0 {
		return nil, validationError(fields)
	}

	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}

	draft.SetState(data)

	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}

	return draft, nil
}
