package onboarding

import (
	"context"
	"errors"

	"github.com/incorpora/onboarding-api/internal/clients/hubspot"
	"github.com/incorpora/onboarding-api/internal/domain/onboarding"
	apperr "github.com/incorpora/onboarding-api/internal/errors"
	applicationsRepo "github.com/incorpora/onboarding-api/internal/repositories/applications"
	draftsRepo "github.com/incorpora/onboarding-api/internal/repositories/drafts"
	"github.com/incorpora/onboarding-api/internal/uuid"
)

// Service drives the onboarding wizard: draft mutations, navigation
// gating, and the final submission to the record store and CRM.
type Service interface {
	// GetOrCreateDraft loads the draft for a session, creating an empty
	// one when the ID is blank or unknown
	GetOrCreateDraft(ctx context.Context, draftID string) (*onboarding.Draft, error)

	// SetCurrentStep records which step the session is viewing
	SetCurrentStep(ctx context.Context, draftID string, step int) error

	// SaveContact validates and stores step 1, creating the backing lead
	// record on first save
	SaveContact(ctx context.Context, draftID string, data *onboarding.ContactData) (*onboarding.Draft, error)

	// SaveEntityType validates and stores step 2, applying the C Corp
	// membership auto-resolution policy
	SaveEntityType(ctx context.Context, draftID string, data *onboarding.EntityTypeData) (*onboarding.Draft, error)

	// SaveMembership validates and stores step 3
	SaveMembership(ctx context.Context, draftID string, data *onboarding.MembershipData) (*onboarding.Draft, error)

	// SaveState validates and stores step 4
	SaveState(ctx context.Context, draftID string, data *onboarding.StateData) (*onboarding.Draft, error)

	// Finalize runs the step 5 submission: upsert the full application,
	// then best-effort CRM sync
	Finalize(ctx context.Context, draftID string, data *onboarding.SummaryData) (*FinalizeOutput, error)

	// Reset clears the draft back to an empty step 1
	Reset(ctx context.Context, draftID string) error

	// Flow exposes the step graph for navigation decisions
	Flow() *onboarding.Flow

	// PriceFor resolves the draft's current price; false means no price
	// is shown yet
	PriceFor(draft *onboarding.Draft) (int, bool)
}

// ServiceConfig holds the collaborators the service needs
type ServiceConfig struct {
	DraftRepository       draftsRepo.Repository
	ApplicationRepository applicationsRepo.Repository
	CRMClient             hubspot.Client
	UUIDGenerator         uuid.Generator
	FlowPolicy            onboarding.FlowPolicy
}

type service struct {
	drafts        draftsRepo.Repository
	applications  applicationsRepo.Repository
	crm           hubspot.Client
	uuidGenerator uuid.Generator
	flow          *onboarding.Flow
}

// NewService creates the onboarding service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("cfg is required")
	}
	if cfg.DraftRepository == nil {
		return nil, apperr.InvalidArgument("draft repository is required")
	}
	if cfg.ApplicationRepository == nil {
		return nil, apperr.InvalidArgument("application repository is required")
	}
	if cfg.CRMClient == nil {
		return nil, apperr.InvalidArgument("CRM client is required")
	}

	generator := cfg.UUIDGenerator
	if generator == nil {
		generator = uuid.NewGoogleUUIDGenerator()
	}

	return &service{
		drafts:        cfg.DraftRepository,
		applications:  cfg.ApplicationRepository,
		crm:           cfg.CRMClient,
		uuidGenerator: generator,
		flow:          onboarding.BuildFlow(cfg.FlowPolicy),
	}, nil
}

func (s *service) Flow() *onboarding.Flow {
	return s.flow
}

func (s *service) GetOrCreateDraft(ctx context.Context, draftID string) (*onboarding.Draft, error) {
	if draftID != "" {
		draft, err := s.drafts.Get(ctx, draftID)
		if err == nil {
			return draft, nil
		}
		if !apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, err
		}
		// Expired or unknown session; start over under the same ID so
		// the cookie stays valid.
	} else {
		draftID = s.uuidGenerator.New()
	}

	draft := onboarding.NewDraft(draftID)
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

func (s *service) SetCurrentStep(ctx context.Context, draftID string, step int) error {
	if step < onboarding.StepContact || step > onboarding.StepThanks {
		return apperr.InvalidArgumentf("step %d out of range", step)
	}

	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return err
	}

	draft.CurrentStep = step
	return s.drafts.Save(ctx, draft)
}

func (s *service) Reset(ctx context.Context, draftID string) error {
	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil
		}
		return err
	}

	draft.Reset()
	return s.drafts.Save(ctx, draft)
}

func (s *service) PriceFor(draft *onboarding.Draft) (int, bool) {
	if draft == nil || draft.Entity == nil || draft.State == nil {
		return 0, false
	}
	return onboarding.CalculatePrice(draft.EntityTypeOrEmpty(), draft.MembershipTypeOrEmpty(), draft.State.State)
}

// validationError packs field failures into a coded error so transport
// layers can render them without importing the validator
func validationError(fields []onboarding.FieldError) error {
	return apperr.Validation("los datos ingresados no son válidos").
		WithMeta("fields", fields)
}

// FieldErrorsOf extracts field failures from a validation error, if any
func FieldErrorsOf(err error) []onboarding.FieldError {
	if !apperr.HasCode(err, apperr.CodeValidation) {
		return nil
	}
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Meta == nil {
		return nil
	}
	fields, _ := appErr.Meta["fields"].([]onboarding.FieldError)
	return fields
}
