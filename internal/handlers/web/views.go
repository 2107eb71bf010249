package web

import (
	"github.com/incorpora/onboarding-api/internal/domain/onboarding"
)

// StepView is the JSON rendering of one wizard screen, seeded with any
// previously saved data so steps can be edited from the summary.
type StepView struct {
	Step           int    `json:"step"`
	Slug           string `json:"slug"`
	Title          string `json:"title"`
	CompletedSteps []int  `json:"completedSteps"`
	Data           any    `json:"data,omitempty"`

	// Summary extras; omitted elsewhere and when no price is available.
	Price          *int   `json:"price,omitempty"`
	PriceFormatted string `json:"priceFormatted,omitempty"`

	// Thanks payload.
	Message string `json:"message,omitempty"`

	// Locked placeholder fields.
	Locked   bool   `json:"locked,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

type submitResponse struct {
	ApplicationID string `json:"applicationId,omitempty"`
	Next          string `json:"next"`
}

type errorResponse struct {
	Error     string                  `json:"error"`
	Fields    []onboarding.FieldError `json:"fields,omitempty"`
	Retryable bool                    `json:"retryable,omitempty"`
}

const thanksMessage = "¡Gracias por completar el formulario! Hemos recibido tu información. " +
	"Nos pondremos en contacto contigo pronto para continuar con el proceso de incorporación."

func (h *Handler) stepView(draft *onboarding.Draft, step *onboarding.Step) StepView {
	view := StepView{
		Step:           step.Number,
		Slug:           step.Slug,
		Title:          step.Title,
		CompletedSteps: draft.CompletedSteps,
	}

	switch step.Number {
	case onboarding.StepContact:
		if draft.Contact != nil {
			view.Data = draft.Contact
		}
	case onboarding.StepEntityType:
		if draft.Entity != nil {
			view.Data = draft.Entity
		}
	case onboarding.StepMembership:
		if draft.Membership != nil {
			view.Data = draft.Membership
		}
	case onboarding.StepState:
		if draft.State != nil {
			view.Data = draft.State
		}
	case onboarding.StepSummary:
		view.Data = draft
		if price, ok := h.service.PriceFor(draft); ok {
			view.Price = &price
			view.PriceFormatted = onboarding.FormatPrice(price)
		}
	case onboarding.StepThanks:
		view.Message = thanksMessage
	}

	return view
}

// lockedView is the placeholder for a step whose prerequisite is unmet
func (h *Handler) lockedView(step, redirectTo *onboarding.Step) StepView {
	return StepView{
		Step:     step.Number,
		Slug:     step.Slug,
		Title:    step.Title,
		Locked:   true,
		Message:  "Completa los pasos anteriores para desbloquear esta sección",
		Redirect: stepPath(redirectTo.Slug),
	}
}
