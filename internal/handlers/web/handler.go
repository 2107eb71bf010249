// Package web exposes the onboarding wizard as a JSON API with
// redirect-based step gating: each step path redirects to the lowest
// unmet prerequisite when accessed out of order.
package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/incorpora/onboarding-api/internal/domain/onboarding"
	apperr "github.com/incorpora/onboarding-api/internal/errors"
	onboardingService "github.com/incorpora/onboarding-api/internal/services/onboarding"
)

const basePath = "/onboarding"

// Handler serves the wizard routes
type Handler struct {
	service onboardingService.Service
}

// Config holds the handler's collaborators
type Config struct {
	Service onboardingService.Service
}

// New creates the wizard handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil || cfg.Service == nil {
		return nil, apperr.InvalidArgument("service is required")
	}
	return &Handler{service: cfg.Service}, nil
}

// RegisterRoutes wires the wizard routes into the provided mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET "+basePath, h.handleRoot)
	mux.HandleFunc("GET "+basePath+"/{slug}", h.handleStepView)
	mux.HandleFunc("POST "+basePath+"/{slug}", h.handleStepSubmit)
	mux.HandleFunc("POST "+basePath+"/reset", h.handleReset)
}

// handleRoot sends the visitor to the first step
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if _, err := h.sessionDraft(w, r); err != nil {
		h.writeError(w, err)
		return
	}
	http.Redirect(w, r, stepPath("contact"), http.StatusSeeOther)
}

// handleStepView renders a step, or redirects to the lowest unmet
// prerequisite. The redirect response also carries a locked placeholder
// body so a client that paints before following it shows no step input.
func (h *Handler) handleStepView(w http.ResponseWriter, r *http.Request) {
	draft, err := h.sessionDraft(w, r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	step, ok := h.service.Flow().StepBySlug(r.PathValue("slug"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.service.SetCurrentStep(r.Context(), draft.ID, step.Number); err != nil {
		h.writeError(w, err)
		return
	}

	decision := h.service.Flow().GuardStep(draft, step.Number)
	if !decision.Allowed {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Location", stepPath(decision.RedirectTo.Slug))
		w.WriteHeader(http.StatusSeeOther)
		_ = json.NewEncoder(w).Encode(h.lockedView(step, decision.RedirectTo))
		return
	}

	h.writeJSON(w, http.StatusOK, h.stepView(draft, step))
}

// handleStepSubmit accepts a step's data, saves it, and points the
// client at the next screen
func (h *Handler) handleStepSubmit(w http.ResponseWriter, r *http.Request) {
	draft, err := h.sessionDraft(w, r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	slug := r.PathValue("slug")
	step, ok := h.service.Flow().StepBySlug(slug)
	if !ok {
		http.NotFound(w, r)
		return
	}

	// The guard applies to writes too; a submit for a locked step is
	// rejected toward its prerequisite.
	decision := h.service.Flow().GuardStep(draft, step.Number)
	if !decision.Allowed {
		w.Header().Set("Location", stepPath(decision.RedirectTo.Slug))
		h.writeJSON(w, http.StatusConflict, h.lockedView(step, decision.RedirectTo))
		return
	}

	switch step.Number {
	case onboarding.StepContact:
		h.submitContact(w, r, draft)
	case onboarding.StepEntityType:
		h.submitEntityType(w, r, draft)
	case onboarding.StepMembership:
		h.submitMembership(w, r, draft)
	case onboarding.StepState:
		h.submitState(w, r, draft)
	case onboarding.StepSummary:
		h.submitSummary(w, r, draft)
	default:
		// Thanks accepts no input.
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request, draft *onboarding.Draft) {
	var data onboarding.ContactData
	if !h.decode(w, r, &data) {
		return
	}

	updated, err := h.service.SaveContact(r.Context(), draft.ID, &data)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, submitResponse{
		ApplicationID: updated.ApplicationID,
		Next:          h.nextPath(updated, onboarding.StepContact),
	})
}

func (h *Handler) submitEntityType(w http.ResponseWriter, r *http.Request, draft *onboarding.Draft) {
	var data onboarding.EntityTypeData
	if !h.decode(w, r, &data) {
		return
	}

	updated, err := h.service.SaveEntityType(r.Context(), draft.ID, &data)
	if err != nil {
		h.writeError(w, err)
		return
	}

	// C Corps skip the members screen entirely.
	h.writeJSON(w, http.StatusOK, submitResponse{
		Next: h.nextPath(updated, onboarding.StepEntityType),
	})
}

func (h *Handler) submitMembership(w http.ResponseWriter, r *http.Request, draft *onboarding.Draft) {
	var data onboarding.MembershipData
	if !h.decode(w, r, &data) {
		return
	}

	updated, err := h.service.SaveMembership(r.Context(), draft.ID, &data)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, submitResponse{
		Next: h.nextPath(updated, onboarding.StepMembership),
	})
}

func (h *Handler) submitState(w http.ResponseWriter, r *http.Request, draft *onboarding.Draft) {
	var data onboarding.StateData
	if !h.decode(w, r, &data) {
		return
	}

	updated, err := h.service.SaveState(r.Context(), draft.ID, &data)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, submitResponse{
		Next: h.nextPath(updated, onboarding.StepState),
	})
}

func (h *Handler) submitSummary(w http.ResponseWriter, r *http.Request, draft *onboarding.Draft) {
	var data onboarding.SummaryData
	if !h.decode(w, r, &data) {
		return
	}

	output, err := h.service.Finalize(r.Context(), draft.ID, &data)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, submitResponse{
		ApplicationID: output.ApplicationID,
		Next:          stepPath("thanks"),
	})
}

// handleReset discards the session's draft and starts over
func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	draft, err := h.sessionDraft(w, r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.service.Reset(r.Context(), draft.ID); err != nil {
		h.writeError(w, err)
		return
	}

	http.Redirect(w, r, stepPath("contact"), http.StatusSeeOther)
}

func stepPath(slug string) string {
	return basePath + "/" + slug
}

func (h *Handler) nextPath(draft *onboarding.Draft, after int) string {
	if next, ok := h.service.Flow().NextStep(draft, after); ok {
		return stepPath(next.Slug)
	}
	return stepPath("contact")
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cuerpo de solicitud inválido"})
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[web] failed to encode response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch apperr.CodeOf(err) {
	case apperr.CodeValidation:
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  err.Error(),
			Fields: onboardingService.FieldErrorsOf(err),
		})
	case apperr.CodeIncompleteData:
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case apperr.CodeNotFound:
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case apperr.CodePersistence:
		// Retryable: the draft is intact, the user resubmits.
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error:     "No se pudo guardar la información. Intentá nuevamente.",
			Retryable: true,
		})
	default:
		log.Printf("[web] internal error: %v", err)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "error interno"})
	}
}
