package web

import (
	"net/http"

	"github.com/incorpora/onboarding-api/internal/domain/onboarding"
)

// sessionCookie ties a browser session to its draft. The draft itself
// lives server-side; losing the cookie means starting over, matching
// the one-session lifetime of the wizard state.
const sessionCookie = "onboarding_session"

// sessionDraft loads the draft for the request's session, creating a
// fresh draft and setting the cookie when none exists yet.
func (h *Handler) sessionDraft(w http.ResponseWriter, r *http.Request) (*onboarding.Draft, error) {
	var draftID string
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		draftID = cookie.Value
	}

	draft, err := h.service.GetOrCreateDraft(r.Context(), draftID)
	if err != nil {
		return nil, err
	}

	if draft.ID != draftID {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    draft.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	return draft, nil
}
