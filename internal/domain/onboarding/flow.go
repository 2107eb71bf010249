package onboarding

// FlowPolicy carries the configurable flow variations. Zero value means
// no auto-resolution: every step requires explicit user input.
type FlowPolicy struct {
	// AutoResolveMembership: choosing C_CORP fills membership with MULTI
	// and marks the membership step complete, so the plain step chain
	// holds. Regardless of the flag, the membership step stays bypassed
	// for C Corp drafts, so the guard never strands a session created
	// under the other setting.
	AutoResolveMembership bool

	// ForceLLC resolves every draft to an LLC without showing the
	// entity-type step. Previously-used alternate flow; not the default.
	ForceLLC bool
}

// Step is one node in the wizard flow graph. Prerequisite gating is a
// per-step predicate over the draft, not a hardcoded step-number
// check, which keeps the C Corp membership exemption a data-level rule.
type Step struct {
	Number int
	Slug   string
	Title  string

	// Bypassed reports whether the step is resolved programmatically
	// for this draft and its screen is skipped. Nil means never.
	Bypassed func(d *Draft) bool

	// Completed reports whether the step's own requirement is met.
	// Defaults to "marked complete" when nil.
	Completed func(d *Draft) bool
}

// Flow is the ordered wizard step graph
type Flow struct {
	Steps  []Step
	Policy FlowPolicy
}

// GuardDecision is the navigation guard's answer for a requested step
type GuardDecision struct {
	Allowed bool
	// RedirectTo is the lowest unsatisfied prerequisite when not allowed
	RedirectTo *Step
}

// BuildFlow assembles the six-step flow under the given policy
func BuildFlow(policy FlowPolicy) *Flow {
	steps := []Step{
		{
			Number: StepContact,
			Slug:   "contact",
			Title:  "Información de contacto",
		},
		{
			Number: StepEntityType,
			Slug:   "entity-type",
			Title:  "Tipo de entidad",
			Bypassed: func(d *Draft) bool {
				return policy.ForceLLC
			},
		},
		{
			Number: StepMembership,
			Slug:   "members",
			Title:  "Estructura de membresía",
			Bypassed: func(d *Draft) bool {
				return d.EntityTypeOrEmpty() == EntityTypeCCorp
			},
		},
		{
			Number: StepState,
			Slug:   "state",
			Title:  "Estado de incorporación",
		},
		{
			Number: StepSummary,
			Slug:   "summary",
			Title:  "Resumen",
		},
		{
			Number: StepThanks,
			Slug:   "thanks",
			Title:  "Gracias",
			Completed: func(d *Draft) bool {
				// Terminal step; reachable only after a successful save.
				return d.Confirmed()
			},
		},
	}

	return &Flow{Steps: steps, Policy: policy}
}

// Step returns the step with the given number
func (f *Flow) Step(number int) (*Step, bool) {
	for i := range f.Steps {
		if f.Steps[i].Number == number {
			return &f.Steps[i], true
		}
	}
	return nil, false
}

// StepBySlug returns the step with the given URL slug
func (f *Flow) StepBySlug(slug string) (*Step, bool) {
	for i := range f.Steps {
		if f.Steps[i].Slug == slug {
			return &f.Steps[i], true
		}
	}
	return nil, false
}

// StepSatisfied reports whether a step no longer blocks later steps:
// either its data is in, or it is bypassed for this draft.
func (f *Flow) StepSatisfied(d *Draft, step *Step) bool {
	if f.stepCompleted(d, step) {
		return true
	}
	return step.Bypassed != nil && step.Bypassed(d)
}

func (f *Flow) stepCompleted(d *Draft, step *Step) bool {
	if step.Completed != nil {
		return step.Completed(d)
	}
	return d.IsStepCompleted(step.Number)
}

// GuardStep decides whether the draft may view step number. When a
// prerequisite is unmet, the decision carries the lowest unsatisfied
// step as the redirect target. A step that is bypassed for this draft
// redirects forward to the next step that does want input.
func (f *Flow) GuardStep(d *Draft, number int) GuardDecision {
	for i := range f.Steps {
		step := &f.Steps[i]
		if step.Number >= number {
			break
		}
		if !f.StepSatisfied(d, step) {
			return GuardDecision{Allowed: false, RedirectTo: step}
		}
	}

	if requested, ok := f.Step(number); ok && requested.Bypassed != nil && requested.Bypassed(d) {
		if next, ok := f.NextStep(d, number); ok {
			return GuardDecision{Allowed: false, RedirectTo: next}
		}
	}

	return GuardDecision{Allowed: true}
}

// NextStep returns the step that follows number in the flow, skipping
// steps bypassed for this draft (the C Corp membership skip).
func (f *Flow) NextStep(d *Draft, number int) (*Step, bool) {
	for i := range f.Steps {
		step := &f.Steps[i]
		if step.Number <= number {
			continue
		}
		if step.Bypassed != nil && step.Bypassed(d) {
			continue
		}
		return step, true
	}
	return nil, false
}
