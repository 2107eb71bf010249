package onboarding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incorpora/onboarding-api/internal/domain/onboarding"
)

func completedContactDraft() *onboarding.Draft {
	draft := onboarding.NewDraft("draft-1")
	draft.SetContact(&onboarding.ContactData{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Phone: "+12025551234"})
	return draft
}

func TestFlow_GuardStep_RedirectsToLowestUnmetPrerequisite(t *testing.T) {
	flow := onboarding.BuildFlow(onboarding.FlowPolicy{AutoResolveMembership: true})

	t.Run("empty draft requesting summary lands on contact", func(t *testing.T) {
		draft := onboarding.NewDraft("draft-1")

		decision := flow.GuardStep(draft, onboarding.StepSummary)

		require.False(t, decision.Allowed)
		require.NotNil(t, decision.RedirectTo)
		assert.Equal(t, onboarding.StepContact, decision.RedirectTo.Number)
	})

	t.Run("contact done, requesting state lands on entity type", func(t *testing.T) {
		draft := completedContactDraft()

		decision := flow.GuardStep(draft, onboarding.StepState)

		require.False(t, decision.Allowed)
		assert.Equal(t, onboarding.StepEntityType, decision.RedirectTo.Number)
	})

	t.Run("prerequisites met allows the step", func(t *testing.T) {
		draft := completedContactDraft()

		decision := flow.GuardStep(draft, onboarding.StepEntityType)

		assert.True(t, decision.Allowed)
		assert.Nil(t, decision.RedirectTo)
	})

	t.Run("step one is always reachable", func(t *testing.T) {
		draft := onboarding.NewDraft("draft-1")

		decision := flow.GuardStep(draft, onboarding.StepContact)

		assert.True(t, decision.Allowed)
	})
}

func TestFlow_GuardStep_CCorpSkipsMembership(t *testing.T) {
	flow := onboarding.BuildFlow(onboarding.FlowPolicy{AutoResolveMembership: true})

	draft := completedContactDraft()
	draft.SetEntityType(&onboarding.EntityTypeData{EntityType: onboarding.EntityTypeCCorp})

	t.Run("members screen redirects forward to state", func(t *testing.T) {
		decision := flow.GuardStep(draft, onboarding.StepMembership)

		require.False(t, decision.Allowed)
		require.NotNil(t, decision.RedirectTo)
		assert.Equal(t, onboarding.StepState, decision.RedirectTo.Number)
	})

	t.Run("state is reachable without membership data", func(t *testing.T) {
		decision := flow.GuardStep(draft, onboarding.StepState)

		assert.True(t, decision.Allowed)
	})
}

func TestFlow_GuardStep_MembershipExemptWithoutAutoResolve(t *testing.T) {
	// Policy variant: membership is not auto-filled, but the C Corp
	// exemption still unblocks later steps.
	flow := onboarding.BuildFlow(onboarding.FlowPolicy{AutoResolveMembership: false})

	draft := completedContactDraft()
	draft.SetEntityType(&onboarding.EntityTypeData{EntityType: onboarding.EntityTypeCCorp})
	require.False(t, draft.IsStepCompleted(onboarding.StepMembership))

	decision := flow.GuardStep(draft, onboarding.StepState)
	assert.True(t, decision.Allowed)
}

func TestFlow_GuardStep_LLCRequiresMembership(t *testing.T) {
	flow := onboarding.BuildFlow(onboarding.FlowPolicy{AutoResolveMembership: true})

	draft := completedContactDraft()
	draft.SetEntityType(&onboarding.EntityTypeData{EntityType: onboarding.EntityTypeLLC})

	decision := flow.GuardStep(draft, onboarding.StepState)

	require.False(t, decision.Allowed)
	assert.Equal(t, onboarding.StepMembership, decision.RedirectTo.Number)
}

func TestFlow_GuardStep_ThanksRequiresConfirmedSave(t *testing.T) {
	flow := onboarding.BuildFlow(onboarding.FlowPolicy{AutoResolveMembership: true})

	draft := completedContactDraft()
	draft.SetEntityType(&onboarding.EntityTypeData{EntityType: onboarding.EntityTypeLLC})
	draft.SetMembership(&onboarding.MembershipData{MembershipType: onboarding.MembershipTypeSingle})
	draft.SetState(&onboarding.StateData{State: "WY"})

	// Summary seen but never submitted: thanks stays locked behind it.
	decision := flow.GuardStep(draft, onboarding.StepThanks)
	require.False(t, decision.Allowed)
	assert.Equal(t, onboarding.StepSummary, decision.RedirectTo.Number)

	draft.SetSummary(&onboarding.SummaryData{Confirmed: true})
	decision = flow.GuardStep(draft, onboarding.StepThanks)
	assert.True(t, decision.Allowed)
}

func TestFlow_NextStep(t *testing.T) {
	flow := onboarding.BuildFlow(onboarding.FlowPolicy{AutoResolveMembership: true})

	t.Run("llc goes from entity type to members", func(t *testing.T) {
		draft := completedContactDraft()
		draft.SetEntityType(&onboarding.EntityTypeData{EntityType: onboarding.EntityTypeLLC})

		next, ok := flow.NextStep(draft, onboarding.StepEntityType)
		require.True(t, ok)
		assert.Equal(t, onboarding.StepMembership, next.Number)
	})

	t.Run("c corp goes from entity type straight to state", func(t *testing.T) {
		draft := completedContactDraft()
		draft.SetEntityType(&onboarding.EntityTypeData{EntityType: onboarding.EntityTypeCCorp})

		next, ok := flow.NextStep(draft, onboarding.StepEntityType)
		require.True(t, ok)
		assert.Equal(t, onboarding.StepState, next.Number)
	})

	t.Run("no step after thanks", func(t *testing.T) {
		draft := completedContactDraft()

		_, ok := flow.NextStep(draft, onboarding.StepThanks)
		assert.False(t, ok)
	})
}

func TestFlow_ForceLLCPolicy(t *testing.T) {
	flow := onboarding.BuildFlow(onboarding.FlowPolicy{AutoResolveMembership: true, ForceLLC: true})

	draft := completedContactDraft()

	t.Run("entity type screen is skipped", func(t *testing.T) {
		decision := flow.GuardStep(draft, onboarding.StepEntityType)

		require.False(t, decision.Allowed)
		assert.Equal(t, onboarding.StepMembership, decision.RedirectTo.Number)
	})

	t.Run("members is reachable right after contact", func(t *testing.T) {
		decision := flow.GuardStep(draft, onboarding.StepMembership)
		assert.True(t, decision.Allowed)
	})
}

func TestFlow_StepBySlug(t *testing.T) {
	flow := onboarding.BuildFlow(onboarding.FlowPolicy{})

	step, ok := flow.StepBySlug("members")
	require.True(t, ok)
	assert.Equal(t, onboarding.StepMembership, step.Number)

	_, ok = flow.StepBySlug("missing")
	assert.False(t, ok)
}
