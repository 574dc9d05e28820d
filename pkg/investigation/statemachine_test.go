package investigation

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/events"
	"github.com/rootline-ai/rootline/pkg/models"
)

func newMachine(t *testing.T, cfg Config) (*StateMachine, *events.Collector) {
	t.Helper()
	collector := events.NewCollector()
	emitter := events.NewEmitter()
	emitter.Subscribe(collector.Handler())
	if cfg.Query == "" {
		cfg.Query = "why is checkout latency elevated"
	}
	return New(cfg, emitter), collector
}

func addHypothesis(t *testing.T, m *StateMachine, statement, parentID string) *models.Hypothesis {
	t.Helper()
	h, err := m.AddHypothesis(&models.Hypothesis{
		Statement: statement,
		Category:  models.CategoryApplication,
		Priority:  3,
		ParentID:  parentID,
	})
	require.NoError(t, err)
	return h
}

func TestTransitionTable(t *testing.T) {
	legal := []struct {
		from, to models.Phase
	}{
		{models.PhaseIdle, models.PhaseTriage},
		{models.PhaseTriage, models.PhaseHypothesize},
		{models.PhaseTriage, models.PhaseConclude},
		{models.PhaseHypothesize, models.PhaseInvestigate},
		{models.PhaseHypothesize, models.PhaseConclude},
		{models.PhaseInvestigate, models.PhaseEvaluate},
		{models.PhaseEvaluate, models.PhaseInvestigate},
		{models.PhaseEvaluate, models.PhaseHypothesize},
		{models.PhaseEvaluate, models.PhaseConclude},
		{models.PhaseConclude, models.PhaseRemediate},
		{models.PhaseConclude, models.PhaseComplete},
		{models.PhaseRemediate, models.PhaseComplete},
	}
	for _, tt := range legal {
		assert.True(t, validTransition(tt.from, tt.to), "%s -> %s must be legal", tt.from, tt.to)
	}

	illegal := []struct {
		from, to models.Phase
	}{
		{models.PhaseIdle, models.PhaseConclude},
		{models.PhaseTriage, models.PhaseInvestigate},
		{models.PhaseInvestigate, models.PhaseConclude},
		{models.PhaseComplete, models.PhaseTriage},
		{models.PhaseConclude, models.PhaseInvestigate},
	}
	for _, tt := range illegal {
		assert.False(t, validTransition(tt.from, tt.to), "%s -> %s must be illegal", tt.from, tt.to)
	}
}

func TestInvalidTransitionLeavesStateUnchanged(t *testing.T) {
	m, collector := newMachine(t, Config{})

	err := m.TransitionTo(models.PhaseConclude, "skip ahead")
	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, models.PhaseIdle, invalid.From)
	assert.Equal(t, models.PhaseConclude, invalid.To)

	assert.Equal(t, models.PhaseIdle, m.Phase())
	assert.Empty(t, m.State().PhaseHistory)
	assert.Empty(t, collector.Events())
}

func TestPhaseHistoryMatchesEvents(t *testing.T) {
	m, collector := newMachine(t, Config{})
	require.NoError(t, m.Start())
	require.NoError(t, m.TransitionTo(models.PhaseHypothesize, "triage done"))
	require.NoError(t, m.TransitionTo(models.PhaseInvestigate, "hypothesis picked"))
	require.NoError(t, m.TransitionTo(models.PhaseEvaluate, "queries done"))
	require.NoError(t, m.TransitionTo(models.PhaseConclude, "confirmed"))
	require.NoError(t, m.TransitionTo(models.PhaseComplete, "finished"))

	history := m.State().PhaseHistory
	var fromEvents []models.PhaseTransition
	for _, ev := range collector.Events() {
		if ev.Type == events.TypePhaseChange {
			p := ev.Payload.(events.PhaseChangePayload)
			fromEvents = append(fromEvents, models.PhaseTransition{From: p.From, To: p.To, Reason: p.Reason})
		}
	}
	require.Len(t, fromEvents, len(history))
	for i, tr := range history {
		assert.Equal(t, tr.From, fromEvents[i].From)
		assert.Equal(t, tr.To, fromEvents[i].To)
	}
	assert.NotNil(t, m.State().CompletedAt)
}

func TestSetTriageResultOnlyInTriage(t *testing.T) {
	m, _ := newMachine(t, Config{})
	err := m.SetTriageResult(&models.TriageResult{Summary: "x"})
	assert.Error(t, err, "triage result in idle phase must be rejected")

	require.NoError(t, m.Start())
	require.NoError(t, m.SetTriageResult(&models.TriageResult{
		Summary:          "checkout latency spike",
		AffectedServices: []string{"checkout-api"},
		Severity:         models.SeverityHigh,
	}))
	assert.Equal(t, "checkout latency spike", m.State().Triage.Summary)
}

func TestAddHypothesisAssignsSequentialIDs(t *testing.T) {
	m, collector := newMachine(t, Config{})
	h1 := addHypothesis(t, m, "connection pool exhaustion", "")
	h2 := addHypothesis(t, m, "recent deploy regression", "")

	assert.Equal(t, "h_1", h1.ID)
	assert.Equal(t, "h_2", h2.ID)
	assert.Equal(t, models.HypothesisPending, h1.Status)
	assert.Equal(t, models.EvidencePending, h1.EvidenceStrength)
	assert.Equal(t, []string{"h_1", "h_2"}, m.State().RootHypothesisIDs)

	types := collector.Types()
	assert.Equal(t, []string{events.TypeHypothesisFormed, events.TypeHypothesisFormed}, types)
}

func TestHypothesisDepthCap(t *testing.T) {
	m, _ := newMachine(t, Config{MaxHypothesisDepth: 3})
	h1 := addHypothesis(t, m, "root", "")
	h2 := addHypothesis(t, m, "child", h1.ID)
	h3 := addHypothesis(t, m, "grandchild", h2.ID)

	_, err := m.AddHypothesis(&models.Hypothesis{Statement: "too deep", ParentID: h3.ID})
	assert.ErrorContains(t, err, "depth limit")
	assert.Equal(t, 3, m.Depth(h3.ID))
	assert.Len(t, m.State().Hypotheses, 3)
}

func TestHypothesisCountCap(t *testing.T) {
	m, _ := newMachine(t, Config{MaxHypotheses: 2})
	addHypothesis(t, m, "one", "")
	addHypothesis(t, m, "two", "")
	_, err := m.AddHypothesis(&models.Hypothesis{Statement: "three"})
	assert.ErrorContains(t, err, "limit reached")
}

func TestNextHypothesisOrdering(t *testing.T) {
	m, _ := newMachine(t, Config{})

	low, err := m.AddHypothesis(&models.Hypothesis{Statement: "low priority", Priority: 4})
	require.NoError(t, err)
	high, err := m.AddHypothesis(&models.Hypothesis{Statement: "high priority", Priority: 1})
	require.NoError(t, err)
	_, err = m.AddHypothesis(&models.Hypothesis{Statement: "high child", Priority: 1, ParentID: high.ID})
	require.NoError(t, err)

	// Highest priority wins; root beats child at equal priority.
	assert.Equal(t, high.ID, m.NextHypothesis().ID)

	// Once the high branch is investigating, a pending hypothesis at the
	// same priority is preferred.
	require.NoError(t, m.SetCurrentHypothesis(high.ID))
	next := m.NextHypothesis()
	require.NotNil(t, next)
	assert.Equal(t, "h_3", next.ID, "pending child beats investigating root at equal priority")

	_ = low
}

func TestApplyEvaluationConfirm(t *testing.T) {
	m, collector := newMachine(t, Config{})
	h := addHypothesis(t, m, "pool exhaustion", "")

	require.NoError(t, m.ApplyEvaluation(models.EvidenceEvaluation{
		HypothesisID:     h.ID,
		EvidenceStrength: models.EvidenceStrong,
		Confidence:       85,
		Action:           models.ActionConfirm,
	}))

	assert.Equal(t, models.HypothesisConfirmed, h.Status)
	assert.Equal(t, 85, h.Confidence)
	require.NotNil(t, m.ConfirmedHypothesis())
	assert.Contains(t, collector.Types(), events.TypeHypothesisConfirmed)
}

func TestApplyEvaluationPrunePropagates(t *testing.T) {
	m, collector := newMachine(t, Config{})
	root := addHypothesis(t, m, "root", "")
	child := addHypothesis(t, m, "child", root.ID)
	grandchild := addHypothesis(t, m, "grandchild", child.ID)
	sibling := addHypothesis(t, m, "sibling", "")

	require.NoError(t, m.ApplyEvaluation(models.EvidenceEvaluation{
		HypothesisID:     root.ID,
		EvidenceStrength: models.EvidenceContradicting,
		Action:           models.ActionPrune,
	}))

	assert.Equal(t, models.HypothesisPruned, root.Status)
	assert.Equal(t, models.HypothesisPruned, child.Status)
	assert.Equal(t, models.HypothesisPruned, grandchild.Status)
	assert.Equal(t, models.HypothesisPending, sibling.Status, "pruning must not touch siblings")

	pruned := 0
	for _, typ := range collector.Types() {
		if typ == events.TypeHypothesisPruned {
			pruned++
		}
	}
	assert.Equal(t, 3, pruned)
}

func TestPruneNeverRevertsConfirmedDescendant(t *testing.T) {
	m, collector := newMachine(t, Config{})
	root := addHypothesis(t, m, "root", "")
	child := addHypothesis(t, m, "child", root.ID)
	grandchild := addHypothesis(t, m, "grandchild", child.ID)

	require.NoError(t, m.ApplyEvaluation(models.EvidenceEvaluation{
		HypothesisID:     child.ID,
		EvidenceStrength: models.EvidenceStrong,
		Confidence:       90,
		Action:           models.ActionConfirm,
	}))
	require.NoError(t, m.ApplyEvaluation(models.EvidenceEvaluation{
		HypothesisID:     root.ID,
		EvidenceStrength: models.EvidenceContradicting,
		Action:           models.ActionPrune,
	}))

	assert.Equal(t, models.HypothesisPruned, root.Status)
	assert.Equal(t, models.HypothesisConfirmed, child.Status, "confirmed status is terminal")
	assert.Equal(t, models.HypothesisPruned, grandchild.Status, "the walk continues past a confirmed node")
	require.NotNil(t, m.ConfirmedHypothesis())
	assert.Equal(t, child.ID, m.ConfirmedHypothesis().ID)

	pruned := 0
	for _, typ := range collector.Types() {
		if typ == events.TypeHypothesisPruned {
			pruned++
		}
	}
	assert.Equal(t, 2, pruned, "no pruned event for the confirmed node")
}

func TestLaterVerdictsCannotDemoteConfirmed(t *testing.T) {
	m, _ := newMachine(t, Config{})
	h := addHypothesis(t, m, "pool exhaustion", "")
	require.NoError(t, m.ApplyEvaluation(models.EvidenceEvaluation{
		HypothesisID:     h.ID,
		EvidenceStrength: models.EvidenceStrong,
		Confidence:       90,
		Action:           models.ActionConfirm,
	}))

	for _, action := range []models.EvaluationAction{
		models.ActionPrune, models.ActionBranch, models.ActionContinue,
	} {
		require.NoError(t, m.ApplyEvaluation(models.EvidenceEvaluation{
			HypothesisID:     h.ID,
			EvidenceStrength: models.EvidenceWeak,
			Action:           action,
		}))
		assert.Equal(t, models.HypothesisConfirmed, h.Status, "action %s must not revert confirmation", action)
	}

	require.NoError(t, m.SetCurrentHypothesis(h.ID))
	assert.Equal(t, models.HypothesisConfirmed, h.Status)
}

func TestApplyEvaluationUnknownAction(t *testing.T) {
	m, _ := newMachine(t, Config{})
	h := addHypothesis(t, m, "x", "")
	err := m.ApplyEvaluation(models.EvidenceEvaluation{HypothesisID: h.ID, Action: "explode"})
	assert.Error(t, err)
}

func TestApplyEvaluationClampsConfidence(t *testing.T) {
	m, _ := newMachine(t, Config{})
	h := addHypothesis(t, m, "x", "")
	require.NoError(t, m.ApplyEvaluation(models.EvidenceEvaluation{
		HypothesisID: h.ID, Confidence: 150, Action: models.ActionContinue,
		EvidenceStrength: models.EvidenceWeak,
	}))
	assert.Equal(t, 100, h.Confidence)
}

func TestSetConclusionFlagsHypothesis(t *testing.T) {
	m, _ := newMachine(t, Config{})
	h := addHypothesis(t, m, "pool exhaustion", "")

	require.NoError(t, m.SetConclusion(&models.Conclusion{
		RootCause:             "connection pool exhaustion",
		Confidence:            models.ConfidenceHigh,
		ConfirmedHypothesisID: h.ID,
	}))
	assert.Equal(t, models.HypothesisConfirmed, h.Status)
	require.NotNil(t, m.State().Conclusion)
}

func TestRemediationStepLifecycle(t *testing.T) {
	m, collector := newMachine(t, Config{})
	require.NoError(t, m.SetRemediationPlan(&models.RemediationPlan{
		Summary: "restart and scale",
		Steps: []models.RemediationStep{
			{ID: "s1", Action: "restart checkout-api", Status: models.StepPending},
			{ID: "s2", Action: "raise pool size", Status: models.StepPending},
		},
	}))

	require.NoError(t, m.UpdateRemediationStep("s1", models.StepCompleted, "restarted", ""))
	require.NoError(t, m.UpdateRemediationStep("s2", models.StepFailed, "", "skill not found"))
	assert.Error(t, m.UpdateRemediationStep("s3", models.StepCompleted, "", ""))

	steps := m.State().RemediationPlan.Steps
	assert.Equal(t, models.StepCompleted, steps[0].Status)
	assert.Equal(t, "skill not found", steps[1].Error)

	completed := 0
	for _, typ := range collector.Types() {
		if typ == events.TypeStepCompleted {
			completed++
		}
	}
	assert.Equal(t, 2, completed)
}

func TestCanContinue(t *testing.T) {
	m, _ := newMachine(t, Config{MaxIterations: 2})
	assert.False(t, m.CanContinue(), "idle machines cannot continue")

	require.NoError(t, m.Start())
	assert.True(t, m.CanContinue())

	m.IncrementIteration()
	m.IncrementIteration()
	assert.False(t, m.CanContinue(), "iteration cap must stop the loop")
}

func TestRecordErrorNeverAborts(t *testing.T) {
	m, collector := newMachine(t, Config{})
	require.NoError(t, m.Start())
	m.RecordError("llm call failed: connection reset")

	require.Len(t, m.State().Errors, 1)
	assert.Equal(t, models.PhaseTriage, m.State().Errors[0].Phase)
	assert.Contains(t, collector.Types(), events.TypeError)
	assert.True(t, m.CanContinue())
}

func TestToJSONDeterministic(t *testing.T) {
	m, _ := newMachine(t, Config{})
	h := addHypothesis(t, m, "x", "")
	for i := 0; i < 5; i++ {
		require.NoError(t, m.RecordQueryResult(h.ID, fmt.Sprintf("q%d", i), map[string]any{"n": i}))
	}

	first, err := m.ToJSON()
	require.NoError(t, err)
	second, err := m.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(first, &decoded))
	assert.Equal(t, m.ID(), decoded["id"])
}

func TestResultCarriesConclusion(t *testing.T) {
	m, _ := newMachine(t, Config{})
	require.NoError(t, m.SetConclusion(&models.Conclusion{
		RootCause:        "pool exhaustion",
		Confidence:       models.ConfidenceHigh,
		AffectedServices: []string{"checkout-api"},
	}))

	result := m.Result("root cause identified")
	assert.Equal(t, "pool exhaustion", result.RootCause)
	assert.Equal(t, models.ConfidenceHigh, result.Confidence)
	assert.Equal(t, []string{"checkout-api"}, result.AffectedServices)
	assert.GreaterOrEqual(t, result.DurationMs, int64(0))
}
