// Package investigation owns the deterministic core of a run: the phase
// state machine and the hypothesis tree. All mutation goes through methods
// on StateMachine, called from a single coordinator goroutine; events are
// emitted synchronously in mutation order.
package investigation

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rootline-ai/rootline/pkg/events"
	"github.com/rootline-ai/rootline/pkg/models"
)

// Defaults applied when Config fields are zero.
const (
	DefaultMaxIterations      = 20
	DefaultMaxHypothesisDepth = 4
	DefaultMaxHypotheses      = 10
)

// InvalidTransitionError reports a phase change the transition table does
// not allow. These are programming defects, not recoverable conditions.
type InvalidTransitionError struct {
	From models.Phase
	To   models.Phase
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// transitions is the legal phase graph. complete is terminal.
var transitions = map[models.Phase][]models.Phase{
	models.PhaseIdle:        {models.PhaseTriage},
	models.PhaseTriage:      {models.PhaseHypothesize, models.PhaseConclude},
	models.PhaseHypothesize: {models.PhaseInvestigate, models.PhaseConclude},
	models.PhaseInvestigate: {models.PhaseEvaluate},
	models.PhaseEvaluate:    {models.PhaseInvestigate, models.PhaseHypothesize, models.PhaseConclude},
	models.PhaseConclude:    {models.PhaseRemediate, models.PhaseComplete},
	models.PhaseRemediate:   {models.PhaseComplete},
	models.PhaseComplete:    {},
}

// Config sets up one investigation.
type Config struct {
	Query              string
	IncidentID         string
	MaxIterations      int
	MaxHypothesisDepth int
	MaxHypotheses      int
}

// StateMachine drives one investigation. Not safe for concurrent use; the
// coordinator is the sole caller.
type StateMachine struct {
	state    *models.InvestigationState
	index    map[string]int
	nextSeq  int
	maxDepth int
	maxHyps  int
	emitter  *events.Emitter
	now      func() time.Time
}

// New creates a state machine in the idle phase. The emitter must not be
// nil; callers without subscribers pass a fresh one.
func New(cfg Config, emitter *events.Emitter) *StateMachine {
	if emitter == nil {
		panic("investigation: emitter is required")
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.MaxHypothesisDepth <= 0 {
		cfg.MaxHypothesisDepth = DefaultMaxHypothesisDepth
	}
	if cfg.MaxHypotheses <= 0 {
		cfg.MaxHypotheses = DefaultMaxHypotheses
	}
	now := time.Now
	return &StateMachine{
		state: &models.InvestigationState{
			ID:            uuid.NewString(),
			Query:         cfg.Query,
			IncidentID:    cfg.IncidentID,
			Phase:         models.PhaseIdle,
			StartedAt:     now().UTC(),
			UpdatedAt:     now().UTC(),
			Hypotheses:    []*models.Hypothesis{},
			MaxIterations: cfg.MaxIterations,
		},
		index:    make(map[string]int),
		nextSeq:  1,
		maxDepth: cfg.MaxHypothesisDepth,
		maxHyps:  cfg.MaxHypotheses,
		emitter:  emitter,
		now:      now,
	}
}

// ID returns the investigation identifier.
func (m *StateMachine) ID() string { return m.state.ID }

// Phase returns the current phase.
func (m *StateMachine) Phase() models.Phase { return m.state.Phase }

// State exposes the underlying aggregate for read-only use by the
// coordinator (prompt building, persistence). Callers must not mutate it.
func (m *StateMachine) State() *models.InvestigationState { return m.state }

// Start moves idle → triage.
func (m *StateMachine) Start() error {
	return m.TransitionTo(models.PhaseTriage, "investigation started")
}

// TransitionTo changes phase if the transition table allows it. On an
// invalid transition the state is left untouched and an
// InvalidTransitionError is returned.
func (m *StateMachine) TransitionTo(to models.Phase, reason string) error {
	from := m.state.Phase
	if !validTransition(from, to) {
		return &InvalidTransitionError{From: from, To: to}
	}
	at := m.now().UTC()
	m.state.Phase = to
	m.state.UpdatedAt = at
	m.state.PhaseHistory = append(m.state.PhaseHistory, models.PhaseTransition{
		From: from, To: to, Reason: reason, At: at,
	})
	if to == models.PhaseComplete {
		m.state.CompletedAt = &at
	}
	m.emitter.Emit(events.TypePhaseChange, events.PhaseChangePayload{From: from, To: to, Reason: reason})
	return nil
}

func validTransition(from, to models.Phase) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// SetTriageResult records the triage outcome. Only legal in the triage
// phase.
func (m *StateMachine) SetTriageResult(triage *models.TriageResult) error {
	if m.state.Phase != models.PhaseTriage {
		return fmt.Errorf("triage result can only be set in the triage phase, not %s", m.state.Phase)
	}
	if triage == nil {
		return fmt.Errorf("triage result is required")
	}
	m.state.Triage = triage
	m.state.UpdatedAt = m.now().UTC()
	m.emitter.Emit(events.TypeTriageComplete, events.TriagePayload{Triage: triage})
	return nil
}

// AddHypothesis admits a hypothesis into the tree, assigning its ID and
// wiring the parent link. Depth and count caps are enforced here: a violating
// hypothesis is rejected with an error and no state changes.
func (m *StateMachine) AddHypothesis(h *models.Hypothesis) (*models.Hypothesis, error) {
	if h == nil {
		return nil, fmt.Errorf("hypothesis is required")
	}
	if len(m.state.Hypotheses) >= m.maxHyps {
		return nil, fmt.Errorf("hypothesis limit reached (%d)", m.maxHyps)
	}

	var parent *models.Hypothesis
	if h.ParentID != "" {
		parent = m.FindHypothesis(h.ParentID)
		if parent == nil {
			return nil, fmt.Errorf("parent hypothesis %s not found", h.ParentID)
		}
		if m.depthOf(parent)+1 > m.maxDepth {
			return nil, fmt.Errorf("hypothesis depth limit reached (%d)", m.maxDepth)
		}
	}

	now := m.now().UTC()
	h.ID = fmt.Sprintf("h_%d", m.nextSeq)
	m.nextSeq++
	if h.Status == "" {
		h.Status = models.HypothesisPending
	}
	if h.EvidenceStrength == "" {
		h.EvidenceStrength = models.EvidencePending
	}
	if h.Priority < 1 || h.Priority > 5 {
		h.Priority = 3
	}
	if h.QueryResults == nil {
		h.QueryResults = make(map[string]any)
	}
	h.CreatedAt = now
	h.UpdatedAt = now

	m.index[h.ID] = len(m.state.Hypotheses)
	m.state.Hypotheses = append(m.state.Hypotheses, h)
	if parent != nil {
		parent.Children = append(parent.Children, h.ID)
	} else {
		m.state.RootHypothesisIDs = append(m.state.RootHypothesisIDs, h.ID)
	}
	m.state.UpdatedAt = now
	m.emitter.Emit(events.TypeHypothesisFormed, events.HypothesisPayload{Hypothesis: h})
	return h, nil
}

// FindHypothesis returns the hypothesis with the given ID, or nil.
func (m *StateMachine) FindHypothesis(id string) *models.Hypothesis {
	idx, ok := m.index[id]
	if !ok {
		return nil
	}
	return m.state.Hypotheses[idx]
}

// ActiveHypotheses returns pending and investigating hypotheses in
// creation order.
func (m *StateMachine) ActiveHypotheses() []*models.Hypothesis {
	var out []*models.Hypothesis
	for _, h := range m.state.Hypotheses {
		if h.Active() {
			out = append(out, h)
		}
	}
	return out
}

// NextHypothesis picks the next hypothesis to investigate: highest priority
// first (1 beats 5), pending before investigating, shallower before deeper,
// and creation order as the final tiebreak. Returns nil when nothing is
// active.
func (m *StateMachine) NextHypothesis() *models.Hypothesis {
	var best *models.Hypothesis
	bestDepth := 0
	for _, h := range m.state.Hypotheses {
		if !h.Active() {
			continue
		}
		depth := m.depthOf(h)
		if best == nil || m.betterCandidate(h, depth, best, bestDepth) {
			best = h
			bestDepth = depth
		}
	}
	return best
}

func (m *StateMachine) betterCandidate(h *models.Hypothesis, depth int, best *models.Hypothesis, bestDepth int) bool {
	if h.Priority != best.Priority {
		return h.Priority < best.Priority
	}
	if h.Status != best.Status {
		return h.Status == models.HypothesisPending
	}
	return depth < bestDepth
}

// SetCurrentHypothesis marks the hypothesis under investigation.
func (m *StateMachine) SetCurrentHypothesis(id string) error {
	h := m.FindHypothesis(id)
	if h == nil {
		return fmt.Errorf("hypothesis %s not found", id)
	}
	if h.Status != models.HypothesisConfirmed {
		h.Status = models.HypothesisInvestigating
	}
	h.UpdatedAt = m.now().UTC()
	m.state.CurrentHypothesisID = id
	m.state.UpdatedAt = h.UpdatedAt
	return nil
}

// AttachQueries records the planned causal queries for a hypothesis so
// later evidence rendering can pair each result with its intent.
func (m *StateMachine) AttachQueries(hypothesisID string, queries []models.CausalQuery) error {
	h := m.FindHypothesis(hypothesisID)
	if h == nil {
		return fmt.Errorf("hypothesis %s not found", hypothesisID)
	}
	h.Queries = append(h.Queries, queries...)
	h.UpdatedAt = m.now().UTC()
	m.state.UpdatedAt = h.UpdatedAt
	return nil
}

// RecordQueryResult attaches a raw tool result to a hypothesis under its
// query ID.
func (m *StateMachine) RecordQueryResult(hypothesisID, queryID string, result any) error {
	h := m.FindHypothesis(hypothesisID)
	if h == nil {
		return fmt.Errorf("hypothesis %s not found", hypothesisID)
	}
	if h.QueryResults == nil {
		h.QueryResults = make(map[string]any)
	}
	h.QueryResults[queryID] = result
	h.UpdatedAt = m.now().UTC()
	m.state.ToolCalls++
	m.state.UpdatedAt = h.UpdatedAt
	m.emitter.Emit(events.TypeEvidenceGathered, events.EvidencePayload{HypothesisID: hypothesisID})
	return nil
}

// ApplyEvaluation records an evaluation verdict and updates the hypothesis
// per its action: confirm, prune (with descendants), branch, or continue.
func (m *StateMachine) ApplyEvaluation(eval models.EvidenceEvaluation) error {
	h := m.FindHypothesis(eval.HypothesisID)
	if h == nil {
		return fmt.Errorf("hypothesis %s not found", eval.HypothesisID)
	}
	if !eval.Action.Valid() {
		return fmt.Errorf("unknown evaluation action %q", eval.Action)
	}

	now := m.now().UTC()
	h.EvidenceStrength = eval.EvidenceStrength
	h.Confidence = clampConfidence(eval.Confidence)
	if eval.Reasoning != "" {
		h.Reasoning = eval.Reasoning
	}
	h.UpdatedAt = now

	m.state.Evaluations = append(m.state.Evaluations, eval)
	m.state.UpdatedAt = now
	m.emitter.Emit(events.TypeEvidenceEvaluated, events.EvidencePayload{
		HypothesisID: h.ID, Evaluation: &eval,
	})

	switch eval.Action {
	case models.ActionConfirm:
		h.Status = models.HypothesisConfirmed
		m.emitter.Emit(events.TypeHypothesisConfirmed, events.HypothesisPayload{Hypothesis: h})
	case models.ActionPrune:
		m.pruneWithDescendants(h)
	case models.ActionBranch, models.ActionContinue:
		// Confirmed is terminal; a later verdict records its evidence
		// above but never demotes the status.
		if h.Status != models.HypothesisConfirmed {
			h.Status = models.HypothesisInvestigating
		}
		m.emitter.Emit(events.TypeHypothesisUpdated, events.HypothesisPayload{Hypothesis: h})
	}
	return nil
}

// pruneWithDescendants prunes a hypothesis and every hypothesis below it.
// Confirmed nodes keep their status; the walk still continues past them so
// their unconfirmed descendants get pruned.
func (m *StateMachine) pruneWithDescendants(h *models.Hypothesis) {
	if h.Status == models.HypothesisPruned {
		return
	}
	if h.Status != models.HypothesisConfirmed {
		h.Status = models.HypothesisPruned
		h.UpdatedAt = m.now().UTC()
		m.emitter.Emit(events.TypeHypothesisPruned, events.HypothesisPayload{Hypothesis: h})
	}
	for _, childID := range h.Children {
		if child := m.FindHypothesis(childID); child != nil {
			m.pruneWithDescendants(child)
		}
	}
}

// ConfirmedHypothesis returns the first confirmed hypothesis, or nil.
func (m *StateMachine) ConfirmedHypothesis() *models.Hypothesis {
	for _, h := range m.state.Hypotheses {
		if h.Status == models.HypothesisConfirmed {
			return h
		}
	}
	return nil
}

// SetConclusion records the final verdict and flags the confirmed
// hypothesis when the conclusion names one.
func (m *StateMachine) SetConclusion(c *models.Conclusion) error {
	if c == nil {
		return fmt.Errorf("conclusion is required")
	}
	if c.ConfirmedHypothesisID != "" {
		if h := m.FindHypothesis(c.ConfirmedHypothesisID); h != nil && h.Status != models.HypothesisConfirmed {
			h.Status = models.HypothesisConfirmed
			h.UpdatedAt = m.now().UTC()
			m.emitter.Emit(events.TypeHypothesisConfirmed, events.HypothesisPayload{Hypothesis: h})
		}
	}
	m.state.Conclusion = c
	m.state.UpdatedAt = m.now().UTC()
	m.emitter.Emit(events.TypeConclusionReached, events.ConclusionPayload{Conclusion: c})
	return nil
}

// SetRemediationPlan records the proposed plan.
func (m *StateMachine) SetRemediationPlan(plan *models.RemediationPlan) error {
	if plan == nil {
		return fmt.Errorf("remediation plan is required")
	}
	m.state.RemediationPlan = plan
	m.state.UpdatedAt = m.now().UTC()
	m.emitter.Emit(events.TypeRemediationStarted, events.RemediationPayload{Plan: plan})
	return nil
}

// UpdateRemediationStep sets a step's execution outcome. Terminal step
// states emit step_completed.
func (m *StateMachine) UpdateRemediationStep(stepID string, status models.StepStatus, result, errMsg string) error {
	if m.state.RemediationPlan == nil {
		return fmt.Errorf("no remediation plan is set")
	}
	for i := range m.state.RemediationPlan.Steps {
		step := &m.state.RemediationPlan.Steps[i]
		if step.ID != stepID {
			continue
		}
		step.Status = status
		step.Result = result
		step.Error = errMsg
		m.state.UpdatedAt = m.now().UTC()
		switch status {
		case models.StepCompleted, models.StepFailed, models.StepSkipped:
			m.emitter.Emit(events.TypeStepCompleted, events.StepPayload{Step: step})
		}
		return nil
	}
	return fmt.Errorf("remediation step %s not found", stepID)
}

// RecordError notes a non-fatal failure. The loop decides whether to
// continue; recording never aborts.
func (m *StateMachine) RecordError(message string) {
	at := m.now().UTC()
	m.state.Errors = append(m.state.Errors, models.InvestigationError{
		Phase: m.state.Phase, Message: message, At: at,
	})
	m.state.UpdatedAt = at
	m.emitter.Emit(events.TypeError, events.ErrorPayload{Phase: m.state.Phase, Message: message})
}

// IncrementIteration counts one loop iteration.
func (m *StateMachine) IncrementIteration() {
	m.state.Iterations++
	m.state.UpdatedAt = m.now().UTC()
}

// CanContinue reports whether the loop may take another iteration.
func (m *StateMachine) CanContinue() bool {
	return m.state.Iterations < m.state.MaxIterations &&
		m.state.Phase != models.PhaseComplete &&
		m.state.Phase != models.PhaseIdle
}

// depthOf is the 1-based depth of a hypothesis in the tree.
func (m *StateMachine) depthOf(h *models.Hypothesis) int {
	depth := 1
	for h.ParentID != "" {
		parent := m.FindHypothesis(h.ParentID)
		if parent == nil {
			break
		}
		depth++
		h = parent
	}
	return depth
}

// Depth returns the depth of a hypothesis by ID, 0 when unknown.
func (m *StateMachine) Depth(id string) int {
	h := m.FindHypothesis(id)
	if h == nil {
		return 0
	}
	return m.depthOf(h)
}

// ToJSON serializes the full state deterministically. Map fields (query
// results) marshal with sorted keys, so equal states produce equal bytes.
func (m *StateMachine) ToJSON() ([]byte, error) {
	return json.MarshalIndent(m.state, "", "  ")
}

// Result builds the terminal summary for the done event.
func (m *StateMachine) Result(summary string) *models.InvestigationResult {
	result := &models.InvestigationResult{
		ID:         m.state.ID,
		Query:      m.state.Query,
		Summary:    summary,
		DurationMs: m.now().UTC().Sub(m.state.StartedAt).Milliseconds(),
	}
	if c := m.state.Conclusion; c != nil {
		result.RootCause = c.RootCause
		result.Confidence = c.Confidence
		result.AffectedServices = c.AffectedServices
	}
	result.RemediationPlan = m.state.RemediationPlan
	return result
}

func clampConfidence(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
