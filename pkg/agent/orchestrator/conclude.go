package orchestrator

import (
	"context"
	"strings"

	"github.com/rootline-ai/rootline/pkg/agent/prompt"
	"github.com/rootline-ai/rootline/pkg/models"
)

// conclusionNotDetermined is the sentinel root cause for inconclusive runs.
const conclusionNotDetermined = "not determined"

// conclude asks the model for a final verdict over the whole investigation
// and reconciles it against the locally recorded facts: the confirmed
// hypothesis, the accumulated evidence, and the known service list. The
// model narrates; the state machine decides what actually happened.
func (r *run) conclude(ctx context.Context) {
	if r.sm.Phase() == models.PhaseComplete {
		return
	}
	if err := r.enterConclude(); err != nil {
		r.recordError("failed to enter conclude", err)
		return
	}

	conclusion, err := chat(ctx, r.o, r.o.builder.Conclusion(r.sm.State()), prompt.ParseConclusion)
	if err != nil {
		r.recordError("conclusion failed", err)
		conclusion = &models.Conclusion{
			RootCause:  conclusionNotDetermined,
			Confidence: models.ConfidenceLow,
		}
	}
	r.reconcileConclusion(conclusion)

	if err := r.sm.SetConclusion(conclusion); err != nil {
		r.recordError("failed to record conclusion", err)
	}
}

// enterConclude steps the phase graph into conclude from wherever the
// investigation loop left off.
func (r *run) enterConclude() error {
	if r.sm.Phase() == models.PhaseInvestigate {
		if err := r.sm.TransitionTo(models.PhaseEvaluate, "winding down"); err != nil {
			return err
		}
	}
	return r.sm.TransitionTo(models.PhaseConclude, "investigation loop finished")
}

// reconcileConclusion overrides model claims the local record contradicts.
func (r *run) reconcileConclusion(c *models.Conclusion) {
	confirmed := r.sm.ConfirmedHypothesis()

	// The confirmed hypothesis ID is a fact, not an opinion.
	if c.ConfirmedHypothesisID != "" && r.sm.FindHypothesis(c.ConfirmedHypothesisID) == nil {
		c.ConfirmedHypothesisID = ""
	}
	if c.ConfirmedHypothesisID == "" && confirmed != nil {
		c.ConfirmedHypothesisID = confirmed.ID
	}

	// A root cause with no confirmed hypothesis caps out at medium.
	if confirmed == nil && c.Confidence == models.ConfidenceHigh {
		c.Confidence = models.ConfidenceMedium
	}

	if len(c.EvidenceChain) == 0 {
		c.EvidenceChain = r.evidenceChainFromEvaluations()
	}
	c.AffectedServices = r.reconcileServices(c.AffectedServices)
}

// evidenceChainFromEvaluations rebuilds the chain from recorded verdicts
// when the model omitted one. Only strong and weak evidence qualifies.
func (r *run) evidenceChainFromEvaluations() []models.EvidenceLink {
	var chain []models.EvidenceLink
	for _, eval := range r.sm.State().Evaluations {
		if eval.EvidenceStrength != models.EvidenceStrong && eval.EvidenceStrength != models.EvidenceWeak {
			continue
		}
		finding := eval.Reasoning
		if len(eval.Findings) > 0 {
			finding = eval.Findings[0]
		}
		if finding == "" {
			continue
		}
		chain = append(chain, models.EvidenceLink{
			Finding:  finding,
			Source:   eval.HypothesisID,
			Strength: eval.EvidenceStrength,
		})
	}
	return chain
}

// reconcileServices keeps only proposed services the investigation has
// actually seen: triage-identified services plus the configured known
// list. An intersection that empties a non-empty proposal falls back to
// the triage services.
func (r *run) reconcileServices(proposed []string) []string {
	triage := r.sm.State().Triage
	known := make(map[string]bool)
	if triage != nil {
		for _, svc := range triage.AffectedServices {
			known[strings.ToLower(svc)] = true
		}
	}
	for _, svc := range r.o.opts.KnownServices {
		known[strings.ToLower(svc)] = true
	}
	if len(known) == 0 {
		return proposed
	}

	var kept []string
	for _, svc := range proposed {
		if known[strings.ToLower(svc)] {
			kept = append(kept, svc)
		}
	}
	if len(kept) == 0 && triage != nil {
		return triage.AffectedServices
	}
	return kept
}
