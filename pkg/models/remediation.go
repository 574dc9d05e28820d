package models

// RiskLevel grades how dangerous a remediation step is to execute.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// NormalizeRisk maps unknown risk strings to high — remediation errs on the
// side of requiring approval.
func NormalizeRisk(s string) RiskLevel {
	switch r := RiskLevel(s); r {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return r
	}
	return RiskHigh
}

// StepStatus is the execution state of a remediation step.
type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepApproved  StepStatus = "approved"
	StepExecuting StepStatus = "executing"
	StepCompleted StepStatus = "completed"
	StepFailed    StepStatus = "failed"
	StepSkipped   StepStatus = "skipped"
)

// RemediationStep is one proposed action in a remediation plan.
type RemediationStep struct {
	ID              string     `json:"id"`
	Action          string     `json:"action"`
	Description     string     `json:"description,omitempty"`
	Command         string     `json:"command,omitempty"`
	RollbackCommand string     `json:"rollbackCommand,omitempty"`
	CodeReference   string     `json:"codeReference,omitempty"`
	RiskLevel       RiskLevel  `json:"riskLevel"`
	RequiresApproval bool      `json:"requiresApproval"`
	Status          StepStatus `json:"status"`
	MatchingSkill   string     `json:"matchingSkill,omitempty"`
	MatchingRunbook string     `json:"matchingRunbook,omitempty"`
	Result          string     `json:"result,omitempty"`
	Error           string     `json:"error,omitempty"`
}

// RemediationPlan is the ordered set of steps proposed after a conclusion.
type RemediationPlan struct {
	Summary string            `json:"summary,omitempty"`
	Steps   []RemediationStep `json:"steps"`
}
