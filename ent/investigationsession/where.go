// Code generated by ent, DO NOT EDIT.

package investigationsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rootline-ai/rootline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldContainsFold(FieldID, id))
}

// Query applies equality check predicate on the "query" field. It's identical to QueryEQ.
func Query(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldQuery, v))
}

// IncidentID applies equality check predicate on the "incident_id" field. It's identical to IncidentIDEQ.
func IncidentID(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldIncidentID, v))
}

// RootCause applies equality check predicate on the "root_cause" field. It's identical to RootCauseEQ.
func RootCause(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldRootCause, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldConfidence, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldSummary, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldAnswer, v))
}

// ScratchpadSessionID applies equality check predicate on the "scratchpad_session_id" field. It's identical to ScratchpadSessionIDEQ.
func ScratchpadSessionID(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldScratchpadSessionID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldErrorMessage, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldCompletedAt, v))
}

// QueryEQ applies the EQ predicate on the "query" field.
func QueryEQ(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldQuery, v))
}

// QueryNEQ applies the NEQ predicate on the "query" field.
func QueryNEQ(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNEQ(FieldQuery, v))
}

// QueryIn applies the In predicate on the "query" field.
func QueryIn(vs ...string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIn(FieldQuery, vs...))
}

// QueryNotIn applies the NotIn predicate on the "query" field.
func QueryNotIn(vs ...string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotIn(FieldQuery, vs...))
}

// QueryGT applies the GT predicate on the "query" field.
func QueryGT(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGT(FieldQuery, v))
}

// QueryGTE applies the GTE predicate on the "query" field.
func QueryGTE(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGTE(FieldQuery, v))
}

// QueryLT applies the LT predicate on the "query" field.
func QueryLT(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLT(FieldQuery, v))
}

// QueryLTE applies the LTE predicate on the "query" field.
func QueryLTE(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLTE(FieldQuery, v))
}

// QueryContains applies the Contains predicate on the "query" field.
func QueryContains(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldContains(FieldQuery, v))
}

// QueryHasPrefix applies the HasPrefix predicate on the "query" field.
func QueryHasPrefix(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldHasPrefix(FieldQuery, v))
}

// QueryHasSuffix applies the HasSuffix predicate on the "query" field.
func QueryHasSuffix(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldHasSuffix(FieldQuery, v))
}

// QueryEqualFold applies the EqualFold predicate on the "query" field.
func QueryEqualFold(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEqualFold(FieldQuery, v))
}

// QueryContainsFold applies the ContainsFold predicate on the "query" field.
func QueryContainsFold(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldContainsFold(FieldQuery, v))
}

// IncidentIDEQ applies the EQ predicate on the "incident_id" field.
func IncidentIDEQ(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldIncidentID, v))
}

// IncidentIDNEQ applies the NEQ predicate on the "incident_id" field.
func IncidentIDNEQ(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNEQ(FieldIncidentID, v))
}

// IncidentIDIn applies the In predicate on the "incident_id" field.
func IncidentIDIn(vs ...string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIn(FieldIncidentID, vs...))
}

// IncidentIDNotIn applies the NotIn predicate on the "incident_id" field.
func IncidentIDNotIn(vs ...string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotIn(FieldIncidentID, vs...))
}

// IncidentIDGT applies the GT predicate on the "incident_id" field.
func IncidentIDGT(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGT(FieldIncidentID, v))
}

// IncidentIDGTE applies the GTE predicate on the "incident_id" field.
func IncidentIDGTE(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGTE(FieldIncidentID, v))
}

// IncidentIDLT applies the LT predicate on the "incident_id" field.
func IncidentIDLT(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLT(FieldIncidentID, v))
}

// IncidentIDLTE applies the LTE predicate on the "incident_id" field.
func IncidentIDLTE(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLTE(FieldIncidentID, v))
}

// IncidentIDContains applies the Contains predicate on the "incident_id" field.
func IncidentIDContains(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldContains(FieldIncidentID, v))
}

// IncidentIDHasPrefix applies the HasPrefix predicate on the "incident_id" field.
func IncidentIDHasPrefix(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldHasPrefix(FieldIncidentID, v))
}

// IncidentIDHasSuffix applies the HasSuffix predicate on the "incident_id" field.
func IncidentIDHasSuffix(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldHasSuffix(FieldIncidentID, v))
}

// IncidentIDIsNil applies the IsNil predicate on the "incident_id" field.
func IncidentIDIsNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIsNull(FieldIncidentID))
}

// IncidentIDNotNil applies the NotNil predicate on the "incident_id" field.
func IncidentIDNotNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotNull(FieldIncidentID))
}

// IncidentIDEqualFold applies the EqualFold predicate on the "incident_id" field.
func IncidentIDEqualFold(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEqualFold(FieldIncidentID, v))
}

// IncidentIDContainsFold applies the ContainsFold predicate on the "incident_id" field.
func IncidentIDContainsFold(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldContainsFold(FieldIncidentID, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v Mode) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v Mode) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...Mode) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...Mode) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotIn(FieldMode, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotIn(FieldStatus, vs...))
}

// RootCauseEQ applies the EQ predicate on the "root_cause" field.
func RootCauseEQ(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldRootCause, v))
}

// RootCauseNEQ applies the NEQ predicate on the "root_cause" field.
func RootCauseNEQ(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNEQ(FieldRootCause, v))
}

// RootCauseIn applies the In predicate on the "root_cause" field.
func RootCauseIn(vs ...string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIn(FieldRootCause, vs...))
}

// RootCauseNotIn applies the NotIn predicate on the "root_cause" field.
func RootCauseNotIn(vs ...string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotIn(FieldRootCause, vs...))
}

// RootCauseGT applies the GT predicate on the "root_cause" field.
func RootCauseGT(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGT(FieldRootCause, v))
}

// RootCauseGTE applies the GTE predicate on the "root_cause" field.
func RootCauseGTE(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGTE(FieldRootCause, v))
}

// RootCauseLT applies the LT predicate on the "root_cause" field.
func RootCauseLT(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLT(FieldRootCause, v))
}

// RootCauseLTE applies the LTE predicate on the "root_cause" field.
func RootCauseLTE(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLTE(FieldRootCause, v))
}

// RootCauseContains applies the Contains predicate on the "root_cause" field.
func RootCauseContains(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldContains(FieldRootCause, v))
}

// RootCauseHasPrefix applies the HasPrefix predicate on the "root_cause" field.
func RootCauseHasPrefix(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldHasPrefix(FieldRootCause, v))
}

// RootCauseHasSuffix applies the HasSuffix predicate on the "root_cause" field.
func RootCauseHasSuffix(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldHasSuffix(FieldRootCause, v))
}

// RootCauseIsNil applies the IsNil predicate on the "root_cause" field.
func RootCauseIsNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIsNull(FieldRootCause))
}

// RootCauseNotNil applies the NotNil predicate on the "root_cause" field.
func RootCauseNotNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotNull(FieldRootCause))
}

// RootCauseEqualFold applies the EqualFold predicate on the "root_cause" field.
func RootCauseEqualFold(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEqualFold(FieldRootCause, v))
}

// RootCauseContainsFold applies the ContainsFold predicate on the "root_cause" field.
func RootCauseContainsFold(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldContainsFold(FieldRootCause, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceContains applies the Contains predicate on the "confidence" field.
func ConfidenceContains(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldContains(FieldConfidence, v))
}

// ConfidenceHasPrefix applies the HasPrefix predicate on the "confidence" field.
func ConfidenceHasPrefix(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldHasPrefix(FieldConfidence, v))
}

// ConfidenceHasSuffix applies the HasSuffix predicate on the "confidence" field.
func ConfidenceHasSuffix(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldHasSuffix(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotNull(FieldConfidence))
}

// ConfidenceEqualFold applies the EqualFold predicate on the "confidence" field.
func ConfidenceEqualFold(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEqualFold(FieldConfidence, v))
}

// ConfidenceContainsFold applies the ContainsFold predicate on the "confidence" field.
func ConfidenceContainsFold(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldContainsFold(FieldConfidence, v))
}

// AffectedServicesIsNil applies the IsNil predicate on the "affected_services" field.
func AffectedServicesIsNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIsNull(FieldAffectedServices))
}

// AffectedServicesNotNil applies the NotNil predicate on the "affected_services" field.
func AffectedServicesNotNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotNull(FieldAffectedServices))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldContainsFold(FieldSummary, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerIsNil applies the IsNil predicate on the "answer" field.
func AnswerIsNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIsNull(FieldAnswer))
}

// AnswerNotNil applies the NotNil predicate on the "answer" field.
func AnswerNotNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotNull(FieldAnswer))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldContainsFold(FieldAnswer, v))
}

// StateIsNil applies the IsNil predicate on the "state" field.
func StateIsNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIsNull(FieldState))
}

// StateNotNil applies the NotNil predicate on the "state" field.
func StateNotNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotNull(FieldState))
}

// ScratchpadSessionIDEQ applies the EQ predicate on the "scratchpad_session_id" field.
func ScratchpadSessionIDEQ(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldScratchpadSessionID, v))
}

// ScratchpadSessionIDNEQ applies the NEQ predicate on the "scratchpad_session_id" field.
func ScratchpadSessionIDNEQ(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNEQ(FieldScratchpadSessionID, v))
}

// ScratchpadSessionIDIn applies the In predicate on the "scratchpad_session_id" field.
func ScratchpadSessionIDIn(vs ...string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIn(FieldScratchpadSessionID, vs...))
}

// ScratchpadSessionIDNotIn applies the NotIn predicate on the "scratchpad_session_id" field.
func ScratchpadSessionIDNotIn(vs ...string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotIn(FieldScratchpadSessionID, vs...))
}

// ScratchpadSessionIDGT applies the GT predicate on the "scratchpad_session_id" field.
func ScratchpadSessionIDGT(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGT(FieldScratchpadSessionID, v))
}

// ScratchpadSessionIDGTE applies the GTE predicate on the "scratchpad_session_id" field.
func ScratchpadSessionIDGTE(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGTE(FieldScratchpadSessionID, v))
}

// ScratchpadSessionIDLT applies the LT predicate on the "scratchpad_session_id" field.
func ScratchpadSessionIDLT(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLT(FieldScratchpadSessionID, v))
}

// ScratchpadSessionIDLTE applies the LTE predicate on the "scratchpad_session_id" field.
func ScratchpadSessionIDLTE(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLTE(FieldScratchpadSessionID, v))
}

// ScratchpadSessionIDContains applies the Contains predicate on the "scratchpad_session_id" field.
func ScratchpadSessionIDContains(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldContains(FieldScratchpadSessionID, v))
}

// ScratchpadSessionIDHasPrefix applies the HasPrefix predicate on the "scratchpad_session_id" field.
func ScratchpadSessionIDHasPrefix(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldHasPrefix(FieldScratchpadSessionID, v))
}

// ScratchpadSessionIDHasSuffix applies the HasSuffix predicate on the "scratchpad_session_id" field.
func ScratchpadSessionIDHasSuffix(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldHasSuffix(FieldScratchpadSessionID, v))
}

// ScratchpadSessionIDIsNil applies the IsNil predicate on the "scratchpad_session_id" field.
func ScratchpadSessionIDIsNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIsNull(FieldScratchpadSessionID))
}

// ScratchpadSessionIDNotNil applies the NotNil predicate on the "scratchpad_session_id" field.
func ScratchpadSessionIDNotNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotNull(FieldScratchpadSessionID))
}

// ScratchpadSessionIDEqualFold applies the EqualFold predicate on the "scratchpad_session_id" field.
func ScratchpadSessionIDEqualFold(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEqualFold(FieldScratchpadSessionID, v))
}

// ScratchpadSessionIDContainsFold applies the ContainsFold predicate on the "scratchpad_session_id" field.
func ScratchpadSessionIDContainsFold(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldContainsFold(FieldScratchpadSessionID, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotNull(FieldDurationMs))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InvestigationSession) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InvestigationSession) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InvestigationSession) predicate.InvestigationSession {
	return predicate.InvestigationSession(sql.NotPredicates(p))
}
