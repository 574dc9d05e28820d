// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/rootline-ai/rootline/ent/investigationsession"
	"github.com/rootline-ai/rootline/ent/predicate"
)

// InvestigationSessionUpdate is the builder for updating InvestigationSession entities.
type InvestigationSessionUpdate struct {
	config
	hooks    []Hook
	mutation *InvestigationSessionMutation
}

// Where appends a list predicates to the InvestigationSessionUpdate builder.
func (_u *InvestigationSessionUpdate) Where(ps ...predicate.InvestigationSession) *InvestigationSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuery sets the "query" field.
func (_u *InvestigationSessionUpdate) SetQuery(v string) *InvestigationSessionUpdate {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *InvestigationSessionUpdate) SetNillableQuery(v *string) *InvestigationSessionUpdate {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *InvestigationSessionUpdate) SetIncidentID(v string) *InvestigationSessionUpdate {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *InvestigationSessionUpdate) SetNillableIncidentID(v *string) *InvestigationSessionUpdate {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// ClearIncidentID clears the value of the "incident_id" field.
func (_u *InvestigationSessionUpdate) ClearIncidentID() *InvestigationSessionUpdate {
	_u.mutation.ClearIncidentID()
	return _u
}

// SetMode sets the "mode" field.
func (_u *InvestigationSessionUpdate) SetMode(v investigationsession.Mode) *InvestigationSessionUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *InvestigationSessionUpdate) SetNillableMode(v *investigationsession.Mode) *InvestigationSessionUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvestigationSessionUpdate) SetStatus(v investigationsession.Status) *InvestigationSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvestigationSessionUpdate) SetNillableStatus(v *investigationsession.Status) *InvestigationSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRootCause sets the "root_cause" field.
func (_u *InvestigationSessionUpdate) SetRootCause(v string) *InvestigationSessionUpdate {
	_u.mutation.SetRootCause(v)
	return _u
}

// SetNillableRootCause sets the "root_cause" field if the given value is not nil.
func (_u *InvestigationSessionUpdate) SetNillableRootCause(v *string) *InvestigationSessionUpdate {
	if v != nil {
		_u.SetRootCause(*v)
	}
	return _u
}

// ClearRootCause clears the value of the "root_cause" field.
func (_u *InvestigationSessionUpdate) ClearRootCause() *InvestigationSessionUpdate {
	_u.mutation.ClearRootCause()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InvestigationSessionUpdate) SetConfidence(v string) *InvestigationSessionUpdate {
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InvestigationSessionUpdate) SetNillableConfidence(v *string) *InvestigationSessionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *InvestigationSessionUpdate) ClearConfidence() *InvestigationSessionUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetAffectedServices sets the "affected_services" field.
func (_u *InvestigationSessionUpdate) SetAffectedServices(v []string) *InvestigationSessionUpdate {
	_u.mutation.SetAffectedServices(v)
	return _u
}

// AppendAffectedServices appends value to the "affected_services" field.
func (_u *InvestigationSessionUpdate) AppendAffectedServices(v []string) *InvestigationSessionUpdate {
	_u.mutation.AppendAffectedServices(v)
	return _u
}

// ClearAffectedServices clears the value of the "affected_services" field.
func (_u *InvestigationSessionUpdate) ClearAffectedServices() *InvestigationSessionUpdate {
	_u.mutation.ClearAffectedServices()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *InvestigationSessionUpdate) SetSummary(v string) *InvestigationSessionUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *InvestigationSessionUpdate) SetNillableSummary(v *string) *InvestigationSessionUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *InvestigationSessionUpdate) ClearSummary() *InvestigationSessionUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *InvestigationSessionUpdate) SetAnswer(v string) *InvestigationSessionUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *InvestigationSessionUpdate) SetNillableAnswer(v *string) *InvestigationSessionUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *InvestigationSessionUpdate) ClearAnswer() *InvestigationSessionUpdate {
	_u.mutation.ClearAnswer()
	return _u
}

// SetState sets the "state" field.
func (_u *InvestigationSessionUpdate) SetState(v map[string]interface{}) *InvestigationSessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *InvestigationSessionUpdate) ClearState() *InvestigationSessionUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetScratchpadSessionID sets the "scratchpad_session_id" field.
func (_u *InvestigationSessionUpdate) SetScratchpadSessionID(v string) *InvestigationSessionUpdate {
	_u.mutation.SetScratchpadSessionID(v)
	return _u
}

// SetNillableScratchpadSessionID sets the "scratchpad_session_id" field if the given value is not nil.
func (_u *InvestigationSessionUpdate) SetNillableScratchpadSessionID(v *string) *InvestigationSessionUpdate {
	if v != nil {
		_u.SetScratchpadSessionID(*v)
	}
	return _u
}

// ClearScratchpadSessionID clears the value of the "scratchpad_session_id" field.
func (_u *InvestigationSessionUpdate) ClearScratchpadSessionID() *InvestigationSessionUpdate {
	_u.mutation.ClearScratchpadSessionID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *InvestigationSessionUpdate) SetErrorMessage(v string) *InvestigationSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *InvestigationSessionUpdate) SetNillableErrorMessage(v *string) *InvestigationSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *InvestigationSessionUpdate) ClearErrorMessage() *InvestigationSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *InvestigationSessionUpdate) SetDurationMs(v int64) *InvestigationSessionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *InvestigationSessionUpdate) SetNillableDurationMs(v *int64) *InvestigationSessionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *InvestigationSessionUpdate) AddDurationMs(v int64) *InvestigationSessionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *InvestigationSessionUpdate) ClearDurationMs() *InvestigationSessionUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InvestigationSessionUpdate) SetStartedAt(v time.Time) *InvestigationSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InvestigationSessionUpdate) SetNillableStartedAt(v *time.Time) *InvestigationSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *InvestigationSessionUpdate) ClearStartedAt() *InvestigationSessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *InvestigationSessionUpdate) SetCompletedAt(v time.Time) *InvestigationSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *InvestigationSessionUpdate) SetNillableCompletedAt(v *time.Time) *InvestigationSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *InvestigationSessionUpdate) ClearCompletedAt() *InvestigationSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the InvestigationSessionMutation object of the builder.
func (_u *InvestigationSessionUpdate) Mutation() *InvestigationSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvestigationSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvestigationSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvestigationSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvestigationSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvestigationSessionUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := investigationsession.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "InvestigationSession.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := investigationsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InvestigationSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvestigationSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(investigationsession.Table, investigationsession.Columns, sqlgraph.NewFieldSpec(investigationsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(investigationsession.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.IncidentID(); ok {
		_spec.SetField(investigationsession.FieldIncidentID, field.TypeString, value)
	}
	if _u.mutation.IncidentIDCleared() {
		_spec.ClearField(investigationsession.FieldIncidentID, field.TypeString)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(investigationsession.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(investigationsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RootCause(); ok {
		_spec.SetField(investigationsession.FieldRootCause, field.TypeString, value)
	}
	if _u.mutation.RootCauseCleared() {
		_spec.ClearField(investigationsession.FieldRootCause, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(investigationsession.FieldConfidence, field.TypeString, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(investigationsession.FieldConfidence, field.TypeString)
	}
	if value, ok := _u.mutation.AffectedServices(); ok {
		_spec.SetField(investigationsession.FieldAffectedServices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAffectedServices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, investigationsession.FieldAffectedServices, value)
		})
	}
	if _u.mutation.AffectedServicesCleared() {
		_spec.ClearField(investigationsession.FieldAffectedServices, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(investigationsession.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(investigationsession.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(investigationsession.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(investigationsession.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(investigationsession.FieldState, field.TypeJSON, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(investigationsession.FieldState, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScratchpadSessionID(); ok {
		_spec.SetField(investigationsession.FieldScratchpadSessionID, field.TypeString, value)
	}
	if _u.mutation.ScratchpadSessionIDCleared() {
		_spec.ClearField(investigationsession.FieldScratchpadSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(investigationsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(investigationsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(investigationsession.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(investigationsession.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(investigationsession.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(investigationsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(investigationsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(investigationsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(investigationsession.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{investigationsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvestigationSessionUpdateOne is the builder for updating a single InvestigationSession entity.
type InvestigationSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvestigationSessionMutation
}

// SetQuery sets the "query" field.
func (_u *InvestigationSessionUpdateOne) SetQuery(v string) *InvestigationSessionUpdateOne {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *InvestigationSessionUpdateOne) SetNillableQuery(v *string) *InvestigationSessionUpdateOne {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *InvestigationSessionUpdateOne) SetIncidentID(v string) *InvestigationSessionUpdateOne {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *InvestigationSessionUpdateOne) SetNillableIncidentID(v *string) *InvestigationSessionUpdateOne {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// ClearIncidentID clears the value of the "incident_id" field.
func (_u *InvestigationSessionUpdateOne) ClearIncidentID() *InvestigationSessionUpdateOne {
	_u.mutation.ClearIncidentID()
	return _u
}

// SetMode sets the "mode" field.
func (_u *InvestigationSessionUpdateOne) SetMode(v investigationsession.Mode) *InvestigationSessionUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *InvestigationSessionUpdateOne) SetNillableMode(v *investigationsession.Mode) *InvestigationSessionUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvestigationSessionUpdateOne) SetStatus(v investigationsession.Status) *InvestigationSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvestigationSessionUpdateOne) SetNillableStatus(v *investigationsession.Status) *InvestigationSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRootCause sets the "root_cause" field.
func (_u *InvestigationSessionUpdateOne) SetRootCause(v string) *InvestigationSessionUpdateOne {
	_u.mutation.SetRootCause(v)
	return _u
}

// SetNillableRootCause sets the "root_cause" field if the given value is not nil.
func (_u *InvestigationSessionUpdateOne) SetNillableRootCause(v *string) *InvestigationSessionUpdateOne {
	if v != nil {
		_u.SetRootCause(*v)
	}
	return _u
}

// ClearRootCause clears the value of the "root_cause" field.
func (_u *InvestigationSessionUpdateOne) ClearRootCause() *InvestigationSessionUpdateOne {
	_u.mutation.ClearRootCause()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InvestigationSessionUpdateOne) SetConfidence(v string) *InvestigationSessionUpdateOne {
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InvestigationSessionUpdateOne) SetNillableConfidence(v *string) *InvestigationSessionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *InvestigationSessionUpdateOne) ClearConfidence() *InvestigationSessionUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetAffectedServices sets the "affected_services" field.
func (_u *InvestigationSessionUpdateOne) SetAffectedServices(v []string) *InvestigationSessionUpdateOne {
	_u.mutation.SetAffectedServices(v)
	return _u
}

// AppendAffectedServices appends value to the "affected_services" field.
func (_u *InvestigationSessionUpdateOne) AppendAffectedServices(v []string) *InvestigationSessionUpdateOne {
	_u.mutation.AppendAffectedServices(v)
	return _u
}

// ClearAffectedServices clears the value of the "affected_services" field.
func (_u *InvestigationSessionUpdateOne) ClearAffectedServices() *InvestigationSessionUpdateOne {
	_u.mutation.ClearAffectedServices()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *InvestigationSessionUpdateOne) SetSummary(v string) *InvestigationSessionUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *InvestigationSessionUpdateOne) SetNillableSummary(v *string) *InvestigationSessionUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *InvestigationSessionUpdateOne) ClearSummary() *InvestigationSessionUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *InvestigationSessionUpdateOne) SetAnswer(v string) *InvestigationSessionUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *InvestigationSessionUpdateOne) SetNillableAnswer(v *string) *InvestigationSessionUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *InvestigationSessionUpdateOne) ClearAnswer() *InvestigationSessionUpdateOne {
	_u.mutation.ClearAnswer()
	return _u
}

// SetState sets the "state" field.
func (_u *InvestigationSessionUpdateOne) SetState(v map[string]interface{}) *InvestigationSessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *InvestigationSessionUpdateOne) ClearState() *InvestigationSessionUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetScratchpadSessionID sets the "scratchpad_session_id" field.
func (_u *InvestigationSessionUpdateOne) SetScratchpadSessionID(v string) *InvestigationSessionUpdateOne {
	_u.mutation.SetScratchpadSessionID(v)
	return _u
}

// SetNillableScratchpadSessionID sets the "scratchpad_session_id" field if the given value is not nil.
func (_u *InvestigationSessionUpdateOne) SetNillableScratchpadSessionID(v *string) *InvestigationSessionUpdateOne {
	if v != nil {
		_u.SetScratchpadSessionID(*v)
	}
	return _u
}

// ClearScratchpadSessionID clears the value of the "scratchpad_session_id" field.
func (_u *InvestigationSessionUpdateOne) ClearScratchpadSessionID() *InvestigationSessionUpdateOne {
	_u.mutation.ClearScratchpadSessionID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *InvestigationSessionUpdateOne) SetErrorMessage(v string) *InvestigationSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *InvestigationSessionUpdateOne) SetNillableErrorMessage(v *string) *InvestigationSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *InvestigationSessionUpdateOne) ClearErrorMessage() *InvestigationSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *InvestigationSessionUpdateOne) SetDurationMs(v int64) *InvestigationSessionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *InvestigationSessionUpdateOne) SetNillableDurationMs(v *int64) *InvestigationSessionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *InvestigationSessionUpdateOne) AddDurationMs(v int64) *InvestigationSessionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *InvestigationSessionUpdateOne) ClearDurationMs() *InvestigationSessionUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InvestigationSessionUpdateOne) SetStartedAt(v time.Time) *InvestigationSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InvestigationSessionUpdateOne) SetNillableStartedAt(v *time.Time) *InvestigationSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *InvestigationSessionUpdateOne) ClearStartedAt() *InvestigationSessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *InvestigationSessionUpdateOne) SetCompletedAt(v time.Time) *InvestigationSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *InvestigationSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *InvestigationSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *InvestigationSessionUpdateOne) ClearCompletedAt() *InvestigationSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the InvestigationSessionMutation object of the builder.
func (_u *InvestigationSessionUpdateOne) Mutation() *InvestigationSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the InvestigationSessionUpdate builder.
func (_u *InvestigationSessionUpdateOne) Where(ps ...predicate.InvestigationSession) *InvestigationSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvestigationSessionUpdateOne) Select(field string, fields ...string) *InvestigationSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvestigationSession entity.
func (_u *InvestigationSessionUpdateOne) Save(ctx context.Context) (*InvestigationSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvestigationSessionUpdateOne) SaveX(ctx context.Context) *InvestigationSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvestigationSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvestigationSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvestigationSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := investigationsession.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "InvestigationSession.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := investigationsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InvestigationSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvestigationSessionUpdateOne) sqlSave(ctx context.Context) (_node *InvestigationSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(investigationsession.Table, investigationsession.Columns, sqlgraph.NewFieldSpec(investigationsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvestigationSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, investigationsession.FieldID)
		for _, f := range fields {
			if !investigationsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != investigationsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(investigationsession.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.IncidentID(); ok {
		_spec.SetField(investigationsession.FieldIncidentID, field.TypeString, value)
	}
	if _u.mutation.IncidentIDCleared() {
		_spec.ClearField(investigationsession.FieldIncidentID, field.TypeString)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(investigationsession.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(investigationsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RootCause(); ok {
		_spec.SetField(investigationsession.FieldRootCause, field.TypeString, value)
	}
	if _u.mutation.RootCauseCleared() {
		_spec.ClearField(investigationsession.FieldRootCause, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(investigationsession.FieldConfidence, field.TypeString, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(investigationsession.FieldConfidence, field.TypeString)
	}
	if value, ok := _u.mutation.AffectedServices(); ok {
		_spec.SetField(investigationsession.FieldAffectedServices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAffectedServices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, investigationsession.FieldAffectedServices, value)
		})
	}
	if _u.mutation.AffectedServicesCleared() {
		_spec.ClearField(investigationsession.FieldAffectedServices, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(investigationsession.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(investigationsession.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(investigationsession.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(investigationsession.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(investigationsession.FieldState, field.TypeJSON, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(investigationsession.FieldState, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScratchpadSessionID(); ok {
		_spec.SetField(investigationsession.FieldScratchpadSessionID, field.TypeString, value)
	}
	if _u.mutation.ScratchpadSessionIDCleared() {
		_spec.ClearField(investigationsession.FieldScratchpadSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(investigationsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(investigationsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(investigationsession.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(investigationsession.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(investigationsession.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(investigationsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(investigationsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(investigationsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(investigationsession.FieldCompletedAt, field.TypeTime)
	}
	_node = &InvestigationSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{investigationsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
