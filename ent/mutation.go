// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rootline-ai/rootline/ent/investigationsession"
	"github.com/rootline-ai/rootline/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeInvestigationSession = "InvestigationSession"
)

// InvestigationSessionMutation represents an operation that mutates the InvestigationSession nodes in the graph.
type InvestigationSessionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	query                   *string
	incident_id             *string
	mode                    *investigationsession.Mode
	status                  *investigationsession.Status
	root_cause              *string
	confidence              *string
	affected_services       *[]string
	appendaffected_services []string
	summary                 *string
	answer                  *string
	state                   *map[string]interface{}
	scratchpad_session_id   *string
	error_message           *string
	duration_ms             *int64
	addduration_ms          *int64
	created_at              *time.Time
	started_at              *time.Time
	completed_at            *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*InvestigationSession, error)
	predicates              []predicate.InvestigationSession
}

var _ ent.Mutation = (*InvestigationSessionMutation)(nil)

// investigationsessionOption allows management of the mutation configuration using functional options.
type investigationsessionOption func(*InvestigationSessionMutation)

// newInvestigationSessionMutation creates new mutation for the InvestigationSession entity.
func newInvestigationSessionMutation(c config, op Op, opts ...investigationsessionOption) *InvestigationSessionMutation {
	m := &InvestigationSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeInvestigationSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvestigationSessionID sets the ID field of the mutation.
func withInvestigationSessionID(id string) investigationsessionOption {
	return func(m *InvestigationSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *InvestigationSession
		)
		m.oldValue = func(ctx context.Context) (*InvestigationSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InvestigationSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvestigationSession sets the old InvestigationSession of the mutation.
func withInvestigationSession(node *InvestigationSession) investigationsessionOption {
	return func(m *InvestigationSessionMutation) {
		m.oldValue = func(context.Context) (*InvestigationSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvestigationSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvestigationSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InvestigationSession entities.
func (m *InvestigationSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvestigationSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvestigationSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InvestigationSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuery sets the "query" field.
func (m *InvestigationSessionMutation) SetQuery(s string) {
	m.query = &s
}

// Query returns the value of the "query" field in the mutation.
func (m *InvestigationSessionMutation) Query() (r string, exists bool) {
	v := m.query
	if v == nil {
		return
	}
	return *v, true
}

// OldQuery returns the old "query" field's value of the InvestigationSession entity.
// If the InvestigationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationSessionMutation) OldQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuery: %w", err)
	}
	return oldValue.Query, nil
}

// ResetQuery resets all changes to the "query" field.
func (m *InvestigationSessionMutation) ResetQuery() {
	m.query = nil
}

// SetIncidentID sets the "incident_id" field.
func (m *InvestigationSessionMutation) SetIncidentID(s string) {
	m.incident_id = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *InvestigationSessionMutation) IncidentID() (r string, exists bool) {
	v := m.incident_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the InvestigationSession entity.
// If the InvestigationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationSessionMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ClearIncidentID clears the value of the "incident_id" field.
func (m *InvestigationSessionMutation) ClearIncidentID() {
	m.incident_id = nil
	m.clearedFields[investigationsession.FieldIncidentID] = struct{}{}
}

// IncidentIDCleared returns if the "incident_id" field was cleared in this mutation.
func (m *InvestigationSessionMutation) IncidentIDCleared() bool {
	_, ok := m.clearedFields[investigationsession.FieldIncidentID]
	return ok
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *InvestigationSessionMutation) ResetIncidentID() {
	m.incident_id = nil
	delete(m.clearedFields, investigationsession.FieldIncidentID)
}

// SetMode sets the "mode" field.
func (m *InvestigationSessionMutation) SetMode(i investigationsession.Mode) {
	m.mode = &i
}

// Mode returns the value of the "mode" field in the mutation.
func (m *InvestigationSessionMutation) Mode() (r investigationsession.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the InvestigationSession entity.
// If the InvestigationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationSessionMutation) OldMode(ctx context.Context) (v investigationsession.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *InvestigationSessionMutation) ResetMode() {
	m.mode = nil
}

// SetStatus sets the "status" field.
func (m *InvestigationSessionMutation) SetStatus(i investigationsession.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InvestigationSessionMutation) Status() (r investigationsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the InvestigationSession entity.
// If the InvestigationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationSessionMutation) OldStatus(ctx context.Context) (v investigationsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InvestigationSessionMutation) ResetStatus() {
	m.status = nil
}

// SetRootCause sets the "root_cause" field.
func (m *InvestigationSessionMutation) SetRootCause(s string) {
	m.root_cause = &s
}

// RootCause returns the value of the "root_cause" field in the mutation.
func (m *InvestigationSessionMutation) RootCause() (r string, exists bool) {
	v := m.root_cause
	if v == nil {
		return
	}
	return *v, true
}

// OldRootCause returns the old "root_cause" field's value of the InvestigationSession entity.
// If the InvestigationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationSessionMutation) OldRootCause(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRootCause is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRootCause requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRootCause: %w", err)
	}
	return oldValue.RootCause, nil
}

// ClearRootCause clears the value of the "root_cause" field.
func (m *InvestigationSessionMutation) ClearRootCause() {
	m.root_cause = nil
	m.clearedFields[investigationsession.FieldRootCause] = struct{}{}
}

// RootCauseCleared returns if the "root_cause" field was cleared in this mutation.
func (m *InvestigationSessionMutation) RootCauseCleared() bool {
	_, ok := m.clearedFields[investigationsession.FieldRootCause]
	return ok
}

// ResetRootCause resets all changes to the "root_cause" field.
func (m *InvestigationSessionMutation) ResetRootCause() {
	m.root_cause = nil
	delete(m.clearedFields, investigationsession.FieldRootCause)
}

// SetConfidence sets the "confidence" field.
func (m *InvestigationSessionMutation) SetConfidence(s string) {
	m.confidence = &s
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *InvestigationSessionMutation) Confidence() (r string, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the InvestigationSession entity.
// If the InvestigationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationSessionMutation) OldConfidence(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// ClearConfidence clears the value of the "confidence" field.
func (m *InvestigationSessionMutation) ClearConfidence() {
	m.confidence = nil
	m.clearedFields[investigationsession.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *InvestigationSessionMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[investigationsession.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *InvestigationSessionMutation) ResetConfidence() {
	m.confidence = nil
	delete(m.clearedFields, investigationsession.FieldConfidence)
}

// SetAffectedServices sets the "affected_services" field.
func (m *InvestigationSessionMutation) SetAffectedServices(s []string) {
	m.affected_services = &s
	m.appendaffected_services = nil
}

// AffectedServices returns the value of the "affected_services" field in the mutation.
func (m *InvestigationSessionMutation) AffectedServices() (r []string, exists bool) {
	v := m.affected_services
	if v == nil {
		return
	}
	return *v, true
}

// OldAffectedServices returns the old "affected_services" field's value of the InvestigationSession entity.
// If the InvestigationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationSessionMutation) OldAffectedServices(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffectedServices is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffectedServices requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffectedServices: %w", err)
	}
	return oldValue.AffectedServices, nil
}

// AppendAffectedServices adds s to the "affected_services" field.
func (m *InvestigationSessionMutation) AppendAffectedServices(s []string) {
	m.appendaffected_services = append(m.appendaffected_services, s...)
}

// AppendedAffectedServices returns the list of values that were appended to the "affected_services" field in this mutation.
func (m *InvestigationSessionMutation) AppendedAffectedServices() ([]string, bool) {
	if len(m.appendaffected_services) == 0 {
		return nil, false
	}
	return m.appendaffected_services, true
}

// ClearAffectedServices clears the value of the "affected_services" field.
func (m *InvestigationSessionMutation) ClearAffectedServices() {
	m.affected_services = nil
	m.appendaffected_services = nil
	m.clearedFields[investigationsession.FieldAffectedServices] = struct{}{}
}

// AffectedServicesCleared returns if the "affected_services" field was cleared in this mutation.
func (m *InvestigationSessionMutation) AffectedServicesCleared() bool {
	_, ok := m.clearedFields[investigationsession.FieldAffectedServices]
	return ok
}

// ResetAffectedServices resets all changes to the "affected_services" field.
func (m *InvestigationSessionMutation) ResetAffectedServices() {
	m.affected_services = nil
	m.appendaffected_services = nil
	delete(m.clearedFields, investigationsession.FieldAffectedServices)
}

// SetSummary sets the "summary" field.
func (m *InvestigationSessionMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *InvestigationSessionMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the InvestigationSession entity.
// If the InvestigationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationSessionMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *InvestigationSessionMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[investigationsession.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *InvestigationSessionMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[investigationsession.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *InvestigationSessionMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, investigationsession.FieldSummary)
}

// SetAnswer sets the "answer" field.
func (m *InvestigationSessionMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *InvestigationSessionMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the InvestigationSession entity.
// If the InvestigationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationSessionMutation) OldAnswer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ClearAnswer clears the value of the "answer" field.
func (m *InvestigationSessionMutation) ClearAnswer() {
	m.answer = nil
	m.clearedFields[investigationsession.FieldAnswer] = struct{}{}
}

// AnswerCleared returns if the "answer" field was cleared in this mutation.
func (m *InvestigationSessionMutation) AnswerCleared() bool {
	_, ok := m.clearedFields[investigationsession.FieldAnswer]
	return ok
}

// ResetAnswer resets all changes to the "answer" field.
func (m *InvestigationSessionMutation) ResetAnswer() {
	m.answer = nil
	delete(m.clearedFields, investigationsession.FieldAnswer)
}

// SetState sets the "state" field.
func (m *InvestigationSessionMutation) SetState(value map[string]interface{}) {
	m.state = &value
}

// State returns the value of the "state" field in the mutation.
func (m *InvestigationSessionMutation) State() (r map[string]interface{}, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the InvestigationSession entity.
// If the InvestigationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationSessionMutation) OldState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ClearState clears the value of the "state" field.
func (m *InvestigationSessionMutation) ClearState() {
	m.state = nil
	m.clearedFields[investigationsession.FieldState] = struct{}{}
}

// StateCleared returns if the "state" field was cleared in this mutation.
func (m *InvestigationSessionMutation) StateCleared() bool {
	_, ok := m.clearedFields[investigationsession.FieldState]
	return ok
}

// ResetState resets all changes to the "state" field.
func (m *InvestigationSessionMutation) ResetState() {
	m.state = nil
	delete(m.clearedFields, investigationsession.FieldState)
}

// SetScratchpadSessionID sets the "scratchpad_session_id" field.
func (m *InvestigationSessionMutation) SetScratchpadSessionID(s string) {
	m.scratchpad_session_id = &s
}

// ScratchpadSessionID returns the value of the "scratchpad_session_id" field in the mutation.
func (m *InvestigationSessionMutation) ScratchpadSessionID() (r string, exists bool) {
	v := m.scratchpad_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScratchpadSessionID returns the old "scratchpad_session_id" field's value of the InvestigationSession entity.
// If the InvestigationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationSessionMutation) OldScratchpadSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScratchpadSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScratchpadSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScratchpadSessionID: %w", err)
	}
	return oldValue.ScratchpadSessionID, nil
}

// ClearScratchpadSessionID clears the value of the "scratchpad_session_id" field.
func (m *InvestigationSessionMutation) ClearScratchpadSessionID() {
	m.scratchpad_session_id = nil
	m.clearedFields[investigationsession.FieldScratchpadSessionID] = struct{}{}
}

// ScratchpadSessionIDCleared returns if the "scratchpad_session_id" field was cleared in this mutation.
func (m *InvestigationSessionMutation) ScratchpadSessionIDCleared() bool {
	_, ok := m.clearedFields[investigationsession.FieldScratchpadSessionID]
	return ok
}

// ResetScratchpadSessionID resets all changes to the "scratchpad_session_id" field.
func (m *InvestigationSessionMutation) ResetScratchpadSessionID() {
	m.scratchpad_session_id = nil
	delete(m.clearedFields, investigationsession.FieldScratchpadSessionID)
}

// SetErrorMessage sets the "error_message" field.
func (m *InvestigationSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *InvestigationSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the InvestigationSession entity.
// If the InvestigationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *InvestigationSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[investigationsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *InvestigationSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[investigationsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *InvestigationSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, investigationsession.FieldErrorMessage)
}

// SetDurationMs sets the "duration_ms" field.
func (m *InvestigationSessionMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *InvestigationSessionMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the InvestigationSession entity.
// If the InvestigationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationSessionMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *InvestigationSessionMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *InvestigationSessionMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *InvestigationSessionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[investigationsession.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *InvestigationSessionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[investigationsession.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *InvestigationSessionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, investigationsession.FieldDurationMs)
}

// SetCreatedAt sets the "created_at" field.
func (m *InvestigationSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvestigationSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InvestigationSession entity.
// If the InvestigationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvestigationSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *InvestigationSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *InvestigationSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the InvestigationSession entity.
// If the InvestigationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationSessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *InvestigationSessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[investigationsession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *InvestigationSessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[investigationsession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *InvestigationSessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, investigationsession.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *InvestigationSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *InvestigationSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the InvestigationSession entity.
// If the InvestigationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *InvestigationSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[investigationsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *InvestigationSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[investigationsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *InvestigationSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, investigationsession.FieldCompletedAt)
}

// Where appends a list predicates to the InvestigationSessionMutation builder.
func (m *InvestigationSessionMutation) Where(ps ...predicate.InvestigationSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvestigationSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvestigationSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InvestigationSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvestigationSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvestigationSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InvestigationSession).
func (m *InvestigationSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvestigationSessionMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.query != nil {
		fields = append(fields, investigationsession.FieldQuery)
	}
	if m.incident_id != nil {
		fields = append(fields, investigationsession.FieldIncidentID)
	}
	if m.mode != nil {
		fields = append(fields, investigationsession.FieldMode)
	}
	if m.status != nil {
		fields = append(fields, investigationsession.FieldStatus)
	}
	if m.root_cause != nil {
		fields = append(fields, investigationsession.FieldRootCause)
	}
	if m.confidence != nil {
		fields = append(fields, investigationsession.FieldConfidence)
	}
	if m.affected_services != nil {
		fields = append(fields, investigationsession.FieldAffectedServices)
	}
	if m.summary != nil {
		fields = append(fields, investigationsession.FieldSummary)
	}
	if m.answer != nil {
		fields = append(fields, investigationsession.FieldAnswer)
	}
	if m.state != nil {
		fields = append(fields, investigationsession.FieldState)
	}
	if m.scratchpad_session_id != nil {
		fields = append(fields, investigationsession.FieldScratchpadSessionID)
	}
	if m.error_message != nil {
		fields = append(fields, investigationsession.FieldErrorMessage)
	}
	if m.duration_ms != nil {
		fields = append(fields, investigationsession.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, investigationsession.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, investigationsession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, investigationsession.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvestigationSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case investigationsession.FieldQuery:
		return m.Query()
	case investigationsession.FieldIncidentID:
		return m.IncidentID()
	case investigationsession.FieldMode:
		return m.Mode()
	case investigationsession.FieldStatus:
		return m.Status()
	case investigationsession.FieldRootCause:
		return m.RootCause()
	case investigationsession.FieldConfidence:
		return m.Confidence()
	case investigationsession.FieldAffectedServices:
		return m.AffectedServices()
	case investigationsession.FieldSummary:
		return m.Summary()
	case investigationsession.FieldAnswer:
		return m.Answer()
	case investigationsession.FieldState:
		return m.State()
	case investigationsession.FieldScratchpadSessionID:
		return m.ScratchpadSessionID()
	case investigationsession.FieldErrorMessage:
		return m.ErrorMessage()
	case investigationsession.FieldDurationMs:
		return m.DurationMs()
	case investigationsession.FieldCreatedAt:
		return m.CreatedAt()
	case investigationsession.FieldStartedAt:
		return m.StartedAt()
	case investigationsession.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvestigationSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case investigationsession.FieldQuery:
		return m.OldQuery(ctx)
	case investigationsession.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case investigationsession.FieldMode:
		return m.OldMode(ctx)
	case investigationsession.FieldStatus:
		return m.OldStatus(ctx)
	case investigationsession.FieldRootCause:
		return m.OldRootCause(ctx)
	case investigationsession.FieldConfidence:
		return m.OldConfidence(ctx)
	case investigationsession.FieldAffectedServices:
		return m.OldAffectedServices(ctx)
	case investigationsession.FieldSummary:
		return m.OldSummary(ctx)
	case investigationsession.FieldAnswer:
		return m.OldAnswer(ctx)
	case investigationsession.FieldState:
		return m.OldState(ctx)
	case investigationsession.FieldScratchpadSessionID:
		return m.OldScratchpadSessionID(ctx)
	case investigationsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case investigationsession.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case investigationsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case investigationsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case investigationsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InvestigationSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvestigationSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case investigationsession.FieldQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuery(v)
		return nil
	case investigationsession.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case investigationsession.FieldMode:
		v, ok := value.(investigationsession.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case investigationsession.FieldStatus:
		v, ok := value.(investigationsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case investigationsession.FieldRootCause:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRootCause(v)
		return nil
	case investigationsession.FieldConfidence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case investigationsession.FieldAffectedServices:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffectedServices(v)
		return nil
	case investigationsession.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case investigationsession.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case investigationsession.FieldState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case investigationsession.FieldScratchpadSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScratchpadSessionID(v)
		return nil
	case investigationsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case investigationsession.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case investigationsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case investigationsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case investigationsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InvestigationSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvestigationSessionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, investigationsession.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvestigationSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case investigationsession.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvestigationSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case investigationsession.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown InvestigationSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvestigationSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(investigationsession.FieldIncidentID) {
		fields = append(fields, investigationsession.FieldIncidentID)
	}
	if m.FieldCleared(investigationsession.FieldRootCause) {
		fields = append(fields, investigationsession.FieldRootCause)
	}
	if m.FieldCleared(investigationsession.FieldConfidence) {
		fields = append(fields, investigationsession.FieldConfidence)
	}
	if m.FieldCleared(investigationsession.FieldAffectedServices) {
		fields = append(fields, investigationsession.FieldAffectedServices)
	}
	if m.FieldCleared(investigationsession.FieldSummary) {
		fields = append(fields, investigationsession.FieldSummary)
	}
	if m.FieldCleared(investigationsession.FieldAnswer) {
		fields = append(fields, investigationsession.FieldAnswer)
	}
	if m.FieldCleared(investigationsession.FieldState) {
		fields = append(fields, investigationsession.FieldState)
	}
	if m.FieldCleared(investigationsession.FieldScratchpadSessionID) {
		fields = append(fields, investigationsession.FieldScratchpadSessionID)
	}
	if m.FieldCleared(investigationsession.FieldErrorMessage) {
		fields = append(fields, investigationsession.FieldErrorMessage)
	}
	if m.FieldCleared(investigationsession.FieldDurationMs) {
		fields = append(fields, investigationsession.FieldDurationMs)
	}
	if m.FieldCleared(investigationsession.FieldStartedAt) {
		fields = append(fields, investigationsession.FieldStartedAt)
	}
	if m.FieldCleared(investigationsession.FieldCompletedAt) {
		fields = append(fields, investigationsession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvestigationSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvestigationSessionMutation) ClearField(name string) error {
	switch name {
	case investigationsession.FieldIncidentID:
		m.ClearIncidentID()
		return nil
	case investigationsession.FieldRootCause:
		m.ClearRootCause()
		return nil
	case investigationsession.FieldConfidence:
		m.ClearConfidence()
		return nil
	case investigationsession.FieldAffectedServices:
		m.ClearAffectedServices()
		return nil
	case investigationsession.FieldSummary:
		m.ClearSummary()
		return nil
	case investigationsession.FieldAnswer:
		m.ClearAnswer()
		return nil
	case investigationsession.FieldState:
		m.ClearState()
		return nil
	case investigationsession.FieldScratchpadSessionID:
		m.ClearScratchpadSessionID()
		return nil
	case investigationsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case investigationsession.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case investigationsession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case investigationsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown InvestigationSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvestigationSessionMutation) ResetField(name string) error {
	switch name {
	case investigationsession.FieldQuery:
		m.ResetQuery()
		return nil
	case investigationsession.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case investigationsession.FieldMode:
		m.ResetMode()
		return nil
	case investigationsession.FieldStatus:
		m.ResetStatus()
		return nil
	case investigationsession.FieldRootCause:
		m.ResetRootCause()
		return nil
	case investigationsession.FieldConfidence:
		m.ResetConfidence()
		return nil
	case investigationsession.FieldAffectedServices:
		m.ResetAffectedServices()
		return nil
	case investigationsession.FieldSummary:
		m.ResetSummary()
		return nil
	case investigationsession.FieldAnswer:
		m.ResetAnswer()
		return nil
	case investigationsession.FieldState:
		m.ResetState()
		return nil
	case investigationsession.FieldScratchpadSessionID:
		m.ResetScratchpadSessionID()
		return nil
	case investigationsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case investigationsession.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case investigationsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case investigationsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case investigationsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown InvestigationSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvestigationSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvestigationSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvestigationSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvestigationSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvestigationSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvestigationSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvestigationSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InvestigationSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvestigationSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InvestigationSession edge %s", name)
}
