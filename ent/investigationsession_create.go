// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rootline-ai/rootline/ent/investigationsession"
)

// InvestigationSessionCreate is the builder for creating a InvestigationSession entity.
type InvestigationSessionCreate struct {
	config
	mutation *InvestigationSessionMutation
	hooks    []Hook
}

// SetQuery sets the "query" field.
func (_c *InvestigationSessionCreate) SetQuery(v string) *InvestigationSessionCreate {
	_c.mutation.SetQuery(v)
	return _c
}

// SetIncidentID sets the "incident_id" field.
func (_c *InvestigationSessionCreate) SetIncidentID(v string) *InvestigationSessionCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_c *InvestigationSessionCreate) SetNillableIncidentID(v *string) *InvestigationSessionCreate {
	if v != nil {
		_c.SetIncidentID(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *InvestigationSessionCreate) SetMode(v investigationsession.Mode) *InvestigationSessionCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *InvestigationSessionCreate) SetNillableMode(v *investigationsession.Mode) *InvestigationSessionCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InvestigationSessionCreate) SetStatus(v investigationsession.Status) *InvestigationSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InvestigationSessionCreate) SetNillableStatus(v *investigationsession.Status) *InvestigationSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRootCause sets the "root_cause" field.
func (_c *InvestigationSessionCreate) SetRootCause(v string) *InvestigationSessionCreate {
	_c.mutation.SetRootCause(v)
	return _c
}

// SetNillableRootCause sets the "root_cause" field if the given value is not nil.
func (_c *InvestigationSessionCreate) SetNillableRootCause(v *string) *InvestigationSessionCreate {
	if v != nil {
		_c.SetRootCause(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *InvestigationSessionCreate) SetConfidence(v string) *InvestigationSessionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *InvestigationSessionCreate) SetNillableConfidence(v *string) *InvestigationSessionCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetAffectedServices sets the "affected_services" field.
func (_c *InvestigationSessionCreate) SetAffectedServices(v []string) *InvestigationSessionCreate {
	_c.mutation.SetAffectedServices(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *InvestigationSessionCreate) SetSummary(v string) *InvestigationSessionCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *InvestigationSessionCreate) SetNillableSummary(v *string) *InvestigationSessionCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *InvestigationSessionCreate) SetAnswer(v string) *InvestigationSessionCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *InvestigationSessionCreate) SetNillableAnswer(v *string) *InvestigationSessionCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *InvestigationSessionCreate) SetState(v map[string]interface{}) *InvestigationSessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetScratchpadSessionID sets the "scratchpad_session_id" field.
func (_c *InvestigationSessionCreate) SetScratchpadSessionID(v string) *InvestigationSessionCreate {
	_c.mutation.SetScratchpadSessionID(v)
	return _c
}

// SetNillableScratchpadSessionID sets the "scratchpad_session_id" field if the given value is not nil.
func (_c *InvestigationSessionCreate) SetNillableScratchpadSessionID(v *string) *InvestigationSessionCreate {
	if v != nil {
		_c.SetScratchpadSessionID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *InvestigationSessionCreate) SetErrorMessage(v string) *InvestigationSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *InvestigationSessionCreate) SetNillableErrorMessage(v *string) *InvestigationSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *InvestigationSessionCreate) SetDurationMs(v int64) *InvestigationSessionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *InvestigationSessionCreate) SetNillableDurationMs(v *int64) *InvestigationSessionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvestigationSessionCreate) SetCreatedAt(v time.Time) *InvestigationSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvestigationSessionCreate) SetNillableCreatedAt(v *time.Time) *InvestigationSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *InvestigationSessionCreate) SetStartedAt(v time.Time) *InvestigationSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *InvestigationSessionCreate) SetNillableStartedAt(v *time.Time) *InvestigationSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *InvestigationSessionCreate) SetCompletedAt(v time.Time) *InvestigationSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *InvestigationSessionCreate) SetNillableCompletedAt(v *time.Time) *InvestigationSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvestigationSessionCreate) SetID(v string) *InvestigationSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InvestigationSessionMutation object of the builder.
func (_c *InvestigationSessionCreate) Mutation() *InvestigationSessionMutation {
	return _c.mutation
}

// Save creates the InvestigationSession in the database.
func (_c *InvestigationSessionCreate) Save(ctx context.Context) (*InvestigationSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvestigationSessionCreate) SaveX(ctx context.Context) *InvestigationSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvestigationSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvestigationSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvestigationSessionCreate) defaults() {
	if _, ok := _c.mutation.Mode(); !ok {
		v := investigationsession.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := investigationsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := investigationsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvestigationSessionCreate) check() error {
	if _, ok := _c.mutation.Query(); !ok {
		return &ValidationError{Name: "query", err: errors.New(`ent: missing required field "InvestigationSession.query"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "InvestigationSession.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := investigationsession.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "InvestigationSession.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "InvestigationSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := investigationsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InvestigationSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InvestigationSession.created_at"`)}
	}
	return nil
}

func (_c *InvestigationSessionCreate) sqlSave(ctx context.Context) (*InvestigationSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected InvestigationSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvestigationSessionCreate) createSpec() (*InvestigationSession, *sqlgraph.CreateSpec) {
	var (
		_node = &InvestigationSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(investigationsession.Table, sqlgraph.NewFieldSpec(investigationsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Query(); ok {
		_spec.SetField(investigationsession.FieldQuery, field.TypeString, value)
		_node.Query = value
	}
	if value, ok := _c.mutation.IncidentID(); ok {
		_spec.SetField(investigationsession.FieldIncidentID, field.TypeString, value)
		_node.IncidentID = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(investigationsession.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(investigationsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RootCause(); ok {
		_spec.SetField(investigationsession.FieldRootCause, field.TypeString, value)
		_node.RootCause = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(investigationsession.FieldConfidence, field.TypeString, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.AffectedServices(); ok {
		_spec.SetField(investigationsession.FieldAffectedServices, field.TypeJSON, value)
		_node.AffectedServices = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(investigationsession.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(investigationsession.FieldAnswer, field.TypeString, value)
		_node.Answer = &value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(investigationsession.FieldState, field.TypeJSON, value)
		_node.State = value
	}
	if value, ok := _c.mutation.ScratchpadSessionID(); ok {
		_spec.SetField(investigationsession.FieldScratchpadSessionID, field.TypeString, value)
		_node.ScratchpadSessionID = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(investigationsession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(investigationsession.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(investigationsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(investigationsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(investigationsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// InvestigationSessionCreateBulk is the builder for creating many InvestigationSession entities in bulk.
type InvestigationSessionCreateBulk struct {
	config
	err      error
	builders []*InvestigationSessionCreate
}

// Save creates the InvestigationSession entities in the database.
func (_c *InvestigationSessionCreateBulk) Save(ctx context.Context) ([]*InvestigationSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InvestigationSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvestigationSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvestigationSessionCreateBulk) SaveX(ctx context.Context) []*InvestigationSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvestigationSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvestigationSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
