// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hrunx/es2square/gen/ent/audit"
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/detailedreport"
)

// AuditCreate is the builder for creating a Audit entity.
type AuditCreate struct {
	config
	mutation *AuditMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBuildingID sets the "building_id" field.
func (ac *AuditCreate) SetBuildingID(u uuid.UUID) *AuditCreate {
	ac.mutation.SetBuildingID(u)
	return ac
}

// SetType sets the "type" field.
func (ac *AuditCreate) SetType(s string) *AuditCreate {
	ac.mutation.SetType(s)
	return ac
}

// SetStatus sets the "status" field.
func (ac *AuditCreate) SetStatus(s string) *AuditCreate {
	ac.mutation.SetStatus(s)
	return ac
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ac *AuditCreate) SetNillableStatus(s *string) *AuditCreate {
	if s != nil {
		ac.SetStatus(*s)
	}
	return ac
}

// SetFindings sets the "findings" field.
func (ac *AuditCreate) SetFindings(jm json.RawMessage) *AuditCreate {
	ac.mutation.SetFindings(jm)
	return ac
}

// SetRecommendations sets the "recommendations" field.
func (ac *AuditCreate) SetRecommendations(jm json.RawMessage) *AuditCreate {
	ac.mutation.SetRecommendations(jm)
	return ac
}

// SetKeyMetrics sets the "key_metrics" field.
func (ac *AuditCreate) SetKeyMetrics(jm json.RawMessage) *AuditCreate {
	ac.mutation.SetKeyMetrics(jm)
	return ac
}

// SetExecutiveSummary sets the "executive_summary" field.
func (ac *AuditCreate) SetExecutiveSummary(jm json.RawMessage) *AuditCreate {
	ac.mutation.SetExecutiveSummary(jm)
	return ac
}

// SetAiRaw sets the "ai_raw" field.
func (ac *AuditCreate) SetAiRaw(jm json.RawMessage) *AuditCreate {
	ac.mutation.SetAiRaw(jm)
	return ac
}

// SetCreatedAt sets the "created_at" field.
func (ac *AuditCreate) SetCreatedAt(t time.Time) *AuditCreate {
	ac.mutation.SetCreatedAt(t)
	return ac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ac *AuditCreate) SetNillableCreatedAt(t *time.Time) *AuditCreate {
	if t != nil {
		ac.SetCreatedAt(*t)
	}
	return ac
}

// SetUpdatedAt sets the "updated_at" field.
func (ac *AuditCreate) SetUpdatedAt(t time.Time) *AuditCreate {
	ac.mutation.SetUpdatedAt(t)
	return ac
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ac *AuditCreate) SetNillableUpdatedAt(t *time.Time) *AuditCreate {
	if t != nil {
		ac.SetUpdatedAt(*t)
	}
	return ac
}

// SetID sets the "id" field.
func (ac *AuditCreate) SetID(u uuid.UUID) *AuditCreate {
	ac.mutation.SetID(u)
	return ac
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ac *AuditCreate) SetNillableID(u *uuid.UUID) *AuditCreate {
	if u != nil {
		ac.SetID(*u)
	}
	return ac
}

// SetBuilding sets the "building" edge to the Building entity.
func (ac *AuditCreate) SetBuilding(b *Building) *AuditCreate {
	return ac.SetBuildingID(b.ID)
}

// AddReportIDs adds the "reports" edge to the DetailedReport entity by IDs.
func (ac *AuditCreate) AddReportIDs(ids ...uuid.UUID) *AuditCreate {
	ac.mutation.AddReportIDs(ids...)
	return ac
}

// AddReports adds the "reports" edges to the DetailedReport entity.
func (ac *AuditCreate) AddReports(d ...*DetailedReport) *AuditCreate {
	ids := make([]uuid.UUID, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return ac.AddReportIDs(ids...)
}

// Mutation returns the AuditMutation object of the builder.
func (ac *AuditCreate) Mutation() *AuditMutation {
	return ac.mutation
}

// Save creates the Audit in the database.
func (ac *AuditCreate) Save(ctx context.Context) (*Audit, error) {
	ac.defaults()
	return withHooks(ctx, ac.sqlSave, ac.mutation, ac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ac *AuditCreate) SaveX(ctx context.Context) *Audit {
	v, err := ac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ac *AuditCreate) Exec(ctx context.Context) error {
	_, err := ac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ac *AuditCreate) ExecX(ctx context.Context) {
	if err := ac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ac *AuditCreate) defaults() {
	if _, ok := ac.mutation.Status(); !ok {
		v := audit.DefaultStatus
		ac.mutation.SetStatus(v)
	}
	if _, ok := ac.mutation.CreatedAt(); !ok {
		v := audit.DefaultCreatedAt()
		ac.mutation.SetCreatedAt(v)
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		v := audit.DefaultUpdatedAt()
		ac.mutation.SetUpdatedAt(v)
	}
	if _, ok := ac.mutation.ID(); !ok {
		v := audit.DefaultID()
		ac.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ac *AuditCreate) check() error {
	if _, ok := ac.mutation.BuildingID(); !ok {
		return &ValidationError{Name: "building_id", err: errors.New(`ent: missing required field "Audit.building_id"`)}
	}
	if _, ok := ac.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Audit.type"`)}
	}
	if v, ok := ac.mutation.GetType(); ok {
		if err := audit.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Audit.type": %w`, err)}
		}
	}
	if _, ok := ac.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Audit.status"`)}
	}
	if _, ok := ac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Audit.created_at"`)}
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Audit.updated_at"`)}
	}
	if len(ac.mutation.BuildingIDs()) == 0 {
		return &ValidationError{Name: "building", err: errors.New(`ent: missing required edge "Audit.building"`)}
	}
	return nil
}

func (ac *AuditCreate) sqlSave(ctx context.Context) (*Audit, error) {
	if err := ac.check(); err != nil {
		return nil, err
	}
	_node, _spec := ac.createSpec()
	if err := sqlgraph.CreateNode(ctx, ac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	ac.mutation.id = &_node.ID
	ac.mutation.done = true
	return _node, nil
}

func (ac *AuditCreate) createSpec() (*Audit, *sqlgraph.CreateSpec) {
	var (
		_node = &Audit{config: ac.config}
		_spec = sqlgraph.NewCreateSpec(audit.Table, sqlgraph.NewFieldSpec(audit.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = ac.conflict
	if id, ok := ac.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ac.mutation.GetType(); ok {
		_spec.SetField(audit.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := ac.mutation.Status(); ok {
		_spec.SetField(audit.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := ac.mutation.Findings(); ok {
		_spec.SetField(audit.FieldFindings, field.TypeJSON, value)
		_node.Findings = value
	}
	if value, ok := ac.mutation.Recommendations(); ok {
		_spec.SetField(audit.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := ac.mutation.KeyMetrics(); ok {
		_spec.SetField(audit.FieldKeyMetrics, field.TypeJSON, value)
		_node.KeyMetrics = value
	}
	if value, ok := ac.mutation.ExecutiveSummary(); ok {
		_spec.SetField(audit.FieldExecutiveSummary, field.TypeJSON, value)
		_node.ExecutiveSummary = value
	}
	if value, ok := ac.mutation.AiRaw(); ok {
		_spec.SetField(audit.FieldAiRaw, field.TypeJSON, value)
		_node.AiRaw = value
	}
	if value, ok := ac.mutation.CreatedAt(); ok {
		_spec.SetField(audit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ac.mutation.UpdatedAt(); ok {
		_spec.SetField(audit.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := ac.mutation.BuildingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   audit.BuildingTable,
			Columns: []string{audit.BuildingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(building.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BuildingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ac.mutation.ReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.ReportsTable,
			Columns: []string{audit.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(detailedreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Audit.Create().
//		SetBuildingID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditUpsert) {
//			SetBuildingID(v+v).
//		}).
//		Exec(ctx)
func (ac *AuditCreate) OnConflict(opts ...sql.ConflictOption) *AuditUpsertOne {
	ac.conflict = opts
	return &AuditUpsertOne{
		create: ac,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Audit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ac *AuditCreate) OnConflictColumns(columns ...string) *AuditUpsertOne {
	ac.conflict = append(ac.conflict, sql.ConflictColumns(columns...))
	return &AuditUpsertOne{
		create: ac,
	}
}

type (
	// AuditUpsertOne is the builder for "upsert"-ing
	//  one Audit node.
	AuditUpsertOne struct {
		create *AuditCreate
	}

	// AuditUpsert is the "OnConflict" setter.
	AuditUpsert struct {
		*sql.UpdateSet
	}
)

// SetBuildingID sets the "building_id" field.
func (u *AuditUpsert) SetBuildingID(v uuid.UUID) *AuditUpsert {
	u.Set(audit.FieldBuildingID, v)
	return u
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *AuditUpsert) UpdateBuildingID() *AuditUpsert {
	u.SetExcluded(audit.FieldBuildingID)
	return u
}

// SetType sets the "type" field.
func (u *AuditUpsert) SetType(v string) *AuditUpsert {
	u.Set(audit.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *AuditUpsert) UpdateType() *AuditUpsert {
	u.SetExcluded(audit.FieldType)
	return u
}

// SetStatus sets the "status" field.
func (u *AuditUpsert) SetStatus(v string) *AuditUpsert {
	u.Set(audit.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AuditUpsert) UpdateStatus() *AuditUpsert {
	u.SetExcluded(audit.FieldStatus)
	return u
}

// SetFindings sets the "findings" field.
func (u *AuditUpsert) SetFindings(v json.RawMessage) *AuditUpsert {
	u.Set(audit.FieldFindings, v)
	return u
}

// UpdateFindings sets the "findings" field to the value that was provided on create.
func (u *AuditUpsert) UpdateFindings() *AuditUpsert {
	u.SetExcluded(audit.FieldFindings)
	return u
}

// ClearFindings clears the value of the "findings" field.
func (u *AuditUpsert) ClearFindings() *AuditUpsert {
	u.SetNull(audit.FieldFindings)
	return u
}

// SetRecommendations sets the "recommendations" field.
func (u *AuditUpsert) SetRecommendations(v json.RawMessage) *AuditUpsert {
	u.Set(audit.FieldRecommendations, v)
	return u
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *AuditUpsert) UpdateRecommendations() *AuditUpsert {
	u.SetExcluded(audit.FieldRecommendations)
	return u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (u *AuditUpsert) ClearRecommendations() *AuditUpsert {
	u.SetNull(audit.FieldRecommendations)
	return u
}

// SetKeyMetrics sets the "key_metrics" field.
func (u *AuditUpsert) SetKeyMetrics(v json.RawMessage) *AuditUpsert {
	u.Set(audit.FieldKeyMetrics, v)
	return u
}

// UpdateKeyMetrics sets the "key_metrics" field to the value that was provided on create.
func (u *AuditUpsert) UpdateKeyMetrics() *AuditUpsert {
	u.SetExcluded(audit.FieldKeyMetrics)
	return u
}

// ClearKeyMetrics clears the value of the "key_metrics" field.
func (u *AuditUpsert) ClearKeyMetrics() *AuditUpsert {
	u.SetNull(audit.FieldKeyMetrics)
	return u
}

// SetExecutiveSummary sets the "executive_summary" field.
func (u *AuditUpsert) SetExecutiveSummary(v json.RawMessage) *AuditUpsert {
	u.Set(audit.FieldExecutiveSummary, v)
	return u
}

// UpdateExecutiveSummary sets the "executive_summary" field to the value that was provided on create.
func (u *AuditUpsert) UpdateExecutiveSummary() *AuditUpsert {
	u.SetExcluded(audit.FieldExecutiveSummary)
	return u
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (u *AuditUpsert) ClearExecutiveSummary() *AuditUpsert {
	u.SetNull(audit.FieldExecutiveSummary)
	return u
}

// SetAiRaw sets the "ai_raw" field.
func (u *AuditUpsert) SetAiRaw(v json.RawMessage) *AuditUpsert {
	u.Set(audit.FieldAiRaw, v)
	return u
}

// UpdateAiRaw sets the "ai_raw" field to the value that was provided on create.
func (u *AuditUpsert) UpdateAiRaw() *AuditUpsert {
	u.SetExcluded(audit.FieldAiRaw)
	return u
}

// ClearAiRaw clears the value of the "ai_raw" field.
func (u *AuditUpsert) ClearAiRaw() *AuditUpsert {
	u.SetNull(audit.FieldAiRaw)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AuditUpsert) SetUpdatedAt(v time.Time) *AuditUpsert {
	u.Set(audit.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AuditUpsert) UpdateUpdatedAt() *AuditUpsert {
	u.SetExcluded(audit.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Audit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(audit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditUpsertOne) UpdateNewValues() *AuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(audit.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(audit.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Audit.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AuditUpsertOne) Ignore() *AuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditUpsertOne) DoNothing() *AuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditCreate.OnConflict
// documentation for more info.
func (u *AuditUpsertOne) Update(set func(*AuditUpsert)) *AuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditUpsert{UpdateSet: update})
	}))
	return u
}

// SetBuildingID sets the "building_id" field.
func (u *AuditUpsertOne) SetBuildingID(v uuid.UUID) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetBuildingID(v)
	})
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateBuildingID() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateBuildingID()
	})
}

// SetType sets the "type" field.
func (u *AuditUpsertOne) SetType(v string) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateType() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateType()
	})
}

// SetStatus sets the "status" field.
func (u *AuditUpsertOne) SetStatus(v string) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateStatus() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateStatus()
	})
}

// SetFindings sets the "findings" field.
func (u *AuditUpsertOne) SetFindings(v json.RawMessage) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetFindings(v)
	})
}

// UpdateFindings sets the "findings" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateFindings() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateFindings()
	})
}

// ClearFindings clears the value of the "findings" field.
func (u *AuditUpsertOne) ClearFindings() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearFindings()
	})
}

// SetRecommendations sets the "recommendations" field.
func (u *AuditUpsertOne) SetRecommendations(v json.RawMessage) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetRecommendations(v)
	})
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateRecommendations() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateRecommendations()
	})
}

// ClearRecommendations clears the value of the "recommendations" field.
func (u *AuditUpsertOne) ClearRecommendations() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearRecommendations()
	})
}

// SetKeyMetrics sets the "key_metrics" field.
func (u *AuditUpsertOne) SetKeyMetrics(v json.RawMessage) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetKeyMetrics(v)
	})
}

// UpdateKeyMetrics sets the "key_metrics" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateKeyMetrics() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateKeyMetrics()
	})
}

// ClearKeyMetrics clears the value of the "key_metrics" field.
func (u *AuditUpsertOne) ClearKeyMetrics() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearKeyMetrics()
	})
}

// SetExecutiveSummary sets the "executive_summary" field.
func (u *AuditUpsertOne) SetExecutiveSummary(v json.RawMessage) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetExecutiveSummary(v)
	})
}

// UpdateExecutiveSummary sets the "executive_summary" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateExecutiveSummary() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateExecutiveSummary()
	})
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (u *AuditUpsertOne) ClearExecutiveSummary() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearExecutiveSummary()
	})
}

// SetAiRaw sets the "ai_raw" field.
func (u *AuditUpsertOne) SetAiRaw(v json.RawMessage) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetAiRaw(v)
	})
}

// UpdateAiRaw sets the "ai_raw" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateAiRaw() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateAiRaw()
	})
}

// ClearAiRaw clears the value of the "ai_raw" field.
func (u *AuditUpsertOne) ClearAiRaw() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearAiRaw()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AuditUpsertOne) SetUpdatedAt(v time.Time) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateUpdatedAt() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AuditUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AuditUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AuditUpsertOne.ID is not supported by MySQL driver. Use AuditUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AuditUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AuditCreateBulk is the builder for creating many Audit entities in bulk.
type AuditCreateBulk struct {
	config
	err      error
	builders []*AuditCreate
	conflict []sql.ConflictOption
}

// Save creates the Audit entities in the database.
func (acb *AuditCreateBulk) Save(ctx context.Context) ([]*Audit, error) {
	if acb.err != nil {
		return nil, acb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(acb.builders))
	nodes := make([]*Audit, len(acb.builders))
	mutators := make([]Mutator, len(acb.builders))
	for i := range acb.builders {
		func(i int, root context.Context) {
			builder := acb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditMutation)
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
					_, err = mutators[i+1].Mutate(root, acb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = acb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, acb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, acb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (acb *AuditCreateBulk) SaveX(ctx context.Context) []*Audit {
	v, err := acb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (acb *AuditCreateBulk) Exec(ctx context.Context) error {
	_, err := acb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (acb *AuditCreateBulk) ExecX(ctx context.Context) {
	if err := acb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Audit.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditUpsert) {
//			SetBuildingID(v+v).
//		}).
//		Exec(ctx)
func (acb *AuditCreateBulk) OnConflict(opts ...sql.ConflictOption) *AuditUpsertBulk {
	acb.conflict = opts
	return &AuditUpsertBulk{
		create: acb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Audit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (acb *AuditCreateBulk) OnConflictColumns(columns ...string) *AuditUpsertBulk {
	acb.conflict = append(acb.conflict, sql.ConflictColumns(columns...))
	return &AuditUpsertBulk{
		create: acb,
	}
}

// AuditUpsertBulk is the builder for "upsert"-ing
// a bulk of Audit nodes.
type AuditUpsertBulk struct {
	create *AuditCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Audit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(audit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditUpsertBulk) UpdateNewValues() *AuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(audit.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(audit.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Audit.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AuditUpsertBulk) Ignore() *AuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditUpsertBulk) DoNothing() *AuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditCreateBulk.OnConflict
// documentation for more info.
func (u *AuditUpsertBulk) Update(set func(*AuditUpsert)) *AuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditUpsert{UpdateSet: update})
	}))
	return u
}

// SetBuildingID sets the "building_id" field.
func (u *AuditUpsertBulk) SetBuildingID(v uuid.UUID) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetBuildingID(v)
	})
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateBuildingID() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateBuildingID()
	})
}

// SetType sets the "type" field.
func (u *AuditUpsertBulk) SetType(v string) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateType() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateType()
	})
}

// SetStatus sets the "status" field.
func (u *AuditUpsertBulk) SetStatus(v string) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateStatus() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateStatus()
	})
}

// SetFindings sets the "findings" field.
func (u *AuditUpsertBulk) SetFindings(v json.RawMessage) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetFindings(v)
	})
}

// UpdateFindings sets the "findings" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateFindings() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateFindings()
	})
}

// ClearFindings clears the value of the "findings" field.
func (u *AuditUpsertBulk) ClearFindings() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearFindings()
	})
}

// SetRecommendations sets the "recommendations" field.
func (u *AuditUpsertBulk) SetRecommendations(v json.RawMessage) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetRecommendations(v)
	})
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateRecommendations() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateRecommendations()
	})
}

// ClearRecommendations clears the value of the "recommendations" field.
func (u *AuditUpsertBulk) ClearRecommendations() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearRecommendations()
	})
}

// SetKeyMetrics sets the "key_metrics" field.
func (u *AuditUpsertBulk) SetKeyMetrics(v json.RawMessage) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetKeyMetrics(v)
	})
}

// UpdateKeyMetrics sets the "key_metrics" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateKeyMetrics() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateKeyMetrics()
	})
}

// ClearKeyMetrics clears the value of the "key_metrics" field.
func (u *AuditUpsertBulk) ClearKeyMetrics() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearKeyMetrics()
	})
}

// SetExecutiveSummary sets the "executive_summary" field.
func (u *AuditUpsertBulk) SetExecutiveSummary(v json.RawMessage) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetExecutiveSummary(v)
	})
}

// UpdateExecutiveSummary sets the "executive_summary" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateExecutiveSummary() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateExecutiveSummary()
	})
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (u *AuditUpsertBulk) ClearExecutiveSummary() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearExecutiveSummary()
	})
}

// SetAiRaw sets the "ai_raw" field.
func (u *AuditUpsertBulk) SetAiRaw(v json.RawMessage) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetAiRaw(v)
	})
}

// UpdateAiRaw sets the "ai_raw" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateAiRaw() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateAiRaw()
	})
}

// ClearAiRaw clears the value of the "ai_raw" field.
func (u *AuditUpsertBulk) ClearAiRaw() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearAiRaw()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AuditUpsertBulk) SetUpdatedAt(v time.Time) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateUpdatedAt() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AuditUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AuditCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
