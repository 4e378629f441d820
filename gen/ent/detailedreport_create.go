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

// DetailedReportCreate is the builder for creating a DetailedReport entity.
type DetailedReportCreate struct {
	config
	mutation *DetailedReportMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBuildingID sets the "building_id" field.
func (drc *DetailedReportCreate) SetBuildingID(u uuid.UUID) *DetailedReportCreate {
	drc.mutation.SetBuildingID(u)
	return drc
}

// SetAuditID sets the "audit_id" field.
func (drc *DetailedReportCreate) SetAuditID(u uuid.UUID) *DetailedReportCreate {
	drc.mutation.SetAuditID(u)
	return drc
}

// SetContent sets the "content" field.
func (drc *DetailedReportCreate) SetContent(jm json.RawMessage) *DetailedReportCreate {
	drc.mutation.SetContent(jm)
	return drc
}

// SetGeneratedAt sets the "generated_at" field.
func (drc *DetailedReportCreate) SetGeneratedAt(t time.Time) *DetailedReportCreate {
	drc.mutation.SetGeneratedAt(t)
	return drc
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (drc *DetailedReportCreate) SetNillableGeneratedAt(t *time.Time) *DetailedReportCreate {
	if t != nil {
		drc.SetGeneratedAt(*t)
	}
	return drc
}

// SetID sets the "id" field.
func (drc *DetailedReportCreate) SetID(u uuid.UUID) *DetailedReportCreate {
	drc.mutation.SetID(u)
	return drc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (drc *DetailedReportCreate) SetNillableID(u *uuid.UUID) *DetailedReportCreate {
	if u != nil {
		drc.SetID(*u)
	}
	return drc
}

// SetBuilding sets the "building" edge to the Building entity.
func (drc *DetailedReportCreate) SetBuilding(b *Building) *DetailedReportCreate {
	return drc.SetBuildingID(b.ID)
}

// SetAudit sets the "audit" edge to the Audit entity.
func (drc *DetailedReportCreate) SetAudit(a *Audit) *DetailedReportCreate {
	return drc.SetAuditID(a.ID)
}

// Mutation returns the DetailedReportMutation object of the builder.
func (drc *DetailedReportCreate) Mutation() *DetailedReportMutation {
	return drc.mutation
}

// Save creates the DetailedReport in the database.
func (drc *DetailedReportCreate) Save(ctx context.Context) (*DetailedReport, error) {
	drc.defaults()
	return withHooks(ctx, drc.sqlSave, drc.mutation, drc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (drc *DetailedReportCreate) SaveX(ctx context.Context) *DetailedReport {
	v, err := drc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (drc *DetailedReportCreate) Exec(ctx context.Context) error {
	_, err := drc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (drc *DetailedReportCreate) ExecX(ctx context.Context) {
	if err := drc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (drc *DetailedReportCreate) defaults() {
	if _, ok := drc.mutation.GeneratedAt(); !ok {
		v := detailedreport.DefaultGeneratedAt()
		drc.mutation.SetGeneratedAt(v)
	}
	if _, ok := drc.mutation.ID(); !ok {
		v := detailedreport.DefaultID()
		drc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (drc *DetailedReportCreate) check() error {
	if _, ok := drc.mutation.BuildingID(); !ok {
		return &ValidationError{Name: "building_id", err: errors.New(`ent: missing required field "DetailedReport.building_id"`)}
	}
	if _, ok := drc.mutation.AuditID(); !ok {
		return &ValidationError{Name: "audit_id", err: errors.New(`ent: missing required field "DetailedReport.audit_id"`)}
	}
	if _, ok := drc.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "DetailedReport.content"`)}
	}
	if _, ok := drc.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "DetailedReport.generated_at"`)}
	}
	if len(drc.mutation.BuildingIDs()) == 0 {
		return &ValidationError{Name: "building", err: errors.New(`ent: missing required edge "DetailedReport.building"`)}
	}
	if len(drc.mutation.AuditIDs()) == 0 {
		return &ValidationError{Name: "audit", err: errors.New(`ent: missing required edge "DetailedReport.audit"`)}
	}
	return nil
}

func (drc *DetailedReportCreate) sqlSave(ctx context.Context) (*DetailedReport, error) {
	if err := drc.check(); err != nil {
		return nil, err
	}
	_node, _spec := drc.createSpec()
	if err := sqlgraph.CreateNode(ctx, drc.driver, _spec); err != nil {
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
	drc.mutation.id = &_node.ID
	drc.mutation.done = true
	return _node, nil
}

func (drc *DetailedReportCreate) createSpec() (*DetailedReport, *sqlgraph.CreateSpec) {
	var (
		_node = &DetailedReport{config: drc.config}
		_spec = sqlgraph.NewCreateSpec(detailedreport.Table, sqlgraph.NewFieldSpec(detailedreport.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = drc.conflict
	if id, ok := drc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := drc.mutation.Content(); ok {
		_spec.SetField(detailedreport.FieldContent, field.TypeJSON, value)
		_node.Content = value
	}
	if value, ok := drc.mutation.GeneratedAt(); ok {
		_spec.SetField(detailedreport.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	if nodes := drc.mutation.BuildingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   detailedreport.BuildingTable,
			Columns: []string{detailedreport.BuildingColumn},
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
	if nodes := drc.mutation.AuditIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   detailedreport.AuditTable,
			Columns: []string{detailedreport.AuditColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AuditID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DetailedReport.Create().
//		SetBuildingID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DetailedReportUpsert) {
//			SetBuildingID(v+v).
//		}).
//		Exec(ctx)
func (drc *DetailedReportCreate) OnConflict(opts ...sql.ConflictOption) *DetailedReportUpsertOne {
	drc.conflict = opts
	return &DetailedReportUpsertOne{
		create: drc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DetailedReport.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (drc *DetailedReportCreate) OnConflictColumns(columns ...string) *DetailedReportUpsertOne {
	drc.conflict = append(drc.conflict, sql.ConflictColumns(columns...))
	return &DetailedReportUpsertOne{
		create: drc,
	}
}

type (
	// DetailedReportUpsertOne is the builder for "upsert"-ing
	//  one DetailedReport node.
	DetailedReportUpsertOne struct {
		create *DetailedReportCreate
	}

	// DetailedReportUpsert is the "OnConflict" setter.
	DetailedReportUpsert struct {
		*sql.UpdateSet
	}
)

// SetBuildingID sets the "building_id" field.
func (u *DetailedReportUpsert) SetBuildingID(v uuid.UUID) *DetailedReportUpsert {
	u.Set(detailedreport.FieldBuildingID, v)
	return u
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *DetailedReportUpsert) UpdateBuildingID() *DetailedReportUpsert {
	u.SetExcluded(detailedreport.FieldBuildingID)
	return u
}

// SetAuditID sets the "audit_id" field.
func (u *DetailedReportUpsert) SetAuditID(v uuid.UUID) *DetailedReportUpsert {
	u.Set(detailedreport.FieldAuditID, v)
	return u
}

// UpdateAuditID sets the "audit_id" field to the value that was provided on create.
func (u *DetailedReportUpsert) UpdateAuditID() *DetailedReportUpsert {
	u.SetExcluded(detailedreport.FieldAuditID)
	return u
}

// SetContent sets the "content" field.
func (u *DetailedReportUpsert) SetContent(v json.RawMessage) *DetailedReportUpsert {
	u.Set(detailedreport.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *DetailedReportUpsert) UpdateContent() *DetailedReportUpsert {
	u.SetExcluded(detailedreport.FieldContent)
	return u
}

// SetGeneratedAt sets the "generated_at" field.
func (u *DetailedReportUpsert) SetGeneratedAt(v time.Time) *DetailedReportUpsert {
	u.Set(detailedreport.FieldGeneratedAt, v)
	return u
}

// UpdateGeneratedAt sets the "generated_at" field to the value that was provided on create.
func (u *DetailedReportUpsert) UpdateGeneratedAt() *DetailedReportUpsert {
	u.SetExcluded(detailedreport.FieldGeneratedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DetailedReport.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(detailedreport.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DetailedReportUpsertOne) UpdateNewValues() *DetailedReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(detailedreport.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DetailedReport.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DetailedReportUpsertOne) Ignore() *DetailedReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DetailedReportUpsertOne) DoNothing() *DetailedReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DetailedReportCreate.OnConflict
// documentation for more info.
func (u *DetailedReportUpsertOne) Update(set func(*DetailedReportUpsert)) *DetailedReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DetailedReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetBuildingID sets the "building_id" field.
func (u *DetailedReportUpsertOne) SetBuildingID(v uuid.UUID) *DetailedReportUpsertOne {
	return u.Update(func(s *DetailedReportUpsert) {
		s.SetBuildingID(v)
	})
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *DetailedReportUpsertOne) UpdateBuildingID() *DetailedReportUpsertOne {
	return u.Update(func(s *DetailedReportUpsert) {
		s.UpdateBuildingID()
	})
}

// SetAuditID sets the "audit_id" field.
func (u *DetailedReportUpsertOne) SetAuditID(v uuid.UUID) *DetailedReportUpsertOne {
	return u.Update(func(s *DetailedReportUpsert) {
		s.SetAuditID(v)
	})
}

// UpdateAuditID sets the "audit_id" field to the value that was provided on create.
func (u *DetailedReportUpsertOne) UpdateAuditID() *DetailedReportUpsertOne {
	return u.Update(func(s *DetailedReportUpsert) {
		s.UpdateAuditID()
	})
}

// SetContent sets the "content" field.
func (u *DetailedReportUpsertOne) SetContent(v json.RawMessage) *DetailedReportUpsertOne {
	return u.Update(func(s *DetailedReportUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *DetailedReportUpsertOne) UpdateContent() *DetailedReportUpsertOne {
	return u.Update(func(s *DetailedReportUpsert) {
		s.UpdateContent()
	})
}

// SetGeneratedAt sets the "generated_at" field.
func (u *DetailedReportUpsertOne) SetGeneratedAt(v time.Time) *DetailedReportUpsertOne {
	return u.Update(func(s *DetailedReportUpsert) {
		s.SetGeneratedAt(v)
	})
}

// UpdateGeneratedAt sets the "generated_at" field to the value that was provided on create.
func (u *DetailedReportUpsertOne) UpdateGeneratedAt() *DetailedReportUpsertOne {
	return u.Update(func(s *DetailedReportUpsert) {
		s.UpdateGeneratedAt()
	})
}

// Exec executes the query.
func (u *DetailedReportUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DetailedReportCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DetailedReportUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DetailedReportUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DetailedReportUpsertOne.ID is not supported by MySQL driver. Use DetailedReportUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DetailedReportUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DetailedReportCreateBulk is the builder for creating many DetailedReport entities in bulk.
type DetailedReportCreateBulk struct {
	config
	err      error
	builders []*DetailedReportCreate
	conflict []sql.ConflictOption
}

// Save creates the DetailedReport entities in the database.
func (drcb *DetailedReportCreateBulk) Save(ctx context.Context) ([]*DetailedReport, error) {
	if drcb.err != nil {
		return nil, drcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(drcb.builders))
	nodes := make([]*DetailedReport, len(drcb.builders))
	mutators := make([]Mutator, len(drcb.builders))
	for i := range drcb.builders {
		func(i int, root context.Context) {
			builder := drcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DetailedReportMutation)
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
					_, err = mutators[i+1].Mutate(root, drcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = drcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, drcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, drcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (drcb *DetailedReportCreateBulk) SaveX(ctx context.Context) []*DetailedReport {
	v, err := drcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (drcb *DetailedReportCreateBulk) Exec(ctx context.Context) error {
	_, err := drcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (drcb *DetailedReportCreateBulk) ExecX(ctx context.Context) {
	if err := drcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DetailedReport.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DetailedReportUpsert) {
//			SetBuildingID(v+v).
//		}).
//		Exec(ctx)
func (drcb *DetailedReportCreateBulk) OnConflict(opts ...sql.ConflictOption) *DetailedReportUpsertBulk {
	drcb.conflict = opts
	return &DetailedReportUpsertBulk{
		create: drcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DetailedReport.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (drcb *DetailedReportCreateBulk) OnConflictColumns(columns ...string) *DetailedReportUpsertBulk {
	drcb.conflict = append(drcb.conflict, sql.ConflictColumns(columns...))
	return &DetailedReportUpsertBulk{
		create: drcb,
	}
}

// DetailedReportUpsertBulk is the builder for "upsert"-ing
// a bulk of DetailedReport nodes.
type DetailedReportUpsertBulk struct {
	create *DetailedReportCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DetailedReport.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(detailedreport.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DetailedReportUpsertBulk) UpdateNewValues() *DetailedReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(detailedreport.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DetailedReport.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DetailedReportUpsertBulk) Ignore() *DetailedReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DetailedReportUpsertBulk) DoNothing() *DetailedReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DetailedReportCreateBulk.OnConflict
// documentation for more info.
func (u *DetailedReportUpsertBulk) Update(set func(*DetailedReportUpsert)) *DetailedReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DetailedReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetBuildingID sets the "building_id" field.
func (u *DetailedReportUpsertBulk) SetBuildingID(v uuid.UUID) *DetailedReportUpsertBulk {
	return u.Update(func(s *DetailedReportUpsert) {
		s.SetBuildingID(v)
	})
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *DetailedReportUpsertBulk) UpdateBuildingID() *DetailedReportUpsertBulk {
	return u.Update(func(s *DetailedReportUpsert) {
		s.UpdateBuildingID()
	})
}

// SetAuditID sets the "audit_id" field.
func (u *DetailedReportUpsertBulk) SetAuditID(v uuid.UUID) *DetailedReportUpsertBulk {
	return u.Update(func(s *DetailedReportUpsert) {
		s.SetAuditID(v)
	})
}

// UpdateAuditID sets the "audit_id" field to the value that was provided on create.
func (u *DetailedReportUpsertBulk) UpdateAuditID() *DetailedReportUpsertBulk {
	return u.Update(func(s *DetailedReportUpsert) {
		s.UpdateAuditID()
	})
}

// SetContent sets the "content" field.
func (u *DetailedReportUpsertBulk) SetContent(v json.RawMessage) *DetailedReportUpsertBulk {
	return u.Update(func(s *DetailedReportUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *DetailedReportUpsertBulk) UpdateContent() *DetailedReportUpsertBulk {
	return u.Update(func(s *DetailedReportUpsert) {
		s.UpdateContent()
	})
}

// SetGeneratedAt sets the "generated_at" field.
func (u *DetailedReportUpsertBulk) SetGeneratedAt(v time.Time) *DetailedReportUpsertBulk {
	return u.Update(func(s *DetailedReportUpsert) {
		s.SetGeneratedAt(v)
	})
}

// UpdateGeneratedAt sets the "generated_at" field to the value that was provided on create.
func (u *DetailedReportUpsertBulk) UpdateGeneratedAt() *DetailedReportUpsertBulk {
	return u.Update(func(s *DetailedReportUpsert) {
		s.UpdateGeneratedAt()
	})
}

// Exec executes the query.
func (u *DetailedReportUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DetailedReportCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DetailedReportCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DetailedReportUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
