// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hrunx/es2square/gen/ent/audit"
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/detailedreport"
	"github.com/hrunx/es2square/gen/ent/predicate"
)

// DetailedReportUpdate is the builder for updating DetailedReport entities.
type DetailedReportUpdate struct {
	config
	hooks    []Hook
	mutation *DetailedReportMutation
}

// Where appends a list predicates to the DetailedReportUpdate builder.
func (dru *DetailedReportUpdate) Where(ps ...predicate.DetailedReport) *DetailedReportUpdate {
	dru.mutation.Where(ps...)
	return dru
}

// SetBuildingID sets the "building_id" field.
func (dru *DetailedReportUpdate) SetBuildingID(u uuid.UUID) *DetailedReportUpdate {
	dru.mutation.SetBuildingID(u)
	return dru
}

// SetNillableBuildingID sets the "building_id" field if the given value is not nil.
func (dru *DetailedReportUpdate) SetNillableBuildingID(u *uuid.UUID) *DetailedReportUpdate {
	if u != nil {
		dru.SetBuildingID(*u)
	}
	return dru
}

// SetAuditID sets the "audit_id" field.
func (dru *DetailedReportUpdate) SetAuditID(u uuid.UUID) *DetailedReportUpdate {
	dru.mutation.SetAuditID(u)
	return dru
}

// SetNillableAuditID sets the "audit_id" field if the given value is not nil.
func (dru *DetailedReportUpdate) SetNillableAuditID(u *uuid.UUID) *DetailedReportUpdate {
	if u != nil {
		dru.SetAuditID(*u)
	}
	return dru
}

// SetContent sets the "content" field.
func (dru *DetailedReportUpdate) SetContent(jm json.RawMessage) *DetailedReportUpdate {
	dru.mutation.SetContent(jm)
	return dru
}

// AppendContent appends jm to the "content" field.
func (dru *DetailedReportUpdate) AppendContent(jm json.RawMessage) *DetailedReportUpdate {
	dru.mutation.AppendContent(jm)
	return dru
}

// SetGeneratedAt sets the "generated_at" field.
func (dru *DetailedReportUpdate) SetGeneratedAt(t time.Time) *DetailedReportUpdate {
	dru.mutation.SetGeneratedAt(t)
	return dru
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (dru *DetailedReportUpdate) SetNillableGeneratedAt(t *time.Time) *DetailedReportUpdate {
	if t != nil {
		dru.SetGeneratedAt(*t)
	}
	return dru
}

// SetBuilding sets the "building" edge to the Building entity.
func (dru *DetailedReportUpdate) SetBuilding(b *Building) *DetailedReportUpdate {
	return dru.SetBuildingID(b.ID)
}

// SetAudit sets the "audit" edge to the Audit entity.
func (dru *DetailedReportUpdate) SetAudit(a *Audit) *DetailedReportUpdate {
	return dru.SetAuditID(a.ID)
}

// Mutation returns the DetailedReportMutation object of the builder.
func (dru *DetailedReportUpdate) Mutation() *DetailedReportMutation {
	return dru.mutation
}

// ClearBuilding clears the "building" edge to the Building entity.
func (dru *DetailedReportUpdate) ClearBuilding() *DetailedReportUpdate {
	dru.mutation.ClearBuilding()
	return dru
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (dru *DetailedReportUpdate) ClearAudit() *DetailedReportUpdate {
	dru.mutation.ClearAudit()
	return dru
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (dru *DetailedReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, dru.sqlSave, dru.mutation, dru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (dru *DetailedReportUpdate) SaveX(ctx context.Context) int {
	affected, err := dru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (dru *DetailedReportUpdate) Exec(ctx context.Context) error {
	_, err := dru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dru *DetailedReportUpdate) ExecX(ctx context.Context) {
	if err := dru.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dru *DetailedReportUpdate) check() error {
	if dru.mutation.BuildingCleared() && len(dru.mutation.BuildingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DetailedReport.building"`)
	}
	if dru.mutation.AuditCleared() && len(dru.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DetailedReport.audit"`)
	}
	return nil
}

func (dru *DetailedReportUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := dru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(detailedreport.Table, detailedreport.Columns, sqlgraph.NewFieldSpec(detailedreport.FieldID, field.TypeUUID))
	if ps := dru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := dru.mutation.Content(); ok {
		_spec.SetField(detailedreport.FieldContent, field.TypeJSON, value)
	}
	if value, ok := dru.mutation.AppendedContent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, detailedreport.FieldContent, value)
		})
	}
	if value, ok := dru.mutation.GeneratedAt(); ok {
		_spec.SetField(detailedreport.FieldGeneratedAt, field.TypeTime, value)
	}
	if dru.mutation.BuildingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dru.mutation.BuildingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if dru.mutation.AuditCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dru.mutation.AuditIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, dru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{detailedreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	dru.mutation.done = true
	return n, nil
}

// DetailedReportUpdateOne is the builder for updating a single DetailedReport entity.
type DetailedReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DetailedReportMutation
}

// SetBuildingID sets the "building_id" field.
func (druo *DetailedReportUpdateOne) SetBuildingID(u uuid.UUID) *DetailedReportUpdateOne {
	druo.mutation.SetBuildingID(u)
	return druo
}

// SetNillableBuildingID sets the "building_id" field if the given value is not nil.
func (druo *DetailedReportUpdateOne) SetNillableBuildingID(u *uuid.UUID) *DetailedReportUpdateOne {
	if u != nil {
		druo.SetBuildingID(*u)
	}
	return druo
}

// SetAuditID sets the "audit_id" field.
func (druo *DetailedReportUpdateOne) SetAuditID(u uuid.UUID) *DetailedReportUpdateOne {
	druo.mutation.SetAuditID(u)
	return druo
}

// SetNillableAuditID sets the "audit_id" field if the given value is not nil.
func (druo *DetailedReportUpdateOne) SetNillableAuditID(u *uuid.UUID) *DetailedReportUpdateOne {
	if u != nil {
		druo.SetAuditID(*u)
	}
	return druo
}

// SetContent sets the "content" field.
func (druo *DetailedReportUpdateOne) SetContent(jm json.RawMessage) *DetailedReportUpdateOne {
	druo.mutation.SetContent(jm)
	return druo
}

// AppendContent appends jm to the "content" field.
func (druo *DetailedReportUpdateOne) AppendContent(jm json.RawMessage) *DetailedReportUpdateOne {
	druo.mutation.AppendContent(jm)
	return druo
}

// SetGeneratedAt sets the "generated_at" field.
func (druo *DetailedReportUpdateOne) SetGeneratedAt(t time.Time) *DetailedReportUpdateOne {
	druo.mutation.SetGeneratedAt(t)
	return druo
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (druo *DetailedReportUpdateOne) SetNillableGeneratedAt(t *time.Time) *DetailedReportUpdateOne {
	if t != nil {
		druo.SetGeneratedAt(*t)
	}
	return druo
}

// SetBuilding sets the "building" edge to the Building entity.
func (druo *DetailedReportUpdateOne) SetBuilding(b *Building) *DetailedReportUpdateOne {
	return druo.SetBuildingID(b.ID)
}

// SetAudit sets the "audit" edge to the Audit entity.
func (druo *DetailedReportUpdateOne) SetAudit(a *Audit) *DetailedReportUpdateOne {
	return druo.SetAuditID(a.ID)
}

// Mutation returns the DetailedReportMutation object of the builder.
func (druo *DetailedReportUpdateOne) Mutation() *DetailedReportMutation {
	return druo.mutation
}

// ClearBuilding clears the "building" edge to the Building entity.
func (druo *DetailedReportUpdateOne) ClearBuilding() *DetailedReportUpdateOne {
	druo.mutation.ClearBuilding()
	return druo
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (druo *DetailedReportUpdateOne) ClearAudit() *DetailedReportUpdateOne {
	druo.mutation.ClearAudit()
	return druo
}

// Where appends a list predicates to the DetailedReportUpdate builder.
func (druo *DetailedReportUpdateOne) Where(ps ...predicate.DetailedReport) *DetailedReportUpdateOne {
	druo.mutation.Where(ps...)
	return druo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (druo *DetailedReportUpdateOne) Select(field string, fields ...string) *DetailedReportUpdateOne {
	druo.fields = append([]string{field}, fields...)
	return druo
}

// Save executes the query and returns the updated DetailedReport entity.
func (druo *DetailedReportUpdateOne) Save(ctx context.Context) (*DetailedReport, error) {
	return withHooks(ctx, druo.sqlSave, druo.mutation, druo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (druo *DetailedReportUpdateOne) SaveX(ctx context.Context) *DetailedReport {
	node, err := druo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (druo *DetailedReportUpdateOne) Exec(ctx context.Context) error {
	_, err := druo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (druo *DetailedReportUpdateOne) ExecX(ctx context.Context) {
	if err := druo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (druo *DetailedReportUpdateOne) check() error {
	if druo.mutation.BuildingCleared() && len(druo.mutation.BuildingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DetailedReport.building"`)
	}
	if druo.mutation.AuditCleared() && len(druo.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DetailedReport.audit"`)
	}
	return nil
}

func (druo *DetailedReportUpdateOne) sqlSave(ctx context.Context) (_node *DetailedReport, err error) {
	if err := druo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(detailedreport.Table, detailedreport.Columns, sqlgraph.NewFieldSpec(detailedreport.FieldID, field.TypeUUID))
	id, ok := druo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DetailedReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := druo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, detailedreport.FieldID)
		for _, f := range fields {
			if !detailedreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != detailedreport.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := druo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := druo.mutation.Content(); ok {
		_spec.SetField(detailedreport.FieldContent, field.TypeJSON, value)
	}
	if value, ok := druo.mutation.AppendedContent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, detailedreport.FieldContent, value)
		})
	}
	if value, ok := druo.mutation.GeneratedAt(); ok {
		_spec.SetField(detailedreport.FieldGeneratedAt, field.TypeTime, value)
	}
	if druo.mutation.BuildingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := druo.mutation.BuildingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if druo.mutation.AuditCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := druo.mutation.AuditIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DetailedReport{config: druo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, druo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{detailedreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	druo.mutation.done = true
	return _node, nil
}
