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

// AuditUpdate is the builder for updating Audit entities.
type AuditUpdate struct {
	config
	hooks    []Hook
	mutation *AuditMutation
}

// Where appends a list predicates to the AuditUpdate builder.
func (au *AuditUpdate) Where(ps ...predicate.Audit) *AuditUpdate {
	au.mutation.Where(ps...)
	return au
}

// SetBuildingID sets the "building_id" field.
func (au *AuditUpdate) SetBuildingID(u uuid.UUID) *AuditUpdate {
	au.mutation.SetBuildingID(u)
	return au
}

// SetNillableBuildingID sets the "building_id" field if the given value is not nil.
func (au *AuditUpdate) SetNillableBuildingID(u *uuid.UUID) *AuditUpdate {
	if u != nil {
		au.SetBuildingID(*u)
	}
	return au
}

// SetType sets the "type" field.
func (au *AuditUpdate) SetType(s string) *AuditUpdate {
	au.mutation.SetType(s)
	return au
}

// SetNillableType sets the "type" field if the given value is not nil.
func (au *AuditUpdate) SetNillableType(s *string) *AuditUpdate {
	if s != nil {
		au.SetType(*s)
	}
	return au
}

// SetStatus sets the "status" field.
func (au *AuditUpdate) SetStatus(s string) *AuditUpdate {
	au.mutation.SetStatus(s)
	return au
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (au *AuditUpdate) SetNillableStatus(s *string) *AuditUpdate {
	if s != nil {
		au.SetStatus(*s)
	}
	return au
}

// SetFindings sets the "findings" field.
func (au *AuditUpdate) SetFindings(jm json.RawMessage) *AuditUpdate {
	au.mutation.SetFindings(jm)
	return au
}

// AppendFindings appends jm to the "findings" field.
func (au *AuditUpdate) AppendFindings(jm json.RawMessage) *AuditUpdate {
	au.mutation.AppendFindings(jm)
	return au
}

// ClearFindings clears the value of the "findings" field.
func (au *AuditUpdate) ClearFindings() *AuditUpdate {
	au.mutation.ClearFindings()
	return au
}

// SetRecommendations sets the "recommendations" field.
func (au *AuditUpdate) SetRecommendations(jm json.RawMessage) *AuditUpdate {
	au.mutation.SetRecommendations(jm)
	return au
}

// AppendRecommendations appends jm to the "recommendations" field.
func (au *AuditUpdate) AppendRecommendations(jm json.RawMessage) *AuditUpdate {
	au.mutation.AppendRecommendations(jm)
	return au
}

// ClearRecommendations clears the value of the "recommendations" field.
func (au *AuditUpdate) ClearRecommendations() *AuditUpdate {
	au.mutation.ClearRecommendations()
	return au
}

// SetKeyMetrics sets the "key_metrics" field.
func (au *AuditUpdate) SetKeyMetrics(jm json.RawMessage) *AuditUpdate {
	au.mutation.SetKeyMetrics(jm)
	return au
}

// AppendKeyMetrics appends jm to the "key_metrics" field.
func (au *AuditUpdate) AppendKeyMetrics(jm json.RawMessage) *AuditUpdate {
	au.mutation.AppendKeyMetrics(jm)
	return au
}

// ClearKeyMetrics clears the value of the "key_metrics" field.
func (au *AuditUpdate) ClearKeyMetrics() *AuditUpdate {
	au.mutation.ClearKeyMetrics()
	return au
}

// SetExecutiveSummary sets the "executive_summary" field.
func (au *AuditUpdate) SetExecutiveSummary(jm json.RawMessage) *AuditUpdate {
	au.mutation.SetExecutiveSummary(jm)
	return au
}

// AppendExecutiveSummary appends jm to the "executive_summary" field.
func (au *AuditUpdate) AppendExecutiveSummary(jm json.RawMessage) *AuditUpdate {
	au.mutation.AppendExecutiveSummary(jm)
	return au
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (au *AuditUpdate) ClearExecutiveSummary() *AuditUpdate {
	au.mutation.ClearExecutiveSummary()
	return au
}

// SetAiRaw sets the "ai_raw" field.
func (au *AuditUpdate) SetAiRaw(jm json.RawMessage) *AuditUpdate {
	au.mutation.SetAiRaw(jm)
	return au
}

// AppendAiRaw appends jm to the "ai_raw" field.
func (au *AuditUpdate) AppendAiRaw(jm json.RawMessage) *AuditUpdate {
	au.mutation.AppendAiRaw(jm)
	return au
}

// ClearAiRaw clears the value of the "ai_raw" field.
func (au *AuditUpdate) ClearAiRaw() *AuditUpdate {
	au.mutation.ClearAiRaw()
	return au
}

// SetUpdatedAt sets the "updated_at" field.
func (au *AuditUpdate) SetUpdatedAt(t time.Time) *AuditUpdate {
	au.mutation.SetUpdatedAt(t)
	return au
}

// SetBuilding sets the "building" edge to the Building entity.
func (au *AuditUpdate) SetBuilding(b *Building) *AuditUpdate {
	return au.SetBuildingID(b.ID)
}

// AddReportIDs adds the "reports" edge to the DetailedReport entity by IDs.
func (au *AuditUpdate) AddReportIDs(ids ...uuid.UUID) *AuditUpdate {
	au.mutation.AddReportIDs(ids...)
	return au
}

// AddReports adds the "reports" edges to the DetailedReport entity.
func (au *AuditUpdate) AddReports(d ...*DetailedReport) *AuditUpdate {
	ids := make([]uuid.UUID, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return au.AddReportIDs(ids...)
}

// Mutation returns the AuditMutation object of the builder.
func (au *AuditUpdate) Mutation() *AuditMutation {
	return au.mutation
}

// ClearBuilding clears the "building" edge to the Building entity.
func (au *AuditUpdate) ClearBuilding() *AuditUpdate {
	au.mutation.ClearBuilding()
	return au
}

// ClearReports clears all "reports" edges to the DetailedReport entity.
func (au *AuditUpdate) ClearReports() *AuditUpdate {
	au.mutation.ClearReports()
	return au
}

// RemoveReportIDs removes the "reports" edge to DetailedReport entities by IDs.
func (au *AuditUpdate) RemoveReportIDs(ids ...uuid.UUID) *AuditUpdate {
	au.mutation.RemoveReportIDs(ids...)
	return au
}

// RemoveReports removes "reports" edges to DetailedReport entities.
func (au *AuditUpdate) RemoveReports(d ...*DetailedReport) *AuditUpdate {
	ids := make([]uuid.UUID, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return au.RemoveReportIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (au *AuditUpdate) Save(ctx context.Context) (int, error) {
	au.defaults()
	return withHooks(ctx, au.sqlSave, au.mutation, au.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (au *AuditUpdate) SaveX(ctx context.Context) int {
	affected, err := au.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (au *AuditUpdate) Exec(ctx context.Context) error {
	_, err := au.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (au *AuditUpdate) ExecX(ctx context.Context) {
	if err := au.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (au *AuditUpdate) defaults() {
	if _, ok := au.mutation.UpdatedAt(); !ok {
		v := audit.UpdateDefaultUpdatedAt()
		au.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (au *AuditUpdate) check() error {
	if v, ok := au.mutation.GetType(); ok {
		if err := audit.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Audit.type": %w`, err)}
		}
	}
	if au.mutation.BuildingCleared() && len(au.mutation.BuildingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Audit.building"`)
	}
	return nil
}

func (au *AuditUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := au.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(audit.Table, audit.Columns, sqlgraph.NewFieldSpec(audit.FieldID, field.TypeUUID))
	if ps := au.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := au.mutation.GetType(); ok {
		_spec.SetField(audit.FieldType, field.TypeString, value)
	}
	if value, ok := au.mutation.Status(); ok {
		_spec.SetField(audit.FieldStatus, field.TypeString, value)
	}
	if value, ok := au.mutation.Findings(); ok {
		_spec.SetField(audit.FieldFindings, field.TypeJSON, value)
	}
	if value, ok := au.mutation.AppendedFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldFindings, value)
		})
	}
	if au.mutation.FindingsCleared() {
		_spec.ClearField(audit.FieldFindings, field.TypeJSON)
	}
	if value, ok := au.mutation.Recommendations(); ok {
		_spec.SetField(audit.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := au.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldRecommendations, value)
		})
	}
	if au.mutation.RecommendationsCleared() {
		_spec.ClearField(audit.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := au.mutation.KeyMetrics(); ok {
		_spec.SetField(audit.FieldKeyMetrics, field.TypeJSON, value)
	}
	if value, ok := au.mutation.AppendedKeyMetrics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldKeyMetrics, value)
		})
	}
	if au.mutation.KeyMetricsCleared() {
		_spec.ClearField(audit.FieldKeyMetrics, field.TypeJSON)
	}
	if value, ok := au.mutation.ExecutiveSummary(); ok {
		_spec.SetField(audit.FieldExecutiveSummary, field.TypeJSON, value)
	}
	if value, ok := au.mutation.AppendedExecutiveSummary(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldExecutiveSummary, value)
		})
	}
	if au.mutation.ExecutiveSummaryCleared() {
		_spec.ClearField(audit.FieldExecutiveSummary, field.TypeJSON)
	}
	if value, ok := au.mutation.AiRaw(); ok {
		_spec.SetField(audit.FieldAiRaw, field.TypeJSON, value)
	}
	if value, ok := au.mutation.AppendedAiRaw(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldAiRaw, value)
		})
	}
	if au.mutation.AiRawCleared() {
		_spec.ClearField(audit.FieldAiRaw, field.TypeJSON)
	}
	if value, ok := au.mutation.UpdatedAt(); ok {
		_spec.SetField(audit.FieldUpdatedAt, field.TypeTime, value)
	}
	if au.mutation.BuildingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.BuildingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if au.mutation.ReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.RemovedReportsIDs(); len(nodes) > 0 && !au.mutation.ReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.ReportsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, au.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{audit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	au.mutation.done = true
	return n, nil
}

// AuditUpdateOne is the builder for updating a single Audit entity.
type AuditUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditMutation
}

// SetBuildingID sets the "building_id" field.
func (auo *AuditUpdateOne) SetBuildingID(u uuid.UUID) *AuditUpdateOne {
	auo.mutation.SetBuildingID(u)
	return auo
}

// SetNillableBuildingID sets the "building_id" field if the given value is not nil.
func (auo *AuditUpdateOne) SetNillableBuildingID(u *uuid.UUID) *AuditUpdateOne {
	if u != nil {
		auo.SetBuildingID(*u)
	}
	return auo
}

// SetType sets the "type" field.
func (auo *AuditUpdateOne) SetType(s string) *AuditUpdateOne {
	auo.mutation.SetType(s)
	return auo
}

// SetNillableType sets the "type" field if the given value is not nil.
func (auo *AuditUpdateOne) SetNillableType(s *string) *AuditUpdateOne {
	if s != nil {
		auo.SetType(*s)
	}
	return auo
}

// SetStatus sets the "status" field.
func (auo *AuditUpdateOne) SetStatus(s string) *AuditUpdateOne {
	auo.mutation.SetStatus(s)
	return auo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (auo *AuditUpdateOne) SetNillableStatus(s *string) *AuditUpdateOne {
	if s != nil {
		auo.SetStatus(*s)
	}
	return auo
}

// SetFindings sets the "findings" field.
func (auo *AuditUpdateOne) SetFindings(jm json.RawMessage) *AuditUpdateOne {
	auo.mutation.SetFindings(jm)
	return auo
}

// AppendFindings appends jm to the "findings" field.
func (auo *AuditUpdateOne) AppendFindings(jm json.RawMessage) *AuditUpdateOne {
	auo.mutation.AppendFindings(jm)
	return auo
}

// ClearFindings clears the value of the "findings" field.
func (auo *AuditUpdateOne) ClearFindings() *AuditUpdateOne {
	auo.mutation.ClearFindings()
	return auo
}

// SetRecommendations sets the "recommendations" field.
func (auo *AuditUpdateOne) SetRecommendations(jm json.RawMessage) *AuditUpdateOne {
	auo.mutation.SetRecommendations(jm)
	return auo
}

// AppendRecommendations appends jm to the "recommendations" field.
func (auo *AuditUpdateOne) AppendRecommendations(jm json.RawMessage) *AuditUpdateOne {
	auo.mutation.AppendRecommendations(jm)
	return auo
}

// ClearRecommendations clears the value of the "recommendations" field.
func (auo *AuditUpdateOne) ClearRecommendations() *AuditUpdateOne {
	auo.mutation.ClearRecommendations()
	return auo
}

// SetKeyMetrics sets the "key_metrics" field.
func (auo *AuditUpdateOne) SetKeyMetrics(jm json.RawMessage) *AuditUpdateOne {
	auo.mutation.SetKeyMetrics(jm)
	return auo
}

// AppendKeyMetrics appends jm to the "key_metrics" field.
func (auo *AuditUpdateOne) AppendKeyMetrics(jm json.RawMessage) *AuditUpdateOne {
	auo.mutation.AppendKeyMetrics(jm)
	return auo
}

// ClearKeyMetrics clears the value of the "key_metrics" field.
func (auo *AuditUpdateOne) ClearKeyMetrics() *AuditUpdateOne {
	auo.mutation.ClearKeyMetrics()
	return auo
}

// SetExecutiveSummary sets the "executive_summary" field.
func (auo *AuditUpdateOne) SetExecutiveSummary(jm json.RawMessage) *AuditUpdateOne {
	auo.mutation.SetExecutiveSummary(jm)
	return auo
}

// AppendExecutiveSummary appends jm to the "executive_summary" field.
func (auo *AuditUpdateOne) AppendExecutiveSummary(jm json.RawMessage) *AuditUpdateOne {
	auo.mutation.AppendExecutiveSummary(jm)
	return auo
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (auo *AuditUpdateOne) ClearExecutiveSummary() *AuditUpdateOne {
	auo.mutation.ClearExecutiveSummary()
	return auo
}

// SetAiRaw sets the "ai_raw" field.
func (auo *AuditUpdateOne) SetAiRaw(jm json.RawMessage) *AuditUpdateOne {
	auo.mutation.SetAiRaw(jm)
	return auo
}

// AppendAiRaw appends jm to the "ai_raw" field.
func (auo *AuditUpdateOne) AppendAiRaw(jm json.RawMessage) *AuditUpdateOne {
	auo.mutation.AppendAiRaw(jm)
	return auo
}

// ClearAiRaw clears the value of the "ai_raw" field.
func (auo *AuditUpdateOne) ClearAiRaw() *AuditUpdateOne {
	auo.mutation.ClearAiRaw()
	return auo
}

// SetUpdatedAt sets the "updated_at" field.
func (auo *AuditUpdateOne) SetUpdatedAt(t time.Time) *AuditUpdateOne {
	auo.mutation.SetUpdatedAt(t)
	return auo
}

// SetBuilding sets the "building" edge to the Building entity.
func (auo *AuditUpdateOne) SetBuilding(b *Building) *AuditUpdateOne {
	return auo.SetBuildingID(b.ID)
}

// AddReportIDs adds the "reports" edge to the DetailedReport entity by IDs.
func (auo *AuditUpdateOne) AddReportIDs(ids ...uuid.UUID) *AuditUpdateOne {
	auo.mutation.AddReportIDs(ids...)
	return auo
}

// AddReports adds the "reports" edges to the DetailedReport entity.
func (auo *AuditUpdateOne) AddReports(d ...*DetailedReport) *AuditUpdateOne {
	ids := make([]uuid.UUID, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return auo.AddReportIDs(ids...)
}

// Mutation returns the AuditMutation object of the builder.
func (auo *AuditUpdateOne) Mutation() *AuditMutation {
	return auo.mutation
}

// ClearBuilding clears the "building" edge to the Building entity.
func (auo *AuditUpdateOne) ClearBuilding() *AuditUpdateOne {
	auo.mutation.ClearBuilding()
	return auo
}

// ClearReports clears all "reports" edges to the DetailedReport entity.
func (auo *AuditUpdateOne) ClearReports() *AuditUpdateOne {
	auo.mutation.ClearReports()
	return auo
}

// RemoveReportIDs removes the "reports" edge to DetailedReport entities by IDs.
func (auo *AuditUpdateOne) RemoveReportIDs(ids ...uuid.UUID) *AuditUpdateOne {
	auo.mutation.RemoveReportIDs(ids...)
	return auo
}

// RemoveReports removes "reports" edges to DetailedReport entities.
func (auo *AuditUpdateOne) RemoveReports(d ...*DetailedReport) *AuditUpdateOne {
	ids := make([]uuid.UUID, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return auo.RemoveReportIDs(ids...)
}

// Where appends a list predicates to the AuditUpdate builder.
func (auo *AuditUpdateOne) Where(ps ...predicate.Audit) *AuditUpdateOne {
	auo.mutation.Where(ps...)
	return auo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (auo *AuditUpdateOne) Select(field string, fields ...string) *AuditUpdateOne {
	auo.fields = append([]string{field}, fields...)
	return auo
}

// Save executes the query and returns the updated Audit entity.
func (auo *AuditUpdateOne) Save(ctx context.Context) (*Audit, error) {
	auo.defaults()
	return withHooks(ctx, auo.sqlSave, auo.mutation, auo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (auo *AuditUpdateOne) SaveX(ctx context.Context) *Audit {
	node, err := auo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (auo *AuditUpdateOne) Exec(ctx context.Context) error {
	_, err := auo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (auo *AuditUpdateOne) ExecX(ctx context.Context) {
	if err := auo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (auo *AuditUpdateOne) defaults() {
	if _, ok := auo.mutation.UpdatedAt(); !ok {
		v := audit.UpdateDefaultUpdatedAt()
		auo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (auo *AuditUpdateOne) check() error {
	if v, ok := auo.mutation.GetType(); ok {
		if err := audit.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Audit.type": %w`, err)}
		}
	}
	if auo.mutation.BuildingCleared() && len(auo.mutation.BuildingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Audit.building"`)
	}
	return nil
}

func (auo *AuditUpdateOne) sqlSave(ctx context.Context) (_node *Audit, err error) {
	if err := auo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(audit.Table, audit.Columns, sqlgraph.NewFieldSpec(audit.FieldID, field.TypeUUID))
	id, ok := auo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Audit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := auo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, audit.FieldID)
		for _, f := range fields {
			if !audit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != audit.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := auo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := auo.mutation.GetType(); ok {
		_spec.SetField(audit.FieldType, field.TypeString, value)
	}
	if value, ok := auo.mutation.Status(); ok {
		_spec.SetField(audit.FieldStatus, field.TypeString, value)
	}
	if value, ok := auo.mutation.Findings(); ok {
		_spec.SetField(audit.FieldFindings, field.TypeJSON, value)
	}
	if value, ok := auo.mutation.AppendedFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldFindings, value)
		})
	}
	if auo.mutation.FindingsCleared() {
		_spec.ClearField(audit.FieldFindings, field.TypeJSON)
	}
	if value, ok := auo.mutation.Recommendations(); ok {
		_spec.SetField(audit.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := auo.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldRecommendations, value)
		})
	}
	if auo.mutation.RecommendationsCleared() {
		_spec.ClearField(audit.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := auo.mutation.KeyMetrics(); ok {
		_spec.SetField(audit.FieldKeyMetrics, field.TypeJSON, value)
	}
	if value, ok := auo.mutation.AppendedKeyMetrics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldKeyMetrics, value)
		})
	}
	if auo.mutation.KeyMetricsCleared() {
		_spec.ClearField(audit.FieldKeyMetrics, field.TypeJSON)
	}
	if value, ok := auo.mutation.ExecutiveSummary(); ok {
		_spec.SetField(audit.FieldExecutiveSummary, field.TypeJSON, value)
	}
	if value, ok := auo.mutation.AppendedExecutiveSummary(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldExecutiveSummary, value)
		})
	}
	if auo.mutation.ExecutiveSummaryCleared() {
		_spec.ClearField(audit.FieldExecutiveSummary, field.TypeJSON)
	}
	if value, ok := auo.mutation.AiRaw(); ok {
		_spec.SetField(audit.FieldAiRaw, field.TypeJSON, value)
	}
	if value, ok := auo.mutation.AppendedAiRaw(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldAiRaw, value)
		})
	}
	if auo.mutation.AiRawCleared() {
		_spec.ClearField(audit.FieldAiRaw, field.TypeJSON)
	}
	if value, ok := auo.mutation.UpdatedAt(); ok {
		_spec.SetField(audit.FieldUpdatedAt, field.TypeTime, value)
	}
	if auo.mutation.BuildingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.BuildingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if auo.mutation.ReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.RemovedReportsIDs(); len(nodes) > 0 && !auo.mutation.ReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.ReportsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Audit{config: auo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, auo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{audit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	auo.mutation.done = true
	return _node, nil
}
