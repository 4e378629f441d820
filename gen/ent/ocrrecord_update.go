// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hrunx/es2square/gen/ent/auditfile"
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/ocrrecord"
	"github.com/hrunx/es2square/gen/ent/predicate"
)

// OCRRecordUpdate is the builder for updating OCRRecord entities.
type OCRRecordUpdate struct {
	config
	hooks    []Hook
	mutation *OCRRecordMutation
}

// Where appends a list predicates to the OCRRecordUpdate builder.
func (oru *OCRRecordUpdate) Where(ps ...predicate.OCRRecord) *OCRRecordUpdate {
	oru.mutation.Where(ps...)
	return oru
}

// SetBuildingID sets the "building_id" field.
func (oru *OCRRecordUpdate) SetBuildingID(u uuid.UUID) *OCRRecordUpdate {
	oru.mutation.SetBuildingID(u)
	return oru
}

// SetNillableBuildingID sets the "building_id" field if the given value is not nil.
func (oru *OCRRecordUpdate) SetNillableBuildingID(u *uuid.UUID) *OCRRecordUpdate {
	if u != nil {
		oru.SetBuildingID(*u)
	}
	return oru
}

// SetRawText sets the "raw_text" field.
func (oru *OCRRecordUpdate) SetRawText(s string) *OCRRecordUpdate {
	oru.mutation.SetRawText(s)
	return oru
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (oru *OCRRecordUpdate) SetNillableRawText(s *string) *OCRRecordUpdate {
	if s != nil {
		oru.SetRawText(*s)
	}
	return oru
}

// SetProcessedText sets the "processed_text" field.
func (oru *OCRRecordUpdate) SetProcessedText(jm json.RawMessage) *OCRRecordUpdate {
	oru.mutation.SetProcessedText(jm)
	return oru
}

// AppendProcessedText appends jm to the "processed_text" field.
func (oru *OCRRecordUpdate) AppendProcessedText(jm json.RawMessage) *OCRRecordUpdate {
	oru.mutation.AppendProcessedText(jm)
	return oru
}

// ClearProcessedText clears the value of the "processed_text" field.
func (oru *OCRRecordUpdate) ClearProcessedText() *OCRRecordUpdate {
	oru.mutation.ClearProcessedText()
	return oru
}

// SetMetadata sets the "metadata" field.
func (oru *OCRRecordUpdate) SetMetadata(jm json.RawMessage) *OCRRecordUpdate {
	oru.mutation.SetMetadata(jm)
	return oru
}

// AppendMetadata appends jm to the "metadata" field.
func (oru *OCRRecordUpdate) AppendMetadata(jm json.RawMessage) *OCRRecordUpdate {
	oru.mutation.AppendMetadata(jm)
	return oru
}

// ClearMetadata clears the value of the "metadata" field.
func (oru *OCRRecordUpdate) ClearMetadata() *OCRRecordUpdate {
	oru.mutation.ClearMetadata()
	return oru
}

// SetIsFloorPlan sets the "is_floor_plan" field.
func (oru *OCRRecordUpdate) SetIsFloorPlan(b bool) *OCRRecordUpdate {
	oru.mutation.SetIsFloorPlan(b)
	return oru
}

// SetNillableIsFloorPlan sets the "is_floor_plan" field if the given value is not nil.
func (oru *OCRRecordUpdate) SetNillableIsFloorPlan(b *bool) *OCRRecordUpdate {
	if b != nil {
		oru.SetIsFloorPlan(*b)
	}
	return oru
}

// SetBuilding sets the "building" edge to the Building entity.
func (oru *OCRRecordUpdate) SetBuilding(b *Building) *OCRRecordUpdate {
	return oru.SetBuildingID(b.ID)
}

// SetFileID sets the "file" edge to the AuditFile entity by ID.
func (oru *OCRRecordUpdate) SetFileID(id uuid.UUID) *OCRRecordUpdate {
	oru.mutation.SetFileID(id)
	return oru
}

// SetNillableFileID sets the "file" edge to the AuditFile entity by ID if the given value is not nil.
func (oru *OCRRecordUpdate) SetNillableFileID(id *uuid.UUID) *OCRRecordUpdate {
	if id != nil {
		oru = oru.SetFileID(*id)
	}
	return oru
}

// SetFile sets the "file" edge to the AuditFile entity.
func (oru *OCRRecordUpdate) SetFile(a *AuditFile) *OCRRecordUpdate {
	return oru.SetFileID(a.ID)
}

// Mutation returns the OCRRecordMutation object of the builder.
func (oru *OCRRecordUpdate) Mutation() *OCRRecordMutation {
	return oru.mutation
}

// ClearBuilding clears the "building" edge to the Building entity.
func (oru *OCRRecordUpdate) ClearBuilding() *OCRRecordUpdate {
	oru.mutation.ClearBuilding()
	return oru
}

// ClearFile clears the "file" edge to the AuditFile entity.
func (oru *OCRRecordUpdate) ClearFile() *OCRRecordUpdate {
	oru.mutation.ClearFile()
	return oru
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (oru *OCRRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, oru.sqlSave, oru.mutation, oru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (oru *OCRRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := oru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (oru *OCRRecordUpdate) Exec(ctx context.Context) error {
	_, err := oru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (oru *OCRRecordUpdate) ExecX(ctx context.Context) {
	if err := oru.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (oru *OCRRecordUpdate) check() error {
	if oru.mutation.BuildingCleared() && len(oru.mutation.BuildingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OCRRecord.building"`)
	}
	return nil
}

func (oru *OCRRecordUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := oru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrrecord.Table, ocrrecord.Columns, sqlgraph.NewFieldSpec(ocrrecord.FieldID, field.TypeUUID))
	if ps := oru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := oru.mutation.RawText(); ok {
		_spec.SetField(ocrrecord.FieldRawText, field.TypeString, value)
	}
	if value, ok := oru.mutation.ProcessedText(); ok {
		_spec.SetField(ocrrecord.FieldProcessedText, field.TypeJSON, value)
	}
	if value, ok := oru.mutation.AppendedProcessedText(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ocrrecord.FieldProcessedText, value)
		})
	}
	if oru.mutation.ProcessedTextCleared() {
		_spec.ClearField(ocrrecord.FieldProcessedText, field.TypeJSON)
	}
	if value, ok := oru.mutation.Metadata(); ok {
		_spec.SetField(ocrrecord.FieldMetadata, field.TypeJSON, value)
	}
	if value, ok := oru.mutation.AppendedMetadata(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ocrrecord.FieldMetadata, value)
		})
	}
	if oru.mutation.MetadataCleared() {
		_spec.ClearField(ocrrecord.FieldMetadata, field.TypeJSON)
	}
	if value, ok := oru.mutation.IsFloorPlan(); ok {
		_spec.SetField(ocrrecord.FieldIsFloorPlan, field.TypeBool, value)
	}
	if oru.mutation.BuildingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrrecord.BuildingTable,
			Columns: []string{ocrrecord.BuildingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(building.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := oru.mutation.BuildingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrrecord.BuildingTable,
			Columns: []string{ocrrecord.BuildingColumn},
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
	if oru.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   ocrrecord.FileTable,
			Columns: []string{ocrrecord.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := oru.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   ocrrecord.FileTable,
			Columns: []string{ocrrecord.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, oru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	oru.mutation.done = true
	return n, nil
}

// OCRRecordUpdateOne is the builder for updating a single OCRRecord entity.
type OCRRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OCRRecordMutation
}

// SetBuildingID sets the "building_id" field.
func (oruo *OCRRecordUpdateOne) SetBuildingID(u uuid.UUID) *OCRRecordUpdateOne {
	oruo.mutation.SetBuildingID(u)
	return oruo
}

// SetNillableBuildingID sets the "building_id" field if the given value is not nil.
func (oruo *OCRRecordUpdateOne) SetNillableBuildingID(u *uuid.UUID) *OCRRecordUpdateOne {
	if u != nil {
		oruo.SetBuildingID(*u)
	}
	return oruo
}

// SetRawText sets the "raw_text" field.
func (oruo *OCRRecordUpdateOne) SetRawText(s string) *OCRRecordUpdateOne {
	oruo.mutation.SetRawText(s)
	return oruo
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (oruo *OCRRecordUpdateOne) SetNillableRawText(s *string) *OCRRecordUpdateOne {
	if s != nil {
		oruo.SetRawText(*s)
	}
	return oruo
}

// SetProcessedText sets the "processed_text" field.
func (oruo *OCRRecordUpdateOne) SetProcessedText(jm json.RawMessage) *OCRRecordUpdateOne {
	oruo.mutation.SetProcessedText(jm)
	return oruo
}

// AppendProcessedText appends jm to the "processed_text" field.
func (oruo *OCRRecordUpdateOne) AppendProcessedText(jm json.RawMessage) *OCRRecordUpdateOne {
	oruo.mutation.AppendProcessedText(jm)
	return oruo
}

// ClearProcessedText clears the value of the "processed_text" field.
func (oruo *OCRRecordUpdateOne) ClearProcessedText() *OCRRecordUpdateOne {
	oruo.mutation.ClearProcessedText()
	return oruo
}

// SetMetadata sets the "metadata" field.
func (oruo *OCRRecordUpdateOne) SetMetadata(jm json.RawMessage) *OCRRecordUpdateOne {
	oruo.mutation.SetMetadata(jm)
	return oruo
}

// AppendMetadata appends jm to the "metadata" field.
func (oruo *OCRRecordUpdateOne) AppendMetadata(jm json.RawMessage) *OCRRecordUpdateOne {
	oruo.mutation.AppendMetadata(jm)
	return oruo
}

// ClearMetadata clears the value of the "metadata" field.
func (oruo *OCRRecordUpdateOne) ClearMetadata() *OCRRecordUpdateOne {
	oruo.mutation.ClearMetadata()
	return oruo
}

// SetIsFloorPlan sets the "is_floor_plan" field.
func (oruo *OCRRecordUpdateOne) SetIsFloorPlan(b bool) *OCRRecordUpdateOne {
	oruo.mutation.SetIsFloorPlan(b)
	return oruo
}

// SetNillableIsFloorPlan sets the "is_floor_plan" field if the given value is not nil.
func (oruo *OCRRecordUpdateOne) SetNillableIsFloorPlan(b *bool) *OCRRecordUpdateOne {
	if b != nil {
		oruo.SetIsFloorPlan(*b)
	}
	return oruo
}

// SetBuilding sets the "building" edge to the Building entity.
func (oruo *OCRRecordUpdateOne) SetBuilding(b *Building) *OCRRecordUpdateOne {
	return oruo.SetBuildingID(b.ID)
}

// SetFileID sets the "file" edge to the AuditFile entity by ID.
func (oruo *OCRRecordUpdateOne) SetFileID(id uuid.UUID) *OCRRecordUpdateOne {
	oruo.mutation.SetFileID(id)
	return oruo
}

// SetNillableFileID sets the "file" edge to the AuditFile entity by ID if the given value is not nil.
func (oruo *OCRRecordUpdateOne) SetNillableFileID(id *uuid.UUID) *OCRRecordUpdateOne {
	if id != nil {
		oruo = oruo.SetFileID(*id)
	}
	return oruo
}

// SetFile sets the "file" edge to the AuditFile entity.
func (oruo *OCRRecordUpdateOne) SetFile(a *AuditFile) *OCRRecordUpdateOne {
	return oruo.SetFileID(a.ID)
}

// Mutation returns the OCRRecordMutation object of the builder.
func (oruo *OCRRecordUpdateOne) Mutation() *OCRRecordMutation {
	return oruo.mutation
}

// ClearBuilding clears the "building" edge to the Building entity.
func (oruo *OCRRecordUpdateOne) ClearBuilding() *OCRRecordUpdateOne {
	oruo.mutation.ClearBuilding()
	return oruo
}

// ClearFile clears the "file" edge to the AuditFile entity.
func (oruo *OCRRecordUpdateOne) ClearFile() *OCRRecordUpdateOne {
	oruo.mutation.ClearFile()
	return oruo
}

// Where appends a list predicates to the OCRRecordUpdate builder.
func (oruo *OCRRecordUpdateOne) Where(ps ...predicate.OCRRecord) *OCRRecordUpdateOne {
	oruo.mutation.Where(ps...)
	return oruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (oruo *OCRRecordUpdateOne) Select(field string, fields ...string) *OCRRecordUpdateOne {
	oruo.fields = append([]string{field}, fields...)
	return oruo
}

// Save executes the query and returns the updated OCRRecord entity.
func (oruo *OCRRecordUpdateOne) Save(ctx context.Context) (*OCRRecord, error) {
	return withHooks(ctx, oruo.sqlSave, oruo.mutation, oruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (oruo *OCRRecordUpdateOne) SaveX(ctx context.Context) *OCRRecord {
	node, err := oruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (oruo *OCRRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := oruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (oruo *OCRRecordUpdateOne) ExecX(ctx context.Context) {
	if err := oruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (oruo *OCRRecordUpdateOne) check() error {
	if oruo.mutation.BuildingCleared() && len(oruo.mutation.BuildingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OCRRecord.building"`)
	}
	return nil
}

func (oruo *OCRRecordUpdateOne) sqlSave(ctx context.Context) (_node *OCRRecord, err error) {
	if err := oruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrrecord.Table, ocrrecord.Columns, sqlgraph.NewFieldSpec(ocrrecord.FieldID, field.TypeUUID))
	id, ok := oruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OCRRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := oruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ocrrecord.FieldID)
		for _, f := range fields {
			if !ocrrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ocrrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := oruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := oruo.mutation.RawText(); ok {
		_spec.SetField(ocrrecord.FieldRawText, field.TypeString, value)
	}
	if value, ok := oruo.mutation.ProcessedText(); ok {
		_spec.SetField(ocrrecord.FieldProcessedText, field.TypeJSON, value)
	}
	if value, ok := oruo.mutation.AppendedProcessedText(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ocrrecord.FieldProcessedText, value)
		})
	}
	if oruo.mutation.ProcessedTextCleared() {
		_spec.ClearField(ocrrecord.FieldProcessedText, field.TypeJSON)
	}
	if value, ok := oruo.mutation.Metadata(); ok {
		_spec.SetField(ocrrecord.FieldMetadata, field.TypeJSON, value)
	}
	if value, ok := oruo.mutation.AppendedMetadata(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ocrrecord.FieldMetadata, value)
		})
	}
	if oruo.mutation.MetadataCleared() {
		_spec.ClearField(ocrrecord.FieldMetadata, field.TypeJSON)
	}
	if value, ok := oruo.mutation.IsFloorPlan(); ok {
		_spec.SetField(ocrrecord.FieldIsFloorPlan, field.TypeBool, value)
	}
	if oruo.mutation.BuildingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrrecord.BuildingTable,
			Columns: []string{ocrrecord.BuildingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(building.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := oruo.mutation.BuildingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrrecord.BuildingTable,
			Columns: []string{ocrrecord.BuildingColumn},
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
	if oruo.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   ocrrecord.FileTable,
			Columns: []string{ocrrecord.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := oruo.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   ocrrecord.FileTable,
			Columns: []string{ocrrecord.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OCRRecord{config: oruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, oruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	oruo.mutation.done = true
	return _node, nil
}
