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
	"github.com/hrunx/es2square/gen/ent/auditfile"
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/ocrrecord"
)

// OCRRecordCreate is the builder for creating a OCRRecord entity.
type OCRRecordCreate struct {
	config
	mutation *OCRRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBuildingID sets the "building_id" field.
func (orc *OCRRecordCreate) SetBuildingID(u uuid.UUID) *OCRRecordCreate {
	orc.mutation.SetBuildingID(u)
	return orc
}

// SetRawText sets the "raw_text" field.
func (orc *OCRRecordCreate) SetRawText(s string) *OCRRecordCreate {
	orc.mutation.SetRawText(s)
	return orc
}

// SetProcessedText sets the "processed_text" field.
func (orc *OCRRecordCreate) SetProcessedText(jm json.RawMessage) *OCRRecordCreate {
	orc.mutation.SetProcessedText(jm)
	return orc
}

// SetMetadata sets the "metadata" field.
func (orc *OCRRecordCreate) SetMetadata(jm json.RawMessage) *OCRRecordCreate {
	orc.mutation.SetMetadata(jm)
	return orc
}

// SetIsFloorPlan sets the "is_floor_plan" field.
func (orc *OCRRecordCreate) SetIsFloorPlan(b bool) *OCRRecordCreate {
	orc.mutation.SetIsFloorPlan(b)
	return orc
}

// SetNillableIsFloorPlan sets the "is_floor_plan" field if the given value is not nil.
func (orc *OCRRecordCreate) SetNillableIsFloorPlan(b *bool) *OCRRecordCreate {
	if b != nil {
		orc.SetIsFloorPlan(*b)
	}
	return orc
}

// SetCreatedAt sets the "created_at" field.
func (orc *OCRRecordCreate) SetCreatedAt(t time.Time) *OCRRecordCreate {
	orc.mutation.SetCreatedAt(t)
	return orc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (orc *OCRRecordCreate) SetNillableCreatedAt(t *time.Time) *OCRRecordCreate {
	if t != nil {
		orc.SetCreatedAt(*t)
	}
	return orc
}

// SetID sets the "id" field.
func (orc *OCRRecordCreate) SetID(u uuid.UUID) *OCRRecordCreate {
	orc.mutation.SetID(u)
	return orc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (orc *OCRRecordCreate) SetNillableID(u *uuid.UUID) *OCRRecordCreate {
	if u != nil {
		orc.SetID(*u)
	}
	return orc
}

// SetBuilding sets the "building" edge to the Building entity.
func (orc *OCRRecordCreate) SetBuilding(b *Building) *OCRRecordCreate {
	return orc.SetBuildingID(b.ID)
}

// SetFileID sets the "file" edge to the AuditFile entity by ID.
func (orc *OCRRecordCreate) SetFileID(id uuid.UUID) *OCRRecordCreate {
	orc.mutation.SetFileID(id)
	return orc
}

// SetNillableFileID sets the "file" edge to the AuditFile entity by ID if the given value is not nil.
func (orc *OCRRecordCreate) SetNillableFileID(id *uuid.UUID) *OCRRecordCreate {
	if id != nil {
		orc = orc.SetFileID(*id)
	}
	return orc
}

// SetFile sets the "file" edge to the AuditFile entity.
func (orc *OCRRecordCreate) SetFile(a *AuditFile) *OCRRecordCreate {
	return orc.SetFileID(a.ID)
}

// Mutation returns the OCRRecordMutation object of the builder.
func (orc *OCRRecordCreate) Mutation() *OCRRecordMutation {
	return orc.mutation
}

// Save creates the OCRRecord in the database.
func (orc *OCRRecordCreate) Save(ctx context.Context) (*OCRRecord, error) {
	orc.defaults()
	return withHooks(ctx, orc.sqlSave, orc.mutation, orc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (orc *OCRRecordCreate) SaveX(ctx context.Context) *OCRRecord {
	v, err := orc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (orc *OCRRecordCreate) Exec(ctx context.Context) error {
	_, err := orc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (orc *OCRRecordCreate) ExecX(ctx context.Context) {
	if err := orc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (orc *OCRRecordCreate) defaults() {
	if _, ok := orc.mutation.IsFloorPlan(); !ok {
		v := ocrrecord.DefaultIsFloorPlan
		orc.mutation.SetIsFloorPlan(v)
	}
	if _, ok := orc.mutation.CreatedAt(); !ok {
		v := ocrrecord.DefaultCreatedAt()
		orc.mutation.SetCreatedAt(v)
	}
	if _, ok := orc.mutation.ID(); !ok {
		v := ocrrecord.DefaultID()
		orc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (orc *OCRRecordCreate) check() error {
	if _, ok := orc.mutation.BuildingID(); !ok {
		return &ValidationError{Name: "building_id", err: errors.New(`ent: missing required field "OCRRecord.building_id"`)}
	}
	if _, ok := orc.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "OCRRecord.raw_text"`)}
	}
	if _, ok := orc.mutation.IsFloorPlan(); !ok {
		return &ValidationError{Name: "is_floor_plan", err: errors.New(`ent: missing required field "OCRRecord.is_floor_plan"`)}
	}
	if _, ok := orc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OCRRecord.created_at"`)}
	}
	if len(orc.mutation.BuildingIDs()) == 0 {
		return &ValidationError{Name: "building", err: errors.New(`ent: missing required edge "OCRRecord.building"`)}
	}
	return nil
}

func (orc *OCRRecordCreate) sqlSave(ctx context.Context) (*OCRRecord, error) {
	if err := orc.check(); err != nil {
		return nil, err
	}
	_node, _spec := orc.createSpec()
	if err := sqlgraph.CreateNode(ctx, orc.driver, _spec); err != nil {
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
	orc.mutation.id = &_node.ID
	orc.mutation.done = true
	return _node, nil
}

func (orc *OCRRecordCreate) createSpec() (*OCRRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &OCRRecord{config: orc.config}
		_spec = sqlgraph.NewCreateSpec(ocrrecord.Table, sqlgraph.NewFieldSpec(ocrrecord.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = orc.conflict
	if id, ok := orc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := orc.mutation.RawText(); ok {
		_spec.SetField(ocrrecord.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := orc.mutation.ProcessedText(); ok {
		_spec.SetField(ocrrecord.FieldProcessedText, field.TypeJSON, value)
		_node.ProcessedText = value
	}
	if value, ok := orc.mutation.Metadata(); ok {
		_spec.SetField(ocrrecord.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := orc.mutation.IsFloorPlan(); ok {
		_spec.SetField(ocrrecord.FieldIsFloorPlan, field.TypeBool, value)
		_node.IsFloorPlan = value
	}
	if value, ok := orc.mutation.CreatedAt(); ok {
		_spec.SetField(ocrrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := orc.mutation.BuildingIDs(); len(nodes) > 0 {
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
		_node.BuildingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := orc.mutation.FileIDs(); len(nodes) > 0 {
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
		_node.audit_file_ocr = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OCRRecord.Create().
//		SetBuildingID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OCRRecordUpsert) {
//			SetBuildingID(v+v).
//		}).
//		Exec(ctx)
func (orc *OCRRecordCreate) OnConflict(opts ...sql.ConflictOption) *OCRRecordUpsertOne {
	orc.conflict = opts
	return &OCRRecordUpsertOne{
		create: orc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OCRRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (orc *OCRRecordCreate) OnConflictColumns(columns ...string) *OCRRecordUpsertOne {
	orc.conflict = append(orc.conflict, sql.ConflictColumns(columns...))
	return &OCRRecordUpsertOne{
		create: orc,
	}
}

type (
	// OCRRecordUpsertOne is the builder for "upsert"-ing
	//  one OCRRecord node.
	OCRRecordUpsertOne struct {
		create *OCRRecordCreate
	}

	// OCRRecordUpsert is the "OnConflict" setter.
	OCRRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetBuildingID sets the "building_id" field.
func (u *OCRRecordUpsert) SetBuildingID(v uuid.UUID) *OCRRecordUpsert {
	u.Set(ocrrecord.FieldBuildingID, v)
	return u
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *OCRRecordUpsert) UpdateBuildingID() *OCRRecordUpsert {
	u.SetExcluded(ocrrecord.FieldBuildingID)
	return u
}

// SetRawText sets the "raw_text" field.
func (u *OCRRecordUpsert) SetRawText(v string) *OCRRecordUpsert {
	u.Set(ocrrecord.FieldRawText, v)
	return u
}

// UpdateRawText sets the "raw_text" field to the value that was provided on create.
func (u *OCRRecordUpsert) UpdateRawText() *OCRRecordUpsert {
	u.SetExcluded(ocrrecord.FieldRawText)
	return u
}

// SetProcessedText sets the "processed_text" field.
func (u *OCRRecordUpsert) SetProcessedText(v json.RawMessage) *OCRRecordUpsert {
	u.Set(ocrrecord.FieldProcessedText, v)
	return u
}

// UpdateProcessedText sets the "processed_text" field to the value that was provided on create.
func (u *OCRRecordUpsert) UpdateProcessedText() *OCRRecordUpsert {
	u.SetExcluded(ocrrecord.FieldProcessedText)
	return u
}

// ClearProcessedText clears the value of the "processed_text" field.
func (u *OCRRecordUpsert) ClearProcessedText() *OCRRecordUpsert {
	u.SetNull(ocrrecord.FieldProcessedText)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *OCRRecordUpsert) SetMetadata(v json.RawMessage) *OCRRecordUpsert {
	u.Set(ocrrecord.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *OCRRecordUpsert) UpdateMetadata() *OCRRecordUpsert {
	u.SetExcluded(ocrrecord.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *OCRRecordUpsert) ClearMetadata() *OCRRecordUpsert {
	u.SetNull(ocrrecord.FieldMetadata)
	return u
}

// SetIsFloorPlan sets the "is_floor_plan" field.
func (u *OCRRecordUpsert) SetIsFloorPlan(v bool) *OCRRecordUpsert {
	u.Set(ocrrecord.FieldIsFloorPlan, v)
	return u
}

// UpdateIsFloorPlan sets the "is_floor_plan" field to the value that was provided on create.
func (u *OCRRecordUpsert) UpdateIsFloorPlan() *OCRRecordUpsert {
	u.SetExcluded(ocrrecord.FieldIsFloorPlan)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.OCRRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ocrrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OCRRecordUpsertOne) UpdateNewValues() *OCRRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(ocrrecord.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(ocrrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OCRRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OCRRecordUpsertOne) Ignore() *OCRRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OCRRecordUpsertOne) DoNothing() *OCRRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OCRRecordCreate.OnConflict
// documentation for more info.
func (u *OCRRecordUpsertOne) Update(set func(*OCRRecordUpsert)) *OCRRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OCRRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetBuildingID sets the "building_id" field.
func (u *OCRRecordUpsertOne) SetBuildingID(v uuid.UUID) *OCRRecordUpsertOne {
	return u.Update(func(s *OCRRecordUpsert) {
		s.SetBuildingID(v)
	})
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *OCRRecordUpsertOne) UpdateBuildingID() *OCRRecordUpsertOne {
	return u.Update(func(s *OCRRecordUpsert) {
		s.UpdateBuildingID()
	})
}

// SetRawText sets the "raw_text" field.
func (u *OCRRecordUpsertOne) SetRawText(v string) *OCRRecordUpsertOne {
	return u.Update(func(s *OCRRecordUpsert) {
		s.SetRawText(v)
	})
}

// UpdateRawText sets the "raw_text" field to the value that was provided on create.
func (u *OCRRecordUpsertOne) UpdateRawText() *OCRRecordUpsertOne {
	return u.Update(func(s *OCRRecordUpsert) {
		s.UpdateRawText()
	})
}

// SetProcessedText sets the "processed_text" field.
func (u *OCRRecordUpsertOne) SetProcessedText(v json.RawMessage) *OCRRecordUpsertOne {
	return u.Update(func(s *OCRRecordUpsert) {
		s.SetProcessedText(v)
	})
}

// UpdateProcessedText sets the "processed_text" field to the value that was provided on create.
func (u *OCRRecordUpsertOne) UpdateProcessedText() *OCRRecordUpsertOne {
	return u.Update(func(s *OCRRecordUpsert) {
		s.UpdateProcessedText()
	})
}

// ClearProcessedText clears the value of the "processed_text" field.
func (u *OCRRecordUpsertOne) ClearProcessedText() *OCRRecordUpsertOne {
	return u.Update(func(s *OCRRecordUpsert) {
		s.ClearProcessedText()
	})
}

// SetMetadata sets the "metadata" field.
func (u *OCRRecordUpsertOne) SetMetadata(v json.RawMessage) *OCRRecordUpsertOne {
	return u.Update(func(s *OCRRecordUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *OCRRecordUpsertOne) UpdateMetadata() *OCRRecordUpsertOne {
	return u.Update(func(s *OCRRecordUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *OCRRecordUpsertOne) ClearMetadata() *OCRRecordUpsertOne {
	return u.Update(func(s *OCRRecordUpsert) {
		s.ClearMetadata()
	})
}

// SetIsFloorPlan sets the "is_floor_plan" field.
func (u *OCRRecordUpsertOne) SetIsFloorPlan(v bool) *OCRRecordUpsertOne {
	return u.Update(func(s *OCRRecordUpsert) {
		s.SetIsFloorPlan(v)
	})
}

// UpdateIsFloorPlan sets the "is_floor_plan" field to the value that was provided on create.
func (u *OCRRecordUpsertOne) UpdateIsFloorPlan() *OCRRecordUpsertOne {
	return u.Update(func(s *OCRRecordUpsert) {
		s.UpdateIsFloorPlan()
	})
}

// Exec executes the query.
func (u *OCRRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OCRRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OCRRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OCRRecordUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: OCRRecordUpsertOne.ID is not supported by MySQL driver. Use OCRRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OCRRecordUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OCRRecordCreateBulk is the builder for creating many OCRRecord entities in bulk.
type OCRRecordCreateBulk struct {
	config
	err      error
	builders []*OCRRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the OCRRecord entities in the database.
func (orcb *OCRRecordCreateBulk) Save(ctx context.Context) ([]*OCRRecord, error) {
	if orcb.err != nil {
		return nil, orcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(orcb.builders))
	nodes := make([]*OCRRecord, len(orcb.builders))
	mutators := make([]Mutator, len(orcb.builders))
	for i := range orcb.builders {
		func(i int, root context.Context) {
			builder := orcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OCRRecordMutation)
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
					_, err = mutators[i+1].Mutate(root, orcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = orcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, orcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, orcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (orcb *OCRRecordCreateBulk) SaveX(ctx context.Context) []*OCRRecord {
	v, err := orcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (orcb *OCRRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := orcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (orcb *OCRRecordCreateBulk) ExecX(ctx context.Context) {
	if err := orcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OCRRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OCRRecordUpsert) {
//			SetBuildingID(v+v).
//		}).
//		Exec(ctx)
func (orcb *OCRRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *OCRRecordUpsertBulk {
	orcb.conflict = opts
	return &OCRRecordUpsertBulk{
		create: orcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OCRRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (orcb *OCRRecordCreateBulk) OnConflictColumns(columns ...string) *OCRRecordUpsertBulk {
	orcb.conflict = append(orcb.conflict, sql.ConflictColumns(columns...))
	return &OCRRecordUpsertBulk{
		create: orcb,
	}
}

// OCRRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of OCRRecord nodes.
type OCRRecordUpsertBulk struct {
	create *OCRRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OCRRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ocrrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OCRRecordUpsertBulk) UpdateNewValues() *OCRRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(ocrrecord.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(ocrrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OCRRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OCRRecordUpsertBulk) Ignore() *OCRRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OCRRecordUpsertBulk) DoNothing() *OCRRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OCRRecordCreateBulk.OnConflict
// documentation for more info.
func (u *OCRRecordUpsertBulk) Update(set func(*OCRRecordUpsert)) *OCRRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OCRRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetBuildingID sets the "building_id" field.
func (u *OCRRecordUpsertBulk) SetBuildingID(v uuid.UUID) *OCRRecordUpsertBulk {
	return u.Update(func(s *OCRRecordUpsert) {
		s.SetBuildingID(v)
	})
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *OCRRecordUpsertBulk) UpdateBuildingID() *OCRRecordUpsertBulk {
	return u.Update(func(s *OCRRecordUpsert) {
		s.UpdateBuildingID()
	})
}

// SetRawText sets the "raw_text" field.
func (u *OCRRecordUpsertBulk) SetRawText(v string) *OCRRecordUpsertBulk {
	return u.Update(func(s *OCRRecordUpsert) {
		s.SetRawText(v)
	})
}

// UpdateRawText sets the "raw_text" field to the value that was provided on create.
func (u *OCRRecordUpsertBulk) UpdateRawText() *OCRRecordUpsertBulk {
	return u.Update(func(s *OCRRecordUpsert) {
		s.UpdateRawText()
	})
}

// SetProcessedText sets the "processed_text" field.
func (u *OCRRecordUpsertBulk) SetProcessedText(v json.RawMessage) *OCRRecordUpsertBulk {
	return u.Update(func(s *OCRRecordUpsert) {
		s.SetProcessedText(v)
	})
}

// UpdateProcessedText sets the "processed_text" field to the value that was provided on create.
func (u *OCRRecordUpsertBulk) UpdateProcessedText() *OCRRecordUpsertBulk {
	return u.Update(func(s *OCRRecordUpsert) {
		s.UpdateProcessedText()
	})
}

// ClearProcessedText clears the value of the "processed_text" field.
func (u *OCRRecordUpsertBulk) ClearProcessedText() *OCRRecordUpsertBulk {
	return u.Update(func(s *OCRRecordUpsert) {
		s.ClearProcessedText()
	})
}

// SetMetadata sets the "metadata" field.
func (u *OCRRecordUpsertBulk) SetMetadata(v json.RawMessage) *OCRRecordUpsertBulk {
	return u.Update(func(s *OCRRecordUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *OCRRecordUpsertBulk) UpdateMetadata() *OCRRecordUpsertBulk {
	return u.Update(func(s *OCRRecordUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *OCRRecordUpsertBulk) ClearMetadata() *OCRRecordUpsertBulk {
	return u.Update(func(s *OCRRecordUpsert) {
		s.ClearMetadata()
	})
}

// SetIsFloorPlan sets the "is_floor_plan" field.
func (u *OCRRecordUpsertBulk) SetIsFloorPlan(v bool) *OCRRecordUpsertBulk {
	return u.Update(func(s *OCRRecordUpsert) {
		s.SetIsFloorPlan(v)
	})
}

// UpdateIsFloorPlan sets the "is_floor_plan" field to the value that was provided on create.
func (u *OCRRecordUpsertBulk) UpdateIsFloorPlan() *OCRRecordUpsertBulk {
	return u.Update(func(s *OCRRecordUpsert) {
		s.UpdateIsFloorPlan()
	})
}

// Exec executes the query.
func (u *OCRRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OCRRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OCRRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OCRRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
