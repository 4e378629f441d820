// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
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

// AuditFileCreate is the builder for creating a AuditFile entity.
type AuditFileCreate struct {
	config
	mutation *AuditFileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBuildingID sets the "building_id" field.
func (afc *AuditFileCreate) SetBuildingID(u uuid.UUID) *AuditFileCreate {
	afc.mutation.SetBuildingID(u)
	return afc
}

// SetFileURL sets the "file_url" field.
func (afc *AuditFileCreate) SetFileURL(s string) *AuditFileCreate {
	afc.mutation.SetFileURL(s)
	return afc
}

// SetFileName sets the "file_name" field.
func (afc *AuditFileCreate) SetFileName(s string) *AuditFileCreate {
	afc.mutation.SetFileName(s)
	return afc
}

// SetFileType sets the "file_type" field.
func (afc *AuditFileCreate) SetFileType(s string) *AuditFileCreate {
	afc.mutation.SetFileType(s)
	return afc
}

// SetFileSize sets the "file_size" field.
func (afc *AuditFileCreate) SetFileSize(i int) *AuditFileCreate {
	afc.mutation.SetFileSize(i)
	return afc
}

// SetProcessingStatus sets the "processing_status" field.
func (afc *AuditFileCreate) SetProcessingStatus(s string) *AuditFileCreate {
	afc.mutation.SetProcessingStatus(s)
	return afc
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (afc *AuditFileCreate) SetNillableProcessingStatus(s *string) *AuditFileCreate {
	if s != nil {
		afc.SetProcessingStatus(*s)
	}
	return afc
}

// SetOcrRecordID sets the "ocr_record_id" field.
func (afc *AuditFileCreate) SetOcrRecordID(u uuid.UUID) *AuditFileCreate {
	afc.mutation.SetOcrRecordID(u)
	return afc
}

// SetNillableOcrRecordID sets the "ocr_record_id" field if the given value is not nil.
func (afc *AuditFileCreate) SetNillableOcrRecordID(u *uuid.UUID) *AuditFileCreate {
	if u != nil {
		afc.SetOcrRecordID(*u)
	}
	return afc
}

// SetUploadedAt sets the "uploaded_at" field.
func (afc *AuditFileCreate) SetUploadedAt(t time.Time) *AuditFileCreate {
	afc.mutation.SetUploadedAt(t)
	return afc
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (afc *AuditFileCreate) SetNillableUploadedAt(t *time.Time) *AuditFileCreate {
	if t != nil {
		afc.SetUploadedAt(*t)
	}
	return afc
}

// SetID sets the "id" field.
func (afc *AuditFileCreate) SetID(u uuid.UUID) *AuditFileCreate {
	afc.mutation.SetID(u)
	return afc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (afc *AuditFileCreate) SetNillableID(u *uuid.UUID) *AuditFileCreate {
	if u != nil {
		afc.SetID(*u)
	}
	return afc
}

// SetBuilding sets the "building" edge to the Building entity.
func (afc *AuditFileCreate) SetBuilding(b *Building) *AuditFileCreate {
	return afc.SetBuildingID(b.ID)
}

// SetOcrID sets the "ocr" edge to the OCRRecord entity by ID.
func (afc *AuditFileCreate) SetOcrID(id uuid.UUID) *AuditFileCreate {
	afc.mutation.SetOcrID(id)
	return afc
}

// SetNillableOcrID sets the "ocr" edge to the OCRRecord entity by ID if the given value is not nil.
func (afc *AuditFileCreate) SetNillableOcrID(id *uuid.UUID) *AuditFileCreate {
	if id != nil {
		afc = afc.SetOcrID(*id)
	}
	return afc
}

// SetOcr sets the "ocr" edge to the OCRRecord entity.
func (afc *AuditFileCreate) SetOcr(o *OCRRecord) *AuditFileCreate {
	return afc.SetOcrID(o.ID)
}

// Mutation returns the AuditFileMutation object of the builder.
func (afc *AuditFileCreate) Mutation() *AuditFileMutation {
	return afc.mutation
}

// Save creates the AuditFile in the database.
func (afc *AuditFileCreate) Save(ctx context.Context) (*AuditFile, error) {
	afc.defaults()
	return withHooks(ctx, afc.sqlSave, afc.mutation, afc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (afc *AuditFileCreate) SaveX(ctx context.Context) *AuditFile {
	v, err := afc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (afc *AuditFileCreate) Exec(ctx context.Context) error {
	_, err := afc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (afc *AuditFileCreate) ExecX(ctx context.Context) {
	if err := afc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (afc *AuditFileCreate) defaults() {
	if _, ok := afc.mutation.ProcessingStatus(); !ok {
		v := auditfile.DefaultProcessingStatus
		afc.mutation.SetProcessingStatus(v)
	}
	if _, ok := afc.mutation.UploadedAt(); !ok {
		v := auditfile.DefaultUploadedAt()
		afc.mutation.SetUploadedAt(v)
	}
	if _, ok := afc.mutation.ID(); !ok {
		v := auditfile.DefaultID()
		afc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (afc *AuditFileCreate) check() error {
	if _, ok := afc.mutation.BuildingID(); !ok {
		return &ValidationError{Name: "building_id", err: errors.New(`ent: missing required field "AuditFile.building_id"`)}
	}
	if _, ok := afc.mutation.FileURL(); !ok {
		return &ValidationError{Name: "file_url", err: errors.New(`ent: missing required field "AuditFile.file_url"`)}
	}
	if v, ok := afc.mutation.FileURL(); ok {
		if err := auditfile.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`ent: validator failed for field "AuditFile.file_url": %w`, err)}
		}
	}
	if _, ok := afc.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "AuditFile.file_name"`)}
	}
	if v, ok := afc.mutation.FileName(); ok {
		if err := auditfile.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "AuditFile.file_name": %w`, err)}
		}
	}
	if _, ok := afc.mutation.FileType(); !ok {
		return &ValidationError{Name: "file_type", err: errors.New(`ent: missing required field "AuditFile.file_type"`)}
	}
	if v, ok := afc.mutation.FileType(); ok {
		if err := auditfile.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "AuditFile.file_type": %w`, err)}
		}
	}
	if _, ok := afc.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "AuditFile.file_size"`)}
	}
	if v, ok := afc.mutation.FileSize(); ok {
		if err := auditfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "AuditFile.file_size": %w`, err)}
		}
	}
	if _, ok := afc.mutation.ProcessingStatus(); !ok {
		return &ValidationError{Name: "processing_status", err: errors.New(`ent: missing required field "AuditFile.processing_status"`)}
	}
	if _, ok := afc.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "AuditFile.uploaded_at"`)}
	}
	if len(afc.mutation.BuildingIDs()) == 0 {
		return &ValidationError{Name: "building", err: errors.New(`ent: missing required edge "AuditFile.building"`)}
	}
	return nil
}

func (afc *AuditFileCreate) sqlSave(ctx context.Context) (*AuditFile, error) {
	if err := afc.check(); err != nil {
		return nil, err
	}
	_node, _spec := afc.createSpec()
	if err := sqlgraph.CreateNode(ctx, afc.driver, _spec); err != nil {
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
	afc.mutation.id = &_node.ID
	afc.mutation.done = true
	return _node, nil
}

func (afc *AuditFileCreate) createSpec() (*AuditFile, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditFile{config: afc.config}
		_spec = sqlgraph.NewCreateSpec(auditfile.Table, sqlgraph.NewFieldSpec(auditfile.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = afc.conflict
	if id, ok := afc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := afc.mutation.FileURL(); ok {
		_spec.SetField(auditfile.FieldFileURL, field.TypeString, value)
		_node.FileURL = value
	}
	if value, ok := afc.mutation.FileName(); ok {
		_spec.SetField(auditfile.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := afc.mutation.FileType(); ok {
		_spec.SetField(auditfile.FieldFileType, field.TypeString, value)
		_node.FileType = value
	}
	if value, ok := afc.mutation.FileSize(); ok {
		_spec.SetField(auditfile.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := afc.mutation.ProcessingStatus(); ok {
		_spec.SetField(auditfile.FieldProcessingStatus, field.TypeString, value)
		_node.ProcessingStatus = value
	}
	if value, ok := afc.mutation.OcrRecordID(); ok {
		_spec.SetField(auditfile.FieldOcrRecordID, field.TypeUUID, value)
		_node.OcrRecordID = &value
	}
	if value, ok := afc.mutation.UploadedAt(); ok {
		_spec.SetField(auditfile.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := afc.mutation.BuildingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditfile.BuildingTable,
			Columns: []string{auditfile.BuildingColumn},
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
	if nodes := afc.mutation.OcrIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   auditfile.OcrTable,
			Columns: []string{auditfile.OcrColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrrecord.FieldID, field.TypeUUID),
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
//	client.AuditFile.Create().
//		SetBuildingID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditFileUpsert) {
//			SetBuildingID(v+v).
//		}).
//		Exec(ctx)
func (afc *AuditFileCreate) OnConflict(opts ...sql.ConflictOption) *AuditFileUpsertOne {
	afc.conflict = opts
	return &AuditFileUpsertOne{
		create: afc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (afc *AuditFileCreate) OnConflictColumns(columns ...string) *AuditFileUpsertOne {
	afc.conflict = append(afc.conflict, sql.ConflictColumns(columns...))
	return &AuditFileUpsertOne{
		create: afc,
	}
}

type (
	// AuditFileUpsertOne is the builder for "upsert"-ing
	//  one AuditFile node.
	AuditFileUpsertOne struct {
		create *AuditFileCreate
	}

	// AuditFileUpsert is the "OnConflict" setter.
	AuditFileUpsert struct {
		*sql.UpdateSet
	}
)

// SetBuildingID sets the "building_id" field.
func (u *AuditFileUpsert) SetBuildingID(v uuid.UUID) *AuditFileUpsert {
	u.Set(auditfile.FieldBuildingID, v)
	return u
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *AuditFileUpsert) UpdateBuildingID() *AuditFileUpsert {
	u.SetExcluded(auditfile.FieldBuildingID)
	return u
}

// SetFileURL sets the "file_url" field.
func (u *AuditFileUpsert) SetFileURL(v string) *AuditFileUpsert {
	u.Set(auditfile.FieldFileURL, v)
	return u
}

// UpdateFileURL sets the "file_url" field to the value that was provided on create.
func (u *AuditFileUpsert) UpdateFileURL() *AuditFileUpsert {
	u.SetExcluded(auditfile.FieldFileURL)
	return u
}

// SetFileName sets the "file_name" field.
func (u *AuditFileUpsert) SetFileName(v string) *AuditFileUpsert {
	u.Set(auditfile.FieldFileName, v)
	return u
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *AuditFileUpsert) UpdateFileName() *AuditFileUpsert {
	u.SetExcluded(auditfile.FieldFileName)
	return u
}

// SetFileType sets the "file_type" field.
func (u *AuditFileUpsert) SetFileType(v string) *AuditFileUpsert {
	u.Set(auditfile.FieldFileType, v)
	return u
}

// UpdateFileType sets the "file_type" field to the value that was provided on create.
func (u *AuditFileUpsert) UpdateFileType() *AuditFileUpsert {
	u.SetExcluded(auditfile.FieldFileType)
	return u
}

// SetFileSize sets the "file_size" field.
func (u *AuditFileUpsert) SetFileSize(v int) *AuditFileUpsert {
	u.Set(auditfile.FieldFileSize, v)
	return u
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *AuditFileUpsert) UpdateFileSize() *AuditFileUpsert {
	u.SetExcluded(auditfile.FieldFileSize)
	return u
}

// AddFileSize adds v to the "file_size" field.
func (u *AuditFileUpsert) AddFileSize(v int) *AuditFileUpsert {
	u.Add(auditfile.FieldFileSize, v)
	return u
}

// SetProcessingStatus sets the "processing_status" field.
func (u *AuditFileUpsert) SetProcessingStatus(v string) *AuditFileUpsert {
	u.Set(auditfile.FieldProcessingStatus, v)
	return u
}

// UpdateProcessingStatus sets the "processing_status" field to the value that was provided on create.
func (u *AuditFileUpsert) UpdateProcessingStatus() *AuditFileUpsert {
	u.SetExcluded(auditfile.FieldProcessingStatus)
	return u
}

// SetOcrRecordID sets the "ocr_record_id" field.
func (u *AuditFileUpsert) SetOcrRecordID(v uuid.UUID) *AuditFileUpsert {
	u.Set(auditfile.FieldOcrRecordID, v)
	return u
}

// UpdateOcrRecordID sets the "ocr_record_id" field to the value that was provided on create.
func (u *AuditFileUpsert) UpdateOcrRecordID() *AuditFileUpsert {
	u.SetExcluded(auditfile.FieldOcrRecordID)
	return u
}

// ClearOcrRecordID clears the value of the "ocr_record_id" field.
func (u *AuditFileUpsert) ClearOcrRecordID() *AuditFileUpsert {
	u.SetNull(auditfile.FieldOcrRecordID)
	return u
}

// SetUploadedAt sets the "uploaded_at" field.
func (u *AuditFileUpsert) SetUploadedAt(v time.Time) *AuditFileUpsert {
	u.Set(auditfile.FieldUploadedAt, v)
	return u
}

// UpdateUploadedAt sets the "uploaded_at" field to the value that was provided on create.
func (u *AuditFileUpsert) UpdateUploadedAt() *AuditFileUpsert {
	u.SetExcluded(auditfile.FieldUploadedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AuditFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditfile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditFileUpsertOne) UpdateNewValues() *AuditFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(auditfile.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditFile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AuditFileUpsertOne) Ignore() *AuditFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditFileUpsertOne) DoNothing() *AuditFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditFileCreate.OnConflict
// documentation for more info.
func (u *AuditFileUpsertOne) Update(set func(*AuditFileUpsert)) *AuditFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetBuildingID sets the "building_id" field.
func (u *AuditFileUpsertOne) SetBuildingID(v uuid.UUID) *AuditFileUpsertOne {
	return u.Update(func(s *AuditFileUpsert) {
		s.SetBuildingID(v)
	})
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *AuditFileUpsertOne) UpdateBuildingID() *AuditFileUpsertOne {
	return u.Update(func(s *AuditFileUpsert) {
		s.UpdateBuildingID()
	})
}

// SetFileURL sets the "file_url" field.
func (u *AuditFileUpsertOne) SetFileURL(v string) *AuditFileUpsertOne {
	return u.Update(func(s *AuditFileUpsert) {
		s.SetFileURL(v)
	})
}

// UpdateFileURL sets the "file_url" field to the value that was provided on create.
func (u *AuditFileUpsertOne) UpdateFileURL() *AuditFileUpsertOne {
	return u.Update(func(s *AuditFileUpsert) {
		s.UpdateFileURL()
	})
}

// SetFileName sets the "file_name" field.
func (u *AuditFileUpsertOne) SetFileName(v string) *AuditFileUpsertOne {
	return u.Update(func(s *AuditFileUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *AuditFileUpsertOne) UpdateFileName() *AuditFileUpsertOne {
	return u.Update(func(s *AuditFileUpsert) {
		s.UpdateFileName()
	})
}

// SetFileType sets the "file_type" field.
func (u *AuditFileUpsertOne) SetFileType(v string) *AuditFileUpsertOne {
	return u.Update(func(s *AuditFileUpsert) {
		s.SetFileType(v)
	})
}

// UpdateFileType sets the "file_type" field to the value that was provided on create.
func (u *AuditFileUpsertOne) UpdateFileType() *AuditFileUpsertOne {
	return u.Update(func(s *AuditFileUpsert) {
		s.UpdateFileType()
	})
}

// SetFileSize sets the "file_size" field.
func (u *AuditFileUpsertOne) SetFileSize(v int) *AuditFileUpsertOne {
	return u.Update(func(s *AuditFileUpsert) {
		s.SetFileSize(v)
	})
}

// AddFileSize adds v to the "file_size" field.
func (u *AuditFileUpsertOne) AddFileSize(v int) *AuditFileUpsertOne {
	return u.Update(func(s *AuditFileUpsert) {
		s.AddFileSize(v)
	})
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *AuditFileUpsertOne) UpdateFileSize() *AuditFileUpsertOne {
	return u.Update(func(s *AuditFileUpsert) {
		s.UpdateFileSize()
	})
}

// SetProcessingStatus sets the "processing_status" field.
func (u *AuditFileUpsertOne) SetProcessingStatus(v string) *AuditFileUpsertOne {
	return u.Update(func(s *AuditFileUpsert) {
		s.SetProcessingStatus(v)
	})
}

// UpdateProcessingStatus sets the "processing_status" field to the value that was provided on create.
func (u *AuditFileUpsertOne) UpdateProcessingStatus() *AuditFileUpsertOne {
	return u.Update(func(s *AuditFileUpsert) {
		s.UpdateProcessingStatus()
	})
}

// SetOcrRecordID sets the "ocr_record_id" field.
func (u *AuditFileUpsertOne) SetOcrRecordID(v uuid.UUID) *AuditFileUpsertOne {
	return u.Update(func(s *AuditFileUpsert) {
		s.SetOcrRecordID(v)
	})
}

// UpdateOcrRecordID sets the "ocr_record_id" field to the value that was provided on create.
func (u *AuditFileUpsertOne) UpdateOcrRecordID() *AuditFileUpsertOne {
	return u.Update(func(s *AuditFileUpsert) {
		s.UpdateOcrRecordID()
	})
}

// ClearOcrRecordID clears the value of the "ocr_record_id" field.
func (u *AuditFileUpsertOne) ClearOcrRecordID() *AuditFileUpsertOne {
	return u.Update(func(s *AuditFileUpsert) {
		s.ClearOcrRecordID()
	})
}

// SetUploadedAt sets the "uploaded_at" field.
func (u *AuditFileUpsertOne) SetUploadedAt(v time.Time) *AuditFileUpsertOne {
	return u.Update(func(s *AuditFileUpsert) {
		s.SetUploadedAt(v)
	})
}

// UpdateUploadedAt sets the "uploaded_at" field to the value that was provided on create.
func (u *AuditFileUpsertOne) UpdateUploadedAt() *AuditFileUpsertOne {
	return u.Update(func(s *AuditFileUpsert) {
		s.UpdateUploadedAt()
	})
}

// Exec executes the query.
func (u *AuditFileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditFileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditFileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AuditFileUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AuditFileUpsertOne.ID is not supported by MySQL driver. Use AuditFileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AuditFileUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AuditFileCreateBulk is the builder for creating many AuditFile entities in bulk.
type AuditFileCreateBulk struct {
	config
	err      error
	builders []*AuditFileCreate
	conflict []sql.ConflictOption
}

// Save creates the AuditFile entities in the database.
func (afcb *AuditFileCreateBulk) Save(ctx context.Context) ([]*AuditFile, error) {
	if afcb.err != nil {
		return nil, afcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(afcb.builders))
	nodes := make([]*AuditFile, len(afcb.builders))
	mutators := make([]Mutator, len(afcb.builders))
	for i := range afcb.builders {
		func(i int, root context.Context) {
			builder := afcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditFileMutation)
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
					_, err = mutators[i+1].Mutate(root, afcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = afcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, afcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, afcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (afcb *AuditFileCreateBulk) SaveX(ctx context.Context) []*AuditFile {
	v, err := afcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (afcb *AuditFileCreateBulk) Exec(ctx context.Context) error {
	_, err := afcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (afcb *AuditFileCreateBulk) ExecX(ctx context.Context) {
	if err := afcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditFile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditFileUpsert) {
//			SetBuildingID(v+v).
//		}).
//		Exec(ctx)
func (afcb *AuditFileCreateBulk) OnConflict(opts ...sql.ConflictOption) *AuditFileUpsertBulk {
	afcb.conflict = opts
	return &AuditFileUpsertBulk{
		create: afcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (afcb *AuditFileCreateBulk) OnConflictColumns(columns ...string) *AuditFileUpsertBulk {
	afcb.conflict = append(afcb.conflict, sql.ConflictColumns(columns...))
	return &AuditFileUpsertBulk{
		create: afcb,
	}
}

// AuditFileUpsertBulk is the builder for "upsert"-ing
// a bulk of AuditFile nodes.
type AuditFileUpsertBulk struct {
	create *AuditFileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AuditFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditfile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditFileUpsertBulk) UpdateNewValues() *AuditFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(auditfile.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditFile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AuditFileUpsertBulk) Ignore() *AuditFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditFileUpsertBulk) DoNothing() *AuditFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditFileCreateBulk.OnConflict
// documentation for more info.
func (u *AuditFileUpsertBulk) Update(set func(*AuditFileUpsert)) *AuditFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetBuildingID sets the "building_id" field.
func (u *AuditFileUpsertBulk) SetBuildingID(v uuid.UUID) *AuditFileUpsertBulk {
	return u.Update(func(s *AuditFileUpsert) {
		s.SetBuildingID(v)
	})
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *AuditFileUpsertBulk) UpdateBuildingID() *AuditFileUpsertBulk {
	return u.Update(func(s *AuditFileUpsert) {
		s.UpdateBuildingID()
	})
}

// SetFileURL sets the "file_url" field.
func (u *AuditFileUpsertBulk) SetFileURL(v string) *AuditFileUpsertBulk {
	return u.Update(func(s *AuditFileUpsert) {
		s.SetFileURL(v)
	})
}

// UpdateFileURL sets the "file_url" field to the value that was provided on create.
func (u *AuditFileUpsertBulk) UpdateFileURL() *AuditFileUpsertBulk {
	return u.Update(func(s *AuditFileUpsert) {
		s.UpdateFileURL()
	})
}

// SetFileName sets the "file_name" field.
func (u *AuditFileUpsertBulk) SetFileName(v string) *AuditFileUpsertBulk {
	return u.Update(func(s *AuditFileUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *AuditFileUpsertBulk) UpdateFileName() *AuditFileUpsertBulk {
	return u.Update(func(s *AuditFileUpsert) {
		s.UpdateFileName()
	})
}

// SetFileType sets the "file_type" field.
func (u *AuditFileUpsertBulk) SetFileType(v string) *AuditFileUpsertBulk {
	return u.Update(func(s *AuditFileUpsert) {
		s.SetFileType(v)
	})
}

// UpdateFileType sets the "file_type" field to the value that was provided on create.
func (u *AuditFileUpsertBulk) UpdateFileType() *AuditFileUpsertBulk {
	return u.Update(func(s *AuditFileUpsert) {
		s.UpdateFileType()
	})
}

// SetFileSize sets the "file_size" field.
func (u *AuditFileUpsertBulk) SetFileSize(v int) *AuditFileUpsertBulk {
	return u.Update(func(s *AuditFileUpsert) {
		s.SetFileSize(v)
	})
}

// AddFileSize adds v to the "file_size" field.
func (u *AuditFileUpsertBulk) AddFileSize(v int) *AuditFileUpsertBulk {
	return u.Update(func(s *AuditFileUpsert) {
		s.AddFileSize(v)
	})
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *AuditFileUpsertBulk) UpdateFileSize() *AuditFileUpsertBulk {
	return u.Update(func(s *AuditFileUpsert) {
		s.UpdateFileSize()
	})
}

// SetProcessingStatus sets the "processing_status" field.
func (u *AuditFileUpsertBulk) SetProcessingStatus(v string) *AuditFileUpsertBulk {
	return u.Update(func(s *AuditFileUpsert) {
		s.SetProcessingStatus(v)
	})
}

// UpdateProcessingStatus sets the "processing_status" field to the value that was provided on create.
func (u *AuditFileUpsertBulk) UpdateProcessingStatus() *AuditFileUpsertBulk {
	return u.Update(func(s *AuditFileUpsert) {
		s.UpdateProcessingStatus()
	})
}

// SetOcrRecordID sets the "ocr_record_id" field.
func (u *AuditFileUpsertBulk) SetOcrRecordID(v uuid.UUID) *AuditFileUpsertBulk {
	return u.Update(func(s *AuditFileUpsert) {
		s.SetOcrRecordID(v)
	})
}

// UpdateOcrRecordID sets the "ocr_record_id" field to the value that was provided on create.
func (u *AuditFileUpsertBulk) UpdateOcrRecordID() *AuditFileUpsertBulk {
	return u.Update(func(s *AuditFileUpsert) {
		s.UpdateOcrRecordID()
	})
}

// ClearOcrRecordID clears the value of the "ocr_record_id" field.
func (u *AuditFileUpsertBulk) ClearOcrRecordID() *AuditFileUpsertBulk {
	return u.Update(func(s *AuditFileUpsert) {
		s.ClearOcrRecordID()
	})
}

// SetUploadedAt sets the "uploaded_at" field.
func (u *AuditFileUpsertBulk) SetUploadedAt(v time.Time) *AuditFileUpsertBulk {
	return u.Update(func(s *AuditFileUpsert) {
		s.SetUploadedAt(v)
	})
}

// UpdateUploadedAt sets the "uploaded_at" field to the value that was provided on create.
func (u *AuditFileUpsertBulk) UpdateUploadedAt() *AuditFileUpsertBulk {
	return u.Update(func(s *AuditFileUpsert) {
		s.UpdateUploadedAt()
	})
}

// Exec executes the query.
func (u *AuditFileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AuditFileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditFileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditFileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
