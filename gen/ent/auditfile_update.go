// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hrunx/es2square/gen/ent/auditfile"
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/ocrrecord"
	"github.com/hrunx/es2square/gen/ent/predicate"
)

// AuditFileUpdate is the builder for updating AuditFile entities.
type AuditFileUpdate struct {
	config
	hooks    []Hook
	mutation *AuditFileMutation
}

// Where appends a list predicates to the AuditFileUpdate builder.
func (afu *AuditFileUpdate) Where(ps ...predicate.AuditFile) *AuditFileUpdate {
	afu.mutation.Where(ps...)
	return afu
}

// SetBuildingID sets the "building_id" field.
func (afu *AuditFileUpdate) SetBuildingID(u uuid.UUID) *AuditFileUpdate {
	afu.mutation.SetBuildingID(u)
	return afu
}

// SetNillableBuildingID sets the "building_id" field if the given value is not nil.
func (afu *AuditFileUpdate) SetNillableBuildingID(u *uuid.UUID) *AuditFileUpdate {
	if u != nil {
		afu.SetBuildingID(*u)
	}
	return afu
}

// SetFileURL sets the "file_url" field.
func (afu *AuditFileUpdate) SetFileURL(s string) *AuditFileUpdate {
	afu.mutation.SetFileURL(s)
	return afu
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (afu *AuditFileUpdate) SetNillableFileURL(s *string) *AuditFileUpdate {
	if s != nil {
		afu.SetFileURL(*s)
	}
	return afu
}

// SetFileName sets the "file_name" field.
func (afu *AuditFileUpdate) SetFileName(s string) *AuditFileUpdate {
	afu.mutation.SetFileName(s)
	return afu
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (afu *AuditFileUpdate) SetNillableFileName(s *string) *AuditFileUpdate {
	if s != nil {
		afu.SetFileName(*s)
	}
	return afu
}

// SetFileType sets the "file_type" field.
func (afu *AuditFileUpdate) SetFileType(s string) *AuditFileUpdate {
	afu.mutation.SetFileType(s)
	return afu
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (afu *AuditFileUpdate) SetNillableFileType(s *string) *AuditFileUpdate {
	if s != nil {
		afu.SetFileType(*s)
	}
	return afu
}

// SetFileSize sets the "file_size" field.
func (afu *AuditFileUpdate) SetFileSize(i int) *AuditFileUpdate {
	afu.mutation.ResetFileSize()
	afu.mutation.SetFileSize(i)
	return afu
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (afu *AuditFileUpdate) SetNillableFileSize(i *int) *AuditFileUpdate {
	if i != nil {
		afu.SetFileSize(*i)
	}
	return afu
}

// AddFileSize adds i to the "file_size" field.
func (afu *AuditFileUpdate) AddFileSize(i int) *AuditFileUpdate {
	afu.mutation.AddFileSize(i)
	return afu
}

// SetProcessingStatus sets the "processing_status" field.
func (afu *AuditFileUpdate) SetProcessingStatus(s string) *AuditFileUpdate {
	afu.mutation.SetProcessingStatus(s)
	return afu
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (afu *AuditFileUpdate) SetNillableProcessingStatus(s *string) *AuditFileUpdate {
	if s != nil {
		afu.SetProcessingStatus(*s)
	}
	return afu
}

// SetOcrRecordID sets the "ocr_record_id" field.
func (afu *AuditFileUpdate) SetOcrRecordID(u uuid.UUID) *AuditFileUpdate {
	afu.mutation.SetOcrRecordID(u)
	return afu
}

// SetNillableOcrRecordID sets the "ocr_record_id" field if the given value is not nil.
func (afu *AuditFileUpdate) SetNillableOcrRecordID(u *uuid.UUID) *AuditFileUpdate {
	if u != nil {
		afu.SetOcrRecordID(*u)
	}
	return afu
}

// ClearOcrRecordID clears the value of the "ocr_record_id" field.
func (afu *AuditFileUpdate) ClearOcrRecordID() *AuditFileUpdate {
	afu.mutation.ClearOcrRecordID()
	return afu
}

// SetUploadedAt sets the "uploaded_at" field.
func (afu *AuditFileUpdate) SetUploadedAt(t time.Time) *AuditFileUpdate {
	afu.mutation.SetUploadedAt(t)
	return afu
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (afu *AuditFileUpdate) SetNillableUploadedAt(t *time.Time) *AuditFileUpdate {
	if t != nil {
		afu.SetUploadedAt(*t)
	}
	return afu
}

// SetBuilding sets the "building" edge to the Building entity.
func (afu *AuditFileUpdate) SetBuilding(b *Building) *AuditFileUpdate {
	return afu.SetBuildingID(b.ID)
}

// SetOcrID sets the "ocr" edge to the OCRRecord entity by ID.
func (afu *AuditFileUpdate) SetOcrID(id uuid.UUID) *AuditFileUpdate {
	afu.mutation.SetOcrID(id)
	return afu
}

// SetNillableOcrID sets the "ocr" edge to the OCRRecord entity by ID if the given value is not nil.
func (afu *AuditFileUpdate) SetNillableOcrID(id *uuid.UUID) *AuditFileUpdate {
	if id != nil {
		afu = afu.SetOcrID(*id)
	}
	return afu
}

// SetOcr sets the "ocr" edge to the OCRRecord entity.
func (afu *AuditFileUpdate) SetOcr(o *OCRRecord) *AuditFileUpdate {
	return afu.SetOcrID(o.ID)
}

// Mutation returns the AuditFileMutation object of the builder.
func (afu *AuditFileUpdate) Mutation() *AuditFileMutation {
	return afu.mutation
}

// ClearBuilding clears the "building" edge to the Building entity.
func (afu *AuditFileUpdate) ClearBuilding() *AuditFileUpdate {
	afu.mutation.ClearBuilding()
	return afu
}

// ClearOcr clears the "ocr" edge to the OCRRecord entity.
func (afu *AuditFileUpdate) ClearOcr() *AuditFileUpdate {
	afu.mutation.ClearOcr()
	return afu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (afu *AuditFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, afu.sqlSave, afu.mutation, afu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (afu *AuditFileUpdate) SaveX(ctx context.Context) int {
	affected, err := afu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (afu *AuditFileUpdate) Exec(ctx context.Context) error {
	_, err := afu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (afu *AuditFileUpdate) ExecX(ctx context.Context) {
	if err := afu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (afu *AuditFileUpdate) check() error {
	if v, ok := afu.mutation.FileURL(); ok {
		if err := auditfile.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`ent: validator failed for field "AuditFile.file_url": %w`, err)}
		}
	}
	if v, ok := afu.mutation.FileName(); ok {
		if err := auditfile.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "AuditFile.file_name": %w`, err)}
		}
	}
	if v, ok := afu.mutation.FileType(); ok {
		if err := auditfile.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "AuditFile.file_type": %w`, err)}
		}
	}
	if v, ok := afu.mutation.FileSize(); ok {
		if err := auditfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "AuditFile.file_size": %w`, err)}
		}
	}
	if afu.mutation.BuildingCleared() && len(afu.mutation.BuildingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditFile.building"`)
	}
	return nil
}

func (afu *AuditFileUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := afu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditfile.Table, auditfile.Columns, sqlgraph.NewFieldSpec(auditfile.FieldID, field.TypeUUID))
	if ps := afu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := afu.mutation.FileURL(); ok {
		_spec.SetField(auditfile.FieldFileURL, field.TypeString, value)
	}
	if value, ok := afu.mutation.FileName(); ok {
		_spec.SetField(auditfile.FieldFileName, field.TypeString, value)
	}
	if value, ok := afu.mutation.FileType(); ok {
		_spec.SetField(auditfile.FieldFileType, field.TypeString, value)
	}
	if value, ok := afu.mutation.FileSize(); ok {
		_spec.SetField(auditfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := afu.mutation.AddedFileSize(); ok {
		_spec.AddField(auditfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := afu.mutation.ProcessingStatus(); ok {
		_spec.SetField(auditfile.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := afu.mutation.OcrRecordID(); ok {
		_spec.SetField(auditfile.FieldOcrRecordID, field.TypeUUID, value)
	}
	if afu.mutation.OcrRecordIDCleared() {
		_spec.ClearField(auditfile.FieldOcrRecordID, field.TypeUUID)
	}
	if value, ok := afu.mutation.UploadedAt(); ok {
		_spec.SetField(auditfile.FieldUploadedAt, field.TypeTime, value)
	}
	if afu.mutation.BuildingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := afu.mutation.BuildingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if afu.mutation.OcrCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := afu.mutation.OcrIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, afu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	afu.mutation.done = true
	return n, nil
}

// AuditFileUpdateOne is the builder for updating a single AuditFile entity.
type AuditFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditFileMutation
}

// SetBuildingID sets the "building_id" field.
func (afuo *AuditFileUpdateOne) SetBuildingID(u uuid.UUID) *AuditFileUpdateOne {
	afuo.mutation.SetBuildingID(u)
	return afuo
}

// SetNillableBuildingID sets the "building_id" field if the given value is not nil.
func (afuo *AuditFileUpdateOne) SetNillableBuildingID(u *uuid.UUID) *AuditFileUpdateOne {
	if u != nil {
		afuo.SetBuildingID(*u)
	}
	return afuo
}

// SetFileURL sets the "file_url" field.
func (afuo *AuditFileUpdateOne) SetFileURL(s string) *AuditFileUpdateOne {
	afuo.mutation.SetFileURL(s)
	return afuo
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (afuo *AuditFileUpdateOne) SetNillableFileURL(s *string) *AuditFileUpdateOne {
	if s != nil {
		afuo.SetFileURL(*s)
	}
	return afuo
}

// SetFileName sets the "file_name" field.
func (afuo *AuditFileUpdateOne) SetFileName(s string) *AuditFileUpdateOne {
	afuo.mutation.SetFileName(s)
	return afuo
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (afuo *AuditFileUpdateOne) SetNillableFileName(s *string) *AuditFileUpdateOne {
	if s != nil {
		afuo.SetFileName(*s)
	}
	return afuo
}

// SetFileType sets the "file_type" field.
func (afuo *AuditFileUpdateOne) SetFileType(s string) *AuditFileUpdateOne {
	afuo.mutation.SetFileType(s)
	return afuo
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (afuo *AuditFileUpdateOne) SetNillableFileType(s *string) *AuditFileUpdateOne {
	if s != nil {
		afuo.SetFileType(*s)
	}
	return afuo
}

// SetFileSize sets the "file_size" field.
func (afuo *AuditFileUpdateOne) SetFileSize(i int) *AuditFileUpdateOne {
	afuo.mutation.ResetFileSize()
	afuo.mutation.SetFileSize(i)
	return afuo
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (afuo *AuditFileUpdateOne) SetNillableFileSize(i *int) *AuditFileUpdateOne {
	if i != nil {
		afuo.SetFileSize(*i)
	}
	return afuo
}

// AddFileSize adds i to the "file_size" field.
func (afuo *AuditFileUpdateOne) AddFileSize(i int) *AuditFileUpdateOne {
	afuo.mutation.AddFileSize(i)
	return afuo
}

// SetProcessingStatus sets the "processing_status" field.
func (afuo *AuditFileUpdateOne) SetProcessingStatus(s string) *AuditFileUpdateOne {
	afuo.mutation.SetProcessingStatus(s)
	return afuo
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (afuo *AuditFileUpdateOne) SetNillableProcessingStatus(s *string) *AuditFileUpdateOne {
	if s != nil {
		afuo.SetProcessingStatus(*s)
	}
	return afuo
}

// SetOcrRecordID sets the "ocr_record_id" field.
func (afuo *AuditFileUpdateOne) SetOcrRecordID(u uuid.UUID) *AuditFileUpdateOne {
	afuo.mutation.SetOcrRecordID(u)
	return afuo
}

// SetNillableOcrRecordID sets the "ocr_record_id" field if the given value is not nil.
func (afuo *AuditFileUpdateOne) SetNillableOcrRecordID(u *uuid.UUID) *AuditFileUpdateOne {
	if u != nil {
		afuo.SetOcrRecordID(*u)
	}
	return afuo
}

// ClearOcrRecordID clears the value of the "ocr_record_id" field.
func (afuo *AuditFileUpdateOne) ClearOcrRecordID() *AuditFileUpdateOne {
	afuo.mutation.ClearOcrRecordID()
	return afuo
}

// SetUploadedAt sets the "uploaded_at" field.
func (afuo *AuditFileUpdateOne) SetUploadedAt(t time.Time) *AuditFileUpdateOne {
	afuo.mutation.SetUploadedAt(t)
	return afuo
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (afuo *AuditFileUpdateOne) SetNillableUploadedAt(t *time.Time) *AuditFileUpdateOne {
	if t != nil {
		afuo.SetUploadedAt(*t)
	}
	return afuo
}

// SetBuilding sets the "building" edge to the Building entity.
func (afuo *AuditFileUpdateOne) SetBuilding(b *Building) *AuditFileUpdateOne {
	return afuo.SetBuildingID(b.ID)
}

// SetOcrID sets the "ocr" edge to the OCRRecord entity by ID.
func (afuo *AuditFileUpdateOne) SetOcrID(id uuid.UUID) *AuditFileUpdateOne {
	afuo.mutation.SetOcrID(id)
	return afuo
}

// SetNillableOcrID sets the "ocr" edge to the OCRRecord entity by ID if the given value is not nil.
func (afuo *AuditFileUpdateOne) SetNillableOcrID(id *uuid.UUID) *AuditFileUpdateOne {
	if id != nil {
		afuo = afuo.SetOcrID(*id)
	}
	return afuo
}

// SetOcr sets the "ocr" edge to the OCRRecord entity.
func (afuo *AuditFileUpdateOne) SetOcr(o *OCRRecord) *AuditFileUpdateOne {
	return afuo.SetOcrID(o.ID)
}

// Mutation returns the AuditFileMutation object of the builder.
func (afuo *AuditFileUpdateOne) Mutation() *AuditFileMutation {
	return afuo.mutation
}

// ClearBuilding clears the "building" edge to the Building entity.
func (afuo *AuditFileUpdateOne) ClearBuilding() *AuditFileUpdateOne {
	afuo.mutation.ClearBuilding()
	return afuo
}

// ClearOcr clears the "ocr" edge to the OCRRecord entity.
func (afuo *AuditFileUpdateOne) ClearOcr() *AuditFileUpdateOne {
	afuo.mutation.ClearOcr()
	return afuo
}

// Where appends a list predicates to the AuditFileUpdate builder.
func (afuo *AuditFileUpdateOne) Where(ps ...predicate.AuditFile) *AuditFileUpdateOne {
	afuo.mutation.Where(ps...)
	return afuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (afuo *AuditFileUpdateOne) Select(field string, fields ...string) *AuditFileUpdateOne {
	afuo.fields = append([]string{field}, fields...)
	return afuo
}

// Save executes the query and returns the updated AuditFile entity.
func (afuo *AuditFileUpdateOne) Save(ctx context.Context) (*AuditFile, error) {
	return withHooks(ctx, afuo.sqlSave, afuo.mutation, afuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (afuo *AuditFileUpdateOne) SaveX(ctx context.Context) *AuditFile {
	node, err := afuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (afuo *AuditFileUpdateOne) Exec(ctx context.Context) error {
	_, err := afuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (afuo *AuditFileUpdateOne) ExecX(ctx context.Context) {
	if err := afuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (afuo *AuditFileUpdateOne) check() error {
	if v, ok := afuo.mutation.FileURL(); ok {
		if err := auditfile.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`ent: validator failed for field "AuditFile.file_url": %w`, err)}
		}
	}
	if v, ok := afuo.mutation.FileName(); ok {
		if err := auditfile.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "AuditFile.file_name": %w`, err)}
		}
	}
	if v, ok := afuo.mutation.FileType(); ok {
		if err := auditfile.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "AuditFile.file_type": %w`, err)}
		}
	}
	if v, ok := afuo.mutation.FileSize(); ok {
		if err := auditfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "AuditFile.file_size": %w`, err)}
		}
	}
	if afuo.mutation.BuildingCleared() && len(afuo.mutation.BuildingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditFile.building"`)
	}
	return nil
}

func (afuo *AuditFileUpdateOne) sqlSave(ctx context.Context) (_node *AuditFile, err error) {
	if err := afuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditfile.Table, auditfile.Columns, sqlgraph.NewFieldSpec(auditfile.FieldID, field.TypeUUID))
	id, ok := afuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := afuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditfile.FieldID)
		for _, f := range fields {
			if !auditfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditfile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := afuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := afuo.mutation.FileURL(); ok {
		_spec.SetField(auditfile.FieldFileURL, field.TypeString, value)
	}
	if value, ok := afuo.mutation.FileName(); ok {
		_spec.SetField(auditfile.FieldFileName, field.TypeString, value)
	}
	if value, ok := afuo.mutation.FileType(); ok {
		_spec.SetField(auditfile.FieldFileType, field.TypeString, value)
	}
	if value, ok := afuo.mutation.FileSize(); ok {
		_spec.SetField(auditfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := afuo.mutation.AddedFileSize(); ok {
		_spec.AddField(auditfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := afuo.mutation.ProcessingStatus(); ok {
		_spec.SetField(auditfile.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := afuo.mutation.OcrRecordID(); ok {
		_spec.SetField(auditfile.FieldOcrRecordID, field.TypeUUID, value)
	}
	if afuo.mutation.OcrRecordIDCleared() {
		_spec.ClearField(auditfile.FieldOcrRecordID, field.TypeUUID)
	}
	if value, ok := afuo.mutation.UploadedAt(); ok {
		_spec.SetField(auditfile.FieldUploadedAt, field.TypeTime, value)
	}
	if afuo.mutation.BuildingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := afuo.mutation.BuildingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if afuo.mutation.OcrCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := afuo.mutation.OcrIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AuditFile{config: afuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, afuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	afuo.mutation.done = true
	return _node, nil
}
