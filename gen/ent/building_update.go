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
	"github.com/hrunx/es2square/gen/ent/audit"
	"github.com/hrunx/es2square/gen/ent/auditfile"
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/detailedreport"
	"github.com/hrunx/es2square/gen/ent/equipment"
	"github.com/hrunx/es2square/gen/ent/ocrrecord"
	"github.com/hrunx/es2square/gen/ent/predicate"
	"github.com/hrunx/es2square/gen/ent/room"
)

// BuildingUpdate is the builder for updating Building entities.
type BuildingUpdate struct {
	config
	hooks    []Hook
	mutation *BuildingMutation
}

// Where appends a list predicates to the BuildingUpdate builder.
func (bu *BuildingUpdate) Where(ps ...predicate.Building) *BuildingUpdate {
	bu.mutation.Where(ps...)
	return bu
}

// SetName sets the "name" field.
func (bu *BuildingUpdate) SetName(s string) *BuildingUpdate {
	bu.mutation.SetName(s)
	return bu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (bu *BuildingUpdate) SetNillableName(s *string) *BuildingUpdate {
	if s != nil {
		bu.SetName(*s)
	}
	return bu
}

// SetAddress sets the "address" field.
func (bu *BuildingUpdate) SetAddress(s string) *BuildingUpdate {
	bu.mutation.SetAddress(s)
	return bu
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (bu *BuildingUpdate) SetNillableAddress(s *string) *BuildingUpdate {
	if s != nil {
		bu.SetAddress(*s)
	}
	return bu
}

// SetType sets the "type" field.
func (bu *BuildingUpdate) SetType(s string) *BuildingUpdate {
	bu.mutation.SetType(s)
	return bu
}

// SetNillableType sets the "type" field if the given value is not nil.
func (bu *BuildingUpdate) SetNillableType(s *string) *BuildingUpdate {
	if s != nil {
		bu.SetType(*s)
	}
	return bu
}

// SetArea sets the "area" field.
func (bu *BuildingUpdate) SetArea(f float64) *BuildingUpdate {
	bu.mutation.ResetArea()
	bu.mutation.SetArea(f)
	return bu
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (bu *BuildingUpdate) SetNillableArea(f *float64) *BuildingUpdate {
	if f != nil {
		bu.SetArea(*f)
	}
	return bu
}

// AddArea adds f to the "area" field.
func (bu *BuildingUpdate) AddArea(f float64) *BuildingUpdate {
	bu.mutation.AddArea(f)
	return bu
}

// SetConstructionYear sets the "construction_year" field.
func (bu *BuildingUpdate) SetConstructionYear(i int) *BuildingUpdate {
	bu.mutation.ResetConstructionYear()
	bu.mutation.SetConstructionYear(i)
	return bu
}

// SetNillableConstructionYear sets the "construction_year" field if the given value is not nil.
func (bu *BuildingUpdate) SetNillableConstructionYear(i *int) *BuildingUpdate {
	if i != nil {
		bu.SetConstructionYear(*i)
	}
	return bu
}

// AddConstructionYear adds i to the "construction_year" field.
func (bu *BuildingUpdate) AddConstructionYear(i int) *BuildingUpdate {
	bu.mutation.AddConstructionYear(i)
	return bu
}

// ClearConstructionYear clears the value of the "construction_year" field.
func (bu *BuildingUpdate) ClearConstructionYear() *BuildingUpdate {
	bu.mutation.ClearConstructionYear()
	return bu
}

// SetRoomsDeclared sets the "rooms_declared" field.
func (bu *BuildingUpdate) SetRoomsDeclared(i int) *BuildingUpdate {
	bu.mutation.ResetRoomsDeclared()
	bu.mutation.SetRoomsDeclared(i)
	return bu
}

// SetNillableRoomsDeclared sets the "rooms_declared" field if the given value is not nil.
func (bu *BuildingUpdate) SetNillableRoomsDeclared(i *int) *BuildingUpdate {
	if i != nil {
		bu.SetRoomsDeclared(*i)
	}
	return bu
}

// AddRoomsDeclared adds i to the "rooms_declared" field.
func (bu *BuildingUpdate) AddRoomsDeclared(i int) *BuildingUpdate {
	bu.mutation.AddRoomsDeclared(i)
	return bu
}

// ClearRoomsDeclared clears the value of the "rooms_declared" field.
func (bu *BuildingUpdate) ClearRoomsDeclared() *BuildingUpdate {
	bu.mutation.ClearRoomsDeclared()
	return bu
}

// SetResidents sets the "residents" field.
func (bu *BuildingUpdate) SetResidents(i int) *BuildingUpdate {
	bu.mutation.ResetResidents()
	bu.mutation.SetResidents(i)
	return bu
}

// SetNillableResidents sets the "residents" field if the given value is not nil.
func (bu *BuildingUpdate) SetNillableResidents(i *int) *BuildingUpdate {
	if i != nil {
		bu.SetResidents(*i)
	}
	return bu
}

// AddResidents adds i to the "residents" field.
func (bu *BuildingUpdate) AddResidents(i int) *BuildingUpdate {
	bu.mutation.AddResidents(i)
	return bu
}

// ClearResidents clears the value of the "residents" field.
func (bu *BuildingUpdate) ClearResidents() *BuildingUpdate {
	bu.mutation.ClearResidents()
	return bu
}

// SetUpdatedAt sets the "updated_at" field.
func (bu *BuildingUpdate) SetUpdatedAt(t time.Time) *BuildingUpdate {
	bu.mutation.SetUpdatedAt(t)
	return bu
}

// AddRoomIDs adds the "rooms" edge to the Room entity by IDs.
func (bu *BuildingUpdate) AddRoomIDs(ids ...uuid.UUID) *BuildingUpdate {
	bu.mutation.AddRoomIDs(ids...)
	return bu
}

// AddRooms adds the "rooms" edges to the Room entity.
func (bu *BuildingUpdate) AddRooms(r ...*Room) *BuildingUpdate {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return bu.AddRoomIDs(ids...)
}

// AddEquipmentIDs adds the "equipment" edge to the Equipment entity by IDs.
func (bu *BuildingUpdate) AddEquipmentIDs(ids ...uuid.UUID) *BuildingUpdate {
	bu.mutation.AddEquipmentIDs(ids...)
	return bu
}

// AddEquipment adds the "equipment" edges to the Equipment entity.
func (bu *BuildingUpdate) AddEquipment(e ...*Equipment) *BuildingUpdate {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return bu.AddEquipmentIDs(ids...)
}

// AddFileIDs adds the "files" edge to the AuditFile entity by IDs.
func (bu *BuildingUpdate) AddFileIDs(ids ...uuid.UUID) *BuildingUpdate {
	bu.mutation.AddFileIDs(ids...)
	return bu
}

// AddFiles adds the "files" edges to the AuditFile entity.
func (bu *BuildingUpdate) AddFiles(a ...*AuditFile) *BuildingUpdate {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return bu.AddFileIDs(ids...)
}

// AddOcrRecordIDs adds the "ocr_records" edge to the OCRRecord entity by IDs.
func (bu *BuildingUpdate) AddOcrRecordIDs(ids ...uuid.UUID) *BuildingUpdate {
	bu.mutation.AddOcrRecordIDs(ids...)
	return bu
}

// AddOcrRecords adds the "ocr_records" edges to the OCRRecord entity.
func (bu *BuildingUpdate) AddOcrRecords(o ...*OCRRecord) *BuildingUpdate {
	ids := make([]uuid.UUID, len(o))
	for i := range o {
		ids[i] = o[i].ID
	}
	return bu.AddOcrRecordIDs(ids...)
}

// AddAuditIDs adds the "audits" edge to the Audit entity by IDs.
func (bu *BuildingUpdate) AddAuditIDs(ids ...uuid.UUID) *BuildingUpdate {
	bu.mutation.AddAuditIDs(ids...)
	return bu
}

// AddAudits adds the "audits" edges to the Audit entity.
func (bu *BuildingUpdate) AddAudits(a ...*Audit) *BuildingUpdate {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return bu.AddAuditIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the DetailedReport entity by IDs.
func (bu *BuildingUpdate) AddReportIDs(ids ...uuid.UUID) *BuildingUpdate {
	bu.mutation.AddReportIDs(ids...)
	return bu
}

// AddReports adds the "reports" edges to the DetailedReport entity.
func (bu *BuildingUpdate) AddReports(d ...*DetailedReport) *BuildingUpdate {
	ids := make([]uuid.UUID, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return bu.AddReportIDs(ids...)
}

// Mutation returns the BuildingMutation object of the builder.
func (bu *BuildingUpdate) Mutation() *BuildingMutation {
	return bu.mutation
}

// ClearRooms clears all "rooms" edges to the Room entity.
func (bu *BuildingUpdate) ClearRooms() *BuildingUpdate {
	bu.mutation.ClearRooms()
	return bu
}

// RemoveRoomIDs removes the "rooms" edge to Room entities by IDs.
func (bu *BuildingUpdate) RemoveRoomIDs(ids ...uuid.UUID) *BuildingUpdate {
	bu.mutation.RemoveRoomIDs(ids...)
	return bu
}

// RemoveRooms removes "rooms" edges to Room entities.
func (bu *BuildingUpdate) RemoveRooms(r ...*Room) *BuildingUpdate {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return bu.RemoveRoomIDs(ids...)
}

// ClearEquipment clears all "equipment" edges to the Equipment entity.
func (bu *BuildingUpdate) ClearEquipment() *BuildingUpdate {
	bu.mutation.ClearEquipment()
	return bu
}

// RemoveEquipmentIDs removes the "equipment" edge to Equipment entities by IDs.
func (bu *BuildingUpdate) RemoveEquipmentIDs(ids ...uuid.UUID) *BuildingUpdate {
	bu.mutation.RemoveEquipmentIDs(ids...)
	return bu
}

// RemoveEquipment removes "equipment" edges to Equipment entities.
func (bu *BuildingUpdate) RemoveEquipment(e ...*Equipment) *BuildingUpdate {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return bu.RemoveEquipmentIDs(ids...)
}

// ClearFiles clears all "files" edges to the AuditFile entity.
func (bu *BuildingUpdate) ClearFiles() *BuildingUpdate {
	bu.mutation.ClearFiles()
	return bu
}

// RemoveFileIDs removes the "files" edge to AuditFile entities by IDs.
func (bu *BuildingUpdate) RemoveFileIDs(ids ...uuid.UUID) *BuildingUpdate {
	bu.mutation.RemoveFileIDs(ids...)
	return bu
}

// RemoveFiles removes "files" edges to AuditFile entities.
func (bu *BuildingUpdate) RemoveFiles(a ...*AuditFile) *BuildingUpdate {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return bu.RemoveFileIDs(ids...)
}

// ClearOcrRecords clears all "ocr_records" edges to the OCRRecord entity.
func (bu *BuildingUpdate) ClearOcrRecords() *BuildingUpdate {
	bu.mutation.ClearOcrRecords()
	return bu
}

// RemoveOcrRecordIDs removes the "ocr_records" edge to OCRRecord entities by IDs.
func (bu *BuildingUpdate) RemoveOcrRecordIDs(ids ...uuid.UUID) *BuildingUpdate {
	bu.mutation.RemoveOcrRecordIDs(ids...)
	return bu
}

// RemoveOcrRecords removes "ocr_records" edges to OCRRecord entities.
func (bu *BuildingUpdate) RemoveOcrRecords(o ...*OCRRecord) *BuildingUpdate {
	ids := make([]uuid.UUID, len(o))
	for i := range o {
		ids[i] = o[i].ID
	}
	return bu.RemoveOcrRecordIDs(ids...)
}

// ClearAudits clears all "audits" edges to the Audit entity.
func (bu *BuildingUpdate) ClearAudits() *BuildingUpdate {
	bu.mutation.ClearAudits()
	return bu
}

// RemoveAuditIDs removes the "audits" edge to Audit entities by IDs.
func (bu *BuildingUpdate) RemoveAuditIDs(ids ...uuid.UUID) *BuildingUpdate {
	bu.mutation.RemoveAuditIDs(ids...)
	return bu
}

// RemoveAudits removes "audits" edges to Audit entities.
func (bu *BuildingUpdate) RemoveAudits(a ...*Audit) *BuildingUpdate {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return bu.RemoveAuditIDs(ids...)
}

// ClearReports clears all "reports" edges to the DetailedReport entity.
func (bu *BuildingUpdate) ClearReports() *BuildingUpdate {
	bu.mutation.ClearReports()
	return bu
}

// RemoveReportIDs removes the "reports" edge to DetailedReport entities by IDs.
func (bu *BuildingUpdate) RemoveReportIDs(ids ...uuid.UUID) *BuildingUpdate {
	bu.mutation.RemoveReportIDs(ids...)
	return bu
}

// RemoveReports removes "reports" edges to DetailedReport entities.
func (bu *BuildingUpdate) RemoveReports(d ...*DetailedReport) *BuildingUpdate {
	ids := make([]uuid.UUID, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return bu.RemoveReportIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (bu *BuildingUpdate) Save(ctx context.Context) (int, error) {
	bu.defaults()
	return withHooks(ctx, bu.sqlSave, bu.mutation, bu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bu *BuildingUpdate) SaveX(ctx context.Context) int {
	affected, err := bu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (bu *BuildingUpdate) Exec(ctx context.Context) error {
	_, err := bu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bu *BuildingUpdate) ExecX(ctx context.Context) {
	if err := bu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bu *BuildingUpdate) defaults() {
	if _, ok := bu.mutation.UpdatedAt(); !ok {
		v := building.UpdateDefaultUpdatedAt()
		bu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bu *BuildingUpdate) check() error {
	if v, ok := bu.mutation.Name(); ok {
		if err := building.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Building.name": %w`, err)}
		}
	}
	if v, ok := bu.mutation.Address(); ok {
		if err := building.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`ent: validator failed for field "Building.address": %w`, err)}
		}
	}
	if v, ok := bu.mutation.GetType(); ok {
		if err := building.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Building.type": %w`, err)}
		}
	}
	if v, ok := bu.mutation.Area(); ok {
		if err := building.AreaValidator(v); err != nil {
			return &ValidationError{Name: "area", err: fmt.Errorf(`ent: validator failed for field "Building.area": %w`, err)}
		}
	}
	return nil
}

func (bu *BuildingUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := bu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(building.Table, building.Columns, sqlgraph.NewFieldSpec(building.FieldID, field.TypeUUID))
	if ps := bu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bu.mutation.Name(); ok {
		_spec.SetField(building.FieldName, field.TypeString, value)
	}
	if value, ok := bu.mutation.Address(); ok {
		_spec.SetField(building.FieldAddress, field.TypeString, value)
	}
	if value, ok := bu.mutation.GetType(); ok {
		_spec.SetField(building.FieldType, field.TypeString, value)
	}
	if value, ok := bu.mutation.Area(); ok {
		_spec.SetField(building.FieldArea, field.TypeFloat64, value)
	}
	if value, ok := bu.mutation.AddedArea(); ok {
		_spec.AddField(building.FieldArea, field.TypeFloat64, value)
	}
	if value, ok := bu.mutation.ConstructionYear(); ok {
		_spec.SetField(building.FieldConstructionYear, field.TypeInt, value)
	}
	if value, ok := bu.mutation.AddedConstructionYear(); ok {
		_spec.AddField(building.FieldConstructionYear, field.TypeInt, value)
	}
	if bu.mutation.ConstructionYearCleared() {
		_spec.ClearField(building.FieldConstructionYear, field.TypeInt)
	}
	if value, ok := bu.mutation.RoomsDeclared(); ok {
		_spec.SetField(building.FieldRoomsDeclared, field.TypeInt, value)
	}
	if value, ok := bu.mutation.AddedRoomsDeclared(); ok {
		_spec.AddField(building.FieldRoomsDeclared, field.TypeInt, value)
	}
	if bu.mutation.RoomsDeclaredCleared() {
		_spec.ClearField(building.FieldRoomsDeclared, field.TypeInt)
	}
	if value, ok := bu.mutation.Residents(); ok {
		_spec.SetField(building.FieldResidents, field.TypeInt, value)
	}
	if value, ok := bu.mutation.AddedResidents(); ok {
		_spec.AddField(building.FieldResidents, field.TypeInt, value)
	}
	if bu.mutation.ResidentsCleared() {
		_spec.ClearField(building.FieldResidents, field.TypeInt)
	}
	if value, ok := bu.mutation.UpdatedAt(); ok {
		_spec.SetField(building.FieldUpdatedAt, field.TypeTime, value)
	}
	if bu.mutation.RoomsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.RoomsTable,
			Columns: []string{building.RoomsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(room.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := bu.mutation.RemovedRoomsIDs(); len(nodes) > 0 && !bu.mutation.RoomsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.RoomsTable,
			Columns: []string{building.RoomsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(room.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := bu.mutation.RoomsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.RoomsTable,
			Columns: []string{building.RoomsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(room.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if bu.mutation.EquipmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.EquipmentTable,
			Columns: []string{building.EquipmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(equipment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := bu.mutation.RemovedEquipmentIDs(); len(nodes) > 0 && !bu.mutation.EquipmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.EquipmentTable,
			Columns: []string{building.EquipmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(equipment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := bu.mutation.EquipmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.EquipmentTable,
			Columns: []string{building.EquipmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(equipment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if bu.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.FilesTable,
			Columns: []string{building.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := bu.mutation.RemovedFilesIDs(); len(nodes) > 0 && !bu.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.FilesTable,
			Columns: []string{building.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := bu.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.FilesTable,
			Columns: []string{building.FilesColumn},
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
	if bu.mutation.OcrRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.OcrRecordsTable,
			Columns: []string{building.OcrRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := bu.mutation.RemovedOcrRecordsIDs(); len(nodes) > 0 && !bu.mutation.OcrRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.OcrRecordsTable,
			Columns: []string{building.OcrRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := bu.mutation.OcrRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.OcrRecordsTable,
			Columns: []string{building.OcrRecordsColumn},
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
	if bu.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.AuditsTable,
			Columns: []string{building.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := bu.mutation.RemovedAuditsIDs(); len(nodes) > 0 && !bu.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.AuditsTable,
			Columns: []string{building.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := bu.mutation.AuditsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.AuditsTable,
			Columns: []string{building.AuditsColumn},
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
	if bu.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.ReportsTable,
			Columns: []string{building.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(detailedreport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := bu.mutation.RemovedReportsIDs(); len(nodes) > 0 && !bu.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.ReportsTable,
			Columns: []string{building.ReportsColumn},
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
	if nodes := bu.mutation.ReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.ReportsTable,
			Columns: []string{building.ReportsColumn},
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
	if n, err = sqlgraph.UpdateNodes(ctx, bu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{building.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	bu.mutation.done = true
	return n, nil
}

// BuildingUpdateOne is the builder for updating a single Building entity.
type BuildingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BuildingMutation
}

// SetName sets the "name" field.
func (buo *BuildingUpdateOne) SetName(s string) *BuildingUpdateOne {
	buo.mutation.SetName(s)
	return buo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (buo *BuildingUpdateOne) SetNillableName(s *string) *BuildingUpdateOne {
	if s != nil {
		buo.SetName(*s)
	}
	return buo
}

// SetAddress sets the "address" field.
func (buo *BuildingUpdateOne) SetAddress(s string) *BuildingUpdateOne {
	buo.mutation.SetAddress(s)
	return buo
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (buo *BuildingUpdateOne) SetNillableAddress(s *string) *BuildingUpdateOne {
	if s != nil {
		buo.SetAddress(*s)
	}
	return buo
}

// SetType sets the "type" field.
func (buo *BuildingUpdateOne) SetType(s string) *BuildingUpdateOne {
	buo.mutation.SetType(s)
	return buo
}

// SetNillableType sets the "type" field if the given value is not nil.
func (buo *BuildingUpdateOne) SetNillableType(s *string) *BuildingUpdateOne {
	if s != nil {
		buo.SetType(*s)
	}
	return buo
}

// SetArea sets the "area" field.
func (buo *BuildingUpdateOne) SetArea(f float64) *BuildingUpdateOne {
	buo.mutation.ResetArea()
	buo.mutation.SetArea(f)
	return buo
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (buo *BuildingUpdateOne) SetNillableArea(f *float64) *BuildingUpdateOne {
	if f != nil {
		buo.SetArea(*f)
	}
	return buo
}

// AddArea adds f to the "area" field.
func (buo *BuildingUpdateOne) AddArea(f float64) *BuildingUpdateOne {
	buo.mutation.AddArea(f)
	return buo
}

// SetConstructionYear sets the "construction_year" field.
func (buo *BuildingUpdateOne) SetConstructionYear(i int) *BuildingUpdateOne {
	buo.mutation.ResetConstructionYear()
	buo.mutation.SetConstructionYear(i)
	return buo
}

// SetNillableConstructionYear sets the "construction_year" field if the given value is not nil.
func (buo *BuildingUpdateOne) SetNillableConstructionYear(i *int) *BuildingUpdateOne {
	if i != nil {
		buo.SetConstructionYear(*i)
	}
	return buo
}

// AddConstructionYear adds i to the "construction_year" field.
func (buo *BuildingUpdateOne) AddConstructionYear(i int) *BuildingUpdateOne {
	buo.mutation.AddConstructionYear(i)
	return buo
}

// ClearConstructionYear clears the value of the "construction_year" field.
func (buo *BuildingUpdateOne) ClearConstructionYear() *BuildingUpdateOne {
	buo.mutation.ClearConstructionYear()
	return buo
}

// SetRoomsDeclared sets the "rooms_declared" field.
func (buo *BuildingUpdateOne) SetRoomsDeclared(i int) *BuildingUpdateOne {
	buo.mutation.ResetRoomsDeclared()
	buo.mutation.SetRoomsDeclared(i)
	return buo
}

// SetNillableRoomsDeclared sets the "rooms_declared" field if the given value is not nil.
func (buo *BuildingUpdateOne) SetNillableRoomsDeclared(i *int) *BuildingUpdateOne {
	if i != nil {
		buo.SetRoomsDeclared(*i)
	}
	return buo
}

// AddRoomsDeclared adds i to the "rooms_declared" field.
func (buo *BuildingUpdateOne) AddRoomsDeclared(i int) *BuildingUpdateOne {
	buo.mutation.AddRoomsDeclared(i)
	return buo
}

// ClearRoomsDeclared clears the value of the "rooms_declared" field.
func (buo *BuildingUpdateOne) ClearRoomsDeclared() *BuildingUpdateOne {
	buo.mutation.ClearRoomsDeclared()
	return buo
}

// SetResidents sets the "residents" field.
func (buo *BuildingUpdateOne) SetResidents(i int) *BuildingUpdateOne {
	buo.mutation.ResetResidents()
	buo.mutation.SetResidents(i)
	return buo
}

// SetNillableResidents sets the "residents" field if the given value is not nil.
func (buo *BuildingUpdateOne) SetNillableResidents(i *int) *BuildingUpdateOne {
	if i != nil {
		buo.SetResidents(*i)
	}
	return buo
}

// AddResidents adds i to the "residents" field.
func (buo *BuildingUpdateOne) AddResidents(i int) *BuildingUpdateOne {
	buo.mutation.AddResidents(i)
	return buo
}

// ClearResidents clears the value of the "residents" field.
func (buo *BuildingUpdateOne) ClearResidents() *BuildingUpdateOne {
	buo.mutation.ClearResidents()
	return buo
}

// SetUpdatedAt sets the "updated_at" field.
func (buo *BuildingUpdateOne) SetUpdatedAt(t time.Time) *BuildingUpdateOne {
	buo.mutation.SetUpdatedAt(t)
	return buo
}

// AddRoomIDs adds the "rooms" edge to the Room entity by IDs.
func (buo *BuildingUpdateOne) AddRoomIDs(ids ...uuid.UUID) *BuildingUpdateOne {
	buo.mutation.AddRoomIDs(ids...)
	return buo
}

// AddRooms adds the "rooms" edges to the Room entity.
func (buo *BuildingUpdateOne) AddRooms(r ...*Room) *BuildingUpdateOne {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return buo.AddRoomIDs(ids...)
}

// AddEquipmentIDs adds the "equipment" edge to the Equipment entity by IDs.
func (buo *BuildingUpdateOne) AddEquipmentIDs(ids ...uuid.UUID) *BuildingUpdateOne {
	buo.mutation.AddEquipmentIDs(ids...)
	return buo
}

// AddEquipment adds the "equipment" edges to the Equipment entity.
func (buo *BuildingUpdateOne) AddEquipment(e ...*Equipment) *BuildingUpdateOne {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return buo.AddEquipmentIDs(ids...)
}

// AddFileIDs adds the "files" edge to the AuditFile entity by IDs.
func (buo *BuildingUpdateOne) AddFileIDs(ids ...uuid.UUID) *BuildingUpdateOne {
	buo.mutation.AddFileIDs(ids...)
	return buo
}

// AddFiles adds the "files" edges to the AuditFile entity.
func (buo *BuildingUpdateOne) AddFiles(a ...*AuditFile) *BuildingUpdateOne {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return buo.AddFileIDs(ids...)
}

// AddOcrRecordIDs adds the "ocr_records" edge to the OCRRecord entity by IDs.
func (buo *BuildingUpdateOne) AddOcrRecordIDs(ids ...uuid.UUID) *BuildingUpdateOne {
	buo.mutation.AddOcrRecordIDs(ids...)
	return buo
}

// AddOcrRecords adds the "ocr_records" edges to the OCRRecord entity.
func (buo *BuildingUpdateOne) AddOcrRecords(o ...*OCRRecord) *BuildingUpdateOne {
	ids := make([]uuid.UUID, len(o))
	for i := range o {
		ids[i] = o[i].ID
	}
	return buo.AddOcrRecordIDs(ids...)
}

// AddAuditIDs adds the "audits" edge to the Audit entity by IDs.
func (buo *BuildingUpdateOne) AddAuditIDs(ids ...uuid.UUID) *BuildingUpdateOne {
	buo.mutation.AddAuditIDs(ids...)
	return buo
}

// AddAudits adds the "audits" edges to the Audit entity.
func (buo *BuildingUpdateOne) AddAudits(a ...*Audit) *BuildingUpdateOne {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return buo.AddAuditIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the DetailedReport entity by IDs.
func (buo *BuildingUpdateOne) AddReportIDs(ids ...uuid.UUID) *BuildingUpdateOne {
	buo.mutation.AddReportIDs(ids...)
	return buo
}

// AddReports adds the "reports" edges to the DetailedReport entity.
func (buo *BuildingUpdateOne) AddReports(d ...*DetailedReport) *BuildingUpdateOne {
	ids := make([]uuid.UUID, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return buo.AddReportIDs(ids...)
}

// Mutation returns the BuildingMutation object of the builder.
func (buo *BuildingUpdateOne) Mutation() *BuildingMutation {
	return buo.mutation
}

// ClearRooms clears all "rooms" edges to the Room entity.
func (buo *BuildingUpdateOne) ClearRooms() *BuildingUpdateOne {
	buo.mutation.ClearRooms()
	return buo
}

// RemoveRoomIDs removes the "rooms" edge to Room entities by IDs.
func (buo *BuildingUpdateOne) RemoveRoomIDs(ids ...uuid.UUID) *BuildingUpdateOne {
	buo.mutation.RemoveRoomIDs(ids...)
	return buo
}

// RemoveRooms removes "rooms" edges to Room entities.
func (buo *BuildingUpdateOne) RemoveRooms(r ...*Room) *BuildingUpdateOne {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return buo.RemoveRoomIDs(ids...)
}

// ClearEquipment clears all "equipment" edges to the Equipment entity.
func (buo *BuildingUpdateOne) ClearEquipment() *BuildingUpdateOne {
	buo.mutation.ClearEquipment()
	return buo
}

// RemoveEquipmentIDs removes the "equipment" edge to Equipment entities by IDs.
func (buo *BuildingUpdateOne) RemoveEquipmentIDs(ids ...uuid.UUID) *BuildingUpdateOne {
	buo.mutation.RemoveEquipmentIDs(ids...)
	return buo
}

// RemoveEquipment removes "equipment" edges to Equipment entities.
func (buo *BuildingUpdateOne) RemoveEquipment(e ...*Equipment) *BuildingUpdateOne {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return buo.RemoveEquipmentIDs(ids...)
}

// ClearFiles clears all "files" edges to the AuditFile entity.
func (buo *BuildingUpdateOne) ClearFiles() *BuildingUpdateOne {
	buo.mutation.ClearFiles()
	return buo
}

// RemoveFileIDs removes the "files" edge to AuditFile entities by IDs.
func (buo *BuildingUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *BuildingUpdateOne {
	buo.mutation.RemoveFileIDs(ids...)
	return buo
}

// RemoveFiles removes "files" edges to AuditFile entities.
func (buo *BuildingUpdateOne) RemoveFiles(a ...*AuditFile) *BuildingUpdateOne {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return buo.RemoveFileIDs(ids...)
}

// ClearOcrRecords clears all "ocr_records" edges to the OCRRecord entity.
func (buo *BuildingUpdateOne) ClearOcrRecords() *BuildingUpdateOne {
	buo.mutation.ClearOcrRecords()
	return buo
}

// RemoveOcrRecordIDs removes the "ocr_records" edge to OCRRecord entities by IDs.
func (buo *BuildingUpdateOne) RemoveOcrRecordIDs(ids ...uuid.UUID) *BuildingUpdateOne {
	buo.mutation.RemoveOcrRecordIDs(ids...)
	return buo
}

// RemoveOcrRecords removes "ocr_records" edges to OCRRecord entities.
func (buo *BuildingUpdateOne) RemoveOcrRecords(o ...*OCRRecord) *BuildingUpdateOne {
	ids := make([]uuid.UUID, len(o))
	for i := range o {
		ids[i] = o[i].ID
	}
	return buo.RemoveOcrRecordIDs(ids...)
}

// ClearAudits clears all "audits" edges to the Audit entity.
func (buo *BuildingUpdateOne) ClearAudits() *BuildingUpdateOne {
	buo.mutation.ClearAudits()
	return buo
}

// RemoveAuditIDs removes the "audits" edge to Audit entities by IDs.
func (buo *BuildingUpdateOne) RemoveAuditIDs(ids ...uuid.UUID) *BuildingUpdateOne {
	buo.mutation.RemoveAuditIDs(ids...)
	return buo
}

// RemoveAudits removes "audits" edges to Audit entities.
func (buo *BuildingUpdateOne) RemoveAudits(a ...*Audit) *BuildingUpdateOne {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return buo.RemoveAuditIDs(ids...)
}

// ClearReports clears all "reports" edges to the DetailedReport entity.
func (buo *BuildingUpdateOne) ClearReports() *BuildingUpdateOne {
	buo.mutation.ClearReports()
	return buo
}

// RemoveReportIDs removes the "reports" edge to DetailedReport entities by IDs.
func (buo *BuildingUpdateOne) RemoveReportIDs(ids ...uuid.UUID) *BuildingUpdateOne {
	buo.mutation.RemoveReportIDs(ids...)
	return buo
}

// RemoveReports removes "reports" edges to DetailedReport entities.
func (buo *BuildingUpdateOne) RemoveReports(d ...*DetailedReport) *BuildingUpdateOne {
	ids := make([]uuid.UUID, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return buo.RemoveReportIDs(ids...)
}

// Where appends a list predicates to the BuildingUpdate builder.
func (buo *BuildingUpdateOne) Where(ps ...predicate.Building) *BuildingUpdateOne {
	buo.mutation.Where(ps...)
	return buo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (buo *BuildingUpdateOne) Select(field string, fields ...string) *BuildingUpdateOne {
	buo.fields = append([]string{field}, fields...)
	return buo
}

// Save executes the query and returns the updated Building entity.
func (buo *BuildingUpdateOne) Save(ctx context.Context) (*Building, error) {
	buo.defaults()
	return withHooks(ctx, buo.sqlSave, buo.mutation, buo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (buo *BuildingUpdateOne) SaveX(ctx context.Context) *Building {
	node, err := buo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (buo *BuildingUpdateOne) Exec(ctx context.Context) error {
	_, err := buo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (buo *BuildingUpdateOne) ExecX(ctx context.Context) {
	if err := buo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (buo *BuildingUpdateOne) defaults() {
	if _, ok := buo.mutation.UpdatedAt(); !ok {
		v := building.UpdateDefaultUpdatedAt()
		buo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (buo *BuildingUpdateOne) check() error {
	if v, ok := buo.mutation.Name(); ok {
		if err := building.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Building.name": %w`, err)}
		}
	}
	if v, ok := buo.mutation.Address(); ok {
		if err := building.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`ent: validator failed for field "Building.address": %w`, err)}
		}
	}
	if v, ok := buo.mutation.GetType(); ok {
		if err := building.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Building.type": %w`, err)}
		}
	}
	if v, ok := buo.mutation.Area(); ok {
		if err := building.AreaValidator(v); err != nil {
			return &ValidationError{Name: "area", err: fmt.Errorf(`ent: validator failed for field "Building.area": %w`, err)}
		}
	}
	return nil
}

func (buo *BuildingUpdateOne) sqlSave(ctx context.Context) (_node *Building, err error) {
	if err := buo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(building.Table, building.Columns, sqlgraph.NewFieldSpec(building.FieldID, field.TypeUUID))
	id, ok := buo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Building.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := buo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, building.FieldID)
		for _, f := range fields {
			if !building.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != building.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := buo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := buo.mutation.Name(); ok {
		_spec.SetField(building.FieldName, field.TypeString, value)
	}
	if value, ok := buo.mutation.Address(); ok {
		_spec.SetField(building.FieldAddress, field.TypeString, value)
	}
	if value, ok := buo.mutation.GetType(); ok {
		_spec.SetField(building.FieldType, field.TypeString, value)
	}
	if value, ok := buo.mutation.Area(); ok {
		_spec.SetField(building.FieldArea, field.TypeFloat64, value)
	}
	if value, ok := buo.mutation.AddedArea(); ok {
		_spec.AddField(building.FieldArea, field.TypeFloat64, value)
	}
	if value, ok := buo.mutation.ConstructionYear(); ok {
		_spec.SetField(building.FieldConstructionYear, field.TypeInt, value)
	}
	if value, ok := buo.mutation.AddedConstructionYear(); ok {
		_spec.AddField(building.FieldConstructionYear, field.TypeInt, value)
	}
	if buo.mutation.ConstructionYearCleared() {
		_spec.ClearField(building.FieldConstructionYear, field.TypeInt)
	}
	if value, ok := buo.mutation.RoomsDeclared(); ok {
		_spec.SetField(building.FieldRoomsDeclared, field.TypeInt, value)
	}
	if value, ok := buo.mutation.AddedRoomsDeclared(); ok {
		_spec.AddField(building.FieldRoomsDeclared, field.TypeInt, value)
	}
	if buo.mutation.RoomsDeclaredCleared() {
		_spec.ClearField(building.FieldRoomsDeclared, field.TypeInt)
	}
	if value, ok := buo.mutation.Residents(); ok {
		_spec.SetField(building.FieldResidents, field.TypeInt, value)
	}
	if value, ok := buo.mutation.AddedResidents(); ok {
		_spec.AddField(building.FieldResidents, field.TypeInt, value)
	}
	if buo.mutation.ResidentsCleared() {
		_spec.ClearField(building.FieldResidents, field.TypeInt)
	}
	if value, ok := buo.mutation.UpdatedAt(); ok {
		_spec.SetField(building.FieldUpdatedAt, field.TypeTime, value)
	}
	if buo.mutation.RoomsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.RoomsTable,
			Columns: []string{building.RoomsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(room.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := buo.mutation.RemovedRoomsIDs(); len(nodes) > 0 && !buo.mutation.RoomsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.RoomsTable,
			Columns: []string{building.RoomsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(room.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := buo.mutation.RoomsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.RoomsTable,
			Columns: []string{building.RoomsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(room.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if buo.mutation.EquipmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.EquipmentTable,
			Columns: []string{building.EquipmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(equipment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := buo.mutation.RemovedEquipmentIDs(); len(nodes) > 0 && !buo.mutation.EquipmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.EquipmentTable,
			Columns: []string{building.EquipmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(equipment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := buo.mutation.EquipmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.EquipmentTable,
			Columns: []string{building.EquipmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(equipment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if buo.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.FilesTable,
			Columns: []string{building.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := buo.mutation.RemovedFilesIDs(); len(nodes) > 0 && !buo.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.FilesTable,
			Columns: []string{building.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := buo.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.FilesTable,
			Columns: []string{building.FilesColumn},
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
	if buo.mutation.OcrRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.OcrRecordsTable,
			Columns: []string{building.OcrRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := buo.mutation.RemovedOcrRecordsIDs(); len(nodes) > 0 && !buo.mutation.OcrRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.OcrRecordsTable,
			Columns: []string{building.OcrRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := buo.mutation.OcrRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.OcrRecordsTable,
			Columns: []string{building.OcrRecordsColumn},
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
	if buo.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.AuditsTable,
			Columns: []string{building.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := buo.mutation.RemovedAuditsIDs(); len(nodes) > 0 && !buo.mutation.AuditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.AuditsTable,
			Columns: []string{building.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := buo.mutation.AuditsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.AuditsTable,
			Columns: []string{building.AuditsColumn},
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
	if buo.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.ReportsTable,
			Columns: []string{building.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(detailedreport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := buo.mutation.RemovedReportsIDs(); len(nodes) > 0 && !buo.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.ReportsTable,
			Columns: []string{building.ReportsColumn},
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
	if nodes := buo.mutation.ReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.ReportsTable,
			Columns: []string{building.ReportsColumn},
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
	_node = &Building{config: buo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, buo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{building.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	buo.mutation.done = true
	return _node, nil
}
