// Code generated by ent, DO NOT EDIT.

package auditfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hrunx/es2square/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldLTE(FieldID, id))
}

// BuildingID applies equality check predicate on the "building_id" field. It's identical to BuildingIDEQ.
func BuildingID(v uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEQ(FieldBuildingID, v))
}

// FileURL applies equality check predicate on the "file_url" field. It's identical to FileURLEQ.
func FileURL(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEQ(FieldFileURL, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEQ(FieldFileName, v))
}

// FileType applies equality check predicate on the "file_type" field. It's identical to FileTypeEQ.
func FileType(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEQ(FieldFileType, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEQ(FieldFileSize, v))
}

// ProcessingStatus applies equality check predicate on the "processing_status" field. It's identical to ProcessingStatusEQ.
func ProcessingStatus(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEQ(FieldProcessingStatus, v))
}

// OcrRecordID applies equality check predicate on the "ocr_record_id" field. It's identical to OcrRecordIDEQ.
func OcrRecordID(v uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEQ(FieldOcrRecordID, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEQ(FieldUploadedAt, v))
}

// BuildingIDEQ applies the EQ predicate on the "building_id" field.
func BuildingIDEQ(v uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEQ(FieldBuildingID, v))
}

// BuildingIDNEQ applies the NEQ predicate on the "building_id" field.
func BuildingIDNEQ(v uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldNEQ(FieldBuildingID, v))
}

// BuildingIDIn applies the In predicate on the "building_id" field.
func BuildingIDIn(vs ...uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldIn(FieldBuildingID, vs...))
}

// BuildingIDNotIn applies the NotIn predicate on the "building_id" field.
func BuildingIDNotIn(vs ...uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldNotIn(FieldBuildingID, vs...))
}

// FileURLEQ applies the EQ predicate on the "file_url" field.
func FileURLEQ(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEQ(FieldFileURL, v))
}

// FileURLNEQ applies the NEQ predicate on the "file_url" field.
func FileURLNEQ(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldNEQ(FieldFileURL, v))
}

// FileURLIn applies the In predicate on the "file_url" field.
func FileURLIn(vs ...string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldIn(FieldFileURL, vs...))
}

// FileURLNotIn applies the NotIn predicate on the "file_url" field.
func FileURLNotIn(vs ...string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldNotIn(FieldFileURL, vs...))
}

// FileURLGT applies the GT predicate on the "file_url" field.
func FileURLGT(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldGT(FieldFileURL, v))
}

// FileURLGTE applies the GTE predicate on the "file_url" field.
func FileURLGTE(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldGTE(FieldFileURL, v))
}

// FileURLLT applies the LT predicate on the "file_url" field.
func FileURLLT(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldLT(FieldFileURL, v))
}

// FileURLLTE applies the LTE predicate on the "file_url" field.
func FileURLLTE(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldLTE(FieldFileURL, v))
}

// FileURLContains applies the Contains predicate on the "file_url" field.
func FileURLContains(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldContains(FieldFileURL, v))
}

// FileURLHasPrefix applies the HasPrefix predicate on the "file_url" field.
func FileURLHasPrefix(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldHasPrefix(FieldFileURL, v))
}

// FileURLHasSuffix applies the HasSuffix predicate on the "file_url" field.
func FileURLHasSuffix(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldHasSuffix(FieldFileURL, v))
}

// FileURLEqualFold applies the EqualFold predicate on the "file_url" field.
func FileURLEqualFold(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEqualFold(FieldFileURL, v))
}

// FileURLContainsFold applies the ContainsFold predicate on the "file_url" field.
func FileURLContainsFold(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldContainsFold(FieldFileURL, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldContainsFold(FieldFileName, v))
}

// FileTypeEQ applies the EQ predicate on the "file_type" field.
func FileTypeEQ(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEQ(FieldFileType, v))
}

// FileTypeNEQ applies the NEQ predicate on the "file_type" field.
func FileTypeNEQ(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldNEQ(FieldFileType, v))
}

// FileTypeIn applies the In predicate on the "file_type" field.
func FileTypeIn(vs ...string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldIn(FieldFileType, vs...))
}

// FileTypeNotIn applies the NotIn predicate on the "file_type" field.
func FileTypeNotIn(vs ...string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldNotIn(FieldFileType, vs...))
}

// FileTypeGT applies the GT predicate on the "file_type" field.
func FileTypeGT(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldGT(FieldFileType, v))
}

// FileTypeGTE applies the GTE predicate on the "file_type" field.
func FileTypeGTE(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldGTE(FieldFileType, v))
}

// FileTypeLT applies the LT predicate on the "file_type" field.
func FileTypeLT(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldLT(FieldFileType, v))
}

// FileTypeLTE applies the LTE predicate on the "file_type" field.
func FileTypeLTE(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldLTE(FieldFileType, v))
}

// FileTypeContains applies the Contains predicate on the "file_type" field.
func FileTypeContains(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldContains(FieldFileType, v))
}

// FileTypeHasPrefix applies the HasPrefix predicate on the "file_type" field.
func FileTypeHasPrefix(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldHasPrefix(FieldFileType, v))
}

// FileTypeHasSuffix applies the HasSuffix predicate on the "file_type" field.
func FileTypeHasSuffix(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldHasSuffix(FieldFileType, v))
}

// FileTypeEqualFold applies the EqualFold predicate on the "file_type" field.
func FileTypeEqualFold(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEqualFold(FieldFileType, v))
}

// FileTypeContainsFold applies the ContainsFold predicate on the "file_type" field.
func FileTypeContainsFold(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldContainsFold(FieldFileType, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldLTE(FieldFileSize, v))
}

// ProcessingStatusEQ applies the EQ predicate on the "processing_status" field.
func ProcessingStatusEQ(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEQ(FieldProcessingStatus, v))
}

// ProcessingStatusNEQ applies the NEQ predicate on the "processing_status" field.
func ProcessingStatusNEQ(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldNEQ(FieldProcessingStatus, v))
}

// ProcessingStatusIn applies the In predicate on the "processing_status" field.
func ProcessingStatusIn(vs ...string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusNotIn applies the NotIn predicate on the "processing_status" field.
func ProcessingStatusNotIn(vs ...string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldNotIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusGT applies the GT predicate on the "processing_status" field.
func ProcessingStatusGT(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldGT(FieldProcessingStatus, v))
}

// ProcessingStatusGTE applies the GTE predicate on the "processing_status" field.
func ProcessingStatusGTE(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldGTE(FieldProcessingStatus, v))
}

// ProcessingStatusLT applies the LT predicate on the "processing_status" field.
func ProcessingStatusLT(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldLT(FieldProcessingStatus, v))
}

// ProcessingStatusLTE applies the LTE predicate on the "processing_status" field.
func ProcessingStatusLTE(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldLTE(FieldProcessingStatus, v))
}

// ProcessingStatusContains applies the Contains predicate on the "processing_status" field.
func ProcessingStatusContains(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldContains(FieldProcessingStatus, v))
}

// ProcessingStatusHasPrefix applies the HasPrefix predicate on the "processing_status" field.
func ProcessingStatusHasPrefix(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldHasPrefix(FieldProcessingStatus, v))
}

// ProcessingStatusHasSuffix applies the HasSuffix predicate on the "processing_status" field.
func ProcessingStatusHasSuffix(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldHasSuffix(FieldProcessingStatus, v))
}

// ProcessingStatusEqualFold applies the EqualFold predicate on the "processing_status" field.
func ProcessingStatusEqualFold(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEqualFold(FieldProcessingStatus, v))
}

// ProcessingStatusContainsFold applies the ContainsFold predicate on the "processing_status" field.
func ProcessingStatusContainsFold(v string) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldContainsFold(FieldProcessingStatus, v))
}

// OcrRecordIDEQ applies the EQ predicate on the "ocr_record_id" field.
func OcrRecordIDEQ(v uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEQ(FieldOcrRecordID, v))
}

// OcrRecordIDNEQ applies the NEQ predicate on the "ocr_record_id" field.
func OcrRecordIDNEQ(v uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldNEQ(FieldOcrRecordID, v))
}

// OcrRecordIDIn applies the In predicate on the "ocr_record_id" field.
func OcrRecordIDIn(vs ...uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldIn(FieldOcrRecordID, vs...))
}

// OcrRecordIDNotIn applies the NotIn predicate on the "ocr_record_id" field.
func OcrRecordIDNotIn(vs ...uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldNotIn(FieldOcrRecordID, vs...))
}

// OcrRecordIDGT applies the GT predicate on the "ocr_record_id" field.
func OcrRecordIDGT(v uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldGT(FieldOcrRecordID, v))
}

// OcrRecordIDGTE applies the GTE predicate on the "ocr_record_id" field.
func OcrRecordIDGTE(v uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldGTE(FieldOcrRecordID, v))
}

// OcrRecordIDLT applies the LT predicate on the "ocr_record_id" field.
func OcrRecordIDLT(v uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldLT(FieldOcrRecordID, v))
}

// OcrRecordIDLTE applies the LTE predicate on the "ocr_record_id" field.
func OcrRecordIDLTE(v uuid.UUID) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldLTE(FieldOcrRecordID, v))
}

// OcrRecordIDIsNil applies the IsNil predicate on the "ocr_record_id" field.
func OcrRecordIDIsNil() predicate.AuditFile {
	return predicate.AuditFile(sql.FieldIsNull(FieldOcrRecordID))
}

// OcrRecordIDNotNil applies the NotNil predicate on the "ocr_record_id" field.
func OcrRecordIDNotNil() predicate.AuditFile {
	return predicate.AuditFile(sql.FieldNotNull(FieldOcrRecordID))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.AuditFile {
	return predicate.AuditFile(sql.FieldLTE(FieldUploadedAt, v))
}

// HasBuilding applies the HasEdge predicate on the "building" edge.
func HasBuilding() predicate.AuditFile {
	return predicate.AuditFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BuildingTable, BuildingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBuildingWith applies the HasEdge predicate on the "building" edge with a given conditions (other predicates).
func HasBuildingWith(preds ...predicate.Building) predicate.AuditFile {
	return predicate.AuditFile(func(s *sql.Selector) {
		step := newBuildingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOcr applies the HasEdge predicate on the "ocr" edge.
func HasOcr() predicate.AuditFile {
	return predicate.AuditFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, OcrTable, OcrColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOcrWith applies the HasEdge predicate on the "ocr" edge with a given conditions (other predicates).
func HasOcrWith(preds ...predicate.OCRRecord) predicate.AuditFile {
	return predicate.AuditFile(func(s *sql.Selector) {
		step := newOcrStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditFile) predicate.AuditFile {
	return predicate.AuditFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditFile) predicate.AuditFile {
	return predicate.AuditFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditFile) predicate.AuditFile {
	return predicate.AuditFile(sql.NotPredicates(p))
}
