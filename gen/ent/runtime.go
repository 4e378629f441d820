// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/hrunx/es2square/db/ent/schema"
	"github.com/hrunx/es2square/gen/ent/audit"
	"github.com/hrunx/es2square/gen/ent/auditfile"
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/detailedreport"
	"github.com/hrunx/es2square/gen/ent/equipment"
	"github.com/hrunx/es2square/gen/ent/ocrrecord"
	"github.com/hrunx/es2square/gen/ent/room"
	"github.com/hrunx/es2square/gen/ent/translation"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditFields := schema.Audit{}.Fields()
	_ = auditFields
	// auditDescType is the schema descriptor for type field.
	auditDescType := auditFields[2].Descriptor()
	// audit.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	audit.TypeValidator = func() func(string) error {
		validators := auditDescType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_type string) error {
			for _, fn := range fns {
				if err := fn(_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// auditDescStatus is the schema descriptor for status field.
	auditDescStatus := auditFields[3].Descriptor()
	// audit.DefaultStatus holds the default value on creation for the status field.
	audit.DefaultStatus = auditDescStatus.Default.(string)
	// auditDescCreatedAt is the schema descriptor for created_at field.
	auditDescCreatedAt := auditFields[9].Descriptor()
	// audit.DefaultCreatedAt holds the default value on creation for the created_at field.
	audit.DefaultCreatedAt = auditDescCreatedAt.Default.(func() time.Time)
	// auditDescUpdatedAt is the schema descriptor for updated_at field.
	auditDescUpdatedAt := auditFields[10].Descriptor()
	// audit.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	audit.DefaultUpdatedAt = auditDescUpdatedAt.Default.(func() time.Time)
	// audit.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	audit.UpdateDefaultUpdatedAt = auditDescUpdatedAt.UpdateDefault.(func() time.Time)
	// auditDescID is the schema descriptor for id field.
	auditDescID := auditFields[0].Descriptor()
	// audit.DefaultID holds the default value on creation for the id field.
	audit.DefaultID = auditDescID.Default.(func() uuid.UUID)
	auditfileFields := schema.AuditFile{}.Fields()
	_ = auditfileFields
	// auditfileDescFileURL is the schema descriptor for file_url field.
	auditfileDescFileURL := auditfileFields[2].Descriptor()
	// auditfile.FileURLValidator is a validator for the "file_url" field. It is called by the builders before save.
	auditfile.FileURLValidator = auditfileDescFileURL.Validators[0].(func(string) error)
	// auditfileDescFileName is the schema descriptor for file_name field.
	auditfileDescFileName := auditfileFields[3].Descriptor()
	// auditfile.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	auditfile.FileNameValidator = auditfileDescFileName.Validators[0].(func(string) error)
	// auditfileDescFileType is the schema descriptor for file_type field.
	auditfileDescFileType := auditfileFields[4].Descriptor()
	// auditfile.FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	auditfile.FileTypeValidator = auditfileDescFileType.Validators[0].(func(string) error)
	// auditfileDescFileSize is the schema descriptor for file_size field.
	auditfileDescFileSize := auditfileFields[5].Descriptor()
	// auditfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	auditfile.FileSizeValidator = auditfileDescFileSize.Validators[0].(func(int) error)
	// auditfileDescProcessingStatus is the schema descriptor for processing_status field.
	auditfileDescProcessingStatus := auditfileFields[6].Descriptor()
	// auditfile.DefaultProcessingStatus holds the default value on creation for the processing_status field.
	auditfile.DefaultProcessingStatus = auditfileDescProcessingStatus.Default.(string)
	// auditfileDescUploadedAt is the schema descriptor for uploaded_at field.
	auditfileDescUploadedAt := auditfileFields[8].Descriptor()
	// auditfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	auditfile.DefaultUploadedAt = auditfileDescUploadedAt.Default.(func() time.Time)
	// auditfileDescID is the schema descriptor for id field.
	auditfileDescID := auditfileFields[0].Descriptor()
	// auditfile.DefaultID holds the default value on creation for the id field.
	auditfile.DefaultID = auditfileDescID.Default.(func() uuid.UUID)
	buildingFields := schema.Building{}.Fields()
	_ = buildingFields
	// buildingDescName is the schema descriptor for name field.
	buildingDescName := buildingFields[1].Descriptor()
	// building.NameValidator is a validator for the "name" field. It is called by the builders before save.
	building.NameValidator = buildingDescName.Validators[0].(func(string) error)
	// buildingDescAddress is the schema descriptor for address field.
	buildingDescAddress := buildingFields[2].Descriptor()
	// building.AddressValidator is a validator for the "address" field. It is called by the builders before save.
	building.AddressValidator = buildingDescAddress.Validators[0].(func(string) error)
	// buildingDescType is the schema descriptor for type field.
	buildingDescType := buildingFields[3].Descriptor()
	// building.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	building.TypeValidator = func() func(string) error {
		validators := buildingDescType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_type string) error {
			for _, fn := range fns {
				if err := fn(_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// buildingDescArea is the schema descriptor for area field.
	buildingDescArea := buildingFields[4].Descriptor()
	// building.AreaValidator is a validator for the "area" field. It is called by the builders before save.
	building.AreaValidator = buildingDescArea.Validators[0].(func(float64) error)
	// buildingDescCreatedAt is the schema descriptor for created_at field.
	buildingDescCreatedAt := buildingFields[8].Descriptor()
	// building.DefaultCreatedAt holds the default value on creation for the created_at field.
	building.DefaultCreatedAt = buildingDescCreatedAt.Default.(func() time.Time)
	// buildingDescUpdatedAt is the schema descriptor for updated_at field.
	buildingDescUpdatedAt := buildingFields[9].Descriptor()
	// building.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	building.DefaultUpdatedAt = buildingDescUpdatedAt.Default.(func() time.Time)
	// building.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	building.UpdateDefaultUpdatedAt = buildingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// buildingDescID is the schema descriptor for id field.
	buildingDescID := buildingFields[0].Descriptor()
	// building.DefaultID holds the default value on creation for the id field.
	building.DefaultID = buildingDescID.Default.(func() uuid.UUID)
	detailedreportFields := schema.DetailedReport{}.Fields()
	_ = detailedreportFields
	// detailedreportDescGeneratedAt is the schema descriptor for generated_at field.
	detailedreportDescGeneratedAt := detailedreportFields[4].Descriptor()
	// detailedreport.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	detailedreport.DefaultGeneratedAt = detailedreportDescGeneratedAt.Default.(func() time.Time)
	// detailedreportDescID is the schema descriptor for id field.
	detailedreportDescID := detailedreportFields[0].Descriptor()
	// detailedreport.DefaultID holds the default value on creation for the id field.
	detailedreport.DefaultID = detailedreportDescID.Default.(func() uuid.UUID)
	equipmentFields := schema.Equipment{}.Fields()
	_ = equipmentFields
	// equipmentDescName is the schema descriptor for name field.
	equipmentDescName := equipmentFields[3].Descriptor()
	// equipment.NameValidator is a validator for the "name" field. It is called by the builders before save.
	equipment.NameValidator = equipmentDescName.Validators[0].(func(string) error)
	// equipmentDescCategory is the schema descriptor for category field.
	equipmentDescCategory := equipmentFields[4].Descriptor()
	// equipment.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	equipment.CategoryValidator = equipmentDescCategory.Validators[0].(func(string) error)
	// equipmentDescRatedPower is the schema descriptor for rated_power field.
	equipmentDescRatedPower := equipmentFields[7].Descriptor()
	// equipment.RatedPowerValidator is a validator for the "rated_power" field. It is called by the builders before save.
	equipment.RatedPowerValidator = equipmentDescRatedPower.Validators[0].(func(float64) error)
	// equipmentDescEnergyMetered is the schema descriptor for energy_metered field.
	equipmentDescEnergyMetered := equipmentFields[15].Descriptor()
	// equipment.DefaultEnergyMetered holds the default value on creation for the energy_metered field.
	equipment.DefaultEnergyMetered = equipmentDescEnergyMetered.Default.(bool)
	// equipmentDescIotConnected is the schema descriptor for iot_connected field.
	equipmentDescIotConnected := equipmentFields[16].Descriptor()
	// equipment.DefaultIotConnected holds the default value on creation for the iot_connected field.
	equipment.DefaultIotConnected = equipmentDescIotConnected.Default.(bool)
	// equipmentDescCreatedAt is the schema descriptor for created_at field.
	equipmentDescCreatedAt := equipmentFields[18].Descriptor()
	// equipment.DefaultCreatedAt holds the default value on creation for the created_at field.
	equipment.DefaultCreatedAt = equipmentDescCreatedAt.Default.(func() time.Time)
	// equipmentDescID is the schema descriptor for id field.
	equipmentDescID := equipmentFields[0].Descriptor()
	// equipment.DefaultID holds the default value on creation for the id field.
	equipment.DefaultID = equipmentDescID.Default.(func() uuid.UUID)
	ocrrecordFields := schema.OCRRecord{}.Fields()
	_ = ocrrecordFields
	// ocrrecordDescIsFloorPlan is the schema descriptor for is_floor_plan field.
	ocrrecordDescIsFloorPlan := ocrrecordFields[5].Descriptor()
	// ocrrecord.DefaultIsFloorPlan holds the default value on creation for the is_floor_plan field.
	ocrrecord.DefaultIsFloorPlan = ocrrecordDescIsFloorPlan.Default.(bool)
	// ocrrecordDescCreatedAt is the schema descriptor for created_at field.
	ocrrecordDescCreatedAt := ocrrecordFields[6].Descriptor()
	// ocrrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	ocrrecord.DefaultCreatedAt = ocrrecordDescCreatedAt.Default.(func() time.Time)
	// ocrrecordDescID is the schema descriptor for id field.
	ocrrecordDescID := ocrrecordFields[0].Descriptor()
	// ocrrecord.DefaultID holds the default value on creation for the id field.
	ocrrecord.DefaultID = ocrrecordDescID.Default.(func() uuid.UUID)
	roomFields := schema.Room{}.Fields()
	_ = roomFields
	// roomDescName is the schema descriptor for name field.
	roomDescName := roomFields[2].Descriptor()
	// room.NameValidator is a validator for the "name" field. It is called by the builders before save.
	room.NameValidator = roomDescName.Validators[0].(func(string) error)
	// roomDescCreatedAt is the schema descriptor for created_at field.
	roomDescCreatedAt := roomFields[11].Descriptor()
	// room.DefaultCreatedAt holds the default value on creation for the created_at field.
	room.DefaultCreatedAt = roomDescCreatedAt.Default.(func() time.Time)
	// roomDescID is the schema descriptor for id field.
	roomDescID := roomFields[0].Descriptor()
	// room.DefaultID holds the default value on creation for the id field.
	room.DefaultID = roomDescID.Default.(func() uuid.UUID)
	translationFields := schema.Translation{}.Fields()
	_ = translationFields
	// translationDescKey is the schema descriptor for key field.
	translationDescKey := translationFields[1].Descriptor()
	// translation.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	translation.KeyValidator = translationDescKey.Validators[0].(func(string) error)
	// translationDescLocale is the schema descriptor for locale field.
	translationDescLocale := translationFields[2].Descriptor()
	// translation.LocaleValidator is a validator for the "locale" field. It is called by the builders before save.
	translation.LocaleValidator = func() func(string) error {
		validators := translationDescLocale.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(locale string) error {
			for _, fn := range fns {
				if err := fn(locale); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// translationDescValue is the schema descriptor for value field.
	translationDescValue := translationFields[3].Descriptor()
	// translation.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	translation.ValueValidator = translationDescValue.Validators[0].(func(string) error)
	// translationDescKind is the schema descriptor for kind field.
	translationDescKind := translationFields[4].Descriptor()
	// translation.DefaultKind holds the default value on creation for the kind field.
	translation.DefaultKind = translationDescKind.Default.(string)
	// translationDescCreatedAt is the schema descriptor for created_at field.
	translationDescCreatedAt := translationFields[5].Descriptor()
	// translation.DefaultCreatedAt holds the default value on creation for the created_at field.
	translation.DefaultCreatedAt = translationDescCreatedAt.Default.(func() time.Time)
	// translationDescUpdatedAt is the schema descriptor for updated_at field.
	translationDescUpdatedAt := translationFields[6].Descriptor()
	// translation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	translation.DefaultUpdatedAt = translationDescUpdatedAt.Default.(func() time.Time)
	// translation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	translation.UpdateDefaultUpdatedAt = translationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// translationDescID is the schema descriptor for id field.
	translationDescID := translationFields[0].Descriptor()
	// translation.DefaultID holds the default value on creation for the id field.
	translation.DefaultID = translationDescID.Default.(func() uuid.UUID)
}
