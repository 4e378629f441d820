// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditsColumns holds the columns for the "audits" table.
	AuditsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "findings", Type: field.TypeJSON, Nullable: true},
		{Name: "recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "key_metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "executive_summary", Type: field.TypeJSON, Nullable: true},
		{Name: "ai_raw", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "building_id", Type: field.TypeUUID},
	}
	// AuditsTable holds the schema information for the "audits" table.
	AuditsTable = &schema.Table{
		Name:       "audits",
		Columns:    AuditsColumns,
		PrimaryKey: []*schema.Column{AuditsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audits_buildings_audits",
				Columns:    []*schema.Column{AuditsColumns[10]},
				RefColumns: []*schema.Column{BuildingsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "audit_building_id_type",
				Unique:  true,
				Columns: []*schema.Column{AuditsColumns[10], AuditsColumns[1]},
			},
		},
	}
	// AuditFilesColumns holds the columns for the "audit_files" table.
	AuditFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_url", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "processing_status", Type: field.TypeString, Default: "pending"},
		{Name: "ocr_record_id", Type: field.TypeUUID, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "building_id", Type: field.TypeUUID},
	}
	// AuditFilesTable holds the schema information for the "audit_files" table.
	AuditFilesTable = &schema.Table{
		Name:       "audit_files",
		Columns:    AuditFilesColumns,
		PrimaryKey: []*schema.Column{AuditFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_files_buildings_files",
				Columns:    []*schema.Column{AuditFilesColumns[8]},
				RefColumns: []*schema.Column{BuildingsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditfile_building_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{AuditFilesColumns[8], AuditFilesColumns[7]},
			},
			{
				Name:    "auditfile_file_url",
				Unique:  false,
				Columns: []*schema.Column{AuditFilesColumns[1]},
			},
		},
	}
	// BuildingsColumns holds the columns for the "buildings" table.
	BuildingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "address", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "area", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "construction_year", Type: field.TypeInt, Nullable: true},
		{Name: "rooms_declared", Type: field.TypeInt, Nullable: true},
		{Name: "residents", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BuildingsTable holds the schema information for the "buildings" table.
	BuildingsTable = &schema.Table{
		Name:       "buildings",
		Columns:    BuildingsColumns,
		PrimaryKey: []*schema.Column{BuildingsColumns[0]},
	}
	// DetailedReportsColumns holds the columns for the "detailed_reports" table.
	DetailedReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "content", Type: field.TypeJSON},
		{Name: "generated_at", Type: field.TypeTime},
		{Name: "audit_id", Type: field.TypeUUID},
		{Name: "building_id", Type: field.TypeUUID},
	}
	// DetailedReportsTable holds the schema information for the "detailed_reports" table.
	DetailedReportsTable = &schema.Table{
		Name:       "detailed_reports",
		Columns:    DetailedReportsColumns,
		PrimaryKey: []*schema.Column{DetailedReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "detailed_reports_audits_reports",
				Columns:    []*schema.Column{DetailedReportsColumns[3]},
				RefColumns: []*schema.Column{AuditsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "detailed_reports_buildings_reports",
				Columns:    []*schema.Column{DetailedReportsColumns[4]},
				RefColumns: []*schema.Column{BuildingsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "detailedreport_building_id_generated_at",
				Unique:  false,
				Columns: []*schema.Column{DetailedReportsColumns[4], DetailedReportsColumns[2]},
			},
		},
	}
	// EquipmentColumns holds the columns for the "equipment" table.
	EquipmentColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "sub_type", Type: field.TypeString, Nullable: true},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "rated_power", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "efficiency", Type: field.TypeFloat64, Nullable: true},
		{Name: "operating_hours", Type: field.TypeFloat64, Nullable: true},
		{Name: "operating_days", Type: field.TypeFloat64, Nullable: true},
		{Name: "load_factor", Type: field.TypeString, Nullable: true},
		{Name: "condition", Type: field.TypeString, Nullable: true},
		{Name: "age", Type: field.TypeInt, Nullable: true},
		{Name: "control_system", Type: field.TypeString, Nullable: true},
		{Name: "energy_metered", Type: field.TypeBool, Default: false},
		{Name: "iot_connected", Type: field.TypeBool, Default: false},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "building_id", Type: field.TypeUUID},
		{Name: "room_id", Type: field.TypeUUID, Nullable: true},
	}
	// EquipmentTable holds the schema information for the "equipment" table.
	EquipmentTable = &schema.Table{
		Name:       "equipment",
		Columns:    EquipmentColumns,
		PrimaryKey: []*schema.Column{EquipmentColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "equipment_buildings_equipment",
				Columns:    []*schema.Column{EquipmentColumns[17]},
				RefColumns: []*schema.Column{BuildingsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "equipment_rooms_equipment",
				Columns:    []*schema.Column{EquipmentColumns[18]},
				RefColumns: []*schema.Column{RoomsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "equipment_building_id",
				Unique:  false,
				Columns: []*schema.Column{EquipmentColumns[17]},
			},
			{
				Name:    "equipment_building_id_category",
				Unique:  false,
				Columns: []*schema.Column{EquipmentColumns[17], EquipmentColumns[2]},
			},
		},
	}
	// OcrRecordsColumns holds the columns for the "ocr_records" table.
	OcrRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "raw_text", Type: field.TypeString, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "processed_text", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "is_floor_plan", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "audit_file_ocr", Type: field.TypeUUID, Unique: true, Nullable: true},
		{Name: "building_id", Type: field.TypeUUID},
	}
	// OcrRecordsTable holds the schema information for the "ocr_records" table.
	OcrRecordsTable = &schema.Table{
		Name:       "ocr_records",
		Columns:    OcrRecordsColumns,
		PrimaryKey: []*schema.Column{OcrRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ocr_records_audit_files_ocr",
				Columns:    []*schema.Column{OcrRecordsColumns[6]},
				RefColumns: []*schema.Column{AuditFilesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "ocr_records_buildings_ocr_records",
				Columns:    []*schema.Column{OcrRecordsColumns[7]},
				RefColumns: []*schema.Column{BuildingsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ocrrecord_building_id_is_floor_plan_created_at",
				Unique:  false,
				Columns: []*schema.Column{OcrRecordsColumns[7], OcrRecordsColumns[4], OcrRecordsColumns[5]},
			},
		},
	}
	// RoomsColumns holds the columns for the "rooms" table.
	RoomsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "area", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "lighting_type", Type: field.TypeString, Nullable: true},
		{Name: "num_fixtures", Type: field.TypeInt, Nullable: true},
		{Name: "ac_type", Type: field.TypeString, Nullable: true},
		{Name: "ac_size", Type: field.TypeFloat64, Nullable: true},
		{Name: "windows", Type: field.TypeInt, Nullable: true},
		{Name: "room_data", Type: field.TypeJSON, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "building_id", Type: field.TypeUUID},
	}
	// RoomsTable holds the schema information for the "rooms" table.
	RoomsTable = &schema.Table{
		Name:       "rooms",
		Columns:    RoomsColumns,
		PrimaryKey: []*schema.Column{RoomsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "rooms_buildings_rooms",
				Columns:    []*schema.Column{RoomsColumns[11]},
				RefColumns: []*schema.Column{BuildingsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "room_building_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RoomsColumns[11], RoomsColumns[10]},
			},
		},
	}
	// TranslationsColumns holds the columns for the "translations" table.
	TranslationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "key", Type: field.TypeString},
		{Name: "locale", Type: field.TypeString, Size: 8},
		{Name: "value", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString, Default: "ui"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TranslationsTable holds the schema information for the "translations" table.
	TranslationsTable = &schema.Table{
		Name:       "translations",
		Columns:    TranslationsColumns,
		PrimaryKey: []*schema.Column{TranslationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "translation_key_locale",
				Unique:  true,
				Columns: []*schema.Column{TranslationsColumns[1], TranslationsColumns[2]},
			},
			{
				Name:    "translation_locale",
				Unique:  false,
				Columns: []*schema.Column{TranslationsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditsTable,
		AuditFilesTable,
		BuildingsTable,
		DetailedReportsTable,
		EquipmentTable,
		OcrRecordsTable,
		RoomsTable,
		TranslationsTable,
	}
)

func init() {
	AuditsTable.ForeignKeys[0].RefTable = BuildingsTable
	AuditsTable.Annotation = &entsql.Annotation{
		Table: "audits",
	}
	AuditFilesTable.ForeignKeys[0].RefTable = BuildingsTable
	AuditFilesTable.Annotation = &entsql.Annotation{
		Table: "audit_files",
	}
	BuildingsTable.Annotation = &entsql.Annotation{
		Table: "buildings",
	}
	DetailedReportsTable.ForeignKeys[0].RefTable = AuditsTable
	DetailedReportsTable.ForeignKeys[1].RefTable = BuildingsTable
	DetailedReportsTable.Annotation = &entsql.Annotation{
		Table: "detailed_reports",
	}
	EquipmentTable.ForeignKeys[0].RefTable = BuildingsTable
	EquipmentTable.ForeignKeys[1].RefTable = RoomsTable
	EquipmentTable.Annotation = &entsql.Annotation{
		Table: "equipment",
	}
	OcrRecordsTable.ForeignKeys[0].RefTable = AuditFilesTable
	OcrRecordsTable.ForeignKeys[1].RefTable = BuildingsTable
	OcrRecordsTable.Annotation = &entsql.Annotation{
		Table: "ocr_records",
	}
	RoomsTable.ForeignKeys[0].RefTable = BuildingsTable
	RoomsTable.Annotation = &entsql.Annotation{
		Table: "rooms",
	}
	TranslationsTable.Annotation = &entsql.Annotation{
		Table: "translations",
	}
}
