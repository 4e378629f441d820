package constants

// AuditType distinguishes the preliminary intake audit from the
// equipment-level detailed audit. Stable values, stored in DB.
type AuditType string

const (
	AuditInitial  AuditType = "initial"
	AuditDetailed AuditType = "detailed"
)

// AuditStatus is the canonical status for rows in audits.
type AuditStatus string

const (
	AuditStatusPending    AuditStatus = "pending"
	AuditStatusInProgress AuditStatus = "in_progress"
	AuditStatusCompleted  AuditStatus = "completed"
)

// FileStatus is the processing state of an uploaded audit document.
type FileStatus string

const (
	FileStatusPending   FileStatus = "pending"
	FileStatusProcessed FileStatus = "processed"
)

// BuildingType is the customer segment a building belongs to.
type BuildingType string

const (
	BuildingResidential BuildingType = "residential"
	BuildingCommercial  BuildingType = "commercial"
	BuildingIndustrial  BuildingType = "industrial"
	BuildingEducational BuildingType = "educational"
)

// BuildingTypes lists the accepted building types, for validation.
var BuildingTypes = []BuildingType{
	BuildingResidential,
	BuildingCommercial,
	BuildingIndustrial,
	BuildingEducational,
}

// ValidBuildingType reports whether s is a known building type.
func ValidBuildingType(s string) bool {
	for _, t := range BuildingTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}
