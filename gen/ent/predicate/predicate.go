// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Audit is the predicate function for audit builders.
type Audit func(*sql.Selector)

// AuditFile is the predicate function for auditfile builders.
type AuditFile func(*sql.Selector)

// Building is the predicate function for building builders.
type Building func(*sql.Selector)

// DetailedReport is the predicate function for detailedreport builders.
type DetailedReport func(*sql.Selector)

// Equipment is the predicate function for equipment builders.
type Equipment func(*sql.Selector)

// OCRRecord is the predicate function for ocrrecord builders.
type OCRRecord func(*sql.Selector)

// Room is the predicate function for room builders.
type Room func(*sql.Selector)

// Translation is the predicate function for translation builders.
type Translation func(*sql.Selector)
