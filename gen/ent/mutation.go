// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hrunx/es2square/gen/ent/audit"
	"github.com/hrunx/es2square/gen/ent/auditfile"
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/detailedreport"
	"github.com/hrunx/es2square/gen/ent/equipment"
	"github.com/hrunx/es2square/gen/ent/ocrrecord"
	"github.com/hrunx/es2square/gen/ent/predicate"
	"github.com/hrunx/es2square/gen/ent/room"
	"github.com/hrunx/es2square/gen/ent/translation"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAudit          = "Audit"
	TypeAuditFile      = "AuditFile"
	TypeBuilding       = "Building"
	TypeDetailedReport = "DetailedReport"
	TypeEquipment      = "Equipment"
	TypeOCRRecord      = "OCRRecord"
	TypeRoom           = "Room"
	TypeTranslation    = "Translation"
)

// AuditMutation represents an operation that mutates the Audit nodes in the graph.
type AuditMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	_type                   *string
	status                  *string
	findings                *json.RawMessage
	appendfindings          json.RawMessage
	recommendations         *json.RawMessage
	appendrecommendations   json.RawMessage
	key_metrics             *json.RawMessage
	appendkey_metrics       json.RawMessage
	executive_summary       *json.RawMessage
	appendexecutive_summary json.RawMessage
	ai_raw                  *json.RawMessage
	appendai_raw            json.RawMessage
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	building                *uuid.UUID
	clearedbuilding         bool
	reports                 map[uuid.UUID]struct{}
	removedreports          map[uuid.UUID]struct{}
	clearedreports          bool
	done                    bool
	oldValue                func(context.Context) (*Audit, error)
	predicates              []predicate.Audit
}

var _ ent.Mutation = (*AuditMutation)(nil)

// auditOption allows management of the mutation configuration using functional options.
type auditOption func(*AuditMutation)

// newAuditMutation creates new mutation for the Audit entity.
func newAuditMutation(c config, op Op, opts ...auditOption) *AuditMutation {
	m := &AuditMutation{
		config:        c,
		op:            op,
		typ:           TypeAudit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditID sets the ID field of the mutation.
func withAuditID(id uuid.UUID) auditOption {
	return func(m *AuditMutation) {
		var (
			err   error
			once  sync.Once
			value *Audit
		)
		m.oldValue = func(ctx context.Context) (*Audit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Audit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAudit sets the old Audit of the mutation.
func withAudit(node *Audit) auditOption {
	return func(m *AuditMutation) {
		m.oldValue = func(context.Context) (*Audit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Audit entities.
func (m *AuditMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Audit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBuildingID sets the "building_id" field.
func (m *AuditMutation) SetBuildingID(u uuid.UUID) {
	m.building = &u
}

// BuildingID returns the value of the "building_id" field in the mutation.
func (m *AuditMutation) BuildingID() (r uuid.UUID, exists bool) {
	v := m.building
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildingID returns the old "building_id" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldBuildingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildingID: %w", err)
	}
	return oldValue.BuildingID, nil
}

// ResetBuildingID resets all changes to the "building_id" field.
func (m *AuditMutation) ResetBuildingID() {
	m.building = nil
}

// SetType sets the "type" field.
func (m *AuditMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *AuditMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *AuditMutation) ResetType() {
	m._type = nil
}

// SetStatus sets the "status" field.
func (m *AuditMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AuditMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AuditMutation) ResetStatus() {
	m.status = nil
}

// SetFindings sets the "findings" field.
func (m *AuditMutation) SetFindings(jm json.RawMessage) {
	m.findings = &jm
	m.appendfindings = nil
}

// Findings returns the value of the "findings" field in the mutation.
func (m *AuditMutation) Findings() (r json.RawMessage, exists bool) {
	v := m.findings
	if v == nil {
		return
	}
	return *v, true
}

// OldFindings returns the old "findings" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldFindings(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFindings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFindings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFindings: %w", err)
	}
	return oldValue.Findings, nil
}

// AppendFindings adds jm to the "findings" field.
func (m *AuditMutation) AppendFindings(jm json.RawMessage) {
	m.appendfindings = append(m.appendfindings, jm...)
}

// AppendedFindings returns the list of values that were appended to the "findings" field in this mutation.
func (m *AuditMutation) AppendedFindings() (json.RawMessage, bool) {
	if len(m.appendfindings) == 0 {
		return nil, false
	}
	return m.appendfindings, true
}

// ClearFindings clears the value of the "findings" field.
func (m *AuditMutation) ClearFindings() {
	m.findings = nil
	m.appendfindings = nil
	m.clearedFields[audit.FieldFindings] = struct{}{}
}

// FindingsCleared returns if the "findings" field was cleared in this mutation.
func (m *AuditMutation) FindingsCleared() bool {
	_, ok := m.clearedFields[audit.FieldFindings]
	return ok
}

// ResetFindings resets all changes to the "findings" field.
func (m *AuditMutation) ResetFindings() {
	m.findings = nil
	m.appendfindings = nil
	delete(m.clearedFields, audit.FieldFindings)
}

// SetRecommendations sets the "recommendations" field.
func (m *AuditMutation) SetRecommendations(jm json.RawMessage) {
	m.recommendations = &jm
	m.appendrecommendations = nil
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *AuditMutation) Recommendations() (r json.RawMessage, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldRecommendations(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// AppendRecommendations adds jm to the "recommendations" field.
func (m *AuditMutation) AppendRecommendations(jm json.RawMessage) {
	m.appendrecommendations = append(m.appendrecommendations, jm...)
}

// AppendedRecommendations returns the list of values that were appended to the "recommendations" field in this mutation.
func (m *AuditMutation) AppendedRecommendations() (json.RawMessage, bool) {
	if len(m.appendrecommendations) == 0 {
		return nil, false
	}
	return m.appendrecommendations, true
}

// ClearRecommendations clears the value of the "recommendations" field.
func (m *AuditMutation) ClearRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	m.clearedFields[audit.FieldRecommendations] = struct{}{}
}

// RecommendationsCleared returns if the "recommendations" field was cleared in this mutation.
func (m *AuditMutation) RecommendationsCleared() bool {
	_, ok := m.clearedFields[audit.FieldRecommendations]
	return ok
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *AuditMutation) ResetRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	delete(m.clearedFields, audit.FieldRecommendations)
}

// SetKeyMetrics sets the "key_metrics" field.
func (m *AuditMutation) SetKeyMetrics(jm json.RawMessage) {
	m.key_metrics = &jm
	m.appendkey_metrics = nil
}

// KeyMetrics returns the value of the "key_metrics" field in the mutation.
func (m *AuditMutation) KeyMetrics() (r json.RawMessage, exists bool) {
	v := m.key_metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyMetrics returns the old "key_metrics" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldKeyMetrics(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyMetrics: %w", err)
	}
	return oldValue.KeyMetrics, nil
}

// AppendKeyMetrics adds jm to the "key_metrics" field.
func (m *AuditMutation) AppendKeyMetrics(jm json.RawMessage) {
	m.appendkey_metrics = append(m.appendkey_metrics, jm...)
}

// AppendedKeyMetrics returns the list of values that were appended to the "key_metrics" field in this mutation.
func (m *AuditMutation) AppendedKeyMetrics() (json.RawMessage, bool) {
	if len(m.appendkey_metrics) == 0 {
		return nil, false
	}
	return m.appendkey_metrics, true
}

// ClearKeyMetrics clears the value of the "key_metrics" field.
func (m *AuditMutation) ClearKeyMetrics() {
	m.key_metrics = nil
	m.appendkey_metrics = nil
	m.clearedFields[audit.FieldKeyMetrics] = struct{}{}
}

// KeyMetricsCleared returns if the "key_metrics" field was cleared in this mutation.
func (m *AuditMutation) KeyMetricsCleared() bool {
	_, ok := m.clearedFields[audit.FieldKeyMetrics]
	return ok
}

// ResetKeyMetrics resets all changes to the "key_metrics" field.
func (m *AuditMutation) ResetKeyMetrics() {
	m.key_metrics = nil
	m.appendkey_metrics = nil
	delete(m.clearedFields, audit.FieldKeyMetrics)
}

// SetExecutiveSummary sets the "executive_summary" field.
func (m *AuditMutation) SetExecutiveSummary(jm json.RawMessage) {
	m.executive_summary = &jm
	m.appendexecutive_summary = nil
}

// ExecutiveSummary returns the value of the "executive_summary" field in the mutation.
func (m *AuditMutation) ExecutiveSummary() (r json.RawMessage, exists bool) {
	v := m.executive_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutiveSummary returns the old "executive_summary" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldExecutiveSummary(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutiveSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutiveSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutiveSummary: %w", err)
	}
	return oldValue.ExecutiveSummary, nil
}

// AppendExecutiveSummary adds jm to the "executive_summary" field.
func (m *AuditMutation) AppendExecutiveSummary(jm json.RawMessage) {
	m.appendexecutive_summary = append(m.appendexecutive_summary, jm...)
}

// AppendedExecutiveSummary returns the list of values that were appended to the "executive_summary" field in this mutation.
func (m *AuditMutation) AppendedExecutiveSummary() (json.RawMessage, bool) {
	if len(m.appendexecutive_summary) == 0 {
		return nil, false
	}
	return m.appendexecutive_summary, true
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (m *AuditMutation) ClearExecutiveSummary() {
	m.executive_summary = nil
	m.appendexecutive_summary = nil
	m.clearedFields[audit.FieldExecutiveSummary] = struct{}{}
}

// ExecutiveSummaryCleared returns if the "executive_summary" field was cleared in this mutation.
func (m *AuditMutation) ExecutiveSummaryCleared() bool {
	_, ok := m.clearedFields[audit.FieldExecutiveSummary]
	return ok
}

// ResetExecutiveSummary resets all changes to the "executive_summary" field.
func (m *AuditMutation) ResetExecutiveSummary() {
	m.executive_summary = nil
	m.appendexecutive_summary = nil
	delete(m.clearedFields, audit.FieldExecutiveSummary)
}

// SetAiRaw sets the "ai_raw" field.
func (m *AuditMutation) SetAiRaw(jm json.RawMessage) {
	m.ai_raw = &jm
	m.appendai_raw = nil
}

// AiRaw returns the value of the "ai_raw" field in the mutation.
func (m *AuditMutation) AiRaw() (r json.RawMessage, exists bool) {
	v := m.ai_raw
	if v == nil {
		return
	}
	return *v, true
}

// OldAiRaw returns the old "ai_raw" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldAiRaw(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiRaw: %w", err)
	}
	return oldValue.AiRaw, nil
}

// AppendAiRaw adds jm to the "ai_raw" field.
func (m *AuditMutation) AppendAiRaw(jm json.RawMessage) {
	m.appendai_raw = append(m.appendai_raw, jm...)
}

// AppendedAiRaw returns the list of values that were appended to the "ai_raw" field in this mutation.
func (m *AuditMutation) AppendedAiRaw() (json.RawMessage, bool) {
	if len(m.appendai_raw) == 0 {
		return nil, false
	}
	return m.appendai_raw, true
}

// ClearAiRaw clears the value of the "ai_raw" field.
func (m *AuditMutation) ClearAiRaw() {
	m.ai_raw = nil
	m.appendai_raw = nil
	m.clearedFields[audit.FieldAiRaw] = struct{}{}
}

// AiRawCleared returns if the "ai_raw" field was cleared in this mutation.
func (m *AuditMutation) AiRawCleared() bool {
	_, ok := m.clearedFields[audit.FieldAiRaw]
	return ok
}

// ResetAiRaw resets all changes to the "ai_raw" field.
func (m *AuditMutation) ResetAiRaw() {
	m.ai_raw = nil
	m.appendai_raw = nil
	delete(m.clearedFields, audit.FieldAiRaw)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AuditMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AuditMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AuditMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearBuilding clears the "building" edge to the Building entity.
func (m *AuditMutation) ClearBuilding() {
	m.clearedbuilding = true
	m.clearedFields[audit.FieldBuildingID] = struct{}{}
}

// BuildingCleared reports if the "building" edge to the Building entity was cleared.
func (m *AuditMutation) BuildingCleared() bool {
	return m.clearedbuilding
}

// BuildingIDs returns the "building" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BuildingID instead. It exists only for internal usage by the builders.
func (m *AuditMutation) BuildingIDs() (ids []uuid.UUID) {
	if id := m.building; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBuilding resets all changes to the "building" edge.
func (m *AuditMutation) ResetBuilding() {
	m.building = nil
	m.clearedbuilding = false
}

// AddReportIDs adds the "reports" edge to the DetailedReport entity by ids.
func (m *AuditMutation) AddReportIDs(ids ...uuid.UUID) {
	if m.reports == nil {
		m.reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the DetailedReport entity.
func (m *AuditMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the DetailedReport entity was cleared.
func (m *AuditMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the DetailedReport entity by IDs.
func (m *AuditMutation) RemoveReportIDs(ids ...uuid.UUID) {
	if m.removedreports == nil {
		m.removedreports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the DetailedReport entity.
func (m *AuditMutation) RemovedReportsIDs() (ids []uuid.UUID) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *AuditMutation) ReportsIDs() (ids []uuid.UUID) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *AuditMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// Where appends a list predicates to the AuditMutation builder.
func (m *AuditMutation) Where(ps ...predicate.Audit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Audit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Audit).
func (m *AuditMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.building != nil {
		fields = append(fields, audit.FieldBuildingID)
	}
	if m._type != nil {
		fields = append(fields, audit.FieldType)
	}
	if m.status != nil {
		fields = append(fields, audit.FieldStatus)
	}
	if m.findings != nil {
		fields = append(fields, audit.FieldFindings)
	}
	if m.recommendations != nil {
		fields = append(fields, audit.FieldRecommendations)
	}
	if m.key_metrics != nil {
		fields = append(fields, audit.FieldKeyMetrics)
	}
	if m.executive_summary != nil {
		fields = append(fields, audit.FieldExecutiveSummary)
	}
	if m.ai_raw != nil {
		fields = append(fields, audit.FieldAiRaw)
	}
	if m.created_at != nil {
		fields = append(fields, audit.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, audit.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case audit.FieldBuildingID:
		return m.BuildingID()
	case audit.FieldType:
		return m.GetType()
	case audit.FieldStatus:
		return m.Status()
	case audit.FieldFindings:
		return m.Findings()
	case audit.FieldRecommendations:
		return m.Recommendations()
	case audit.FieldKeyMetrics:
		return m.KeyMetrics()
	case audit.FieldExecutiveSummary:
		return m.ExecutiveSummary()
	case audit.FieldAiRaw:
		return m.AiRaw()
	case audit.FieldCreatedAt:
		return m.CreatedAt()
	case audit.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case audit.FieldBuildingID:
		return m.OldBuildingID(ctx)
	case audit.FieldType:
		return m.OldType(ctx)
	case audit.FieldStatus:
		return m.OldStatus(ctx)
	case audit.FieldFindings:
		return m.OldFindings(ctx)
	case audit.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case audit.FieldKeyMetrics:
		return m.OldKeyMetrics(ctx)
	case audit.FieldExecutiveSummary:
		return m.OldExecutiveSummary(ctx)
	case audit.FieldAiRaw:
		return m.OldAiRaw(ctx)
	case audit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case audit.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Audit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditMutation) SetField(name string, value ent.Value) error {
	switch name {
	case audit.FieldBuildingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildingID(v)
		return nil
	case audit.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case audit.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case audit.FieldFindings:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFindings(v)
		return nil
	case audit.FieldRecommendations:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case audit.FieldKeyMetrics:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyMetrics(v)
		return nil
	case audit.FieldExecutiveSummary:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutiveSummary(v)
		return nil
	case audit.FieldAiRaw:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiRaw(v)
		return nil
	case audit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case audit.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Audit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Audit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(audit.FieldFindings) {
		fields = append(fields, audit.FieldFindings)
	}
	if m.FieldCleared(audit.FieldRecommendations) {
		fields = append(fields, audit.FieldRecommendations)
	}
	if m.FieldCleared(audit.FieldKeyMetrics) {
		fields = append(fields, audit.FieldKeyMetrics)
	}
	if m.FieldCleared(audit.FieldExecutiveSummary) {
		fields = append(fields, audit.FieldExecutiveSummary)
	}
	if m.FieldCleared(audit.FieldAiRaw) {
		fields = append(fields, audit.FieldAiRaw)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditMutation) ClearField(name string) error {
	switch name {
	case audit.FieldFindings:
		m.ClearFindings()
		return nil
	case audit.FieldRecommendations:
		m.ClearRecommendations()
		return nil
	case audit.FieldKeyMetrics:
		m.ClearKeyMetrics()
		return nil
	case audit.FieldExecutiveSummary:
		m.ClearExecutiveSummary()
		return nil
	case audit.FieldAiRaw:
		m.ClearAiRaw()
		return nil
	}
	return fmt.Errorf("unknown Audit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditMutation) ResetField(name string) error {
	switch name {
	case audit.FieldBuildingID:
		m.ResetBuildingID()
		return nil
	case audit.FieldType:
		m.ResetType()
		return nil
	case audit.FieldStatus:
		m.ResetStatus()
		return nil
	case audit.FieldFindings:
		m.ResetFindings()
		return nil
	case audit.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case audit.FieldKeyMetrics:
		m.ResetKeyMetrics()
		return nil
	case audit.FieldExecutiveSummary:
		m.ResetExecutiveSummary()
		return nil
	case audit.FieldAiRaw:
		m.ResetAiRaw()
		return nil
	case audit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case audit.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Audit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.building != nil {
		edges = append(edges, audit.EdgeBuilding)
	}
	if m.reports != nil {
		edges = append(edges, audit.EdgeReports)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case audit.EdgeBuilding:
		if id := m.building; id != nil {
			return []ent.Value{*id}
		}
	case audit.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedreports != nil {
		edges = append(edges, audit.EdgeReports)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case audit.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbuilding {
		edges = append(edges, audit.EdgeBuilding)
	}
	if m.clearedreports {
		edges = append(edges, audit.EdgeReports)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditMutation) EdgeCleared(name string) bool {
	switch name {
	case audit.EdgeBuilding:
		return m.clearedbuilding
	case audit.EdgeReports:
		return m.clearedreports
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditMutation) ClearEdge(name string) error {
	switch name {
	case audit.EdgeBuilding:
		m.ClearBuilding()
		return nil
	}
	return fmt.Errorf("unknown Audit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditMutation) ResetEdge(name string) error {
	switch name {
	case audit.EdgeBuilding:
		m.ResetBuilding()
		return nil
	case audit.EdgeReports:
		m.ResetReports()
		return nil
	}
	return fmt.Errorf("unknown Audit edge %s", name)
}

// AuditFileMutation represents an operation that mutates the AuditFile nodes in the graph.
type AuditFileMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	file_url          *string
	file_name         *string
	file_type         *string
	file_size         *int
	addfile_size      *int
	processing_status *string
	ocr_record_id     *uuid.UUID
	uploaded_at       *time.Time
	clearedFields     map[string]struct{}
	building          *uuid.UUID
	clearedbuilding   bool
	ocr               *uuid.UUID
	clearedocr        bool
	done              bool
	oldValue          func(context.Context) (*AuditFile, error)
	predicates        []predicate.AuditFile
}

var _ ent.Mutation = (*AuditFileMutation)(nil)

// auditfileOption allows management of the mutation configuration using functional options.
type auditfileOption func(*AuditFileMutation)

// newAuditFileMutation creates new mutation for the AuditFile entity.
func newAuditFileMutation(c config, op Op, opts ...auditfileOption) *AuditFileMutation {
	m := &AuditFileMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditFileID sets the ID field of the mutation.
func withAuditFileID(id uuid.UUID) auditfileOption {
	return func(m *AuditFileMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditFile
		)
		m.oldValue = func(ctx context.Context) (*AuditFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditFile sets the old AuditFile of the mutation.
func withAuditFile(node *AuditFile) auditfileOption {
	return func(m *AuditFileMutation) {
		m.oldValue = func(context.Context) (*AuditFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditFile entities.
func (m *AuditFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBuildingID sets the "building_id" field.
func (m *AuditFileMutation) SetBuildingID(u uuid.UUID) {
	m.building = &u
}

// BuildingID returns the value of the "building_id" field in the mutation.
func (m *AuditFileMutation) BuildingID() (r uuid.UUID, exists bool) {
	v := m.building
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildingID returns the old "building_id" field's value of the AuditFile entity.
// If the AuditFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditFileMutation) OldBuildingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildingID: %w", err)
	}
	return oldValue.BuildingID, nil
}

// ResetBuildingID resets all changes to the "building_id" field.
func (m *AuditFileMutation) ResetBuildingID() {
	m.building = nil
}

// SetFileURL sets the "file_url" field.
func (m *AuditFileMutation) SetFileURL(s string) {
	m.file_url = &s
}

// FileURL returns the value of the "file_url" field in the mutation.
func (m *AuditFileMutation) FileURL() (r string, exists bool) {
	v := m.file_url
	if v == nil {
		return
	}
	return *v, true
}

// OldFileURL returns the old "file_url" field's value of the AuditFile entity.
// If the AuditFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditFileMutation) OldFileURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileURL: %w", err)
	}
	return oldValue.FileURL, nil
}

// ResetFileURL resets all changes to the "file_url" field.
func (m *AuditFileMutation) ResetFileURL() {
	m.file_url = nil
}

// SetFileName sets the "file_name" field.
func (m *AuditFileMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *AuditFileMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the AuditFile entity.
// If the AuditFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditFileMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *AuditFileMutation) ResetFileName() {
	m.file_name = nil
}

// SetFileType sets the "file_type" field.
func (m *AuditFileMutation) SetFileType(s string) {
	m.file_type = &s
}

// FileType returns the value of the "file_type" field in the mutation.
func (m *AuditFileMutation) FileType() (r string, exists bool) {
	v := m.file_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFileType returns the old "file_type" field's value of the AuditFile entity.
// If the AuditFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditFileMutation) OldFileType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileType: %w", err)
	}
	return oldValue.FileType, nil
}

// ResetFileType resets all changes to the "file_type" field.
func (m *AuditFileMutation) ResetFileType() {
	m.file_type = nil
}

// SetFileSize sets the "file_size" field.
func (m *AuditFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *AuditFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the AuditFile entity.
// If the AuditFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *AuditFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *AuditFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *AuditFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetProcessingStatus sets the "processing_status" field.
func (m *AuditFileMutation) SetProcessingStatus(s string) {
	m.processing_status = &s
}

// ProcessingStatus returns the value of the "processing_status" field in the mutation.
func (m *AuditFileMutation) ProcessingStatus() (r string, exists bool) {
	v := m.processing_status
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStatus returns the old "processing_status" field's value of the AuditFile entity.
// If the AuditFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditFileMutation) OldProcessingStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStatus: %w", err)
	}
	return oldValue.ProcessingStatus, nil
}

// ResetProcessingStatus resets all changes to the "processing_status" field.
func (m *AuditFileMutation) ResetProcessingStatus() {
	m.processing_status = nil
}

// SetOcrRecordID sets the "ocr_record_id" field.
func (m *AuditFileMutation) SetOcrRecordID(u uuid.UUID) {
	m.ocr_record_id = &u
}

// OcrRecordID returns the value of the "ocr_record_id" field in the mutation.
func (m *AuditFileMutation) OcrRecordID() (r uuid.UUID, exists bool) {
	v := m.ocr_record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrRecordID returns the old "ocr_record_id" field's value of the AuditFile entity.
// If the AuditFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditFileMutation) OldOcrRecordID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrRecordID: %w", err)
	}
	return oldValue.OcrRecordID, nil
}

// ClearOcrRecordID clears the value of the "ocr_record_id" field.
func (m *AuditFileMutation) ClearOcrRecordID() {
	m.ocr_record_id = nil
	m.clearedFields[auditfile.FieldOcrRecordID] = struct{}{}
}

// OcrRecordIDCleared returns if the "ocr_record_id" field was cleared in this mutation.
func (m *AuditFileMutation) OcrRecordIDCleared() bool {
	_, ok := m.clearedFields[auditfile.FieldOcrRecordID]
	return ok
}

// ResetOcrRecordID resets all changes to the "ocr_record_id" field.
func (m *AuditFileMutation) ResetOcrRecordID() {
	m.ocr_record_id = nil
	delete(m.clearedFields, auditfile.FieldOcrRecordID)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *AuditFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *AuditFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the AuditFile entity.
// If the AuditFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *AuditFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearBuilding clears the "building" edge to the Building entity.
func (m *AuditFileMutation) ClearBuilding() {
	m.clearedbuilding = true
	m.clearedFields[auditfile.FieldBuildingID] = struct{}{}
}

// BuildingCleared reports if the "building" edge to the Building entity was cleared.
func (m *AuditFileMutation) BuildingCleared() bool {
	return m.clearedbuilding
}

// BuildingIDs returns the "building" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BuildingID instead. It exists only for internal usage by the builders.
func (m *AuditFileMutation) BuildingIDs() (ids []uuid.UUID) {
	if id := m.building; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBuilding resets all changes to the "building" edge.
func (m *AuditFileMutation) ResetBuilding() {
	m.building = nil
	m.clearedbuilding = false
}

// SetOcrID sets the "ocr" edge to the OCRRecord entity by id.
func (m *AuditFileMutation) SetOcrID(id uuid.UUID) {
	m.ocr = &id
}

// ClearOcr clears the "ocr" edge to the OCRRecord entity.
func (m *AuditFileMutation) ClearOcr() {
	m.clearedocr = true
}

// OcrCleared reports if the "ocr" edge to the OCRRecord entity was cleared.
func (m *AuditFileMutation) OcrCleared() bool {
	return m.clearedocr
}

// OcrID returns the "ocr" edge ID in the mutation.
func (m *AuditFileMutation) OcrID() (id uuid.UUID, exists bool) {
	if m.ocr != nil {
		return *m.ocr, true
	}
	return
}

// OcrIDs returns the "ocr" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OcrID instead. It exists only for internal usage by the builders.
func (m *AuditFileMutation) OcrIDs() (ids []uuid.UUID) {
	if id := m.ocr; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOcr resets all changes to the "ocr" edge.
func (m *AuditFileMutation) ResetOcr() {
	m.ocr = nil
	m.clearedocr = false
}

// Where appends a list predicates to the AuditFileMutation builder.
func (m *AuditFileMutation) Where(ps ...predicate.AuditFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditFile).
func (m *AuditFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditFileMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.building != nil {
		fields = append(fields, auditfile.FieldBuildingID)
	}
	if m.file_url != nil {
		fields = append(fields, auditfile.FieldFileURL)
	}
	if m.file_name != nil {
		fields = append(fields, auditfile.FieldFileName)
	}
	if m.file_type != nil {
		fields = append(fields, auditfile.FieldFileType)
	}
	if m.file_size != nil {
		fields = append(fields, auditfile.FieldFileSize)
	}
	if m.processing_status != nil {
		fields = append(fields, auditfile.FieldProcessingStatus)
	}
	if m.ocr_record_id != nil {
		fields = append(fields, auditfile.FieldOcrRecordID)
	}
	if m.uploaded_at != nil {
		fields = append(fields, auditfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditfile.FieldBuildingID:
		return m.BuildingID()
	case auditfile.FieldFileURL:
		return m.FileURL()
	case auditfile.FieldFileName:
		return m.FileName()
	case auditfile.FieldFileType:
		return m.FileType()
	case auditfile.FieldFileSize:
		return m.FileSize()
	case auditfile.FieldProcessingStatus:
		return m.ProcessingStatus()
	case auditfile.FieldOcrRecordID:
		return m.OcrRecordID()
	case auditfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditfile.FieldBuildingID:
		return m.OldBuildingID(ctx)
	case auditfile.FieldFileURL:
		return m.OldFileURL(ctx)
	case auditfile.FieldFileName:
		return m.OldFileName(ctx)
	case auditfile.FieldFileType:
		return m.OldFileType(ctx)
	case auditfile.FieldFileSize:
		return m.OldFileSize(ctx)
	case auditfile.FieldProcessingStatus:
		return m.OldProcessingStatus(ctx)
	case auditfile.FieldOcrRecordID:
		return m.OldOcrRecordID(ctx)
	case auditfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditfile.FieldBuildingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildingID(v)
		return nil
	case auditfile.FieldFileURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileURL(v)
		return nil
	case auditfile.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case auditfile.FieldFileType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileType(v)
		return nil
	case auditfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case auditfile.FieldProcessingStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStatus(v)
		return nil
	case auditfile.FieldOcrRecordID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrRecordID(v)
		return nil
	case auditfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, auditfile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditfile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown AuditFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditfile.FieldOcrRecordID) {
		fields = append(fields, auditfile.FieldOcrRecordID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditFileMutation) ClearField(name string) error {
	switch name {
	case auditfile.FieldOcrRecordID:
		m.ClearOcrRecordID()
		return nil
	}
	return fmt.Errorf("unknown AuditFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditFileMutation) ResetField(name string) error {
	switch name {
	case auditfile.FieldBuildingID:
		m.ResetBuildingID()
		return nil
	case auditfile.FieldFileURL:
		m.ResetFileURL()
		return nil
	case auditfile.FieldFileName:
		m.ResetFileName()
		return nil
	case auditfile.FieldFileType:
		m.ResetFileType()
		return nil
	case auditfile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case auditfile.FieldProcessingStatus:
		m.ResetProcessingStatus()
		return nil
	case auditfile.FieldOcrRecordID:
		m.ResetOcrRecordID()
		return nil
	case auditfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.building != nil {
		edges = append(edges, auditfile.EdgeBuilding)
	}
	if m.ocr != nil {
		edges = append(edges, auditfile.EdgeOcr)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditfile.EdgeBuilding:
		if id := m.building; id != nil {
			return []ent.Value{*id}
		}
	case auditfile.EdgeOcr:
		if id := m.ocr; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditFileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbuilding {
		edges = append(edges, auditfile.EdgeBuilding)
	}
	if m.clearedocr {
		edges = append(edges, auditfile.EdgeOcr)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditFileMutation) EdgeCleared(name string) bool {
	switch name {
	case auditfile.EdgeBuilding:
		return m.clearedbuilding
	case auditfile.EdgeOcr:
		return m.clearedocr
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditFileMutation) ClearEdge(name string) error {
	switch name {
	case auditfile.EdgeBuilding:
		m.ClearBuilding()
		return nil
	case auditfile.EdgeOcr:
		m.ClearOcr()
		return nil
	}
	return fmt.Errorf("unknown AuditFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditFileMutation) ResetEdge(name string) error {
	switch name {
	case auditfile.EdgeBuilding:
		m.ResetBuilding()
		return nil
	case auditfile.EdgeOcr:
		m.ResetOcr()
		return nil
	}
	return fmt.Errorf("unknown AuditFile edge %s", name)
}

// BuildingMutation represents an operation that mutates the Building nodes in the graph.
type BuildingMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	name                 *string
	address              *string
	_type                *string
	area                 *float64
	addarea              *float64
	construction_year    *int
	addconstruction_year *int
	rooms_declared       *int
	addrooms_declared    *int
	residents            *int
	addresidents         *int
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	rooms                map[uuid.UUID]struct{}
	removedrooms         map[uuid.UUID]struct{}
	clearedrooms         bool
	equipment            map[uuid.UUID]struct{}
	removedequipment     map[uuid.UUID]struct{}
	clearedequipment     bool
	files                map[uuid.UUID]struct{}
	removedfiles         map[uuid.UUID]struct{}
	clearedfiles         bool
	ocr_records          map[uuid.UUID]struct{}
	removedocr_records   map[uuid.UUID]struct{}
	clearedocr_records   bool
	audits               map[uuid.UUID]struct{}
	removedaudits        map[uuid.UUID]struct{}
	clearedaudits        bool
	reports              map[uuid.UUID]struct{}
	removedreports       map[uuid.UUID]struct{}
	clearedreports       bool
	done                 bool
	oldValue             func(context.Context) (*Building, error)
	predicates           []predicate.Building
}

var _ ent.Mutation = (*BuildingMutation)(nil)

// buildingOption allows management of the mutation configuration using functional options.
type buildingOption func(*BuildingMutation)

// newBuildingMutation creates new mutation for the Building entity.
func newBuildingMutation(c config, op Op, opts ...buildingOption) *BuildingMutation {
	m := &BuildingMutation{
		config:        c,
		op:            op,
		typ:           TypeBuilding,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBuildingID sets the ID field of the mutation.
func withBuildingID(id uuid.UUID) buildingOption {
	return func(m *BuildingMutation) {
		var (
			err   error
			once  sync.Once
			value *Building
		)
		m.oldValue = func(ctx context.Context) (*Building, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Building.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBuilding sets the old Building of the mutation.
func withBuilding(node *Building) buildingOption {
	return func(m *BuildingMutation) {
		m.oldValue = func(context.Context) (*Building, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BuildingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BuildingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Building entities.
func (m *BuildingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BuildingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BuildingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Building.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *BuildingMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BuildingMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BuildingMutation) ResetName() {
	m.name = nil
}

// SetAddress sets the "address" field.
func (m *BuildingMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *BuildingMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ResetAddress resets all changes to the "address" field.
func (m *BuildingMutation) ResetAddress() {
	m.address = nil
}

// SetType sets the "type" field.
func (m *BuildingMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *BuildingMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *BuildingMutation) ResetType() {
	m._type = nil
}

// SetArea sets the "area" field.
func (m *BuildingMutation) SetArea(f float64) {
	m.area = &f
	m.addarea = nil
}

// Area returns the value of the "area" field in the mutation.
func (m *BuildingMutation) Area() (r float64, exists bool) {
	v := m.area
	if v == nil {
		return
	}
	return *v, true
}

// OldArea returns the old "area" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldArea(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArea is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArea requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArea: %w", err)
	}
	return oldValue.Area, nil
}

// AddArea adds f to the "area" field.
func (m *BuildingMutation) AddArea(f float64) {
	if m.addarea != nil {
		*m.addarea += f
	} else {
		m.addarea = &f
	}
}

// AddedArea returns the value that was added to the "area" field in this mutation.
func (m *BuildingMutation) AddedArea() (r float64, exists bool) {
	v := m.addarea
	if v == nil {
		return
	}
	return *v, true
}

// ResetArea resets all changes to the "area" field.
func (m *BuildingMutation) ResetArea() {
	m.area = nil
	m.addarea = nil
}

// SetConstructionYear sets the "construction_year" field.
func (m *BuildingMutation) SetConstructionYear(i int) {
	m.construction_year = &i
	m.addconstruction_year = nil
}

// ConstructionYear returns the value of the "construction_year" field in the mutation.
func (m *BuildingMutation) ConstructionYear() (r int, exists bool) {
	v := m.construction_year
	if v == nil {
		return
	}
	return *v, true
}

// OldConstructionYear returns the old "construction_year" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldConstructionYear(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstructionYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstructionYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstructionYear: %w", err)
	}
	return oldValue.ConstructionYear, nil
}

// AddConstructionYear adds i to the "construction_year" field.
func (m *BuildingMutation) AddConstructionYear(i int) {
	if m.addconstruction_year != nil {
		*m.addconstruction_year += i
	} else {
		m.addconstruction_year = &i
	}
}

// AddedConstructionYear returns the value that was added to the "construction_year" field in this mutation.
func (m *BuildingMutation) AddedConstructionYear() (r int, exists bool) {
	v := m.addconstruction_year
	if v == nil {
		return
	}
	return *v, true
}

// ClearConstructionYear clears the value of the "construction_year" field.
func (m *BuildingMutation) ClearConstructionYear() {
	m.construction_year = nil
	m.addconstruction_year = nil
	m.clearedFields[building.FieldConstructionYear] = struct{}{}
}

// ConstructionYearCleared returns if the "construction_year" field was cleared in this mutation.
func (m *BuildingMutation) ConstructionYearCleared() bool {
	_, ok := m.clearedFields[building.FieldConstructionYear]
	return ok
}

// ResetConstructionYear resets all changes to the "construction_year" field.
func (m *BuildingMutation) ResetConstructionYear() {
	m.construction_year = nil
	m.addconstruction_year = nil
	delete(m.clearedFields, building.FieldConstructionYear)
}

// SetRoomsDeclared sets the "rooms_declared" field.
func (m *BuildingMutation) SetRoomsDeclared(i int) {
	m.rooms_declared = &i
	m.addrooms_declared = nil
}

// RoomsDeclared returns the value of the "rooms_declared" field in the mutation.
func (m *BuildingMutation) RoomsDeclared() (r int, exists bool) {
	v := m.rooms_declared
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomsDeclared returns the old "rooms_declared" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldRoomsDeclared(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomsDeclared is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomsDeclared requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomsDeclared: %w", err)
	}
	return oldValue.RoomsDeclared, nil
}

// AddRoomsDeclared adds i to the "rooms_declared" field.
func (m *BuildingMutation) AddRoomsDeclared(i int) {
	if m.addrooms_declared != nil {
		*m.addrooms_declared += i
	} else {
		m.addrooms_declared = &i
	}
}

// AddedRoomsDeclared returns the value that was added to the "rooms_declared" field in this mutation.
func (m *BuildingMutation) AddedRoomsDeclared() (r int, exists bool) {
	v := m.addrooms_declared
	if v == nil {
		return
	}
	return *v, true
}

// ClearRoomsDeclared clears the value of the "rooms_declared" field.
func (m *BuildingMutation) ClearRoomsDeclared() {
	m.rooms_declared = nil
	m.addrooms_declared = nil
	m.clearedFields[building.FieldRoomsDeclared] = struct{}{}
}

// RoomsDeclaredCleared returns if the "rooms_declared" field was cleared in this mutation.
func (m *BuildingMutation) RoomsDeclaredCleared() bool {
	_, ok := m.clearedFields[building.FieldRoomsDeclared]
	return ok
}

// ResetRoomsDeclared resets all changes to the "rooms_declared" field.
func (m *BuildingMutation) ResetRoomsDeclared() {
	m.rooms_declared = nil
	m.addrooms_declared = nil
	delete(m.clearedFields, building.FieldRoomsDeclared)
}

// SetResidents sets the "residents" field.
func (m *BuildingMutation) SetResidents(i int) {
	m.residents = &i
	m.addresidents = nil
}

// Residents returns the value of the "residents" field in the mutation.
func (m *BuildingMutation) Residents() (r int, exists bool) {
	v := m.residents
	if v == nil {
		return
	}
	return *v, true
}

// OldResidents returns the old "residents" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldResidents(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResidents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResidents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResidents: %w", err)
	}
	return oldValue.Residents, nil
}

// AddResidents adds i to the "residents" field.
func (m *BuildingMutation) AddResidents(i int) {
	if m.addresidents != nil {
		*m.addresidents += i
	} else {
		m.addresidents = &i
	}
}

// AddedResidents returns the value that was added to the "residents" field in this mutation.
func (m *BuildingMutation) AddedResidents() (r int, exists bool) {
	v := m.addresidents
	if v == nil {
		return
	}
	return *v, true
}

// ClearResidents clears the value of the "residents" field.
func (m *BuildingMutation) ClearResidents() {
	m.residents = nil
	m.addresidents = nil
	m.clearedFields[building.FieldResidents] = struct{}{}
}

// ResidentsCleared returns if the "residents" field was cleared in this mutation.
func (m *BuildingMutation) ResidentsCleared() bool {
	_, ok := m.clearedFields[building.FieldResidents]
	return ok
}

// ResetResidents resets all changes to the "residents" field.
func (m *BuildingMutation) ResetResidents() {
	m.residents = nil
	m.addresidents = nil
	delete(m.clearedFields, building.FieldResidents)
}

// SetCreatedAt sets the "created_at" field.
func (m *BuildingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BuildingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BuildingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BuildingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BuildingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Building entity.
// If the Building object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BuildingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRoomIDs adds the "rooms" edge to the Room entity by ids.
func (m *BuildingMutation) AddRoomIDs(ids ...uuid.UUID) {
	if m.rooms == nil {
		m.rooms = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.rooms[ids[i]] = struct{}{}
	}
}

// ClearRooms clears the "rooms" edge to the Room entity.
func (m *BuildingMutation) ClearRooms() {
	m.clearedrooms = true
}

// RoomsCleared reports if the "rooms" edge to the Room entity was cleared.
func (m *BuildingMutation) RoomsCleared() bool {
	return m.clearedrooms
}

// RemoveRoomIDs removes the "rooms" edge to the Room entity by IDs.
func (m *BuildingMutation) RemoveRoomIDs(ids ...uuid.UUID) {
	if m.removedrooms == nil {
		m.removedrooms = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.rooms, ids[i])
		m.removedrooms[ids[i]] = struct{}{}
	}
}

// RemovedRooms returns the removed IDs of the "rooms" edge to the Room entity.
func (m *BuildingMutation) RemovedRoomsIDs() (ids []uuid.UUID) {
	for id := range m.removedrooms {
		ids = append(ids, id)
	}
	return
}

// RoomsIDs returns the "rooms" edge IDs in the mutation.
func (m *BuildingMutation) RoomsIDs() (ids []uuid.UUID) {
	for id := range m.rooms {
		ids = append(ids, id)
	}
	return
}

// ResetRooms resets all changes to the "rooms" edge.
func (m *BuildingMutation) ResetRooms() {
	m.rooms = nil
	m.clearedrooms = false
	m.removedrooms = nil
}

// AddEquipmentIDs adds the "equipment" edge to the Equipment entity by ids.
func (m *BuildingMutation) AddEquipmentIDs(ids ...uuid.UUID) {
	if m.equipment == nil {
		m.equipment = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.equipment[ids[i]] = struct{}{}
	}
}

// ClearEquipment clears the "equipment" edge to the Equipment entity.
func (m *BuildingMutation) ClearEquipment() {
	m.clearedequipment = true
}

// EquipmentCleared reports if the "equipment" edge to the Equipment entity was cleared.
func (m *BuildingMutation) EquipmentCleared() bool {
	return m.clearedequipment
}

// RemoveEquipmentIDs removes the "equipment" edge to the Equipment entity by IDs.
func (m *BuildingMutation) RemoveEquipmentIDs(ids ...uuid.UUID) {
	if m.removedequipment == nil {
		m.removedequipment = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.equipment, ids[i])
		m.removedequipment[ids[i]] = struct{}{}
	}
}

// RemovedEquipment returns the removed IDs of the "equipment" edge to the Equipment entity.
func (m *BuildingMutation) RemovedEquipmentIDs() (ids []uuid.UUID) {
	for id := range m.removedequipment {
		ids = append(ids, id)
	}
	return
}

// EquipmentIDs returns the "equipment" edge IDs in the mutation.
func (m *BuildingMutation) EquipmentIDs() (ids []uuid.UUID) {
	for id := range m.equipment {
		ids = append(ids, id)
	}
	return
}

// ResetEquipment resets all changes to the "equipment" edge.
func (m *BuildingMutation) ResetEquipment() {
	m.equipment = nil
	m.clearedequipment = false
	m.removedequipment = nil
}

// AddFileIDs adds the "files" edge to the AuditFile entity by ids.
func (m *BuildingMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the AuditFile entity.
func (m *BuildingMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the AuditFile entity was cleared.
func (m *BuildingMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the AuditFile entity by IDs.
func (m *BuildingMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the AuditFile entity.
func (m *BuildingMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *BuildingMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *BuildingMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// AddOcrRecordIDs adds the "ocr_records" edge to the OCRRecord entity by ids.
func (m *BuildingMutation) AddOcrRecordIDs(ids ...uuid.UUID) {
	if m.ocr_records == nil {
		m.ocr_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.ocr_records[ids[i]] = struct{}{}
	}
}

// ClearOcrRecords clears the "ocr_records" edge to the OCRRecord entity.
func (m *BuildingMutation) ClearOcrRecords() {
	m.clearedocr_records = true
}

// OcrRecordsCleared reports if the "ocr_records" edge to the OCRRecord entity was cleared.
func (m *BuildingMutation) OcrRecordsCleared() bool {
	return m.clearedocr_records
}

// RemoveOcrRecordIDs removes the "ocr_records" edge to the OCRRecord entity by IDs.
func (m *BuildingMutation) RemoveOcrRecordIDs(ids ...uuid.UUID) {
	if m.removedocr_records == nil {
		m.removedocr_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.ocr_records, ids[i])
		m.removedocr_records[ids[i]] = struct{}{}
	}
}

// RemovedOcrRecords returns the removed IDs of the "ocr_records" edge to the OCRRecord entity.
func (m *BuildingMutation) RemovedOcrRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedocr_records {
		ids = append(ids, id)
	}
	return
}

// OcrRecordsIDs returns the "ocr_records" edge IDs in the mutation.
func (m *BuildingMutation) OcrRecordsIDs() (ids []uuid.UUID) {
	for id := range m.ocr_records {
		ids = append(ids, id)
	}
	return
}

// ResetOcrRecords resets all changes to the "ocr_records" edge.
func (m *BuildingMutation) ResetOcrRecords() {
	m.ocr_records = nil
	m.clearedocr_records = false
	m.removedocr_records = nil
}

// AddAuditIDs adds the "audits" edge to the Audit entity by ids.
func (m *BuildingMutation) AddAuditIDs(ids ...uuid.UUID) {
	if m.audits == nil {
		m.audits = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.audits[ids[i]] = struct{}{}
	}
}

// ClearAudits clears the "audits" edge to the Audit entity.
func (m *BuildingMutation) ClearAudits() {
	m.clearedaudits = true
}

// AuditsCleared reports if the "audits" edge to the Audit entity was cleared.
func (m *BuildingMutation) AuditsCleared() bool {
	return m.clearedaudits
}

// RemoveAuditIDs removes the "audits" edge to the Audit entity by IDs.
func (m *BuildingMutation) RemoveAuditIDs(ids ...uuid.UUID) {
	if m.removedaudits == nil {
		m.removedaudits = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.audits, ids[i])
		m.removedaudits[ids[i]] = struct{}{}
	}
}

// RemovedAudits returns the removed IDs of the "audits" edge to the Audit entity.
func (m *BuildingMutation) RemovedAuditsIDs() (ids []uuid.UUID) {
	for id := range m.removedaudits {
		ids = append(ids, id)
	}
	return
}

// AuditsIDs returns the "audits" edge IDs in the mutation.
func (m *BuildingMutation) AuditsIDs() (ids []uuid.UUID) {
	for id := range m.audits {
		ids = append(ids, id)
	}
	return
}

// ResetAudits resets all changes to the "audits" edge.
func (m *BuildingMutation) ResetAudits() {
	m.audits = nil
	m.clearedaudits = false
	m.removedaudits = nil
}

// AddReportIDs adds the "reports" edge to the DetailedReport entity by ids.
func (m *BuildingMutation) AddReportIDs(ids ...uuid.UUID) {
	if m.reports == nil {
		m.reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the DetailedReport entity.
func (m *BuildingMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the DetailedReport entity was cleared.
func (m *BuildingMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the DetailedReport entity by IDs.
func (m *BuildingMutation) RemoveReportIDs(ids ...uuid.UUID) {
	if m.removedreports == nil {
		m.removedreports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the DetailedReport entity.
func (m *BuildingMutation) RemovedReportsIDs() (ids []uuid.UUID) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *BuildingMutation) ReportsIDs() (ids []uuid.UUID) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *BuildingMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// Where appends a list predicates to the BuildingMutation builder.
func (m *BuildingMutation) Where(ps ...predicate.Building) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BuildingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BuildingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Building, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BuildingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BuildingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Building).
func (m *BuildingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BuildingMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, building.FieldName)
	}
	if m.address != nil {
		fields = append(fields, building.FieldAddress)
	}
	if m._type != nil {
		fields = append(fields, building.FieldType)
	}
	if m.area != nil {
		fields = append(fields, building.FieldArea)
	}
	if m.construction_year != nil {
		fields = append(fields, building.FieldConstructionYear)
	}
	if m.rooms_declared != nil {
		fields = append(fields, building.FieldRoomsDeclared)
	}
	if m.residents != nil {
		fields = append(fields, building.FieldResidents)
	}
	if m.created_at != nil {
		fields = append(fields, building.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, building.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BuildingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case building.FieldName:
		return m.Name()
	case building.FieldAddress:
		return m.Address()
	case building.FieldType:
		return m.GetType()
	case building.FieldArea:
		return m.Area()
	case building.FieldConstructionYear:
		return m.ConstructionYear()
	case building.FieldRoomsDeclared:
		return m.RoomsDeclared()
	case building.FieldResidents:
		return m.Residents()
	case building.FieldCreatedAt:
		return m.CreatedAt()
	case building.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BuildingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case building.FieldName:
		return m.OldName(ctx)
	case building.FieldAddress:
		return m.OldAddress(ctx)
	case building.FieldType:
		return m.OldType(ctx)
	case building.FieldArea:
		return m.OldArea(ctx)
	case building.FieldConstructionYear:
		return m.OldConstructionYear(ctx)
	case building.FieldRoomsDeclared:
		return m.OldRoomsDeclared(ctx)
	case building.FieldResidents:
		return m.OldResidents(ctx)
	case building.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case building.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Building field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuildingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case building.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case building.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case building.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case building.FieldArea:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArea(v)
		return nil
	case building.FieldConstructionYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstructionYear(v)
		return nil
	case building.FieldRoomsDeclared:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomsDeclared(v)
		return nil
	case building.FieldResidents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResidents(v)
		return nil
	case building.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case building.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Building field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BuildingMutation) AddedFields() []string {
	var fields []string
	if m.addarea != nil {
		fields = append(fields, building.FieldArea)
	}
	if m.addconstruction_year != nil {
		fields = append(fields, building.FieldConstructionYear)
	}
	if m.addrooms_declared != nil {
		fields = append(fields, building.FieldRoomsDeclared)
	}
	if m.addresidents != nil {
		fields = append(fields, building.FieldResidents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BuildingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case building.FieldArea:
		return m.AddedArea()
	case building.FieldConstructionYear:
		return m.AddedConstructionYear()
	case building.FieldRoomsDeclared:
		return m.AddedRoomsDeclared()
	case building.FieldResidents:
		return m.AddedResidents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuildingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case building.FieldArea:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArea(v)
		return nil
	case building.FieldConstructionYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConstructionYear(v)
		return nil
	case building.FieldRoomsDeclared:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRoomsDeclared(v)
		return nil
	case building.FieldResidents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResidents(v)
		return nil
	}
	return fmt.Errorf("unknown Building numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BuildingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(building.FieldConstructionYear) {
		fields = append(fields, building.FieldConstructionYear)
	}
	if m.FieldCleared(building.FieldRoomsDeclared) {
		fields = append(fields, building.FieldRoomsDeclared)
	}
	if m.FieldCleared(building.FieldResidents) {
		fields = append(fields, building.FieldResidents)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BuildingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BuildingMutation) ClearField(name string) error {
	switch name {
	case building.FieldConstructionYear:
		m.ClearConstructionYear()
		return nil
	case building.FieldRoomsDeclared:
		m.ClearRoomsDeclared()
		return nil
	case building.FieldResidents:
		m.ClearResidents()
		return nil
	}
	return fmt.Errorf("unknown Building nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BuildingMutation) ResetField(name string) error {
	switch name {
	case building.FieldName:
		m.ResetName()
		return nil
	case building.FieldAddress:
		m.ResetAddress()
		return nil
	case building.FieldType:
		m.ResetType()
		return nil
	case building.FieldArea:
		m.ResetArea()
		return nil
	case building.FieldConstructionYear:
		m.ResetConstructionYear()
		return nil
	case building.FieldRoomsDeclared:
		m.ResetRoomsDeclared()
		return nil
	case building.FieldResidents:
		m.ResetResidents()
		return nil
	case building.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case building.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Building field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BuildingMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.rooms != nil {
		edges = append(edges, building.EdgeRooms)
	}
	if m.equipment != nil {
		edges = append(edges, building.EdgeEquipment)
	}
	if m.files != nil {
		edges = append(edges, building.EdgeFiles)
	}
	if m.ocr_records != nil {
		edges = append(edges, building.EdgeOcrRecords)
	}
	if m.audits != nil {
		edges = append(edges, building.EdgeAudits)
	}
	if m.reports != nil {
		edges = append(edges, building.EdgeReports)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BuildingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case building.EdgeRooms:
		ids := make([]ent.Value, 0, len(m.rooms))
		for id := range m.rooms {
			ids = append(ids, id)
		}
		return ids
	case building.EdgeEquipment:
		ids := make([]ent.Value, 0, len(m.equipment))
		for id := range m.equipment {
			ids = append(ids, id)
		}
		return ids
	case building.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	case building.EdgeOcrRecords:
		ids := make([]ent.Value, 0, len(m.ocr_records))
		for id := range m.ocr_records {
			ids = append(ids, id)
		}
		return ids
	case building.EdgeAudits:
		ids := make([]ent.Value, 0, len(m.audits))
		for id := range m.audits {
			ids = append(ids, id)
		}
		return ids
	case building.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BuildingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedrooms != nil {
		edges = append(edges, building.EdgeRooms)
	}
	if m.removedequipment != nil {
		edges = append(edges, building.EdgeEquipment)
	}
	if m.removedfiles != nil {
		edges = append(edges, building.EdgeFiles)
	}
	if m.removedocr_records != nil {
		edges = append(edges, building.EdgeOcrRecords)
	}
	if m.removedaudits != nil {
		edges = append(edges, building.EdgeAudits)
	}
	if m.removedreports != nil {
		edges = append(edges, building.EdgeReports)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BuildingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case building.EdgeRooms:
		ids := make([]ent.Value, 0, len(m.removedrooms))
		for id := range m.removedrooms {
			ids = append(ids, id)
		}
		return ids
	case building.EdgeEquipment:
		ids := make([]ent.Value, 0, len(m.removedequipment))
		for id := range m.removedequipment {
			ids = append(ids, id)
		}
		return ids
	case building.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	case building.EdgeOcrRecords:
		ids := make([]ent.Value, 0, len(m.removedocr_records))
		for id := range m.removedocr_records {
			ids = append(ids, id)
		}
		return ids
	case building.EdgeAudits:
		ids := make([]ent.Value, 0, len(m.removedaudits))
		for id := range m.removedaudits {
			ids = append(ids, id)
		}
		return ids
	case building.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BuildingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedrooms {
		edges = append(edges, building.EdgeRooms)
	}
	if m.clearedequipment {
		edges = append(edges, building.EdgeEquipment)
	}
	if m.clearedfiles {
		edges = append(edges, building.EdgeFiles)
	}
	if m.clearedocr_records {
		edges = append(edges, building.EdgeOcrRecords)
	}
	if m.clearedaudits {
		edges = append(edges, building.EdgeAudits)
	}
	if m.clearedreports {
		edges = append(edges, building.EdgeReports)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BuildingMutation) EdgeCleared(name string) bool {
	switch name {
	case building.EdgeRooms:
		return m.clearedrooms
	case building.EdgeEquipment:
		return m.clearedequipment
	case building.EdgeFiles:
		return m.clearedfiles
	case building.EdgeOcrRecords:
		return m.clearedocr_records
	case building.EdgeAudits:
		return m.clearedaudits
	case building.EdgeReports:
		return m.clearedreports
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BuildingMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Building unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BuildingMutation) ResetEdge(name string) error {
	switch name {
	case building.EdgeRooms:
		m.ResetRooms()
		return nil
	case building.EdgeEquipment:
		m.ResetEquipment()
		return nil
	case building.EdgeFiles:
		m.ResetFiles()
		return nil
	case building.EdgeOcrRecords:
		m.ResetOcrRecords()
		return nil
	case building.EdgeAudits:
		m.ResetAudits()
		return nil
	case building.EdgeReports:
		m.ResetReports()
		return nil
	}
	return fmt.Errorf("unknown Building edge %s", name)
}

// DetailedReportMutation represents an operation that mutates the DetailedReport nodes in the graph.
type DetailedReportMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	content         *json.RawMessage
	appendcontent   json.RawMessage
	generated_at    *time.Time
	clearedFields   map[string]struct{}
	building        *uuid.UUID
	clearedbuilding bool
	audit           *uuid.UUID
	clearedaudit    bool
	done            bool
	oldValue        func(context.Context) (*DetailedReport, error)
	predicates      []predicate.DetailedReport
}

var _ ent.Mutation = (*DetailedReportMutation)(nil)

// detailedreportOption allows management of the mutation configuration using functional options.
type detailedreportOption func(*DetailedReportMutation)

// newDetailedReportMutation creates new mutation for the DetailedReport entity.
func newDetailedReportMutation(c config, op Op, opts ...detailedreportOption) *DetailedReportMutation {
	m := &DetailedReportMutation{
		config:        c,
		op:            op,
		typ:           TypeDetailedReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDetailedReportID sets the ID field of the mutation.
func withDetailedReportID(id uuid.UUID) detailedreportOption {
	return func(m *DetailedReportMutation) {
		var (
			err   error
			once  sync.Once
			value *DetailedReport
		)
		m.oldValue = func(ctx context.Context) (*DetailedReport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DetailedReport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDetailedReport sets the old DetailedReport of the mutation.
func withDetailedReport(node *DetailedReport) detailedreportOption {
	return func(m *DetailedReportMutation) {
		m.oldValue = func(context.Context) (*DetailedReport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DetailedReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DetailedReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DetailedReport entities.
func (m *DetailedReportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DetailedReportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DetailedReportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DetailedReport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBuildingID sets the "building_id" field.
func (m *DetailedReportMutation) SetBuildingID(u uuid.UUID) {
	m.building = &u
}

// BuildingID returns the value of the "building_id" field in the mutation.
func (m *DetailedReportMutation) BuildingID() (r uuid.UUID, exists bool) {
	v := m.building
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildingID returns the old "building_id" field's value of the DetailedReport entity.
// If the DetailedReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetailedReportMutation) OldBuildingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildingID: %w", err)
	}
	return oldValue.BuildingID, nil
}

// ResetBuildingID resets all changes to the "building_id" field.
func (m *DetailedReportMutation) ResetBuildingID() {
	m.building = nil
}

// SetAuditID sets the "audit_id" field.
func (m *DetailedReportMutation) SetAuditID(u uuid.UUID) {
	m.audit = &u
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *DetailedReportMutation) AuditID() (r uuid.UUID, exists bool) {
	v := m.audit
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the DetailedReport entity.
// If the DetailedReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetailedReportMutation) OldAuditID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *DetailedReportMutation) ResetAuditID() {
	m.audit = nil
}

// SetContent sets the "content" field.
func (m *DetailedReportMutation) SetContent(jm json.RawMessage) {
	m.content = &jm
	m.appendcontent = nil
}

// Content returns the value of the "content" field in the mutation.
func (m *DetailedReportMutation) Content() (r json.RawMessage, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the DetailedReport entity.
// If the DetailedReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetailedReportMutation) OldContent(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// AppendContent adds jm to the "content" field.
func (m *DetailedReportMutation) AppendContent(jm json.RawMessage) {
	m.appendcontent = append(m.appendcontent, jm...)
}

// AppendedContent returns the list of values that were appended to the "content" field in this mutation.
func (m *DetailedReportMutation) AppendedContent() (json.RawMessage, bool) {
	if len(m.appendcontent) == 0 {
		return nil, false
	}
	return m.appendcontent, true
}

// ResetContent resets all changes to the "content" field.
func (m *DetailedReportMutation) ResetContent() {
	m.content = nil
	m.appendcontent = nil
}

// SetGeneratedAt sets the "generated_at" field.
func (m *DetailedReportMutation) SetGeneratedAt(t time.Time) {
	m.generated_at = &t
}

// GeneratedAt returns the value of the "generated_at" field in the mutation.
func (m *DetailedReportMutation) GeneratedAt() (r time.Time, exists bool) {
	v := m.generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedAt returns the old "generated_at" field's value of the DetailedReport entity.
// If the DetailedReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetailedReportMutation) OldGeneratedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedAt: %w", err)
	}
	return oldValue.GeneratedAt, nil
}

// ResetGeneratedAt resets all changes to the "generated_at" field.
func (m *DetailedReportMutation) ResetGeneratedAt() {
	m.generated_at = nil
}

// ClearBuilding clears the "building" edge to the Building entity.
func (m *DetailedReportMutation) ClearBuilding() {
	m.clearedbuilding = true
	m.clearedFields[detailedreport.FieldBuildingID] = struct{}{}
}

// BuildingCleared reports if the "building" edge to the Building entity was cleared.
func (m *DetailedReportMutation) BuildingCleared() bool {
	return m.clearedbuilding
}

// BuildingIDs returns the "building" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BuildingID instead. It exists only for internal usage by the builders.
func (m *DetailedReportMutation) BuildingIDs() (ids []uuid.UUID) {
	if id := m.building; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBuilding resets all changes to the "building" edge.
func (m *DetailedReportMutation) ResetBuilding() {
	m.building = nil
	m.clearedbuilding = false
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (m *DetailedReportMutation) ClearAudit() {
	m.clearedaudit = true
	m.clearedFields[detailedreport.FieldAuditID] = struct{}{}
}

// AuditCleared reports if the "audit" edge to the Audit entity was cleared.
func (m *DetailedReportMutation) AuditCleared() bool {
	return m.clearedaudit
}

// AuditIDs returns the "audit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditID instead. It exists only for internal usage by the builders.
func (m *DetailedReportMutation) AuditIDs() (ids []uuid.UUID) {
	if id := m.audit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAudit resets all changes to the "audit" edge.
func (m *DetailedReportMutation) ResetAudit() {
	m.audit = nil
	m.clearedaudit = false
}

// Where appends a list predicates to the DetailedReportMutation builder.
func (m *DetailedReportMutation) Where(ps ...predicate.DetailedReport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DetailedReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DetailedReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DetailedReport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DetailedReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DetailedReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DetailedReport).
func (m *DetailedReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DetailedReportMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.building != nil {
		fields = append(fields, detailedreport.FieldBuildingID)
	}
	if m.audit != nil {
		fields = append(fields, detailedreport.FieldAuditID)
	}
	if m.content != nil {
		fields = append(fields, detailedreport.FieldContent)
	}
	if m.generated_at != nil {
		fields = append(fields, detailedreport.FieldGeneratedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DetailedReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case detailedreport.FieldBuildingID:
		return m.BuildingID()
	case detailedreport.FieldAuditID:
		return m.AuditID()
	case detailedreport.FieldContent:
		return m.Content()
	case detailedreport.FieldGeneratedAt:
		return m.GeneratedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DetailedReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case detailedreport.FieldBuildingID:
		return m.OldBuildingID(ctx)
	case detailedreport.FieldAuditID:
		return m.OldAuditID(ctx)
	case detailedreport.FieldContent:
		return m.OldContent(ctx)
	case detailedreport.FieldGeneratedAt:
		return m.OldGeneratedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DetailedReport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DetailedReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case detailedreport.FieldBuildingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildingID(v)
		return nil
	case detailedreport.FieldAuditID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case detailedreport.FieldContent:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case detailedreport.FieldGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DetailedReport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DetailedReportMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DetailedReportMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DetailedReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DetailedReport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DetailedReportMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DetailedReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DetailedReportMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DetailedReport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DetailedReportMutation) ResetField(name string) error {
	switch name {
	case detailedreport.FieldBuildingID:
		m.ResetBuildingID()
		return nil
	case detailedreport.FieldAuditID:
		m.ResetAuditID()
		return nil
	case detailedreport.FieldContent:
		m.ResetContent()
		return nil
	case detailedreport.FieldGeneratedAt:
		m.ResetGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown DetailedReport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DetailedReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.building != nil {
		edges = append(edges, detailedreport.EdgeBuilding)
	}
	if m.audit != nil {
		edges = append(edges, detailedreport.EdgeAudit)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DetailedReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case detailedreport.EdgeBuilding:
		if id := m.building; id != nil {
			return []ent.Value{*id}
		}
	case detailedreport.EdgeAudit:
		if id := m.audit; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DetailedReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DetailedReportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DetailedReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbuilding {
		edges = append(edges, detailedreport.EdgeBuilding)
	}
	if m.clearedaudit {
		edges = append(edges, detailedreport.EdgeAudit)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DetailedReportMutation) EdgeCleared(name string) bool {
	switch name {
	case detailedreport.EdgeBuilding:
		return m.clearedbuilding
	case detailedreport.EdgeAudit:
		return m.clearedaudit
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DetailedReportMutation) ClearEdge(name string) error {
	switch name {
	case detailedreport.EdgeBuilding:
		m.ClearBuilding()
		return nil
	case detailedreport.EdgeAudit:
		m.ClearAudit()
		return nil
	}
	return fmt.Errorf("unknown DetailedReport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DetailedReportMutation) ResetEdge(name string) error {
	switch name {
	case detailedreport.EdgeBuilding:
		m.ResetBuilding()
		return nil
	case detailedreport.EdgeAudit:
		m.ResetAudit()
		return nil
	}
	return fmt.Errorf("unknown DetailedReport edge %s", name)
}

// EquipmentMutation represents an operation that mutates the Equipment nodes in the graph.
type EquipmentMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	name               *string
	category           *string
	sub_type           *string
	location           *string
	rated_power        *float64
	addrated_power     *float64
	efficiency         *float64
	addefficiency      *float64
	operating_hours    *float64
	addoperating_hours *float64
	operating_days     *float64
	addoperating_days  *float64
	load_factor        *string
	condition          *string
	age                *int
	addage             *int
	control_system     *string
	energy_metered     *bool
	iot_connected      *bool
	notes              *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	building           *uuid.UUID
	clearedbuilding    bool
	room               *uuid.UUID
	clearedroom        bool
	done               bool
	oldValue           func(context.Context) (*Equipment, error)
	predicates         []predicate.Equipment
}

var _ ent.Mutation = (*EquipmentMutation)(nil)

// equipmentOption allows management of the mutation configuration using functional options.
type equipmentOption func(*EquipmentMutation)

// newEquipmentMutation creates new mutation for the Equipment entity.
func newEquipmentMutation(c config, op Op, opts ...equipmentOption) *EquipmentMutation {
	m := &EquipmentMutation{
		config:        c,
		op:            op,
		typ:           TypeEquipment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEquipmentID sets the ID field of the mutation.
func withEquipmentID(id uuid.UUID) equipmentOption {
	return func(m *EquipmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Equipment
		)
		m.oldValue = func(ctx context.Context) (*Equipment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Equipment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEquipment sets the old Equipment of the mutation.
func withEquipment(node *Equipment) equipmentOption {
	return func(m *EquipmentMutation) {
		m.oldValue = func(context.Context) (*Equipment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EquipmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EquipmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Equipment entities.
func (m *EquipmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EquipmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EquipmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Equipment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBuildingID sets the "building_id" field.
func (m *EquipmentMutation) SetBuildingID(u uuid.UUID) {
	m.building = &u
}

// BuildingID returns the value of the "building_id" field in the mutation.
func (m *EquipmentMutation) BuildingID() (r uuid.UUID, exists bool) {
	v := m.building
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildingID returns the old "building_id" field's value of the Equipment entity.
// If the Equipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EquipmentMutation) OldBuildingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildingID: %w", err)
	}
	return oldValue.BuildingID, nil
}

// ResetBuildingID resets all changes to the "building_id" field.
func (m *EquipmentMutation) ResetBuildingID() {
	m.building = nil
}

// SetRoomID sets the "room_id" field.
func (m *EquipmentMutation) SetRoomID(u uuid.UUID) {
	m.room = &u
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *EquipmentMutation) RoomID() (r uuid.UUID, exists bool) {
	v := m.room
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the Equipment entity.
// If the Equipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EquipmentMutation) OldRoomID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ClearRoomID clears the value of the "room_id" field.
func (m *EquipmentMutation) ClearRoomID() {
	m.room = nil
	m.clearedFields[equipment.FieldRoomID] = struct{}{}
}

// RoomIDCleared returns if the "room_id" field was cleared in this mutation.
func (m *EquipmentMutation) RoomIDCleared() bool {
	_, ok := m.clearedFields[equipment.FieldRoomID]
	return ok
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *EquipmentMutation) ResetRoomID() {
	m.room = nil
	delete(m.clearedFields, equipment.FieldRoomID)
}

// SetName sets the "name" field.
func (m *EquipmentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EquipmentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Equipment entity.
// If the Equipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EquipmentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EquipmentMutation) ResetName() {
	m.name = nil
}

// SetCategory sets the "category" field.
func (m *EquipmentMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *EquipmentMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Equipment entity.
// If the Equipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EquipmentMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *EquipmentMutation) ResetCategory() {
	m.category = nil
}

// SetSubType sets the "sub_type" field.
func (m *EquipmentMutation) SetSubType(s string) {
	m.sub_type = &s
}

// SubType returns the value of the "sub_type" field in the mutation.
func (m *EquipmentMutation) SubType() (r string, exists bool) {
	v := m.sub_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSubType returns the old "sub_type" field's value of the Equipment entity.
// If the Equipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EquipmentMutation) OldSubType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubType: %w", err)
	}
	return oldValue.SubType, nil
}

// ClearSubType clears the value of the "sub_type" field.
func (m *EquipmentMutation) ClearSubType() {
	m.sub_type = nil
	m.clearedFields[equipment.FieldSubType] = struct{}{}
}

// SubTypeCleared returns if the "sub_type" field was cleared in this mutation.
func (m *EquipmentMutation) SubTypeCleared() bool {
	_, ok := m.clearedFields[equipment.FieldSubType]
	return ok
}

// ResetSubType resets all changes to the "sub_type" field.
func (m *EquipmentMutation) ResetSubType() {
	m.sub_type = nil
	delete(m.clearedFields, equipment.FieldSubType)
}

// SetLocation sets the "location" field.
func (m *EquipmentMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *EquipmentMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Equipment entity.
// If the Equipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EquipmentMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *EquipmentMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[equipment.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *EquipmentMutation) LocationCleared() bool {
	_, ok := m.clearedFields[equipment.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *EquipmentMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, equipment.FieldLocation)
}

// SetRatedPower sets the "rated_power" field.
func (m *EquipmentMutation) SetRatedPower(f float64) {
	m.rated_power = &f
	m.addrated_power = nil
}

// RatedPower returns the value of the "rated_power" field in the mutation.
func (m *EquipmentMutation) RatedPower() (r float64, exists bool) {
	v := m.rated_power
	if v == nil {
		return
	}
	return *v, true
}

// OldRatedPower returns the old "rated_power" field's value of the Equipment entity.
// If the Equipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EquipmentMutation) OldRatedPower(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRatedPower is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRatedPower requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRatedPower: %w", err)
	}
	return oldValue.RatedPower, nil
}

// AddRatedPower adds f to the "rated_power" field.
func (m *EquipmentMutation) AddRatedPower(f float64) {
	if m.addrated_power != nil {
		*m.addrated_power += f
	} else {
		m.addrated_power = &f
	}
}

// AddedRatedPower returns the value that was added to the "rated_power" field in this mutation.
func (m *EquipmentMutation) AddedRatedPower() (r float64, exists bool) {
	v := m.addrated_power
	if v == nil {
		return
	}
	return *v, true
}

// ResetRatedPower resets all changes to the "rated_power" field.
func (m *EquipmentMutation) ResetRatedPower() {
	m.rated_power = nil
	m.addrated_power = nil
}

// SetEfficiency sets the "efficiency" field.
func (m *EquipmentMutation) SetEfficiency(f float64) {
	m.efficiency = &f
	m.addefficiency = nil
}

// Efficiency returns the value of the "efficiency" field in the mutation.
func (m *EquipmentMutation) Efficiency() (r float64, exists bool) {
	v := m.efficiency
	if v == nil {
		return
	}
	return *v, true
}

// OldEfficiency returns the old "efficiency" field's value of the Equipment entity.
// If the Equipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EquipmentMutation) OldEfficiency(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEfficiency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEfficiency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEfficiency: %w", err)
	}
	return oldValue.Efficiency, nil
}

// AddEfficiency adds f to the "efficiency" field.
func (m *EquipmentMutation) AddEfficiency(f float64) {
	if m.addefficiency != nil {
		*m.addefficiency += f
	} else {
		m.addefficiency = &f
	}
}

// AddedEfficiency returns the value that was added to the "efficiency" field in this mutation.
func (m *EquipmentMutation) AddedEfficiency() (r float64, exists bool) {
	v := m.addefficiency
	if v == nil {
		return
	}
	return *v, true
}

// ClearEfficiency clears the value of the "efficiency" field.
func (m *EquipmentMutation) ClearEfficiency() {
	m.efficiency = nil
	m.addefficiency = nil
	m.clearedFields[equipment.FieldEfficiency] = struct{}{}
}

// EfficiencyCleared returns if the "efficiency" field was cleared in this mutation.
func (m *EquipmentMutation) EfficiencyCleared() bool {
	_, ok := m.clearedFields[equipment.FieldEfficiency]
	return ok
}

// ResetEfficiency resets all changes to the "efficiency" field.
func (m *EquipmentMutation) ResetEfficiency() {
	m.efficiency = nil
	m.addefficiency = nil
	delete(m.clearedFields, equipment.FieldEfficiency)
}

// SetOperatingHours sets the "operating_hours" field.
func (m *EquipmentMutation) SetOperatingHours(f float64) {
	m.operating_hours = &f
	m.addoperating_hours = nil
}

// OperatingHours returns the value of the "operating_hours" field in the mutation.
func (m *EquipmentMutation) OperatingHours() (r float64, exists bool) {
	v := m.operating_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldOperatingHours returns the old "operating_hours" field's value of the Equipment entity.
// If the Equipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EquipmentMutation) OldOperatingHours(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperatingHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperatingHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperatingHours: %w", err)
	}
	return oldValue.OperatingHours, nil
}

// AddOperatingHours adds f to the "operating_hours" field.
func (m *EquipmentMutation) AddOperatingHours(f float64) {
	if m.addoperating_hours != nil {
		*m.addoperating_hours += f
	} else {
		m.addoperating_hours = &f
	}
}

// AddedOperatingHours returns the value that was added to the "operating_hours" field in this mutation.
func (m *EquipmentMutation) AddedOperatingHours() (r float64, exists bool) {
	v := m.addoperating_hours
	if v == nil {
		return
	}
	return *v, true
}

// ClearOperatingHours clears the value of the "operating_hours" field.
func (m *EquipmentMutation) ClearOperatingHours() {
	m.operating_hours = nil
	m.addoperating_hours = nil
	m.clearedFields[equipment.FieldOperatingHours] = struct{}{}
}

// OperatingHoursCleared returns if the "operating_hours" field was cleared in this mutation.
func (m *EquipmentMutation) OperatingHoursCleared() bool {
	_, ok := m.clearedFields[equipment.FieldOperatingHours]
	return ok
}

// ResetOperatingHours resets all changes to the "operating_hours" field.
func (m *EquipmentMutation) ResetOperatingHours() {
	m.operating_hours = nil
	m.addoperating_hours = nil
	delete(m.clearedFields, equipment.FieldOperatingHours)
}

// SetOperatingDays sets the "operating_days" field.
func (m *EquipmentMutation) SetOperatingDays(f float64) {
	m.operating_days = &f
	m.addoperating_days = nil
}

// OperatingDays returns the value of the "operating_days" field in the mutation.
func (m *EquipmentMutation) OperatingDays() (r float64, exists bool) {
	v := m.operating_days
	if v == nil {
		return
	}
	return *v, true
}

// OldOperatingDays returns the old "operating_days" field's value of the Equipment entity.
// If the Equipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EquipmentMutation) OldOperatingDays(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperatingDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperatingDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperatingDays: %w", err)
	}
	return oldValue.OperatingDays, nil
}

// AddOperatingDays adds f to the "operating_days" field.
func (m *EquipmentMutation) AddOperatingDays(f float64) {
	if m.addoperating_days != nil {
		*m.addoperating_days += f
	} else {
		m.addoperating_days = &f
	}
}

// AddedOperatingDays returns the value that was added to the "operating_days" field in this mutation.
func (m *EquipmentMutation) AddedOperatingDays() (r float64, exists bool) {
	v := m.addoperating_days
	if v == nil {
		return
	}
	return *v, true
}

// ClearOperatingDays clears the value of the "operating_days" field.
func (m *EquipmentMutation) ClearOperatingDays() {
	m.operating_days = nil
	m.addoperating_days = nil
	m.clearedFields[equipment.FieldOperatingDays] = struct{}{}
}

// OperatingDaysCleared returns if the "operating_days" field was cleared in this mutation.
func (m *EquipmentMutation) OperatingDaysCleared() bool {
	_, ok := m.clearedFields[equipment.FieldOperatingDays]
	return ok
}

// ResetOperatingDays resets all changes to the "operating_days" field.
func (m *EquipmentMutation) ResetOperatingDays() {
	m.operating_days = nil
	m.addoperating_days = nil
	delete(m.clearedFields, equipment.FieldOperatingDays)
}

// SetLoadFactor sets the "load_factor" field.
func (m *EquipmentMutation) SetLoadFactor(s string) {
	m.load_factor = &s
}

// LoadFactor returns the value of the "load_factor" field in the mutation.
func (m *EquipmentMutation) LoadFactor() (r string, exists bool) {
	v := m.load_factor
	if v == nil {
		return
	}
	return *v, true
}

// OldLoadFactor returns the old "load_factor" field's value of the Equipment entity.
// If the Equipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EquipmentMutation) OldLoadFactor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoadFactor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoadFactor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoadFactor: %w", err)
	}
	return oldValue.LoadFactor, nil
}

// ClearLoadFactor clears the value of the "load_factor" field.
func (m *EquipmentMutation) ClearLoadFactor() {
	m.load_factor = nil
	m.clearedFields[equipment.FieldLoadFactor] = struct{}{}
}

// LoadFactorCleared returns if the "load_factor" field was cleared in this mutation.
func (m *EquipmentMutation) LoadFactorCleared() bool {
	_, ok := m.clearedFields[equipment.FieldLoadFactor]
	return ok
}

// ResetLoadFactor resets all changes to the "load_factor" field.
func (m *EquipmentMutation) ResetLoadFactor() {
	m.load_factor = nil
	delete(m.clearedFields, equipment.FieldLoadFactor)
}

// SetCondition sets the "condition" field.
func (m *EquipmentMutation) SetCondition(s string) {
	m.condition = &s
}

// Condition returns the value of the "condition" field in the mutation.
func (m *EquipmentMutation) Condition() (r string, exists bool) {
	v := m.condition
	if v == nil {
		return
	}
	return *v, true
}

// OldCondition returns the old "condition" field's value of the Equipment entity.
// If the Equipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EquipmentMutation) OldCondition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCondition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCondition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCondition: %w", err)
	}
	return oldValue.Condition, nil
}

// ClearCondition clears the value of the "condition" field.
func (m *EquipmentMutation) ClearCondition() {
	m.condition = nil
	m.clearedFields[equipment.FieldCondition] = struct{}{}
}

// ConditionCleared returns if the "condition" field was cleared in this mutation.
func (m *EquipmentMutation) ConditionCleared() bool {
	_, ok := m.clearedFields[equipment.FieldCondition]
	return ok
}

// ResetCondition resets all changes to the "condition" field.
func (m *EquipmentMutation) ResetCondition() {
	m.condition = nil
	delete(m.clearedFields, equipment.FieldCondition)
}

// SetAge sets the "age" field.
func (m *EquipmentMutation) SetAge(i int) {
	m.age = &i
	m.addage = nil
}

// Age returns the value of the "age" field in the mutation.
func (m *EquipmentMutation) Age() (r int, exists bool) {
	v := m.age
	if v == nil {
		return
	}
	return *v, true
}

// OldAge returns the old "age" field's value of the Equipment entity.
// If the Equipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EquipmentMutation) OldAge(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAge: %w", err)
	}
	return oldValue.Age, nil
}

// AddAge adds i to the "age" field.
func (m *EquipmentMutation) AddAge(i int) {
	if m.addage != nil {
		*m.addage += i
	} else {
		m.addage = &i
	}
}

// AddedAge returns the value that was added to the "age" field in this mutation.
func (m *EquipmentMutation) AddedAge() (r int, exists bool) {
	v := m.addage
	if v == nil {
		return
	}
	return *v, true
}

// ClearAge clears the value of the "age" field.
func (m *EquipmentMutation) ClearAge() {
	m.age = nil
	m.addage = nil
	m.clearedFields[equipment.FieldAge] = struct{}{}
}

// AgeCleared returns if the "age" field was cleared in this mutation.
func (m *EquipmentMutation) AgeCleared() bool {
	_, ok := m.clearedFields[equipment.FieldAge]
	return ok
}

// ResetAge resets all changes to the "age" field.
func (m *EquipmentMutation) ResetAge() {
	m.age = nil
	m.addage = nil
	delete(m.clearedFields, equipment.FieldAge)
}

// SetControlSystem sets the "control_system" field.
func (m *EquipmentMutation) SetControlSystem(s string) {
	m.control_system = &s
}

// ControlSystem returns the value of the "control_system" field in the mutation.
func (m *EquipmentMutation) ControlSystem() (r string, exists bool) {
	v := m.control_system
	if v == nil {
		return
	}
	return *v, true
}

// OldControlSystem returns the old "control_system" field's value of the Equipment entity.
// If the Equipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EquipmentMutation) OldControlSystem(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldControlSystem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldControlSystem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldControlSystem: %w", err)
	}
	return oldValue.ControlSystem, nil
}

// ClearControlSystem clears the value of the "control_system" field.
func (m *EquipmentMutation) ClearControlSystem() {
	m.control_system = nil
	m.clearedFields[equipment.FieldControlSystem] = struct{}{}
}

// ControlSystemCleared returns if the "control_system" field was cleared in this mutation.
func (m *EquipmentMutation) ControlSystemCleared() bool {
	_, ok := m.clearedFields[equipment.FieldControlSystem]
	return ok
}

// ResetControlSystem resets all changes to the "control_system" field.
func (m *EquipmentMutation) ResetControlSystem() {
	m.control_system = nil
	delete(m.clearedFields, equipment.FieldControlSystem)
}

// SetEnergyMetered sets the "energy_metered" field.
func (m *EquipmentMutation) SetEnergyMetered(b bool) {
	m.energy_metered = &b
}

// EnergyMetered returns the value of the "energy_metered" field in the mutation.
func (m *EquipmentMutation) EnergyMetered() (r bool, exists bool) {
	v := m.energy_metered
	if v == nil {
		return
	}
	return *v, true
}

// OldEnergyMetered returns the old "energy_metered" field's value of the Equipment entity.
// If the Equipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EquipmentMutation) OldEnergyMetered(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnergyMetered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnergyMetered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnergyMetered: %w", err)
	}
	return oldValue.EnergyMetered, nil
}

// ResetEnergyMetered resets all changes to the "energy_metered" field.
func (m *EquipmentMutation) ResetEnergyMetered() {
	m.energy_metered = nil
}

// SetIotConnected sets the "iot_connected" field.
func (m *EquipmentMutation) SetIotConnected(b bool) {
	m.iot_connected = &b
}

// IotConnected returns the value of the "iot_connected" field in the mutation.
func (m *EquipmentMutation) IotConnected() (r bool, exists bool) {
	v := m.iot_connected
	if v == nil {
		return
	}
	return *v, true
}

// OldIotConnected returns the old "iot_connected" field's value of the Equipment entity.
// If the Equipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EquipmentMutation) OldIotConnected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIotConnected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIotConnected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIotConnected: %w", err)
	}
	return oldValue.IotConnected, nil
}

// ResetIotConnected resets all changes to the "iot_connected" field.
func (m *EquipmentMutation) ResetIotConnected() {
	m.iot_connected = nil
}

// SetNotes sets the "notes" field.
func (m *EquipmentMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *EquipmentMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Equipment entity.
// If the Equipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EquipmentMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *EquipmentMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[equipment.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *EquipmentMutation) NotesCleared() bool {
	_, ok := m.clearedFields[equipment.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *EquipmentMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, equipment.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *EquipmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EquipmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Equipment entity.
// If the Equipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EquipmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EquipmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearBuilding clears the "building" edge to the Building entity.
func (m *EquipmentMutation) ClearBuilding() {
	m.clearedbuilding = true
	m.clearedFields[equipment.FieldBuildingID] = struct{}{}
}

// BuildingCleared reports if the "building" edge to the Building entity was cleared.
func (m *EquipmentMutation) BuildingCleared() bool {
	return m.clearedbuilding
}

// BuildingIDs returns the "building" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BuildingID instead. It exists only for internal usage by the builders.
func (m *EquipmentMutation) BuildingIDs() (ids []uuid.UUID) {
	if id := m.building; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBuilding resets all changes to the "building" edge.
func (m *EquipmentMutation) ResetBuilding() {
	m.building = nil
	m.clearedbuilding = false
}

// ClearRoom clears the "room" edge to the Room entity.
func (m *EquipmentMutation) ClearRoom() {
	m.clearedroom = true
	m.clearedFields[equipment.FieldRoomID] = struct{}{}
}

// RoomCleared reports if the "room" edge to the Room entity was cleared.
func (m *EquipmentMutation) RoomCleared() bool {
	return m.RoomIDCleared() || m.clearedroom
}

// RoomIDs returns the "room" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RoomID instead. It exists only for internal usage by the builders.
func (m *EquipmentMutation) RoomIDs() (ids []uuid.UUID) {
	if id := m.room; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRoom resets all changes to the "room" edge.
func (m *EquipmentMutation) ResetRoom() {
	m.room = nil
	m.clearedroom = false
}

// Where appends a list predicates to the EquipmentMutation builder.
func (m *EquipmentMutation) Where(ps ...predicate.Equipment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EquipmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EquipmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Equipment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EquipmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EquipmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Equipment).
func (m *EquipmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EquipmentMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.building != nil {
		fields = append(fields, equipment.FieldBuildingID)
	}
	if m.room != nil {
		fields = append(fields, equipment.FieldRoomID)
	}
	if m.name != nil {
		fields = append(fields, equipment.FieldName)
	}
	if m.category != nil {
		fields = append(fields, equipment.FieldCategory)
	}
	if m.sub_type != nil {
		fields = append(fields, equipment.FieldSubType)
	}
	if m.location != nil {
		fields = append(fields, equipment.FieldLocation)
	}
	if m.rated_power != nil {
		fields = append(fields, equipment.FieldRatedPower)
	}
	if m.efficiency != nil {
		fields = append(fields, equipment.FieldEfficiency)
	}
	if m.operating_hours != nil {
		fields = append(fields, equipment.FieldOperatingHours)
	}
	if m.operating_days != nil {
		fields = append(fields, equipment.FieldOperatingDays)
	}
	if m.load_factor != nil {
		fields = append(fields, equipment.FieldLoadFactor)
	}
	if m.condition != nil {
		fields = append(fields, equipment.FieldCondition)
	}
	if m.age != nil {
		fields = append(fields, equipment.FieldAge)
	}
	if m.control_system != nil {
		fields = append(fields, equipment.FieldControlSystem)
	}
	if m.energy_metered != nil {
		fields = append(fields, equipment.FieldEnergyMetered)
	}
	if m.iot_connected != nil {
		fields = append(fields, equipment.FieldIotConnected)
	}
	if m.notes != nil {
		fields = append(fields, equipment.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, equipment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EquipmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case equipment.FieldBuildingID:
		return m.BuildingID()
	case equipment.FieldRoomID:
		return m.RoomID()
	case equipment.FieldName:
		return m.Name()
	case equipment.FieldCategory:
		return m.Category()
	case equipment.FieldSubType:
		return m.SubType()
	case equipment.FieldLocation:
		return m.Location()
	case equipment.FieldRatedPower:
		return m.RatedPower()
	case equipment.FieldEfficiency:
		return m.Efficiency()
	case equipment.FieldOperatingHours:
		return m.OperatingHours()
	case equipment.FieldOperatingDays:
		return m.OperatingDays()
	case equipment.FieldLoadFactor:
		return m.LoadFactor()
	case equipment.FieldCondition:
		return m.Condition()
	case equipment.FieldAge:
		return m.Age()
	case equipment.FieldControlSystem:
		return m.ControlSystem()
	case equipment.FieldEnergyMetered:
		return m.EnergyMetered()
	case equipment.FieldIotConnected:
		return m.IotConnected()
	case equipment.FieldNotes:
		return m.Notes()
	case equipment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EquipmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case equipment.FieldBuildingID:
		return m.OldBuildingID(ctx)
	case equipment.FieldRoomID:
		return m.OldRoomID(ctx)
	case equipment.FieldName:
		return m.OldName(ctx)
	case equipment.FieldCategory:
		return m.OldCategory(ctx)
	case equipment.FieldSubType:
		return m.OldSubType(ctx)
	case equipment.FieldLocation:
		return m.OldLocation(ctx)
	case equipment.FieldRatedPower:
		return m.OldRatedPower(ctx)
	case equipment.FieldEfficiency:
		return m.OldEfficiency(ctx)
	case equipment.FieldOperatingHours:
		return m.OldOperatingHours(ctx)
	case equipment.FieldOperatingDays:
		return m.OldOperatingDays(ctx)
	case equipment.FieldLoadFactor:
		return m.OldLoadFactor(ctx)
	case equipment.FieldCondition:
		return m.OldCondition(ctx)
	case equipment.FieldAge:
		return m.OldAge(ctx)
	case equipment.FieldControlSystem:
		return m.OldControlSystem(ctx)
	case equipment.FieldEnergyMetered:
		return m.OldEnergyMetered(ctx)
	case equipment.FieldIotConnected:
		return m.OldIotConnected(ctx)
	case equipment.FieldNotes:
		return m.OldNotes(ctx)
	case equipment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Equipment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EquipmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case equipment.FieldBuildingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildingID(v)
		return nil
	case equipment.FieldRoomID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case equipment.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case equipment.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case equipment.FieldSubType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubType(v)
		return nil
	case equipment.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case equipment.FieldRatedPower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRatedPower(v)
		return nil
	case equipment.FieldEfficiency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEfficiency(v)
		return nil
	case equipment.FieldOperatingHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperatingHours(v)
		return nil
	case equipment.FieldOperatingDays:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperatingDays(v)
		return nil
	case equipment.FieldLoadFactor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoadFactor(v)
		return nil
	case equipment.FieldCondition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCondition(v)
		return nil
	case equipment.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAge(v)
		return nil
	case equipment.FieldControlSystem:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetControlSystem(v)
		return nil
	case equipment.FieldEnergyMetered:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnergyMetered(v)
		return nil
	case equipment.FieldIotConnected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIotConnected(v)
		return nil
	case equipment.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case equipment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Equipment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EquipmentMutation) AddedFields() []string {
	var fields []string
	if m.addrated_power != nil {
		fields = append(fields, equipment.FieldRatedPower)
	}
	if m.addefficiency != nil {
		fields = append(fields, equipment.FieldEfficiency)
	}
	if m.addoperating_hours != nil {
		fields = append(fields, equipment.FieldOperatingHours)
	}
	if m.addoperating_days != nil {
		fields = append(fields, equipment.FieldOperatingDays)
	}
	if m.addage != nil {
		fields = append(fields, equipment.FieldAge)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EquipmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case equipment.FieldRatedPower:
		return m.AddedRatedPower()
	case equipment.FieldEfficiency:
		return m.AddedEfficiency()
	case equipment.FieldOperatingHours:
		return m.AddedOperatingHours()
	case equipment.FieldOperatingDays:
		return m.AddedOperatingDays()
	case equipment.FieldAge:
		return m.AddedAge()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EquipmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case equipment.FieldRatedPower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRatedPower(v)
		return nil
	case equipment.FieldEfficiency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEfficiency(v)
		return nil
	case equipment.FieldOperatingHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOperatingHours(v)
		return nil
	case equipment.FieldOperatingDays:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOperatingDays(v)
		return nil
	case equipment.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAge(v)
		return nil
	}
	return fmt.Errorf("unknown Equipment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EquipmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(equipment.FieldRoomID) {
		fields = append(fields, equipment.FieldRoomID)
	}
	if m.FieldCleared(equipment.FieldSubType) {
		fields = append(fields, equipment.FieldSubType)
	}
	if m.FieldCleared(equipment.FieldLocation) {
		fields = append(fields, equipment.FieldLocation)
	}
	if m.FieldCleared(equipment.FieldEfficiency) {
		fields = append(fields, equipment.FieldEfficiency)
	}
	if m.FieldCleared(equipment.FieldOperatingHours) {
		fields = append(fields, equipment.FieldOperatingHours)
	}
	if m.FieldCleared(equipment.FieldOperatingDays) {
		fields = append(fields, equipment.FieldOperatingDays)
	}
	if m.FieldCleared(equipment.FieldLoadFactor) {
		fields = append(fields, equipment.FieldLoadFactor)
	}
	if m.FieldCleared(equipment.FieldCondition) {
		fields = append(fields, equipment.FieldCondition)
	}
	if m.FieldCleared(equipment.FieldAge) {
		fields = append(fields, equipment.FieldAge)
	}
	if m.FieldCleared(equipment.FieldControlSystem) {
		fields = append(fields, equipment.FieldControlSystem)
	}
	if m.FieldCleared(equipment.FieldNotes) {
		fields = append(fields, equipment.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EquipmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EquipmentMutation) ClearField(name string) error {
	switch name {
	case equipment.FieldRoomID:
		m.ClearRoomID()
		return nil
	case equipment.FieldSubType:
		m.ClearSubType()
		return nil
	case equipment.FieldLocation:
		m.ClearLocation()
		return nil
	case equipment.FieldEfficiency:
		m.ClearEfficiency()
		return nil
	case equipment.FieldOperatingHours:
		m.ClearOperatingHours()
		return nil
	case equipment.FieldOperatingDays:
		m.ClearOperatingDays()
		return nil
	case equipment.FieldLoadFactor:
		m.ClearLoadFactor()
		return nil
	case equipment.FieldCondition:
		m.ClearCondition()
		return nil
	case equipment.FieldAge:
		m.ClearAge()
		return nil
	case equipment.FieldControlSystem:
		m.ClearControlSystem()
		return nil
	case equipment.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Equipment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EquipmentMutation) ResetField(name string) error {
	switch name {
	case equipment.FieldBuildingID:
		m.ResetBuildingID()
		return nil
	case equipment.FieldRoomID:
		m.ResetRoomID()
		return nil
	case equipment.FieldName:
		m.ResetName()
		return nil
	case equipment.FieldCategory:
		m.ResetCategory()
		return nil
	case equipment.FieldSubType:
		m.ResetSubType()
		return nil
	case equipment.FieldLocation:
		m.ResetLocation()
		return nil
	case equipment.FieldRatedPower:
		m.ResetRatedPower()
		return nil
	case equipment.FieldEfficiency:
		m.ResetEfficiency()
		return nil
	case equipment.FieldOperatingHours:
		m.ResetOperatingHours()
		return nil
	case equipment.FieldOperatingDays:
		m.ResetOperatingDays()
		return nil
	case equipment.FieldLoadFactor:
		m.ResetLoadFactor()
		return nil
	case equipment.FieldCondition:
		m.ResetCondition()
		return nil
	case equipment.FieldAge:
		m.ResetAge()
		return nil
	case equipment.FieldControlSystem:
		m.ResetControlSystem()
		return nil
	case equipment.FieldEnergyMetered:
		m.ResetEnergyMetered()
		return nil
	case equipment.FieldIotConnected:
		m.ResetIotConnected()
		return nil
	case equipment.FieldNotes:
		m.ResetNotes()
		return nil
	case equipment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Equipment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EquipmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.building != nil {
		edges = append(edges, equipment.EdgeBuilding)
	}
	if m.room != nil {
		edges = append(edges, equipment.EdgeRoom)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EquipmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case equipment.EdgeBuilding:
		if id := m.building; id != nil {
			return []ent.Value{*id}
		}
	case equipment.EdgeRoom:
		if id := m.room; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EquipmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EquipmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EquipmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbuilding {
		edges = append(edges, equipment.EdgeBuilding)
	}
	if m.clearedroom {
		edges = append(edges, equipment.EdgeRoom)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EquipmentMutation) EdgeCleared(name string) bool {
	switch name {
	case equipment.EdgeBuilding:
		return m.clearedbuilding
	case equipment.EdgeRoom:
		return m.clearedroom
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EquipmentMutation) ClearEdge(name string) error {
	switch name {
	case equipment.EdgeBuilding:
		m.ClearBuilding()
		return nil
	case equipment.EdgeRoom:
		m.ClearRoom()
		return nil
	}
	return fmt.Errorf("unknown Equipment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EquipmentMutation) ResetEdge(name string) error {
	switch name {
	case equipment.EdgeBuilding:
		m.ResetBuilding()
		return nil
	case equipment.EdgeRoom:
		m.ResetRoom()
		return nil
	}
	return fmt.Errorf("unknown Equipment edge %s", name)
}

// OCRRecordMutation represents an operation that mutates the OCRRecord nodes in the graph.
type OCRRecordMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	raw_text             *string
	processed_text       *json.RawMessage
	appendprocessed_text json.RawMessage
	metadata             *json.RawMessage
	appendmetadata       json.RawMessage
	is_floor_plan        *bool
	created_at           *time.Time
	clearedFields        map[string]struct{}
	building             *uuid.UUID
	clearedbuilding      bool
	file                 *uuid.UUID
	clearedfile          bool
	done                 bool
	oldValue             func(context.Context) (*OCRRecord, error)
	predicates           []predicate.OCRRecord
}

var _ ent.Mutation = (*OCRRecordMutation)(nil)

// ocrrecordOption allows management of the mutation configuration using functional options.
type ocrrecordOption func(*OCRRecordMutation)

// newOCRRecordMutation creates new mutation for the OCRRecord entity.
func newOCRRecordMutation(c config, op Op, opts ...ocrrecordOption) *OCRRecordMutation {
	m := &OCRRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeOCRRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOCRRecordID sets the ID field of the mutation.
func withOCRRecordID(id uuid.UUID) ocrrecordOption {
	return func(m *OCRRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *OCRRecord
		)
		m.oldValue = func(ctx context.Context) (*OCRRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OCRRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOCRRecord sets the old OCRRecord of the mutation.
func withOCRRecord(node *OCRRecord) ocrrecordOption {
	return func(m *OCRRecordMutation) {
		m.oldValue = func(context.Context) (*OCRRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OCRRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OCRRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OCRRecord entities.
func (m *OCRRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OCRRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OCRRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OCRRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBuildingID sets the "building_id" field.
func (m *OCRRecordMutation) SetBuildingID(u uuid.UUID) {
	m.building = &u
}

// BuildingID returns the value of the "building_id" field in the mutation.
func (m *OCRRecordMutation) BuildingID() (r uuid.UUID, exists bool) {
	v := m.building
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildingID returns the old "building_id" field's value of the OCRRecord entity.
// If the OCRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRRecordMutation) OldBuildingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildingID: %w", err)
	}
	return oldValue.BuildingID, nil
}

// ResetBuildingID resets all changes to the "building_id" field.
func (m *OCRRecordMutation) ResetBuildingID() {
	m.building = nil
}

// SetRawText sets the "raw_text" field.
func (m *OCRRecordMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *OCRRecordMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the OCRRecord entity.
// If the OCRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRRecordMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *OCRRecordMutation) ResetRawText() {
	m.raw_text = nil
}

// SetProcessedText sets the "processed_text" field.
func (m *OCRRecordMutation) SetProcessedText(jm json.RawMessage) {
	m.processed_text = &jm
	m.appendprocessed_text = nil
}

// ProcessedText returns the value of the "processed_text" field in the mutation.
func (m *OCRRecordMutation) ProcessedText() (r json.RawMessage, exists bool) {
	v := m.processed_text
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedText returns the old "processed_text" field's value of the OCRRecord entity.
// If the OCRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRRecordMutation) OldProcessedText(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedText: %w", err)
	}
	return oldValue.ProcessedText, nil
}

// AppendProcessedText adds jm to the "processed_text" field.
func (m *OCRRecordMutation) AppendProcessedText(jm json.RawMessage) {
	m.appendprocessed_text = append(m.appendprocessed_text, jm...)
}

// AppendedProcessedText returns the list of values that were appended to the "processed_text" field in this mutation.
func (m *OCRRecordMutation) AppendedProcessedText() (json.RawMessage, bool) {
	if len(m.appendprocessed_text) == 0 {
		return nil, false
	}
	return m.appendprocessed_text, true
}

// ClearProcessedText clears the value of the "processed_text" field.
func (m *OCRRecordMutation) ClearProcessedText() {
	m.processed_text = nil
	m.appendprocessed_text = nil
	m.clearedFields[ocrrecord.FieldProcessedText] = struct{}{}
}

// ProcessedTextCleared returns if the "processed_text" field was cleared in this mutation.
func (m *OCRRecordMutation) ProcessedTextCleared() bool {
	_, ok := m.clearedFields[ocrrecord.FieldProcessedText]
	return ok
}

// ResetProcessedText resets all changes to the "processed_text" field.
func (m *OCRRecordMutation) ResetProcessedText() {
	m.processed_text = nil
	m.appendprocessed_text = nil
	delete(m.clearedFields, ocrrecord.FieldProcessedText)
}

// SetMetadata sets the "metadata" field.
func (m *OCRRecordMutation) SetMetadata(jm json.RawMessage) {
	m.metadata = &jm
	m.appendmetadata = nil
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *OCRRecordMutation) Metadata() (r json.RawMessage, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the OCRRecord entity.
// If the OCRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRRecordMutation) OldMetadata(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// AppendMetadata adds jm to the "metadata" field.
func (m *OCRRecordMutation) AppendMetadata(jm json.RawMessage) {
	m.appendmetadata = append(m.appendmetadata, jm...)
}

// AppendedMetadata returns the list of values that were appended to the "metadata" field in this mutation.
func (m *OCRRecordMutation) AppendedMetadata() (json.RawMessage, bool) {
	if len(m.appendmetadata) == 0 {
		return nil, false
	}
	return m.appendmetadata, true
}

// ClearMetadata clears the value of the "metadata" field.
func (m *OCRRecordMutation) ClearMetadata() {
	m.metadata = nil
	m.appendmetadata = nil
	m.clearedFields[ocrrecord.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *OCRRecordMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[ocrrecord.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *OCRRecordMutation) ResetMetadata() {
	m.metadata = nil
	m.appendmetadata = nil
	delete(m.clearedFields, ocrrecord.FieldMetadata)
}

// SetIsFloorPlan sets the "is_floor_plan" field.
func (m *OCRRecordMutation) SetIsFloorPlan(b bool) {
	m.is_floor_plan = &b
}

// IsFloorPlan returns the value of the "is_floor_plan" field in the mutation.
func (m *OCRRecordMutation) IsFloorPlan() (r bool, exists bool) {
	v := m.is_floor_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldIsFloorPlan returns the old "is_floor_plan" field's value of the OCRRecord entity.
// If the OCRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRRecordMutation) OldIsFloorPlan(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsFloorPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsFloorPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsFloorPlan: %w", err)
	}
	return oldValue.IsFloorPlan, nil
}

// ResetIsFloorPlan resets all changes to the "is_floor_plan" field.
func (m *OCRRecordMutation) ResetIsFloorPlan() {
	m.is_floor_plan = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OCRRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OCRRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OCRRecord entity.
// If the OCRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OCRRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearBuilding clears the "building" edge to the Building entity.
func (m *OCRRecordMutation) ClearBuilding() {
	m.clearedbuilding = true
	m.clearedFields[ocrrecord.FieldBuildingID] = struct{}{}
}

// BuildingCleared reports if the "building" edge to the Building entity was cleared.
func (m *OCRRecordMutation) BuildingCleared() bool {
	return m.clearedbuilding
}

// BuildingIDs returns the "building" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BuildingID instead. It exists only for internal usage by the builders.
func (m *OCRRecordMutation) BuildingIDs() (ids []uuid.UUID) {
	if id := m.building; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBuilding resets all changes to the "building" edge.
func (m *OCRRecordMutation) ResetBuilding() {
	m.building = nil
	m.clearedbuilding = false
}

// SetFileID sets the "file" edge to the AuditFile entity by id.
func (m *OCRRecordMutation) SetFileID(id uuid.UUID) {
	m.file = &id
}

// ClearFile clears the "file" edge to the AuditFile entity.
func (m *OCRRecordMutation) ClearFile() {
	m.clearedfile = true
}

// FileCleared reports if the "file" edge to the AuditFile entity was cleared.
func (m *OCRRecordMutation) FileCleared() bool {
	return m.clearedfile
}

// FileID returns the "file" edge ID in the mutation.
func (m *OCRRecordMutation) FileID() (id uuid.UUID, exists bool) {
	if m.file != nil {
		return *m.file, true
	}
	return
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *OCRRecordMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *OCRRecordMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// Where appends a list predicates to the OCRRecordMutation builder.
func (m *OCRRecordMutation) Where(ps ...predicate.OCRRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OCRRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OCRRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OCRRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OCRRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OCRRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OCRRecord).
func (m *OCRRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OCRRecordMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.building != nil {
		fields = append(fields, ocrrecord.FieldBuildingID)
	}
	if m.raw_text != nil {
		fields = append(fields, ocrrecord.FieldRawText)
	}
	if m.processed_text != nil {
		fields = append(fields, ocrrecord.FieldProcessedText)
	}
	if m.metadata != nil {
		fields = append(fields, ocrrecord.FieldMetadata)
	}
	if m.is_floor_plan != nil {
		fields = append(fields, ocrrecord.FieldIsFloorPlan)
	}
	if m.created_at != nil {
		fields = append(fields, ocrrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OCRRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ocrrecord.FieldBuildingID:
		return m.BuildingID()
	case ocrrecord.FieldRawText:
		return m.RawText()
	case ocrrecord.FieldProcessedText:
		return m.ProcessedText()
	case ocrrecord.FieldMetadata:
		return m.Metadata()
	case ocrrecord.FieldIsFloorPlan:
		return m.IsFloorPlan()
	case ocrrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OCRRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ocrrecord.FieldBuildingID:
		return m.OldBuildingID(ctx)
	case ocrrecord.FieldRawText:
		return m.OldRawText(ctx)
	case ocrrecord.FieldProcessedText:
		return m.OldProcessedText(ctx)
	case ocrrecord.FieldMetadata:
		return m.OldMetadata(ctx)
	case ocrrecord.FieldIsFloorPlan:
		return m.OldIsFloorPlan(ctx)
	case ocrrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OCRRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OCRRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ocrrecord.FieldBuildingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildingID(v)
		return nil
	case ocrrecord.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case ocrrecord.FieldProcessedText:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedText(v)
		return nil
	case ocrrecord.FieldMetadata:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case ocrrecord.FieldIsFloorPlan:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsFloorPlan(v)
		return nil
	case ocrrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OCRRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OCRRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OCRRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OCRRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OCRRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OCRRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ocrrecord.FieldProcessedText) {
		fields = append(fields, ocrrecord.FieldProcessedText)
	}
	if m.FieldCleared(ocrrecord.FieldMetadata) {
		fields = append(fields, ocrrecord.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OCRRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OCRRecordMutation) ClearField(name string) error {
	switch name {
	case ocrrecord.FieldProcessedText:
		m.ClearProcessedText()
		return nil
	case ocrrecord.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown OCRRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OCRRecordMutation) ResetField(name string) error {
	switch name {
	case ocrrecord.FieldBuildingID:
		m.ResetBuildingID()
		return nil
	case ocrrecord.FieldRawText:
		m.ResetRawText()
		return nil
	case ocrrecord.FieldProcessedText:
		m.ResetProcessedText()
		return nil
	case ocrrecord.FieldMetadata:
		m.ResetMetadata()
		return nil
	case ocrrecord.FieldIsFloorPlan:
		m.ResetIsFloorPlan()
		return nil
	case ocrrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OCRRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OCRRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.building != nil {
		edges = append(edges, ocrrecord.EdgeBuilding)
	}
	if m.file != nil {
		edges = append(edges, ocrrecord.EdgeFile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OCRRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ocrrecord.EdgeBuilding:
		if id := m.building; id != nil {
			return []ent.Value{*id}
		}
	case ocrrecord.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OCRRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OCRRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OCRRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbuilding {
		edges = append(edges, ocrrecord.EdgeBuilding)
	}
	if m.clearedfile {
		edges = append(edges, ocrrecord.EdgeFile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OCRRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case ocrrecord.EdgeBuilding:
		return m.clearedbuilding
	case ocrrecord.EdgeFile:
		return m.clearedfile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OCRRecordMutation) ClearEdge(name string) error {
	switch name {
	case ocrrecord.EdgeBuilding:
		m.ClearBuilding()
		return nil
	case ocrrecord.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown OCRRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OCRRecordMutation) ResetEdge(name string) error {
	switch name {
	case ocrrecord.EdgeBuilding:
		m.ResetBuilding()
		return nil
	case ocrrecord.EdgeFile:
		m.ResetFile()
		return nil
	}
	return fmt.Errorf("unknown OCRRecord edge %s", name)
}

// RoomMutation represents an operation that mutates the Room nodes in the graph.
type RoomMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	area             *float64
	addarea          *float64
	lighting_type    *string
	num_fixtures     *int
	addnum_fixtures  *int
	ac_type          *string
	ac_size          *float64
	addac_size       *float64
	windows          *int
	addwindows       *int
	room_data        *json.RawMessage
	appendroom_data  json.RawMessage
	notes            *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	building         *uuid.UUID
	clearedbuilding  bool
	equipment        map[uuid.UUID]struct{}
	removedequipment map[uuid.UUID]struct{}
	clearedequipment bool
	done             bool
	oldValue         func(context.Context) (*Room, error)
	predicates       []predicate.Room
}

var _ ent.Mutation = (*RoomMutation)(nil)

// roomOption allows management of the mutation configuration using functional options.
type roomOption func(*RoomMutation)

// newRoomMutation creates new mutation for the Room entity.
func newRoomMutation(c config, op Op, opts ...roomOption) *RoomMutation {
	m := &RoomMutation{
		config:        c,
		op:            op,
		typ:           TypeRoom,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoomID sets the ID field of the mutation.
func withRoomID(id uuid.UUID) roomOption {
	return func(m *RoomMutation) {
		var (
			err   error
			once  sync.Once
			value *Room
		)
		m.oldValue = func(ctx context.Context) (*Room, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Room.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoom sets the old Room of the mutation.
func withRoom(node *Room) roomOption {
	return func(m *RoomMutation) {
		m.oldValue = func(context.Context) (*Room, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoomMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoomMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Room entities.
func (m *RoomMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoomMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoomMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Room.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBuildingID sets the "building_id" field.
func (m *RoomMutation) SetBuildingID(u uuid.UUID) {
	m.building = &u
}

// BuildingID returns the value of the "building_id" field in the mutation.
func (m *RoomMutation) BuildingID() (r uuid.UUID, exists bool) {
	v := m.building
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildingID returns the old "building_id" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldBuildingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildingID: %w", err)
	}
	return oldValue.BuildingID, nil
}

// ResetBuildingID resets all changes to the "building_id" field.
func (m *RoomMutation) ResetBuildingID() {
	m.building = nil
}

// SetName sets the "name" field.
func (m *RoomMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RoomMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RoomMutation) ResetName() {
	m.name = nil
}

// SetArea sets the "area" field.
func (m *RoomMutation) SetArea(f float64) {
	m.area = &f
	m.addarea = nil
}

// Area returns the value of the "area" field in the mutation.
func (m *RoomMutation) Area() (r float64, exists bool) {
	v := m.area
	if v == nil {
		return
	}
	return *v, true
}

// OldArea returns the old "area" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldArea(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArea is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArea requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArea: %w", err)
	}
	return oldValue.Area, nil
}

// AddArea adds f to the "area" field.
func (m *RoomMutation) AddArea(f float64) {
	if m.addarea != nil {
		*m.addarea += f
	} else {
		m.addarea = &f
	}
}

// AddedArea returns the value that was added to the "area" field in this mutation.
func (m *RoomMutation) AddedArea() (r float64, exists bool) {
	v := m.addarea
	if v == nil {
		return
	}
	return *v, true
}

// ResetArea resets all changes to the "area" field.
func (m *RoomMutation) ResetArea() {
	m.area = nil
	m.addarea = nil
}

// SetLightingType sets the "lighting_type" field.
func (m *RoomMutation) SetLightingType(s string) {
	m.lighting_type = &s
}

// LightingType returns the value of the "lighting_type" field in the mutation.
func (m *RoomMutation) LightingType() (r string, exists bool) {
	v := m.lighting_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLightingType returns the old "lighting_type" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldLightingType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLightingType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLightingType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLightingType: %w", err)
	}
	return oldValue.LightingType, nil
}

// ClearLightingType clears the value of the "lighting_type" field.
func (m *RoomMutation) ClearLightingType() {
	m.lighting_type = nil
	m.clearedFields[room.FieldLightingType] = struct{}{}
}

// LightingTypeCleared returns if the "lighting_type" field was cleared in this mutation.
func (m *RoomMutation) LightingTypeCleared() bool {
	_, ok := m.clearedFields[room.FieldLightingType]
	return ok
}

// ResetLightingType resets all changes to the "lighting_type" field.
func (m *RoomMutation) ResetLightingType() {
	m.lighting_type = nil
	delete(m.clearedFields, room.FieldLightingType)
}

// SetNumFixtures sets the "num_fixtures" field.
func (m *RoomMutation) SetNumFixtures(i int) {
	m.num_fixtures = &i
	m.addnum_fixtures = nil
}

// NumFixtures returns the value of the "num_fixtures" field in the mutation.
func (m *RoomMutation) NumFixtures() (r int, exists bool) {
	v := m.num_fixtures
	if v == nil {
		return
	}
	return *v, true
}

// OldNumFixtures returns the old "num_fixtures" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldNumFixtures(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumFixtures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumFixtures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumFixtures: %w", err)
	}
	return oldValue.NumFixtures, nil
}

// AddNumFixtures adds i to the "num_fixtures" field.
func (m *RoomMutation) AddNumFixtures(i int) {
	if m.addnum_fixtures != nil {
		*m.addnum_fixtures += i
	} else {
		m.addnum_fixtures = &i
	}
}

// AddedNumFixtures returns the value that was added to the "num_fixtures" field in this mutation.
func (m *RoomMutation) AddedNumFixtures() (r int, exists bool) {
	v := m.addnum_fixtures
	if v == nil {
		return
	}
	return *v, true
}

// ClearNumFixtures clears the value of the "num_fixtures" field.
func (m *RoomMutation) ClearNumFixtures() {
	m.num_fixtures = nil
	m.addnum_fixtures = nil
	m.clearedFields[room.FieldNumFixtures] = struct{}{}
}

// NumFixturesCleared returns if the "num_fixtures" field was cleared in this mutation.
func (m *RoomMutation) NumFixturesCleared() bool {
	_, ok := m.clearedFields[room.FieldNumFixtures]
	return ok
}

// ResetNumFixtures resets all changes to the "num_fixtures" field.
func (m *RoomMutation) ResetNumFixtures() {
	m.num_fixtures = nil
	m.addnum_fixtures = nil
	delete(m.clearedFields, room.FieldNumFixtures)
}

// SetAcType sets the "ac_type" field.
func (m *RoomMutation) SetAcType(s string) {
	m.ac_type = &s
}

// AcType returns the value of the "ac_type" field in the mutation.
func (m *RoomMutation) AcType() (r string, exists bool) {
	v := m.ac_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAcType returns the old "ac_type" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldAcType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcType: %w", err)
	}
	return oldValue.AcType, nil
}

// ClearAcType clears the value of the "ac_type" field.
func (m *RoomMutation) ClearAcType() {
	m.ac_type = nil
	m.clearedFields[room.FieldAcType] = struct{}{}
}

// AcTypeCleared returns if the "ac_type" field was cleared in this mutation.
func (m *RoomMutation) AcTypeCleared() bool {
	_, ok := m.clearedFields[room.FieldAcType]
	return ok
}

// ResetAcType resets all changes to the "ac_type" field.
func (m *RoomMutation) ResetAcType() {
	m.ac_type = nil
	delete(m.clearedFields, room.FieldAcType)
}

// SetAcSize sets the "ac_size" field.
func (m *RoomMutation) SetAcSize(f float64) {
	m.ac_size = &f
	m.addac_size = nil
}

// AcSize returns the value of the "ac_size" field in the mutation.
func (m *RoomMutation) AcSize() (r float64, exists bool) {
	v := m.ac_size
	if v == nil {
		return
	}
	return *v, true
}

// OldAcSize returns the old "ac_size" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldAcSize(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcSize: %w", err)
	}
	return oldValue.AcSize, nil
}

// AddAcSize adds f to the "ac_size" field.
func (m *RoomMutation) AddAcSize(f float64) {
	if m.addac_size != nil {
		*m.addac_size += f
	} else {
		m.addac_size = &f
	}
}

// AddedAcSize returns the value that was added to the "ac_size" field in this mutation.
func (m *RoomMutation) AddedAcSize() (r float64, exists bool) {
	v := m.addac_size
	if v == nil {
		return
	}
	return *v, true
}

// ClearAcSize clears the value of the "ac_size" field.
func (m *RoomMutation) ClearAcSize() {
	m.ac_size = nil
	m.addac_size = nil
	m.clearedFields[room.FieldAcSize] = struct{}{}
}

// AcSizeCleared returns if the "ac_size" field was cleared in this mutation.
func (m *RoomMutation) AcSizeCleared() bool {
	_, ok := m.clearedFields[room.FieldAcSize]
	return ok
}

// ResetAcSize resets all changes to the "ac_size" field.
func (m *RoomMutation) ResetAcSize() {
	m.ac_size = nil
	m.addac_size = nil
	delete(m.clearedFields, room.FieldAcSize)
}

// SetWindows sets the "windows" field.
func (m *RoomMutation) SetWindows(i int) {
	m.windows = &i
	m.addwindows = nil
}

// Windows returns the value of the "windows" field in the mutation.
func (m *RoomMutation) Windows() (r int, exists bool) {
	v := m.windows
	if v == nil {
		return
	}
	return *v, true
}

// OldWindows returns the old "windows" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldWindows(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindows: %w", err)
	}
	return oldValue.Windows, nil
}

// AddWindows adds i to the "windows" field.
func (m *RoomMutation) AddWindows(i int) {
	if m.addwindows != nil {
		*m.addwindows += i
	} else {
		m.addwindows = &i
	}
}

// AddedWindows returns the value that was added to the "windows" field in this mutation.
func (m *RoomMutation) AddedWindows() (r int, exists bool) {
	v := m.addwindows
	if v == nil {
		return
	}
	return *v, true
}

// ClearWindows clears the value of the "windows" field.
func (m *RoomMutation) ClearWindows() {
	m.windows = nil
	m.addwindows = nil
	m.clearedFields[room.FieldWindows] = struct{}{}
}

// WindowsCleared returns if the "windows" field was cleared in this mutation.
func (m *RoomMutation) WindowsCleared() bool {
	_, ok := m.clearedFields[room.FieldWindows]
	return ok
}

// ResetWindows resets all changes to the "windows" field.
func (m *RoomMutation) ResetWindows() {
	m.windows = nil
	m.addwindows = nil
	delete(m.clearedFields, room.FieldWindows)
}

// SetRoomData sets the "room_data" field.
func (m *RoomMutation) SetRoomData(jm json.RawMessage) {
	m.room_data = &jm
	m.appendroom_data = nil
}

// RoomData returns the value of the "room_data" field in the mutation.
func (m *RoomMutation) RoomData() (r json.RawMessage, exists bool) {
	v := m.room_data
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomData returns the old "room_data" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldRoomData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomData: %w", err)
	}
	return oldValue.RoomData, nil
}

// AppendRoomData adds jm to the "room_data" field.
func (m *RoomMutation) AppendRoomData(jm json.RawMessage) {
	m.appendroom_data = append(m.appendroom_data, jm...)
}

// AppendedRoomData returns the list of values that were appended to the "room_data" field in this mutation.
func (m *RoomMutation) AppendedRoomData() (json.RawMessage, bool) {
	if len(m.appendroom_data) == 0 {
		return nil, false
	}
	return m.appendroom_data, true
}

// ClearRoomData clears the value of the "room_data" field.
func (m *RoomMutation) ClearRoomData() {
	m.room_data = nil
	m.appendroom_data = nil
	m.clearedFields[room.FieldRoomData] = struct{}{}
}

// RoomDataCleared returns if the "room_data" field was cleared in this mutation.
func (m *RoomMutation) RoomDataCleared() bool {
	_, ok := m.clearedFields[room.FieldRoomData]
	return ok
}

// ResetRoomData resets all changes to the "room_data" field.
func (m *RoomMutation) ResetRoomData() {
	m.room_data = nil
	m.appendroom_data = nil
	delete(m.clearedFields, room.FieldRoomData)
}

// SetNotes sets the "notes" field.
func (m *RoomMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *RoomMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *RoomMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[room.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *RoomMutation) NotesCleared() bool {
	_, ok := m.clearedFields[room.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *RoomMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, room.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *RoomMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoomMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RoomMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearBuilding clears the "building" edge to the Building entity.
func (m *RoomMutation) ClearBuilding() {
	m.clearedbuilding = true
	m.clearedFields[room.FieldBuildingID] = struct{}{}
}

// BuildingCleared reports if the "building" edge to the Building entity was cleared.
func (m *RoomMutation) BuildingCleared() bool {
	return m.clearedbuilding
}

// BuildingIDs returns the "building" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BuildingID instead. It exists only for internal usage by the builders.
func (m *RoomMutation) BuildingIDs() (ids []uuid.UUID) {
	if id := m.building; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBuilding resets all changes to the "building" edge.
func (m *RoomMutation) ResetBuilding() {
	m.building = nil
	m.clearedbuilding = false
}

// AddEquipmentIDs adds the "equipment" edge to the Equipment entity by ids.
func (m *RoomMutation) AddEquipmentIDs(ids ...uuid.UUID) {
	if m.equipment == nil {
		m.equipment = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.equipment[ids[i]] = struct{}{}
	}
}

// ClearEquipment clears the "equipment" edge to the Equipment entity.
func (m *RoomMutation) ClearEquipment() {
	m.clearedequipment = true
}

// EquipmentCleared reports if the "equipment" edge to the Equipment entity was cleared.
func (m *RoomMutation) EquipmentCleared() bool {
	return m.clearedequipment
}

// RemoveEquipmentIDs removes the "equipment" edge to the Equipment entity by IDs.
func (m *RoomMutation) RemoveEquipmentIDs(ids ...uuid.UUID) {
	if m.removedequipment == nil {
		m.removedequipment = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.equipment, ids[i])
		m.removedequipment[ids[i]] = struct{}{}
	}
}

// RemovedEquipment returns the removed IDs of the "equipment" edge to the Equipment entity.
func (m *RoomMutation) RemovedEquipmentIDs() (ids []uuid.UUID) {
	for id := range m.removedequipment {
		ids = append(ids, id)
	}
	return
}

// EquipmentIDs returns the "equipment" edge IDs in the mutation.
func (m *RoomMutation) EquipmentIDs() (ids []uuid.UUID) {
	for id := range m.equipment {
		ids = append(ids, id)
	}
	return
}

// ResetEquipment resets all changes to the "equipment" edge.
func (m *RoomMutation) ResetEquipment() {
	m.equipment = nil
	m.clearedequipment = false
	m.removedequipment = nil
}

// Where appends a list predicates to the RoomMutation builder.
func (m *RoomMutation) Where(ps ...predicate.Room) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoomMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoomMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Room, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoomMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoomMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Room).
func (m *RoomMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoomMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.building != nil {
		fields = append(fields, room.FieldBuildingID)
	}
	if m.name != nil {
		fields = append(fields, room.FieldName)
	}
	if m.area != nil {
		fields = append(fields, room.FieldArea)
	}
	if m.lighting_type != nil {
		fields = append(fields, room.FieldLightingType)
	}
	if m.num_fixtures != nil {
		fields = append(fields, room.FieldNumFixtures)
	}
	if m.ac_type != nil {
		fields = append(fields, room.FieldAcType)
	}
	if m.ac_size != nil {
		fields = append(fields, room.FieldAcSize)
	}
	if m.windows != nil {
		fields = append(fields, room.FieldWindows)
	}
	if m.room_data != nil {
		fields = append(fields, room.FieldRoomData)
	}
	if m.notes != nil {
		fields = append(fields, room.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, room.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoomMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case room.FieldBuildingID:
		return m.BuildingID()
	case room.FieldName:
		return m.Name()
	case room.FieldArea:
		return m.Area()
	case room.FieldLightingType:
		return m.LightingType()
	case room.FieldNumFixtures:
		return m.NumFixtures()
	case room.FieldAcType:
		return m.AcType()
	case room.FieldAcSize:
		return m.AcSize()
	case room.FieldWindows:
		return m.Windows()
	case room.FieldRoomData:
		return m.RoomData()
	case room.FieldNotes:
		return m.Notes()
	case room.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoomMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case room.FieldBuildingID:
		return m.OldBuildingID(ctx)
	case room.FieldName:
		return m.OldName(ctx)
	case room.FieldArea:
		return m.OldArea(ctx)
	case room.FieldLightingType:
		return m.OldLightingType(ctx)
	case room.FieldNumFixtures:
		return m.OldNumFixtures(ctx)
	case room.FieldAcType:
		return m.OldAcType(ctx)
	case room.FieldAcSize:
		return m.OldAcSize(ctx)
	case room.FieldWindows:
		return m.OldWindows(ctx)
	case room.FieldRoomData:
		return m.OldRoomData(ctx)
	case room.FieldNotes:
		return m.OldNotes(ctx)
	case room.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Room field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomMutation) SetField(name string, value ent.Value) error {
	switch name {
	case room.FieldBuildingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildingID(v)
		return nil
	case room.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case room.FieldArea:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArea(v)
		return nil
	case room.FieldLightingType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLightingType(v)
		return nil
	case room.FieldNumFixtures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumFixtures(v)
		return nil
	case room.FieldAcType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcType(v)
		return nil
	case room.FieldAcSize:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcSize(v)
		return nil
	case room.FieldWindows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindows(v)
		return nil
	case room.FieldRoomData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomData(v)
		return nil
	case room.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case room.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Room field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoomMutation) AddedFields() []string {
	var fields []string
	if m.addarea != nil {
		fields = append(fields, room.FieldArea)
	}
	if m.addnum_fixtures != nil {
		fields = append(fields, room.FieldNumFixtures)
	}
	if m.addac_size != nil {
		fields = append(fields, room.FieldAcSize)
	}
	if m.addwindows != nil {
		fields = append(fields, room.FieldWindows)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoomMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case room.FieldArea:
		return m.AddedArea()
	case room.FieldNumFixtures:
		return m.AddedNumFixtures()
	case room.FieldAcSize:
		return m.AddedAcSize()
	case room.FieldWindows:
		return m.AddedWindows()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomMutation) AddField(name string, value ent.Value) error {
	switch name {
	case room.FieldArea:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArea(v)
		return nil
	case room.FieldNumFixtures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumFixtures(v)
		return nil
	case room.FieldAcSize:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAcSize(v)
		return nil
	case room.FieldWindows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWindows(v)
		return nil
	}
	return fmt.Errorf("unknown Room numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoomMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(room.FieldLightingType) {
		fields = append(fields, room.FieldLightingType)
	}
	if m.FieldCleared(room.FieldNumFixtures) {
		fields = append(fields, room.FieldNumFixtures)
	}
	if m.FieldCleared(room.FieldAcType) {
		fields = append(fields, room.FieldAcType)
	}
	if m.FieldCleared(room.FieldAcSize) {
		fields = append(fields, room.FieldAcSize)
	}
	if m.FieldCleared(room.FieldWindows) {
		fields = append(fields, room.FieldWindows)
	}
	if m.FieldCleared(room.FieldRoomData) {
		fields = append(fields, room.FieldRoomData)
	}
	if m.FieldCleared(room.FieldNotes) {
		fields = append(fields, room.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoomMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoomMutation) ClearField(name string) error {
	switch name {
	case room.FieldLightingType:
		m.ClearLightingType()
		return nil
	case room.FieldNumFixtures:
		m.ClearNumFixtures()
		return nil
	case room.FieldAcType:
		m.ClearAcType()
		return nil
	case room.FieldAcSize:
		m.ClearAcSize()
		return nil
	case room.FieldWindows:
		m.ClearWindows()
		return nil
	case room.FieldRoomData:
		m.ClearRoomData()
		return nil
	case room.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Room nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoomMutation) ResetField(name string) error {
	switch name {
	case room.FieldBuildingID:
		m.ResetBuildingID()
		return nil
	case room.FieldName:
		m.ResetName()
		return nil
	case room.FieldArea:
		m.ResetArea()
		return nil
	case room.FieldLightingType:
		m.ResetLightingType()
		return nil
	case room.FieldNumFixtures:
		m.ResetNumFixtures()
		return nil
	case room.FieldAcType:
		m.ResetAcType()
		return nil
	case room.FieldAcSize:
		m.ResetAcSize()
		return nil
	case room.FieldWindows:
		m.ResetWindows()
		return nil
	case room.FieldRoomData:
		m.ResetRoomData()
		return nil
	case room.FieldNotes:
		m.ResetNotes()
		return nil
	case room.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Room field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoomMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.building != nil {
		edges = append(edges, room.EdgeBuilding)
	}
	if m.equipment != nil {
		edges = append(edges, room.EdgeEquipment)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoomMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case room.EdgeBuilding:
		if id := m.building; id != nil {
			return []ent.Value{*id}
		}
	case room.EdgeEquipment:
		ids := make([]ent.Value, 0, len(m.equipment))
		for id := range m.equipment {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoomMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedequipment != nil {
		edges = append(edges, room.EdgeEquipment)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoomMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case room.EdgeEquipment:
		ids := make([]ent.Value, 0, len(m.removedequipment))
		for id := range m.removedequipment {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoomMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbuilding {
		edges = append(edges, room.EdgeBuilding)
	}
	if m.clearedequipment {
		edges = append(edges, room.EdgeEquipment)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoomMutation) EdgeCleared(name string) bool {
	switch name {
	case room.EdgeBuilding:
		return m.clearedbuilding
	case room.EdgeEquipment:
		return m.clearedequipment
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoomMutation) ClearEdge(name string) error {
	switch name {
	case room.EdgeBuilding:
		m.ClearBuilding()
		return nil
	}
	return fmt.Errorf("unknown Room unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoomMutation) ResetEdge(name string) error {
	switch name {
	case room.EdgeBuilding:
		m.ResetBuilding()
		return nil
	case room.EdgeEquipment:
		m.ResetEquipment()
		return nil
	}
	return fmt.Errorf("unknown Room edge %s", name)
}

// TranslationMutation represents an operation that mutates the Translation nodes in the graph.
type TranslationMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	key           *string
	locale        *string
	value         *string
	kind          *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Translation, error)
	predicates    []predicate.Translation
}

var _ ent.Mutation = (*TranslationMutation)(nil)

// translationOption allows management of the mutation configuration using functional options.
type translationOption func(*TranslationMutation)

// newTranslationMutation creates new mutation for the Translation entity.
func newTranslationMutation(c config, op Op, opts ...translationOption) *TranslationMutation {
	m := &TranslationMutation{
		config:        c,
		op:            op,
		typ:           TypeTranslation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranslationID sets the ID field of the mutation.
func withTranslationID(id uuid.UUID) translationOption {
	return func(m *TranslationMutation) {
		var (
			err   error
			once  sync.Once
			value *Translation
		)
		m.oldValue = func(ctx context.Context) (*Translation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Translation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranslation sets the old Translation of the mutation.
func withTranslation(node *Translation) translationOption {
	return func(m *TranslationMutation) {
		m.oldValue = func(context.Context) (*Translation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranslationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranslationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Translation entities.
func (m *TranslationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranslationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranslationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Translation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *TranslationMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *TranslationMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the Translation entity.
// If the Translation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *TranslationMutation) ResetKey() {
	m.key = nil
}

// SetLocale sets the "locale" field.
func (m *TranslationMutation) SetLocale(s string) {
	m.locale = &s
}

// Locale returns the value of the "locale" field in the mutation.
func (m *TranslationMutation) Locale() (r string, exists bool) {
	v := m.locale
	if v == nil {
		return
	}
	return *v, true
}

// OldLocale returns the old "locale" field's value of the Translation entity.
// If the Translation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationMutation) OldLocale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocale: %w", err)
	}
	return oldValue.Locale, nil
}

// ResetLocale resets all changes to the "locale" field.
func (m *TranslationMutation) ResetLocale() {
	m.locale = nil
}

// SetValue sets the "value" field.
func (m *TranslationMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *TranslationMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Translation entity.
// If the Translation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *TranslationMutation) ResetValue() {
	m.value = nil
}

// SetKind sets the "kind" field.
func (m *TranslationMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TranslationMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Translation entity.
// If the Translation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *TranslationMutation) ResetKind() {
	m.kind = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TranslationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TranslationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Translation entity.
// If the Translation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TranslationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TranslationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TranslationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Translation entity.
// If the Translation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TranslationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TranslationMutation builder.
func (m *TranslationMutation) Where(ps ...predicate.Translation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranslationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranslationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Translation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranslationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranslationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Translation).
func (m *TranslationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranslationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.key != nil {
		fields = append(fields, translation.FieldKey)
	}
	if m.locale != nil {
		fields = append(fields, translation.FieldLocale)
	}
	if m.value != nil {
		fields = append(fields, translation.FieldValue)
	}
	if m.kind != nil {
		fields = append(fields, translation.FieldKind)
	}
	if m.created_at != nil {
		fields = append(fields, translation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, translation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranslationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case translation.FieldKey:
		return m.Key()
	case translation.FieldLocale:
		return m.Locale()
	case translation.FieldValue:
		return m.Value()
	case translation.FieldKind:
		return m.Kind()
	case translation.FieldCreatedAt:
		return m.CreatedAt()
	case translation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranslationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case translation.FieldKey:
		return m.OldKey(ctx)
	case translation.FieldLocale:
		return m.OldLocale(ctx)
	case translation.FieldValue:
		return m.OldValue(ctx)
	case translation.FieldKind:
		return m.OldKind(ctx)
	case translation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case translation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Translation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranslationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case translation.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case translation.FieldLocale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocale(v)
		return nil
	case translation.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case translation.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case translation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case translation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Translation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranslationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranslationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranslationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Translation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranslationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranslationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranslationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Translation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranslationMutation) ResetField(name string) error {
	switch name {
	case translation.FieldKey:
		m.ResetKey()
		return nil
	case translation.FieldLocale:
		m.ResetLocale()
		return nil
	case translation.FieldValue:
		m.ResetValue()
		return nil
	case translation.FieldKind:
		m.ResetKind()
		return nil
	case translation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case translation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Translation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranslationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranslationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranslationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranslationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranslationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranslationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranslationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Translation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranslationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Translation edge %s", name)
}
