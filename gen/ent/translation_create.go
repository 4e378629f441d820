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
	"github.com/hrunx/es2square/gen/ent/translation"
)

// TranslationCreate is the builder for creating a Translation entity.
type TranslationCreate struct {
	config
	mutation *TranslationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetKey sets the "key" field.
func (tc *TranslationCreate) SetKey(s string) *TranslationCreate {
	tc.mutation.SetKey(s)
	return tc
}

// SetLocale sets the "locale" field.
func (tc *TranslationCreate) SetLocale(s string) *TranslationCreate {
	tc.mutation.SetLocale(s)
	return tc
}

// SetValue sets the "value" field.
func (tc *TranslationCreate) SetValue(s string) *TranslationCreate {
	tc.mutation.SetValue(s)
	return tc
}

// SetKind sets the "kind" field.
func (tc *TranslationCreate) SetKind(s string) *TranslationCreate {
	tc.mutation.SetKind(s)
	return tc
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (tc *TranslationCreate) SetNillableKind(s *string) *TranslationCreate {
	if s != nil {
		tc.SetKind(*s)
	}
	return tc
}

// SetCreatedAt sets the "created_at" field.
func (tc *TranslationCreate) SetCreatedAt(t time.Time) *TranslationCreate {
	tc.mutation.SetCreatedAt(t)
	return tc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (tc *TranslationCreate) SetNillableCreatedAt(t *time.Time) *TranslationCreate {
	if t != nil {
		tc.SetCreatedAt(*t)
	}
	return tc
}

// SetUpdatedAt sets the "updated_at" field.
func (tc *TranslationCreate) SetUpdatedAt(t time.Time) *TranslationCreate {
	tc.mutation.SetUpdatedAt(t)
	return tc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (tc *TranslationCreate) SetNillableUpdatedAt(t *time.Time) *TranslationCreate {
	if t != nil {
		tc.SetUpdatedAt(*t)
	}
	return tc
}

// SetID sets the "id" field.
func (tc *TranslationCreate) SetID(u uuid.UUID) *TranslationCreate {
	tc.mutation.SetID(u)
	return tc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (tc *TranslationCreate) SetNillableID(u *uuid.UUID) *TranslationCreate {
	if u != nil {
		tc.SetID(*u)
	}
	return tc
}

// Mutation returns the TranslationMutation object of the builder.
func (tc *TranslationCreate) Mutation() *TranslationMutation {
	return tc.mutation
}

// Save creates the Translation in the database.
func (tc *TranslationCreate) Save(ctx context.Context) (*Translation, error) {
	tc.defaults()
	return withHooks(ctx, tc.sqlSave, tc.mutation, tc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tc *TranslationCreate) SaveX(ctx context.Context) *Translation {
	v, err := tc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tc *TranslationCreate) Exec(ctx context.Context) error {
	_, err := tc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tc *TranslationCreate) ExecX(ctx context.Context) {
	if err := tc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tc *TranslationCreate) defaults() {
	if _, ok := tc.mutation.Kind(); !ok {
		v := translation.DefaultKind
		tc.mutation.SetKind(v)
	}
	if _, ok := tc.mutation.CreatedAt(); !ok {
		v := translation.DefaultCreatedAt()
		tc.mutation.SetCreatedAt(v)
	}
	if _, ok := tc.mutation.UpdatedAt(); !ok {
		v := translation.DefaultUpdatedAt()
		tc.mutation.SetUpdatedAt(v)
	}
	if _, ok := tc.mutation.ID(); !ok {
		v := translation.DefaultID()
		tc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tc *TranslationCreate) check() error {
	if _, ok := tc.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "Translation.key"`)}
	}
	if v, ok := tc.mutation.Key(); ok {
		if err := translation.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Translation.key": %w`, err)}
		}
	}
	if _, ok := tc.mutation.Locale(); !ok {
		return &ValidationError{Name: "locale", err: errors.New(`ent: missing required field "Translation.locale"`)}
	}
	if v, ok := tc.mutation.Locale(); ok {
		if err := translation.LocaleValidator(v); err != nil {
			return &ValidationError{Name: "locale", err: fmt.Errorf(`ent: validator failed for field "Translation.locale": %w`, err)}
		}
	}
	if _, ok := tc.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "Translation.value"`)}
	}
	if v, ok := tc.mutation.Value(); ok {
		if err := translation.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "Translation.value": %w`, err)}
		}
	}
	if _, ok := tc.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Translation.kind"`)}
	}
	if _, ok := tc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Translation.created_at"`)}
	}
	if _, ok := tc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Translation.updated_at"`)}
	}
	return nil
}

func (tc *TranslationCreate) sqlSave(ctx context.Context) (*Translation, error) {
	if err := tc.check(); err != nil {
		return nil, err
	}
	_node, _spec := tc.createSpec()
	if err := sqlgraph.CreateNode(ctx, tc.driver, _spec); err != nil {
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
	tc.mutation.id = &_node.ID
	tc.mutation.done = true
	return _node, nil
}

func (tc *TranslationCreate) createSpec() (*Translation, *sqlgraph.CreateSpec) {
	var (
		_node = &Translation{config: tc.config}
		_spec = sqlgraph.NewCreateSpec(translation.Table, sqlgraph.NewFieldSpec(translation.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = tc.conflict
	if id, ok := tc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := tc.mutation.Key(); ok {
		_spec.SetField(translation.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := tc.mutation.Locale(); ok {
		_spec.SetField(translation.FieldLocale, field.TypeString, value)
		_node.Locale = value
	}
	if value, ok := tc.mutation.Value(); ok {
		_spec.SetField(translation.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := tc.mutation.Kind(); ok {
		_spec.SetField(translation.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := tc.mutation.CreatedAt(); ok {
		_spec.SetField(translation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := tc.mutation.UpdatedAt(); ok {
		_spec.SetField(translation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Translation.Create().
//		SetKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TranslationUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (tc *TranslationCreate) OnConflict(opts ...sql.ConflictOption) *TranslationUpsertOne {
	tc.conflict = opts
	return &TranslationUpsertOne{
		create: tc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Translation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (tc *TranslationCreate) OnConflictColumns(columns ...string) *TranslationUpsertOne {
	tc.conflict = append(tc.conflict, sql.ConflictColumns(columns...))
	return &TranslationUpsertOne{
		create: tc,
	}
}

type (
	// TranslationUpsertOne is the builder for "upsert"-ing
	//  one Translation node.
	TranslationUpsertOne struct {
		create *TranslationCreate
	}

	// TranslationUpsert is the "OnConflict" setter.
	TranslationUpsert struct {
		*sql.UpdateSet
	}
)

// SetKey sets the "key" field.
func (u *TranslationUpsert) SetKey(v string) *TranslationUpsert {
	u.Set(translation.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *TranslationUpsert) UpdateKey() *TranslationUpsert {
	u.SetExcluded(translation.FieldKey)
	return u
}

// SetLocale sets the "locale" field.
func (u *TranslationUpsert) SetLocale(v string) *TranslationUpsert {
	u.Set(translation.FieldLocale, v)
	return u
}

// UpdateLocale sets the "locale" field to the value that was provided on create.
func (u *TranslationUpsert) UpdateLocale() *TranslationUpsert {
	u.SetExcluded(translation.FieldLocale)
	return u
}

// SetValue sets the "value" field.
func (u *TranslationUpsert) SetValue(v string) *TranslationUpsert {
	u.Set(translation.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *TranslationUpsert) UpdateValue() *TranslationUpsert {
	u.SetExcluded(translation.FieldValue)
	return u
}

// SetKind sets the "kind" field.
func (u *TranslationUpsert) SetKind(v string) *TranslationUpsert {
	u.Set(translation.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *TranslationUpsert) UpdateKind() *TranslationUpsert {
	u.SetExcluded(translation.FieldKind)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TranslationUpsert) SetUpdatedAt(v time.Time) *TranslationUpsert {
	u.Set(translation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TranslationUpsert) UpdateUpdatedAt() *TranslationUpsert {
	u.SetExcluded(translation.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Translation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(translation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TranslationUpsertOne) UpdateNewValues() *TranslationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(translation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(translation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Translation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TranslationUpsertOne) Ignore() *TranslationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TranslationUpsertOne) DoNothing() *TranslationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TranslationCreate.OnConflict
// documentation for more info.
func (u *TranslationUpsertOne) Update(set func(*TranslationUpsert)) *TranslationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TranslationUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *TranslationUpsertOne) SetKey(v string) *TranslationUpsertOne {
	return u.Update(func(s *TranslationUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *TranslationUpsertOne) UpdateKey() *TranslationUpsertOne {
	return u.Update(func(s *TranslationUpsert) {
		s.UpdateKey()
	})
}

// SetLocale sets the "locale" field.
func (u *TranslationUpsertOne) SetLocale(v string) *TranslationUpsertOne {
	return u.Update(func(s *TranslationUpsert) {
		s.SetLocale(v)
	})
}

// UpdateLocale sets the "locale" field to the value that was provided on create.
func (u *TranslationUpsertOne) UpdateLocale() *TranslationUpsertOne {
	return u.Update(func(s *TranslationUpsert) {
		s.UpdateLocale()
	})
}

// SetValue sets the "value" field.
func (u *TranslationUpsertOne) SetValue(v string) *TranslationUpsertOne {
	return u.Update(func(s *TranslationUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *TranslationUpsertOne) UpdateValue() *TranslationUpsertOne {
	return u.Update(func(s *TranslationUpsert) {
		s.UpdateValue()
	})
}

// SetKind sets the "kind" field.
func (u *TranslationUpsertOne) SetKind(v string) *TranslationUpsertOne {
	return u.Update(func(s *TranslationUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *TranslationUpsertOne) UpdateKind() *TranslationUpsertOne {
	return u.Update(func(s *TranslationUpsert) {
		s.UpdateKind()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TranslationUpsertOne) SetUpdatedAt(v time.Time) *TranslationUpsertOne {
	return u.Update(func(s *TranslationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TranslationUpsertOne) UpdateUpdatedAt() *TranslationUpsertOne {
	return u.Update(func(s *TranslationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TranslationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TranslationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TranslationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TranslationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TranslationUpsertOne.ID is not supported by MySQL driver. Use TranslationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TranslationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TranslationCreateBulk is the builder for creating many Translation entities in bulk.
type TranslationCreateBulk struct {
	config
	err      error
	builders []*TranslationCreate
	conflict []sql.ConflictOption
}

// Save creates the Translation entities in the database.
func (tcb *TranslationCreateBulk) Save(ctx context.Context) ([]*Translation, error) {
	if tcb.err != nil {
		return nil, tcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tcb.builders))
	nodes := make([]*Translation, len(tcb.builders))
	mutators := make([]Mutator, len(tcb.builders))
	for i := range tcb.builders {
		func(i int, root context.Context) {
			builder := tcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranslationMutation)
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
					_, err = mutators[i+1].Mutate(root, tcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = tcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, tcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tcb *TranslationCreateBulk) SaveX(ctx context.Context) []*Translation {
	v, err := tcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tcb *TranslationCreateBulk) Exec(ctx context.Context) error {
	_, err := tcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tcb *TranslationCreateBulk) ExecX(ctx context.Context) {
	if err := tcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Translation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TranslationUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (tcb *TranslationCreateBulk) OnConflict(opts ...sql.ConflictOption) *TranslationUpsertBulk {
	tcb.conflict = opts
	return &TranslationUpsertBulk{
		create: tcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Translation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (tcb *TranslationCreateBulk) OnConflictColumns(columns ...string) *TranslationUpsertBulk {
	tcb.conflict = append(tcb.conflict, sql.ConflictColumns(columns...))
	return &TranslationUpsertBulk{
		create: tcb,
	}
}

// TranslationUpsertBulk is the builder for "upsert"-ing
// a bulk of Translation nodes.
type TranslationUpsertBulk struct {
	create *TranslationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Translation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(translation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TranslationUpsertBulk) UpdateNewValues() *TranslationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(translation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(translation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Translation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TranslationUpsertBulk) Ignore() *TranslationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TranslationUpsertBulk) DoNothing() *TranslationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TranslationCreateBulk.OnConflict
// documentation for more info.
func (u *TranslationUpsertBulk) Update(set func(*TranslationUpsert)) *TranslationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TranslationUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *TranslationUpsertBulk) SetKey(v string) *TranslationUpsertBulk {
	return u.Update(func(s *TranslationUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *TranslationUpsertBulk) UpdateKey() *TranslationUpsertBulk {
	return u.Update(func(s *TranslationUpsert) {
		s.UpdateKey()
	})
}

// SetLocale sets the "locale" field.
func (u *TranslationUpsertBulk) SetLocale(v string) *TranslationUpsertBulk {
	return u.Update(func(s *TranslationUpsert) {
		s.SetLocale(v)
	})
}

// UpdateLocale sets the "locale" field to the value that was provided on create.
func (u *TranslationUpsertBulk) UpdateLocale() *TranslationUpsertBulk {
	return u.Update(func(s *TranslationUpsert) {
		s.UpdateLocale()
	})
}

// SetValue sets the "value" field.
func (u *TranslationUpsertBulk) SetValue(v string) *TranslationUpsertBulk {
	return u.Update(func(s *TranslationUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *TranslationUpsertBulk) UpdateValue() *TranslationUpsertBulk {
	return u.Update(func(s *TranslationUpsert) {
		s.UpdateValue()
	})
}

// SetKind sets the "kind" field.
func (u *TranslationUpsertBulk) SetKind(v string) *TranslationUpsertBulk {
	return u.Update(func(s *TranslationUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *TranslationUpsertBulk) UpdateKind() *TranslationUpsertBulk {
	return u.Update(func(s *TranslationUpsert) {
		s.UpdateKind()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TranslationUpsertBulk) SetUpdatedAt(v time.Time) *TranslationUpsertBulk {
	return u.Update(func(s *TranslationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TranslationUpsertBulk) UpdateUpdatedAt() *TranslationUpsertBulk {
	return u.Update(func(s *TranslationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TranslationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TranslationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TranslationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TranslationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
