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
	"github.com/hrunx/es2square/gen/ent/predicate"
	"github.com/hrunx/es2square/gen/ent/translation"
)

// TranslationUpdate is the builder for updating Translation entities.
type TranslationUpdate struct {
	config
	hooks    []Hook
	mutation *TranslationMutation
}

// Where appends a list predicates to the TranslationUpdate builder.
func (tu *TranslationUpdate) Where(ps ...predicate.Translation) *TranslationUpdate {
	tu.mutation.Where(ps...)
	return tu
}

// SetKey sets the "key" field.
func (tu *TranslationUpdate) SetKey(s string) *TranslationUpdate {
	tu.mutation.SetKey(s)
	return tu
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (tu *TranslationUpdate) SetNillableKey(s *string) *TranslationUpdate {
	if s != nil {
		tu.SetKey(*s)
	}
	return tu
}

// SetLocale sets the "locale" field.
func (tu *TranslationUpdate) SetLocale(s string) *TranslationUpdate {
	tu.mutation.SetLocale(s)
	return tu
}

// SetNillableLocale sets the "locale" field if the given value is not nil.
func (tu *TranslationUpdate) SetNillableLocale(s *string) *TranslationUpdate {
	if s != nil {
		tu.SetLocale(*s)
	}
	return tu
}

// SetValue sets the "value" field.
func (tu *TranslationUpdate) SetValue(s string) *TranslationUpdate {
	tu.mutation.SetValue(s)
	return tu
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (tu *TranslationUpdate) SetNillableValue(s *string) *TranslationUpdate {
	if s != nil {
		tu.SetValue(*s)
	}
	return tu
}

// SetKind sets the "kind" field.
func (tu *TranslationUpdate) SetKind(s string) *TranslationUpdate {
	tu.mutation.SetKind(s)
	return tu
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (tu *TranslationUpdate) SetNillableKind(s *string) *TranslationUpdate {
	if s != nil {
		tu.SetKind(*s)
	}
	return tu
}

// SetUpdatedAt sets the "updated_at" field.
func (tu *TranslationUpdate) SetUpdatedAt(t time.Time) *TranslationUpdate {
	tu.mutation.SetUpdatedAt(t)
	return tu
}

// Mutation returns the TranslationMutation object of the builder.
func (tu *TranslationUpdate) Mutation() *TranslationMutation {
	return tu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tu *TranslationUpdate) Save(ctx context.Context) (int, error) {
	tu.defaults()
	return withHooks(ctx, tu.sqlSave, tu.mutation, tu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tu *TranslationUpdate) SaveX(ctx context.Context) int {
	affected, err := tu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tu *TranslationUpdate) Exec(ctx context.Context) error {
	_, err := tu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tu *TranslationUpdate) ExecX(ctx context.Context) {
	if err := tu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tu *TranslationUpdate) defaults() {
	if _, ok := tu.mutation.UpdatedAt(); !ok {
		v := translation.UpdateDefaultUpdatedAt()
		tu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tu *TranslationUpdate) check() error {
	if v, ok := tu.mutation.Key(); ok {
		if err := translation.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Translation.key": %w`, err)}
		}
	}
	if v, ok := tu.mutation.Locale(); ok {
		if err := translation.LocaleValidator(v); err != nil {
			return &ValidationError{Name: "locale", err: fmt.Errorf(`ent: validator failed for field "Translation.locale": %w`, err)}
		}
	}
	if v, ok := tu.mutation.Value(); ok {
		if err := translation.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "Translation.value": %w`, err)}
		}
	}
	return nil
}

func (tu *TranslationUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(translation.Table, translation.Columns, sqlgraph.NewFieldSpec(translation.FieldID, field.TypeUUID))
	if ps := tu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tu.mutation.Key(); ok {
		_spec.SetField(translation.FieldKey, field.TypeString, value)
	}
	if value, ok := tu.mutation.Locale(); ok {
		_spec.SetField(translation.FieldLocale, field.TypeString, value)
	}
	if value, ok := tu.mutation.Value(); ok {
		_spec.SetField(translation.FieldValue, field.TypeString, value)
	}
	if value, ok := tu.mutation.Kind(); ok {
		_spec.SetField(translation.FieldKind, field.TypeString, value)
	}
	if value, ok := tu.mutation.UpdatedAt(); ok {
		_spec.SetField(translation.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{translation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tu.mutation.done = true
	return n, nil
}

// TranslationUpdateOne is the builder for updating a single Translation entity.
type TranslationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranslationMutation
}

// SetKey sets the "key" field.
func (tuo *TranslationUpdateOne) SetKey(s string) *TranslationUpdateOne {
	tuo.mutation.SetKey(s)
	return tuo
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (tuo *TranslationUpdateOne) SetNillableKey(s *string) *TranslationUpdateOne {
	if s != nil {
		tuo.SetKey(*s)
	}
	return tuo
}

// SetLocale sets the "locale" field.
func (tuo *TranslationUpdateOne) SetLocale(s string) *TranslationUpdateOne {
	tuo.mutation.SetLocale(s)
	return tuo
}

// SetNillableLocale sets the "locale" field if the given value is not nil.
func (tuo *TranslationUpdateOne) SetNillableLocale(s *string) *TranslationUpdateOne {
	if s != nil {
		tuo.SetLocale(*s)
	}
	return tuo
}

// SetValue sets the "value" field.
func (tuo *TranslationUpdateOne) SetValue(s string) *TranslationUpdateOne {
	tuo.mutation.SetValue(s)
	return tuo
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (tuo *TranslationUpdateOne) SetNillableValue(s *string) *TranslationUpdateOne {
	if s != nil {
		tuo.SetValue(*s)
	}
	return tuo
}

// SetKind sets the "kind" field.
func (tuo *TranslationUpdateOne) SetKind(s string) *TranslationUpdateOne {
	tuo.mutation.SetKind(s)
	return tuo
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (tuo *TranslationUpdateOne) SetNillableKind(s *string) *TranslationUpdateOne {
	if s != nil {
		tuo.SetKind(*s)
	}
	return tuo
}

// SetUpdatedAt sets the "updated_at" field.
func (tuo *TranslationUpdateOne) SetUpdatedAt(t time.Time) *TranslationUpdateOne {
	tuo.mutation.SetUpdatedAt(t)
	return tuo
}

// Mutation returns the TranslationMutation object of the builder.
func (tuo *TranslationUpdateOne) Mutation() *TranslationMutation {
	return tuo.mutation
}

// Where appends a list predicates to the TranslationUpdate builder.
func (tuo *TranslationUpdateOne) Where(ps ...predicate.Translation) *TranslationUpdateOne {
	tuo.mutation.Where(ps...)
	return tuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tuo *TranslationUpdateOne) Select(field string, fields ...string) *TranslationUpdateOne {
	tuo.fields = append([]string{field}, fields...)
	return tuo
}

// Save executes the query and returns the updated Translation entity.
func (tuo *TranslationUpdateOne) Save(ctx context.Context) (*Translation, error) {
	tuo.defaults()
	return withHooks(ctx, tuo.sqlSave, tuo.mutation, tuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tuo *TranslationUpdateOne) SaveX(ctx context.Context) *Translation {
	node, err := tuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tuo *TranslationUpdateOne) Exec(ctx context.Context) error {
	_, err := tuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tuo *TranslationUpdateOne) ExecX(ctx context.Context) {
	if err := tuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tuo *TranslationUpdateOne) defaults() {
	if _, ok := tuo.mutation.UpdatedAt(); !ok {
		v := translation.UpdateDefaultUpdatedAt()
		tuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tuo *TranslationUpdateOne) check() error {
	if v, ok := tuo.mutation.Key(); ok {
		if err := translation.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Translation.key": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.Locale(); ok {
		if err := translation.LocaleValidator(v); err != nil {
			return &ValidationError{Name: "locale", err: fmt.Errorf(`ent: validator failed for field "Translation.locale": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.Value(); ok {
		if err := translation.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "Translation.value": %w`, err)}
		}
	}
	return nil
}

func (tuo *TranslationUpdateOne) sqlSave(ctx context.Context) (_node *Translation, err error) {
	if err := tuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(translation.Table, translation.Columns, sqlgraph.NewFieldSpec(translation.FieldID, field.TypeUUID))
	id, ok := tuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Translation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, translation.FieldID)
		for _, f := range fields {
			if !translation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != translation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tuo.mutation.Key(); ok {
		_spec.SetField(translation.FieldKey, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Locale(); ok {
		_spec.SetField(translation.FieldLocale, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Value(); ok {
		_spec.SetField(translation.FieldValue, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Kind(); ok {
		_spec.SetField(translation.FieldKind, field.TypeString, value)
	}
	if value, ok := tuo.mutation.UpdatedAt(); ok {
		_spec.SetField(translation.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Translation{config: tuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{translation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tuo.mutation.done = true
	return _node, nil
}
