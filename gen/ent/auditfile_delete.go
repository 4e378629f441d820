// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hrunx/es2square/gen/ent/auditfile"
	"github.com/hrunx/es2square/gen/ent/predicate"
)

// AuditFileDelete is the builder for deleting a AuditFile entity.
type AuditFileDelete struct {
	config
	hooks    []Hook
	mutation *AuditFileMutation
}

// Where appends a list predicates to the AuditFileDelete builder.
func (afd *AuditFileDelete) Where(ps ...predicate.AuditFile) *AuditFileDelete {
	afd.mutation.Where(ps...)
	return afd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (afd *AuditFileDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, afd.sqlExec, afd.mutation, afd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (afd *AuditFileDelete) ExecX(ctx context.Context) int {
	n, err := afd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (afd *AuditFileDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(auditfile.Table, sqlgraph.NewFieldSpec(auditfile.FieldID, field.TypeUUID))
	if ps := afd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, afd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	afd.mutation.done = true
	return affected, err
}

// AuditFileDeleteOne is the builder for deleting a single AuditFile entity.
type AuditFileDeleteOne struct {
	afd *AuditFileDelete
}

// Where appends a list predicates to the AuditFileDelete builder.
func (afdo *AuditFileDeleteOne) Where(ps ...predicate.AuditFile) *AuditFileDeleteOne {
	afdo.afd.mutation.Where(ps...)
	return afdo
}

// Exec executes the deletion query.
func (afdo *AuditFileDeleteOne) Exec(ctx context.Context) error {
	n, err := afdo.afd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{auditfile.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (afdo *AuditFileDeleteOne) ExecX(ctx context.Context) {
	if err := afdo.Exec(ctx); err != nil {
		panic(err)
	}
}
