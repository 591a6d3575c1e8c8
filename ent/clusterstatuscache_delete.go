// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"kube-drover.io/drover/ent/clusterstatuscache"
	"kube-drover.io/drover/ent/predicate"
)

// ClusterStatusCacheDelete is the builder for deleting a ClusterStatusCache entity.
type ClusterStatusCacheDelete struct {
	config
	hooks    []Hook
	mutation *ClusterStatusCacheMutation
}

// Where appends a list predicates to the ClusterStatusCacheDelete builder.
func (_d *ClusterStatusCacheDelete) Where(ps ...predicate.ClusterStatusCache) *ClusterStatusCacheDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ClusterStatusCacheDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ClusterStatusCacheDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ClusterStatusCacheDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(clusterstatuscache.Table, sqlgraph.NewFieldSpec(clusterstatuscache.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ClusterStatusCacheDeleteOne is the builder for deleting a single ClusterStatusCache entity.
type ClusterStatusCacheDeleteOne struct {
	_d *ClusterStatusCacheDelete
}

// Where appends a list predicates to the ClusterStatusCacheDelete builder.
func (_d *ClusterStatusCacheDeleteOne) Where(ps ...predicate.ClusterStatusCache) *ClusterStatusCacheDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ClusterStatusCacheDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{clusterstatuscache.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ClusterStatusCacheDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
