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
	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/clusterstatuscache"
	"kube-drover.io/drover/ent/predicate"
)

// ClusterStatusCacheUpdate is the builder for updating ClusterStatusCache entities.
type ClusterStatusCacheUpdate struct {
	config
	hooks    []Hook
	mutation *ClusterStatusCacheMutation
}

// Where appends a list predicates to the ClusterStatusCacheUpdate builder.
func (_u *ClusterStatusCacheUpdate) Where(ps ...predicate.ClusterStatusCache) *ClusterStatusCacheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClusterStatusCacheUpdate) SetUpdatedAt(v time.Time) *ClusterStatusCacheUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ClusterStatusCacheUpdate) SetPayload(v map[string]interface{}) *ClusterStatusCacheUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetCollectedAt sets the "collected_at" field.
func (_u *ClusterStatusCacheUpdate) SetCollectedAt(v time.Time) *ClusterStatusCacheUpdate {
	_u.mutation.SetCollectedAt(v)
	return _u
}

// SetNillableCollectedAt sets the "collected_at" field if the given value is not nil.
func (_u *ClusterStatusCacheUpdate) SetNillableCollectedAt(v *time.Time) *ClusterStatusCacheUpdate {
	if v != nil {
		_u.SetCollectedAt(*v)
	}
	return _u
}

// SetClusterID sets the "cluster" edge to the Cluster entity by ID.
func (_u *ClusterStatusCacheUpdate) SetClusterID(id int) *ClusterStatusCacheUpdate {
	_u.mutation.SetClusterID(id)
	return _u
}

// SetCluster sets the "cluster" edge to the Cluster entity.
func (_u *ClusterStatusCacheUpdate) SetCluster(v *Cluster) *ClusterStatusCacheUpdate {
	return _u.SetClusterID(v.ID)
}

// Mutation returns the ClusterStatusCacheMutation object of the builder.
func (_u *ClusterStatusCacheUpdate) Mutation() *ClusterStatusCacheMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the Cluster entity.
func (_u *ClusterStatusCacheUpdate) ClearCluster() *ClusterStatusCacheUpdate {
	_u.mutation.ClearCluster()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClusterStatusCacheUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClusterStatusCacheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClusterStatusCacheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClusterStatusCacheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClusterStatusCacheUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clusterstatuscache.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClusterStatusCacheUpdate) check() error {
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClusterStatusCache.cluster"`)
	}
	return nil
}

func (_u *ClusterStatusCacheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clusterstatuscache.Table, clusterstatuscache.Columns, sqlgraph.NewFieldSpec(clusterstatuscache.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clusterstatuscache.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(clusterstatuscache.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CollectedAt(); ok {
		_spec.SetField(clusterstatuscache.FieldCollectedAt, field.TypeTime, value)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   clusterstatuscache.ClusterTable,
			Columns: []string{clusterstatuscache.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cluster.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClusterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   clusterstatuscache.ClusterTable,
			Columns: []string{clusterstatuscache.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cluster.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clusterstatuscache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClusterStatusCacheUpdateOne is the builder for updating a single ClusterStatusCache entity.
type ClusterStatusCacheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClusterStatusCacheMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClusterStatusCacheUpdateOne) SetUpdatedAt(v time.Time) *ClusterStatusCacheUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ClusterStatusCacheUpdateOne) SetPayload(v map[string]interface{}) *ClusterStatusCacheUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetCollectedAt sets the "collected_at" field.
func (_u *ClusterStatusCacheUpdateOne) SetCollectedAt(v time.Time) *ClusterStatusCacheUpdateOne {
	_u.mutation.SetCollectedAt(v)
	return _u
}

// SetNillableCollectedAt sets the "collected_at" field if the given value is not nil.
func (_u *ClusterStatusCacheUpdateOne) SetNillableCollectedAt(v *time.Time) *ClusterStatusCacheUpdateOne {
	if v != nil {
		_u.SetCollectedAt(*v)
	}
	return _u
}

// SetClusterID sets the "cluster" edge to the Cluster entity by ID.
func (_u *ClusterStatusCacheUpdateOne) SetClusterID(id int) *ClusterStatusCacheUpdateOne {
	_u.mutation.SetClusterID(id)
	return _u
}

// SetCluster sets the "cluster" edge to the Cluster entity.
func (_u *ClusterStatusCacheUpdateOne) SetCluster(v *Cluster) *ClusterStatusCacheUpdateOne {
	return _u.SetClusterID(v.ID)
}

// Mutation returns the ClusterStatusCacheMutation object of the builder.
func (_u *ClusterStatusCacheUpdateOne) Mutation() *ClusterStatusCacheMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the Cluster entity.
func (_u *ClusterStatusCacheUpdateOne) ClearCluster() *ClusterStatusCacheUpdateOne {
	_u.mutation.ClearCluster()
	return _u
}

// Where appends a list predicates to the ClusterStatusCacheUpdate builder.
func (_u *ClusterStatusCacheUpdateOne) Where(ps ...predicate.ClusterStatusCache) *ClusterStatusCacheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClusterStatusCacheUpdateOne) Select(field string, fields ...string) *ClusterStatusCacheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClusterStatusCache entity.
func (_u *ClusterStatusCacheUpdateOne) Save(ctx context.Context) (*ClusterStatusCache, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClusterStatusCacheUpdateOne) SaveX(ctx context.Context) *ClusterStatusCache {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClusterStatusCacheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClusterStatusCacheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClusterStatusCacheUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clusterstatuscache.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClusterStatusCacheUpdateOne) check() error {
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClusterStatusCache.cluster"`)
	}
	return nil
}

func (_u *ClusterStatusCacheUpdateOne) sqlSave(ctx context.Context) (_node *ClusterStatusCache, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clusterstatuscache.Table, clusterstatuscache.Columns, sqlgraph.NewFieldSpec(clusterstatuscache.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClusterStatusCache.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clusterstatuscache.FieldID)
		for _, f := range fields {
			if !clusterstatuscache.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != clusterstatuscache.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clusterstatuscache.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(clusterstatuscache.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CollectedAt(); ok {
		_spec.SetField(clusterstatuscache.FieldCollectedAt, field.TypeTime, value)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   clusterstatuscache.ClusterTable,
			Columns: []string{clusterstatuscache.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cluster.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClusterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   clusterstatuscache.ClusterTable,
			Columns: []string{clusterstatuscache.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cluster.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ClusterStatusCache{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clusterstatuscache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
