// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/clusterstatuscache"
)

// ClusterStatusCacheCreate is the builder for creating a ClusterStatusCache entity.
type ClusterStatusCacheCreate struct {
	config
	mutation *ClusterStatusCacheMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClusterStatusCacheCreate) SetCreatedAt(v time.Time) *ClusterStatusCacheCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClusterStatusCacheCreate) SetNillableCreatedAt(v *time.Time) *ClusterStatusCacheCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClusterStatusCacheCreate) SetUpdatedAt(v time.Time) *ClusterStatusCacheCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClusterStatusCacheCreate) SetNillableUpdatedAt(v *time.Time) *ClusterStatusCacheCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ClusterStatusCacheCreate) SetPayload(v map[string]interface{}) *ClusterStatusCacheCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCollectedAt sets the "collected_at" field.
func (_c *ClusterStatusCacheCreate) SetCollectedAt(v time.Time) *ClusterStatusCacheCreate {
	_c.mutation.SetCollectedAt(v)
	return _c
}

// SetClusterID sets the "cluster" edge to the Cluster entity by ID.
func (_c *ClusterStatusCacheCreate) SetClusterID(id int) *ClusterStatusCacheCreate {
	_c.mutation.SetClusterID(id)
	return _c
}

// SetCluster sets the "cluster" edge to the Cluster entity.
func (_c *ClusterStatusCacheCreate) SetCluster(v *Cluster) *ClusterStatusCacheCreate {
	return _c.SetClusterID(v.ID)
}

// Mutation returns the ClusterStatusCacheMutation object of the builder.
func (_c *ClusterStatusCacheCreate) Mutation() *ClusterStatusCacheMutation {
	return _c.mutation
}

// Save creates the ClusterStatusCache in the database.
func (_c *ClusterStatusCacheCreate) Save(ctx context.Context) (*ClusterStatusCache, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClusterStatusCacheCreate) SaveX(ctx context.Context) *ClusterStatusCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClusterStatusCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClusterStatusCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClusterStatusCacheCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clusterstatuscache.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := clusterstatuscache.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClusterStatusCacheCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ClusterStatusCache.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ClusterStatusCache.updated_at"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "ClusterStatusCache.payload"`)}
	}
	if _, ok := _c.mutation.CollectedAt(); !ok {
		return &ValidationError{Name: "collected_at", err: errors.New(`ent: missing required field "ClusterStatusCache.collected_at"`)}
	}
	if len(_c.mutation.ClusterIDs()) == 0 {
		return &ValidationError{Name: "cluster", err: errors.New(`ent: missing required edge "ClusterStatusCache.cluster"`)}
	}
	return nil
}

func (_c *ClusterStatusCacheCreate) sqlSave(ctx context.Context) (*ClusterStatusCache, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClusterStatusCacheCreate) createSpec() (*ClusterStatusCache, *sqlgraph.CreateSpec) {
	var (
		_node = &ClusterStatusCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clusterstatuscache.Table, sqlgraph.NewFieldSpec(clusterstatuscache.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clusterstatuscache.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(clusterstatuscache.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(clusterstatuscache.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CollectedAt(); ok {
		_spec.SetField(clusterstatuscache.FieldCollectedAt, field.TypeTime, value)
		_node.CollectedAt = value
	}
	if nodes := _c.mutation.ClusterIDs(); len(nodes) > 0 {
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
		_node.cluster_status_cache = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ClusterStatusCacheCreateBulk is the builder for creating many ClusterStatusCache entities in bulk.
type ClusterStatusCacheCreateBulk struct {
	config
	err      error
	builders []*ClusterStatusCacheCreate
}

// Save creates the ClusterStatusCache entities in the database.
func (_c *ClusterStatusCacheCreateBulk) Save(ctx context.Context) ([]*ClusterStatusCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClusterStatusCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClusterStatusCacheMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ClusterStatusCacheCreateBulk) SaveX(ctx context.Context) []*ClusterStatusCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClusterStatusCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClusterStatusCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
