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
	"kube-drover.io/drover/ent/credential"
	"kube-drover.io/drover/ent/job"
	"kube-drover.io/drover/ent/node"
)

// ClusterCreate is the builder for creating a Cluster entity.
type ClusterCreate struct {
	config
	mutation *ClusterMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClusterCreate) SetCreatedAt(v time.Time) *ClusterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClusterCreate) SetNillableCreatedAt(v *time.Time) *ClusterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClusterCreate) SetUpdatedAt(v time.Time) *ClusterCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClusterCreate) SetNillableUpdatedAt(v *time.Time) *ClusterCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ClusterCreate) SetName(v string) *ClusterCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ClusterCreate) SetDescription(v string) *ClusterCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ClusterCreate) SetNillableDescription(v *string) *ClusterCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *ClusterCreate) SetKind(v cluster.Kind) *ClusterCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *ClusterCreate) SetNillableKind(v *cluster.Kind) *ClusterCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetKubernetesVersion sets the "kubernetes_version" field.
func (_c *ClusterCreate) SetKubernetesVersion(v string) *ClusterCreate {
	_c.mutation.SetKubernetesVersion(v)
	return _c
}

// SetNillableKubernetesVersion sets the "kubernetes_version" field if the given value is not nil.
func (_c *ClusterCreate) SetNillableKubernetesVersion(v *string) *ClusterCreate {
	if v != nil {
		_c.SetKubernetesVersion(*v)
	}
	return _c
}

// SetAPIEndpoint sets the "api_endpoint" field.
func (_c *ClusterCreate) SetAPIEndpoint(v string) *ClusterCreate {
	_c.mutation.SetAPIEndpoint(v)
	return _c
}

// SetNillableAPIEndpoint sets the "api_endpoint" field if the given value is not nil.
func (_c *ClusterCreate) SetNillableAPIEndpoint(v *string) *ClusterCreate {
	if v != nil {
		_c.SetAPIEndpoint(*v)
	}
	return _c
}

// SetEncryptedKubeconfig sets the "encrypted_kubeconfig" field.
func (_c *ClusterCreate) SetEncryptedKubeconfig(v []byte) *ClusterCreate {
	_c.mutation.SetEncryptedKubeconfig(v)
	return _c
}

// SetOperationStatus sets the "operation_status" field.
func (_c *ClusterCreate) SetOperationStatus(v cluster.OperationStatus) *ClusterCreate {
	_c.mutation.SetOperationStatus(v)
	return _c
}

// SetNillableOperationStatus sets the "operation_status" field if the given value is not nil.
func (_c *ClusterCreate) SetNillableOperationStatus(v *cluster.OperationStatus) *ClusterCreate {
	if v != nil {
		_c.SetOperationStatus(*v)
	}
	return _c
}

// SetCurrentJobID sets the "current_job_id" field.
func (_c *ClusterCreate) SetCurrentJobID(v int) *ClusterCreate {
	_c.mutation.SetCurrentJobID(v)
	return _c
}

// SetNillableCurrentJobID sets the "current_job_id" field if the given value is not nil.
func (_c *ClusterCreate) SetNillableCurrentJobID(v *int) *ClusterCreate {
	if v != nil {
		_c.SetCurrentJobID(*v)
	}
	return _c
}

// SetOperationStartedAt sets the "operation_started_at" field.
func (_c *ClusterCreate) SetOperationStartedAt(v time.Time) *ClusterCreate {
	_c.mutation.SetOperationStartedAt(v)
	return _c
}

// SetNillableOperationStartedAt sets the "operation_started_at" field if the given value is not nil.
func (_c *ClusterCreate) SetNillableOperationStartedAt(v *time.Time) *ClusterCreate {
	if v != nil {
		_c.SetOperationStartedAt(*v)
	}
	return _c
}

// SetOperationLockedBy sets the "operation_locked_by" field.
func (_c *ClusterCreate) SetOperationLockedBy(v cluster.OperationLockedBy) *ClusterCreate {
	_c.mutation.SetOperationLockedBy(v)
	return _c
}

// SetNillableOperationLockedBy sets the "operation_locked_by" field if the given value is not nil.
func (_c *ClusterCreate) SetNillableOperationLockedBy(v *cluster.OperationLockedBy) *ClusterCreate {
	if v != nil {
		_c.SetOperationLockedBy(*v)
	}
	return _c
}

// SetInstallationStage sets the "installation_stage" field.
func (_c *ClusterCreate) SetInstallationStage(v cluster.InstallationStage) *ClusterCreate {
	_c.mutation.SetInstallationStage(v)
	return _c
}

// SetNillableInstallationStage sets the "installation_stage" field if the given value is not nil.
func (_c *ClusterCreate) SetNillableInstallationStage(v *cluster.InstallationStage) *ClusterCreate {
	if v != nil {
		_c.SetInstallationStage(*v)
	}
	return _c
}

// SetExtraVars sets the "extra_vars" field.
func (_c *ClusterCreate) SetExtraVars(v map[string]interface{}) *ClusterCreate {
	_c.mutation.SetExtraVars(v)
	return _c
}

// AddNodeIDs adds the "nodes" edge to the Node entity by IDs.
func (_c *ClusterCreate) AddNodeIDs(ids ...int) *ClusterCreate {
	_c.mutation.AddNodeIDs(ids...)
	return _c
}

// AddNodes adds the "nodes" edges to the Node entity.
func (_c *ClusterCreate) AddNodes(v ...*Node) *ClusterCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNodeIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_c *ClusterCreate) AddJobIDs(ids ...int) *ClusterCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_c *ClusterCreate) AddJobs(v ...*Job) *ClusterCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// SetStatusCacheID sets the "status_cache" edge to the ClusterStatusCache entity by ID.
func (_c *ClusterCreate) SetStatusCacheID(id int) *ClusterCreate {
	_c.mutation.SetStatusCacheID(id)
	return _c
}

// SetNillableStatusCacheID sets the "status_cache" edge to the ClusterStatusCache entity by ID if the given value is not nil.
func (_c *ClusterCreate) SetNillableStatusCacheID(id *int) *ClusterCreate {
	if id != nil {
		_c = _c.SetStatusCacheID(*id)
	}
	return _c
}

// SetStatusCache sets the "status_cache" edge to the ClusterStatusCache entity.
func (_c *ClusterCreate) SetStatusCache(v *ClusterStatusCache) *ClusterCreate {
	return _c.SetStatusCacheID(v.ID)
}

// SetCredentialID sets the "credential" edge to the Credential entity by ID.
func (_c *ClusterCreate) SetCredentialID(id int) *ClusterCreate {
	_c.mutation.SetCredentialID(id)
	return _c
}

// SetNillableCredentialID sets the "credential" edge to the Credential entity by ID if the given value is not nil.
func (_c *ClusterCreate) SetNillableCredentialID(id *int) *ClusterCreate {
	if id != nil {
		_c = _c.SetCredentialID(*id)
	}
	return _c
}

// SetCredential sets the "credential" edge to the Credential entity.
func (_c *ClusterCreate) SetCredential(v *Credential) *ClusterCreate {
	return _c.SetCredentialID(v.ID)
}

// Mutation returns the ClusterMutation object of the builder.
func (_c *ClusterCreate) Mutation() *ClusterMutation {
	return _c.mutation
}

// Save creates the Cluster in the database.
func (_c *ClusterCreate) Save(ctx context.Context) (*Cluster, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClusterCreate) SaveX(ctx context.Context) *Cluster {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClusterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClusterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClusterCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cluster.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cluster.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Kind(); !ok {
		v := cluster.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.OperationStatus(); !ok {
		v := cluster.DefaultOperationStatus
		_c.mutation.SetOperationStatus(v)
	}
	if _, ok := _c.mutation.InstallationStage(); !ok {
		v := cluster.DefaultInstallationStage
		_c.mutation.SetInstallationStage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClusterCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Cluster.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Cluster.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Cluster.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := cluster.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Cluster.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Cluster.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := cluster.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Cluster.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OperationStatus(); !ok {
		return &ValidationError{Name: "operation_status", err: errors.New(`ent: missing required field "Cluster.operation_status"`)}
	}
	if v, ok := _c.mutation.OperationStatus(); ok {
		if err := cluster.OperationStatusValidator(v); err != nil {
			return &ValidationError{Name: "operation_status", err: fmt.Errorf(`ent: validator failed for field "Cluster.operation_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.OperationLockedBy(); ok {
		if err := cluster.OperationLockedByValidator(v); err != nil {
			return &ValidationError{Name: "operation_locked_by", err: fmt.Errorf(`ent: validator failed for field "Cluster.operation_locked_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InstallationStage(); !ok {
		return &ValidationError{Name: "installation_stage", err: errors.New(`ent: missing required field "Cluster.installation_stage"`)}
	}
	if v, ok := _c.mutation.InstallationStage(); ok {
		if err := cluster.InstallationStageValidator(v); err != nil {
			return &ValidationError{Name: "installation_stage", err: fmt.Errorf(`ent: validator failed for field "Cluster.installation_stage": %w`, err)}
		}
	}
	return nil
}

func (_c *ClusterCreate) sqlSave(ctx context.Context) (*Cluster, error) {
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

func (_c *ClusterCreate) createSpec() (*Cluster, *sqlgraph.CreateSpec) {
	var (
		_node = &Cluster{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cluster.Table, sqlgraph.NewFieldSpec(cluster.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cluster.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cluster.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(cluster.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(cluster.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(cluster.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.KubernetesVersion(); ok {
		_spec.SetField(cluster.FieldKubernetesVersion, field.TypeString, value)
		_node.KubernetesVersion = value
	}
	if value, ok := _c.mutation.APIEndpoint(); ok {
		_spec.SetField(cluster.FieldAPIEndpoint, field.TypeString, value)
		_node.APIEndpoint = value
	}
	if value, ok := _c.mutation.EncryptedKubeconfig(); ok {
		_spec.SetField(cluster.FieldEncryptedKubeconfig, field.TypeBytes, value)
		_node.EncryptedKubeconfig = value
	}
	if value, ok := _c.mutation.OperationStatus(); ok {
		_spec.SetField(cluster.FieldOperationStatus, field.TypeEnum, value)
		_node.OperationStatus = value
	}
	if value, ok := _c.mutation.CurrentJobID(); ok {
		_spec.SetField(cluster.FieldCurrentJobID, field.TypeInt, value)
		_node.CurrentJobID = &value
	}
	if value, ok := _c.mutation.OperationStartedAt(); ok {
		_spec.SetField(cluster.FieldOperationStartedAt, field.TypeTime, value)
		_node.OperationStartedAt = &value
	}
	if value, ok := _c.mutation.OperationLockedBy(); ok {
		_spec.SetField(cluster.FieldOperationLockedBy, field.TypeEnum, value)
		_node.OperationLockedBy = &value
	}
	if value, ok := _c.mutation.InstallationStage(); ok {
		_spec.SetField(cluster.FieldInstallationStage, field.TypeEnum, value)
		_node.InstallationStage = value
	}
	if value, ok := _c.mutation.ExtraVars(); ok {
		_spec.SetField(cluster.FieldExtraVars, field.TypeJSON, value)
		_node.ExtraVars = value
	}
	if nodes := _c.mutation.NodesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cluster.NodesTable,
			Columns: []string{cluster.NodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cluster.JobsTable,
			Columns: []string{cluster.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StatusCacheIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   cluster.StatusCacheTable,
			Columns: []string{cluster.StatusCacheColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clusterstatuscache.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CredentialIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cluster.CredentialTable,
			Columns: []string{cluster.CredentialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(credential.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.credential_clusters = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ClusterCreateBulk is the builder for creating many Cluster entities in bulk.
type ClusterCreateBulk struct {
	config
	err      error
	builders []*ClusterCreate
}

// Save creates the Cluster entities in the database.
func (_c *ClusterCreateBulk) Save(ctx context.Context) ([]*Cluster, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Cluster, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClusterMutation)
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
func (_c *ClusterCreateBulk) SaveX(ctx context.Context) []*Cluster {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClusterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClusterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
