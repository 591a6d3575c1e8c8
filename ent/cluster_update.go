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
	"kube-drover.io/drover/ent/credential"
	"kube-drover.io/drover/ent/job"
	"kube-drover.io/drover/ent/node"
	"kube-drover.io/drover/ent/predicate"
)

// ClusterUpdate is the builder for updating Cluster entities.
type ClusterUpdate struct {
	config
	hooks    []Hook
	mutation *ClusterMutation
}

// Where appends a list predicates to the ClusterUpdate builder.
func (_u *ClusterUpdate) Where(ps ...predicate.Cluster) *ClusterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClusterUpdate) SetUpdatedAt(v time.Time) *ClusterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ClusterUpdate) SetName(v string) *ClusterUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ClusterUpdate) SetNillableName(v *string) *ClusterUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ClusterUpdate) SetDescription(v string) *ClusterUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ClusterUpdate) SetNillableDescription(v *string) *ClusterUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ClusterUpdate) ClearDescription() *ClusterUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetKind sets the "kind" field.
func (_u *ClusterUpdate) SetKind(v cluster.Kind) *ClusterUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ClusterUpdate) SetNillableKind(v *cluster.Kind) *ClusterUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetKubernetesVersion sets the "kubernetes_version" field.
func (_u *ClusterUpdate) SetKubernetesVersion(v string) *ClusterUpdate {
	_u.mutation.SetKubernetesVersion(v)
	return _u
}

// SetNillableKubernetesVersion sets the "kubernetes_version" field if the given value is not nil.
func (_u *ClusterUpdate) SetNillableKubernetesVersion(v *string) *ClusterUpdate {
	if v != nil {
		_u.SetKubernetesVersion(*v)
	}
	return _u
}

// ClearKubernetesVersion clears the value of the "kubernetes_version" field.
func (_u *ClusterUpdate) ClearKubernetesVersion() *ClusterUpdate {
	_u.mutation.ClearKubernetesVersion()
	return _u
}

// SetAPIEndpoint sets the "api_endpoint" field.
func (_u *ClusterUpdate) SetAPIEndpoint(v string) *ClusterUpdate {
	_u.mutation.SetAPIEndpoint(v)
	return _u
}

// SetNillableAPIEndpoint sets the "api_endpoint" field if the given value is not nil.
func (_u *ClusterUpdate) SetNillableAPIEndpoint(v *string) *ClusterUpdate {
	if v != nil {
		_u.SetAPIEndpoint(*v)
	}
	return _u
}

// ClearAPIEndpoint clears the value of the "api_endpoint" field.
func (_u *ClusterUpdate) ClearAPIEndpoint() *ClusterUpdate {
	_u.mutation.ClearAPIEndpoint()
	return _u
}

// SetEncryptedKubeconfig sets the "encrypted_kubeconfig" field.
func (_u *ClusterUpdate) SetEncryptedKubeconfig(v []byte) *ClusterUpdate {
	_u.mutation.SetEncryptedKubeconfig(v)
	return _u
}

// ClearEncryptedKubeconfig clears the value of the "encrypted_kubeconfig" field.
func (_u *ClusterUpdate) ClearEncryptedKubeconfig() *ClusterUpdate {
	_u.mutation.ClearEncryptedKubeconfig()
	return _u
}

// SetOperationStatus sets the "operation_status" field.
func (_u *ClusterUpdate) SetOperationStatus(v cluster.OperationStatus) *ClusterUpdate {
	_u.mutation.SetOperationStatus(v)
	return _u
}

// SetNillableOperationStatus sets the "operation_status" field if the given value is not nil.
func (_u *ClusterUpdate) SetNillableOperationStatus(v *cluster.OperationStatus) *ClusterUpdate {
	if v != nil {
		_u.SetOperationStatus(*v)
	}
	return _u
}

// SetCurrentJobID sets the "current_job_id" field.
func (_u *ClusterUpdate) SetCurrentJobID(v int) *ClusterUpdate {
	_u.mutation.ResetCurrentJobID()
	_u.mutation.SetCurrentJobID(v)
	return _u
}

// SetNillableCurrentJobID sets the "current_job_id" field if the given value is not nil.
func (_u *ClusterUpdate) SetNillableCurrentJobID(v *int) *ClusterUpdate {
	if v != nil {
		_u.SetCurrentJobID(*v)
	}
	return _u
}

// AddCurrentJobID adds value to the "current_job_id" field.
func (_u *ClusterUpdate) AddCurrentJobID(v int) *ClusterUpdate {
	_u.mutation.AddCurrentJobID(v)
	return _u
}

// ClearCurrentJobID clears the value of the "current_job_id" field.
func (_u *ClusterUpdate) ClearCurrentJobID() *ClusterUpdate {
	_u.mutation.ClearCurrentJobID()
	return _u
}

// SetOperationStartedAt sets the "operation_started_at" field.
func (_u *ClusterUpdate) SetOperationStartedAt(v time.Time) *ClusterUpdate {
	_u.mutation.SetOperationStartedAt(v)
	return _u
}

// SetNillableOperationStartedAt sets the "operation_started_at" field if the given value is not nil.
func (_u *ClusterUpdate) SetNillableOperationStartedAt(v *time.Time) *ClusterUpdate {
	if v != nil {
		_u.SetOperationStartedAt(*v)
	}
	return _u
}

// ClearOperationStartedAt clears the value of the "operation_started_at" field.
func (_u *ClusterUpdate) ClearOperationStartedAt() *ClusterUpdate {
	_u.mutation.ClearOperationStartedAt()
	return _u
}

// SetOperationLockedBy sets the "operation_locked_by" field.
func (_u *ClusterUpdate) SetOperationLockedBy(v cluster.OperationLockedBy) *ClusterUpdate {
	_u.mutation.SetOperationLockedBy(v)
	return _u
}

// SetNillableOperationLockedBy sets the "operation_locked_by" field if the given value is not nil.
func (_u *ClusterUpdate) SetNillableOperationLockedBy(v *cluster.OperationLockedBy) *ClusterUpdate {
	if v != nil {
		_u.SetOperationLockedBy(*v)
	}
	return _u
}

// ClearOperationLockedBy clears the value of the "operation_locked_by" field.
func (_u *ClusterUpdate) ClearOperationLockedBy() *ClusterUpdate {
	_u.mutation.ClearOperationLockedBy()
	return _u
}

// SetInstallationStage sets the "installation_stage" field.
func (_u *ClusterUpdate) SetInstallationStage(v cluster.InstallationStage) *ClusterUpdate {
	_u.mutation.SetInstallationStage(v)
	return _u
}

// SetNillableInstallationStage sets the "installation_stage" field if the given value is not nil.
func (_u *ClusterUpdate) SetNillableInstallationStage(v *cluster.InstallationStage) *ClusterUpdate {
	if v != nil {
		_u.SetInstallationStage(*v)
	}
	return _u
}

// SetExtraVars sets the "extra_vars" field.
func (_u *ClusterUpdate) SetExtraVars(v map[string]interface{}) *ClusterUpdate {
	_u.mutation.SetExtraVars(v)
	return _u
}

// ClearExtraVars clears the value of the "extra_vars" field.
func (_u *ClusterUpdate) ClearExtraVars() *ClusterUpdate {
	_u.mutation.ClearExtraVars()
	return _u
}

// AddNodeIDs adds the "nodes" edge to the Node entity by IDs.
func (_u *ClusterUpdate) AddNodeIDs(ids ...int) *ClusterUpdate {
	_u.mutation.AddNodeIDs(ids...)
	return _u
}

// AddNodes adds the "nodes" edges to the Node entity.
func (_u *ClusterUpdate) AddNodes(v ...*Node) *ClusterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNodeIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *ClusterUpdate) AddJobIDs(ids ...int) *ClusterUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *ClusterUpdate) AddJobs(v ...*Job) *ClusterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// SetStatusCacheID sets the "status_cache" edge to the ClusterStatusCache entity by ID.
func (_u *ClusterUpdate) SetStatusCacheID(id int) *ClusterUpdate {
	_u.mutation.SetStatusCacheID(id)
	return _u
}

// SetNillableStatusCacheID sets the "status_cache" edge to the ClusterStatusCache entity by ID if the given value is not nil.
func (_u *ClusterUpdate) SetNillableStatusCacheID(id *int) *ClusterUpdate {
	if id != nil {
		_u = _u.SetStatusCacheID(*id)
	}
	return _u
}

// SetStatusCache sets the "status_cache" edge to the ClusterStatusCache entity.
func (_u *ClusterUpdate) SetStatusCache(v *ClusterStatusCache) *ClusterUpdate {
	return _u.SetStatusCacheID(v.ID)
}

// SetCredentialID sets the "credential" edge to the Credential entity by ID.
func (_u *ClusterUpdate) SetCredentialID(id int) *ClusterUpdate {
	_u.mutation.SetCredentialID(id)
	return _u
}

// SetNillableCredentialID sets the "credential" edge to the Credential entity by ID if the given value is not nil.
func (_u *ClusterUpdate) SetNillableCredentialID(id *int) *ClusterUpdate {
	if id != nil {
		_u = _u.SetCredentialID(*id)
	}
	return _u
}

// SetCredential sets the "credential" edge to the Credential entity.
func (_u *ClusterUpdate) SetCredential(v *Credential) *ClusterUpdate {
	return _u.SetCredentialID(v.ID)
}

// Mutation returns the ClusterMutation object of the builder.
func (_u *ClusterUpdate) Mutation() *ClusterMutation {
	return _u.mutation
}

// ClearNodes clears all "nodes" edges to the Node entity.
func (_u *ClusterUpdate) ClearNodes() *ClusterUpdate {
	_u.mutation.ClearNodes()
	return _u
}

// RemoveNodeIDs removes the "nodes" edge to Node entities by IDs.
func (_u *ClusterUpdate) RemoveNodeIDs(ids ...int) *ClusterUpdate {
	_u.mutation.RemoveNodeIDs(ids...)
	return _u
}

// RemoveNodes removes "nodes" edges to Node entities.
func (_u *ClusterUpdate) RemoveNodes(v ...*Node) *ClusterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNodeIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *ClusterUpdate) ClearJobs() *ClusterUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *ClusterUpdate) RemoveJobIDs(ids ...int) *ClusterUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *ClusterUpdate) RemoveJobs(v ...*Job) *ClusterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearStatusCache clears the "status_cache" edge to the ClusterStatusCache entity.
func (_u *ClusterUpdate) ClearStatusCache() *ClusterUpdate {
	_u.mutation.ClearStatusCache()
	return _u
}

// ClearCredential clears the "credential" edge to the Credential entity.
func (_u *ClusterUpdate) ClearCredential() *ClusterUpdate {
	_u.mutation.ClearCredential()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClusterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClusterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClusterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClusterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClusterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cluster.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClusterUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := cluster.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Cluster.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := cluster.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Cluster.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OperationStatus(); ok {
		if err := cluster.OperationStatusValidator(v); err != nil {
			return &ValidationError{Name: "operation_status", err: fmt.Errorf(`ent: validator failed for field "Cluster.operation_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OperationLockedBy(); ok {
		if err := cluster.OperationLockedByValidator(v); err != nil {
			return &ValidationError{Name: "operation_locked_by", err: fmt.Errorf(`ent: validator failed for field "Cluster.operation_locked_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InstallationStage(); ok {
		if err := cluster.InstallationStageValidator(v); err != nil {
			return &ValidationError{Name: "installation_stage", err: fmt.Errorf(`ent: validator failed for field "Cluster.installation_stage": %w`, err)}
		}
	}
	return nil
}

func (_u *ClusterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cluster.Table, cluster.Columns, sqlgraph.NewFieldSpec(cluster.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cluster.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(cluster.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(cluster.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(cluster.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(cluster.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.KubernetesVersion(); ok {
		_spec.SetField(cluster.FieldKubernetesVersion, field.TypeString, value)
	}
	if _u.mutation.KubernetesVersionCleared() {
		_spec.ClearField(cluster.FieldKubernetesVersion, field.TypeString)
	}
	if value, ok := _u.mutation.APIEndpoint(); ok {
		_spec.SetField(cluster.FieldAPIEndpoint, field.TypeString, value)
	}
	if _u.mutation.APIEndpointCleared() {
		_spec.ClearField(cluster.FieldAPIEndpoint, field.TypeString)
	}
	if value, ok := _u.mutation.EncryptedKubeconfig(); ok {
		_spec.SetField(cluster.FieldEncryptedKubeconfig, field.TypeBytes, value)
	}
	if _u.mutation.EncryptedKubeconfigCleared() {
		_spec.ClearField(cluster.FieldEncryptedKubeconfig, field.TypeBytes)
	}
	if value, ok := _u.mutation.OperationStatus(); ok {
		_spec.SetField(cluster.FieldOperationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentJobID(); ok {
		_spec.SetField(cluster.FieldCurrentJobID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentJobID(); ok {
		_spec.AddField(cluster.FieldCurrentJobID, field.TypeInt, value)
	}
	if _u.mutation.CurrentJobIDCleared() {
		_spec.ClearField(cluster.FieldCurrentJobID, field.TypeInt)
	}
	if value, ok := _u.mutation.OperationStartedAt(); ok {
		_spec.SetField(cluster.FieldOperationStartedAt, field.TypeTime, value)
	}
	if _u.mutation.OperationStartedAtCleared() {
		_spec.ClearField(cluster.FieldOperationStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OperationLockedBy(); ok {
		_spec.SetField(cluster.FieldOperationLockedBy, field.TypeEnum, value)
	}
	if _u.mutation.OperationLockedByCleared() {
		_spec.ClearField(cluster.FieldOperationLockedBy, field.TypeEnum)
	}
	if value, ok := _u.mutation.InstallationStage(); ok {
		_spec.SetField(cluster.FieldInstallationStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExtraVars(); ok {
		_spec.SetField(cluster.FieldExtraVars, field.TypeJSON, value)
	}
	if _u.mutation.ExtraVarsCleared() {
		_spec.ClearField(cluster.FieldExtraVars, field.TypeJSON)
	}
	if _u.mutation.NodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNodesIDs(); len(nodes) > 0 && !_u.mutation.NodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatusCacheCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusCacheIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CredentialCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CredentialIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cluster.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClusterUpdateOne is the builder for updating a single Cluster entity.
type ClusterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClusterMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClusterUpdateOne) SetUpdatedAt(v time.Time) *ClusterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ClusterUpdateOne) SetName(v string) *ClusterUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ClusterUpdateOne) SetNillableName(v *string) *ClusterUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ClusterUpdateOne) SetDescription(v string) *ClusterUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ClusterUpdateOne) SetNillableDescription(v *string) *ClusterUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ClusterUpdateOne) ClearDescription() *ClusterUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetKind sets the "kind" field.
func (_u *ClusterUpdateOne) SetKind(v cluster.Kind) *ClusterUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ClusterUpdateOne) SetNillableKind(v *cluster.Kind) *ClusterUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetKubernetesVersion sets the "kubernetes_version" field.
func (_u *ClusterUpdateOne) SetKubernetesVersion(v string) *ClusterUpdateOne {
	_u.mutation.SetKubernetesVersion(v)
	return _u
}

// SetNillableKubernetesVersion sets the "kubernetes_version" field if the given value is not nil.
func (_u *ClusterUpdateOne) SetNillableKubernetesVersion(v *string) *ClusterUpdateOne {
	if v != nil {
		_u.SetKubernetesVersion(*v)
	}
	return _u
}

// ClearKubernetesVersion clears the value of the "kubernetes_version" field.
func (_u *ClusterUpdateOne) ClearKubernetesVersion() *ClusterUpdateOne {
	_u.mutation.ClearKubernetesVersion()
	return _u
}

// SetAPIEndpoint sets the "api_endpoint" field.
func (_u *ClusterUpdateOne) SetAPIEndpoint(v string) *ClusterUpdateOne {
	_u.mutation.SetAPIEndpoint(v)
	return _u
}

// SetNillableAPIEndpoint sets the "api_endpoint" field if the given value is not nil.
func (_u *ClusterUpdateOne) SetNillableAPIEndpoint(v *string) *ClusterUpdateOne {
	if v != nil {
		_u.SetAPIEndpoint(*v)
	}
	return _u
}

// ClearAPIEndpoint clears the value of the "api_endpoint" field.
func (_u *ClusterUpdateOne) ClearAPIEndpoint() *ClusterUpdateOne {
	_u.mutation.ClearAPIEndpoint()
	return _u
}

// SetEncryptedKubeconfig sets the "encrypted_kubeconfig" field.
func (_u *ClusterUpdateOne) SetEncryptedKubeconfig(v []byte) *ClusterUpdateOne {
	_u.mutation.SetEncryptedKubeconfig(v)
	return _u
}

// ClearEncryptedKubeconfig clears the value of the "encrypted_kubeconfig" field.
func (_u *ClusterUpdateOne) ClearEncryptedKubeconfig() *ClusterUpdateOne {
	_u.mutation.ClearEncryptedKubeconfig()
	return _u
}

// SetOperationStatus sets the "operation_status" field.
func (_u *ClusterUpdateOne) SetOperationStatus(v cluster.OperationStatus) *ClusterUpdateOne {
	_u.mutation.SetOperationStatus(v)
	return _u
}

// SetNillableOperationStatus sets the "operation_status" field if the given value is not nil.
func (_u *ClusterUpdateOne) SetNillableOperationStatus(v *cluster.OperationStatus) *ClusterUpdateOne {
	if v != nil {
		_u.SetOperationStatus(*v)
	}
	return _u
}

// SetCurrentJobID sets the "current_job_id" field.
func (_u *ClusterUpdateOne) SetCurrentJobID(v int) *ClusterUpdateOne {
	_u.mutation.ResetCurrentJobID()
	_u.mutation.SetCurrentJobID(v)
	return _u
}

// SetNillableCurrentJobID sets the "current_job_id" field if the given value is not nil.
func (_u *ClusterUpdateOne) SetNillableCurrentJobID(v *int) *ClusterUpdateOne {
	if v != nil {
		_u.SetCurrentJobID(*v)
	}
	return _u
}

// AddCurrentJobID adds value to the "current_job_id" field.
func (_u *ClusterUpdateOne) AddCurrentJobID(v int) *ClusterUpdateOne {
	_u.mutation.AddCurrentJobID(v)
	return _u
}

// ClearCurrentJobID clears the value of the "current_job_id" field.
func (_u *ClusterUpdateOne) ClearCurrentJobID() *ClusterUpdateOne {
	_u.mutation.ClearCurrentJobID()
	return _u
}

// SetOperationStartedAt sets the "operation_started_at" field.
func (_u *ClusterUpdateOne) SetOperationStartedAt(v time.Time) *ClusterUpdateOne {
	_u.mutation.SetOperationStartedAt(v)
	return _u
}

// SetNillableOperationStartedAt sets the "operation_started_at" field if the given value is not nil.
func (_u *ClusterUpdateOne) SetNillableOperationStartedAt(v *time.Time) *ClusterUpdateOne {
	if v != nil {
		_u.SetOperationStartedAt(*v)
	}
	return _u
}

// ClearOperationStartedAt clears the value of the "operation_started_at" field.
func (_u *ClusterUpdateOne) ClearOperationStartedAt() *ClusterUpdateOne {
	_u.mutation.ClearOperationStartedAt()
	return _u
}

// SetOperationLockedBy sets the "operation_locked_by" field.
func (_u *ClusterUpdateOne) SetOperationLockedBy(v cluster.OperationLockedBy) *ClusterUpdateOne {
	_u.mutation.SetOperationLockedBy(v)
	return _u
}

// SetNillableOperationLockedBy sets the "operation_locked_by" field if the given value is not nil.
func (_u *ClusterUpdateOne) SetNillableOperationLockedBy(v *cluster.OperationLockedBy) *ClusterUpdateOne {
	if v != nil {
		_u.SetOperationLockedBy(*v)
	}
	return _u
}

// ClearOperationLockedBy clears the value of the "operation_locked_by" field.
func (_u *ClusterUpdateOne) ClearOperationLockedBy() *ClusterUpdateOne {
	_u.mutation.ClearOperationLockedBy()
	return _u
}

// SetInstallationStage sets the "installation_stage" field.
func (_u *ClusterUpdateOne) SetInstallationStage(v cluster.InstallationStage) *ClusterUpdateOne {
	_u.mutation.SetInstallationStage(v)
	return _u
}

// SetNillableInstallationStage sets the "installation_stage" field if the given value is not nil.
func (_u *ClusterUpdateOne) SetNillableInstallationStage(v *cluster.InstallationStage) *ClusterUpdateOne {
	if v != nil {
		_u.SetInstallationStage(*v)
	}
	return _u
}

// SetExtraVars sets the "extra_vars" field.
func (_u *ClusterUpdateOne) SetExtraVars(v map[string]interface{}) *ClusterUpdateOne {
	_u.mutation.SetExtraVars(v)
	return _u
}

// ClearExtraVars clears the value of the "extra_vars" field.
func (_u *ClusterUpdateOne) ClearExtraVars() *ClusterUpdateOne {
	_u.mutation.ClearExtraVars()
	return _u
}

// AddNodeIDs adds the "nodes" edge to the Node entity by IDs.
func (_u *ClusterUpdateOne) AddNodeIDs(ids ...int) *ClusterUpdateOne {
	_u.mutation.AddNodeIDs(ids...)
	return _u
}

// AddNodes adds the "nodes" edges to the Node entity.
func (_u *ClusterUpdateOne) AddNodes(v ...*Node) *ClusterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNodeIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *ClusterUpdateOne) AddJobIDs(ids ...int) *ClusterUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *ClusterUpdateOne) AddJobs(v ...*Job) *ClusterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// SetStatusCacheID sets the "status_cache" edge to the ClusterStatusCache entity by ID.
func (_u *ClusterUpdateOne) SetStatusCacheID(id int) *ClusterUpdateOne {
	_u.mutation.SetStatusCacheID(id)
	return _u
}

// SetNillableStatusCacheID sets the "status_cache" edge to the ClusterStatusCache entity by ID if the given value is not nil.
func (_u *ClusterUpdateOne) SetNillableStatusCacheID(id *int) *ClusterUpdateOne {
	if id != nil {
		_u = _u.SetStatusCacheID(*id)
	}
	return _u
}

// SetStatusCache sets the "status_cache" edge to the ClusterStatusCache entity.
func (_u *ClusterUpdateOne) SetStatusCache(v *ClusterStatusCache) *ClusterUpdateOne {
	return _u.SetStatusCacheID(v.ID)
}

// SetCredentialID sets the "credential" edge to the Credential entity by ID.
func (_u *ClusterUpdateOne) SetCredentialID(id int) *ClusterUpdateOne {
	_u.mutation.SetCredentialID(id)
	return _u
}

// SetNillableCredentialID sets the "credential" edge to the Credential entity by ID if the given value is not nil.
func (_u *ClusterUpdateOne) SetNillableCredentialID(id *int) *ClusterUpdateOne {
	if id != nil {
		_u = _u.SetCredentialID(*id)
	}
	return _u
}

// SetCredential sets the "credential" edge to the Credential entity.
func (_u *ClusterUpdateOne) SetCredential(v *Credential) *ClusterUpdateOne {
	return _u.SetCredentialID(v.ID)
}

// Mutation returns the ClusterMutation object of the builder.
func (_u *ClusterUpdateOne) Mutation() *ClusterMutation {
	return _u.mutation
}

// ClearNodes clears all "nodes" edges to the Node entity.
func (_u *ClusterUpdateOne) ClearNodes() *ClusterUpdateOne {
	_u.mutation.ClearNodes()
	return _u
}

// RemoveNodeIDs removes the "nodes" edge to Node entities by IDs.
func (_u *ClusterUpdateOne) RemoveNodeIDs(ids ...int) *ClusterUpdateOne {
	_u.mutation.RemoveNodeIDs(ids...)
	return _u
}

// RemoveNodes removes "nodes" edges to Node entities.
func (_u *ClusterUpdateOne) RemoveNodes(v ...*Node) *ClusterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNodeIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *ClusterUpdateOne) ClearJobs() *ClusterUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *ClusterUpdateOne) RemoveJobIDs(ids ...int) *ClusterUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *ClusterUpdateOne) RemoveJobs(v ...*Job) *ClusterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearStatusCache clears the "status_cache" edge to the ClusterStatusCache entity.
func (_u *ClusterUpdateOne) ClearStatusCache() *ClusterUpdateOne {
	_u.mutation.ClearStatusCache()
	return _u
}

// ClearCredential clears the "credential" edge to the Credential entity.
func (_u *ClusterUpdateOne) ClearCredential() *ClusterUpdateOne {
	_u.mutation.ClearCredential()
	return _u
}

// Where appends a list predicates to the ClusterUpdate builder.
func (_u *ClusterUpdateOne) Where(ps ...predicate.Cluster) *ClusterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClusterUpdateOne) Select(field string, fields ...string) *ClusterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Cluster entity.
func (_u *ClusterUpdateOne) Save(ctx context.Context) (*Cluster, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClusterUpdateOne) SaveX(ctx context.Context) *Cluster {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClusterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClusterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClusterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cluster.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClusterUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := cluster.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Cluster.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := cluster.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Cluster.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OperationStatus(); ok {
		if err := cluster.OperationStatusValidator(v); err != nil {
			return &ValidationError{Name: "operation_status", err: fmt.Errorf(`ent: validator failed for field "Cluster.operation_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OperationLockedBy(); ok {
		if err := cluster.OperationLockedByValidator(v); err != nil {
			return &ValidationError{Name: "operation_locked_by", err: fmt.Errorf(`ent: validator failed for field "Cluster.operation_locked_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InstallationStage(); ok {
		if err := cluster.InstallationStageValidator(v); err != nil {
			return &ValidationError{Name: "installation_stage", err: fmt.Errorf(`ent: validator failed for field "Cluster.installation_stage": %w`, err)}
		}
	}
	return nil
}

func (_u *ClusterUpdateOne) sqlSave(ctx context.Context) (_node *Cluster, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cluster.Table, cluster.Columns, sqlgraph.NewFieldSpec(cluster.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Cluster.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cluster.FieldID)
		for _, f := range fields {
			if !cluster.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cluster.FieldID {
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
		_spec.SetField(cluster.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(cluster.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(cluster.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(cluster.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(cluster.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.KubernetesVersion(); ok {
		_spec.SetField(cluster.FieldKubernetesVersion, field.TypeString, value)
	}
	if _u.mutation.KubernetesVersionCleared() {
		_spec.ClearField(cluster.FieldKubernetesVersion, field.TypeString)
	}
	if value, ok := _u.mutation.APIEndpoint(); ok {
		_spec.SetField(cluster.FieldAPIEndpoint, field.TypeString, value)
	}
	if _u.mutation.APIEndpointCleared() {
		_spec.ClearField(cluster.FieldAPIEndpoint, field.TypeString)
	}
	if value, ok := _u.mutation.EncryptedKubeconfig(); ok {
		_spec.SetField(cluster.FieldEncryptedKubeconfig, field.TypeBytes, value)
	}
	if _u.mutation.EncryptedKubeconfigCleared() {
		_spec.ClearField(cluster.FieldEncryptedKubeconfig, field.TypeBytes)
	}
	if value, ok := _u.mutation.OperationStatus(); ok {
		_spec.SetField(cluster.FieldOperationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentJobID(); ok {
		_spec.SetField(cluster.FieldCurrentJobID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentJobID(); ok {
		_spec.AddField(cluster.FieldCurrentJobID, field.TypeInt, value)
	}
	if _u.mutation.CurrentJobIDCleared() {
		_spec.ClearField(cluster.FieldCurrentJobID, field.TypeInt)
	}
	if value, ok := _u.mutation.OperationStartedAt(); ok {
		_spec.SetField(cluster.FieldOperationStartedAt, field.TypeTime, value)
	}
	if _u.mutation.OperationStartedAtCleared() {
		_spec.ClearField(cluster.FieldOperationStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OperationLockedBy(); ok {
		_spec.SetField(cluster.FieldOperationLockedBy, field.TypeEnum, value)
	}
	if _u.mutation.OperationLockedByCleared() {
		_spec.ClearField(cluster.FieldOperationLockedBy, field.TypeEnum)
	}
	if value, ok := _u.mutation.InstallationStage(); ok {
		_spec.SetField(cluster.FieldInstallationStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExtraVars(); ok {
		_spec.SetField(cluster.FieldExtraVars, field.TypeJSON, value)
	}
	if _u.mutation.ExtraVarsCleared() {
		_spec.ClearField(cluster.FieldExtraVars, field.TypeJSON)
	}
	if _u.mutation.NodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNodesIDs(); len(nodes) > 0 && !_u.mutation.NodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatusCacheCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusCacheIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CredentialCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CredentialIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Cluster{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cluster.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
