// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/clusterstatuscache"
	"kube-drover.io/drover/ent/credential"
	"kube-drover.io/drover/ent/job"
	"kube-drover.io/drover/ent/node"
	"kube-drover.io/drover/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCluster            = "Cluster"
	TypeClusterStatusCache = "ClusterStatusCache"
	TypeCredential         = "Credential"
	TypeJob                = "Job"
	TypeNode               = "Node"
)

// ClusterMutation represents an operation that mutates the Cluster nodes in the graph.
type ClusterMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	created_at           *time.Time
	updated_at           *time.Time
	name                 *string
	description          *string
	kind                 *cluster.Kind
	kubernetes_version   *string
	api_endpoint         *string
	encrypted_kubeconfig *[]byte
	operation_status     *cluster.OperationStatus
	current_job_id       *int
	addcurrent_job_id    *int
	operation_started_at *time.Time
	operation_locked_by  *cluster.OperationLockedBy
	installation_stage   *cluster.InstallationStage
	extra_vars           *map[string]interface{}
	clearedFields        map[string]struct{}
	nodes                map[int]struct{}
	removednodes         map[int]struct{}
	clearednodes         bool
	jobs                 map[int]struct{}
	removedjobs          map[int]struct{}
	clearedjobs          bool
	status_cache         *int
	clearedstatus_cache  bool
	credential           *int
	clearedcredential    bool
	done                 bool
	oldValue             func(context.Context) (*Cluster, error)
	predicates           []predicate.Cluster
}

var _ ent.Mutation = (*ClusterMutation)(nil)

// clusterOption allows management of the mutation configuration using functional options.
type clusterOption func(*ClusterMutation)

// newClusterMutation creates new mutation for the Cluster entity.
func newClusterMutation(c config, op Op, opts ...clusterOption) *ClusterMutation {
	m := &ClusterMutation{
		config:        c,
		op:            op,
		typ:           TypeCluster,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClusterID sets the ID field of the mutation.
func withClusterID(id int) clusterOption {
	return func(m *ClusterMutation) {
		var (
			err   error
			once  sync.Once
			value *Cluster
		)
		m.oldValue = func(ctx context.Context) (*Cluster, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Cluster.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCluster sets the old Cluster of the mutation.
func withCluster(node *Cluster) clusterOption {
	return func(m *ClusterMutation) {
		m.oldValue = func(context.Context) (*Cluster, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClusterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClusterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClusterMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClusterMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Cluster.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ClusterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClusterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Cluster entity.
// If the Cluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ClusterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClusterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClusterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Cluster entity.
// If the Cluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ClusterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *ClusterMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ClusterMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Cluster entity.
// If the Cluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *ClusterMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ClusterMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ClusterMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Cluster entity.
// If the Cluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ClusterMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[cluster.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ClusterMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[cluster.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ClusterMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, cluster.FieldDescription)
}

// SetKind sets the "kind" field.
func (m *ClusterMutation) SetKind(c cluster.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ClusterMutation) Kind() (r cluster.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Cluster entity.
// If the Cluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterMutation) OldKind(ctx context.Context) (v cluster.Kind, err error) {
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
func (m *ClusterMutation) ResetKind() {
	m.kind = nil
}

// SetKubernetesVersion sets the "kubernetes_version" field.
func (m *ClusterMutation) SetKubernetesVersion(s string) {
	m.kubernetes_version = &s
}

// KubernetesVersion returns the value of the "kubernetes_version" field in the mutation.
func (m *ClusterMutation) KubernetesVersion() (r string, exists bool) {
	v := m.kubernetes_version
	if v == nil {
		return
	}
	return *v, true
}

// OldKubernetesVersion returns the old "kubernetes_version" field's value of the Cluster entity.
// If the Cluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterMutation) OldKubernetesVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKubernetesVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKubernetesVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKubernetesVersion: %w", err)
	}
	return oldValue.KubernetesVersion, nil
}

// ClearKubernetesVersion clears the value of the "kubernetes_version" field.
func (m *ClusterMutation) ClearKubernetesVersion() {
	m.kubernetes_version = nil
	m.clearedFields[cluster.FieldKubernetesVersion] = struct{}{}
}

// KubernetesVersionCleared returns if the "kubernetes_version" field was cleared in this mutation.
func (m *ClusterMutation) KubernetesVersionCleared() bool {
	_, ok := m.clearedFields[cluster.FieldKubernetesVersion]
	return ok
}

// ResetKubernetesVersion resets all changes to the "kubernetes_version" field.
func (m *ClusterMutation) ResetKubernetesVersion() {
	m.kubernetes_version = nil
	delete(m.clearedFields, cluster.FieldKubernetesVersion)
}

// SetAPIEndpoint sets the "api_endpoint" field.
func (m *ClusterMutation) SetAPIEndpoint(s string) {
	m.api_endpoint = &s
}

// APIEndpoint returns the value of the "api_endpoint" field in the mutation.
func (m *ClusterMutation) APIEndpoint() (r string, exists bool) {
	v := m.api_endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIEndpoint returns the old "api_endpoint" field's value of the Cluster entity.
// If the Cluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterMutation) OldAPIEndpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIEndpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIEndpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIEndpoint: %w", err)
	}
	return oldValue.APIEndpoint, nil
}

// ClearAPIEndpoint clears the value of the "api_endpoint" field.
func (m *ClusterMutation) ClearAPIEndpoint() {
	m.api_endpoint = nil
	m.clearedFields[cluster.FieldAPIEndpoint] = struct{}{}
}

// APIEndpointCleared returns if the "api_endpoint" field was cleared in this mutation.
func (m *ClusterMutation) APIEndpointCleared() bool {
	_, ok := m.clearedFields[cluster.FieldAPIEndpoint]
	return ok
}

// ResetAPIEndpoint resets all changes to the "api_endpoint" field.
func (m *ClusterMutation) ResetAPIEndpoint() {
	m.api_endpoint = nil
	delete(m.clearedFields, cluster.FieldAPIEndpoint)
}

// SetEncryptedKubeconfig sets the "encrypted_kubeconfig" field.
func (m *ClusterMutation) SetEncryptedKubeconfig(b []byte) {
	m.encrypted_kubeconfig = &b
}

// EncryptedKubeconfig returns the value of the "encrypted_kubeconfig" field in the mutation.
func (m *ClusterMutation) EncryptedKubeconfig() (r []byte, exists bool) {
	v := m.encrypted_kubeconfig
	if v == nil {
		return
	}
	return *v, true
}

// OldEncryptedKubeconfig returns the old "encrypted_kubeconfig" field's value of the Cluster entity.
// If the Cluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterMutation) OldEncryptedKubeconfig(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncryptedKubeconfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncryptedKubeconfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncryptedKubeconfig: %w", err)
	}
	return oldValue.EncryptedKubeconfig, nil
}

// ClearEncryptedKubeconfig clears the value of the "encrypted_kubeconfig" field.
func (m *ClusterMutation) ClearEncryptedKubeconfig() {
	m.encrypted_kubeconfig = nil
	m.clearedFields[cluster.FieldEncryptedKubeconfig] = struct{}{}
}

// EncryptedKubeconfigCleared returns if the "encrypted_kubeconfig" field was cleared in this mutation.
func (m *ClusterMutation) EncryptedKubeconfigCleared() bool {
	_, ok := m.clearedFields[cluster.FieldEncryptedKubeconfig]
	return ok
}

// ResetEncryptedKubeconfig resets all changes to the "encrypted_kubeconfig" field.
func (m *ClusterMutation) ResetEncryptedKubeconfig() {
	m.encrypted_kubeconfig = nil
	delete(m.clearedFields, cluster.FieldEncryptedKubeconfig)
}

// SetOperationStatus sets the "operation_status" field.
func (m *ClusterMutation) SetOperationStatus(cs cluster.OperationStatus) {
	m.operation_status = &cs
}

// OperationStatus returns the value of the "operation_status" field in the mutation.
func (m *ClusterMutation) OperationStatus() (r cluster.OperationStatus, exists bool) {
	v := m.operation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationStatus returns the old "operation_status" field's value of the Cluster entity.
// If the Cluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterMutation) OldOperationStatus(ctx context.Context) (v cluster.OperationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationStatus: %w", err)
	}
	return oldValue.OperationStatus, nil
}

// ResetOperationStatus resets all changes to the "operation_status" field.
func (m *ClusterMutation) ResetOperationStatus() {
	m.operation_status = nil
}

// SetCurrentJobID sets the "current_job_id" field.
func (m *ClusterMutation) SetCurrentJobID(i int) {
	m.current_job_id = &i
	m.addcurrent_job_id = nil
}

// CurrentJobID returns the value of the "current_job_id" field in the mutation.
func (m *ClusterMutation) CurrentJobID() (r int, exists bool) {
	v := m.current_job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentJobID returns the old "current_job_id" field's value of the Cluster entity.
// If the Cluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterMutation) OldCurrentJobID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentJobID: %w", err)
	}
	return oldValue.CurrentJobID, nil
}

// AddCurrentJobID adds i to the "current_job_id" field.
func (m *ClusterMutation) AddCurrentJobID(i int) {
	if m.addcurrent_job_id != nil {
		*m.addcurrent_job_id += i
	} else {
		m.addcurrent_job_id = &i
	}
}

// AddedCurrentJobID returns the value that was added to the "current_job_id" field in this mutation.
func (m *ClusterMutation) AddedCurrentJobID() (r int, exists bool) {
	v := m.addcurrent_job_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurrentJobID clears the value of the "current_job_id" field.
func (m *ClusterMutation) ClearCurrentJobID() {
	m.current_job_id = nil
	m.addcurrent_job_id = nil
	m.clearedFields[cluster.FieldCurrentJobID] = struct{}{}
}

// CurrentJobIDCleared returns if the "current_job_id" field was cleared in this mutation.
func (m *ClusterMutation) CurrentJobIDCleared() bool {
	_, ok := m.clearedFields[cluster.FieldCurrentJobID]
	return ok
}

// ResetCurrentJobID resets all changes to the "current_job_id" field.
func (m *ClusterMutation) ResetCurrentJobID() {
	m.current_job_id = nil
	m.addcurrent_job_id = nil
	delete(m.clearedFields, cluster.FieldCurrentJobID)
}

// SetOperationStartedAt sets the "operation_started_at" field.
func (m *ClusterMutation) SetOperationStartedAt(t time.Time) {
	m.operation_started_at = &t
}

// OperationStartedAt returns the value of the "operation_started_at" field in the mutation.
func (m *ClusterMutation) OperationStartedAt() (r time.Time, exists bool) {
	v := m.operation_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationStartedAt returns the old "operation_started_at" field's value of the Cluster entity.
// If the Cluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterMutation) OldOperationStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationStartedAt: %w", err)
	}
	return oldValue.OperationStartedAt, nil
}

// ClearOperationStartedAt clears the value of the "operation_started_at" field.
func (m *ClusterMutation) ClearOperationStartedAt() {
	m.operation_started_at = nil
	m.clearedFields[cluster.FieldOperationStartedAt] = struct{}{}
}

// OperationStartedAtCleared returns if the "operation_started_at" field was cleared in this mutation.
func (m *ClusterMutation) OperationStartedAtCleared() bool {
	_, ok := m.clearedFields[cluster.FieldOperationStartedAt]
	return ok
}

// ResetOperationStartedAt resets all changes to the "operation_started_at" field.
func (m *ClusterMutation) ResetOperationStartedAt() {
	m.operation_started_at = nil
	delete(m.clearedFields, cluster.FieldOperationStartedAt)
}

// SetOperationLockedBy sets the "operation_locked_by" field.
func (m *ClusterMutation) SetOperationLockedBy(clb cluster.OperationLockedBy) {
	m.operation_locked_by = &clb
}

// OperationLockedBy returns the value of the "operation_locked_by" field in the mutation.
func (m *ClusterMutation) OperationLockedBy() (r cluster.OperationLockedBy, exists bool) {
	v := m.operation_locked_by
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationLockedBy returns the old "operation_locked_by" field's value of the Cluster entity.
// If the Cluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterMutation) OldOperationLockedBy(ctx context.Context) (v *cluster.OperationLockedBy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationLockedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationLockedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationLockedBy: %w", err)
	}
	return oldValue.OperationLockedBy, nil
}

// ClearOperationLockedBy clears the value of the "operation_locked_by" field.
func (m *ClusterMutation) ClearOperationLockedBy() {
	m.operation_locked_by = nil
	m.clearedFields[cluster.FieldOperationLockedBy] = struct{}{}
}

// OperationLockedByCleared returns if the "operation_locked_by" field was cleared in this mutation.
func (m *ClusterMutation) OperationLockedByCleared() bool {
	_, ok := m.clearedFields[cluster.FieldOperationLockedBy]
	return ok
}

// ResetOperationLockedBy resets all changes to the "operation_locked_by" field.
func (m *ClusterMutation) ResetOperationLockedBy() {
	m.operation_locked_by = nil
	delete(m.clearedFields, cluster.FieldOperationLockedBy)
}

// SetInstallationStage sets the "installation_stage" field.
func (m *ClusterMutation) SetInstallationStage(cs cluster.InstallationStage) {
	m.installation_stage = &cs
}

// InstallationStage returns the value of the "installation_stage" field in the mutation.
func (m *ClusterMutation) InstallationStage() (r cluster.InstallationStage, exists bool) {
	v := m.installation_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldInstallationStage returns the old "installation_stage" field's value of the Cluster entity.
// If the Cluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterMutation) OldInstallationStage(ctx context.Context) (v cluster.InstallationStage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstallationStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstallationStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstallationStage: %w", err)
	}
	return oldValue.InstallationStage, nil
}

// ResetInstallationStage resets all changes to the "installation_stage" field.
func (m *ClusterMutation) ResetInstallationStage() {
	m.installation_stage = nil
}

// SetExtraVars sets the "extra_vars" field.
func (m *ClusterMutation) SetExtraVars(value map[string]interface{}) {
	m.extra_vars = &value
}

// ExtraVars returns the value of the "extra_vars" field in the mutation.
func (m *ClusterMutation) ExtraVars() (r map[string]interface{}, exists bool) {
	v := m.extra_vars
	if v == nil {
		return
	}
	return *v, true
}

// OldExtraVars returns the old "extra_vars" field's value of the Cluster entity.
// If the Cluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterMutation) OldExtraVars(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtraVars is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtraVars requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtraVars: %w", err)
	}
	return oldValue.ExtraVars, nil
}

// ClearExtraVars clears the value of the "extra_vars" field.
func (m *ClusterMutation) ClearExtraVars() {
	m.extra_vars = nil
	m.clearedFields[cluster.FieldExtraVars] = struct{}{}
}

// ExtraVarsCleared returns if the "extra_vars" field was cleared in this mutation.
func (m *ClusterMutation) ExtraVarsCleared() bool {
	_, ok := m.clearedFields[cluster.FieldExtraVars]
	return ok
}

// ResetExtraVars resets all changes to the "extra_vars" field.
func (m *ClusterMutation) ResetExtraVars() {
	m.extra_vars = nil
	delete(m.clearedFields, cluster.FieldExtraVars)
}

// AddNodeIDs adds the "nodes" edge to the Node entity by ids.
func (m *ClusterMutation) AddNodeIDs(ids ...int) {
	if m.nodes == nil {
		m.nodes = make(map[int]struct{})
	}
	for i := range ids {
		m.nodes[ids[i]] = struct{}{}
	}
}

// ClearNodes clears the "nodes" edge to the Node entity.
func (m *ClusterMutation) ClearNodes() {
	m.clearednodes = true
}

// NodesCleared reports if the "nodes" edge to the Node entity was cleared.
func (m *ClusterMutation) NodesCleared() bool {
	return m.clearednodes
}

// RemoveNodeIDs removes the "nodes" edge to the Node entity by IDs.
func (m *ClusterMutation) RemoveNodeIDs(ids ...int) {
	if m.removednodes == nil {
		m.removednodes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.nodes, ids[i])
		m.removednodes[ids[i]] = struct{}{}
	}
}

// RemovedNodes returns the removed IDs of the "nodes" edge to the Node entity.
func (m *ClusterMutation) RemovedNodesIDs() (ids []int) {
	for id := range m.removednodes {
		ids = append(ids, id)
	}
	return
}

// NodesIDs returns the "nodes" edge IDs in the mutation.
func (m *ClusterMutation) NodesIDs() (ids []int) {
	for id := range m.nodes {
		ids = append(ids, id)
	}
	return
}

// ResetNodes resets all changes to the "nodes" edge.
func (m *ClusterMutation) ResetNodes() {
	m.nodes = nil
	m.clearednodes = false
	m.removednodes = nil
}

// AddJobIDs adds the "jobs" edge to the Job entity by ids.
func (m *ClusterMutation) AddJobIDs(ids ...int) {
	if m.jobs == nil {
		m.jobs = make(map[int]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the Job entity.
func (m *ClusterMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the Job entity was cleared.
func (m *ClusterMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the Job entity by IDs.
func (m *ClusterMutation) RemoveJobIDs(ids ...int) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the Job entity.
func (m *ClusterMutation) RemovedJobsIDs() (ids []int) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ClusterMutation) JobsIDs() (ids []int) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ClusterMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// SetStatusCacheID sets the "status_cache" edge to the ClusterStatusCache entity by id.
func (m *ClusterMutation) SetStatusCacheID(id int) {
	m.status_cache = &id
}

// ClearStatusCache clears the "status_cache" edge to the ClusterStatusCache entity.
func (m *ClusterMutation) ClearStatusCache() {
	m.clearedstatus_cache = true
}

// StatusCacheCleared reports if the "status_cache" edge to the ClusterStatusCache entity was cleared.
func (m *ClusterMutation) StatusCacheCleared() bool {
	return m.clearedstatus_cache
}

// StatusCacheID returns the "status_cache" edge ID in the mutation.
func (m *ClusterMutation) StatusCacheID() (id int, exists bool) {
	if m.status_cache != nil {
		return *m.status_cache, true
	}
	return
}

// StatusCacheIDs returns the "status_cache" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StatusCacheID instead. It exists only for internal usage by the builders.
func (m *ClusterMutation) StatusCacheIDs() (ids []int) {
	if id := m.status_cache; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStatusCache resets all changes to the "status_cache" edge.
func (m *ClusterMutation) ResetStatusCache() {
	m.status_cache = nil
	m.clearedstatus_cache = false
}

// SetCredentialID sets the "credential" edge to the Credential entity by id.
func (m *ClusterMutation) SetCredentialID(id int) {
	m.credential = &id
}

// ClearCredential clears the "credential" edge to the Credential entity.
func (m *ClusterMutation) ClearCredential() {
	m.clearedcredential = true
}

// CredentialCleared reports if the "credential" edge to the Credential entity was cleared.
func (m *ClusterMutation) CredentialCleared() bool {
	return m.clearedcredential
}

// CredentialID returns the "credential" edge ID in the mutation.
func (m *ClusterMutation) CredentialID() (id int, exists bool) {
	if m.credential != nil {
		return *m.credential, true
	}
	return
}

// CredentialIDs returns the "credential" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CredentialID instead. It exists only for internal usage by the builders.
func (m *ClusterMutation) CredentialIDs() (ids []int) {
	if id := m.credential; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCredential resets all changes to the "credential" edge.
func (m *ClusterMutation) ResetCredential() {
	m.credential = nil
	m.clearedcredential = false
}

// Where appends a list predicates to the ClusterMutation builder.
func (m *ClusterMutation) Where(ps ...predicate.Cluster) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClusterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClusterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Cluster, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClusterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClusterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Cluster).
func (m *ClusterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClusterMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.created_at != nil {
		fields = append(fields, cluster.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, cluster.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, cluster.FieldName)
	}
	if m.description != nil {
		fields = append(fields, cluster.FieldDescription)
	}
	if m.kind != nil {
		fields = append(fields, cluster.FieldKind)
	}
	if m.kubernetes_version != nil {
		fields = append(fields, cluster.FieldKubernetesVersion)
	}
	if m.api_endpoint != nil {
		fields = append(fields, cluster.FieldAPIEndpoint)
	}
	if m.encrypted_kubeconfig != nil {
		fields = append(fields, cluster.FieldEncryptedKubeconfig)
	}
	if m.operation_status != nil {
		fields = append(fields, cluster.FieldOperationStatus)
	}
	if m.current_job_id != nil {
		fields = append(fields, cluster.FieldCurrentJobID)
	}
	if m.operation_started_at != nil {
		fields = append(fields, cluster.FieldOperationStartedAt)
	}
	if m.operation_locked_by != nil {
		fields = append(fields, cluster.FieldOperationLockedBy)
	}
	if m.installation_stage != nil {
		fields = append(fields, cluster.FieldInstallationStage)
	}
	if m.extra_vars != nil {
		fields = append(fields, cluster.FieldExtraVars)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClusterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cluster.FieldCreatedAt:
		return m.CreatedAt()
	case cluster.FieldUpdatedAt:
		return m.UpdatedAt()
	case cluster.FieldName:
		return m.Name()
	case cluster.FieldDescription:
		return m.Description()
	case cluster.FieldKind:
		return m.Kind()
	case cluster.FieldKubernetesVersion:
		return m.KubernetesVersion()
	case cluster.FieldAPIEndpoint:
		return m.APIEndpoint()
	case cluster.FieldEncryptedKubeconfig:
		return m.EncryptedKubeconfig()
	case cluster.FieldOperationStatus:
		return m.OperationStatus()
	case cluster.FieldCurrentJobID:
		return m.CurrentJobID()
	case cluster.FieldOperationStartedAt:
		return m.OperationStartedAt()
	case cluster.FieldOperationLockedBy:
		return m.OperationLockedBy()
	case cluster.FieldInstallationStage:
		return m.InstallationStage()
	case cluster.FieldExtraVars:
		return m.ExtraVars()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClusterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cluster.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case cluster.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case cluster.FieldName:
		return m.OldName(ctx)
	case cluster.FieldDescription:
		return m.OldDescription(ctx)
	case cluster.FieldKind:
		return m.OldKind(ctx)
	case cluster.FieldKubernetesVersion:
		return m.OldKubernetesVersion(ctx)
	case cluster.FieldAPIEndpoint:
		return m.OldAPIEndpoint(ctx)
	case cluster.FieldEncryptedKubeconfig:
		return m.OldEncryptedKubeconfig(ctx)
	case cluster.FieldOperationStatus:
		return m.OldOperationStatus(ctx)
	case cluster.FieldCurrentJobID:
		return m.OldCurrentJobID(ctx)
	case cluster.FieldOperationStartedAt:
		return m.OldOperationStartedAt(ctx)
	case cluster.FieldOperationLockedBy:
		return m.OldOperationLockedBy(ctx)
	case cluster.FieldInstallationStage:
		return m.OldInstallationStage(ctx)
	case cluster.FieldExtraVars:
		return m.OldExtraVars(ctx)
	}
	return nil, fmt.Errorf("unknown Cluster field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClusterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cluster.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case cluster.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case cluster.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case cluster.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case cluster.FieldKind:
		v, ok := value.(cluster.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case cluster.FieldKubernetesVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKubernetesVersion(v)
		return nil
	case cluster.FieldAPIEndpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIEndpoint(v)
		return nil
	case cluster.FieldEncryptedKubeconfig:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncryptedKubeconfig(v)
		return nil
	case cluster.FieldOperationStatus:
		v, ok := value.(cluster.OperationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationStatus(v)
		return nil
	case cluster.FieldCurrentJobID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentJobID(v)
		return nil
	case cluster.FieldOperationStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationStartedAt(v)
		return nil
	case cluster.FieldOperationLockedBy:
		v, ok := value.(cluster.OperationLockedBy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationLockedBy(v)
		return nil
	case cluster.FieldInstallationStage:
		v, ok := value.(cluster.InstallationStage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstallationStage(v)
		return nil
	case cluster.FieldExtraVars:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtraVars(v)
		return nil
	}
	return fmt.Errorf("unknown Cluster field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClusterMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_job_id != nil {
		fields = append(fields, cluster.FieldCurrentJobID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClusterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cluster.FieldCurrentJobID:
		return m.AddedCurrentJobID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClusterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cluster.FieldCurrentJobID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentJobID(v)
		return nil
	}
	return fmt.Errorf("unknown Cluster numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClusterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cluster.FieldDescription) {
		fields = append(fields, cluster.FieldDescription)
	}
	if m.FieldCleared(cluster.FieldKubernetesVersion) {
		fields = append(fields, cluster.FieldKubernetesVersion)
	}
	if m.FieldCleared(cluster.FieldAPIEndpoint) {
		fields = append(fields, cluster.FieldAPIEndpoint)
	}
	if m.FieldCleared(cluster.FieldEncryptedKubeconfig) {
		fields = append(fields, cluster.FieldEncryptedKubeconfig)
	}
	if m.FieldCleared(cluster.FieldCurrentJobID) {
		fields = append(fields, cluster.FieldCurrentJobID)
	}
	if m.FieldCleared(cluster.FieldOperationStartedAt) {
		fields = append(fields, cluster.FieldOperationStartedAt)
	}
	if m.FieldCleared(cluster.FieldOperationLockedBy) {
		fields = append(fields, cluster.FieldOperationLockedBy)
	}
	if m.FieldCleared(cluster.FieldExtraVars) {
		fields = append(fields, cluster.FieldExtraVars)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClusterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClusterMutation) ClearField(name string) error {
	switch name {
	case cluster.FieldDescription:
		m.ClearDescription()
		return nil
	case cluster.FieldKubernetesVersion:
		m.ClearKubernetesVersion()
		return nil
	case cluster.FieldAPIEndpoint:
		m.ClearAPIEndpoint()
		return nil
	case cluster.FieldEncryptedKubeconfig:
		m.ClearEncryptedKubeconfig()
		return nil
	case cluster.FieldCurrentJobID:
		m.ClearCurrentJobID()
		return nil
	case cluster.FieldOperationStartedAt:
		m.ClearOperationStartedAt()
		return nil
	case cluster.FieldOperationLockedBy:
		m.ClearOperationLockedBy()
		return nil
	case cluster.FieldExtraVars:
		m.ClearExtraVars()
		return nil
	}
	return fmt.Errorf("unknown Cluster nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClusterMutation) ResetField(name string) error {
	switch name {
	case cluster.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case cluster.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case cluster.FieldName:
		m.ResetName()
		return nil
	case cluster.FieldDescription:
		m.ResetDescription()
		return nil
	case cluster.FieldKind:
		m.ResetKind()
		return nil
	case cluster.FieldKubernetesVersion:
		m.ResetKubernetesVersion()
		return nil
	case cluster.FieldAPIEndpoint:
		m.ResetAPIEndpoint()
		return nil
	case cluster.FieldEncryptedKubeconfig:
		m.ResetEncryptedKubeconfig()
		return nil
	case cluster.FieldOperationStatus:
		m.ResetOperationStatus()
		return nil
	case cluster.FieldCurrentJobID:
		m.ResetCurrentJobID()
		return nil
	case cluster.FieldOperationStartedAt:
		m.ResetOperationStartedAt()
		return nil
	case cluster.FieldOperationLockedBy:
		m.ResetOperationLockedBy()
		return nil
	case cluster.FieldInstallationStage:
		m.ResetInstallationStage()
		return nil
	case cluster.FieldExtraVars:
		m.ResetExtraVars()
		return nil
	}
	return fmt.Errorf("unknown Cluster field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClusterMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.nodes != nil {
		edges = append(edges, cluster.EdgeNodes)
	}
	if m.jobs != nil {
		edges = append(edges, cluster.EdgeJobs)
	}
	if m.status_cache != nil {
		edges = append(edges, cluster.EdgeStatusCache)
	}
	if m.credential != nil {
		edges = append(edges, cluster.EdgeCredential)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClusterMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case cluster.EdgeNodes:
		ids := make([]ent.Value, 0, len(m.nodes))
		for id := range m.nodes {
			ids = append(ids, id)
		}
		return ids
	case cluster.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	case cluster.EdgeStatusCache:
		if id := m.status_cache; id != nil {
			return []ent.Value{*id}
		}
	case cluster.EdgeCredential:
		if id := m.credential; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClusterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removednodes != nil {
		edges = append(edges, cluster.EdgeNodes)
	}
	if m.removedjobs != nil {
		edges = append(edges, cluster.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClusterMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case cluster.EdgeNodes:
		ids := make([]ent.Value, 0, len(m.removednodes))
		for id := range m.removednodes {
			ids = append(ids, id)
		}
		return ids
	case cluster.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClusterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearednodes {
		edges = append(edges, cluster.EdgeNodes)
	}
	if m.clearedjobs {
		edges = append(edges, cluster.EdgeJobs)
	}
	if m.clearedstatus_cache {
		edges = append(edges, cluster.EdgeStatusCache)
	}
	if m.clearedcredential {
		edges = append(edges, cluster.EdgeCredential)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClusterMutation) EdgeCleared(name string) bool {
	switch name {
	case cluster.EdgeNodes:
		return m.clearednodes
	case cluster.EdgeJobs:
		return m.clearedjobs
	case cluster.EdgeStatusCache:
		return m.clearedstatus_cache
	case cluster.EdgeCredential:
		return m.clearedcredential
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClusterMutation) ClearEdge(name string) error {
	switch name {
	case cluster.EdgeStatusCache:
		m.ClearStatusCache()
		return nil
	case cluster.EdgeCredential:
		m.ClearCredential()
		return nil
	}
	return fmt.Errorf("unknown Cluster unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClusterMutation) ResetEdge(name string) error {
	switch name {
	case cluster.EdgeNodes:
		m.ResetNodes()
		return nil
	case cluster.EdgeJobs:
		m.ResetJobs()
		return nil
	case cluster.EdgeStatusCache:
		m.ResetStatusCache()
		return nil
	case cluster.EdgeCredential:
		m.ResetCredential()
		return nil
	}
	return fmt.Errorf("unknown Cluster edge %s", name)
}

// ClusterStatusCacheMutation represents an operation that mutates the ClusterStatusCache nodes in the graph.
type ClusterStatusCacheMutation struct {
	config
	op             Op
	typ            string
	id             *int
	created_at     *time.Time
	updated_at     *time.Time
	payload        *map[string]interface{}
	collected_at   *time.Time
	clearedFields  map[string]struct{}
	cluster        *int
	clearedcluster bool
	done           bool
	oldValue       func(context.Context) (*ClusterStatusCache, error)
	predicates     []predicate.ClusterStatusCache
}

var _ ent.Mutation = (*ClusterStatusCacheMutation)(nil)

// clusterstatuscacheOption allows management of the mutation configuration using functional options.
type clusterstatuscacheOption func(*ClusterStatusCacheMutation)

// newClusterStatusCacheMutation creates new mutation for the ClusterStatusCache entity.
func newClusterStatusCacheMutation(c config, op Op, opts ...clusterstatuscacheOption) *ClusterStatusCacheMutation {
	m := &ClusterStatusCacheMutation{
		config:        c,
		op:            op,
		typ:           TypeClusterStatusCache,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClusterStatusCacheID sets the ID field of the mutation.
func withClusterStatusCacheID(id int) clusterstatuscacheOption {
	return func(m *ClusterStatusCacheMutation) {
		var (
			err   error
			once  sync.Once
			value *ClusterStatusCache
		)
		m.oldValue = func(ctx context.Context) (*ClusterStatusCache, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClusterStatusCache.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClusterStatusCache sets the old ClusterStatusCache of the mutation.
func withClusterStatusCache(node *ClusterStatusCache) clusterstatuscacheOption {
	return func(m *ClusterStatusCacheMutation) {
		m.oldValue = func(context.Context) (*ClusterStatusCache, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClusterStatusCacheMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClusterStatusCacheMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClusterStatusCacheMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClusterStatusCacheMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClusterStatusCache.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ClusterStatusCacheMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClusterStatusCacheMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClusterStatusCache entity.
// If the ClusterStatusCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterStatusCacheMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ClusterStatusCacheMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClusterStatusCacheMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClusterStatusCacheMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ClusterStatusCache entity.
// If the ClusterStatusCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterStatusCacheMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ClusterStatusCacheMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPayload sets the "payload" field.
func (m *ClusterStatusCacheMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ClusterStatusCacheMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ClusterStatusCache entity.
// If the ClusterStatusCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterStatusCacheMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *ClusterStatusCacheMutation) ResetPayload() {
	m.payload = nil
}

// SetCollectedAt sets the "collected_at" field.
func (m *ClusterStatusCacheMutation) SetCollectedAt(t time.Time) {
	m.collected_at = &t
}

// CollectedAt returns the value of the "collected_at" field in the mutation.
func (m *ClusterStatusCacheMutation) CollectedAt() (r time.Time, exists bool) {
	v := m.collected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectedAt returns the old "collected_at" field's value of the ClusterStatusCache entity.
// If the ClusterStatusCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterStatusCacheMutation) OldCollectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectedAt: %w", err)
	}
	return oldValue.CollectedAt, nil
}

// ResetCollectedAt resets all changes to the "collected_at" field.
func (m *ClusterStatusCacheMutation) ResetCollectedAt() {
	m.collected_at = nil
}

// SetClusterID sets the "cluster" edge to the Cluster entity by id.
func (m *ClusterStatusCacheMutation) SetClusterID(id int) {
	m.cluster = &id
}

// ClearCluster clears the "cluster" edge to the Cluster entity.
func (m *ClusterStatusCacheMutation) ClearCluster() {
	m.clearedcluster = true
}

// ClusterCleared reports if the "cluster" edge to the Cluster entity was cleared.
func (m *ClusterStatusCacheMutation) ClusterCleared() bool {
	return m.clearedcluster
}

// ClusterID returns the "cluster" edge ID in the mutation.
func (m *ClusterStatusCacheMutation) ClusterID() (id int, exists bool) {
	if m.cluster != nil {
		return *m.cluster, true
	}
	return
}

// ClusterIDs returns the "cluster" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClusterID instead. It exists only for internal usage by the builders.
func (m *ClusterStatusCacheMutation) ClusterIDs() (ids []int) {
	if id := m.cluster; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCluster resets all changes to the "cluster" edge.
func (m *ClusterStatusCacheMutation) ResetCluster() {
	m.cluster = nil
	m.clearedcluster = false
}

// Where appends a list predicates to the ClusterStatusCacheMutation builder.
func (m *ClusterStatusCacheMutation) Where(ps ...predicate.ClusterStatusCache) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClusterStatusCacheMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClusterStatusCacheMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClusterStatusCache, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClusterStatusCacheMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClusterStatusCacheMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClusterStatusCache).
func (m *ClusterStatusCacheMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClusterStatusCacheMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, clusterstatuscache.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, clusterstatuscache.FieldUpdatedAt)
	}
	if m.payload != nil {
		fields = append(fields, clusterstatuscache.FieldPayload)
	}
	if m.collected_at != nil {
		fields = append(fields, clusterstatuscache.FieldCollectedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClusterStatusCacheMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clusterstatuscache.FieldCreatedAt:
		return m.CreatedAt()
	case clusterstatuscache.FieldUpdatedAt:
		return m.UpdatedAt()
	case clusterstatuscache.FieldPayload:
		return m.Payload()
	case clusterstatuscache.FieldCollectedAt:
		return m.CollectedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClusterStatusCacheMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clusterstatuscache.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clusterstatuscache.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case clusterstatuscache.FieldPayload:
		return m.OldPayload(ctx)
	case clusterstatuscache.FieldCollectedAt:
		return m.OldCollectedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClusterStatusCache field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClusterStatusCacheMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clusterstatuscache.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clusterstatuscache.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case clusterstatuscache.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case clusterstatuscache.FieldCollectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClusterStatusCache field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClusterStatusCacheMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClusterStatusCacheMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClusterStatusCacheMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ClusterStatusCache numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClusterStatusCacheMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClusterStatusCacheMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClusterStatusCacheMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ClusterStatusCache nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClusterStatusCacheMutation) ResetField(name string) error {
	switch name {
	case clusterstatuscache.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clusterstatuscache.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case clusterstatuscache.FieldPayload:
		m.ResetPayload()
		return nil
	case clusterstatuscache.FieldCollectedAt:
		m.ResetCollectedAt()
		return nil
	}
	return fmt.Errorf("unknown ClusterStatusCache field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClusterStatusCacheMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cluster != nil {
		edges = append(edges, clusterstatuscache.EdgeCluster)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClusterStatusCacheMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case clusterstatuscache.EdgeCluster:
		if id := m.cluster; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClusterStatusCacheMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClusterStatusCacheMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClusterStatusCacheMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcluster {
		edges = append(edges, clusterstatuscache.EdgeCluster)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClusterStatusCacheMutation) EdgeCleared(name string) bool {
	switch name {
	case clusterstatuscache.EdgeCluster:
		return m.clearedcluster
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClusterStatusCacheMutation) ClearEdge(name string) error {
	switch name {
	case clusterstatuscache.EdgeCluster:
		m.ClearCluster()
		return nil
	}
	return fmt.Errorf("unknown ClusterStatusCache unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClusterStatusCacheMutation) ResetEdge(name string) error {
	switch name {
	case clusterstatuscache.EdgeCluster:
		m.ResetCluster()
		return nil
	}
	return fmt.Errorf("unknown ClusterStatusCache edge %s", name)
}

// CredentialMutation represents an operation that mutates the Credential nodes in the graph.
type CredentialMutation struct {
	config
	op               Op
	typ              string
	id               *int
	created_at       *time.Time
	updated_at       *time.Time
	name             *string
	kind             *credential.Kind
	username         *string
	encrypted_secret *[]byte
	description      *string
	clearedFields    map[string]struct{}
	clusters         map[int]struct{}
	removedclusters  map[int]struct{}
	clearedclusters  bool
	nodes            map[int]struct{}
	removednodes     map[int]struct{}
	clearednodes     bool
	done             bool
	oldValue         func(context.Context) (*Credential, error)
	predicates       []predicate.Credential
}

var _ ent.Mutation = (*CredentialMutation)(nil)

// credentialOption allows management of the mutation configuration using functional options.
type credentialOption func(*CredentialMutation)

// newCredentialMutation creates new mutation for the Credential entity.
func newCredentialMutation(c config, op Op, opts ...credentialOption) *CredentialMutation {
	m := &CredentialMutation{
		config:        c,
		op:            op,
		typ:           TypeCredential,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCredentialID sets the ID field of the mutation.
func withCredentialID(id int) credentialOption {
	return func(m *CredentialMutation) {
		var (
			err   error
			once  sync.Once
			value *Credential
		)
		m.oldValue = func(ctx context.Context) (*Credential, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Credential.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCredential sets the old Credential of the mutation.
func withCredential(node *Credential) credentialOption {
	return func(m *CredentialMutation) {
		m.oldValue = func(context.Context) (*Credential, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CredentialMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CredentialMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CredentialMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CredentialMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Credential.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CredentialMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CredentialMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CredentialMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CredentialMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CredentialMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CredentialMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *CredentialMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CredentialMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *CredentialMutation) ResetName() {
	m.name = nil
}

// SetKind sets the "kind" field.
func (m *CredentialMutation) SetKind(c credential.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *CredentialMutation) Kind() (r credential.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldKind(ctx context.Context) (v credential.Kind, err error) {
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
func (m *CredentialMutation) ResetKind() {
	m.kind = nil
}

// SetUsername sets the "username" field.
func (m *CredentialMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *CredentialMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *CredentialMutation) ResetUsername() {
	m.username = nil
}

// SetEncryptedSecret sets the "encrypted_secret" field.
func (m *CredentialMutation) SetEncryptedSecret(b []byte) {
	m.encrypted_secret = &b
}

// EncryptedSecret returns the value of the "encrypted_secret" field in the mutation.
func (m *CredentialMutation) EncryptedSecret() (r []byte, exists bool) {
	v := m.encrypted_secret
	if v == nil {
		return
	}
	return *v, true
}

// OldEncryptedSecret returns the old "encrypted_secret" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldEncryptedSecret(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncryptedSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncryptedSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncryptedSecret: %w", err)
	}
	return oldValue.EncryptedSecret, nil
}

// ResetEncryptedSecret resets all changes to the "encrypted_secret" field.
func (m *CredentialMutation) ResetEncryptedSecret() {
	m.encrypted_secret = nil
}

// SetDescription sets the "description" field.
func (m *CredentialMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CredentialMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CredentialMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[credential.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CredentialMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[credential.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CredentialMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, credential.FieldDescription)
}

// AddClusterIDs adds the "clusters" edge to the Cluster entity by ids.
func (m *CredentialMutation) AddClusterIDs(ids ...int) {
	if m.clusters == nil {
		m.clusters = make(map[int]struct{})
	}
	for i := range ids {
		m.clusters[ids[i]] = struct{}{}
	}
}

// ClearClusters clears the "clusters" edge to the Cluster entity.
func (m *CredentialMutation) ClearClusters() {
	m.clearedclusters = true
}

// ClustersCleared reports if the "clusters" edge to the Cluster entity was cleared.
func (m *CredentialMutation) ClustersCleared() bool {
	return m.clearedclusters
}

// RemoveClusterIDs removes the "clusters" edge to the Cluster entity by IDs.
func (m *CredentialMutation) RemoveClusterIDs(ids ...int) {
	if m.removedclusters == nil {
		m.removedclusters = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.clusters, ids[i])
		m.removedclusters[ids[i]] = struct{}{}
	}
}

// RemovedClusters returns the removed IDs of the "clusters" edge to the Cluster entity.
func (m *CredentialMutation) RemovedClustersIDs() (ids []int) {
	for id := range m.removedclusters {
		ids = append(ids, id)
	}
	return
}

// ClustersIDs returns the "clusters" edge IDs in the mutation.
func (m *CredentialMutation) ClustersIDs() (ids []int) {
	for id := range m.clusters {
		ids = append(ids, id)
	}
	return
}

// ResetClusters resets all changes to the "clusters" edge.
func (m *CredentialMutation) ResetClusters() {
	m.clusters = nil
	m.clearedclusters = false
	m.removedclusters = nil
}

// AddNodeIDs adds the "nodes" edge to the Node entity by ids.
func (m *CredentialMutation) AddNodeIDs(ids ...int) {
	if m.nodes == nil {
		m.nodes = make(map[int]struct{})
	}
	for i := range ids {
		m.nodes[ids[i]] = struct{}{}
	}
}

// ClearNodes clears the "nodes" edge to the Node entity.
func (m *CredentialMutation) ClearNodes() {
	m.clearednodes = true
}

// NodesCleared reports if the "nodes" edge to the Node entity was cleared.
func (m *CredentialMutation) NodesCleared() bool {
	return m.clearednodes
}

// RemoveNodeIDs removes the "nodes" edge to the Node entity by IDs.
func (m *CredentialMutation) RemoveNodeIDs(ids ...int) {
	if m.removednodes == nil {
		m.removednodes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.nodes, ids[i])
		m.removednodes[ids[i]] = struct{}{}
	}
}

// RemovedNodes returns the removed IDs of the "nodes" edge to the Node entity.
func (m *CredentialMutation) RemovedNodesIDs() (ids []int) {
	for id := range m.removednodes {
		ids = append(ids, id)
	}
	return
}

// NodesIDs returns the "nodes" edge IDs in the mutation.
func (m *CredentialMutation) NodesIDs() (ids []int) {
	for id := range m.nodes {
		ids = append(ids, id)
	}
	return
}

// ResetNodes resets all changes to the "nodes" edge.
func (m *CredentialMutation) ResetNodes() {
	m.nodes = nil
	m.clearednodes = false
	m.removednodes = nil
}

// Where appends a list predicates to the CredentialMutation builder.
func (m *CredentialMutation) Where(ps ...predicate.Credential) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CredentialMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CredentialMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Credential, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CredentialMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CredentialMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Credential).
func (m *CredentialMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CredentialMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, credential.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, credential.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, credential.FieldName)
	}
	if m.kind != nil {
		fields = append(fields, credential.FieldKind)
	}
	if m.username != nil {
		fields = append(fields, credential.FieldUsername)
	}
	if m.encrypted_secret != nil {
		fields = append(fields, credential.FieldEncryptedSecret)
	}
	if m.description != nil {
		fields = append(fields, credential.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CredentialMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case credential.FieldCreatedAt:
		return m.CreatedAt()
	case credential.FieldUpdatedAt:
		return m.UpdatedAt()
	case credential.FieldName:
		return m.Name()
	case credential.FieldKind:
		return m.Kind()
	case credential.FieldUsername:
		return m.Username()
	case credential.FieldEncryptedSecret:
		return m.EncryptedSecret()
	case credential.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CredentialMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case credential.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case credential.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case credential.FieldName:
		return m.OldName(ctx)
	case credential.FieldKind:
		return m.OldKind(ctx)
	case credential.FieldUsername:
		return m.OldUsername(ctx)
	case credential.FieldEncryptedSecret:
		return m.OldEncryptedSecret(ctx)
	case credential.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown Credential field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CredentialMutation) SetField(name string, value ent.Value) error {
	switch name {
	case credential.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case credential.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case credential.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case credential.FieldKind:
		v, ok := value.(credential.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case credential.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case credential.FieldEncryptedSecret:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncryptedSecret(v)
		return nil
	case credential.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown Credential field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CredentialMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CredentialMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CredentialMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Credential numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CredentialMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(credential.FieldDescription) {
		fields = append(fields, credential.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CredentialMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CredentialMutation) ClearField(name string) error {
	switch name {
	case credential.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Credential nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CredentialMutation) ResetField(name string) error {
	switch name {
	case credential.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case credential.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case credential.FieldName:
		m.ResetName()
		return nil
	case credential.FieldKind:
		m.ResetKind()
		return nil
	case credential.FieldUsername:
		m.ResetUsername()
		return nil
	case credential.FieldEncryptedSecret:
		m.ResetEncryptedSecret()
		return nil
	case credential.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown Credential field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CredentialMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clusters != nil {
		edges = append(edges, credential.EdgeClusters)
	}
	if m.nodes != nil {
		edges = append(edges, credential.EdgeNodes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CredentialMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case credential.EdgeClusters:
		ids := make([]ent.Value, 0, len(m.clusters))
		for id := range m.clusters {
			ids = append(ids, id)
		}
		return ids
	case credential.EdgeNodes:
		ids := make([]ent.Value, 0, len(m.nodes))
		for id := range m.nodes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CredentialMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedclusters != nil {
		edges = append(edges, credential.EdgeClusters)
	}
	if m.removednodes != nil {
		edges = append(edges, credential.EdgeNodes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CredentialMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case credential.EdgeClusters:
		ids := make([]ent.Value, 0, len(m.removedclusters))
		for id := range m.removedclusters {
			ids = append(ids, id)
		}
		return ids
	case credential.EdgeNodes:
		ids := make([]ent.Value, 0, len(m.removednodes))
		for id := range m.removednodes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CredentialMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedclusters {
		edges = append(edges, credential.EdgeClusters)
	}
	if m.clearednodes {
		edges = append(edges, credential.EdgeNodes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CredentialMutation) EdgeCleared(name string) bool {
	switch name {
	case credential.EdgeClusters:
		return m.clearedclusters
	case credential.EdgeNodes:
		return m.clearednodes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CredentialMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Credential unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CredentialMutation) ResetEdge(name string) error {
	switch name {
	case credential.EdgeClusters:
		m.ResetClusters()
		return nil
	case credential.EdgeNodes:
		m.ResetNodes()
		return nil
	}
	return fmt.Errorf("unknown Credential edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	created_at              *time.Time
	updated_at              *time.Time
	kind                    *job.Kind
	status                  *job.Status
	node_ids                *[]int
	appendnode_ids          []int
	followup_node_ids       *[]int
	appendfollowup_node_ids []int
	sequence_stage          *int
	addsequence_stage       *int
	parent_job_id           *int
	addparent_job_id        *int
	output                  *string
	error                   *string
	readiness_report        *map[string]interface{}
	started_at              *time.Time
	completed_at            *time.Time
	clearedFields           map[string]struct{}
	cluster                 *int
	clearedcluster          bool
	done                    bool
	oldValue                func(context.Context) (*Job, error)
	predicates              []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id int) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetKind sets the "kind" field.
func (m *JobMutation) SetKind(j job.Kind) {
	m.kind = &j
}

// Kind returns the value of the "kind" field in the mutation.
func (m *JobMutation) Kind() (r job.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldKind(ctx context.Context) (v job.Kind, err error) {
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
func (m *JobMutation) ResetKind() {
	m.kind = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
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
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetNodeIds sets the "node_ids" field.
func (m *JobMutation) SetNodeIds(i []int) {
	m.node_ids = &i
	m.appendnode_ids = nil
}

// NodeIds returns the value of the "node_ids" field in the mutation.
func (m *JobMutation) NodeIds() (r []int, exists bool) {
	v := m.node_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeIds returns the old "node_ids" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldNodeIds(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeIds: %w", err)
	}
	return oldValue.NodeIds, nil
}

// AppendNodeIds adds i to the "node_ids" field.
func (m *JobMutation) AppendNodeIds(i []int) {
	m.appendnode_ids = append(m.appendnode_ids, i...)
}

// AppendedNodeIds returns the list of values that were appended to the "node_ids" field in this mutation.
func (m *JobMutation) AppendedNodeIds() ([]int, bool) {
	if len(m.appendnode_ids) == 0 {
		return nil, false
	}
	return m.appendnode_ids, true
}

// ClearNodeIds clears the value of the "node_ids" field.
func (m *JobMutation) ClearNodeIds() {
	m.node_ids = nil
	m.appendnode_ids = nil
	m.clearedFields[job.FieldNodeIds] = struct{}{}
}

// NodeIdsCleared returns if the "node_ids" field was cleared in this mutation.
func (m *JobMutation) NodeIdsCleared() bool {
	_, ok := m.clearedFields[job.FieldNodeIds]
	return ok
}

// ResetNodeIds resets all changes to the "node_ids" field.
func (m *JobMutation) ResetNodeIds() {
	m.node_ids = nil
	m.appendnode_ids = nil
	delete(m.clearedFields, job.FieldNodeIds)
}

// SetFollowupNodeIds sets the "followup_node_ids" field.
func (m *JobMutation) SetFollowupNodeIds(i []int) {
	m.followup_node_ids = &i
	m.appendfollowup_node_ids = nil
}

// FollowupNodeIds returns the value of the "followup_node_ids" field in the mutation.
func (m *JobMutation) FollowupNodeIds() (r []int, exists bool) {
	v := m.followup_node_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowupNodeIds returns the old "followup_node_ids" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFollowupNodeIds(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowupNodeIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowupNodeIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowupNodeIds: %w", err)
	}
	return oldValue.FollowupNodeIds, nil
}

// AppendFollowupNodeIds adds i to the "followup_node_ids" field.
func (m *JobMutation) AppendFollowupNodeIds(i []int) {
	m.appendfollowup_node_ids = append(m.appendfollowup_node_ids, i...)
}

// AppendedFollowupNodeIds returns the list of values that were appended to the "followup_node_ids" field in this mutation.
func (m *JobMutation) AppendedFollowupNodeIds() ([]int, bool) {
	if len(m.appendfollowup_node_ids) == 0 {
		return nil, false
	}
	return m.appendfollowup_node_ids, true
}

// ClearFollowupNodeIds clears the value of the "followup_node_ids" field.
func (m *JobMutation) ClearFollowupNodeIds() {
	m.followup_node_ids = nil
	m.appendfollowup_node_ids = nil
	m.clearedFields[job.FieldFollowupNodeIds] = struct{}{}
}

// FollowupNodeIdsCleared returns if the "followup_node_ids" field was cleared in this mutation.
func (m *JobMutation) FollowupNodeIdsCleared() bool {
	_, ok := m.clearedFields[job.FieldFollowupNodeIds]
	return ok
}

// ResetFollowupNodeIds resets all changes to the "followup_node_ids" field.
func (m *JobMutation) ResetFollowupNodeIds() {
	m.followup_node_ids = nil
	m.appendfollowup_node_ids = nil
	delete(m.clearedFields, job.FieldFollowupNodeIds)
}

// SetSequenceStage sets the "sequence_stage" field.
func (m *JobMutation) SetSequenceStage(i int) {
	m.sequence_stage = &i
	m.addsequence_stage = nil
}

// SequenceStage returns the value of the "sequence_stage" field in the mutation.
func (m *JobMutation) SequenceStage() (r int, exists bool) {
	v := m.sequence_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceStage returns the old "sequence_stage" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSequenceStage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceStage: %w", err)
	}
	return oldValue.SequenceStage, nil
}

// AddSequenceStage adds i to the "sequence_stage" field.
func (m *JobMutation) AddSequenceStage(i int) {
	if m.addsequence_stage != nil {
		*m.addsequence_stage += i
	} else {
		m.addsequence_stage = &i
	}
}

// AddedSequenceStage returns the value that was added to the "sequence_stage" field in this mutation.
func (m *JobMutation) AddedSequenceStage() (r int, exists bool) {
	v := m.addsequence_stage
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceStage resets all changes to the "sequence_stage" field.
func (m *JobMutation) ResetSequenceStage() {
	m.sequence_stage = nil
	m.addsequence_stage = nil
}

// SetParentJobID sets the "parent_job_id" field.
func (m *JobMutation) SetParentJobID(i int) {
	m.parent_job_id = &i
	m.addparent_job_id = nil
}

// ParentJobID returns the value of the "parent_job_id" field in the mutation.
func (m *JobMutation) ParentJobID() (r int, exists bool) {
	v := m.parent_job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentJobID returns the old "parent_job_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldParentJobID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentJobID: %w", err)
	}
	return oldValue.ParentJobID, nil
}

// AddParentJobID adds i to the "parent_job_id" field.
func (m *JobMutation) AddParentJobID(i int) {
	if m.addparent_job_id != nil {
		*m.addparent_job_id += i
	} else {
		m.addparent_job_id = &i
	}
}

// AddedParentJobID returns the value that was added to the "parent_job_id" field in this mutation.
func (m *JobMutation) AddedParentJobID() (r int, exists bool) {
	v := m.addparent_job_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearParentJobID clears the value of the "parent_job_id" field.
func (m *JobMutation) ClearParentJobID() {
	m.parent_job_id = nil
	m.addparent_job_id = nil
	m.clearedFields[job.FieldParentJobID] = struct{}{}
}

// ParentJobIDCleared returns if the "parent_job_id" field was cleared in this mutation.
func (m *JobMutation) ParentJobIDCleared() bool {
	_, ok := m.clearedFields[job.FieldParentJobID]
	return ok
}

// ResetParentJobID resets all changes to the "parent_job_id" field.
func (m *JobMutation) ResetParentJobID() {
	m.parent_job_id = nil
	m.addparent_job_id = nil
	delete(m.clearedFields, job.FieldParentJobID)
}

// SetOutput sets the "output" field.
func (m *JobMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *JobMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *JobMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[job.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *JobMutation) OutputCleared() bool {
	_, ok := m.clearedFields[job.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *JobMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, job.FieldOutput)
}

// SetError sets the "error" field.
func (m *JobMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *JobMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *JobMutation) ClearError() {
	m.error = nil
	m.clearedFields[job.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *JobMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[job.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *JobMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, job.FieldError)
}

// SetReadinessReport sets the "readiness_report" field.
func (m *JobMutation) SetReadinessReport(value map[string]interface{}) {
	m.readiness_report = &value
}

// ReadinessReport returns the value of the "readiness_report" field in the mutation.
func (m *JobMutation) ReadinessReport() (r map[string]interface{}, exists bool) {
	v := m.readiness_report
	if v == nil {
		return
	}
	return *v, true
}

// OldReadinessReport returns the old "readiness_report" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldReadinessReport(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadinessReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadinessReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadinessReport: %w", err)
	}
	return oldValue.ReadinessReport, nil
}

// ClearReadinessReport clears the value of the "readiness_report" field.
func (m *JobMutation) ClearReadinessReport() {
	m.readiness_report = nil
	m.clearedFields[job.FieldReadinessReport] = struct{}{}
}

// ReadinessReportCleared returns if the "readiness_report" field was cleared in this mutation.
func (m *JobMutation) ReadinessReportCleared() bool {
	_, ok := m.clearedFields[job.FieldReadinessReport]
	return ok
}

// ResetReadinessReport resets all changes to the "readiness_report" field.
func (m *JobMutation) ResetReadinessReport() {
	m.readiness_report = nil
	delete(m.clearedFields, job.FieldReadinessReport)
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// SetClusterID sets the "cluster" edge to the Cluster entity by id.
func (m *JobMutation) SetClusterID(id int) {
	m.cluster = &id
}

// ClearCluster clears the "cluster" edge to the Cluster entity.
func (m *JobMutation) ClearCluster() {
	m.clearedcluster = true
}

// ClusterCleared reports if the "cluster" edge to the Cluster entity was cleared.
func (m *JobMutation) ClusterCleared() bool {
	return m.clearedcluster
}

// ClusterID returns the "cluster" edge ID in the mutation.
func (m *JobMutation) ClusterID() (id int, exists bool) {
	if m.cluster != nil {
		return *m.cluster, true
	}
	return
}

// ClusterIDs returns the "cluster" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClusterID instead. It exists only for internal usage by the builders.
func (m *JobMutation) ClusterIDs() (ids []int) {
	if id := m.cluster; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCluster resets all changes to the "cluster" edge.
func (m *JobMutation) ResetCluster() {
	m.cluster = nil
	m.clearedcluster = false
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	if m.kind != nil {
		fields = append(fields, job.FieldKind)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.node_ids != nil {
		fields = append(fields, job.FieldNodeIds)
	}
	if m.followup_node_ids != nil {
		fields = append(fields, job.FieldFollowupNodeIds)
	}
	if m.sequence_stage != nil {
		fields = append(fields, job.FieldSequenceStage)
	}
	if m.parent_job_id != nil {
		fields = append(fields, job.FieldParentJobID)
	}
	if m.output != nil {
		fields = append(fields, job.FieldOutput)
	}
	if m.error != nil {
		fields = append(fields, job.FieldError)
	}
	if m.readiness_report != nil {
		fields = append(fields, job.FieldReadinessReport)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	case job.FieldKind:
		return m.Kind()
	case job.FieldStatus:
		return m.Status()
	case job.FieldNodeIds:
		return m.NodeIds()
	case job.FieldFollowupNodeIds:
		return m.FollowupNodeIds()
	case job.FieldSequenceStage:
		return m.SequenceStage()
	case job.FieldParentJobID:
		return m.ParentJobID()
	case job.FieldOutput:
		return m.Output()
	case job.FieldError:
		return m.Error()
	case job.FieldReadinessReport:
		return m.ReadinessReport()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case job.FieldKind:
		return m.OldKind(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldNodeIds:
		return m.OldNodeIds(ctx)
	case job.FieldFollowupNodeIds:
		return m.OldFollowupNodeIds(ctx)
	case job.FieldSequenceStage:
		return m.OldSequenceStage(ctx)
	case job.FieldParentJobID:
		return m.OldParentJobID(ctx)
	case job.FieldOutput:
		return m.OldOutput(ctx)
	case job.FieldError:
		return m.OldError(ctx)
	case job.FieldReadinessReport:
		return m.OldReadinessReport(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case job.FieldKind:
		v, ok := value.(job.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldNodeIds:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeIds(v)
		return nil
	case job.FieldFollowupNodeIds:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowupNodeIds(v)
		return nil
	case job.FieldSequenceStage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceStage(v)
		return nil
	case job.FieldParentJobID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentJobID(v)
		return nil
	case job.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case job.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case job.FieldReadinessReport:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadinessReport(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_stage != nil {
		fields = append(fields, job.FieldSequenceStage)
	}
	if m.addparent_job_id != nil {
		fields = append(fields, job.FieldParentJobID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldSequenceStage:
		return m.AddedSequenceStage()
	case job.FieldParentJobID:
		return m.AddedParentJobID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldSequenceStage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceStage(v)
		return nil
	case job.FieldParentJobID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParentJobID(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldNodeIds) {
		fields = append(fields, job.FieldNodeIds)
	}
	if m.FieldCleared(job.FieldFollowupNodeIds) {
		fields = append(fields, job.FieldFollowupNodeIds)
	}
	if m.FieldCleared(job.FieldParentJobID) {
		fields = append(fields, job.FieldParentJobID)
	}
	if m.FieldCleared(job.FieldOutput) {
		fields = append(fields, job.FieldOutput)
	}
	if m.FieldCleared(job.FieldError) {
		fields = append(fields, job.FieldError)
	}
	if m.FieldCleared(job.FieldReadinessReport) {
		fields = append(fields, job.FieldReadinessReport)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldNodeIds:
		m.ClearNodeIds()
		return nil
	case job.FieldFollowupNodeIds:
		m.ClearFollowupNodeIds()
		return nil
	case job.FieldParentJobID:
		m.ClearParentJobID()
		return nil
	case job.FieldOutput:
		m.ClearOutput()
		return nil
	case job.FieldError:
		m.ClearError()
		return nil
	case job.FieldReadinessReport:
		m.ClearReadinessReport()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case job.FieldKind:
		m.ResetKind()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldNodeIds:
		m.ResetNodeIds()
		return nil
	case job.FieldFollowupNodeIds:
		m.ResetFollowupNodeIds()
		return nil
	case job.FieldSequenceStage:
		m.ResetSequenceStage()
		return nil
	case job.FieldParentJobID:
		m.ResetParentJobID()
		return nil
	case job.FieldOutput:
		m.ResetOutput()
		return nil
	case job.FieldError:
		m.ResetError()
		return nil
	case job.FieldReadinessReport:
		m.ResetReadinessReport()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cluster != nil {
		edges = append(edges, job.EdgeCluster)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeCluster:
		if id := m.cluster; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcluster {
		edges = append(edges, job.EdgeCluster)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeCluster:
		return m.clearedcluster
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeCluster:
		m.ClearCluster()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeCluster:
		m.ResetCluster()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// NodeMutation represents an operation that mutates the Node nodes in the graph.
type NodeMutation struct {
	config
	op                Op
	typ               string
	id                *int
	created_at        *time.Time
	updated_at        *time.Time
	hostname          *string
	internal_ip       *string
	external_ip       *string
	use_external_ip   *bool
	role              *node.Role
	status            *node.Status
	ssh_user          *string
	ssh_port          *int
	addssh_port       *int
	extra_vars        *map[string]interface{}
	clearedFields     map[string]struct{}
	cluster           *int
	clearedcluster    bool
	credential        *int
	clearedcredential bool
	done              bool
	oldValue          func(context.Context) (*Node, error)
	predicates        []predicate.Node
}

var _ ent.Mutation = (*NodeMutation)(nil)

// nodeOption allows management of the mutation configuration using functional options.
type nodeOption func(*NodeMutation)

// newNodeMutation creates new mutation for the Node entity.
func newNodeMutation(c config, op Op, opts ...nodeOption) *NodeMutation {
	m := &NodeMutation{
		config:        c,
		op:            op,
		typ:           TypeNode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNodeID sets the ID field of the mutation.
func withNodeID(id int) nodeOption {
	return func(m *NodeMutation) {
		var (
			err   error
			once  sync.Once
			value *Node
		)
		m.oldValue = func(ctx context.Context) (*Node, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Node.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNode sets the old Node of the mutation.
func withNode(node *Node) nodeOption {
	return func(m *NodeMutation) {
		m.oldValue = func(context.Context) (*Node, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NodeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NodeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Node.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NodeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NodeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *NodeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NodeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NodeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *NodeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetHostname sets the "hostname" field.
func (m *NodeMutation) SetHostname(s string) {
	m.hostname = &s
}

// Hostname returns the value of the "hostname" field in the mutation.
func (m *NodeMutation) Hostname() (r string, exists bool) {
	v := m.hostname
	if v == nil {
		return
	}
	return *v, true
}

// OldHostname returns the old "hostname" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldHostname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHostname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHostname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHostname: %w", err)
	}
	return oldValue.Hostname, nil
}

// ResetHostname resets all changes to the "hostname" field.
func (m *NodeMutation) ResetHostname() {
	m.hostname = nil
}

// SetInternalIP sets the "internal_ip" field.
func (m *NodeMutation) SetInternalIP(s string) {
	m.internal_ip = &s
}

// InternalIP returns the value of the "internal_ip" field in the mutation.
func (m *NodeMutation) InternalIP() (r string, exists bool) {
	v := m.internal_ip
	if v == nil {
		return
	}
	return *v, true
}

// OldInternalIP returns the old "internal_ip" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldInternalIP(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInternalIP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInternalIP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInternalIP: %w", err)
	}
	return oldValue.InternalIP, nil
}

// ResetInternalIP resets all changes to the "internal_ip" field.
func (m *NodeMutation) ResetInternalIP() {
	m.internal_ip = nil
}

// SetExternalIP sets the "external_ip" field.
func (m *NodeMutation) SetExternalIP(s string) {
	m.external_ip = &s
}

// ExternalIP returns the value of the "external_ip" field in the mutation.
func (m *NodeMutation) ExternalIP() (r string, exists bool) {
	v := m.external_ip
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalIP returns the old "external_ip" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldExternalIP(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalIP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalIP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalIP: %w", err)
	}
	return oldValue.ExternalIP, nil
}

// ClearExternalIP clears the value of the "external_ip" field.
func (m *NodeMutation) ClearExternalIP() {
	m.external_ip = nil
	m.clearedFields[node.FieldExternalIP] = struct{}{}
}

// ExternalIPCleared returns if the "external_ip" field was cleared in this mutation.
func (m *NodeMutation) ExternalIPCleared() bool {
	_, ok := m.clearedFields[node.FieldExternalIP]
	return ok
}

// ResetExternalIP resets all changes to the "external_ip" field.
func (m *NodeMutation) ResetExternalIP() {
	m.external_ip = nil
	delete(m.clearedFields, node.FieldExternalIP)
}

// SetUseExternalIP sets the "use_external_ip" field.
func (m *NodeMutation) SetUseExternalIP(b bool) {
	m.use_external_ip = &b
}

// UseExternalIP returns the value of the "use_external_ip" field in the mutation.
func (m *NodeMutation) UseExternalIP() (r bool, exists bool) {
	v := m.use_external_ip
	if v == nil {
		return
	}
	return *v, true
}

// OldUseExternalIP returns the old "use_external_ip" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldUseExternalIP(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUseExternalIP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUseExternalIP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUseExternalIP: %w", err)
	}
	return oldValue.UseExternalIP, nil
}

// ResetUseExternalIP resets all changes to the "use_external_ip" field.
func (m *NodeMutation) ResetUseExternalIP() {
	m.use_external_ip = nil
}

// SetRole sets the "role" field.
func (m *NodeMutation) SetRole(n node.Role) {
	m.role = &n
}

// Role returns the value of the "role" field in the mutation.
func (m *NodeMutation) Role() (r node.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldRole(ctx context.Context) (v node.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *NodeMutation) ResetRole() {
	m.role = nil
}

// SetStatus sets the "status" field.
func (m *NodeMutation) SetStatus(n node.Status) {
	m.status = &n
}

// Status returns the value of the "status" field in the mutation.
func (m *NodeMutation) Status() (r node.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldStatus(ctx context.Context) (v node.Status, err error) {
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
func (m *NodeMutation) ResetStatus() {
	m.status = nil
}

// SetSSHUser sets the "ssh_user" field.
func (m *NodeMutation) SetSSHUser(s string) {
	m.ssh_user = &s
}

// SSHUser returns the value of the "ssh_user" field in the mutation.
func (m *NodeMutation) SSHUser() (r string, exists bool) {
	v := m.ssh_user
	if v == nil {
		return
	}
	return *v, true
}

// OldSSHUser returns the old "ssh_user" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldSSHUser(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSSHUser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSSHUser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSSHUser: %w", err)
	}
	return oldValue.SSHUser, nil
}

// ClearSSHUser clears the value of the "ssh_user" field.
func (m *NodeMutation) ClearSSHUser() {
	m.ssh_user = nil
	m.clearedFields[node.FieldSSHUser] = struct{}{}
}

// SSHUserCleared returns if the "ssh_user" field was cleared in this mutation.
func (m *NodeMutation) SSHUserCleared() bool {
	_, ok := m.clearedFields[node.FieldSSHUser]
	return ok
}

// ResetSSHUser resets all changes to the "ssh_user" field.
func (m *NodeMutation) ResetSSHUser() {
	m.ssh_user = nil
	delete(m.clearedFields, node.FieldSSHUser)
}

// SetSSHPort sets the "ssh_port" field.
func (m *NodeMutation) SetSSHPort(i int) {
	m.ssh_port = &i
	m.addssh_port = nil
}

// SSHPort returns the value of the "ssh_port" field in the mutation.
func (m *NodeMutation) SSHPort() (r int, exists bool) {
	v := m.ssh_port
	if v == nil {
		return
	}
	return *v, true
}

// OldSSHPort returns the old "ssh_port" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldSSHPort(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSSHPort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSSHPort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSSHPort: %w", err)
	}
	return oldValue.SSHPort, nil
}

// AddSSHPort adds i to the "ssh_port" field.
func (m *NodeMutation) AddSSHPort(i int) {
	if m.addssh_port != nil {
		*m.addssh_port += i
	} else {
		m.addssh_port = &i
	}
}

// AddedSSHPort returns the value that was added to the "ssh_port" field in this mutation.
func (m *NodeMutation) AddedSSHPort() (r int, exists bool) {
	v := m.addssh_port
	if v == nil {
		return
	}
	return *v, true
}

// ResetSSHPort resets all changes to the "ssh_port" field.
func (m *NodeMutation) ResetSSHPort() {
	m.ssh_port = nil
	m.addssh_port = nil
}

// SetExtraVars sets the "extra_vars" field.
func (m *NodeMutation) SetExtraVars(value map[string]interface{}) {
	m.extra_vars = &value
}

// ExtraVars returns the value of the "extra_vars" field in the mutation.
func (m *NodeMutation) ExtraVars() (r map[string]interface{}, exists bool) {
	v := m.extra_vars
	if v == nil {
		return
	}
	return *v, true
}

// OldExtraVars returns the old "extra_vars" field's value of the Node entity.
// If the Node object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeMutation) OldExtraVars(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtraVars is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtraVars requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtraVars: %w", err)
	}
	return oldValue.ExtraVars, nil
}

// ClearExtraVars clears the value of the "extra_vars" field.
func (m *NodeMutation) ClearExtraVars() {
	m.extra_vars = nil
	m.clearedFields[node.FieldExtraVars] = struct{}{}
}

// ExtraVarsCleared returns if the "extra_vars" field was cleared in this mutation.
func (m *NodeMutation) ExtraVarsCleared() bool {
	_, ok := m.clearedFields[node.FieldExtraVars]
	return ok
}

// ResetExtraVars resets all changes to the "extra_vars" field.
func (m *NodeMutation) ResetExtraVars() {
	m.extra_vars = nil
	delete(m.clearedFields, node.FieldExtraVars)
}

// SetClusterID sets the "cluster" edge to the Cluster entity by id.
func (m *NodeMutation) SetClusterID(id int) {
	m.cluster = &id
}

// ClearCluster clears the "cluster" edge to the Cluster entity.
func (m *NodeMutation) ClearCluster() {
	m.clearedcluster = true
}

// ClusterCleared reports if the "cluster" edge to the Cluster entity was cleared.
func (m *NodeMutation) ClusterCleared() bool {
	return m.clearedcluster
}

// ClusterID returns the "cluster" edge ID in the mutation.
func (m *NodeMutation) ClusterID() (id int, exists bool) {
	if m.cluster != nil {
		return *m.cluster, true
	}
	return
}

// ClusterIDs returns the "cluster" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClusterID instead. It exists only for internal usage by the builders.
func (m *NodeMutation) ClusterIDs() (ids []int) {
	if id := m.cluster; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCluster resets all changes to the "cluster" edge.
func (m *NodeMutation) ResetCluster() {
	m.cluster = nil
	m.clearedcluster = false
}

// SetCredentialID sets the "credential" edge to the Credential entity by id.
func (m *NodeMutation) SetCredentialID(id int) {
	m.credential = &id
}

// ClearCredential clears the "credential" edge to the Credential entity.
func (m *NodeMutation) ClearCredential() {
	m.clearedcredential = true
}

// CredentialCleared reports if the "credential" edge to the Credential entity was cleared.
func (m *NodeMutation) CredentialCleared() bool {
	return m.clearedcredential
}

// CredentialID returns the "credential" edge ID in the mutation.
func (m *NodeMutation) CredentialID() (id int, exists bool) {
	if m.credential != nil {
		return *m.credential, true
	}
	return
}

// CredentialIDs returns the "credential" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CredentialID instead. It exists only for internal usage by the builders.
func (m *NodeMutation) CredentialIDs() (ids []int) {
	if id := m.credential; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCredential resets all changes to the "credential" edge.
func (m *NodeMutation) ResetCredential() {
	m.credential = nil
	m.clearedcredential = false
}

// Where appends a list predicates to the NodeMutation builder.
func (m *NodeMutation) Where(ps ...predicate.Node) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Node, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Node).
func (m *NodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NodeMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, node.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, node.FieldUpdatedAt)
	}
	if m.hostname != nil {
		fields = append(fields, node.FieldHostname)
	}
	if m.internal_ip != nil {
		fields = append(fields, node.FieldInternalIP)
	}
	if m.external_ip != nil {
		fields = append(fields, node.FieldExternalIP)
	}
	if m.use_external_ip != nil {
		fields = append(fields, node.FieldUseExternalIP)
	}
	if m.role != nil {
		fields = append(fields, node.FieldRole)
	}
	if m.status != nil {
		fields = append(fields, node.FieldStatus)
	}
	if m.ssh_user != nil {
		fields = append(fields, node.FieldSSHUser)
	}
	if m.ssh_port != nil {
		fields = append(fields, node.FieldSSHPort)
	}
	if m.extra_vars != nil {
		fields = append(fields, node.FieldExtraVars)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case node.FieldCreatedAt:
		return m.CreatedAt()
	case node.FieldUpdatedAt:
		return m.UpdatedAt()
	case node.FieldHostname:
		return m.Hostname()
	case node.FieldInternalIP:
		return m.InternalIP()
	case node.FieldExternalIP:
		return m.ExternalIP()
	case node.FieldUseExternalIP:
		return m.UseExternalIP()
	case node.FieldRole:
		return m.Role()
	case node.FieldStatus:
		return m.Status()
	case node.FieldSSHUser:
		return m.SSHUser()
	case node.FieldSSHPort:
		return m.SSHPort()
	case node.FieldExtraVars:
		return m.ExtraVars()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case node.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case node.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case node.FieldHostname:
		return m.OldHostname(ctx)
	case node.FieldInternalIP:
		return m.OldInternalIP(ctx)
	case node.FieldExternalIP:
		return m.OldExternalIP(ctx)
	case node.FieldUseExternalIP:
		return m.OldUseExternalIP(ctx)
	case node.FieldRole:
		return m.OldRole(ctx)
	case node.FieldStatus:
		return m.OldStatus(ctx)
	case node.FieldSSHUser:
		return m.OldSSHUser(ctx)
	case node.FieldSSHPort:
		return m.OldSSHPort(ctx)
	case node.FieldExtraVars:
		return m.OldExtraVars(ctx)
	}
	return nil, fmt.Errorf("unknown Node field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case node.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case node.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case node.FieldHostname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHostname(v)
		return nil
	case node.FieldInternalIP:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInternalIP(v)
		return nil
	case node.FieldExternalIP:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalIP(v)
		return nil
	case node.FieldUseExternalIP:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUseExternalIP(v)
		return nil
	case node.FieldRole:
		v, ok := value.(node.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case node.FieldStatus:
		v, ok := value.(node.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case node.FieldSSHUser:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSSHUser(v)
		return nil
	case node.FieldSSHPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSSHPort(v)
		return nil
	case node.FieldExtraVars:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtraVars(v)
		return nil
	}
	return fmt.Errorf("unknown Node field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NodeMutation) AddedFields() []string {
	var fields []string
	if m.addssh_port != nil {
		fields = append(fields, node.FieldSSHPort)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NodeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case node.FieldSSHPort:
		return m.AddedSSHPort()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case node.FieldSSHPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSSHPort(v)
		return nil
	}
	return fmt.Errorf("unknown Node numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NodeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(node.FieldExternalIP) {
		fields = append(fields, node.FieldExternalIP)
	}
	if m.FieldCleared(node.FieldSSHUser) {
		fields = append(fields, node.FieldSSHUser)
	}
	if m.FieldCleared(node.FieldExtraVars) {
		fields = append(fields, node.FieldExtraVars)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NodeMutation) ClearField(name string) error {
	switch name {
	case node.FieldExternalIP:
		m.ClearExternalIP()
		return nil
	case node.FieldSSHUser:
		m.ClearSSHUser()
		return nil
	case node.FieldExtraVars:
		m.ClearExtraVars()
		return nil
	}
	return fmt.Errorf("unknown Node nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NodeMutation) ResetField(name string) error {
	switch name {
	case node.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case node.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case node.FieldHostname:
		m.ResetHostname()
		return nil
	case node.FieldInternalIP:
		m.ResetInternalIP()
		return nil
	case node.FieldExternalIP:
		m.ResetExternalIP()
		return nil
	case node.FieldUseExternalIP:
		m.ResetUseExternalIP()
		return nil
	case node.FieldRole:
		m.ResetRole()
		return nil
	case node.FieldStatus:
		m.ResetStatus()
		return nil
	case node.FieldSSHUser:
		m.ResetSSHUser()
		return nil
	case node.FieldSSHPort:
		m.ResetSSHPort()
		return nil
	case node.FieldExtraVars:
		m.ResetExtraVars()
		return nil
	}
	return fmt.Errorf("unknown Node field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cluster != nil {
		edges = append(edges, node.EdgeCluster)
	}
	if m.credential != nil {
		edges = append(edges, node.EdgeCredential)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NodeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case node.EdgeCluster:
		if id := m.cluster; id != nil {
			return []ent.Value{*id}
		}
	case node.EdgeCredential:
		if id := m.credential; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NodeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcluster {
		edges = append(edges, node.EdgeCluster)
	}
	if m.clearedcredential {
		edges = append(edges, node.EdgeCredential)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NodeMutation) EdgeCleared(name string) bool {
	switch name {
	case node.EdgeCluster:
		return m.clearedcluster
	case node.EdgeCredential:
		return m.clearedcredential
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NodeMutation) ClearEdge(name string) error {
	switch name {
	case node.EdgeCluster:
		m.ClearCluster()
		return nil
	case node.EdgeCredential:
		m.ClearCredential()
		return nil
	}
	return fmt.Errorf("unknown Node unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NodeMutation) ResetEdge(name string) error {
	switch name {
	case node.EdgeCluster:
		m.ResetCluster()
		return nil
	case node.EdgeCredential:
		m.ResetCredential()
		return nil
	}
	return fmt.Errorf("unknown Node edge %s", name)
}
