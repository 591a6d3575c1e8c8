// Code generated by ent, DO NOT EDIT.

package cluster

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the cluster type in the database.
	Label = "cluster"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldKubernetesVersion holds the string denoting the kubernetes_version field in the database.
	FieldKubernetesVersion = "kubernetes_version"
	// FieldAPIEndpoint holds the string denoting the api_endpoint field in the database.
	FieldAPIEndpoint = "api_endpoint"
	// FieldEncryptedKubeconfig holds the string denoting the encrypted_kubeconfig field in the database.
	FieldEncryptedKubeconfig = "encrypted_kubeconfig"
	// FieldOperationStatus holds the string denoting the operation_status field in the database.
	FieldOperationStatus = "operation_status"
	// FieldCurrentJobID holds the string denoting the current_job_id field in the database.
	FieldCurrentJobID = "current_job_id"
	// FieldOperationStartedAt holds the string denoting the operation_started_at field in the database.
	FieldOperationStartedAt = "operation_started_at"
	// FieldOperationLockedBy holds the string denoting the operation_locked_by field in the database.
	FieldOperationLockedBy = "operation_locked_by"
	// FieldInstallationStage holds the string denoting the installation_stage field in the database.
	FieldInstallationStage = "installation_stage"
	// FieldExtraVars holds the string denoting the extra_vars field in the database.
	FieldExtraVars = "extra_vars"
	// EdgeNodes holds the string denoting the nodes edge name in mutations.
	EdgeNodes = "nodes"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// EdgeStatusCache holds the string denoting the status_cache edge name in mutations.
	EdgeStatusCache = "status_cache"
	// EdgeCredential holds the string denoting the credential edge name in mutations.
	EdgeCredential = "credential"
	// Table holds the table name of the cluster in the database.
	Table = "clusters"
	// NodesTable is the table that holds the nodes relation/edge.
	NodesTable = "nodes"
	// NodesInverseTable is the table name for the Node entity.
	// It exists in this package in order to avoid circular dependency with the "node" package.
	NodesInverseTable = "nodes"
	// NodesColumn is the table column denoting the nodes relation/edge.
	NodesColumn = "cluster_nodes"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "jobs"
	// JobsInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobsInverseTable = "jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "cluster_jobs"
	// StatusCacheTable is the table that holds the status_cache relation/edge.
	StatusCacheTable = "cluster_status_caches"
	// StatusCacheInverseTable is the table name for the ClusterStatusCache entity.
	// It exists in this package in order to avoid circular dependency with the "clusterstatuscache" package.
	StatusCacheInverseTable = "cluster_status_caches"
	// StatusCacheColumn is the table column denoting the status_cache relation/edge.
	StatusCacheColumn = "cluster_status_cache"
	// CredentialTable is the table that holds the credential relation/edge.
	CredentialTable = "clusters"
	// CredentialInverseTable is the table name for the Credential entity.
	// It exists in this package in order to avoid circular dependency with the "credential" package.
	CredentialInverseTable = "credentials"
	// CredentialColumn is the table column denoting the credential relation/edge.
	CredentialColumn = "credential_clusters"
)

// Columns holds all SQL columns for cluster fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldDescription,
	FieldKind,
	FieldKubernetesVersion,
	FieldAPIEndpoint,
	FieldEncryptedKubeconfig,
	FieldOperationStatus,
	FieldCurrentJobID,
	FieldOperationStartedAt,
	FieldOperationLockedBy,
	FieldInstallationStage,
	FieldExtraVars,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "clusters"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"credential_clusters",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
)

// Kind defines the type for the "kind" enum field.
type Kind string

// KindNew is the default value of the Kind enum.
const DefaultKind = KindNew

// Kind values.
const (
	KindNew        Kind = "new"
	KindRegistered Kind = "registered"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindNew, KindRegistered:
		return nil
	default:
		return fmt.Errorf("cluster: invalid enum value for kind field: %q", k)
	}
}

// OperationStatus defines the type for the "operation_status" enum field.
type OperationStatus string

// OperationStatusIdle is the default value of the OperationStatus enum.
const DefaultOperationStatus = OperationStatusIdle

// OperationStatus values.
const (
	OperationStatusIdle    OperationStatus = "idle"
	OperationStatusRunning OperationStatus = "running"
)

func (os OperationStatus) String() string {
	return string(os)
}

// OperationStatusValidator is a validator for the "operation_status" field enum values. It is called by the builders before save.
func OperationStatusValidator(os OperationStatus) error {
	switch os {
	case OperationStatusIdle, OperationStatusRunning:
		return nil
	default:
		return fmt.Errorf("cluster: invalid enum value for operation_status field: %q", os)
	}
}

// OperationLockedBy defines the type for the "operation_locked_by" enum field.
type OperationLockedBy string

// OperationLockedBy values.
const (
	OperationLockedByInstall      OperationLockedBy = "install"
	OperationLockedByAddNodes     OperationLockedBy = "add_nodes"
	OperationLockedByRemoveNodes  OperationLockedBy = "remove_nodes"
	OperationLockedByUninstall    OperationLockedBy = "uninstall"
	OperationLockedByUpgradeCheck OperationLockedBy = "upgrade_check"
)

func (olb OperationLockedBy) String() string {
	return string(olb)
}

// OperationLockedByValidator is a validator for the "operation_locked_by" field enum values. It is called by the builders before save.
func OperationLockedByValidator(olb OperationLockedBy) error {
	switch olb {
	case OperationLockedByInstall, OperationLockedByAddNodes, OperationLockedByRemoveNodes, OperationLockedByUninstall, OperationLockedByUpgradeCheck:
		return nil
	default:
		return fmt.Errorf("cluster: invalid enum value for operation_locked_by field: %q", olb)
	}
}

// InstallationStage defines the type for the "installation_stage" enum field.
type InstallationStage string

// InstallationStagePending is the default value of the InstallationStage enum.
const DefaultInstallationStage = InstallationStagePending

// InstallationStage values.
const (
	InstallationStagePending           InstallationStage = "pending"
	InstallationStageControlPlaneReady InstallationStage = "control_plane_ready"
	InstallationStageWorkersInstalling InstallationStage = "workers_installing"
	InstallationStageWorkersReady      InstallationStage = "workers_ready"
	InstallationStageActive            InstallationStage = "active"
)

func (is InstallationStage) String() string {
	return string(is)
}

// InstallationStageValidator is a validator for the "installation_stage" field enum values. It is called by the builders before save.
func InstallationStageValidator(is InstallationStage) error {
	switch is {
	case InstallationStagePending, InstallationStageControlPlaneReady, InstallationStageWorkersInstalling, InstallationStageWorkersReady, InstallationStageActive:
		return nil
	default:
		return fmt.Errorf("cluster: invalid enum value for installation_stage field: %q", is)
	}
}

// OrderOption defines the ordering options for the Cluster queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByKubernetesVersion orders the results by the kubernetes_version field.
func ByKubernetesVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKubernetesVersion, opts...).ToFunc()
}

// ByAPIEndpoint orders the results by the api_endpoint field.
func ByAPIEndpoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIEndpoint, opts...).ToFunc()
}

// ByOperationStatus orders the results by the operation_status field.
func ByOperationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperationStatus, opts...).ToFunc()
}

// ByCurrentJobID orders the results by the current_job_id field.
func ByCurrentJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentJobID, opts...).ToFunc()
}

// ByOperationStartedAt orders the results by the operation_started_at field.
func ByOperationStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperationStartedAt, opts...).ToFunc()
}

// ByOperationLockedBy orders the results by the operation_locked_by field.
func ByOperationLockedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperationLockedBy, opts...).ToFunc()
}

// ByInstallationStage orders the results by the installation_stage field.
func ByInstallationStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstallationStage, opts...).ToFunc()
}

// ByNodesCount orders the results by nodes count.
func ByNodesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNodesStep(), opts...)
	}
}

// ByNodes orders the results by nodes terms.
func ByNodes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNodesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStatusCacheField orders the results by status_cache field.
func ByStatusCacheField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStatusCacheStep(), sql.OrderByField(field, opts...))
	}
}

// ByCredentialField orders the results by credential field.
func ByCredentialField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCredentialStep(), sql.OrderByField(field, opts...))
	}
}
func newNodesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NodesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NodesTable, NodesColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
func newStatusCacheStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StatusCacheInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, StatusCacheTable, StatusCacheColumn),
	)
}
func newCredentialStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CredentialInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CredentialTable, CredentialColumn),
	)
}
