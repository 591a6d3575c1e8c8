// Code generated by ent, DO NOT EDIT.

package node

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the node type in the database.
	Label = "node"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldHostname holds the string denoting the hostname field in the database.
	FieldHostname = "hostname"
	// FieldInternalIP holds the string denoting the internal_ip field in the database.
	FieldInternalIP = "internal_ip"
	// FieldExternalIP holds the string denoting the external_ip field in the database.
	FieldExternalIP = "external_ip"
	// FieldUseExternalIP holds the string denoting the use_external_ip field in the database.
	FieldUseExternalIP = "use_external_ip"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSSHUser holds the string denoting the ssh_user field in the database.
	FieldSSHUser = "ssh_user"
	// FieldSSHPort holds the string denoting the ssh_port field in the database.
	FieldSSHPort = "ssh_port"
	// FieldExtraVars holds the string denoting the extra_vars field in the database.
	FieldExtraVars = "extra_vars"
	// EdgeCluster holds the string denoting the cluster edge name in mutations.
	EdgeCluster = "cluster"
	// EdgeCredential holds the string denoting the credential edge name in mutations.
	EdgeCredential = "credential"
	// Table holds the table name of the node in the database.
	Table = "nodes"
	// ClusterTable is the table that holds the cluster relation/edge.
	ClusterTable = "nodes"
	// ClusterInverseTable is the table name for the Cluster entity.
	// It exists in this package in order to avoid circular dependency with the "cluster" package.
	ClusterInverseTable = "clusters"
	// ClusterColumn is the table column denoting the cluster relation/edge.
	ClusterColumn = "cluster_nodes"
	// CredentialTable is the table that holds the credential relation/edge.
	CredentialTable = "nodes"
	// CredentialInverseTable is the table name for the Credential entity.
	// It exists in this package in order to avoid circular dependency with the "credential" package.
	CredentialInverseTable = "credentials"
	// CredentialColumn is the table column denoting the credential relation/edge.
	CredentialColumn = "credential_nodes"
)

// Columns holds all SQL columns for node fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldHostname,
	FieldInternalIP,
	FieldExternalIP,
	FieldUseExternalIP,
	FieldRole,
	FieldStatus,
	FieldSSHUser,
	FieldSSHPort,
	FieldExtraVars,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "nodes"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"cluster_nodes",
	"credential_nodes",
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
	// HostnameValidator is a validator for the "hostname" field. It is called by the builders before save.
	HostnameValidator func(string) error
	// InternalIPValidator is a validator for the "internal_ip" field. It is called by the builders before save.
	InternalIPValidator func(string) error
	// DefaultUseExternalIP holds the default value on creation for the "use_external_ip" field.
	DefaultUseExternalIP bool
	// DefaultSSHUser holds the default value on creation for the "ssh_user" field.
	DefaultSSHUser string
	// DefaultSSHPort holds the default value on creation for the "ssh_port" field.
	DefaultSSHPort int
)

// Role defines the type for the "role" enum field.
type Role string

// Role values.
const (
	RoleInitialMaster Role = "initial_master"
	RoleMaster        Role = "master"
	RoleWorker        Role = "worker"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleInitialMaster, RoleMaster, RoleWorker:
		return nil
	default:
		return fmt.Errorf("node: invalid enum value for role field: %q", r)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPENDING is the default value of the Status enum.
const DefaultStatus = StatusPENDING

// Status values.
const (
	StatusPENDING    Status = "PENDING"
	StatusINSTALLING Status = "INSTALLING"
	StatusACTIVE     Status = "ACTIVE"
	StatusFAILED     Status = "FAILED"
	StatusDRAINING   Status = "DRAINING"
	StatusREMOVED    Status = "REMOVED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPENDING, StatusINSTALLING, StatusACTIVE, StatusFAILED, StatusDRAINING, StatusREMOVED:
		return nil
	default:
		return fmt.Errorf("node: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Node queries.
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

// ByHostname orders the results by the hostname field.
func ByHostname(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHostname, opts...).ToFunc()
}

// ByInternalIP orders the results by the internal_ip field.
func ByInternalIP(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInternalIP, opts...).ToFunc()
}

// ByExternalIP orders the results by the external_ip field.
func ByExternalIP(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalIP, opts...).ToFunc()
}

// ByUseExternalIP orders the results by the use_external_ip field.
func ByUseExternalIP(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUseExternalIP, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySSHUser orders the results by the ssh_user field.
func BySSHUser(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSSHUser, opts...).ToFunc()
}

// BySSHPort orders the results by the ssh_port field.
func BySSHPort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSSHPort, opts...).ToFunc()
}

// ByClusterField orders the results by cluster field.
func ByClusterField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClusterStep(), sql.OrderByField(field, opts...))
	}
}

// ByCredentialField orders the results by credential field.
func ByCredentialField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCredentialStep(), sql.OrderByField(field, opts...))
	}
}
func newClusterStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClusterInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClusterTable, ClusterColumn),
	)
}
func newCredentialStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CredentialInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CredentialTable, CredentialColumn),
	)
}
