// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/clusterstatuscache"
	"kube-drover.io/drover/ent/credential"
)

// Cluster is the model entity for the Cluster schema.
type Cluster struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind cluster.Kind `json:"kind,omitempty"`
	// KubernetesVersion holds the value of the "kubernetes_version" field.
	KubernetesVersion string `json:"kubernetes_version,omitempty"`
	// APIEndpoint holds the value of the "api_endpoint" field.
	APIEndpoint string `json:"api_endpoint,omitempty"`
	// EncryptedKubeconfig holds the value of the "encrypted_kubeconfig" field.
	EncryptedKubeconfig []byte `json:"-"`
	// OperationStatus holds the value of the "operation_status" field.
	OperationStatus cluster.OperationStatus `json:"operation_status,omitempty"`
	// CurrentJobID holds the value of the "current_job_id" field.
	CurrentJobID *int `json:"current_job_id,omitempty"`
	// OperationStartedAt holds the value of the "operation_started_at" field.
	OperationStartedAt *time.Time `json:"operation_started_at,omitempty"`
	// OperationLockedBy holds the value of the "operation_locked_by" field.
	OperationLockedBy *cluster.OperationLockedBy `json:"operation_locked_by,omitempty"`
	// InstallationStage holds the value of the "installation_stage" field.
	InstallationStage cluster.InstallationStage `json:"installation_stage,omitempty"`
	// ExtraVars holds the value of the "extra_vars" field.
	ExtraVars map[string]interface{} `json:"extra_vars,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClusterQuery when eager-loading is set.
	Edges               ClusterEdges `json:"edges"`
	credential_clusters *int
	selectValues        sql.SelectValues
}

// ClusterEdges holds the relations/edges for other nodes in the graph.
type ClusterEdges struct {
	// Nodes holds the value of the nodes edge.
	Nodes []*Node `json:"nodes,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*Job `json:"jobs,omitempty"`
	// StatusCache holds the value of the status_cache edge.
	StatusCache *ClusterStatusCache `json:"status_cache,omitempty"`
	// Credential holds the value of the credential edge.
	Credential *Credential `json:"credential,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// NodesOrErr returns the Nodes value or an error if the edge
// was not loaded in eager-loading.
func (e ClusterEdges) NodesOrErr() ([]*Node, error) {
	if e.loadedTypes[0] {
		return e.Nodes, nil
	}
	return nil, &NotLoadedError{edge: "nodes"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e ClusterEdges) JobsOrErr() ([]*Job, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// StatusCacheOrErr returns the StatusCache value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClusterEdges) StatusCacheOrErr() (*ClusterStatusCache, error) {
	if e.StatusCache != nil {
		return e.StatusCache, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: clusterstatuscache.Label}
	}
	return nil, &NotLoadedError{edge: "status_cache"}
}

// CredentialOrErr returns the Credential value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClusterEdges) CredentialOrErr() (*Credential, error) {
	if e.Credential != nil {
		return e.Credential, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: credential.Label}
	}
	return nil, &NotLoadedError{edge: "credential"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Cluster) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cluster.FieldEncryptedKubeconfig, cluster.FieldExtraVars:
			values[i] = new([]byte)
		case cluster.FieldID, cluster.FieldCurrentJobID:
			values[i] = new(sql.NullInt64)
		case cluster.FieldName, cluster.FieldDescription, cluster.FieldKind, cluster.FieldKubernetesVersion, cluster.FieldAPIEndpoint, cluster.FieldOperationStatus, cluster.FieldOperationLockedBy, cluster.FieldInstallationStage:
			values[i] = new(sql.NullString)
		case cluster.FieldCreatedAt, cluster.FieldUpdatedAt, cluster.FieldOperationStartedAt:
			values[i] = new(sql.NullTime)
		case cluster.ForeignKeys[0]: // credential_clusters
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Cluster fields.
func (_m *Cluster) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cluster.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case cluster.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case cluster.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case cluster.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case cluster.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case cluster.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = cluster.Kind(value.String)
			}
		case cluster.FieldKubernetesVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kubernetes_version", values[i])
			} else if value.Valid {
				_m.KubernetesVersion = value.String
			}
		case cluster.FieldAPIEndpoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_endpoint", values[i])
			} else if value.Valid {
				_m.APIEndpoint = value.String
			}
		case cluster.FieldEncryptedKubeconfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field encrypted_kubeconfig", values[i])
			} else if value != nil {
				_m.EncryptedKubeconfig = *value
			}
		case cluster.FieldOperationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation_status", values[i])
			} else if value.Valid {
				_m.OperationStatus = cluster.OperationStatus(value.String)
			}
		case cluster.FieldCurrentJobID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_job_id", values[i])
			} else if value.Valid {
				_m.CurrentJobID = new(int)
				*_m.CurrentJobID = int(value.Int64)
			}
		case cluster.FieldOperationStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field operation_started_at", values[i])
			} else if value.Valid {
				_m.OperationStartedAt = new(time.Time)
				*_m.OperationStartedAt = value.Time
			}
		case cluster.FieldOperationLockedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation_locked_by", values[i])
			} else if value.Valid {
				_m.OperationLockedBy = new(cluster.OperationLockedBy)
				*_m.OperationLockedBy = cluster.OperationLockedBy(value.String)
			}
		case cluster.FieldInstallationStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field installation_stage", values[i])
			} else if value.Valid {
				_m.InstallationStage = cluster.InstallationStage(value.String)
			}
		case cluster.FieldExtraVars:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extra_vars", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtraVars); err != nil {
					return fmt.Errorf("unmarshal field extra_vars: %w", err)
				}
			}
		case cluster.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field credential_clusters", value)
			} else if value.Valid {
				_m.credential_clusters = new(int)
				*_m.credential_clusters = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Cluster.
// This includes values selected through modifiers, order, etc.
func (_m *Cluster) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNodes queries the "nodes" edge of the Cluster entity.
func (_m *Cluster) QueryNodes() *NodeQuery {
	return NewClusterClient(_m.config).QueryNodes(_m)
}

// QueryJobs queries the "jobs" edge of the Cluster entity.
func (_m *Cluster) QueryJobs() *JobQuery {
	return NewClusterClient(_m.config).QueryJobs(_m)
}

// QueryStatusCache queries the "status_cache" edge of the Cluster entity.
func (_m *Cluster) QueryStatusCache() *ClusterStatusCacheQuery {
	return NewClusterClient(_m.config).QueryStatusCache(_m)
}

// QueryCredential queries the "credential" edge of the Cluster entity.
func (_m *Cluster) QueryCredential() *CredentialQuery {
	return NewClusterClient(_m.config).QueryCredential(_m)
}

// Update returns a builder for updating this Cluster.
// Note that you need to call Cluster.Unwrap() before calling this method if this Cluster
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Cluster) Update() *ClusterUpdateOne {
	return NewClusterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Cluster entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Cluster) Unwrap() *Cluster {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Cluster is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Cluster) String() string {
	var builder strings.Builder
	builder.WriteString("Cluster(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("kubernetes_version=")
	builder.WriteString(_m.KubernetesVersion)
	builder.WriteString(", ")
	builder.WriteString("api_endpoint=")
	builder.WriteString(_m.APIEndpoint)
	builder.WriteString(", ")
	builder.WriteString("encrypted_kubeconfig=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("operation_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.OperationStatus))
	builder.WriteString(", ")
	if v := _m.CurrentJobID; v != nil {
		builder.WriteString("current_job_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OperationStartedAt; v != nil {
		builder.WriteString("operation_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.OperationLockedBy; v != nil {
		builder.WriteString("operation_locked_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("installation_stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.InstallationStage))
	builder.WriteString(", ")
	builder.WriteString("extra_vars=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtraVars))
	builder.WriteByte(')')
	return builder.String()
}

// Clusters is a parsable slice of Cluster.
type Clusters []*Cluster
