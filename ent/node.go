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
	"kube-drover.io/drover/ent/credential"
	"kube-drover.io/drover/ent/node"
)

// Node is the model entity for the Node schema.
type Node struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Hostname holds the value of the "hostname" field.
	Hostname string `json:"hostname,omitempty"`
	// InternalIP holds the value of the "internal_ip" field.
	InternalIP string `json:"internal_ip,omitempty"`
	// ExternalIP holds the value of the "external_ip" field.
	ExternalIP string `json:"external_ip,omitempty"`
	// UseExternalIP holds the value of the "use_external_ip" field.
	UseExternalIP bool `json:"use_external_ip,omitempty"`
	// Role holds the value of the "role" field.
	Role node.Role `json:"role,omitempty"`
	// Status holds the value of the "status" field.
	Status node.Status `json:"status,omitempty"`
	// SSHUser holds the value of the "ssh_user" field.
	SSHUser string `json:"ssh_user,omitempty"`
	// SSHPort holds the value of the "ssh_port" field.
	SSHPort int `json:"ssh_port,omitempty"`
	// ExtraVars holds the value of the "extra_vars" field.
	ExtraVars map[string]interface{} `json:"extra_vars,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the NodeQuery when eager-loading is set.
	Edges            NodeEdges `json:"edges"`
	cluster_nodes    *int
	credential_nodes *int
	selectValues     sql.SelectValues
}

// NodeEdges holds the relations/edges for other nodes in the graph.
type NodeEdges struct {
	// Cluster holds the value of the cluster edge.
	Cluster *Cluster `json:"cluster,omitempty"`
	// Credential holds the value of the credential edge.
	Credential *Credential `json:"credential,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ClusterOrErr returns the Cluster value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e NodeEdges) ClusterOrErr() (*Cluster, error) {
	if e.Cluster != nil {
		return e.Cluster, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: cluster.Label}
	}
	return nil, &NotLoadedError{edge: "cluster"}
}

// CredentialOrErr returns the Credential value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e NodeEdges) CredentialOrErr() (*Credential, error) {
	if e.Credential != nil {
		return e.Credential, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: credential.Label}
	}
	return nil, &NotLoadedError{edge: "credential"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Node) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case node.FieldExtraVars:
			values[i] = new([]byte)
		case node.FieldUseExternalIP:
			values[i] = new(sql.NullBool)
		case node.FieldID, node.FieldSSHPort:
			values[i] = new(sql.NullInt64)
		case node.FieldHostname, node.FieldInternalIP, node.FieldExternalIP, node.FieldRole, node.FieldStatus, node.FieldSSHUser:
			values[i] = new(sql.NullString)
		case node.FieldCreatedAt, node.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case node.ForeignKeys[0]: // cluster_nodes
			values[i] = new(sql.NullInt64)
		case node.ForeignKeys[1]: // credential_nodes
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Node fields.
func (_m *Node) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case node.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case node.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case node.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case node.FieldHostname:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hostname", values[i])
			} else if value.Valid {
				_m.Hostname = value.String
			}
		case node.FieldInternalIP:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field internal_ip", values[i])
			} else if value.Valid {
				_m.InternalIP = value.String
			}
		case node.FieldExternalIP:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_ip", values[i])
			} else if value.Valid {
				_m.ExternalIP = value.String
			}
		case node.FieldUseExternalIP:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field use_external_ip", values[i])
			} else if value.Valid {
				_m.UseExternalIP = value.Bool
			}
		case node.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = node.Role(value.String)
			}
		case node.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = node.Status(value.String)
			}
		case node.FieldSSHUser:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ssh_user", values[i])
			} else if value.Valid {
				_m.SSHUser = value.String
			}
		case node.FieldSSHPort:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ssh_port", values[i])
			} else if value.Valid {
				_m.SSHPort = int(value.Int64)
			}
		case node.FieldExtraVars:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extra_vars", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtraVars); err != nil {
					return fmt.Errorf("unmarshal field extra_vars: %w", err)
				}
			}
		case node.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field cluster_nodes", value)
			} else if value.Valid {
				_m.cluster_nodes = new(int)
				*_m.cluster_nodes = int(value.Int64)
			}
		case node.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field credential_nodes", value)
			} else if value.Valid {
				_m.credential_nodes = new(int)
				*_m.credential_nodes = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Node.
// This includes values selected through modifiers, order, etc.
func (_m *Node) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCluster queries the "cluster" edge of the Node entity.
func (_m *Node) QueryCluster() *ClusterQuery {
	return NewNodeClient(_m.config).QueryCluster(_m)
}

// QueryCredential queries the "credential" edge of the Node entity.
func (_m *Node) QueryCredential() *CredentialQuery {
	return NewNodeClient(_m.config).QueryCredential(_m)
}

// Update returns a builder for updating this Node.
// Note that you need to call Node.Unwrap() before calling this method if this Node
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Node) Update() *NodeUpdateOne {
	return NewNodeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Node entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Node) Unwrap() *Node {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Node is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Node) String() string {
	var builder strings.Builder
	builder.WriteString("Node(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("hostname=")
	builder.WriteString(_m.Hostname)
	builder.WriteString(", ")
	builder.WriteString("internal_ip=")
	builder.WriteString(_m.InternalIP)
	builder.WriteString(", ")
	builder.WriteString("external_ip=")
	builder.WriteString(_m.ExternalIP)
	builder.WriteString(", ")
	builder.WriteString("use_external_ip=")
	builder.WriteString(fmt.Sprintf("%v", _m.UseExternalIP))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("ssh_user=")
	builder.WriteString(_m.SSHUser)
	builder.WriteString(", ")
	builder.WriteString("ssh_port=")
	builder.WriteString(fmt.Sprintf("%v", _m.SSHPort))
	builder.WriteString(", ")
	builder.WriteString("extra_vars=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtraVars))
	builder.WriteByte(')')
	return builder.String()
}

// Nodes is a parsable slice of Node.
type Nodes []*Node
