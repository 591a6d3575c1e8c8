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
)

// ClusterStatusCache is the model entity for the ClusterStatusCache schema.
type ClusterStatusCache struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CollectedAt holds the value of the "collected_at" field.
	CollectedAt time.Time `json:"collected_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClusterStatusCacheQuery when eager-loading is set.
	Edges                ClusterStatusCacheEdges `json:"edges"`
	cluster_status_cache *int
	selectValues         sql.SelectValues
}

// ClusterStatusCacheEdges holds the relations/edges for other nodes in the graph.
type ClusterStatusCacheEdges struct {
	// Cluster holds the value of the cluster edge.
	Cluster *Cluster `json:"cluster,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ClusterOrErr returns the Cluster value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClusterStatusCacheEdges) ClusterOrErr() (*Cluster, error) {
	if e.Cluster != nil {
		return e.Cluster, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: cluster.Label}
	}
	return nil, &NotLoadedError{edge: "cluster"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClusterStatusCache) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clusterstatuscache.FieldPayload:
			values[i] = new([]byte)
		case clusterstatuscache.FieldID:
			values[i] = new(sql.NullInt64)
		case clusterstatuscache.FieldCreatedAt, clusterstatuscache.FieldUpdatedAt, clusterstatuscache.FieldCollectedAt:
			values[i] = new(sql.NullTime)
		case clusterstatuscache.ForeignKeys[0]: // cluster_status_cache
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClusterStatusCache fields.
func (_m *ClusterStatusCache) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clusterstatuscache.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case clusterstatuscache.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case clusterstatuscache.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case clusterstatuscache.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case clusterstatuscache.FieldCollectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field collected_at", values[i])
			} else if value.Valid {
				_m.CollectedAt = value.Time
			}
		case clusterstatuscache.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field cluster_status_cache", value)
			} else if value.Valid {
				_m.cluster_status_cache = new(int)
				*_m.cluster_status_cache = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClusterStatusCache.
// This includes values selected through modifiers, order, etc.
func (_m *ClusterStatusCache) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCluster queries the "cluster" edge of the ClusterStatusCache entity.
func (_m *ClusterStatusCache) QueryCluster() *ClusterQuery {
	return NewClusterStatusCacheClient(_m.config).QueryCluster(_m)
}

// Update returns a builder for updating this ClusterStatusCache.
// Note that you need to call ClusterStatusCache.Unwrap() before calling this method if this ClusterStatusCache
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClusterStatusCache) Update() *ClusterStatusCacheUpdateOne {
	return NewClusterStatusCacheClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClusterStatusCache entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClusterStatusCache) Unwrap() *ClusterStatusCache {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ClusterStatusCache is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClusterStatusCache) String() string {
	var builder strings.Builder
	builder.WriteString("ClusterStatusCache(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("collected_at=")
	builder.WriteString(_m.CollectedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ClusterStatusCaches is a parsable slice of ClusterStatusCache.
type ClusterStatusCaches []*ClusterStatusCache
