// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Cluster is the predicate function for cluster builders.
type Cluster func(*sql.Selector)

// ClusterStatusCache is the predicate function for clusterstatuscache builders.
type ClusterStatusCache func(*sql.Selector)

// Credential is the predicate function for credential builders.
type Credential func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Node is the predicate function for node builders.
type Node func(*sql.Selector)
