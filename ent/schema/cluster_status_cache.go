package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// ClusterStatusCache holds the schema definition for the ClusterStatusCache
// entity: the last live-inspection snapshot for a cluster, served until its
// TTL expires or a mutating operation invalidates it.
type ClusterStatusCache struct {
	ent.Schema
}

// Mixin of the ClusterStatusCache.
func (ClusterStatusCache) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ClusterStatusCache.
func (ClusterStatusCache) Fields() []ent.Field {
	return []ent.Field{
		field.JSON("payload", map[string]any{}),
		field.Time("collected_at"),
	}
}

// Edges of the ClusterStatusCache.
func (ClusterStatusCache) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("cluster", Cluster.Type).
			Ref("status_cache").
			Unique().
			Required(),
	}
}
