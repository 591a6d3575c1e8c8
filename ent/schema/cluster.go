package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Cluster holds the schema definition for the Cluster entity.
//
// The four operation_* fields form the per-cluster mutating-operation lock.
// They are written only by the lock manager's atomic acquire/release paths;
// direct writes anywhere else are forbidden.
type Cluster struct {
	ent.Schema
}

// Mixin of the Cluster.
func (Cluster) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Cluster.
func (Cluster) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(63),
		field.String("description").
			Optional(),
		field.Enum("kind").
			Values("new", "registered").
			Default("new"),
		field.String("kubernetes_version").
			Optional(), // Target RKE2 version, e.g. "v1.31.4+rke2r1"
		field.String("api_endpoint").
			Optional(), // Registered clusters only
		field.Bytes("encrypted_kubeconfig").
			Optional().
			Sensitive(), // AES-256-GCM encrypted
		field.Enum("operation_status").
			Values("idle", "running").
			Default("idle"),
		field.Int("current_job_id").
			Optional().
			Nillable(),
		field.Time("operation_started_at").
			Optional().
			Nillable(),
		field.Enum("operation_locked_by").
			Values("install", "add_nodes", "remove_nodes", "uninstall", "upgrade_check").
			Optional().
			Nillable(),
		field.Enum("installation_stage").
			Values("pending", "control_plane_ready", "workers_installing", "workers_ready", "active").
			Default("pending"), // Derived from node state, never set by clients
		field.JSON("extra_vars", map[string]any{}).
			Optional(), // Opaque, passed verbatim to the playbook runner
	}
}

// Edges of the Cluster.
func (Cluster) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("nodes", Node.Type),
		edge.To("jobs", Job.Type),
		edge.To("status_cache", ClusterStatusCache.Type).
			Unique(),
		edge.From("credential", Credential.Type).
			Ref("clusters").
			Unique(),
	}
}

// Indexes of the Cluster.
func (Cluster) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
		index.Fields("operation_status"),
	}
}
