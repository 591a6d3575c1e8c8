package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Node holds the schema definition for the Node entity.
//
// Nodes are never physically deleted by scale operations; removal marks them
// REMOVED so hostname/IP uniqueness checks can reason about history.
type Node struct {
	ent.Schema
}

// Mixin of the Node.
func (Node) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Node.
func (Node) Fields() []ent.Field {
	return []ent.Field{
		field.String("hostname").
			NotEmpty().
			MaxLen(253),
		field.String("internal_ip").
			NotEmpty(),
		field.String("external_ip").
			Optional(),
		field.Bool("use_external_ip").
			Default(false),
		field.Enum("role").
			Values("initial_master", "master", "worker"),
		field.Enum("status").
			Values("PENDING", "INSTALLING", "ACTIVE", "FAILED", "DRAINING", "REMOVED").
			Default("PENDING"),
		field.String("ssh_user").
			Optional().
			Default("root"),
		field.Int("ssh_port").
			Default(22),
		field.JSON("extra_vars", map[string]any{}).
			Optional(), // Opaque, passed verbatim to the playbook runner
	}
}

// Edges of the Node.
func (Node) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("cluster", Cluster.Type).
			Ref("nodes").
			Unique().
			Required(),
		edge.From("credential", Credential.Type).
			Ref("nodes").
			Unique(),
	}
}

// Indexes of the Node.
func (Node) Indexes() []ent.Index {
	return []ent.Index{
		// Not unique: REMOVED rows keep their hostname so a later add
		// may legitimately reuse it. Uniqueness among live nodes is
		// enforced by the guardrail evaluator.
		index.Edges("cluster").Fields("hostname"),
		index.Fields("status"),
	}
}
