package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Credential holds the schema definition for the Credential entity.
// Secret material is stored AES-256-GCM encrypted and decrypted only for the
// duration of a single operation.
type Credential struct {
	ent.Schema
}

// Mixin of the Credential.
func (Credential) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Credential.
func (Credential) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(63),
		field.Enum("kind").
			Values("ssh_key", "ssh_password"),
		field.String("username").
			NotEmpty(),
		field.Bytes("encrypted_secret").
			Sensitive(),
		field.String("description").
			Optional(),
	}
}

// Edges of the Credential.
func (Credential) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("clusters", Cluster.Type),
		edge.To("nodes", Node.Type),
	}
}

// Indexes of the Credential.
func (Credential) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}
