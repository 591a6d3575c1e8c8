package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity.
//
// A Job owns its cluster's operation lock while status is PENDING or RUNNING.
// Rows are created inside the same transaction that acquires the lock, so a
// rejected acquisition leaves no Job behind.
type Job struct {
	ent.Schema
}

// Mixin of the Job.
func (Job) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("kind").
			Values("install", "add_nodes", "remove_nodes", "uninstall", "upgrade_check"),
		field.Enum("status").
			Values("PENDING", "RUNNING", "SUCCESS", "FAILED").
			Default("PENDING"),
		field.JSON("node_ids", []int{}).
			Optional(), // Target nodes of this stage
		field.JSON("followup_node_ids", []int{}).
			Optional(), // Agent-role nodes deferred to the chained stage-2 job
		field.Int("sequence_stage").
			Default(1), // 1 for single-stage plans, 2 for a chained follow-up
		field.Int("parent_job_id").
			Optional().
			Nillable(), // Stage-1 job that spawned this stage-2 job
		field.String("output").
			Optional().
			Default(""), // Streamed runner output, appended incrementally
		field.String("error").
			Optional(),
		field.JSON("readiness_report", map[string]any{}).
			Optional(), // Upgrade-check diagnostics bundle + analyzer verdict
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("cluster", Cluster.Type).
			Ref("jobs").
			Unique().
			Required(),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("cluster").Fields("status"),
		index.Fields("kind"),
	}
}
