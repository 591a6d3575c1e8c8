// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/job"
	"kube-drover.io/drover/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdate) SetUpdatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *JobUpdate) SetKind(v job.Kind) *JobUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *JobUpdate) SetNillableKind(v *job.Kind) *JobUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v job.Status) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *job.Status) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNodeIds sets the "node_ids" field.
func (_u *JobUpdate) SetNodeIds(v []int) *JobUpdate {
	_u.mutation.SetNodeIds(v)
	return _u
}

// AppendNodeIds appends value to the "node_ids" field.
func (_u *JobUpdate) AppendNodeIds(v []int) *JobUpdate {
	_u.mutation.AppendNodeIds(v)
	return _u
}

// ClearNodeIds clears the value of the "node_ids" field.
func (_u *JobUpdate) ClearNodeIds() *JobUpdate {
	_u.mutation.ClearNodeIds()
	return _u
}

// SetFollowupNodeIds sets the "followup_node_ids" field.
func (_u *JobUpdate) SetFollowupNodeIds(v []int) *JobUpdate {
	_u.mutation.SetFollowupNodeIds(v)
	return _u
}

// AppendFollowupNodeIds appends value to the "followup_node_ids" field.
func (_u *JobUpdate) AppendFollowupNodeIds(v []int) *JobUpdate {
	_u.mutation.AppendFollowupNodeIds(v)
	return _u
}

// ClearFollowupNodeIds clears the value of the "followup_node_ids" field.
func (_u *JobUpdate) ClearFollowupNodeIds() *JobUpdate {
	_u.mutation.ClearFollowupNodeIds()
	return _u
}

// SetSequenceStage sets the "sequence_stage" field.
func (_u *JobUpdate) SetSequenceStage(v int) *JobUpdate {
	_u.mutation.ResetSequenceStage()
	_u.mutation.SetSequenceStage(v)
	return _u
}

// SetNillableSequenceStage sets the "sequence_stage" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSequenceStage(v *int) *JobUpdate {
	if v != nil {
		_u.SetSequenceStage(*v)
	}
	return _u
}

// AddSequenceStage adds value to the "sequence_stage" field.
func (_u *JobUpdate) AddSequenceStage(v int) *JobUpdate {
	_u.mutation.AddSequenceStage(v)
	return _u
}

// SetParentJobID sets the "parent_job_id" field.
func (_u *JobUpdate) SetParentJobID(v int) *JobUpdate {
	_u.mutation.ResetParentJobID()
	_u.mutation.SetParentJobID(v)
	return _u
}

// SetNillableParentJobID sets the "parent_job_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableParentJobID(v *int) *JobUpdate {
	if v != nil {
		_u.SetParentJobID(*v)
	}
	return _u
}

// AddParentJobID adds value to the "parent_job_id" field.
func (_u *JobUpdate) AddParentJobID(v int) *JobUpdate {
	_u.mutation.AddParentJobID(v)
	return _u
}

// ClearParentJobID clears the value of the "parent_job_id" field.
func (_u *JobUpdate) ClearParentJobID() *JobUpdate {
	_u.mutation.ClearParentJobID()
	return _u
}

// SetOutput sets the "output" field.
func (_u *JobUpdate) SetOutput(v string) *JobUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *JobUpdate) SetNillableOutput(v *string) *JobUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *JobUpdate) ClearOutput() *JobUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetError sets the "error" field.
func (_u *JobUpdate) SetError(v string) *JobUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *JobUpdate) SetNillableError(v *string) *JobUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *JobUpdate) ClearError() *JobUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetReadinessReport sets the "readiness_report" field.
func (_u *JobUpdate) SetReadinessReport(v map[string]interface{}) *JobUpdate {
	_u.mutation.SetReadinessReport(v)
	return _u
}

// ClearReadinessReport clears the value of the "readiness_report" field.
func (_u *JobUpdate) ClearReadinessReport() *JobUpdate {
	_u.mutation.ClearReadinessReport()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdate) SetStartedAt(v time.Time) *JobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStartedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdate) ClearStartedAt() *JobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdate) SetCompletedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCompletedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdate) ClearCompletedAt() *JobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetClusterID sets the "cluster" edge to the Cluster entity by ID.
func (_u *JobUpdate) SetClusterID(id int) *JobUpdate {
	_u.mutation.SetClusterID(id)
	return _u
}

// SetCluster sets the "cluster" edge to the Cluster entity.
func (_u *JobUpdate) SetCluster(v *Cluster) *JobUpdate {
	return _u.SetClusterID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the Cluster entity.
func (_u *JobUpdate) ClearCluster() *JobUpdate {
	_u.mutation.ClearCluster()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := job.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Job.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.cluster"`)
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(job.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NodeIds(); ok {
		_spec.SetField(job.FieldNodeIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNodeIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldNodeIds, value)
		})
	}
	if _u.mutation.NodeIdsCleared() {
		_spec.ClearField(job.FieldNodeIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.FollowupNodeIds(); ok {
		_spec.SetField(job.FieldFollowupNodeIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFollowupNodeIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldFollowupNodeIds, value)
		})
	}
	if _u.mutation.FollowupNodeIdsCleared() {
		_spec.ClearField(job.FieldFollowupNodeIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.SequenceStage(); ok {
		_spec.SetField(job.FieldSequenceStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceStage(); ok {
		_spec.AddField(job.FieldSequenceStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentJobID(); ok {
		_spec.SetField(job.FieldParentJobID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParentJobID(); ok {
		_spec.AddField(job.FieldParentJobID, field.TypeInt, value)
	}
	if _u.mutation.ParentJobIDCleared() {
		_spec.ClearField(job.FieldParentJobID, field.TypeInt)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(job.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(job.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(job.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(job.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.ReadinessReport(); ok {
		_spec.SetField(job.FieldReadinessReport, field.TypeJSON, value)
	}
	if _u.mutation.ReadinessReportCleared() {
		_spec.ClearField(job.FieldReadinessReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.ClusterTable,
			Columns: []string{job.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cluster.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClusterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.ClusterTable,
			Columns: []string{job.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cluster.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdateOne) SetUpdatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *JobUpdateOne) SetKind(v job.Kind) *JobUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableKind(v *job.Kind) *JobUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v job.Status) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *job.Status) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNodeIds sets the "node_ids" field.
func (_u *JobUpdateOne) SetNodeIds(v []int) *JobUpdateOne {
	_u.mutation.SetNodeIds(v)
	return _u
}

// AppendNodeIds appends value to the "node_ids" field.
func (_u *JobUpdateOne) AppendNodeIds(v []int) *JobUpdateOne {
	_u.mutation.AppendNodeIds(v)
	return _u
}

// ClearNodeIds clears the value of the "node_ids" field.
func (_u *JobUpdateOne) ClearNodeIds() *JobUpdateOne {
	_u.mutation.ClearNodeIds()
	return _u
}

// SetFollowupNodeIds sets the "followup_node_ids" field.
func (_u *JobUpdateOne) SetFollowupNodeIds(v []int) *JobUpdateOne {
	_u.mutation.SetFollowupNodeIds(v)
	return _u
}

// AppendFollowupNodeIds appends value to the "followup_node_ids" field.
func (_u *JobUpdateOne) AppendFollowupNodeIds(v []int) *JobUpdateOne {
	_u.mutation.AppendFollowupNodeIds(v)
	return _u
}

// ClearFollowupNodeIds clears the value of the "followup_node_ids" field.
func (_u *JobUpdateOne) ClearFollowupNodeIds() *JobUpdateOne {
	_u.mutation.ClearFollowupNodeIds()
	return _u
}

// SetSequenceStage sets the "sequence_stage" field.
func (_u *JobUpdateOne) SetSequenceStage(v int) *JobUpdateOne {
	_u.mutation.ResetSequenceStage()
	_u.mutation.SetSequenceStage(v)
	return _u
}

// SetNillableSequenceStage sets the "sequence_stage" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSequenceStage(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetSequenceStage(*v)
	}
	return _u
}

// AddSequenceStage adds value to the "sequence_stage" field.
func (_u *JobUpdateOne) AddSequenceStage(v int) *JobUpdateOne {
	_u.mutation.AddSequenceStage(v)
	return _u
}

// SetParentJobID sets the "parent_job_id" field.
func (_u *JobUpdateOne) SetParentJobID(v int) *JobUpdateOne {
	_u.mutation.ResetParentJobID()
	_u.mutation.SetParentJobID(v)
	return _u
}

// SetNillableParentJobID sets the "parent_job_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableParentJobID(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetParentJobID(*v)
	}
	return _u
}

// AddParentJobID adds value to the "parent_job_id" field.
func (_u *JobUpdateOne) AddParentJobID(v int) *JobUpdateOne {
	_u.mutation.AddParentJobID(v)
	return _u
}

// ClearParentJobID clears the value of the "parent_job_id" field.
func (_u *JobUpdateOne) ClearParentJobID() *JobUpdateOne {
	_u.mutation.ClearParentJobID()
	return _u
}

// SetOutput sets the "output" field.
func (_u *JobUpdateOne) SetOutput(v string) *JobUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableOutput(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *JobUpdateOne) ClearOutput() *JobUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetError sets the "error" field.
func (_u *JobUpdateOne) SetError(v string) *JobUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableError(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *JobUpdateOne) ClearError() *JobUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetReadinessReport sets the "readiness_report" field.
func (_u *JobUpdateOne) SetReadinessReport(v map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetReadinessReport(v)
	return _u
}

// ClearReadinessReport clears the value of the "readiness_report" field.
func (_u *JobUpdateOne) ClearReadinessReport() *JobUpdateOne {
	_u.mutation.ClearReadinessReport()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdateOne) SetStartedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStartedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdateOne) ClearStartedAt() *JobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdateOne) SetCompletedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCompletedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdateOne) ClearCompletedAt() *JobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetClusterID sets the "cluster" edge to the Cluster entity by ID.
func (_u *JobUpdateOne) SetClusterID(id int) *JobUpdateOne {
	_u.mutation.SetClusterID(id)
	return _u
}

// SetCluster sets the "cluster" edge to the Cluster entity.
func (_u *JobUpdateOne) SetCluster(v *Cluster) *JobUpdateOne {
	return _u.SetClusterID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the Cluster entity.
func (_u *JobUpdateOne) ClearCluster() *JobUpdateOne {
	_u.mutation.ClearCluster()
	return _u
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := job.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Job.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.cluster"`)
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(job.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NodeIds(); ok {
		_spec.SetField(job.FieldNodeIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNodeIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldNodeIds, value)
		})
	}
	if _u.mutation.NodeIdsCleared() {
		_spec.ClearField(job.FieldNodeIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.FollowupNodeIds(); ok {
		_spec.SetField(job.FieldFollowupNodeIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFollowupNodeIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldFollowupNodeIds, value)
		})
	}
	if _u.mutation.FollowupNodeIdsCleared() {
		_spec.ClearField(job.FieldFollowupNodeIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.SequenceStage(); ok {
		_spec.SetField(job.FieldSequenceStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceStage(); ok {
		_spec.AddField(job.FieldSequenceStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentJobID(); ok {
		_spec.SetField(job.FieldParentJobID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParentJobID(); ok {
		_spec.AddField(job.FieldParentJobID, field.TypeInt, value)
	}
	if _u.mutation.ParentJobIDCleared() {
		_spec.ClearField(job.FieldParentJobID, field.TypeInt)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(job.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(job.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(job.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(job.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.ReadinessReport(); ok {
		_spec.SetField(job.FieldReadinessReport, field.TypeJSON, value)
	}
	if _u.mutation.ReadinessReportCleared() {
		_spec.ClearField(job.FieldReadinessReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.ClusterTable,
			Columns: []string{job.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cluster.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClusterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.ClusterTable,
			Columns: []string{job.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cluster.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
