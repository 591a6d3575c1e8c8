// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/credential"
	"kube-drover.io/drover/ent/node"
	"kube-drover.io/drover/ent/predicate"
)

// NodeUpdate is the builder for updating Node entities.
type NodeUpdate struct {
	config
	hooks    []Hook
	mutation *NodeMutation
}

// Where appends a list predicates to the NodeUpdate builder.
func (_u *NodeUpdate) Where(ps ...predicate.Node) *NodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NodeUpdate) SetUpdatedAt(v time.Time) *NodeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetHostname sets the "hostname" field.
func (_u *NodeUpdate) SetHostname(v string) *NodeUpdate {
	_u.mutation.SetHostname(v)
	return _u
}

// SetNillableHostname sets the "hostname" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableHostname(v *string) *NodeUpdate {
	if v != nil {
		_u.SetHostname(*v)
	}
	return _u
}

// SetInternalIP sets the "internal_ip" field.
func (_u *NodeUpdate) SetInternalIP(v string) *NodeUpdate {
	_u.mutation.SetInternalIP(v)
	return _u
}

// SetNillableInternalIP sets the "internal_ip" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableInternalIP(v *string) *NodeUpdate {
	if v != nil {
		_u.SetInternalIP(*v)
	}
	return _u
}

// SetExternalIP sets the "external_ip" field.
func (_u *NodeUpdate) SetExternalIP(v string) *NodeUpdate {
	_u.mutation.SetExternalIP(v)
	return _u
}

// SetNillableExternalIP sets the "external_ip" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableExternalIP(v *string) *NodeUpdate {
	if v != nil {
		_u.SetExternalIP(*v)
	}
	return _u
}

// ClearExternalIP clears the value of the "external_ip" field.
func (_u *NodeUpdate) ClearExternalIP() *NodeUpdate {
	_u.mutation.ClearExternalIP()
	return _u
}

// SetUseExternalIP sets the "use_external_ip" field.
func (_u *NodeUpdate) SetUseExternalIP(v bool) *NodeUpdate {
	_u.mutation.SetUseExternalIP(v)
	return _u
}

// SetNillableUseExternalIP sets the "use_external_ip" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableUseExternalIP(v *bool) *NodeUpdate {
	if v != nil {
		_u.SetUseExternalIP(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *NodeUpdate) SetRole(v node.Role) *NodeUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableRole(v *node.Role) *NodeUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *NodeUpdate) SetStatus(v node.Status) *NodeUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableStatus(v *node.Status) *NodeUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSSHUser sets the "ssh_user" field.
func (_u *NodeUpdate) SetSSHUser(v string) *NodeUpdate {
	_u.mutation.SetSSHUser(v)
	return _u
}

// SetNillableSSHUser sets the "ssh_user" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableSSHUser(v *string) *NodeUpdate {
	if v != nil {
		_u.SetSSHUser(*v)
	}
	return _u
}

// ClearSSHUser clears the value of the "ssh_user" field.
func (_u *NodeUpdate) ClearSSHUser() *NodeUpdate {
	_u.mutation.ClearSSHUser()
	return _u
}

// SetSSHPort sets the "ssh_port" field.
func (_u *NodeUpdate) SetSSHPort(v int) *NodeUpdate {
	_u.mutation.ResetSSHPort()
	_u.mutation.SetSSHPort(v)
	return _u
}

// SetNillableSSHPort sets the "ssh_port" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableSSHPort(v *int) *NodeUpdate {
	if v != nil {
		_u.SetSSHPort(*v)
	}
	return _u
}

// AddSSHPort adds value to the "ssh_port" field.
func (_u *NodeUpdate) AddSSHPort(v int) *NodeUpdate {
	_u.mutation.AddSSHPort(v)
	return _u
}

// SetExtraVars sets the "extra_vars" field.
func (_u *NodeUpdate) SetExtraVars(v map[string]interface{}) *NodeUpdate {
	_u.mutation.SetExtraVars(v)
	return _u
}

// ClearExtraVars clears the value of the "extra_vars" field.
func (_u *NodeUpdate) ClearExtraVars() *NodeUpdate {
	_u.mutation.ClearExtraVars()
	return _u
}

// SetClusterID sets the "cluster" edge to the Cluster entity by ID.
func (_u *NodeUpdate) SetClusterID(id int) *NodeUpdate {
	_u.mutation.SetClusterID(id)
	return _u
}

// SetCluster sets the "cluster" edge to the Cluster entity.
func (_u *NodeUpdate) SetCluster(v *Cluster) *NodeUpdate {
	return _u.SetClusterID(v.ID)
}

// SetCredentialID sets the "credential" edge to the Credential entity by ID.
func (_u *NodeUpdate) SetCredentialID(id int) *NodeUpdate {
	_u.mutation.SetCredentialID(id)
	return _u
}

// SetNillableCredentialID sets the "credential" edge to the Credential entity by ID if the given value is not nil.
func (_u *NodeUpdate) SetNillableCredentialID(id *int) *NodeUpdate {
	if id != nil {
		_u = _u.SetCredentialID(*id)
	}
	return _u
}

// SetCredential sets the "credential" edge to the Credential entity.
func (_u *NodeUpdate) SetCredential(v *Credential) *NodeUpdate {
	return _u.SetCredentialID(v.ID)
}

// Mutation returns the NodeMutation object of the builder.
func (_u *NodeUpdate) Mutation() *NodeMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the Cluster entity.
func (_u *NodeUpdate) ClearCluster() *NodeUpdate {
	_u.mutation.ClearCluster()
	return _u
}

// ClearCredential clears the "credential" edge to the Credential entity.
func (_u *NodeUpdate) ClearCredential() *NodeUpdate {
	_u.mutation.ClearCredential()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NodeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NodeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := node.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NodeUpdate) check() error {
	if v, ok := _u.mutation.Hostname(); ok {
		if err := node.HostnameValidator(v); err != nil {
			return &ValidationError{Name: "hostname", err: fmt.Errorf(`ent: validator failed for field "Node.hostname": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InternalIP(); ok {
		if err := node.InternalIPValidator(v); err != nil {
			return &ValidationError{Name: "internal_ip", err: fmt.Errorf(`ent: validator failed for field "Node.internal_ip": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := node.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Node.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := node.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Node.status": %w`, err)}
		}
	}
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Node.cluster"`)
	}
	return nil
}

func (_u *NodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(node.Table, node.Columns, sqlgraph.NewFieldSpec(node.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(node.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Hostname(); ok {
		_spec.SetField(node.FieldHostname, field.TypeString, value)
	}
	if value, ok := _u.mutation.InternalIP(); ok {
		_spec.SetField(node.FieldInternalIP, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalIP(); ok {
		_spec.SetField(node.FieldExternalIP, field.TypeString, value)
	}
	if _u.mutation.ExternalIPCleared() {
		_spec.ClearField(node.FieldExternalIP, field.TypeString)
	}
	if value, ok := _u.mutation.UseExternalIP(); ok {
		_spec.SetField(node.FieldUseExternalIP, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(node.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(node.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SSHUser(); ok {
		_spec.SetField(node.FieldSSHUser, field.TypeString, value)
	}
	if _u.mutation.SSHUserCleared() {
		_spec.ClearField(node.FieldSSHUser, field.TypeString)
	}
	if value, ok := _u.mutation.SSHPort(); ok {
		_spec.SetField(node.FieldSSHPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSSHPort(); ok {
		_spec.AddField(node.FieldSSHPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtraVars(); ok {
		_spec.SetField(node.FieldExtraVars, field.TypeJSON, value)
	}
	if _u.mutation.ExtraVarsCleared() {
		_spec.ClearField(node.FieldExtraVars, field.TypeJSON)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   node.ClusterTable,
			Columns: []string{node.ClusterColumn},
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
			Table:   node.ClusterTable,
			Columns: []string{node.ClusterColumn},
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
	if _u.mutation.CredentialCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   node.CredentialTable,
			Columns: []string{node.CredentialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(credential.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CredentialIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   node.CredentialTable,
			Columns: []string{node.CredentialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(credential.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{node.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NodeUpdateOne is the builder for updating a single Node entity.
type NodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NodeMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NodeUpdateOne) SetUpdatedAt(v time.Time) *NodeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetHostname sets the "hostname" field.
func (_u *NodeUpdateOne) SetHostname(v string) *NodeUpdateOne {
	_u.mutation.SetHostname(v)
	return _u
}

// SetNillableHostname sets the "hostname" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableHostname(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetHostname(*v)
	}
	return _u
}

// SetInternalIP sets the "internal_ip" field.
func (_u *NodeUpdateOne) SetInternalIP(v string) *NodeUpdateOne {
	_u.mutation.SetInternalIP(v)
	return _u
}

// SetNillableInternalIP sets the "internal_ip" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableInternalIP(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetInternalIP(*v)
	}
	return _u
}

// SetExternalIP sets the "external_ip" field.
func (_u *NodeUpdateOne) SetExternalIP(v string) *NodeUpdateOne {
	_u.mutation.SetExternalIP(v)
	return _u
}

// SetNillableExternalIP sets the "external_ip" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableExternalIP(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetExternalIP(*v)
	}
	return _u
}

// ClearExternalIP clears the value of the "external_ip" field.
func (_u *NodeUpdateOne) ClearExternalIP() *NodeUpdateOne {
	_u.mutation.ClearExternalIP()
	return _u
}

// SetUseExternalIP sets the "use_external_ip" field.
func (_u *NodeUpdateOne) SetUseExternalIP(v bool) *NodeUpdateOne {
	_u.mutation.SetUseExternalIP(v)
	return _u
}

// SetNillableUseExternalIP sets the "use_external_ip" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableUseExternalIP(v *bool) *NodeUpdateOne {
	if v != nil {
		_u.SetUseExternalIP(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *NodeUpdateOne) SetRole(v node.Role) *NodeUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableRole(v *node.Role) *NodeUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *NodeUpdateOne) SetStatus(v node.Status) *NodeUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableStatus(v *node.Status) *NodeUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSSHUser sets the "ssh_user" field.
func (_u *NodeUpdateOne) SetSSHUser(v string) *NodeUpdateOne {
	_u.mutation.SetSSHUser(v)
	return _u
}

// SetNillableSSHUser sets the "ssh_user" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableSSHUser(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetSSHUser(*v)
	}
	return _u
}

// ClearSSHUser clears the value of the "ssh_user" field.
func (_u *NodeUpdateOne) ClearSSHUser() *NodeUpdateOne {
	_u.mutation.ClearSSHUser()
	return _u
}

// SetSSHPort sets the "ssh_port" field.
func (_u *NodeUpdateOne) SetSSHPort(v int) *NodeUpdateOne {
	_u.mutation.ResetSSHPort()
	_u.mutation.SetSSHPort(v)
	return _u
}

// SetNillableSSHPort sets the "ssh_port" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableSSHPort(v *int) *NodeUpdateOne {
	if v != nil {
		_u.SetSSHPort(*v)
	}
	return _u
}

// AddSSHPort adds value to the "ssh_port" field.
func (_u *NodeUpdateOne) AddSSHPort(v int) *NodeUpdateOne {
	_u.mutation.AddSSHPort(v)
	return _u
}

// SetExtraVars sets the "extra_vars" field.
func (_u *NodeUpdateOne) SetExtraVars(v map[string]interface{}) *NodeUpdateOne {
	_u.mutation.SetExtraVars(v)
	return _u
}

// ClearExtraVars clears the value of the "extra_vars" field.
func (_u *NodeUpdateOne) ClearExtraVars() *NodeUpdateOne {
	_u.mutation.ClearExtraVars()
	return _u
}

// SetClusterID sets the "cluster" edge to the Cluster entity by ID.
func (_u *NodeUpdateOne) SetClusterID(id int) *NodeUpdateOne {
	_u.mutation.SetClusterID(id)
	return _u
}

// SetCluster sets the "cluster" edge to the Cluster entity.
func (_u *NodeUpdateOne) SetCluster(v *Cluster) *NodeUpdateOne {
	return _u.SetClusterID(v.ID)
}

// SetCredentialID sets the "credential" edge to the Credential entity by ID.
func (_u *NodeUpdateOne) SetCredentialID(id int) *NodeUpdateOne {
	_u.mutation.SetCredentialID(id)
	return _u
}

// SetNillableCredentialID sets the "credential" edge to the Credential entity by ID if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableCredentialID(id *int) *NodeUpdateOne {
	if id != nil {
		_u = _u.SetCredentialID(*id)
	}
	return _u
}

// SetCredential sets the "credential" edge to the Credential entity.
func (_u *NodeUpdateOne) SetCredential(v *Credential) *NodeUpdateOne {
	return _u.SetCredentialID(v.ID)
}

// Mutation returns the NodeMutation object of the builder.
func (_u *NodeUpdateOne) Mutation() *NodeMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the Cluster entity.
func (_u *NodeUpdateOne) ClearCluster() *NodeUpdateOne {
	_u.mutation.ClearCluster()
	return _u
}

// ClearCredential clears the "credential" edge to the Credential entity.
func (_u *NodeUpdateOne) ClearCredential() *NodeUpdateOne {
	_u.mutation.ClearCredential()
	return _u
}

// Where appends a list predicates to the NodeUpdate builder.
func (_u *NodeUpdateOne) Where(ps ...predicate.Node) *NodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NodeUpdateOne) Select(field string, fields ...string) *NodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Node entity.
func (_u *NodeUpdateOne) Save(ctx context.Context) (*Node, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeUpdateOne) SaveX(ctx context.Context) *Node {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NodeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := node.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NodeUpdateOne) check() error {
	if v, ok := _u.mutation.Hostname(); ok {
		if err := node.HostnameValidator(v); err != nil {
			return &ValidationError{Name: "hostname", err: fmt.Errorf(`ent: validator failed for field "Node.hostname": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InternalIP(); ok {
		if err := node.InternalIPValidator(v); err != nil {
			return &ValidationError{Name: "internal_ip", err: fmt.Errorf(`ent: validator failed for field "Node.internal_ip": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := node.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Node.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := node.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Node.status": %w`, err)}
		}
	}
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Node.cluster"`)
	}
	return nil
}

func (_u *NodeUpdateOne) sqlSave(ctx context.Context) (_node *Node, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(node.Table, node.Columns, sqlgraph.NewFieldSpec(node.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Node.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, node.FieldID)
		for _, f := range fields {
			if !node.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != node.FieldID {
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
		_spec.SetField(node.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Hostname(); ok {
		_spec.SetField(node.FieldHostname, field.TypeString, value)
	}
	if value, ok := _u.mutation.InternalIP(); ok {
		_spec.SetField(node.FieldInternalIP, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalIP(); ok {
		_spec.SetField(node.FieldExternalIP, field.TypeString, value)
	}
	if _u.mutation.ExternalIPCleared() {
		_spec.ClearField(node.FieldExternalIP, field.TypeString)
	}
	if value, ok := _u.mutation.UseExternalIP(); ok {
		_spec.SetField(node.FieldUseExternalIP, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(node.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(node.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SSHUser(); ok {
		_spec.SetField(node.FieldSSHUser, field.TypeString, value)
	}
	if _u.mutation.SSHUserCleared() {
		_spec.ClearField(node.FieldSSHUser, field.TypeString)
	}
	if value, ok := _u.mutation.SSHPort(); ok {
		_spec.SetField(node.FieldSSHPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSSHPort(); ok {
		_spec.AddField(node.FieldSSHPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtraVars(); ok {
		_spec.SetField(node.FieldExtraVars, field.TypeJSON, value)
	}
	if _u.mutation.ExtraVarsCleared() {
		_spec.ClearField(node.FieldExtraVars, field.TypeJSON)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   node.ClusterTable,
			Columns: []string{node.ClusterColumn},
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
			Table:   node.ClusterTable,
			Columns: []string{node.ClusterColumn},
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
	if _u.mutation.CredentialCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   node.CredentialTable,
			Columns: []string{node.CredentialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(credential.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CredentialIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   node.CredentialTable,
			Columns: []string{node.CredentialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(credential.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Node{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{node.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
