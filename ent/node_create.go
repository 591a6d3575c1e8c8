// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/credential"
	"kube-drover.io/drover/ent/node"
)

// NodeCreate is the builder for creating a Node entity.
type NodeCreate struct {
	config
	mutation *NodeMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *NodeCreate) SetCreatedAt(v time.Time) *NodeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NodeCreate) SetNillableCreatedAt(v *time.Time) *NodeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NodeCreate) SetUpdatedAt(v time.Time) *NodeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NodeCreate) SetNillableUpdatedAt(v *time.Time) *NodeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetHostname sets the "hostname" field.
func (_c *NodeCreate) SetHostname(v string) *NodeCreate {
	_c.mutation.SetHostname(v)
	return _c
}

// SetInternalIP sets the "internal_ip" field.
func (_c *NodeCreate) SetInternalIP(v string) *NodeCreate {
	_c.mutation.SetInternalIP(v)
	return _c
}

// SetExternalIP sets the "external_ip" field.
func (_c *NodeCreate) SetExternalIP(v string) *NodeCreate {
	_c.mutation.SetExternalIP(v)
	return _c
}

// SetNillableExternalIP sets the "external_ip" field if the given value is not nil.
func (_c *NodeCreate) SetNillableExternalIP(v *string) *NodeCreate {
	if v != nil {
		_c.SetExternalIP(*v)
	}
	return _c
}

// SetUseExternalIP sets the "use_external_ip" field.
func (_c *NodeCreate) SetUseExternalIP(v bool) *NodeCreate {
	_c.mutation.SetUseExternalIP(v)
	return _c
}

// SetNillableUseExternalIP sets the "use_external_ip" field if the given value is not nil.
func (_c *NodeCreate) SetNillableUseExternalIP(v *bool) *NodeCreate {
	if v != nil {
		_c.SetUseExternalIP(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *NodeCreate) SetRole(v node.Role) *NodeCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *NodeCreate) SetStatus(v node.Status) *NodeCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *NodeCreate) SetNillableStatus(v *node.Status) *NodeCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSSHUser sets the "ssh_user" field.
func (_c *NodeCreate) SetSSHUser(v string) *NodeCreate {
	_c.mutation.SetSSHUser(v)
	return _c
}

// SetNillableSSHUser sets the "ssh_user" field if the given value is not nil.
func (_c *NodeCreate) SetNillableSSHUser(v *string) *NodeCreate {
	if v != nil {
		_c.SetSSHUser(*v)
	}
	return _c
}

// SetSSHPort sets the "ssh_port" field.
func (_c *NodeCreate) SetSSHPort(v int) *NodeCreate {
	_c.mutation.SetSSHPort(v)
	return _c
}

// SetNillableSSHPort sets the "ssh_port" field if the given value is not nil.
func (_c *NodeCreate) SetNillableSSHPort(v *int) *NodeCreate {
	if v != nil {
		_c.SetSSHPort(*v)
	}
	return _c
}

// SetExtraVars sets the "extra_vars" field.
func (_c *NodeCreate) SetExtraVars(v map[string]interface{}) *NodeCreate {
	_c.mutation.SetExtraVars(v)
	return _c
}

// SetClusterID sets the "cluster" edge to the Cluster entity by ID.
func (_c *NodeCreate) SetClusterID(id int) *NodeCreate {
	_c.mutation.SetClusterID(id)
	return _c
}

// SetCluster sets the "cluster" edge to the Cluster entity.
func (_c *NodeCreate) SetCluster(v *Cluster) *NodeCreate {
	return _c.SetClusterID(v.ID)
}

// SetCredentialID sets the "credential" edge to the Credential entity by ID.
func (_c *NodeCreate) SetCredentialID(id int) *NodeCreate {
	_c.mutation.SetCredentialID(id)
	return _c
}

// SetNillableCredentialID sets the "credential" edge to the Credential entity by ID if the given value is not nil.
func (_c *NodeCreate) SetNillableCredentialID(id *int) *NodeCreate {
	if id != nil {
		_c = _c.SetCredentialID(*id)
	}
	return _c
}

// SetCredential sets the "credential" edge to the Credential entity.
func (_c *NodeCreate) SetCredential(v *Credential) *NodeCreate {
	return _c.SetCredentialID(v.ID)
}

// Mutation returns the NodeMutation object of the builder.
func (_c *NodeCreate) Mutation() *NodeMutation {
	return _c.mutation
}

// Save creates the Node in the database.
func (_c *NodeCreate) Save(ctx context.Context) (*Node, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NodeCreate) SaveX(ctx context.Context) *Node {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NodeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := node.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := node.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.UseExternalIP(); !ok {
		v := node.DefaultUseExternalIP
		_c.mutation.SetUseExternalIP(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := node.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SSHUser(); !ok {
		v := node.DefaultSSHUser
		_c.mutation.SetSSHUser(v)
	}
	if _, ok := _c.mutation.SSHPort(); !ok {
		v := node.DefaultSSHPort
		_c.mutation.SetSSHPort(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NodeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Node.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Node.updated_at"`)}
	}
	if _, ok := _c.mutation.Hostname(); !ok {
		return &ValidationError{Name: "hostname", err: errors.New(`ent: missing required field "Node.hostname"`)}
	}
	if v, ok := _c.mutation.Hostname(); ok {
		if err := node.HostnameValidator(v); err != nil {
			return &ValidationError{Name: "hostname", err: fmt.Errorf(`ent: validator failed for field "Node.hostname": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InternalIP(); !ok {
		return &ValidationError{Name: "internal_ip", err: errors.New(`ent: missing required field "Node.internal_ip"`)}
	}
	if v, ok := _c.mutation.InternalIP(); ok {
		if err := node.InternalIPValidator(v); err != nil {
			return &ValidationError{Name: "internal_ip", err: fmt.Errorf(`ent: validator failed for field "Node.internal_ip": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UseExternalIP(); !ok {
		return &ValidationError{Name: "use_external_ip", err: errors.New(`ent: missing required field "Node.use_external_ip"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Node.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := node.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Node.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Node.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := node.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Node.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SSHPort(); !ok {
		return &ValidationError{Name: "ssh_port", err: errors.New(`ent: missing required field "Node.ssh_port"`)}
	}
	if len(_c.mutation.ClusterIDs()) == 0 {
		return &ValidationError{Name: "cluster", err: errors.New(`ent: missing required edge "Node.cluster"`)}
	}
	return nil
}

func (_c *NodeCreate) sqlSave(ctx context.Context) (*Node, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NodeCreate) createSpec() (*Node, *sqlgraph.CreateSpec) {
	var (
		_node = &Node{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(node.Table, sqlgraph.NewFieldSpec(node.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(node.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(node.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Hostname(); ok {
		_spec.SetField(node.FieldHostname, field.TypeString, value)
		_node.Hostname = value
	}
	if value, ok := _c.mutation.InternalIP(); ok {
		_spec.SetField(node.FieldInternalIP, field.TypeString, value)
		_node.InternalIP = value
	}
	if value, ok := _c.mutation.ExternalIP(); ok {
		_spec.SetField(node.FieldExternalIP, field.TypeString, value)
		_node.ExternalIP = value
	}
	if value, ok := _c.mutation.UseExternalIP(); ok {
		_spec.SetField(node.FieldUseExternalIP, field.TypeBool, value)
		_node.UseExternalIP = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(node.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(node.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SSHUser(); ok {
		_spec.SetField(node.FieldSSHUser, field.TypeString, value)
		_node.SSHUser = value
	}
	if value, ok := _c.mutation.SSHPort(); ok {
		_spec.SetField(node.FieldSSHPort, field.TypeInt, value)
		_node.SSHPort = value
	}
	if value, ok := _c.mutation.ExtraVars(); ok {
		_spec.SetField(node.FieldExtraVars, field.TypeJSON, value)
		_node.ExtraVars = value
	}
	if nodes := _c.mutation.ClusterIDs(); len(nodes) > 0 {
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
		_node.cluster_nodes = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CredentialIDs(); len(nodes) > 0 {
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
		_node.credential_nodes = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// NodeCreateBulk is the builder for creating many Node entities in bulk.
type NodeCreateBulk struct {
	config
	err      error
	builders []*NodeCreate
}

// Save creates the Node entities in the database.
func (_c *NodeCreateBulk) Save(ctx context.Context) ([]*Node, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Node, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NodeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *NodeCreateBulk) SaveX(ctx context.Context) []*Node {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
