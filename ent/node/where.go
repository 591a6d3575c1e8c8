// Code generated by ent, DO NOT EDIT.

package node

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"kube-drover.io/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Node {
	return predicate.Node(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Node {
	return predicate.Node(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Node {
	return predicate.Node(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Node {
	return predicate.Node(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldUpdatedAt, v))
}

// Hostname applies equality check predicate on the "hostname" field. It's identical to HostnameEQ.
func Hostname(v string) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldHostname, v))
}

// InternalIP applies equality check predicate on the "internal_ip" field. It's identical to InternalIPEQ.
func InternalIP(v string) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldInternalIP, v))
}

// ExternalIP applies equality check predicate on the "external_ip" field. It's identical to ExternalIPEQ.
func ExternalIP(v string) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldExternalIP, v))
}

// UseExternalIP applies equality check predicate on the "use_external_ip" field. It's identical to UseExternalIPEQ.
func UseExternalIP(v bool) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldUseExternalIP, v))
}

// SSHUser applies equality check predicate on the "ssh_user" field. It's identical to SSHUserEQ.
func SSHUser(v string) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldSSHUser, v))
}

// SSHPort applies equality check predicate on the "ssh_port" field. It's identical to SSHPortEQ.
func SSHPort(v int) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldSSHPort, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Node {
	return predicate.Node(sql.FieldLTE(FieldUpdatedAt, v))
}

// HostnameEQ applies the EQ predicate on the "hostname" field.
func HostnameEQ(v string) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldHostname, v))
}

// HostnameNEQ applies the NEQ predicate on the "hostname" field.
func HostnameNEQ(v string) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldHostname, v))
}

// HostnameIn applies the In predicate on the "hostname" field.
func HostnameIn(vs ...string) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldHostname, vs...))
}

// HostnameNotIn applies the NotIn predicate on the "hostname" field.
func HostnameNotIn(vs ...string) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldHostname, vs...))
}

// HostnameGT applies the GT predicate on the "hostname" field.
func HostnameGT(v string) predicate.Node {
	return predicate.Node(sql.FieldGT(FieldHostname, v))
}

// HostnameGTE applies the GTE predicate on the "hostname" field.
func HostnameGTE(v string) predicate.Node {
	return predicate.Node(sql.FieldGTE(FieldHostname, v))
}

// HostnameLT applies the LT predicate on the "hostname" field.
func HostnameLT(v string) predicate.Node {
	return predicate.Node(sql.FieldLT(FieldHostname, v))
}

// HostnameLTE applies the LTE predicate on the "hostname" field.
func HostnameLTE(v string) predicate.Node {
	return predicate.Node(sql.FieldLTE(FieldHostname, v))
}

// HostnameContains applies the Contains predicate on the "hostname" field.
func HostnameContains(v string) predicate.Node {
	return predicate.Node(sql.FieldContains(FieldHostname, v))
}

// HostnameHasPrefix applies the HasPrefix predicate on the "hostname" field.
func HostnameHasPrefix(v string) predicate.Node {
	return predicate.Node(sql.FieldHasPrefix(FieldHostname, v))
}

// HostnameHasSuffix applies the HasSuffix predicate on the "hostname" field.
func HostnameHasSuffix(v string) predicate.Node {
	return predicate.Node(sql.FieldHasSuffix(FieldHostname, v))
}

// HostnameEqualFold applies the EqualFold predicate on the "hostname" field.
func HostnameEqualFold(v string) predicate.Node {
	return predicate.Node(sql.FieldEqualFold(FieldHostname, v))
}

// HostnameContainsFold applies the ContainsFold predicate on the "hostname" field.
func HostnameContainsFold(v string) predicate.Node {
	return predicate.Node(sql.FieldContainsFold(FieldHostname, v))
}

// InternalIPEQ applies the EQ predicate on the "internal_ip" field.
func InternalIPEQ(v string) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldInternalIP, v))
}

// InternalIPNEQ applies the NEQ predicate on the "internal_ip" field.
func InternalIPNEQ(v string) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldInternalIP, v))
}

// InternalIPIn applies the In predicate on the "internal_ip" field.
func InternalIPIn(vs ...string) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldInternalIP, vs...))
}

// InternalIPNotIn applies the NotIn predicate on the "internal_ip" field.
func InternalIPNotIn(vs ...string) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldInternalIP, vs...))
}

// InternalIPGT applies the GT predicate on the "internal_ip" field.
func InternalIPGT(v string) predicate.Node {
	return predicate.Node(sql.FieldGT(FieldInternalIP, v))
}

// InternalIPGTE applies the GTE predicate on the "internal_ip" field.
func InternalIPGTE(v string) predicate.Node {
	return predicate.Node(sql.FieldGTE(FieldInternalIP, v))
}

// InternalIPLT applies the LT predicate on the "internal_ip" field.
func InternalIPLT(v string) predicate.Node {
	return predicate.Node(sql.FieldLT(FieldInternalIP, v))
}

// InternalIPLTE applies the LTE predicate on the "internal_ip" field.
func InternalIPLTE(v string) predicate.Node {
	return predicate.Node(sql.FieldLTE(FieldInternalIP, v))
}

// InternalIPContains applies the Contains predicate on the "internal_ip" field.
func InternalIPContains(v string) predicate.Node {
	return predicate.Node(sql.FieldContains(FieldInternalIP, v))
}

// InternalIPHasPrefix applies the HasPrefix predicate on the "internal_ip" field.
func InternalIPHasPrefix(v string) predicate.Node {
	return predicate.Node(sql.FieldHasPrefix(FieldInternalIP, v))
}

// InternalIPHasSuffix applies the HasSuffix predicate on the "internal_ip" field.
func InternalIPHasSuffix(v string) predicate.Node {
	return predicate.Node(sql.FieldHasSuffix(FieldInternalIP, v))
}

// InternalIPEqualFold applies the EqualFold predicate on the "internal_ip" field.
func InternalIPEqualFold(v string) predicate.Node {
	return predicate.Node(sql.FieldEqualFold(FieldInternalIP, v))
}

// InternalIPContainsFold applies the ContainsFold predicate on the "internal_ip" field.
func InternalIPContainsFold(v string) predicate.Node {
	return predicate.Node(sql.FieldContainsFold(FieldInternalIP, v))
}

// ExternalIPEQ applies the EQ predicate on the "external_ip" field.
func ExternalIPEQ(v string) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldExternalIP, v))
}

// ExternalIPNEQ applies the NEQ predicate on the "external_ip" field.
func ExternalIPNEQ(v string) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldExternalIP, v))
}

// ExternalIPIn applies the In predicate on the "external_ip" field.
func ExternalIPIn(vs ...string) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldExternalIP, vs...))
}

// ExternalIPNotIn applies the NotIn predicate on the "external_ip" field.
func ExternalIPNotIn(vs ...string) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldExternalIP, vs...))
}

// ExternalIPGT applies the GT predicate on the "external_ip" field.
func ExternalIPGT(v string) predicate.Node {
	return predicate.Node(sql.FieldGT(FieldExternalIP, v))
}

// ExternalIPGTE applies the GTE predicate on the "external_ip" field.
func ExternalIPGTE(v string) predicate.Node {
	return predicate.Node(sql.FieldGTE(FieldExternalIP, v))
}

// ExternalIPLT applies the LT predicate on the "external_ip" field.
func ExternalIPLT(v string) predicate.Node {
	return predicate.Node(sql.FieldLT(FieldExternalIP, v))
}

// ExternalIPLTE applies the LTE predicate on the "external_ip" field.
func ExternalIPLTE(v string) predicate.Node {
	return predicate.Node(sql.FieldLTE(FieldExternalIP, v))
}

// ExternalIPContains applies the Contains predicate on the "external_ip" field.
func ExternalIPContains(v string) predicate.Node {
	return predicate.Node(sql.FieldContains(FieldExternalIP, v))
}

// ExternalIPHasPrefix applies the HasPrefix predicate on the "external_ip" field.
func ExternalIPHasPrefix(v string) predicate.Node {
	return predicate.Node(sql.FieldHasPrefix(FieldExternalIP, v))
}

// ExternalIPHasSuffix applies the HasSuffix predicate on the "external_ip" field.
func ExternalIPHasSuffix(v string) predicate.Node {
	return predicate.Node(sql.FieldHasSuffix(FieldExternalIP, v))
}

// ExternalIPIsNil applies the IsNil predicate on the "external_ip" field.
func ExternalIPIsNil() predicate.Node {
	return predicate.Node(sql.FieldIsNull(FieldExternalIP))
}

// ExternalIPNotNil applies the NotNil predicate on the "external_ip" field.
func ExternalIPNotNil() predicate.Node {
	return predicate.Node(sql.FieldNotNull(FieldExternalIP))
}

// ExternalIPEqualFold applies the EqualFold predicate on the "external_ip" field.
func ExternalIPEqualFold(v string) predicate.Node {
	return predicate.Node(sql.FieldEqualFold(FieldExternalIP, v))
}

// ExternalIPContainsFold applies the ContainsFold predicate on the "external_ip" field.
func ExternalIPContainsFold(v string) predicate.Node {
	return predicate.Node(sql.FieldContainsFold(FieldExternalIP, v))
}

// UseExternalIPEQ applies the EQ predicate on the "use_external_ip" field.
func UseExternalIPEQ(v bool) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldUseExternalIP, v))
}

// UseExternalIPNEQ applies the NEQ predicate on the "use_external_ip" field.
func UseExternalIPNEQ(v bool) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldUseExternalIP, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldRole, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldStatus, vs...))
}

// SSHUserEQ applies the EQ predicate on the "ssh_user" field.
func SSHUserEQ(v string) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldSSHUser, v))
}

// SSHUserNEQ applies the NEQ predicate on the "ssh_user" field.
func SSHUserNEQ(v string) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldSSHUser, v))
}

// SSHUserIn applies the In predicate on the "ssh_user" field.
func SSHUserIn(vs ...string) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldSSHUser, vs...))
}

// SSHUserNotIn applies the NotIn predicate on the "ssh_user" field.
func SSHUserNotIn(vs ...string) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldSSHUser, vs...))
}

// SSHUserGT applies the GT predicate on the "ssh_user" field.
func SSHUserGT(v string) predicate.Node {
	return predicate.Node(sql.FieldGT(FieldSSHUser, v))
}

// SSHUserGTE applies the GTE predicate on the "ssh_user" field.
func SSHUserGTE(v string) predicate.Node {
	return predicate.Node(sql.FieldGTE(FieldSSHUser, v))
}

// SSHUserLT applies the LT predicate on the "ssh_user" field.
func SSHUserLT(v string) predicate.Node {
	return predicate.Node(sql.FieldLT(FieldSSHUser, v))
}

// SSHUserLTE applies the LTE predicate on the "ssh_user" field.
func SSHUserLTE(v string) predicate.Node {
	return predicate.Node(sql.FieldLTE(FieldSSHUser, v))
}

// SSHUserContains applies the Contains predicate on the "ssh_user" field.
func SSHUserContains(v string) predicate.Node {
	return predicate.Node(sql.FieldContains(FieldSSHUser, v))
}

// SSHUserHasPrefix applies the HasPrefix predicate on the "ssh_user" field.
func SSHUserHasPrefix(v string) predicate.Node {
	return predicate.Node(sql.FieldHasPrefix(FieldSSHUser, v))
}

// SSHUserHasSuffix applies the HasSuffix predicate on the "ssh_user" field.
func SSHUserHasSuffix(v string) predicate.Node {
	return predicate.Node(sql.FieldHasSuffix(FieldSSHUser, v))
}

// SSHUserIsNil applies the IsNil predicate on the "ssh_user" field.
func SSHUserIsNil() predicate.Node {
	return predicate.Node(sql.FieldIsNull(FieldSSHUser))
}

// SSHUserNotNil applies the NotNil predicate on the "ssh_user" field.
func SSHUserNotNil() predicate.Node {
	return predicate.Node(sql.FieldNotNull(FieldSSHUser))
}

// SSHUserEqualFold applies the EqualFold predicate on the "ssh_user" field.
func SSHUserEqualFold(v string) predicate.Node {
	return predicate.Node(sql.FieldEqualFold(FieldSSHUser, v))
}

// SSHUserContainsFold applies the ContainsFold predicate on the "ssh_user" field.
func SSHUserContainsFold(v string) predicate.Node {
	return predicate.Node(sql.FieldContainsFold(FieldSSHUser, v))
}

// SSHPortEQ applies the EQ predicate on the "ssh_port" field.
func SSHPortEQ(v int) predicate.Node {
	return predicate.Node(sql.FieldEQ(FieldSSHPort, v))
}

// SSHPortNEQ applies the NEQ predicate on the "ssh_port" field.
func SSHPortNEQ(v int) predicate.Node {
	return predicate.Node(sql.FieldNEQ(FieldSSHPort, v))
}

// SSHPortIn applies the In predicate on the "ssh_port" field.
func SSHPortIn(vs ...int) predicate.Node {
	return predicate.Node(sql.FieldIn(FieldSSHPort, vs...))
}

// SSHPortNotIn applies the NotIn predicate on the "ssh_port" field.
func SSHPortNotIn(vs ...int) predicate.Node {
	return predicate.Node(sql.FieldNotIn(FieldSSHPort, vs...))
}

// SSHPortGT applies the GT predicate on the "ssh_port" field.
func SSHPortGT(v int) predicate.Node {
	return predicate.Node(sql.FieldGT(FieldSSHPort, v))
}

// SSHPortGTE applies the GTE predicate on the "ssh_port" field.
func SSHPortGTE(v int) predicate.Node {
	return predicate.Node(sql.FieldGTE(FieldSSHPort, v))
}

// SSHPortLT applies the LT predicate on the "ssh_port" field.
func SSHPortLT(v int) predicate.Node {
	return predicate.Node(sql.FieldLT(FieldSSHPort, v))
}

// SSHPortLTE applies the LTE predicate on the "ssh_port" field.
func SSHPortLTE(v int) predicate.Node {
	return predicate.Node(sql.FieldLTE(FieldSSHPort, v))
}

// ExtraVarsIsNil applies the IsNil predicate on the "extra_vars" field.
func ExtraVarsIsNil() predicate.Node {
	return predicate.Node(sql.FieldIsNull(FieldExtraVars))
}

// ExtraVarsNotNil applies the NotNil predicate on the "extra_vars" field.
func ExtraVarsNotNil() predicate.Node {
	return predicate.Node(sql.FieldNotNull(FieldExtraVars))
}

// HasCluster applies the HasEdge predicate on the "cluster" edge.
func HasCluster() predicate.Node {
	return predicate.Node(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClusterTable, ClusterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClusterWith applies the HasEdge predicate on the "cluster" edge with a given conditions (other predicates).
func HasClusterWith(preds ...predicate.Cluster) predicate.Node {
	return predicate.Node(func(s *sql.Selector) {
		step := newClusterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCredential applies the HasEdge predicate on the "credential" edge.
func HasCredential() predicate.Node {
	return predicate.Node(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CredentialTable, CredentialColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCredentialWith applies the HasEdge predicate on the "credential" edge with a given conditions (other predicates).
func HasCredentialWith(preds ...predicate.Credential) predicate.Node {
	return predicate.Node(func(s *sql.Selector) {
		step := newCredentialStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Node) predicate.Node {
	return predicate.Node(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Node) predicate.Node {
	return predicate.Node(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Node) predicate.Node {
	return predicate.Node(sql.NotPredicates(p))
}
