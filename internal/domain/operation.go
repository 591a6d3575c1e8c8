// Package domain provides domain models for Drover.
//
// Service and usecase methods exchange these types, not Ent or K8s types.
package domain

import "fmt"

// OperationKind is the closed set of mutating cluster operations plus the
// read-mostly upgrade check. Every switch over it must be exhaustive.
type OperationKind string

const (
	OpInstall      OperationKind = "install"
	OpAddNodes     OperationKind = "add_nodes"
	OpRemoveNodes  OperationKind = "remove_nodes"
	OpUninstall    OperationKind = "uninstall"
	OpUpgradeCheck OperationKind = "upgrade_check"
)

// ParseOperationKind converts a wire string into an OperationKind.
func ParseOperationKind(s string) (OperationKind, error) {
	switch OperationKind(s) {
	case OpInstall, OpAddNodes, OpRemoveNodes, OpUninstall, OpUpgradeCheck:
		return OperationKind(s), nil
	default:
		return "", fmt.Errorf("unknown operation kind %q", s)
	}
}

// String implements fmt.Stringer.
func (k OperationKind) String() string { return string(k) }

// NodeRole identifies a node's control-plane participation.
type NodeRole string

const (
	RoleInitialMaster NodeRole = "initial_master"
	RoleMaster        NodeRole = "master"
	RoleWorker        NodeRole = "worker"
)

// IsMaster reports whether the role participates in the control plane.
func (r NodeRole) IsMaster() bool {
	return r == RoleInitialMaster || r == RoleMaster
}

// ParseNodeRole converts a wire string into a NodeRole.
func ParseNodeRole(s string) (NodeRole, error) {
	switch NodeRole(s) {
	case RoleInitialMaster, RoleMaster, RoleWorker:
		return NodeRole(s), nil
	default:
		return "", fmt.Errorf("unknown node role %q", s)
	}
}

// NodeSpec describes a node requested for addition to a cluster.
type NodeSpec struct {
	Hostname      string         `json:"hostname"`
	InternalIP    string         `json:"internal_ip"`
	ExternalIP    string         `json:"external_ip,omitempty"`
	UseExternalIP bool           `json:"use_external_ip,omitempty"`
	Role          NodeRole       `json:"role"`
	SSHUser       string         `json:"ssh_user,omitempty"`
	SSHPort       int            `json:"ssh_port,omitempty"`
	CredentialID  *int           `json:"credential_id,omitempty"`
	ExtraVars     map[string]any `json:"extra_vars,omitempty"`
}

// Address returns the IP used for remote operations against the node.
func (n NodeSpec) Address() string {
	if n.UseExternalIP && n.ExternalIP != "" {
		return n.ExternalIP
	}
	return n.InternalIP
}

// GuardrailResult is the verdict of one pre-operation safety check.
type GuardrailResult struct {
	Valid  bool
	Rule   string
	Reason string
}

// Pass returns an accepting result for the named rule.
func Pass(rule string) GuardrailResult {
	return GuardrailResult{Valid: true, Rule: rule}
}

// Reject returns a rejecting result with a reason naming the violation.
func Reject(rule, reason string) GuardrailResult {
	return GuardrailResult{Valid: false, Rule: rule, Reason: reason}
}

// Advisory is a non-gating observation emitted alongside guardrail checks.
// Advisories are logged and reported but never block an operation.
type Advisory struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}
