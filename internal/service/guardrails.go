// Package service implements cluster coordination logic: guardrails, the
// scale sequencer, state derivation, and node reconciliation.
package service

import (
	"context"
	"fmt"
	"strings"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/node"
	"kube-drover.io/drover/internal/domain"
)

// Guardrail rule names, used in rejection reasons and metrics labels.
const (
	RuleBootstrapPrerequisite = "bootstrap_prerequisite"
	RuleSafeMasterRemoval     = "safe_master_removal"
	RuleRemovalConfirmation   = "master_removal_confirmation"
	RuleNodeUniqueness        = "node_identity_uniqueness"
	RuleInitialMaster         = "initial_master"
)

// LiveNodes returns the nodes that still count for invariants, i.e. everything
// not yet marked REMOVED.
func LiveNodes(nodes []*ent.Node) []*ent.Node {
	out := make([]*ent.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Status != node.StatusREMOVED {
			out = append(out, n)
		}
	}
	return out
}

// CheckBootstrapPrerequisite verifies that joining nodes have a live control
// plane to join against: an initial master must exist and be ACTIVE.
func CheckBootstrapPrerequisite(nodes []*ent.Node) domain.GuardrailResult {
	for _, n := range LiveNodes(nodes) {
		if n.Role != node.RoleInitialMaster {
			continue
		}
		if n.Status == node.StatusACTIVE {
			return domain.Pass(RuleBootstrapPrerequisite)
		}
		return domain.Reject(RuleBootstrapPrerequisite,
			fmt.Sprintf("initial master %s is not active (status: %s)", n.Hostname, n.Status))
	}
	return domain.Reject(RuleBootstrapPrerequisite, "cluster has no initial master to join against")
}

// CheckMasterRemoval verifies that removing the given nodes keeps the control
// plane alive and quorate. The initial master can never be removed this way:
// it anchors the bootstrap prerequisite, and a cluster whose surviving
// masters lack it could never admit another node. Removing any master
// additionally requires an explicit confirmation from the caller.
func CheckMasterRemoval(nodes []*ent.Node, removal []*ent.Node, confirmed bool) domain.GuardrailResult {
	var masters int
	for _, n := range LiveNodes(nodes) {
		if n.Role == node.RoleInitialMaster || n.Role == node.RoleMaster {
			masters++
		}
	}

	var removedMasters int
	for _, n := range removal {
		if n.Role == node.RoleInitialMaster {
			return domain.Reject(RuleSafeMasterRemoval,
				fmt.Sprintf("node %s is the initial master and cannot be removed; uninstall the cluster instead", n.Hostname))
		}
		if n.Role == node.RoleMaster {
			removedMasters++
		}
	}
	if removedMasters == 0 {
		return domain.Pass(RuleSafeMasterRemoval)
	}

	if !confirmed {
		return domain.Reject(RuleRemovalConfirmation,
			"master removal is irreversible and requires explicit confirmation")
	}

	remaining := masters - removedMasters
	if remaining < 1 {
		return domain.Reject(RuleSafeMasterRemoval,
			fmt.Sprintf("removing %d of %d masters would eliminate the control plane", removedMasters, masters))
	}
	if masters > 1 && remaining == 2 {
		return domain.Reject(RuleSafeMasterRemoval,
			"removal would leave 2 masters; an even two-member control plane cannot maintain quorum")
	}
	if quorum := masters/2 + 1; remaining < quorum {
		return domain.Reject(RuleSafeMasterRemoval,
			fmt.Sprintf("removal would leave %d of %d masters, below the quorum majority of %d", remaining, masters, quorum))
	}
	return domain.Pass(RuleSafeMasterRemoval)
}

// CheckNodeUniqueness rejects an add request that reuses a hostname or
// internal IP held by any live node, or that duplicates identities within
// the request itself.
func CheckNodeUniqueness(nodes []*ent.Node, specs []domain.NodeSpec) domain.GuardrailResult {
	hostnames := make(map[string]struct{})
	ips := make(map[string]struct{})
	for _, n := range LiveNodes(nodes) {
		hostnames[strings.ToLower(n.Hostname)] = struct{}{}
		ips[n.InternalIP] = struct{}{}
	}

	for _, spec := range specs {
		host := strings.ToLower(spec.Hostname)
		if _, dup := hostnames[host]; dup {
			return domain.Reject(RuleNodeUniqueness,
				fmt.Sprintf("hostname %s is already used by a node in this cluster", spec.Hostname))
		}
		if _, dup := ips[spec.InternalIP]; dup {
			return domain.Reject(RuleNodeUniqueness,
				fmt.Sprintf("internal IP %s is already used by a node in this cluster", spec.InternalIP))
		}
		hostnames[host] = struct{}{}
		ips[spec.InternalIP] = struct{}{}
	}
	return domain.Pass(RuleNodeUniqueness)
}

// CheckInitialMasterRule enforces the single-bootstrap-anchor invariant:
// a cluster with live masters has exactly one initial master, and an add
// request may never introduce a second one.
func CheckInitialMasterRule(nodes []*ent.Node, specs []domain.NodeSpec) domain.GuardrailResult {
	var existing int
	for _, n := range LiveNodes(nodes) {
		if n.Role == node.RoleInitialMaster {
			existing++
		}
	}

	var requested int
	for _, spec := range specs {
		if spec.Role == domain.RoleInitialMaster {
			requested++
		}
	}

	if existing+requested > 1 {
		return domain.Reject(RuleInitialMaster,
			fmt.Sprintf("cluster may have exactly one initial master (existing: %d, requested: %d)", existing, requested))
	}
	return domain.Pass(RuleInitialMaster)
}

// Guardrails evaluates pre-operation safety checks against stored state.
//
// All checks run before lock acquisition and before any Job row exists, so a
// rejection leaves zero trace. A later lock conflict, not the guardrails,
// resolves the race between two requests that both passed.
type Guardrails struct {
	client *ent.Client
}

// NewGuardrails creates a new Guardrails evaluator.
func NewGuardrails(client *ent.Client) *Guardrails {
	return &Guardrails{client: client}
}

// clusterNodes loads all nodes of a cluster, including REMOVED ones.
func (g *Guardrails) clusterNodes(ctx context.Context, clusterID int) ([]*ent.Node, error) {
	nodes, err := g.client.Node.Query().
		Where(node.HasClusterWith(cluster.IDEQ(clusterID))).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cluster nodes: %w", err)
	}
	return nodes, nil
}

// EvaluateAddNodes runs the bootstrap prerequisite, the initial-master rule
// and identity uniqueness for an add-nodes request. The first rejection
// wins; an accepted request returns a passing result.
func (g *Guardrails) EvaluateAddNodes(ctx context.Context, clusterID int, specs []domain.NodeSpec) (domain.GuardrailResult, error) {
	nodes, err := g.clusterNodes(ctx, clusterID)
	if err != nil {
		return domain.GuardrailResult{}, err
	}

	if res := CheckBootstrapPrerequisite(nodes); !res.Valid {
		return res, nil
	}
	if res := CheckInitialMasterRule(nodes, specs); !res.Valid {
		return res, nil
	}
	if res := CheckNodeUniqueness(nodes, specs); !res.Valid {
		return res, nil
	}
	return domain.Pass(RuleNodeUniqueness), nil
}

// EvaluateInstall validates the node set of a fresh install: identities must
// be unique within the request and exactly one initial master must exist.
// The bootstrap prerequisite does not apply, nothing exists to join yet.
func (g *Guardrails) EvaluateInstall(ctx context.Context, clusterID int, specs []domain.NodeSpec) (domain.GuardrailResult, error) {
	nodes, err := g.clusterNodes(ctx, clusterID)
	if err != nil {
		return domain.GuardrailResult{}, err
	}

	if res := CheckNodeUniqueness(nil, specs); !res.Valid {
		return res, nil
	}

	var initialMasters int
	for _, n := range LiveNodes(nodes) {
		if n.Role == node.RoleInitialMaster {
			initialMasters++
		}
	}
	for _, spec := range specs {
		if spec.Role == domain.RoleInitialMaster {
			initialMasters++
		}
	}
	if initialMasters != 1 {
		return domain.Reject(RuleInitialMaster,
			fmt.Sprintf("install requires exactly one initial master, found %d", initialMasters)), nil
	}
	return domain.Pass(RuleInitialMaster), nil
}

// EvaluateRemoveNodes checks that every node in the removal set belongs to
// the cluster and that the removal keeps the control plane safe.
func (g *Guardrails) EvaluateRemoveNodes(ctx context.Context, clusterID int, removalIDs []int, confirmed bool) (domain.GuardrailResult, []*ent.Node, error) {
	nodes, err := g.clusterNodes(ctx, clusterID)
	if err != nil {
		return domain.GuardrailResult{}, nil, err
	}

	byID := make(map[int]*ent.Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	removal := make([]*ent.Node, 0, len(removalIDs))
	for _, id := range removalIDs {
		n, ok := byID[id]
		if !ok {
			return domain.Reject(RuleSafeMasterRemoval,
				fmt.Sprintf("node %d does not belong to this cluster", id)), nil, nil
		}
		if n.Status == node.StatusREMOVED {
			return domain.Reject(RuleSafeMasterRemoval,
				fmt.Sprintf("node %s is already removed", n.Hostname)), nil, nil
		}
		removal = append(removal, n)
	}

	if res := CheckMasterRemoval(nodes, removal, confirmed); !res.Valid {
		return res, nil, nil
	}
	return domain.Pass(RuleSafeMasterRemoval), removal, nil
}
