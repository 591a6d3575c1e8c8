package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/node"
	"kube-drover.io/drover/internal/domain"
	"kube-drover.io/drover/internal/pkg/logger"
	"kube-drover.io/drover/internal/pkg/metrics"
)

// ReduceNodeStatus decides the stored status a node should move to given a
// live observation. It is a monotonic reducer: REMOVED and DRAINING are never
// overwritten, and the zero-value return (ok=false) means "leave untouched".
func ReduceNodeStatus(current node.Status, obs domain.NodeObservation) (node.Status, bool) {
	switch current {
	case node.StatusREMOVED, node.StatusDRAINING:
		return current, false
	}

	if obs.Ready {
		if current == node.StatusACTIVE {
			return current, false
		}
		return node.StatusACTIVE, true
	}

	switch current {
	case node.StatusPENDING, node.StatusINSTALLING, node.StatusACTIVE:
		return node.StatusFAILED, true
	}
	return current, false
}

// NodeSync reconciles stored node status from live inspection snapshots.
type NodeSync struct {
	client *ent.Client
}

// NewNodeSync creates a new NodeSync service.
func NewNodeSync(client *ent.Client) *NodeSync {
	return &NodeSync{client: client}
}

// SyncResult summarizes one reconciliation pass.
type SyncResult struct {
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Unmatched int `json:"unmatched"`
}

// Sync applies a snapshot to the cluster's nodes. Nodes absent from the
// snapshot are left untouched (no information is not bad news). Each write
// re-reads the row inside the transaction so a racing provisioning-outcome
// write is never clobbered with stale data.
func (s *NodeSync) Sync(ctx context.Context, clusterID int, snapshot domain.ClusterSnapshot) (SyncResult, error) {
	var result SyncResult

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return result, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	nodes, err := tx.Node.Query().
		Where(node.HasClusterWith(cluster.IDEQ(clusterID))).
		All(ctx)
	if err != nil {
		return result, fmt.Errorf("query cluster nodes: %w", err)
	}

	for _, n := range nodes {
		obs, ok := lookupObservation(snapshot, n)
		if !ok {
			result.Unmatched++
			continue
		}

		next, changed := ReduceNodeStatus(n.Status, obs)
		if !changed {
			result.Unchanged++
			continue
		}

		if err := tx.Node.UpdateOneID(n.ID).SetStatus(next).Exec(ctx); err != nil {
			return result, fmt.Errorf("update node %d status: %w", n.ID, err)
		}
		result.Updated++
		metrics.ReconciliationUpdates.WithLabelValues(string(next)).Inc()

		// Drift between store and inspector is logged, never surfaced.
		logger.Info("Node status reconciled",
			zap.Int("cluster_id", clusterID),
			zap.String("hostname", n.Hostname),
			zap.String("from", string(n.Status)),
			zap.String("to", string(next)),
		)
	}

	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("commit reconciliation: %w", err)
	}
	return result, nil
}

// lookupObservation matches a node row to a snapshot entry by its operational
// address, falling back to hostname for inspectors that report names.
func lookupObservation(snapshot domain.ClusterSnapshot, n *ent.Node) (domain.NodeObservation, bool) {
	addr := n.InternalIP
	if n.UseExternalIP && n.ExternalIP != "" {
		addr = n.ExternalIP
	}
	if obs, ok := snapshot.Nodes[addr]; ok {
		return obs, true
	}
	obs, ok := snapshot.Nodes[n.Hostname]
	return obs, ok
}
