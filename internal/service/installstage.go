package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/node"
	"kube-drover.io/drover/internal/pkg/logger"
)

// DeriveInstallationStage computes a cluster's convergence stage from its
// nodes. The function is deterministic and idempotent; it is the only
// legitimate writer of Cluster.installation_stage (via ApplyInstallationStage).
//
// Over non-removed nodes:
//
//	no ACTIVE master            → pending
//	ACTIVE master, no workers   → control_plane_ready
//	workers exist, none ACTIVE  → workers_installing
//	all masters+workers ACTIVE  → active
//	otherwise                   → workers_ready
func DeriveInstallationStage(nodes []*ent.Node) cluster.InstallationStage {
	var (
		masters, activeMasters int
		workers, activeWorkers int
	)
	for _, n := range LiveNodes(nodes) {
		switch n.Role {
		case node.RoleInitialMaster, node.RoleMaster:
			masters++
			if n.Status == node.StatusACTIVE {
				activeMasters++
			}
		case node.RoleWorker:
			workers++
			if n.Status == node.StatusACTIVE {
				activeWorkers++
			}
		}
	}

	switch {
	case activeMasters == 0:
		return cluster.InstallationStagePending
	case workers == 0:
		return cluster.InstallationStageControlPlaneReady
	case activeWorkers == 0:
		return cluster.InstallationStageWorkersInstalling
	case activeMasters == masters && activeWorkers == workers:
		return cluster.InstallationStageActive
	default:
		return cluster.InstallationStageWorkersReady
	}
}

// ApplyInstallationStage re-derives and persists a cluster's installation
// stage. Runs opportunistically after every successful mutating job; writing
// an unchanged stage is a no-op.
func ApplyInstallationStage(ctx context.Context, client *ent.Client, clusterID int) error {
	nodes, err := client.Node.Query().
		Where(node.HasClusterWith(cluster.IDEQ(clusterID))).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query cluster nodes: %w", err)
	}

	stage := DeriveInstallationStage(nodes)

	cl, err := client.Cluster.Get(ctx, clusterID)
	if err != nil {
		return fmt.Errorf("query cluster: %w", err)
	}
	if cl.InstallationStage == stage {
		return nil
	}

	if err := client.Cluster.UpdateOneID(clusterID).
		SetInstallationStage(stage).
		Exec(ctx); err != nil {
		return fmt.Errorf("update installation stage: %w", err)
	}

	logger.Info("Installation stage updated",
		zap.Int("cluster_id", clusterID),
		zap.String("from", string(cl.InstallationStage)),
		zap.String("to", string(stage)),
	)
	return nil
}
