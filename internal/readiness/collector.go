// Package readiness gathers upgrade-readiness diagnostics and submits them
// to an external analyzer for a verdict. The verdict is advisory: collecting
// it never mutates cluster state, and an unreachable analyzer degrades to a
// bundle without a verdict rather than a failed operation.
package readiness

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"kube-drover.io/drover/internal/domain"
	"kube-drover.io/drover/internal/pkg/logger"
	"kube-drover.io/drover/internal/provider"
)

// Collector assembles readiness bundles from live cluster state.
type Collector struct {
	inspector provider.ClusterInspector
}

// NewCollector creates a new Collector.
func NewCollector(inspector provider.ClusterInspector) *Collector {
	return &Collector{inspector: inspector}
}

// Collect inspects the cluster and builds the diagnostics bundle for the
// given target version. Etcd health is best effort: a probe failure leaves
// the field unset instead of failing the collection.
func (c *Collector) Collect(ctx context.Context, clusterID int, kubeconfig []byte, targetVersion string) (*domain.ReadinessBundle, error) {
	snap, err := c.inspector.Snapshot(ctx, kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("collect cluster snapshot: %w", err)
	}

	bundle := &domain.ReadinessBundle{
		ClusterID:     clusterID,
		TargetVersion: targetVersion,
		Nodes:         snap.Nodes,
		CollectedAt:   time.Now().UTC(),
	}

	healthy, err := c.inspector.EtcdHealthy(ctx, kubeconfig)
	if err != nil {
		logger.Warn("Etcd health probe failed during readiness collection",
			zap.Int("cluster_id", clusterID),
			zap.Error(err),
		)
	} else {
		bundle.EtcdHealthy = &healthy
	}

	return bundle, nil
}
