package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/clusterstatuscache"
	"kube-drover.io/drover/internal/domain"
	apperrors "kube-drover.io/drover/internal/pkg/errors"
	"kube-drover.io/drover/internal/pkg/logger"
)

// Inspector collects live state from a running cluster.
type Inspector interface {
	Snapshot(ctx context.Context, kubeconfig []byte) (*domain.ClusterSnapshot, error)
}

// StatusCache serves cluster status from a TTL cache, refreshing from the
// live inspector when stale. Every fresh collection also drives node status
// reconciliation, so reads keep the store honest as a side effect.
type StatusCache struct {
	client    *ent.Client
	clusters  *ClusterService
	inspector Inspector
	sync      *NodeSync
	ttl       time.Duration
}

// NewStatusCache creates a new StatusCache.
func NewStatusCache(client *ent.Client, clusters *ClusterService, inspector Inspector, sync *NodeSync, ttl time.Duration) *StatusCache {
	return &StatusCache{
		client:    client,
		clusters:  clusters,
		inspector: inspector,
		sync:      sync,
		ttl:       ttl,
	}
}

// ClusterStatus is a cached status payload plus its provenance.
type ClusterStatus struct {
	Payload     map[string]any `json:"payload"`
	CollectedAt time.Time      `json:"collected_at"`
	Cached      bool           `json:"cached"`
}

// Get returns the cluster status, serving the cache while it is within TTL.
// force bypasses the TTL and collects immediately.
func (s *StatusCache) Get(ctx context.Context, clusterID int, force bool) (*ClusterStatus, error) {
	row, err := s.client.ClusterStatusCache.Query().
		Where(clusterstatuscache.HasClusterWith(cluster.IDEQ(clusterID))).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query status cache: %w", err)
	}

	if row != nil && !force && time.Since(row.CollectedAt) < s.ttl {
		return &ClusterStatus{Payload: row.Payload, CollectedAt: row.CollectedAt, Cached: true}, nil
	}

	status, err := s.Refresh(ctx, clusterID)
	if err != nil {
		// A stale entry beats an error when the cluster is unreachable.
		if row != nil {
			logger.Warn("Status refresh failed, serving stale cache",
				zap.Int("cluster_id", clusterID),
				zap.Time("collected_at", row.CollectedAt),
				zap.Error(err),
			)
			return &ClusterStatus{Payload: row.Payload, CollectedAt: row.CollectedAt, Cached: true}, nil
		}
		return nil, err
	}
	return status, nil
}

// Refresh collects a fresh snapshot, stores it, and reconciles node status
// and the installation stage from it.
func (s *StatusCache) Refresh(ctx context.Context, clusterID int) (*ClusterStatus, error) {
	kubeconfig, err := s.clusters.Kubeconfig(ctx, clusterID)
	if err != nil {
		if appErr, ok := apperrors.IsAppError(err); ok && appErr.Code == apperrors.CodeValidationFailed {
			return nil, apperrors.New(apperrors.CodeValidationFailed,
				"cluster is not inspectable yet: no kubeconfig stored", 503)
		}
		return nil, err
	}

	snap, err := s.inspector.Snapshot(ctx, kubeconfig)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"failed to inspect cluster", 502)
	}

	payload := map[string]any{
		"nodes":        snap.Nodes,
		"collected_at": snap.CollectedAt,
	}
	if err := s.store(ctx, clusterID, payload, snap.CollectedAt); err != nil {
		return nil, err
	}

	if result, err := s.sync.Sync(ctx, clusterID, *snap); err != nil {
		logger.Warn("Node reconciliation failed after status refresh",
			zap.Int("cluster_id", clusterID),
			zap.Error(err),
		)
	} else if result.Updated > 0 {
		if err := ApplyInstallationStage(ctx, s.client, clusterID); err != nil {
			logger.Warn("Installation stage update failed after reconciliation",
				zap.Int("cluster_id", clusterID),
				zap.Error(err),
			)
		}
	}

	return &ClusterStatus{Payload: payload, CollectedAt: snap.CollectedAt, Cached: false}, nil
}

// Invalidate drops the cached status so the next read collects fresh state.
// Mutating operations call this on completion.
func (s *StatusCache) Invalidate(ctx context.Context, clusterID int) error {
	_, err := s.client.ClusterStatusCache.Delete().
		Where(clusterstatuscache.HasClusterWith(cluster.IDEQ(clusterID))).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("invalidate status cache: %w", err)
	}
	return nil
}

func (s *StatusCache) store(ctx context.Context, clusterID int, payload map[string]any, collectedAt time.Time) error {
	row, err := s.client.ClusterStatusCache.Query().
		Where(clusterstatuscache.HasClusterWith(cluster.IDEQ(clusterID))).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = s.client.ClusterStatusCache.Create().
			SetClusterID(clusterID).
			SetPayload(payload).
			SetCollectedAt(collectedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create status cache: %w", err)
		}
	case err != nil:
		return fmt.Errorf("query status cache: %w", err)
	default:
		if err := s.client.ClusterStatusCache.UpdateOneID(row.ID).
			SetPayload(payload).
			SetCollectedAt(collectedAt).
			Exec(ctx); err != nil {
			return fmt.Errorf("update status cache: %w", err)
		}
	}
	return nil
}
