package jobs

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/ent/job"
	"kube-drover.io/drover/internal/pkg/logger"
	"kube-drover.io/drover/internal/readiness"
	"kube-drover.io/drover/internal/service"
	"kube-drover.io/drover/internal/usecase"
)

// UpgradeCheckWorker collects upgrade-readiness diagnostics and attaches
// the analyzer's verdict to the job row. The operation never mutates
// cluster state; it holds the lock only so its findings describe a cluster
// nothing else is changing underneath.
type UpgradeCheckWorker struct {
	river.WorkerDefaults[UpgradeCheckArgs]
	client    *ent.Client
	clusters  *service.ClusterService
	collector *readiness.Collector
	analyzer  readiness.Analyzer
	lock      *usecase.OperationLock
}

// NewUpgradeCheckWorker creates an UpgradeCheckWorker. analyzer may be nil
// when no analyzer endpoint is configured; the report then carries the raw
// bundle without a verdict.
func NewUpgradeCheckWorker(
	client *ent.Client,
	clusters *service.ClusterService,
	collector *readiness.Collector,
	analyzer readiness.Analyzer,
	lock *usecase.OperationLock,
) *UpgradeCheckWorker {
	return &UpgradeCheckWorker{
		client:    client,
		clusters:  clusters,
		collector: collector,
		analyzer:  analyzer,
		lock:      lock,
	}
}

// Work executes one upgrade check.
func (w *UpgradeCheckWorker) Work(ctx context.Context, rj *river.Job[UpgradeCheckArgs]) error {
	jobID := rj.Args.JobID

	row, err := w.client.Job.Query().
		Where(job.IDEQ(jobID)).
		WithCluster().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return river.JobCancel(fmt.Errorf("job %d not found", jobID))
		}
		return fmt.Errorf("fetch job %d: %w", jobID, err)
	}
	if row.Status == job.StatusSUCCESS || row.Status == job.StatusFAILED {
		return nil
	}
	cl := row.Edges.Cluster
	if cl == nil {
		return river.JobCancel(fmt.Errorf("job %d has no cluster", jobID))
	}

	fail := func(cause error) error {
		finishJob(ctx, w.client, row, job.StatusFAILED, cause)
		if err := w.lock.Release(ctx, cl.ID); err != nil {
			logger.Error("Lock release failed", zap.Int("cluster_id", cl.ID), zap.Error(err))
		}
		return cause
	}

	startedAt, err := markJobRunning(ctx, w.client, jobID)
	if err != nil {
		return fail(fmt.Errorf("mark job %d running: %w", jobID, err))
	}
	row.StartedAt = &startedAt

	kubeconfig, err := w.clusters.Kubeconfig(ctx, cl.ID)
	if err != nil {
		return fail(fmt.Errorf("cluster %d is not inspectable: %w", cl.ID, err))
	}

	bundle, err := w.collector.Collect(ctx, cl.ID, kubeconfig, rj.Args.TargetVersion)
	if err != nil {
		return fail(err)
	}

	report, err := structToMap(bundle)
	if err != nil {
		return fail(err)
	}

	// The verdict is strictly additive: an unreachable or confused analyzer
	// degrades to a report without one, never to a failed check.
	if w.analyzer != nil {
		verdict, err := w.analyzer.Analyze(ctx, bundle)
		if err != nil {
			logger.Warn("Readiness analyzer unavailable, report ships without verdict",
				zap.Int("job_id", jobID),
				zap.Error(err),
			)
			report["analyzer_error"] = err.Error()
		} else if verdictMap, err := structToMap(verdict); err == nil {
			report["verdict"] = verdictMap
		}
	}

	if err := w.client.Job.UpdateOneID(jobID).
		SetReadinessReport(report).
		Exec(ctx); err != nil {
		return fail(fmt.Errorf("persist readiness report: %w", err))
	}

	finishJob(ctx, w.client, row, job.StatusSUCCESS, nil)
	if err := w.lock.Release(ctx, cl.ID); err != nil {
		logger.Error("Lock release failed", zap.Int("cluster_id", cl.ID), zap.Error(err))
	}

	logger.Info("Upgrade check completed",
		zap.Int("job_id", jobID),
		zap.Int("cluster_id", cl.ID),
		zap.String("target_version", rj.Args.TargetVersion),
	)
	return nil
}
