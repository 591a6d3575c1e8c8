package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/ent/job"
	apperrors "kube-drover.io/drover/internal/pkg/errors"
	"kube-drover.io/drover/internal/pkg/logger"
	"kube-drover.io/drover/internal/provider"
)

// JobCanceller stops in-flight operations.
type JobCanceller struct {
	client *ent.Client
	runner provider.PlaybookRunner
	lock   *OperationLock
}

// NewJobCanceller creates a new JobCanceller.
func NewJobCanceller(client *ent.Client, runner provider.PlaybookRunner, lock *OperationLock) *JobCanceller {
	return &JobCanceller{client: client, runner: runner, lock: lock}
}

// Cancel aborts a pending or running job. For a run in progress the runner
// is signalled and the worker finalizes the job itself; a job that never
// reached a worker is failed directly and its lock released. Workers skip
// terminal rows, so a late dequeue of a cancelled job is a no-op.
func (c *JobCanceller) Cancel(ctx context.Context, jobID int) error {
	row, err := c.client.Job.Query().
		Where(job.IDEQ(jobID)).
		WithCluster().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.ErrJobNotFound(jobID)
		}
		return fmt.Errorf("fetch job %d: %w", jobID, err)
	}

	switch row.Status {
	case job.StatusSUCCESS, job.StatusFAILED:
		return apperrors.Conflict(apperrors.CodeJobNotCancelled,
			fmt.Sprintf("job is already %s", row.Status))
	case job.StatusRUNNING:
		if c.runner.Cancel(jobID) {
			logger.Info("Cancellation signalled to running job", zap.Int("job_id", jobID))
			return nil
		}
		// Marked RUNNING but not executing here: likely a crashed worker.
		// Fail it directly so the cluster does not stay locked forever.
	}

	if err := c.client.Job.UpdateOneID(jobID).
		SetStatus(job.StatusFAILED).
		SetError("cancelled before execution").
		SetCompletedAt(time.Now().UTC()).
		Exec(ctx); err != nil {
		return fmt.Errorf("mark job %d cancelled: %w", jobID, err)
	}

	if cl := row.Edges.Cluster; cl != nil {
		if err := c.lock.Release(ctx, cl.ID); err != nil {
			return err
		}
	}

	logger.Info("Job cancelled", zap.Int("job_id", jobID), zap.String("was", string(row.Status)))
	return nil
}
