// Package usecase provides application use cases that span services,
// the database and the job queue.
//
// Operation begin must be atomic: the job row, the cluster lock acquisition
// and the River enqueue happen in a single pgx transaction, so a crash can
// never leave a locked cluster without a queued job or vice versa.
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/job"
	"kube-drover.io/drover/internal/domain"
	apperrors "kube-drover.io/drover/internal/pkg/errors"
	"kube-drover.io/drover/internal/pkg/metrics"
)

// SQL is written against the ent-generated table and column names so schema
// changes surface as compile errors here, not runtime ones.
var (
	insertJobSQL = fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, '', '', $7, $7, $8)
		RETURNING %s`,
		job.Table,
		job.FieldKind, job.FieldStatus,
		job.FieldNodeIds, job.FieldFollowupNodeIds,
		job.FieldSequenceStage, job.FieldParentJobID,
		job.FieldOutput, job.FieldError,
		job.FieldCreatedAt, job.FieldUpdatedAt,
		job.ClusterColumn,
		job.FieldID,
	)

	acquireLockSQL = fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $3
		WHERE %s = $5 AND %s = $6`,
		cluster.Table,
		cluster.FieldOperationStatus, cluster.FieldCurrentJobID,
		cluster.FieldOperationStartedAt, cluster.FieldOperationLockedBy,
		cluster.FieldUpdatedAt,
		cluster.FieldID, cluster.FieldOperationStatus,
	)

	releaseLockSQL = fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = NULL, %s = NULL, %s = NULL, %s = $2
		WHERE %s = $3`,
		cluster.Table,
		cluster.FieldOperationStatus, cluster.FieldCurrentJobID,
		cluster.FieldOperationStartedAt, cluster.FieldOperationLockedBy,
		cluster.FieldUpdatedAt,
		cluster.FieldID,
	)

	lockHolderSQL = fmt.Sprintf(`
		SELECT %s, %s FROM %s WHERE %s = $1`,
		cluster.FieldOperationLockedBy, cluster.FieldCurrentJobID,
		cluster.Table, cluster.FieldID,
	)
)

// ArgsFactory builds the River job args for a freshly inserted job row.
// The job ID is only known inside the transaction, hence the indirection.
type ArgsFactory func(jobID int) river.JobArgs

// OperationLock acquires and releases the per-cluster operation lock.
// The lock lives in the clusters row itself, so it survives process
// restarts and is visible to every replica through the database.
type OperationLock struct {
	pool        *pgxpool.Pool
	riverClient *river.Client[pgx.Tx]
}

// NewOperationLock creates a new OperationLock.
func NewOperationLock(pool *pgxpool.Pool, riverClient *river.Client[pgx.Tx]) *OperationLock {
	return &OperationLock{pool: pool, riverClient: riverClient}
}

// AttachRiver binds the queue client after worker registration. The workers
// need the lock before the River client can exist, hence the two-phase setup.
func (l *OperationLock) AttachRiver(riverClient *river.Client[pgx.Tx]) {
	l.riverClient = riverClient
}

// BeginInput describes the operation to start.
type BeginInput struct {
	ClusterID       int
	Kind            domain.OperationKind
	NodeIDs         []int
	FollowupNodeIDs []int
	SequenceStage   int
	ParentJobID     *int
}

// Begin atomically inserts the job row, takes the cluster lock and enqueues
// the worker job. When another operation already holds the lock the whole
// transaction rolls back and ErrClusterBusy identifies the holder.
func (l *OperationLock) Begin(ctx context.Context, in BeginInput, args ArgsFactory) (int, error) {
	if l.pool == nil || l.riverClient == nil {
		return 0, fmt.Errorf("operation lock is not initialized")
	}
	if in.SequenceStage == 0 {
		in.SequenceStage = 1
	}

	nodeIDs, err := json.Marshal(orEmpty(in.NodeIDs))
	if err != nil {
		return 0, fmt.Errorf("encode node ids: %w", err)
	}
	followupIDs, err := json.Marshal(orEmpty(in.FollowupNodeIDs))
	if err != nil {
		return 0, fmt.Errorf("encode followup node ids: %w", err)
	}

	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin operation tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now().UTC()

	var jobID int
	if err := tx.QueryRow(ctx, insertJobSQL,
		string(in.Kind), string(job.StatusPENDING),
		nodeIDs, followupIDs,
		in.SequenceStage, in.ParentJobID,
		now, in.ClusterID,
	).Scan(&jobID); err != nil {
		return 0, fmt.Errorf("insert job for cluster %d: %w", in.ClusterID, err)
	}

	tag, err := tx.Exec(ctx, acquireLockSQL,
		string(cluster.OperationStatusRunning), jobID, now, string(in.Kind),
		in.ClusterID, string(cluster.OperationStatusIdle),
	)
	if err != nil {
		return 0, fmt.Errorf("acquire lock on cluster %d: %w", in.ClusterID, err)
	}
	if tag.RowsAffected() == 0 {
		metrics.LockConflicts.Inc()
		heldBy, holderJobID := l.holder(ctx, in.ClusterID)
		return 0, apperrors.ErrClusterBusy(heldBy, holderJobID)
	}

	if _, err := l.riverClient.InsertTx(ctx, tx, args(jobID), nil); err != nil {
		return 0, fmt.Errorf("enqueue job %d: %w", jobID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit operation tx: %w", err)
	}

	metrics.OperationsStarted.WithLabelValues(string(in.Kind)).Inc()
	return jobID, nil
}

// Release returns the cluster to idle. It is unconditional and idempotent:
// releasing an already idle cluster is a no-op, so crash recovery and
// defensive double releases are safe.
func (l *OperationLock) Release(ctx context.Context, clusterID int) error {
	_, err := l.pool.Exec(ctx, releaseLockSQL,
		string(cluster.OperationStatusIdle), time.Now().UTC(), clusterID,
	)
	if err != nil {
		return fmt.Errorf("release lock on cluster %d: %w", clusterID, err)
	}
	return nil
}

// holder reads the current lock holder for conflict reporting. Best effort:
// the holder may have changed or released by the time we read it.
func (l *OperationLock) holder(ctx context.Context, clusterID int) (string, int) {
	var heldBy *string
	var jobID *int
	if err := l.pool.QueryRow(ctx, lockHolderSQL, clusterID).Scan(&heldBy, &jobID); err != nil {
		return "", 0
	}
	out := ""
	if heldBy != nil {
		out = *heldBy
	}
	id := 0
	if jobID != nil {
		id = *jobID
	}
	return out, id
}

func orEmpty(ids []int) []int {
	if ids == nil {
		return []int{}
	}
	return ids
}
