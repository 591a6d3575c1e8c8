package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/internal/pkg/logger"
	"kube-drover.io/drover/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func seedCluster(t *testing.T, client *ent.Client, name string) *ent.Cluster {
	t.Helper()
	cl, err := client.Cluster.Create().
		SetName(name).
		SetKind(cluster.KindNew).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed cluster: %v", err)
	}
	return cl
}

func TestAcquireLock_ExactlyOneWinner(t *testing.T) {
	client, pool := testutil.OpenSharedPostgres(t, "lock_winner")
	cl := seedCluster(t, client, "lock-winner")
	ctx := context.Background()

	const contenders = 10
	var wg sync.WaitGroup
	wins := make(chan int, contenders)

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(jobID int) {
			defer wg.Done()
			tag, err := pool.Exec(ctx, acquireLockSQL,
				string(cluster.OperationStatusRunning), jobID, time.Now().UTC(), "add_nodes",
				cl.ID, string(cluster.OperationStatusIdle),
			)
			if err != nil {
				t.Errorf("acquire: %v", err)
				return
			}
			if tag.RowsAffected() == 1 {
				wins <- jobID
			}
		}(i + 1)
	}
	wg.Wait()
	close(wins)

	var winners []int
	for id := range wins {
		winners = append(winners, id)
	}
	if len(winners) != 1 {
		t.Fatalf("lock winners = %v, want exactly one", winners)
	}

	got, err := client.Cluster.Get(ctx, cl.ID)
	if err != nil {
		t.Fatalf("reload cluster: %v", err)
	}
	if got.OperationStatus != cluster.OperationStatusRunning {
		t.Errorf("OperationStatus = %s, want running", got.OperationStatus)
	}
	if got.CurrentJobID == nil || *got.CurrentJobID != winners[0] {
		t.Errorf("CurrentJobID = %v, want %d", got.CurrentJobID, winners[0])
	}
}

func TestReleaseLock_Idempotent(t *testing.T) {
	client, pool := testutil.OpenSharedPostgres(t, "lock_release")
	cl := seedCluster(t, client, "lock-release")
	ctx := context.Background()

	tag, err := pool.Exec(ctx, acquireLockSQL,
		string(cluster.OperationStatusRunning), 7, time.Now().UTC(), "install",
		cl.ID, string(cluster.OperationStatusIdle),
	)
	if err != nil || tag.RowsAffected() != 1 {
		t.Fatalf("acquire: affected=%d err=%v", tag.RowsAffected(), err)
	}

	lock := &OperationLock{pool: pool}
	for i := 0; i < 3; i++ {
		if err := lock.Release(ctx, cl.ID); err != nil {
			t.Fatalf("release #%d: %v", i+1, err)
		}
	}

	got, err := client.Cluster.Get(ctx, cl.ID)
	if err != nil {
		t.Fatalf("reload cluster: %v", err)
	}
	if got.OperationStatus != cluster.OperationStatusIdle {
		t.Errorf("OperationStatus = %s, want idle", got.OperationStatus)
	}
	if got.CurrentJobID != nil || got.OperationLockedBy != nil || got.OperationStartedAt != nil {
		t.Errorf("lock fields not cleared: job=%v by=%v at=%v",
			got.CurrentJobID, got.OperationLockedBy, got.OperationStartedAt)
	}

	// Released cluster is acquirable again.
	tag, err = pool.Exec(ctx, acquireLockSQL,
		string(cluster.OperationStatusRunning), 8, time.Now().UTC(), "remove_nodes",
		cl.ID, string(cluster.OperationStatusIdle),
	)
	if err != nil || tag.RowsAffected() != 1 {
		t.Fatalf("re-acquire after release: affected=%d err=%v", tag.RowsAffected(), err)
	}
}

func TestBegin_Uninitialized(t *testing.T) {
	lock := &OperationLock{}
	if _, err := lock.Begin(context.Background(), BeginInput{ClusterID: 1}, nil); err == nil {
		t.Fatal("Begin() on zero-value lock expected error")
	}
}
