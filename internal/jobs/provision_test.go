package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/credential"
	"kube-drover.io/drover/ent/job"
	"kube-drover.io/drover/ent/node"
	"kube-drover.io/drover/internal/domain"
	"kube-drover.io/drover/internal/pkg/secrets"
	"kube-drover.io/drover/internal/provider"
	"kube-drover.io/drover/internal/service"
	"kube-drover.io/drover/internal/testutil"
	"kube-drover.io/drover/internal/usecase"
)

// workerHarness wires a ProvisionWorker against a real Postgres schema with
// the queue tables migrated, so Begin can enqueue and chain for real. No
// queue consumer runs; Work is invoked directly.
type workerHarness struct {
	client *ent.Client
	runner *provider.MockRunner
	worker *ProvisionWorker
	lock   *usecase.OperationLock
}

func newWorkerHarness(t *testing.T, prefix string) *workerHarness {
	t.Helper()
	ctx := context.Background()

	client, pool := testutil.OpenSharedPostgres(t, prefix)

	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		t.Fatalf("new river migrator: %v", err)
	}
	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil); err != nil {
		t.Fatalf("migrate river tables: %v", err)
	}

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{})
	if err != nil {
		t.Fatalf("new river client: %v", err)
	}
	lock := usecase.NewOperationLock(pool, riverClient)

	key, err := secrets.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	box, err := secrets.New(key)
	if err != nil {
		t.Fatalf("new box: %v", err)
	}

	clusters := service.NewClusterService(client, box)
	runner := provider.NewMockRunner()

	w := NewProvisionWorker(client, runner, service.NewCredentialService(client, box), clusters, nil, lock)
	// The seeded credential is not sealed by this box; resolve it with a
	// canned revealer instead of real decryption.
	w.creds = staticRevealer{}

	return &workerHarness{
		client: client,
		runner: runner,
		worker: w,
		lock:   lock,
	}
}

// seedStagedAdd creates a bootstrapped cluster plus one pending master and
// one pending worker, ready for a two-stage add.
func (h *workerHarness) seedStagedAdd(t *testing.T) (cl *ent.Cluster, master, worker *ent.Node) {
	t.Helper()
	ctx := context.Background()

	cred := h.client.Credential.Create().
		SetName("ssh").
		SetKind(credential.KindSSHPassword).
		SetUsername("root").
		SetEncryptedSecret([]byte("sealed")).
		SaveX(ctx)

	cl = h.client.Cluster.Create().
		SetName("staged").
		SetKind(cluster.KindNew).
		SetKubernetesVersion("v1.31.4+rke2r1").
		SetCredential(cred).
		SaveX(ctx)

	h.client.Node.Create().
		SetHostname("cp-0").
		SetInternalIP("10.0.0.1").
		SetRole(node.RoleInitialMaster).
		SetStatus(node.StatusACTIVE).
		SetCluster(cl).
		SaveX(ctx)
	master = h.client.Node.Create().
		SetHostname("cp-1").
		SetInternalIP("10.0.0.2").
		SetRole(node.RoleMaster).
		SetCluster(cl).
		SaveX(ctx)
	worker = h.client.Node.Create().
		SetHostname("w-0").
		SetInternalIP("10.0.1.1").
		SetRole(node.RoleWorker).
		SetCluster(cl).
		SaveX(ctx)
	return cl, master, worker
}

type staticRevealer struct{}

func (staticRevealer) Reveal(_ context.Context, _ int) (*service.RevealedCredential, error) {
	return &service.RevealedCredential{
		Kind:     credential.KindSSHPassword,
		Username: "root",
		Secret:   "pw",
	}, nil
}

func (h *workerHarness) run(t *testing.T, jobID int) error {
	t.Helper()
	return h.worker.Work(context.Background(), &river.Job[ProvisionArgs]{Args: ProvisionArgs{JobID: jobID}})
}

func (h *workerHarness) begin(t *testing.T, cl *ent.Cluster, nodeIDs, followupIDs []int) int {
	t.Helper()
	jobID, err := h.lock.Begin(context.Background(), usecase.BeginInput{
		ClusterID:       cl.ID,
		Kind:            domain.OpAddNodes,
		NodeIDs:         nodeIDs,
		FollowupNodeIDs: followupIDs,
	}, func(id int) river.JobArgs {
		return ProvisionArgs{JobID: id}
	})
	if err != nil {
		t.Fatalf("begin operation: %v", err)
	}
	return jobID
}

func TestProvisionWorker_TwoStageAddChainsFollowup(t *testing.T) {
	h := newWorkerHarness(t, "w_chain")
	ctx := context.Background()

	cl, master, workerNode := h.seedStagedAdd(t)
	jobID := h.begin(t, cl, []int{master.ID}, []int{workerNode.ID})

	if err := h.run(t, jobID); err != nil {
		t.Fatalf("stage one: %v", err)
	}

	if got := h.client.Job.GetX(ctx, jobID); got.Status != job.StatusSUCCESS {
		t.Fatalf("stage one status = %s, want SUCCESS", got.Status)
	}
	if got := h.client.Node.GetX(ctx, master.ID); got.Status != node.StatusACTIVE {
		t.Errorf("master status = %s, want ACTIVE", got.Status)
	}

	chained, err := h.client.Job.Query().
		Where(job.ParentJobIDEQ(jobID)).
		Only(ctx)
	if err != nil {
		t.Fatalf("chained job: %v", err)
	}
	if chained.SequenceStage != 2 || chained.Status != job.StatusPENDING {
		t.Fatalf("chained = stage %d status %s, want stage 2 PENDING", chained.SequenceStage, chained.Status)
	}
	if len(chained.NodeIds) != 1 || chained.NodeIds[0] != workerNode.ID {
		t.Fatalf("chained node ids = %v, want [%d]", chained.NodeIds, workerNode.ID)
	}

	// The follow-up re-acquired the lock through the normal path.
	reloaded := h.client.Cluster.GetX(ctx, cl.ID)
	if reloaded.OperationStatus != cluster.OperationStatusRunning {
		t.Fatalf("OperationStatus = %s, want running", reloaded.OperationStatus)
	}
	if reloaded.CurrentJobID == nil || *reloaded.CurrentJobID != chained.ID {
		t.Fatalf("CurrentJobID = %v, want %d", reloaded.CurrentJobID, chained.ID)
	}

	if err := h.run(t, chained.ID); err != nil {
		t.Fatalf("stage two: %v", err)
	}
	if got := h.client.Node.GetX(ctx, workerNode.ID); got.Status != node.StatusACTIVE {
		t.Errorf("worker status = %s, want ACTIVE", got.Status)
	}
	reloaded = h.client.Cluster.GetX(ctx, cl.ID)
	if reloaded.OperationStatus != cluster.OperationStatusIdle {
		t.Errorf("OperationStatus after stage two = %s, want idle", reloaded.OperationStatus)
	}
	if runs := h.runner.Runs(); len(runs) != 2 {
		t.Errorf("playbook runs = %d, want 2", len(runs))
	}
}

func TestProvisionWorker_StageFailureLeavesFollowupUnscheduled(t *testing.T) {
	h := newWorkerHarness(t, "w_fail")
	ctx := context.Background()

	cl, master, workerNode := h.seedStagedAdd(t)
	jobID := h.begin(t, cl, []int{master.ID}, []int{workerNode.ID})

	h.runner.RunFunc = func(_ context.Context, _ provider.RunRequest) (map[string][]byte, error) {
		return nil, errors.New("PLAY RECAP failed=1")
	}

	if err := h.run(t, jobID); err == nil {
		t.Fatal("stage one should fail")
	}

	got := h.client.Job.GetX(ctx, jobID)
	if got.Status != job.StatusFAILED || got.Error == "" {
		t.Fatalf("job = status %s error %q, want FAILED with cause", got.Status, got.Error)
	}
	if n := h.client.Node.GetX(ctx, master.ID); n.Status != node.StatusFAILED {
		t.Errorf("master status = %s, want FAILED", n.Status)
	}
	if n := h.client.Node.GetX(ctx, workerNode.ID); n.Status != node.StatusPENDING {
		t.Errorf("worker status = %s, want PENDING", n.Status)
	}

	if count := h.client.Job.Query().Where(job.ParentJobIDEQ(jobID)).CountX(ctx); count != 0 {
		t.Errorf("chained jobs = %d, want none after failure", count)
	}
	reloaded := h.client.Cluster.GetX(ctx, cl.ID)
	if reloaded.OperationStatus != cluster.OperationStatusIdle {
		t.Errorf("OperationStatus = %s, want idle (lock released)", reloaded.OperationStatus)
	}
}

func TestProvisionWorker_PreDispatchFailureReleasesLock(t *testing.T) {
	h := newWorkerHarness(t, "w_early")
	ctx := context.Background()

	cl, master, workerNode := h.seedStagedAdd(t)
	jobID := h.begin(t, cl, []int{master.ID}, []int{workerNode.ID})

	row := h.client.Job.GetX(ctx, jobID)
	if err := h.worker.failEarly(ctx, row, cl, errors.New("boom")); err == nil {
		t.Fatal("failEarly must return its cause")
	}

	if got := h.client.Job.GetX(ctx, jobID); got.Status != job.StatusFAILED {
		t.Fatalf("job status = %s, want FAILED", got.Status)
	}
	reloaded := h.client.Cluster.GetX(ctx, cl.ID)
	if reloaded.OperationStatus != cluster.OperationStatusIdle {
		t.Errorf("OperationStatus = %s, want idle", reloaded.OperationStatus)
	}
	if reloaded.CurrentJobID != nil {
		t.Errorf("CurrentJobID = %v, want nil", reloaded.CurrentJobID)
	}
}
