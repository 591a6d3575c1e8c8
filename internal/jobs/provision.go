package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/job"
	"kube-drover.io/drover/ent/node"
	"kube-drover.io/drover/internal/domain"
	"kube-drover.io/drover/internal/pkg/logger"
	"kube-drover.io/drover/internal/provider"
	"kube-drover.io/drover/internal/service"
	"kube-drover.io/drover/internal/usecase"
)

// Playbooks per operation kind. Paths are relative to the configured
// playbook directory.
const (
	playbookInstall     = "install.yml"
	playbookAddNodes    = "add-nodes.yml"
	playbookRemoveNodes = "remove-nodes.yml"
	playbookUninstall   = "uninstall.yml"

	artifactKubeconfig = "kubeconfig"
)

// ProvisionWorker executes install, add_nodes, remove_nodes and uninstall
// jobs by driving the playbook runner.
//
// Execution flow:
//  1. Fetch the job row by ID (claim-check) and skip if already terminal
//  2. Mark the job RUNNING and move target nodes into their transitional state
//  3. Render inventory with decrypted credentials and run the playbook
//  4. Persist node outcomes, re-derive the installation stage, finish the job
//  5. Release the cluster lock, then chain the follow-up stage if one exists
type ProvisionWorker struct {
	river.WorkerDefaults[ProvisionArgs]
	client   *ent.Client
	runner   provider.PlaybookRunner
	creds    credentialRevealer
	clusters *service.ClusterService
	cache    *service.StatusCache
	lock     *usecase.OperationLock
}

// NewProvisionWorker creates a ProvisionWorker with all dependencies.
func NewProvisionWorker(
	client *ent.Client,
	runner provider.PlaybookRunner,
	creds *service.CredentialService,
	clusters *service.ClusterService,
	cache *service.StatusCache,
	lock *usecase.OperationLock,
) *ProvisionWorker {
	return &ProvisionWorker{
		client:   client,
		runner:   runner,
		creds:    creds,
		clusters: clusters,
		cache:    cache,
		lock:     lock,
	}
}

// Work executes one provisioning job.
func (w *ProvisionWorker) Work(ctx context.Context, rj *river.Job[ProvisionArgs]) error {
	jobID := rj.Args.JobID

	row, err := w.client.Job.Query().
		Where(job.IDEQ(jobID)).
		WithCluster(func(q *ent.ClusterQuery) { q.WithCredential() }).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return river.JobCancel(fmt.Errorf("job %d not found", jobID))
		}
		return fmt.Errorf("fetch job %d: %w", jobID, err)
	}
	if row.Status == job.StatusSUCCESS || row.Status == job.StatusFAILED {
		logger.Info("Job already terminal, skipping duplicate execution",
			zap.Int("job_id", jobID),
			zap.String("status", string(row.Status)),
		)
		return nil
	}
	cl := row.Edges.Cluster
	if cl == nil {
		return river.JobCancel(fmt.Errorf("job %d has no cluster", jobID))
	}

	logger.Info("Provisioning job starting",
		zap.Int("job_id", jobID),
		zap.Int("cluster_id", cl.ID),
		zap.String("kind", string(row.Kind)),
		zap.Int("stage", row.SequenceStage),
	)

	startedAt, err := markJobRunning(ctx, w.client, jobID)
	if err != nil {
		return w.failEarly(ctx, row, cl, fmt.Errorf("mark job %d running: %w", jobID, err))
	}
	row.Status = job.StatusRUNNING
	row.StartedAt = &startedAt

	targets, err := w.client.Node.Query().
		Where(node.IDIn(row.NodeIds...)).
		WithCredential().
		All(ctx)
	if err != nil {
		return w.failEarly(ctx, row, cl, fmt.Errorf("fetch target nodes for job %d: %w", jobID, err))
	}

	switch row.Kind {
	case job.KindInstall, job.KindAddNodes:
		err = w.provision(ctx, row, cl, targets)
	case job.KindRemoveNodes:
		err = w.remove(ctx, row, cl, targets)
	case job.KindUninstall:
		err = w.uninstall(ctx, row, cl, targets)
	default:
		return river.JobCancel(fmt.Errorf("job %d has kind %s, which this worker does not handle", jobID, row.Kind))
	}
	return err
}

// provision handles install and add_nodes. The inventory always spans the
// whole live cluster so join playbooks see the control plane; the targets
// of this stage are additionally named in drover_target_hosts.
func (w *ProvisionWorker) provision(ctx context.Context, row *ent.Job, cl *ent.Cluster, targets []*ent.Node) error {
	if err := w.setNodeStatus(ctx, targets, node.StatusINSTALLING); err != nil {
		return err
	}

	playbook := playbookAddNodes
	var artifactFiles []string
	if row.Kind == job.KindInstall {
		playbook = playbookInstall
		artifactFiles = []string{artifactKubeconfig}
	}

	live, err := w.liveNodes(ctx, cl.ID)
	if err != nil {
		return err
	}

	artifacts, runErr := w.runPlaybook(ctx, row, cl, live, playbook, artifactFiles, map[string]any{
		"drover_target_hosts": hostnames(targets),
	})
	if runErr != nil {
		w.finalizeFailure(ctx, row, cl, targets, runErr)
		return runErr
	}

	if err := w.setNodeStatus(ctx, targets, node.StatusACTIVE); err != nil {
		w.finalizeFailure(ctx, row, cl, targets, err)
		return err
	}

	if kubeconfig, ok := artifacts[artifactKubeconfig]; ok && len(kubeconfig) > 0 {
		if err := w.clusters.StoreKubeconfig(ctx, cl.ID, kubeconfig); err != nil {
			logger.Error("Failed to store captured kubeconfig",
				zap.Int("cluster_id", cl.ID),
				zap.Error(err),
			)
		}
	}

	w.finalizeSuccess(ctx, row, cl)
	w.chainFollowup(ctx, row, cl)
	return nil
}

// remove handles remove_nodes: targets drain, then are marked REMOVED on
// success. Their rows stay behind as tombstones.
func (w *ProvisionWorker) remove(ctx context.Context, row *ent.Job, cl *ent.Cluster, targets []*ent.Node) error {
	if err := w.setNodeStatus(ctx, targets, node.StatusDRAINING); err != nil {
		return err
	}

	live, err := w.liveNodes(ctx, cl.ID)
	if err != nil {
		return err
	}

	_, runErr := w.runPlaybook(ctx, row, cl, live, playbookRemoveNodes, nil, map[string]any{
		"drover_remove_hosts": hostnames(targets),
	})
	if runErr != nil {
		w.finalizeFailure(ctx, row, cl, targets, runErr)
		return runErr
	}

	if err := w.setNodeStatus(ctx, targets, node.StatusREMOVED); err != nil {
		w.finalizeFailure(ctx, row, cl, targets, err)
		return err
	}

	w.finalizeSuccess(ctx, row, cl)
	return nil
}

// uninstall tears everything down and forgets the captured kubeconfig.
func (w *ProvisionWorker) uninstall(ctx context.Context, row *ent.Job, cl *ent.Cluster, targets []*ent.Node) error {
	_, runErr := w.runPlaybook(ctx, row, cl, targets, playbookUninstall, nil, nil)
	if runErr != nil {
		w.finalizeFailure(ctx, row, cl, targets, runErr)
		return runErr
	}

	if err := w.setNodeStatus(ctx, targets, node.StatusREMOVED); err != nil {
		w.finalizeFailure(ctx, row, cl, targets, err)
		return err
	}
	if err := w.client.Cluster.UpdateOneID(cl.ID).
		ClearEncryptedKubeconfig().
		Exec(ctx); err != nil {
		logger.Warn("Failed to clear kubeconfig after uninstall",
			zap.Int("cluster_id", cl.ID),
			zap.Error(err),
		)
	}

	w.finalizeSuccess(ctx, row, cl)
	return nil
}

// runPlaybook renders the inventory for the given hosts and executes the
// playbook with the cluster's extra vars plus op-specific ones.
func (w *ProvisionWorker) runPlaybook(
	ctx context.Context,
	row *ent.Job,
	cl *ent.Cluster,
	hosts []*ent.Node,
	playbook string,
	artifactFiles []string,
	opVars map[string]any,
) (map[string][]byte, error) {
	inventory, keys, err := buildInventory(ctx, w.creds, cl, hosts)
	if err != nil {
		return nil, err
	}

	extraVars := make(map[string]any, len(cl.ExtraVars)+len(opVars)+1)
	for k, v := range cl.ExtraVars {
		extraVars[k] = v
	}
	if cl.KubernetesVersion != "" {
		extraVars["rke2_version"] = cl.KubernetesVersion
	}
	for k, v := range opVars {
		extraVars[k] = v
	}

	sink := newOutputSink(w.client, row.ID)
	defer sink.Flush()

	artifacts, err := w.runner.Run(ctx, provider.RunRequest{
		JobID:         row.ID,
		Playbook:      playbook,
		Hosts:         inventory,
		ExtraVars:     extraVars,
		Keys:          keys,
		ArtifactFiles: artifactFiles,
		OnOutput:      sink.Append,
	})
	if err != nil {
		if errors.Is(err, provider.ErrRunCancelled) {
			return nil, fmt.Errorf("operation cancelled: %w", err)
		}
		return nil, err
	}
	return artifacts, nil
}

func (w *ProvisionWorker) finalizeSuccess(ctx context.Context, row *ent.Job, cl *ent.Cluster) {
	finishJob(ctx, w.client, row, job.StatusSUCCESS, nil)

	if err := service.ApplyInstallationStage(ctx, w.client, cl.ID); err != nil {
		logger.Warn("Installation stage update failed", zap.Int("cluster_id", cl.ID), zap.Error(err))
	}
	if w.cache != nil {
		if err := w.cache.Invalidate(ctx, cl.ID); err != nil {
			logger.Warn("Status cache invalidation failed", zap.Int("cluster_id", cl.ID), zap.Error(err))
		}
	}
	if err := w.lock.Release(ctx, cl.ID); err != nil {
		logger.Error("Lock release failed", zap.Int("cluster_id", cl.ID), zap.Error(err))
	}

	logger.Info("Provisioning job completed",
		zap.Int("job_id", row.ID),
		zap.Int("cluster_id", cl.ID),
		zap.String("kind", string(row.Kind)),
	)
}

// failEarly finalizes a job that errored before dispatch. Jobs run with a
// single queue attempt, so an early return without cleanup would leave the
// row RUNNING and the cluster locked until an operator cancels it.
func (w *ProvisionWorker) failEarly(ctx context.Context, row *ent.Job, cl *ent.Cluster, cause error) error {
	w.finalizeFailure(ctx, row, cl, nil, cause)
	return cause
}

// finalizeFailure marks targets and the job FAILED and releases the lock.
// Failed nodes keep their rows so the operation can be retried or the nodes
// removed explicitly.
func (w *ProvisionWorker) finalizeFailure(ctx context.Context, row *ent.Job, cl *ent.Cluster, targets []*ent.Node, cause error) {
	if err := w.setNodeStatus(ctx, targets, node.StatusFAILED); err != nil {
		logger.Error("Failed to mark nodes FAILED", zap.Int("job_id", row.ID), zap.Error(err))
	}
	finishJob(ctx, w.client, row, job.StatusFAILED, cause)

	if err := service.ApplyInstallationStage(ctx, w.client, cl.ID); err != nil {
		logger.Warn("Installation stage update failed", zap.Int("cluster_id", cl.ID), zap.Error(err))
	}
	if w.cache != nil {
		if err := w.cache.Invalidate(ctx, cl.ID); err != nil {
			logger.Warn("Status cache invalidation failed", zap.Int("cluster_id", cl.ID), zap.Error(err))
		}
	}
	if err := w.lock.Release(ctx, cl.ID); err != nil {
		logger.Error("Lock release failed", zap.Int("cluster_id", cl.ID), zap.Error(err))
	}

	if len(row.FollowupNodeIds) > 0 {
		logger.Warn("Stage one failed, follow-up stage will not run",
			zap.Int("job_id", row.ID),
			zap.Ints("followup_node_ids", row.FollowupNodeIds),
		)
	}

	logger.Error("Provisioning job failed",
		zap.Int("job_id", row.ID),
		zap.Int("cluster_id", cl.ID),
		zap.String("kind", string(row.Kind)),
		zap.Error(cause),
	)
}

// chainFollowup starts the deferred worker stage through a fresh atomic
// lock acquisition. The window between release and re-acquire is open by
// design: another operation may legitimately win it, in which case the
// follow-up nodes stay PENDING for a later add_nodes run.
func (w *ProvisionWorker) chainFollowup(ctx context.Context, row *ent.Job, cl *ent.Cluster) {
	if len(row.FollowupNodeIds) == 0 {
		return
	}

	parentID := row.ID
	chainedID, err := w.lock.Begin(ctx, usecase.BeginInput{
		ClusterID:     cl.ID,
		Kind:          domain.OpAddNodes,
		NodeIDs:       row.FollowupNodeIds,
		SequenceStage: row.SequenceStage + 1,
		ParentJobID:   &parentID,
	}, func(jobID int) river.JobArgs {
		return ProvisionArgs{JobID: jobID}
	})
	if err != nil {
		logger.Error("Failed to chain follow-up stage, nodes remain pending",
			zap.Int("parent_job_id", parentID),
			zap.Int("cluster_id", cl.ID),
			zap.Ints("followup_node_ids", row.FollowupNodeIds),
			zap.Error(err),
		)
		return
	}

	logger.Info("Chained follow-up stage",
		zap.Int("parent_job_id", parentID),
		zap.Int("job_id", chainedID),
		zap.Int("cluster_id", cl.ID),
	)
}

func (w *ProvisionWorker) setNodeStatus(ctx context.Context, targets []*ent.Node, status node.Status) error {
	ids := make([]int, len(targets))
	for i, n := range targets {
		ids[i] = n.ID
	}
	if len(ids) == 0 {
		return nil
	}
	if _, err := w.client.Node.Update().
		Where(node.IDIn(ids...)).
		SetStatus(status).
		Save(ctx); err != nil {
		return fmt.Errorf("set %d nodes to %s: %w", len(ids), status, err)
	}
	return nil
}

// liveNodes returns every node of the cluster that is not REMOVED, with
// credentials loaded for inventory rendering.
func (w *ProvisionWorker) liveNodes(ctx context.Context, clusterID int) ([]*ent.Node, error) {
	nodes, err := w.client.Node.Query().
		Where(
			node.HasClusterWith(cluster.IDEQ(clusterID)),
			node.StatusNEQ(node.StatusREMOVED),
		).
		WithCredential().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query live nodes: %w", err)
	}
	return nodes, nil
}

func hostnames(nodes []*ent.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Hostname
	}
	return out
}
