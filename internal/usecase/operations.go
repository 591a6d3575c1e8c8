package usecase

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/node"
	"kube-drover.io/drover/internal/domain"
	apperrors "kube-drover.io/drover/internal/pkg/errors"
	"kube-drover.io/drover/internal/pkg/logger"
	"kube-drover.io/drover/internal/pkg/metrics"
	"kube-drover.io/drover/internal/pkg/worker"
	"kube-drover.io/drover/internal/service"
)

// OperationArgs builds River args per operation kind. Bound at the
// composition root so this package stays independent of the worker package.
type OperationArgs struct {
	Provision    ArgsFactory
	UpgradeCheck func(jobID int, targetVersion string) river.JobArgs
}

// Operations starts cluster operations: guardrails first, then the atomic
// lock acquisition, with advisory probes on the side.
type Operations struct {
	client     *ent.Client
	lock       *OperationLock
	guardrails *service.Guardrails
	prober     *service.Prober
	pool       *worker.Pool
	args       OperationArgs
}

// NewOperations creates a new Operations usecase. pool bounds the probe
// fan-out; probes run inline when it is nil.
func NewOperations(client *ent.Client, lock *OperationLock, guardrails *service.Guardrails, prober *service.Prober, pool *worker.Pool, args OperationArgs) *Operations {
	return &Operations{
		client:     client,
		lock:       lock,
		guardrails: guardrails,
		prober:     prober,
		pool:       pool,
		args:       args,
	}
}

// OperationStarted reports a successfully started operation. Advisories are
// informational probe results and never affect the outcome.
type OperationStarted struct {
	JobID      int               `json:"job_id"`
	Kind       domain.OperationKind `json:"kind"`
	Advisories []domain.Advisory `json:"advisories,omitempty"`
}

// AddNodes validates the node set, persists the new nodes as PENDING and
// starts the staged add operation. Masters install in stage one; workers
// are deferred to a follow-up stage so they join a settled control plane.
func (o *Operations) AddNodes(ctx context.Context, clusterID int, specs []domain.NodeSpec) (*OperationStarted, error) {
	if len(specs) == 0 {
		return nil, apperrors.BadRequest(apperrors.CodeNodeSetEmpty, "no nodes to add")
	}

	res, err := o.guardrails.EvaluateAddNodes(ctx, clusterID, specs)
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		return nil, guardrailError(res)
	}

	tx, err := o.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	created, err := service.CreateNodes(ctx, tx, clusterID, specs)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit node create: %w", err)
	}

	first, followup := stageNodes(service.PlanAddNodes(specs), created)
	in := BeginInput{
		ClusterID:       clusterID,
		Kind:            domain.OpAddNodes,
		NodeIDs:         nodeIDs(first),
		FollowupNodeIDs: nodeIDs(followup),
		SequenceStage:   1,
	}

	jobID, err := o.lock.Begin(ctx, in, o.args.Provision)
	if err != nil {
		// The lock was not taken, so the staged rows would never be
		// picked up. Remove them again.
		o.discardNodes(ctx, created)
		return nil, err
	}

	return &OperationStarted{
		JobID:      jobID,
		Kind:       domain.OpAddNodes,
		Advisories: o.probeSpecs(ctx, specs),
	}, nil
}

// RemoveNodes validates quorum safety and starts the removal operation.
// confirmed acknowledges master removal.
func (o *Operations) RemoveNodes(ctx context.Context, clusterID int, removalIDs []int, confirmed bool) (*OperationStarted, error) {
	res, _, err := o.guardrails.EvaluateRemoveNodes(ctx, clusterID, removalIDs, confirmed)
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		return nil, guardrailError(res)
	}

	jobID, err := o.lock.Begin(ctx, BeginInput{
		ClusterID: clusterID,
		Kind:      domain.OpRemoveNodes,
		NodeIDs:   removalIDs,
	}, o.args.Provision)
	if err != nil {
		return nil, err
	}
	return &OperationStarted{JobID: jobID, Kind: domain.OpRemoveNodes}, nil
}

// Install starts the initial installation over the cluster's staged nodes.
// Retrying a failed install is allowed: FAILED nodes are picked up again.
func (o *Operations) Install(ctx context.Context, clusterID int) (*OperationStarted, error) {
	cl, err := o.client.Cluster.Query().
		Where(cluster.IDEQ(clusterID)).
		WithNodes().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrClusterNotFound(clusterID)
		}
		return nil, fmt.Errorf("query cluster: %w", err)
	}
	if cl.Kind != cluster.KindNew {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed,
			"install only applies to clusters created from a node set")
	}

	var targets []*ent.Node
	for _, n := range cl.Edges.Nodes {
		switch n.Status {
		case node.StatusPENDING, node.StatusFAILED:
			targets = append(targets, n)
		}
	}
	if len(targets) == 0 {
		return nil, apperrors.BadRequest(apperrors.CodeNodeSetEmpty,
			"no pending or failed nodes to install")
	}

	jobID, err := o.lock.Begin(ctx, BeginInput{
		ClusterID: clusterID,
		Kind:      domain.OpInstall,
		NodeIDs:   nodeIDs(targets),
	}, o.args.Provision)
	if err != nil {
		return nil, err
	}

	return &OperationStarted{
		JobID:      jobID,
		Kind:       domain.OpInstall,
		Advisories: o.probeNodes(ctx, targets),
	}, nil
}

// Uninstall tears down the cluster's nodes. The caller must echo the exact
// cluster name to confirm.
func (o *Operations) Uninstall(ctx context.Context, clusterID int, confirmName string) (*OperationStarted, error) {
	cl, err := o.client.Cluster.Get(ctx, clusterID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrClusterNotFound(clusterID)
		}
		return nil, fmt.Errorf("query cluster: %w", err)
	}
	if confirmName != cl.Name {
		return nil, apperrors.UnprocessableEntity(apperrors.CodeConfirmationRequired,
			"uninstall requires the exact cluster name as confirmation")
	}

	live, err := o.client.Node.Query().
		Where(
			node.HasClusterWith(cluster.IDEQ(clusterID)),
			node.StatusNEQ(node.StatusREMOVED),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cluster nodes: %w", err)
	}
	if len(live) == 0 {
		return nil, apperrors.BadRequest(apperrors.CodeNodeSetEmpty, "cluster has no nodes to uninstall")
	}

	jobID, err := o.lock.Begin(ctx, BeginInput{
		ClusterID: clusterID,
		Kind:      domain.OpUninstall,
		NodeIDs:   nodeIDs(live),
	}, o.args.Provision)
	if err != nil {
		return nil, err
	}
	return &OperationStarted{JobID: jobID, Kind: domain.OpUninstall}, nil
}

// UpgradeCheck starts a readiness assessment for the target version. It is
// a read-only operation but still takes the lock so its findings describe a
// cluster nothing else is mutating.
func (o *Operations) UpgradeCheck(ctx context.Context, clusterID int, targetVersion string) (*OperationStarted, error) {
	if targetVersion == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "target version is required")
	}
	if _, err := o.client.Cluster.Get(ctx, clusterID); err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrClusterNotFound(clusterID)
		}
		return nil, fmt.Errorf("query cluster: %w", err)
	}

	jobID, err := o.lock.Begin(ctx, BeginInput{
		ClusterID: clusterID,
		Kind:      domain.OpUpgradeCheck,
	}, func(jobID int) river.JobArgs {
		return o.args.UpgradeCheck(jobID, targetVersion)
	})
	if err != nil {
		return nil, err
	}
	return &OperationStarted{JobID: jobID, Kind: domain.OpUpgradeCheck}, nil
}

// probeSpecs dials the supervisor port of each incoming node concurrently.
func (o *Operations) probeSpecs(ctx context.Context, specs []domain.NodeSpec) []domain.Advisory {
	if o.prober == nil {
		return nil
	}
	addrs := make([]string, len(specs))
	for i, spec := range specs {
		addrs[i] = spec.Address()
	}
	return o.probe(ctx, addrs)
}

func (o *Operations) probeNodes(ctx context.Context, nodes []*ent.Node) []domain.Advisory {
	if o.prober == nil {
		return nil
	}
	addrs := make([]string, len(nodes))
	for i, n := range nodes {
		addrs[i] = n.InternalIP
		if n.UseExternalIP && n.ExternalIP != "" {
			addrs[i] = n.ExternalIP
		}
	}
	return o.probe(ctx, addrs)
}

// probe dials every address through the general worker pool so a large node
// list cannot fan out unbounded. Probes are advisory: when the context is
// cancelled mid-flight, whatever has come back is returned.
func (o *Operations) probe(ctx context.Context, addrs []string) []domain.Advisory {
	type probed struct {
		i   int
		adv *domain.Advisory
	}
	ch := make(chan probed, len(addrs))
	for i, addr := range addrs {
		task := func(ctx context.Context) {
			ch <- probed{i: i, adv: o.prober.ProbeSupervisor(ctx, addr)}
		}
		if o.pool == nil || o.pool.Submit(ctx, task) != nil {
			task(ctx)
		}
	}

	results := make([]*domain.Advisory, len(addrs))
collect:
	for range addrs {
		select {
		case p := <-ch:
			results[p.i] = p.adv
		case <-ctx.Done():
			break collect
		}
	}

	var advisories []domain.Advisory
	for _, r := range results {
		if r != nil {
			advisories = append(advisories, *r)
		}
	}
	return advisories
}

// discardNodes removes node rows staged for an operation that never started.
func (o *Operations) discardNodes(ctx context.Context, nodes []*ent.Node) {
	ids := nodeIDs(nodes)
	if _, err := o.client.Node.Delete().Where(node.IDIn(ids...)).Exec(ctx); err != nil {
		logger.Warn("Failed to discard staged nodes", zap.Ints("node_ids", ids), zap.Error(err))
	}
}

func guardrailError(res domain.GuardrailResult) error {
	metrics.GuardrailRejections.WithLabelValues(res.Rule).Inc()
	return apperrors.ErrGuardrailRejected(codeForRule(res.Rule), res.Rule, res.Reason)
}

func codeForRule(rule string) string {
	switch rule {
	case service.RuleBootstrapPrerequisite:
		return apperrors.CodeBootstrapNotReady
	case service.RuleSafeMasterRemoval:
		return apperrors.CodeUnsafeMasterRemoval
	case service.RuleRemovalConfirmation:
		return apperrors.CodeConfirmationRequired
	case service.RuleNodeUniqueness:
		return apperrors.CodeNodeDuplicate
	case service.RuleInitialMaster:
		return apperrors.CodeInitialMasterRule
	default:
		return apperrors.CodeGuardrailRejected
	}
}

func nodeIDs(nodes []*ent.Node) []int {
	if len(nodes) == 0 {
		return nil
	}
	ids := make([]int, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}

// stageNodes maps the sequencer's staged plan back onto the persisted rows:
// with two stages, master-role rows go first and workers follow; with one
// stage, everything runs together.
func stageNodes(plan domain.SequencePlan, created []*ent.Node) (first, followup []*ent.Node) {
	if len(plan.Stages) < 2 {
		return created, nil
	}
	for _, n := range created {
		if n.Role == node.RoleWorker {
			followup = append(followup, n)
		} else {
			first = append(first, n)
		}
	}
	return first, followup
}
