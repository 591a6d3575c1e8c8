package service

import (
	"context"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/clusterstatuscache"
	"kube-drover.io/drover/ent/job"
	"kube-drover.io/drover/ent/node"
	"kube-drover.io/drover/internal/domain"
	apperrors "kube-drover.io/drover/internal/pkg/errors"
	"kube-drover.io/drover/internal/pkg/logger"
	"kube-drover.io/drover/internal/pkg/secrets"
)

var clusterNamePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)

// ClusterService manages cluster and node records.
type ClusterService struct {
	client *ent.Client
	box    *secrets.Box
}

// NewClusterService creates a new ClusterService.
func NewClusterService(client *ent.Client, box *secrets.Box) *ClusterService {
	return &ClusterService{client: client, box: box}
}

// CreateClusterInput carries a cluster creation request.
type CreateClusterInput struct {
	Name              string
	Description       string
	Kind              cluster.Kind
	KubernetesVersion string
	APIEndpoint       string
	CredentialID      *int
	ExtraVars         map[string]any

	// Nodes is the initial node set for kind=new clusters.
	Nodes []domain.NodeSpec

	// Kubeconfig is the connection descriptor for kind=registered clusters.
	Kubeconfig []byte
}

// CreateCluster creates a cluster row plus its initial PENDING nodes in one
// transaction. For registered clusters the kubeconfig is encrypted at rest.
func (s *ClusterService) CreateCluster(ctx context.Context, in CreateClusterInput) (*ent.Cluster, error) {
	if !clusterNamePattern.MatchString(in.Name) {
		return nil, apperrors.BadRequest(apperrors.CodeNameInvalid,
			"cluster name must be a lowercase DNS label (max 63 chars)")
	}

	switch in.Kind {
	case cluster.KindNew:
		if len(in.Nodes) == 0 {
			return nil, apperrors.BadRequest(apperrors.CodeNodeSetEmpty,
				"a new cluster requires at least one node")
		}
		if res := CheckNodeUniqueness(nil, in.Nodes); !res.Valid {
			return nil, apperrors.ErrGuardrailRejected(apperrors.CodeNodeDuplicate, res.Rule, res.Reason)
		}
		var initialMasters int
		for _, spec := range in.Nodes {
			if spec.Role == domain.RoleInitialMaster {
				initialMasters++
			}
		}
		if initialMasters != 1 {
			return nil, apperrors.ErrGuardrailRejected(apperrors.CodeInitialMasterRule, RuleInitialMaster,
				fmt.Sprintf("a new cluster requires exactly one initial master, got %d", initialMasters))
		}
	case cluster.KindRegistered:
		if len(in.Kubeconfig) == 0 {
			return nil, apperrors.BadRequest(apperrors.CodeValidationFailed,
				"a registered cluster requires a kubeconfig")
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	create := tx.Cluster.Create().
		SetName(in.Name).
		SetKind(in.Kind)
	if in.Description != "" {
		create.SetDescription(in.Description)
	}
	if in.KubernetesVersion != "" {
		create.SetKubernetesVersion(in.KubernetesVersion)
	}
	if in.APIEndpoint != "" {
		create.SetAPIEndpoint(in.APIEndpoint)
	}
	if in.CredentialID != nil {
		create.SetCredentialID(*in.CredentialID)
	}
	if len(in.ExtraVars) > 0 {
		create.SetExtraVars(in.ExtraVars)
	}
	if len(in.Kubeconfig) > 0 {
		sealed, err := s.box.Seal(in.Kubeconfig)
		if err != nil {
			return nil, fmt.Errorf("encrypt kubeconfig: %w", err)
		}
		create.SetEncryptedKubeconfig(sealed)
	}

	cl, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, apperrors.Conflict(apperrors.CodeClusterExists,
				fmt.Sprintf("cluster %q already exists", in.Name))
		}
		return nil, fmt.Errorf("create cluster: %w", err)
	}

	if _, err := CreateNodes(ctx, tx, cl.ID, in.Nodes); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cluster create: %w", err)
	}

	logger.Info("Cluster created",
		zap.Int("cluster_id", cl.ID),
		zap.String("name", cl.Name),
		zap.String("kind", string(cl.Kind)),
		zap.Int("nodes", len(in.Nodes)),
	)
	return cl, nil
}

// CreateNodes inserts PENDING node rows for the given specs.
func CreateNodes(ctx context.Context, tx *ent.Tx, clusterID int, specs []domain.NodeSpec) ([]*ent.Node, error) {
	out := make([]*ent.Node, 0, len(specs))
	for _, spec := range specs {
		create := tx.Node.Create().
			SetClusterID(clusterID).
			SetHostname(spec.Hostname).
			SetInternalIP(spec.InternalIP).
			SetUseExternalIP(spec.UseExternalIP).
			SetRole(node.Role(spec.Role))
		if spec.ExternalIP != "" {
			create.SetExternalIP(spec.ExternalIP)
		}
		if spec.SSHUser != "" {
			create.SetSSHUser(spec.SSHUser)
		}
		if spec.SSHPort != 0 {
			create.SetSSHPort(spec.SSHPort)
		}
		if spec.CredentialID != nil {
			create.SetCredentialID(*spec.CredentialID)
		}
		if len(spec.ExtraVars) > 0 {
			create.SetExtraVars(spec.ExtraVars)
		}

		n, err := create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create node %s: %w", spec.Hostname, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// GetCluster fetches a cluster with its nodes.
func (s *ClusterService) GetCluster(ctx context.Context, clusterID int) (*ent.Cluster, error) {
	cl, err := s.client.Cluster.Query().
		Where(cluster.IDEQ(clusterID)).
		WithNodes().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrClusterNotFound(clusterID)
		}
		return nil, fmt.Errorf("query cluster: %w", err)
	}
	return cl, nil
}

// ListClusters returns all clusters with their nodes.
func (s *ClusterService) ListClusters(ctx context.Context) ([]*ent.Cluster, error) {
	clusters, err := s.client.Cluster.Query().
		WithNodes().
		Order(ent.Asc(cluster.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query clusters: %w", err)
	}
	return clusters, nil
}

// UpdateClusterInput carries mutable cluster metadata.
type UpdateClusterInput struct {
	Description       *string
	KubernetesVersion *string
	APIEndpoint       *string
	CredentialID      *int
	ExtraVars         map[string]any
}

// UpdateCluster updates mutable metadata. Lock fields and the installation
// stage are not reachable from here.
func (s *ClusterService) UpdateCluster(ctx context.Context, clusterID int, in UpdateClusterInput) (*ent.Cluster, error) {
	update := s.client.Cluster.UpdateOneID(clusterID)
	if in.Description != nil {
		update.SetDescription(*in.Description)
	}
	if in.KubernetesVersion != nil {
		update.SetKubernetesVersion(*in.KubernetesVersion)
	}
	if in.APIEndpoint != nil {
		update.SetAPIEndpoint(*in.APIEndpoint)
	}
	if in.CredentialID != nil {
		update.SetCredentialID(*in.CredentialID)
	}
	if in.ExtraVars != nil {
		update.SetExtraVars(in.ExtraVars)
	}

	cl, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrClusterNotFound(clusterID)
		}
		return nil, fmt.Errorf("update cluster: %w", err)
	}
	return cl, nil
}

// DeleteCluster removes a cluster and everything it owns. Deletion is
// refused while an operation holds the cluster lock.
func (s *ClusterService) DeleteCluster(ctx context.Context, clusterID int) error {
	cl, err := s.client.Cluster.Get(ctx, clusterID)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.ErrClusterNotFound(clusterID)
		}
		return fmt.Errorf("query cluster: %w", err)
	}
	if cl.OperationStatus == cluster.OperationStatusRunning {
		heldBy := ""
		if cl.OperationLockedBy != nil {
			heldBy = string(*cl.OperationLockedBy)
		}
		jobID := 0
		if cl.CurrentJobID != nil {
			jobID = *cl.CurrentJobID
		}
		return apperrors.ErrClusterBusy(heldBy, jobID)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	// Cascade: the cluster exclusively owns its nodes, jobs and cache row.
	if _, err := tx.Node.Delete().
		Where(node.HasClusterWith(cluster.IDEQ(clusterID))).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete cluster nodes: %w", err)
	}
	if _, err := tx.Job.Delete().
		Where(job.HasClusterWith(cluster.IDEQ(clusterID))).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete cluster jobs: %w", err)
	}
	if _, err := tx.ClusterStatusCache.Delete().
		Where(clusterstatuscache.HasClusterWith(cluster.IDEQ(clusterID))).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete status cache: %w", err)
	}
	if err := tx.Cluster.DeleteOneID(clusterID).Exec(ctx); err != nil {
		return fmt.Errorf("delete cluster: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cluster delete: %w", err)
	}

	logger.Info("Cluster deleted", zap.Int("cluster_id", clusterID), zap.String("name", cl.Name))
	return nil
}

// Kubeconfig decrypts and returns the cluster's kubeconfig. The caller must
// not persist the plaintext beyond the current operation.
func (s *ClusterService) Kubeconfig(ctx context.Context, clusterID int) ([]byte, error) {
	cl, err := s.client.Cluster.Get(ctx, clusterID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrClusterNotFound(clusterID)
		}
		return nil, fmt.Errorf("query cluster: %w", err)
	}
	if len(cl.EncryptedKubeconfig) == 0 {
		return nil, apperrors.NotFound(apperrors.CodeValidationFailed,
			"cluster has no stored kubeconfig")
	}
	raw, err := s.box.Open(cl.EncryptedKubeconfig)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeCredentialDecrypt,
			"failed to decrypt kubeconfig", 500)
	}
	return raw, nil
}

// StoreKubeconfig encrypts and stores a kubeconfig, e.g. the one captured
// by a completed install.
func (s *ClusterService) StoreKubeconfig(ctx context.Context, clusterID int, raw []byte) error {
	sealed, err := s.box.Seal(raw)
	if err != nil {
		return fmt.Errorf("encrypt kubeconfig: %w", err)
	}
	if err := s.client.Cluster.UpdateOneID(clusterID).
		SetEncryptedKubeconfig(sealed).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.ErrClusterNotFound(clusterID)
		}
		return fmt.Errorf("store kubeconfig: %w", err)
	}
	return nil
}
