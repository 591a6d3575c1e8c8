package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/internal/domain"
	apperrors "kube-drover.io/drover/internal/pkg/errors"
	"kube-drover.io/drover/internal/service"
)

// maxKubeconfigBytes bounds uploaded kubeconfig size.
const maxKubeconfigBytes = 1 << 20

// pathID parses the numeric :id path parameter. A failed parse reports the
// error itself; callers just return.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			"path parameter "+name+" must be a positive integer"))
		return 0, false
	}
	return id, true
}

type createClusterRequest struct {
	Name              string            `json:"name" binding:"required"`
	Description       string            `json:"description"`
	Kind              string            `json:"kind" binding:"required"`
	KubernetesVersion string            `json:"kubernetes_version"`
	APIEndpoint       string            `json:"api_endpoint"`
	CredentialID      *int              `json:"credential_id"`
	ExtraVars         map[string]any    `json:"extra_vars"`
	Nodes             []domain.NodeSpec `json:"nodes"`
	Kubeconfig        string            `json:"kubeconfig"`
}

// CreateCluster handles POST /clusters.
func (s *Server) CreateCluster(c *gin.Context) {
	var req createClusterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"invalid cluster payload", http.StatusBadRequest))
		return
	}

	kind := cluster.Kind(req.Kind)
	if err := cluster.KindValidator(kind); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			"kind must be one of: new, registered"))
		return
	}
	for _, spec := range req.Nodes {
		if _, err := domain.ParseNodeRole(string(spec.Role)); err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, err.Error()))
			return
		}
	}

	cl, err := s.clusters.CreateCluster(c.Request.Context(), service.CreateClusterInput{
		Name:              req.Name,
		Description:       req.Description,
		Kind:              kind,
		KubernetesVersion: req.KubernetesVersion,
		APIEndpoint:       req.APIEndpoint,
		CredentialID:      req.CredentialID,
		ExtraVars:         req.ExtraVars,
		Nodes:             req.Nodes,
		Kubeconfig:        []byte(req.Kubeconfig),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	created, err := s.clusters.GetCluster(c.Request.Context(), cl.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, clusterToAPI(created))
}

// ListClusters handles GET /clusters.
func (s *Server) ListClusters(c *gin.Context) {
	clusters, err := s.clusters.ListClusters(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	items := make([]APICluster, 0, len(clusters))
	for _, cl := range clusters {
		items = append(items, clusterToAPI(cl))
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// GetCluster handles GET /clusters/:id.
func (s *Server) GetCluster(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cl, err := s.clusters.GetCluster(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, clusterToAPI(cl))
}

type updateClusterRequest struct {
	Description       *string        `json:"description"`
	KubernetesVersion *string        `json:"kubernetes_version"`
	APIEndpoint       *string        `json:"api_endpoint"`
	CredentialID      *int           `json:"credential_id"`
	ExtraVars         map[string]any `json:"extra_vars"`
}

// UpdateCluster handles PATCH /clusters/:id.
func (s *Server) UpdateCluster(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateClusterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"invalid cluster payload", http.StatusBadRequest))
		return
	}

	cl, err := s.clusters.UpdateCluster(c.Request.Context(), id, service.UpdateClusterInput{
		Description:       req.Description,
		KubernetesVersion: req.KubernetesVersion,
		APIEndpoint:       req.APIEndpoint,
		CredentialID:      req.CredentialID,
		ExtraVars:         req.ExtraVars,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, clusterToAPI(cl))
}

// DeleteCluster handles DELETE /clusters/:id.
func (s *Server) DeleteCluster(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.clusters.DeleteCluster(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetKubeconfig handles GET /clusters/:id/kubeconfig. The plaintext is
// streamed to the caller and not retained.
func (s *Server) GetKubeconfig(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	raw, err := s.clusters.Kubeconfig(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Data(http.StatusOK, "application/yaml", raw)
}

// PutKubeconfig handles PUT /clusters/:id/kubeconfig. The body is the raw
// kubeconfig document.
func (s *Server) PutKubeconfig(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxKubeconfigBytes+1))
	if err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"failed to read request body", http.StatusBadRequest))
		return
	}
	if len(raw) == 0 || len(raw) > maxKubeconfigBytes {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed,
			"kubeconfig body must be non-empty and at most 1 MiB"))
		return
	}
	if err := s.clusters.StoreKubeconfig(c.Request.Context(), id, raw); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
