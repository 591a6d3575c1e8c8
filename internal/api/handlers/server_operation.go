package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kube-drover.io/drover/internal/domain"
	apperrors "kube-drover.io/drover/internal/pkg/errors"
)

// Operation handlers return 202: the job runs in the background and its
// progress is observable under /jobs.

// InstallCluster handles POST /clusters/:id/install.
func (s *Server) InstallCluster(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	started, err := s.operations.Install(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, started)
}

type addNodesRequest struct {
	Nodes []domain.NodeSpec `json:"nodes" binding:"required"`
}

// AddNodes handles POST /clusters/:id/nodes.
func (s *Server) AddNodes(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req addNodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"invalid node payload", http.StatusBadRequest))
		return
	}
	for _, spec := range req.Nodes {
		if _, err := domain.ParseNodeRole(string(spec.Role)); err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, err.Error()))
			return
		}
		if spec.Role == domain.RoleInitialMaster {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInitialMasterRule,
				"initial_master is only valid at cluster creation"))
			return
		}
	}

	started, err := s.operations.AddNodes(c.Request.Context(), id, req.Nodes)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, started)
}

type removeNodesRequest struct {
	NodeIDs []int `json:"node_ids" binding:"required"`
	// Confirmed acknowledges removal of master-role nodes.
	Confirmed bool `json:"confirmed"`
}

// RemoveNodes handles POST /clusters/:id/remove-nodes.
func (s *Server) RemoveNodes(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req removeNodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"invalid removal payload", http.StatusBadRequest))
		return
	}
	if len(req.NodeIDs) == 0 {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeNodeSetEmpty, "no nodes to remove"))
		return
	}

	started, err := s.operations.RemoveNodes(c.Request.Context(), id, req.NodeIDs, req.Confirmed)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, started)
}

type uninstallRequest struct {
	// ConfirmName must echo the exact cluster name.
	ConfirmName string `json:"confirm_name" binding:"required"`
}

// UninstallCluster handles POST /clusters/:id/uninstall.
func (s *Server) UninstallCluster(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req uninstallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"invalid uninstall payload", http.StatusBadRequest))
		return
	}

	started, err := s.operations.Uninstall(c.Request.Context(), id, req.ConfirmName)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, started)
}

type upgradeCheckRequest struct {
	TargetVersion string `json:"target_version" binding:"required"`
}

// UpgradeCheck handles POST /clusters/:id/upgrade-check.
func (s *Server) UpgradeCheck(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req upgradeCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"invalid upgrade check payload", http.StatusBadRequest))
		return
	}

	started, err := s.operations.UpgradeCheck(c.Request.Context(), id, req.TargetVersion)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, started)
}
