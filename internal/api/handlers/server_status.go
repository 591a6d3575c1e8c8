package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetClusterStatus handles GET /clusters/:id/status. refresh=true bypasses
// the cache TTL.
func (s *Server) GetClusterStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	force, _ := strconv.ParseBool(c.Query("refresh"))

	status, err := s.status.Get(c.Request.Context(), id, force)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// RefreshClusterStatus handles POST /clusters/:id/refresh. It bypasses the
// cache unconditionally.
func (s *Server) RefreshClusterStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	status, err := s.status.Refresh(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// SyncNodes handles POST /clusters/:id/sync-nodes. It forces a fresh
// inspection and reports the reconciliation outcome.
func (s *Server) SyncNodes(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	status, err := s.status.Refresh(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	cl, err := s.clusters.GetCluster(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"collected_at": status.CollectedAt,
		"nodes":        clusterToAPI(cl).Nodes,
	})
}
