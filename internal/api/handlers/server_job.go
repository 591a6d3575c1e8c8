package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/job"
	apperrors "kube-drover.io/drover/internal/pkg/errors"
)

// ListClusterJobs handles GET /clusters/:id/jobs.
func (s *Server) ListClusterJobs(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	limit := 50
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}

	jobs, err := s.client.Job.Query().
		Where(job.HasClusterWith(cluster.IDEQ(id))).
		Order(ent.Desc(job.FieldCreatedAt)).
		Limit(limit).
		WithCluster().
		All(c.Request.Context())
	if err != nil {
		_ = c.Error(fmt.Errorf("query cluster jobs: %w", err))
		return
	}

	items := make([]APIJob, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, jobToAPI(j))
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// GetJob handles GET /jobs/:id.
func (s *Server) GetJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	j, err := s.client.Job.Query().
		Where(job.IDEQ(id)).
		WithCluster().
		Only(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.ErrJobNotFound(id))
			return
		}
		_ = c.Error(fmt.Errorf("query job: %w", err))
		return
	}
	c.JSON(http.StatusOK, jobToAPI(j))
}

// GetJobOutput handles GET /jobs/:id/output. Clients poll with the offset
// of the last byte they have seen; the response carries only the delta.
func (s *Server) GetJobOutput(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	offset, _ := strconv.Atoi(c.Query("offset"))
	if offset < 0 {
		offset = 0
	}

	j, err := s.client.Job.Get(c.Request.Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.ErrJobNotFound(id))
			return
		}
		_ = c.Error(fmt.Errorf("query job: %w", err))
		return
	}

	output := j.Output
	if offset > len(output) {
		offset = len(output)
	}
	done := j.Status == job.StatusSUCCESS || j.Status == job.StatusFAILED
	c.JSON(http.StatusOK, gin.H{
		"status": string(j.Status),
		"offset": len(output),
		"output": output[offset:],
		"done":   done,
	})
}

// StreamJobOutput handles GET /jobs/:id/output/stream. Output deltas are
// pushed as SSE events until the job reaches a terminal status or the
// client disconnects.
func (s *Server) StreamJobOutput(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if exists, err := s.client.Job.Query().Where(job.IDEQ(id)).Exist(c.Request.Context()); err != nil {
		_ = c.Error(fmt.Errorf("query job: %w", err))
		return
	} else if !exists {
		_ = c.Error(apperrors.ErrJobNotFound(id))
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	offset := 0
	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case <-ticker.C:
		}

		j, err := s.client.Job.Get(c.Request.Context(), id)
		if err != nil {
			return false
		}
		if offset < len(j.Output) {
			c.SSEvent("output", j.Output[offset:])
			offset = len(j.Output)
		}
		if j.Status == job.StatusSUCCESS || j.Status == job.StatusFAILED {
			c.SSEvent("done", string(j.Status))
			return false
		}
		return true
	})
}

// CancelJob handles POST /jobs/:id/cancel.
func (s *Server) CancelJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.canceller.Cancel(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"job_id": id, "cancelled": true})
}
