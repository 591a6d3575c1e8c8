package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/ent/credential"
	"kube-drover.io/drover/ent/job"
	"kube-drover.io/drover/internal/domain"
	"kube-drover.io/drover/internal/pkg/logger"
	"kube-drover.io/drover/internal/pkg/metrics"
	"kube-drover.io/drover/internal/service"
)

// outputSink accumulates runner output and periodically persists it to the
// job row so clients can follow a run in progress.
type outputSink struct {
	client *ent.Client
	jobID  int

	mu      sync.Mutex
	lines   []string
	pending int
}

const outputFlushEvery = 25

func newOutputSink(client *ent.Client, jobID int) *outputSink {
	return &outputSink{client: client, jobID: jobID}
}

// Append records a line and flushes in batches.
func (s *outputSink) Append(line string) {
	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.pending++
	flush := s.pending >= outputFlushEvery
	if flush {
		s.pending = 0
	}
	text := strings.Join(s.lines, "\n")
	s.mu.Unlock()

	if flush {
		s.persist(text)
	}
}

// Flush persists whatever is buffered.
func (s *outputSink) Flush() {
	s.mu.Lock()
	s.pending = 0
	text := strings.Join(s.lines, "\n")
	s.mu.Unlock()
	s.persist(text)
}

func (s *outputSink) persist(text string) {
	// Output streaming must never take down the run itself.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.client.Job.UpdateOneID(s.jobID).SetOutput(text).Exec(ctx); err != nil {
		logger.Warn("Failed to persist job output", zap.Int("job_id", s.jobID), zap.Error(err))
	}
}

// buildInventory turns node rows into inventory hosts with resolved SSH
// credentials. The node's own credential wins over the cluster default.
// Key material is returned separately, keyed by the name referenced from
// each host's KeyFile, and only lives until the runner deletes its files.
func buildInventory(ctx context.Context, creds credentialRevealer, cl *ent.Cluster, nodes []*ent.Node) ([]service.InventoryHost, map[string][]byte, error) {
	hosts := make([]service.InventoryHost, 0, len(nodes))
	keys := make(map[string][]byte)
	revealed := make(map[int]*service.RevealedCredential)

	clusterCred := cl.Edges.Credential

	for _, n := range nodes {
		host := service.InventoryHost{
			Hostname:  n.Hostname,
			Address:   nodeAddress(n),
			SSHUser:   n.SSHUser,
			SSHPort:   n.SSHPort,
			Role:      domain.NodeRole(n.Role),
			ExtraVars: n.ExtraVars,
		}

		cred := n.Edges.Credential
		if cred == nil {
			cred = clusterCred
		}
		if cred == nil {
			return nil, nil, fmt.Errorf("node %s has no credential and the cluster has no default", n.Hostname)
		}

		rc, ok := revealed[cred.ID]
		if !ok {
			var err error
			rc, err = creds.Reveal(ctx, cred.ID)
			if err != nil {
				return nil, nil, fmt.Errorf("reveal credential %d for node %s: %w", cred.ID, n.Hostname, err)
			}
			revealed[cred.ID] = rc
		}

		if host.SSHUser == "" {
			host.SSHUser = rc.Username
		}
		switch rc.Kind {
		case credential.KindSSHKey:
			name := fmt.Sprintf("credential-%d", cred.ID)
			keys[name] = []byte(rc.Secret)
			host.KeyFile = name
		case credential.KindSSHPassword:
			host.Password = rc.Secret
		}

		hosts = append(hosts, host)
	}
	return hosts, keys, nil
}

// credentialRevealer is the slice of CredentialService the workers need.
type credentialRevealer interface {
	Reveal(ctx context.Context, credentialID int) (*service.RevealedCredential, error)
}

func nodeAddress(n *ent.Node) string {
	if n.UseExternalIP && n.ExternalIP != "" {
		return n.ExternalIP
	}
	return n.InternalIP
}

// markJobRunning transitions a job row to RUNNING and returns the start time.
func markJobRunning(ctx context.Context, client *ent.Client, jobID int) (time.Time, error) {
	now := time.Now().UTC()
	err := client.Job.UpdateOneID(jobID).
		SetStatus(job.StatusRUNNING).
		SetStartedAt(now).
		Exec(ctx)
	return now, err
}

// finishJob records the terminal job status and operation metrics.
func finishJob(ctx context.Context, client *ent.Client, row *ent.Job, status job.Status, runErr error) {
	update := client.Job.UpdateOneID(row.ID).
		SetStatus(status).
		SetCompletedAt(time.Now().UTC())
	if runErr != nil {
		update.SetError(runErr.Error())
	}
	if err := update.Exec(ctx); err != nil {
		logger.Error("Failed to persist terminal job status",
			zap.Int("job_id", row.ID),
			zap.String("status", string(status)),
			zap.Error(err),
		)
	}

	outcome := "success"
	if status == job.StatusFAILED {
		outcome = "failure"
	}
	metrics.OperationsCompleted.WithLabelValues(string(row.Kind), outcome).Inc()
	if row.StartedAt != nil {
		metrics.OperationDuration.WithLabelValues(string(row.Kind)).
			Observe(time.Since(*row.StartedAt).Seconds())
	}
}

// structToMap round-trips a struct through JSON for storage in a JSON column.
func structToMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return out, nil
}
