// Package provider binds Drover to the outside world: the Ansible playbook
// runner that provisions nodes and the Kubernetes inspector that reads live
// cluster state. Both sit behind small interfaces so workers and services
// stay testable without SSH targets or a running cluster.
package provider

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"kube-drover.io/drover/internal/config"
	"kube-drover.io/drover/internal/pkg/logger"
	"kube-drover.io/drover/internal/service"
)

// ErrRunCancelled reports a playbook run stopped by an explicit cancel.
var ErrRunCancelled = errors.New("playbook run cancelled")

// RunRequest describes one playbook execution.
type RunRequest struct {
	JobID    int
	Playbook string

	// Hosts form the inventory. A non-empty KeyFile names an entry in Keys;
	// the runner replaces it with the path of the materialized key file.
	Hosts []service.InventoryHost

	// ExtraVars are cluster-level variables passed through uninterpreted.
	ExtraVars map[string]any

	// Keys maps key names to private key material. The runner writes each
	// to a 0600 file that is removed again on every exit path.
	Keys map[string][]byte

	// ArtifactFiles names files the playbook leaves in the job work dir
	// (exposed to it as the drover_artifact_dir variable) that should be
	// collected after a successful run, e.g. the fetched kubeconfig.
	ArtifactFiles []string

	// OnOutput receives each output line as it is produced.
	OnOutput func(line string)
}

// PlaybookRunner executes provisioning playbooks.
type PlaybookRunner interface {
	Run(ctx context.Context, req RunRequest) (map[string][]byte, error)
	Cancel(jobID int) bool
}

// AnsibleRunner runs ansible-playbook as a subprocess, one job at a time per
// job ID, with cooperative cancellation.
type AnsibleRunner struct {
	binary      string
	playbookDir string
	workDir     string
	timeout     time.Duration

	mu      sync.Mutex
	running map[int]context.CancelFunc
}

// NewAnsibleRunner creates an AnsibleRunner from config.
func NewAnsibleRunner(cfg config.AnsibleConfig) *AnsibleRunner {
	return &AnsibleRunner{
		binary:      cfg.Binary,
		playbookDir: cfg.PlaybookDir,
		workDir:     cfg.WorkDir,
		timeout:     cfg.Timeout,
		running:     make(map[int]context.CancelFunc),
	}
}

// Run executes the playbook against the rendered inventory. Sensitive files
// (inventory with passwords, private keys) live in a per-job 0700 directory
// that is deleted before Run returns, success or not.
func (r *AnsibleRunner) Run(ctx context.Context, req RunRequest) (map[string][]byte, error) {
	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	r.mu.Lock()
	r.running[req.JobID] = cancel
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		delete(r.running, req.JobID)
		r.mu.Unlock()
	}()

	jobDir := filepath.Join(r.workDir, fmt.Sprintf("job-%d", req.JobID))
	if err := os.MkdirAll(jobDir, 0o700); err != nil {
		return nil, fmt.Errorf("create job dir: %w", err)
	}
	defer os.RemoveAll(jobDir)

	keyPaths := make(map[string]string, len(req.Keys))
	for name, pem := range req.Keys {
		path := filepath.Join(jobDir, name+".pem")
		if err := os.WriteFile(path, pem, 0o600); err != nil {
			return nil, fmt.Errorf("write key file %s: %w", name, err)
		}
		keyPaths[name] = path
	}

	hosts := make([]service.InventoryHost, len(req.Hosts))
	copy(hosts, req.Hosts)
	for i := range hosts {
		if hosts[i].KeyFile == "" {
			continue
		}
		path, ok := keyPaths[hosts[i].KeyFile]
		if !ok {
			return nil, fmt.Errorf("host %s references unknown key %q", hosts[i].Hostname, hosts[i].KeyFile)
		}
		hosts[i].KeyFile = path
	}

	invPath := filepath.Join(jobDir, "inventory.ini")
	if err := os.WriteFile(invPath, []byte(service.RenderInventory(hosts)), 0o600); err != nil {
		return nil, fmt.Errorf("write inventory: %w", err)
	}

	extraVars := make(map[string]any, len(req.ExtraVars)+1)
	for k, v := range req.ExtraVars {
		extraVars[k] = v
	}
	extraVars["drover_artifact_dir"] = jobDir

	vars, err := service.RenderVarsFile(extraVars)
	if err != nil {
		return nil, err
	}
	varsPath := filepath.Join(jobDir, "vars.yml")
	if err := os.WriteFile(varsPath, vars, 0o600); err != nil {
		return nil, fmt.Errorf("write vars file: %w", err)
	}

	playbookPath := filepath.Join(r.playbookDir, req.Playbook)
	cmd := exec.CommandContext(runCtx, r.binary, //nolint:gosec // binary and playbook come from config
		"-i", invPath,
		"-e", "@"+varsPath,
		playbookPath,
	)
	cmd.Env = append(os.Environ(),
		"ANSIBLE_HOST_KEY_CHECKING=False",
		"ANSIBLE_FORCE_COLOR=false",
	)

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	done := make(chan struct{})
	go func() {
		defer close(done)
		scanner := bufio.NewScanner(pr)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			if req.OnOutput != nil {
				req.OnOutput(scanner.Text())
			}
		}
	}()

	logger.Info("Playbook run starting",
		zap.Int("job_id", req.JobID),
		zap.String("playbook", req.Playbook),
		zap.Int("hosts", len(req.Hosts)),
	)

	if err := cmd.Start(); err != nil {
		pw.Close()
		<-done
		return nil, fmt.Errorf("start %s: %w", r.binary, err)
	}

	waitErr := cmd.Wait()
	pw.Close()
	<-done

	if runCtx.Err() == context.Canceled && ctx.Err() == nil {
		return nil, ErrRunCancelled
	}
	if runCtx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("playbook %s timed out after %s", req.Playbook, r.timeout)
	}
	if waitErr != nil {
		return nil, fmt.Errorf("playbook %s failed: %w", req.Playbook, waitErr)
	}

	artifacts := make(map[string][]byte, len(req.ArtifactFiles))
	for _, name := range req.ArtifactFiles {
		data, err := os.ReadFile(filepath.Join(jobDir, filepath.Base(name)))
		if err != nil {
			logger.Warn("Playbook artifact missing",
				zap.Int("job_id", req.JobID),
				zap.String("artifact", name),
				zap.Error(err),
			)
			continue
		}
		artifacts[name] = data
	}

	logger.Info("Playbook run finished", zap.Int("job_id", req.JobID), zap.String("playbook", req.Playbook))
	return artifacts, nil
}

// Cancel stops a running playbook. Returns false when no run with that job
// ID is active.
func (r *AnsibleRunner) Cancel(jobID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	cancel, ok := r.running[jobID]
	if !ok {
		return false
	}
	cancel()
	return true
}
