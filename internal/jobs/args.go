// Package jobs implements the River workers that execute cluster operations.
//
// Args carry only the job row ID (claim-check): the full operation state
// lives in the jobs table, inserted in the same transaction that acquired
// the cluster lock.
package jobs

import "github.com/riverqueue/river"

// QueueProvisioning is the queue for long-running playbook operations.
const QueueProvisioning = "provisioning"

// ProvisionArgs enqueues an install, add_nodes, remove_nodes or uninstall
// job. The kind is read from the job row.
type ProvisionArgs struct {
	JobID int `json:"job_id"`
}

// Kind returns the job kind identifier for provisioning runs.
func (ProvisionArgs) Kind() string { return "cluster_provision" }

// InsertOpts returns default insert options for provisioning jobs.
// Playbook runs are not idempotent enough to retry blindly, so failures
// stay failed until a human restarts the operation.
func (ProvisionArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueProvisioning,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}

// UpgradeCheckArgs enqueues a readiness assessment against a target version.
type UpgradeCheckArgs struct {
	JobID         int    `json:"job_id"`
	TargetVersion string `json:"target_version"`
}

// Kind returns the job kind identifier for upgrade checks.
func (UpgradeCheckArgs) Kind() string { return "upgrade_check" }

// InsertOpts returns default insert options for upgrade check jobs.
func (UpgradeCheckArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueProvisioning,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}
