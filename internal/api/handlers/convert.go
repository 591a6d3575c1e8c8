// Conversion helpers between Ent entities and API payloads. Encrypted
// columns are Sensitive in the schema and never cross this boundary.
package handlers

import (
	"time"

	"kube-drover.io/drover/ent"
)

// APICluster is the wire representation of a cluster.
type APICluster struct {
	ID                int            `json:"id"`
	Name              string         `json:"name"`
	Description       string         `json:"description,omitempty"`
	Kind              string         `json:"kind"`
	KubernetesVersion string         `json:"kubernetes_version,omitempty"`
	APIEndpoint       string         `json:"api_endpoint,omitempty"`
	OperationStatus   string         `json:"operation_status"`
	CurrentJobID      *int           `json:"current_job_id,omitempty"`
	OperationLockedBy string         `json:"operation_locked_by,omitempty"`
	InstallationStage string         `json:"installation_stage"`
	ExtraVars         map[string]any `json:"extra_vars,omitempty"`
	HasKubeconfig     bool           `json:"has_kubeconfig"`
	CredentialID      *int           `json:"credential_id,omitempty"`
	Nodes             []APINode      `json:"nodes,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// APINode is the wire representation of a node.
type APINode struct {
	ID            int            `json:"id"`
	Hostname      string         `json:"hostname"`
	InternalIP    string         `json:"internal_ip"`
	ExternalIP    string         `json:"external_ip,omitempty"`
	UseExternalIP bool           `json:"use_external_ip"`
	Role          string         `json:"role"`
	Status        string         `json:"status"`
	SSHUser       string         `json:"ssh_user,omitempty"`
	SSHPort       int            `json:"ssh_port,omitempty"`
	ExtraVars     map[string]any `json:"extra_vars,omitempty"`
	CredentialID  *int           `json:"credential_id,omitempty"`
}

// APIJob is the wire representation of a job.
type APIJob struct {
	ID              int            `json:"id"`
	ClusterID       *int           `json:"cluster_id,omitempty"`
	Kind            string         `json:"kind"`
	Status          string         `json:"status"`
	NodeIDs         []int          `json:"node_ids,omitempty"`
	FollowupNodeIDs []int          `json:"followup_node_ids,omitempty"`
	SequenceStage   int            `json:"sequence_stage"`
	ParentJobID     *int           `json:"parent_job_id,omitempty"`
	Error           string         `json:"error,omitempty"`
	ReadinessReport map[string]any `json:"readiness_report,omitempty"`
	StartedAt       *time.Time     `json:"started_at,omitempty"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// APICredential is the wire representation of a credential. The secret
// never leaves the server.
type APICredential struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	Username    string    `json:"username"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func clusterToAPI(cl *ent.Cluster) APICluster {
	out := APICluster{
		ID:                cl.ID,
		Name:              cl.Name,
		Description:       cl.Description,
		Kind:              string(cl.Kind),
		KubernetesVersion: cl.KubernetesVersion,
		APIEndpoint:       cl.APIEndpoint,
		OperationStatus:   string(cl.OperationStatus),
		CurrentJobID:      cl.CurrentJobID,
		InstallationStage: string(cl.InstallationStage),
		ExtraVars:         cl.ExtraVars,
		HasKubeconfig:     len(cl.EncryptedKubeconfig) > 0,
		CreatedAt:         cl.CreatedAt,
		UpdatedAt:         cl.UpdatedAt,
	}
	if cl.OperationLockedBy != nil {
		out.OperationLockedBy = string(*cl.OperationLockedBy)
	}
	if cred := cl.Edges.Credential; cred != nil {
		out.CredentialID = &cred.ID
	}
	for _, n := range cl.Edges.Nodes {
		out.Nodes = append(out.Nodes, nodeToAPI(n))
	}
	return out
}

func nodeToAPI(n *ent.Node) APINode {
	out := APINode{
		ID:            n.ID,
		Hostname:      n.Hostname,
		InternalIP:    n.InternalIP,
		ExternalIP:    n.ExternalIP,
		UseExternalIP: n.UseExternalIP,
		Role:          string(n.Role),
		Status:        string(n.Status),
		SSHUser:       n.SSHUser,
		SSHPort:       n.SSHPort,
		ExtraVars:     n.ExtraVars,
	}
	if cred := n.Edges.Credential; cred != nil {
		out.CredentialID = &cred.ID
	}
	return out
}

func jobToAPI(j *ent.Job) APIJob {
	out := APIJob{
		ID:              j.ID,
		Kind:            string(j.Kind),
		Status:          string(j.Status),
		NodeIDs:         j.NodeIds,
		FollowupNodeIDs: j.FollowupNodeIds,
		SequenceStage:   j.SequenceStage,
		ParentJobID:     j.ParentJobID,
		Error:           j.Error,
		ReadinessReport: j.ReadinessReport,
		StartedAt:       j.StartedAt,
		CompletedAt:     j.CompletedAt,
		CreatedAt:       j.CreatedAt,
	}
	if cl := j.Edges.Cluster; cl != nil {
		out.ClusterID = &cl.ID
	}
	return out
}

func credentialToAPI(c *ent.Credential) APICredential {
	return APICredential{
		ID:          c.ID,
		Name:        c.Name,
		Kind:        string(c.Kind),
		Username:    c.Username,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
