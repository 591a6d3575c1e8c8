package service

import (
	"strings"
	"testing"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/ent/node"
	"kube-drover.io/drover/internal/domain"
)

func mkNode(id int, hostname, ip string, role node.Role, status node.Status) *ent.Node {
	return &ent.Node{
		ID:         id,
		Hostname:   hostname,
		InternalIP: ip,
		Role:       role,
		Status:     status,
	}
}

func TestCheckBootstrapPrerequisite(t *testing.T) {
	tests := []struct {
		name      string
		nodes     []*ent.Node
		wantValid bool
	}{
		{
			name:      "no nodes at all",
			nodes:     nil,
			wantValid: false,
		},
		{
			name: "initial master active",
			nodes: []*ent.Node{
				mkNode(1, "cp-0", "10.0.0.1", node.RoleInitialMaster, node.StatusACTIVE),
			},
			wantValid: true,
		},
		{
			name: "initial master still installing",
			nodes: []*ent.Node{
				mkNode(1, "cp-0", "10.0.0.1", node.RoleInitialMaster, node.StatusINSTALLING),
			},
			wantValid: false,
		},
		{
			name: "initial master failed",
			nodes: []*ent.Node{
				mkNode(1, "cp-0", "10.0.0.1", node.RoleInitialMaster, node.StatusFAILED),
			},
			wantValid: false,
		},
		{
			name: "removed initial master does not count",
			nodes: []*ent.Node{
				mkNode(1, "cp-0", "10.0.0.1", node.RoleInitialMaster, node.StatusREMOVED),
				mkNode(2, "w-0", "10.0.0.2", node.RoleWorker, node.StatusACTIVE),
			},
			wantValid: false,
		},
		{
			name: "joining master alone is not enough",
			nodes: []*ent.Node{
				mkNode(1, "cp-1", "10.0.0.2", node.RoleMaster, node.StatusACTIVE),
			},
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CheckBootstrapPrerequisite(tt.nodes)
			if res.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v (reason: %s)", res.Valid, tt.wantValid, res.Reason)
			}
			if !res.Valid && res.Reason == "" {
				t.Error("rejection must carry a reason")
			}
		})
	}
}

func TestCheckMasterRemoval(t *testing.T) {
	masters := func(n int) []*ent.Node {
		out := []*ent.Node{mkNode(1, "cp-0", "10.0.0.1", node.RoleInitialMaster, node.StatusACTIVE)}
		for i := 2; i <= n; i++ {
			out = append(out, mkNode(i, "cp", "10.0.0.0", node.RoleMaster, node.StatusACTIVE))
		}
		return out
	}

	tests := []struct {
		name      string
		nodes     []*ent.Node
		removal   []*ent.Node
		confirmed bool
		wantValid bool
	}{
		{
			name:      "worker removal needs no confirmation",
			nodes:     append(masters(3), mkNode(10, "w-0", "10.0.1.1", node.RoleWorker, node.StatusACTIVE)),
			removal:   []*ent.Node{mkNode(10, "w-0", "10.0.1.1", node.RoleWorker, node.StatusACTIVE)},
			confirmed: false,
			wantValid: true,
		},
		{
			name:      "master removal without confirmation",
			nodes:     masters(5),
			removal:   masters(5)[4:],
			confirmed: false,
			wantValid: false,
		},
		{
			name:      "removing the only master",
			nodes:     masters(1),
			removal:   masters(1),
			confirmed: true,
			wantValid: false,
		},
		{
			name:      "leaving exactly two of three",
			nodes:     masters(3),
			removal:   masters(3)[2:],
			confirmed: true,
			wantValid: false,
		},
		{
			name:      "leaving three of five",
			nodes:     masters(5),
			removal:   masters(5)[3:],
			confirmed: true,
			wantValid: true,
		},
		{
			name:      "breaking majority quorum of five",
			nodes:     masters(5),
			removal:   masters(5)[1:],
			confirmed: true,
			wantValid: false,
		},
		{
			// Surviving masters without the bootstrap anchor could never
			// admit another node, regardless of quorum math.
			name:      "initial master cannot leave while masters remain",
			nodes:     masters(5),
			removal:   masters(5)[:2],
			confirmed: true,
			wantValid: false,
		},
		{
			name:      "removed masters do not count toward S",
			nodes:     append(masters(3), mkNode(20, "cp-old", "10.0.2.1", node.RoleMaster, node.StatusREMOVED)),
			removal:   masters(3)[2:],
			confirmed: true,
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CheckMasterRemoval(tt.nodes, tt.removal, tt.confirmed)
			if res.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v (reason: %s)", res.Valid, tt.wantValid, res.Reason)
			}
		})
	}
}

func TestCheckMasterRemoval_InitialMasterRejectionNamesNode(t *testing.T) {
	nodes := []*ent.Node{
		mkNode(1, "cp-0", "10.0.0.1", node.RoleInitialMaster, node.StatusACTIVE),
		mkNode(2, "cp-1", "10.0.0.2", node.RoleMaster, node.StatusACTIVE),
		mkNode(3, "cp-2", "10.0.0.3", node.RoleMaster, node.StatusACTIVE),
	}

	res := CheckMasterRemoval(nodes, nodes[:1], true)
	if res.Valid {
		t.Fatal("removal including the initial master must be rejected")
	}
	if !strings.Contains(res.Reason, "cp-0") || !strings.Contains(res.Reason, "initial master") {
		t.Errorf("Reason = %q, want the initial master named", res.Reason)
	}
}

func TestCheckMasterRemoval_ConfirmationReasonFirst(t *testing.T) {
	// Even a quorum-breaking removal reports the confirmation requirement
	// first when the caller has not confirmed.
	nodes := []*ent.Node{
		mkNode(1, "cp-0", "10.0.0.1", node.RoleInitialMaster, node.StatusACTIVE),
		mkNode(2, "cp-1", "10.0.0.2", node.RoleMaster, node.StatusACTIVE),
		mkNode(3, "cp-2", "10.0.0.3", node.RoleMaster, node.StatusACTIVE),
	}
	res := CheckMasterRemoval(nodes, nodes[2:], false)
	if res.Valid {
		t.Fatal("expected rejection")
	}
	if want := "confirmation"; !strings.Contains(strings.ToLower(res.Reason), want) {
		t.Errorf("Reason = %q, want mention of %q", res.Reason, want)
	}
}

func TestCheckNodeUniqueness(t *testing.T) {
	existing := []*ent.Node{
		mkNode(1, "cp-0", "10.0.0.1", node.RoleInitialMaster, node.StatusACTIVE),
		mkNode(2, "old-worker", "10.0.0.9", node.RoleWorker, node.StatusREMOVED),
	}

	tests := []struct {
		name      string
		specs     []domain.NodeSpec
		wantValid bool
	}{
		{
			name:      "fresh identity",
			specs:     []domain.NodeSpec{{Hostname: "w-1", InternalIP: "10.0.0.2", Role: domain.RoleWorker}},
			wantValid: true,
		},
		{
			name:      "reused hostname with new IP",
			specs:     []domain.NodeSpec{{Hostname: "cp-0", InternalIP: "10.0.0.50", Role: domain.RoleWorker}},
			wantValid: false,
		},
		{
			name:      "reused IP with new hostname",
			specs:     []domain.NodeSpec{{Hostname: "w-9", InternalIP: "10.0.0.1", Role: domain.RoleWorker}},
			wantValid: false,
		},
		{
			name:      "hostname comparison is case-insensitive",
			specs:     []domain.NodeSpec{{Hostname: "CP-0", InternalIP: "10.0.0.60", Role: domain.RoleWorker}},
			wantValid: false,
		},
		{
			name:      "removed node identity may be reused",
			specs:     []domain.NodeSpec{{Hostname: "old-worker", InternalIP: "10.0.0.9", Role: domain.RoleWorker}},
			wantValid: true,
		},
		{
			name: "duplicate within request",
			specs: []domain.NodeSpec{
				{Hostname: "w-1", InternalIP: "10.0.0.2", Role: domain.RoleWorker},
				{Hostname: "w-1", InternalIP: "10.0.0.3", Role: domain.RoleWorker},
			},
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CheckNodeUniqueness(existing, tt.specs)
			if res.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v (reason: %s)", res.Valid, tt.wantValid, res.Reason)
			}
		})
	}
}

func TestCheckInitialMasterRule(t *testing.T) {
	withInitial := []*ent.Node{
		mkNode(1, "cp-0", "10.0.0.1", node.RoleInitialMaster, node.StatusACTIVE),
	}

	tests := []struct {
		name      string
		nodes     []*ent.Node
		specs     []domain.NodeSpec
		wantValid bool
	}{
		{
			name:      "joining master beside existing initial",
			nodes:     withInitial,
			specs:     []domain.NodeSpec{{Hostname: "cp-1", InternalIP: "10.0.0.2", Role: domain.RoleMaster}},
			wantValid: true,
		},
		{
			name:      "second initial master rejected",
			nodes:     withInitial,
			specs:     []domain.NodeSpec{{Hostname: "cp-x", InternalIP: "10.0.0.3", Role: domain.RoleInitialMaster}},
			wantValid: false,
		},
		{
			name:  "two initial masters in one request",
			nodes: nil,
			specs: []domain.NodeSpec{
				{Hostname: "cp-a", InternalIP: "10.0.0.4", Role: domain.RoleInitialMaster},
				{Hostname: "cp-b", InternalIP: "10.0.0.5", Role: domain.RoleInitialMaster},
			},
			wantValid: false,
		},
		{
			name:      "removed initial master frees the slot",
			nodes:     []*ent.Node{mkNode(1, "cp-0", "10.0.0.1", node.RoleInitialMaster, node.StatusREMOVED)},
			specs:     []domain.NodeSpec{{Hostname: "cp-1", InternalIP: "10.0.0.2", Role: domain.RoleInitialMaster}},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CheckInitialMasterRule(tt.nodes, tt.specs)
			if res.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v (reason: %s)", res.Valid, tt.wantValid, res.Reason)
			}
		})
	}
}
