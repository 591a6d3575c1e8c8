package service

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"kube-drover.io/drover/internal/domain"
)

func TestRenderInventory_InitialMasterFirst(t *testing.T) {
	hosts := []InventoryHost{
		{Hostname: "w-1", Address: "10.0.1.1", Role: domain.RoleWorker, SSHUser: "ubuntu"},
		{Hostname: "cp-1", Address: "10.0.0.2", Role: domain.RoleMaster, SSHUser: "ubuntu"},
		{Hostname: "cp-0", Address: "10.0.0.1", Role: domain.RoleInitialMaster, SSHUser: "ubuntu"},
	}

	inv := RenderInventory(hosts)

	mastersIdx := strings.Index(inv, "[masters]")
	workersIdx := strings.Index(inv, "[workers]")
	if mastersIdx < 0 || workersIdx < 0 || mastersIdx > workersIdx {
		t.Fatalf("expected [masters] before [workers], got:\n%s", inv)
	}

	masterBlock := inv[mastersIdx:workersIdx]
	cp0 := strings.Index(masterBlock, "cp-0")
	cp1 := strings.Index(masterBlock, "cp-1")
	if cp0 < 0 || cp1 < 0 || cp0 > cp1 {
		t.Errorf("initial master must lead the [masters] group:\n%s", masterBlock)
	}
	if !strings.Contains(inv, "w-1 ansible_host=10.0.1.1 ansible_user=ubuntu") {
		t.Errorf("worker line missing or malformed:\n%s", inv)
	}
}

func TestRenderHostLine(t *testing.T) {
	tests := []struct {
		name string
		host InventoryHost
		want []string
		not  []string
	}{
		{
			name: "key file auth",
			host: InventoryHost{Hostname: "n1", Address: "10.0.0.1", SSHUser: "root", KeyFile: "/tmp/k"},
			want: []string{"ansible_ssh_private_key_file=/tmp/k"},
			not:  []string{"ansible_ssh_pass", "ansible_port"},
		},
		{
			name: "password auth with custom port",
			host: InventoryHost{Hostname: "n1", Address: "10.0.0.1", SSHPort: 2222, Password: "pw"},
			want: []string{"ansible_port=2222", "ansible_ssh_pass=pw"},
		},
		{
			name: "default port omitted",
			host: InventoryHost{Hostname: "n1", Address: "10.0.0.1", SSHPort: 22},
			not:  []string{"ansible_port"},
		},
		{
			name: "extra vars rendered verbatim and sorted",
			host: InventoryHost{
				Hostname: "n1", Address: "10.0.0.1",
				ExtraVars: map[string]any{"node_taint": "gpu=true", "node_labels": []string{"a", "b"}},
			},
			want: []string{`node_labels=["a","b"]`, "node_taint=gpu=true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := renderHostLine(tt.host)
			for _, w := range tt.want {
				if !strings.Contains(line, w) {
					t.Errorf("line %q missing %q", line, w)
				}
			}
			for _, n := range tt.not {
				if strings.Contains(line, n) {
					t.Errorf("line %q should not contain %q", line, n)
				}
			}
		})
	}
}

func TestRenderVarsFile(t *testing.T) {
	out, err := RenderVarsFile(map[string]any{
		"rke2_version": "v1.31.4+rke2r1",
		"cni":          "cilium",
		"tls_san":      []string{"10.0.0.100"},
	})
	if err != nil {
		t.Fatalf("RenderVarsFile() error = %v", err)
	}

	var back map[string]any
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("rendered vars are not valid YAML: %v", err)
	}
	if back["rke2_version"] != "v1.31.4+rke2r1" {
		t.Errorf("rke2_version = %v", back["rke2_version"])
	}
}

func TestRenderVarsFile_Empty(t *testing.T) {
	out, err := RenderVarsFile(nil)
	if err != nil {
		t.Fatalf("RenderVarsFile(nil) error = %v", err)
	}
	if strings.TrimSpace(string(out)) != "{}" {
		t.Errorf("RenderVarsFile(nil) = %q, want {}", out)
	}
}
