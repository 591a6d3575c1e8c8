package service

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"kube-drover.io/drover/internal/domain"
)

// InventoryHost is one line of a rendered Ansible inventory.
type InventoryHost struct {
	Hostname string
	Address  string
	SSHUser  string
	SSHPort  int
	Role     domain.NodeRole

	// KeyFile is the path of the temp private-key file, set by the runner
	// just before execution. Password auth sets Password instead.
	KeyFile  string
	Password string

	// ExtraVars are opaque per-node variables, rendered verbatim.
	ExtraVars map[string]any
}

// RenderInventory renders an INI inventory with masters ordered before
// workers. The initial master is always the first entry of [masters] so
// bootstrap playbooks can address it as the group head.
func RenderInventory(hosts []InventoryHost) string {
	var masters, workers []InventoryHost
	for _, h := range hosts {
		if h.Role.IsMaster() {
			if h.Role == domain.RoleInitialMaster {
				masters = append([]InventoryHost{h}, masters...)
			} else {
				masters = append(masters, h)
			}
		} else {
			workers = append(workers, h)
		}
	}

	var b strings.Builder
	b.WriteString("[masters]\n")
	for _, h := range masters {
		b.WriteString(renderHostLine(h))
	}
	b.WriteString("\n[workers]\n")
	for _, h := range workers {
		b.WriteString(renderHostLine(h))
	}
	return b.String()
}

func renderHostLine(h InventoryHost) string {
	parts := []string{
		h.Hostname,
		"ansible_host=" + h.Address,
	}
	if h.SSHUser != "" {
		parts = append(parts, "ansible_user="+h.SSHUser)
	}
	if h.SSHPort != 0 && h.SSHPort != 22 {
		parts = append(parts, fmt.Sprintf("ansible_port=%d", h.SSHPort))
	}
	if h.KeyFile != "" {
		parts = append(parts, "ansible_ssh_private_key_file="+h.KeyFile)
	}
	if h.Password != "" {
		parts = append(parts, "ansible_ssh_pass="+h.Password)
	}

	// Per-node extra vars are appended verbatim, sorted for determinism.
	keys := make([]string, 0, len(h.ExtraVars))
	for k := range h.ExtraVars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, k+"="+scalarString(h.ExtraVars[k]))
	}

	return strings.Join(parts, " ") + "\n"
}

// scalarString renders an inventory var value. Non-scalar values are JSON
// encoded, which Ansible parses back into structures.
func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case bool, int, int64, float64:
		return fmt.Sprintf("%v", t)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(raw)
	}
}

// RenderVarsFile renders cluster-level extra vars as a YAML vars file for
// `ansible-playbook -e @file`. Contents pass through uninterpreted.
func RenderVarsFile(vars map[string]any) ([]byte, error) {
	if len(vars) == 0 {
		return []byte("{}\n"), nil
	}
	out, err := yaml.Marshal(vars)
	if err != nil {
		return nil, fmt.Errorf("marshal extra vars: %w", err)
	}
	return out, nil
}
