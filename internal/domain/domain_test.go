package domain

import "testing"

func TestParseOperationKind(t *testing.T) {
	tests := []struct {
		input   string
		want    OperationKind
		wantErr bool
	}{
		{"install", OpInstall, false},
		{"add_nodes", OpAddNodes, false},
		{"remove_nodes", OpRemoveNodes, false},
		{"uninstall", OpUninstall, false},
		{"upgrade_check", OpUpgradeCheck, false},
		{"reboot", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOperationKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOperationKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOperationKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNodeRole_IsMaster(t *testing.T) {
	if !RoleInitialMaster.IsMaster() {
		t.Error("initial_master should be a master role")
	}
	if !RoleMaster.IsMaster() {
		t.Error("master should be a master role")
	}
	if RoleWorker.IsMaster() {
		t.Error("worker should not be a master role")
	}
}

func TestNodeSpec_Address(t *testing.T) {
	tests := []struct {
		name string
		spec NodeSpec
		want string
	}{
		{
			name: "internal by default",
			spec: NodeSpec{InternalIP: "10.0.0.1", ExternalIP: "203.0.113.1"},
			want: "10.0.0.1",
		},
		{
			name: "external when selected",
			spec: NodeSpec{InternalIP: "10.0.0.1", ExternalIP: "203.0.113.1", UseExternalIP: true},
			want: "203.0.113.1",
		},
		{
			name: "falls back to internal when external missing",
			spec: NodeSpec{InternalIP: "10.0.0.1", UseExternalIP: true},
			want: "10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.Address(); got != tt.want {
				t.Errorf("Address() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSequencePlan_Accessors(t *testing.T) {
	single := SequencePlan{Stages: []SequenceStage{
		{Nodes: []NodeSpec{{Hostname: "w1", Role: RoleWorker}}},
	}}
	if single.TwoStage() {
		t.Error("single-stage plan reported as two-stage")
	}
	if got := single.Followup(); got != nil {
		t.Errorf("Followup() = %v, want nil", got)
	}

	double := SequencePlan{Stages: []SequenceStage{
		{Nodes: []NodeSpec{{Hostname: "m1", Role: RoleMaster}}},
		{Nodes: []NodeSpec{{Hostname: "w1", Role: RoleWorker}}},
	}}
	if !double.TwoStage() {
		t.Error("two-stage plan not reported as two-stage")
	}
	if got := double.First(); len(got) != 1 || got[0].Hostname != "m1" {
		t.Errorf("First() = %v, want [m1]", got)
	}
	if got := double.Followup(); len(got) != 1 || got[0].Hostname != "w1" {
		t.Errorf("Followup() = %v, want [w1]", got)
	}
}
