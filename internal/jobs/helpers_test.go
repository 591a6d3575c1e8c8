package jobs

import (
	"context"
	"fmt"
	"testing"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/ent/credential"
	"kube-drover.io/drover/ent/node"
	"kube-drover.io/drover/internal/domain"
	"kube-drover.io/drover/internal/pkg/logger"
	"kube-drover.io/drover/internal/service"
)

func init() {
	_ = logger.Init("error", "json")
}

type fakeRevealer struct {
	creds map[int]*service.RevealedCredential
	calls int
}

func (f *fakeRevealer) Reveal(_ context.Context, id int) (*service.RevealedCredential, error) {
	f.calls++
	rc, ok := f.creds[id]
	if !ok {
		return nil, fmt.Errorf("credential %d not found", id)
	}
	return rc, nil
}

func testNode(id int, hostname string, cred *ent.Credential) *ent.Node {
	n := &ent.Node{
		ID:         id,
		Hostname:   hostname,
		InternalIP: fmt.Sprintf("10.0.0.%d", id),
		Role:       node.RoleWorker,
		SSHUser:    "root",
		SSHPort:    22,
	}
	n.Edges.Credential = cred
	return n
}

func TestBuildInventory_KeyAndPasswordAuth(t *testing.T) {
	keyCred := &ent.Credential{ID: 1, Kind: credential.KindSSHKey}
	pwCred := &ent.Credential{ID: 2, Kind: credential.KindSSHPassword}

	revealer := &fakeRevealer{creds: map[int]*service.RevealedCredential{
		1: {Kind: credential.KindSSHKey, Username: "ubuntu", Secret: "-----BEGIN KEY-----"},
		2: {Kind: credential.KindSSHPassword, Username: "root", Secret: "hunter2"},
	}}

	cl := &ent.Cluster{ID: 1}
	nodes := []*ent.Node{
		testNode(1, "n1", keyCred),
		testNode(2, "n2", pwCred),
	}

	hosts, keys, err := buildInventory(context.Background(), revealer, cl, nodes)
	if err != nil {
		t.Fatalf("buildInventory() error = %v", err)
	}
	if len(hosts) != 2 {
		t.Fatalf("hosts = %d, want 2", len(hosts))
	}
	if hosts[0].KeyFile != "credential-1" {
		t.Errorf("hosts[0].KeyFile = %q, want credential-1", hosts[0].KeyFile)
	}
	if string(keys["credential-1"]) != "-----BEGIN KEY-----" {
		t.Errorf("keys[credential-1] = %q", keys["credential-1"])
	}
	if hosts[1].Password != "hunter2" {
		t.Errorf("hosts[1].Password = %q, want hunter2", hosts[1].Password)
	}
	if hosts[1].KeyFile != "" {
		t.Errorf("hosts[1].KeyFile = %q, want empty for password auth", hosts[1].KeyFile)
	}
}

func TestBuildInventory_ClusterDefaultCredential(t *testing.T) {
	clusterCred := &ent.Credential{ID: 9, Kind: credential.KindSSHKey}
	cl := &ent.Cluster{ID: 1}
	cl.Edges.Credential = clusterCred

	revealer := &fakeRevealer{creds: map[int]*service.RevealedCredential{
		9: {Kind: credential.KindSSHKey, Username: "ops", Secret: "pem"},
	}}

	hosts, _, err := buildInventory(context.Background(), revealer, cl, []*ent.Node{
		testNode(1, "n1", nil),
		testNode(2, "n2", nil),
	})
	if err != nil {
		t.Fatalf("buildInventory() error = %v", err)
	}
	for _, h := range hosts {
		if h.KeyFile != "credential-9" {
			t.Errorf("host %s KeyFile = %q, want credential-9", h.Hostname, h.KeyFile)
		}
	}
	if revealer.calls != 1 {
		t.Errorf("Reveal called %d times, want 1 (shared credential decrypted once)", revealer.calls)
	}
}

func TestBuildInventory_NoCredential(t *testing.T) {
	cl := &ent.Cluster{ID: 1}
	if _, _, err := buildInventory(context.Background(), &fakeRevealer{}, cl, []*ent.Node{
		testNode(1, "n1", nil),
	}); err == nil {
		t.Fatal("buildInventory() expected error for node without any credential")
	}
}

func TestBuildInventory_FallbackSSHUser(t *testing.T) {
	cred := &ent.Credential{ID: 3, Kind: credential.KindSSHPassword}
	revealer := &fakeRevealer{creds: map[int]*service.RevealedCredential{
		3: {Kind: credential.KindSSHPassword, Username: "fallback", Secret: "pw"},
	}}

	n := testNode(1, "n1", cred)
	n.SSHUser = ""

	hosts, _, err := buildInventory(context.Background(), revealer, &ent.Cluster{ID: 1}, []*ent.Node{n})
	if err != nil {
		t.Fatalf("buildInventory() error = %v", err)
	}
	if hosts[0].SSHUser != "fallback" {
		t.Errorf("SSHUser = %q, want credential username as fallback", hosts[0].SSHUser)
	}
}

func TestNodeAddress(t *testing.T) {
	n := &ent.Node{InternalIP: "10.0.0.1", ExternalIP: "203.0.113.1"}
	if got := nodeAddress(n); got != "10.0.0.1" {
		t.Errorf("nodeAddress() = %q, want internal IP by default", got)
	}
	n.UseExternalIP = true
	if got := nodeAddress(n); got != "203.0.113.1" {
		t.Errorf("nodeAddress() = %q, want external IP when flagged", got)
	}
	n.ExternalIP = ""
	if got := nodeAddress(n); got != "10.0.0.1" {
		t.Errorf("nodeAddress() = %q, want internal IP when external is empty", got)
	}
}

func TestStructToMap(t *testing.T) {
	healthy := true
	out, err := structToMap(&domain.ReadinessBundle{
		ClusterID:     3,
		TargetVersion: "v1.31.4+rke2r1",
		EtcdHealthy:   &healthy,
	})
	if err != nil {
		t.Fatalf("structToMap() error = %v", err)
	}
	if out["target_version"] != "v1.31.4+rke2r1" {
		t.Errorf("target_version = %v", out["target_version"])
	}
	if out["etcd_healthy"] != true {
		t.Errorf("etcd_healthy = %v", out["etcd_healthy"])
	}
}
