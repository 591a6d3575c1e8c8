package provider

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"

	"kube-drover.io/drover/internal/domain"
)

// ClusterInspector reads live state from a cluster through its API server.
type ClusterInspector interface {
	Snapshot(ctx context.Context, kubeconfig []byte) (*domain.ClusterSnapshot, error)
	EtcdHealthy(ctx context.Context, kubeconfig []byte) (bool, error)
}

// KubeInspector implements ClusterInspector with client-go. Clients are
// built per call from the decrypted kubeconfig and never cached, so the
// plaintext config does not outlive the request.
type KubeInspector struct {
	requestTimeout time.Duration
}

// NewKubeInspector creates a KubeInspector.
func NewKubeInspector(requestTimeout time.Duration) *KubeInspector {
	return &KubeInspector{requestTimeout: requestTimeout}
}

func (i *KubeInspector) clientset(kubeconfig []byte) (*kubernetes.Clientset, error) {
	restCfg, err := clientcmd.RESTConfigFromKubeConfig(kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("parse kubeconfig: %w", err)
	}
	restCfg.Timeout = i.requestTimeout
	client, err := kubernetes.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("build kubernetes client: %w", err)
	}
	return client, nil
}

// Snapshot lists the cluster's nodes and reduces each to a readiness
// observation. Every node is keyed by its name and all reported addresses,
// so callers can match rows by hostname or by IP.
func (i *KubeInspector) Snapshot(ctx context.Context, kubeconfig []byte) (*domain.ClusterSnapshot, error) {
	client, err := i.clientset(kubeconfig)
	if err != nil {
		return nil, err
	}

	nodeList, err := client.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list nodes: %w", err)
	}

	snap := &domain.ClusterSnapshot{
		Nodes:       make(map[string]domain.NodeObservation, len(nodeList.Items)),
		CollectedAt: time.Now().UTC(),
	}
	for _, n := range nodeList.Items {
		obs := domain.NodeObservation{
			Ready:   nodeReady(&n),
			Version: n.Status.NodeInfo.KubeletVersion,
		}
		snap.Nodes[n.Name] = obs
		for _, addr := range n.Status.Addresses {
			switch addr.Type {
			case corev1.NodeInternalIP, corev1.NodeExternalIP, corev1.NodeHostName:
				snap.Nodes[addr.Address] = obs
			}
		}
	}
	return snap, nil
}

// EtcdHealthy reports whether every etcd member pod is ready. RKE2 runs etcd
// as static pods in kube-system labelled component=etcd.
func (i *KubeInspector) EtcdHealthy(ctx context.Context, kubeconfig []byte) (bool, error) {
	client, err := i.clientset(kubeconfig)
	if err != nil {
		return false, err
	}

	pods, err := client.CoreV1().Pods("kube-system").List(ctx, metav1.ListOptions{
		LabelSelector: "component=etcd",
	})
	if err != nil {
		return false, fmt.Errorf("list etcd pods: %w", err)
	}
	if len(pods.Items) == 0 {
		return false, nil
	}
	for _, pod := range pods.Items {
		if !podReady(&pod) {
			return false, nil
		}
	}
	return true, nil
}

func nodeReady(n *corev1.Node) bool {
	for _, cond := range n.Status.Conditions {
		if cond.Type == corev1.NodeReady {
			return cond.Status == corev1.ConditionTrue
		}
	}
	return false
}

func podReady(p *corev1.Pod) bool {
	for _, cond := range p.Status.Conditions {
		if cond.Type == corev1.PodReady {
			return cond.Status == corev1.ConditionTrue
		}
	}
	return false
}
