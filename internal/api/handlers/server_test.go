package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/job"
	"kube-drover.io/drover/internal/api/middleware"
	apperrors "kube-drover.io/drover/internal/pkg/errors"
	"kube-drover.io/drover/internal/pkg/logger"
	"kube-drover.io/drover/internal/pkg/secrets"
	"kube-drover.io/drover/internal/service"
	"kube-drover.io/drover/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

// newTestRouter wires a Server over a fresh isolated schema. Operation
// start endpoints need a live River client and are covered at the usecase
// layer instead.
func newTestRouter(t *testing.T, prefix string) (*gin.Engine, *ent.Client) {
	t.Helper()

	client := testutil.OpenEntPostgres(t, prefix)

	key, err := secrets.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	box, err := secrets.New(key)
	if err != nil {
		t.Fatalf("new box: %v", err)
	}

	clusters := service.NewClusterService(client, box)
	credentials := service.NewCredentialService(client, box)

	server := NewServer(ServerDeps{
		EntClient:   client,
		Clusters:    clusters,
		Credentials: credentials,
	})

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.POST("/clusters", server.CreateCluster)
	router.GET("/clusters", server.ListClusters)
	router.GET("/clusters/:id", server.GetCluster)
	router.PATCH("/clusters/:id", server.UpdateCluster)
	router.DELETE("/clusters/:id", server.DeleteCluster)
	router.GET("/clusters/:id/jobs", server.ListClusterJobs)
	router.GET("/jobs/:id", server.GetJob)
	router.GET("/jobs/:id/output", server.GetJobOutput)
	router.POST("/credentials", server.CreateCredential)
	router.GET("/credentials", server.ListCredentials)
	return router, client
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateCluster_RoundTrip(t *testing.T) {
	router, _ := newTestRouter(t, "h_cluster_create")

	w := doJSON(t, router, http.MethodPost, "/clusters", `{
		"name": "alpha",
		"kind": "new",
		"kubernetes_version": "v1.31.4+rke2r1",
		"nodes": [
			{"hostname": "m1", "internal_ip": "10.0.0.1", "role": "initial_master"},
			{"hostname": "w1", "internal_ip": "10.0.0.2", "role": "worker"}
		]
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}

	var created APICluster
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if created.Name != "alpha" || len(created.Nodes) != 2 {
		t.Fatalf("created = %+v, want alpha with 2 nodes", created)
	}
	if created.OperationStatus != string(cluster.OperationStatusIdle) {
		t.Errorf("operation_status = %s, want idle", created.OperationStatus)
	}

	// Duplicate names are rejected with a conflict.
	w = doJSON(t, router, http.MethodPost, "/clusters", `{
		"name": "alpha",
		"kind": "new",
		"nodes": [{"hostname": "m1", "internal_ip": "10.1.0.1", "role": "initial_master"}]
	}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate status = %d, want 409", w.Code)
	}
}

func TestCreateCluster_InvalidKind(t *testing.T) {
	router, _ := newTestRouter(t, "h_cluster_kind")

	w := doJSON(t, router, http.MethodPost, "/clusters", `{"name": "x", "kind": "weird"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCreateCluster_MissingInitialMaster(t *testing.T) {
	router, _ := newTestRouter(t, "h_cluster_im")

	w := doJSON(t, router, http.MethodPost, "/clusters", `{
		"name": "beta",
		"kind": "new",
		"nodes": [{"hostname": "w1", "internal_ip": "10.0.0.2", "role": "worker"}]
	}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422, body = %s", w.Code, w.Body.String())
	}

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["code"] != apperrors.CodeInitialMasterRule {
		t.Errorf("code = %v, want %s", body["code"], apperrors.CodeInitialMasterRule)
	}
}

func TestDeleteCluster_RefusedWhileLocked(t *testing.T) {
	router, client := newTestRouter(t, "h_cluster_del")

	w := doJSON(t, router, http.MethodPost, "/clusters", `{
		"name": "locked",
		"kind": "new",
		"nodes": [{"hostname": "m1", "internal_ip": "10.0.0.1", "role": "initial_master"}]
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}
	var created APICluster
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	client.Cluster.UpdateOneID(created.ID).
		SetOperationStatus(cluster.OperationStatusRunning).
		SetOperationLockedBy(cluster.OperationLockedByInstall).
		ExecX(context.Background())

	w = doJSON(t, router, http.MethodDelete, "/clusters/"+itoa(created.ID), "")
	if w.Code != http.StatusConflict {
		t.Fatalf("delete status = %d, want 409, body = %s", w.Code, w.Body.String())
	}

	client.Cluster.UpdateOneID(created.ID).
		SetOperationStatus(cluster.OperationStatusIdle).
		ClearOperationLockedBy().
		ExecX(context.Background())

	w = doJSON(t, router, http.MethodDelete, "/clusters/"+itoa(created.ID), "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete after unlock status = %d, want 204", w.Code)
	}
}

func TestGetJob_NotFound(t *testing.T) {
	router, _ := newTestRouter(t, "h_job_404")

	w := doJSON(t, router, http.MethodGet, "/jobs/999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["code"] != apperrors.CodeJobNotFound {
		t.Errorf("code = %v, want %s", body["code"], apperrors.CodeJobNotFound)
	}
}

func TestGetJobOutput_OffsetDelta(t *testing.T) {
	router, client := newTestRouter(t, "h_job_output")
	ctx := context.Background()

	cl := client.Cluster.Create().SetName("out").SetKind(cluster.KindNew).SaveX(ctx)
	j := client.Job.Create().
		SetKind(job.KindInstall).
		SetStatus(job.StatusRUNNING).
		SetOutput("line one\nline two\n").
		SetCluster(cl).
		SaveX(ctx)

	w := doJSON(t, router, http.MethodGet, "/jobs/"+itoa(j.ID)+"/output", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var first struct {
		Offset int    `json:"offset"`
		Output string `json:"output"`
		Done   bool   `json:"done"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &first)
	if first.Output != "line one\nline two\n" || first.Done {
		t.Fatalf("first poll = %+v", first)
	}

	// Poll again from the reported offset: nothing new yet.
	w = doJSON(t, router, http.MethodGet, "/jobs/"+itoa(j.ID)+"/output?offset="+itoa(first.Offset), "")
	var second struct {
		Output string `json:"output"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &second)
	if second.Output != "" {
		t.Errorf("delta = %q, want empty", second.Output)
	}
}

func TestCredentials_SecretNeverReturned(t *testing.T) {
	router, _ := newTestRouter(t, "h_cred")

	w := doJSON(t, router, http.MethodPost, "/credentials", `{
		"name": "ops", "kind": "ssh_password", "username": "root", "secret": "hunter2"
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "hunter2") {
		t.Fatal("credential secret leaked into the response")
	}

	w = doJSON(t, router, http.MethodGet, "/credentials", "")
	if strings.Contains(w.Body.String(), "hunter2") || strings.Contains(w.Body.String(), "secret") {
		t.Fatalf("credential list leaks secret material: %s", w.Body.String())
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
