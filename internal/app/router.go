package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"kube-drover.io/drover/internal/api/handlers"
	"kube-drover.io/drover/internal/api/middleware"
	"kube-drover.io/drover/internal/config"
	"kube-drover.io/drover/internal/pkg/metrics"
)

func newRouter(cfg *config.Config, server *handlers.Server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler(), middleware.Metrics())
	router.Use(cors.New(buildCORSConfig(cfg)))

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")

	v1.GET("/health/live", server.GetLiveness)
	v1.GET("/health/ready", server.GetReadiness)

	clusters := v1.Group("/clusters")
	{
		clusters.POST("", server.CreateCluster)
		clusters.GET("", server.ListClusters)
		clusters.GET("/:id", server.GetCluster)
		clusters.PATCH("/:id", server.UpdateCluster)
		clusters.DELETE("/:id", server.DeleteCluster)

		clusters.GET("/:id/kubeconfig", server.GetKubeconfig)
		clusters.PUT("/:id/kubeconfig", server.PutKubeconfig)

		clusters.GET("/:id/status", server.GetClusterStatus)
		clusters.POST("/:id/refresh", server.RefreshClusterStatus)
		clusters.POST("/:id/sync-nodes", server.SyncNodes)
		clusters.GET("/:id/jobs", server.ListClusterJobs)

		clusters.POST("/:id/install", server.InstallCluster)
		clusters.POST("/:id/nodes", server.AddNodes)
		clusters.POST("/:id/remove-nodes", server.RemoveNodes)
		clusters.POST("/:id/uninstall", server.UninstallCluster)
		clusters.POST("/:id/upgrade-check", server.UpgradeCheck)
	}

	jobs := v1.Group("/jobs")
	{
		jobs.GET("/:id", server.GetJob)
		jobs.GET("/:id/output", server.GetJobOutput)
		jobs.GET("/:id/output/stream", server.StreamJobOutput)
		jobs.POST("/:id/cancel", server.CancelJob)
	}

	credentials := v1.Group("/credentials")
	{
		credentials.POST("", server.CreateCredential)
		credentials.GET("", server.ListCredentials)
		credentials.GET("/:id", server.GetCredential)
		credentials.PATCH("/:id", server.UpdateCredential)
		credentials.DELETE("/:id", server.DeleteCredential)
	}

	return router
}

// buildCORSConfig derives the CORS policy from server config. A wildcard
// origin is honored only with the explicit unsafe flag, and then without
// credentials.
func buildCORSConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: cfg.Server.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}

	if cfg.Server.UnsafeAllowAllOrigins {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
		return c
	}

	var origins []string
	for _, o := range cfg.Server.AllowedOrigins {
		if o == "*" {
			continue
		}
		origins = append(origins, o)
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	c.AllowOrigins = origins
	return c
}
