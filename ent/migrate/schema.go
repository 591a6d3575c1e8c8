// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ClustersColumns holds the columns for the "clusters" table.
	ClustersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 63},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"new", "registered"}, Default: "new"},
		{Name: "kubernetes_version", Type: field.TypeString, Nullable: true},
		{Name: "api_endpoint", Type: field.TypeString, Nullable: true},
		{Name: "encrypted_kubeconfig", Type: field.TypeBytes, Nullable: true},
		{Name: "operation_status", Type: field.TypeEnum, Enums: []string{"idle", "running"}, Default: "idle"},
		{Name: "current_job_id", Type: field.TypeInt, Nullable: true},
		{Name: "operation_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "operation_locked_by", Type: field.TypeEnum, Nullable: true, Enums: []string{"install", "add_nodes", "remove_nodes", "uninstall", "upgrade_check"}},
		{Name: "installation_stage", Type: field.TypeEnum, Enums: []string{"pending", "control_plane_ready", "workers_installing", "workers_ready", "active"}, Default: "pending"},
		{Name: "extra_vars", Type: field.TypeJSON, Nullable: true},
		{Name: "credential_clusters", Type: field.TypeInt, Nullable: true},
	}
	// ClustersTable holds the schema information for the "clusters" table.
	ClustersTable = &schema.Table{
		Name:       "clusters",
		Columns:    ClustersColumns,
		PrimaryKey: []*schema.Column{ClustersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "clusters_credentials_clusters",
				Columns:    []*schema.Column{ClustersColumns[15]},
				RefColumns: []*schema.Column{CredentialsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "cluster_name",
				Unique:  true,
				Columns: []*schema.Column{ClustersColumns[3]},
			},
			{
				Name:    "cluster_operation_status",
				Unique:  false,
				Columns: []*schema.Column{ClustersColumns[9]},
			},
		},
	}
	// ClusterStatusCachesColumns holds the columns for the "cluster_status_caches" table.
	ClusterStatusCachesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "collected_at", Type: field.TypeTime},
		{Name: "cluster_status_cache", Type: field.TypeInt, Unique: true},
	}
	// ClusterStatusCachesTable holds the schema information for the "cluster_status_caches" table.
	ClusterStatusCachesTable = &schema.Table{
		Name:       "cluster_status_caches",
		Columns:    ClusterStatusCachesColumns,
		PrimaryKey: []*schema.Column{ClusterStatusCachesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cluster_status_caches_clusters_status_cache",
				Columns:    []*schema.Column{ClusterStatusCachesColumns[5]},
				RefColumns: []*schema.Column{ClustersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// CredentialsColumns holds the columns for the "credentials" table.
	CredentialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 63},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"ssh_key", "ssh_password"}},
		{Name: "username", Type: field.TypeString},
		{Name: "encrypted_secret", Type: field.TypeBytes},
		{Name: "description", Type: field.TypeString, Nullable: true},
	}
	// CredentialsTable holds the schema information for the "credentials" table.
	CredentialsTable = &schema.Table{
		Name:       "credentials",
		Columns:    CredentialsColumns,
		PrimaryKey: []*schema.Column{CredentialsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "credential_name",
				Unique:  true,
				Columns: []*schema.Column{CredentialsColumns[3]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"install", "add_nodes", "remove_nodes", "uninstall", "upgrade_check"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "RUNNING", "SUCCESS", "FAILED"}, Default: "PENDING"},
		{Name: "node_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "followup_node_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "sequence_stage", Type: field.TypeInt, Default: 1},
		{Name: "parent_job_id", Type: field.TypeInt, Nullable: true},
		{Name: "output", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "readiness_report", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "cluster_jobs", Type: field.TypeInt},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_clusters_jobs",
				Columns:    []*schema.Column{JobsColumns[14]},
				RefColumns: []*schema.Column{ClustersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_cluster_jobs",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[14]},
			},
			{
				Name:    "job_kind",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3]},
			},
		},
	}
	// NodesColumns holds the columns for the "nodes" table.
	NodesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "hostname", Type: field.TypeString, Size: 253},
		{Name: "internal_ip", Type: field.TypeString},
		{Name: "external_ip", Type: field.TypeString, Nullable: true},
		{Name: "use_external_ip", Type: field.TypeBool, Default: false},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"initial_master", "master", "worker"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "INSTALLING", "ACTIVE", "FAILED", "DRAINING", "REMOVED"}, Default: "PENDING"},
		{Name: "ssh_user", Type: field.TypeString, Nullable: true, Default: "root"},
		{Name: "ssh_port", Type: field.TypeInt, Default: 22},
		{Name: "extra_vars", Type: field.TypeJSON, Nullable: true},
		{Name: "cluster_nodes", Type: field.TypeInt},
		{Name: "credential_nodes", Type: field.TypeInt, Nullable: true},
	}
	// NodesTable holds the schema information for the "nodes" table.
	NodesTable = &schema.Table{
		Name:       "nodes",
		Columns:    NodesColumns,
		PrimaryKey: []*schema.Column{NodesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "nodes_clusters_nodes",
				Columns:    []*schema.Column{NodesColumns[12]},
				RefColumns: []*schema.Column{ClustersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "nodes_credentials_nodes",
				Columns:    []*schema.Column{NodesColumns[13]},
				RefColumns: []*schema.Column{CredentialsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "node_hostname_cluster_nodes",
				Unique:  false,
				Columns: []*schema.Column{NodesColumns[3], NodesColumns[12]},
			},
			{
				Name:    "node_status",
				Unique:  false,
				Columns: []*schema.Column{NodesColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ClustersTable,
		ClusterStatusCachesTable,
		CredentialsTable,
		JobsTable,
		NodesTable,
	}
)

func init() {
	ClustersTable.ForeignKeys[0].RefTable = CredentialsTable
	ClusterStatusCachesTable.ForeignKeys[0].RefTable = ClustersTable
	JobsTable.ForeignKeys[0].RefTable = ClustersTable
	NodesTable.ForeignKeys[0].RefTable = ClustersTable
	NodesTable.ForeignKeys[1].RefTable = CredentialsTable
}
