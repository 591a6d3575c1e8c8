// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/clusterstatuscache"
	"kube-drover.io/drover/ent/credential"
	"kube-drover.io/drover/ent/job"
	"kube-drover.io/drover/ent/node"
	"kube-drover.io/drover/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	clusterMixin := schema.Cluster{}.Mixin()
	clusterMixinFields0 := clusterMixin[0].Fields()
	_ = clusterMixinFields0
	clusterFields := schema.Cluster{}.Fields()
	_ = clusterFields
	// clusterDescCreatedAt is the schema descriptor for created_at field.
	clusterDescCreatedAt := clusterMixinFields0[0].Descriptor()
	// cluster.DefaultCreatedAt holds the default value on creation for the created_at field.
	cluster.DefaultCreatedAt = clusterDescCreatedAt.Default.(func() time.Time)
	// clusterDescUpdatedAt is the schema descriptor for updated_at field.
	clusterDescUpdatedAt := clusterMixinFields0[1].Descriptor()
	// cluster.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cluster.DefaultUpdatedAt = clusterDescUpdatedAt.Default.(func() time.Time)
	// cluster.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cluster.UpdateDefaultUpdatedAt = clusterDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clusterDescName is the schema descriptor for name field.
	clusterDescName := clusterFields[0].Descriptor()
	// cluster.NameValidator is a validator for the "name" field. It is called by the builders before save.
	cluster.NameValidator = func() func(string) error {
		validators := clusterDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	clusterstatuscacheMixin := schema.ClusterStatusCache{}.Mixin()
	clusterstatuscacheMixinFields0 := clusterstatuscacheMixin[0].Fields()
	_ = clusterstatuscacheMixinFields0
	clusterstatuscacheFields := schema.ClusterStatusCache{}.Fields()
	_ = clusterstatuscacheFields
	// clusterstatuscacheDescCreatedAt is the schema descriptor for created_at field.
	clusterstatuscacheDescCreatedAt := clusterstatuscacheMixinFields0[0].Descriptor()
	// clusterstatuscache.DefaultCreatedAt holds the default value on creation for the created_at field.
	clusterstatuscache.DefaultCreatedAt = clusterstatuscacheDescCreatedAt.Default.(func() time.Time)
	// clusterstatuscacheDescUpdatedAt is the schema descriptor for updated_at field.
	clusterstatuscacheDescUpdatedAt := clusterstatuscacheMixinFields0[1].Descriptor()
	// clusterstatuscache.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clusterstatuscache.DefaultUpdatedAt = clusterstatuscacheDescUpdatedAt.Default.(func() time.Time)
	// clusterstatuscache.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clusterstatuscache.UpdateDefaultUpdatedAt = clusterstatuscacheDescUpdatedAt.UpdateDefault.(func() time.Time)
	credentialMixin := schema.Credential{}.Mixin()
	credentialMixinFields0 := credentialMixin[0].Fields()
	_ = credentialMixinFields0
	credentialFields := schema.Credential{}.Fields()
	_ = credentialFields
	// credentialDescCreatedAt is the schema descriptor for created_at field.
	credentialDescCreatedAt := credentialMixinFields0[0].Descriptor()
	// credential.DefaultCreatedAt holds the default value on creation for the created_at field.
	credential.DefaultCreatedAt = credentialDescCreatedAt.Default.(func() time.Time)
	// credentialDescUpdatedAt is the schema descriptor for updated_at field.
	credentialDescUpdatedAt := credentialMixinFields0[1].Descriptor()
	// credential.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	credential.DefaultUpdatedAt = credentialDescUpdatedAt.Default.(func() time.Time)
	// credential.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	credential.UpdateDefaultUpdatedAt = credentialDescUpdatedAt.UpdateDefault.(func() time.Time)
	// credentialDescName is the schema descriptor for name field.
	credentialDescName := credentialFields[0].Descriptor()
	// credential.NameValidator is a validator for the "name" field. It is called by the builders before save.
	credential.NameValidator = func() func(string) error {
		validators := credentialDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// credentialDescUsername is the schema descriptor for username field.
	credentialDescUsername := credentialFields[2].Descriptor()
	// credential.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	credential.UsernameValidator = credentialDescUsername.Validators[0].(func(string) error)
	jobMixin := schema.Job{}.Mixin()
	jobMixinFields0 := jobMixin[0].Fields()
	_ = jobMixinFields0
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobMixinFields0[0].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobMixinFields0[1].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobDescSequenceStage is the schema descriptor for sequence_stage field.
	jobDescSequenceStage := jobFields[4].Descriptor()
	// job.DefaultSequenceStage holds the default value on creation for the sequence_stage field.
	job.DefaultSequenceStage = jobDescSequenceStage.Default.(int)
	// jobDescOutput is the schema descriptor for output field.
	jobDescOutput := jobFields[6].Descriptor()
	// job.DefaultOutput holds the default value on creation for the output field.
	job.DefaultOutput = jobDescOutput.Default.(string)
	nodeMixin := schema.Node{}.Mixin()
	nodeMixinFields0 := nodeMixin[0].Fields()
	_ = nodeMixinFields0
	nodeFields := schema.Node{}.Fields()
	_ = nodeFields
	// nodeDescCreatedAt is the schema descriptor for created_at field.
	nodeDescCreatedAt := nodeMixinFields0[0].Descriptor()
	// node.DefaultCreatedAt holds the default value on creation for the created_at field.
	node.DefaultCreatedAt = nodeDescCreatedAt.Default.(func() time.Time)
	// nodeDescUpdatedAt is the schema descriptor for updated_at field.
	nodeDescUpdatedAt := nodeMixinFields0[1].Descriptor()
	// node.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	node.DefaultUpdatedAt = nodeDescUpdatedAt.Default.(func() time.Time)
	// node.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	node.UpdateDefaultUpdatedAt = nodeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// nodeDescHostname is the schema descriptor for hostname field.
	nodeDescHostname := nodeFields[0].Descriptor()
	// node.HostnameValidator is a validator for the "hostname" field. It is called by the builders before save.
	node.HostnameValidator = func() func(string) error {
		validators := nodeDescHostname.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(hostname string) error {
			for _, fn := range fns {
				if err := fn(hostname); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// nodeDescInternalIP is the schema descriptor for internal_ip field.
	nodeDescInternalIP := nodeFields[1].Descriptor()
	// node.InternalIPValidator is a validator for the "internal_ip" field. It is called by the builders before save.
	node.InternalIPValidator = nodeDescInternalIP.Validators[0].(func(string) error)
	// nodeDescUseExternalIP is the schema descriptor for use_external_ip field.
	nodeDescUseExternalIP := nodeFields[3].Descriptor()
	// node.DefaultUseExternalIP holds the default value on creation for the use_external_ip field.
	node.DefaultUseExternalIP = nodeDescUseExternalIP.Default.(bool)
	// nodeDescSSHUser is the schema descriptor for ssh_user field.
	nodeDescSSHUser := nodeFields[6].Descriptor()
	// node.DefaultSSHUser holds the default value on creation for the ssh_user field.
	node.DefaultSSHUser = nodeDescSSHUser.Default.(string)
	// nodeDescSSHPort is the schema descriptor for ssh_port field.
	nodeDescSSHPort := nodeFields[7].Descriptor()
	// node.DefaultSSHPort holds the default value on creation for the ssh_port field.
	node.DefaultSSHPort = nodeDescSSHPort.Default.(int)
}
