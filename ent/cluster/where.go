// Code generated by ent, DO NOT EDIT.

package cluster

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"kube-drover.io/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Cluster {
	return predicate.Cluster(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Cluster {
	return predicate.Cluster(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Cluster {
	return predicate.Cluster(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Cluster {
	return predicate.Cluster(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Cluster {
	return predicate.Cluster(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Cluster {
	return predicate.Cluster(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Cluster {
	return predicate.Cluster(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldDescription, v))
}

// KubernetesVersion applies equality check predicate on the "kubernetes_version" field. It's identical to KubernetesVersionEQ.
func KubernetesVersion(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldKubernetesVersion, v))
}

// APIEndpoint applies equality check predicate on the "api_endpoint" field. It's identical to APIEndpointEQ.
func APIEndpoint(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldAPIEndpoint, v))
}

// EncryptedKubeconfig applies equality check predicate on the "encrypted_kubeconfig" field. It's identical to EncryptedKubeconfigEQ.
func EncryptedKubeconfig(v []byte) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldEncryptedKubeconfig, v))
}

// CurrentJobID applies equality check predicate on the "current_job_id" field. It's identical to CurrentJobIDEQ.
func CurrentJobID(v int) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldCurrentJobID, v))
}

// OperationStartedAt applies equality check predicate on the "operation_started_at" field. It's identical to OperationStartedAtEQ.
func OperationStartedAt(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldOperationStartedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Cluster {
	return predicate.Cluster(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Cluster {
	return predicate.Cluster(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Cluster {
	return predicate.Cluster(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Cluster {
	return predicate.Cluster(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Cluster {
	return predicate.Cluster(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Cluster {
	return predicate.Cluster(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldContainsFold(FieldDescription, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Cluster {
	return predicate.Cluster(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Cluster {
	return predicate.Cluster(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Cluster {
	return predicate.Cluster(sql.FieldNotIn(FieldKind, vs...))
}

// KubernetesVersionEQ applies the EQ predicate on the "kubernetes_version" field.
func KubernetesVersionEQ(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldKubernetesVersion, v))
}

// KubernetesVersionNEQ applies the NEQ predicate on the "kubernetes_version" field.
func KubernetesVersionNEQ(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldNEQ(FieldKubernetesVersion, v))
}

// KubernetesVersionIn applies the In predicate on the "kubernetes_version" field.
func KubernetesVersionIn(vs ...string) predicate.Cluster {
	return predicate.Cluster(sql.FieldIn(FieldKubernetesVersion, vs...))
}

// KubernetesVersionNotIn applies the NotIn predicate on the "kubernetes_version" field.
func KubernetesVersionNotIn(vs ...string) predicate.Cluster {
	return predicate.Cluster(sql.FieldNotIn(FieldKubernetesVersion, vs...))
}

// KubernetesVersionGT applies the GT predicate on the "kubernetes_version" field.
func KubernetesVersionGT(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldGT(FieldKubernetesVersion, v))
}

// KubernetesVersionGTE applies the GTE predicate on the "kubernetes_version" field.
func KubernetesVersionGTE(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldGTE(FieldKubernetesVersion, v))
}

// KubernetesVersionLT applies the LT predicate on the "kubernetes_version" field.
func KubernetesVersionLT(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldLT(FieldKubernetesVersion, v))
}

// KubernetesVersionLTE applies the LTE predicate on the "kubernetes_version" field.
func KubernetesVersionLTE(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldLTE(FieldKubernetesVersion, v))
}

// KubernetesVersionContains applies the Contains predicate on the "kubernetes_version" field.
func KubernetesVersionContains(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldContains(FieldKubernetesVersion, v))
}

// KubernetesVersionHasPrefix applies the HasPrefix predicate on the "kubernetes_version" field.
func KubernetesVersionHasPrefix(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldHasPrefix(FieldKubernetesVersion, v))
}

// KubernetesVersionHasSuffix applies the HasSuffix predicate on the "kubernetes_version" field.
func KubernetesVersionHasSuffix(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldHasSuffix(FieldKubernetesVersion, v))
}

// KubernetesVersionIsNil applies the IsNil predicate on the "kubernetes_version" field.
func KubernetesVersionIsNil() predicate.Cluster {
	return predicate.Cluster(sql.FieldIsNull(FieldKubernetesVersion))
}

// KubernetesVersionNotNil applies the NotNil predicate on the "kubernetes_version" field.
func KubernetesVersionNotNil() predicate.Cluster {
	return predicate.Cluster(sql.FieldNotNull(FieldKubernetesVersion))
}

// KubernetesVersionEqualFold applies the EqualFold predicate on the "kubernetes_version" field.
func KubernetesVersionEqualFold(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldEqualFold(FieldKubernetesVersion, v))
}

// KubernetesVersionContainsFold applies the ContainsFold predicate on the "kubernetes_version" field.
func KubernetesVersionContainsFold(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldContainsFold(FieldKubernetesVersion, v))
}

// APIEndpointEQ applies the EQ predicate on the "api_endpoint" field.
func APIEndpointEQ(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldAPIEndpoint, v))
}

// APIEndpointNEQ applies the NEQ predicate on the "api_endpoint" field.
func APIEndpointNEQ(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldNEQ(FieldAPIEndpoint, v))
}

// APIEndpointIn applies the In predicate on the "api_endpoint" field.
func APIEndpointIn(vs ...string) predicate.Cluster {
	return predicate.Cluster(sql.FieldIn(FieldAPIEndpoint, vs...))
}

// APIEndpointNotIn applies the NotIn predicate on the "api_endpoint" field.
func APIEndpointNotIn(vs ...string) predicate.Cluster {
	return predicate.Cluster(sql.FieldNotIn(FieldAPIEndpoint, vs...))
}

// APIEndpointGT applies the GT predicate on the "api_endpoint" field.
func APIEndpointGT(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldGT(FieldAPIEndpoint, v))
}

// APIEndpointGTE applies the GTE predicate on the "api_endpoint" field.
func APIEndpointGTE(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldGTE(FieldAPIEndpoint, v))
}

// APIEndpointLT applies the LT predicate on the "api_endpoint" field.
func APIEndpointLT(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldLT(FieldAPIEndpoint, v))
}

// APIEndpointLTE applies the LTE predicate on the "api_endpoint" field.
func APIEndpointLTE(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldLTE(FieldAPIEndpoint, v))
}

// APIEndpointContains applies the Contains predicate on the "api_endpoint" field.
func APIEndpointContains(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldContains(FieldAPIEndpoint, v))
}

// APIEndpointHasPrefix applies the HasPrefix predicate on the "api_endpoint" field.
func APIEndpointHasPrefix(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldHasPrefix(FieldAPIEndpoint, v))
}

// APIEndpointHasSuffix applies the HasSuffix predicate on the "api_endpoint" field.
func APIEndpointHasSuffix(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldHasSuffix(FieldAPIEndpoint, v))
}

// APIEndpointIsNil applies the IsNil predicate on the "api_endpoint" field.
func APIEndpointIsNil() predicate.Cluster {
	return predicate.Cluster(sql.FieldIsNull(FieldAPIEndpoint))
}

// APIEndpointNotNil applies the NotNil predicate on the "api_endpoint" field.
func APIEndpointNotNil() predicate.Cluster {
	return predicate.Cluster(sql.FieldNotNull(FieldAPIEndpoint))
}

// APIEndpointEqualFold applies the EqualFold predicate on the "api_endpoint" field.
func APIEndpointEqualFold(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldEqualFold(FieldAPIEndpoint, v))
}

// APIEndpointContainsFold applies the ContainsFold predicate on the "api_endpoint" field.
func APIEndpointContainsFold(v string) predicate.Cluster {
	return predicate.Cluster(sql.FieldContainsFold(FieldAPIEndpoint, v))
}

// EncryptedKubeconfigEQ applies the EQ predicate on the "encrypted_kubeconfig" field.
func EncryptedKubeconfigEQ(v []byte) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldEncryptedKubeconfig, v))
}

// EncryptedKubeconfigNEQ applies the NEQ predicate on the "encrypted_kubeconfig" field.
func EncryptedKubeconfigNEQ(v []byte) predicate.Cluster {
	return predicate.Cluster(sql.FieldNEQ(FieldEncryptedKubeconfig, v))
}

// EncryptedKubeconfigIn applies the In predicate on the "encrypted_kubeconfig" field.
func EncryptedKubeconfigIn(vs ...[]byte) predicate.Cluster {
	return predicate.Cluster(sql.FieldIn(FieldEncryptedKubeconfig, vs...))
}

// EncryptedKubeconfigNotIn applies the NotIn predicate on the "encrypted_kubeconfig" field.
func EncryptedKubeconfigNotIn(vs ...[]byte) predicate.Cluster {
	return predicate.Cluster(sql.FieldNotIn(FieldEncryptedKubeconfig, vs...))
}

// EncryptedKubeconfigGT applies the GT predicate on the "encrypted_kubeconfig" field.
func EncryptedKubeconfigGT(v []byte) predicate.Cluster {
	return predicate.Cluster(sql.FieldGT(FieldEncryptedKubeconfig, v))
}

// EncryptedKubeconfigGTE applies the GTE predicate on the "encrypted_kubeconfig" field.
func EncryptedKubeconfigGTE(v []byte) predicate.Cluster {
	return predicate.Cluster(sql.FieldGTE(FieldEncryptedKubeconfig, v))
}

// EncryptedKubeconfigLT applies the LT predicate on the "encrypted_kubeconfig" field.
func EncryptedKubeconfigLT(v []byte) predicate.Cluster {
	return predicate.Cluster(sql.FieldLT(FieldEncryptedKubeconfig, v))
}

// EncryptedKubeconfigLTE applies the LTE predicate on the "encrypted_kubeconfig" field.
func EncryptedKubeconfigLTE(v []byte) predicate.Cluster {
	return predicate.Cluster(sql.FieldLTE(FieldEncryptedKubeconfig, v))
}

// EncryptedKubeconfigIsNil applies the IsNil predicate on the "encrypted_kubeconfig" field.
func EncryptedKubeconfigIsNil() predicate.Cluster {
	return predicate.Cluster(sql.FieldIsNull(FieldEncryptedKubeconfig))
}

// EncryptedKubeconfigNotNil applies the NotNil predicate on the "encrypted_kubeconfig" field.
func EncryptedKubeconfigNotNil() predicate.Cluster {
	return predicate.Cluster(sql.FieldNotNull(FieldEncryptedKubeconfig))
}

// OperationStatusEQ applies the EQ predicate on the "operation_status" field.
func OperationStatusEQ(v OperationStatus) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldOperationStatus, v))
}

// OperationStatusNEQ applies the NEQ predicate on the "operation_status" field.
func OperationStatusNEQ(v OperationStatus) predicate.Cluster {
	return predicate.Cluster(sql.FieldNEQ(FieldOperationStatus, v))
}

// OperationStatusIn applies the In predicate on the "operation_status" field.
func OperationStatusIn(vs ...OperationStatus) predicate.Cluster {
	return predicate.Cluster(sql.FieldIn(FieldOperationStatus, vs...))
}

// OperationStatusNotIn applies the NotIn predicate on the "operation_status" field.
func OperationStatusNotIn(vs ...OperationStatus) predicate.Cluster {
	return predicate.Cluster(sql.FieldNotIn(FieldOperationStatus, vs...))
}

// CurrentJobIDEQ applies the EQ predicate on the "current_job_id" field.
func CurrentJobIDEQ(v int) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldCurrentJobID, v))
}

// CurrentJobIDNEQ applies the NEQ predicate on the "current_job_id" field.
func CurrentJobIDNEQ(v int) predicate.Cluster {
	return predicate.Cluster(sql.FieldNEQ(FieldCurrentJobID, v))
}

// CurrentJobIDIn applies the In predicate on the "current_job_id" field.
func CurrentJobIDIn(vs ...int) predicate.Cluster {
	return predicate.Cluster(sql.FieldIn(FieldCurrentJobID, vs...))
}

// CurrentJobIDNotIn applies the NotIn predicate on the "current_job_id" field.
func CurrentJobIDNotIn(vs ...int) predicate.Cluster {
	return predicate.Cluster(sql.FieldNotIn(FieldCurrentJobID, vs...))
}

// CurrentJobIDGT applies the GT predicate on the "current_job_id" field.
func CurrentJobIDGT(v int) predicate.Cluster {
	return predicate.Cluster(sql.FieldGT(FieldCurrentJobID, v))
}

// CurrentJobIDGTE applies the GTE predicate on the "current_job_id" field.
func CurrentJobIDGTE(v int) predicate.Cluster {
	return predicate.Cluster(sql.FieldGTE(FieldCurrentJobID, v))
}

// CurrentJobIDLT applies the LT predicate on the "current_job_id" field.
func CurrentJobIDLT(v int) predicate.Cluster {
	return predicate.Cluster(sql.FieldLT(FieldCurrentJobID, v))
}

// CurrentJobIDLTE applies the LTE predicate on the "current_job_id" field.
func CurrentJobIDLTE(v int) predicate.Cluster {
	return predicate.Cluster(sql.FieldLTE(FieldCurrentJobID, v))
}

// CurrentJobIDIsNil applies the IsNil predicate on the "current_job_id" field.
func CurrentJobIDIsNil() predicate.Cluster {
	return predicate.Cluster(sql.FieldIsNull(FieldCurrentJobID))
}

// CurrentJobIDNotNil applies the NotNil predicate on the "current_job_id" field.
func CurrentJobIDNotNil() predicate.Cluster {
	return predicate.Cluster(sql.FieldNotNull(FieldCurrentJobID))
}

// OperationStartedAtEQ applies the EQ predicate on the "operation_started_at" field.
func OperationStartedAtEQ(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldOperationStartedAt, v))
}

// OperationStartedAtNEQ applies the NEQ predicate on the "operation_started_at" field.
func OperationStartedAtNEQ(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldNEQ(FieldOperationStartedAt, v))
}

// OperationStartedAtIn applies the In predicate on the "operation_started_at" field.
func OperationStartedAtIn(vs ...time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldIn(FieldOperationStartedAt, vs...))
}

// OperationStartedAtNotIn applies the NotIn predicate on the "operation_started_at" field.
func OperationStartedAtNotIn(vs ...time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldNotIn(FieldOperationStartedAt, vs...))
}

// OperationStartedAtGT applies the GT predicate on the "operation_started_at" field.
func OperationStartedAtGT(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldGT(FieldOperationStartedAt, v))
}

// OperationStartedAtGTE applies the GTE predicate on the "operation_started_at" field.
func OperationStartedAtGTE(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldGTE(FieldOperationStartedAt, v))
}

// OperationStartedAtLT applies the LT predicate on the "operation_started_at" field.
func OperationStartedAtLT(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldLT(FieldOperationStartedAt, v))
}

// OperationStartedAtLTE applies the LTE predicate on the "operation_started_at" field.
func OperationStartedAtLTE(v time.Time) predicate.Cluster {
	return predicate.Cluster(sql.FieldLTE(FieldOperationStartedAt, v))
}

// OperationStartedAtIsNil applies the IsNil predicate on the "operation_started_at" field.
func OperationStartedAtIsNil() predicate.Cluster {
	return predicate.Cluster(sql.FieldIsNull(FieldOperationStartedAt))
}

// OperationStartedAtNotNil applies the NotNil predicate on the "operation_started_at" field.
func OperationStartedAtNotNil() predicate.Cluster {
	return predicate.Cluster(sql.FieldNotNull(FieldOperationStartedAt))
}

// OperationLockedByEQ applies the EQ predicate on the "operation_locked_by" field.
func OperationLockedByEQ(v OperationLockedBy) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldOperationLockedBy, v))
}

// OperationLockedByNEQ applies the NEQ predicate on the "operation_locked_by" field.
func OperationLockedByNEQ(v OperationLockedBy) predicate.Cluster {
	return predicate.Cluster(sql.FieldNEQ(FieldOperationLockedBy, v))
}

// OperationLockedByIn applies the In predicate on the "operation_locked_by" field.
func OperationLockedByIn(vs ...OperationLockedBy) predicate.Cluster {
	return predicate.Cluster(sql.FieldIn(FieldOperationLockedBy, vs...))
}

// OperationLockedByNotIn applies the NotIn predicate on the "operation_locked_by" field.
func OperationLockedByNotIn(vs ...OperationLockedBy) predicate.Cluster {
	return predicate.Cluster(sql.FieldNotIn(FieldOperationLockedBy, vs...))
}

// OperationLockedByIsNil applies the IsNil predicate on the "operation_locked_by" field.
func OperationLockedByIsNil() predicate.Cluster {
	return predicate.Cluster(sql.FieldIsNull(FieldOperationLockedBy))
}

// OperationLockedByNotNil applies the NotNil predicate on the "operation_locked_by" field.
func OperationLockedByNotNil() predicate.Cluster {
	return predicate.Cluster(sql.FieldNotNull(FieldOperationLockedBy))
}

// InstallationStageEQ applies the EQ predicate on the "installation_stage" field.
func InstallationStageEQ(v InstallationStage) predicate.Cluster {
	return predicate.Cluster(sql.FieldEQ(FieldInstallationStage, v))
}

// InstallationStageNEQ applies the NEQ predicate on the "installation_stage" field.
func InstallationStageNEQ(v InstallationStage) predicate.Cluster {
	return predicate.Cluster(sql.FieldNEQ(FieldInstallationStage, v))
}

// InstallationStageIn applies the In predicate on the "installation_stage" field.
func InstallationStageIn(vs ...InstallationStage) predicate.Cluster {
	return predicate.Cluster(sql.FieldIn(FieldInstallationStage, vs...))
}

// InstallationStageNotIn applies the NotIn predicate on the "installation_stage" field.
func InstallationStageNotIn(vs ...InstallationStage) predicate.Cluster {
	return predicate.Cluster(sql.FieldNotIn(FieldInstallationStage, vs...))
}

// ExtraVarsIsNil applies the IsNil predicate on the "extra_vars" field.
func ExtraVarsIsNil() predicate.Cluster {
	return predicate.Cluster(sql.FieldIsNull(FieldExtraVars))
}

// ExtraVarsNotNil applies the NotNil predicate on the "extra_vars" field.
func ExtraVarsNotNil() predicate.Cluster {
	return predicate.Cluster(sql.FieldNotNull(FieldExtraVars))
}

// HasNodes applies the HasEdge predicate on the "nodes" edge.
func HasNodes() predicate.Cluster {
	return predicate.Cluster(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, NodesTable, NodesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNodesWith applies the HasEdge predicate on the "nodes" edge with a given conditions (other predicates).
func HasNodesWith(preds ...predicate.Node) predicate.Cluster {
	return predicate.Cluster(func(s *sql.Selector) {
		step := newNodesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Cluster {
	return predicate.Cluster(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.Job) predicate.Cluster {
	return predicate.Cluster(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStatusCache applies the HasEdge predicate on the "status_cache" edge.
func HasStatusCache() predicate.Cluster {
	return predicate.Cluster(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, StatusCacheTable, StatusCacheColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStatusCacheWith applies the HasEdge predicate on the "status_cache" edge with a given conditions (other predicates).
func HasStatusCacheWith(preds ...predicate.ClusterStatusCache) predicate.Cluster {
	return predicate.Cluster(func(s *sql.Selector) {
		step := newStatusCacheStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCredential applies the HasEdge predicate on the "credential" edge.
func HasCredential() predicate.Cluster {
	return predicate.Cluster(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CredentialTable, CredentialColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCredentialWith applies the HasEdge predicate on the "credential" edge with a given conditions (other predicates).
func HasCredentialWith(preds ...predicate.Credential) predicate.Cluster {
	return predicate.Cluster(func(s *sql.Selector) {
		step := newCredentialStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Cluster) predicate.Cluster {
	return predicate.Cluster(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Cluster) predicate.Cluster {
	return predicate.Cluster(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Cluster) predicate.Cluster {
	return predicate.Cluster(sql.NotPredicates(p))
}
