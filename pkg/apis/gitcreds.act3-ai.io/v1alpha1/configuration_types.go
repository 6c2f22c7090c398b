// Package v1alpha1 defines the v1alpha1 schema.
//
// +kubebuilder:object:generate=true
package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// +kubebuilder:object:root=true

// Configuration type is used to store a user's current configuration settings.
type Configuration struct {
	metav1.TypeMeta `json:",inline"`

	ConfigurationSpec `json:",inline"`
}

// ConfigurationSpec is the actual configuration values.
type ConfigurationSpec struct {
	// Shell is the interpreter used to run shell-literal ("!") helper
	// commands. Empty selects the package default.
	Shell string `json:"shell,omitempty"`

	// Git is the executable queried for its helper directory when a
	// short-name helper is not found on the search path. Empty means
	// "git".
	Git string `json:"git,omitempty"`
}

// ConfigurationDefault defaults the fields in Configuration. The argument must be a Configuration.
func ConfigurationDefault(obj *Configuration) {
	if obj == nil {
		obj = &Configuration{}
	}

	// Default the TypeMeta
	obj.APIVersion = GroupVersion.String()
	obj.Kind = "Configuration"
}
