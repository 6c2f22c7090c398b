// Package v1alpha1 defines the v1alpha1 schema.
//
// +kubebuilder:object:generate=true
package v1alpha1

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	v1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestConfigurationDefault(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		expected := &Configuration{
			TypeMeta: v1.TypeMeta{
				Kind:       "Configuration",
				APIVersion: GroupVersion.String(),
			},
			ConfigurationSpec: ConfigurationSpec{
				Shell: "/bin/bash",
				Git:   "/usr/local/bin/git",
			},
		}

		in := &Configuration{
			ConfigurationSpec: ConfigurationSpec{
				Shell: expected.Shell,
				Git:   expected.Git,
			},
		}

		ConfigurationDefault(in)

		assert.NotNil(t, in)
		assert.True(t, reflect.DeepEqual(expected, in))
	})
}
