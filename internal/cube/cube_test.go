package cube_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/arq/internal/cube"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind        cube.Kind
		artifactID  string
		qualifier   string
		displayType string
		locationKey string
	}{
		{cube.Docker, "arquillian-cube-docker", "docker", "Docker", "dockerContainersFile"},
		{cube.DockerCompose, "arquillian-cube-docker", "docker", "Docker Compose", "dockerContainersFile"},
		{cube.Kubernetes, "arquillian-cube-kubernetes", "kubernetes", "Kubernetes", "env.config.url"},
		{cube.OpenShift, "arquillian-cube-openshift", "openshift", "Openshift", "definitionsFile"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()

			e := cube.Resolve(tt.kind)
			assert.Equal(t, tt.kind, e.Kind)
			assert.Equal(t, "org.arquillian.cube", e.Dependency.GroupID)
			assert.Equal(t, tt.artifactID, e.Dependency.ArtifactID)
			assert.Equal(t, tt.qualifier, e.Qualifier)
			assert.Equal(t, tt.displayType, e.Type)
			assert.Equal(t, tt.locationKey, e.LocationKey)
		})
	}
}

func TestResolve_ClosedSet(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { cube.Resolve("vagrant") })
}

func TestKinds_Order(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []cube.Kind{cube.Docker, cube.DockerCompose, cube.Kubernetes, cube.OpenShift}, cube.Kinds())
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]cube.Kind{
		"docker":         cube.Docker,
		"Docker Compose": cube.DockerCompose,
		"docker-compose": cube.DockerCompose,
		" KUBERNETES ":   cube.Kubernetes,
		"openshift":      cube.OpenShift,
	} {
		got, err := cube.ParseKind(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestParseKind_Unknown(t *testing.T) {
	t.Parallel()

	_, err := cube.ParseKind("vagrant")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docker, docker-compose, kubernetes, openshift")
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Docker Compose", cube.DockerCompose.String())
	assert.Equal(t, "swarm", cube.Kind("swarm").String())
	assert.NotPanics(t, func() { _ = fmt.Sprintf("%v", cube.Kind("swarm")) })
}
