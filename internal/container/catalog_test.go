package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/arq/internal/container"
)

const validCatalog = `
containers:
  - id: docker
    profile_id: arquillian-docker
    configurations:
      - name: serverUri
        default: unix:///var/run/docker.sock
  - id: tomcat-managed
    group_id: org.jboss.arquillian.container
    artifact_id: arquillian-tomcat-managed-10
    type: managed
    download:
      url: https://example.com/tomcat.zip
`

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	c := container.Default()
	containers := c.Containers()
	require.NotEmpty(t, containers)

	wf, err := c.Find("wildfly-managed")
	require.NoError(t, err)
	assert.True(t, wf.Download.HasArtifact())
	assert.NotNil(t, wf.Chameleon)
}

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	c, err := container.Parse([]byte(validCatalog))
	require.NoError(t, err)

	containers := c.Containers()
	require.Len(t, containers, 2)
	assert.Equal(t, "docker", containers[0].ID)
	assert.Equal(t, "arquillian-docker", containers[0].ProfileID())
	require.Len(t, containers[0].Configurations, 1)
	require.NotNil(t, containers[0].Configurations[0].Default)
	assert.Equal(t, "https://example.com/tomcat.zip", containers[1].Download.URL)
}

func TestParse_JSON(t *testing.T) {
	t.Parallel()

	c, err := container.Parse([]byte(`{"containers": [{"id": "payara-micro", "type": "managed"}]}`))
	require.NoError(t, err)
	assert.Len(t, c.Containers(), 1)
}

func TestParse_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{name: "missing containers", doc: "other: 1\n"},
		{name: "missing id", doc: "containers:\n  - name: nameless\n"},
		{name: "bad type", doc: "containers:\n  - id: x\n    type: cloud\n"},
		{name: "non-string default", doc: "containers:\n  - id: x\n    configurations:\n      - name: port\n        default: 8080\n"},
		{name: "chameleon without type", doc: "containers:\n  - id: x\n    chameleon:\n      name: wildfly\n"},
		{name: "empty document", doc: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := container.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid catalog")
		})
	}
}

func TestParse_DuplicateIDs(t *testing.T) {
	t.Parallel()

	_, err := container.Parse([]byte("containers:\n  - id: x\n  - id: x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate container id")
}

func TestCatalog_Find(t *testing.T) {
	t.Parallel()

	c := container.NewCatalog(
		container.Container{ID: "docker"},
		container.Container{ID: "wildfly-remote", ProfileRef: "wf-remote"},
	)

	byID, err := c.Find("docker")
	require.NoError(t, err)
	assert.Equal(t, "docker", byID.ID)

	byProfile, err := c.Find("arquillian-docker")
	require.NoError(t, err)
	assert.Equal(t, "docker", byProfile.ID)

	custom, err := c.Find("wf-remote")
	require.NoError(t, err)
	assert.Equal(t, "wildfly-remote", custom.ID)
}

func TestCatalog_Find_NotFound(t *testing.T) {
	t.Parallel()

	c := container.NewCatalog(container.Container{ID: "tomee"}, container.Container{ID: "docker"})

	_, err := c.Find("glassfish")
	require.ErrorIs(t, err, container.ErrNotFound)
	assert.Contains(t, err.Error(), "docker, tomee")
}

func TestCatalog_Containers_ReturnsCopy(t *testing.T) {
	t.Parallel()

	c := container.NewCatalog(container.Container{ID: "docker"})
	containers := c.Containers()
	containers[0].ID = "changed"

	assert.Equal(t, "docker", c.Containers()[0].ID)
}
