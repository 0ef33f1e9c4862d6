package containersetup_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/arq/internal/container"
	"github.com/donaldgifford/arq/internal/containersetup"
	"github.com/donaldgifford/arq/internal/pom"
	"github.com/donaldgifford/arq/internal/profile"
	"github.com/donaldgifford/arq/internal/project"
)

func newProject(t *testing.T, xml string) *project.Project {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pom.xml"), []byte(xml), 0o600))

	p, err := project.Open(dir)
	require.NoError(t, err)

	return p
}

const emptyPom = `<project xmlns="http://maven.apache.org/POM/4.0.0"><modelVersion>4.0.0</modelVersion></project>`

func setup(t *testing.T, p *project.Project, opts containersetup.Opts) *containersetup.Result {
	t.Helper()

	catalog := container.Default()
	opts.Catalog = catalog
	opts.Manager = profile.NewManager(&profile.Opts{Containers: catalog})
	opts.Maven = p

	res, err := containersetup.Run(&opts)
	require.NoError(t, err)

	return res
}

func TestRun_AdapterAndExtraDependencies(t *testing.T) {
	t.Parallel()

	p := newProject(t, emptyPom)
	junit := pom.Coordinate{GroupID: "org.jboss.arquillian.junit5", ArtifactID: "arquillian-junit5-container", Scope: "test"}

	res := setup(t, p, containersetup.Opts{Container: "tomee-embedded", Dependencies: []pom.Coordinate{junit}})
	assert.Equal(t, "arquillian-tomee-embedded", res.ProfileID)
	assert.False(t, res.Installed)

	model, err := p.Model()
	require.NoError(t, err)

	prof := model.FindProfile("arquillian-tomee-embedded")
	require.NotNil(t, prof)
	assert.False(t, prof.HasActivation())
	assert.Equal(t, []pom.Coordinate{
		{GroupID: "org.apache.tomee", ArtifactID: "arquillian-tomee-embedded", Version: "9.1.2", Scope: "test"},
		junit,
	}, prof.Dependencies())
	assert.Len(t, prof.Build().Plugins(), 1)
}

func TestRun_CatalogDependencies(t *testing.T) {
	t.Parallel()

	p := newProject(t, emptyPom)

	res := setup(t, p, containersetup.Opts{Container: "arq-docker", Activate: true})
	assert.Equal(t, "docker", res.Container.ID)

	model, err := p.Model()
	require.NoError(t, err)

	prof := model.FindProfile("arquillian-docker")
	require.NotNil(t, prof)
	assert.True(t, prof.ActiveByDefault())
	assert.Equal(t, []pom.Coordinate{
		{GroupID: "org.arquillian.cube", ArtifactID: "arquillian-cube-docker", Scope: "test"},
	}, prof.Dependencies())
}

func TestRun_URLDownloadInstalledAutomatically(t *testing.T) {
	t.Parallel()

	p := newProject(t, emptyPom)

	res := setup(t, p, containersetup.Opts{Container: "tomcat-managed"})
	assert.True(t, res.Installed)

	model, err := p.Model()
	require.NoError(t, err)

	plugins := model.FindProfile("arquillian-tomcat-managed").Build().Plugins()
	require.Len(t, plugins, 2)
	assert.Equal(t, []string{"wget"}, plugins[1].Executions()[0].Goals)
}

func TestRun_ChameleonWithUnpack(t *testing.T) {
	t.Parallel()

	p := newProject(t, emptyPom)

	res := setup(t, p, containersetup.Opts{
		Container:        "wildfly-managed",
		ChameleonVersion: "10.1.0.Final",
		DownloadVersion:  "10.1.0.Final",
	})
	assert.True(t, res.Installed)

	model, err := p.Model()
	require.NoError(t, err)

	prof := model.FindProfile("arquillian-wildfly-managed")
	require.NotNil(t, prof)
	assert.Empty(t, prof.Dependencies())

	plugins := prof.Build().Plugins()
	require.Len(t, plugins, 2)
	assert.Equal(t, "wildfly:10.1.0.Final:managed",
		plugins[0].Configuration().FindElement("systemPropertyVariables/chameleon.target").Text())

	item := plugins[1].Executions()[0].Configuration.FindElement("artifactItems/artifactItem")
	require.NotNil(t, item)
	assert.Equal(t, "10.1.0.Final", item.SelectElement("version").Text())
}

func TestRun_KeepsExistingProfileID(t *testing.T) {
	t.Parallel()

	p := newProject(t, `<project><profiles><profile><id>ARQ-DOCKER</id></profile></profiles></project>`)

	res := setup(t, p, containersetup.Opts{Container: "docker"})
	assert.Equal(t, "ARQ-DOCKER", res.ProfileID)

	model, err := p.Model()
	require.NoError(t, err)
	assert.Len(t, model.Profiles(), 1)
}

func TestRun_ReportsProjectCoordinate(t *testing.T) {
	t.Parallel()

	p := newProject(t, `<project>
  <parent><groupId>org.example</groupId><artifactId>parent</artifactId><version>1.0</version></parent>
  <artifactId>shop</artifactId>
</project>`)

	res := setup(t, p, containersetup.Opts{Container: "docker"})
	assert.Equal(t, "org.example:shop", res.Project.Key())
	assert.Equal(t, "1.0", res.Project.Version)
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	p := newProject(t, emptyPom)
	catalog := container.Default()
	manager := profile.NewManager(&profile.Opts{Containers: catalog})

	_, err := containersetup.Run(&containersetup.Opts{Container: "glassfish", Catalog: catalog, Manager: manager, Maven: p})
	require.ErrorIs(t, err, container.ErrNotFound)

	_, err = containersetup.Run(&containersetup.Opts{
		Container: "payara-micro", ChameleonVersion: "6.0", Catalog: catalog, Manager: manager, Maven: p,
	})
	require.ErrorIs(t, err, container.ErrNoChameleonTarget)
}
