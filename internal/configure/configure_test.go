package configure_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/arq/internal/configure"
	"github.com/donaldgifford/arq/internal/container"
	"github.com/donaldgifford/arq/internal/profile"
	"github.com/donaldgifford/arq/internal/project"
	"github.com/donaldgifford/arq/internal/prompt"
)

const profilesPom = `<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <profiles>
    <profile><id>arquillian-wildfly-managed</id></profile>
    <profile><id>arquillian-docker</id></profile>
  </profiles>
</project>`

func newProject(t *testing.T, pom string) *project.Project {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pom.xml"), []byte(pom), 0o600))

	p, err := project.Open(dir)
	require.NoError(t, err)

	return p
}

func runOpts(p *project.Project) *configure.Opts {
	return &configure.Opts{
		Manager:    profile.NewManager(&profile.Opts{Containers: container.NewCatalog(wildfly, docker)}),
		Maven:      p,
		Arquillian: p,
	}
}

func TestRun_NonInteractive(t *testing.T) {
	t.Parallel()

	p := newProject(t, profilesPom)
	opts := runOpts(p)
	opts.Container = "arquillian-wildfly-managed"
	opts.Option = "jbossHome"
	opts.Value = "target/wildfly"

	res, err := configure.Run(opts)
	require.NoError(t, err)
	assert.Equal(t, &configure.Result{Container: "arquillian-wildfly-managed", Option: "jbossHome", Value: "target/wildfly"}, res)

	cfg, err := p.Config()
	require.NoError(t, err)

	v, ok := cfg.ContainerProperty("arquillian-wildfly-managed", "jbossHome")
	require.True(t, ok)
	assert.Equal(t, "target/wildfly", v)
}

func TestRun_NonInteractive_DefaultValue(t *testing.T) {
	t.Parallel()

	p := newProject(t, profilesPom)
	opts := runOpts(p)
	opts.Container = "arquillian-wildfly-managed"
	opts.Option = "serverConfig"

	res, err := configure.Run(opts)
	require.NoError(t, err)
	assert.Equal(t, "standalone.xml", res.Value)
}

func TestRun_NonInteractive_MissingRequiredValue(t *testing.T) {
	t.Parallel()

	p := newProject(t, profilesPom)
	opts := runOpts(p)
	opts.Container = "arquillian-wildfly-managed"
	opts.Option = "jbossHome"

	_, err := configure.Run(opts)
	require.ErrorIs(t, err, prompt.ErrRequired)
	assert.NoFileExists(t, p.DescriptorPath())
}

func TestRun_NonInteractive_MissingOption(t *testing.T) {
	t.Parallel()

	p := newProject(t, profilesPom)
	opts := runOpts(p)
	opts.Container = "arquillian-wildfly-managed"

	_, err := configure.Run(opts)
	require.ErrorIs(t, err, prompt.ErrRequired)
}

func TestRun_NoProfiles(t *testing.T) {
	t.Parallel()

	p := newProject(t, `<project><modelVersion>4.0.0</modelVersion></project>`)

	_, err := configure.Run(runOpts(p))
	require.ErrorIs(t, err, configure.ErrNoProfiles)
}

func TestRun_ContainerWithoutOptions(t *testing.T) {
	t.Parallel()

	p := newProject(t, profilesPom)
	opts := runOpts(p)
	opts.Container = "arquillian-docker"

	_, err := configure.Run(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares no configuration options")
}

func TestRun_Prompted(t *testing.T) {
	t.Parallel()

	p := newProject(t, profilesPom)
	scripted := &prompt.Scripted{Answers: map[string]string{
		"container": "arquillian-wildfly-managed",
		"option":    "serverConfig",
	}}

	opts := runOpts(p)
	opts.Prompter = scripted

	res, err := configure.Run(opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"container", "option", "value"}, scripted.Asked)
	assert.Equal(t, "arquillian-wildfly-managed", res.Container)
	assert.Equal(t, "standalone.xml", res.Value)
}

func TestRun_PromptedSkipsGivenFields(t *testing.T) {
	t.Parallel()

	p := newProject(t, profilesPom)
	scripted := &prompt.Scripted{Answers: map[string]string{"value": "/opt/wildfly"}}

	opts := runOpts(p)
	opts.Container = "arquillian-wildfly-managed"
	opts.Option = "jbossHome"
	opts.Prompter = scripted

	res, err := configure.Run(opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"value"}, scripted.Asked)
	assert.Equal(t, "/opt/wildfly", res.Value)
}
