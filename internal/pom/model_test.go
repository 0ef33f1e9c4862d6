package pom_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/arq/internal/pom"
)

const samplePom = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <parent>
    <groupId>org.example</groupId>
    <artifactId>parent</artifactId>
    <version>1.2.0</version>
  </parent>
  <artifactId>demo</artifactId>
  <!-- keep me -->
  <properties>
    <java.version>17</java.version>
  </properties>
  <profiles>
    <profile>
      <id>arq-wildfly</id>
      <activation>
        <activeByDefault>true</activeByDefault>
      </activation>
    </profile>
    <profile>
      <id>release</id>
    </profile>
  </profiles>
</project>
`

const minimalPom = `<project>
  <modelVersion>4.0.0</modelVersion>
</project>
`

func parse(t *testing.T, xml string) *pom.Model {
	t.Helper()

	m, err := pom.Parse([]byte(xml))
	require.NoError(t, err)

	return m
}

func TestParse_NotAProject(t *testing.T) {
	t.Parallel()

	_, err := pom.Parse([]byte(`<settings/>`))
	require.ErrorIs(t, err, pom.ErrNotAProject)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	_, err := pom.Parse([]byte(`<project><</project>`))
	require.Error(t, err)
}

func TestModel_Coordinate_InheritsFromParent(t *testing.T) {
	t.Parallel()

	m, err := pom.Parse([]byte(samplePom))
	require.NoError(t, err)

	c := m.Coordinate()
	assert.Equal(t, "org.example", c.GroupID)
	assert.Equal(t, "demo", c.ArtifactID)
	assert.Equal(t, "1.2.0", c.Version)
}

func TestModel_Profiles(t *testing.T) {
	t.Parallel()

	m, err := pom.Parse([]byte(samplePom))
	require.NoError(t, err)

	profiles := m.Profiles()
	require.Len(t, profiles, 2)
	assert.Equal(t, "arq-wildfly", profiles[0].ID())
	assert.True(t, profiles[0].ActiveByDefault())
	assert.Equal(t, "release", profiles[1].ID())
	assert.False(t, profiles[1].HasActivation())
}

func TestModel_Profiles_NoneDeclared(t *testing.T) {
	t.Parallel()

	assert.Empty(t, parse(t, minimalPom).Profiles())
}

func TestModel_AddProfile_CreatesSection(t *testing.T) {
	t.Parallel()

	m := parse(t, minimalPom)
	m.AddProfile(pom.NewProfile("arquillian-docker"))

	require.Len(t, m.Profiles(), 1)
	assert.NotNil(t, m.FindProfile("arquillian-docker"))
}

func TestModel_RemoveProfile(t *testing.T) {
	t.Parallel()

	m, err := pom.Parse([]byte(samplePom))
	require.NoError(t, err)

	p := m.FindProfile("release")
	require.NotNil(t, p)

	assert.True(t, m.RemoveProfile(p))
	assert.Nil(t, m.FindProfile("release"))
	assert.False(t, m.RemoveProfile(p), "a detached profile is not removed twice")
}

func TestModel_RemoveThenAdd_MovesToEnd(t *testing.T) {
	t.Parallel()

	m, err := pom.Parse([]byte(samplePom))
	require.NoError(t, err)

	p := m.FindProfile("arq-wildfly")
	m.RemoveProfile(p)
	m.AddProfile(p)

	profiles := m.Profiles()
	require.Len(t, profiles, 2)
	assert.Equal(t, "release", profiles[0].ID())
	assert.Equal(t, "arq-wildfly", profiles[1].ID())
}

func TestModel_AddDependency_SkipsDuplicates(t *testing.T) {
	t.Parallel()

	m := parse(t, minimalPom)
	c := pom.Coordinate{GroupID: "org.arquillian.cube", ArtifactID: "arquillian-cube-docker", Scope: "test"}

	assert.True(t, m.AddDependency(c))
	assert.False(t, m.AddDependency(pom.Coordinate{GroupID: c.GroupID, ArtifactID: c.ArtifactID, Version: "2.0"}))

	deps := m.Dependencies()
	require.Len(t, deps, 1)
	assert.Equal(t, "test", deps[0].Scope)
}

func TestModel_Bytes_IndentsOnlyInsertedElements(t *testing.T) {
	t.Parallel()

	m := parse(t, `<project>
  <modelVersion>4.0.0</modelVersion>
  <properties><a>1</a></properties>
  <profiles>
    <profile>
      <id>release</id>
    </profile>
  </profiles>
</project>
`)

	m.AddProfile(pom.NewProfile("arquillian-docker"))

	data, err := m.Bytes()
	require.NoError(t, err)
	assert.Equal(t, `<project>
  <modelVersion>4.0.0</modelVersion>
  <properties><a>1</a></properties>
  <profiles>
    <profile>
      <id>release</id>
    </profile>
    <profile>
      <id>arquillian-docker</id>
    </profile>
  </profiles>
</project>
`, string(data))
}

func TestModel_Bytes_NewSectionsUseDocumentIndent(t *testing.T) {
	t.Parallel()

	m := parse(t, "<project>\n\t<modelVersion>4.0.0</modelVersion>\n</project>\n")

	m.AddProfile(pom.NewProfile("arquillian-docker"))
	m.AddDependency(pom.Coordinate{GroupID: "g", ArtifactID: "a"})

	data, err := m.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "<project>\n"+
		"\t<modelVersion>4.0.0</modelVersion>\n"+
		"\t<profiles>\n"+
		"\t\t<profile>\n"+
		"\t\t\t<id>arquillian-docker</id>\n"+
		"\t\t</profile>\n"+
		"\t</profiles>\n"+
		"\t<dependencies>\n"+
		"\t\t<dependency>\n"+
		"\t\t\t<groupId>g</groupId>\n"+
		"\t\t\t<artifactId>a</artifactId>\n"+
		"\t\t</dependency>\n"+
		"\t</dependencies>\n"+
		"</project>\n", string(data))
}

func TestModel_RemoveProfile_DropsItsLine(t *testing.T) {
	t.Parallel()

	m := parse(t, `<project>
  <profiles>
    <profile><id>a</id></profile>
    <profile><id>b</id></profile>
  </profiles>
</project>`)

	require.True(t, m.RemoveProfile(m.FindProfile("b")))

	data, err := m.Bytes()
	require.NoError(t, err)
	assert.Equal(t, `<project>
  <profiles>
    <profile><id>a</id></profile>
  </profiles>
</project>`, string(data))
}

func TestModel_SaveRoundTrip_PreservesUnknownContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), pom.FileName)
	require.NoError(t, os.WriteFile(path, []byte(samplePom), 0o600))

	m, err := pom.Load(path)
	require.NoError(t, err)

	m.AddProfile(pom.NewProfile("arquillian-docker"))
	require.NoError(t, m.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "<!-- keep me -->")
	assert.Contains(t, content, "<java.version>17</java.version>")
	assert.Contains(t, content, "<id>arquillian-docker</id>")

	reloaded, err := pom.Load(path)
	require.NoError(t, err)
	assert.Len(t, reloaded.Profiles(), 3)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := pom.Load(filepath.Join(t.TempDir(), pom.FileName))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
