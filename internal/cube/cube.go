// Package cube describes the Arquillian Cube configurations arq can add to a
// project: which extension dependency each one needs and where its location
// file is configured.
package cube

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/arq/internal/pom"
)

// Kind is a Cube configuration kind.
type Kind string

// Known kinds.
const (
	Docker        Kind = "docker"
	DockerCompose Kind = "docker-compose"
	Kubernetes    Kind = "kubernetes"
	OpenShift     Kind = "openshift"
)

const groupID = "org.arquillian.cube"

// Entry is the static metadata of a Kind.
type Entry struct {
	Kind Kind
	// Dependency is the Cube extension that implements the kind.
	Dependency pom.Coordinate
	// Qualifier is the extension qualifier in arquillian.xml.
	Qualifier string
	// Type is the display name.
	Type string
	// LocationKey is the extension property naming the location file.
	LocationKey string
}

var (
	dockerDependency     = pom.Coordinate{GroupID: groupID, ArtifactID: "arquillian-cube-docker", Scope: "test"}
	kubernetesDependency = pom.Coordinate{GroupID: groupID, ArtifactID: "arquillian-cube-kubernetes", Scope: "test"}
	openshiftDependency  = pom.Coordinate{GroupID: groupID, ArtifactID: "arquillian-cube-openshift", Scope: "test"}
)

// entries is ordered as kinds are presented to users.
var entries = []Entry{
	{Kind: Docker, Dependency: dockerDependency, Qualifier: "docker", Type: "Docker", LocationKey: "dockerContainersFile"},
	{Kind: DockerCompose, Dependency: dockerDependency, Qualifier: "docker", Type: "Docker Compose", LocationKey: "dockerContainersFile"},
	{Kind: Kubernetes, Dependency: kubernetesDependency, Qualifier: "kubernetes", Type: "Kubernetes", LocationKey: "env.config.url"},
	{Kind: OpenShift, Dependency: openshiftDependency, Qualifier: "openshift", Type: "Openshift", LocationKey: "definitionsFile"},
}

// Resolve returns the metadata for k. k must be one of the declared kinds;
// use ParseKind to validate user input first.
func Resolve(k Kind) Entry {
	if e, ok := lookup(k); ok {
		return e
	}

	panic(fmt.Sprintf("cube: unknown kind %q", string(k)))
}

func lookup(k Kind) (Entry, bool) {
	for _, e := range entries {
		if e.Kind == k {
			return e, true
		}
	}

	return Entry{}, false
}

// Kinds returns every kind in presentation order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(entries))
	for _, e := range entries {
		kinds = append(kinds, e.Kind)
	}

	return kinds
}

// ParseKind maps user input to a Kind. It accepts the kind name or its
// display type, ignoring case.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)

	for _, e := range entries {
		if strings.EqualFold(s, string(e.Kind)) || strings.EqualFold(s, e.Type) {
			return e.Kind, nil
		}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, string(e.Kind))
	}

	return "", fmt.Errorf("unknown cube configuration %q; available: %s", s, strings.Join(names, ", "))
}

// String returns the display type, or the raw kind when k is not declared.
func (k Kind) String() string {
	if e, ok := lookup(k); ok {
		return e.Type
	}

	return string(k)
}
