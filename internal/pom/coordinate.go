package pom

import (
	"fmt"
	"strings"
)

// Coordinate identifies a Maven artifact.
type Coordinate struct {
	GroupID    string `yaml:"group_id" json:"group_id"`
	ArtifactID string `yaml:"artifact_id" json:"artifact_id"`
	Version    string `yaml:"version,omitempty" json:"version,omitempty"`
	Type       string `yaml:"type,omitempty" json:"type,omitempty"`
	Scope      string `yaml:"scope,omitempty" json:"scope,omitempty"`
}

// ParseCoordinate parses "groupId:artifactId[:version[:scope]]".
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 4 {
		return Coordinate{}, fmt.Errorf("invalid coordinate %q: expected groupId:artifactId[:version[:scope]]", s)
	}

	for i, part := range parts[:2] {
		if part == "" {
			field := "groupId"
			if i == 1 {
				field = "artifactId"
			}

			return Coordinate{}, fmt.Errorf("invalid coordinate %q: empty %s", s, field)
		}
	}

	c := Coordinate{GroupID: parts[0], ArtifactID: parts[1]}

	if len(parts) > 2 {
		c.Version = parts[2]
	}

	if len(parts) > 3 {
		c.Scope = parts[3]
	}

	return c, nil
}

// Key returns "groupId:artifactId".
func (c Coordinate) Key() string {
	return c.GroupID + ":" + c.ArtifactID
}

// String returns "groupId:artifactId[:version]".
func (c Coordinate) String() string {
	if c.Version == "" {
		return c.Key()
	}

	return c.Key() + ":" + c.Version
}
