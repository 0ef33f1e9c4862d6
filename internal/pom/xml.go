package pom

import (
	"strings"

	"github.com/beevik/etree"
)

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}

	return strings.TrimSpace(child.Text())
}

func ensureChild(el *etree.Element, tag string) *etree.Element {
	if child := el.SelectElement(tag); child != nil {
		return child
	}

	return el.CreateElement(tag)
}

func setChildText(el *etree.Element, tag, text string) *etree.Element {
	child := ensureChild(el, tag)
	child.SetText(text)

	return child
}

// detach returns el ready to be added under a new parent. Elements owned by
// another tree are copied so the source tree is left intact.
func detach(el *etree.Element) *etree.Element {
	if el.Parent() == nil {
		return el
	}

	return el.Copy()
}

func readDependencies(el *etree.Element) []Coordinate {
	deps := el.SelectElement("dependencies")
	if deps == nil {
		return nil
	}

	var result []Coordinate

	for _, d := range deps.SelectElements("dependency") {
		result = append(result, Coordinate{
			GroupID:    childText(d, "groupId"),
			ArtifactID: childText(d, "artifactId"),
			Version:    childText(d, "version"),
			Type:       childText(d, "type"),
			Scope:      childText(d, "scope"),
		})
	}

	return result
}

func appendDependency(el *etree.Element, c Coordinate) *etree.Element {
	dep := ensureChild(el, "dependencies").CreateElement("dependency")

	for _, field := range []struct{ tag, value string }{
		{"groupId", c.GroupID},
		{"artifactId", c.ArtifactID},
		{"version", c.Version},
		{"type", c.Type},
		{"scope", c.Scope},
	} {
		if field.value != "" {
			setChildText(dep, field.tag, field.value)
		}
	}

	return dep
}
