package pom

import "github.com/beevik/etree"

// Plugin is a <plugin> element of a build section.
type Plugin struct {
	el *etree.Element
}

// Execution describes a plugin <execution>.
type Execution struct {
	ID            string
	Phase         string
	Goals         []string
	Configuration *etree.Element
}

// NewPlugin creates a detached plugin for the given coordinate. Empty
// coordinate fields are omitted.
func NewPlugin(c Coordinate) *Plugin {
	el := etree.NewElement("plugin")

	for _, field := range []struct{ tag, value string }{
		{"groupId", c.GroupID},
		{"artifactId", c.ArtifactID},
		{"version", c.Version},
	} {
		if field.value != "" {
			setChildText(el, field.tag, field.value)
		}
	}

	return &Plugin{el: el}
}

// Coordinate returns the plugin's coordinate.
func (pl *Plugin) Coordinate() Coordinate {
	return Coordinate{
		GroupID:    childText(pl.el, "groupId"),
		ArtifactID: childText(pl.el, "artifactId"),
		Version:    childText(pl.el, "version"),
	}
}

// Configuration returns the plugin-level <configuration>, or nil.
func (pl *Plugin) Configuration() *etree.Element {
	return pl.el.SelectElement("configuration")
}

// SetConfiguration replaces the plugin-level configuration with cfg, which
// must be a <configuration> element.
func (pl *Plugin) SetConfiguration(cfg *etree.Element) {
	if existing := pl.el.SelectElement("configuration"); existing != nil {
		pl.el.RemoveChild(existing)
	}

	pl.el.AddChild(detach(cfg))
}

// Executions returns the plugin's executions.
func (pl *Plugin) Executions() []Execution {
	executions := pl.el.SelectElement("executions")
	if executions == nil {
		return nil
	}

	var result []Execution

	for _, el := range executions.SelectElements("execution") {
		exec := Execution{
			ID:            childText(el, "id"),
			Phase:         childText(el, "phase"),
			Configuration: el.SelectElement("configuration"),
		}

		if goals := el.SelectElement("goals"); goals != nil {
			for _, g := range goals.SelectElements("goal") {
				exec.Goals = append(exec.Goals, g.Text())
			}
		}

		result = append(result, exec)
	}

	return result
}

// AddExecution appends an execution to the plugin.
func (pl *Plugin) AddExecution(e Execution) {
	el := ensureChild(pl.el, "executions").CreateElement("execution")

	if e.ID != "" {
		setChildText(el, "id", e.ID)
	}

	if e.Phase != "" {
		setChildText(el, "phase", e.Phase)
	}

	if len(e.Goals) > 0 {
		goals := el.CreateElement("goals")
		for _, g := range e.Goals {
			goals.CreateElement("goal").SetText(g)
		}
	}

	if e.Configuration != nil {
		el.AddChild(detach(e.Configuration))
	}
}
