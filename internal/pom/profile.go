package pom

import "github.com/beevik/etree"

// Profile is a <profile> element of a model.
type Profile struct {
	el *etree.Element
}

// NewProfile creates a detached profile with the given id.
func NewProfile(id string) *Profile {
	p := &Profile{el: etree.NewElement("profile")}
	p.SetID(id)

	return p
}

// ID returns the profile id.
func (p *Profile) ID() string {
	return childText(p.el, "id")
}

// SetID sets the profile id.
func (p *Profile) SetID(id string) {
	if el := p.el.SelectElement("id"); el != nil {
		el.SetText(id)

		return
	}

	idEl := etree.NewElement("id")
	idEl.SetText(id)
	p.el.InsertChildAt(0, idEl)
}

// ActiveByDefault reports whether the profile's activation sets activeByDefault.
func (p *Profile) ActiveByDefault() bool {
	activation := p.el.SelectElement("activation")
	if activation == nil {
		return false
	}

	return childText(activation, "activeByDefault") == "true"
}

// HasActivation reports whether the profile declares an <activation> block.
func (p *Profile) HasActivation() bool {
	return p.el.SelectElement("activation") != nil
}

// SetActiveByDefault sets or clears activeByDefault. Clearing it removes the
// activation block entirely.
func (p *Profile) SetActiveByDefault(active bool) {
	existing := p.el.SelectElement("activation")

	if !active {
		if existing != nil {
			p.el.RemoveChild(existing)
		}

		return
	}

	setChildText(ensureChild(p.el, "activation"), "activeByDefault", "true")
}

// Build returns the profile's build section, or nil when it has none.
func (p *Profile) Build() *BuildBase {
	el := p.el.SelectElement("build")
	if el == nil {
		return nil
	}

	return &BuildBase{el: el}
}

// SetBuild replaces the profile's build section with b.
func (p *Profile) SetBuild(b *BuildBase) {
	if existing := p.el.SelectElement("build"); existing != nil {
		if existing == b.el {
			return
		}

		p.el.RemoveChild(existing)
	}

	p.el.AddChild(b.el)
}

// Dependencies returns the profile's dependencies.
func (p *Profile) Dependencies() []Coordinate {
	return readDependencies(p.el)
}

// AddDependency appends c to the profile's dependencies.
func (p *Profile) AddDependency(c Coordinate) {
	appendDependency(p.el, c)
}

// BuildBase is the <build> section of a profile.
type BuildBase struct {
	el *etree.Element
}

// NewBuildBase creates a detached, empty build section.
func NewBuildBase() *BuildBase {
	return &BuildBase{el: etree.NewElement("build")}
}

// Plugins returns the build plugins in document order.
func (b *BuildBase) Plugins() []*Plugin {
	plugins := b.el.SelectElement("plugins")
	if plugins == nil {
		return nil
	}

	elems := plugins.SelectElements("plugin")
	result := make([]*Plugin, 0, len(elems))

	for _, el := range elems {
		result = append(result, &Plugin{el: el})
	}

	return result
}

// AddPlugin appends pl to the build plugins.
func (b *BuildBase) AddPlugin(pl *Plugin) {
	ensureChild(b.el, "plugins").AddChild(pl.el)
}
