// Package fragment renders the static XML snippets arq places into plugin
// configurations.
package fragment

import (
	"bytes"
	"embed"
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/beevik/etree"
)

// OutputDirectory is where downloaded and unpacked containers are placed.
const OutputDirectory = "${project.basedir}/target/"

// Template names.
const (
	Surefire = "surefire.xml.tmpl"
	Download = "download.xml.tmpl"
	Unpack   = "unpack.xml.tmpl"
)

// ErrMalformedFragment marks a template that failed to render or did not
// produce a single well-formed element. Fragments are authored statically, so
// this is an internal error rather than a user error.
var ErrMalformedFragment = errors.New("malformed xml fragment")

//go:embed templates/*.tmpl
var embedded embed.FS

// Renderer renders fragment templates into detached XML elements.
type Renderer struct {
	tmpl *template.Template
}

// New returns a Renderer over the built-in fragments.
func New() *Renderer {
	r, err := NewFromFS(embedded, "templates/*.tmpl")
	if err != nil {
		panic(err)
	}

	return r
}

// NewFromFS parses every template matching pattern in fsys.
func NewFromFS(fsys fs.FS, pattern string) (*Renderer, error) {
	tmpl, err := template.New("fragment").
		Funcs(template.FuncMap{"xml": escape}).
		Option("missingkey=error").
		ParseFS(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("parsing fragment templates: %w", err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named template with data and parses the result.
func (r *Renderer) Render(name string, data any) (*etree.Element, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("%w: executing %s: %w", ErrMalformedFragment, name, err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrMalformedFragment, name, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: %s has no root element", ErrMalformedFragment, name)
	}

	return root.Copy(), nil
}

// SurefireData fills the surefire system-property fragment.
type SurefireData struct {
	ProfileID       string
	ChameleonTarget string
}

// DownloadData fills the download-and-unpack fragment.
type DownloadData struct {
	URL             string
	OutputDirectory string
}

// UnpackData fills the dependency-unpack fragment.
type UnpackData struct {
	GroupID         string
	ArtifactID      string
	Version         string
	OutputDirectory string
}

// SurefireConfiguration builds the configuration that tells surefire which
// Arquillian container to launch. chameleonTarget is omitted when empty.
func (r *Renderer) SurefireConfiguration(profileID, chameleonTarget string) (*etree.Element, error) {
	return r.Render(Surefire, SurefireData{ProfileID: profileID, ChameleonTarget: chameleonTarget})
}

// DownloadConfiguration builds the wget configuration for url.
func (r *Renderer) DownloadConfiguration(url string) (*etree.Element, error) {
	return r.Render(Download, DownloadData{URL: url, OutputDirectory: OutputDirectory})
}

// UnpackConfiguration builds the artifact unpack configuration.
func (r *Renderer) UnpackConfiguration(groupID, artifactID, version string) (*etree.Element, error) {
	return r.Render(Unpack, UnpackData{
		GroupID:         groupID,
		ArtifactID:      artifactID,
		Version:         version,
		OutputDirectory: OutputDirectory,
	})
}

func escape(s string) (string, error) {
	var sb strings.Builder
	if err := xml.EscapeText(&sb, []byte(s)); err != nil {
		return "", err
	}

	return sb.String(), nil
}
