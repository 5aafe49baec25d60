// Package document loads, edits and writes the contributions YAML file.
//
// The file is kept as a yaml.Node tree so that comments, unknown keys and
// extra fields on entries survive a round trip. Typed accessors read the
// four sections the wizard works with: projects, people, types and
// contributions.
package document

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	contriberrors "github.com/ywarnier/oss-contrib/internal/errors"
)

// Top-level section keys.
const (
	KeyProjects      = "projects"
	KeyPeople        = "people"
	KeyTypes         = "types"
	KeyContributions = "contributions"
)

// Project describes an entry of the projects section.
type Project struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Contribution is one record of the contributions section.
type Contribution struct {
	Project     string
	Title       string
	Type        string
	Who         string
	Start       time.Time
	Description string
	Links       []string
}

// Document is an in-memory contributions file.
type Document struct {
	root *yaml.Node
}

// Load reads and parses the document at path.
// It fails with a MissingInput error when path is not an existing file;
// there is no fallback to an empty document.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, contriberrors.MissingInput(path)
		}
		return nil, contriberrors.ParseFailed(path, err)
	}
	if info.IsDir() {
		return nil, contriberrors.MissingInput(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, contriberrors.ParseFailed(path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, contriberrors.ParseFailed(path, err)
	}
	return doc, nil
}

// Parse builds a Document from raw YAML.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("document is empty")
	}
	if root.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top level must be a mapping, got %s", kindName(root.Content[0].Kind))
	}

	d := &Document{root: &root}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// validate checks the shape of the known sections.
func (d *Document) validate() error {
	expected := []struct {
		key  string
		kind yaml.Kind
	}{
		{KeyProjects, yaml.MappingNode},
		{KeyPeople, yaml.MappingNode},
		{KeyTypes, yaml.SequenceNode},
		{KeyContributions, yaml.SequenceNode},
	}
	for _, e := range expected {
		node := lookup(d.top(), e.key)
		if node == nil || isNull(node) {
			continue
		}
		if node.Kind != e.kind {
			return fmt.Errorf("%q must be a %s, got %s", e.key, kindName(e.kind), kindName(node.Kind))
		}
	}

	projects := d.section(KeyProjects, yaml.MappingNode, false)
	if projects != nil {
		for i := 0; i+1 < len(projects.Content); i += 2 {
			if v := resolveAlias(projects.Content[i+1]); v.Kind != yaml.MappingNode {
				return fmt.Errorf("project %q must be a mapping with name and url", projects.Content[i].Value)
			}
		}
	}

	if len(d.Types()) == 0 {
		return fmt.Errorf("%q must list at least one contribution type", KeyTypes)
	}
	return nil
}

// Bytes serializes the document with the given options.
func (d *Document) Bytes(opts EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the document back to path.
// The write is not atomic; a failure may leave the file truncated.
func (d *Document) Save(path string, opts EncodeOptions) error {
	data, err := d.Bytes(opts)
	if err != nil {
		return contriberrors.WriteFailed(path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return contriberrors.WriteFailed(path, err)
	}
	return nil
}

// top returns the root mapping node.
func (d *Document) top() *yaml.Node {
	return d.root.Content[0]
}

// section returns the value node stored under key. When create is true a
// missing or null section is replaced by an empty node of the given kind.
func (d *Document) section(key string, kind yaml.Kind, create bool) *yaml.Node {
	top := d.top()
	node := lookup(top, key)
	if node != nil && !isNull(node) {
		return node
	}
	if !create {
		return nil
	}

	fresh := &yaml.Node{Kind: kind}
	if kind == yaml.MappingNode {
		fresh.Tag = "!!map"
	} else {
		fresh.Tag = "!!seq"
	}
	if node != nil {
		*node = *fresh
		return node
	}
	top.Content = append(top.Content, scalar(key), fresh)
	return fresh
}

// lookup returns the value stored under key in a mapping node.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return resolveAlias(mapping.Content[i+1])
		}
	}
	return nil
}

// keys returns the keys of a mapping node in document order.
func keys(mapping *yaml.Node) []string {
	if mapping == nil {
		return nil
	}
	out := make([]string, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		out = append(out, mapping.Content[i].Value)
	}
	return out
}

// put sets key to value in a mapping node, replacing an existing value in place.
func put(mapping *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			mapping.Content[i+1] = value
			return
		}
	}
	mapping.Content = append(mapping.Content, scalar(key), value)
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "list"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
