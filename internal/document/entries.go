package document

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ProjectIDs returns the project identifiers in document order.
func (d *Document) ProjectIDs() []string {
	return keys(d.section(KeyProjects, yaml.MappingNode, false))
}

// Project returns the project stored under id.
func (d *Document) Project(id string) (Project, bool) {
	node := lookup(d.section(KeyProjects, yaml.MappingNode, false), id)
	if node == nil {
		return Project{}, false
	}
	var p Project
	if err := node.Decode(&p); err != nil {
		return Project{}, false
	}
	return p, true
}

// SetProject inserts or replaces the project stored under id.
func (d *Document) SetProject(id string, p Project) {
	value := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	value.Content = append(value.Content,
		scalar("name"), scalar(p.Name),
		scalar("url"), scalar(p.URL),
	)
	put(d.section(KeyProjects, yaml.MappingNode, true), id, value)
}

// PersonIDs returns the person identifiers in document order.
func (d *Document) PersonIDs() []string {
	return keys(d.section(KeyPeople, yaml.MappingNode, false))
}

// Person returns the display name stored under id.
func (d *Document) Person(id string) (string, bool) {
	node := lookup(d.section(KeyPeople, yaml.MappingNode, false), id)
	if node == nil {
		return "", false
	}
	return node.Value, true
}

// SetPerson inserts or replaces the display name stored under id.
func (d *Document) SetPerson(id, name string) {
	put(d.section(KeyPeople, yaml.MappingNode, true), id, scalar(name))
}

// Types returns the allowed contribution types.
func (d *Document) Types() []string {
	node := d.section(KeyTypes, yaml.SequenceNode, false)
	if node == nil {
		return nil
	}
	var types []string
	for _, item := range node.Content {
		item = resolveAlias(item)
		if item.Kind != yaml.ScalarNode || strings.TrimSpace(item.Value) == "" {
			continue
		}
		types = append(types, item.Value)
	}
	return types
}

// Contributions decodes the contributions section.
func (d *Document) Contributions() ([]Contribution, error) {
	node := d.section(KeyContributions, yaml.SequenceNode, false)
	if node == nil {
		return nil, nil
	}

	out := make([]Contribution, 0, len(node.Content))
	for i, item := range node.Content {
		c, err := decodeContribution(resolveAlias(item))
		if err != nil {
			return nil, fmt.Errorf("contribution %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// AppendContribution adds c at the end of the contributions section.
func (d *Document) AppendContribution(c Contribution) {
	seq := d.section(KeyContributions, yaml.SequenceNode, true)
	seq.Content = append(seq.Content, contributionNode(c))
}

// rawContribution mirrors Contribution with start kept as text, so any
// timestamp spelling in the file can be parsed by parseTimestamp.
type rawContribution struct {
	Project     string   `yaml:"project"`
	Title       string   `yaml:"title"`
	Type        string   `yaml:"type"`
	Who         string   `yaml:"who"`
	Start       string   `yaml:"start"`
	Description string   `yaml:"description"`
	Links       []string `yaml:"links"`
}

func decodeContribution(node *yaml.Node) (Contribution, error) {
	var raw rawContribution
	if err := node.Decode(&raw); err != nil {
		return Contribution{}, err
	}
	c := Contribution{
		Project:     raw.Project,
		Title:       raw.Title,
		Type:        raw.Type,
		Who:         raw.Who,
		Description: raw.Description,
		Links:       raw.Links,
	}
	if raw.Start != "" {
		start, ok := parseTimestamp(raw.Start)
		if !ok {
			return Contribution{}, fmt.Errorf("invalid start %q", raw.Start)
		}
		c.Start = start
	}
	return c, nil
}

func contributionNode(c Contribution) *yaml.Node {
	links := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, l := range c.Links {
		links.Content = append(links.Content, scalar(l))
	}

	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	node.Content = append(node.Content,
		scalar("project"), scalar(c.Project),
		scalar("title"), scalar(c.Title),
		scalar("type"), scalar(c.Type),
		scalar("who"), scalar(c.Who),
		scalar("start"), timestamp(c.Start),
		scalar("description"), scalar(c.Description),
		scalar("links"), links,
	)
	return node
}

// scalar returns a string node. The !!str tag makes the encoder quote
// values that would otherwise read back as another type.
func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func timestamp(t time.Time) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!timestamp", Value: FormatTimestamp(t)}
}
