package document

import (
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default formatting of the written file.
const (
	DefaultIndent      = 4
	DefaultInlineLevel = 4
)

// EncodeOptions controls the layout of the written file.
type EncodeOptions struct {
	// Indent is the number of spaces per nesting level.
	Indent int
	// InlineLevel is the nesting depth from which collections are written
	// in flow style ({...} and [...]). The top-level mapping is depth 0.
	InlineLevel int
}

// DefaultEncodeOptions returns the canonical layout: 4-space indentation
// and block style down to depth 4.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		Indent:      DefaultIndent,
		InlineLevel: DefaultInlineLevel,
	}
}

// Encode writes the document to w.
//
// Every node is restyled before writing so the output does not depend on
// how the file was formatted when loaded: multi-line strings become literal
// blocks, other strings use the least quoting that reads back as a string,
// timestamps are rendered with TimestampLayout, and collections switch from
// block to flow style at opts.InlineLevel.
func (d *Document) Encode(w io.Writer, opts EncodeOptions) error {
	if opts.Indent <= 0 {
		opts.Indent = DefaultIndent
	}
	if opts.InlineLevel <= 0 {
		opts.InlineLevel = DefaultInlineLevel
	}

	restyle(d.top(), 0, opts.InlineLevel, false)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(opts.Indent)
	if err := enc.Encode(d.root); err != nil {
		return err
	}
	return enc.Close()
}

func restyle(n *yaml.Node, depth, inlineLevel int, isKey bool) {
	switch n.Kind {
	case yaml.ScalarNode:
		restyleScalar(n, isKey)
	case yaml.MappingNode:
		setCollectionStyle(n, depth, inlineLevel)
		for i := 0; i+1 < len(n.Content); i += 2 {
			restyle(n.Content[i], depth+1, inlineLevel, true)
			restyle(n.Content[i+1], depth+1, inlineLevel, false)
		}
	case yaml.SequenceNode:
		setCollectionStyle(n, depth, inlineLevel)
		for _, item := range n.Content {
			restyle(item, depth+1, inlineLevel, false)
		}
	}
}

func setCollectionStyle(n *yaml.Node, depth, inlineLevel int) {
	if depth >= inlineLevel && len(n.Content) > 0 {
		n.Style |= yaml.FlowStyle
		return
	}
	n.Style &^= yaml.FlowStyle
}

const quotingStyles = yaml.DoubleQuotedStyle | yaml.SingleQuotedStyle | yaml.LiteralStyle | yaml.FoldedStyle

func restyleScalar(n *yaml.Node, isKey bool) {
	switch n.ShortTag() {
	case "!!str":
		n.Style &^= quotingStyles
		// A string that was quoted in the source keeps its type through
		// the explicit tag; the encoder re-quotes it only when needed.
		n.Tag = "!!str"
		if !isKey && strings.Contains(n.Value, "\n") {
			n.Style |= yaml.LiteralStyle
		}
	case "!!timestamp":
		if t, ok := parseTimestamp(n.Value); ok {
			n.Value = FormatTimestamp(t)
			n.Style &^= quotingStyles
		}
	}
}
