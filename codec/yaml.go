package codec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/erraggy/keycase/keyerrors"
	"github.com/erraggy/keycase/multicase"
	"go.yaml.in/yaml/v4"
)

// yamlPosition matches the position the yaml package puts in its messages.
var yamlPosition = regexp.MustCompile(`line (\d+)(?:, column (\d+))?`)

func decodeYAML(data []byte, format Format) (multicase.Value, error) {
	if isBlank(data) {
		return multicase.Null, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, yamlParseError(format, err)
	}

	d := &nodeDecoder{
		format:  format,
		anchors: make(map[*yaml.Node]anchored),
		open:    make(map[*yaml.Node]struct{}),
	}
	return d.value(&doc, 0)
}

// yamlParseError converts an error from the yaml package to a ParseError.
func yamlParseError(format Format, err error) *keyerrors.ParseError {
	pe := &keyerrors.ParseError{
		Format:  string(format),
		Message: strings.TrimPrefix(err.Error(), "yaml: "),
		Cause:   err,
	}
	if m := yamlPosition.FindStringSubmatch(err.Error()); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			pe.Column, _ = strconv.Atoi(m[2])
		}
	}
	return pe
}

// Limits on alias expansion. Like the yaml package's own decoder, a
// document may expand through aliases only while the expanded share of all
// decoded nodes stays under allowedAliasRatio.
const (
	aliasRatioRangeLow  = 400000
	aliasRatioRangeHigh = 4000000
	aliasRatioRange     = float64(aliasRatioRangeHigh - aliasRatioRangeLow)
)

func allowedAliasRatio(decoded int) float64 {
	switch {
	case decoded <= aliasRatioRangeLow:
		return 0.99
	case decoded >= aliasRatioRangeHigh:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(decoded-aliasRatioRangeLow)/aliasRatioRange)
	}
}

// nodeDecoder turns a yaml.Node tree into values. Anchored nodes are decoded
// once and shared by every alias that refers to them.
type nodeDecoder struct {
	format  Format
	anchors map[*yaml.Node]anchored
	// open holds the anchored nodes being decoded.
	open map[*yaml.Node]struct{}
	// decoded counts the nodes of the expanded tree, aliased counts the
	// ones reached through an alias.
	decoded int
	aliased int
}

// anchored is an anchored node's value and the number of nodes it expands to.
type anchored struct {
	value multicase.Value
	size  int
}

// expand records an alias to a subtree of size nodes.
func (d *nodeDecoder) expand(size int) error {
	d.decoded += size
	d.aliased += size
	if d.aliased > 100 && d.decoded > 1000 && float64(d.aliased)/float64(d.decoded) > allowedAliasRatio(d.decoded) {
		return &keyerrors.ResourceLimitError{
			ResourceType: "alias_expansion",
			Limit:        int64(allowedAliasRatio(d.decoded) * float64(d.decoded)),
			Actual:       int64(d.aliased),
			Message:      "document is too large after expanding aliases",
		}
	}
	return nil
}

func (d *nodeDecoder) errorAt(node *yaml.Node, format string, args ...any) error {
	return &keyerrors.ParseError{
		Format:  string(d.format),
		Line:    node.Line,
		Column:  node.Column,
		Message: fmt.Sprintf(format, args...),
	}
}

func (d *nodeDecoder) value(node *yaml.Node, depth int) (multicase.Value, error) {
	if depth > maxDepth {
		return nil, depthError(depth)
	}
	if node.Kind == yaml.AliasNode {
		return d.alias(node, depth)
	}
	if node.Anchor != "" {
		d.open[node] = struct{}{}
		defer delete(d.open, node)
	}

	start := d.decoded
	d.decoded++
	v, err := d.node(node, depth)
	if err != nil {
		return nil, err
	}
	if node.Anchor != "" {
		d.anchors[node] = anchored{value: v, size: d.decoded - start}
	}
	return v, nil
}

func (d *nodeDecoder) alias(node *yaml.Node, depth int) (multicase.Value, error) {
	if node.Alias == nil {
		return nil, d.errorAt(node, "unknown anchor %q", node.Value)
	}
	if _, ok := d.open[node.Alias]; ok {
		return nil, d.errorAt(node, "anchor %q is used inside its own value", node.Value)
	}
	a, ok := d.anchors[node.Alias]
	if !ok {
		// Anchored mapping keys are not decoded as values; the first
		// alias to one decodes it.
		return d.value(node.Alias, depth)
	}
	if err := d.expand(a.size); err != nil {
		return nil, err
	}
	return a.value, nil
}

func (d *nodeDecoder) node(node *yaml.Node, depth int) (multicase.Value, error) {
	switch node.Kind {
	case 0:
		return multicase.Null, nil

	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return multicase.Null, nil
		}
		return d.value(node.Content[0], depth)

	case yaml.MappingNode:
		return d.mapping(node, depth)

	case yaml.SequenceNode:
		out := make(multicase.List, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := d.value(child, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case yaml.ScalarNode:
		return d.scalar(node)

	default:
		return nil, d.errorAt(node, "unsupported node kind %v", node.Kind)
	}
}

func (d *nodeDecoder) mapping(node *yaml.Node, depth int) (*multicase.Map, error) {
	m := multicase.NewMap(len(node.Content) / 2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := resolveAlias(node.Content[i]), node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == "!!merge" {
			if err := d.merge(m, valNode, depth); err != nil {
				return nil, err
			}
			continue
		}
		if keyNode.Kind != yaml.ScalarNode {
			return nil, d.errorAt(keyNode, "mapping keys must be scalars")
		}

		v, err := d.value(valNode, depth+1)
		if err != nil {
			return nil, err
		}
		m.Set(keyNode.Value, v)
	}
	return m, nil
}

// merge copies the entries of a merge key's value into m. Keys already in m
// win over merged ones.
func (d *nodeDecoder) merge(m *multicase.Map, node *yaml.Node, depth int) error {
	src := resolveAlias(node)
	var sources []*yaml.Node
	switch src.Kind {
	case yaml.MappingNode:
		sources = []*yaml.Node{node}
	case yaml.SequenceNode:
		sources = src.Content
	default:
		return d.errorAt(node, "merge value must be a mapping or a sequence of mappings")
	}

	for _, s := range sources {
		v, err := d.value(s, depth+1)
		if err != nil {
			return err
		}
		merged, ok := v.(*multicase.Map)
		if !ok {
			return d.errorAt(s, "merge value must be a mapping or a sequence of mappings")
		}
		for k, mv := range merged.All() {
			if _, exists := m.Get(k); !exists {
				m.Set(k, mv)
			}
		}
	}
	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func (d *nodeDecoder) scalar(node *yaml.Node) (multicase.Value, error) {
	switch node.ShortTag() {
	case "!!str":
		return multicase.ScalarOf(node.Value), nil
	case "!!null":
		return multicase.Null, nil
	}

	var v any
	if err := node.Decode(&v); err != nil {
		return nil, &keyerrors.ParseError{
			Format:  string(d.format),
			Line:    node.Line,
			Column:  node.Column,
			Message: fmt.Sprintf("invalid %s value %q", node.ShortTag(), node.Value),
			Cause:   err,
		}
	}
	return multicase.ScalarOf(v), nil
}

func encodeYAML(v multicase.Value, indent int) ([]byte, error) {
	node, err := valueToNode(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if indent > 0 {
		enc.SetIndent(indent)
	}
	if err := enc.Encode(node); err != nil {
		return nil, &keyerrors.EncodeError{Format: string(FormatYAML), Message: "failed to write document", Cause: err}
	}
	if err := enc.Close(); err != nil {
		return nil, &keyerrors.EncodeError{Format: string(FormatYAML), Message: "failed to write document", Cause: err}
	}
	return buf.Bytes(), nil
}

// scalarNode creates a yaml.Node for a scalar value.
func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// valueToNode converts a value tree to a yaml.Node, keeping mapping order.
func valueToNode(v multicase.Value) (*yaml.Node, error) {
	switch tv := v.(type) {
	case nil:
		return scalarNode("!!null", "null"), nil
	case *multicase.Map, *multicase.Dict:
		node := &yaml.Node{
			Kind:    yaml.MappingNode,
			Content: make([]*yaml.Node, 0, 2*mappingLen(tv)),
		}
		for k, item := range entriesOf(tv) {
			child, err := valueToNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalarNode("!!str", k), child)
		}
		return node, nil
	case multicase.List:
		node := &yaml.Node{
			Kind:    yaml.SequenceNode,
			Content: make([]*yaml.Node, 0, len(tv)),
		}
		for _, item := range tv {
			child, err := valueToNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case multicase.Scalar:
		return scalarToNode(tv.Interface())
	default:
		return nil, &keyerrors.EncodeError{Format: string(FormatYAML), Message: fmt.Sprintf("unsupported value %T", v)}
	}
}

func scalarToNode(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case nil:
		return scalarNode("!!null", "null"), nil
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(val)), nil
	case string:
		return scalarNode("!!str", val), nil
	case int:
		return scalarNode("!!int", strconv.Itoa(val)), nil
	case int8, int16, int32, int64:
		return scalarNode("!!int", fmt.Sprint(val)), nil
	case uint, uint8, uint16, uint32, uint64:
		return scalarNode("!!int", fmt.Sprint(val)), nil
	case float32:
		return scalarNode("!!float", formatFloat(float64(val), 32)), nil
	case float64:
		return scalarNode("!!float", formatFloat(val, 64)), nil
	case time.Time:
		return scalarNode("!!timestamp", val.Format(time.RFC3339Nano)), nil
	case []byte:
		return scalarNode("!!binary", base64.StdEncoding.EncodeToString(val)), nil
	default:
		// Anything else goes through the yaml package's own reflection.
		var node yaml.Node
		data, err := yaml.Marshal(val)
		if err != nil {
			return nil, &keyerrors.EncodeError{Format: string(FormatYAML), Message: fmt.Sprintf("cannot encode %T", v), Cause: err}
		}
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, &keyerrors.EncodeError{Format: string(FormatYAML), Message: fmt.Sprintf("cannot encode %T", v), Cause: err}
		}
		if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
			return node.Content[0], nil
		}
		return &node, nil
	}
}

// formatFloat renders f so that it still reads back as a float.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
