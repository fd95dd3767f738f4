package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/indent/pkg/errors"
)

// Parse decodes data in the given format into a node tree
func Parse(data []byte, format Format) (*Node, error) {
	var (
		root *Node
		err  error
	)
	switch format {
	case FormatYAML:
		root, err = parseYAML(data)
	case FormatTOML:
		root, err = parseTOML(data)
	case FormatJSON:
		root, err = parseJSON(data)
	case FormatXML:
		root, err = parseXML(data)
	default:
		return nil, errors.Newf(errors.ErrInputFormat, "unknown input format: %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputParse, "failed to parse %s document", format).
			WithDetail("format", string(format))
	}
	return root, nil
}

func parseYAML(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return fromYAML(&doc, map[*yaml.Node]bool{})
}

// fromYAML converts a yaml node. expanding holds the anchors being expanded
// on the current path, so an alias that refers to one of its own ancestors
// is reported instead of followed forever.
func fromYAML(y *yaml.Node, expanding map[*yaml.Node]bool) (*Node, error) {
	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return &Node{Kind: Null}, nil
		}
		return fromYAML(y.Content[0], expanding)
	case yaml.AliasNode:
		if y.Alias == nil {
			return &Node{Kind: Null}, nil
		}
		if expanding[y.Alias] {
			return nil, fmt.Errorf("line %d: alias *%s refers to itself", y.Line, y.Value)
		}
		expanding[y.Alias] = true
		defer delete(expanding, y.Alias)
		return fromYAML(y.Alias, expanding)
	case yaml.MappingNode:
		if y.Anchor != "" {
			expanding[y] = true
			defer delete(expanding, y)
		}
		n := &Node{Kind: Mapping}
		for i := 0; i+1 < len(y.Content); i += 2 {
			child, err := fromYAML(y.Content[i+1], expanding)
			if err != nil {
				return nil, err
			}
			child.Key = y.Content[i].Value
			n.Children = append(n.Children, child)
		}
		return n, nil
	case yaml.SequenceNode:
		if y.Anchor != "" {
			expanding[y] = true
			defer delete(expanding, y)
		}
		n := &Node{Kind: Sequence}
		for _, item := range y.Content {
			child, err := fromYAML(item, expanding)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		}
		return n, nil
	case yaml.ScalarNode:
		tag := strings.TrimPrefix(y.ShortTag(), "!!")
		if tag == "null" {
			return &Node{Kind: Null, Tag: tag}, nil
		}
		return &Node{Kind: Scalar, Value: y.Value, Tag: tag}, nil
	default:
		return &Node{Kind: Null}, nil
	}
}

func parseTOML(data []byte) (*Node, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return fromValue(doc), nil
}

// fromValue converts decoded TOML values; table keys come out sorted since
// maps do not keep document order
func fromValue(v any) *Node {
	switch x := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		n := &Node{Kind: Mapping}
		for _, k := range keys {
			child := fromValue(x[k])
			child.Key = k
			n.Children = append(n.Children, child)
		}
		return n
	case []any:
		n := &Node{Kind: Sequence}
		for _, item := range x {
			n.Children = append(n.Children, fromValue(item))
		}
		return n
	case []map[string]any:
		n := &Node{Kind: Sequence}
		for _, item := range x {
			n.Children = append(n.Children, fromValue(item))
		}
		return n
	case string:
		return &Node{Kind: Scalar, Value: x, Tag: "str"}
	case bool:
		return &Node{Kind: Scalar, Value: strconv.FormatBool(x), Tag: "bool"}
	case int64:
		return &Node{Kind: Scalar, Value: strconv.FormatInt(x, 10), Tag: "int"}
	case float64:
		return &Node{Kind: Scalar, Value: strconv.FormatFloat(x, 'g', -1, 64), Tag: "float"}
	case time.Time:
		return &Node{Kind: Scalar, Value: x.Format(time.RFC3339Nano), Tag: "datetime"}
	case toml.LocalDate, toml.LocalTime, toml.LocalDateTime:
		return &Node{Kind: Scalar, Value: fmt.Sprint(x), Tag: "datetime"}
	case nil:
		return &Node{Kind: Null}
	default:
		return &Node{Kind: Scalar, Value: fmt.Sprint(x), Tag: fmt.Sprintf("%T", x)}
	}
}

func parseJSON(data []byte) (*Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &Node{Kind: Null}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	root, err := jsonValue(dec)
	if err != nil {
		return nil, err
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected %v after top-level value at offset %d", tok, dec.InputOffset())
	}
	return root, nil
}

// jsonValue reads one value from the token stream, keeping object key order
func jsonValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		kind := Sequence
		if t == '{' {
			kind = Mapping
		}
		n := &Node{Kind: kind}
		for dec.More() {
			var key string
			if kind == Mapping {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, _ = kt.(string)
			}
			child, err := jsonValue(dec)
			if err != nil {
				return nil, err
			}
			child.Key = key
			n.Children = append(n.Children, child)
		}
		// closing delimiter
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return n, nil
	case string:
		return &Node{Kind: Scalar, Value: t, Tag: "str"}, nil
	case json.Number:
		tag := "int"
		if strings.ContainsAny(t.String(), ".eE") {
			tag = "float"
		}
		return &Node{Kind: Scalar, Value: t.String(), Tag: tag}, nil
	case bool:
		return &Node{Kind: Scalar, Value: strconv.FormatBool(t), Tag: "bool"}, nil
	case nil:
		return &Node{Kind: Null, Tag: "null"}, nil
	default:
		return nil, fmt.Errorf("unexpected JSON token %v", tok)
	}
}

func parseXML(data []byte) (*Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return &Node{Kind: Null}, nil
	}
	return &Node{Kind: Mapping, Children: []*Node{fromElement(root)}}, nil
}

// fromElement maps an element to a node keyed by its tag. Attributes become
// "@name" scalars and mixed text becomes a "#text" scalar.
func fromElement(e *etree.Element) *Node {
	n := &Node{Key: e.FullTag()}
	for _, a := range e.Attr {
		n.Children = append(n.Children, &Node{Key: "@" + a.FullKey(), Kind: Scalar, Value: a.Value, Tag: "attr"})
	}
	for _, c := range e.ChildElements() {
		n.Children = append(n.Children, fromElement(c))
	}

	text := strings.TrimSpace(e.Text())
	if len(n.Children) == 0 {
		if text == "" {
			n.Kind = Null
			return n
		}
		n.Kind = Scalar
		n.Value = text
		n.Tag = "text"
		return n
	}
	n.Kind = Mapping
	if text != "" {
		n.Children = append(n.Children, &Node{Key: "#text", Kind: Scalar, Value: text, Tag: "text"})
	}
	return n
}
