package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/indent/pkg/errors"
)

func keys(n *Node) []string {
	out := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		out = append(out, c.Key)
	}
	return out
}

func TestParse_YAML(t *testing.T) {
	doc := `
name: demo
base: &base
  retries: 3
copy: *base
tags: [a, b]
nothing: ~
enabled: true
`
	root, err := Parse([]byte(doc), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, Mapping, root.Kind)
	assert.Equal(t, []string{"name", "base", "copy", "tags", "nothing", "enabled"}, keys(root))

	assert.Equal(t, "demo", root.Get("name").Value)
	assert.Equal(t, "str", root.Get("name").Tag)
	assert.Equal(t, "3", root.Get("copy").Get("retries").Value, "aliases resolve to their anchor")
	assert.Equal(t, Sequence, root.Get("tags").Kind)
	assert.Len(t, root.Get("tags").Children, 2)
	assert.Equal(t, Null, root.Get("nothing").Kind)
	assert.Equal(t, "bool", root.Get("enabled").Tag)
}

func TestParse_YAMLEmpty(t *testing.T) {
	root, err := Parse([]byte(""), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Null, root.Kind)
}

func TestParse_YAMLRepeatedAlias(t *testing.T) {
	doc := "defs: &d {k: v}\nlist: [*d, *d]\n"
	root, err := Parse([]byte(doc), FormatYAML)
	require.NoError(t, err)

	list := root.Get("list").Children
	require.Len(t, list, 2)
	assert.Equal(t, "v", list[0].Get("k").Value)
	assert.Equal(t, "v", list[1].Get("k").Value)
}

func TestParse_JSONEmpty(t *testing.T) {
	for _, data := range []string{"", " \n\t"} {
		root, err := Parse([]byte(data), FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, Null, root.Kind)
	}

	root, err := Parse([]byte("{\"a\": 1}\n\n"), FormatJSON)
	require.NoError(t, err, "trailing whitespace is fine")
	assert.Equal(t, []string{"a"}, keys(root))
}

func TestParse_TOML(t *testing.T) {
	doc := `
title = "demo"
count = 3
ratio = 0.5

[owner]
name = "ada"
born = 1815-12-10

[[servers]]
host = "a"

[[servers]]
host = "b"
`
	root, err := Parse([]byte(doc), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, []string{"count", "owner", "ratio", "servers", "title"}, keys(root))
	assert.Equal(t, "int", root.Get("count").Tag)
	assert.Equal(t, "0.5", root.Get("ratio").Value)
	assert.Equal(t, "float", root.Get("ratio").Tag)

	owner := root.Get("owner")
	assert.Equal(t, []string{"born", "name"}, keys(owner))
	assert.Equal(t, "1815-12-10", owner.Get("born").Value)
	assert.Equal(t, "datetime", owner.Get("born").Tag)

	servers := root.Get("servers")
	require.Equal(t, Sequence, servers.Kind)
	require.Len(t, servers.Children, 2)
	assert.Equal(t, "b", servers.Children[1].Get("host").Value)
}

func TestParse_JSON(t *testing.T) {
	doc := `{"zeta": 1, "alpha": [1.5, "x", null, false], "nested": {"b": {}, "a": []}}`
	root, err := Parse([]byte(doc), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "nested"}, keys(root), "object key order is kept")
	assert.Equal(t, "int", root.Get("zeta").Tag)

	alpha := root.Get("alpha").Children
	require.Len(t, alpha, 4)
	assert.Equal(t, "float", alpha[0].Tag)
	assert.Equal(t, "x", alpha[1].Value)
	assert.Equal(t, Null, alpha[2].Kind)
	assert.Equal(t, "false", alpha[3].Value)

	nested := root.Get("nested")
	assert.Equal(t, Mapping, nested.Get("b").Kind)
	assert.Equal(t, Sequence, nested.Get("a").Kind)
	assert.Equal(t, 10, root.Count())
}

func TestParse_XML(t *testing.T) {
	doc := `<?xml version="1.0"?>
<config version="2">
  <name>demo</name>
  <servers>
    <server host="a"/>
    <server host="b">primary</server>
  </servers>
  <empty/>
</config>`
	root, err := Parse([]byte(doc), FormatXML)
	require.NoError(t, err)

	config := root.Get("config")
	require.NotNil(t, config)
	assert.Equal(t, []string{"@version", "name", "servers", "empty"}, keys(config))
	assert.Equal(t, "2", config.Get("@version").Value)
	assert.Equal(t, "demo", config.Get("name").Value)
	assert.Equal(t, Null, config.Get("empty").Kind)

	servers := config.Get("servers").Children
	require.Len(t, servers, 2)
	assert.Equal(t, []string{"@host"}, keys(servers[0]))
	assert.Equal(t, []string{"@host", "#text"}, keys(servers[1]))
	assert.Equal(t, "primary", servers[1].Get("#text").Value)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		code   errors.ErrorCode
	}{
		{"bad_yaml", "a: [1, 2", FormatYAML, errors.ErrInputParse},
		{"bad_toml", "a = ", FormatTOML, errors.ErrInputParse},
		{"bad_json", `{"a": }`, FormatJSON, errors.ErrInputParse},
		{"json_trailing_value", `{"a":1} {"b":2} garbage`, FormatJSON, errors.ErrInputParse},
		{"json_trailing_garbage", `[1] x`, FormatJSON, errors.ErrInputParse},
		{"json_stray_close", "]", FormatJSON, errors.ErrInputParse},
		{"json_stray_brace", "  }\n", FormatJSON, errors.ErrInputParse},
		{"yaml_self_alias", "a: &x [*x]\n", FormatYAML, errors.ErrInputParse},
		{"yaml_nested_self_alias", "root: &r\n  child:\n    back: *r\n", FormatYAML, errors.ErrInputParse},
		{"bad_xml", "<a><b></a>", FormatXML, errors.ErrInputParse},
		{"unknown_format", "a", Format("ini"), errors.ErrInputFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"tree.yaml", FormatYAML, false},
		{"tree.YML", FormatYAML, false},
		{"dir/config.toml", FormatTOML, false},
		{"data.json", FormatJSON, false},
		{"pom.xml", FormatXML, false},
		{"notes.txt", "", true},
		{"Makefile", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInputFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
