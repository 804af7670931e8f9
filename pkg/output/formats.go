package output

import (
	"encoding/json"
	"fmt"

	"github.com/arthur-debert/cupidconf/pkg/conf"
	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type entryJSON struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// renderJSON emits an ordered array of {key, value} objects; repeated
// keys stay as separate elements so no information is lost.
func (r *Renderer) renderJSON(entries []conf.Entry) error {
	out := make([]entryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryJSON{Key: e.Key, Value: e.Value})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.writer, "%s\n", data)
	return err
}

// renderTOML groups repeated keys into arrays, since TOML forbids
// defining the same key twice. go-toml emits keys sorted.
func (r *Renderer) renderTOML(entries []conf.Entry) error {
	_, grouped := groupEntries(entries)
	data, err := toml.Marshal(grouped)
	if err != nil {
		return err
	}
	_, err = r.writer.Write(data)
	return err
}

// renderYAML builds the document node by node so keys keep their
// first-appearance order; repeated keys become sequences.
func (r *Renderer) renderYAML(entries []conf.Entry) error {
	keys, grouped := groupEntries(entries)

	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: k}
		values := grouped[k]
		var valueNode *yaml.Node
		if len(values) == 1 {
			valueNode = &yaml.Node{Kind: yaml.ScalarNode, Value: values[0]}
		} else {
			valueNode = &yaml.Node{Kind: yaml.SequenceNode}
			for _, v := range values {
				valueNode.Content = append(valueNode.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: v})
			}
		}
		root.Content = append(root.Content, keyNode, valueNode)
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return err
	}
	_, err = r.writer.Write(data)
	return err
}

// renderXML preserves both order and duplicate keys as repeated
// <entry key="..."> elements.
func (r *Renderer) renderXML(entries []conf.Entry) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	config := doc.CreateElement("config")
	for _, e := range entries {
		el := config.CreateElement("entry")
		el.CreateAttr("key", e.Key)
		el.SetText(e.Value)
	}

	doc.Indent(2)
	_, err := doc.WriteTo(r.writer)
	return err
}
