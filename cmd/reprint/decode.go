package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/reprint"
)

// readDocuments decodes every YAML (or JSON) document in the named files,
// in order. No names, or "-", reads stdin.
func readDocuments(stdin io.Reader, names []string) ([]any, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}
	var docs []any
	for _, name := range names {
		got, err := readFile(stdin, name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, got...)
	}
	return docs, nil
}

// readFile decodes one input, closing it before returning.
func readFile(stdin io.Reader, name string) ([]any, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	docs, err := decodeAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", displayName(name), err)
	}
	return docs, nil
}

func displayName(name string) string {
	if name == "-" {
		return "stdin"
	}
	return name
}

func decodeAll(r io.Reader) ([]any, error) {
	dec := yaml.NewDecoder(r)
	var docs []any
	for {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			return nil, err
		}
		v, err := fromNode(&node)
		if err != nil {
			return nil, err
		}
		docs = append(docs, v)
	}
}

// fromNode converts a YAML node to plain values, keeping mapping keys in
// document order.
func fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		m := reprint.NewOrderedMap[any, any]()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, err := fromNode(n.Content[i])
			if err != nil {
				return nil, err
			}
			if n.Content[i].Kind != yaml.ScalarNode {
				k = reprint.Sprint(k)
			}
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(k, v)
		}
		return m, nil
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}
