// Package graphio loads and saves planar graphs as JSON or YAML
// documents. The format is picked from the file extension: .json is
// JSON, .yaml/.yml is YAML.
//
// The on-disk document is {nodes, edges}: nodes in sequence order,
// edges as the derived tour edge list. Round-tripping a graph through
// Save/Load preserves node order, coordinates, attrs, and edges.
package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vkarel/tourlab/planar"
)

// ErrUnknownFormat indicates a file extension that is neither JSON nor
// YAML.
var ErrUnknownFormat = errors.New("graphio: unknown format")

// document is the serialized form of a planar.Graph.
type document struct {
	Nodes []planar.Node `json:"nodes" yaml:"nodes"`
	Edges []planar.Edge `json:"edges,omitempty" yaml:"edges,omitempty"`
}

// Load reads the graph stored at path, dispatching on the extension.
func Load(path string) (*planar.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: read %s: %w", path, err)
	}

	var doc document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("graphio: decode %s: %w", path, err)
	}

	return fromDocument(doc)
}

// Save writes the graph to path, dispatching on the extension. JSON
// output is indented for hand editing.
func Save(path string, g *planar.Graph) error {
	doc := document{Nodes: g.Nodes(), Edges: g.Edges()}

	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(doc, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("graphio: encode %s: %w", path, err)
	}

	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("graphio: write %s: %w", path, err)
	}

	return nil
}

// fromDocument rebuilds the graph, validating IDs and edge endpoints.
func fromDocument(doc document) (*planar.Graph, error) {
	g, err := planar.FromNodes(doc.Nodes)
	if err != nil {
		return nil, fmt.Errorf("graphio: invalid nodes: %w", err)
	}
	if err = g.SetEdges(doc.Edges); err != nil {
		return nil, fmt.Errorf("graphio: invalid edges: %w", err)
	}

	return g, nil
}
