// Package source loads graphs from dataset files.
//
// Two formats are supported, chosen by file extension in [Open]:
//
//   - .json: a node-link document (see [ReadJSON])
//   - .dot, .gv: a Graphviz graph (see [ReadDOT])
//
// Both produce a [Graph]: string vertex keys, and node and edge metadata
// as generic maps. Visual attributes found in the file are applied to the
// vertex and link visualizers and validated the same way as when set from
// code.
package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/bridges/pkg/errors"
	"github.com/matzehuels/bridges/pkg/graph"
)

// Metadata is free-form data attached to a vertex or an edge.
type Metadata = map[string]any

// Graph is the graph type produced by every source.
type Graph = graph.AdjList[string, Metadata, Metadata]

// Source loads a graph.
type Source interface {
	Load(ctx context.Context) (*Graph, error)
}

// Open picks a source for path by extension. The file is not read until
// Load is called.
func Open(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSONFile{Path: path}, nil
	case ".dot", ".gv":
		return DOTFile{Path: path}, nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported input %s: expected .json, .dot or .gv", path)
	}
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return data, nil
}
