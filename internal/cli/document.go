package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bridges/pkg/document"
	"github.com/matzehuels/bridges/pkg/observability"
	"github.com/matzehuels/bridges/pkg/source"
)

// docOpts holds the document header flags shared by render and push.
type docOpts struct {
	title       string
	description string
	coordSystem string
	mapOverlay  bool
}

func addDocFlags(cmd *cobra.Command, o *docOpts) {
	cmd.Flags().StringVar(&o.title, "title", "", "document title (max 50 characters)")
	cmd.Flags().StringVar(&o.description, "description", "", "document description (max 250 characters)")
	cmd.Flags().StringVar(&o.coordSystem, "coord-system", "", "coordinate system: cartesian, albersusa, equirectangular")
	cmd.Flags().BoolVar(&o.mapOverlay, "map-overlay", false, "draw a map under the visualization")
}

// resolve fills unset flags from the config file.
func (o *docOpts) resolve(cmd *cobra.Command, c *CLI) {
	v := c.cfg.Visualization
	if !cmd.Flags().Changed("title") {
		o.title = v.Title
	}
	if !cmd.Flags().Changed("description") {
		o.description = v.Description
	}
	if !cmd.Flags().Changed("coord-system") {
		o.coordSystem = v.CoordSystem
	}
	if !cmd.Flags().Changed("map-overlay") {
		o.mapOverlay = v.MapOverlay
	}
}

// loadGraph opens path with the source matching its extension.
func (c *CLI) loadGraph(ctx context.Context, path string) (*source.Graph, error) {
	src, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	g, err := src.Load(ctx)
	if err != nil {
		observability.Document().OnLoad(ctx, path, 0, 0, time.Since(start), err)
		return nil, err
	}
	observability.Document().OnLoad(ctx, path, g.Len(), g.EdgeCount(), time.Since(start), nil)
	return g, nil
}

// buildDocument loads path and wraps it in a Builder configured from o.
func (c *CLI) buildDocument(cmd *cobra.Command, path string, o *docOpts) (*document.Builder, *source.Graph, error) {
	o.resolve(cmd, c)

	g, err := c.loadGraph(cmd.Context(), path)
	if err != nil {
		return nil, nil, err
	}

	b := document.NewBuilder(c.Logger)
	b.SetTitle(o.title)
	b.SetDescription(o.description)
	if o.coordSystem != "" {
		if err := b.SetCoordSystem(o.coordSystem); err != nil {
			return nil, nil, err
		}
	}
	b.SetMapOverlay(o.mapOverlay)
	if err := b.SetStructure(g); err != nil {
		return nil, nil, err
	}
	return b, g, nil
}
