package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bridges/pkg/document"
)

const defaultInspectLimit = 20

func (c *CLI) inspectCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect <input>",
		Short: "Summarize the structure loaded from a .json or .dot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd, args[0], limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultInspectLimit, "vertices to list (0 for none)")

	return cmd
}

func (c *CLI) runInspect(cmd *cobra.Command, input string, limit int) error {
	g, err := c.loadGraph(cmd.Context(), input)
	if err != nil {
		return err
	}

	b := document.NewBuilder(c.Logger)
	if err := b.SetStructure(g); err != nil {
		return err
	}
	payload, err := b.Marshal()
	if err != nil {
		return err
	}

	encoding := "verbose"
	if document.IsLarge(g.Len()) {
		encoding = "compact"
	}

	w := c.out
	fmt.Fprintln(w, StyleTitle.Render(filepath.Base(input)))
	printKeyValue(w, "type", g.DataStructureType())
	printKeyValue(w, "vertices", StyleNumber.Render(strconv.Itoa(g.Len())))
	printKeyValue(w, "edges", StyleNumber.Render(strconv.Itoa(g.EdgeCount())))
	printKeyValue(w, "encoding", encoding)
	printKeyValue(w, "payload", fmt.Sprintf("%d bytes", len(payload)))

	keys := g.Keys()
	if limit <= 0 || len(keys) == 0 {
		return nil
	}
	fmt.Fprintln(w)

	shown := keys
	if len(shown) > limit {
		shown = shown[:limit]
	}
	for _, k := range shown {
		v, _ := g.Vertex(k)
		vis := v.Visualizer()
		detail := fmt.Sprintf("%s · size %g · out %d", vis.Shape(), vis.Size(), len(g.OutgoingEdges(k)))
		if vis.HasLocation() {
			x, y := vis.Location()
			detail += fmt.Sprintf(" · at (%g, %g)", x, y)
		}
		fmt.Fprintf(w, "  %s %s  %s\n", swatch(vis.Color()), StyleValue.Render(v.Label()), StyleDim.Render(detail))
	}
	if rest := len(keys) - len(shown); rest > 0 {
		printDetail(w, "… %d more", rest)
	}
	return nil
}
