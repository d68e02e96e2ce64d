package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bridges/pkg/errors"
	"github.com/matzehuels/bridges/pkg/observability"
)

func (c *CLI) renderCommand() *cobra.Command {
	var (
		opts   docOpts
		output string
	)

	cmd := &cobra.Command{
		Use:   "render <input>",
		Short: "Write the visualization document for a .json or .dot file",
		Long: `Render loads a graph from a JSON node-link file or a Graphviz DOT file and
writes the visualization document. Graphs with more than 1000 vertices use the
compact encoding.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], output, &opts)
		},
	}

	addDocFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input, output string, opts *docOpts) error {
	b, g, err := c.buildDocument(cmd, input, opts)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if output == "" {
		n, err := b.WriteTo(c.out)
		observability.Document().OnSerialize(ctx, g.DataStructureType(), int(n), err)
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", output)
	}
	defer f.Close()

	n, err := b.WriteTo(f)
	observability.Document().OnSerialize(ctx, g.DataStructureType(), int(n), err)
	if err != nil {
		return err
	}

	printSuccess(c.out, "Rendered %s", g.DataStructureType())
	printDetail(c.out, "%d vertices, %d edges, %d bytes", g.Len(), g.EdgeCount(), n)
	printFile(c.out, output)
	return nil
}
