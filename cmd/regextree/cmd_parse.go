package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"regextree/internal/regex"
	"regextree/internal/render"
)

func newParseCmd() *cobra.Command {
	var dump bool
	var dot bool
	var pngPath string
	var dotBin string

	cmd := &cobra.Command{
		Use:          "parse <pattern>",
		Short:        "Show every pipeline stage for a single pattern",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := regex.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			out := cmd.OutOrStdout()

			switch {
			case dot:
				return render.WriteDOT(out, res.Root)
			case dump:
				printer := pp.New()
				printer.SetOutput(out)
				printer.SetColoringEnabled(false)
				_, err := printer.Println(res.Root)
				return err
			}

			fmt.Fprintf(out, "expanded:  %s\n", res.Expanded)
			fmt.Fprintf(out, "tokens:    %s\n", res.Tokens.Join(" "))
			fmt.Fprintf(out, "infix:     %s\n", res.Infix)
			fmt.Fprintf(out, "desugared: %s\n", res.Desugared)
			fmt.Fprintf(out, "postfix:   %s\n", res.Postfix.Join(" "))
			fmt.Fprintf(out, "tree:      %s\n", res.Root)

			if pngPath != "" {
				r := render.PNG{Dir: filepath.Dir(pngPath), Binary: dotBin}
				name := strings.TrimSuffix(filepath.Base(pngPath), ".png")
				path, err := r.Render(cmd.Context(), res.Root, name)
				if err != nil {
					return fmt.Errorf("render png: %w", err)
				}
				fmt.Fprintf(out, "png:       %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "pretty-print the tree structure")
	cmd.Flags().BoolVar(&dot, "dot", false, "print the tree as a Graphviz digraph")
	cmd.Flags().StringVar(&pngPath, "png", "", "also render the tree to this PNG file")
	cmd.Flags().StringVar(&dotBin, "dot-bin", defaultDotBinary(), "Graphviz dot executable used for --png")

	return cmd
}
