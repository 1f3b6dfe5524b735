package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"regextree/internal/batch"
	"regextree/internal/render"
)

func newRunCmd() *cobra.Command {
	var outDir string
	var format string
	var dotBin string
	var strict bool

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Parse every line of a pattern file and render each tree",
		Long: `Reads one regular expression per line (stdin when no file or "-" is
given), prints the postfix form of each and renders its tree. A pattern that
fails to parse is reported and the run moves on to the next one.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open pattern file: %w", err)
				}
				defer f.Close()
				in = f
			}

			patterns, err := batch.ReadPatterns(in)
			if err != nil {
				return err
			}

			renderer, err := newRenderer(format, outDir, dotBin)
			if err != nil {
				return err
			}

			d := &batch.Driver{Out: cmd.OutOrStdout(), Renderer: renderer}
			sum, err := d.Run(cmd.Context(), patterns)
			if err != nil {
				return err
			}
			if strict && sum.Failed > 0 {
				return fmt.Errorf("%d of %d patterns failed", sum.Failed, sum.Total())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dot", "tree output format (none, dot, png)")
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", ".", "directory for rendered trees")
	cmd.Flags().StringVar(&dotBin, "dot-bin", defaultDotBinary(), "Graphviz dot executable used for png output")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when any pattern fails")

	return cmd
}

func newRenderer(format, dir, dotBin string) (render.Renderer, error) {
	switch format {
	case "none":
		return nil, nil
	case "dot":
		return render.DOTFile{Dir: dir}, nil
	case "png":
		return render.PNG{Dir: dir, Binary: dotBin}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

func defaultDotBinary() string {
	if bin := os.Getenv("REGEXTREE_DOT"); bin != "" {
		return bin
	}
	return "dot"
}
