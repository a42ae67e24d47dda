package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightmoves/internal/driver"
	"github.com/katalvlaran/knightmoves/knight"
)

// pairFlags are the --from/--to flags of distance and path.
// Flags rather than positional args, so negative squares like -2,-1 parse.
type pairFlags struct {
	from   string
	to     string
	asJSON bool
}

func (p *pairFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.from, "from", "f", "0,0", "Start square as row,col")
	cmd.Flags().StringVarP(&p.to, "to", "t", "", "Target square as row,col")
	cmd.Flags().BoolVar(&p.asJSON, "json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("to")
}

func (p *pairFlags) parse() (knight.Position, knight.Position, error) {
	from, err := knight.ParsePosition(p.from)
	if err != nil {
		return knight.Position{}, knight.Position{}, fmt.Errorf("--from: %w", err)
	}
	to, err := knight.ParsePosition(p.to)
	if err != nil {
		return knight.Position{}, knight.Position{}, fmt.Errorf("--to: %w", err)
	}

	return from, to, nil
}

func newDistanceCmd() *cobra.Command {
	p := &pairFlags{}
	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Print the minimum number of knight moves between two squares",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, to, err := p.parse()
			if err != nil {
				return err
			}
			d := knight.Distance(from, to)
			if p.asJSON {
				return writeJSON(cmd, map[string]any{"from": from, "to": to, "distance": d})
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)

			return nil
		},
	}
	p.register(cmd)

	return cmd
}

func newPathCmd() *cobra.Command {
	p := &pairFlags{}
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print one shortest knight path between two squares",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, to, err := p.parse()
			if err != nil {
				return err
			}
			res := knight.Search(from, to)
			if p.asJSON {
				return writeJSON(cmd, res)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Minimum moves: %d\n", res.Distance)
			fmt.Fprintf(out, "Path: %s\n", driver.FormatPath(res.Path))

			return nil
		},
	}
	p.register(cmd)

	return cmd
}

func newValidCmd() *cobra.Command {
	var (
		pos  string
		size int
	)
	cmd := &cobra.Command{
		Use:   "valid",
		Short: "Report whether a square lies on the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := knight.ParsePosition(pos)
			if err != nil {
				return fmt.Errorf("--pos: %w", err)
			}
			b, err := knight.BoardOfSize(size)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v on %v board: %t\n", p, b, knight.IsValid(p, b))

			return nil
		},
	}
	cmd.Flags().StringVarP(&pos, "pos", "p", "", "Square as row,col")
	cmd.Flags().IntVar(&size, "size", knight.UnboundedSize, "Board side length (-1 for unbounded)")
	_ = cmd.MarkFlagRequired("pos")

	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
