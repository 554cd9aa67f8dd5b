package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newToolCmd(a *App) *cobra.Command {
	var rawArgs string

	cmd := &cobra.Command{
		Use:   "tool [NAME]",
		Short: "Invoke an engine tool with JSON arguments and print the JSON envelope",
		Long: "Without NAME, prints the available tools and their arguments.\n" +
			"Arguments are a JSON object passed with --args, or read from stdin with --args -.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return writeJSON(out, a.Tools.Specs())
			}

			raw := []byte(rawArgs)
			if rawArgs == "-" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading arguments: %w", err)
				}
				raw = b
			}

			env := a.Tools.Invoke(cmd.Context(), args[0], raw)
			return writeJSON(out, env)
		},
	}

	cmd.Flags().StringVar(&rawArgs, "args", "", `Tool arguments as a JSON object, e.g. '{"student_id":"s-1"}'`)

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
