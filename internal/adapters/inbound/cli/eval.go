package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specforge/specforge/internal/application"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <text>...",
		Short: "Evaluate an arithmetic expression from free text",
		Long:  "Normalize natural-language math phrasing (\"three times four\") into an expression and evaluate it with the oracle grammar.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answer, err := application.NewExprService().Calculate(strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}
}
