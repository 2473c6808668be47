package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/specforge/specforge/internal/adapters/outbound/config"
	"github.com/specforge/specforge/internal/adapters/outbound/gitinfo"
	"github.com/specforge/specforge/internal/adapters/outbound/tui"
	"github.com/specforge/specforge/internal/adapters/outbound/writer"
	"github.com/specforge/specforge/internal/application"
	"github.com/specforge/specforge/internal/domain"
)

func newGenerateCmd() *cobra.Command {
	var (
		jsonOutput bool
		dryRun     bool
		write      bool
		junit      string
	)

	cmd := &cobra.Command{
		Use:   "generate <spec-file>",
		Short: "Generate test cases from a method specification",
		Long:  "Read a YAML or JSON generation request, derive equivalence-class and boundary-value test cases, and render them as a JUnit test class.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading spec file: %w", err)
			}

			req, err := config.ParseRequest(data)
			if err != nil {
				return err
			}
			if junit != "" {
				req.JUnitVersion = junit
			}

			base, err := filepath.Abs(filepath.Dir(args[0]))
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := config.New().Load(base)
			if err != nil {
				return err
			}

			gi := gitinfo.New()
			svc := application.NewGenerateService(writer.New(), gi, cfg)

			result, err := svc.Generate(req, application.GenerateOptions{
				Render: true,
				Write:  write && !dryRun,
				Base:   base,
			})
			if err != nil {
				var renderErr *domain.RenderError
				if result == nil || !errors.As(err, &renderErr) {
					return fmt.Errorf("generation failed: %w", err)
				}
				// Cases survived the render failure; show them with a warning.
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", renderErr)
			}

			switch {
			case jsonOutput:
				return renderJSON(cmd, result)
			case dryRun:
				fmt.Fprint(cmd.OutOrStdout(), result.Source)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(req, result))
				if hash, err := gi.CommitHash(base); err == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "at commit %s\n", hash[:min(12, len(hash))])
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the full generation result as JSON")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the rendered test class without writing it")
	cmd.Flags().BoolVar(&write, "write", false, "Write the rendered test class to the output directory")
	cmd.Flags().StringVar(&junit, "junit", "", "JUnit version to target (4 or 5)")

	return cmd
}

func renderJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
