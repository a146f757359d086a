package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ccinit-cli/ccinit/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the step file without running anything",
	Long: `Load and validate the step file, then print a summary of the steps
it defines. Nothing is executed and no prompts are shown.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	path, err := config.Resolve(settings.ConfigPath)
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(out, "%s %s: %d step(s)\n", green("✓"), path, len(cfg.Steps))
	for i, step := range cfg.Steps {
		switch step.Kind {
		case config.Selection:
			fmt.Fprintf(out, "  %d. selection %q %s\n", i+1, step.Selection,
				dim(fmt.Sprintf("(%s, %d options)", step.Command, len(step.Options))))
		default:
			fmt.Fprintf(out, "  %d. confirm %q %s\n", i+1, step.Name,
				dim(fmt.Sprintf("(%s)", step.Command)))
		}
	}
	return nil
}
