// Package cli wires the ccinit command tree. The root command runs the
// configured steps; subcommands cover config scaffolding, validation,
// and version reporting.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ccinit-cli/ccinit/internal/config"
	ccerrors "github.com/ccinit-cli/ccinit/internal/errors"
	"github.com/ccinit-cli/ccinit/internal/executor"
	"github.com/ccinit-cli/ccinit/internal/prompt"
	"github.com/ccinit-cli/ccinit/internal/steps"
)

var rootCmd = &cobra.Command{
	Use:   "ccinit",
	Short: "Run interactive initialization steps from ~/.ccinit.json",
	Long: `ccinit reads a declarative list of steps - yes/no confirmations and
multi-select checkbox menus - and conditionally executes external
commands based on your choices.

Step commands and arguments may reference ${VAR} (environment variable)
and $(command) (captured stdout) tokens, resolved just before execution.`,
	Example: `  ccinit                 # run the steps in ~/.ccinit.json
  ccinit --yes           # accept every default, no prompting
  ccinit --config s.json # use an explicit step file
  ccinit init            # write a starter step file
  ccinit validate        # check the step file without running anything`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSteps,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to the step file (default ~/.ccinit.json)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.Flags().BoolP("yes", "y", false, "resolve every prompt to its default without asking")
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *ccerrors.CLIError
		if errors.As(err, &cliErr) {
			ccerrors.PrintError(cliErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return ExitCode(err)
	}
	return ExitSuccess
}

// resolveSettings merges CCINIT_* environment overrides with flags;
// flags win when set explicitly.
func resolveSettings(cmd *cobra.Command) (*config.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("config") {
		settings.ConfigPath, _ = cmd.Flags().GetString("config")
	}
	if cmd.Flags().Changed("yes") {
		settings.Yes, _ = cmd.Flags().GetBool("yes")
	}
	if cmd.Flags().Changed("no-color") {
		settings.NoColor, _ = cmd.Flags().GetBool("no-color")
	}
	if settings.NoColor {
		color.NoColor = true
	}
	return settings, nil
}

func runSteps(cmd *cobra.Command, args []string) error {
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

	runner := steps.New()
	runner.Yes = settings.Yes
	runner.Out = cmd.OutOrStdout()
	runner.Prompt = prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	runner.Exec = &executor.Executor{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}

	if err := runner.Run(cmd.Context(), cfg); err != nil {
		return ccerrors.NewRuntimeError(fmt.Sprintf("run finished with failures: %v", err))
	}
	return nil
}
