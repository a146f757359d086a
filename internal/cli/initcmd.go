package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ccinit-cli/ccinit/internal/config"
	ccerrors "github.com/ccinit-cli/ccinit/internal/errors"
	"github.com/ccinit-cli/ccinit/internal/prompt"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter step file",
	Long: `Write a commented starter step file showing both step variants.

The file goes to ~/.ccinit.json unless --config points elsewhere. An
existing file is only replaced after confirmation (or with --force).`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolP("force", "f", false, "overwrite an existing step file without prompting")
}

func runInit(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	force, _ := cmd.Flags().GetBool("force")

	path := settings.ConfigPath
	if path == "" {
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	if _, err := os.Stat(path); err == nil && !force {
		p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
		overwrite, err := p.Ask(fmt.Sprintf("Step file exists at %s. Overwrite?", path), prompt.DefaultNo)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(cmd.OutOrStdout(), "Left unchanged.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(config.ExampleJSON), 0o644); err != nil {
		return ccerrors.Wrap(err, ccerrors.Configuration, fmt.Sprintf("writing %s", path))
	}

	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote starter step file to %s\n", green("✓"), path)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit it, then run 'ccinit' to execute the steps.")
	return nil
}
