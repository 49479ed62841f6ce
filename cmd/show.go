package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	fferrors "github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/errors"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/profile"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/workflows"
)

// Values accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var (
	showInput  string
	showSource string
	showParam  string
	showOutput string
)

func init() {
	showCmd.Flags().StringVarP(&showInput, "input-profile-name", "i", "", "text contained in the file name of the profile to show")
	showCmd.Flags().StringVar(&showSource, "source", sourceLive, "directory to search: repo or live")
	showCmd.Flags().StringVarP(&showParam, "param", "p", "", "only show this parameter")
	showCmd.Flags().StringVarP(&showOutput, "output", "o", outputText, "output format: text, json or yaml")
	_ = showCmd.MarkFlagRequired("input-profile-name")
}

// resetShowCommandState resets the show command's global state for testing.
func resetShowCommandState() {
	showInput = ""
	showSource = sourceLive
	showParam = ""
	showOutput = outputText
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a profile or a single parameter",
	Long: `Prints the first profile matching the filters whose file name contains
--input-profile-name. With --param only that parameter is printed.

Text output is the profile as it is stored on disk. JSON and YAML output keep
the parameter order of the file.

Examples:
  flashforge-profile-cli show -i abs-1.8-light
  flashforge-profile-cli show -i abs-1.8-light -p extruderTemp0
  flashforge-profile-cli show -i petg --source repo -o yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting show command")

		switch showOutput {
		case outputText, outputJSON, outputYAML:
		default:
			return formatError(fmt.Errorf("%w: %q, use text, json or yaml", fferrors.ErrInvalidOutputFormat, showOutput))
		}

		paths, filter, err := resolveTargets(cmd)
		if err != nil {
			return formatError(err)
		}

		dir, err := resolveSource(showSource, paths)
		if err != nil {
			return formatError(err)
		}

		result, err := workflows.Show(context.Background(), workflows.ShowOptions{
			Dir:          dir,
			Filter:       filter,
			InputProfile: showInput,
			Param:        showParam,
		})
		if err != nil {
			if result != nil {
				fmt.Print(formatSkipped(result.Skipped))
			}
			return formatError(err)
		}
		Logger.Debugf("Showing %s", result.Profile.FileName)

		if result.Param != "" {
			return outputParam(result.Param, result.Value)
		}
		return outputProfile(result.Profile)
	},
}

func outputParam(name, value string) error {
	switch showOutput {
	case outputJSON, outputYAML:
		return encodeShow(profile.NewParamsFrom(profile.Param{Name: name, Value: value}))
	default:
		fmt.Println(value)
		return nil
	}
}

func outputProfile(p *profile.Profile) error {
	switch showOutput {
	case outputJSON, outputYAML:
		return encodeShow(p)
	default:
		_, err := p.WriteTo(os.Stdout)
		return err
	}
}

func encodeShow(v interface{}) error {
	if showOutput == outputYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
		return enc.Close()
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
