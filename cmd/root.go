package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/configs"
	logger "github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/logging"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/profile"
	"github.com/MitchGaleaAbyss/flashforge-profile-cli/internal/ui"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	repoPath       string
	flashforgePath string
	machineID      string
	nozzle         string
	searchText     string
	globPattern    string

	RootCmd = &cobra.Command{
		Use:   configs.AppName,
		Short: "Keep FlashPrint slicing profiles in sync with a profile repository",
		Long: `Manages FlashPrint slicing profiles.

Profiles are named <machine id>_<nozzle diameter>_<name>.cfg and hold a
[General] and a [Custom] section. This tool copies profiles between a
version-controlled repository and the FlashPrint profile directory, and
copies a single parameter value across many profiles at once.

Every command accepts the same filters: --machine-id, --nozzle,
--search-regex and --glob.

Examples:
  # Install the repository profiles for machine 22
  flashforge-profile-cli update-profiles -m 22

  # Save tuned FlashPrint profiles back into the repository
  flashforge-profile-cli update-repo -m 22 -n 0.4

  # Copy extruderTemp0 from one profile to all 0.4mm ABS profiles
  flashforge-profile-cli set-param -p extruderTemp0 -i abs-1.8-light -n 0.4 --search-regex abs`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println()
			figure.NewColorFigure("FlashForge", "standard", "green", true).Print()
			fmt.Println()
			fmt.Println(ui.HintLine("Run ", ui.Code.Sprint(configs.AppName+" --help"), " to see available commands"))
		},
	}
)

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVarP(&repoPath, "repo-path", "r", "", "profile repository directory (default "+configs.DefaultRepoPath+")")
	flags.StringVarP(&flashforgePath, "flashforge-path", "f", "", "FlashPrint profile directory (default "+configs.DefaultFlashforgePath+")")
	flags.StringVarP(&machineID, "machine-id", "m", "", "only profiles for this machine id")
	flags.StringVarP(&nozzle, "nozzle", "n", "", "only profiles for this nozzle diameter")
	flags.StringVar(&searchText, "search-regex", "", "only profiles whose file name contains this text")
	flags.StringVar(&globPattern, "glob", "", "only profiles whose file name matches this glob")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(updateProfilesCmd)
	RootCmd.AddCommand(updateRepoCmd)
	RootCmd.AddCommand(setParamCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(ConfigCmd)
}

// resolveTargets applies flag > config.toml > default precedence to the
// directories and the identity filter.
func resolveTargets(cmd *cobra.Command) (configs.Paths, profile.Filter, error) {
	config, err := configs.LoadConfig()
	if err != nil {
		return configs.Paths{}, profile.Filter{}, err
	}

	changed := func(name string) bool {
		return cmd.Flags().Changed(name)
	}

	paths, err := config.ResolvePaths(repoPath, flashforgePath)
	if err != nil {
		return configs.Paths{}, profile.Filter{}, err
	}
	Logger.Debugf("Repository: %s, FlashPrint: %s", paths.Repo, paths.Flashforge)

	filter := profile.Filter{
		MachineID:      configs.Pick(machineID, changed("machine-id"), config.Defaults.MachineID, ""),
		NozzleDiameter: configs.Pick(nozzle, changed("nozzle"), config.Defaults.Nozzle, ""),
		Search:         searchText,
		Glob:           globPattern,
	}
	Logger.Debugf("Filter: %+v", filter)

	return paths, filter, nil
}

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	repoPath = ""
	flashforgePath = ""
	machineID = ""
	nozzle = ""
	searchText = ""
	globPattern = ""
	resetSyncCommandState()
	resetSetParamCommandState()
	resetListCommandState()
	resetShowCommandState()
	resetLogCommandState()
	resetConfigCommandState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears Changed on every flag so one test's flags do not
// leak into the next.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetCobraFlagState(child)
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
