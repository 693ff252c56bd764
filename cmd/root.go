package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	e "github.com/soliterra/markfile/internal/exec"
	log "github.com/soliterra/markfile/pkg/logger"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "markfile <file>",
	Short: "Overwrite an existing file with the fixture marker string",
	Long: `markfile overwrites an existing regular file with the exact marker string
produced by the legacy Python fixture script it replaces, so test harnesses
that assert on the marker keep passing unchanged.

The tool only runs on Linux and never creates files: the target must already
exist and be a regular file.`,
	Example: "markfile /tmp/fixture.txt",
	Args:    cobra.ExactArgs(1),
	// Errors are printed by main() with the exit code derived from the error
	// chain, so keep cobra quiet.
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return e.NewMarkExec().Execute(args[0])
	},
}

// Execute runs the root command. This is called once by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().String("logs-level", "Info", "Logs level. Supported log levels are Trace, Debug, Info, Warning, Off. If the log level is set to Off, markfile will not log any messages")
	RootCmd.PersistentFlags().String("logs-file", "/dev/stderr", "The file to write markfile logs to. Logs can be written to any file or any standard file descriptor, including '/dev/stdout', '/dev/stderr' and '/dev/null'")

	// Bind flags to Viper for environment variable support (MARKFILE_LOGS_LEVEL,
	// MARKFILE_LOGS_FILE).
	if err := viper.BindPFlag("logs-level", RootCmd.PersistentFlags().Lookup("logs-level")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("logs-file", RootCmd.PersistentFlags().Lookup("logs-file")); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("MARKFILE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// setupLogger configures the global logger from flags and environment
// variables. Invalid settings degrade to defaults with a warning instead of
// failing the command: logging is ambient, not part of the tool's contract.
func setupLogger() {
	level, err := log.ParseLogLevel(viper.GetString("logs-level"))
	if err != nil {
		log.Warn("Invalid log level, using Info", "error", err)
		level = log.InfoLevel
	}
	log.Default().SetLevel(level)

	out, err := log.OpenLogFile(viper.GetString("logs-file"))
	if err != nil {
		log.Warn("Failed to open logs file, using stderr", "error", err)
		return
	}
	log.Default().SetOutput(out)
}
