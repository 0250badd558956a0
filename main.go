package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gpc/internal/appConfig"
	"gpc/internal/cloneCommand"
	"gpc/internal/cloneCommand/terminalView"
	. "gpc/internal/log"
	"gpc/internal/view"
	typex "gpc/type"
)

// errLoadConfig marks failures that happen before the log file is opened.
var errLoadConfig = errors.New("failed to load configuration")

var (
	verbose    bool
	configPath string
	config     *appConfig.AppConfig
)

var rootCmd = &cobra.Command{
	Use:           "gpc",
	Short:         "Manage projects on the GraphQL system API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		config, err = appConfig.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("%w: %w", errLoadConfig, err)
		}
		InitLogger(verbose, config.LogFileName)
		return nil
	},
}

func newCloneCmd() *cobra.Command {
	var opts cloneCommand.CloneOptions
	includeMutationCallbacks := typex.NullableBool{}
	includeData := typex.NullableBool{}

	cmd := &cobra.Command{
		Use:   "clone",
		Short: "Clone a project",
		Long: `Clone a remote project and write the clone's project file.

Without --source-project-id the id is read from the project file given with
--project-file, or from the only *.graphcool file in the current directory.
The clone's project file defaults to the source project file name with a
-clone suffix, e.g. project-clone.graphcool.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.IncludeMutationCallbacks = includeMutationCallbacks.Value
			opts.IncludeData = includeData.Value

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			_, err := cloneCommand.ExecuteCloneCommand(ctx, config, opts, view.NewStdTerminalStatus(), ".")
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.SourceProjectID, "source-project-id", "s", "", "ID of the project to clone")
	flags.StringVarP(&opts.Name, "name", "n", "", "Name of the cloned project (default \"Clone of <source name>\")")
	flags.StringVarP(&opts.ProjectFile, "project-file", "p", "", "Project file of the source project (default \"project.graphcool\")")
	flags.StringVarP(&opts.OutputPath, "output-path", "o", "", "Where to write the cloned project's project file")
	flags.Var(&includeMutationCallbacks, "include-mutation-callbacks", "Copy mutation callbacks (default true)")
	flags.Lookup("include-mutation-callbacks").NoOptDefVal = "true"
	flags.Var(&includeData, "include-data", "Copy data (default true)")
	flags.Lookup("include-data").NoOptDefVal = "true"
	return cmd
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug output to the log file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default gpc.yaml in the current or home directory)")
	rootCmd.AddCommand(newCloneCmd())

	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		return
	}
	reportFailure(err, os.Stderr)
	os.Exit(1)
}

func reportFailure(err error, stderr io.Writer) {
	switch {
	case errors.Is(err, cloneCommand.ErrReported):
	case errors.Is(err, errLoadConfig):
		_, _ = fmt.Fprintln(stderr, terminalView.ConfigLoadFailedMessage(err))
	default:
		Log.Errorf("Command failed: %+v", err)
		logFile := appConfig.DefaultLogFileName
		if config != nil {
			logFile = config.LogFileName
		}
		_, _ = fmt.Fprintln(stderr, terminalView.UnexpectedErrorMessage(err, GetLogFilePath(logFile)))
	}
}
