package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-options/internal/cli"
	"github.com/MKhiriev/go-options/internal/config"
	"github.com/MKhiriev/go-options/internal/logger"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// exit terminates the process; replaced in tests.
var exit = os.Exit

func main() {
	printBuildInfo()

	exit(run(context.Background(), os.Args[1:], os.Stdout))
}

// run executes the command line args and returns the process exit code.
func run(ctx context.Context, args []string, stdout io.Writer) int {
	logs := logger.NewFactory()
	log := logger.NewLogger("todo").WithTraceID(logs.TraceID())

	resolver, err := config.New(config.WithLogFactory(logs))
	if err != nil {
		log.Error().Err(err).Msg("error creating options resolver")
		return cli.ExitFailure
	}

	cmd := cli.NewRootCommand(resolver, program)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)

	if err = cmd.ExecuteContext(log.WithContext(ctx)); err != nil {
		if config.IsFatal(err) {
			fmt.Fprintln(stdout, "Failed to initialise syslog, exiting.")
			return cli.ExitFailure
		}

		log.Error().Err(err).Msg("error running command")
		return cli.ExitFailure
	}

	return cli.ExitSuccess
}

// program is the body of the command, run with normalised options.
// TODO: implement your program here
func program(cmd *cobra.Command, opts config.Options) error {
	settings := opts.Settings()
	settings.Log.Info("TODO:", settings.TODO)

	logger.FromContext(cmd.Context()).Debug().
		Str("config", settings.Config).
		Str("syslog", settings.Syslog).
		Bool("silent", settings.Silent).
		Msg("program finished")

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
