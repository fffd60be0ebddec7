package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/go-options/internal/config"
	"github.com/MKhiriev/go-options/internal/logger"
	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// RunFunc is the program body: it receives the normalised options.
type RunFunc func(cmd *cobra.Command, opts config.Options) error

// NewRootCommand returns the command that declares the option flags,
// collects the raw options from flags and environment, normalises them with
// resolver and passes the result to run.
func NewRootCommand(resolver *config.Resolver, run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		// TODO: rename the command
		Use:           "todo",
		Short:         "TODO: describe your command here",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := config.RegisterFlags(cmd.Flags())
	cmd.SetUsageFunc(usage)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		raw, err := config.RawOptions(cmd.Flags(), flags)
		if err != nil {
			return fmt.Errorf("collecting options: %w", err)
		}

		opts, err := resolver.Normalise(raw)
		if err != nil {
			return err
		}

		if opts.Settings().Silent {
			cmd.SetContext(logger.Nop().WithContext(cmd.Context()))
		}

		keys := slices.Sorted(maps.Keys(opts))
		logger.FromContext(cmd.Context()).Debug().Strs("keys", keys).Msg("options normalised")

		if run == nil {
			return nil
		}
		return run(cmd, opts)
	}

	return cmd
}

// usage prints the option list in the "-f, --config <path>" form.
func usage(cmd *cobra.Command) error {
	w := cmd.OutOrStderr()
	fmt.Fprintf(w, "Usage:\n  %s\n\nOptions:\n", cmd.UseLine())
	for _, f := range config.Flags {
		fmt.Fprintf(w, "  %-26s %s\n", f.Format(), f.Description)
	}
	fmt.Fprintf(w, "  %-26s %s\n", "-h, --help", "output usage information")

	return nil
}
