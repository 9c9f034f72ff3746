package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/ShivMunagala/pydoccheck/internal/config"
	"github.com/ShivMunagala/pydoccheck/internal/storage"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	cfgFile     string
	showVersion bool
	appConfig   *config.Config
	logger      hclog.Logger

	rootCmd = &cobra.Command{
		Use:                   "pydoccheck [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "pydoccheck keeps Python docstring type hints in sync with signatures",
		Long: `pydoccheck compares the type hints declared in Python function signatures
against the types written in their Google-style docstrings and reports every
place where the two have drifted apart.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			appConfig, err = config.Load(cfgFile)
			if err != nil {
				return err
			}

			logger = hclog.New(&hclog.LoggerOptions{
				Name:   "pydoccheck",
				Output: os.Stderr,
				Level:  hclog.LevelFromString(appConfig.Logger.Level),
			})
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				printVersion()
				return nil
			}
			return cmd.Help()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .pydoccheck.yml)")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "print version information")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newServeCmd())
}

// Execute runs the root command
func Execute() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			// Findings or failed files; already reported, no banner
			os.Exit(exitErr.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("pydoccheck\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Build Mode: %s\n", storage.BuildMode)
	fmt.Printf("SQLite Driver: %s\n", storage.DriverName)
}
