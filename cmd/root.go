package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "assetkit",
	Short: "Generate extension icons and check store listing assets",
	Long: `assetkit renders the square PNG icons a browser extension ships with
and checks that store listing assets (icons, promo tiles, screenshots)
have the pixel dimensions the store requires.

PNG files are written by a built-in encoder; dimensions are read from
PNG and JPEG headers without decoding pixel data.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"assetkit %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[assetkit] "+format+"\n", args...)
	}
}
