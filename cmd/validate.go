package cmd

import (
	"fmt"

	"github.com/AnyUserName/assetkit/internal/storecheck"
	"github.com/spf13/cobra"
)

var (
	validateRoot        string
	validateProfile     string
	validateProfileFile string
	validateWorkers     int
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check store listing assets against the profile's dimensions",
	Long: `Checks each required and optional asset of the profile under --root and
every screenshot-*.{png,jpg,jpeg} file, printing one PASS/FAIL/WARN line
per check. Exits non-zero if any check fails.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateRoot, "root", "release/store-assets", "store assets directory")
	validateCmd.Flags().StringVarP(&validateProfile, "profile", "p", "chrome-web-store", "asset profile")
	validateCmd.Flags().StringVar(&validateProfileFile, "profile-file", "", "JSON profile (overrides --profile)")
	validateCmd.Flags().IntVarP(&validateWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	prof, err := resolveProfile(validateProfile, validateProfileFile)
	if err != nil {
		return err
	}
	logVerbose("root: %s", validateRoot)

	rep, err := storecheck.Run(validateRoot, prof, validateWorkers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range rep.Results {
		fmt.Fprintln(out, r)
	}

	if n := rep.Failed(); n > 0 {
		return fmt.Errorf("validation failed with %d errors", n)
	}
	return nil
}
