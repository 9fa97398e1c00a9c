package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/AnyUserName/assetkit/internal/manifest"
	"github.com/AnyUserName/assetkit/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	iconsOutDir      string
	iconsProfile     string
	iconsProfileFile string
	iconsSizes       []int
	iconsFrom        string
	iconsWorkers     int
	iconsForce       bool
	iconsNoManifest  bool
)

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Render square PNG icons for every size in the profile",
	Long: `Renders icon<size>.png for each icon size of the profile, either from the
built-in bookmark glyph or by resampling --from artwork to a centred square.

Icons whose bytes are identical to the file already on disk are left
untouched unless --force is given. A manifest (icons.manifest.json) with
sizes, byte counts and xxhash64 content hashes is written alongside.`,
	Args: cobra.NoArgs,
	RunE: runIcons,
}

func init() {
	iconsCmd.Flags().StringVarP(&iconsOutDir, "out", "o", "icons", "output directory")
	iconsCmd.Flags().StringVarP(&iconsProfile, "profile", "p", "chrome-web-store", "asset profile")
	iconsCmd.Flags().StringVar(&iconsProfileFile, "profile-file", "", "JSON profile (overrides --profile)")
	iconsCmd.Flags().IntSliceVar(&iconsSizes, "sizes", nil, "custom icon sizes (overrides profile)")
	iconsCmd.Flags().StringVar(&iconsFrom, "from", "", "source artwork to resample instead of drawing the glyph")
	iconsCmd.Flags().IntVarP(&iconsWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	iconsCmd.Flags().BoolVar(&iconsForce, "force", false, "rewrite icons even when unchanged")
	iconsCmd.Flags().BoolVar(&iconsNoManifest, "no-manifest", false, "skip writing icons.manifest.json")
	rootCmd.AddCommand(iconsCmd)
}

func runIcons(cmd *cobra.Command, _ []string) error {
	start := time.Now()

	prof, err := resolveProfile(iconsProfile, iconsProfileFile)
	if err != nil {
		return err
	}

	absOutput, err := filepath.Abs(iconsOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	logVerbose("output:  %s", absOutput)
	if iconsFrom != "" {
		logVerbose("artwork: %s", iconsFrom)
	}

	p := pipeline.New(pipeline.Config{
		OutputDir: absOutput,
		Profile:   prof,
		Sizes:     iconsSizes,
		Artwork:   iconsFrom,
		Workers:   iconsWorkers,
		Verbose:   verbose,
		Force:     iconsForce,
	})

	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	if !iconsNoManifest {
		manifestPath := filepath.Join(absOutput, manifest.FileName)
		if err := manifest.WriteJSON(m, manifestPath); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
		logVerbose("manifest: %s", manifestPath)
	} else {
		m.ComputeStats()
	}

	out := cmd.OutOrStdout()
	for _, ic := range m.Icons {
		line := filepath.Join(iconsOutDir, ic.Path)
		if ic.Unchanged {
			line += " (unchanged)"
		}
		fmt.Fprintln(out, line)
	}
	logVerbose("%d written, %d unchanged, %s total in %s",
		m.Stats.Written, m.Stats.Unchanged, formatBytes(m.Stats.TotalBytes),
		time.Since(start).Round(time.Millisecond))
	return nil
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
