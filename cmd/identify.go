package cmd

import (
	"errors"
	"fmt"

	"github.com/AnyUserName/assetkit/internal/imgsize"
	"github.com/spf13/cobra"
)

var identifyStrict bool

var identifyCmd = &cobra.Command{
	Use:   "identify <file>...",
	Short: "Print PNG/JPEG dimensions read from file headers",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIdentify,
}

func init() {
	identifyCmd.Flags().BoolVar(&identifyStrict, "strict", false, "verify the PNG IHDR checksum")
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	dims := imgsize.Dimensions
	if identifyStrict {
		dims = imgsize.DimensionsStrict
	}

	out := cmd.OutOrStdout()
	var failed int
	for _, path := range args {
		size, err := dims(path)
		switch {
		case errors.Is(err, imgsize.ErrNotRecognized):
			fmt.Fprintf(out, "%s: unsupported format\n", path)
		case err != nil:
			fmt.Fprintf(out, "%s: %v\n", path, err)
			failed++
		default:
			fmt.Fprintf(out, "%s: %s\n", path, size)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(args))
	}
	return nil
}
