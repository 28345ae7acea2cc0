package cmd

import (
	"os"

	"github.com/spf13/cobra"

	scholarmark "github.com/scholarmark/scholarmark"
	"github.com/scholarmark/scholarmark/pkg/logging"
)

var (
	buildOutput string
	buildFormat string
)

// buildCmd produces the render feed artifact.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the render feed artifact",
	Long: `Build loads the content directory, aggregates the publication sources,
and writes the normalized feed artifact the site renderer consumes.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sm, err := newScholarmark()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if buildOutput != "" && buildOutput != "-" {
			f, err := os.Create(buildOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		var writeErr error
		switch buildFormat {
		case "yaml":
			writeErr = sm.WriteFeedYAML(out)
		default:
			writeErr = sm.WriteFeedJSON(out)
		}
		if writeErr != nil {
			return writeErr
		}

		if buildOutput != "" && buildOutput != "-" {
			logging.Info().
				Str("path", buildOutput).
				Str("format", buildFormat).
				Int("publications", len(sm.Publications())).
				Msg("Feed artifact written")
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "out", "o", "", "output file (default stdout)")
	buildCmd.Flags().StringVarP(&buildFormat, "format", "f", "json", "output format (json or yaml)")
	rootCmd.AddCommand(buildCmd)
}

// newScholarmark constructs a client from the global content flag.
func newScholarmark() (scholarmark.Scholarmark, error) {
	if dir := contentDir(); dir != "" {
		return scholarmark.New(scholarmark.WithPath(dir))
	}
	return scholarmark.New()
}
