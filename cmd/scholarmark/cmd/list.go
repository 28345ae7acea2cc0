package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// listCmd prints the aggregated publication list.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the aggregated publications",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sm, err := newScholarmark()
		if err != nil {
			return err
		}

		profile := sm.Profile()
		self := profile.HighlightName()
		out := cmd.OutOrStdout()

		for _, pub := range sm.Publications() {
			year := pub.Year.String()
			if year == "" {
				year = "n.d."
			}

			names := make([]string, 0, len(pub.Authors))
			for _, span := range sm.Highlight(pub) {
				if span.Self {
					names = append(names, "*"+span.Name+"*")
					continue
				}
				names = append(names, span.Name)
			}

			fmt.Fprintf(out, "%s  %s\n", year, pub.Title)
			if len(names) > 0 {
				fmt.Fprintf(out, "      %s\n", strings.Join(names, ", "))
			}
			if pub.Venue != "" {
				fmt.Fprintf(out, "      %s\n", pub.Venue)
			}
		}

		if self != "" {
			fmt.Fprintf(out, "\n* = %s\n", self)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
