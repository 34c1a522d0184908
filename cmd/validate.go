package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config and content document",
	Long:  `Loads the config and the content document, reports validation problems and warnings, and prints how many entries each section holds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		site, err := loadSite(cfg)
		if err != nil {
			return err
		}

		source := cfg.Site.Content
		if source == "" {
			source = "built-in content"
		}
		fmt.Printf("%s is valid\n", source)

		counts := site.Counts()
		names := make([]string, 0, len(counts))
		for name := range counts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-14s %d\n", name, counts[name])
		}

		warnings := site.Warnings()
		for _, w := range warnings {
			fmt.Printf("warning: %s\n", w)
		}
		if len(warnings) > 0 {
			fmt.Printf("%d warning(s)\n", len(warnings))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
