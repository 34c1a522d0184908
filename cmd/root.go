package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mrbear1024/xgrowth/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "xgrowth",
	Short: "X Growth System landing page server and exporter",
	Long: `xgrowth renders the X Growth System landing page from a YAML content
document. It serves the page with a contact form endpoint, exports it as a
static site, and validates content before it goes live.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
