package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mrbear1024/xgrowth/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize xgrowth configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the content file, server and contact form, and writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
