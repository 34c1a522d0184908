package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrbear1024/xgrowth/internal/progress"
	"github.com/mrbear1024/xgrowth/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the landing page as a static site",
	Long: `Writes index.html, contact.html and one gallery page per image, plus
the stylesheet, script and images, so the page can be hosted without a server.
The contact form is inert in a static export.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "override output directory (defaults to export.output_dir)")
	exportCmd.Flags().String("assets-dir", "", "directory whose files replace or extend the built-in assets")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	s, err := loadSite(cfg)
	if err != nil {
		return err
	}
	logWarnings(logger, s)

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.Export.OutputDir
	}
	assetDir, _ := cmd.Flags().GetString("assets-dir")

	gen := site.NewGenerator(s, outputDir)
	gen.Title = cfg.Site.Title
	gen.Assets = cfg.Export.Assets
	gen.AssetDir = assetDir
	gen.Reporter = progress.NewReporter()
	gen.Logger = logger

	res, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Exported %d pages and %d assets (%d unchanged) to %s\n", res.Pages, res.Assets, res.Unchanged, outputDir)
	return nil
}
