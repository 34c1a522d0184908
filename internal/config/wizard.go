package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/manifoldco/promptui"
)

// contentCandidates are content files picked up as the wizard's default.
var contentCandidates = []string{
	"content.yml",
	"content.yaml",
	"site/content.yml",
}

// detectContent returns the first content file present in the current
// directory, or "" to use the embedded default.
func detectContent() string {
	for _, candidate := range contentCandidates {
		matches, _ := filepath.Glob(candidate)
		if len(matches) > 0 {
			return matches[0]
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to xgrowth! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Content file.
	contentPrompt := promptui.Prompt{
		Label:   "Content file (leave blank for the built-in copy)",
		Default: detectContent(),
	}
	contentPath, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content file: %w", err)
	}
	if contentPath != "" {
		if _, err := os.Stat(contentPath); err != nil {
			fmt.Printf("Note: %s does not exist yet; `xgrowth validate` will check it once it does.\n", contentPath)
		}
	}
	cfg.Site.Content = contentPath

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 3. Contact endpoint.
	contactPrompt := promptui.Select{
		Label: "Accept contact form submissions",
		Items: []string{
			"no  - the form stays a static mock-up",
			"yes - store submissions in SQLite",
		},
	}
	contactIdx, _, err := contactPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("contact selection: %w", err)
	}
	cfg.Contact.Enabled = contactIdx == 1

	if cfg.Contact.Enabled {
		dbPrompt := promptui.Prompt{
			Label:   "Submissions database",
			Default: cfg.Contact.Database,
		}
		if cfg.Contact.Database, err = dbPrompt.Run(); err != nil {
			return nil, fmt.Errorf("database path: %w", err)
		}
	}

	// 4. Export directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for static export",
		Default: cfg.Export.OutputDir,
	}
	if cfg.Export.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 5. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{string(LogConsole), string(LogJSON)},
	}
	_, format, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}
	cfg.Log.Format = LogFormat(format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
