package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mrbear1024/xgrowth/internal/contact"
	"github.com/mrbear1024/xgrowth/internal/db"
)

var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "List stored contact form submissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if _, err := os.Stat(cfg.Contact.Database); os.IsNotExist(err) {
			return fmt.Errorf("database %s not found\nEnable contact.enabled and run `xgrowth serve` to collect submissions", cfg.Contact.Database)
		}

		database, err := db.Open(cfg.Contact.Database)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")

		store := contact.NewStore(database)
		subs, err := store.List(cmd.Context(), limit)
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(subs)
		}

		if len(subs) == 0 {
			fmt.Println("No submissions yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CREATED\tNAME\tEMAIL\tSTAGE\tMESSAGE")
		for _, s := range subs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				s.CreatedAt.Local().Format("2006-01-02 15:04"),
				s.Name, s.Email, s.Stage, truncate(s.Message, 40))
		}
		return w.Flush()
	},
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func init() {
	submissionsCmd.Flags().Int("limit", 20, "maximum number of submissions to show")
	submissionsCmd.Flags().Bool("json", false, "print submissions as JSON")
	rootCmd.AddCommand(submissionsCmd)
}
