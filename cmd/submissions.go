package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/craftfolio/internal/contact"
	"github.com/ziadkadry99/craftfolio/internal/storage"
)

var (
	submissionsJSON  bool
	submissionsClear bool
)

var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "List submissions kept in the local cache",
	Long: `Prints the contact submissions that could not be delivered to the endpoint and were kept in the local cache.
With --clear the cache is emptied once the submissions have been placed by hand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, err := openCacheDB(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		cache := contact.NewCache(storage.NewStore(database))
		if submissionsClear {
			n := len(cache.Load(cmd.Context()))
			if err := cache.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Cleared %d cached submission(s).\n", n)
			return nil
		}

		l := cache.Load(cmd.Context())

		if submissionsJSON {
			data, err := l.Pretty()
			if err != nil {
				return err
			}
			os.Stdout.Write(append(data, '\n'))
			return nil
		}

		if len(l) == 0 {
			fmt.Fprintln(os.Stderr, "No cached submissions.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SUBMITTED\tNAME\tEMAIL\tCOMPANY")
		for _, r := range l {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.SubmittedAt.Local().Format(time.DateTime), r.Name, r.Email, r.Company)
		}
		return w.Flush()
	},
}

func init() {
	submissionsCmd.Flags().BoolVar(&submissionsJSON, "json", false, "print the cache as contact-info.json")
	submissionsCmd.Flags().BoolVar(&submissionsClear, "clear", false, "empty the local cache")
	rootCmd.AddCommand(submissionsCmd)
}
