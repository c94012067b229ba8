package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/craftfolio/internal/config"
	"github.com/ziadkadry99/craftfolio/internal/contact"
	"github.com/ziadkadry99/craftfolio/internal/progress"
	"github.com/ziadkadry99/craftfolio/internal/storage"
)

var (
	submitFields      contact.Fields
	submitEndpoint    string
	submitFolder      string
	submitDownloadDir string
	submitInteractive bool
	submitNoPicker    bool
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a contact form from the terminal",
	Long: `Validates a contact form and delivers it the way the site does: first to
the contact endpoint, then to contact/contact-info.json in a project folder,
and finally as a downloaded contact-info.json. Failed deliveries are kept in
the local submission cache so later files include them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if submitInteractive {
			if err := promptFields(&submitFields); err != nil {
				return err
			}
		}

		database, err := openCacheDB(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		endpoint := cfg.Contact.Endpoint
		if submitEndpoint != "" {
			endpoint = submitEndpoint
		}
		downloadDir := cfg.Contact.DownloadDir
		if submitDownloadDir != "" {
			downloadDir = submitDownloadDir
		}

		ui := &terminalUI{}
		reporter := progress.NewReporter()
		pipeline := contact.NewPipeline(contact.Config{
			Remote:    contact.NewHTTPRemote(endpoint, cfg.Contact.Timeout),
			Cache:     contact.NewCache(storage.NewStore(database)),
			Files:     contact.NewFileTier(choosePicker(cfg)),
			Download:  contact.DirDownloader{Dir: downloadDir},
			UI:        ui,
			UserAgent: fmt.Sprintf("%s/%s", cfg.Contact.UserAgent, Version),
			Observe:   reporter.Observe,
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		res := pipeline.Submit(ctx, submitFields)
		reporter.Finish()
		ui.flush()

		if verbose {
			for _, f := range res.Failures {
				fmt.Fprintf(os.Stderr, "  %s: %v\n", f.Tier, f.Err)
			}
		}
		if res.Outcome == contact.Rejected {
			return res.Err
		}
		if res.Outcome == contact.DownloadFallback {
			fmt.Fprintf(os.Stderr, "  %d submission(s) in %s\n", len(res.Log), downloadPath(downloadDir))
		}
		return nil
	},
}

// choosePicker selects how the local file tier obtains its folder. A nil
// picker makes the tier unavailable.
func choosePicker(cfg *config.Config) contact.Picker {
	switch {
	case submitFolder != "":
		return contact.DirPicker{Root: submitFolder}
	case cfg.Contact.Folder != "":
		return contact.DirPicker{Root: cfg.Contact.Folder}
	case submitInteractive && !submitNoPicker:
		return promptPicker{Default: cfg.SiteDir}
	}
	return nil
}

func downloadPath(dir string) string {
	if dir == "" {
		dir = contact.DefaultDownloadDir()
	}
	return filepath.Join(dir, contact.FileName)
}

// promptPicker asks for a project folder on the terminal. An empty answer
// or an interrupt cancels the pick.
type promptPicker struct {
	Default string
}

func (p promptPicker) Pick(ctx context.Context) (contact.Location, error) {
	prompt := promptui.Prompt{
		Label:   "Folder to save contact/" + contact.FileName + " (empty to skip)",
		Default: p.Default,
		Validate: func(s string) error {
			s = strings.TrimSpace(s)
			if s == "" {
				return nil
			}
			info, err := os.Stat(s)
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", s)
			}
			return nil
		},
	}
	root, err := prompt.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contact.ErrNoHandle, err)
	}
	return contact.DirPicker{Root: strings.TrimSpace(root)}.Pick(ctx)
}

// promptFields asks for every field left empty on the command line.
func promptFields(f *contact.Fields) error {
	fields := []struct {
		label string
		value *string
	}{
		{"Name", &f.Name},
		{"Email", &f.Email},
		{"Company", &f.Company},
		{"Message", &f.Message},
	}
	for _, field := range fields {
		if strings.TrimSpace(*field.value) != "" {
			continue
		}
		prompt := promptui.Prompt{Label: field.label}
		v, err := prompt.Run()
		if errors.Is(err, promptui.ErrInterrupt) {
			return fmt.Errorf("submission cancelled")
		}
		if err != nil {
			return fmt.Errorf("%s: %w", strings.ToLower(field.label), err)
		}
		*field.value = v
	}
	return nil
}

// terminalUI holds the single notification of a submission until the
// progress output is finished.
type terminalUI struct {
	kind    contact.Kind
	message string
}

func (u *terminalUI) Notify(kind contact.Kind, message string) {
	u.kind, u.message = kind, message
}

// Reset clears the flag values so a later prompt starts from an empty form.
func (u *terminalUI) Reset() {
	submitFields = contact.Fields{}
}

func (u *terminalUI) flush() {
	if u.message == "" {
		return
	}
	prefix := "✓"
	switch u.kind {
	case contact.KindError:
		prefix = "✗"
	case contact.KindInfo:
		prefix = "i"
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", prefix, u.message)
}

func init() {
	submitCmd.Flags().StringVar(&submitFields.Name, "name", "", "sender name")
	submitCmd.Flags().StringVar(&submitFields.Email, "email", "", "sender email")
	submitCmd.Flags().StringVar(&submitFields.Company, "company", "", "sender company")
	submitCmd.Flags().StringVar(&submitFields.Message, "message", "", "message body")
	submitCmd.Flags().StringVar(&submitEndpoint, "endpoint", "", "contact endpoint URL (overrides config)")
	submitCmd.Flags().StringVar(&submitFolder, "folder", "", "project folder for contact/contact-info.json")
	submitCmd.Flags().StringVar(&submitDownloadDir, "download-dir", "", "folder for the downloaded contact-info.json")
	submitCmd.Flags().BoolVarP(&submitInteractive, "interactive", "i", false, "prompt for empty fields and the project folder")
	submitCmd.Flags().BoolVar(&submitNoPicker, "no-picker", false, "never ask for a project folder")
	rootCmd.AddCommand(submitCmd)
}
