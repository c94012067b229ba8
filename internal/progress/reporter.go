package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/ziadkadry99/craftfolio/internal/contact"
)

// tierSteps orders the attempt states of a submission. The bar advances
// one step for each tier tried.
var tierSteps = map[contact.State]int{
	contact.Validating:          0,
	contact.SubmittingRemote:    1,
	contact.SubmittingLocalFile: 2,
	contact.DownloadFallback:    3,
}

var tierLabels = map[contact.State]string{
	contact.Validating:          "Validating form",
	contact.SubmittingRemote:    "Sending to server",
	contact.SubmittingLocalFile: "Writing contact-info.json",
	contact.DownloadFallback:    "Preparing download",
}

// Reporter provides progress feedback while a submission walks the
// fallback tiers.
type Reporter interface {
	Observe(s contact.State)
	Finish()
}

// NewReporter returns a TerminalReporter if running in an interactive terminal,
// or a CIReporter if the CI environment variable is set.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{w: os.Stderr}
	}
	return &TerminalReporter{}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Observe(s contact.State) {
	step, ok := tierSteps[s]
	if !ok {
		return
	}
	if r.bar == nil {
		r.bar = progressbar.NewOptions(len(tierSteps)-1,
			progressbar.OptionSetDescription("Submitting"),
			progressbar.OptionSetWidth(30),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionClearOnFinish(),
		)
	}
	r.bar.Describe(tierLabels[s])
	_ = r.bar.Set(step)
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints one line per state, suitable for logs.
type CIReporter struct {
	w io.Writer
}

func (r *CIReporter) Observe(s contact.State) {
	if label, ok := tierLabels[s]; ok {
		fmt.Fprintf(r.w, "[%s] %s\n", s, label)
		return
	}
	fmt.Fprintf(r.w, "[%s]\n", s)
}

func (r *CIReporter) Finish() {}
