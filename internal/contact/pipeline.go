package contact

import (
	"context"
	"errors"
	"log"
	"time"
)

// State is a step of one submission flow.
type State string

const (
	Idle                State = "IDLE"
	Validating          State = "VALIDATING"
	Rejected            State = "REJECTED"
	SubmittingRemote    State = "SUBMITTING_REMOTE"
	RemoteOK            State = "REMOTE_OK"
	RemoteFailed        State = "REMOTE_FAILED"
	SubmittingLocalFile State = "SUBMITTING_LOCAL_FILE"
	LocalOK             State = "LOCAL_OK"
	LocalFailed         State = "LOCAL_FAILED"
	DownloadFallback    State = "DOWNLOAD_FALLBACK"
	Done                State = "DONE"
)

// Kind classifies a user notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// User-facing messages.
const (
	MsgSent       = "Successfully sent message!"
	MsgDownloaded = "Saved locally and downloaded contact-info.json. Run the server or grant folder access for direct writes."
)

// ErrNoRemote is recorded when the pipeline has no remote tier.
var ErrNoRemote = errors.New("no remote endpoint configured")

// UI is the form surface the pipeline reports back to.
type UI interface {
	Notify(kind Kind, message string)
	Reset()
}

type nopUI struct{}

func (nopUI) Notify(Kind, string) {}
func (nopUI) Reset()              {}

// TierError records why a fallback tier was skipped.
type TierError struct {
	Tier State
	Err  error
}

func (e TierError) Error() string { return string(e.Tier) + ": " + e.Err.Error() }

func (e TierError) Unwrap() error { return e.Err }

// Result describes one completed submission.
type Result struct {
	// Outcome is REJECTED, REMOTE_OK, LOCAL_OK or DOWNLOAD_FALLBACK.
	Outcome State
	// Trace lists every state entered, in order.
	Trace  []State
	Record Record
	// Log is the cached log after the append; nil when the remote tier
	// succeeded or the form was rejected.
	Log Log
	// Err is the *ValidationError of a rejected form.
	Err error
	// Failures holds the diagnostics of demoted tiers.
	Failures []TierError
}

// Config wires the pipeline's tiers. Only Cache is required for the local
// tiers to keep a durable copy; every other collaborator may be nil.
type Config struct {
	Remote    Remote
	Cache     *Cache
	Files     *FileTier
	Download  Downloader
	UI        UI
	UserAgent string
	Now       func() time.Time
	// Observe is called on every state transition.
	Observe func(State)
}

// Pipeline validates a form and persists it through the fallback chain
// remote endpoint, local file, download. Tiers run strictly in order.
type Pipeline struct {
	cfg Config
}

// NewPipeline returns a pipeline for cfg.
func NewPipeline(cfg Config) *Pipeline {
	if cfg.UI == nil {
		cfg.UI = nopUI{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Pipeline{cfg: cfg}
}

// Submit runs one submission. It never returns an error: every persistence
// failure is demoted to the next tier and the worst case is a download.
// Exactly one notification is shown per call.
func (p *Pipeline) Submit(ctx context.Context, f Fields) Result {
	var res Result
	p.enter(&res, Idle)
	p.enter(&res, Validating)
	if err := f.Validate(); err != nil {
		res.Err = err
		p.enter(&res, Rejected)
		p.cfg.UI.Notify(KindError, err.Error())
		return res
	}

	res.Record = NewRecord(f, p.cfg.Now(), p.cfg.UserAgent)

	p.enter(&res, SubmittingRemote)
	err := p.submitRemote(ctx, res.Record)
	if err == nil {
		p.enter(&res, RemoteOK)
		p.complete(KindSuccess, MsgSent)
		return res
	}
	p.fail(&res, SubmittingRemote, err)
	p.enter(&res, RemoteFailed)

	res.Log = p.appendCache(ctx, res.Record)

	p.enter(&res, SubmittingLocalFile)
	err = p.cfg.Files.Save(ctx, res.Log)
	if err == nil {
		p.enter(&res, LocalOK)
		p.complete(KindSuccess, MsgSent)
		return res
	}
	p.fail(&res, SubmittingLocalFile, err)
	p.enter(&res, LocalFailed)

	p.enter(&res, DownloadFallback)
	if err := p.download(ctx, res.Log); err != nil {
		p.fail(&res, DownloadFallback, err)
	}
	p.complete(KindInfo, MsgDownloaded)
	p.enter(&res, Done)
	res.Outcome = DownloadFallback
	return res
}

func (p *Pipeline) enter(res *Result, s State) {
	res.Trace = append(res.Trace, s)
	switch s {
	case Rejected, RemoteOK, LocalOK:
		res.Outcome = s
	}
	if p.cfg.Observe != nil {
		p.cfg.Observe(s)
	}
}

func (p *Pipeline) fail(res *Result, tier State, err error) {
	log.Printf("contact: %s failed: %v", tier, err)
	res.Failures = append(res.Failures, TierError{Tier: tier, Err: err})
}

func (p *Pipeline) complete(kind Kind, msg string) {
	p.cfg.UI.Reset()
	p.cfg.UI.Notify(kind, msg)
}

func (p *Pipeline) submitRemote(ctx context.Context, r Record) error {
	if p.cfg.Remote == nil {
		return ErrNoRemote
	}
	return p.cfg.Remote.Submit(ctx, r)
}

func (p *Pipeline) appendCache(ctx context.Context, r Record) Log {
	if p.cfg.Cache == nil {
		return Log{r}
	}
	l, err := p.cfg.Cache.Append(ctx, r)
	if err != nil {
		log.Printf("contact: failed to persist submissions: %v", err)
	}
	return l
}

func (p *Pipeline) download(ctx context.Context, l Log) error {
	if p.cfg.Download == nil {
		return errors.New("no downloader configured")
	}
	data, err := l.Pretty()
	if err != nil {
		return err
	}
	return p.cfg.Download.Download(ctx, FileName, data)
}
