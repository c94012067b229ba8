package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/craftfolio/internal/config"
	"github.com/ziadkadry99/craftfolio/internal/reveal"
)

var (
	revealFrom           float64
	revealTo             float64
	revealStep           float64
	revealEventsPerFrame int
	revealRealtime       bool
	revealFrameInterval  time.Duration
)

var revealCmd = &cobra.Command{
	Use:   "reveal <layout.yml>",
	Short: "Simulate the scroll reveal of a page layout",
	Long: `Scrolls through a page layout and prints every reveal change: section
progress and offset, member visibility with its stagger delay and the hero
fade. Scroll events are coalesced into frames the way a browser does.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		layout, err := reveal.LoadLayout(args[0])
		if err != nil {
			return err
		}
		applyConfiguredPresets(layout, cfg)
		if revealStep <= 0 {
			return fmt.Errorf("--step must be positive")
		}
		if revealEventsPerFrame <= 0 {
			revealEventsPerFrame = 1
		}

		height := layout.ViewportHeight
		if height <= 0 {
			height = cfg.Reveal.ViewportHeight
		}

		sink := newTableSink(os.Stdout)
		scroll := reveal.NewScrollContext(height)
		engine := reveal.NewEngine(*layout, cfg.Reveal.Params, scroll, sink)
		observer := reveal.NewObserver(engine)
		recompute := func() {
			sink.frame(scroll.Snapshot())
			engine.Recompute()
			observer.Check()
		}

		var events int
		if revealRealtime {
			events = simulateRealtime(cmd.Context(), scroll, recompute)
		} else {
			events = simulateManual(scroll, recompute)
		}
		if err := sink.flush(); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%d scroll events, %d recomputes\n", events, engine.Recomputes())
		return nil
	},
}

// applyConfiguredPresets fills group timings the layout leaves unset from
// the configured presets.
func applyConfiguredPresets(l *reveal.Layout, cfg *config.Config) {
	for i := range l.Groups {
		g := &l.Groups[i]
		p, ok := cfg.Reveal.Preset(g.Preset)
		if !ok {
			continue
		}
		if g.Step == 0 {
			g.Step = p.Step
		}
		if g.Cap == 0 {
			g.Cap = p.Cap
		}
	}
}

// scrollPath returns the offsets from --from to --to in --step increments.
func scrollPath() []float64 {
	var path []float64
	if revealFrom <= revealTo {
		for y := revealFrom; y <= revealTo; y += revealStep {
			path = append(path, y)
		}
		return path
	}
	for y := revealFrom; y >= revealTo; y -= revealStep {
		path = append(path, y)
	}
	return path
}

func simulateManual(scroll *reveal.ScrollContext, recompute func()) int {
	frames := &reveal.ManualFrames{}
	sched := reveal.NewScheduler(frames, recompute)

	// Page load.
	sched.Request()
	frames.Flush()

	path := scrollPath()
	for i, y := range path {
		scroll.Scroll(y)
		sched.Request()
		if (i+1)%revealEventsPerFrame == 0 {
			frames.Flush()
		}
	}
	frames.Flush()
	return len(path)
}

func simulateRealtime(ctx context.Context, scroll *reveal.ScrollContext, recompute func()) int {
	if ctx == nil {
		ctx = context.Background()
	}
	if revealFrameInterval <= 0 {
		revealFrameInterval = time.Second / 60
	}
	ctx, cancel := context.WithCancel(ctx)
	loop := reveal.NewFrameLoop(revealFrameInterval)
	sched := reveal.NewScheduler(loop, recompute)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		loop.Run(ctx)
	}()

	sched.Request()
	gap := revealFrameInterval / time.Duration(revealEventsPerFrame)
	path := scrollPath()
	for _, y := range path {
		scroll.Scroll(y)
		sched.Request()
		time.Sleep(gap)
	}
	// Let the last queued frame render.
	for sched.Pending() && ctx.Err() == nil {
		time.Sleep(revealFrameInterval)
	}
	cancel()
	wg.Wait()
	return len(path)
}

// tableSink prints reveal changes grouped by frame.
type tableSink struct {
	w     *tabwriter.Writer
	count int
	view  reveal.Viewport
	hero  float64
}

func newTableSink(out io.Writer) *tableSink {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FRAME\tSCROLL\tDIR\tELEMENT\tPROGRESS\tOFFSET\tVISIBLE\tDELAY")
	return &tableSink{w: w, hero: -1}
}

func (s *tableSink) frame(v reveal.Viewport) {
	s.count++
	s.view = v
}

func (s *tableSink) Apply(r *reveal.Revealable) {
	if r.Group != nil {
		fmt.Fprintf(s.w, "%d\t%.0f\t%s\t%s/%s\t-\t-\t%t\t%s\n",
			s.count, s.view.ScrollY, s.view.Direction, r.Group.Name, r.ID, r.Visible, r.Delay)
		return
	}
	fmt.Fprintf(s.w, "%d\t%.0f\t%s\t%s\t%.3f\t%.1fpx\t%t\t-\n",
		s.count, s.view.ScrollY, s.view.Direction, r.ID, r.Progress, r.Offset, r.Visible)
}

func (s *tableSink) ApplyHero(opacity float64) {
	if opacity == s.hero {
		return
	}
	s.hero = opacity
	fmt.Fprintf(s.w, "%d\t%.0f\t%s\thero\t-\t-\t-\topacity %.2f\n",
		s.count, s.view.ScrollY, s.view.Direction, opacity)
}

func (s *tableSink) flush() error { return s.w.Flush() }

func init() {
	revealCmd.Flags().Float64Var(&revealFrom, "from", 0, "first scroll offset")
	revealCmd.Flags().Float64Var(&revealTo, "to", 3000, "last scroll offset")
	revealCmd.Flags().Float64Var(&revealStep, "step", 50, "distance between scroll events")
	revealCmd.Flags().IntVar(&revealEventsPerFrame, "events-per-frame", 3, "scroll events delivered per frame")
	revealCmd.Flags().BoolVar(&revealRealtime, "realtime", false, "render frames on a real frame clock")
	revealCmd.Flags().DurationVar(&revealFrameInterval, "frame-interval", time.Second/60, "frame interval in realtime mode")
	rootCmd.AddCommand(revealCmd)
}
