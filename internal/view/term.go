package view

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"lifegrid/pkg/sims/life"
)

const (
	fieldView  = "field"
	statusView = "status"
	helpView   = "help"

	leftColumnWidth = 30
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Terminal is an interactive gocui front end for one engine. Key handlers and
// the run loop share the engine under mu.
type Terminal struct {
	mu       sync.Mutex
	l        *life.Life
	running  bool
	interval time.Duration
	density  float64

	// update queues f on the gui event loop; it is nil once the gui closed.
	update func(f func(*gocui.Gui) error)

	keys []keyBinding
	au   aurora.Aurora
	log  *slog.Logger

	liveFiller string
	deadFiller string
}

// NewTerminal prepares a viewer that steps l every interval while running.
func NewTerminal(l *life.Life, interval time.Duration, log *slog.Logger) *Terminal {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	if log == nil {
		log = slog.Default()
	}
	au := aurora.NewAurora(true)
	t := &Terminal{
		l:          l,
		interval:   interval,
		density:    l.Density(),
		au:         au,
		log:        log,
		liveFiller: au.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}
	t.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdNext, ""},
		{'r', "R", "Run/stop", t.cmdToggleRun, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Random", t.cmdRandom, ""},
		{'b', "B", "Border mode", t.cmdBorder, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdMouseClick, fieldView},
	}
	return t
}

// Run opens the terminal UI and blocks until the user quits or ctx ends.
func (t *Terminal) Run(ctx context.Context) error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer g.Close()
	t.mu.Lock()
	t.update = g.Update
	t.mu.Unlock()
	g.Mouse = true
	g.SetManagerFunc(t.layout)
	for _, kb := range t.keys {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			return fmt.Errorf("bind %s: %w", kb.name, err)
		}
	}

	done := make(chan struct{})
	go t.loop(ctx, done)

	err = g.MainLoop()
	t.detach()
	close(done)
	if err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

// loop steps the engine while running. It asks the gui to quit when ctx ends
// and exits without touching the gui once done is closed.
func (t *Terminal) loop(ctx context.Context, done <-chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			t.post(func(*gocui.Gui) error { return gocui.ErrQuit })
			return
		case <-ticker.C:
			t.mu.Lock()
			running := t.running
			if running {
				t.l.Step()
			}
			t.mu.Unlock()
			if running {
				t.refresh()
			}
		}
	}
}

// detach stops further gui updates. gocui blocks forever on updates queued
// after MainLoop returned.
func (t *Terminal) detach() {
	t.mu.Lock()
	t.update = nil
	t.mu.Unlock()
}

func (t *Terminal) post(f func(*gocui.Gui) error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.update != nil {
		t.update(f)
	}
}

func (t *Terminal) refresh() {
	t.post(func(g *gocui.Gui) error {
		t.renderField(g)
		t.renderStatus(g)
		return nil
	})
}

func (t *Terminal) renderField(g *gocui.Gui) {
	v, err := g.View(fieldView)
	if err != nil {
		return
	}
	v.Clear()
	maxW, maxH := v.Size()
	var b bytes.Buffer
	t.mu.Lock()
	writeField(&b, t.l, maxW, maxH, t.liveFiller, t.deadFiller)
	t.mu.Unlock()
	fmt.Fprint(v, b.String())
}

func (t *Terminal) renderStatus(g *gocui.Gui) {
	v, err := g.View(statusView)
	if err != nil {
		return
	}
	v.Clear()
	fmt.Fprint(v, t.statusText())
}

func (t *Terminal) statusText() string {
	t.mu.Lock()
	st := t.l.Statistics()
	running := t.running
	t.mu.Unlock()

	var b bytes.Buffer
	for _, prop := range statLines(st) {
		fmt.Fprintf(&b, " %s: %s\n", t.au.Colorize(prop.name, aurora.GreenFg), prop.value)
	}
	mode := t.au.Colorize("waiting", aurora.BlueFg)
	if running {
		mode = t.au.Colorize("running", aurora.CyanFg)
	}
	fmt.Fprintf(&b, " %s: %s\n", t.au.Colorize("Mode", aurora.GreenFg), mode)
	return b.String()
}

func (t *Terminal) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(statusView, 0, 0, leftColumnWidth, maxY-3); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Status"
		t.renderStatus(g)
	}
	if v, err := g.SetView(fieldView, leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Field"
	}
	t.renderField(g)

	if v, err := g.SetView(helpView, -1, maxY-3, maxX, maxY-1); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYS: ")
		for i, k := range t.keys {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(t.au.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		fmt.Fprintln(v, b.String())
	}
	return nil
}

func (t *Terminal) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *Terminal) cmdNext(_ *gocui.View) error {
	t.mu.Lock()
	t.l.Step()
	t.mu.Unlock()
	t.refresh()
	return nil
}

func (t *Terminal) cmdToggleRun(_ *gocui.View) error {
	t.mu.Lock()
	t.running = !t.running
	t.mu.Unlock()
	t.refresh()
	return nil
}

func (t *Terminal) cmdClear(_ *gocui.View) error {
	t.mu.Lock()
	t.l.Fill(life.Dead)
	t.mu.Unlock()
	t.refresh()
	return nil
}

func (t *Terminal) cmdRandom(_ *gocui.View) error {
	t.mu.Lock()
	t.l.Randomize(t.density)
	t.mu.Unlock()
	t.refresh()
	return nil
}

func (t *Terminal) cmdBorder(_ *gocui.View) error {
	t.mu.Lock()
	next := t.l.BorderMode().Next()
	err := t.l.SetBorderMode(next)
	t.mu.Unlock()
	if err != nil {
		return err
	}
	t.log.Info("border mode changed", slog.String("border", next.String()))
	t.refresh()
	return nil
}

func (t *Terminal) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	t.toggle(cx+ox, cy+oy)
	return nil
}

// toggle flips a cell; clicks outside the grid are ignored.
func (t *Terminal) toggle(x, y int) {
	t.mu.Lock()
	err := t.l.Toggle(x, y)
	t.mu.Unlock()
	if err == nil {
		t.refresh()
	}
}
