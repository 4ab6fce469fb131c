// Package picker keeps the HSL and OKLCH views of one colour in step and
// regenerates the palette as the colour changes.
package picker

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/palettesweep/internal/colour"
	"github.com/jmylchreest/palettesweep/internal/params"
	"github.com/jmylchreest/palettesweep/internal/sweep"
)

// ErrNoToolbox is returned when a controller is created without a toolbox.
var ErrNoToolbox = errors.New("colour toolbox not available")

// Controller defaults.
const (
	DefaultColour = "hsl(200, 76%, 36%)"
	DefaultCount  = 6
	MaxCount      = 100

	// RandomColour asks for a random starting hue.
	RandomColour = "random"

	fallbackColour = "hsla(0, 75%, 50%, 1)"
)

// Source says where an edit came from. Slider edits regenerate the palette
// at once; text edits are debounced.
type Source int

const (
	SourceText Source = iota
	SourceSlider
)

// Controller owns the canonical colour, the hue memory and the palette.
//
// A Controller is driven from a single goroutine, the way a UI event loop
// drives it. Debounced regeneration runs on a timer goroutine and is
// serialised with that caller by an internal mutex. Any call made while the
// Display is being updated is taken to be an echo of that update and is
// dropped, so a second goroutine submitting edits can lose them.
type Controller struct {
	mu        sync.Mutex
	toolbox   colour.Toolbox
	generator *sweep.Generator
	logger    hclog.Logger
	display   Display
	guard     Guard
	debouncer *Debouncer
	delay     time.Duration
	initial   string

	colour  colour.Colour
	memory  params.HueMemory
	fields  params.Inputs
	derived params.Derived
	vary    [2]sweep.Vary
	count   [2]int
	palette *sweep.Palette
}

// New creates a controller, displays its initial colour and generates the
// first palette.
func New(tb colour.Toolbox, opts ...Option) (*Controller, error) {
	if tb == nil {
		return nil, ErrNoToolbox
	}

	c := &Controller{
		toolbox: tb,
		logger:  hclog.NewNullLogger(),
		display: nopDisplay{},
		delay:   DefaultDebounce,
		initial: DefaultColour,
		vary:    [2]sweep.Vary{sweep.DefaultVary(params.ModelHSL), sweep.DefaultVary(params.ModelOKLCH)},
		count:   [2]int{DefaultCount, DefaultCount},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("picker")
	c.generator = sweep.NewGenerator(tb, c.logger)
	c.debouncer = NewDebouncer(c.delay, c.regenerate)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.fields.Model = params.ModelHSL
	c.colour = c.parseInitial(c.initial)
	if c.colour.IsValid() {
		c.memory = params.SeedHueMemory(c.colour)
	} else {
		c.logger.Error("initial colour invalid, using default red", "colour", c.initial, "error", c.colour.Err())
		c.colour = tb.Parse(fallbackColour)
		c.memory = params.NewHueMemory()
		c.memory.Set(params.ModelHSL, 0)
		c.memory.Set(params.ModelOKLCH, 0)
	}

	c.redisplayLocked(nil)
	c.regenerateLocked()
	return c, nil
}

func (c *Controller) parseInitial(s string) colour.Colour {
	if s == RandomColour {
		// Hues from orange through blue.
		return c.toolbox.HSL(float64(4+rand.IntN(242)), 76, 36, 1)
	}
	return c.toolbox.Parse(s)
}

// ApplyHSLEdit applies raw HSL panel values. Each unparseable field falls
// back to the canonical colour. At zero saturation the remembered HSL hue
// builds the colour; a parseable raw hue is still remembered.
func (c *Controller) ApplyHSLEdit(in params.HSLInputs, src Source) {
	if c.guard.Active() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fields.HSL = in
	master := c.colour.HSL()

	h, hueOK := params.ParseInt(in.Hue)
	s, ok := params.ParseInt(in.Saturation)
	if ok {
		s = clamp(s, 0, 100)
	} else {
		s = master.S
	}
	l, ok := params.ParseInt(in.Lightness)
	if ok {
		l = clamp(l, 0, 100)
	} else {
		l = master.L
	}

	var hue float64
	if s == 0 {
		if hueOK {
			c.memory.Set(params.ModelHSL, h)
		}
		hue = c.memory.HSL()
	} else {
		hue = c.memory.HSL()
		if hueOK {
			hue = colour.NormalizeHue(h)
		}
		c.memory.Set(params.ModelHSL, hue)
	}

	if o, ok := params.ParseInt(in.Opacity); ok {
		next := c.toolbox.HSL(hue, s, l, clamp(o/100, 0, 1))
		if next.IsValid() {
			c.colour = next
			if lch := next.OKLCH(); lch.C >= params.AchromaticChroma {
				c.memory.Set(params.ModelOKLCH, lch.H)
			}
		} else {
			c.logger.Warn("hsl edit produced an invalid colour", "hue", hue, "saturation", s, "lightness", l, "error", next.Err())
		}
	}

	c.redisplayLocked(nil)
	c.requestLocked(src)
}

// ApplyOKLCHEdit applies raw OKLCH panel values. If any field is unparseable
// the colour is left alone and only redisplayed. Below AchromaticChroma the
// remembered OKLCH hue builds the colour and the raw hue is kept on screen
// without being remembered.
func (c *Controller) ApplyOKLCHEdit(in params.OKLCHInputs, src Source) {
	if c.guard.Active() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fields.OKLCH = in

	l, okL := params.ParseInt(in.Lightness)
	pct, okC := params.ParseFloat(in.Chroma)
	h, okH := params.ParseInt(in.Hue)
	o, okO := params.ParseInt(in.Opacity)
	if !okL || !okC || !okH || !okO {
		c.logger.Debug("incomplete oklch edit, redisplaying", "fields", in)
		c.redisplayLocked(nil)
		c.requestLocked(src)
		return
	}

	rawHue := colour.NormalizeHue(h)
	abs := params.PercentToAbs(c.toolbox, clamp(pct, 0, 100), l, rawHue)

	var hue float64
	var keep *float64
	if abs < params.AchromaticChroma {
		hue = c.memory.OKLCH()
		abs = 0
		keep = &rawHue
	} else {
		hue = rawHue
		c.memory.Set(params.ModelOKLCH, rawHue)
	}

	next := c.toolbox.OKLCH(l, colour.Round4(abs), colour.NormalizeHue(hue), clamp(o/100, 0, 1))
	if !next.IsValid() {
		c.logger.Warn("oklch edit produced an invalid colour, using fallback", "l", l, "c", abs, "h", hue, "error", next.Err())
		next = c.toolbox.OKLCH(50, 0.1, colour.NormalizeHue(c.memory.OKLCH()), 1)
	}
	c.colour = next

	c.redisplayLocked(keep)
	c.requestLocked(src)
}

// SetColour replaces the canonical colour with a parsed colour string and
// schedules a debounced regeneration.
func (c *Controller) SetColour(s string) error {
	if c.guard.Active() {
		return nil
	}
	next := c.toolbox.Parse(s)
	if !next.IsValid() {
		return fmt.Errorf("set colour: %w", next.Err())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.colour = next
	hsl := next.HSL()
	if math.Round(hsl.S) > 0 {
		c.memory.Set(params.ModelHSL, hsl.H)
	}
	if lch := next.OKLCH(); lch.C >= params.AchromaticChroma {
		c.memory.Set(params.ModelOKLCH, lch.H)
	}

	c.redisplayLocked(nil)
	c.requestLocked(SourceText)
	return nil
}

// SetModel switches the active model and regenerates the palette.
func (c *Controller) SetModel(m params.Model) error {
	if m != params.ModelHSL && m != params.ModelOKLCH {
		return fmt.Errorf("%w: %v", params.ErrUnknownModel, m)
	}
	if c.guard.Active() {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fields.Model = m
	c.redisplayLocked(nil)
	c.debouncer.Cancel()
	c.regenerateLocked()
	return nil
}

// SetVary selects the sweep parameter for its model and regenerates the
// palette. The parameter must be available for the active model.
func (c *Controller) SetVary(v sweep.Vary) error {
	if c.guard.Active() {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.fields.Model
	if !v.AvailableFor(m) {
		return fmt.Errorf("%w: %s cannot be varied in %s", sweep.ErrUnknownVary, v, m)
	}
	c.vary[m] = v
	c.debouncer.Cancel()
	c.regenerateLocked()
	return nil
}

// SetCount sets the swatch count for the active model, clamped to
// [1, MaxCount], and regenerates the palette.
func (c *Controller) SetCount(n int) {
	if c.guard.Active() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.count[c.fields.Model] = max(1, min(MaxCount, n))
	c.debouncer.Cancel()
	c.regenerateLocked()
}

// Flush runs a pending debounced regeneration now.
func (c *Controller) Flush() bool {
	if c.guard.Active() {
		return false
	}
	return c.debouncer.Flush()
}

// Close cancels any pending regeneration.
func (c *Controller) Close() {
	c.debouncer.Close()
}

// Colour returns the canonical colour.
func (c *Controller) Colour() colour.Colour {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.colour
}

// Palette returns the last generated palette.
func (c *Controller) Palette() *sweep.Palette {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.palette
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	m := c.fields.Model
	return Snapshot{
		Colour:  c.colour,
		Fields:  c.fields,
		Derived: c.derived,
		Memory:  c.memory,
		Vary:    c.vary[m],
		Count:   c.count[m],
	}
}

// redisplayLocked rewrites both panels from the canonical colour. A non-nil
// keepOKLCHHue is shown in the OKLCH hue field instead of the remembered hue.
func (c *Controller) redisplayLocked(keepOKLCHHue *float64) {
	if !c.colour.IsValid() {
		c.logger.Warn("redisplay with invalid colour")
		return
	}

	hsl := c.colour.HSL()
	lch := c.colour.OKLCH()

	s := roundClamp(hsl.S)
	l := roundClamp(hsl.L)
	c.memory.Record(params.ModelHSL, hsl.H, s > 0)
	c.memory.Record(params.ModelOKLCH, lch.H, lch.C >= params.AchromaticChroma)

	h := colour.NormalizeHue(hsl.H)
	if s == 0 {
		h = colour.NormalizeHue(c.memory.HSL())
	}

	oL := roundClamp(lch.L)
	oH := colour.NormalizeHue(lch.H)
	if lch.C < params.AchromaticChroma {
		oH = colour.NormalizeHue(c.memory.OKLCH())
	}
	pct := params.AbsToPercent(c.toolbox, lch.C, float64(oL), oH)
	if keepOKLCHHue != nil {
		oH = *keepOKLCHHue
	}

	alpha := params.FormatInt(int(math.Round(c.colour.Alpha() * 100)))
	c.fields.HSL = params.HSLInputs{
		Hue:        params.FormatInt(int(h)),
		Saturation: params.FormatInt(s),
		Lightness:  params.FormatInt(l),
		Opacity:    alpha,
	}
	c.fields.OKLCH = params.OKLCHInputs{
		Lightness: params.FormatInt(oL),
		Chroma:    params.FormatInt(pct),
		Hue:       params.FormatInt(int(oH)),
		Opacity:   alpha,
	}
	c.derived = params.Derive(c.toolbox, c.fields, c.colour, c.memory)

	snap := c.snapshotLocked()
	c.guard.Do(func() {
		c.display.Show(snap)
	})
}

func (c *Controller) requestLocked(src Source) {
	if src == SourceSlider {
		c.debouncer.Cancel()
		c.regenerateLocked()
		return
	}
	c.debouncer.Trigger()
}

func (c *Controller) regenerate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.regenerateLocked()
}

func (c *Controller) regenerateLocked() {
	if !c.colour.IsValid() {
		return
	}
	m := c.fields.Model
	c.palette = c.generator.Generate(sweep.Request{
		Vary:      c.vary[m],
		Count:     c.count[m],
		Derived:   params.Derive(c.toolbox, c.fields, c.colour, c.memory),
		Memory:    c.memory,
		Canonical: c.colour,
	})
	c.display.ShowPalette(c.palette)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func roundClamp(v float64) int {
	return int(clamp(math.Round(v), 0, 100))
}
