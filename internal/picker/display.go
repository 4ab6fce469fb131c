package picker

import (
	"github.com/jmylchreest/palettesweep/internal/colour"
	"github.com/jmylchreest/palettesweep/internal/params"
	"github.com/jmylchreest/palettesweep/internal/sweep"
)

// Snapshot is the controller state handed to a Display.
type Snapshot struct {
	Colour  colour.Colour
	Fields  params.Inputs
	Derived params.Derived
	Memory  params.HueMemory
	Vary    sweep.Vary
	Count   int
}

// Display receives the controller's output. Show is called with the guard
// held; edits, setters and Flush called from it are ignored. Implementations
// must not read the Controller (Colour, Palette, Snapshot) from within these
// callbacks, and ShowPalette must not call back into it at all.
type Display interface {
	Show(Snapshot)
	ShowPalette(*sweep.Palette)
}

type nopDisplay struct{}

func (nopDisplay) Show(Snapshot)              {}
func (nopDisplay) ShowPalette(*sweep.Palette) {}

// DisplayFuncs adapts plain functions to a Display. Nil fields are skipped.
type DisplayFuncs struct {
	OnShow    func(Snapshot)
	OnPalette func(*sweep.Palette)
}

func (d DisplayFuncs) Show(s Snapshot) {
	if d.OnShow != nil {
		d.OnShow(s)
	}
}

func (d DisplayFuncs) ShowPalette(p *sweep.Palette) {
	if d.OnPalette != nil {
		d.OnPalette(p)
	}
}
