// Package board assembles the adapter: the keyboard interrupt line feeding
// the frame decoder, the translator, the macro player and the switch
// driver.
package board

import (
	"log/slog"
	"time"

	"github.com/ps2matrix/ps2matrix/crosspoint"
	"github.com/ps2matrix/ps2matrix/internal/log"
	"github.com/ps2matrix/ps2matrix/irq"
	"github.com/ps2matrix/ps2matrix/macro"
	"github.com/ps2matrix/ps2matrix/ps2"
	"github.com/ps2matrix/ps2matrix/translator"
)

// Config holds the timing of every stage.
type Config struct {
	Switch crosspoint.Timing `embed:"" prefix:"switch."`
	Keys   KeysConfig        `embed:"" prefix:"keys."`
	Macro  MacroConfig       `embed:"" prefix:"macro."`
}

type KeysConfig struct {
	ComboDwell time.Duration `help:"Dwell of the first key of a two-key sequence" default:"30ms" env:"PS2MATRIX_COMBO_DWELL"`
}

type MacroConfig struct {
	TypeDelay time.Duration `help:"How long macro keys are held; the gap between keys is twice this" default:"50ms" env:"PS2MATRIX_MACRO_TYPE_DELAY"`
}

// DefaultConfig returns the same values as the flag defaults.
func DefaultConfig() Config {
	return Config{
		Switch: crosspoint.DefaultTiming,
		Keys:   KeysConfig{ComboDwell: translator.DefaultComboDwell},
		Macro:  MacroConfig{TypeDelay: macro.DefaultTypeDelay},
	}
}

// Options configures a Board. All fields are optional.
type Options struct {
	// Delay replaces time.Sleep in every stage.
	Delay  func(time.Duration)
	Trace  log.BusLogger
	Logger *slog.Logger
	// Macros defaults to macro.Builtins().
	Macros []macro.Macro
	// OnDesync observes every switch reset caused by bad input.
	OnDesync func(code byte, err error)
}

type Board struct {
	line   *irq.Line[ps2.Edge]
	frames *ps2.FrameDecoder
	tr     *translator.Translator
	player *macro.Player
	driver *crosspoint.Driver
	logger *slog.Logger
	state  translator.State
}

// New wires a board driving pins. The line stays masked until Boot.
func New(cfg Config, pins crosspoint.Pins, o *Options) *Board {
	if o == nil {
		o = &Options{}
	}
	b := &Board{logger: log.OrDefault(o.Logger)}

	b.driver = crosspoint.New(pins, cfg.Switch, &crosspoint.Options{Delay: o.Delay, Trace: o.Trace})
	b.tr = translator.New(b.driver, &b.state, &translator.Options{
		ComboDwell: cfg.Keys.ComboDwell,
		Delay:      o.Delay,
		Logger:     b.logger,
		OnDesync:   o.OnDesync,
	})
	b.frames = ps2.NewFrameDecoder(b.tr, b.logger)
	b.line = irq.NewLine(b.frames.Edge)
	b.line.Disable()

	b.player = macro.NewPlayer(b.tr, b.line, &macro.Options{
		TypeDelay: cfg.Macro.TypeDelay,
		Delay:     o.Delay,
		Logger:    b.logger,
	})
	macros := o.Macros
	if macros == nil {
		macros = macro.Builtins()
	}
	b.tr.BindMacros(b.player, macro.Bindings(macros))
	return b
}

// Boot opens every switch, clears all decoder state and enables the line.
func (b *Board) Boot() {
	b.line.Exclusive(func() {
		b.frames.Reset()
		b.tr.Reset()
	})
	b.line.Enable()
	b.logger.Info("Board ready")
}

// Edge raises one clock edge on the keyboard line. It reports false when
// the line was masked and the edge was lost.
func (b *Board) Edge(e ps2.Edge) bool { return b.line.Raise(e) }

// Send clocks bs onto the keyboard line as a keyboard would. It returns
// the number of edges lost to masking.
func (b *Board) Send(bs ...byte) int {
	lost := 0
	for _, e := range ps2.EncodeAll(bs) {
		if !b.line.Raise(e) {
			lost++
		}
	}
	return lost
}

// RunMacro plays m from the mainline with the keyboard line masked.
func (b *Board) RunMacro(m macro.Macro) {
	b.logger.Info("Running macro", "name", m.Name)
	b.line.Exclusive(func() { b.player.Play(m.Seq) })
}

// LastScanCode is the diagnostic view of the most recent translated code.
func (b *Board) LastScanCode() byte { return b.tr.LastScanCode() }

// Desyncs returns how many times the switches were reset after bad input.
func (b *Board) Desyncs() uint64 { return b.tr.Desyncs() }

// Dropped returns how many edges were lost to masking.
func (b *Board) Dropped() uint64 { return b.line.Dropped() }

// State returns a copy of the translator state taken between edges.
func (b *Board) State() translator.State {
	var s translator.State
	b.line.Exclusive(func() { s = b.state })
	return s
}
