// Package display is the menu/message output collaborator. The front
// panel is a small OLED; headless runs use the log sink instead.
package display

import "github.com/rs/zerolog"

// Display renders the two menu shapes the controller emits: a single
// (possibly emphasized) line, or a menu title with the parameter under
// edit and its value.
type Display interface {
	ShowMessage(text string, emphasized bool) error
	ShowMenu(menu, param, value string) error
}

// Log writes menu output to a structured logger. Useful headless and in
// tests.
type Log struct {
	L zerolog.Logger
}

func NewLog(l zerolog.Logger) *Log { return &Log{L: l} }

func (d *Log) ShowMessage(text string, emphasized bool) error {
	d.L.Info().Bool("emphasized", emphasized).Str("text", text).Msg("display")
	return nil
}

func (d *Log) ShowMenu(menu, param, value string) error {
	d.L.Info().Str("menu", menu).Str("param", param).Str("value", value).Msg("display")
	return nil
}

// Multi fans menu output to several displays, e.g. the OLED plus the
// websocket mirror. The first error wins but every sink is attempted.
type Multi struct {
	sinks []Display
}

func NewMulti(sinks ...Display) *Multi { return &Multi{sinks: sinks} }

func (m *Multi) ShowMessage(text string, emphasized bool) error {
	var first error
	for _, s := range m.sinks {
		if err := s.ShowMessage(text, emphasized); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m *Multi) ShowMenu(menu, param, value string) error {
	var first error
	for _, s := range m.sinks {
		if err := s.ShowMenu(menu, param, value); err != nil && first == nil {
			first = err
		}
	}
	return first
}
