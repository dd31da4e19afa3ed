// Package host adapts the runner's HostChannel port to concrete outputs:
// a JSON-lines wire stream, structured logs, fan-out and in-memory capture.
package host

import (
	"fmt"

	"github.com/reone-boardgame/palette-roulette/internal/runner"
)

type scrollMessage struct {
	Type        string  `json:"type"`
	BottomSpeed float64 `json:"bottomSpeed"`
	TopSpeed    float64 `json:"topSpeed"`
}

type endedMessage struct {
	Type      string  `json:"type"`
	Score     int     `json:"score"`
	MainColor string  `json:"mainColor"`
	SubColor  string  `json:"subColor"`
	MarkerX   float64 `json:"markerX"`
	Cause     string  `json:"cause"`
}

type themeMessage struct {
	Type      string `json:"type"`
	MainColor string `json:"mainColor"`
	SubColor  string `json:"subColor"`
}

// Message converts an event to its wire value. Colors travel as CSS
// "rgb(r, g, b)" strings; the close request is a bare string.
func Message(e runner.Event) (any, error) {
	switch ev := e.(type) {
	case runner.ScrollUpdate:
		return scrollMessage{Type: ev.Type(), BottomSpeed: ev.BottomSpeed, TopSpeed: ev.TopSpeed}, nil
	case runner.GameEnded:
		return endedMessage{
			Type:      ev.Type(),
			Score:     ev.Score,
			MainColor: ev.Main.CSS(),
			SubColor:  ev.Sub.CSS(),
			MarkerX:   ev.MarkerX,
			Cause:     ev.Cause.String(),
		}, nil
	case runner.ThemeAdopted:
		return themeMessage{Type: ev.Type(), MainColor: ev.Main.CSS(), SubColor: ev.Sub.CSS()}, nil
	case runner.ModalCloseRequested:
		return ev.Type(), nil
	default:
		return nil, fmt.Errorf("host: unknown event %T", e)
	}
}
