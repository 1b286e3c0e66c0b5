package solver

import "go.uber.org/zap"

// diagnostics wraps the solver's diagnostic output (spec §6.3): human
// readable lines explaining each deduction. The format is not stable and
// tests must not depend on its content. A nil *zap.Logger falls back to a
// no-op logger so callers never need a nil check.
type diagnostics struct {
	log *zap.Logger
}

func newDiagnostics(log *zap.Logger) diagnostics {
	if log == nil {
		log = zap.NewNop()
	}
	return diagnostics{log: log}
}

func (d diagnostics) markedSafe(coords []Coordinate, reason string) {
	if len(coords) == 0 {
		return
	}
	d.log.Debug("marked safe", zap.String("reason", reason), zap.Int("count", len(coords)))
}

func (d diagnostics) markedMine(coords []Coordinate, reason string) {
	if len(coords) == 0 {
		return
	}
	d.log.Debug("marked mine", zap.String("reason", reason), zap.Int("count", len(coords)))
}

func (d diagnostics) move(c Coordinate, strategy string) {
	d.log.Info("move selected", zap.String("coordinate", c.String()), zap.String("strategy", strategy))
}

func (d diagnostics) frontiers(n int) {
	d.log.Debug("frontiers built", zap.Int("count", n))
}

func (d diagnostics) gameOver(won bool, moves int) {
	d.log.Info("game over", zap.Bool("won", won), zap.Int("moves", moves))
}
