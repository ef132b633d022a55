package engine

import "go.uber.org/zap"

// ZapLogger adapts a *zap.SugaredLogger to the Logger interface, replacing
// the teacher's bare log.Logger with the corpus's structured-logging choice.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps sugar as a Logger.
func NewZapLogger(sugar *zap.SugaredLogger) *ZapLogger {
	return &ZapLogger{sugar: sugar}
}

func (l *ZapLogger) BeginSearch() {
	l.sugar.Debug("search started")
}

func (l *ZapLogger) EndSearch() {
	l.sugar.Debug("search finished")
}

func (l *ZapLogger) CurrentDepth(depth int, score int16, move Move, nodes uint64) {
	l.sugar.Infow("iteration complete",
		"depth", depth,
		"score", score,
		"move", move.String(),
		"nodes", nodes,
	)
}
