package sparks

import (
	"time"

	"go.uber.org/zap"
)

// frameStats holds the metrics of a single Update call.
// Only collected when the pool was built WithDebug(true).
type frameStats struct {
	dt         float64
	died       int
	updateTime time.Duration
}

// logFrame writes per-frame stats at debug level.
func (s *ParticlesState) logFrame(f frameStats) {
	ce := s.log.Check(zap.DebugLevel, "particle frame")
	if ce == nil {
		return
	}
	ce.Write(
		zap.Float64("dt", f.dt),
		zap.Int("alive", s.alive),
		zap.Int("died", f.died),
		zap.Uint64("emitted", s.stats.Emitted),
		zap.Uint64("evicted", s.stats.Evicted),
		zap.Duration("update", f.updateTime),
	)
}
