package replay

import (
	"context"
	"fmt"
	"io"

	"firestige.xyz/erratic/internal/errmodel"
	"firestige.xyz/erratic/internal/log"
	"firestige.xyz/erratic/internal/metrics"
)

// Stats aggregates a replay run.
type Stats struct {
	Packets uint64
	Corrupt uint64
	Bytes   uint64
}

// CorruptRatio returns the fraction of packets flagged corrupt.
func (s Stats) CorruptRatio() float64 {
	if s.Packets == 0 {
		return 0
	}
	return float64(s.Corrupt) / float64(s.Packets)
}

// Runner drains a packet source through an error model, one packet at a
// time, the way a channel model would consult the engine per transmission.
type Runner struct {
	modelName string
	model     errmodel.ErrorModel
	log       log.Logger
}

// NewRunner wraps model for a replay run; modelName labels log fields and
// metrics.
func NewRunner(modelName string, model errmodel.ErrorModel) *Runner {
	return &Runner{
		modelName: modelName,
		model:     model,
		log:       log.GetLogger().WithField("component", "replay"),
	}
}

// Run consumes src until io.EOF, returning aggregate stats. The context is
// checked between packets; a cancelled run returns the stats gathered so
// far together with ctx.Err().
func (r *Runner) Run(ctx context.Context, src Source) (Stats, error) {
	var st Stats
	debug := r.log.IsDebugEnabled()

	for {
		select {
		case <-ctx.Done():
			return st, ctx.Err()
		default:
		}

		p, err := src.Next()
		if err == io.EOF {
			r.log.WithFields(map[string]interface{}{
				"packets": st.Packets,
				"corrupt": st.Corrupt,
				"bytes":   st.Bytes,
			}).Info("replay finished")
			return st, nil
		}
		if err != nil {
			return st, fmt.Errorf("read packet: %w", err)
		}

		st.Packets++
		st.Bytes += uint64(p.Length)
		metrics.ReplayPacketsTotal.WithLabelValues(src.Name()).Inc()
		metrics.ReplayBytesTotal.WithLabelValues(src.Name()).Add(float64(p.Length))

		if r.model.IsCorrupt(p) {
			st.Corrupt++
			metrics.DecisionsTotal.WithLabelValues(r.modelName, metrics.OutcomeCorrupt).Inc()
			if debug {
				r.log.WithFields(map[string]interface{}{
					"uid":    p.UID,
					"length": p.Length,
				}).Debug("packet flagged corrupt")
			}
		} else {
			metrics.DecisionsTotal.WithLabelValues(r.modelName, metrics.OutcomeClean).Inc()
		}
	}
}
