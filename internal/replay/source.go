// Package replay drives packets from a source through an error model and
// accounts for the decisions, standing in for the channel/device model that
// would own the engine inside a full simulator.
package replay

import "firestige.xyz/erratic/internal/core"

// Source yields packets one at a time. Next returns io.EOF when the source
// is exhausted.
type Source interface {
	Next() (*core.Packet, error)
	Close() error
	// Name labels the source in logs and metrics.
	Name() string
}
