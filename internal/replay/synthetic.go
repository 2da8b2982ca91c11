package replay

import (
	"io"
	"math/rand"
	"time"

	"firestige.xyz/erratic/internal/core"
)

// SyntheticSource fabricates packets with monotonically increasing UIDs and
// sizes drawn uniformly from [minSize, maxSize]. Seeded, so a run is
// reproducible end to end when the model's source is seeded too.
type SyntheticSource struct {
	count   int
	emitted int
	minSize int
	maxSize int
	rng     *rand.Rand
	uid     uint64
}

// NewSyntheticSource returns a generator for count packets.
func NewSyntheticSource(count, minSize, maxSize int, seed int64) *SyntheticSource {
	if minSize <= 0 {
		minSize = 64
	}
	if maxSize < minSize {
		maxSize = minSize
	}
	return &SyntheticSource{
		count:   count,
		minSize: minSize,
		maxSize: maxSize,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Next returns the next generated packet, or io.EOF once count packets have
// been emitted.
func (s *SyntheticSource) Next() (*core.Packet, error) {
	if s.emitted >= s.count {
		return nil, io.EOF
	}
	size := s.minSize
	if s.maxSize > s.minSize {
		size += s.rng.Intn(s.maxSize - s.minSize + 1)
	}
	p := &core.Packet{
		UID:       s.uid,
		Length:    uint32(size),
		Timestamp: time.Now(),
	}
	s.uid++
	s.emitted++
	return p, nil
}

func (s *SyntheticSource) Close() error { return nil }

func (s *SyntheticSource) Name() string { return "synthetic" }
