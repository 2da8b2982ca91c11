package replay

import (
	"fmt"
	"net/netip"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"

	"firestige.xyz/erratic/internal/core"
)

// PcapSource replays packets offline from a pcap file. UIDs are assigned
// sequentially in capture order; capture lengths become packet lengths.
type PcapSource struct {
	handle *pcap.Handle
	src    *gopacket.PacketSource
	uid    uint64
}

// OpenPcap opens a capture file for offline replay.
func OpenPcap(path string) (*PcapSource, error) {
	handle, err := pcap.OpenOffline(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrPcapOpen, path, err)
	}
	return &PcapSource{
		handle: handle,
		src:    gopacket.NewPacketSource(handle, handle.LinkType()),
	}, nil
}

// Next returns the next captured packet, or io.EOF at end of file.
func (s *PcapSource) Next() (*core.Packet, error) {
	pkt, err := s.src.NextPacket()
	if err != nil {
		return nil, err
	}
	ci := pkt.Metadata().CaptureInfo

	p := &core.Packet{
		UID:       s.uid,
		Length:    uint32(ci.CaptureLength),
		Timestamp: ci.Timestamp,
	}
	if ip, ok := pkt.NetworkLayer().(*layers.IPv4); ok {
		p.SrcIP, _ = netip.AddrFromSlice(ip.SrcIP.To4())
		p.DstIP, _ = netip.AddrFromSlice(ip.DstIP.To4())
	}
	s.uid++
	return p, nil
}

func (s *PcapSource) Close() error {
	s.handle.Close()
	return nil
}

func (s *PcapSource) Name() string { return "pcap" }
