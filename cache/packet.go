// Package cache wraps a Shepherd tag store into a non-coherent, timing-only
// cache component: the Go analogue of gem5's SheperdCache subclassing
// BaseCache.
package cache

// Cmd is a packet's memory command, mirroring gem5's MemCmd enum at the
// granularity this simulator core needs.
type Cmd int

const (
	ReadReq Cmd = iota
	ReadResp
	WriteReq
	WriteResp
	Writeback
	WriteClean
)

// String renders a Cmd for logging.
func (c Cmd) String() string {
	switch c {
	case ReadReq:
		return "ReadReq"
	case ReadResp:
		return "ReadResp"
	case WriteReq:
		return "WriteReq"
	case WriteResp:
		return "WriteResp"
	case Writeback:
		return "Writeback"
	case WriteClean:
		return "WriteClean"
	default:
		return "UnknownCmd"
	}
}

// Packet is the capability set a Comp needs from a memory request/response,
// matching gem5's Packet interface at the level this core actually touches.
type Packet interface {
	Address() uint64
	IsSecure() bool
	IsRead() bool
	IsWrite() bool
	IsWriteback() bool
	Command() Cmd
	CacheResponding() bool
	NeedsResponse() bool
	BlockAddr(blockSize uint64) uint64
	Offset(blockSize uint64) uint64
	HeaderDelay() uint64
	PayloadDelay() uint64
	MakeTimingResponse()
	CopyError(from Packet)
	IsError() bool
	RequestorID() uint64
}
