package cache

// BasicPacket is a minimal, standalone Packet implementation for offline
// trace replay, where there is no surrounding bus/port infrastructure to
// build a request from.
type BasicPacket struct {
	Addr        uint64
	Secure      bool
	Cmd         Cmd
	Responding  bool
	NeedsResp   bool
	Header      uint64
	Payload     uint64
	Requestor   uint64
	responseSet bool
	errored     bool
}

// NewReadPacket builds a read request for addr from requestor.
func NewReadPacket(addr uint64, requestor uint64) *BasicPacket {
	return &BasicPacket{Addr: addr, Cmd: ReadReq, NeedsResp: true, Requestor: requestor}
}

// NewWritePacket builds a write request for addr from requestor.
func NewWritePacket(addr uint64, requestor uint64) *BasicPacket {
	return &BasicPacket{Addr: addr, Cmd: WriteReq, NeedsResp: true, Requestor: requestor}
}

// NewWritebackPacket builds a writeback carrying addr's dirty data down from
// a coherent cache above, the same command gem5's writebackBlk() issues.
func NewWritebackPacket(addr uint64, requestor uint64) *BasicPacket {
	return &BasicPacket{Addr: addr, Cmd: Writeback, Requestor: requestor}
}

// NewWriteCleanPacket builds a write-clean carrying addr's data down from a
// coherent cache above without relinquishing the line, gem5's MemCmd::WriteClean.
func NewWriteCleanPacket(addr uint64, requestor uint64) *BasicPacket {
	return &BasicPacket{Addr: addr, Cmd: WriteClean, Requestor: requestor}
}

func (p *BasicPacket) Address() uint64 { return p.Addr }
func (p *BasicPacket) IsSecure() bool  { return p.Secure }
func (p *BasicPacket) IsRead() bool    { return p.Cmd == ReadReq || p.Cmd == ReadResp }

// IsWrite reports whether the packet carries write data downstream.
// Writeback and WriteClean are write-classified commands in gem5's MemCmd
// table, not a third category: both carry dirty data into this cache.
func (p *BasicPacket) IsWrite() bool {
	return p.Cmd == WriteReq || p.Cmd == WriteResp || p.Cmd == Writeback || p.Cmd == WriteClean
}
func (p *BasicPacket) IsWriteback() bool     { return p.Cmd == Writeback }
func (p *BasicPacket) Command() Cmd          { return p.Cmd }
func (p *BasicPacket) CacheResponding() bool { return p.Responding }
func (p *BasicPacket) NeedsResponse() bool   { return p.NeedsResp }
func (p *BasicPacket) HeaderDelay() uint64   { return p.Header }
func (p *BasicPacket) PayloadDelay() uint64  { return p.Payload }
func (p *BasicPacket) IsError() bool         { return p.errored }
func (p *BasicPacket) RequestorID() uint64   { return p.Requestor }

// BlockAddr rounds addr down to the block boundary.
func (p *BasicPacket) BlockAddr(blockSize uint64) uint64 {
	return p.Addr - p.Addr%blockSize
}

// Offset returns addr's byte offset within its block.
func (p *BasicPacket) Offset(blockSize uint64) uint64 {
	return p.Addr % blockSize
}

// MakeTimingResponse flips the request into its matching response command.
func (p *BasicPacket) MakeTimingResponse() {
	switch p.Cmd {
	case ReadReq:
		p.Cmd = ReadResp
	case WriteReq:
		p.Cmd = WriteResp
	}

	p.responseSet = true
}

// CopyError copies the error flag from another packet, mirroring gem5's
// Packet::copyError used when propagating an error response upstream.
func (p *BasicPacket) CopyError(from Packet) {
	p.errored = from.IsError()
}
