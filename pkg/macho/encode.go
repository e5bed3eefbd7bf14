package macho

// Encode returns the on-disk form of h. The forward magic is always written;
// the byte order shows in how every field, the magic included, is serialized.
func (h *Header) Encode() ([]byte, error) {
	b := make([]byte, h.Size())
	if _, err := h.Put(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Put writes h into b and returns the number of bytes written.
func (h *Header) Put(b []byte) (int, error) {
	if err := h.checkReserved(); err != nil {
		return 0, err
	}
	n := int(h.Size())
	if len(b) < n {
		return 0, truncated(uint64(n), len(b))
	}

	o := h.ByteOrder.Binary()
	o.PutUint32(b[0:], h.Magic())
	o.PutUint32(b[4:], uint32(h.CPU))
	o.PutUint32(b[8:], uint32(h.SubCPU))
	o.PutUint32(b[12:], uint32(h.Type))
	o.PutUint32(b[16:], h.NCommands)
	o.PutUint32(b[20:], h.SizeCommands)
	o.PutUint32(b[24:], uint32(h.Flags))
	if h.Is64 {
		o.PutUint32(b[28:], *h.Reserved)
	}
	return n, nil
}
