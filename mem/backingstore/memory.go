package backingstore

// MemStorage keeps the store in memory. The store is managed in units and
// units that are never written are not allocated; they read as zero.
type MemStorage struct {
	unitSize uint64
	capacity uint64
	data     map[uint64][]byte
}

// NewMemStorage creates an in-memory store with the given capacity in bytes.
func NewMemStorage(capacity uint64) *MemStorage {
	return &MemStorage{
		unitSize: 4096,
		capacity: capacity,
		data:     make(map[uint64][]byte),
	}
}

// NewMemStorageFromBytes creates an in-memory store holding a copy of data.
func NewMemStorageFromBytes(data []byte) *MemStorage {
	s := NewMemStorage(uint64(len(data)))

	err := s.Write(0, data)
	if err != nil {
		panic(err)
	}

	return s
}

// Size returns the capacity of the store.
func (s *MemStorage) Size() uint64 {
	return s.capacity
}

func (s *MemStorage) parseAddress(addr uint64) (baseAddr, inUnitAddr uint64) {
	inUnitAddr = addr % s.unitSize
	baseAddr = addr - inUnitAddr

	return baseAddr, inUnitAddr
}

// ValueAt returns the byte at addr as a signed value.
func (s *MemStorage) ValueAt(addr uint64) (int8, error) {
	if addr >= s.capacity {
		return 0, outOfRange(addr, s.capacity)
	}

	baseAddr, inUnitAddr := s.parseAddress(addr)

	unit, ok := s.data[baseAddr]
	if !ok {
		return 0, nil
	}

	return int8(unit[inUnitAddr]), nil
}

// Write copies data into the store starting at addr.
func (s *MemStorage) Write(addr uint64, data []byte) error {
	end := addr + uint64(len(data))
	if end > s.capacity {
		return outOfRange(end-1, s.capacity)
	}

	currAddr := addr
	dataOffset := uint64(0)

	for dataOffset < uint64(len(data)) {
		baseAddr, inUnitAddr := s.parseAddress(currAddr)

		unit, ok := s.data[baseAddr]
		if !ok {
			unit = make([]byte, s.unitSize)
			s.data[baseAddr] = unit
		}

		n := copy(unit[inUnitAddr:], data[dataOffset:])
		dataOffset += uint64(n)
		currAddr += uint64(n)
	}

	return nil
}
