package cpu

import (
	"maps"
	"slices"
)

// MEMORY_DENSE_LIMIT is the first address held in sparse storage.
const MEMORY_DENSE_LIMIT = 1 << 20

// Memory is the machine's zero-default address space. Addresses below
// MEMORY_DENSE_LIMIT live in a slice that grows on write; addresses at or
// above it live in a map.
type Memory struct {
	Data   []int64
	Sparse map[int64]int64

	high int64 // Highest address touched.
}

// NewMemory creates a memory holding a copy of the program image.
func NewMemory(program []int64) (mem Memory) {
	mem = Memory{
		Data: slices.Clone(program),
		high: int64(len(program)) - 1,
	}

	return
}

func (mem *Memory) touch(addr int64) {
	if addr > mem.high {
		mem.high = addr
	}
}

// Read the value at an address. Unwritten addresses read as zero.
func (mem *Memory) Read(addr int64) (value int64, err error) {
	if addr < 0 {
		err = ErrAddressInvalid
		return
	}

	mem.touch(addr)

	if addr < int64(len(mem.Data)) {
		value = mem.Data[addr]
	} else {
		value = mem.Sparse[addr]
	}

	return
}

// Write a value to an address, growing memory as needed.
func (mem *Memory) Write(addr int64, value int64) (err error) {
	if addr < 0 {
		err = ErrAddressInvalid
		return
	}

	mem.touch(addr)

	if addr < int64(len(mem.Data)) {
		mem.Data[addr] = value
		return
	}

	if addr >= MEMORY_DENSE_LIMIT {
		if mem.Sparse == nil {
			mem.Sparse = make(map[int64]int64)
		}
		mem.Sparse[addr] = value
		return
	}

	mem.Data = append(mem.Data, make([]int64, addr+1-int64(len(mem.Data)))...)
	mem.Data[addr] = value

	return
}

// High returns the highest address read or written, or -1 if none.
func (mem *Memory) High() int64 {
	return mem.high
}

// Dense returns the dense region, zero filled up to the highest touched
// address below MEMORY_DENSE_LIMIT.
func (mem *Memory) Dense() (values []int64) {
	end := min(mem.high+1, MEMORY_DENSE_LIMIT)
	values = make([]int64, max(end, 0))
	copy(values, mem.Data)
	return
}

// Clone returns an independent copy of memory.
func (mem *Memory) Clone() Memory {
	return Memory{
		Data:   slices.Clone(mem.Data),
		Sparse: maps.Clone(mem.Sparse),
		high:   mem.high,
	}
}
