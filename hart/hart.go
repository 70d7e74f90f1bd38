// Package hart maps the native hart ids reported by the hardware to the
// contiguous zero-based cpu numbering the kernel's scheduler and per-cpu
// state expect.
//
// The SG2002 numbers its kernel-capable harts 1 to 4 and reserves hart 0,
// but nothing here assumes that shape: which harts are kernel-capable is a
// predicate supplied at construction.
package hart

import (
	"sort"
	"sync/atomic"

	"github.com/pengzechen/axplat-riscv64-sg2002/debug"
)

// Mapper assigns logical cpu numbers to native hart ids.
//
// The assignment rule is fixed: the capable ids sorted ascending receive
// logical ids 0..n-1 in order. No hashing, no arrival order, so the mapping
// is stable across boots of the same hardware.
type Mapper struct {
	phys       []uint       // indexed by logical id, sorted ascending
	logical    map[uint]int // inverse of phys
	registered []atomic.Bool
}

// NewMapper builds the mapper for the given native id set. Ids rejected by
// the capable predicate never receive a logical id.
func NewMapper(ids []uint, capable func(uint) bool) *Mapper {
	m := &Mapper{logical: make(map[uint]int)}
	for _, id := range ids {
		if capable(id) {
			m.phys = append(m.phys, id)
		}
	}
	sort.Slice(m.phys, func(i, j int) bool { return m.phys[i] < m.phys[j] })
	for cpu, id := range m.phys {
		m.logical[id] = cpu
	}
	m.registered = make([]atomic.Bool, len(m.phys))
	return m
}

// AssignLogicalID returns the logical cpu number for a native hart id and
// records the hart as booted. ok is false iff the hart is not kernel-capable,
// such a hart must park itself and never touch shared kernel state.
//
// Calling it again with the same id is idempotent and returns the previously
// assigned number. Safe to call from multiple harts racing through early
// boot.
func (m *Mapper) AssignLogicalID(native uint) (cpu int, ok bool) {
	cpu, ok = m.logical[native]
	if !ok {
		return 0, false
	}
	m.registered[cpu].Store(true)
	return cpu, true
}

// PhysicalToLogical translates without registering the hart.
func (m *Mapper) PhysicalToLogical(native uint) (cpu int, ok bool) {
	cpu, ok = m.logical[native]
	return
}

// LogicalToPhysical returns the native hart id behind a logical cpu number.
func (m *Mapper) LogicalToPhysical(cpu int) uint {
	debug.Assert(cpu >= 0 && cpu < len(m.phys), "logical cpu out of range")
	return m.phys[cpu]
}

// Count returns the number of kernel-capable harts.
func (m *Mapper) Count() int { return len(m.phys) }

// Registered reports whether the hart behind a logical cpu number has booted
// through [Mapper.AssignLogicalID].
func (m *Mapper) Registered(cpu int) bool {
	return m.registered[cpu].Load()
}

var active atomic.Pointer[Mapper]

// Set installs the process-wide topology table. It must be called exactly
// once, by the primary hart, before any per-cpu kernel state is created.
func Set(m *Mapper) {
	if !active.CompareAndSwap(nil, m) {
		panic("hart: topology table already set")
	}
}

// Active returns the process-wide topology table, or nil before [Set].
func Active() *Mapper { return active.Load() }
