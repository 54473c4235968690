package internal

import (
	"fmt"
	"io"
	"sort"
)

// Sentinel values kept in the store in place of real values
const (
	uninitialized = -999
	unbound       = -1
	noValue       = -111
)

// Store is the address to integer memory of one run. Addresses are handed
// out upward from 0 and never reused. Only written slots take space, so a
// write through a wild pointer costs one entry.
//
// Every operation takes a store and returns the store it produced; callers
// always continue with the returned store and never reuse the one they passed.
type Store struct {
	cells map[int]int
	// top is the first address above every written slot
	top int
	// limit is the first address that can not be written, 0 means unlimited
	limit int
}

func newStore(limit int) *Store {
	return &Store{
		cells: make(map[int]int),
		limit: limit,
	}
}

// Top is the high-water mark: the first address above every written slot
func (s *Store) Top() int {
	return s.top
}

// Get returns the value at addr
func (s *Store) Get(addr int) (int, error) {
	value, ok := s.cells[addr]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrAddressFault, addr)
	}
	return value, nil
}

func (s *Store) set(addr, value int) (*Store, error) {
	if addr < 0 {
		return s, fmt.Errorf("%w: %d", ErrAddressFault, addr)
	}
	if s.limit > 0 && addr >= s.limit {
		return s, fmt.Errorf("%w: address %d, limit %d", ErrStoreExhausted, addr, s.limit)
	}
	s.cells[addr] = value
	if addr >= s.top {
		s.top = addr + 1
	}
	return s, nil
}

// initRange reserves n slots from loc, each holding the uninitialized sentinel
func (s *Store) initRange(loc, n int) (*Store, error) {
	var err error
	for addr := loc; addr < loc+n; addr++ {
		if s, err = s.set(addr, uninitialized); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Dump writes every written slot as "addr: value"
func (s *Store) Dump(w io.Writer) error {
	addrs := make([]int, 0, len(s.cells))
	for addr := range s.cells {
		addrs = append(addrs, addr)
	}
	sort.Ints(addrs)
	for _, addr := range addrs {
		if _, err := fmt.Fprintf(w, "%d: %d\n", addr, s.cells[addr]); err != nil {
			return err
		}
	}
	return nil
}
