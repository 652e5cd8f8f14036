package service

import (
	"slices"
	"sync"
)

// accountLocker hands out one mutex per account id. Callers that need
// several accounts get them in ascending id order, so two transfers over the
// same pair can never deadlock.
type accountLocker struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newAccountLocker() *accountLocker {
	return &accountLocker{locks: make(map[int64]*sync.Mutex)}
}

func (l *accountLocker) lock(ids ...int64) (unlock func()) {
	ordered := slices.Clone(ids)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)

	held := make([]*sync.Mutex, 0, len(ordered))
	for _, id := range ordered {
		m := l.get(id)
		m.Lock()
		held = append(held, m)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

func (l *accountLocker) get(id int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}
