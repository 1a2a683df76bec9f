package concurrency

import (
	"sync"
)

// LockManager hands out named locks. The settlement engine keys them by user
// ID so two concurrent bets from the same user serialize their
// read-modify-write of the wager account, while different users settle fully
// in parallel.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
