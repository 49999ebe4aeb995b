package utils

import "sync"

var mu sync.Mutex

// ExecuteWithMutex serializes fn against every other caller. Used to guard
// shared map writes from worker-pool goroutines.
func ExecuteWithMutex(fn func()) {
	mu.Lock()
	defer mu.Unlock()
	fn()
}
