package modal

import "sync"

// ScrollLock suspends page scrolling while held. Every Acquire returns its
// own release func; releasing twice is a no-op.
type ScrollLock struct {
	mu      sync.Mutex
	holders int
}

// Acquire takes the lock and returns the func that gives it back.
func (l *ScrollLock) Acquire() (release func()) {
	l.mu.Lock()
	l.holders++
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.holders--
			l.mu.Unlock()
		})
	}
}

// Held reports whether scrolling is currently suspended.
func (l *ScrollLock) Held() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holders > 0
}
