package shared

import (
	"sync"
)

// ForEveryStringWithBoundedGoroutines calls f for every value on at most limit
// goroutines at a time and returns once all calls have finished.
func ForEveryStringWithBoundedGoroutines(limit int, values []string, f func(i int, value string)) {
	if limit < 1 {
		limit = 1
	}
	guard := make(chan struct{}, limit)
	var wg sync.WaitGroup
	for i, value := range values {
		guard <- struct{}{} // would block if guard channel is already filled
		wg.Add(1)
		go func(i int, value string) {
			defer wg.Done()
			f(i, value)
			<-guard
		}(i, value)
	}
	wg.Wait()
}

