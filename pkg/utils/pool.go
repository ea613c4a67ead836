package utils

import "sync"

// ForEachBounded executa fn para cada índice em [0, n) com no máximo limit
// execuções simultâneas e só retorna quando todas terminam.
func ForEachBounded(n, limit int, fn func(i int)) {
	if limit <= 0 {
		limit = 1
	}

	semaphore := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(i int) {
			defer func() {
				<-semaphore
				wg.Done()
			}()
			fn(i)
		}(i)
	}

	wg.Wait()
}
