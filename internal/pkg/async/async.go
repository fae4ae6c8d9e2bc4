package async

import (
	"strings"
	"sync"
)

type Errors struct {
	E []error
}

var _ error = (*Errors)(nil)

func (e Errors) Wrapped() error {
	if len(e.E) == 0 {
		return nil
	}
	return e
}

func (e Errors) Error() string {
	var sb strings.Builder
	l := len(e.E)
	for i, err := range e.E {
		sb.WriteString(err.Error())
		if i < l-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// ForEach runs f on every element of src with at most concurrencyLimit calls
// in flight. Unlike errgroup it never stops early: every element is visited
// and all errors are returned together.
func ForEach[T any](src []T, concurrencyLimit int, f func(T) error) error {
	if len(src) == 0 {
		return nil
	}

	if concurrencyLimit <= 0 {
		concurrencyLimit = len(src)
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs Errors
	)

	limiter := make(chan struct{}, concurrencyLimit)

	wg.Add(len(src))
	for _, element := range src {
		limiter <- struct{}{}
		go func(el T) {
			defer func() {
				<-limiter
				wg.Done()
			}()

			if err := f(el); err != nil {
				mu.Lock()
				errs.E = append(errs.E, err)
				mu.Unlock()
			}
		}(element)
	}

	wg.Wait()

	return errs.Wrapped()
}
