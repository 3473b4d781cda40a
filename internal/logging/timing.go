package logging

import "time"

// Timer measures one operation started with Start
type Timer struct {
	name  string
	start time.Time
}

// TimeWithResult runs fn and logs how long it took at debug level together
// with its error, if any.
func TimeWithResult[T any](name string, fn func() (T, error)) (T, error) {
	t := Start(name)
	result, err := fn()
	t.log("error", err)
	return result, err
}

// Start begins a measurement. Finish it with EndWithCount.
func Start(name string) Timer {
	return Timer{name: name, start: time.Now()}
}

// EndWithCount logs the elapsed time since Start and the number of items
// the operation produced.
func EndWithCount(t Timer, count int) {
	t.log("count", count)
}

func (t Timer) log(args ...any) {
	if !IsEnabled() {
		return
	}
	elapsed := time.Since(t.start)
	attrs := append([]any{"duration", elapsed.String(), "ms", elapsed.Milliseconds()}, args...)
	Get().Debug(t.name, attrs...)
}
