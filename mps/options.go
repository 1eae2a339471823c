package mps

// DefaultCycleBudget is the number of consecutive cyclic deviation
// candidates the engine tolerates before escalating to the yen fallback.
const DefaultCycleBudget = 500

// unlimitedCycleBudget disables the escalation entirely.
const unlimitedCycleBudget = -1

// Options configures an Engine.
type Options struct {
	cycleBudget int
}

// Option configures an Engine at construction time.
type Option func(*Options)

// defaultOptions returns the engine's default configuration: a cycle budget
// of DefaultCycleBudget.
func defaultOptions() Options {
	return Options{cycleBudget: DefaultCycleBudget}
}

// WithCycleBudget sets the number of consecutive cyclic candidates the
// engine tolerates before falling back to yen.ShortestSimplePaths for the
// remainder of a ranking. A negative m is equivalent to
// WithUnlimitedCycleBudget.
func WithCycleBudget(m int) Option {
	return func(o *Options) { o.cycleBudget = m }
}

// WithUnlimitedCycleBudget disables the yen fallback escalation: the engine
// keeps discarding cyclic candidates indefinitely instead of switching
// strategies.
func WithUnlimitedCycleBudget() Option {
	return func(o *Options) { o.cycleBudget = unlimitedCycleBudget }
}
