package store

// DefaultDegree is the B-tree degree used when WithDegree is not given.
// Each node holds between DefaultDegree-1 and 2*DefaultDegree-1 points.
const DefaultDegree = 32

const panicDegreeInvalid = "store: WithDegree: degree must be >= 2"

// Option configures a Store at construction time.
type Option func(*options)

type options struct {
	degree int
}

// WithDegree sets the B-tree degree. Panics if degree < 2.
func WithDegree(degree int) Option {
	if degree < 2 {
		panic(panicDegreeInvalid)
	}

	return func(o *options) { o.degree = degree }
}

func gatherOptions(opts ...Option) options {
	o := options{degree: DefaultDegree}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
