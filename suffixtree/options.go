package suffixtree

// Option configures a Build call.
type Option func(*buildOptions)

type buildOptions struct {
	maxNodes int
}

// WithMaxNodes caps the node arena at limit entries. Build fails with
// ErrTooManyNodes instead of growing past the cap, bounding memory on
// adversarial or unexpectedly large inputs. A limit of 0 (the default)
// means unbounded; construction is then limited only by available memory,
// never exceeding NodeCountMax for the input length.
func WithMaxNodes(limit int) Option {
	return func(o *buildOptions) {
		o.maxNodes = limit
	}
}
