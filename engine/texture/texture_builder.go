package texture

// RegistryBuilderOption is a function that configures a registry instance during construction.
type RegistryBuilderOption func(*registry)

// WithPreloadWorkers is an option builder that sets the number of concurrent
// decode workers used by Preload. Uploads always happen sequentially on the
// calling goroutine regardless of this value.
//
// Parameters:
//   - workers: the worker count (values < 1 are ignored)
//
// Returns:
//   - RegistryBuilderOption: a function that applies the worker count option to a registry
func WithPreloadWorkers(workers int) RegistryBuilderOption {
	return func(r *registry) {
		if workers >= 1 {
			r.preloadWorkers = workers
		}
	}
}
