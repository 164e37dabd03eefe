package texture

// RegistryBuilderOption is a function that configures a Registry instance during construction.
type RegistryBuilderOption func(*registryImpl)

// WithCapacity is an option builder that lowers the maximum number of registered textures.
// Values outside 1..MaxTextures are ignored.
//
// Parameters:
//   - capacity: the maximum entry count
//
// Returns:
//   - RegistryBuilderOption: a function that applies the capacity option to a registryImpl
func WithCapacity(capacity int) RegistryBuilderOption {
	return func(r *registryImpl) {
		if capacity > 0 && capacity <= MaxTextures {
			r.capacity = capacity
		}
	}
}

// WithDecodeWorkers is an option builder that sets how many images LoadAll decodes in parallel.
//
// Parameters:
//   - workers: the decode worker count (minimum 1)
//
// Returns:
//   - RegistryBuilderOption: a function that applies the worker count option to a registryImpl
func WithDecodeWorkers(workers int) RegistryBuilderOption {
	return func(r *registryImpl) {
		r.decodeWorkers = max(workers, 1)
	}
}

// WithFlipVertically is an option builder that controls the vertical flip applied on decode.
// Enabled by default so image row 0 lands at texture coordinate v = 0.
//
// Parameters:
//   - flip: false to upload rows in file order
//
// Returns:
//   - RegistryBuilderOption: a function that applies the flip option to a registryImpl
func WithFlipVertically(flip bool) RegistryBuilderOption {
	return func(r *registryImpl) {
		r.flip = flip
	}
}
