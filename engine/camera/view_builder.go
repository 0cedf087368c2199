package camera

// ViewOption is a functional option for configuring a View.
type ViewOption func(*viewImpl)

// WithFov sets the vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - ViewOption: option function to apply
func WithFov(fov float32) ViewOption {
	return func(v *viewImpl) {
		v.fov = fov
	}
}

// WithAspect sets the aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio
//
// Returns:
//   - ViewOption: option function to apply
func WithAspect(aspect float32) ViewOption {
	return func(v *viewImpl) {
		if aspect > 0 {
			v.aspect = aspect
		}
	}
}

// WithClipPlanes sets the near and far clipping plane distances.
func WithClipPlanes(near, far float32) ViewOption {
	return func(v *viewImpl) {
		v.near = near
		v.far = far
	}
}
