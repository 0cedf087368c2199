package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// View holds perspective settings and derives view/projection matrices from a Pose.
// It is the handoff from a controlled pose to a host renderer; it does not render.
// Matrices follow the OpenGL clip-space convention with the camera looking down -Z in
// view space, so the pose's local +Z forward and +X right map to view -Z and +X.
type View interface {
	// Fov returns the vertical field of view in radians.
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	Aspect() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// ViewMatrix returns the world-to-view matrix computed by the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the perspective projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (column-major)
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix (column-major)
	ViewProjectionMatrix() mgl32.Mat4

	// Forward returns the world-space viewing direction encoded in the view matrix.
	//
	// Returns:
	//   - mgl32.Vec3: unit vector the camera looks along
	Forward() mgl32.Vec3

	// Frustum returns the world-space view volume for visibility culling.
	Frustum() Frustum

	// Update reads the pose and recomputes all matrices.
	// Call once per step after the controller has written the pose.
	Update()

	// SetFov sets the vertical field of view in radians.
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height). Non-positive values are ignored.
	SetAspect(aspect float32)

	// SetClipPlanes sets the near and far clipping plane distances.
	//
	// Parameters:
	//   - near: near plane distance, > 0
	//   - far: far plane distance, > near
	SetClipPlanes(near, far float32)
}

type viewImpl struct {
	mu *sync.Mutex

	pose Pose

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4
	frustum              Frustum
}

var _ View = &viewImpl{}

// flipZ turns the pose's +Z forward into the view-space -Z forward.
var flipZ = mgl32.Scale3D(1, 1, -1)

// NewView creates a View of the given pose with default perspective settings
// (45 degree fov, aspect 1, near 0.1, far 1000) and computes its matrices.
//
// Parameters:
//   - pose: the pose the camera is attached to
//   - options: functional options to configure the view
//
// Returns:
//   - View: the newly created view
func NewView(pose Pose, options ...ViewOption) View {
	v := &viewImpl{
		mu:     &sync.Mutex{},
		pose:   pose,
		fov:    mgl32.DegToRad(45),
		aspect: 1,
		near:   0.1,
		far:    1000,
	}
	for _, opt := range options {
		opt(v)
	}
	v.Update()
	return v
}

func (v *viewImpl) Fov() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fov
}

func (v *viewImpl) Aspect() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.aspect
}

func (v *viewImpl) Near() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.near
}

func (v *viewImpl) Far() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.far
}

func (v *viewImpl) ViewMatrix() mgl32.Mat4 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.viewMatrix
}

func (v *viewImpl) ProjectionMatrix() mgl32.Mat4 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.projectionMatrix
}

func (v *viewImpl) ViewProjectionMatrix() mgl32.Mat4 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.viewProjectionMatrix
}

func (v *viewImpl) Forward() mgl32.Vec3 {
	v.mu.Lock()
	defer v.mu.Unlock()
	// the third row of the view rotation is the negated forward axis
	m := v.viewMatrix
	return mgl32.Vec3{-m.At(2, 0), -m.At(2, 1), -m.At(2, 2)}
}

func (v *viewImpl) Frustum() Frustum {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.frustum
}

func (v *viewImpl) Update() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.updateMatrices()
}

func (v *viewImpl) SetFov(fov float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.fov = fov
	v.updateMatrices()
}

func (v *viewImpl) SetAspect(aspect float32) {
	if aspect <= 0 {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.aspect = aspect
	v.updateMatrices()
}

func (v *viewImpl) SetClipPlanes(near, far float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.near = near
	v.far = far
	v.updateMatrices()
}

// updateMatrices recalculates the matrices and the frustum.
// Caller must hold the mutex.
func (v *viewImpl) updateMatrices() {
	var s CameraState
	if v.pose != nil {
		s.SetFromPose(v.pose)
	}

	// world-to-view is the inverse of translate * rotate; a rotation's inverse is its transpose
	rotInv := s.Orientation().Mat4().Transpose()
	eye := s.Position()
	v.viewMatrix = flipZ.Mul4(rotInv).Mul4(mgl32.Translate3D(-eye[0], -eye[1], -eye[2]))

	v.projectionMatrix = mgl32.Perspective(v.fov, v.aspect, v.near, v.far)
	v.viewProjectionMatrix = v.projectionMatrix.Mul4(v.viewMatrix)
	v.frustum = FrustumFromMatrix(v.viewProjectionMatrix)
}
