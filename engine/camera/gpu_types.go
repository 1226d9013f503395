package camera

import (
	_ "embed"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/go-gl/mathgl/mgl32"
)

// GPUCameraUniformSource declares the WGSL CameraUniform struct. Shaders that read the
// camera are compiled with it prepended.
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform mirrors CameraUniform: a column-major view-projection matrix followed
// by the eye position, padded to 80 bytes.
type GPUCameraUniform struct {
	ViewProj mgl32.Mat4
	Eye      mgl32.Vec3
	_        float32
}

// GPUCameraUniformSize is the size of the camera uniform buffer in bytes.
const GPUCameraUniformSize = uint64(unsafe.Sizeof(GPUCameraUniform{}))

// Bytes returns the uniform laid out for upload.
func (u GPUCameraUniform) Bytes() []byte {
	return common.SliceToBytes([]GPUCameraUniform{u})
}
