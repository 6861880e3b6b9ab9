package icon

import (
	"fmt"

	"gocv.io/x/gocv"
)

// normalize brings a decoded Mat into an 8-bit layout with 1, 3 or 4 channels,
// the only ones Mat.ToImage accepts. 16-bit samples are scaled down and
// gray+alpha is expanded to BGRA. Whenever a new Mat replaces src, src is closed.
// On error the returned Mat is still owned by the caller.
func normalize(src gocv.Mat) (gocv.Mat, error) {
	mat := src

	switch mat.Type() {
	case gocv.MatTypeCV8UC1, gocv.MatTypeCV8UC2, gocv.MatTypeCV8UC3, gocv.MatTypeCV8UC4:
	case gocv.MatTypeCV16UC1, gocv.MatTypeCV16UC2, gocv.MatTypeCV16UC3, gocv.MatTypeCV16UC4:
		dst := gocv.NewMat()
		mat.ConvertToWithParams(&dst, gocv.MatTypeCV8U, 1.0/257, 0)
		mat.Close()
		mat = dst
	default:
		return mat, fmt.Errorf("unsupported pixel format %v", mat.Type())
	}

	if mat.Channels() == 2 {
		planes := gocv.Split(mat)
		dst := gocv.NewMat()
		gocv.Merge([]gocv.Mat{planes[0], planes[0], planes[0], planes[1]}, &dst)
		for _, p := range planes {
			p.Close()
		}
		mat.Close()
		mat = dst
	}

	return mat, nil
}
