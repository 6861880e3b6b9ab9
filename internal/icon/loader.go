// Package icon decodes the optional window icon from disk.
package icon

import (
	"bytes"
	"errors"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"gocv.io/x/gocv"

	"hello-world/internal/logger"
	"hello-world/internal/timing"
)

var (
	errNoPath      = errors.New("no icon path configured")
	errEmptyFile   = errors.New("file is empty")
	errEmptyBitmap = errors.New("decoder produced an empty bitmap")
)

// Icon owns a decoded bitmap. The holder must Close it once the window has
// taken its own copy through Resource.
type Icon struct {
	path     string
	mat      gocv.Mat
	bitmap   image.Image
	resource fyne.Resource
	closed   bool
}

func (i *Icon) Path() string {
	return i.path
}

// Resource is the bitmap re-encoded as PNG, ready for fyne.Window.SetIcon.
func (i *Icon) Resource() fyne.Resource {
	return i.resource
}

func (i *Icon) Bitmap() image.Image {
	return i.bitmap
}

func (i *Icon) Width() int {
	return i.bitmap.Bounds().Dx()
}

func (i *Icon) Height() int {
	return i.bitmap.Bounds().Dy()
}

func (i *Icon) Closed() bool {
	return i.closed
}

// Close releases the native Mat. Calling it again is a no-op.
func (i *Icon) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	return i.mat.Close()
}

type Loader struct {
	logger        logger.Logger
	timingTracker *timing.Tracker
}

func NewLoader(log logger.Logger, tracker *timing.Tracker) *Loader {
	return &Loader{
		logger:        log,
		timingTracker: tracker,
	}
}

// Load reads and decodes path. Every failure is a *LoadError.
func (l *Loader) Load(path string) (*Icon, error) {
	ctx := l.timingTracker.StartTiming("icon_load")
	defer l.timingTracker.EndTiming(ctx)

	if path == "" {
		return nil, &LoadError{Path: path, Reason: ReasonMissing, Err: errNoPath}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		reason := ReasonUnreadable
		if errors.Is(err, fs.ErrNotExist) {
			reason = ReasonMissing
		}
		return nil, &LoadError{Path: path, Reason: reason, Err: err}
	}
	if len(data) == 0 {
		return nil, &LoadError{Path: path, Reason: ReasonUndecodable, Err: errEmptyFile}
	}

	l.logger.Debug("IconLoader", "icon data read", map[string]interface{}{
		"path":       path,
		"size_bytes": len(data),
	})

	return l.decode(path, data)
}

func (l *Loader) decode(path string, data []byte) (*Icon, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadUnchanged)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: ReasonUndecodable, Err: err}
	}
	if mat.Empty() {
		mat.Close()
		return nil, &LoadError{Path: path, Reason: ReasonUndecodable, Err: errEmptyBitmap}
	}

	mat, err = normalize(mat)
	if err != nil {
		mat.Close()
		return nil, &LoadError{Path: path, Reason: ReasonUndecodable, Err: err}
	}

	bitmap, err := mat.ToImage()
	if err != nil {
		mat.Close()
		return nil, &LoadError{Path: path, Reason: ReasonUndecodable, Err: err}
	}

	encoded, err := gocv.IMEncode(gocv.PNGFileExt, mat)
	if err != nil {
		mat.Close()
		return nil, &LoadError{Path: path, Reason: ReasonUndecodable, Err: err}
	}
	png := bytes.Clone(encoded.GetBytes())
	encoded.Close()

	icon := &Icon{
		path:     path,
		mat:      mat,
		bitmap:   bitmap,
		resource: fyne.NewStaticResource(filepath.Base(path), png),
	}

	l.logger.Info("IconLoader", "icon loaded", map[string]interface{}{
		"path":     path,
		"width":    icon.Width(),
		"height":   icon.Height(),
		"channels": mat.Channels(),
	})

	return icon, nil
}
