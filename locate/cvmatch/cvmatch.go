// Package cvmatch implements locate.Matcher with OpenCV (gocv) using
// normalized squared difference template matching.
package cvmatch

import (
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"

	"github.com/rpdg/winauto/locate"
)

// ToMat converts a captured image into the 3-channel BGR matrix OpenCV
// matches against. The caller must Close the result.
func ToMat(img image.Image) (gocv.Mat, error) {
	return gocv.ImageToMatRGB(img)
}

// Matcher loads templates once per path and matches them with TM_SQDIFF_NORMED.
// It is safe for concurrent use.
type Matcher struct {
	mu        sync.Mutex
	templates map[string]gocv.Mat
}

// New creates a Matcher. Close releases the cached templates.
func New() *Matcher {
	return &Matcher{templates: make(map[string]gocv.Mat)}
}

// template returns the cached template for path. m.mu must be held.
func (m *Matcher) template(path string) (gocv.Mat, error) {
	if t, ok := m.templates[path]; ok {
		return t, nil
	}
	t := gocv.IMRead(path, gocv.IMReadColor)
	if t.Empty() {
		t.Close()
		return gocv.Mat{}, fmt.Errorf("%w: %s", locate.ErrTemplateLoad, path)
	}
	m.templates[path] = t
	return t, nil
}

// Match scores every placement of the template at path over screen. Matches
// run one at a time so Close cannot free a template in use.
func (m *Matcher) Match(screen image.Image, path string) (locate.Grid, image.Point, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tmpl, err := m.template(path)
	if err != nil {
		return locate.Grid{}, image.Point{}, err
	}
	size := image.Pt(tmpl.Cols(), tmpl.Rows())

	src, err := ToMat(screen)
	if err != nil {
		return locate.Grid{}, size, fmt.Errorf("convert screen: %w", err)
	}
	defer src.Close()

	if size.X > src.Cols() || size.Y > src.Rows() {
		return locate.Grid{}, size, fmt.Errorf("%w: %v > %dx%d", locate.ErrTemplateTooLarge, size, src.Cols(), src.Rows())
	}

	result := gocv.NewMat()
	defer result.Close()
	mask := gocv.NewMat()
	defer mask.Close()

	if err := gocv.MatchTemplate(src, tmpl, &result, gocv.TmSqdiffNormed, mask); err != nil {
		return locate.Grid{}, size, fmt.Errorf("match template: %w", err)
	}

	data, err := result.DataPtrFloat32()
	if err != nil {
		return locate.Grid{}, size, fmt.Errorf("read scores: %w", err)
	}
	g := locate.Grid{
		Cols:   result.Cols(),
		Rows:   result.Rows(),
		Values: make([]float32, len(data)),
	}
	copy(g.Values, data)
	return g, size, nil
}

// Close releases the cached templates.
func (m *Matcher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for path, t := range m.templates {
		t.Close()
		delete(m.templates, path)
	}
	return nil
}
