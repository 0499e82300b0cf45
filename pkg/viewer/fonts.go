package viewer

import (
	"fmt"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is the label and HUD text size in pixels
const DefaultFontSize = 10.0

// LoadFace returns the Go Regular face at size
func LoadFace(size float64) (text.Face, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to load label font: %w", err)
	}
	if size <= 0 {
		size = DefaultFontSize
	}
	return src.Face(size), nil
}
