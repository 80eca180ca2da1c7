package chart

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce sync.Once
	fontSrc  *text.FontSource
	fontErr  error
)

// fontFace returns a face of the bundled Go Regular font at the given
// pixel size. The parsed font is shared process-wide; faces are cheap.
func fontFace(px float64) (text.Face, error) {
	fontOnce.Do(func() {
		fontSrc, fontErr = text.NewFontSource(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("chart: load font: %w", fontErr)
	}
	return fontSrc.Face(px), nil
}
