package dockui

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource

	faceCache     = map[float64]*text.GoTextFace{}
	boldFaceCache = map[float64]*text.GoTextFace{}
)

// loadFonts parses the embedded Go fonts once.
func loadFonts() error {
	if regularSource != nil {
		return nil
	}
	reg, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return err
	}
	regularSource, boldSource = reg, bold
	return nil
}

func textFace(size float64) *text.GoTextFace {
	if f, ok := faceCache[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: regularSource, Size: size}
	faceCache[size] = f
	return f
}

func boldFace(size float64) *text.GoTextFace {
	if boldSource == nil {
		return textFace(size)
	}
	if f, ok := boldFaceCache[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: boldSource, Size: size}
	boldFaceCache[size] = f
	return f
}
