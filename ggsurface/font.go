package ggsurface

import (
	"fmt"
	"sync"

	"github.com/ayn2op/grapheditor"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// faceKey identifies a cached face.
type faceKey struct {
	file string
	size float64
}

// Fonts maps font descriptions to faces of the Go font family. Sources are
// parsed on first use and faces are cached per size. It is safe for
// concurrent use.
type Fonts struct {
	mu      sync.Mutex
	sources map[string]*text.FontSource
	faces   map[faceKey]text.Face
}

// NewFonts returns an empty font cache.
func NewFonts() *Fonts {
	return &Fonts{
		sources: make(map[string]*text.FontSource),
		faces:   make(map[faceKey]text.Face),
	}
}

var fontFiles = map[string][]byte{
	"goregular":         goregular.TTF,
	"gobold":            gobold.TTF,
	"goitalic":          goitalic.TTF,
	"gobolditalic":      gobolditalic.TTF,
	"gomono":            gomono.TTF,
	"gomonobold":        gomonobold.TTF,
	"gomonoitalic":      gomonoitalic.TTF,
	"gomonobolditalic":  gomonobolditalic.TTF,
	"gosmallcaps":       gosmallcaps.TTF,
	"gosmallcapsitalic": gosmallcapsitalic.TTF,
}

// fontFile returns the name of the Go font closest to f.
func fontFile(f grapheditor.Font) string {
	bold := f.Weight == grapheditor.FontWeightBold
	italic := f.Style == grapheditor.FontStyleItalic || f.Style == grapheditor.FontStyleOblique

	switch {
	case f.Family == grapheditor.FontFamilyCourier || f.Family == grapheditor.FontFamilyMonospace:
		switch {
		case bold && italic:
			return "gomonobolditalic"
		case bold:
			return "gomonobold"
		case italic:
			return "gomonoitalic"
		}
		return "gomono"
	case f.SmallCaps:
		if italic {
			return "gosmallcapsitalic"
		}
		return "gosmallcaps"
	case bold && italic:
		return "gobolditalic"
	case bold:
		return "gobold"
	case italic:
		return "goitalic"
	}
	return "goregular"
}

// Face returns the face for f scaled by scale.
func (fs *Fonts) Face(f grapheditor.Font, scale float64) (text.Face, error) {
	key := faceKey{file: fontFile(f), size: f.Size * scale}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if face, ok := fs.faces[key]; ok {
		return face, nil
	}
	source, ok := fs.sources[key.file]
	if !ok {
		var err error
		source, err = text.NewFontSource(fontFiles[key.file])
		if err != nil {
			return nil, fmt.Errorf("failed to parse font %s: %w", key.file, err)
		}
		fs.sources[key.file] = source
	}
	face := source.Face(key.size)
	fs.faces[key] = face
	return face, nil
}

// Close releases all parsed fonts.
func (fs *Fonts) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	var firstErr error
	for name, source := range fs.sources {
		if err := source.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close font %s: %w", name, err)
		}
	}
	clear(fs.sources)
	clear(fs.faces)
	return firstErr
}
