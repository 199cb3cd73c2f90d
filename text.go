package cursors

import (
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// fontSources parses the embedded Go fonts once per process.
var fontSources = sync.OnceValues(func() (*fontSet, error) {
	sans, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, err
	}
	mono, err := text.NewFontSource(gomono.TTF)
	if err != nil {
		return nil, err
	}
	return &fontSet{sans: sans, mono: mono}, nil
})

type fontSet struct {
	sans, mono *text.FontSource
}

type faceKey struct {
	mono bool
	size float64
}

// fontCache hands out faces by family and size. The family is matched
// loosely: anything naming "mono" or "courier" gets Go Mono, everything
// else Go Regular.
type fontCache struct {
	faces  map[faceKey]text.Face
	warned bool
}

func (f *fontCache) face(family string, size float64) text.Face {
	set, err := fontSources()
	if err != nil {
		if !f.warned {
			f.warned = true
			Logger().Warn("cursors: font unavailable, labels disabled", "err", err)
		}
		return nil
	}
	if size <= 0 {
		size = DefaultFontSize
	}
	fam := strings.ToLower(family)
	key := faceKey{mono: strings.Contains(fam, "mono") || strings.Contains(fam, "courier"), size: size}
	if face, ok := f.faces[key]; ok {
		return face
	}
	src := set.sans
	if key.mono {
		src = set.mono
	}
	face := src.Face(size)
	if f.faces == nil {
		f.faces = make(map[faceKey]text.Face)
	}
	f.faces[key] = face
	return face
}
