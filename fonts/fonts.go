package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// FontName identifies a registered font.
type FontName string

// Default is the font registered by applications that only need one.
const Default FontName = "default"

type faceKey struct {
	name FontName
	size float64
}

var (
	registered = map[FontName]*truetype.Font{}
	faces      = map[faceKey]font.Face{}
)

// Register parses ttf and stores it under name. Faces are created lazily per
// size by Face, so a font registered once can be used at any size.
func Register(name FontName, ttf []byte) error {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	registered[name] = parsed

	// Invalidate faces cached for a previous registration under this name.
	for key := range faces {
		if key.name == name {
			delete(faces, key)
		}
	}
	return nil
}

// MustRegister is Register for startup code where a bad font is fatal.
func MustRegister(name FontName, ttf []byte) {
	if err := Register(name, ttf); err != nil {
		panic(err)
	}
}

// Face returns a font.Face for the named font at the given size, creating
// and caching it on first use. It panics if the name was never registered.
func Face(name FontName, size float64) font.Face {
	key := faceKey{name, size}
	if face, ok := faces[key]; ok {
		return face
	}

	parsed, ok := registered[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}

	face := truetype.NewFace(parsed, &truetype.Options{Size: size})
	faces[key] = face
	return face
}
