package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestRegisterAndFace(t *testing.T) {
	if err := Register("test-regular", goregular.TTF); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	face := Face("test-regular", 14)
	if face == nil {
		t.Fatal("Face returned nil")
	}

	// Same name and size must hit the cache.
	if again := Face("test-regular", 14); again != face {
		t.Error("Face returned a new instance for a cached size")
	}

	// A different size is a different face.
	if other := Face("test-regular", 28); other == face {
		t.Error("Face returned the same instance for a different size")
	}
}

func TestRegister_InvalidTTF(t *testing.T) {
	if err := Register("broken", []byte("not a font")); err == nil {
		t.Fatal("Register accepted invalid TTF data")
	}
}

func TestFace_UnknownNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Face did not panic for an unregistered name")
		}
	}()
	Face("never-registered", 12)
}

func TestReRegister_InvalidatesCachedFaces(t *testing.T) {
	MustRegister("swap", goregular.TTF)
	before := Face("swap", 16)

	MustRegister("swap", goregular.TTF)
	after := Face("swap", 16)

	if before == after {
		t.Error("re-registering did not invalidate cached faces")
	}
}
