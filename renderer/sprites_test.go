package renderer

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestAtlasCountAndHandles(t *testing.T) {
	// No textures are loaded here; Count and Handles only look at the slice.
	a := &Atlas{textures: make([]rl.Texture2D, 3)}

	if a.Count() != 3 {
		t.Errorf("Count() = %d, want 3", a.Count())
	}

	handles := a.Handles()
	if len(handles) != 3 {
		t.Fatalf("Handles() returned %d handles, want 3", len(handles))
	}
	for i, h := range handles {
		if h != uint32(i) {
			t.Errorf("handle %d = %d, want %d", i, h, i)
		}
	}
}

func TestListSpritesMissingFolder(t *testing.T) {
	if _, err := ListSprites("does-not-exist"); err == nil {
		t.Error("expected error for a missing folder")
	}
}

func TestListSpritesEmptyFolder(t *testing.T) {
	if _, err := ListSprites(t.TempDir()); err == nil {
		t.Error("expected error for a folder with no images")
	}
}
