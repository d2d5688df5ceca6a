// Package renderer owns the sprite resources and video capture. The
// simulation core never sees textures, only the opaque handles issued here.
package renderer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ListSprites returns the image files in folder, in directory order. The
// number of images determines the body count for a graphical run.
func ListSprites(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("reading sprite folder: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg":
			paths = append(paths, filepath.Join(folder, e.Name()))
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no images found in %s", folder)
	}

	return paths, nil
}

// Atlas holds one circular-masked texture per body, addressed by handle.
type Atlas struct {
	textures []rl.Texture2D
	radius   float32
}

// LoadAtlas loads every image, scales it to the body diameter and applies a
// circular alpha mask. Must be called after the raylib window is initialized.
func LoadAtlas(paths []string, diameter int32) *Atlas {
	a := &Atlas{
		textures: make([]rl.Texture2D, 0, len(paths)),
		radius:   float32(diameter) / 2,
	}

	for _, path := range paths {
		img := rl.LoadImage(path)
		rl.ImageResize(img, diameter, diameter)

		mask := rl.GenImageColor(int(diameter), int(diameter), rl.Blank)
		rl.ImageDrawCircle(mask, diameter/2, diameter/2, diameter/2, rl.White)
		rl.ImageAlphaMask(img, mask)

		a.textures = append(a.textures, rl.LoadTextureFromImage(img))

		rl.UnloadImage(mask)
		rl.UnloadImage(img)
	}

	return a
}

// Count returns the number of loaded sprites.
func (a *Atlas) Count() int {
	return len(a.textures)
}

// Handles returns one opaque handle per sprite for the simulation to store.
func (a *Atlas) Handles() []uint32 {
	handles := make([]uint32, len(a.textures))
	for i := range handles {
		handles[i] = uint32(i)
	}
	return handles
}

// Draw renders the sprite for handle centered at (x, y). Unknown handles are
// ignored.
func (a *Atlas) Draw(handle uint32, x, y float32) {
	if int(handle) >= len(a.textures) {
		return
	}
	rl.DrawTexture(a.textures[handle], int32(x-a.radius), int32(y-a.radius), rl.White)
}

// Unload releases all textures.
func (a *Atlas) Unload() {
	for _, tex := range a.textures {
		rl.UnloadTexture(tex)
	}
	a.textures = nil
}
