package models

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"path/filepath"

	_ "github.com/HugoSmits86/nativewebp" // Register WebP decoder
	_ "github.com/ftrvxmtrx/tga"           // Register TGA decoder
	"github.com/qmuntal/gltf"
)

// ImageData returns the encoded bytes of every image in doc, keyed by
// image index. Images stored in buffer views are sliced out of their
// buffer; URI images are read relative to dir. Images that cannot be
// read are left out.
func ImageData(doc *gltf.Document, dir string) map[int][]byte {
	images := make(map[int][]byte)
	for i, img := range doc.Images {
		switch {
		case img.BufferView != nil:
			if *img.BufferView >= len(doc.BufferViews) {
				continue
			}
			bv := doc.BufferViews[*img.BufferView]
			if bv.Buffer >= len(doc.Buffers) {
				continue
			}
			buf := doc.Buffers[bv.Buffer].Data
			end := bv.ByteOffset + bv.ByteLength
			if buf == nil || end > len(buf) {
				continue
			}
			images[i] = buf[bv.ByteOffset:end]
		case img.URI != "":
			data, err := os.ReadFile(filepath.Join(dir, img.URI))
			if err == nil {
				images[i] = data
			}
		}
	}
	return images
}

// LoadWithTexture loads a model plus the lowest-indexed image that
// decodes as PNG, JPEG, TGA or WebP. The texture is nil when the file
// has none.
func (l *Loader) LoadWithTexture(path string) (*Mesh, image.Image, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh, err := l.FromDocument(doc, filepath.Base(path))
	if err != nil {
		return nil, nil, err
	}

	images := ImageData(doc, filepath.Dir(path))
	for i := range doc.Images {
		data, ok := images[i]
		if !ok || len(data) == 0 {
			continue
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err == nil {
			return mesh, img, nil
		}
	}
	return mesh, nil, nil
}
