// Package images keeps hotel and restaurant galleries consistent: sort_order
// always equals the position in the list and exactly one image is primary.
package images

import (
	"errors"
	"fmt"

	"github.com/walkingguide-web/internal/models"
)

// ErrIndexOutOfRange is returned for a position outside the gallery
var ErrIndexOutOfRange = errors.New("image index out of range")

// EnsurePrimary returns a copy of imgs with exactly one primary image. The
// first flagged image keeps the flag; if none is flagged, index 0 gets it.
func EnsurePrimary(imgs []models.Image) []models.Image {
	out := clone(imgs)
	primary := -1
	for i := range out {
		if out[i].IsPrimary && primary < 0 {
			primary = i
			continue
		}
		out[i].IsPrimary = false
	}
	if primary < 0 && len(out) > 0 {
		out[0].IsPrimary = true
	}
	return out
}

// Add appends an image at the end of the gallery
func Add(imgs []models.Image, url string) []models.Image {
	out := append(clone(imgs), models.Image{URL: url})
	return EnsurePrimary(renumber(out))
}

// Move drags the image at from to position to. After a reorder the image at
// index 0 is always the primary one.
func Move(imgs []models.Image, from, to int) ([]models.Image, error) {
	if err := checkIndex(imgs, from); err != nil {
		return nil, err
	}
	if err := checkIndex(imgs, to); err != nil {
		return nil, err
	}

	out := clone(imgs)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]models.Image{moved}, out[to:]...)...)

	for i := range out {
		out[i].IsPrimary = i == 0
	}
	return renumber(out), nil
}

// SetPrimary flags the image at idx as primary and clears the others
func SetPrimary(imgs []models.Image, idx int) ([]models.Image, error) {
	if err := checkIndex(imgs, idx); err != nil {
		return nil, err
	}
	out := clone(imgs)
	for i := range out {
		out[i].IsPrimary = i == idx
	}
	return out, nil
}

// Remove drops the image at idx
func Remove(imgs []models.Image, idx int) ([]models.Image, error) {
	if err := checkIndex(imgs, idx); err != nil {
		return nil, err
	}
	out := clone(imgs)
	out = append(out[:idx], out[idx+1:]...)
	return EnsurePrimary(renumber(out)), nil
}

// PrimaryURL returns the URL of the primary image, or "" for an empty gallery
func PrimaryURL(imgs []models.Image) string {
	for _, img := range imgs {
		if img.IsPrimary {
			return img.URL
		}
	}
	if len(imgs) > 0 {
		return imgs[0].URL
	}
	return ""
}

func renumber(imgs []models.Image) []models.Image {
	for i := range imgs {
		imgs[i].SortOrder = i
	}
	return imgs
}

func clone(imgs []models.Image) []models.Image {
	out := make([]models.Image, len(imgs))
	copy(out, imgs)
	return out
}

func checkIndex(imgs []models.Image, idx int) error {
	if idx < 0 || idx >= len(imgs) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, idx, len(imgs))
	}
	return nil
}
