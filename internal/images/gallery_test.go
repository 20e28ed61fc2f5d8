package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walkingguide-web/internal/models"
)

func gallery(urls ...string) []models.Image {
	var out []models.Image
	for _, u := range urls {
		out = Add(out, u)
	}
	return out
}

func primaryCount(imgs []models.Image) int {
	n := 0
	for _, img := range imgs {
		if img.IsPrimary {
			n++
		}
	}
	return n
}

func TestAdd_FirstImageIsPrimary(t *testing.T) {
	imgs := gallery("a", "b", "c")
	require.Len(t, imgs, 3)
	assert.True(t, imgs[0].IsPrimary)
	assert.Equal(t, 1, primaryCount(imgs))
	for i, img := range imgs {
		assert.Equal(t, i, img.SortOrder)
	}
}

func TestEnsurePrimary(t *testing.T) {
	none := []models.Image{{URL: "a"}, {URL: "b"}}
	assert.True(t, EnsurePrimary(none)[0].IsPrimary)
	assert.False(t, none[0].IsPrimary, "input must not be mutated")

	many := []models.Image{{URL: "a"}, {URL: "b", IsPrimary: true}, {URL: "c", IsPrimary: true}}
	fixed := EnsurePrimary(many)
	assert.Equal(t, 1, primaryCount(fixed))
	assert.True(t, fixed[1].IsPrimary)

	assert.Empty(t, EnsurePrimary(nil))
}

func TestMove_RenumbersAndForcesIndexZeroPrimary(t *testing.T) {
	imgs := gallery("a", "b", "c", "d")

	moved, err := Move(imgs, 2, 0)
	require.NoError(t, err)

	var urls []string
	for i, img := range moved {
		urls = append(urls, img.URL)
		assert.Equal(t, i, img.SortOrder)
	}
	assert.Equal(t, []string{"c", "a", "b", "d"}, urls)
	assert.True(t, moved[0].IsPrimary)
	assert.Equal(t, 1, primaryCount(moved))

	down, err := Move(moved, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, "a", down[0].URL)
	assert.Equal(t, "c", down[3].URL)
	assert.True(t, down[0].IsPrimary)
	assert.False(t, down[3].IsPrimary)
}

func TestMove_OutOfRange(t *testing.T) {
	_, err := Move(gallery("a"), 0, 1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = Move(gallery("a"), -1, 0)
	assert.Error(t, err)
}

func TestSetPrimaryAndRemove(t *testing.T) {
	imgs := gallery("a", "b", "c")

	imgs, err := SetPrimary(imgs, 2)
	require.NoError(t, err)
	assert.Equal(t, "c", PrimaryURL(imgs))
	assert.Equal(t, 1, primaryCount(imgs))

	// removing the primary image hands the flag to index 0
	imgs, err = Remove(imgs, 2)
	require.NoError(t, err)
	assert.Equal(t, "a", PrimaryURL(imgs))
	assert.Equal(t, 1, primaryCount(imgs))
	assert.Equal(t, 1, imgs[1].SortOrder)

	imgs, err = Remove(imgs, 0)
	require.NoError(t, err)
	imgs, err = Remove(imgs, 0)
	require.NoError(t, err)
	assert.Empty(t, imgs)
	assert.Equal(t, "", PrimaryURL(imgs))
}
