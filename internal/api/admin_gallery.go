package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/walkingguide-web/internal/images"
	"github.com/walkingguide-web/internal/modal"
	"github.com/walkingguide-web/internal/models"
)

// galleryEdit transforms a gallery; a returned error is shown as a warning
type galleryEdit func(imgs []models.Image) ([]models.Image, error)

func mountGallery[T any](h *Handler, g *gin.RouterGroup, res *adminResource[T]) {
	base := "/" + res.Name + "/:id/images"
	g.GET(base, galleryPage(h, res))
	g.POST(base, galleryAdd(h, res))
	g.POST(base+"/move", galleryMove(h, res))
	g.POST(base+"/:idx/primary", galleryPrimary(h, res))
	g.POST(base+"/:idx/remove", galleryRemove(h, res))
}

func galleryPath(res adminMeta, id int64) string {
	return fmt.Sprintf("%s/%d/images", res.Path(), id)
}

func galleryPage[T any](h *Handler, res *adminResource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			h.notFound(c)
			return
		}
		item, err := res.Resource(h.api).Get(c.Request.Context(), id)
		if err != nil {
			h.fail(c, err)
			return
		}
		h.render(c, http.StatusOK, "admin_gallery", gin.H{
			"Resource": res.adminMeta,
			"ID":       id,
			"Item":     toRow(item),
			"Images":   sortedGallery(res.Images(item)),
			"Action":   galleryPath(res.adminMeta, id),
		})
	}
}

// saveGallery reloads the item, applies edit and stores the gallery together
// with the primary image URL.
func saveGallery[T any](ctx context.Context, h *Handler, res *adminResource[T], id int64, edit galleryEdit) error {
	resource := res.Resource(h.api)
	item, err := resource.Get(ctx, id)
	if err != nil {
		return err
	}
	imgs, err := edit(sortedGallery(res.Images(item)))
	if err != nil {
		return err
	}
	_, err = resource.Update(ctx, id, gin.H{
		"images":    imgs,
		"image_url": images.PrimaryURL(imgs),
	})
	return err
}

func galleryAction[T any](h *Handler, res *adminResource[T], c *gin.Context, edit galleryEdit) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c)
		return
	}
	back := galleryPath(res.adminMeta, id)
	if err := saveGallery(c.Request.Context(), h, res, id, edit); err != nil {
		if errors.Is(err, images.ErrIndexOutOfRange) {
			h.alert(c, modal.KindWarning, "error.image_index")
			c.Redirect(http.StatusSeeOther, back)
			return
		}
		h.failAction(c, err, back)
		return
	}
	h.alert(c, modal.KindSuccess, "success.saved")
	c.Redirect(http.StatusSeeOther, back)
}

// galleryAdd appends an uploaded file, or the image_url field when no file is sent
func galleryAdd[T any](h *Handler, res *adminResource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

		url := strings.TrimSpace(c.PostForm("image_url"))
		if file, header, err := c.Request.FormFile("file"); err == nil {
			defer file.Close()
			result, err := h.api.Upload(c.Request.Context(), header.Filename, file)
			if err != nil {
				id, _ := paramID(c, "id")
				h.failAction(c, err, galleryPath(res.adminMeta, id))
				return
			}
			url = result.URL
		}
		if url == "" {
			id, _ := paramID(c, "id")
			h.alert(c, modal.KindWarning, "validation.required")
			c.Redirect(http.StatusSeeOther, galleryPath(res.adminMeta, id))
			return
		}

		galleryAction(h, res, c, func(imgs []models.Image) ([]models.Image, error) {
			return images.Add(imgs, url), nil
		})
	}
}

func galleryMove[T any](h *Handler, res *adminResource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, errFrom := strconv.Atoi(c.PostForm("from"))
		to, errTo := strconv.Atoi(c.PostForm("to"))
		galleryAction(h, res, c, func(imgs []models.Image) ([]models.Image, error) {
			if errFrom != nil || errTo != nil {
				return nil, images.ErrIndexOutOfRange
			}
			return images.Move(imgs, from, to)
		})
	}
}

func galleryPrimary[T any](h *Handler, res *adminResource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		idx, err := strconv.Atoi(c.Param("idx"))
		galleryAction(h, res, c, func(imgs []models.Image) ([]models.Image, error) {
			if err != nil {
				return nil, images.ErrIndexOutOfRange
			}
			return images.SetPrimary(imgs, idx)
		})
	}
}

// galleryRemove asks for confirmation before dropping an image
func galleryRemove[T any](h *Handler, res *adminResource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			h.notFound(c)
			return
		}
		idx, err := strconv.Atoi(c.Param("idx"))
		if err != nil {
			h.notFound(c)
			return
		}
		h.confirm(c, "confirm.delete_image", "success.deleted", galleryPath(res.adminMeta, id), func(ctx context.Context) error {
			return saveGallery(ctx, h, res, id, func(imgs []models.Image) ([]models.Image, error) {
				return images.Remove(imgs, idx)
			})
		})
	}
}
