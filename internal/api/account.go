package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/walkingguide-web/internal/apiclient"
	"github.com/walkingguide-web/internal/modal"
	"github.com/walkingguide-web/internal/models"
	"github.com/walkingguide-web/internal/session"
)

const maxUploadSize = 10 << 20

// bumpAuthor refreshes the bell of the user named by the author_id form
// field, unless that is the acting user.
func (h *Handler) bumpAuthor(c *gin.Context) {
	authorID, err := strconv.ParseInt(c.PostForm("author_id"), 10, 64)
	if err != nil || authorID <= 0 {
		return
	}
	if user := session.CurrentUser(c); user != nil && user.ID == authorID {
		return
	}
	h.ui.Bump(authorID)
}

// MyTours handles GET /my-tours
func (h *Handler) MyTours(c *gin.Context) {
	user := session.CurrentUser(c)
	tours, err := h.api.ToursByUser(c.Request.Context(), user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.renderList(c, "nav.my_tours", tourCards(tours))
}

// BookTourPage handles GET /tours/:id/book
func (h *Handler) BookTourPage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c)
		return
	}
	tour, err := h.api.Tours().Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "book_tour", gin.H{
		"Tour":   tour,
		"Values": gin.H{"spots": 1},
		"Errors": map[string]string{},
	})
}

// BookTour handles POST /tours/:id/book
func (h *Handler) BookTour(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c)
		return
	}
	ctx := c.Request.Context()

	var req models.BookingRequest
	_ = c.ShouldBind(&req)
	req.TourID = id

	if errs := h.validator.ValidateBooking(&req); len(errs) > 0 {
		tour, err := h.api.Tours().Get(ctx, id)
		if err != nil {
			h.fail(c, err)
			return
		}
		h.render(c, http.StatusUnprocessableEntity, "book_tour", gin.H{
			"Tour":   tour,
			"Values": gin.H{"spots": req.Spots, "start_date": req.StartDate, "note": req.Note},
			"Errors": errs.ByField(),
		})
		return
	}

	if _, err := h.api.CreateBooking(ctx, req); err != nil {
		h.failAction(c, err, fmt.Sprintf("/tours/%d/book", id))
		return
	}
	h.alert(c, modal.KindSuccess, "success.booked")
	c.Redirect(http.StatusSeeOther, "/my-bookings")
}

// MyBookings handles GET /my-bookings
func (h *Handler) MyBookings(c *gin.Context) {
	user := session.CurrentUser(c)
	bookings, err := h.api.BookingsByUser(c.Request.Context(), user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "bookings", gin.H{
		"Title":    "nav.my_bookings",
		"Bookings": bookings,
		"Admin":    false,
	})
}

// CancelBooking handles POST /my-bookings/:id/cancel through the confirm dialog
func (h *Handler) CancelBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c)
		return
	}
	h.confirm(c, "confirm.cancel_booking", "success.cancelled", "/my-bookings", func(ctx context.Context) error {
		return h.api.CancelBooking(ctx, id)
	})
}

func (h *Handler) articleForm(c *gin.Context, status int, article *models.Article, errs map[string]string) {
	if errs == nil {
		errs = map[string]string{}
	}
	h.render(c, status, "article_form", gin.H{"Article": article, "Errors": errs})
}

// NewArticlePage handles GET /write
func (h *Handler) NewArticlePage(c *gin.Context) {
	h.articleForm(c, http.StatusOK, &models.Article{}, nil)
}

func bindArticle(c *gin.Context) *models.Article {
	var article models.Article
	_ = c.ShouldBind(&article)
	article.Title = strings.TrimSpace(article.Title)
	return &article
}

func articlePayload(a *models.Article, userID int64) map[string]any {
	return map[string]any{
		"title":     a.Title,
		"content":   a.Content,
		"image_url": a.ImageURL,
		"user_id":   userID,
	}
}

// CreateArticle handles POST /write
func (h *Handler) CreateArticle(c *gin.Context) {
	user := session.CurrentUser(c)
	article := bindArticle(c)

	if errs := h.validator.ValidateArticle(article); len(errs) > 0 {
		h.articleForm(c, http.StatusUnprocessableEntity, article, errs.ByField())
		return
	}

	created, err := h.api.Articles().Create(c.Request.Context(), articlePayload(article, user.ID))
	if err != nil {
		h.failAction(c, err, "/write")
		return
	}
	h.alert(c, modal.KindSuccess, "success.article_submitted")
	if created != nil && created.ID > 0 {
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/articles/%d", created.ID))
		return
	}
	c.Redirect(http.StatusSeeOther, "/articles")
}

// ownArticle loads an article the current user may edit
func (h *Handler) ownArticle(c *gin.Context) (*models.Article, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c)
		return nil, false
	}
	article, err := h.api.Articles().Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	user := session.CurrentUser(c)
	if !user.IsAdmin() && article.UserID != user.ID {
		h.render(c, http.StatusForbidden, "error", gin.H{"Message": "error.forbidden"})
		return nil, false
	}
	return article, true
}

// EditArticlePage handles GET /articles/:id/edit
func (h *Handler) EditArticlePage(c *gin.Context) {
	article, ok := h.ownArticle(c)
	if !ok {
		return
	}
	h.articleForm(c, http.StatusOK, article, nil)
}

// UpdateArticle handles POST /articles/:id/edit
func (h *Handler) UpdateArticle(c *gin.Context) {
	existing, ok := h.ownArticle(c)
	if !ok {
		return
	}
	article := bindArticle(c)
	article.ID = existing.ID

	if errs := h.validator.ValidateArticle(article); len(errs) > 0 {
		h.articleForm(c, http.StatusUnprocessableEntity, article, errs.ByField())
		return
	}

	path := fmt.Sprintf("/articles/%d", existing.ID)
	if _, err := h.api.Articles().Update(c.Request.Context(), existing.ID, articlePayload(article, existing.UserID)); err != nil {
		h.failAction(c, err, path+"/edit")
		return
	}
	h.alert(c, modal.KindSuccess, "success.saved")
	c.Redirect(http.StatusSeeOther, path)
}

// ToggleLike handles POST /articles/:id/like
func (h *Handler) ToggleLike(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c)
		return
	}
	path := fmt.Sprintf("/articles/%d", id)
	status, err := h.api.ToggleLike(c.Request.Context(), id)
	if err != nil {
		h.failAction(c, err, path)
		return
	}
	if status.Liked {
		h.bumpAuthor(c)
	}
	c.Redirect(http.StatusSeeOther, path)
}

// AddComment handles POST /articles/:id/comments
func (h *Handler) AddComment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c)
		return
	}
	path := fmt.Sprintf("/articles/%d", id)
	content := strings.TrimSpace(c.PostForm("content"))

	if errs := h.validator.ValidateComment(content); len(errs) > 0 {
		h.alert(c, modal.KindWarning, errs[0].Message)
		c.Redirect(http.StatusSeeOther, path+"#comments")
		return
	}

	comment, err := h.api.AddComment(c.Request.Context(), id, content)
	if err != nil {
		h.failAction(c, err, path)
		return
	}
	h.bumpAuthor(c)

	anchor := "#comments"
	if comment != nil && comment.ID > 0 {
		anchor = fmt.Sprintf("#comment-%d", comment.ID)
	}
	c.Redirect(http.StatusSeeOther, path+anchor)
}

// DeleteComment handles POST /articles/:id/comments/:commentID/delete through the confirm dialog
func (h *Handler) DeleteComment(c *gin.Context) {
	id, ok := paramID(c, "id")
	commentID, ok2 := paramID(c, "commentID")
	if !ok || !ok2 {
		h.notFound(c)
		return
	}
	h.confirm(c, "confirm.delete", "success.deleted", fmt.Sprintf("/articles/%d#comments", id), func(ctx context.Context) error {
		return h.api.DeleteComment(ctx, commentID)
	})
}

// ReportArticle handles POST /articles/:id/report
func (h *Handler) ReportArticle(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c)
		return
	}
	path := fmt.Sprintf("/articles/%d", id)
	reason := strings.TrimSpace(c.PostForm("reason"))

	if errs := h.validator.ValidateRequired(map[string]string{"reason": reason}, "reason"); len(errs) > 0 {
		h.alert(c, modal.KindWarning, errs[0].Message)
		c.Redirect(http.StatusSeeOther, path)
		return
	}

	if err := h.api.ReportArticle(c.Request.Context(), id, reason); err != nil {
		h.failAction(c, err, path)
		return
	}
	h.alert(c, modal.KindSuccess, "success.reported")
	c.Redirect(http.StatusSeeOther, path)
}

// ProfilePage handles GET /profile
func (h *Handler) ProfilePage(c *gin.Context) {
	user := session.CurrentUser(c)
	h.render(c, http.StatusOK, "profile", gin.H{
		"Values": gin.H{"full_name": user.FullName, "image_url": user.ImageURL},
		"Errors": map[string]string{},
	})
}

// UpdateProfile handles POST /profile
func (h *Handler) UpdateProfile(c *gin.Context) {
	user := session.CurrentUser(c)
	fullName := strings.TrimSpace(c.PostForm("full_name"))
	imageURL := strings.TrimSpace(c.PostForm("image_url"))

	if errs := h.validator.ValidateRequired(map[string]string{"full_name": fullName}, "full_name"); len(errs) > 0 {
		h.render(c, http.StatusUnprocessableEntity, "profile", gin.H{
			"Values": gin.H{"full_name": fullName, "image_url": imageURL},
			"Errors": errs.ByField(),
		})
		return
	}

	payload := map[string]any{"full_name": fullName, "image_url": imageURL}
	if _, err := h.api.Users().Update(c.Request.Context(), user.ID, payload); err != nil {
		h.failAction(c, err, "/profile")
		return
	}

	updated := *user
	updated.FullName = fullName
	updated.ImageURL = imageURL
	if err := h.sessions.UpdateUser(c, &updated); err != nil {
		h.log.Error().Err(err).Msg("Failed to update session user")
	}
	h.alert(c, modal.KindSuccess, "success.saved")
	c.Redirect(http.StatusSeeOther, "/profile")
}

// Upload handles POST /upload and answers with the stored image URL
func (h *Handler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.t(c, "validation.required")})
		return
	}
	defer file.Close()

	result, err := h.api.Upload(c.Request.Context(), header.Filename, file)
	if err != nil {
		if apiclient.IsUnauthorized(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": h.t(c, "error.session_expired")})
			return
		}
		h.log.Error().Err(err).Str("filename", header.Filename).Msg("Upload failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": h.t(c, "error.generic")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": result.URL})
}
