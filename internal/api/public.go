package api

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/walkingguide-web/internal/images"
	"github.com/walkingguide-web/internal/models"
	"github.com/walkingguide-web/internal/session"
)

const homeSectionSize = 6

// card is one entry of a list page
type card struct {
	Title       string
	Subtitle    string
	Description string
	ImageURL    string
	Link        string
}

func placeCards(places []models.Place) []card {
	out := make([]card, 0, len(places))
	for _, p := range places {
		out = append(out, card{Title: p.Name, Subtitle: p.City, Description: p.Description, ImageURL: p.ImageURL, Link: fmt.Sprintf("/places/%d", p.ID)})
	}
	return out
}

func tourCards(tours []models.Tour) []card {
	out := make([]card, 0, len(tours))
	for _, t := range tours {
		out = append(out, card{Title: t.Name, Subtitle: t.Duration, Description: t.Description, ImageURL: t.ImageURL, Link: fmt.Sprintf("/tours/%d", t.ID)})
	}
	return out
}

func articleCards(articles []models.Article) []card {
	out := make([]card, 0, len(articles))
	for _, a := range articles {
		out = append(out, card{Title: a.Title, Subtitle: a.AuthorName, ImageURL: a.ImageURL, Link: fmt.Sprintf("/articles/%d", a.ID)})
	}
	return out
}

func hotelCards(hotels []models.Hotel) []card {
	out := make([]card, 0, len(hotels))
	for _, ht := range hotels {
		img := images.PrimaryURL(ht.Images)
		if img == "" {
			img = ht.ImageURL
		}
		out = append(out, card{Title: ht.Name, Subtitle: ht.City, Description: ht.Description, ImageURL: img, Link: fmt.Sprintf("/hotels/%d", ht.ID)})
	}
	return out
}

func restaurantCards(restaurants []models.Restaurant) []card {
	out := make([]card, 0, len(restaurants))
	for _, r := range restaurants {
		img := images.PrimaryURL(r.Images)
		if img == "" {
			img = r.ImageURL
		}
		out = append(out, card{Title: r.Name, Subtitle: r.Cuisine, Description: r.Description, ImageURL: img, Link: fmt.Sprintf("/restaurants/%d", r.ID)})
	}
	return out
}

// filterCards keeps cards whose title or subtitle contains q, ignoring case
func filterCards(cards []card, q string) []card {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return cards
	}
	out := cards[:0]
	for _, c := range cards {
		if strings.Contains(strings.ToLower(c.Title), q) || strings.Contains(strings.ToLower(c.Subtitle), q) {
			out = append(out, c)
		}
	}
	return out
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// publishedOnly hides articles still under moderation from public lists
func publishedOnly(articles []models.Article) []models.Article {
	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if a.Status == "" || a.Status == models.ArticleStatusPublished {
			out = append(out, a)
		}
	}
	return out
}

// Home handles GET /
func (h *Handler) Home(c *gin.Context) {
	var (
		places   []models.Place
		tours    []models.Tour
		articles []models.Article
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		places, err = h.api.Places().List(ctx)
		return err
	})
	g.Go(func() (err error) {
		tours, err = h.api.Tours().List(ctx)
		return err
	})
	g.Go(func() (err error) {
		articles, err = h.api.Articles().List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.fail(c, err)
		return
	}

	h.render(c, http.StatusOK, "home", gin.H{
		"Places":   head(placeCards(places), homeSectionSize),
		"Tours":    head(tourCards(tours), homeSectionSize),
		"Articles": head(articleCards(publishedOnly(articles)), homeSectionSize),
	})
}

func (h *Handler) renderList(c *gin.Context, title string, cards []card) {
	q := c.Query("q")
	h.render(c, http.StatusOK, "list", gin.H{
		"Title": title,
		"Query": q,
		"Cards": filterCards(cards, q),
	})
}

// ListPlaces handles GET /places
func (h *Handler) ListPlaces(c *gin.Context) {
	places, err := h.api.Places().List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.renderList(c, "nav.places", placeCards(places))
}

// ShowPlace handles GET /places/:id
func (h *Handler) ShowPlace(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c)
		return
	}
	place, err := h.api.Places().Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "place_detail", gin.H{"Place": place})
}

// ListTours handles GET /tours
func (h *Handler) ListTours(c *gin.Context) {
	tours, err := h.api.Tours().List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.renderList(c, "nav.tours", tourCards(tours))
}

// ShowTour handles GET /tours/:id. It is public; booking requires sign-in.
func (h *Handler) ShowTour(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c)
		return
	}

	var (
		tour  *models.Tour
		steps []models.TourStep
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		tour, err = h.api.Tours().Get(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		steps, err = h.api.StepsByTour(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		h.fail(c, err)
		return
	}

	sort.SliceStable(steps, func(i, j int) bool { return steps[i].StepOrder < steps[j].StepOrder })
	h.render(c, http.StatusOK, "tour_detail", gin.H{"Tour": tour, "Steps": steps})
}

// ListArticles handles GET /articles
func (h *Handler) ListArticles(c *gin.Context) {
	articles, err := h.api.Articles().List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.renderList(c, "nav.articles", articleCards(publishedOnly(articles)))
}

// ShowArticle handles GET /articles/:id
func (h *Handler) ShowArticle(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c)
		return
	}
	user := session.CurrentUser(c)

	var (
		article  *models.Article
		comments []models.Comment
		like     *models.LikeStatus
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		article, err = h.api.Articles().Get(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		comments, err = h.api.Comments(ctx, id)
		return err
	})
	if user != nil {
		g.Go(func() (err error) {
			like, err = h.api.LikeStatus(ctx, id)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		h.fail(c, err)
		return
	}

	canEdit := user != nil && (user.IsAdmin() || user.ID == article.UserID)
	h.render(c, http.StatusOK, "article_detail", gin.H{
		"Article":  article,
		"Comments": comments,
		"Like":     like,
		"CanEdit":  canEdit,
		"Errors":   map[string]string{},
	})
}

// ListHotels handles GET /hotels
func (h *Handler) ListHotels(c *gin.Context) {
	hotels, err := h.api.Hotels().List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.renderList(c, "nav.hotels", hotelCards(hotels))
}

// ShowHotel handles GET /hotels/:id
func (h *Handler) ShowHotel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c)
		return
	}
	hotel, err := h.api.Hotels().Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "gallery_detail", gin.H{
		"Name":        hotel.Name,
		"Subtitle":    hotel.PriceRange,
		"Address":     hotel.Address,
		"City":        hotel.City,
		"Phone":       hotel.Phone,
		"Website":     hotel.Website,
		"Description": hotel.Description,
		"Images":      sortedGallery(hotel.Images),
		"Back":        "/hotels",
	})
}

// ListRestaurants handles GET /restaurants
func (h *Handler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.api.Restaurants().List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.renderList(c, "nav.restaurants", restaurantCards(restaurants))
}

// menuView is a menu with its items
type menuView struct {
	models.Menu
	Items []models.MenuItem
}

// ShowRestaurant handles GET /restaurants/:id
func (h *Handler) ShowRestaurant(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c)
		return
	}

	var (
		restaurant *models.Restaurant
		menus      []models.Menu
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		restaurant, err = h.api.Restaurants().Get(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		menus, err = h.api.Menus(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		h.fail(c, err)
		return
	}

	views := make([]menuView, len(menus))
	g, ctx = errgroup.WithContext(c.Request.Context())
	g.SetLimit(4)
	for i, m := range menus {
		i, m := i, m
		views[i].Menu = m
		g.Go(func() (err error) {
			views[i].Items, err = h.api.MenuItems(ctx, m.ID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		h.fail(c, err)
		return
	}

	h.render(c, http.StatusOK, "gallery_detail", gin.H{
		"Name":        restaurant.Name,
		"Subtitle":    restaurant.Cuisine,
		"Address":     restaurant.Address,
		"City":        restaurant.City,
		"Phone":       restaurant.Phone,
		"Description": restaurant.Description,
		"Images":      sortedGallery(restaurant.Images),
		"Menus":       views,
		"Back":        "/restaurants",
	})
}

// sortedGallery orders images by sort_order with exactly one primary
func sortedGallery(imgs []models.Image) []models.Image {
	out := images.EnsurePrimary(imgs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}
