package api

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/walkingguide-web/internal/apiclient"
	"github.com/walkingguide-web/internal/models"
	"github.com/walkingguide-web/internal/validation"
)

var (
	roleOptions = []option{
		{Value: string(models.RoleUser), Label: "role.user"},
		{Value: string(models.RoleAdmin), Label: "role.admin"},
	}
	articleStatusOptions = []option{
		{Value: string(models.ArticleStatusPending), Label: "article.pending"},
		{Value: string(models.ArticleStatusPublished), Label: "article.published"},
		{Value: string(models.ArticleStatusRejected), Label: "article.rejected"},
	}
)

func usersResource() *adminResource[models.User] {
	fields := []field{
		{Name: "full_name", Label: "field.full_name", Type: fieldText, Required: true, Column: true},
		{Name: "email", Label: "field.email", Type: fieldEmail, Required: true, Column: true},
		{Name: "role", Label: "field.role", Type: fieldSelect, Options: roleOptions, Column: true},
		{Name: "password", Label: "field.password", Type: fieldPassword},
		{Name: "image_url", Label: "field.image", Type: fieldImage},
	}
	return &adminResource[models.User]{
		adminMeta: adminMeta{Name: "users", Title: "admin.users", Fields: fields},
		Resource:  (*apiclient.Client).Users,
		Payload: func(h *Handler, c *gin.Context, creating bool) (any, validation.Errors) {
			var input models.UserInput
			if err := c.ShouldBind(&input); err != nil {
				return nil, validation.Errors{{Field: "full_name", Message: "validation.required"}}
			}
			if input.Role == "" {
				input.Role = models.RoleUser
			}
			if errs := h.validator.ValidateUserInput(&input, creating); len(errs) > 0 {
				return nil, errs
			}
			return &input, nil
		},
	}
}

func placesResource() *adminResource[models.Place] {
	return &adminResource[models.Place]{
		adminMeta: adminMeta{Name: "places", Title: "admin.places", Fields: []field{
			{Name: "name", Label: "field.name", Type: fieldText, Required: true, Column: true},
			{Name: "city", Label: "field.city", Type: fieldCity, Column: true},
			{Name: "address", Label: "field.address", Type: fieldAddress},
			{Name: "latitude", Label: "field.latitude", Type: fieldNumber},
			{Name: "longitude", Label: "field.longitude", Type: fieldNumber},
			{Name: "description", Label: "field.description", Type: fieldTextarea},
			{Name: "image_url", Label: "field.image", Type: fieldImage},
		}},
		Resource: (*apiclient.Client).Places,
	}
}

func tagsResource() *adminResource[models.Tag] {
	return &adminResource[models.Tag]{
		adminMeta: adminMeta{Name: "tags", Title: "admin.tags", Fields: []field{
			{Name: "name", Label: "field.name", Type: fieldText, Required: true, Column: true},
		}},
		Resource: (*apiclient.Client).Tags,
	}
}

func placeTagsResource() *adminResource[models.PlaceTag] {
	return &adminResource[models.PlaceTag]{
		adminMeta: adminMeta{Name: "place-tags", Title: "admin.place_tags", Fields: []field{
			{Name: "place_id", Label: "field.place", Type: fieldSelect, Numeric: true, OptionsFrom: "places", Required: true, Column: true},
			{Name: "tag_id", Label: "field.tag", Type: fieldSelect, Numeric: true, OptionsFrom: "tags", Required: true, Column: true},
		}},
		Resource: (*apiclient.Client).PlaceTags,
		Options: func(ctx context.Context, api *apiclient.Client) (map[string][]option, error) {
			var places []models.Place
			var tags []models.Tag
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() (err error) {
				places, err = api.Places().List(gctx)
				return err
			})
			g.Go(func() (err error) {
				tags, err = api.Tags().List(gctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return nil, err
			}
			return map[string][]option{
				"places": optionsOf(places, func(p models.Place) (int64, string) { return p.ID, p.Name }),
				"tags":   optionsOf(tags, func(t models.Tag) (int64, string) { return t.ID, t.Name }),
			}, nil
		},
	}
}

func articlesResource() *adminResource[models.Article] {
	return &adminResource[models.Article]{
		adminMeta: adminMeta{Name: "articles", Title: "admin.articles", Fields: []field{
			{Name: "title", Label: "field.title", Type: fieldText, Required: true, Column: true},
			{Name: "status", Label: "field.status", Type: fieldSelect, Options: articleStatusOptions, Column: true},
			{Name: "content", Label: "field.content", Type: fieldRichText, Required: true},
			{Name: "image_url", Label: "field.image", Type: fieldImage},
		}},
		Resource: (*apiclient.Client).Articles,
		// moderation creates a notification for the author
		AfterSave: func(h *Handler, item *models.Article) {
			if item.UserID > 0 {
				h.ui.Bump(item.UserID)
			}
		},
	}
}

func toursResource() *adminResource[models.Tour] {
	return &adminResource[models.Tour]{
		adminMeta: adminMeta{Name: "tours", Title: "admin.tours", Fields: []field{
			{Name: "name", Label: "field.name", Type: fieldText, Required: true, Column: true},
			{Name: "duration", Label: "field.duration", Type: fieldText, Column: true},
			{Name: "price", Label: "field.price", Type: fieldNumber, Column: true},
			{Name: "max_spots", Label: "field.max_spots", Type: fieldInt},
			{Name: "is_public", Label: "field.is_public", Type: fieldCheckbox, Column: true},
			{Name: "description", Label: "field.description", Type: fieldTextarea},
			{Name: "image_url", Label: "field.image", Type: fieldImage},
		}},
		Resource: (*apiclient.Client).Tours,
	}
}

func tourStepsResource() *adminResource[models.TourStep] {
	return &adminResource[models.TourStep]{
		adminMeta: adminMeta{Name: "tour-steps", Title: "admin.tour_steps", Fields: []field{
			{Name: "tour_id", Label: "field.tour", Type: fieldSelect, Numeric: true, OptionsFrom: "tours", Required: true, Column: true},
			{Name: "step_order", Label: "field.step_order", Type: fieldInt, Required: true, Column: true},
			{Name: "title", Label: "field.title", Type: fieldText, Required: true, Column: true},
			{Name: "place_id", Label: "field.place", Type: fieldSelect, Numeric: true, OptionsFrom: "places"},
			{Name: "start_time", Label: "field.start_time", Type: fieldText},
			{Name: "description", Label: "field.description", Type: fieldTextarea},
		}},
		Resource: (*apiclient.Client).TourSteps,
		Options: func(ctx context.Context, api *apiclient.Client) (map[string][]option, error) {
			var tours []models.Tour
			var places []models.Place
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() (err error) {
				tours, err = api.Tours().List(gctx)
				return err
			})
			g.Go(func() (err error) {
				places, err = api.Places().List(gctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return nil, err
			}
			return map[string][]option{
				"tours":  optionsOf(tours, func(t models.Tour) (int64, string) { return t.ID, t.Name }),
				"places": optionsOf(places, func(p models.Place) (int64, string) { return p.ID, p.Name }),
			}, nil
		},
	}
}

func hotelsResource() *adminResource[models.Hotel] {
	return &adminResource[models.Hotel]{
		adminMeta: adminMeta{Name: "hotels", Title: "admin.hotels", Gallery: true, Fields: []field{
			{Name: "name", Label: "field.name", Type: fieldText, Required: true, Column: true},
			{Name: "city", Label: "field.city", Type: fieldCity, Column: true},
			{Name: "address", Label: "field.address", Type: fieldAddress},
			{Name: "price_range", Label: "field.price_range", Type: fieldText, Column: true},
			{Name: "phone", Label: "field.phone", Type: fieldText},
			{Name: "website", Label: "field.website", Type: fieldText},
			{Name: "description", Label: "field.description", Type: fieldTextarea},
		}},
		Resource: (*apiclient.Client).Hotels,
		Images:   func(h *models.Hotel) []models.Image { return h.Images },
	}
}

func restaurantsResource() *adminResource[models.Restaurant] {
	return &adminResource[models.Restaurant]{
		adminMeta: adminMeta{Name: "restaurants", Title: "admin.restaurants", Gallery: true, Fields: []field{
			{Name: "name", Label: "field.name", Type: fieldText, Required: true, Column: true},
			{Name: "city", Label: "field.city", Type: fieldCity, Column: true},
			{Name: "address", Label: "field.address", Type: fieldAddress},
			{Name: "cuisine", Label: "field.cuisine", Type: fieldText, Column: true},
			{Name: "phone", Label: "field.phone", Type: fieldText},
			{Name: "description", Label: "field.description", Type: fieldTextarea},
		}},
		Resource: (*apiclient.Client).Restaurants,
		Images:   func(r *models.Restaurant) []models.Image { return r.Images },
	}
}

func optionsOf[T any](items []T, pick func(T) (int64, string)) []option {
	out := make([]option, 0, len(items))
	for _, item := range items {
		id, label := pick(item)
		out = append(out, option{Value: strconv.FormatInt(id, 10), Label: label})
	}
	return out
}

// registerAdminResources mounts every CRUD resource under the admin group
func (h *Handler) registerAdminResources(g *gin.RouterGroup) {
	mountResource(h, g, usersResource())
	mountResource(h, g, placesResource())
	mountResource(h, g, tagsResource())
	mountResource(h, g, placeTagsResource())
	mountResource(h, g, articlesResource())
	mountResource(h, g, toursResource())
	mountResource(h, g, tourStepsResource())
	mountResource(h, g, hotelsResource())
	mountResource(h, g, restaurantsResource())
}

// adminMetas lists the resources shown on the dashboard
func (h *Handler) adminMetas() []adminMeta {
	return []adminMeta{
		usersResource().adminMeta,
		placesResource().adminMeta,
		tagsResource().adminMeta,
		placeTagsResource().adminMeta,
		articlesResource().adminMeta,
		toursResource().adminMeta,
		tourStepsResource().adminMeta,
		hotelsResource().adminMeta,
		restaurantsResource().adminMeta,
	}
}
