package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/walkingguide-web/internal/apiclient"
	"github.com/walkingguide-web/internal/modal"
	"github.com/walkingguide-web/internal/models"
	"github.com/walkingguide-web/internal/validation"
)

type fieldType string

const (
	fieldText     fieldType = "text"
	fieldTextarea fieldType = "textarea"
	fieldRichText fieldType = "richtext"
	fieldNumber   fieldType = "number"
	fieldInt      fieldType = "int"
	fieldCheckbox fieldType = "checkbox"
	fieldSelect   fieldType = "select"
	fieldEmail    fieldType = "email"
	fieldPassword fieldType = "password"
	fieldImage    fieldType = "image"
	fieldAddress  fieldType = "address"
	fieldCity     fieldType = "city"
)

type option struct {
	Value string
	Label string
}

// field describes one input of an admin form and, when Column is set, one
// column of the admin list.
type field struct {
	Name     string
	Label    string
	Type     fieldType
	Required bool
	Column   bool
	// Numeric select values are sent as integers
	Numeric bool
	Options []option
	// OptionsFrom names a set returned by the resource's Options loader
	OptionsFrom string
}

// adminMeta is the template view of a resource
type adminMeta struct {
	Name    string
	Title   string
	Fields  []field
	Gallery bool
}

func (m adminMeta) Path() string {
	return "/admin/" + m.Name
}

func (m adminMeta) Columns() []field {
	var out []field
	for _, f := range m.Fields {
		if f.Column {
			out = append(out, f)
		}
	}
	return out
}

// adminResource wires one backend collection to list, form and delete pages
type adminResource[T any] struct {
	adminMeta
	Resource func(*apiclient.Client) *apiclient.Resource[T]
	// Options loads select choices keyed by field.OptionsFrom
	Options func(ctx context.Context, api *apiclient.Client) (map[string][]option, error)
	// Payload overrides the default form-to-JSON conversion
	Payload func(h *Handler, c *gin.Context, creating bool) (any, validation.Errors)
	// AfterSave runs after a successful create or update
	AfterSave func(h *Handler, item *T)
	// Images exposes the gallery of T; nil when T has none
	Images func(item *T) []models.Image
}

// toRow turns an entity into a map keyed by its JSON field names
func toRow(v any) map[string]any {
	data, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	row := map[string]any{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&row); err != nil {
		return map[string]any{}
	}
	return row
}

func toRows[T any](items []T) []map[string]any {
	rows := make([]map[string]any, 0, len(items))
	for i := range items {
		rows = append(rows, toRow(&items[i]))
	}
	return rows
}

// formValues echoes the submitted form back into the form template
func formValues(c *gin.Context, fields []field) map[string]any {
	values := map[string]any{}
	for _, f := range fields {
		if f.Type == fieldPassword {
			continue
		}
		raw := c.PostForm(f.Name)
		if f.Type == fieldCheckbox {
			values[f.Name] = raw == "true"
			continue
		}
		values[f.Name] = raw
	}
	return values
}

// formPayload converts the submitted form into the JSON body sent to the backend
func formPayload(c *gin.Context, fields []field) (map[string]any, validation.Errors) {
	payload := map[string]any{}
	var errs validation.Errors

	for _, f := range fields {
		raw := strings.TrimSpace(c.PostForm(f.Name))

		if f.Type == fieldCheckbox {
			payload[f.Name] = raw == "true"
			continue
		}
		if raw == "" {
			if f.Required {
				errs = append(errs, validation.ValidationError{Field: f.Name, Message: "validation.required"})
			}
			continue
		}

		switch {
		case f.Type == fieldNumber:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				errs = append(errs, validation.ValidationError{Field: f.Name, Message: "validation.number", Value: raw})
				continue
			}
			payload[f.Name] = v
		case f.Type == fieldInt || (f.Type == fieldSelect && f.Numeric):
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				errs = append(errs, validation.ValidationError{Field: f.Name, Message: "validation.number", Value: raw})
				continue
			}
			payload[f.Name] = v
		default:
			payload[f.Name] = raw
		}
	}
	return payload, errs
}

// mountResource registers list, form, create, update and delete routes for res
func mountResource[T any](h *Handler, g *gin.RouterGroup, res *adminResource[T]) {
	base := "/" + res.Name
	g.GET(base, adminList(h, res))
	g.GET(base+"/new", adminNew(h, res))
	g.POST(base, adminCreate(h, res))
	g.GET(base+"/:id/edit", adminEdit(h, res))
	g.POST(base+"/:id", adminUpdate(h, res))
	g.POST(base+"/:id/delete", adminDelete(h, res))
	if res.Images != nil {
		mountGallery(h, g, res)
	}
}

func adminList[T any](h *Handler, res *adminResource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := res.Resource(h.api).List(c.Request.Context())
		if err != nil {
			h.fail(c, err)
			return
		}
		h.render(c, http.StatusOK, "admin_list", gin.H{
			"Resource": res.adminMeta,
			"Rows":     toRows(items),
		})
	}
}

func (h *Handler) adminForm(c *gin.Context, status int, meta adminMeta, action string, values map[string]any, options map[string][]option, errs validation.Errors) {
	h.render(c, status, "admin_form", gin.H{
		"Resource": meta,
		"Action":   action,
		"Values":   values,
		"Options":  options,
		"Errors":   errs.ByField(),
	})
}

func loadOptions[T any](h *Handler, c *gin.Context, res *adminResource[T]) (map[string][]option, bool) {
	if res.Options == nil {
		return map[string][]option{}, true
	}
	options, err := res.Options(c.Request.Context(), h.api)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return options, true
}

func adminNew[T any](h *Handler, res *adminResource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		options, ok := loadOptions(h, c, res)
		if !ok {
			return
		}
		h.adminForm(c, http.StatusOK, res.adminMeta, res.Path(), map[string]any{}, options, nil)
	}
}

func adminEdit[T any](h *Handler, res *adminResource[T]) gin.HandlerFunc {
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
		options, ok := loadOptions(h, c, res)
		if !ok {
			return
		}
		h.adminForm(c, http.StatusOK, res.adminMeta, fmt.Sprintf("%s/%d", res.Path(), id), toRow(item), options, nil)
	}
}

func (res *adminResource[T]) payload(h *Handler, c *gin.Context, creating bool) (any, validation.Errors) {
	if res.Payload != nil {
		return res.Payload(h, c, creating)
	}
	return formPayload(c, res.Fields)
}

// save validates the form, sends it and goes back to the list, which refetches
func adminSave[T any](h *Handler, res *adminResource[T], c *gin.Context, id int64) {
	creating := id == 0
	action := res.Path()
	if !creating {
		action = fmt.Sprintf("%s/%d", res.Path(), id)
	}

	body, errs := res.payload(h, c, creating)
	if len(errs) > 0 {
		options, ok := loadOptions(h, c, res)
		if !ok {
			return
		}
		h.adminForm(c, http.StatusUnprocessableEntity, res.adminMeta, action, formValues(c, res.Fields), options, errs)
		return
	}

	ctx := c.Request.Context()
	var (
		item *T
		err  error
	)
	if creating {
		item, err = res.Resource(h.api).Create(ctx, body)
	} else {
		item, err = res.Resource(h.api).Update(ctx, id, body)
	}
	if err != nil {
		back := res.Path() + "/new"
		if !creating {
			back = action + "/edit"
		}
		h.failAction(c, err, back)
		return
	}

	if res.AfterSave != nil && item != nil {
		res.AfterSave(h, item)
	}
	h.alert(c, modal.KindSuccess, "success.saved")
	c.Redirect(http.StatusSeeOther, res.Path())
}

func adminCreate[T any](h *Handler, res *adminResource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminSave(h, res, c, 0)
	}
}

func adminUpdate[T any](h *Handler, res *adminResource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			h.notFound(c)
			return
		}
		adminSave(h, res, c, id)
	}
}

// adminDelete never deletes directly; it opens the confirm dialog
func adminDelete[T any](h *Handler, res *adminResource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			h.notFound(c)
			return
		}
		resource := res.Resource(h.api)
		h.confirm(c, "confirm.delete", "success.deleted", res.Path(), func(ctx context.Context) error {
			return resource.Delete(ctx, id)
		})
	}
}

// AdminDashboard handles GET /admin
func (h *Handler) AdminDashboard(c *gin.Context) {
	h.render(c, http.StatusOK, "admin_dashboard", gin.H{"Resources": h.adminMetas()})
}
