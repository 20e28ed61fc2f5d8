package models

// Tag labels places
type Tag struct {
	ID   int64  `json:"id" form:"-"`
	Name string `json:"name" form:"name"`
}

// PlaceTag is the join record linking a place to a tag
type PlaceTag struct {
	ID      int64 `json:"id" form:"-"`
	PlaceID int64 `json:"place_id" form:"place_id"`
	TagID   int64 `json:"tag_id" form:"tag_id"`
}
