package models

import (
	"time"
)

// Place is a sightseeing location
type Place struct {
	ID          int64     `json:"id" form:"-"`
	Name        string    `json:"name" form:"name"`
	Description string    `json:"description" form:"description"`
	Address     string    `json:"address" form:"address"`
	City        string    `json:"city" form:"city"`
	Latitude    float64   `json:"latitude" form:"latitude"`
	Longitude   float64   `json:"longitude" form:"longitude"`
	ImageURL    string    `json:"image_url" form:"image_url"`
	Tags        []Tag     `json:"tags,omitempty" form:"-"`
	CreatedAt   time.Time `json:"created_at" form:"-"`
	UpdatedAt   time.Time `json:"updated_at" form:"-"`
}

// Tour is a bookable guided tour
type Tour struct {
	ID          int64     `json:"id" form:"-"`
	Name        string    `json:"name" form:"name"`
	Description string    `json:"description" form:"description"`
	ImageURL    string    `json:"image_url" form:"image_url"`
	Price       float64   `json:"price" form:"price"`
	Duration    string    `json:"duration" form:"duration"`
	MaxSpots    int       `json:"max_spots" form:"max_spots"`
	UserID      int64     `json:"user_id,omitempty" form:"-"`
	IsPublic    bool      `json:"is_public" form:"is_public"`
	CreatedAt   time.Time `json:"created_at" form:"-"`
	UpdatedAt   time.Time `json:"updated_at" form:"-"`
}

// TourStep is one ordered stop of a tour
type TourStep struct {
	ID          int64  `json:"id" form:"-"`
	TourID      int64  `json:"tour_id" form:"tour_id"`
	PlaceID     int64  `json:"place_id" form:"place_id"`
	StepOrder   int    `json:"step_order" form:"step_order"`
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	StartTime   string `json:"start_time,omitempty" form:"start_time"`
	Place       *Place `json:"place,omitempty" form:"-"`
}

// ArticleStatus is the moderation state of an article
type ArticleStatus string

const (
	ArticleStatusPending   ArticleStatus = "pending"
	ArticleStatusPublished ArticleStatus = "published"
	ArticleStatusRejected  ArticleStatus = "rejected"
)

// Article is a user-written travel article
type Article struct {
	ID         int64         `json:"id" form:"-"`
	Title      string        `json:"title" form:"title"`
	Content    string        `json:"content" form:"content"`
	ImageURL   string        `json:"image_url" form:"image_url"`
	UserID     int64         `json:"user_id" form:"-"`
	AuthorName string        `json:"author_name,omitempty" form:"-"`
	Status     ArticleStatus `json:"status,omitempty" form:"status"`
	LikeCount  int           `json:"like_count" form:"-"`
	CreatedAt  time.Time     `json:"created_at" form:"-"`
	UpdatedAt  time.Time     `json:"updated_at" form:"-"`
}

// Hotel is an accommodation listing with an image gallery
type Hotel struct {
	ID          int64     `json:"id" form:"-"`
	Name        string    `json:"name" form:"name"`
	Description string    `json:"description" form:"description"`
	Address     string    `json:"address" form:"address"`
	City        string    `json:"city" form:"city"`
	PriceRange  string    `json:"price_range" form:"price_range"`
	Phone       string    `json:"phone" form:"phone"`
	Website     string    `json:"website" form:"website"`
	ImageURL    string    `json:"image_url" form:"image_url"`
	Images      []Image   `json:"images,omitempty" form:"-"`
	CreatedAt   time.Time `json:"created_at" form:"-"`
	UpdatedAt   time.Time `json:"updated_at" form:"-"`
}

// Restaurant is a dining listing with an image gallery and menus
type Restaurant struct {
	ID          int64     `json:"id" form:"-"`
	Name        string    `json:"name" form:"name"`
	Description string    `json:"description" form:"description"`
	Address     string    `json:"address" form:"address"`
	City        string    `json:"city" form:"city"`
	Cuisine     string    `json:"cuisine" form:"cuisine"`
	Phone       string    `json:"phone" form:"phone"`
	ImageURL    string    `json:"image_url" form:"image_url"`
	Images      []Image   `json:"images,omitempty" form:"-"`
	CreatedAt   time.Time `json:"created_at" form:"-"`
	UpdatedAt   time.Time `json:"updated_at" form:"-"`
}

// Menu groups menu items of a restaurant
type Menu struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurant_id"`
	Name         string `json:"name"`
}

// MenuItem is a single dish
type MenuItem struct {
	ID          int64   `json:"id"`
	MenuID      int64   `json:"menu_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}
