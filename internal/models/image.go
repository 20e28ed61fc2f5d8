package models

// Image describes one gallery image of a hotel or restaurant
type Image struct {
	ID        int64  `json:"id,omitempty"`
	URL       string `json:"image_url"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}
