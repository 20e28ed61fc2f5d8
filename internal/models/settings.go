package models

// FooterSettings is the site-wide footer content managed by admins
type FooterSettings struct {
	CompanyName string `json:"company_name" form:"company_name"`
	Address     string `json:"address" form:"address"`
	Phone       string `json:"phone" form:"phone"`
	Email       string `json:"email" form:"email"`
	Facebook    string `json:"facebook" form:"facebook"`
	Instagram   string `json:"instagram" form:"instagram"`
	Copyright   string `json:"copyright" form:"copyright"`
}

// GeoResult is a geocoding search hit
type GeoResult struct {
	DisplayName string  `json:"display_name"`
	City        string  `json:"city,omitempty"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lon"`
}
