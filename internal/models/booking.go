package models

import (
	"time"
)

// BookingStatus is the backend-driven booking state
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// bookingTransitions lists the transitions the UI offers; the backend remains authoritative
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:  {BookingStatusApproved, BookingStatusRejected, BookingStatusCancelled},
	BookingStatusApproved: {BookingStatusCancelled},
}

// CanTransition reports whether the UI should offer moving a booking from one status to another
func (s BookingStatus) CanTransition(to BookingStatus) bool {
	for _, next := range bookingTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Booking is a tour reservation
type Booking struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"user_id"`
	TourID    int64         `json:"tour_id"`
	UserName  string        `json:"user_name,omitempty"`
	TourName  string        `json:"tour_name,omitempty"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date,omitempty"`
	Spots     int           `json:"spots"`
	Note      string        `json:"note,omitempty"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// BookingRequest is the payload a user submits to book a tour
type BookingRequest struct {
	TourID    int64  `json:"tour_id" form:"-"`
	StartDate string `json:"start_date" form:"start_date"`
	Spots     int    `json:"spots" form:"spots"`
	Note      string `json:"note,omitempty" form:"note"`
}
