package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RegionalStructure is one administrative region of an event location,
// ordered from the most specific region to the least specific one.
type RegionalStructure struct {
	Name string `bson:"name" json:"name"`
	Type string `bson:"type" json:"type"`
}

type Location struct {
	Label             string              `bson:"label,omitempty" json:"label,omitempty"`
	Name              string              `bson:"name,omitempty" json:"name,omitempty"`
	Address           string              `bson:"location,omitempty" json:"location,omitempty"`
	Lat               float64             `bson:"lat,omitempty" json:"lat,omitempty"`
	Lon               float64             `bson:"lon,omitempty" json:"lon,omitempty"`
	Zip               string              `bson:"zip,omitempty" json:"zip,omitempty"`
	RegionalStructure []RegionalStructure `bson:"regionalStructure,omitempty" json:"regionalStructure,omitempty"`
}

// Event lives in exactly one of the WaitingEvents, Events or RejectedEvents
// collections; which collection it sits in is its moderation state.
// ApprovedBy/ApprovedAt are set on approved events, ReviewedBy/ReviewedAt/Reason
// on rejected ones.
type Event struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	Category        string    `bson:"category,omitempty" json:"category,omitempty"`
	Image           string    `bson:"image,omitempty" json:"image,omitempty"`
	Date            string    `bson:"date" json:"date"` // d-m-yyyy
	Time            string    `bson:"time,omitempty" json:"time,omitempty"`
	Location        *Location `bson:"location,omitempty" json:"location,omitempty"`
	AgeMin          int       `bson:"ageMin,omitempty" json:"ageMin,omitempty"`
	AgeMax          int       `bson:"ageMax,omitempty" json:"ageMax,omitempty"`
	MaxParticipants int       `bson:"maxParticipants" json:"maxParticipants"`
	Participants    []string  `bson:"participants" json:"participants"`
	CreatedBy       string    `bson:"createdBy" json:"createdBy"`
	CreatedDate     string    `bson:"createdDate,omitempty" json:"createdDate,omitempty"`
	CreatedTime     string    `bson:"createdTime,omitempty" json:"createdTime,omitempty"`
	ApprovedBy      string    `bson:"approvedBy,omitempty" json:"approvedBy,omitempty"`
	ApprovedAt      string    `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	ReviewedBy      string    `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	ReviewedAt      string    `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
	Reason          string    `bson:"reason,omitempty" json:"reason,omitempty"`
}

// HasParticipant reports whether userID is already on the roster.
func (e *Event) HasParticipant(userID string) bool {
	for _, p := range e.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// EventPatch carries the fields of an approved event that may be overwritten.
// Nil pointers leave the stored value untouched.
type EventPatch struct {
	Title           *string   `json:"title,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Category        *string   `json:"category,omitempty"`
	Image           *string   `json:"image,omitempty"`
	Date            *string   `json:"date,omitempty"`
	Time            *string   `json:"time,omitempty"`
	Location        *Location `json:"location,omitempty"`
	AgeMin          *int      `json:"ageMin,omitempty"`
	AgeMax          *int      `json:"ageMax,omitempty"`
	MaxParticipants *int      `json:"maxParticipants,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p *EventPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil &&
		p.Image == nil && p.Date == nil && p.Time == nil && p.Location == nil &&
		p.AgeMin == nil && p.AgeMax == nil && p.MaxParticipants == nil
}

// ParseEventDate parses the textual day-month-year event date ("4-7-2025").
func ParseEventDate(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: event date %q", ErrInvalidInput, s)
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: event date %q", ErrInvalidInput, s)
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: event date %q", ErrInvalidInput, s)
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: event date %q", ErrInvalidInput, s)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: event date %q", ErrInvalidInput, s)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}
