package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// ServiceType is the fixed top-level kind of an emergency service.
type ServiceType string

const (
	ServiceTypeMedical    ServiceType = "Medical"
	ServiceTypePolice     ServiceType = "Police"
	ServiceTypeFirehouse  ServiceType = "Firehouse"
	ServiceTypeRescue     ServiceType = "Rescue"
	ServiceTypePolitician ServiceType = "Politician"
)

func (t ServiceType) String() string { return string(t) }

func (t ServiceType) IsValid() bool {
	_, ok := serviceCategories[t]
	return ok
}

// Categories returns the allowed categories for the type, in display order.
func (t ServiceType) Categories() []string {
	return slices.Clone(serviceCategories[t])
}

// AllowsCategory reports whether category belongs to the type.
func (t ServiceType) AllowsCategory(category string) bool {
	return slices.Contains(serviceCategories[t], category)
}

var serviceCategories = map[ServiceType][]string{
	ServiceTypeMedical:    {"Hospital", "Clinic", "Pharmacy", "Mental Health"},
	ServiceTypePolice:     {"Police Station", "Highway Patrol"},
	ServiceTypeFirehouse:  {"Fire Station"},
	ServiceTypeRescue:     {"Ambulance", "Disaster Response", "Search and Rescue"},
	ServiceTypePolitician: {"Barangay", "City Government", "Regional Government"},
}

// ServiceTypes lists every service type in display order.
func ServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceTypeMedical,
		ServiceTypePolice,
		ServiceTypeFirehouse,
		ServiceTypeRescue,
		ServiceTypePolitician,
	}
}

// Service is a single directory entry.
type Service struct {
	ID             int64
	Type           ServiceType
	Name           string
	Category       string
	Classification *string
	Description    *string
	ContactNo      string
	Address        *string
	Notes          *string
	Lat            *float64
	Lon            *float64
	Barangay       *string
	City           *string
	Region         *string
	Verified       bool
	SubmittedBy    *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Point returns the service coordinates, or false if either is missing.
func (s *Service) Point() (Point, bool) {
	if s.Lat == nil || s.Lon == nil {
		return Point{}, false
	}
	return Point{Lat: *s.Lat, Lon: *s.Lon}, true
}

// DialNumber returns the contact number reduced to digits for a tel: link.
func (s *Service) DialNumber() string {
	return DigitsOnly(s.ContactNo)
}

// RankedService is a service annotated with its distance from an origin.
// DistanceKm is nil when the service has no coordinates.
type RankedService struct {
	Service
	DistanceKm *float64
}

// Report flags a directory entry as inaccurate.
type Report struct {
	ID         int64
	ServiceID  int64
	ReportedBy *uuid.UUID
	Reason     *string
	CreatedAt  time.Time

	// ServiceName is filled by listings that join the reported service.
	ServiceName string
}

// ChangeType labels an entry in the service history.
type ChangeType string

const (
	ChangeTypeCreated    ChangeType = "created"
	ChangeTypeVerified   ChangeType = "verified"
	ChangeTypeUnverified ChangeType = "unverified"
)

func (c ChangeType) String() string { return string(c) }

// HistoryRecord is an append-only audit row for a service.
type HistoryRecord struct {
	ID           int64
	ServiceID    int64
	UserID       uuid.UUID
	ChangeType   ChangeType
	DateModified time.Time
}

// SearchFilter holds the optional parameters of a directory search.
// Empty strings mean "no filter".
type SearchFilter struct {
	Type           string
	Name           string
	Region         string
	Category       string
	Classification string
}

// FilterOptions holds the distinct values offered by the search form.
type FilterOptions struct {
	Regions         []string `json:"regions"`
	Categories      []string `json:"categories"`
	Classifications []string `json:"classifications"`
	Types           []string `json:"types"`
}
