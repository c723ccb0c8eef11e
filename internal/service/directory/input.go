package directory

import (
	"github.com/mybayani/emergency-backend/internal/domain"
)

// AddServiceInput is a community submission of a new directory entry.
type AddServiceInput struct {
	Type           string   `json:"type"           validate:"required,service_type"`
	Name           string   `json:"name"           validate:"required,min=2,max=200"`
	Category       string   `json:"category"       validate:"required"`
	Classification string   `json:"classification" validate:"max=100"`
	Description    string   `json:"description"    validate:"max=1000"`
	ContactNo      string   `json:"contact"        validate:"required,min=7,max=50"`
	Address        string   `json:"address"        validate:"max=300"`
	Notes          string   `json:"notes"          validate:"max=1000"`
	Barangay       string   `json:"barangay"       validate:"max=100"`
	City           string   `json:"city"           validate:"max=100"`
	Region         string   `json:"region"         validate:"max=100"`
	Lat            *float64 `json:"lat"            validate:"required_with=Lon,omitempty,latitude"`
	Lon            *float64 `json:"lon"            validate:"required_with=Lat,omitempty,longitude"`
}

func (i *AddServiceInput) normalize() {
	i.Type = domain.NormalizeText(i.Type)
	i.Name = domain.NormalizeText(i.Name)
	i.Category = domain.NormalizeText(i.Category)
	i.Classification = domain.NormalizeText(i.Classification)
	i.Description = domain.NormalizeText(i.Description)
	i.ContactNo = domain.NormalizeText(i.ContactNo)
	i.Address = domain.NormalizeText(i.Address)
	i.Notes = domain.NormalizeText(i.Notes)
	i.Barangay = domain.NormalizeText(i.Barangay)
	i.City = domain.NormalizeText(i.City)
	i.Region = domain.NormalizeText(i.Region)
}

// Validate checks the submission the way the submission form does:
// the category must belong to the chosen type.
func (i AddServiceInput) Validate() error {
	err := domain.ValidateStruct(i)
	if err != nil {
		return err
	}
	if !domain.ServiceType(i.Type).AllowsCategory(i.Category) {
		return domain.NewValidationError("category", "not allowed for type")
	}
	return nil
}

// Prepare normalizes and validates the input and converts it to an
// unsaved, unverified service.
func (i AddServiceInput) Prepare() (*domain.Service, error) {
	i.normalize()
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return i.toService(), nil
}

func (i AddServiceInput) toService() *domain.Service {
	return &domain.Service{
		Type:           domain.ServiceType(i.Type),
		Name:           i.Name,
		Category:       i.Category,
		Classification: optional(i.Classification),
		Description:    optional(i.Description),
		ContactNo:      i.ContactNo,
		Address:        optional(i.Address),
		Notes:          optional(i.Notes),
		Lat:            i.Lat,
		Lon:            i.Lon,
		Barangay:       optional(i.Barangay),
		City:           optional(i.City),
		Region:         optional(i.Region),
	}
}

// ReportInput flags a directory entry as inaccurate.
type ReportInput struct {
	ServiceID int64
	Reason    string `json:"reason" validate:"max=500"`
}

// Validate checks the report.
func (i ReportInput) Validate() error {
	if i.ServiceID <= 0 {
		return domain.NewValidationError("service_id", "must be positive")
	}
	return domain.ValidateStruct(i)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
