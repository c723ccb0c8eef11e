package rest

import (
	"time"

	"github.com/mybayani/emergency-backend/internal/domain"
	"github.com/mybayani/emergency-backend/internal/service/auth"
)

type callResponse struct {
	ID        string    `json:"id"`
	Person    string    `json:"person"`
	Service   string    `json:"service"`
	Number    string    `json:"number"`
	CreatedAt time.Time `json:"created_at"`
}

func toCallResponse(c *domain.Call) callResponse {
	return callResponse{
		ID:        c.ID,
		Person:    c.Person,
		Service:   c.Service,
		Number:    c.Number,
		CreatedAt: c.CreatedAt,
	}
}

type serviceResponse struct {
	ID             int64     `json:"id"`
	Type           string    `json:"type"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Classification *string   `json:"classification"`
	Description    *string   `json:"description"`
	Contact        string    `json:"contact"`
	DialNumber     string    `json:"dial_number"`
	Address        *string   `json:"address"`
	Notes          *string   `json:"notes"`
	Lat            *float64  `json:"lat"`
	Lon            *float64  `json:"lon"`
	Barangay       *string   `json:"barangay"`
	City           *string   `json:"city"`
	Region         *string   `json:"region"`
	Verified       bool      `json:"verified"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type rankedServiceResponse struct {
	serviceResponse
	DistanceKm *float64 `json:"distance_km"`
}

func toServiceResponse(s *domain.Service) serviceResponse {
	return serviceResponse{
		ID:             s.ID,
		Type:           s.Type.String(),
		Name:           s.Name,
		Category:       s.Category,
		Classification: s.Classification,
		Description:    s.Description,
		Contact:        s.ContactNo,
		DialNumber:     s.DialNumber(),
		Address:        s.Address,
		Notes:          s.Notes,
		Lat:            s.Lat,
		Lon:            s.Lon,
		Barangay:       s.Barangay,
		City:           s.City,
		Region:         s.Region,
		Verified:       s.Verified,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toRankedResponses(rows []domain.RankedService) []rankedServiceResponse {
	out := make([]rankedServiceResponse, len(rows))
	for i := range rows {
		out[i] = rankedServiceResponse{
			serviceResponse: toServiceResponse(&rows[i].Service),
			DistanceKm:      rows[i].DistanceKm,
		}
	}
	return out
}

type catalogEntryResponse struct {
	Type       string   `json:"type"`
	Categories []string `json:"categories"`
}

type reportResponse struct {
	ID          int64     `json:"id"`
	ServiceID   int64     `json:"service_id"`
	ServiceName string    `json:"service_name,omitempty"`
	ReportedBy  *string   `json:"reported_by"`
	Reason      *string   `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

func toReportResponse(r *domain.Report) reportResponse {
	var by *string
	if r.ReportedBy != nil {
		s := r.ReportedBy.String()
		by = &s
	}
	return reportResponse{
		ID:          r.ID,
		ServiceID:   r.ServiceID,
		ServiceName: r.ServiceName,
		ReportedBy:  by,
		Reason:      r.Reason,
		CreatedAt:   r.CreatedAt,
	}
}

type reportPageResponse struct {
	Reports []reportResponse `json:"reports"`
	Total   int              `json:"total"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	User        userResponse `json:"user"`
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken: result.AccessToken,
		User:        toUserResponse(result.User),
	}
}
