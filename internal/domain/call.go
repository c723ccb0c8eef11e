package domain

import "time"

// Call is a logged emergency call placed from the dialer.
type Call struct {
	ID        string
	Person    string
	Service   string
	Number    string
	CreatedAt time.Time
}

// Contact is a hotline document kept in the document store.
type Contact struct {
	ID             string
	Name           string
	Service        string
	Classification string
	Number         string
	Location       string
}

// ContactSummary is the client-facing view of a Contact.
type ContactSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Purpose        string `json:"purpose"`
	Classification string `json:"classification"`
	WorkingContact string `json:"working_contact"`
	Location       string `json:"location"`
}

// Summary maps the contact to its client view, filling missing
// classification and location with placeholders.
func (c Contact) Summary() ContactSummary {
	return ContactSummary{
		ID:             c.ID,
		Name:           c.Name,
		Purpose:        c.Service,
		Classification: orDefault(c.Classification, "N/A"),
		WorkingContact: c.Number,
		Location:       orDefault(c.Location, Unknown),
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
