package nominatim

type reverseResponse struct {
	DisplayName string  `json:"display_name"`
	Address     address `json:"address"`
	Error       string  `json:"error"`
}

type address struct {
	Quarter       string `json:"quarter"`
	Neighbourhood string `json:"neighbourhood"`
	City          string `json:"city"`
	Town          string `json:"town"`
	Region        string `json:"region"`
	State         string `json:"state"`
	Country       string `json:"country"`
}
