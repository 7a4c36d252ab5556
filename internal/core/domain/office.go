package domain

// Office belongs to exactly one User via UserID.
type Office struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Image   string `json:"image,omitempty"`
	UserID  string `json:"userId"`
}
