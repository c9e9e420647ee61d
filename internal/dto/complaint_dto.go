package dto

// CreateComplaintRequest is the submission payload. Photo is base64, with or
// without a data-URL prefix. ReporterEmail is accepted for wire compatibility
// with older clients but always ignored; the token identity wins.
type CreateComplaintRequest struct {
	Description   string   `json:"description"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	Photo         string   `json:"photo"`
	ReporterEmail string   `json:"reporter_email,omitempty"`
}

// ComplaintResponse is the external view of a complaint. CreatedAt is
// rendered as "YYYY-MM-DD HH:MM"; ImageURL is the absolute URL of the
// stored photo.
type ComplaintResponse struct {
	ID            uint     `json:"id"`
	ReporterEmail string   `json:"reporter_email"`
	Description   string   `json:"description"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	ImageURL      string   `json:"image_url"`
	CreatedAt     string   `json:"created_at"`
}

// ValidationErrorResponse lists every missing or invalid field at once.
type ValidationErrorResponse struct {
	Error   bool     `json:"error"`
	Message string   `json:"message"`
	Fields  []string `json:"fields"`
}
