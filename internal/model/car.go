package model

// CarModel represents a resource store row.
type CarModel struct {
	ID           int64   `json:"id"`
	Manufacturer string  `json:"manufacturer"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Price        float64 `json:"price"`
	ImagePath    string  `json:"image_path,omitempty"`
}

// CarModelRequest carries the four mutable fields used by create and full update.
type CarModelRequest struct {
	Manufacturer string  `json:"manufacturer"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Price        float64 `json:"price"`
}

// InfoResponse is the body returned by the image endpoints.
type InfoResponse struct {
	Info string `json:"info"`
}

// AckResponse is the body returned by DELETE /car_models/{id}.
type AckResponse struct {
	OK bool `json:"ok"`
}
