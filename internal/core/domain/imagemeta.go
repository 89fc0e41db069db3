package domain

import "time"

// ImageMetadata describes an uploaded city image. Labels start empty and are
// filled in asynchronously by the AI labeling pipeline.
type ImageMetadata struct {
	ID          string    `json:"id"`
	LocationID  string    `json:"locationId"`
	ImageURL    string    `json:"imageURL"`
	Description string    `json:"description"`
	Labels      []string  `json:"labels"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
