package domain

import "time"

// FootpathAssessment is a crowdsourced walkability report for a location,
// pairing citizen feedback with an optional AI-generated assessment.
type FootpathAssessment struct {
	ID              string    `json:"id" gorm:"primaryKey;size:36"`
	LocationID      string    `json:"locationId" gorm:"index;size:36"`
	ImageURL        string    `json:"imageURL"`
	CitizenFeedback string    `json:"citizenFeedback"`
	AIAssessment    string    `json:"aiAssessment"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
