package domain

import "time"

// Review is a user opinion on a location. UserID records the creator and is
// the only field consulted by the ownership check on mutation/deletion.
type Review struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	UserID     string    `json:"userId" gorm:"index;size:36"`
	LocationID string    `json:"locationId" gorm:"index;size:36"`
	ReviewText string    `json:"reviewText"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// OwnedBy reports whether the review belongs to the given principal.
func (r *Review) OwnedBy(userID string) bool {
	return r.UserID == userID
}
