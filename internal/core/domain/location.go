package domain

import "time"

// CostOfLiving is the coarse living-cost bracket attached to a location.
type CostOfLiving string

const (
	CostLow    CostOfLiving = "LOW"
	CostMedium CostOfLiving = "MEDIUM"
	CostHigh   CostOfLiving = "HIGH"
)

// IsValid reports whether c is one of the known brackets.
func (c CostOfLiving) IsValid() bool {
	switch c {
	case CostLow, CostMedium, CostHigh:
		return true
	}
	return false
}

// Location is a crowdsourced point of interest on the city map.
type Location struct {
	ID                string       `json:"id" gorm:"primaryKey;size:36"`
	Name              string       `json:"name"`
	Latitude          float64      `json:"latitude"`
	Longitude         float64      `json:"longitude"`
	Type              string       `json:"type"`
	Pollution         string       `json:"pollution"`
	Safety            string       `json:"safety"`
	TouristAttraction bool         `json:"touristAttraction"`
	CrimeRate         float64      `json:"crimeRate"`
	CostOfLiving      CostOfLiving `json:"costOfLiving"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}
