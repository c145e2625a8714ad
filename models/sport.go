// File: /models/sport.go
package models

// Sport is a fixed catalog entry. Events store the code, callers
// resolve the label.
type Sport struct {
	ID    int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Label string `json:"label" gorm:"not null;size:50"`
}

func DefaultSports() []Sport {
	return []Sport{
		{ID: 1, Label: "Cricket"},
		{ID: 2, Label: "Football"},
		{ID: 3, Label: "Basketball"},
		{ID: 4, Label: "Tennis"},
		{ID: 5, Label: "Badminton"},
		{ID: 6, Label: "Volleyball"},
		{ID: 7, Label: "Hockey"},
	}
}

// SportLabel resolves a sport code to its display label. Unknown codes
// return an empty string.
func SportLabel(code int) string {
	for _, sport := range DefaultSports() {
		if sport.ID == code {
			return sport.Label
		}
	}
	return ""
}
