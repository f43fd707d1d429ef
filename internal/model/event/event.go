package event

import "time"

// Event is a volunteer event hosted by a user.
type Event struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Date           time.Time `json:"date"`
	Location       string    `json:"location"`
	SkillsRequired string    `json:"skillsRequired,omitempty"`
	Volunteers     []string  `json:"volunteers"`
	Host           string    `json:"host"`
}
