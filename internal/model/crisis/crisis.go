package crisis

// Crisis is a reported incident pinned to a map coordinate.
// Cords is a [longitude, latitude] pair.
type Crisis struct {
	ID       string    `json:"id"`
	Desc     string    `json:"desc"`
	FullName string    `json:"fullName"`
	Time     string    `json:"time"`
	Date     string    `json:"date"`
	Cords    []float64 `json:"cords"`
}
