package dto

// Interval is a [start, end) pair of "HH:MM:SS" strings.
type Interval [2]string

type Member struct {
	Name          string     `json:"name"`
	WorkIntervals []Interval `json:"work_intervals"`
}

type Team struct {
	Members []Member `json:"members"`
}

type AddMemberRequest struct {
	Name          string     `json:"name" binding:"required"`
	WorkIntervals [][]string `json:"work_intervals" binding:"required"`
}

type OnlineResponse struct {
	At      string   `json:"at"`
	Members []string `json:"members"`
}
