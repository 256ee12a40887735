package dto

type ConvertResponse struct {
	UTC    string `json:"utc"`
	Offset string `json:"offset"`
	Local  string `json:"local"`
}

type Block struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type MemberSchedule struct {
	Name   string  `json:"name"`
	Online bool    `json:"online"`
	Blocks []Block `json:"blocks"`
}

// ScheduleResponse is the team schedule re-expressed in a display offset.
type ScheduleResponse struct {
	Offset  string           `json:"offset"`
	Now     string           `json:"now"`
	Members []MemberSchedule `json:"members"`
}
