package model

// ---- Boundary payloads ----
//
// Every query type answers with one of these shapes. NotFound and
// InvalidInput are payloads too, never Go errors.

// Message is the NotFound payload.
type Message struct {
	Message string `json:"message"`
}

// ErrorPayload is the InvalidInput payload.
type ErrorPayload struct {
	Error string `json:"error"`
}

// ProfilePayload lists every matched row, grouped by category and file.
type ProfilePayload struct {
	Player  string                           `json:"player"`
	Profile map[Category]map[string][]Record `json:"profile"`
}

// PlayerSummary is one narrative produced by the analyze query.
type PlayerSummary struct {
	Player  string `json:"player"`
	Summary string `json:"summary"`
}

// PlayerTags is one tag set produced by the tags query.
type PlayerTags struct {
	Player string   `json:"player"`
	Tags   []string `json:"tags"`
}

// StatCell holds one stat of one (category, format) for every compared player.
type StatCell map[string]string

// Comparison is the comparator payload.
type Comparison struct {
	Players       []string                                    `json:"players"`
	Comparison    map[Category]map[Format]map[string]StatCell `json:"comparison"`
	WinnerSummary WinnerSummary                               `json:"winner_summary"`
}

// WinnerSummary names the comparison winner and explains the result.
type WinnerSummary struct {
	Winner  string `json:"winner"`
	Summary string `json:"summary"`
}

// Leaderboard is the top-performers payload.
type Leaderboard struct {
	Role          string   `json:"role"`
	Format        string   `json:"format"`
	TopPerformers []Record `json:"top_performers"`
}

// PlayerList is the team/era filter payload.
type PlayerList struct {
	Team    string   `json:"team"`
	Era     string   `json:"era,omitempty"`
	Format  string   `json:"format,omitempty"`
	Players []Record `json:"players"`
}
