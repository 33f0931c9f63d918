// Package service answers every query type over one immutable Dataset. NotFound
// and InvalidInput come back as typed errors that Payload turns into the
// message payloads of the presentation layer.
package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/AduSharma/CrickStatX/internal/aggregator"
	"github.com/AduSharma/CrickStatX/internal/compare"
	"github.com/AduSharma/CrickStatX/internal/filter"
	"github.com/AduSharma/CrickStatX/internal/identity"
	"github.com/AduSharma/CrickStatX/internal/model"
	"github.com/AduSharma/CrickStatX/internal/ranker"
)

// NotFoundError reports a query that matched nothing.
type NotFoundError struct{ Msg string }

func (e *NotFoundError) Error() string { return e.Msg }

// InvalidInputError reports a query of the wrong shape.
type InvalidInputError struct{ Msg string }

func (e *InvalidInputError) Error() string { return e.Msg }

// Payload converts a query error into its boundary payload.
func Payload(err error) any {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return model.Message{Message: nf.Msg}
	}
	return model.ErrorPayload{Error: err.Error()}
}

// Service holds the dataset. It is safe for concurrent use because no query
// writes to the dataset.
type Service struct {
	ds model.Dataset
}

// New returns a Service over ds. ds must not be modified afterwards.
func New(ds model.Dataset) *Service {
	return &Service{ds: ds}
}

// Dataset returns the underlying dataset.
func (s *Service) Dataset() model.Dataset { return s.ds }

// Profile returns the raw matched rows for name.
func (s *Service) Profile(name string) (model.ProfilePayload, error) {
	res := identity.Match(s.ds, name)
	if res.Empty() {
		return model.ProfilePayload{}, &NotFoundError{fmt.Sprintf("No data found for player: %s", model.TitleCase(res.Query.Text))}
	}
	return aggregator.Profile(res), nil
}

// Analyze returns one narrative per player matched by name.
func (s *Service) Analyze(name string) ([]model.PlayerSummary, error) {
	res := identity.Match(s.ds, name)
	if res.Empty() {
		return nil, notFound(res)
	}
	return aggregator.Analyze(res), nil
}

// Tags returns role and format tags per player matched by name.
func (s *Service) Tags(name string) ([]model.PlayerTags, error) {
	res := identity.Match(s.ds, name)
	if res.Empty() {
		return nil, notFound(res)
	}
	return aggregator.Tags(res), nil
}

// Compare compares the players named in a comma-separated list of two names.
func (s *Service) Compare(players string) (model.Comparison, error) {
	return s.CompareNames(strings.Split(players, ","))
}

// CompareNames compares exactly two player queries.
func (s *Service) CompareNames(names []string) (model.Comparison, error) {
	out, err := compare.Compare(s.ds, names)
	switch {
	case err == nil:
		return out, nil
	case errors.Is(err, compare.ErrArity):
		return out, &InvalidInputError{"Please provide exactly TWO players for comparison."}
	case errors.Is(err, compare.ErrNoMatch):
		return out, &NotFoundError{"No matching players found."}
	case errors.Is(err, compare.ErrSamePlayer):
		return out, &InvalidInputError{"Both names resolve to the same player; provide two different players."}
	default:
		return out, err
	}
}

// TopPerformers returns the leaderboard for a role and format.
func (s *Service) TopPerformers(format, role string, limit int) (model.Leaderboard, error) {
	r, err := ranker.ParseRole(role)
	if err != nil {
		return model.Leaderboard{}, &InvalidInputError{"Invalid role. Choose from batsman, bowler, allrounder, wk"}
	}
	f, ok := model.ParseFormat(format)
	if !ok {
		return model.Leaderboard{}, &InvalidInputError{"Invalid format. Choose from test, odi, t20"}
	}
	rows, err := ranker.Top(s.ds, r, f, limit)
	if err != nil {
		if errors.Is(err, ranker.ErrMissingTable) {
			return model.Leaderboard{}, &NotFoundError{fmt.Sprintf("No %s data available for %s.", strings.ToLower(string(f)), r)}
		}
		return model.Leaderboard{}, err
	}
	return model.Leaderboard{Role: string(r), Format: strings.ToLower(string(f)), TopPerformers: rows}, nil
}

// PlayerFilter lists players by team, era and format.
func (s *Service) PlayerFilter(q filter.Query) (model.PlayerList, error) {
	if strings.TrimSpace(q.Team) == "" {
		return model.PlayerList{}, &InvalidInputError{"team is required"}
	}
	out, err := filter.Players(s.ds, q)
	if errors.Is(err, filter.ErrSortBy) {
		return out, &InvalidInputError{"Invalid sort_by. Choose from runs, wkts, st"}
	}
	return out, err
}

// Players lists every distinct player name, title-cased and sorted.
func (s *Service) Players() []string {
	set := make(map[string]struct{})
	for _, t := range s.ds.Tables() {
		for _, r := range t.Rows {
			if name := strings.TrimSpace(r[model.ColPlayer]); name != "" {
				set[model.TitleCase(name)] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Files lists every loaded table as "<Category>/<file>".
func (s *Service) Files() []string {
	out := []string{}
	for _, t := range s.ds.Tables() {
		out = append(out, string(t.Category)+"/"+t.File)
	}
	return out
}

func notFound(res identity.Result) error {
	return &NotFoundError{fmt.Sprintf("No player found for '%s'", res.Query.Text)}
}
