package aggregator

import (
	"github.com/AduSharma/CrickStatX/internal/identity"
	"github.com/AduSharma/CrickStatX/internal/model"
)

// Profile lists the raw matched rows per category and file. Integer-zero
// cells are blanked, and a column left with no value in a table is dropped.
func Profile(res identity.Result) model.ProfilePayload {
	out := model.ProfilePayload{
		Player:  model.TitleCase(res.Query.Text),
		Profile: make(map[model.Category]map[string][]model.Record, len(model.Categories)),
	}
	for _, c := range model.Categories {
		out.Profile[c] = make(map[string][]model.Record)
	}
	for _, g := range res.Groups {
		cols := g.Hits[0].Table.Columns
		var live []string
		for _, c := range cols {
			for _, h := range g.Hits {
				if v, ok := h.Row().Get(c); ok && !isZeroCount(v) {
					live = append(live, c)
					break
				}
			}
		}
		records := make([]model.Record, 0, len(g.Hits))
		for _, h := range g.Hits {
			var r model.Record
			for _, c := range live {
				if v, ok := h.Row().Get(c); ok && !isZeroCount(v) {
					r.Set(c, v)
				}
			}
			records = append(records, r)
		}
		out.Profile[g.Category][g.File] = records
	}
	return out
}

func isZeroCount(v string) bool {
	return model.IsDigits(v) && model.Int(v) == 0
}
