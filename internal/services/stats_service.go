package services

import (
	"sort"
	"strings"

	"railticket/internal/catalog"
	"railticket/internal/domain"
	"railticket/internal/ledger"
)

// GroupCount is one bar of the booking history chart.
type GroupCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// StatsService aggregates the ledger for the history views.
type StatsService struct {
	Catalog *catalog.Catalog
	Ledger  *ledger.Ledger
}

// statsTopN caps the result; the history chart only has room for the
// busiest groups.
const statsTopN = 8

// CountBookings groups ledger rows by train, route, date or status
// and returns counts sorted busiest first (ties by label). Everything
// is recomputed from the store on each call.
func (s StatsService) CountBookings(groupBy string) ([]GroupCount, error) {
	groupBy = strings.ToLower(strings.TrimSpace(groupBy))
	if groupBy == "" {
		groupBy = "train"
	}
	switch groupBy {
	case "train", "route", "date", "status":
	default:
		return nil, domain.ValidationError{Field: "group_by", Msg: "must be one of train, route, date, status"}
	}

	all, err := s.Ledger.ListAll()
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, b := range all {
		var label string
		switch groupBy {
		case "train":
			label = b.TrainID
			if t, err := s.Catalog.TrainByID(b.TrainID); err == nil {
				label = t.ID + " " + t.Name
			}
		case "route":
			label = b.TrainID
			if t, err := s.Catalog.TrainByID(b.TrainID); err == nil {
				label = s.Catalog.RouteLabel(t)
			}
		case "date":
			label = b.TravelDate
		case "status":
			label = b.Status
		}
		if label == "" {
			continue
		}
		counts[label]++
	}

	out := make([]GroupCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, GroupCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	if len(out) > statsTopN {
		out = out[:statsTopN]
	}
	return out, nil
}
