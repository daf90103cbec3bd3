package auth

import "github.com/goodnatureofminers/tracechain-gateway/internal/model"

// FilterCollectionEvents narrows a fetched list to what s may see. Farmers see
// the events they collected; labs see events still waiting for a test; every
// other role sees everything. Input order is kept.
func FilterCollectionEvents(s model.Session, events []model.CollectionEvent) []model.CollectionEvent {
	var keep func(model.CollectionEvent) bool
	switch s.Role {
	case model.RoleFarmer:
		keep = func(e model.CollectionEvent) bool { return e.CollectorID == s.IdentityName }
	case model.RoleLab:
		keep = func(e model.CollectionEvent) bool { return e.QualityTestID == "" }
	default:
		return events
	}

	out := make([]model.CollectionEvent, 0, len(events))
	for _, e := range events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
