package services

import "github.com/ewilliams-labs/moodmix/internal/core/domain"

// CardsMax is the number of display cards returned per request.
const CardsMax = 12

// ShapeCards projects tracks into at most limit cards, skipping records without
// an ID and repeated IDs. The result is never nil.
func ShapeCards(tracks []domain.Track, limit int) []domain.Card {
	limit = max(limit, 0)
	cards := make([]domain.Card, 0, min(len(tracks), limit))
	seen := make(map[string]struct{}, len(tracks))
	for _, t := range tracks {
		if len(cards) >= limit {
			break
		}
		if t.ID == "" {
			continue
		}
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		cards = append(cards, domain.NewCard(t))
	}
	return cards
}

// WidgetIDs takes the first limit track IDs from the pool in order.
func WidgetIDs(pool []domain.Track, limit int) []string {
	limit = max(limit, 0)
	ids := make([]string, 0, min(len(pool), limit))
	for _, t := range pool {
		if len(ids) >= limit {
			break
		}
		if t.ID != "" {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
