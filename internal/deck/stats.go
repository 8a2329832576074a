package deck

// Stats aggregates per-status counts for a deck.
type Stats struct {
	Total    int
	Unknown  int
	Partial  int
	Known    int
	Mastered int     // known only; partial does not count
	Progress float64 // mastered/total, clamped to [0,1]
}

// ComputeStats walks the deck once and returns its aggregate counts. It is a
// pure read: callable any number of times, always consistent with the deck's
// current contents.
func ComputeStats(d *Deck) Stats {
	var s Stats
	if d == nil {
		return s
	}
	s.Total = d.Len()
	for _, e := range d.entries {
		switch e.Status {
		case StatusKnown:
			s.Known++
		case StatusPartial:
			s.Partial++
		default:
			s.Unknown++
		}
	}
	s.Mastered = s.Known
	if s.Total > 0 {
		s.Progress = float64(s.Mastered) / float64(s.Total)
	}
	if s.Progress < 0 {
		s.Progress = 0
	}
	if s.Progress > 1 {
		s.Progress = 1
	}
	return s
}

// MasteredAll sums mastered counts across decks. The result feeds the rank
// ladder, which scores the whole collection rather than a single deck.
func MasteredAll(decks []*Deck) int {
	total := 0
	for _, d := range decks {
		total += ComputeStats(d).Mastered
	}
	return total
}
