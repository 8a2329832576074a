package deck

// rankLadder maps mastered-word thresholds to titles, lowest first.
var rankLadder = []struct {
	threshold int
	title     string
}{
	{0, "Peasant"},
	{50, "Squire"},
	{150, "Knight"},
	{300, "Baron"},
	{600, "Viscount"},
	{1200, "Count"},
	{2500, "Marquis"},
	{4000, "Duke"},
	{7000, "Prince"},
	{10000, "King"},
}

// Rank returns the title earned for a total mastered-word count.
func Rank(mastered int) string {
	title := rankLadder[0].title
	for _, r := range rankLadder {
		if mastered >= r.threshold {
			title = r.title
		}
	}
	return title
}
