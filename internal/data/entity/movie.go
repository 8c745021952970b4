package entity

// Movie is one record of the fetched catalogue. Values are never mutated
// after decoding.
type Movie struct {
	Title       string   `json:"title"`
	Budget      float64  `json:"budget"`
	ReleaseDate string   `json:"release_date"`
	VoteAverage float64  `json:"vote_average"`
	Genres      []Genre  `json:"genres"`
	Overview    string   `json:"overview,omitempty"`
	Cast        CastList `json:"cast,omitempty"`
}

// GenreNames returns the genre names in upstream order.
func (m Movie) GenreNames() []string {
	names := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		names = append(names, g.Name)
	}
	return names
}
