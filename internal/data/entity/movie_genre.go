package entity

type Genre struct {
	Name string `json:"genre_name"`
}
