package models

type Movie struct {
	ID          string `validate:"required"`
	Title       string
	Type        string
	Duration    int `validate:"required,gt=0"`
	Description string
}
