package model

type Movie struct {
	DTO
	Title       string `gorm:"type:varchar(255);not null;index" validate:"required" json:"title"`
	Description string `gorm:"type:text;not null" validate:"required" json:"description"`
	Duration    int    `gorm:"not null" validate:"required,gt=0" json:"duration"` // minutes
	Slug        string `gorm:"uniqueIndex" json:"slug"`

	Genres []Genre `gorm:"many2many:movie_genres;" json:"genres"`
	Actors []Actor `gorm:"many2many:movie_actors;" json:"actors"`
}

type CreateMovieInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Duration    int    `json:"duration" validate:"required,gt=0"`
	GenreIds    []uint `json:"genreIds" validate:"omitempty,dive,required"`
	ActorIds    []uint `json:"actorIds" validate:"omitempty,dive,required"`
}

type EditMovieInput struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Duration    *int    `json:"duration" validate:"omitempty,gt=0"`
	GenreIds    *[]uint `json:"genreIds"`
	ActorIds    *[]uint `json:"actorIds"`
}

// MovieListResponse is the lightweight list projection: relation names only,
// no description. The detail endpoint returns the full Movie instead.
type MovieListResponse struct {
	ID       uint     `json:"id"`
	Title    string   `json:"title"`
	Duration int      `json:"duration"`
	Genres   []string `json:"genres"`
	Actors   []string `json:"actors"`
}
