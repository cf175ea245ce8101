package model

type Genre struct {
	DTO
	Name string `gorm:"type:varchar(255);not null;unique" validate:"required" json:"name"`

	Movies []Movie `gorm:"many2many:movie_genres;" json:"-"`
}

type EditGenreInput struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=255"`
}
