package model

import "fmt"

type Actor struct {
	DTO
	FirstName string `gorm:"type:varchar(255);not null" validate:"required" json:"firstName"`
	LastName  string `gorm:"type:varchar(255);not null" validate:"required" json:"lastName"`

	Movies []Movie `gorm:"many2many:movie_actors;" json:"-"`
}

func (a Actor) FullName() string {
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}

type EditActorInput struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=255"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=255"`
}
