package model

type CinemaHall struct {
	DTO
	Name       string `gorm:"type:varchar(255);not null" validate:"required" json:"name"`
	Rows       int    `gorm:"not null" validate:"required,gt=0" json:"rows"`
	SeatsInRow int    `gorm:"not null" validate:"required,gt=0" json:"seatsInRow"`
}

func (h CinemaHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}

type EditCinemaHallInput struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=255"`
	Rows       *int    `json:"rows" validate:"omitempty,gt=0"`
	SeatsInRow *int    `json:"seatsInRow" validate:"omitempty,gt=0"`
}
