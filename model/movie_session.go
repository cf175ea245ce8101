package model

import "time"

type MovieSession struct {
	DTO
	ShowTime     time.Time  `gorm:"not null;index" validate:"required" json:"showTime"`
	MovieId      uint       `gorm:"not null;index" validate:"required" json:"movieId"`
	Movie        Movie      `gorm:"foreignKey:MovieId" json:"movie"`
	CinemaHallId uint       `gorm:"not null;index" validate:"required" json:"cinemaHallId"`
	CinemaHall   CinemaHall `gorm:"foreignKey:CinemaHallId" json:"cinemaHall"`

	Tickets []Ticket `gorm:"foreignKey:MovieSessionId" json:"-"`
}

type CreateMovieSessionInput struct {
	ShowTime     time.Time `json:"showTime" validate:"required"`
	MovieId      uint      `json:"movieId" validate:"required"`
	CinemaHallId uint      `json:"cinemaHallId" validate:"required"`
}

type EditMovieSessionInput struct {
	ShowTime     *time.Time `json:"showTime"`
	MovieId      *uint      `json:"movieId"`
	CinemaHallId *uint      `json:"cinemaHallId"`
}

// MovieSessionListResponse is scanned straight out of the grouped
// availability query, one row per session.
type MovieSessionListResponse struct {
	ID                 uint      `json:"id"`
	ShowTime           time.Time `json:"showTime"`
	MovieTitle         string    `json:"movieTitle"`
	CinemaHallName     string    `json:"cinemaHallName"`
	CinemaHallCapacity int       `json:"cinemaHallCapacity"`
	TicketsAvailable   int       `json:"ticketsAvailable"`
}

type TakenPlace struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type MovieSessionDetailResponse struct {
	ID          uint         `json:"id"`
	ShowTime    time.Time    `json:"showTime"`
	Movie       Movie        `json:"movie"`
	CinemaHall  CinemaHall   `json:"cinemaHall"`
	TakenPlaces []TakenPlace `json:"takenPlaces"`
}
