package model

import "time"

type Order struct {
	DTO
	PublicCode string   `gorm:"unique;size:20" json:"publicCode"`
	UserId     uint     `gorm:"not null;index" json:"userId"`
	User       User     `gorm:"foreignKey:UserId" json:"-"`
	Tickets    []Ticket `gorm:"foreignKey:OrderId" json:"tickets"`
}

type CreateOrderInput struct {
	Tickets []TicketInput `json:"tickets" validate:"required,min=1,dive"`
}

// Responses below carry enough nested detail to render a booking summary
// without extra requests.
type OrderTicketResponse struct {
	Row          int                  `json:"row"`
	Seat         int                  `json:"seat"`
	TicketCode   string               `json:"ticketCode"`
	MovieSession OrderSessionResponse `json:"movieSession"`
}

type OrderSessionResponse struct {
	ID             uint      `json:"id"`
	ShowTime       time.Time `json:"showTime"`
	MovieTitle     string    `json:"movieTitle"`
	CinemaHallName string    `json:"cinemaHallName"`
}

type OrderResponse struct {
	ID         uint                  `json:"id"`
	PublicCode string                `json:"publicCode"`
	CreatedAt  time.Time             `json:"createdAt"`
	Tickets    []OrderTicketResponse `json:"tickets"`
}
