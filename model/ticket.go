package model

// Ticket reserves one seat in one session. The composite unique index is the
// double-booking guard: concurrent orders for the same seat race on it and
// exactly one insert wins.
type Ticket struct {
	DTO
	Row            int          `gorm:"not null;uniqueIndex:idx_session_row_seat" json:"row"`
	Seat           int          `gorm:"not null;uniqueIndex:idx_session_row_seat" json:"seat"`
	TicketCode     string       `gorm:"size:20;uniqueIndex" json:"ticketCode"`
	MovieSessionId uint         `gorm:"not null;uniqueIndex:idx_session_row_seat;index" json:"movieSessionId"`
	OrderId        uint         `gorm:"not null;index" json:"orderId"`
	MovieSession   MovieSession `gorm:"foreignKey:MovieSessionId" json:"-"`
	Order          Order        `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE" json:"-"`
}

type TicketInput struct {
	Row            int  `json:"row" validate:"required,gt=0"`
	Seat           int  `json:"seat" validate:"required,gt=0"`
	MovieSessionId uint `json:"movieSession" validate:"required"`
}
