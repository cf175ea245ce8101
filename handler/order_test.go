package handler

import (
	"cinema_booking/model"
	"testing"
	"time"
)

func TestResolvePageSize(t *testing.T) {
	tests := []struct {
		name string
		raw  int
		want int
	}{
		{name: "default when zero", raw: 0, want: 3},
		{name: "default when negative", raw: -4, want: 3},
		{name: "within range", raw: 7, want: 7},
		{name: "at the cap", raw: 10, want: 10},
		{name: "above the cap", raw: 11, want: 10},
		{name: "far above the cap", raw: 1000, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolvePageSize(tt.raw); got != tt.want {
				t.Errorf("resolvePageSize(%d) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidateTicketPlacement(t *testing.T) {
	hall := model.CinemaHall{Name: "Blue", Rows: 10, SeatsInRow: 12}

	tests := []struct {
		name    string
		ticket  model.TicketInput
		wantErr bool
	}{
		{name: "first seat", ticket: model.TicketInput{Row: 1, Seat: 1}},
		{name: "last seat", ticket: model.TicketInput{Row: 10, Seat: 12}},
		{name: "row past hall", ticket: model.TicketInput{Row: 11, Seat: 1}, wantErr: true},
		{name: "seat past row", ticket: model.TicketInput{Row: 1, Seat: 13}, wantErr: true},
		{name: "both out of range", ticket: model.TicketInput{Row: 99, Seat: 99}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTicketPlacement(tt.ticket, hall)
			if tt.wantErr && err == nil {
				t.Errorf("expected error for row %d seat %d", tt.ticket.Row, tt.ticket.Seat)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error for row %d seat %d: %v", tt.ticket.Row, tt.ticket.Seat, err)
			}
		})
	}
}

func TestToOrderResponse(t *testing.T) {
	showTime := time.Date(2024, 3, 15, 19, 30, 0, 0, time.UTC)
	order := model.Order{
		DTO:        model.DTO{ID: 5, CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		PublicCode: "ORD-ABCD1234",
		UserId:     9,
		Tickets: []model.Ticket{
			{
				Row:        2,
				Seat:       3,
				TicketCode: "TKT-0000000001",
				MovieSession: model.MovieSession{
					DTO:        model.DTO{ID: 17},
					ShowTime:   showTime,
					Movie:      model.Movie{Title: "The Matrix Reloaded"},
					CinemaHall: model.CinemaHall{Name: "Blue"},
				},
			},
		},
	}

	got := toOrderResponse(order)

	if got.ID != 5 || got.PublicCode != "ORD-ABCD1234" {
		t.Errorf("order header mismatch: %+v", got)
	}
	if len(got.Tickets) != 1 {
		t.Fatalf("expected 1 ticket, got %d", len(got.Tickets))
	}
	ticket := got.Tickets[0]
	if ticket.Row != 2 || ticket.Seat != 3 {
		t.Errorf("seat mismatch: %+v", ticket)
	}
	if ticket.MovieSession.ID != 17 ||
		ticket.MovieSession.MovieTitle != "The Matrix Reloaded" ||
		ticket.MovieSession.CinemaHallName != "Blue" ||
		!ticket.MovieSession.ShowTime.Equal(showTime) {
		t.Errorf("nested session mismatch: %+v", ticket.MovieSession)
	}
}
