package handler

import (
	"cinema_booking/model"
	"reflect"
	"testing"
)

func TestTakenPlaces(t *testing.T) {
	tickets := []model.Ticket{
		{Row: 1, Seat: 1},
		{Row: 1, Seat: 2},
		{Row: 4, Seat: 7},
	}

	got := takenPlaces(tickets)

	want := []model.TakenPlace{
		{Row: 1, Seat: 1},
		{Row: 1, Seat: 2},
		{Row: 4, Seat: 7},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("takenPlaces() = %v, want %v", got, want)
	}
}

func TestTakenPlacesEmpty(t *testing.T) {
	if got := takenPlaces(nil); got == nil || len(got) != 0 {
		t.Errorf("expected empty slice for a session with no tickets, got %v", got)
	}
}
