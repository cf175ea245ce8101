package model

import "testing"

func TestCinemaHallCapacity(t *testing.T) {
	tests := []struct {
		name string
		hall CinemaHall
		want int
	}{
		{name: "regular hall", hall: CinemaHall{Rows: 10, SeatsInRow: 12}, want: 120},
		{name: "single row", hall: CinemaHall{Rows: 1, SeatsInRow: 8}, want: 8},
		{name: "spec example", hall: CinemaHall{Rows: 5, SeatsInRow: 10}, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hall.Capacity(); got != tt.want {
				t.Errorf("Capacity() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestActorFullName(t *testing.T) {
	a := Actor{FirstName: "Keanu", LastName: "Reeves"}
	if got := a.FullName(); got != "Keanu Reeves" {
		t.Errorf("FullName() = %q", got)
	}
}
