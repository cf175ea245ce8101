package handler

import (
	"cinema_booking/model"
	"reflect"
	"testing"
)

func TestToMovieListResponse(t *testing.T) {
	movie := model.Movie{
		DTO:         model.DTO{ID: 3},
		Title:       "Inception",
		Description: "should not appear in the list projection",
		Duration:    148,
		Genres: []model.Genre{
			{Name: "Sci-Fi"},
			{Name: "Action"},
		},
		Actors: []model.Actor{
			{FirstName: "Leonardo", LastName: "DiCaprio"},
		},
	}

	got := toMovieListResponse(movie)

	want := model.MovieListResponse{
		ID:       3,
		Title:    "Inception",
		Duration: 148,
		Genres:   []string{"Sci-Fi", "Action"},
		Actors:   []string{"Leonardo DiCaprio"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("toMovieListResponse() = %+v, want %+v", got, want)
	}
}

func TestToMovieListResponseEmptyRelations(t *testing.T) {
	got := toMovieListResponse(model.Movie{DTO: model.DTO{ID: 1}, Title: "Solo", Duration: 90})

	if got.Genres == nil || got.Actors == nil {
		t.Errorf("relations must serialize as empty lists, got genres=%v actors=%v", got.Genres, got.Actors)
	}
	if len(got.Genres) != 0 || len(got.Actors) != 0 {
		t.Errorf("expected empty relations, got %+v", got)
	}
}
