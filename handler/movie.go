package handler

import (
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// toMovieListResponse builds the lightweight list projection: relation names
// only, no description.
func toMovieListResponse(m model.Movie) model.MovieListResponse {
	genres := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		genres = append(genres, g.Name)
	}
	actors := make([]string, 0, len(m.Actors))
	for _, a := range m.Actors {
		actors = append(actors, a.FullName())
	}
	return model.MovieListResponse{
		ID:       m.ID,
		Title:    m.Title,
		Duration: m.Duration,
		Genres:   genres,
		Actors:   actors,
	}
}

// GetMovies lists movies with AND-composed filters: actors and genres are
// comma-separated ID sets matched against the associations, title is a
// case-insensitive substring. Relations come back via Preload, one batched
// query each.
func GetMovies(c *fiber.Ctx) error {
	query := database.DB.Model(&model.Movie{}).
		Preload("Genres").
		Preload("Actors")

	if actors := c.Query("actors"); actors != "" {
		actorIds, err := utils.ParseIDList(actors)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid actors filter", err)
		}
		query = query.Where("movies.id IN (SELECT movie_id FROM movie_actors WHERE actor_id IN ?)", actorIds)
	}

	if genres := c.Query("genres"); genres != "" {
		genreIds, err := utils.ParseIDList(genres)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genres filter", err)
		}
		query = query.Where("movies.id IN (SELECT movie_id FROM movie_genres WHERE genre_id IN ?)", genreIds)
	}

	if title := c.Query("title"); title != "" {
		pattern := "%" + strings.ToLower(title) + "%"
		query = query.Where("LOWER(movies.title) LIKE ?", pattern)
	}

	var movies []model.Movie
	if err := query.Order("movies.id").Find(&movies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load movies", err)
	}

	response := make([]model.MovieListResponse, 0, len(movies))
	for _, movie := range movies {
		response = append(response, toMovieListResponse(movie))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetMovieById(c *fiber.Ctx) error {
	movieId := c.Locals("inputId").(int)

	var movie model.Movie
	if err := database.DB.
		Preload("Genres").
		Preload("Actors").
		First(&movie, movieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func CreateMovie(c *fiber.Ctx) error {
	input, ok := c.Locals("createMovieInput").(model.CreateMovieInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	tx := database.DB.Begin()

	var genres []model.Genre
	if len(input.GenreIds) > 0 {
		if err := tx.Find(&genres, input.GenreIds).Error; err != nil || len(genres) != len(input.GenreIds) {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Genre not found", err)
		}
	}
	var actors []model.Actor
	if len(input.ActorIds) > 0 {
		if err := tx.Find(&actors, input.ActorIds).Error; err != nil || len(actors) != len(input.ActorIds) {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Actor not found", err)
		}
	}

	movie := new(model.Movie)
	copier.Copy(movie, &input)
	movie.Slug = helper.GenerateUniqueMovieSlug(tx, input.Title)
	movie.Genres = genres
	movie.Actors = actors

	if err := tx.Create(movie).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create movie", err)
	}

	tx.Commit()
	return utils.SuccessResponse(c, fiber.StatusCreated, movie)
}

func UpdateMovie(c *fiber.Ctx) error {
	movieId := c.Locals("movieId").(int)
	input := c.Locals("editMovieInput").(model.EditMovieInput)

	var movie model.Movie
	if err := database.DB.First(&movie, movieId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
	}

	tx := database.DB.Begin()

	if input.Title != nil && *input.Title != movie.Title {
		movie.Title = *input.Title
		movie.Slug = helper.GenerateUniqueMovieSlug(tx, *input.Title)
	}
	if input.Description != nil {
		movie.Description = *input.Description
	}
	if input.Duration != nil {
		movie.Duration = *input.Duration
	}

	if input.GenreIds != nil {
		var genres []model.Genre
		if len(*input.GenreIds) > 0 {
			if err := tx.Find(&genres, *input.GenreIds).Error; err != nil || len(genres) != len(*input.GenreIds) {
				tx.Rollback()
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Genre not found", err)
			}
		}
		if err := tx.Model(&movie).Association("Genres").Replace(genres); err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update genres", err)
		}
	}
	if input.ActorIds != nil {
		var actors []model.Actor
		if len(*input.ActorIds) > 0 {
			if err := tx.Find(&actors, *input.ActorIds).Error; err != nil || len(actors) != len(*input.ActorIds) {
				tx.Rollback()
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Actor not found", err)
			}
		}
		if err := tx.Model(&movie).Association("Actors").Replace(actors); err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update actors", err)
		}
	}

	if err := tx.Save(&movie).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update movie", err)
	}

	tx.Commit()

	database.DB.Preload("Genres").Preload("Actors").First(&movie, movie.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func DeleteMovie(c *fiber.Ctx) error {
	movieId := c.Locals("inputId").(int)

	var movie model.Movie
	if err := database.DB.First(&movie, movieId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
	}

	if err := database.DB.Select("Genres", "Actors").Delete(&movie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete movie", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
