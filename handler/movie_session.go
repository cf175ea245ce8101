package handler

import (
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func takenPlaces(tickets []model.Ticket) []model.TakenPlace {
	places := make([]model.TakenPlace, 0, len(tickets))
	for _, t := range tickets {
		places = append(places, model.TakenPlace{Row: t.Row, Seat: t.Seat})
	}
	return places
}

// GetMovieSessions lists sessions with ticketsAvailable computed in one
// grouped aggregate (capacity minus sold tickets), so the value stays
// consistent under concurrent reads. Filters AND-compose: date matches the
// calendar day of show_time, movie is an ID set.
func GetMovieSessions(c *fiber.Ctx) error {
	query := database.DB.Table("movie_sessions").
		Select(`movie_sessions.id,
			movie_sessions.show_time,
			movies.title AS movie_title,
			cinema_halls.name AS cinema_hall_name,
			cinema_halls."rows" * cinema_halls.seats_in_row AS cinema_hall_capacity,
			cinema_halls."rows" * cinema_halls.seats_in_row - COUNT(tickets.id) AS tickets_available`).
		Joins("JOIN movies ON movies.id = movie_sessions.movie_id").
		Joins("JOIN cinema_halls ON cinema_halls.id = movie_sessions.cinema_hall_id").
		Joins("LEFT JOIN tickets ON tickets.movie_session_id = movie_sessions.id").
		Group(`movie_sessions.id, movie_sessions.show_time, movies.title,
			cinema_halls.name, cinema_halls."rows", cinema_halls.seats_in_row`)

	if date := c.Query("date"); date != "" {
		day, err := utils.ParseDay(date)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid date filter, expected YYYY-MM-DD", err)
		}
		query = query.Where("DATE(movie_sessions.show_time) = ?", day.Format("2006-01-02"))
	}

	if movie := c.Query("movie"); movie != "" {
		movieIds, err := utils.ParseIDList(movie)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie filter", err)
		}
		query = query.Where("movie_sessions.movie_id IN ?", movieIds)
	}

	var sessions []model.MovieSessionListResponse
	if err := query.Order("movie_sessions.show_time").Scan(&sessions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load movie sessions", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, sessions)
}

// GetMovieSessionById returns nested movie/hall detail plus the taken seats.
// ticketsAvailable is a list-only field and is deliberately absent here.
func GetMovieSessionById(c *fiber.Ctx) error {
	sessionId := c.Locals("inputId").(int)

	var session model.MovieSession
	if err := database.DB.
		Preload("Movie.Genres").
		Preload("Movie.Actors").
		Preload("CinemaHall").
		Preload("Tickets").
		First(&session, sessionId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie session not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := model.MovieSessionDetailResponse{
		ID:          session.ID,
		ShowTime:    session.ShowTime,
		Movie:       session.Movie,
		CinemaHall:  session.CinemaHall,
		TakenPlaces: takenPlaces(session.Tickets),
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateMovieSession(c *fiber.Ctx) error {
	input, ok := c.Locals("createMovieSessionInput").(model.CreateMovieSessionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var movie model.Movie
	if err := database.DB.First(&movie, input.MovieId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
	}
	var hall model.CinemaHall
	if err := database.DB.First(&hall, input.CinemaHallId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Cinema hall not found", err)
	}

	session := model.MovieSession{
		ShowTime:     input.ShowTime,
		MovieId:      input.MovieId,
		CinemaHallId: input.CinemaHallId,
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create movie session", err)
	}

	database.DB.Preload("Movie").Preload("CinemaHall").First(&session, session.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, session)
}

func UpdateMovieSession(c *fiber.Ctx) error {
	sessionId := c.Locals("movieSessionId").(int)
	input := c.Locals("editMovieSessionInput").(model.EditMovieSessionInput)

	var session model.MovieSession
	if err := database.DB.First(&session, sessionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie session not found", err)
	}

	if input.ShowTime != nil {
		session.ShowTime = *input.ShowTime
	}
	if input.MovieId != nil {
		var movie model.Movie
		if err := database.DB.First(&movie, *input.MovieId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
		}
		session.MovieId = *input.MovieId
	}
	if input.CinemaHallId != nil {
		var hall model.CinemaHall
		if err := database.DB.First(&hall, *input.CinemaHallId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Cinema hall not found", err)
		}
		session.CinemaHallId = *input.CinemaHallId
	}

	if err := database.DB.Save(&session).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update movie session", err)
	}

	database.DB.Preload("Movie").Preload("CinemaHall").First(&session, session.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, session)
}

func DeleteMovieSession(c *fiber.Ctx) error {
	sessionId := c.Locals("inputId").(int)

	var session model.MovieSession
	if err := database.DB.First(&session, sessionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie session not found", err)
	}

	if err := database.DB.Delete(&session).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete movie session", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
