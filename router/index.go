package router

import (
	"cinema_booking/handler"
	"cinema_booking/middleware"
	"cinema_booking/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", validate.RegisterUser(), handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)

	genre := v1.Group("/genres")
	genre.Get("/", handler.GetGenres)
	genre.Get("/:genreId", validate.GetById("genreId"), handler.GetGenreById)
	genre.Post("/", middleware.Protected(), validate.CreateGenre(), handler.CreateGenre)
	genre.Put("/:genreId", middleware.Protected(), validate.EditGenre("genreId"), handler.UpdateGenre)
	genre.Patch("/:genreId", middleware.Protected(), validate.EditGenre("genreId"), handler.UpdateGenre)
	genre.Delete("/:genreId", middleware.Protected(), validate.GetById("genreId"), handler.DeleteGenre)

	actor := v1.Group("/actors")
	actor.Get("/", handler.GetActors)
	actor.Get("/:actorId", validate.GetById("actorId"), handler.GetActorById)
	actor.Post("/", middleware.Protected(), validate.CreateActor(), handler.CreateActor)
	actor.Put("/:actorId", middleware.Protected(), validate.EditActor("actorId"), handler.UpdateActor)
	actor.Patch("/:actorId", middleware.Protected(), validate.EditActor("actorId"), handler.UpdateActor)
	actor.Delete("/:actorId", middleware.Protected(), validate.GetById("actorId"), handler.DeleteActor)

	hall := v1.Group("/cinema-halls")
	hall.Get("/", handler.GetCinemaHalls)
	hall.Get("/:cinemaHallId", validate.GetById("cinemaHallId"), handler.GetCinemaHallById)
	hall.Post("/", middleware.Protected(), validate.CreateCinemaHall(), handler.CreateCinemaHall)
	hall.Put("/:cinemaHallId", middleware.Protected(), validate.EditCinemaHall("cinemaHallId"), handler.UpdateCinemaHall)
	hall.Patch("/:cinemaHallId", middleware.Protected(), validate.EditCinemaHall("cinemaHallId"), handler.UpdateCinemaHall)
	hall.Delete("/:cinemaHallId", middleware.Protected(), validate.GetById("cinemaHallId"), handler.DeleteCinemaHall)

	movie := v1.Group("/movies")
	movie.Get("/", handler.GetMovies)
	movie.Get("/:movieId", validate.GetById("movieId"), handler.GetMovieById)
	movie.Post("/", middleware.Protected(), validate.CreateMovie(), handler.CreateMovie)
	movie.Put("/:movieId", middleware.Protected(), validate.EditMovie("movieId"), handler.UpdateMovie)
	movie.Patch("/:movieId", middleware.Protected(), validate.EditMovie("movieId"), handler.UpdateMovie)
	movie.Delete("/:movieId", middleware.Protected(), validate.GetById("movieId"), handler.DeleteMovie)

	session := v1.Group("/movie-sessions")
	session.Get("/", handler.GetMovieSessions)
	session.Get("/:movieSessionId", validate.GetById("movieSessionId"), handler.GetMovieSessionById)
	session.Post("/", middleware.Protected(), validate.CreateMovieSession(), handler.CreateMovieSession)
	session.Put("/:movieSessionId", middleware.Protected(), validate.EditMovieSession("movieSessionId"), handler.UpdateMovieSession)
	session.Patch("/:movieSessionId", middleware.Protected(), validate.EditMovieSession("movieSessionId"), handler.UpdateMovieSession)
	session.Delete("/:movieSessionId", middleware.Protected(), validate.GetById("movieSessionId"), handler.DeleteMovieSession)

	// orders are always scoped to the authenticated caller
	order := v1.Group("/orders", middleware.Protected())
	order.Get("/", handler.GetMyOrders)
	order.Get("/:orderId", validate.GetById("orderId"), handler.GetOrderById)
	order.Post("/", validate.CreateOrder(), handler.CreateOrder)
}
