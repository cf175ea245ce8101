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

func GetGenres(c *fiber.Ctx) error {
	var genres []model.Genre
	if err := database.DB.Order("id").Find(&genres).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load genres", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, genres)
}

func GetGenreById(c *fiber.Ctx) error {
	genreId := c.Locals("inputId").(int)

	var genre model.Genre
	if err := database.DB.First(&genre, genreId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Genre not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, genre)
}

func CreateGenre(c *fiber.Ctx) error {
	input, ok := c.Locals("createGenreInput").(model.Genre)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var existing model.Genre
	if err := database.DB.Where("LOWER(name) = LOWER(?)", input.Name).First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Genre name already exists", errors.New("name already exists"))
	}

	if err := database.DB.Create(&input).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create genre", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, input)
}

func UpdateGenre(c *fiber.Ctx) error {
	genreId := c.Locals("genreId").(int)
	input := c.Locals("editGenreInput").(model.EditGenreInput)

	var genre model.Genre
	if err := database.DB.First(&genre, genreId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Genre not found", err)
	}

	if input.Name != nil {
		genre.Name = *input.Name
	}

	if err := database.DB.Save(&genre).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update genre", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, genre)
}

func DeleteGenre(c *fiber.Ctx) error {
	genreId := c.Locals("inputId").(int)

	var genre model.Genre
	if err := database.DB.First(&genre, genreId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Genre not found", err)
	}

	if err := database.DB.Delete(&genre).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete genre", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
