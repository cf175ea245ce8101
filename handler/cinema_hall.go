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

func GetCinemaHalls(c *fiber.Ctx) error {
	var halls []model.CinemaHall
	if err := database.DB.Order("id").Find(&halls).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load cinema halls", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, halls)
}

func GetCinemaHallById(c *fiber.Ctx) error {
	hallId := c.Locals("inputId").(int)

	var hall model.CinemaHall
	if err := database.DB.First(&hall, hallId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Cinema hall not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, hall)
}

func CreateCinemaHall(c *fiber.Ctx) error {
	input, ok := c.Locals("createCinemaHallInput").(model.CinemaHall)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	if err := database.DB.Create(&input).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create cinema hall", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, input)
}

func UpdateCinemaHall(c *fiber.Ctx) error {
	hallId := c.Locals("cinemaHallId").(int)
	input := c.Locals("editCinemaHallInput").(model.EditCinemaHallInput)

	var hall model.CinemaHall
	if err := database.DB.First(&hall, hallId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Cinema hall not found", err)
	}

	if input.Name != nil {
		hall.Name = *input.Name
	}
	if input.Rows != nil {
		hall.Rows = *input.Rows
	}
	if input.SeatsInRow != nil {
		hall.SeatsInRow = *input.SeatsInRow
	}

	if err := database.DB.Save(&hall).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update cinema hall", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, hall)
}

func DeleteCinemaHall(c *fiber.Ctx) error {
	hallId := c.Locals("inputId").(int)

	var hall model.CinemaHall
	if err := database.DB.First(&hall, hallId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Cinema hall not found", err)
	}

	if err := database.DB.Delete(&hall).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete cinema hall", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
