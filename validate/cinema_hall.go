package validate

import (
	"cinema_booking/constants"
	"cinema_booking/model"
	"cinema_booking/utils"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func CreateCinemaHall() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CinemaHall

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, err.Error(), err)
		}

		c.Locals("createCinemaHallInput", input)
		return c.Next()
	}
}

func EditCinemaHall(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		hallId, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditCinemaHallInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, err.Error(), err)
		}

		c.Locals("cinemaHallId", hallId)
		c.Locals("editCinemaHallInput", input)
		return c.Next()
	}
}
