package validate

import (
	"cinema_booking/constants"
	"cinema_booking/model"
	"cinema_booking/utils"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func CreateMovieSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMovieSessionInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, err.Error(), err)
		}

		c.Locals("createMovieSessionInput", input)
		return c.Next()
	}
}

func EditMovieSession(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionId, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditMovieSessionInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, err.Error(), err)
		}

		c.Locals("movieSessionId", sessionId)
		c.Locals("editMovieSessionInput", input)
		return c.Next()
	}
}
