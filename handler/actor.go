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

func GetActors(c *fiber.Ctx) error {
	var actors []model.Actor
	if err := database.DB.Order("id").Find(&actors).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load actors", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, actors)
}

func GetActorById(c *fiber.Ctx) error {
	actorId := c.Locals("inputId").(int)

	var actor model.Actor
	if err := database.DB.First(&actor, actorId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Actor not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, actor)
}

func CreateActor(c *fiber.Ctx) error {
	input, ok := c.Locals("createActorInput").(model.Actor)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	if err := database.DB.Create(&input).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create actor", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, input)
}

func UpdateActor(c *fiber.Ctx) error {
	actorId := c.Locals("actorId").(int)
	input := c.Locals("editActorInput").(model.EditActorInput)

	var actor model.Actor
	if err := database.DB.First(&actor, actorId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Actor not found", err)
	}

	if input.FirstName != nil {
		actor.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		actor.LastName = *input.LastName
	}

	if err := database.DB.Save(&actor).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update actor", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, actor)
}

func DeleteActor(c *fiber.Ctx) error {
	actorId := c.Locals("inputId").(int)

	var actor model.Actor
	if err := database.DB.First(&actor, actorId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Actor not found", err)
	}

	if err := database.DB.Delete(&actor).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete actor", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
