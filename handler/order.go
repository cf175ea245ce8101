package handler

import (
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultOrderPageSize = 3
	maxOrderPageSize     = 10
)

// resolvePageSize applies the order pagination contract: default 3, hard cap
// 10, junk falls back to the default.
func resolvePageSize(raw int) int {
	if raw < 1 {
		return defaultOrderPageSize
	}
	if raw > maxOrderPageSize {
		return maxOrderPageSize
	}
	return raw
}

type seatKey struct {
	sessionId uint
	row       int
	seat      int
}

// validateTicketPlacement checks one requested seat against the hall bounds.
func validateTicketPlacement(t model.TicketInput, hall model.CinemaHall) error {
	if t.Row > hall.Rows {
		return fmt.Errorf("row %d is out of range, hall has %d rows", t.Row, hall.Rows)
	}
	if t.Seat > hall.SeatsInRow {
		return fmt.Errorf("seat %d is out of range, hall rows have %d seats", t.Seat, hall.SeatsInRow)
	}
	return nil
}

func toOrderResponse(order model.Order) model.OrderResponse {
	tickets := make([]model.OrderTicketResponse, 0, len(order.Tickets))
	for _, t := range order.Tickets {
		tickets = append(tickets, model.OrderTicketResponse{
			Row:        t.Row,
			Seat:       t.Seat,
			TicketCode: t.TicketCode,
			MovieSession: model.OrderSessionResponse{
				ID:             t.MovieSession.ID,
				ShowTime:       t.MovieSession.ShowTime,
				MovieTitle:     t.MovieSession.Movie.Title,
				CinemaHallName: t.MovieSession.CinemaHall.Name,
			},
		})
	}
	return model.OrderResponse{
		ID:         order.ID,
		PublicCode: order.PublicCode,
		CreatedAt:  order.CreatedAt,
		Tickets:    tickets,
	}
}

// ordersForUser scopes every order read to the caller. Foreign orders are
// indistinguishable from missing ones.
func ordersForUser(userId uint) *gorm.DB {
	return database.DB.
		Preload("Tickets").
		Preload("Tickets.MovieSession").
		Preload("Tickets.MovieSession.Movie").
		Preload("Tickets.MovieSession.CinemaHall").
		Where("user_id = ?", userId)
}

func GetMyOrders(c *fiber.Ctx) error {
	claim, user := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please log in", nil)
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := resolvePageSize(c.QueryInt("page_size", defaultOrderPageSize))

	var total int64
	if err := database.DB.Model(&model.Order{}).Where("user_id = ?", claim.UserId).Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot count orders", err)
	}

	var orders []model.Order
	query := ordersForUser(claim.UserId).Order("created_at DESC")
	query = utils.ApplyPagination(query, &pageSize, &page)
	if err := query.Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load orders", err)
	}

	rows := make([]model.OrderResponse, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, toOrderResponse(order))
	}

	response := &model.ResponseCustom{
		Rows:       rows,
		Limit:      &pageSize,
		Page:       &page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetOrderById(c *fiber.Ctx) error {
	claim, user := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please log in", nil)
	}

	orderId := c.Locals("inputId").(int)

	var order model.Order
	if err := ordersForUser(claim.UserId).First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	qrBase64 := ""
	if qrBytes, err := utils.GenerateQRCode(order.PublicCode, 400); err != nil {
		log.Printf("failed to render QR for order %s: %v", order.PublicCode, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order":  toOrderResponse(order),
		"qrCode": qrBase64,
	})
}

// CreateOrder books all requested seats in one transaction. The user comes
// from the token, never from the body. Any invalid seat rolls back the whole
// order; the unique index on (movie_session_id, row, seat) settles races.
func CreateOrder(c *fiber.Ctx) error {
	claim, user := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please log in", nil)
	}

	input, ok := c.Locals("createOrderInput").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	tx := database.DB.Begin()

	sessions := map[uint]model.MovieSession{}
	requested := map[seatKey]bool{}

	for _, t := range input.Tickets {
		session, loaded := sessions[t.MovieSessionId]
		if !loaded {
			if err := tx.Preload("CinemaHall").First(&session, t.MovieSessionId).Error; err != nil {
				tx.Rollback()
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie session not found", err)
				}
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
			sessions[t.MovieSessionId] = session
		}

		if err := validateTicketPlacement(t, session.CinemaHall); err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Seat out of range", err)
		}

		key := seatKey{sessionId: t.MovieSessionId, row: t.Row, seat: t.Seat}
		if requested[key] {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Duplicate seat in order",
				fmt.Errorf("seat row %d seat %d requested twice for session %d", t.Row, t.Seat, t.MovieSessionId))
		}
		requested[key] = true

		var sold int64
		if err := tx.Model(&model.Ticket{}).
			Where(`movie_session_id = ? AND "row" = ? AND seat = ?`, t.MovieSessionId, t.Row, t.Seat).
			Count(&sold).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if sold > 0 {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Seat already sold",
				fmt.Errorf("row %d seat %d already taken for session %d", t.Row, t.Seat, t.MovieSessionId))
		}
	}

	order := model.Order{
		UserId:     claim.UserId,
		PublicCode: "ORD-" + strings.ToUpper(uuid.New().String()[:8]),
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create order", err)
	}

	tickets := make([]model.Ticket, 0, len(input.Tickets))
	for _, t := range input.Tickets {
		tickets = append(tickets, model.Ticket{
			Row:            t.Row,
			Seat:           t.Seat,
			TicketCode:     "TKT-" + strings.ToUpper(uuid.New().String()[:10]),
			MovieSessionId: t.MovieSessionId,
			OrderId:        order.ID,
		})
	}
	if err := tx.Create(&tickets).Error; err != nil {
		// a concurrent order won the unique index race
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Seat already sold", err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var created model.Order
	if err := ordersForUser(claim.UserId).First(&created, order.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	response := toOrderResponse(created)

	sendOrderConfirmation(user.Email, response)

	return utils.SuccessResponse(c, fiber.StatusCreated, response)
}

func sendOrderConfirmation(email string, order model.OrderResponse) {
	if email == "" || len(order.Tickets) == 0 {
		return
	}

	seats := make([]string, 0, len(order.Tickets))
	for _, t := range order.Tickets {
		seats = append(seats, fmt.Sprintf("row %d seat %d", t.Row, t.Seat))
	}

	first := order.Tickets[0].MovieSession
	utils.SendOrderConfirmationEmail(email, utils.OrderConfirmationData{
		OrderCode:  order.PublicCode,
		MovieTitle: first.MovieTitle,
		ShowTime:   first.ShowTime.Format(time.RFC1123),
		HallName:   first.CinemaHallName,
		Seats:      strings.Join(seats, ", "),
	})
}
