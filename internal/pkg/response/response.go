package response

import "github.com/gofiber/fiber/v3"

// Envelope is the wire shape of every JSON response. Status mirrors the
// HTTP code so payloads replayed from caches or logs stay interpretable
// without transport headers.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

const (
	MessageOK                  = "ok"
	MessageCreated             = "created"
	MessageBadRequest          = "invalid request"
	MessageUnauthorized        = "authentication required"
	MessageForbidden           = "forbidden"
	MessageNotFound            = "resource not found"
	MessageConflict            = "conflict"
	MessageUnprocessableEntity = "unprocessable request"
	MessageInternalServerError = "something went wrong"
	MessageError               = "request failed"
)

// OK writes a 200 envelope around data.
func OK(c fiber.Ctx, data any) error {
	return write(c, fiber.StatusOK, MessageOK, data)
}

// Created writes a 201 envelope around data.
func Created(c fiber.Ctx, data any) error {
	return write(c, fiber.StatusCreated, MessageCreated, data)
}

// Fail writes an error envelope. A blank message falls back to the
// default for the status.
func Fail(c fiber.Ctx, status int, message string, data any) error {
	return write(c, status, message, data)
}

func write(c fiber.Ctx, status int, message string, data any) error {
	if status < 100 || status > 599 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = DefaultMessage(status)
	}
	return c.Status(status).JSON(Envelope{Status: status, Message: message, Data: data})
}

// DefaultMessage maps an HTTP status to its envelope message.
func DefaultMessage(status int) string {
	switch status {
	case fiber.StatusOK:
		return MessageOK
	case fiber.StatusCreated:
		return MessageCreated
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusForbidden:
		return MessageForbidden
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusConflict:
		return MessageConflict
	case fiber.StatusUnprocessableEntity:
		return MessageUnprocessableEntity
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
