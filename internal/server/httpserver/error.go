package httpserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/statserr"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/service"
)

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	code := "INTERNAL_ERROR"

	var se *statserr.Error
	var fe *fiber.Error
	switch {
	case errors.Is(err, service.ErrDatabaseNotReachable),
		errors.Is(err, service.ErrNATSNotReachable),
		errors.Is(err, service.ErrStreamNotReachable):
		status = fiber.StatusServiceUnavailable
		code = "UNHEALTHY"
	case errors.As(err, &se):
		code = se.Code
		if errors.Is(err, statserr.ErrNotFound) {
			status = fiber.StatusNotFound
		}
	case errors.As(err, &fe):
		status = fe.Code
		code = "UNKNOWN_ERROR"
	}

	log.Error().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", status).
		Msg("devops request failed")

	return ctx.Status(status).JSON(fiber.Map{
		"code":    code,
		"message": err.Error(),
	})
}
