package handlers

import (
	"errors"
	"strconv"

	"github.com/creator-marketplace/backend/internal/apperr"
	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

// parseBody decodes and validates the request body. Returns false after
// writing the error response.
func parseBody(c *fiber.Ctx, out any) bool {
	if err := c.BodyParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
		return false
	}
	if err := validate.Struct(out); err != nil {
		var verr validator.ValidationErrors
		msg := "validation failed"
		if errors.As(err, &verr) && len(verr) > 0 {
			msg = "invalid field: " + verr[0].Field()
		}
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
		return false
	}
	return true
}

// paramUUID parses a uuid path parameter. Returns uuid.Nil and false
// after writing the error response.
func paramUUID(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// fail translates service-layer error kinds into HTTP responses.
func fail(c *fiber.Ctx, err error) error {
	reqID, _ := c.Locals(middleware.CtxRequestID).(string)

	status := fiber.StatusInternalServerError
	msg := "internal error"
	switch {
	case errors.Is(err, apperr.ErrValidation):
		status, msg = fiber.StatusBadRequest, apperr.Message(err)
	case errors.Is(err, apperr.ErrUnauthorized):
		status, msg = fiber.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, apperr.ErrForbidden):
		status, msg = fiber.StatusForbidden, apperr.Message(err)
	case errors.Is(err, apperr.ErrNotFound):
		status, msg = fiber.StatusNotFound, apperr.Message(err)
	case errors.Is(err, apperr.ErrConflict):
		status, msg = fiber.StatusConflict, apperr.Message(err)
	case errors.Is(err, apperr.ErrInvalidState):
		status, msg = fiber.StatusUnprocessableEntity, apperr.Message(err)
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg, RequestID: reqID})
}

// pageWindow translates page/pageSize pagination into the limit/offset
// the repositories use.
func pageWindow(page, size int) (limit, offset int) {
	if size < 1 || size > 100 {
		size = 20
	}
	if page < 1 {
		page = 1
	}
	return size, (page - 1) * size
}

// pagination reads the page/pageSize query params with their defaults,
// returning the clamped page alongside the repository window.
func pagination(c *fiber.Ctx) (page, pageSize, limit, offset int) {
	limit, offset = pageWindow(queryInt(c, "page", 1), queryInt(c, "pageSize", 20))
	return offset/limit + 1, limit, limit, offset
}

func queryInt(c *fiber.Ctx, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func queryStr(c *fiber.Ctx, name string) *string {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	return &v
}

func queryFloat(c *fiber.Ctx, name string) *float64 {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func queryIntPtr(c *fiber.Ctx, name string) *int {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func queryBool(c *fiber.Ctx, name string) *bool {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}
