// file: internals/helpers/from_domain_error.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"globalenglish_backend/internals/helpers/derr"
)

func domainStatus(kind derr.Kind) int {
	switch kind {
	case derr.KindValidation:
		return fiber.StatusBadRequest
	case derr.KindNotFound:
		return fiber.StatusNotFound
	case derr.KindInvalidTransition,
		derr.KindMakeupChainNotAllowed,
		derr.KindSessionNotTaught,
		derr.KindInvalidJustification,
		derr.KindUnmappedWeek,
		derr.KindInconsistentWeights,
		derr.KindConcurrentModification:
		return fiber.StatusConflict
	case derr.KindUnknownStudent:
		return fiber.StatusUnprocessableEntity
	case derr.KindStorageUnavailable:
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

// JsonDomainError renders a service error through the standard envelope.
// Domain kinds keep their own error_code; anything else is treated as an
// internal failure (gorm.ErrRecordNotFound from a lookup becomes 404).
func JsonDomainError(c *fiber.Ctx, err error) error {
	var de *derr.Error
	if errors.As(err, &de) {
		return c.Status(domainStatus(de.Kind)).JSON(ErrorResponse{
			Success:   false,
			Message:   de.Msg,
			ErrorCode: string(de.Kind),
			Retryable: derr.Retryable(err),
		})
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JsonError(c, fiber.StatusNotFound, "record not found")
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}

// BindAndValidate parses the body into dst and runs struct validation.
func BindAndValidate[T any](c *fiber.Ctx, v interface{ Struct(any) error }, dst *T) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if v != nil {
		if err := v.Struct(dst); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
	}
	return nil
}
