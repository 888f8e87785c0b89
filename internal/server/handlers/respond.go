package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ledgersvc "github.com/mamadbah2/agroboard/internal/service/ledger"
)

// renderError maps core error kinds onto HTTP responses: validation errors
// name the offending field, unresolved references report what failed to
// resolve instead of silently dropping the event.
func renderError(c *gin.Context, logger *zap.Logger, err error) {
	var vErr *ledgersvc.ValidationError
	var refErr *ledgersvc.UnresolvedReferenceError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
	case errors.As(err, &refErr):
		logger.Warn("unresolved reference", zap.String("kind", refErr.Kind), zap.String("ref", refErr.Ref))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unresolved reference", "kind": refErr.Kind, "ref": refErr.Ref})
	default:
		logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// Form numeric inputs arrive as free text. Parse failures block the event
// with a field-level validation error; they are never coerced to zero.

func parseFloatField(field, raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, &ledgersvc.ValidationError{Field: field, Reason: "required"}
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &ledgersvc.ValidationError{Field: field, Reason: "not a number"}
	}
	return value, nil
}

func parseIntField(field, raw string, fallback int) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &ledgersvc.ValidationError{Field: field, Reason: "not a number"}
	}
	return value, nil
}

func splitCrops(raw string) []string {
	var crops []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			crops = append(crops, trimmed)
		}
	}
	return crops
}
