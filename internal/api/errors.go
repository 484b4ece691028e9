package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vladimiradmaev/dietlog/internal/datekey"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
	"github.com/vladimiradmaev/dietlog/internal/logger"
)

// respondError logs err by severity and writes {"detail": ...} with the mapped status.
func respondError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	apperrors.NewHandler(logger.WithContext(ctx)).Handle(ctx, err)
	c.AbortWithStatusJSON(apperrors.HTTPStatus(err), gin.H{"detail": apperrors.PublicMessage(err)})
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": "Invalid request body"})
		return false
	}
	return true
}

func validation(err error) error {
	return apperrors.NewValidationError(err.Error())
}

// queryDate validates the optional ?date parameter. Empty means today.
func queryDate(c *gin.Context) (datekey.Key, bool) {
	date, err := datekey.ParseOr(c.Query("date"), "")
	if err != nil {
		respondError(c, validation(err))
		return "", false
	}
	return date, true
}

// queryInt reads an optional positive integer parameter.
func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		respondError(c, apperrors.NewValidationError(name+" must be a non-negative integer"))
		return 0, false
	}
	return v, true
}
