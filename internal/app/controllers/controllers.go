package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jobsphere/jobsphere/internal/pkg/apperrors"
)

// parseIDParam reads a positive integer path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	idStr := ctx.Param(name)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid " + name + " parameter")
	}
	return id, nil
}
