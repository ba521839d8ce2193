package controllers

import (
	"net/http"
	"reflect"
	"strings"

	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func init() {
	// report json names ("guestId") instead of Go field names in validation details
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.Split(f.Tag.Get("json"), ",")[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// respondError maps service failures onto the {msg} error body.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	var se *services.Error
	if errors.As(err, &se) {
		code := http.StatusBadRequest
		if errors.Is(se, services.ErrNotFound) {
			code = http.StatusNotFound
		}
		if len(se.Details) > 0 {
			utils.JSONErrorDetails(c, code, se.Msg, se.Details)
			return
		}
		utils.JSONError(c, code, se.Msg)
		return
	}

	log.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	utils.JSONError(c, http.StatusInternalServerError, "Server error")
}

// bindError answers a request body or query string that did not bind.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		utils.JSONErrorDetails(c, http.StatusBadRequest, "Missing required fields", fields)
		return
	}
	utils.JSONErrorDetails(c, http.StatusBadRequest, "Invalid request payload", map[string]string{"body": err.Error()})
}
