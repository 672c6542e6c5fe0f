// Package controllers file: controllers/validators.go
package controllers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"gym-admin/models"
)

// RegisterValidations installs custom binding validations on gin's validator
// engine. Call once before handling requests.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// paymentstatus restricts a string field to the known payment statuses
	_ = v.RegisterValidation("paymentstatus", func(fl validator.FieldLevel) bool {
		return models.PaymentStatus(fl.Field().String()).Valid()
	})
}
