// Package controllers implements the HTTP handlers for expenses, budgets
// and the monthly analytics.
package controllers

import (
	"gorm.io/gorm"
)

// Controller holds the dependencies of all handlers.
type Controller struct {
	DB *gorm.DB
}
