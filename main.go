package main

//go:generate swag init --outputTypes go --output api

import "github.com/fintrack/backend/cmd"

// @title                      Finance Tracker
// @version                    1.0
// @description                Track expenses, set monthly budgets and analyze your spending.
// @BasePath                   /
//
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
// @description                ID token of the user, prefixed with "Bearer ".
func main() {
	cmd.Execute()
}
