package main

// @title Sales Ledger API
// @version 1.0
// @description Sales tracking service: records sale transactions and reports cumulative, daily and monthly profit.

// @host localhost:8080
// @BasePath /

// @tag.name Sales
// @tag.description Sale record CRUD endpoints

// @tag.name Profit
// @tag.description Profit aggregation endpoints

// @tag.name Health
// @tag.description Health check endpoints
