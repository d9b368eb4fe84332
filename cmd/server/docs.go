package main

// @title Pantry Service API
// @version 1.0
// @description Household consumable stock tracking with restock prioritization
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/eh112358/home-inventory-dashboard

// @license.name MIT
// @license.url https://github.com/eh112358/home-inventory-dashboard/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Household session endpoints

// @tag.name Consumables
// @tag.description Consumable type catalog endpoints

// @tag.name Inventory
// @tag.description Stock level and usage rate endpoints

// @tag.name Purchases
// @tag.description Purchase ledger endpoints

// @tag.name Usage
// @tag.description Usage log endpoints

// @tag.name Dashboard
// @tag.description Restock prioritization endpoints

// @tag.name Backup
// @tag.description State export and import endpoints

// @tag.name Health
// @tag.description Health check endpoints
