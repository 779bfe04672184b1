package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)

	users := api.Group("/users", handler.AuthRequired)
	users.Get("/dashboard", handler.Dashboard)
	users.Post("/settings", handler.UpdateSettings)
	users.Post("/password", handler.ChangePassword)

	reports := api.Group("/reports", handler.AuthRequired)
	reports.Post("/upload", handler.UploadReport)
	reports.Get("/user", handler.ListReports)
	reports.Get("/:id", handler.GetReport)

	vitals := api.Group("/vitals", handler.AuthRequired)
	vitals.Post("/add", handler.AddVitals)
	vitals.Get("", handler.ListVitals)
	vitals.Get("/:id", handler.GetVitals)

	aiRoutes := api.Group("/ai", handler.AuthRequired)
	aiRoutes.Post("/chat", handler.Chat)
	aiRoutes.Get("/usage", handler.AIUsage)

	diet := api.Group("/diet", handler.AuthRequired)
	diet.Get("", handler.ListDietPlans)
	diet.Get("/me/active", handler.ActiveDiet)
	diet.Get("/me/history", handler.DietHistory)
	diet.Post("/start", handler.StartDiet)
	diet.Post("/ai-suggest", handler.SuggestDiet)
	diet.Get("/:id", handler.GetDietPlan)

	bills := api.Group("/bills", handler.AuthRequired)
	bills.Post("/upload", handler.UploadBill)
	bills.Get("/user", handler.ListBills)
	bills.Get("/:id", handler.GetBill)

	billSuggestions := api.Group("/bill-suggestions", handler.AuthRequired)
	billSuggestions.Post("/add", handler.AddBillSuggestion)
	billSuggestions.Get("", handler.ListBillSuggestions)
}
