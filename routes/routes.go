package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
	"redry.com/roofmri/handlers"
	"redry.com/roofmri/middleware"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(db *gorm.DB, sheets *handlers.SheetsService) http.Handler {
	r := mux.NewRouter()

	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(db)

	// Public routes (no authentication)
	r.HandleFunc("/api/health", healthHandler.Check).Methods("GET")
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	// Protected API routes (require JWT authentication)
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)

	api.HandleFunc("/me", authHandler.Me).Methods("GET")

	registerCatalogRoutes(api, db, sheets)
	registerAccountRoutes(api, db)
	registerRoofRecordRoutes(api, db)

	return r
}

// registerCatalogRoutes covers the warranty catalog, pricing and export.
func registerCatalogRoutes(api *mux.Router, db *gorm.DB, sheets *handlers.SheetsService) {
	warrantyHandler := handlers.NewWarrantyHandler(db)
	pricingHandler := handlers.NewPricingHandler(db, sheets)
	exportHandler := handlers.NewExportHandler(db)

	api.HandleFunc("/warranties", warrantyHandler.List).Methods("GET")
	api.HandleFunc("/warranties/export", exportHandler.Warranties).Methods("GET")
	api.HandleFunc("/warranties/{id}", warrantyHandler.Get).Methods("GET")

	api.HandleFunc("/pricing/submissions", pricingHandler.ListSubmissions).Methods("GET")
	api.HandleFunc("/pricing/submissions", pricingHandler.CreateSubmission).Methods("POST")
	api.HandleFunc("/pricing/submissions/{id}/withdraw", pricingHandler.Withdraw).Methods("POST")
	api.HandleFunc("/pricing/summary", pricingHandler.Summary).Methods("GET")
	api.HandleFunc("/pricing/summary/{warrantyId}", pricingHandler.SummaryForWarranty).Methods("GET")
	api.HandleFunc("/pricing/sheet", pricingHandler.SheetPricing).Methods("GET")
}

// registerAccountRoutes covers the owner/property/roof tree.
func registerAccountRoutes(api *mux.Router, db *gorm.DB) {
	accountHandler := handlers.NewAccountHandler(db)

	api.HandleFunc("/accounts", accountHandler.List).Methods("GET")
	api.HandleFunc("/accounts/owners", accountHandler.CreateOwner).Methods("POST")
	api.HandleFunc("/accounts/managers", accountHandler.CreateManager).Methods("POST")
	api.HandleFunc("/accounts/properties", accountHandler.CreateProperty).Methods("POST")
	api.HandleFunc("/accounts/roofs", accountHandler.CreateRoof).Methods("POST")
	api.HandleFunc("/accounts/{ownerId}", accountHandler.Get).Methods("GET")
}

// registerRoofRecordRoutes covers the per-roof operational records.
func registerRoofRecordRoutes(api *mux.Router, db *gorm.DB) {
	accessLogHandler := handlers.NewAccessLogHandler(db)
	invoiceHandler := handlers.NewInvoiceHandler(db)
	inspectionHandler := handlers.NewInspectionHandler(db)
	claimHandler := handlers.NewClaimHandler(db)

	api.HandleFunc("/access-logs", accessLogHandler.List).Methods("GET")
	api.HandleFunc("/access-logs", accessLogHandler.Create).Methods("POST")

	api.HandleFunc("/invoices", invoiceHandler.List).Methods("GET")
	api.HandleFunc("/invoices", invoiceHandler.Create).Methods("POST")
	api.HandleFunc("/invoices/{id}/status", invoiceHandler.UpdateStatus).Methods("POST")

	api.HandleFunc("/inspections", inspectionHandler.List).Methods("GET")
	api.HandleFunc("/inspections", inspectionHandler.Create).Methods("POST")

	api.HandleFunc("/claims", claimHandler.List).Methods("GET")
	api.HandleFunc("/claims", claimHandler.Create).Methods("POST")
	api.HandleFunc("/claims/{id}", claimHandler.Get).Methods("GET")
}
