package main

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/go-contracts/internal/catalog"
	"github.com/diewo77/go-contracts/internal/config"
	"github.com/diewo77/go-contracts/internal/handlers"
	"github.com/diewo77/go-contracts/internal/models"
	"github.com/diewo77/go-contracts/internal/services"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux *http.ServeMux
}

// NewApp wires the services and configures all routes.
func NewApp(db *gorm.DB, cat *catalog.Catalog, cfg *config.Config) *App {
	contractSvc := services.NewContractService(db, cat)

	senders := map[models.SignatureProvider]services.SignatureSender{}
	if cfg.ESign.DocuSignURL != "" {
		senders[models.ProviderDocuSign] = services.NewESignClient(cfg.ESign.DocuSignURL, cfg.ESign.DocuSignKey)
	}
	if cfg.ESign.CertSignURL != "" {
		senders[models.ProviderCertSign] = services.NewESignClient(cfg.ESign.CertSignURL, cfg.ESign.CertSignKey)
	}
	signatureSvc := services.NewSignatureService(db, senders)

	revisalSvc := services.NewRevisalService(db, cfg.Employer.CUI, cfg.Employer.Name, cfg.Revisal.Endpoint)
	d112Svc := services.NewD112Service(db, cfg.Employer.CUI, cfg.Employer.Name)

	app := &App{mux: http.NewServeMux()}
	app.setupRoutes(
		handlers.NewTemplateHandler(cat),
		handlers.NewContractHandler(contractSvc),
		handlers.NewSignatureHandler(signatureSvc),
		handlers.NewRevisalHandler(revisalSvc),
		handlers.NewD112Handler(d112Svc),
	)
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// setupRoutes configures all application routes.
func (a *App) setupRoutes(
	th *handlers.TemplateHandler,
	ch *handlers.ContractHandler,
	sh *handlers.SignatureHandler,
	rh *handlers.RevisalHandler,
	dh *handlers.D112Handler,
) {
	// Template catalog
	a.mux.HandleFunc("GET /templates", th.List)
	a.mux.HandleFunc("GET /templates/{id}", th.Get)

	// Contracts
	a.mux.HandleFunc("POST /contracts", ch.Generate)
	a.mux.HandleFunc("GET /contracts/{id}", ch.Get)
	a.mux.HandleFunc("POST /contracts/{id}/validate", ch.Validate)
	a.mux.HandleFunc("POST /contracts/{id}/activate", ch.Activate)

	// Signature workflow
	a.mux.HandleFunc("POST /contracts/{id}/signatures", sh.Request)
	a.mux.HandleFunc("POST /contracts/{id}/signatures/{requestID}", sh.Record)

	// Labor-registry submissions
	a.mux.HandleFunc("POST /revisal", rh.Create)
	a.mux.HandleFunc("GET /revisal/{id}", rh.Get)
	a.mux.HandleFunc("POST /revisal/{id}/validate", rh.Validate)
	a.mux.HandleFunc("POST /revisal/{id}/submit", rh.Submit)

	// Monthly payroll declarations
	a.mux.HandleFunc("POST /declarations", dh.Generate)
	a.mux.HandleFunc("GET /declarations/{id}", dh.Get)
	a.mux.HandleFunc("POST /declarations/{id}/submit", dh.Submit)
}
