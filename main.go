package main

import (
	"log"
	"os"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"zignexweb/api"
	"zignexweb/commands"
	"zignexweb/config"
	"zignexweb/handlers"
	"zignexweb/metrics"
	"zignexweb/page"
)

func main() {
	configPath := os.Getenv("SITE_CONFIG")
	if configPath == "" {
		configPath = ".env"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	src, err := api.NewSource(cfg)
	if err != nil {
		log.Fatal(err)
	}

	sessions := page.NewSessions(cfg.FormSessionTTL, func() *page.ContactForm {
		return page.NewContactForm(src, cfg.ConfirmationInterval)
	})
	defer sessions.Close()

	contact := handlers.ContactDeps{
		Source:      src,
		Sessions:    sessions,
		Interval:    cfg.ConfirmationInterval,
		PageTimeout: cfg.PageLoadTimeout,
		SessionTTL:  cfg.FormSessionTTL,
	}

	app := pocketbase.New()
	commands.Register(app.RootCmd, src, cfg.PageLoadTimeout)

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))
		se.Router.GET("/metrics", apis.WrapStdHandler(metrics.Handler()))

		// Header data for every page
		se.Router.BindFunc(handlers.NavMiddleware(cfg))

		// ── Pages ────────────────────────────────────────────────
		se.Router.GET("/", handlers.HandleHome(src, cfg.PageLoadTimeout))
		se.Router.GET("/services", handlers.HandleServices(src, cfg.PageLoadTimeout))
		se.Router.GET("/planning", handlers.HandlePlanning(src, cfg.PageLoadTimeout))
		se.Router.GET("/about", handlers.HandleAbout(src, cfg.PageLoadTimeout))

		// ── Contact form ─────────────────────────────────────────
		se.Router.GET("/contact", handlers.HandleContact(contact))
		se.Router.GET("/contact/form", handlers.HandleContactForm(contact))
		se.Router.POST("/contact", handlers.HandleContactSubmit(contact))

		// ── Admin ────────────────────────────────────────────────
		if cfg.AdminEnabled {
			se.Router.GET("/admin/contact-submissions", handlers.HandleAdminSubmissions(src, cfg.PageLoadTimeout, time.Now))
			se.Router.GET("/admin/contact-submissions/export/excel", handlers.HandleSubmissionsExportExcel(src, time.Now))
			se.Router.GET("/admin/contact-submissions/export/pdf", handlers.HandleSubmissionsExportPDF(src, time.Now))
		}

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
