package http

import (
	"portfolio-cms/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewApp builds the fiber application with every route registered.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "portfolio-cms",
		ErrorHandler: h.ErrorHandler,
		BodyLimit:    8 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(h.requestLogger)
	h.Register(app)
	return app
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/healthz", h.health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// seed-backed or database-free routes
	api.Get("/skills", h.listSkills)
	api.Get("/projects", h.listProjects)
	api.Get("/expertise", h.listExpertise)
	api.Get("/projects/:owner/:repo/readme", h.getReadme)
	api.Get("/resume/variants", h.listVariants)

	db := h.requireDB
	api.Get("/profile", db, h.getProfile)
	api.Get("/about", db, h.getAbout)
	api.Get("/experience", db, listItems[domain.Experience](h.stores.Experience))
	api.Get("/education", db, listItems[domain.Education](h.stores.Education))
	api.Get("/certifications", db, listItems[domain.Certification](h.stores.Certifications))
	api.Get("/roadmap", db, listItems[domain.RoadmapPhase](h.stores.Roadmap))
	api.Get("/testimonials", db, listItems[domain.Testimonial](h.stores.Testimonials))
	api.Get("/technologies", db, listItems[domain.Technology](h.stores.Technologies))
	api.Get("/resume", db, h.resumeHTML)
	api.Get("/resume.pdf", db, h.resumePDF)

	admin := api.Group("/admin", h.adminAuth(), db)
	admin.Put("/profile", h.saveProfile)
	admin.Post("/profile/import", h.importProfile)
	admin.Put("/about", h.saveAbout)

	crud(admin, "/experience", h.stores.Experience, func(e *domain.Experience, id uuid.UUID) { e.ID = id })
	crud(admin, "/education", h.stores.Education, func(e *domain.Education, id uuid.UUID) { e.ID = id })
	crud(admin, "/projects", h.stores.Projects, func(p *domain.Project, id uuid.UUID) { p.ID = id })
	crud(admin, "/certifications", h.stores.Certifications, func(c *domain.Certification, id uuid.UUID) { c.ID = id })
	crud(admin, "/roadmap", h.stores.Roadmap, func(p *domain.RoadmapPhase, id uuid.UUID) { p.ID = id })

	admin.Get("/testimonials", listItems[domain.Testimonial](h.stores.Testimonials))
	admin.Post("/testimonials", createItem[domain.Testimonial](h.stores.Testimonials))
	admin.Delete("/testimonials/:id", deleteItem[domain.Testimonial](h.stores.Testimonials))
	admin.Get("/technologies", listItems[domain.Technology](h.stores.Technologies))
	admin.Post("/technologies", createItem[domain.Technology](h.stores.Technologies))
	admin.Delete("/technologies/:id", deleteItem[domain.Technology](h.stores.Technologies))

	admin.Get("/skills", h.listStoredSkills)
	admin.Post("/skills", h.upsertSkill)
	admin.Delete("/skills/:id", h.deleteSkill)

	admin.Post("/sync/github", h.syncGitHub)
	admin.Get("/sync/runs", h.listSyncRuns)
}

func crud[T any](r fiber.Router, path string, store CRUD[T], setID func(*T, uuid.UUID)) {
	r.Get(path, listItems[T](store))
	r.Get(path+"/:id", getItem[T](store))
	r.Post(path, createItem[T](store))
	r.Put(path+"/:id", updateItem[T](store, setID))
	r.Delete(path+"/:id", deleteItem[T](store))
}
