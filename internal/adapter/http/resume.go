package http

import (
	"strings"

	"portfolio-cms/internal/model"
	"portfolio-cms/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// missingHeader carries the readiness report next to a generated document.
const missingHeader = "X-Resume-Missing"

func exportRequest(c *fiber.Ctx) usecase.ExportRequest {
	return usecase.ExportRequest{
		VariantID:       c.Query("variant"),
		IncludeProjects: c.QueryBool("projects", true),
	}
}

func (h *Handler) listVariants(c *fiber.Ctx) error {
	return c.JSON(h.export.Variants())
}

func (h *Handler) resumeHTML(c *fiber.Ctx) error {
	res, err := h.export.HTML(c.UserContext(), exportRequest(c))
	if err != nil {
		return err
	}
	setReadiness(c, res)
	c.Type("html", "utf-8")
	return c.SendString(res.HTML)
}

func (h *Handler) resumePDF(c *fiber.Ctx) error {
	req := exportRequest(c)
	pdf, res, err := h.export.PDF(c.UserContext(), req)
	if err != nil {
		return err
	}
	setReadiness(c, res)
	name := "resume.pdf"
	if req.VariantID != "" {
		name = "resume-" + strings.ToLower(req.VariantID) + ".pdf"
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(name)
	return c.Send(pdf)
}

func setReadiness(c *fiber.Ctx, res *usecase.ExportResult) {
	if res != nil && len(res.Readiness.Missing) > 0 {
		c.Set(missingHeader, strings.Join(res.Readiness.Missing, ","))
	}
}

func (h *Handler) getReadme(c *fiber.Ctx) error {
	text, err := h.readme.Get(c.UserContext(), c.Params("owner"), c.Params("repo"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
	return c.SendString(text)
}

type syncBody struct {
	Username       string `json:"username"`
	Token          string `json:"token"`
	MaxRepos       *int   `json:"maxRepos"`
	IncludePrivate *bool  `json:"includePrivate"`
}

// syncGitHub runs a repository sync. Missing body fields, and a zero
// maxRepos, take their values from the server configuration. The result is always 200; failures are
// reported in its errors list.
func (h *Handler) syncGitHub(c *fiber.Ctx) error {
	var body syncBody
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
	}
	req := usecase.SyncRequest{
		Username:       firstNonEmpty(body.Username, h.github.Username),
		Token:          firstNonEmpty(body.Token, h.github.Token),
		MaxRepos:       h.github.MaxRepos,
		IncludePrivate: h.github.IncludePrivate,
	}
	if body.MaxRepos != nil && *body.MaxRepos != 0 {
		req.MaxRepos = *body.MaxRepos
	}
	if body.IncludePrivate != nil {
		req.IncludePrivate = *body.IncludePrivate
	}
	if req.MaxRepos < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "maxRepos must not be negative")
	}
	return c.JSON(h.sync.Sync(c.UserContext(), req))
}

func (h *Handler) listSyncRuns(c *fiber.Ctx) error {
	runs, err := h.stores.SyncRuns.ListRecent(c.UserContext(), c.QueryInt("limit", 20))
	if err != nil {
		return err
	}
	return c.JSON(orEmpty(runs))
}

func (h *Handler) importProfile(c *fiber.Ctx) error {
	doc, err := model.Decode(c.Body())
	if err != nil {
		return err
	}
	res, err := h.importer.Import(c.UserContext(), doc.ResumeProfile)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
