package http

import (
	"portfolio-cms/internal/domain"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "database": h.dbReady})
}

func (h *Handler) getProfile(c *fiber.Ctx) error {
	p, err := h.stores.Personal.Get(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(p)
}

func (h *Handler) saveProfile(c *fiber.Ctx) error {
	var p domain.PersonalInfo
	if err := decode(c, &p); err != nil {
		return err
	}
	if err := h.stores.Personal.Save(c.UserContext(), &p); err != nil {
		return err
	}
	return c.JSON(p)
}

func (h *Handler) getAbout(c *fiber.Ctx) error {
	a, err := h.stores.About.Get(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(a)
}

func (h *Handler) saveAbout(c *fiber.Ctx) error {
	var a domain.AboutContent
	if err := c.BodyParser(&a); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.stores.About.Save(c.UserContext(), &a); err != nil {
		return err
	}
	return c.JSON(a)
}

// listSkills serves stored skills, or the seed list when there are none.
func (h *Handler) listSkills(c *fiber.Ctx) error {
	if h.dbReady {
		skills, err := h.stores.Skills.List(c.UserContext())
		if err != nil {
			return err
		}
		if len(skills) > 0 {
			return c.JSON(skills)
		}
	}
	return c.JSON(orEmpty(h.seed.Skills))
}

// listProjects serves stored projects, or the seed list when there are none.
func (h *Handler) listProjects(c *fiber.Ctx) error {
	if h.dbReady {
		projects, err := h.stores.Projects.List(c.UserContext())
		if err != nil {
			return err
		}
		if len(projects) > 0 {
			return c.JSON(projects)
		}
	}
	return c.JSON(orEmpty(h.seed.Projects))
}

func (h *Handler) listExpertise(c *fiber.Ctx) error {
	return c.JSON(orEmpty(h.seed.Expertise))
}

func (h *Handler) listStoredSkills(c *fiber.Ctx) error {
	skills, err := h.stores.Skills.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(orEmpty(skills))
}

func (h *Handler) upsertSkill(c *fiber.Ctx) error {
	var s domain.Skill
	if err := decode(c, &s); err != nil {
		return err
	}
	if err := h.stores.Skills.Upsert(c.UserContext(), &s); err != nil {
		return err
	}
	return c.JSON(s)
}

func (h *Handler) deleteSkill(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.stores.Skills.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
