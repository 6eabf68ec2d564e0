package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type validator interface {
	Validate() error
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// decode parses the JSON body into item and runs its Validate method when it has one.
func decode[T any](c *fiber.Ctx, item *T) error {
	if err := c.BodyParser(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if v, ok := any(item).(validator); ok {
		return v.Validate()
	}
	return nil
}

func listItems[T any](store Collection[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := store.List(c.UserContext())
		if err != nil {
			return err
		}
		if items == nil {
			items = []T{}
		}
		return c.JSON(items)
	}
}

func getItem[T any](store CRUD[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		item, err := store.Get(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(item)
	}
}

func createItem[T any](store Collection[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var item T
		if err := decode(c, &item); err != nil {
			return err
		}
		if err := store.Create(c.UserContext(), &item); err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

func updateItem[T any](store CRUD[T], setID func(*T, uuid.UUID)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		var item T
		if err := decode(c, &item); err != nil {
			return err
		}
		setID(&item, id)
		if err := store.Update(c.UserContext(), &item); err != nil {
			return err
		}
		return c.JSON(item)
	}
}

func deleteItem[T any](store Collection[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		if err := store.Delete(c.UserContext(), id); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
