package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"ops-backend/models"
	"ops-backend/repository"
)

// Store is the record store a Resource serves. *repository.Repository[T] implements it.
type Store[T any] interface {
	List(ctx context.Context, filter bson.M, opts repository.ListOptions) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, doc *T) error
	Update(ctx context.Context, id string, set bson.M) error
	Delete(ctx context.Context, id string) error
}

type ResourceConfig struct {
	Name string
	// Filters maps query parameters to document fields for equality filtering on List.
	Filters map[string]string
	// Required lists query parameters List refuses to run without.
	Required []string
	Sort     repository.ListOptions
}

// Resource serves list/get/create/update/delete for one collection. C is the create payload,
// U the partial update payload.
type Resource[T any, C any, U any] struct {
	cfg     ResourceConfig
	store   Store[T]
	build   func(C) *T
	changes func(U) bson.M
	log     *zap.Logger
}

func NewResource[T any, C any, U any](cfg ResourceConfig, store Store[T], build func(C) *T, changes func(U) bson.M, log *zap.Logger) *Resource[T, C, U] {
	if cfg.Sort.SortBy == "" {
		cfg.Sort = repository.Recent(0)
	}
	return &Resource[T, C, U]{cfg: cfg, store: store, build: build, changes: changes, log: log}
}

func (h *Resource[T, C, U]) List(c *fiber.Ctx) error {
	filter := bson.M{}
	for param, field := range h.cfg.Filters {
		if v := c.Query(param); v != "" {
			filter[field] = v
		}
	}
	for _, param := range h.cfg.Required {
		if c.Query(param) == "" {
			return respondError(c, h.log, badRequest(fmt.Sprintf("query parameter '%s' is required", param), nil))
		}
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	items, err := h.store.List(ctx, filter, h.cfg.Sort)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(items)
}

func (h *Resource[T, C, U]) Get(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	item, err := h.store.FindByID(ctx, c.Params("id"))
	if err != nil {
		return respondError(c, h.log, h.notFound(err))
	}
	return c.JSON(item)
}

func (h *Resource[T, C, U]) Create(c *fiber.Ctx) error {
	var payload C
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, h.log, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	item := h.build(payload)
	if err := h.store.Create(ctx, item); err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Update writes only the supplied fields and returns the stored record.
func (h *Resource[T, C, U]) Update(c *fiber.Ctx) error {
	var payload U
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, h.log, err)
	}
	set := h.changes(payload)
	if len(set) == 0 {
		return respondError(c, h.log, badRequest("No data to update", nil))
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	id := c.Params("id")
	if err := h.store.Update(ctx, id, set); err != nil {
		return respondError(c, h.log, h.notFound(err))
	}
	item, err := h.store.FindByID(ctx, id)
	if err != nil {
		return respondError(c, h.log, h.notFound(err))
	}
	return c.JSON(item)
}

func (h *Resource[T, C, U]) Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	if err := h.store.Delete(ctx, c.Params("id")); err != nil {
		return respondError(c, h.log, h.notFound(err))
	}
	return c.JSON(models.MessageResponse{Message: fmt.Sprintf("%s deleted successfully", h.cfg.Name)})
}

func (h *Resource[T, C, U]) notFound(err error) error {
	return notFound(h.cfg.Name, err)
}

// notFound names the missing record so the 404 body reads "<Name> not found".
func notFound(name string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s not found: %w", name, err)
	}
	return err
}
