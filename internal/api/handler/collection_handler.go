package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/course-catalog/internal/core/ports"
)

type CollectionHandler struct {
	collections ports.CollectionService
}

func NewCollectionHandler(collections ports.CollectionService) *CollectionHandler {
	return &CollectionHandler{collections: collections}
}

type collectionRequest struct {
	Name string `json:"name" validate:"required"`
}

// List returns all collections with their courses embedded.
func (h *CollectionHandler) List(c echo.Context) error {
	collections, err := h.collections.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, collections)
}

// Get returns a single collection by id.
func (h *CollectionHandler) Get(c echo.Context) error {
	collection, err := h.collections.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, collection)
}

// Create adds a collection owned by the caller.
func (h *CollectionHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req collectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	collection, err := h.collections.Create(c.Request().Context(), identity, ports.CollectionInput{Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, collection)
}

// Update renames a collection.
func (h *CollectionHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req collectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	collection, err := h.collections.Update(c.Request().Context(), identity, c.Param("id"), ports.CollectionInput{Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, collection)
}

// Delete removes a collection.
func (h *CollectionHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.collections.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "collection deleted"})
}
