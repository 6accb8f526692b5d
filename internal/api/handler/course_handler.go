package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/course-catalog/internal/core/domain"
	"github.com/learnhub/course-catalog/internal/core/ports"
)

type CourseHandler struct {
	courses ports.CourseService
}

func NewCourseHandler(courses ports.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

type courseRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Duration     string `json:"duration" validate:"required"`
	Outcome      string `json:"outcome" validate:"required"`
	CollectionID string `json:"collection_id"`
}

func (r courseRequest) input() ports.CourseInput {
	return ports.CourseInput{
		Title:        r.Title,
		Description:  r.Description,
		Duration:     r.Duration,
		Outcome:      r.Outcome,
		CollectionID: r.CollectionID,
	}
}

// List returns courses sorted by title.
//
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Param        limit       query     int     false  "Maximum number of courses"
// @Param        sort_order  query     string  false  "ASC or DESC"
// @Success      200         {array}   domain.Course
// @Router       /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	filter := ports.ListCoursesFilter{
		Limit:     limit,
		SortOrder: domain.ParseSortOrder(c.QueryParam("sort_order")),
	}

	courses, err := h.courses.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

// Get returns a single course by id.
//
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  domain.Course
// @Failure      404  {object}  map[string]string
// @Router       /courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.courses.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}

// Create adds a course owned by the caller.
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        body  body      courseRequest  true  "Course fields"
// @Success      201   {object}  domain.Course
// @Failure      401   {object}  map[string]string
// @Router       /courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	course, err := h.courses.Create(c.Request().Context(), identity, req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, course)
}

// Update replaces the mutable fields of a course.
//
// @Summary      Update a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Course id"
// @Param        body  body      courseRequest  true  "Course fields"
// @Success      200   {object}  domain.Course
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /courses/{id} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	course, err := h.courses.Update(c.Request().Context(), identity, c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}

// Delete removes a course.
//
// @Summary      Delete a course
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /courses/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.courses.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "course deleted"})
}
