package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cropplan/entities"
	fieldrepo "cropplan/pkg/field/repository"
	"cropplan/pkg/plan/controller"
	"cropplan/pkg/plan/service"
	"cropplan/pkg/recommend"
)

type PlanCtrl struct {
	svc    service.PlanService
	fields fieldrepo.FieldRepository
}

func NewPlanCtrl(fields fieldrepo.FieldRepository, svc service.PlanService) controller.PlanController {
	return &PlanCtrl{svc: svc, fields: fields}
}

// field resolves :id for the calling user. On failure the response has
// already been written.
func (h *PlanCtrl) field(c echo.Context) (*entities.Field, error) {
	uid, _ := c.Get("uid").(string)
	fid, err := strconv.Atoi(c.Param("id"))
	if err != nil || fid <= 0 {
		return nil, c.JSON(http.StatusBadRequest, map[string]string{"error": "bad field id"})
	}
	f, err := h.fields.FindByID(uint(fid), uid)
	if err != nil {
		return nil, c.JSON(http.StatusNotFound, map[string]string{"error": "field not found"})
	}
	return f, nil
}

func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, recommend.ErrFieldNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, recommend.ErrInputShape):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func (h *PlanCtrl) Recommend(c echo.Context) error {
	f, err := h.field(c)
	if f == nil {
		return err
	}
	res, err := h.svc.Recommend(c.Request().Context(), f, c.QueryParam("season"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"plan":            res.Plan,
		"recommendations": res.List.Recommendations,
		"allocation":      res.List.Allocation,
		"message":         res.List.Message,
	})
}

func (h *PlanCtrl) Replan(c echo.Context) error {
	f, err := h.field(c)
	if f == nil {
		return err
	}
	var body service.ReplanRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	res, err := h.svc.Replan(c.Request().Context(), f, body)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":         res.Message,
		"plan":            res.Plan,
		"replan":          res.Log,
		"recommendations": res.Outcome.AdjustedPlan.Recommendations,
		"allocation":      res.Outcome.AdjustedPlan.Allocation,
	})
}

func (h *PlanCtrl) List(c echo.Context) error {
	f, err := h.field(c)
	if f == nil {
		return err
	}
	ps, err := h.svc.List(f.FieldID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, ps)
}
