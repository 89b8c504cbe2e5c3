package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cropplan/entities"
	fieldrepo "cropplan/pkg/field/repository"
	"cropplan/pkg/history/controller"
	"cropplan/pkg/history/service"
)

type HistoryCtrl struct {
	svc    service.HistoryService
	fields fieldrepo.FieldRepository
}

func New(fields fieldrepo.FieldRepository, svc service.HistoryService) controller.HistoryController {
	return &HistoryCtrl{svc: svc, fields: fields}
}

type histReq struct {
	CropID   string  `json:"crop_id"`
	Season   string  `json:"season"`
	Year     int     `json:"year"`
	YieldTHa float64 `json:"yield_t_ha"`
}

func (h *HistoryCtrl) fieldID(c echo.Context) (uint, bool) {
	uid, _ := c.Get("uid").(string)
	fid, err := strconv.Atoi(c.Param("id"))
	if err != nil || fid <= 0 {
		return 0, false
	}
	if _, err := h.fields.FindByID(uint(fid), uid); err != nil {
		return 0, false
	}
	return uint(fid), true
}

func (h *HistoryCtrl) Create(c echo.Context) error {
	fid, ok := h.fieldID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "field not found"})
	}
	var req histReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	rec, err := h.svc.Record(&entities.FieldCropHistory{
		FieldID: fid, CropID: req.CropID, Season: req.Season, Year: req.Year, YieldTHa: req.YieldTHa,
	})
	if errors.Is(err, service.ErrInvalidRecord) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *HistoryCtrl) List(c echo.Context) error {
	fid, ok := h.fieldID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "field not found"})
	}
	out, err := h.svc.List(fid, c.QueryParam("crop"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
