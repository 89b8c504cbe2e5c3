package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cropplan/entities"
	"cropplan/pkg/field/controller"
	"cropplan/pkg/field/service"
)

type FieldCtrl struct{ svc service.FieldService }

func New(svc service.FieldService) controller.FieldController { return &FieldCtrl{svc} }

type createReq struct {
	Name          string  `json:"name"`
	AreaHa        float64 `json:"area_ha"`
	Province      string  `json:"province"`
	District      string  `json:"district"`
	SoilTexture   string  `json:"soil_texture"`
	IrrigationSrc string  `json:"irrigation_src"`
	WaterQuotaMM  float64 `json:"water_quota_mm"`
	Season        string  `json:"season"`
}

func (h *FieldCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f := &entities.Field{
		UserID: uid, Name: req.Name, AreaHa: req.AreaHa, Province: req.Province, District: req.District,
		SoilTexture: req.SoilTexture, IrrigationSrc: req.IrrigationSrc, WaterQuotaMM: req.WaterQuotaMM, Season: req.Season,
	}
	f, err := h.svc.CreateField(f)
	if errors.Is(err, service.ErrInvalidField) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FieldCtrl) Get(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad field id"})
	}
	f, err := h.svc.GetFieldByID(uint(id), uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}
