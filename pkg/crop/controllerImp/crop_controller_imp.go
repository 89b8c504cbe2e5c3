package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cropplan/entities"
	"cropplan/pkg/crop/controller"
	"cropplan/pkg/crop/service"
)

type CropCtrl struct{ svc service.CropService }

func New(svc service.CropService) controller.CropController { return &CropCtrl{svc} }

func (h *CropCtrl) List(c echo.Context) error {
	out, err := h.svc.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Get(c echo.Context) error {
	cr, err := h.svc.Get(c.Param("crop_id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "crop not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cr)
}

// Put creates or replaces the catalogue entry named in the path.
func (h *CropCtrl) Put(c echo.Context) error {
	var body entities.Crop
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	body.CropID = c.Param("crop_id")
	cr, err := h.svc.Upsert(&body)
	if errors.Is(err, service.ErrInvalidCrop) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cr)
}
