package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func run(mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, string) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var uid string
	_ = mw(func(c echo.Context) error {
		uid, _ = c.Get("uid").(string)
		return c.NoContent(http.StatusNoContent)
	})(c)
	return rec, uid
}

func TestDevLogin(t *testing.T) {
	_, uid := run(DevLogin(), httptest.NewRequest(http.MethodGet, "/", nil))
	if uid != defaultUID {
		t.Errorf("default uid = %q", uid)
	}
	_, uid = run(DevLogin(), httptest.NewRequest(http.MethodGet, "/?uid=farmer7", nil))
	if uid != "farmer7" {
		t.Errorf("query uid = %q", uid)
	}
	req := httptest.NewRequest(http.MethodGet, "/?uid=other", nil)
	req.AddCookie(&http.Cookie{Name: uidCookie, Value: "cookie-user"})
	if _, uid = run(DevLogin(), req); uid != "cookie-user" {
		t.Errorf("cookie should win, got %q", uid)
	}
}

func TestLIFF(t *testing.T) {
	rec, _ := run(Identity(true), httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing uid: %d", rec.Code)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Line-Uid", "U123")
	if _, uid := run(Identity(true), req); uid != "U123" {
		t.Errorf("header uid = %q", uid)
	}
	if rec, uid := run(LIFF(false), httptest.NewRequest(http.MethodGet, "/", nil)); rec.Code != http.StatusNoContent || uid != "" {
		t.Errorf("disabled: %d %q", rec.Code, uid)
	}
}
