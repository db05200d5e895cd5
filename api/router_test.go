package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/mazeball/api/i"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingController struct{}

func (pingController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/ping", func(ctx *gin.Context) { ctx.String(http.StatusOK, "pong") })
}

func TestRouterHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(Config{BaseURL: "/api", Controllers: []i.Controller{pingController{}}})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	w = httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
