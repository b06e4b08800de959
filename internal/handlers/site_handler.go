package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-site/internal/flash"
)

type SiteHandler struct {
	flash *flash.Store
}

func NewSiteHandler(flashStore *flash.Store) *SiteHandler {
	return &SiteHandler{flash: flashStore}
}

func (h *SiteHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Flashes": h.flash.Pop(c),
	})
}

func (h *SiteHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"Flashes": h.flash.Pop(c),
	})
}
