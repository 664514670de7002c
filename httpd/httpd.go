// Package httpd implements a local HTTP session server for the links service.
//
// The server holds a single links.Service for the lifetime of the process, so
// the listing cache and the session hit log persist across requests. Requests
// that use the service are serialised.
package httpd

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/uhppoted/uhppoted-app-links/links"
)

type API struct {
	sync.Mutex
	service *links.Service
}

func NewAPI(service *links.Service) *API {
	return &API{
		service: service,
	}
}

// NewRouter returns a gin engine with the session API routes.
func NewRouter(service *links.Service, debug bool) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(debug))

	SetupRoutes(router, NewAPI(service))

	return router
}

func SetupRoutes(router *gin.Engine, api *API) {
	router.GET("/folders", api.FoldersHandler)

	spreadsheets := router.Group("/spreadsheets")
	{
		spreadsheets.GET("", api.SpreadsheetsHandler)
		spreadsheets.GET("/:spreadsheet/tabs", api.TabsHandler)
		spreadsheets.GET("/:spreadsheet/tabs/:tab/columns", api.ColumnsHandler)
	}

	router.POST("/search", api.SearchHandler)
	router.POST("/link", api.LinkHandler)

	hits := router.Group("/hits")
	{
		hits.GET("", api.HitsHandler)
		hits.DELETE("", api.ClearHandler)
		hits.GET("/export", api.ExportHandler)
	}
}
