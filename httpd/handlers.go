package httpd

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/uhppoted/uhppoted-app-links/links"
)

type SearchRequest struct {
	Folder      string `json:"folder" binding:"required"`
	Spreadsheet string `json:"spreadsheet" binding:"required"`
	Tab         string `json:"tab" binding:"required"`
	IDColumn    string `json:"id-column" binding:"required"`
	PhoneColumn string `json:"phone-column"`
	Mode        string `json:"mode"`
}

type LinkRequest struct {
	Spreadsheet string `json:"spreadsheet" binding:"required"`
	Tab         string `json:"tab" binding:"required"`
	Column      string `json:"column" binding:"required"`
}

type HitsResponse struct {
	Count int         `json:"count"`
	Total int         `json:"total"`
	Hits  []links.Hit `json:"hits"`
}

type LinkResponse struct {
	Written int         `json:"written"`
	Hits    []links.Hit `json:"hits"`
}

type ColumnInfo struct {
	links.Column
	Empty bool `json:"empty"`
}

func (api *API) FoldersHandler(c *gin.Context) {
	api.Lock()
	defer api.Unlock()

	folders, err := api.service.Folders(c.Request.Context())
	if err != nil {
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"folders": folders})
}

func (api *API) SpreadsheetsHandler(c *gin.Context) {
	api.Lock()
	defer api.Unlock()

	list, err := api.service.Spreadsheets(c.Request.Context())
	if err != nil {
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"spreadsheets": list})
}

func (api *API) TabsHandler(c *gin.Context) {
	api.Lock()
	defer api.Unlock()

	tabs, err := api.service.Tabs(c.Request.Context(), c.Param("spreadsheet"))
	if err != nil {
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tabs": tabs})
}

func (api *API) ColumnsHandler(c *gin.Context) {
	api.Lock()
	defer api.Unlock()

	columns, err := api.service.Columns(c.Request.Context(), c.Param("spreadsheet"), c.Param("tab"))
	if err != nil {
		sendServiceError(c, err)
		return
	}

	nonEmpty, err := api.service.NonEmptyColumns(c.Request.Context(), c.Param("spreadsheet"), c.Param("tab"))
	if err != nil {
		sendServiceError(c, err)
		return
	}

	used := map[string]bool{}
	for _, letter := range nonEmpty {
		used[letter] = true
	}

	list := []ColumnInfo{}
	for _, column := range columns {
		list = append(list, ColumnInfo{
			Column: column,
			Empty:  !used[column.Letter],
		})
	}

	c.JSON(http.StatusOK, gin.H{"columns": list})
}

func (api *API) SearchHandler(c *gin.Context) {
	var rq SearchRequest
	if err := c.ShouldBindJSON(&rq); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
		return
	}

	mode, err := links.ParseMode(rq.Mode)
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
		return
	}

	api.Lock()
	defer api.Unlock()

	ctx := c.Request.Context()

	config, err := api.service.Resolve(ctx, rq.Folder, rq.Spreadsheet, rq.Tab, rq.IDColumn, rq.PhoneColumn)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	N, hits, err := api.service.Search(ctx, config, mode)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, HitsResponse{
		Count: N,
		Total: len(hits),
		Hits:  hits,
	})
}

func (api *API) LinkHandler(c *gin.Context) {
	var rq LinkRequest
	if err := c.ShouldBindJSON(&rq); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
		return
	}

	api.Lock()
	defer api.Unlock()

	N, err := api.service.Link(c.Request.Context(), rq.Spreadsheet, rq.Tab, rq.Column)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, LinkResponse{
		Written: N,
		Hits:    api.service.Session().Hits(),
	})
}

func (api *API) HitsHandler(c *gin.Context) {
	api.Lock()
	defer api.Unlock()

	session := api.service.Session()

	c.JSON(http.StatusOK, HitsResponse{
		Count: session.Count(),
		Total: session.Len(),
		Hits:  session.Hits(),
	})
}

func (api *API) ClearHandler(c *gin.Context) {
	api.Lock()
	defer api.Unlock()

	api.service.Clear()

	c.Status(http.StatusNoContent)
}

func (api *API) ExportHandler(c *gin.Context) {
	api.Lock()
	hits := api.service.Session().Hits()
	api.Unlock()

	var b bytes.Buffer

	switch strings.ToLower(c.DefaultQuery("format", "tsv")) {
	case "tsv":
		if err := links.MakeTSV(&b, hits); err != nil {
			SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, err.Error())
			return
		}

		c.Header("Content-Disposition", `attachment; filename="hits.tsv"`)
		c.Data(http.StatusOK, "text/tab-separated-values; charset=utf-8", b.Bytes())

	case "xlsx":
		if err := links.MakeXLSX(&b, hits); err != nil {
			SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, err.Error())
			return
		}

		c.Header("Content-Disposition", `attachment; filename="hits.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", b.Bytes())

	default:
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "invalid export format - expected 'tsv' or 'xlsx'")
	}
}
