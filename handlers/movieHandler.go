package handlers

import (
	"encoding/json"
	"net/http"

	"mealmax/movies"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func relayMovieResponse(c *gin.Context, logger *zap.Logger, data json.RawMessage, err error) {
	if err != nil {
		logger.Error("OMDb proxy error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reach movie API"})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// SearchByTitle は題名でOMDbを検索するハンドラです。
func SearchByTitle(c *gin.Context, client *movies.Client, logger *zap.Logger) {
	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title parameter is required"})
		return
	}
	data, err := client.SearchByTitle(c.Request.Context(), title)
	relayMovieResponse(c, logger, data, err)
}

// GetByID はIMDb IDで映画情報を取得するハンドラです。
func GetByID(c *gin.Context, client *movies.Client, logger *zap.Logger) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id parameter is required"})
		return
	}
	data, err := client.GetByID(c.Request.Context(), id)
	relayMovieResponse(c, logger, data, err)
}

// GetByTitle は題名で単一の映画情報を取得するハンドラです。
func GetByTitle(c *gin.Context, client *movies.Client, logger *zap.Logger) {
	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title parameter is required"})
		return
	}
	data, err := client.GetByTitle(c.Request.Context(), title)
	relayMovieResponse(c, logger, data, err)
}

// SearchByYear は題名と公開年でOMDbを検索するハンドラです。
func SearchByYear(c *gin.Context, client *movies.Client, logger *zap.Logger) {
	title := c.Query("title")
	year := c.Query("year")
	if title == "" || year == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and year parameters are required"})
		return
	}
	data, err := client.SearchByYear(c.Request.Context(), title, year)
	relayMovieResponse(c, logger, data, err)
}

// SearchByType は題名と種別でOMDbを検索するハンドラです。
func SearchByType(c *gin.Context, client *movies.Client, logger *zap.Logger) {
	title := c.Query("title")
	mediaType := c.Query("type")
	if title == "" || mediaType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and type parameters are required"})
		return
	}
	data, err := client.SearchByType(c.Request.Context(), title, mediaType)
	relayMovieResponse(c, logger, data, err)
}
