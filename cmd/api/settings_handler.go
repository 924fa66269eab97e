package api

import (
	"net/http"
	"sync"

	"todo-desktop/internal/task/domain"

	"github.com/gin-gonic/gin"
)

// RuntimeConfig holds settings that can change while the app is running
type RuntimeConfig struct {
	DefaultFilter string `json:"default_filter"`
}

var (
	runtimeConfig     RuntimeConfig
	runtimeConfigLock sync.RWMutex
)

// InitRuntimeConfig seeds runtime config from static config. Unknown fields
// fall back to category.
func InitRuntimeConfig(defaultFilter string) {
	if !domain.ValidFilterField(defaultFilter) {
		defaultFilter = domain.FilterByCategory
	}
	runtimeConfigLock.Lock()
	defer runtimeConfigLock.Unlock()
	runtimeConfig = RuntimeConfig{DefaultFilter: defaultFilter}
}

// GetRuntimeDefaultFilter returns the filter field used when none is given
func GetRuntimeDefaultFilter() string {
	runtimeConfigLock.RLock()
	defer runtimeConfigLock.RUnlock()
	return runtimeConfig.DefaultFilter
}

// UpdateFilterSettingsRequest represents the request body for updating filter settings
type UpdateFilterSettingsRequest struct {
	DefaultFilter string `json:"default_filter" binding:"required"`
}

// GetFilterSettings returns the current default filter field
// GET /api/settings/filter
func GetFilterSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default_filter": GetRuntimeDefaultFilter(),
		"fields":         domain.FilterFields,
	})
}

// UpdateFilterSettings changes the default filter field at runtime
// PUT /api/settings/filter
func UpdateFilterSettings(c *gin.Context) {
	var req UpdateFilterSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidFilterField(req.DefaultFilter) {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidFilterField.Error()})
		return
	}

	runtimeConfigLock.Lock()
	runtimeConfig.DefaultFilter = req.DefaultFilter
	runtimeConfigLock.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"message":        "Filter settings updated successfully",
		"default_filter": req.DefaultFilter,
	})
}
