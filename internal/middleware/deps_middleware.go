package middleware

import (
	"github.com/farellandr/gigbook/internal/catalog"
	"github.com/farellandr/gigbook/internal/logger"
	"github.com/farellandr/gigbook/internal/store"
	"github.com/gin-gonic/gin"
)

const (
	storeKey   = "store"
	catalogKey = "catalog"
	loggerKey  = "logger"
)

func StoreMiddleware(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(storeKey, s)
		c.Next()
	}
}

func GetStore(c *gin.Context) *store.Store {
	s, exists := c.Get(storeKey)
	if !exists {
		return nil
	}
	return s.(*store.Store)
}

func CatalogMiddleware(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(catalogKey, svc)
		c.Next()
	}
}

func GetCatalog(c *gin.Context) *catalog.Service {
	svc, exists := c.Get(catalogKey)
	if !exists {
		return nil
	}
	return svc.(*catalog.Service)
}

func LoggerMiddleware(log logger.LoggerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(loggerKey, log)
		c.Next()
	}
}

// GetLogger returns the request logger, tagged with the request id when one
// was assigned.
func GetLogger(c *gin.Context) logger.LoggerService {
	log, exists := c.Get(loggerKey)
	if !exists {
		return nil
	}
	l := log.(logger.LoggerService)
	if id := GetRequestID(c); id != "" {
		return l.Named(id)
	}
	return l
}
