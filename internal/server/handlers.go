package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"membuf/internal/memtable"
)

func (s *Server) handleHealthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func (s *Server) handlePutKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PutKeyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res, err := s.engine.Put(req.Key, req.Value)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		resp := PutKeyResponse{Key: req.Key, Value: req.Value, Result: res.String()}
		switch res {
		case memtable.PutInserted:
			c.JSON(http.StatusCreated, resp)
		case memtable.PutUpdated:
			c.JSON(http.StatusOK, resp)
		case memtable.PutRejected:
			// 507 Insufficient Storage: the buffer is full and the
			// write was not applied.
			c.JSON(http.StatusInsufficientStorage, gin.H{"error": "buffer full"})
		}
	}
}

func (s *Server) handleGetKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := strconv.ParseInt(c.Param("key"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "key must be an integer"})
			return
		}

		value, ok := s.engine.Get(key)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "key not found"})
			return
		}

		c.JSON(http.StatusOK, GetKeyResponse{Key: key, Value: value})
	}
}

func (s *Server) handleStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.engine.Stats())
	}
}
