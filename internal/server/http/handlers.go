package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/transferbench/internal/common"
	"github.com/dmitrijs2005/transferbench/internal/server/employees"
	"github.com/gin-gonic/gin"
)

func errorBody(msg string) gin.H {
	return gin.H{"error": msg}
}

func (s *HTTPServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return n, nil
}

func (s *HTTPServer) listEmployees(c *gin.Context) {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	size, err := queryInt(c, "pageSize", employees.DefaultPageSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	p, err := s.employees.Page(c.Request.Context(), page, size)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidPage) {
			c.JSON(http.StatusBadRequest, errorBody(fmt.Sprintf("page must be >= 1 and pageSize in [1, %d]", employees.MaxPageSize)))
			return
		}
		s.logger.Error(c.Request.Context(), "list employees failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	c.JSON(http.StatusOK, p)
}

// streamEmployees writes one "employee" event per row and a closing "end"
// event with the row count.
func (s *HTTPServer) streamEmployees(c *gin.Context) {
	max, err := queryInt(c, "max", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	ctx := c.Request.Context()
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	n, err := s.employees.Stream(ctx, max, func(e employees.Employee) error {
		c.SSEvent("employee", e)
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			s.logger.Info(ctx, "employee event stream cancelled", "rows", n)
			return
		}
		s.logger.Error(ctx, "employee event stream failed", "rows", n, "error", err)
		c.SSEvent("error", errorBody("internal error"))
		c.Writer.Flush()
		return
	}

	c.SSEvent("end", gin.H{"count": n})
	c.Writer.Flush()
}

func (s *HTTPServer) downloadPayroll(c *gin.Context) {
	ctx := c.Request.Context()

	rc, info, err := s.store.Open(ctx, c.Param("name"))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorInvalidFileName):
			c.JSON(http.StatusBadRequest, errorBody("invalid file name"))
		case errors.Is(err, common.ErrorNotFound):
			c.JSON(http.StatusNotFound, errorBody("file not found"))
		default:
			s.logger.Error(ctx, "payroll open failed", "error", err)
			c.JSON(http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, info.Size, "application/octet-stream", rc, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename=%q`, info.Name),
	})
}

func (s *HTTPServer) payrollURL(c *gin.Context) {
	if s.presigner == nil {
		c.JSON(http.StatusNotImplemented, errorBody("presigned URLs need the S3 store"))
		return
	}

	ctx := c.Request.Context()
	u, err := s.presigner.PresignGet(ctx, c.Param("name"), s.presignTTL)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidFileName) {
			c.JSON(http.StatusBadRequest, errorBody("invalid file name"))
			return
		}
		s.logger.Error(ctx, "presign failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": u, "expiresIn": int(s.presignTTL.Seconds())})
}
