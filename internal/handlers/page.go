package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	apperrors "ouma-web/internal/errors"
	"ouma-web/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Page helpers
// Shared by the public site and the back office: template data, error pages,
// id parsing and spreadsheet downloads
// ===========================================================================

const (
	pageError = "pages/error.html"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// pageData merges data with the values every layout reads
func pageData(c *gin.Context, data gin.H) gin.H {
	site := middleware.GetSiteContent(c)
	out := gin.H{
		"Lang":    middleware.GetLang(c),
		"Site":    site,
		"Contact": site.Contact,
		"IsAdmin": middleware.IsAuthenticated(c),
		"CSRF":    middleware.GetCSRFToken(c),
		"Path":    c.Request.URL.Path,
		"Query":   c.Request.URL.Query(),
	}
	for k, v := range data {
		out[k] = v
	}
	return out
}

// render writes a template page
func render(c *gin.Context, status int, name string, data gin.H) {
	c.HTML(status, name, pageData(c, data))
}

// renderError writes the error page matching err. Server errors are logged.
func renderError(c *gin.Context, logger *zap.Logger, err error) {
	status := apperrors.StatusCode(err)
	key := "error_server"
	if status == http.StatusNotFound {
		key = "error_not_found"
	} else if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	render(c, status, pageError, gin.H{
		"Status":     status,
		"MessageKey": key,
	})
}

// parseID reads the :id path parameter. Anything that is not a positive
// integer is reported as ErrNotFound.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("id %q: %w", c.Param("id"), apperrors.ErrNotFound)
	}
	return uint(id), nil
}

// redirectBack sends the browser to the local page it came from, or fallback
func redirectBack(c *gin.Context, fallback string) {
	target := fallback
	if ref, err := url.Parse(c.GetHeader("Referer")); err == nil && strings.HasPrefix(ref.Path, "/") {
		target = ref.Path
		if ref.RawQuery != "" {
			target += "?" + ref.RawQuery
		}
	}
	c.Redirect(http.StatusFound, target)
}

// sendWorkbook buffers an xlsx export and sends it as a download, so a
// failing export can still produce an error page
func sendWorkbook(c *gin.Context, filename string, write func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	return nil
}

// NotFound renders the error page for unmatched routes
func NotFound(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderError(c, logger, apperrors.ErrNotFound)
	}
}
