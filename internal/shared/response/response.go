// Package response writes the JSON envelope shared by every endpoint:
// {"ok", "data", "meta", "error"}.
package response

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type PaginationMeta struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
}

func NewPaginationMeta(total int64, page, pageSize int) PaginationMeta {
	meta := PaginationMeta{Total: total, Page: page, PageSize: pageSize}
	if pageSize > 0 {
		meta.TotalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return meta
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ApiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  any             `json:"data,omitempty"`
	Meta  *PaginationMeta `json:"meta,omitempty"`
	Error *ErrorBody      `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data any, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{Ok: true, Data: data, Meta: meta})
}

func Error(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, ApiEnvelope{
		Error: &ErrorBody{Code: code, Message: message, Details: details},
	})
}

// Paginate slices items by the page and page_size query parameters. With
// neither parameter the whole list is returned as a single page. Invalid
// values fall back to page 1 of DefaultPageSize and page_size is capped at
// MaxPageSize.
func Paginate[T any](c *gin.Context, items []T) ([]T, PaginationMeta) {
	total := int64(len(items))
	if c.Query("page") == "" && c.Query("page_size") == "" {
		return items, NewPaginationMeta(total, 1, len(items))
	}

	page := queryInt(c, "page", 1)
	pageSize := min(queryInt(c, "page_size", DefaultPageSize), MaxPageSize)

	// bound page before multiplying so huge page numbers cannot overflow
	start := len(items)
	if page-1 <= len(items)/pageSize {
		start = min((page-1)*pageSize, len(items))
	}
	end := min(start+pageSize, len(items))

	return items[start:end], NewPaginationMeta(total, page, pageSize)
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return def
	}
	return v
}
