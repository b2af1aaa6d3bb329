package handler

import (
	"fmt"
	"strconv"

	"gamecatalog/backend/internal/apperror"
	"gamecatalog/backend/internal/service"

	"github.com/gin-gonic/gin"
)

var paginationParams = map[string]bool{"limit": true, "offset": true}

// bindPagination reads the optional limit and offset query parameters.
// Any other parameter is rejected.
func bindPagination(c *gin.Context) (service.Pagination, error) {
	var p service.Pagination
	var messages []string

	query := c.Request.URL.Query()
	for key := range query {
		if !paginationParams[key] {
			messages = append(messages, fmt.Sprintf("property %s should not exist", key))
		}
	}

	parse := func(key string, lowest int) *int {
		raw, ok := query[key]
		if !ok {
			return nil
		}
		v, err := strconv.Atoi(raw[0])
		if err != nil || v < lowest {
			if lowest > 0 {
				messages = append(messages, fmt.Sprintf("%s must be a positive number", key))
			} else {
				messages = append(messages, fmt.Sprintf("%s must not be less than %d", key, lowest))
			}
			return nil
		}
		return &v
	}
	p.Limit = parse("limit", 1)
	p.Offset = parse("offset", 0)

	if len(messages) > 0 {
		return service.Pagination{}, apperror.ValidationFailed(messages)
	}
	return p, nil
}
