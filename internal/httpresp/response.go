package httpresp

import "github.com/gin-gonic/gin"

// ListResponse is the envelope every collection endpoint returns, so
// clients always get a total alongside the rows.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

// List writes a collection with its envelope. An empty slice stays an
// empty JSON array, never null.
func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
