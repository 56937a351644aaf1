package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers HTTP 200 with a status field of "success" or
// "error"; clients discriminate on the body, not the status code. This
// is the observed contract of the API and is kept as-is.

func success(c *gin.Context, body gin.H) {
	body["status"] = "success"
	c.JSON(http.StatusOK, body)
}

func fail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"status": "error", "message": message})
}

// intField coerces a loosely typed JSON value into an int64. Clients
// send numbers and numeric strings interchangeably.
func intField(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

// floatField coerces a loosely typed JSON value into a float64.
func floatField(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
