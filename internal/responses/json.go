package responses

import "github.com/gin-gonic/gin"

// APIResponse is the envelope of every API reply.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	ID      *int64      `json:"id,omitempty"`
}

// Data replies 200 with a payload.
func Data(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Data:    data,
	})
}

// Message replies with a human readable confirmation and no payload.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Message: message,
	})
}

// Created replies with a confirmation and the id of the new row.
func Created(c *gin.Context, statusCode int, id int64, message string) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Message: message,
		ID:      &id,
	})
}

// Fail replies with success=false. The error text is informational only.
func Fail(c *gin.Context, statusCode int, err error) {
	resp := APIResponse{Success: false}
	if err != nil {
		resp.Error = err.Error()
	}
	c.AbortWithStatusJSON(statusCode, resp)
}
