package httpresp

import "github.com/gin-gonic/gin"

// FranchisePage is the franchise listing envelope: one page of results
// plus whether more records exist beyond it.
type FranchisePage[T any] struct {
	Franchises []T  `json:"franchises"`
	More       bool `json:"more"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Message(c *gin.Context, msg string) {
	c.JSON(200, gin.H{"message": msg})
}
