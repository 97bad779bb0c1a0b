package entity

import (
	"gorm.io/gorm"
)

// Log is one row of the request audit trail, written after every
// response by the RequestLogger middleware.
type Log struct {
	gorm.Model
	Method         string `json:"method"`
	Route          string `json:"route"`
	Status         int    `json:"status"`
	RequestBody    string `json:"requestBody,omitempty"`
	ResponseTimeMs int64  `json:"responseTimeMs"`
	UserID         *uint  `json:"userId,omitempty"`
}
