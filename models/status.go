package models

import "time"

// StatusCheck is a client-reported liveness ping stored for diagnostics.
type StatusCheck struct {
	ID         string    `json:"id" bson:"_id"`
	ClientName string    `json:"client_name" bson:"client_name"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}

type StatusCheckCreate struct {
	ClientName string `json:"client_name" binding:"required"`
}
