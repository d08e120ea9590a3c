package events

import "time"

// Ingested is published after an inventory batch has been reconciled.
type Ingested struct {
	UploadID     string    `json:"upload_id"`
	TotalRecords int       `json:"total_records"`
	Created      int       `json:"created"`
	Updated      int       `json:"updated"`
	Errors       int       `json:"errors"`
	StoreIDs     []uint    `json:"store_ids"`
	At           time.Time `json:"at"`
}
