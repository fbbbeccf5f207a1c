package models

import "time"

// SubmissionAudit is the Mongo trace written for every record created
// through this service. It keeps who submitted what, independently of the
// records API's own storage.
type SubmissionAudit struct {
	RecordID    string    `bson:"record_id" json:"record_id"`
	PatientID   string    `bson:"patient_id" json:"patient_id"`
	SubmittedBy string    `bson:"submitted_by" json:"submitted_by"`
	Role        string    `bson:"role" json:"role"`
	BlockCount  int       `bson:"block_count" json:"block_count"`
	FieldCount  int       `bson:"field_count" json:"field_count"`
	SubmittedAt time.Time `bson:"submitted_at" json:"submitted_at"`
}
