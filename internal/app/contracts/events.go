package contracts

import "context"

// RecordCreatedEvent is published after a pregnancy record is accepted by
// the records API.
type RecordCreatedEvent struct {
	RecordID    string `json:"record_id"`
	PatientID   string `json:"patient_id"`
	SubmittedBy string `json:"submitted_by"`
	SubmittedAt string `json:"submitted_at"`
}

type EventPublisher interface {
	PublishRecordCreated(ctx context.Context, event RecordCreatedEvent) error
}
