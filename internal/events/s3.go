package events

import (
	"encoding/json"
	"log"
)

// Unknown replaces optional record fields that S3 did not send.
const Unknown = "unknown"

type S3EventRecord struct {
	EventSource string  `json:"eventSource"`
	AWSRegion   string  `json:"awsRegion"`
	EventTime   *string `json:"eventTime"`
	EventName   *string `json:"eventName"`
	S3          *struct {
		Bucket *struct {
			Name *string `json:"name"`
		} `json:"bucket"`
		Object *struct {
			Key       *string `json:"key"`
			Size      int64   `json:"size,omitempty"`
			ETag      string  `json:"eTag,omitempty"`
			VersionID string  `json:"versionId,omitempty"`
		} `json:"object"`
	} `json:"s3"`
}

type S3Event struct {
	Records []S3EventRecord `json:"Records"`
}

// ObjectCreated is the validated subset of a record the notifier works with.
// Key is still URL-encoded as delivered by S3.
type ObjectCreated struct {
	Bucket    string
	Key       string
	EventTime string
	EventName string
	Region    string
	Size      int64
}

// ParseS3Event decodes a raw S3 notification and validates the first record.
// Only Records[0] is ever used; any further records are logged and dropped.
func ParseS3Event(raw json.RawMessage) (ObjectCreated, error) {
	var event S3Event
	if err := json.Unmarshal(raw, &event); err != nil {
		return ObjectCreated{}, ErrorDecodingEvent(err)
	}
	return event.FirstObjectCreated()
}

func (e *S3Event) FirstObjectCreated() (ObjectCreated, error) {
	if e.Records == nil {
		return ObjectCreated{}, ErrorMissingField("Records")
	}
	if len(e.Records) == 0 {
		return ObjectCreated{}, ErrorMalformedEvent("Records is empty")
	}
	if len(e.Records) > 1 {
		log.Printf("Event contains %d records, only the first is processed", len(e.Records))
	}

	return e.Records[0].Validate()
}

// Validate checks the record for the fields needed to build a notification.
func (r S3EventRecord) Validate() (ObjectCreated, error) {
	if r.S3 == nil {
		return ObjectCreated{}, ErrorMissingField("Records[0].s3")
	}
	if r.S3.Bucket == nil || r.S3.Bucket.Name == nil || *r.S3.Bucket.Name == "" {
		return ObjectCreated{}, ErrorMissingField("Records[0].s3.bucket.name")
	}
	if r.S3.Object == nil || r.S3.Object.Key == nil || *r.S3.Object.Key == "" {
		return ObjectCreated{}, ErrorMissingField("Records[0].s3.object.key")
	}

	return ObjectCreated{
		Bucket:    *r.S3.Bucket.Name,
		Key:       *r.S3.Object.Key,
		EventTime: valueOrUnknown(r.EventTime),
		EventName: valueOrUnknown(r.EventName),
		Region:    r.AWSRegion,
		Size:      r.S3.Object.Size,
	}, nil
}

func (o ObjectCreated) IsObjectCreatedEvent() bool {
	return IsObjectCreatedEventName(o.EventName)
}

func valueOrUnknown(v *string) string {
	if v == nil || *v == "" {
		return Unknown
	}
	return *v
}
