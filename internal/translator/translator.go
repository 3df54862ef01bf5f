package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"text/template"

	"fileupload/internal/events"
	"fileupload/internal/files"
	"fileupload/internal/notifications"
	"fileupload/internal/templates"
)

// Translator turns one S3 object-created event into at most one notification.
// It holds no per-event state and is safe for concurrent use.
type Translator struct {
	decodeOnly bool
	publisher  notifications.Publisher
	template   *template.Template
	topicArn   string
}

// New creates a Translator that publishes to topicArn
func New(publisher notifications.Publisher, topicArn string) (*Translator, error) {
	if publisher == nil {
		return nil, ErrorInvalidTranslator("publisher is required")
	}
	if topicArn == "" {
		return nil, ErrorInvalidTranslator("topic arn is required")
	}

	tmpl, err := templates.ParseUploadNotification()
	if err != nil {
		return nil, ErrorInvalidTranslator(fmt.Sprintf("parsing template: %v", err))
	}

	return &Translator{
		publisher: publisher,
		template:  tmpl,
		topicArn:  topicArn,
	}, nil
}

// NewDecodeOnly creates a Translator that only decodes and logs events
func NewDecodeOnly() *Translator {
	return &Translator{decodeOnly: true}
}

func (t *Translator) DecodeOnly() bool {
	return t.decodeOnly
}

// Handle processes Records[0] of the event. Extra records are ignored.
func (t *Translator) Handle(ctx context.Context, event json.RawMessage) (NotificationResult, error) {
	record, err := events.ParseS3Event(event)
	if err != nil {
		log.Printf("Rejecting malformed event: %v", err)
		return NotificationResult{}, err
	}

	obj, err := files.NewS3ObjectFromEncodedKey(record.Bucket, record.Key)
	if err != nil {
		log.Printf("Rejecting event with undecodable key: %v", err)
		return NotificationResult{}, events.ErrorMalformedKey(err)
	}
	fileName := obj.FileName()

	if !record.IsObjectCreatedEvent() {
		log.Printf("Unexpected event name %q for %s, handling as upload", record.EventName, obj.URI())
	}

	if t.decodeOnly {
		log.Printf("New file uploaded: %s", obj.URI())
		log.Printf("File name only    : %s", fileName)
		return newResult(MessageEventReceived, "", obj.Bucket, obj.Key, fileName), nil
	}

	if record.Size > 0 {
		log.Printf("Processing upload event for %s (%s, %s)",
			obj.URI(), templates.FormatBytes(record.Size), record.EventName)
	} else {
		log.Printf("Processing upload event for %s (%s)", obj.URI(), record.EventName)
	}

	notification := notifications.FileUploadedNotification{
		Bucket:    obj.Bucket,
		Key:       obj.Key,
		FileName:  fileName,
		EventTime: record.EventTime,
		EventName: record.EventName,
		Template:  t.template,
		Topic:     t.topicArn,
	}

	messageID, err := notifications.SendNotification(ctx, t.publisher, notification)
	if err != nil {
		log.Printf("Failed to send notification for %s: %v", obj.URI(), err)
		return NotificationResult{}, err
	}

	return newResult(MessageNotificationSent, messageID, obj.Bucket, obj.Key, fileName), nil
}
