package translator

import (
	"encoding/json"
	"net/http"
)

const (
	MessageNotificationSent = "Notification sent via SNS"
	MessageEventReceived    = "S3 event received"
)

// NotificationResult is the acknowledgment returned for a handled event.
type NotificationResult struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	MessageID  string `json:"snsMessageId,omitempty"`
	Bucket     string `json:"bucket"`
	Key        string `json:"key"`
	FileName   string `json:"fileName"`
}

// Response is the value handed back to the Lambda runtime.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

func (r NotificationResult) Response() (Response, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return Response{}, err
	}
	return Response{StatusCode: r.StatusCode, Body: string(body)}, nil
}

func newResult(message, messageID, bucket, key, fileName string) NotificationResult {
	return NotificationResult{
		StatusCode: http.StatusOK,
		Message:    message,
		MessageID:  messageID,
		Bucket:     bucket,
		Key:        key,
		FileName:   fileName,
	}
}
