package templates

import (
	"fmt"
	"text/template"
)

// UploadNotification is the plain-text body sent to topic subscribers
// when a file lands in a bucket.
const UploadNotification = `Serverless File Upload and Notification System

File "{{.FileName}}" was uploaded to bucket "{{.Bucket}}".
Key: {{.Key}}
Event time: {{.EventTime}}
Event name: {{.EventName}}
`

// ParseUploadNotification parses the default upload notification template
func ParseUploadNotification() (*template.Template, error) {
	return ParseNotification("upload-notification", UploadNotification)
}

// ParseNotification parses a notification body template
func ParseNotification(name, content string) (*template.Template, error) {
	return template.New(name).
		Option("missingkey=error").
		Parse(content)
}

// FormatBytes converts a byte count to a human-readable size for log lines
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
