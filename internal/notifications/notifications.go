package notifications

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"
)

// MaxSubjectLength is the SNS limit for email subjects. Subjects must be
// shorter than this.
const MaxSubjectLength = 100

// SNSNotification represents an abstraction for a notification to be published via AWS SNS.
type SNSNotification interface {
	Message() (string, error)
	Subject() string
	TopicArn() string
	GroupId() string
}

// Publisher delivers a rendered notification to a topic and returns the
// message id assigned by the messaging service.
type Publisher interface {
	Publish(ctx context.Context, topicArn, subject, body, groupId string) (string, error)
}

// SNSClientInterface defines the SNS operations required for publishing
type SNSClientInterface interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type FileUploadedNotification struct {
	Bucket    string
	Key       string
	FileName  string
	EventTime string
	EventName string
	Template  *template.Template
	Topic     string
}

func (n FileUploadedNotification) Message() (string, error) {
	var buf bytes.Buffer
	if err := n.Template.Execute(&buf, n); err != nil {
		return "", ErrorRenderingMessage(err)
	}
	return buf.String(), nil
}

func (n FileUploadedNotification) Subject() string {
	return SanitizeSubject("File upload successful: " + n.FileName)
}

func (n FileUploadedNotification) TopicArn() string {
	return n.Topic
}

// GroupId keeps notifications for one bucket in order on FIFO topics.
func (n FileUploadedNotification) GroupId() string {
	return n.Bucket
}

// SNSPublisher publishes notifications with an SNS client
type SNSPublisher struct {
	client SNSClientInterface
}

// NewSNSPublisher creates a new SNS backed publisher
func NewSNSPublisher(client SNSClientInterface) *SNSPublisher {
	return &SNSPublisher{client: client}
}

func (p *SNSPublisher) Publish(ctx context.Context, topicArn, subject, body, groupId string) (string, error) {
	input := &sns.PublishInput{
		TopicArn: aws.String(topicArn),
		Subject:  aws.String(subject),
		Message:  aws.String(body),
	}

	// FIFO topics reject publishes without a group id. Each publish gets its own
	// deduplication id so repeated events are never collapsed.
	if IsFifoTopic(topicArn) {
		input.MessageGroupId = aws.String(groupId)
		input.MessageDeduplicationId = aws.String(uuid.NewString())
	}

	result, err := p.client.Publish(ctx, input)
	if err != nil {
		return "", ErrorNotificationDelivery(topicArn, err)
	}

	if result.MessageId == nil {
		return "", ErrorNotificationDelivery(topicArn, ErrMissingMessageId)
	}

	return *result.MessageId, nil
}

func SendNotification(ctx context.Context, publisher Publisher, notification SNSNotification) (string, error) {
	message, err := notification.Message()
	if err != nil {
		return "", ErrorNotificationDelivery(notification.TopicArn(), err)
	}

	messageId, err := publisher.Publish(ctx, notification.TopicArn(), notification.Subject(), message, notification.GroupId())
	if err != nil {
		if !errors.Is(err, ErrNotificationDelivery) {
			err = ErrorNotificationDelivery(notification.TopicArn(), err)
		}
		return "", err
	}

	log.Printf("Notification sent successfully: %s", messageId)
	return messageId, nil
}

func IsFifoTopic(topicArn string) bool {
	return strings.HasSuffix(topicArn, ".fifo")
}

// SanitizeSubject replaces control characters, which SNS rejects in subjects,
// and shortens the result to fit under MaxSubjectLength characters.
func SanitizeSubject(subject string) string {
	subject = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, subject)

	if utf8.RuneCountInString(subject) < MaxSubjectLength {
		return subject
	}
	runes := []rune(subject)
	return string(runes[:MaxSubjectLength-4]) + "..."
}
