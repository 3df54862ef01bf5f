package helpers

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

type mockSTSClient struct {
	account string
	err     error
}

func (m *mockSTSClient) GetCallerIdentity(ctx context.Context, input *sts.GetCallerIdentityInput, opts ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &sts.GetCallerIdentityOutput{Account: aws.String(m.account)}, nil
}

func TestGetAccountID(t *testing.T) {
	accountID, err := GetAccountID(context.Background(), &mockSTSClient{account: "123456789012"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if accountID != "123456789012" {
		t.Errorf("GetAccountID() = %q, want %q", accountID, "123456789012")
	}
}

func TestGetAccountIDError(t *testing.T) {
	cause := errors.New("expired token")
	_, err := GetAccountID(context.Background(), &mockSTSClient{err: cause})
	if !errors.Is(err, cause) {
		t.Errorf("Expected %v, got %v", cause, err)
	}
}

func TestTopicArn(t *testing.T) {
	got := TopicArn("us-east-1", "123456789012", "s3-file-upload-notifications")
	want := "arn:aws:sns:us-east-1:123456789012:s3-file-upload-notifications"
	if got != want {
		t.Errorf("TopicArn() = %q, want %q", got, want)
	}
}
