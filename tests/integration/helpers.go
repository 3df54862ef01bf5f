package integration

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type TestClients struct {
	S3     *s3.Client
	Lambda *lambda.Client
}

func setupTestClients(t *testing.T) (*TestClients, string) {
	stackName := os.Getenv("STACK_NAME")
	if stackName == "" {
		t.Skip("STACK_NAME environment variable not set, skipping integration test")
	}

	awsConfig, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		t.Fatalf("Unable to load AWS config: %v", err)
	}

	return &TestClients{
		S3:     s3.NewFromConfig(awsConfig),
		Lambda: lambda.NewFromConfig(awsConfig),
	}, stackName
}

func uploadsBucketName(stackName string) string {
	return fmt.Sprintf("%s-uploads", stackName)
}

func functionName(stackName string) string {
	return fmt.Sprintf("%s-file-uploaded", stackName)
}

func bucketExists(ctx context.Context, s3Client *s3.Client, bucketName string) bool {
	_, err := s3Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucketName),
	})
	return err == nil
}

func lambdaFunctionExists(ctx context.Context, lambdaClient *lambda.Client, functionName string) bool {
	_, err := lambdaClient.GetFunction(ctx, &lambda.GetFunctionInput{
		FunctionName: aws.String(functionName),
	})
	return err == nil
}

func lambdaFunctionInvoke(ctx context.Context, lambdaClient *lambda.Client, functionName string, payload []byte) (*lambda.InvokeOutput, error) {
	return lambdaClient.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: aws.String(functionName),
		Payload:      payload,
	})
}

func uploadToS3(ctx context.Context, s3Client *s3.Client, bucketName, key, content string) error {
	_, err := s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
		Body:   strings.NewReader(content),
	})
	return err
}

func deleteFromS3(ctx context.Context, s3Client *s3.Client, bucketName, key string) {
	_, err := s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		fmt.Printf("Warning: failed to delete s3://%s/%s: %v\n", bucketName, key, err)
	}
}

// uniqueTestKey returns a nested key whose file name contains a space
func uniqueTestKey(prefix string) string {
	return fmt.Sprintf("integration-test/%s/upload %s.txt", prefix, uuid.New().String()[:12])
}

func s3EventPayload(bucketName, encodedKey, eventTime string) []byte {
	return []byte(fmt.Sprintf(`{
		"Records": [
			{
				"eventVersion": "2.1",
				"eventSource": "aws:s3",
				"awsRegion": "us-east-1",
				"eventTime": %q,
				"eventName": "ObjectCreated:Put",
				"s3": {
					"s3SchemaVersion": "1.0",
					"bucket": {"name": %q, "arn": "arn:aws:s3:::%s"},
					"object": {"key": %q, "size": 12}
				}
			}
		]
	}`, eventTime, bucketName, bucketName, encodedKey))
}
