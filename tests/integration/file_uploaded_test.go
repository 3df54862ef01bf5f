package integration

import (
	"context"
	"encoding/json"
	"net/url"
	"path"
	"testing"
	"time"

	"fileupload/internal/translator"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileUploadedWorkflow(t *testing.T) {
	t.Parallel()

	clients, stackName := setupTestClients(t)
	ctx := context.Background()

	bucketName := uploadsBucketName(stackName)
	key := uniqueTestKey("file-uploaded")

	err := uploadToS3(ctx, clients.S3, bucketName, key, "hello, world")
	require.NoError(t, err, "Failed to upload test object")
	t.Cleanup(func() { deleteFromS3(ctx, clients.S3, bucketName, key) })

	// S3 plus-encodes keys in event notifications
	payload := s3EventPayload(bucketName, url.QueryEscape(key), time.Now().UTC().Format(time.RFC3339))

	output, err := lambdaFunctionInvoke(ctx, clients.Lambda, functionName(stackName), payload)
	require.NoError(t, err, "Failed to invoke file-uploaded lambda")
	require.Nil(t, output.FunctionError, "Function error: %s", string(output.Payload))

	var response translator.Response
	require.NoError(t, json.Unmarshal(output.Payload, &response))
	assert.Equal(t, 200, response.StatusCode)

	var result translator.NotificationResult
	require.NoError(t, json.Unmarshal([]byte(response.Body), &result))
	assert.Equal(t, bucketName, result.Bucket)
	assert.Equal(t, key, result.Key)
	assert.Equal(t, path.Base(key), result.FileName)
	assert.Equal(t, translator.MessageNotificationSent, result.Message)
	assert.NotEmpty(t, result.MessageID, "Expected an SNS message id")

	t.Logf("Notification %s sent for s3://%s/%s", result.MessageID, bucketName, key)
}

func TestFileUploadedMalformedEvent(t *testing.T) {
	t.Parallel()

	clients, stackName := setupTestClients(t)
	ctx := context.Background()

	output, err := lambdaFunctionInvoke(ctx, clients.Lambda, functionName(stackName), []byte(`{"Records":[]}`))
	require.NoError(t, err, "Failed to invoke file-uploaded lambda")

	require.NotNil(t, output.FunctionError, "Malformed events should fail the invocation")
	assert.Equal(t, "Unhandled", aws.ToString(output.FunctionError))
	assert.Contains(t, string(output.Payload), "malformed event")
}
