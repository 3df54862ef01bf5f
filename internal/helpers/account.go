package helpers

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// STSClientInterface defines the STS operations required to resolve the account
type STSClientInterface interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

func GetAccountID(ctx context.Context, client STSClientInterface) (string, error) {
	result, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", err
	}

	return aws.ToString(result.Account), nil
}

// TopicArn builds an SNS topic ARN in the standard aws partition
func TopicArn(region, accountID, topicName string) string {
	return fmt.Sprintf("arn:aws:sns:%s:%s:%s", region, accountID, topicName)
}
