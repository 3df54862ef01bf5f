package main

import (
	"context"
	"encoding/json"
	"log"

	"fileupload/internal/config"
	"fileupload/internal/notifications"
	"fileupload/internal/translator"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

var eventTranslator *translator.Translator

func init() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Unable to load configuration: %v", err)
	}

	if cfg.Mode == config.ModeDecode {
		log.Printf("Running in decode-only mode, notifications will not be published")
		eventTranslator = translator.NewDecodeOnly()
		return
	}

	ctx := context.Background()
	awsConfig, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.NewStandard(), cfg.MaxPublishAttempts)
		}),
	)
	if err != nil {
		log.Fatalf("Unable to load AWS config: %v", err)
	}

	topicArn, err := cfg.ResolveTopicArn(ctx, sts.NewFromConfig(awsConfig), awsConfig.Region)
	if err != nil {
		log.Fatalf("Unable to resolve notification topic: %v", err)
	}

	publisher := notifications.NewSNSPublisher(sns.NewFromConfig(awsConfig))
	eventTranslator, err = translator.New(publisher, topicArn)
	if err != nil {
		log.Fatalf("Unable to create event translator: %v", err)
	}

	log.Printf("Publishing upload notifications to %s", topicArn)
}

func handler(ctx context.Context, event json.RawMessage) (translator.Response, error) {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		log.Printf("Handling request %s", lc.AwsRequestID)
	}

	result, err := eventTranslator.Handle(ctx, event)
	if err != nil {
		return translator.Response{}, err
	}

	return result.Response()
}

func main() {
	lambda.Start(handler)
}
