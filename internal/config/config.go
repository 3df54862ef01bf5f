package config

import (
	"context"
	"os"
	"strconv"

	"fileupload/internal/helpers"
)

type Mode string

const (
	// ModePublish sends one notification per event.
	ModePublish Mode = "publish"
	// ModeDecode only decodes and logs the event.
	ModeDecode Mode = "decode"
)

const (
	EnvMaxPublishAttempts = "MAX_PUBLISH_ATTEMPTS"
	EnvNotifyMode         = "NOTIFY_MODE"
	EnvTopicArn           = "SNS_TOPIC_ARN"
	EnvTopicName          = "SNS_TOPIC_NAME"

	DefaultMaxPublishAttempts = 3
)

type Config struct {
	MaxPublishAttempts int
	Mode               Mode
	TopicArn           string
	TopicName          string
}

// LoadFromEnv reads the notifier configuration. In publish mode either
// SNS_TOPIC_ARN or SNS_TOPIC_NAME must be set.
func LoadFromEnv() (Config, error) {
	return Load(os.Getenv)
}

func Load(getenv func(string) string) (Config, error) {
	cfg := Config{
		MaxPublishAttempts: DefaultMaxPublishAttempts,
		Mode:               ModePublish,
		TopicArn:           getenv(EnvTopicArn),
		TopicName:          getenv(EnvTopicName),
	}

	if mode := getenv(EnvNotifyMode); mode != "" {
		switch Mode(mode) {
		case ModePublish, ModeDecode:
			cfg.Mode = Mode(mode)
		default:
			return Config{}, ErrorInvalidVariable(EnvNotifyMode, mode)
		}
	}

	if attempts := getenv(EnvMaxPublishAttempts); attempts != "" {
		n, err := strconv.Atoi(attempts)
		if err != nil || n < 1 {
			return Config{}, ErrorInvalidVariable(EnvMaxPublishAttempts, attempts)
		}
		cfg.MaxPublishAttempts = n
	}

	if cfg.Mode == ModePublish && cfg.TopicArn == "" && cfg.TopicName == "" {
		return Config{}, ErrorMissingVariable(EnvTopicArn, EnvTopicName)
	}

	return cfg, nil
}

// ResolveTopicArn returns the configured topic ARN, building it from the
// topic name, region and caller account when only a name was given.
func (c Config) ResolveTopicArn(ctx context.Context, client helpers.STSClientInterface, region string) (string, error) {
	if c.TopicArn != "" {
		return c.TopicArn, nil
	}

	if region == "" {
		return "", ErrorResolvingTopic(c.TopicName, ErrMissingRegion)
	}

	accountID, err := helpers.GetAccountID(ctx, client)
	if err != nil {
		return "", ErrorResolvingTopic(c.TopicName, err)
	}

	return helpers.TopicArn(region, accountID, c.TopicName), nil
}
