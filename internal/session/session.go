// Package session establishes the two remote service handles once, from
// caller-supplied credentials and a region. Every other component receives
// the session rather than constructing clients of its own.
package session

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/glacier"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/sixfootdad/coldvault/internal/coldstorage"
	"github.com/sixfootdad/coldvault/internal/config"
	"github.com/sixfootdad/coldvault/internal/logging"
	"github.com/sixfootdad/coldvault/internal/notifier"
)

type Session struct {
	Storage *coldstorage.Client
	Notify  *notifier.Client
	Region  string
}

// New builds both service clients from cfg. Static keys in the config win;
// otherwise the default provider chain (environment, shared config, instance
// role) applies.
func New(ctx context.Context, cfg *config.Config, log logging.Logger) (*Session, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Nop()
	}

	var awsCfg aws.Config
	if cfg.AccessKey != "" {
		awsCfg = aws.Config{
			Region:      cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		}
	} else {
		loaded, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, fmt.Errorf("load credentials: %w", err)
		}
		awsCfg = loaded
	}

	glacierClient := glacier.NewFromConfig(awsCfg, func(o *glacier.Options) {
		if cfg.Endpoint != nil && cfg.Endpoint.Storage != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint.Storage)
		}
	})
	snsClient := sns.NewFromConfig(awsCfg, func(o *sns.Options) {
		if cfg.Endpoint != nil && cfg.Endpoint.Notification != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint.Notification)
		}
	})

	log.Debug(ctx, "session established", "region", cfg.Region, "account", cfg.AccountID)

	return &Session{
		Storage: coldstorage.New(glacierClient, coldstorage.Options{
			AccountID:     cfg.AccountID,
			PartSizeBytes: int64(cfg.PartSizeMB()) << 20,
			Logger:        log,
		}),
		Notify: notifier.New(snsClient, log),
		Region: cfg.Region,
	}, nil
}
