// Package sqs hands analysis jobs to the image-analysis worker through Amazon SQS.
package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/heartmarshall/lexilens-backend/internal/config"
	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

// Dispatcher sends analysis jobs to a single queue.
type Dispatcher struct {
	client   *sqs.Client
	queueURL string
	log      *slog.Logger
}

// New creates a Dispatcher using the default AWS credential chain.
func New(ctx context.Context, cfg config.QueueConfig, logger *slog.Logger) (*Dispatcher, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("sqs: load aws config: %w", err)
	}
	return newWithConfig(awsCfg, cfg, logger), nil
}

func newWithConfig(awsCfg aws.Config, cfg config.QueueConfig, logger *slog.Logger) *Dispatcher {
	client := sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &Dispatcher{
		client:   client,
		queueURL: cfg.QueueURL,
		log:      logger.With("adapter", "sqs"),
	}
}

// Dispatch enqueues one analysis job.
func (d *Dispatcher) Dispatch(ctx context.Context, job domain.AnalysisJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("sqs: marshal job: %w", err)
	}

	out, err := d.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(d.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("sqs: send task %s: %w", job.TaskID, err)
	}

	d.log.DebugContext(ctx, "analysis job queued",
		slog.String("task_id", job.TaskID.String()),
		slog.String("message_id", aws.ToString(out.MessageId)),
	)
	return nil
}
