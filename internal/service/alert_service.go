package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// AlertService emails the puzzle curator through Amazon SES when a language
// has no puzzle scheduled. Runs disabled when no from-address is configured.
type AlertService struct {
	client    *sesv2.Client
	fromEmail string
	toEmail   string
	enabled   bool
}

// NewAlertService creates a new alert service
func NewAlertService(awsRegion, fromEmail, toEmail string) (*AlertService, error) {
	if fromEmail == "" || toEmail == "" {
		log.Println("Alert service disabled: SES_FROM_EMAIL or ALERT_EMAIL not configured")
		return &AlertService{enabled: false}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Alert service enabled: from=%s, to=%s, region=%s", fromEmail, toEmail, awsRegion)

	return &AlertService{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		toEmail:   toEmail,
		enabled:   true,
	}, nil
}

// IsEnabled returns whether the alert service is enabled
func (s *AlertService) IsEnabled() bool {
	return s.enabled
}

// SendPuzzleGapAlert notifies the curator that a language is missing its
// puzzle for the given date
func (s *AlertService) SendPuzzleGapAlert(ctx context.Context, language, date string) error {
	if !s.enabled {
		return nil
	}

	subject := fmt.Sprintf("Anthyakshari: no %s puzzle scheduled for %s", language, date)
	body := fmt.Sprintf(
		"The %s sheet has no rows for %s.\n\nPlayers will see \"no puzzle today\" unless hints are added before midnight.\n\nChecked at: %s\n",
		language, date, time.Now().Format(time.RFC1123),
	)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{s.toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send puzzle gap alert: %w", err)
	}

	log.Printf("Puzzle gap alert sent for %s/%s", language, date)
	return nil
}
