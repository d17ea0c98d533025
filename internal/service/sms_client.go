package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"docuprint/internal/config"
)

// SMSSender dispatches OTP codes. Nil means demo mode: codes are only
// returned in the API response.
type SMSSender interface {
	Send(ctx context.Context, mobile, code string) error
}

// SMSClient posts OTP messages to an HTTP SMS gateway.
type SMSClient struct {
	httpClient *resty.Client
	senderID   string
	logger     *zap.Logger
}

type smsMessage struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
}

type smsResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func NewSMSClient(cfg config.SMSConfig, logger *zap.Logger) *SMSClient {
	client := resty.New().
		SetBaseURL(cfg.GatewayURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+cfg.APIKey)

	return &SMSClient{
		httpClient: client,
		senderID:   cfg.SenderID,
		logger:     logger,
	}
}

func (c *SMSClient) Send(ctx context.Context, mobile, code string) error {
	var result smsResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(smsMessage{
			To:      mobile,
			From:    c.senderID,
			Message: fmt.Sprintf("Your DocuPrint login code is %s. It expires in 5 minutes.", code),
		}).
		SetResult(&result).
		Post("/v1/messages")
	if err != nil {
		return fmt.Errorf("sms gateway request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("sms gateway returned %d: %s", resp.StatusCode(), result.Error)
	}

	c.logger.Info("OTP SMS dispatched", zap.String("mobile", mobile))
	return nil
}
