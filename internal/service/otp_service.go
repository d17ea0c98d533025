package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"go.uber.org/zap"

	"docuprint/internal/apperror"
	"docuprint/internal/repository"
	"docuprint/internal/store"
)

var mobilePattern = regexp.MustCompile(`^\d{10}$`)

// OtpService issues and verifies the one-time passcodes gating
// resident login. Codes live in the KV store under otp:<mobile>; a new
// request overwrites the previous code, and a successful verification
// consumes it.
type OtpService interface {
	// Request issues a code for an approved resident's mobile. The
	// code is returned to the caller (demo contract) and, when an SMS
	// gateway is configured, dispatched as well.
	Request(ctx context.Context, mobile string) (string, error)
	// Verify reports whether the code matches the live entry for the
	// mobile. A match deletes the entry; replays fail.
	Verify(ctx context.Context, mobile, code string) (bool, error)
}

type otpEntry struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type otpService struct {
	kv        store.KV
	residents repository.ResidentsRepo
	sms       SMSSender
	ttl       time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

func NewOtpService(kv store.KV, residents repository.ResidentsRepo, sms SMSSender, ttl time.Duration, logger *zap.Logger) OtpService {
	return &otpService{
		kv:        kv,
		residents: residents,
		sms:       sms,
		ttl:       ttl,
		logger:    logger,
		now:       time.Now,
	}
}

func otpKey(mobile string) string { return "otp:" + mobile }

func (s *otpService) Request(ctx context.Context, mobile string) (string, error) {
	if !mobilePattern.MatchString(mobile) {
		return "", apperror.Validation("mobile must be exactly 10 digits")
	}
	if _, err := s.residents.FindByMobile(ctx, mobile); err != nil {
		return "", apperror.NotFound("resident not found or pending approval")
	}

	code, err := generateCode()
	if err != nil {
		return "", err
	}
	entry, err := json.Marshal(otpEntry{Code: code, ExpiresAt: s.now().Add(s.ttl)})
	if err != nil {
		return "", err
	}
	if err := s.kv.Set(ctx, otpKey(mobile), string(entry), s.ttl); err != nil {
		return "", err
	}

	if s.sms != nil {
		// Delivery failure is logged, not surfaced: the demo contract
		// returns the code in the response either way.
		if err := s.sms.Send(ctx, mobile, code); err != nil {
			s.logger.Warn("OTP SMS dispatch failed",
				zap.String("mobile", mobile),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("OTP issued", zap.String("mobile", mobile))
	return code, nil
}

func (s *otpService) Verify(ctx context.Context, mobile, code string) (bool, error) {
	raw, err := s.kv.Get(ctx, otpKey(mobile))
	if err != nil {
		if err == store.ErrMiss {
			return false, nil
		}
		return false, err
	}

	var entry otpEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return false, err
	}
	if s.now().After(entry.ExpiresAt) {
		_ = s.kv.Delete(ctx, otpKey(mobile))
		return false, nil
	}
	if entry.Code != code {
		return false, nil
	}

	// Single use: consume on match.
	if err := s.kv.Delete(ctx, otpKey(mobile)); err != nil {
		return false, err
	}
	return true, nil
}

// generateCode draws a 6-digit numeric code from crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
