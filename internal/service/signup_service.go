package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"docuprint/internal/apperror"
	"docuprint/internal/domain"
	"docuprint/internal/repository"
)

// SignupService runs the resident access workflow: submission,
// admin review, and profile creation on approval.
type SignupService interface {
	Create(ctx context.Context, req CreateSignupRequest) (*domain.Signup, error)
	Approve(ctx context.Context, signupID, adminID, notes string) (*domain.Signup, *domain.Resident, error)
	Reject(ctx context.Context, signupID, adminID, notes string) (*domain.Signup, error)
	ListForAdmin(ctx context.Context, adminID string) ([]domain.Signup, error)
}

// CreateSignupRequest is the signup submission payload.
type CreateSignupRequest struct {
	FullName    string `json:"fullName" validate:"required"`
	Mobile      string `json:"mobile" validate:"required,len=10,numeric"`
	StateID     string `json:"stateId" validate:"required"`
	CityID      string `json:"cityId" validate:"required"`
	CommunityID string `json:"communityId" validate:"required"`
	BlockID     string `json:"blockId" validate:"required"`
	FlatNumber  string `json:"flatNumber" validate:"required"`
}

type signupService struct {
	signups       repository.SignupsRepo
	residents     repository.ResidentsRepo
	admins        repository.AdminsRepo
	notifications repository.NotificationsRepo
	directory     repository.DirectoryRepo
	validate      *validator.Validate
	logger        *zap.Logger
	now           func() time.Time
}

func NewSignupService(
	signups repository.SignupsRepo,
	residents repository.ResidentsRepo,
	admins repository.AdminsRepo,
	notifications repository.NotificationsRepo,
	directory repository.DirectoryRepo,
	logger *zap.Logger,
) SignupService {
	return &signupService{
		signups:       signups,
		residents:     residents,
		admins:        admins,
		notifications: notifications,
		directory:     directory,
		validate:      validator.New(),
		logger:        logger,
		now:           time.Now,
	}
}

func (s *signupService) Create(ctx context.Context, req CreateSignupRequest) (*domain.Signup, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperror.FromValidation(err)
	}
	if !s.directory.ResolvePath(req.StateID, req.CityID, req.CommunityID, req.BlockID, req.FlatNumber) {
		return nil, apperror.Validation("selected location is not a valid state/city/community/block/flat path")
	}

	if _, err := s.residents.FindByMobile(ctx, req.Mobile); err == nil {
		return nil, apperror.Validation("mobile %s is already registered", req.Mobile)
	}
	active, err := s.signups.HasActiveByMobile(ctx, req.Mobile)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, apperror.Validation("a signup for mobile %s is already pending approval", req.Mobile)
	}

	signup := &domain.Signup{
		ID:          uuid.NewString(),
		FullName:    req.FullName,
		Mobile:      req.Mobile,
		StateID:     req.StateID,
		CityID:      req.CityID,
		CommunityID: req.CommunityID,
		BlockID:     req.BlockID,
		FlatNumber:  req.FlatNumber,
		Status:      domain.SignupPending,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.signups.Create(ctx, signup); err != nil {
		return nil, err
	}

	s.fanOut(ctx, signup)

	s.logger.Info("Signup submitted",
		zap.String("signup_id", signup.ID),
		zap.String("community_id", signup.CommunityID),
	)
	return signup, nil
}

// fanOut creates one notification per admin of the target community.
func (s *signupService) fanOut(ctx context.Context, signup *domain.Signup) {
	admins, err := s.admins.ListByCommunity(ctx, signup.CommunityID)
	if err != nil {
		s.logger.Warn("Notification fan-out failed", zap.Error(err))
		return
	}
	message := fmt.Sprintf("New signup from %s (%s) for %s, %s flat %s",
		signup.FullName,
		signup.Mobile,
		s.directory.CommunityName(signup.CommunityID),
		s.directory.BlockName(signup.BlockID),
		signup.FlatNumber,
	)
	for _, admin := range admins {
		n := &domain.Notification{
			ID:        uuid.NewString(),
			AdminID:   admin.ID,
			Message:   message,
			CreatedAt: s.now().UTC(),
		}
		if err := s.notifications.Create(ctx, n); err != nil {
			s.logger.Warn("Failed to create notification",
				zap.String("admin_id", admin.ID),
				zap.Error(err),
			)
		}
	}
}

func (s *signupService) Approve(ctx context.Context, signupID, adminID, notes string) (*domain.Signup, *domain.Resident, error) {
	signup, err := s.decide(ctx, signupID, adminID, domain.SignupApproved, notes)
	if err != nil {
		return nil, nil, err
	}

	resident := &domain.Resident{
		ID:          uuid.NewString(),
		FullName:    signup.FullName,
		Mobile:      signup.Mobile,
		StateID:     signup.StateID,
		CityID:      signup.CityID,
		CommunityID: signup.CommunityID,
		BlockID:     signup.BlockID,
		FlatNumber:  signup.FlatNumber,
	}
	if err := s.residents.Create(ctx, resident); err != nil {
		return nil, nil, err
	}

	s.logger.Info("Signup approved",
		zap.String("signup_id", signup.ID),
		zap.String("admin_id", adminID),
		zap.String("resident_id", resident.ID),
	)
	return signup, resident, nil
}

func (s *signupService) Reject(ctx context.Context, signupID, adminID, notes string) (*domain.Signup, error) {
	signup, err := s.decide(ctx, signupID, adminID, domain.SignupRejected, notes)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Signup rejected",
		zap.String("signup_id", signup.ID),
		zap.String("admin_id", adminID),
	)
	return signup, nil
}

func (s *signupService) decide(ctx context.Context, signupID, adminID, status, notes string) (*domain.Signup, error) {
	signup, err := s.signups.Get(ctx, signupID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, apperror.NotFound("signup %s not found", signupID)
		}
		return nil, err
	}

	admin, err := s.admins.Get(ctx, adminID)
	if err != nil {
		return nil, apperror.Forbidden("admin is not assigned to this community")
	}
	if !admin.OwnsCommunity(signup.CommunityID) {
		return nil, apperror.Forbidden("admin is not assigned to this community")
	}

	decided, err := s.signups.Decide(ctx, signupID, adminID, status, notes, s.now().UTC())
	switch err {
	case nil:
		return decided, nil
	case repository.ErrDecided:
		return nil, apperror.Conflict("signup %s has already been decided", signupID)
	case repository.ErrNotFound:
		return nil, apperror.NotFound("signup %s not found", signupID)
	default:
		return nil, err
	}
}

func (s *signupService) ListForAdmin(ctx context.Context, adminID string) ([]domain.Signup, error) {
	admin, err := s.admins.Get(ctx, adminID)
	if err != nil {
		return nil, apperror.Unauthorized("Unauthorized")
	}
	return s.signups.ListByCommunities(ctx, admin.CommunityIDs)
}
