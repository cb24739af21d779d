package usecase

import (
	"context"
	"errors"
	"strings"

	"cctv_estimator/internal/domain/entities"
	"cctv_estimator/internal/domain/estimate"
	"cctv_estimator/internal/usecase/interfaces"
	"cctv_estimator/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrInvalidInquiryID     = errors.New("invalid inquiry id")
	ErrInvalidInquiryStatus = errors.New("invalid inquiry status")
	ErrMessageRequired      = errors.New("message is required")
)

type ContactRequest struct {
	Name    string
	Phone   string
	Message string
}

// ContactResult carries the hand-off link even when saving failed; the
// customer can still reach the shop through the messaging app.
type ContactResult struct {
	HandOffURL string
	Inquiry    entities.Inquiry
	Saved      bool
	SaveErr    error
}

// IInquiryUseCase covers the contact form and the admin inquiry list.
//
// Status updates and deletes on ids that no longer exist are ignored: the
// admin list may be stale relative to another operator's session.

type IInquiryUseCase interface {
	SubmitContact(ctx context.Context, req ContactRequest) (ContactResult, error)
	ListInquiries(ctx context.Context) ([]entities.Inquiry, error)
	SubscribeInquiries(ctx context.Context, listener interfaces.InquiryListener) (func(), error)
	UpdateStatus(ctx context.Context, id string, status entities.InquiryStatus) error
	DeleteInquiry(ctx context.Context, id string) error
}

type InquiryUseCase struct {
	repo    interfaces.IInquiryRepository
	channel interfaces.IMessagingChannel
	logger  logger.Logger
}

var _ IInquiryUseCase = (*InquiryUseCase)(nil)

func NewInquiryUseCase(repo interfaces.IInquiryRepository, channel interfaces.IMessagingChannel, log logger.Logger) *InquiryUseCase {
	return &InquiryUseCase{repo: repo, channel: channel, logger: log}
}

func (u *InquiryUseCase) SubmitContact(ctx context.Context, req ContactRequest) (ContactResult, error) {
	name, phone, err := ValidateCustomer(req.Name, req.Phone)
	if err != nil {
		return ContactResult{}, err
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return ContactResult{}, ErrMessageRequired
	}

	var res ContactResult
	link, err := u.channel.HandOff(ctx, estimate.ContactMessage(name, phone, message))
	if err != nil {
		u.logger.Warn("[inquiry][usecase] contact hand-off failed", zap.Error(err))
	}
	res.HandOffURL = link

	created, err := u.repo.Create(ctx, entities.NewInquiry{
		Type:          entities.InquiryTypeContact,
		CustomerName:  name,
		CustomerPhone: phone,
		Message:       message,
	})
	if err != nil {
		u.logger.Error("[inquiry][usecase] contact save failed", zap.Error(err))
		res.SaveErr = err
		return res, nil
	}
	u.logger.Info("[inquiry][usecase] contact inquiry created", zap.String("inquiry_id", created.ID))
	res.Inquiry = created
	res.Saved = true
	return res, nil
}

func (u *InquiryUseCase) ListInquiries(ctx context.Context) ([]entities.Inquiry, error) {
	return u.repo.List(ctx)
}

func (u *InquiryUseCase) SubscribeInquiries(ctx context.Context, listener interfaces.InquiryListener) (func(), error) {
	return u.repo.Subscribe(ctx, listener)
}

func (u *InquiryUseCase) UpdateStatus(ctx context.Context, id string, status entities.InquiryStatus) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInquiryID
	}
	if !status.Valid() {
		return ErrInvalidInquiryStatus
	}

	err := u.repo.UpdateStatus(ctx, id, status)
	if errors.Is(err, interfaces.ErrInquiryNotFound) {
		u.logger.Warn("[inquiry][usecase] status update on missing inquiry ignored", zap.String("inquiry_id", id))
		return nil
	}
	if err != nil {
		return err
	}
	u.logger.Info("[inquiry][usecase] status updated", zap.String("inquiry_id", id), zap.String("status", string(status)))
	return nil
}

func (u *InquiryUseCase) DeleteInquiry(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInquiryID
	}
	err := u.repo.Delete(ctx, id)
	if errors.Is(err, interfaces.ErrInquiryNotFound) {
		return nil
	}
	return err
}
