package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"cctv_estimator/internal/domain/entities"
	"cctv_estimator/internal/domain/estimate"
	"cctv_estimator/internal/domain/pricing"
	"cctv_estimator/internal/usecase/interfaces"
	"cctv_estimator/pkg/logger"

	"go.uber.org/zap"
)

const DefaultSubmitTimeout = 5 * time.Second

var ErrSubmissionInProgress = errors.New("submission already in progress")

type NoticeKind string

const (
	NoticeSaved      NoticeKind = "saved"
	NoticeSaveFailed NoticeKind = "save_failed"
	NoticeSlow       NoticeKind = "slow"
)

// Notice reports how persistence of a submitted estimate ended. Notices that
// arrive after the bounded wait are the only way a late outcome is seen.
type Notice struct {
	Kind    NoticeKind
	Inquiry entities.Inquiry
	Err     error
}

type SessionDeps struct {
	Inquiries     interfaces.IInquiryRepository
	Channel       interfaces.IMessagingChannel
	Business      estimate.Business
	SubmitTimeout time.Duration
	Logger        logger.Logger
	OnNotice      func(Notice)
}

// SubmitResult describes a submission after the bounded wait.
//
// HandOffURL is always set once validation passed. Saved and SaveErr are
// only known when persistence finished inside the wait. Otherwise TimedOut
// (the wait expired) or Cancelled (the caller went away first) is set and the
// outcome arrives later as a Notice.
type SubmitResult struct {
	HandOffURL string
	Breakdown  entities.EstimateBreakdown
	Inquiry    entities.Inquiry
	Saved      bool
	SaveErr    error
	TimedOut   bool
	Cancelled  bool
}

// EstimatorSession holds one customer's selections and the breakdown derived
// from them. The price table is captured when the session starts.
type EstimatorSession struct {
	deps  SessionDeps
	table entities.PriceTable

	mu         sync.Mutex
	selections entities.SelectionSet
	breakdown  entities.EstimateBreakdown
	submitting bool
}

func NewEstimatorSession(table entities.PriceTable, deps SessionDeps) *EstimatorSession {
	if deps.SubmitTimeout <= 0 {
		deps.SubmitTimeout = DefaultSubmitTimeout
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewNop()
	}
	return &EstimatorSession{
		deps:      deps,
		table:     table,
		breakdown: pricing.Compute(entities.SelectionSet{}, table),
	}
}

// Change replaces the selections and recomputes the breakdown.
func (s *EstimatorSession) Change(sel entities.SelectionSet) entities.EstimateBreakdown {
	b := pricing.Compute(sel, s.table)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections = sel
	s.breakdown = b
	return b.Clone()
}

func (s *EstimatorSession) Selections() entities.SelectionSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selections
}

func (s *EstimatorSession) Breakdown() entities.EstimateBreakdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.breakdown.Clone()
}

func (s *EstimatorSession) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

type persistOutcome struct {
	inquiry entities.Inquiry
	err     error
}

// Submit validates the customer, hands the estimate to the messaging channel
// and saves it as an inquiry. The hand-off happens before and independently
// of saving; a save failure never undoes it.
func (s *EstimatorSession) Submit(ctx context.Context) (SubmitResult, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return SubmitResult{}, ErrSubmissionInProgress
	}
	sel := s.selections
	breakdown := s.breakdown.Clone()
	name, phone, err := ValidateCustomer(sel.CustomerName, sel.CustomerPhone)
	if err != nil {
		s.mu.Unlock()
		return SubmitResult{}, err
	}
	s.submitting = true
	s.mu.Unlock()

	log := s.deps.Logger
	res := SubmitResult{Breakdown: breakdown}

	msg := estimate.Message(s.deps.Business, estimate.Customer{Name: name, Phone: phone}, breakdown)
	link, err := s.deps.Channel.HandOff(ctx, msg)
	if err != nil {
		log.Warn("[estimator][session] hand-off failed", zap.Error(err))
	}
	res.HandOffURL = link

	frozen := breakdown.Clone()
	newInquiry := entities.NewInquiry{
		Type:            entities.InquiryTypeEstimate,
		CustomerName:    name,
		CustomerPhone:   phone,
		SelectedProduct: estimate.SelectedProduct(sel.CameraCount()),
		EstimateDetails: &frozen,
	}

	done := make(chan persistOutcome, 1)
	saveCtx := context.WithoutCancel(ctx)
	go func() {
		inq, err := s.deps.Inquiries.Create(saveCtx, newInquiry)
		done <- persistOutcome{inquiry: inq, err: err}
	}()

	timer := time.NewTimer(s.deps.SubmitTimeout)
	select {
	case out := <-done:
		timer.Stop()
		s.finish()
		if out.err != nil {
			log.Error("[estimator][session] save failed", zap.Error(out.err))
			res.SaveErr = out.err
		} else {
			log.Info("[estimator][session] estimate saved", zap.String("inquiry_id", out.inquiry.ID))
			res.Inquiry = out.inquiry
			res.Saved = true
		}
		s.notify(out)
		return res, nil
	case <-timer.C:
		log.Warn("[estimator][session] save still running after bounded wait", zap.Duration("timeout", s.deps.SubmitTimeout))
		s.emit(Notice{Kind: NoticeSlow})
		res.TimedOut = true
	case <-ctx.Done():
		timer.Stop()
		log.Debug("[estimator][session] caller left before save finished", zap.Error(ctx.Err()))
		res.Cancelled = true
	}

	s.finish()
	go func() {
		out := <-done
		if out.err != nil {
			log.Error("[estimator][session] late save failed", zap.Error(out.err))
		}
		s.notify(out)
	}()
	return res, nil
}

func (s *EstimatorSession) finish() {
	s.mu.Lock()
	s.submitting = false
	s.mu.Unlock()
}

func (s *EstimatorSession) notify(out persistOutcome) {
	if out.err != nil {
		s.emit(Notice{Kind: NoticeSaveFailed, Err: out.err})
		return
	}
	s.emit(Notice{Kind: NoticeSaved, Inquiry: out.inquiry})
}

func (s *EstimatorSession) emit(n Notice) {
	if s.deps.OnNotice != nil {
		s.deps.OnNotice(n)
	}
}
