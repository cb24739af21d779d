package repository

import (
	"context"
	"encoding/json"
	"time"

	"cctv_estimator/internal/domain/entities"
	"cctv_estimator/internal/usecase/interfaces"
	"cctv_estimator/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// inquiryRecord is the stored JSON shape. Every field is optional so that
// partially written records from older clients still load.
type inquiryRecord struct {
	ID              string                      `json:"id"`
	Type            string                      `json:"type"`
	Status          string                      `json:"status"`
	CreatedAt       string                      `json:"createdAt"`
	CustomerName    string                      `json:"customerName,omitempty"`
	CustomerPhone   string                      `json:"customerPhone,omitempty"`
	Message         string                      `json:"message,omitempty"`
	SelectedProduct string                      `json:"selectedProduct,omitempty"`
	EstimateDetails *entities.EstimateBreakdown `json:"estimateDetails,omitempty"`
}

func toInquiryRecord(in entities.Inquiry) inquiryRecord {
	return inquiryRecord{
		ID:              in.ID,
		Type:            string(in.Type),
		Status:          string(in.Status),
		CreatedAt:       in.CreatedAt.UTC().Format(time.RFC3339Nano),
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		Message:         in.Message,
		SelectedProduct: in.SelectedProduct,
		EstimateDetails: in.EstimateDetails,
	}
}

// fromInquiryRecord fills gaps with defaults: status pending and a type
// inferred from the presence of estimate details. A missing id is derived
// from the record content so repeated loads agree on it.
func fromInquiryRecord(rec inquiryRecord) entities.Inquiry {
	in := entities.Inquiry{
		ID:              rec.ID,
		Type:            entities.InquiryType(rec.Type),
		Status:          entities.InquiryStatus(rec.Status),
		CustomerName:    rec.CustomerName,
		CustomerPhone:   rec.CustomerPhone,
		Message:         rec.Message,
		SelectedProduct: rec.SelectedProduct,
		EstimateDetails: rec.EstimateDetails,
	}
	if in.ID == "" {
		b, _ := json.Marshal(rec)
		in.ID = uuid.NewSHA1(uuid.NameSpaceURL, b).String()
	}
	if t, err := time.Parse(time.RFC3339Nano, rec.CreatedAt); err == nil {
		in.CreatedAt = t.UTC()
	}
	return coalesceInquiry(in)
}

// InquiryKVRepository is the local-only inquiry strategy: the whole list is
// one JSON array under KeyInquiries, newest first. Subscribers on this
// process get a fresh snapshot after each mutation.
//
// It also serves as the legacy source when migrating to shared storage.
type InquiryKVRepository struct {
	kv     *KVStore
	clock  *monotonicClock
	feed   *inquiryFeed
	logger logger.Logger
}

var (
	_ interfaces.IInquiryRepository  = (*InquiryKVRepository)(nil)
	_ interfaces.ILegacyInquiryStore = (*InquiryKVRepository)(nil)
)

func NewInquiryKVRepository(kv *KVStore, log logger.Logger) *InquiryKVRepository {
	return &InquiryKVRepository{
		kv:     kv,
		clock:  newMonotonicClock(time.Now),
		feed:   newInquiryFeed(),
		logger: log,
	}
}

func (r *InquiryKVRepository) decode(raw string, found bool) []entities.Inquiry {
	if !found || raw == "" {
		return []entities.Inquiry{}
	}
	var recs []inquiryRecord
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		r.logger.Warn("[inquiry][kv] stored inquiries unreadable, treating as empty", zap.Error(err))
		return []entities.Inquiry{}
	}
	out := make([]entities.Inquiry, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromInquiryRecord(rec))
	}
	sortNewestFirst(out)
	return out
}

func encodeInquiries(list []entities.Inquiry) (string, error) {
	recs := make([]inquiryRecord, 0, len(list))
	for _, in := range list {
		recs = append(recs, toInquiryRecord(in))
	}
	b, err := json.Marshal(recs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// mutate applies fn to the stored list and publishes the result.
func (r *InquiryKVRepository) mutate(ctx context.Context, fn func([]entities.Inquiry) []entities.Inquiry) error {
	var snapshot []entities.Inquiry
	err := r.kv.Update(ctx, KeyInquiries, func(raw string, found bool) (string, error) {
		snapshot = fn(r.decode(raw, found))
		return encodeInquiries(snapshot)
	})
	if err != nil {
		return err
	}
	r.feed.publish(snapshot)
	return nil
}

func (r *InquiryKVRepository) Create(ctx context.Context, in entities.NewInquiry) (entities.Inquiry, error) {
	var created entities.Inquiry
	err := r.mutate(ctx, func(list []entities.Inquiry) []entities.Inquiry {
		if len(list) > 0 {
			r.clock.observe(list[0].CreatedAt)
		}
		created = entities.Inquiry{
			ID:              uuid.NewString(),
			Type:            in.Type,
			Status:          entities.InquiryStatusPending,
			CreatedAt:       r.clock.next(),
			CustomerName:    in.CustomerName,
			CustomerPhone:   in.CustomerPhone,
			Message:         in.Message,
			SelectedProduct: in.SelectedProduct,
			EstimateDetails: in.EstimateDetails,
		}
		return append([]entities.Inquiry{created}, list...)
	})
	if err != nil {
		return entities.Inquiry{}, err
	}
	return created, nil
}

func (r *InquiryKVRepository) List(ctx context.Context) ([]entities.Inquiry, error) {
	raw, found, err := r.kv.Get(ctx, KeyInquiries)
	if err != nil {
		return nil, err
	}
	return r.decode(raw, found), nil
}

func (r *InquiryKVRepository) Subscribe(ctx context.Context, listener interfaces.InquiryListener) (func(), error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	cancel := r.feed.subscribe(listener)
	listener(list)
	return cancel, nil
}

// UpdateStatus on an unknown id is logged and otherwise ignored.
func (r *InquiryKVRepository) UpdateStatus(ctx context.Context, id string, status entities.InquiryStatus) error {
	return r.mutate(ctx, func(list []entities.Inquiry) []entities.Inquiry {
		for i := range list {
			if list[i].ID == id {
				list[i].Status = status
				return list
			}
		}
		r.logger.Warn("[inquiry][kv] status update for unknown inquiry", zap.String("inquiry_id", id))
		return list
	})
}

func (r *InquiryKVRepository) Delete(ctx context.Context, id string) error {
	return r.mutate(ctx, func(list []entities.Inquiry) []entities.Inquiry {
		out := list[:0]
		for _, in := range list {
			if in.ID != id {
				out = append(out, in)
			}
		}
		return out
	})
}

func (r *InquiryKVRepository) LoadLegacy(ctx context.Context) ([]entities.Inquiry, error) {
	return r.List(ctx)
}

func (r *InquiryKVRepository) ClearLegacy(ctx context.Context) error {
	if err := r.kv.Delete(ctx, KeyInquiries); err != nil {
		return err
	}
	r.feed.publish([]entities.Inquiry{})
	return nil
}

// KVMigrationMarker stores the one-time migration flag next to the legacy
// data it describes.
type KVMigrationMarker struct {
	kv *KVStore
}

var _ interfaces.IMigrationMarker = (*KVMigrationMarker)(nil)

func NewKVMigrationMarker(kv *KVStore) *KVMigrationMarker {
	return &KVMigrationMarker{kv: kv}
}

func (m *KVMigrationMarker) IsMigrated(ctx context.Context) (bool, error) {
	v, found, err := m.kv.Get(ctx, KeyInquiriesMigrated)
	if err != nil {
		return false, err
	}
	return found && v == "true", nil
}

func (m *KVMigrationMarker) MarkMigrated(ctx context.Context) error {
	return m.kv.Put(ctx, KeyInquiriesMigrated, "true")
}
