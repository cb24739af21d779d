package repository

import (
	"bytes"
	"context"
	"encoding/json"

	"cctv_estimator/internal/domain/entities"
	"cctv_estimator/internal/domain/pricing"
	"cctv_estimator/internal/usecase/interfaces"
	"cctv_estimator/pkg/logger"

	"go.uber.org/zap"
)

// PriceTableKVRepository keeps the flattened price table as one JSON object
// under KeyPricing.
type PriceTableKVRepository struct {
	kv     *KVStore
	logger logger.Logger
}

var _ interfaces.IPriceTableRepository = (*PriceTableKVRepository)(nil)

func NewPriceTableKVRepository(kv *KVStore, log logger.Logger) *PriceTableKVRepository {
	return &PriceTableKVRepository{kv: kv, logger: log}
}

func (r *PriceTableKVRepository) Load(ctx context.Context) (entities.PriceTable, error) {
	raw, found, err := r.kv.Get(ctx, KeyPricing)
	if err != nil {
		return entities.PriceTable{}, err
	}
	if !found {
		return entities.DefaultPriceTable(), nil
	}
	return decodePriceFields([]byte(raw), r.logger), nil
}

func (r *PriceTableKVRepository) Save(ctx context.Context, table entities.PriceTable) error {
	b, err := json.Marshal(pricing.Flatten(table))
	if err != nil {
		return err
	}
	return r.kv.Put(ctx, KeyPricing, string(b))
}

// decodePriceFields accepts both the flattened form and the nested form
// written by older clients. Anything unreadable yields the defaults.
func decodePriceFields(raw []byte, log logger.Logger) entities.PriceTable {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		log.Warn("[pricing][repository] stored price table unreadable, using defaults", zap.Error(err))
		return entities.DefaultPriceTable()
	}
	return pricing.Rebuild(flattenNested(doc))
}

// flattenNested turns {"cameras":{"bullet":1800}} into {"cameras.bullet":1800};
// already flat keys pass through.
func flattenNested(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		nested, ok := v.(map[string]any)
		if !ok {
			out[k] = v
			continue
		}
		for field, fv := range nested {
			out[k+"."+field] = fv
		}
	}
	return out
}
