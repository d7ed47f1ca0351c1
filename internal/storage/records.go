package storage

import (
	"context"
	"sort"
	"strings"

	"github.com/Misgexx/Fairtrack/internal/common"
	"github.com/Misgexx/Fairtrack/internal/model"
)

// Records reads and writes interaction record snapshots on top of a Store.
type Records struct {
	store Store
}

// NewRecords creates a record accessor over the given store.
func NewRecords(store Store) *Records {
	return &Records{store: store}
}

// Save writes the record's normalized snapshot under its key.
func (r *Records) Save(ctx context.Context, rec model.Record) error {
	data, err := model.ToPayload(rec).Marshal()
	if err != nil {
		return err
	}
	key := RecordKey(rec.ID)
	if err := r.store.Set(ctx, key, string(data)); err != nil {
		return common.NewPersistenceError("set", key, err)
	}
	return nil
}

// Load reads one record by id. Returns common.ErrNotFound if absent.
func (r *Records) Load(ctx context.Context, id string) (model.Record, error) {
	key := RecordKey(id)
	value, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return model.Record{}, common.NewPersistenceError("get", key, err)
	}
	if !ok {
		return model.Record{}, common.ErrNotFound
	}
	return model.ParsePayload([]byte(value))
}

// Delete removes one record by id. Deleting an absent record is a no-op.
func (r *Records) Delete(ctx context.Context, id string) error {
	key := RecordKey(id)
	if err := r.store.Remove(ctx, key); err != nil {
		return common.NewPersistenceError("remove", key, err)
	}
	return nil
}

// List returns all tracked records sorted by company name, then id for a
// stable order between companies with the same name.
func (r *Records) List(ctx context.Context) ([]model.Record, error) {
	pairs, err := r.store.List(ctx, RecordKeyPrefix)
	if err != nil {
		return nil, common.NewPersistenceError("list", RecordKeyPrefix, err)
	}

	records := make([]model.Record, 0, len(pairs))
	for _, value := range pairs {
		rec, err := model.ParsePayload([]byte(value))
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		a := strings.ToLower(records[i].Company)
		b := strings.ToLower(records[j].Company)
		if a != b {
			return a < b
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}

// FindByCompany returns the first record whose company name matches,
// case-insensitively. Returns common.ErrNotFound when nothing matches.
func (r *Records) FindByCompany(ctx context.Context, company string) (model.Record, error) {
	records, err := r.List(ctx)
	if err != nil {
		return model.Record{}, err
	}
	needle := strings.ToLower(strings.TrimSpace(company))
	for _, rec := range records {
		if strings.ToLower(rec.Company) == needle {
			return rec, nil
		}
	}
	return model.Record{}, common.ErrNotFound
}
