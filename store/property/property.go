package property

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pandodao/watch-wallet/core"
	"github.com/pandodao/watch-wallet/store/db"
)

type store struct {
	db *db.DB
}

func New(db *db.DB) core.PropertyStore {
	return &store{db: db}
}

func (s *store) Get(ctx context.Context, key string, value any) error {
	var raw []byte
	row := s.db.Builder().Select("value").From("properties").Where("name = ?", key).RunWith(s.db).QueryRowContext(ctx)
	if err := row.Scan(&raw); err == nil {
		return json.Unmarshal(raw, value)
	} else if errors.Is(err, sql.ErrNoRows) {
		return nil
	} else {
		return err
	}
}

func (s *store) Set(ctx context.Context, key string, value any) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	b := s.db.Builder()
	r, err := b.Update("properties").
		Set("value", string(jsonValue)).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", time.Now().UTC()).
		Where("name = ?", key).
		RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set property: %w", err)
	}

	n, err := r.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if n > 0 {
		return nil
	}

	_, err = b.Insert("properties").
		Columns("name", "value", "updated_at").
		Values(key, string(jsonValue), time.Now().UTC()).
		RunWith(s.db).ExecContext(ctx)
	return err
}
