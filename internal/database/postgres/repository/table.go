package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// table 單一資料表的共用讀寫
type table[T any] struct {
	db    *gorm.DB
	trace *telemetry.Trace
}

func newTable[T any](tr *telemetry.Trace, db *gorm.DB) table[T] {
	return table[T]{db: db, trace: tr}
}

func (t table[T]) name() string {
	if tn, ok := any(new(T)).(interface{ TableName() string }); ok {
		return tn.TableName()
	}
	return "unknown"
}

// startSpan 每次資料庫呼叫一個 span；找不到資料不算錯誤
func (t table[T]) startSpan(ctx context.Context, op string) (context.Context, *core.TraceStoreMeta, func(error)) {
	name := t.name()
	ctx, span, end := t.trace.WithSpan(ctx, "sql."+name+"."+op)
	meta := &core.TraceStoreMeta{System: t.db.Dialector.Name(), Collection: name, Op: op}
	return ctx, meta, func(err error) {
		t.trace.ApplyTraceAttributes(span, meta)
		if errors.Is(err, store.ErrNotFound) {
			err = nil
		}
		end(err)
	}
}

func (t table[T]) insert(ctx context.Context, row *T) (err error) {
	ctx, _, done := t.startSpan(ctx, "insert")
	defer func() { done(err) }()

	return translate(t.db.WithContext(ctx).Create(row).Error)
}

func (t table[T]) first(ctx context.Context, query any, args ...any) (_ *T, err error) {
	ctx, _, done := t.startSpan(ctx, "first")
	defer func() { done(err) }()

	var out T
	if err = t.db.WithContext(ctx).Where(query, args...).First(&out).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (t table[T]) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB, order string) (_ []*T, err error) {
	ctx, meta, done := t.startSpan(ctx, "find")
	defer func() { done(err) }()

	results := make([]*T, 0)
	tx := t.db.WithContext(ctx).Model(new(T))
	if scope != nil {
		tx = scope(tx)
	}
	if err = tx.Order(order).Find(&results).Error; err != nil {
		return nil, translate(err)
	}
	meta.Count = len(results)
	return results, nil
}

// replace 以主鍵整筆覆寫（含零值欄位）
func (t table[T]) replace(ctx context.Context, row *T) (err error) {
	ctx, meta, done := t.startSpan(ctx, "replace")
	defer func() { done(err) }()

	result := t.db.WithContext(ctx).Model(row).Select("*").Updates(row)
	if result.Error != nil {
		return translate(result.Error)
	}
	meta.MatchedCount = result.RowsAffected
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// updateWhere 只更新 values 裡的欄位，回傳受影響筆數
func (t table[T]) updateWhere(ctx context.Context, cond map[string]any, values map[string]any) (_ int64, err error) {
	ctx, meta, done := t.startSpan(ctx, "update")
	defer func() { done(err) }()

	result := t.db.WithContext(ctx).Model(new(T)).Where(cond).Updates(values)
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	meta.ModifiedCount = result.RowsAffected
	return result.RowsAffected, nil
}

func (t table[T]) deleteByID(ctx context.Context, id string) (err error) {
	ctx, meta, done := t.startSpan(ctx, "delete")
	defer func() { done(err) }()
	meta.ID = id

	result := t.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (t table[T]) count(ctx context.Context) (_ int64, err error) {
	ctx, _, done := t.startSpan(ctx, "count")
	defer func() { done(err) }()

	var n int64
	if err = t.db.WithContext(ctx).Model(new(T)).Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}

// upsert INSERT ... ON CONFLICT (conflict) DO UPDATE SET updates，再以唯一鍵讀回
func (t table[T]) upsert(ctx context.Context, row *T, conflict []string, updates []string, key map[string]any) (_ *T, err error) {
	spanCtx, _, done := t.startSpan(ctx, "upsert")
	defer func() { done(err) }()

	columns := make([]clause.Column, len(conflict))
	for i, name := range conflict {
		columns[i] = clause.Column{Name: name}
	}
	err = t.db.WithContext(spanCtx).Clauses(clause.OnConflict{
		Columns:   columns,
		DoUpdates: clause.AssignmentColumns(updates),
	}).Create(row).Error
	if err != nil {
		return nil, translate(err)
	}
	return t.first(spanCtx, key)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	}
	return err
}

func eq(tx *gorm.DB, column, value string) *gorm.DB {
	if value == "" {
		return tx
	}
	return tx.Where(column+" = ?", value)
}

func dateRange(tx *gorm.DB, column, from, to string) *gorm.DB {
	if from != "" {
		tx = tx.Where(column+" >= ?", from)
	}
	if to != "" {
		tx = tx.Where(column+" <= ?", to)
	}
	return tx
}

const newestFirst = "created_at desc"
