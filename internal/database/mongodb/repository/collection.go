package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection 單一集合的共用讀寫；各 repository 只負責組條件與補欄位
type collection[T any] struct {
	coll  *mongo.Collection
	trace *telemetry.Trace
}

func newCollection[T any](tr *telemetry.Trace, coll *mongo.Collection, indexes []mongo.IndexModel) collection[T] {
	if len(indexes) > 0 {
		_, _ = coll.Indexes().CreateMany(context.Background(), indexes)
	}
	return collection[T]{coll: coll, trace: tr}
}

// startSpan 每次資料庫呼叫一個 span；找不到資料不算錯誤
func (c collection[T]) startSpan(ctx context.Context, op string) (context.Context, *core.TraceStoreMeta, func(error)) {
	ctx, span, end := c.trace.WithSpan(ctx, "mongodb."+c.coll.Name()+"."+op)
	meta := &core.TraceStoreMeta{System: "mongodb", Collection: c.coll.Name(), Op: op}
	return ctx, meta, func(err error) {
		c.trace.ApplyTraceAttributes(span, meta)
		if errors.Is(err, store.ErrNotFound) {
			err = nil
		}
		end(err)
	}
}

func (c collection[T]) insert(ctx context.Context, doc *T) (err error) {
	ctx, _, done := c.startSpan(ctx, "insert")
	defer func() { done(err) }()

	if _, err = c.coll.InsertOne(ctx, doc); err != nil {
		return translate(err)
	}
	return nil
}

func (c collection[T]) findOne(ctx context.Context, filter any) (_ *T, err error) {
	ctx, _, done := c.startSpan(ctx, "findOne")
	defer func() { done(err) }()

	var out T
	if err = c.coll.FindOne(ctx, filter).Decode(&out); err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (c collection[T]) find(ctx context.Context, filter any, opts ...*options.FindOptions) (_ []*T, err error) {
	ctx, meta, done := c.startSpan(ctx, "find")
	defer func() { done(err) }()

	cursor, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	results := make([]*T, 0)
	for cursor.Next(ctx) {
		var doc T
		if err = cursor.Decode(&doc); err != nil {
			return nil, err
		}
		results = append(results, &doc)
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	meta.Count = len(results)
	return results, nil
}

// replace 以 _id 整筆覆寫
func (c collection[T]) replace(ctx context.Context, id string, doc *T) (err error) {
	ctx, meta, done := c.startSpan(ctx, "replace")
	defer func() { done(err) }()
	meta.ID = id

	result, err := c.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return translate(err)
	}
	meta.MatchedCount, meta.ModifiedCount = result.MatchedCount, result.ModifiedCount
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// updateWhere 只 $set 指定欄位，回傳符合條件的筆數
func (c collection[T]) updateWhere(ctx context.Context, filter bson.M, set bson.M) (_ int64, err error) {
	ctx, meta, done := c.startSpan(ctx, "update")
	defer func() { done(err) }()

	result, err := c.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, translate(err)
	}
	meta.MatchedCount, meta.ModifiedCount = result.MatchedCount, result.ModifiedCount
	return result.MatchedCount, nil
}

func (c collection[T]) deleteByID(ctx context.Context, id string) (err error) {
	ctx, meta, done := c.startSpan(ctx, "delete")
	defer func() { done(err) }()
	meta.ID = id

	result, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err)
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (c collection[T]) count(ctx context.Context, filter any) (_ int64, err error) {
	ctx, _, done := c.startSpan(ctx, "count")
	defer func() { done(err) }()

	n, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, translate(err)
	}
	return n, nil
}

// upsert findAndModify，回傳寫入後的文件
func (c collection[T]) upsert(ctx context.Context, filter, update any) (_ *T, err error) {
	ctx, _, done := c.startSpan(ctx, "upsert")
	defer func() { done(err) }()

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var out T
	if err = c.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return store.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	}
	return err
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

// eq 只放入非空條件
func eq(filter bson.M, key, value string) {
	if value != "" {
		filter[key] = value
	}
}

// dateRange YYYY-MM-DD 字串可直接比較大小
func dateRange(filter bson.M, key, from, to string) {
	r := bson.M{}
	if from != "" {
		r["$gte"] = from
	}
	if to != "" {
		r["$lte"] = to
	}
	if len(r) > 0 {
		filter[key] = r
	}
}
