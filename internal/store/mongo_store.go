package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	// CollectionName коллекция с записями коротких ссылок
	CollectionName = "urls"

	shortCodeField   = "shortCode"
	originalURLField = "originalUrl"
	clickCountField  = "clickCount"

	mongoShortCodeIndex   = "shortCode_1"
	mongoOriginalURLIndex = "originalUrl_1"

	// duplicateKeyCode код ошибки E11000 duplicate key
	duplicateKeyCode = 11000
)

// urlDocument документ коллекции urls
type urlDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OriginalURL string             `bson:"originalUrl"`
	ShortCode   string             `bson:"shortCode"`
	CreatedAt   time.Time          `bson:"createdAt"`
	ClickCount  int64              `bson:"clickCount"`
}

func (d urlDocument) toMapping() model.URLMapping {
	return model.URLMapping{
		ID:          d.ID.Hex(),
		OriginalURL: model.URL(d.OriginalURL),
		ShortCode:   model.Code(d.ShortCode),
		CreatedAt:   d.CreatedAt.UTC(),
		ClickCount:  d.ClickCount,
	}
}

// MongoStore реализует хранилище на коллекции MongoDB
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// ConnectMongo подключается к MongoDB и проверяет соединение
func ConnectMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return NewMongoStore(client, database), nil
}

// NewMongoStore создает MongoStore поверх существующего клиента
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(CollectionName),
	}
}

func (ms *MongoStore) FindByCode(ctx context.Context, code model.Code) (model.URLMapping, error) {
	mapping, err := ms.findOne(ctx, bson.D{{Key: shortCodeField, Value: code.String()}})
	if err != nil {
		return model.URLMapping{}, fmt.Errorf("code %s: %w", code, err)
	}

	return mapping, nil
}

func (ms *MongoStore) FindByOriginalURL(ctx context.Context, url model.URL) (model.URLMapping, error) {
	mapping, err := ms.findOne(ctx, bson.D{{Key: originalURLField, Value: url.String()}})
	if err != nil {
		return model.URLMapping{}, fmt.Errorf("url %s: %w", url, err)
	}

	return mapping, nil
}

// CreateOrGet вставляет документ. Дубликат по originalUrl возвращает существующий документ,
// дубликат по shortCode возвращает ErrCodeConflict. Нарушенный индекс определяется по keyPattern ошибки.
func (ms *MongoStore) CreateOrGet(ctx context.Context, mapping model.URLMapping) (model.URLMapping, bool, error) {
	doc := urlDocument{
		ID:          primitive.NewObjectID(),
		OriginalURL: mapping.OriginalURL.String(),
		ShortCode:   mapping.ShortCode.String(),
		CreatedAt:   mapping.CreatedAt,
		ClickCount:  mapping.ClickCount,
	}

	_, err := ms.collection.InsertOne(ctx, doc)
	if err == nil {
		return doc.toMapping(), true, nil
	}

	if !mongo.IsDuplicateKeyError(err) {
		return model.URLMapping{}, false, fmt.Errorf("failed to insert document: %w", err)
	}

	if duplicateKeyField(err) == shortCodeField {
		return model.URLMapping{}, false, fmt.Errorf("code %s: %w", mapping.ShortCode, ErrCodeConflict)
	}

	// Нарушен индекс originalUrl или сервер не сообщил keyPattern: решает повторный поиск
	existing, err := ms.FindByOriginalURL(ctx, mapping.OriginalURL)
	switch {
	case err == nil:
		return existing, false, nil
	case errors.Is(err, ErrNotFound):
		return model.URLMapping{}, false, fmt.Errorf("code %s: %w", mapping.ShortCode, ErrCodeConflict)
	default:
		return model.URLMapping{}, false, err
	}
}

// duplicateKeyField возвращает первое поле keyPattern из ошибки E11000 или пустую строку
func duplicateKeyField(err error) string {
	var writeErr mongo.WriteException
	if !errors.As(err, &writeErr) {
		return ""
	}

	for _, we := range writeErr.WriteErrors {
		if we.Code != duplicateKeyCode {
			continue
		}

		keyPattern, ok := we.Raw.Lookup("keyPattern").DocumentOK()
		if !ok {
			continue
		}

		elements, err := keyPattern.Elements()
		if err != nil || len(elements) == 0 {
			continue
		}
		return elements[0].Key()
	}

	return ""
}

// IncrementClicks выполняет $inc через FindOneAndUpdate и возвращает документ после изменения
func (ms *MongoStore) IncrementClicks(ctx context.Context, code model.Code) (model.URLMapping, error) {
	filter := bson.D{{Key: shortCodeField, Value: code.String()}}
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: clickCountField, Value: 1}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc urlDocument
	err := ms.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.URLMapping{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return model.URLMapping{}, fmt.Errorf("failed to increment click count: %w", err)
	}

	return doc.toMapping(), nil
}

// EnsureIndexes создает возрастающие уникальные индексы по shortCode и originalUrl.
// Неуникальный индекс на том же поле (так коллекцию размечала прежняя версия сервиса)
// удаляется и создается заново уникальным. Уже существующий уникальный индекс не трогается.
func (ms *MongoStore) EnsureIndexes(ctx context.Context) error {
	specs, err := ms.collection.Indexes().ListSpecifications(ctx)
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}

	wanted := []struct {
		field string
		name  string
	}{
		{field: shortCodeField, name: mongoShortCodeIndex},
		{field: originalURLField, name: mongoOriginalURLIndex},
	}

	var models []mongo.IndexModel
	for _, w := range wanted {
		existing := findSingleFieldIndex(specs, w.field)

		if existing != nil && existing.Unique != nil && *existing.Unique {
			continue
		}

		if existing != nil {
			if _, err := ms.collection.Indexes().DropOne(ctx, existing.Name); err != nil {
				return fmt.Errorf("failed to drop non-unique index %s: %w", existing.Name, err)
			}
		}

		models = append(models, mongo.IndexModel{
			Keys:    bson.D{{Key: w.field, Value: 1}},
			Options: options.Index().SetName(w.name).SetUnique(true),
		})
	}

	if len(models) == 0 {
		return nil
	}

	if _, err := ms.collection.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// findSingleFieldIndex ищет возрастающий индекс ровно по одному полю field
func findSingleFieldIndex(specs []*mongo.IndexSpecification, field string) *mongo.IndexSpecification {
	for _, spec := range specs {
		elements, err := spec.KeysDocument.Elements()
		if err != nil || len(elements) != 1 || elements[0].Key() != field {
			continue
		}

		if isAscending(elements[0].Value()) {
			return spec
		}
	}

	return nil
}

func isAscending(value bson.RawValue) bool {
	if v, ok := value.Int32OK(); ok {
		return v > 0
	}
	if v, ok := value.Int64OK(); ok {
		return v > 0
	}
	if v, ok := value.DoubleOK(); ok {
		return v > 0
	}
	return false
}

func (ms *MongoStore) Ping(ctx context.Context) error {
	return ms.client.Ping(ctx, readpref.Primary())
}

func (ms *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return ms.client.Disconnect(ctx)
}

func (ms *MongoStore) findOne(ctx context.Context, filter bson.D) (model.URLMapping, error) {
	var doc urlDocument
	err := ms.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.URLMapping{}, ErrNotFound
		}
		return model.URLMapping{}, fmt.Errorf("failed to find document: %w", err)
	}

	return doc.toMapping(), nil
}
