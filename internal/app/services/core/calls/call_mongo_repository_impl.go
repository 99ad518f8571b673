package calls

import (
	"context"
	"fmt"
	"healthcal-service/internal/app/contracts"
	"healthcal-service/internal/app/models"
	"healthcal-service/internal/app/services/core/calendar"
	"healthcal-service/internal/pkg/constvars"
	"healthcal-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type CallMongoRepository struct {
	OneTimeCollection   *mongo.Collection
	RecurringCollection *mongo.Collection
	Log                 *zap.Logger
}

func NewCallMongoRepository(db *mongo.Client, dbName string, logger *zap.Logger) contracts.CallRepository {
	database := db.Database(dbName)
	return &CallMongoRepository{
		OneTimeCollection:   database.Collection(constvars.MongoCollectionOneTimeCalls),
		RecurringCollection: database.Collection(constvars.MongoCollectionRecurringCalls),
		Log:                 logger,
	}
}

func (repo *CallMongoRepository) LoadAll(ctx context.Context) ([]calendar.Call, error) {
	var oneTimeCalls []models.OneTimeCall
	cursor, err := repo.OneTimeCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &oneTimeCalls)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	var recurringCalls []models.RecurringCall
	cursor, err = repo.RecurringCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &recurringCalls)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	calls := make([]calendar.Call, 0, len(oneTimeCalls)+len(recurringCalls))
	for _, doc := range oneTimeCalls {
		calls = append(calls, doc.ConvertIntoCall())
	}
	for _, doc := range recurringCalls {
		call, err := doc.ConvertIntoCall()
		if err != nil {
			repo.Log.Warn("CallMongoRepository.LoadAll skipping unreadable recurring call",
				zap.String(constvars.LoggingCallIDKey, doc.ID.Hex()),
				zap.Error(err),
			)
			continue
		}
		calls = append(calls, call)
	}
	return calls, nil
}

func (repo *CallMongoRepository) CreateOneTime(ctx context.Context, clientID, clientName string, startTime time.Time) (string, error) {
	doc := models.NewOneTimeCall(clientID, clientName, startTime)
	result, err := repo.OneTimeCollection.InsertOne(ctx, doc)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return insertedID(result)
}

func (repo *CallMongoRepository) CreateRecurring(ctx context.Context, clientID, clientName string, dayOfWeek time.Weekday, timeOfDay calendar.TimeOfDay) (string, error) {
	doc := models.NewRecurringCall(clientID, clientName, dayOfWeek, timeOfDay)
	result, err := repo.RecurringCollection.InsertOne(ctx, doc)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return insertedID(result)
}

func (repo *CallMongoRepository) Delete(ctx context.Context, callID string, kind calendar.CallKind) (calendar.Call, error) {
	objectID, err := primitive.ObjectIDFromHex(callID)
	if err != nil {
		return nil, exceptions.ErrCallNotFound(exceptions.ErrMongoDBNotObjectID(err))
	}
	filter := bson.M{"_id": objectID}

	switch kind {
	case calendar.CallKindOneTime:
		var doc models.OneTimeCall
		err = repo.OneTimeCollection.FindOneAndDelete(ctx, filter).Decode(&doc)
		if err != nil {
			return nil, deleteError(err)
		}
		return doc.ConvertIntoCall(), nil
	case calendar.CallKindRecurring:
		var doc models.RecurringCall
		err = repo.RecurringCollection.FindOneAndDelete(ctx, filter).Decode(&doc)
		if err != nil {
			return nil, deleteError(err)
		}
		return doc.ConvertIntoDeletedCall(), nil
	}
	return nil, exceptions.ErrInvalidCallKind(fmt.Errorf("kind %q", kind))
}

func deleteError(err error) error {
	if err == mongo.ErrNoDocuments {
		return exceptions.ErrCallNotFound(err)
	}
	return exceptions.ErrMongoDBDeleteDocument(err)
}

func insertedID(result *mongo.InsertOneResult) (string, error) {
	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBInsertDocument(fmt.Errorf("unexpected inserted id %v", result.InsertedID))
	}
	return objectID.Hex(), nil
}
