package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/domain"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/ports"
)

const tasksCollection = "tasks"

type TaskRepository struct {
	collection *mongo.Collection
}

type taskDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     primitive.ObjectID `bson:"owner_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	DueDate     *time.Time         `bson:"due_date,omitempty"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(database *mongo.Database) *TaskRepository {
	return &TaskRepository{collection: database.Collection(tasksCollection)}
}

func (r *TaskRepository) Create(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return domain.Task{}, err
	}

	doc := taskDoc{
		OwnerID:     owner,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      string(domain.TaskStatusPending),
		CreatedAt:   time.Now().UTC(),
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return domain.Task{}, err
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return mapTaskDocToDomainTask(doc), nil
}

func (r *TaskRepository) FindByOwner(ctx context.Context, taskID, ownerID string) (domain.Task, error) {
	filter, err := ownedTaskFilter(taskID, ownerID)
	if err != nil {
		// A malformed id can never match a stored task.
		return domain.Task{}, domain.ErrTaskNotFound
	}

	var doc taskDoc
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskDocToDomainTask(doc), nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID string, statuses []domain.TaskStatus) ([]domain.Task, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"owner_id": owner}
	if len(statuses) > 0 {
		values := make(bson.A, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, string(status))
		}
		filter["status"] = bson.M{"$in": values}
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}

	var docs []taskDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, mapTaskDocToDomainTask(doc))
	}

	return tasks, nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, taskID, ownerID string, status domain.TaskStatus) error {
	filter, err := ownedTaskFilter(taskID, ownerID)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func ownedTaskFilter(taskID, ownerID string) (bson.M, error) {
	id, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return nil, err
	}
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, err
	}
	return bson.M{"_id": id, "owner_id": owner}, nil
}

func mapTaskDocToDomainTask(doc taskDoc) domain.Task {
	task := domain.Task{
		ID:          doc.ID.Hex(),
		OwnerID:     doc.OwnerID.Hex(),
		Title:       doc.Title,
		Description: doc.Description,
		Status:      domain.TaskStatus(doc.Status),
		CreatedAt:   doc.CreatedAt,
	}

	if doc.DueDate != nil {
		value := *doc.DueDate
		task.DueDate = &value
	}

	return task
}
