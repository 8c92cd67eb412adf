package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/domain"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/ports"
)

const sessionsCollection = "sessions"

// SessionStore keeps sessions in a TTL'd collection. The TTL monitor only
// sweeps periodically, so Find also checks expiry itself.
type SessionStore struct {
	collection *mongo.Collection
}

type sessionDoc struct {
	Token     string     `bson:"_id"`
	UserID    string     `bson:"user_id"`
	Username  string     `bson:"username"`
	Flashes   []flashDoc `bson:"flashes"`
	CreatedAt time.Time  `bson:"created_at"`
	ExpiresAt time.Time  `bson:"expires_at"`
}

type flashDoc struct {
	Kind    string `bson:"kind"`
	Message string `bson:"message"`
}

var _ ports.SessionStore = (*SessionStore)(nil)

func NewSessionStore(database *mongo.Database) *SessionStore {
	return &SessionStore{collection: database.Collection(sessionsCollection)}
}

func (s *SessionStore) Save(ctx context.Context, session domain.Session) error {
	_, err := s.collection.InsertOne(ctx, mapSessionToDoc(session))
	return err
}

func (s *SessionStore) Find(ctx context.Context, token string) (domain.Session, error) {
	filter := bson.M{"_id": token, "expires_at": bson.M{"$gt": time.Now().UTC()}}

	var doc sessionDoc
	if err := s.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Session{}, domain.ErrSessionNotFound
		}
		return domain.Session{}, err
	}

	return mapDocToSession(doc), nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": token})
	return err
}

func (s *SessionStore) PushFlash(ctx context.Context, token string, flash domain.Flash) error {
	update := bson.M{"$push": bson.M{"flashes": flashDoc{
		Kind:    string(flash.Kind),
		Message: flash.Message,
	}}}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": token}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

func (s *SessionStore) PopFlashes(ctx context.Context, token string) ([]domain.Flash, error) {
	// Read and clear in one round trip so a flash is shown at most once.
	var doc sessionDoc
	err := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": token},
		bson.M{"$set": bson.M{"flashes": bson.A{}}},
		options.FindOneAndUpdate().SetReturnDocument(options.Before),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	flashes := make([]domain.Flash, 0, len(doc.Flashes))
	for _, flash := range doc.Flashes {
		flashes = append(flashes, domain.Flash{
			Kind:    domain.FlashKind(flash.Kind),
			Message: flash.Message,
		})
	}

	return flashes, nil
}

func mapSessionToDoc(session domain.Session) sessionDoc {
	flashes := make([]flashDoc, 0, len(session.Flashes))
	for _, flash := range session.Flashes {
		flashes = append(flashes, flashDoc{Kind: string(flash.Kind), Message: flash.Message})
	}

	return sessionDoc{
		Token:     session.Token,
		UserID:    session.UserID,
		Username:  session.Username,
		Flashes:   flashes,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}
}

func mapDocToSession(doc sessionDoc) domain.Session {
	flashes := make([]domain.Flash, 0, len(doc.Flashes))
	for _, flash := range doc.Flashes {
		flashes = append(flashes, domain.Flash{Kind: domain.FlashKind(flash.Kind), Message: flash.Message})
	}

	return domain.Session{
		Token:     doc.Token,
		UserID:    doc.UserID,
		Username:  doc.Username,
		Flashes:   flashes,
		CreatedAt: doc.CreatedAt,
		ExpiresAt: doc.ExpiresAt,
	}
}
