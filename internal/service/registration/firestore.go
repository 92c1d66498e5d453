package registration

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/janisto/club-registration/internal/platform/logging"
)

const registrationsCollection = "registrations"

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal_error"
	}
}

// firestoreRegistration maps to the Firestore document. Birth dates are stored as
// YYYY-MM-DD strings so they stay calendar dates regardless of time zone.
type firestoreRegistration struct {
	FirstName      string    `firestore:"first_name"`
	FatherLastName string    `firestore:"father_last_name"`
	MotherLastName string    `firestore:"mother_last_name"`
	BirthDate      string    `firestore:"birth_date"`
	Gender         string    `firestore:"gender"`
	Nationality    string    `firestore:"nationality"`
	Club           string    `firestore:"club"`
	ClubLogo       string    `firestore:"club_logo"`
	RFC            string    `firestore:"rfc"`
	Occupation     string    `firestore:"occupation"`
	Adult          bool      `firestore:"adult"`
	Variant        string    `firestore:"variant"`
	CreatedAt      time.Time `firestore:"created_at"`
}

func toFirestore(params CreateParams, createdAt time.Time) firestoreRegistration {
	p := params.Profile
	return firestoreRegistration{
		FirstName:      p.FirstName,
		FatherLastName: p.FatherLastName,
		MotherLastName: p.MotherLastName,
		BirthDate:      p.BirthDate.Format(time.DateOnly),
		Gender:         p.Gender,
		Nationality:    p.Nationality,
		Club:           p.Club,
		ClubLogo:       params.ClubLogo,
		RFC:            p.RFC,
		Occupation:     p.Occupation,
		Adult:          params.Adult,
		Variant:        string(params.Variant),
		CreatedAt:      createdAt,
	}
}

func (fr firestoreRegistration) toRegistration(userID string) (*Registration, error) {
	birth, err := time.Parse(time.DateOnly, fr.BirthDate)
	if err != nil {
		return nil, err
	}
	return &Registration{
		ID: userID,
		Profile: Profile{
			FirstName:      fr.FirstName,
			FatherLastName: fr.FatherLastName,
			MotherLastName: fr.MotherLastName,
			BirthDate:      birth,
			Gender:         fr.Gender,
			Nationality:    fr.Nationality,
			Club:           fr.Club,
			RFC:            fr.RFC,
			Occupation:     fr.Occupation,
		},
		Adult:     fr.Adult,
		Variant:   Variant(fr.Variant),
		ClubLogo:  fr.ClubLogo,
		CreatedAt: fr.CreatedAt,
	}, nil
}

// FirestoreStore implements Store with one document per user.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Create stores a registration inside a transaction so a user can only register once.
func (s *FirestoreStore) Create(ctx context.Context, userID string, params CreateParams) (*Registration, error) {
	docRef := s.client.Collection(registrationsCollection).Doc(userID)
	fr := toFirestore(params, time.Now().UTC())

	err := s.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err == nil && doc.Exists() {
			return ErrAlreadyExists
		}
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		return tx.Set(docRef, fr)
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "create", userID, "registration", userID, applog.AuditFailure,
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}
	applog.LogAuditEvent(ctx, "create", userID, "registration", userID, applog.AuditSuccess, nil)
	return fr.toRegistration(userID)
}

// Get retrieves the registration of a user.
func (s *FirestoreStore) Get(ctx context.Context, userID string) (*Registration, error) {
	doc, err := s.client.Collection(registrationsCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var fr firestoreRegistration
	if err := doc.DataTo(&fr); err != nil {
		return nil, err
	}
	return fr.toRegistration(userID)
}

// Delete removes a registration, failing with ErrNotFound when there is none.
func (s *FirestoreStore) Delete(ctx context.Context, userID string) error {
	docRef := s.client.Collection(registrationsCollection).Doc(userID)
	err := s.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(docRef); err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}
		return tx.Delete(docRef)
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "delete", userID, "registration", userID, applog.AuditFailure,
			map[string]any{"error": categorizeError(err)})
		return err
	}
	applog.LogAuditEvent(ctx, "delete", userID, "registration", userID, applog.AuditSuccess, nil)
	return nil
}

// Compile-time interface check
var _ Store = (*FirestoreStore)(nil)
