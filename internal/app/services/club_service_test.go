package services

import (
	"context"
	"testing"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/policy"
	"github.com/aegisone/campus/internal/pkg/apperrors"
)

type fakeClubStore struct {
	clubStore
	club       *models.Club
	members    map[int64]bool
	addedCount int
}

func (f *fakeClubStore) GetByID(ctx context.Context, id int64) (*models.Club, error) {
	if f.club == nil || f.club.ID != id {
		return nil, apperrors.NewNotFoundError("club not found")
	}
	return f.club, nil
}

func (f *fakeClubStore) IsMember(ctx context.Context, clubID, userID int64) (bool, error) {
	return f.members[userID], nil
}

func (f *fakeClubStore) AddMember(ctx context.Context, m *models.ClubMember) error {
	f.members[m.UserID] = true
	f.addedCount++
	return nil
}

func TestJoinTwiceIsIdempotent(t *testing.T) {
	store := &fakeClubStore{
		club:    &models.Club{ID: 4, Name: "Robotics Club", LeadID: 2},
		members: map[int64]bool{},
	}
	svc := &ClubService{clubRepo: store}
	student := policy.Actor{ID: 7, Role: models.RoleStudent}

	first, err := svc.Join(context.Background(), student, 4)
	if err != nil {
		t.Fatalf("first Join() error = %v", err)
	}
	if first == nil || first.Role != "member" {
		t.Fatalf("expected a member row for the first join, got %+v", first)
	}

	second, err := svc.Join(context.Background(), student, 4)
	if err != nil {
		t.Fatalf("second Join() error = %v", err)
	}
	if second != nil {
		t.Errorf("expected the second join to be a no-op, got %+v", second)
	}
	if store.addedCount != 1 {
		t.Errorf("expected a single membership row, got %d inserts", store.addedCount)
	}
}
