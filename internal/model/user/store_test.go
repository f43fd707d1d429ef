package user

import (
	"context"
	"errors"
	"testing"
)

func TestSaveAssignsIDAndRejectsDuplicateEmail(t *testing.T) {
	store := NewMemoryStore()

	first, err := store.Save(context.Background(), User{Email: "asha@example.com"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected an assigned id")
	}

	if _, err := store.Save(context.Background(), User{Email: "Asha@Example.com"}); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestFindByEmailAndMobile(t *testing.T) {
	store := NewMemoryStore()
	saved, _ := store.Save(context.Background(), User{Email: "asha@example.com", MobileNumber: "9876543210"})

	byEmail, err := store.FindByEmail(context.Background(), "asha@example.com")
	if err != nil || byEmail.ID != saved.ID {
		t.Fatalf("FindByEmail: got %+v, %v", byEmail, err)
	}

	byMobile, err := store.FindByMobile(context.Background(), "9876543210")
	if err != nil || byMobile.ID != saved.ID {
		t.Fatalf("FindByMobile: got %+v, %v", byMobile, err)
	}

	if _, err := store.FindByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateReindexesEmail(t *testing.T) {
	store := NewMemoryStore()
	saved, _ := store.Save(context.Background(), User{Email: "asha@example.com"})

	saved.Email = "asha.rao@example.com"
	if err := store.Update(context.Background(), saved); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if _, err := store.FindByEmail(context.Background(), "asha@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected old email unindexed, got %v", err)
	}
	if _, err := store.FindByEmail(context.Background(), "asha.rao@example.com"); err != nil {
		t.Fatalf("expected new email indexed, got %v", err)
	}
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	store := NewMemoryStore()
	saved, _ := store.Save(context.Background(), User{Email: "asha@example.com"})

	got, _ := store.FindByID(context.Background(), saved.ID)
	got.EmergencyContacts = append(got.EmergencyContacts, EmergencyContact{FullName: "Ravi"})

	again, _ := store.FindByID(context.Background(), saved.ID)
	if len(again.EmergencyContacts) != 0 {
		t.Fatal("mutating a returned record must not affect the store")
	}
}
