package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk-backend/models"
)

func TestGuestUpdateMergesFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestService(db)
	guest := createTestGuest(t, db, "Maria Santos")

	require.NoError(t, svc.Update(&models.Guest{
		ID:      guest.ID,
		Phone:   "+1 555 0199",
		VIPTier: models.VIPTierGold,
	}))

	updated, err := svc.GetByID(guest.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Santos", updated.FullName) // untouched
	assert.Equal(t, "+1 555 0199", updated.Phone)
	assert.Equal(t, models.VIPTierGold, updated.VIPTier)

	err = svc.Update(&models.Guest{ID: 9999, Phone: "x"})
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestAddGuestDocument(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestService(db)
	guest := createTestGuest(t, db, "Maria Santos")

	doc := models.GuestDocument{
		DocumentType: "passport",
		FileName:     "passport.jpg",
		FilePath:     "/uploads/passport.jpg",
	}
	require.NoError(t, svc.AddDocument(guest.ID, &doc))
	assert.False(t, doc.UploadedAt.IsZero())

	loaded, err := svc.GetByID(guest.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Documents, 1)
	assert.Equal(t, "passport", loaded.Documents[0].DocumentType)

	err = svc.AddDocument(9999, &models.GuestDocument{DocumentType: "passport"})
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestGetGuestNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestService(db)

	_, err := svc.GetByID(1234)
	assert.ErrorIs(t, err, ErrGuestNotFound)
}
