package services

import (
	"context"
	"errors"
	"testing"

	"ansh-apparels/models"
	"ansh-apparels/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitContact(t *testing.T) {
	ctx := context.Background()
	notifier := &testutil.Notifier{}
	svc := NewContactService(testutil.NewContactStore(), notifier)

	msg, err := svc.Submit(ctx, models.ContactRequest{Name: " Ravi ", Message: " Do you ship abroad? ", Phone: "  ", Email: "ravi@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "Ravi", msg.Name)
	assert.Equal(t, "Do you ship abroad?", msg.Message)
	assert.Nil(t, msg.Phone)
	require.NotNil(t, msg.Email)
	assert.Equal(t, "ravi@example.com", *msg.Email)
	assert.Len(t, notifier.Sent, 1)
}

func TestSubmitContactValidation(t *testing.T) {
	svc := NewContactService(testutil.NewContactStore(), nil)

	_, err := svc.Submit(context.Background(), models.ContactRequest{Name: "Ravi", Message: "   "})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Name and message are required", verr.Message)
}

func TestSubmitContactSurvivesNotifierFailure(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewContactStore()
	svc := NewContactService(store, &testutil.Notifier{Err: errors.New("smtp down")})

	_, err := svc.Submit(ctx, models.ContactRequest{Name: "A", Message: "B"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDeleteContact(t *testing.T) {
	ctx := context.Background()
	svc := NewContactService(testutil.NewContactStore(), nil)
	msg, err := svc.Submit(ctx, models.ContactRequest{Name: "A", Message: "B"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, msg.ID))
	assert.ErrorIs(t, svc.Delete(ctx, msg.ID), models.ErrNotFound)
}
