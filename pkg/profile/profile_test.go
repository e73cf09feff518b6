package profile

import (
	"context"
	"fmt"
	"testing"

	"github.com/example/homeli/pkg/models"
	"github.com/example/homeli/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	seq := 0
	return NewService(repository.NewMemoryKV(), repository.ErrKeyNotFound).
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		})
}

func defaultCount(addrs []models.Address) int {
	n := 0
	for _, a := range addrs {
		if a.IsDefault {
			n++
		}
	}
	return n
}

func TestAddAddressSingleDefault(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	list, err := svc.AddAddress(ctx, "guest", models.Address{Type: "home", Address: "12 Beach Road", Pincode: "682001", IsDefault: true})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsDefault)

	// A second default steals the flag from the first.
	list, err = svc.AddAddress(ctx, "guest", models.Address{Type: "work", Address: "4 Tech Park", Pincode: "682030", IsDefault: true})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1, defaultCount(list))
	assert.True(t, list[1].IsDefault)
	assert.False(t, list[0].IsDefault)
}

func TestUpdateAddressPartialAndDefaultSweep(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddAddress(ctx, "guest", models.Address{Type: "home", Address: "old", Pincode: "1", IsDefault: true})
	require.NoError(t, err)
	list, err := svc.AddAddress(ctx, "guest", models.Address{Type: "work", Address: "office", Pincode: "2"})
	require.NoError(t, err)

	newAddr := "new street"
	makeDefault := true
	list, err = svc.UpdateAddress(ctx, "guest", list[1].ID, AddressUpdate{Address: &newAddr, IsDefault: &makeDefault})
	require.NoError(t, err)

	assert.Equal(t, "new street", list[1].Address)
	assert.Equal(t, "work", list[1].Type)
	assert.Equal(t, 1, defaultCount(list))
	assert.True(t, list[1].IsDefault)

	_, err = svc.UpdateAddress(ctx, "guest", "missing", AddressUpdate{Address: &newAddr})
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestDeleteDefaultAddressPromotesFirst(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddAddress(ctx, "guest", models.Address{Type: "home", Address: "a", Pincode: "1"})
	require.NoError(t, err)
	_, err = svc.AddAddress(ctx, "guest", models.Address{Type: "work", Address: "b", Pincode: "2", IsDefault: true})
	require.NoError(t, err)
	list, err := svc.AddAddress(ctx, "guest", models.Address{Type: "other", Address: "c", Pincode: "3"})
	require.NoError(t, err)

	list, err = svc.DeleteAddress(ctx, "guest", list[1].ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].IsDefault)
	assert.Equal(t, 1, defaultCount(list))

	// Deleting a non-default leaves flags alone.
	list, err = svc.DeleteAddress(ctx, "guest", list[1].ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsDefault)
}

func TestSetDefaultAddressSingleWinner(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddAddress(ctx, "guest", models.Address{Type: "home", Address: "a", Pincode: "1", IsDefault: true})
	require.NoError(t, err)
	list, err := svc.AddAddress(ctx, "guest", models.Address{Type: "work", Address: "b", Pincode: "2"})
	require.NoError(t, err)

	list, err = svc.SetDefaultAddress(ctx, "guest", list[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, defaultCount(list))
	assert.True(t, list[1].IsDefault)
}

func TestCardsSingleDefault(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddCard(ctx, "guest", models.SavedCard{CardNumber: "4242", CardHolder: "Asha", ExpiryDate: "12/27", CardType: models.CardVisa, IsDefault: true})
	require.NoError(t, err)
	list, err := svc.AddCard(ctx, "guest", models.SavedCard{CardNumber: "1881", CardHolder: "Asha", ExpiryDate: "03/28", CardType: models.CardMastercard, IsDefault: true})
	require.NoError(t, err)

	defaults := 0
	for _, card := range list {
		if card.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
	assert.True(t, list[1].IsDefault)

	// Deleting the default promotes the survivor.
	list, err = svc.DeleteCard(ctx, "guest", list[1].ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsDefault)
}

func TestUPIsSetDefault(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddUPI(ctx, "guest", models.SavedUPI{UPIID: "asha@okbank", Label: "Google Pay", IsDefault: true})
	require.NoError(t, err)
	list, err := svc.AddUPI(ctx, "guest", models.SavedUPI{UPIID: "asha@ppay", Label: "PhonePe"})
	require.NoError(t, err)

	list, err = svc.SetDefaultUPI(ctx, "guest", list[1].ID)
	require.NoError(t, err)
	assert.False(t, list[0].IsDefault)
	assert.True(t, list[1].IsDefault)
}

func TestToggleFavorite(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	item := models.FavoriteItem{ID: "lunch-1", Name: "Chicken Biriyani", Price: 165, Rating: 4.8, Image: "lunch/chickenbiriyani.png", Category: "lunch"}

	list, isFav, err := svc.ToggleFavorite(ctx, "guest", item)
	require.NoError(t, err)
	assert.True(t, isFav)
	require.Len(t, list, 1)

	// New favorites go to the front.
	second := models.FavoriteItem{ID: "dessert-5", Name: "Gulab Jamun", Price: 85}
	list, _, err = svc.ToggleFavorite(ctx, "guest", second)
	require.NoError(t, err)
	assert.Equal(t, "dessert-5", list[0].ID)

	// Toggling again removes.
	list, isFav, err = svc.ToggleFavorite(ctx, "guest", item)
	require.NoError(t, err)
	assert.False(t, isFav)
	require.Len(t, list, 1)

	fav, err := svc.IsFavorite(ctx, "guest", "dessert-5")
	require.NoError(t, err)
	assert.True(t, fav)
	fav, err = svc.IsFavorite(ctx, "guest", "lunch-1")
	require.NoError(t, err)
	assert.False(t, fav)
}

func TestNotificationsLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddNotification(ctx, "guest", models.Notification{Type: models.NotificationOrder, Message: "first"})
	require.NoError(t, err)
	list, err := svc.AddNotification(ctx, "guest", models.Notification{Type: models.NotificationPromotional, Message: "second"})
	require.NoError(t, err)

	// Newest first, all unread.
	assert.Equal(t, "second", list[0].Message)
	count, err := svc.UnreadCount(ctx, "guest")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	list, err = svc.MarkNotificationRead(ctx, "guest", list[0].ID)
	require.NoError(t, err)
	assert.True(t, list[0].Read)
	count, err = svc.UnreadCount(ctx, "guest")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = svc.MarkAllNotificationsRead(ctx, "guest")
	require.NoError(t, err)
	count, err = svc.UnreadCount(ctx, "guest")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	list, err = svc.ClearNotification(ctx, "guest", list[1].ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.ClearAllNotifications(ctx, "guest"))
	list, err = svc.Notifications(ctx, "guest")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCollectionsIsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddAddress(ctx, "guest", models.Address{Type: "home", Address: "a", Pincode: "1"})
	require.NoError(t, err)

	other, err := svc.Addresses(ctx, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, other)
}
