package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krish2434/foodcart/models"
)

func TestCreateReview(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
	restaurant, _ := seedRestaurant(t, db, "o@test.dev")
	order := seedOrder(t, db, customer.ID, restaurant.ID, models.StatusDelivered)
	svc := NewReviewService(db)

	review, err := svc.Create(order.ID, customer.ID, 4, "great burger")
	require.NoError(t, err)
	assert.Equal(t, restaurant.ID, review.RestaurantID)

	var reloaded models.Restaurant
	require.NoError(t, db.First(&reloaded, restaurant.ID).Error)
	assert.True(t, reloaded.Rating.Equal(dec(t, "4")))
	assert.Equal(t, 1, reloaded.ReviewCount)
}

func TestCreateReviewGates(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
	stranger := seedUser(t, db, models.RoleCustomer, "c2@test.dev")
	restaurant, _ := seedRestaurant(t, db, "o@test.dev")
	svc := NewReviewService(db)

	undelivered := seedOrder(t, db, customer.ID, restaurant.ID, models.StatusPreparing)
	_, err := svc.Create(undelivered.ID, customer.ID, 5, "")
	assert.ErrorIs(t, err, ErrNotReviewable)

	delivered := seedOrder(t, db, customer.ID, restaurant.ID, models.StatusDelivered)
	_, err = svc.Create(delivered.ID, stranger.ID, 5, "")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.Create(delivered.ID, customer.ID, 0, "")
	assert.ErrorIs(t, err, ErrBadRating)
	_, err = svc.Create(delivered.ID, customer.ID, 6, "")
	assert.ErrorIs(t, err, ErrBadRating)

	_, err = svc.Create(9999, customer.ID, 5, "")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	// no review or aggregate change happened along the way
	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.EqualValues(t, 0, count)
	var reloaded models.Restaurant
	require.NoError(t, db.First(&reloaded, restaurant.ID).Error)
	assert.Equal(t, 0, reloaded.ReviewCount)
}

func TestCreateReviewOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
	restaurant, _ := seedRestaurant(t, db, "o@test.dev")
	order := seedOrder(t, db, customer.ID, restaurant.ID, models.StatusDelivered)
	svc := NewReviewService(db)

	_, err := svc.Create(order.ID, customer.ID, 5, "")
	require.NoError(t, err)

	_, err = svc.Create(order.ID, customer.ID, 1, "changed my mind")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)

	// aggregate untouched by the rejected attempt
	var reloaded models.Restaurant
	require.NoError(t, db.First(&reloaded, restaurant.ID).Error)
	assert.True(t, reloaded.Rating.Equal(dec(t, "5")))
	assert.Equal(t, 1, reloaded.ReviewCount)
}

func TestRatingMeanRounding(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
	restaurant, _ := seedRestaurant(t, db, "o@test.dev")
	svc := NewReviewService(db)

	// ratings 3, 4, 4 → mean 11/3 = 3.666... → 3.7 at one decimal place
	for _, rating := range []int{3, 4, 4} {
		order := seedOrder(t, db, customer.ID, restaurant.ID, models.StatusDelivered)
		_, err := svc.Create(order.ID, customer.ID, rating, "")
		require.NoError(t, err)
	}

	var reloaded models.Restaurant
	require.NoError(t, db.First(&reloaded, restaurant.ID).Error)
	assert.True(t, reloaded.Rating.Equal(dec(t, "3.7")),
		"got %s, want 3.7", reloaded.Rating)
	assert.Equal(t, 3, reloaded.ReviewCount)
}

func TestRatingMeanExactHalf(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
	restaurant, _ := seedRestaurant(t, db, "o@test.dev")
	svc := NewReviewService(db)

	// ratings 3, 4 → mean 3.5 exactly, representable at one decimal place
	for _, rating := range []int{3, 4} {
		order := seedOrder(t, db, customer.ID, restaurant.ID, models.StatusDelivered)
		_, err := svc.Create(order.ID, customer.ID, rating, "")
		require.NoError(t, err)
	}

	var reloaded models.Restaurant
	require.NoError(t, db.First(&reloaded, restaurant.ID).Error)
	assert.True(t, reloaded.Rating.Equal(dec(t, "3.5")))
	assert.Equal(t, 2, reloaded.ReviewCount)
}

func TestListForRestaurant(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, models.RoleCustomer, "c@test.dev")
	restaurant, _ := seedRestaurant(t, db, "o@test.dev")
	svc := NewReviewService(db)

	for _, rating := range []int{5, 2} {
		order := seedOrder(t, db, customer.ID, restaurant.ID, models.StatusDelivered)
		_, err := svc.Create(order.ID, customer.ID, rating, "")
		require.NoError(t, err)
	}

	reviews, err := svc.ListForRestaurant(restaurant.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}
