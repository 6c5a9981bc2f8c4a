package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/krish2434/foodcart/models"
)

// ReviewService creates reviews for delivered orders and keeps the
// restaurant rating aggregate in step. Creating a review and recomputing the
// aggregate happen in one transaction, so concurrent submissions for the
// same restaurant cannot lose updates.
type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// Create records a review for an order. The order must belong to the
// reviewing customer and be delivered, and must not have been reviewed
// before. On success the restaurant's rating is recomputed as the mean of
// all its review ratings, rounded half-up to one decimal place, and its
// review count is refreshed.
func (s *ReviewService) Create(orderID, userID uint, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrBadRating
	}

	var review models.Review
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.CustomerID != userID {
			return ErrPermissionDenied
		}
		if order.Status != models.StatusDelivered {
			return ErrNotReviewable
		}

		var existing int64
		if err := tx.Model(&models.Review{}).Where("order_id = ?", order.ID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyReviewed
		}

		review = models.Review{
			OrderID:      order.ID,
			RestaurantID: order.RestaurantID,
			UserID:       userID,
			Rating:       rating,
			Comment:      comment,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		return recomputeRating(tx, order.RestaurantID)
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListForRestaurant returns all reviews of a restaurant, newest first.
func (s *ReviewService) ListForRestaurant(restaurantID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.Preload("User").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at desc").
		Find(&reviews).Error
	return reviews, err
}

// recomputeRating recalculates the restaurant's mean rating over all of its
// reviews. Full recomputation keeps the aggregate exact regardless of past
// history; review volumes make the O(n) scan cheap.
func recomputeRating(tx *gorm.DB, restaurantID uint) error {
	var reviews []models.Review
	if err := tx.Where("restaurant_id = ?", restaurantID).Find(&reviews).Error; err != nil {
		return err
	}

	rating := decimal.Zero
	if len(reviews) > 0 {
		sum := decimal.Zero
		for _, r := range reviews {
			sum = sum.Add(decimal.NewFromInt(int64(r.Rating)))
		}
		// Round half-up to one decimal place (ratings are positive, so
		// half-away-from-zero is half-up).
		rating = sum.Div(decimal.NewFromInt(int64(len(reviews)))).Round(1)
	}

	return tx.Model(&models.Restaurant{}).Where("id = ?", restaurantID).
		Updates(map[string]interface{}{
			"rating":       rating,
			"review_count": len(reviews),
		}).Error
}
