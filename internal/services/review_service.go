package services

import (
	"artisanhub/internal/models"
	"artisanhub/internal/repositories"
	"artisanhub/internal/services/dto"
	"artisanhub/pkg/apperrors"
)

type ReviewService interface {
	CreateReview(customerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	GetReviews() ([]dto.ReviewResponse, error)
	GetArtisanReviews(artisanID string) ([]dto.ReviewResponse, float64, error)
}

type ReviewServiceImpl struct {
	reviewRepo  repositories.ReviewRepository
	artisanRepo repositories.ArtisanRepository
	userRepo    repositories.UserRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	artisanRepo repositories.ArtisanRepository,
	userRepo repositories.UserRepository,
) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:  reviewRepo,
		artisanRepo: artisanRepo,
		userRepo:    userRepo,
	}
}

// CreateReview records a rating for an artisan. One review per
// (customer, artisan) pair.
func (s *ReviewServiceImpl) CreateReview(customerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	artisan, err := s.artisanRepo.FindByID(req.ArtisanID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrArtisanNotFound) {
			return nil, apperrors.NewNotFoundError("reviews", "Artisan not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if artisan.UserID == customerID {
		return nil, apperrors.ErrInvalidOperation("reviews", "You cannot review yourself")
	}

	exists, err := s.reviewRepo.ExistsByCustomerAndArtisan(customerID, req.ArtisanID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrInvalidOperation("reviews", "You have already reviewed this artisan")
	}

	customer, err := s.userRepo.FindByID(customerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	review := &models.Review{
		CustomerID: customerID,
		ArtisanID:  req.ArtisanID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// A freshly created row has no association loaded.
	review.Customer = *customer
	return buildReviewResponse(review), nil
}

func (s *ReviewServiceImpl) GetReviews() ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildReviewResponses(reviews), nil
}

// GetArtisanReviews returns an artisan's reviews along with the average
// rating, 0 when there are none.
func (s *ReviewServiceImpl) GetArtisanReviews(artisanID string) ([]dto.ReviewResponse, float64, error) {
	if _, err := s.artisanRepo.FindByID(artisanID); err != nil {
		if apperrors.Is(err, repositories.ErrArtisanNotFound) {
			return nil, 0, apperrors.NewNotFoundError("reviews", "Artisan not found")
		}
		return nil, 0, apperrors.InternalError(err)
	}

	reviews, err := s.reviewRepo.FindByArtisan(artisanID)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	average, err := s.reviewRepo.AverageRating(artisanID)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	return buildReviewResponses(reviews), average, nil
}

func buildReviewResponse(review *models.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:           review.ID,
		CustomerName: review.Customer.Name,
		ArtisanID:    review.ArtisanID,
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
	}
}

func buildReviewResponses(reviews []models.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, *buildReviewResponse(&reviews[i]))
	}
	return responses
}
