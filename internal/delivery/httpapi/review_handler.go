package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	reviewdto "github.com/dalligo/delivery-service/internal/usecase/dto/review"
	reviewusecase "github.com/dalligo/delivery-service/internal/usecase/review"
	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewUsecase reviewusecase.ReviewUsecase
}

func NewReviewHandler(uc reviewusecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviewUsecase: uc}
}

type createReviewRequest struct {
	OrderID string `json:"order_id" binding:"required"`
	Star    int32  `json:"star" binding:"required"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewUsecase.CreateReview(&reviewdto.CreateReviewInput{
		OrderID:  req.OrderID,
		Star:     req.Star,
		Comment:  req.Comment,
		Username: principal(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

type updateReviewRequest struct {
	Star    int32  `json:"star" binding:"required"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewUsecase.UpdateReview(&reviewdto.UpdateReviewInput{
		ReviewID: c.Param("reviewId"),
		Star:     req.Star,
		Comment:  req.Comment,
		Username: principal(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID := c.Param("reviewId")
	if err := h.reviewUsecase.DeleteReview(reviewID, principal(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review_id": reviewID, "removed": true})
}

func (h *ReviewHandler) GetMyReviews(c *gin.Context) {
	page, limit := parsePage(c)
	reviews, err := h.reviewUsecase.GetUserReviews(&reviewdto.UserReviewsInput{
		Username: principal(c),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// SearchStoreReviews pages a store's reviews. The optional "stars" query
// parameter is a comma-separated list, e.g. ?stars=4,5.
func (h *ReviewHandler) SearchStoreReviews(c *gin.Context) {
	stars, err := parseStars(c.Query("stars"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stars filter"})
		return
	}

	page, limit := parsePage(c)
	reviews, err := h.reviewUsecase.SearchStoreReviews(&reviewdto.StoreReviewsInput{
		StoreID: c.Param("storeId"),
		Stars:   stars,
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func parseStars(raw string) ([]int32, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	stars := make([]int32, 0, len(parts))
	for _, part := range parts {
		star, err := strconv.ParseInt(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, err
		}
		stars = append(stars, int32(star))
	}
	return stars, nil
}

func parsePage(c *gin.Context) (int32, int32) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 32)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 32)
	return int32(page), int32(limit)
}
