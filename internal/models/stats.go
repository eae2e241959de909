package models

type RatingBucket struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

type PopularMeal struct {
	Meal          string `json:"meal"`
	FeedbackCount int64  `json:"feedback_count"`
}

type Stats struct {
	AverageRating      float64        `json:"average_rating"`
	TotalFeedback      int64          `json:"total_feedback"`
	RatingDistribution []RatingBucket `json:"rating_distribution"`
	PopularMeals       []PopularMeal  `json:"popular_meals"`
}
