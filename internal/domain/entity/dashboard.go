package entity

// DashboardStats is the per-user aggregate shown on the home screen
type DashboardStats struct {
	TotalActivitiesGiven    int     `json:"total_activities_given"`
	TotalActivitiesReceived int     `json:"total_activities_received"`
	AverageRatingGiven      float64 `json:"average_rating_given"`
	AverageRatingReceived   float64 `json:"average_rating_received"`
	CurrentStreak           int     `json:"current_streak"` // not computed yet, always 0
	AchievementsCount       int     `json:"achievements_count"`
	PendingRatings          int     `json:"pending_ratings"`
}
