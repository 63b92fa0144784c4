package handler

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"loveacts-service/internal/metrics"
	"loveacts-service/internal/middleware"

	"github.com/sirupsen/logrus"
)

// RouterOptions configures the cross-cutting parts of the HTTP stack
type RouterOptions struct {
	Version     string
	MetricsPath string // empty disables the metrics endpoint
	RateLimiter *middleware.RateLimiter
	CORS        *middleware.CORS
	Log         logrus.FieldLogger
}

// Router sets up HTTP routes
type Router struct {
	authHandler        *AuthHandler
	coupleHandler      *CoupleHandler
	activityHandler    *ActivityHandler
	moodHandler        *MoodHandler
	achievementHandler *AchievementHandler
	authMiddleware     *middleware.AuthMiddleware
	opts               RouterOptions
	mux                *http.ServeMux
}

// NewRouter creates a new router
func NewRouter(
	authHandler *AuthHandler,
	coupleHandler *CoupleHandler,
	activityHandler *ActivityHandler,
	moodHandler *MoodHandler,
	achievementHandler *AchievementHandler,
	authMiddleware *middleware.AuthMiddleware,
	opts RouterOptions,
) *Router {
	return &Router{
		authHandler:        authHandler,
		coupleHandler:      coupleHandler,
		activityHandler:    activityHandler,
		moodHandler:        moodHandler,
		achievementHandler: achievementHandler,
		authMiddleware:     authMiddleware,
		opts:               opts,
		mux:                http.NewServeMux(),
	}
}

// Setup configures all routes
func (r *Router) Setup() http.Handler {
	auth := r.authMiddleware.Auth

	r.mux.HandleFunc("POST /api/auth/register", r.authHandler.Register)
	r.mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)
	r.mux.HandleFunc("GET /api/auth/me", auth(r.authHandler.Me))
	r.mux.HandleFunc("POST /api/auth/logout", auth(r.authHandler.Logout))

	r.mux.HandleFunc("POST /api/couples/link-partner", auth(r.coupleHandler.LinkPartner))
	r.mux.HandleFunc("GET /api/couples/my-partner", auth(r.coupleHandler.MyPartner))

	r.mux.HandleFunc("POST /api/activities/create", auth(r.activityHandler.Create))
	r.mux.HandleFunc("GET /api/activities/my-activities", auth(r.activityHandler.MyActivities))
	r.mux.HandleFunc("GET /api/activities/partner-activities", auth(r.activityHandler.PartnerActivities))
	r.mux.HandleFunc("GET /api/activities/pending-ratings", auth(r.activityHandler.PendingRatings))
	r.mux.HandleFunc("GET /api/activities/special-memories", auth(r.activityHandler.SpecialMemories))
	r.mux.HandleFunc("POST /api/activities/{id}/rate", auth(r.activityHandler.Rate))

	r.mux.HandleFunc("POST /api/moods/create", auth(r.moodHandler.Create))
	r.mux.HandleFunc("GET /api/moods/my-moods", auth(r.moodHandler.MyMoods))
	r.mux.HandleFunc("GET /api/moods/partner-mood", auth(r.moodHandler.PartnerMood))

	r.mux.HandleFunc("GET /api/achievements/my-achievements", auth(r.achievementHandler.MyAchievements))
	r.mux.HandleFunc("GET /api/achievements/check-new", auth(r.achievementHandler.CheckNew))
	r.mux.HandleFunc("GET /api/dashboard/stats", auth(r.achievementHandler.Stats))

	r.mux.HandleFunc("GET /api/{$}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "LoveActs V2.0 API",
			"version": r.opts.Version,
		})
	})

	r.mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if r.opts.MetricsPath != "" {
		r.mux.Handle("GET "+r.opts.MetricsPath, metrics.Handler())
	}

	var handler http.Handler = r.mux

	handler = metrics.InstrumentHandler(r.opts.MetricsPath, handler)

	if r.opts.RateLimiter != nil {
		handler = r.opts.RateLimiter.Handler(handler)
	}

	handler = middleware.Logging(r.opts.Log)(handler)

	if r.opts.CORS != nil {
		handler = r.opts.CORS.Handler(handler)
	}

	return handler
}
