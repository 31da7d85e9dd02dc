package main

import (
	"community-hub.backend/internal/interfaces/http/handlers"
	"community-hub.backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	verificationHandler *handlers.VerificationHandler
	startupHandler      *handlers.StartupHandler
	interactionHandler  *handlers.InteractionHandler
	studyGroupHandler   *handlers.StudyGroupHandler
	profileHandler      *handlers.ProfileHandler
	catalogHandler      *handlers.CatalogHandler
	authMiddleware      gin.HandlerFunc
	trustedProxy        gin.HandlerFunc
	rateLimit           gin.HandlerFunc
	healthCheck         healthCheck
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/signin", d.trustedProxy, d.rateLimit, d.authHandler.SignIn)
			auth.POST("/refresh", d.rateLimit, d.authHandler.Refresh)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Completion is submitted by the gesture front end, never by the
		// user directly.
		verification := v1.Group("/verification")
		{
			verification.POST("/challenges", d.authMiddleware, d.rateLimit, d.verificationHandler.StartChallenge)
			verification.POST("/complete", d.trustedProxy, d.authMiddleware, d.rateLimit, d.verificationHandler.Complete)
		}

		// Startup routes (public read)
		startups := v1.Group("/startups")
		{
			startups.GET("", d.startupHandler.ListStartups)
			startups.GET("/:id", d.startupHandler.GetStartup)
		}

		startupsAuth := v1.Group("/startups")
		startupsAuth.Use(d.authMiddleware)
		{
			startupsAuth.GET("/:id/applications", d.startupHandler.ListStartupApplications)
			startupsAuth.POST("", d.rateLimit, d.startupHandler.CreateStartup)
			startupsAuth.POST("/:id/positions", d.rateLimit, d.startupHandler.CreatePosition)
			startupsAuth.POST("/:id/like", d.rateLimit, d.interactionHandler.ToggleLike)
			startupsAuth.POST("/:id/dislike", d.rateLimit, d.interactionHandler.ToggleDislike)
			startupsAuth.POST("/:id/comment", d.rateLimit, d.interactionHandler.PostComment)
			startupsAuth.POST("/:id/comments/:commentId/reply", d.rateLimit, d.interactionHandler.PostReply)
		}

		applications := v1.Group("/applications")
		applications.Use(d.authMiddleware)
		{
			applications.GET("/my", d.startupHandler.MyApplications)
			applications.POST("", d.rateLimit, middleware.IdempotencyMiddleware(), d.interactionHandler.Apply)
			applications.PATCH("/:id/status", d.rateLimit, d.interactionHandler.UpdateApplicationStatus)
		}

		// Study group routes (public read)
		studyGroups := v1.Group("/study-groups")
		{
			studyGroups.GET("", d.studyGroupHandler.ListStudyGroups)
			studyGroups.GET("/:id", d.studyGroupHandler.GetStudyGroup)
		}

		studyGroupsAuth := v1.Group("/study-groups")
		studyGroupsAuth.Use(d.authMiddleware, d.rateLimit)
		{
			studyGroupsAuth.POST("", d.studyGroupHandler.CreateStudyGroup)
			studyGroupsAuth.POST("/:id/join", d.studyGroupHandler.JoinStudyGroup)
			studyGroupsAuth.POST("/:id/leave", d.studyGroupHandler.LeaveStudyGroup)
		}

		profile := v1.Group("/profile")
		profile.Use(d.authMiddleware)
		{
			profile.GET("", d.profileHandler.GetMyProfile)
			profile.PUT("", d.rateLimit, d.profileHandler.UpdateProfile)
			profile.PUT("/skills", d.rateLimit, d.profileHandler.UpdateSkills)
			profile.POST("/courses", d.rateLimit, d.profileHandler.EnrollCourse)
		}

		// Catalog routes (public)
		v1.GET("/organizations", d.catalogHandler.ListOrganizations)
		v1.GET("/organizations/:id/departments", d.catalogHandler.ListDepartments)
		v1.GET("/departments/:id/courses", d.catalogHandler.ListCourses)
	}
}
