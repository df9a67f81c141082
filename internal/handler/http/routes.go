// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-meal-planner/internal/validators"
	"github.com/MKhiriev/go-meal-planner/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, h.withSession)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Get("/", h.root)
	router.Get("/api/ping", h.ping)
	router.Get("/api/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", h.metricsHandler())
	router.Get("/uploaded_images/{filename}", h.serveImage)

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/signup", h.signup)
		r.Post("/logout", h.logout)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Get("/whoami", h.whoAmI)
			r.Put("/update-email", h.updateEmail)
			r.Put("/update-password", h.updatePassword)
			r.Delete("/delete-account", h.deleteAccount)
		})
	})

	router.Route("/api/recipes", func(r chi.Router) {
		r.Get("/", h.browseRecipes)
		r.Get("/search", h.searchRecipesBy(models.SearchAll, "q", validators.ReasonSearchRequired))
		r.Get("/search/ingredients", h.searchRecipesBy(models.SearchByIngredients, "q", validators.ReasonSearchRequired))
		r.Get("/search/name", h.searchRecipesBy(models.SearchByName, "q", validators.ReasonSearchRequired))
		r.Get("/category", h.searchRecipesBy(models.SearchByCategory, "name", validators.ReasonCategoryRequired))
		r.Get("/random", h.randomRecipes)
		r.Get("/{id}", h.getRecipe)
		r.Get("/{id}/missing-ingredients", h.missingIngredients)

		r.With(h.requireAuth).Get("/recommendations", h.recommendations)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Put("/admin/update/{id}", h.updateRecipe)
			r.Delete("/admin/delete/{id}", h.deleteRecipe)
		})
	})

	pantry := itemHandlers{items: h.services.PantryService, label: "pantry", title: "Pantry"}
	router.Route("/api/pantry", func(r chi.Router) {
		r.Get("/search/ingredients", h.searchIngredients)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Get("/items", pantry.getItems)
			r.Post("/items", pantry.updateItems)
		})
	})

	grocery := itemHandlers{items: h.services.GroceryService, label: "grocery", title: "Grocery"}
	router.Route("/api/grocery", func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Get("/items", grocery.getItems)
		r.Post("/items", grocery.updateItems)
	})

	router.Route("/api/lists", func(r chi.Router) {
		r.Get("/get/{id}", h.getList)
		r.Get("/search-public", h.searchPublicLists)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Get("/all", h.listIDs)
			r.Post("/add", h.createList)
			r.Put("/update/{id}", h.updateList)
			r.Put("/remove-recipes/{id}", h.removeListRecipes)
			r.Delete("/remove/{id}", h.deleteList)
			r.Post("/generate-favorites", h.generateFavorites)
			r.Get("/favorites", h.favorites)
		})
	})

	router.Route("/api/meal_plan", func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Post("/add", h.addMeal)
		r.Get("/get", h.getMealPlan)
		r.Delete("/delete", h.deleteMeal)
	})

	router.Route("/api/user_recipes", func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Get("/get", h.listUserRecipes)
		r.Get("/get/all", h.listUserRecipes)
		r.Get("/get/{id}", h.getUserRecipe)
		r.Post("/add", h.createUserRecipe)
		r.Put("/update/{id}", h.updateUserRecipe)
		r.Delete("/delete/{id}", h.deleteUserRecipe)
		r.Put("/submit/{id}", h.submitUserRecipe)
		r.Put("/unsubmit/{id}", h.unsubmitUserRecipe)
		r.Post("/upload_image", h.uploadImage)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Get("/get/submitted/all", h.listSubmittedRecipes)
			r.Post("/admin/approve_recipe/{id}", h.approveUserRecipe)
		})
	})

	return router
}
