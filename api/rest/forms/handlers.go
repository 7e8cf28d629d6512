package forms

import (
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"codeberg.org/formboard/server/formboard/completions"
	"codeberg.org/formboard/server/formboard/forms"
	"codeberg.org/formboard/server/formboard/stats"
	"codeberg.org/formboard/server/internal/auth"
	"codeberg.org/formboard/server/internal/errors"
)

// CreateFormHandler creates a new form posting for the authenticated user
func CreateFormHandler(formStore FormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		var req forms.CreateFormRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		form, err := formStore.Create(c.Request.Context(), userID, req)
		if err != nil {
			errors.InternalError(c, "failed to create form", err)
			return
		}

		c.JSON(http.StatusCreated, form)
	}
}

// ListFormsHandler lists forms matching the query filter, each with derived
// statistics; when a viewer is authenticated, is_completed and the
// completed status are filled in
func ListFormsHandler(engine *stats.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerID, _ := auth.GetUserID(c)

		filter := forms.ListFilter{
			Search:    c.Query("search"),
			CreatedBy: c.Query("user_id"),
			Tags:      parseTags(c.QueryArray("tags")),
		}

		if filter.CreatedBy != "" && !errors.IsValidUUID(filter.CreatedBy) {
			errors.BadRequest(c, "invalid user_id", nil)
			return
		}

		result, err := engine.ListFormsWithStats(c.Request.Context(), filter, viewerID, time.Now())
		if err != nil {
			errors.InternalError(c, "failed to list forms", err)
			return
		}

		c.JSON(http.StatusOK, FormsListResponse{Forms: result})
	}
}

// GetFormHandler returns a single form with derived statistics
func GetFormHandler(formStore FormStore, engine *stats.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		formID, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		viewerID, _ := auth.GetUserID(c)

		form, err := formStore.Get(c.Request.Context(), formID)

		if stderrors.Is(err, forms.ErrFormNotFound) {
			errors.NotFound(c, "form")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to load form", err)
			return
		}

		result, err := engine.FormWithStats(c.Request.Context(), *form, viewerID, time.Now())
		if err != nil {
			errors.InternalError(c, "failed to compute form statistics", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// UpdateFormHandler updates a form owned by the authenticated user
func UpdateFormHandler(formStore FormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		formID, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var req forms.UpdateFormRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		form, err := formStore.Update(c.Request.Context(), formID, userID, req)

		if stderrors.Is(err, forms.ErrFormNotFound) {
			errors.NotFound(c, "form")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to update form", err)
			return
		}

		c.JSON(http.StatusOK, form)
	}
}

// DeleteFormHandler deletes a form owned by the authenticated user.
// Completions of the form are kept; activity feeds referencing it fall back
// to the placeholder title.
func DeleteFormHandler(formStore FormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		formID, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		err := formStore.Delete(c.Request.Context(), formID, userID)

		if stderrors.Is(err, forms.ErrFormNotFound) {
			errors.NotFound(c, "form")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to delete form", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "form deleted"})
	}
}

// CompleteFormHandler marks the form completed by the authenticated user.
// Completing the same form again updates the existing record in place,
// refreshing rating, feedback and the completion time.
func CompleteFormHandler(formStore FormStore, store stats.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		formID, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var req completions.UpsertCompletionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if _, err := formStore.Get(c.Request.Context(), formID); err != nil {
			if stderrors.Is(err, forms.ErrFormNotFound) {
				errors.NotFound(c, "form")
				return
			}

			errors.InternalError(c, "failed to load form", err)
			return
		}

		completion, err := store.UpsertCompletion(c.Request.Context(), formID, userID, req.Rating, req.Feedback)
		if err != nil {
			errors.InternalError(c, "failed to record completion", err)
			return
		}

		c.JSON(http.StatusOK, completion)
	}
}

// ListCompletionsHandler lists a form's completions with feedback; only the
// form owner may read them
func ListCompletionsHandler(formStore FormStore, store stats.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		formID, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		form, err := formStore.Get(c.Request.Context(), formID)

		if stderrors.Is(err, forms.ErrFormNotFound) {
			errors.NotFound(c, "form")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to load form", err)
			return
		}

		if form.CreatedBy != userID {
			errors.Forbidden(c, "only the form owner may read completions")
			return
		}

		comps, err := store.ListCompletionsByForm(c.Request.Context(), formID)
		if err != nil {
			errors.InternalError(c, "failed to list completions", err)
			return
		}

		if comps == nil {
			comps = []completions.Completion{}
		}

		c.JSON(http.StatusOK, CompletionsListResponse{Completions: comps})
	}
}

// splits repeated and comma-separated tag parameters into one set
func parseTags(raw []string) []string {
	var tags []string

	for _, value := range raw {
		for _, tag := range strings.Split(value, ",") {
			tag = strings.TrimSpace(tag)

			if tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	return tags
}
