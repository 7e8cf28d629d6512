package completions

const (
	// the unique index on (form_id, user_id) makes repeat completions an
	// in-place update refreshing rating, feedback and completed_at
	queryUpsert = `
		INSERT INTO completions (form_id, user_id, rating, feedback)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (form_id, user_id)
		DO UPDATE SET
			rating = EXCLUDED.rating,
			feedback = EXCLUDED.feedback,
			completed_at = NOW()
		RETURNING id, form_id, user_id, rating, feedback, completed_at
	`

	queryListByForm = `
		SELECT id, form_id, user_id, rating, feedback, completed_at
		FROM completions
		WHERE form_id = $1
		ORDER BY completed_at DESC
	`

	queryListByUser = `
		SELECT id, form_id, user_id, rating, feedback, completed_at
		FROM completions
		WHERE user_id = $1
		ORDER BY completed_at DESC
	`
)
