package forms

const (
	queryCreate = `
		INSERT INTO forms (
			created_by, title, description, url, tags, estimated_time
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_by, title, description, url, tags, estimated_time, created_at, updated_at
	`

	queryList = `
		SELECT id, created_by, title, description, url, tags, estimated_time, created_at, updated_at
		FROM forms
		WHERE ($1::uuid IS NULL OR created_by = $1)
		  AND ($2::text IS NULL OR title ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')
		  AND (cardinality($3::text[]) = 0 OR tags && $3)
		ORDER BY created_at DESC
	`

	queryGet = `
		SELECT id, created_by, title, description, url, tags, estimated_time, created_at, updated_at
		FROM forms
		WHERE id = $1
	`

	queryUpdate = `
		UPDATE forms
		SET title = COALESCE($1, title),
		    description = COALESCE($2, description),
		    url = COALESCE($3, url),
		    tags = COALESCE($4, tags),
		    estimated_time = COALESCE($5, estimated_time),
		    updated_at = NOW()
		WHERE id = $6 AND created_by = $7
		RETURNING id, created_by, title, description, url, tags, estimated_time, created_at, updated_at
	`

	queryDelete = `
		DELETE FROM forms
		WHERE id = $1 AND created_by = $2
	`
)
