package users

const (
	queryCreate = `
		INSERT INTO users (username, email, password_hash, full_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email, password_hash, full_name, provider, provider_id, created_at, updated_at
	`

	queryFindOrCreateByProvider = `
		INSERT INTO users (username, email, full_name, provider, provider_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (provider, provider_id)
		DO UPDATE SET
			email = EXCLUDED.email,
			full_name = EXCLUDED.full_name,
			updated_at = NOW()
		RETURNING id, username, email, password_hash, full_name, provider, provider_id, created_at, updated_at
	`

	queryFindByID = `
		SELECT id, username, email, password_hash, full_name, provider, provider_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	queryFindByUsername = `
		SELECT id, username, email, password_hash, full_name, provider, provider_id, created_at, updated_at
		FROM users
		WHERE username = $1
	`
)
