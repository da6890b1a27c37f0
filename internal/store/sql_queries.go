package store

import (
	"github.com/Masterminds/squirrel"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

const (
	createUser = `INSERT INTO users (id, email, name, password_hash, last_login, inactivity_threshold_days, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id, email, name, password_hash, last_login, inactivity_threshold_days, created_at, updated_at;`

	findUserByEmail = `SELECT id, email, name, password_hash, last_login, inactivity_threshold_days, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, name, password_hash, last_login, inactivity_threshold_days, created_at, updated_at
    FROM users
    WHERE id = $1;`

	touchLastLogin = `UPDATE users
    SET last_login = $1, updated_at = $1
    WHERE id = $2;`

	updateInactivityThreshold = `UPDATE users
    SET inactivity_threshold_days = $1, updated_at = $2
    WHERE id = $3
    RETURNING id, email, name, password_hash, last_login, inactivity_threshold_days, created_at, updated_at;`

	createVault = `INSERT INTO vaults (id, user_id, name, description, content_kind, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, user_id, name, description, content_kind, created_at, updated_at;`

	getVaultByID = `SELECT id, user_id, name, description, content_kind, created_at, updated_at
    FROM vaults
    WHERE id = $1;`

	deleteVault = `DELETE FROM vaults
    WHERE id = $1 AND user_id = $2;`

	createEntry = `INSERT INTO vault_entries (id, vault_id, type, content, content_kind, created_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, vault_id, type, content, content_kind, created_at;`

	deleteEntry = `DELETE FROM vault_entries
    WHERE id = $1 AND vault_id = $2;`

	createContact = `INSERT INTO contacts (id, user_id, name, email, phone, role, verified, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id, user_id, name, email, phone, role, verified, created_at;`

	getContactByID = `SELECT id, user_id, name, email, phone, role, verified, created_at
    FROM contacts
    WHERE id = $1;`

	deleteContact = `DELETE FROM contacts
    WHERE id = $1 AND user_id = $2;`

	addRecipient = `INSERT INTO vault_recipients (id, vault_id, contact_id, created_at)
    VALUES ($1, $2, $3, $4)
    RETURNING id, vault_id, contact_id, created_at;`

	getVaultRecipients = `SELECT r.id, r.vault_id, r.contact_id, c.name, c.email, c.role, r.created_at
    FROM vault_recipients r
    JOIN contacts c ON c.id = r.contact_id
    WHERE r.vault_id = $1
    ORDER BY r.created_at;`

	removeRecipient = `DELETE FROM vault_recipients
    WHERE id = $1 AND vault_id = $2;`

	createNotification = `INSERT INTO notifications (id, user_id, title, content, marker_date, created_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, user_id, title, content, created_at;`

	// createDailyMarker races against concurrent scanners on the partial
	// unique index over (user_id, marker_date). The loser gets no row back
	// and the repository maps that to ErrAlreadyProcessedToday.
	createDailyMarker = `INSERT INTO notifications (id, user_id, title, content, marker_date, created_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    ON CONFLICT (user_id, marker_date) WHERE marker_date IS NOT NULL DO NOTHING
    RETURNING id, user_id, title, content, created_at;`
)

// psql builds queries with PostgreSQL-style $N placeholders, which the
// sqlite3 driver accepts as well.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func buildListUsersQuery() (string, []any, error) {
	return psql.
		Select("id", "email", "name", "password_hash", "last_login",
			"inactivity_threshold_days", "created_at", "updated_at").
		From("users").
		OrderBy("last_login ASC").
		ToSql()
}

func buildUserVaultsQuery(userID string) (string, []any, error) {
	return psql.
		Select("id", "user_id", "name", "description", "content_kind",
			"created_at", "updated_at").
		From("vaults").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
}

func buildVaultEntriesQuery(vaultID string) (string, []any, error) {
	return psql.
		Select("id", "vault_id", "type", "content", "content_kind", "created_at").
		From("vault_entries").
		Where(squirrel.Eq{"vault_id": vaultID}).
		OrderBy("created_at ASC").
		ToSql()
}

func buildUserContactsQuery(userID string) (string, []any, error) {
	return psql.
		Select("id", "user_id", "name", "email", "phone", "role", "verified", "created_at").
		From("contacts").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
}

func buildUserNotificationsQuery(filter models.NotificationFilter) (string, []any, error) {
	q := psql.
		Select("id", "user_id", "title", "content", "created_at").
		From("notifications").
		Where(squirrel.Eq{"user_id": filter.UserID}).
		OrderBy("created_at DESC")

	if filter.Title != "" {
		q = q.Where(squirrel.Eq{"title": filter.Title})
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	return q.ToSql()
}

// buildUpdateContactQuery assembles a partial UPDATE from the non-nil fields
// of update. The WHERE clause scopes the row to its owner.
func buildUpdateContactQuery(update models.ContactUpdate) (string, []any, error) {
	q := psql.Update("contacts")

	if update.Name != nil {
		q = q.Set("name", *update.Name)
	}
	if update.Email != nil {
		q = q.Set("email", *update.Email)
	}
	if update.Phone != nil {
		q = q.Set("phone", *update.Phone)
	}
	if update.Role != nil {
		q = q.Set("role", *update.Role)
	}
	if update.Verified != nil {
		q = q.Set("verified", *update.Verified)
	}

	q = q.Where(squirrel.Eq{"id": update.ContactID, "user_id": update.UserID}).
		Suffix("RETURNING id, user_id, name, email, phone, role, verified, created_at")

	return q.ToSql()
}
