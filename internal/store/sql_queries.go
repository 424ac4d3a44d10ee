package store

const (
	getValue = `
		SELECT value
		FROM vault_kv
		WHERE name = ?;`

	upsertValue = `
		INSERT INTO vault_kv (name, value)
		VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value;`

	deleteAllValues = `
		DELETE FROM vault_kv;`
)
