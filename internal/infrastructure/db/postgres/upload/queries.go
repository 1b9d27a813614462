package upload

// upload_records(
//   id bigserial primary key, uploader_id bigint null references users(id) on delete set null,
//   original_filename text, original_size bigint, checksum text,
//   original_path text, icon_path text, normal_path text unique, large_path text,
//   owner_field text, created_at timestamptz default now(), updated_at timestamptz default now()
// )

const (
	SelectRecordByNormalPath = `
		SELECT id, uploader_id, original_filename, original_size, checksum,
		       original_path, icon_path, normal_path, large_path, owner_field, created_at, updated_at
		FROM upload_records
		WHERE normal_path = $1
	`
	InsertRecord = `
		INSERT INTO upload_records (uploader_id, original_filename, original_size, checksum,
		                            original_path, icon_path, normal_path, large_path, owner_field)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING
		  id, uploader_id, original_filename, original_size, checksum,
		  original_path, icon_path, normal_path, large_path, owner_field, created_at, updated_at
	`
	DeleteRecordByID = `DELETE FROM upload_records WHERE id = $1`
)
