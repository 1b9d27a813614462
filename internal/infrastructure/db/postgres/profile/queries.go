package profile

const (
	SelectFirstProfile = `
		SELECT id, name, role, subtitle, summary, email, github, linkedin, avatar, created_at, updated_at
		FROM profiles
		ORDER BY id
		LIMIT 1
	`
	SelectStats = `
		SELECT id, value, label, "order"
		FROM stats
		WHERE profile_id = $1
		ORDER BY "order", id
	`
	SelectEducation = `
		SELECT id, degree, institution, year, gpa, details, "order"
		FROM education
		WHERE profile_id = $1
		ORDER BY "order", id
	`
	SelectSkills = `
		SELECT id, profile_id, name, description, photo, "order"
		FROM skill_categories
		WHERE profile_id = $1
		ORDER BY "order", id
	`
	SelectProjects = `
		SELECT id, title, description, technologies, github_url, live_url, image_url, "order", is_featured, created_at
		FROM projects
		WHERE profile_id = $1
		ORDER BY is_featured DESC, "order", id
	`
	UpdateAvatarByID = `
		UPDATE profiles
		SET avatar = $1, updated_at = now()
		WHERE id = $2
	`
	SelectSkillByID = `
		SELECT id, profile_id, name, description, photo, "order"
		FROM skill_categories
		WHERE id = $1
	`
	UpdateSkillPhotoByID = `UPDATE skill_categories SET photo = $1 WHERE id = $2`
	DeleteSkillByID      = `DELETE FROM skill_categories WHERE id = $1`
)
