package models

// All returns every model in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&VerificationChallenge{},
		&Startup{},
		&Position{},
		&Application{},
		&Like{},
		&Dislike{},
		&Comment{},
		&StudyGroup{},
		&StudyGroupMember{},
		&Organization{},
		&Department{},
		&Course{},
		&Profile{},
		&CourseEnrollment{},
	}
}
