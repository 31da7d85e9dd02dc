// Package testutil opens throwaway SQLite databases carrying the community
// hub schema for repository and usecase tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens an empty in-memory database private to the test. The pool is
// capped at one connection so transactions serialize the way row locks
// serialize them on Postgres.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// NewSchemaDB opens a database with every table created.
func NewSchemaDB(t testing.TB) *gorm.DB {
	t.Helper()
	db := NewDB(t)
	CreateSchema(t, db)
	return db
}

func MustExec(t testing.TB, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

// CreateSchema mirrors the Postgres migrations with SQLite types: uuids,
// arrays and json documents are TEXT.
func CreateSchema(t testing.TB, db *gorm.DB) {
	t.Helper()
	for _, ddl := range schema {
		MustExec(t, db, ddl)
	}
}

var schema = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		verified BOOLEAN NOT NULL DEFAULT 0,
		verified_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`,
	`CREATE TABLE verification_challenges (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		token_hash TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		completed_at DATETIME,
		created_at DATETIME
	);`,
	`CREATE TABLE startups (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		founder_id TEXT NOT NULL UNIQUE,
		created_at DATETIME,
		updated_at DATETIME
	);`,
	`CREATE TABLE positions (
		id TEXT PRIMARY KEY,
		startup_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		skills TEXT,
		experience TEXT,
		education TEXT,
		employment_type TEXT NOT NULL,
		location TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`,
	`CREATE TABLE applications (
		id TEXT PRIMARY KEY,
		position_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (position_id, user_id)
	);`,
	`CREATE TABLE likes (
		id TEXT PRIMARY KEY,
		startup_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE (startup_id, user_id)
	);`,
	`CREATE TABLE dislikes (
		id TEXT PRIMARY KEY,
		startup_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE (startup_id, user_id)
	);`,
	`CREATE TABLE comments (
		id TEXT PRIMARY KEY,
		startup_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		parent_id TEXT,
		content TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`,
	`CREATE TABLE study_groups (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		type TEXT,
		level TEXT,
		roadmap TEXT,
		schedule TEXT,
		creator_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`,
	`CREATE TABLE study_group_members (
		id TEXT PRIMARY KEY,
		study_group_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE (study_group_id, user_id)
	);`,
	`CREATE TABLE profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		bio TEXT,
		advanced_skills TEXT,
		intermediate_skills TEXT,
		beginner_skills TEXT,
		links TEXT,
		projects TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`,
	`CREATE TABLE course_enrollments (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		course_id TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE (profile_id, course_id)
	);`,
	`CREATE TABLE organizations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE
	);`,
	`CREATE TABLE departments (
		id TEXT PRIMARY KEY,
		organization_id TEXT NOT NULL,
		name TEXT NOT NULL,
		UNIQUE (organization_id, name)
	);`,
	`CREATE TABLE courses (
		id TEXT PRIMARY KEY,
		department_id TEXT NOT NULL,
		code TEXT NOT NULL,
		name TEXT NOT NULL,
		UNIQUE (department_id, code)
	);`,
}
