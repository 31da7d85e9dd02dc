package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"community-hub.backend/internal/config"
	"community-hub.backend/internal/domain/entities"
	domainrepo "community-hub.backend/internal/domain/repositories"
	"community-hub.backend/internal/infrastructure/datasources/postgres"
	"community-hub.backend/internal/infrastructure/repositories"
	"community-hub.backend/pkg/utils"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

var openSeedDB = postgres.NewConnection

type catalogFile struct {
	Organizations []organizationSeed `yaml:"organizations"`
}

type organizationSeed struct {
	entities.Organization `yaml:",inline"`
	Departments           []departmentSeed `yaml:"departments"`
}

type departmentSeed struct {
	entities.Department `yaml:",inline"`
	Courses             []entities.Course `yaml:"courses"`
}

type seedCounts struct {
	organizations int
	departments   int
	courses       int
}

type seedDeps struct {
	loadEnv  func() error
	loadCfg  func() *config.Config
	openDB   func(cfg config.DatabaseConfig) (*gorm.DB, error)
	readFile func(name string) ([]byte, error)
	out      io.Writer
}

func defaultSeedDeps() seedDeps {
	return seedDeps{
		loadEnv:  func() error { return godotenv.Load() },
		loadCfg:  config.Load,
		openDB:   func(cfg config.DatabaseConfig) (*gorm.DB, error) { return openSeedDB(cfg) },
		readFile: os.ReadFile,
		out:      os.Stdout,
	}
}

func parseCatalog(data []byte) (*catalogFile, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid catalog yaml: %w", err)
	}
	for i, org := range file.Organizations {
		if org.Slug == "" || org.Name == "" {
			return nil, fmt.Errorf("organization #%d: name and slug are required", i+1)
		}
		for _, dept := range org.Departments {
			if dept.Name == "" {
				return nil, fmt.Errorf("organization %s: department name is required", org.Slug)
			}
			for _, course := range dept.Courses {
				if course.Code == "" || course.Name == "" {
					return nil, fmt.Errorf("department %s/%s: course code and name are required", org.Slug, dept.Name)
				}
			}
		}
	}
	return &file, nil
}

// seedCatalog upserts the whole file in one transaction. Rows are matched
// by natural key so rerunning a file is a no-op.
func seedCatalog(ctx context.Context, uow domainrepo.UnitOfWork, repo domainrepo.CatalogRepository, file *catalogFile) (seedCounts, error) {
	var counts seedCounts
	err := uow.Do(ctx, func(ctx context.Context) error {
		counts = seedCounts{}
		for _, orgSeed := range file.Organizations {
			org := &entities.Organization{ID: utils.GenerateUUIDv7(), Name: orgSeed.Name, Slug: orgSeed.Slug}
			if err := repo.UpsertOrganization(ctx, org); err != nil {
				return fmt.Errorf("upsert organization %s: %w", org.Slug, err)
			}
			counts.organizations++

			for _, deptSeed := range orgSeed.Departments {
				dept := &entities.Department{ID: utils.GenerateUUIDv7(), OrganizationID: org.ID, Name: deptSeed.Name}
				if err := repo.UpsertDepartment(ctx, dept); err != nil {
					return fmt.Errorf("upsert department %s/%s: %w", org.Slug, dept.Name, err)
				}
				counts.departments++

				for _, c := range deptSeed.Courses {
					course := &entities.Course{ID: utils.GenerateUUIDv7(), DepartmentID: dept.ID, Code: c.Code, Name: c.Name}
					if err := repo.UpsertCourse(ctx, course); err != nil {
						return fmt.Errorf("upsert course %s: %w", course.Code, err)
					}
					counts.courses++
				}
			}
		}
		return nil
	})
	return counts, err
}

func runCatalogSeed(args []string, deps seedDeps) error {
	def := defaultSeedDeps()
	if deps.loadEnv == nil {
		deps.loadEnv = def.loadEnv
	}
	if deps.loadCfg == nil {
		deps.loadCfg = def.loadCfg
	}
	if deps.openDB == nil {
		deps.openDB = def.openDB
	}
	if deps.readFile == nil {
		deps.readFile = def.readFile
	}
	if deps.out == nil {
		deps.out = def.out
	}

	fs := flag.NewFlagSet("catalog-seed", flag.ContinueOnError)
	fileFlag := fs.String("file", "catalog.yaml", "catalog YAML file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := deps.readFile(*fileFlag)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", *fileFlag, err)
	}
	file, err := parseCatalog(data)
	if err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := deps.loadCfg()

	db, err := deps.openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	counts, err := seedCatalog(context.Background(), repositories.NewUnitOfWork(db), repositories.NewCatalogRepository(db), file)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(deps.out, "organizations=%d departments=%d courses=%d\n",
		counts.organizations, counts.departments, counts.courses)
	return nil
}

func main() {
	if err := runCatalogSeed(os.Args[1:], defaultSeedDeps()); err != nil {
		log.Fatal(err)
	}
}
