package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"crewhub/internal/shared/logger"
)

// Generator handles creation of new migration files
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

// NewGenerator creates a new migration generator
func NewGenerator(scriptsPath string) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.generator"),
	}
}

// CreateMigration creates a new migration file pair (up and down)
func (g *Generator) CreateMigration(name string) error {
	g.logger.Infow("creating new migration", "name", name)

	// Generate timestamp
	timestamp := time.Now().Format("20060102150405")

	// Generate file names
	upFileName := fmt.Sprintf("%s_%s.up.sql", timestamp, name)
	downFileName := fmt.Sprintf("%s_%s.down.sql", timestamp, name)

	upFilePath := filepath.Join(g.scriptsPath, upFileName)
	downFilePath := filepath.Join(g.scriptsPath, downFileName)

	// Ensure scripts directory exists
	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	// Create up migration file
	upContent := g.generateUpMigrationTemplate(name)
	if err := g.writeFile(upFilePath, upContent); err != nil {
		return fmt.Errorf("failed to create up migration file: %w", err)
	}

	// Create down migration file
	downContent := g.generateDownMigrationTemplate(name)
	if err := g.writeFile(downFilePath, downContent); err != nil {
		return fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created successfully",
		"up_file", upFilePath,
		"down_file", downFilePath)

	return nil
}

// writeFile writes content to a file
func (g *Generator) writeFile(filePath, content string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	return err
}

// generateUpMigrationTemplate generates a template for up migration
func (g *Generator) generateUpMigrationTemplate(name string) string {
	return fmt.Sprintf(`-- Migration: %s
-- Created: %s
-- Description: Add description here

-- Add your SQL statements here
-- Example:
-- CREATE TABLE example_table (
--     id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
--     name VARCHAR(255) NOT NULL,
--     created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
--     updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
-- );

`, name, time.Now().Format("2006-01-02 15:04:05"))
}

// generateDownMigrationTemplate generates a template for down migration
func (g *Generator) generateDownMigrationTemplate(name string) string {
	return fmt.Sprintf(`-- Rollback Migration: %s
-- Created: %s
-- Description: Add rollback description here

-- Add your rollback SQL statements here
-- Example:
-- DROP TABLE IF EXISTS example_table;

`, name, time.Now().Format("2006-01-02 15:04:05"))
}

// CreateTenantBaseMigration creates the initial companies and users
// table migration.
func (g *Generator) CreateTenantBaseMigration() error {
	g.logger.Infow("creating initial tenant base migration")

	// Use a fixed timestamp for the initial migration
	timestamp := "000001"
	name := "create_tenant_base"

	upFileName := fmt.Sprintf("%s_%s.up.sql", timestamp, name)
	downFileName := fmt.Sprintf("%s_%s.down.sql", timestamp, name)

	upFilePath := filepath.Join(g.scriptsPath, upFileName)
	downFilePath := filepath.Join(g.scriptsPath, downFileName)

	// Ensure scripts directory exists
	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	// Create up migration file for companies and users
	upContent := g.generateTenantBaseUpMigration()
	if err := g.writeFile(upFilePath, upContent); err != nil {
		return fmt.Errorf("failed to create tenant base up migration: %w", err)
	}

	// Create down migration file for companies and users
	downContent := g.generateTenantBaseDownMigration()
	if err := g.writeFile(downFilePath, downContent); err != nil {
		return fmt.Errorf("failed to create tenant base down migration: %w", err)
	}

	g.logger.Infow("tenant base migration created successfully",
		"up_file", upFilePath,
		"down_file", downFilePath)

	return nil
}

// generateTenantBaseUpMigration generates the up migration for the
// companies and users tables.
func (g *Generator) generateTenantBaseUpMigration() string {
	return `-- Migration: Create tenant base tables
-- Created: Initial migration
-- Description: Create the companies and users tables

CREATE TABLE IF NOT EXISTS companies (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    sid VARCHAR(32) NOT NULL UNIQUE,
    name VARCHAR(150) NOT NULL,
    email VARCHAR(255) NOT NULL,
    phone_number VARCHAR(50),
    address VARCHAR(500),
    website VARCHAR(255),
    logo_url VARCHAR(500),
    banner_url VARCHAR(500),
    date_format VARCHAR(20),
    weekly_off JSON,
    plan_id BIGINT UNSIGNED NULL,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    INDEX idx_companies_plan_id (plan_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS users (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    sid VARCHAR(32) NOT NULL UNIQUE,
    company_id BIGINT UNSIGNED NOT NULL,
    email VARCHAR(255) NOT NULL UNIQUE,
    password_hash VARCHAR(255) NOT NULL,
    role VARCHAR(20) NOT NULL,
    active BOOLEAN NOT NULL DEFAULT TRUE,
    last_login_at BIGINT NULL,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    INDEX idx_users_company_id (company_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
}

// generateTenantBaseDownMigration generates the down migration for the
// companies and users tables.
func (g *Generator) generateTenantBaseDownMigration() string {
	return `-- Rollback Migration: Create tenant base tables
-- Created: Initial migration rollback
-- Description: Drop the users and companies tables

DROP TABLE IF EXISTS users;
DROP TABLE IF EXISTS companies;
`
}
