package database

import (
	"fmt"
	"time"

	"rewards-recognition-backend/internal/database/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed bootstraps a development database with a default admin, the current
// active quarter, and a starter set of award categories. It is idempotent:
// existing rows are left alone.
func Seed(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := seedActiveQuarter(db); err != nil {
		return fmt.Errorf("seed active quarter: %w", err)
	}
	if err := seedCategories(db); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	return nil
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ? AND is_deleted = false", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         "Administrator",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	logrus.WithField("email", admin.Email).Info("Seeded default admin user")
	return nil
}

func seedActiveQuarter(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.YearQuarter{}).Where("is_active = true AND is_deleted = false").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	quarter := int(now.Month()-1)/3 + 1
	start, end, err := models.QuarterDateRange(now.Year(), quarter)
	if err != nil {
		return err
	}

	yq := &models.YearQuarter{
		Year:      now.Year(),
		Quarter:   quarter,
		StartDate: &start,
		EndDate:   &end,
		IsActive:  true,
	}
	if err := db.Create(yq).Error; err != nil {
		return err
	}
	logrus.WithField("period", yq.Label()).Info("Seeded active year quarter")
	return nil
}

func seedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Team Player", Description: "Consistently lifts the whole team"},
		{Name: "Innovation", Description: "Creative solutions with real impact"},
		{Name: "Customer First", Description: "Outstanding customer outcomes"},
		{Name: "Above and Beyond", Description: "Exceptional effort outside the day job"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}
	logrus.WithField("count", len(categories)).Info("Seeded award categories")
	return nil
}
