package main

import (
	"errors"
	"fmt"
	"time"

	"openshelf/internal/model"
	"openshelf/pkg/config"
	"openshelf/pkg/database"
	"openshelf/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	now := time.Now()

	testUsers := []struct {
		email    string
		fullName string
		password string
		role     string
	}{
		{"head.librarian@openshelf.test", "Margaret Reed", "password123", "librarian"},
		{"alice@openshelf.test", "Alice Tanaka", "password123", "member"},
		{"bob@openshelf.test", "Bob Okafor", "password123", "member"},
		{"carol@openshelf.test", "Carol Svensson", "password123", "member"},
	}

	userIDs := make(map[string]string, len(testUsers))

	for _, userData := range testUsers {
		var existing model.UserModel
		err := db.Where("email = ?", userData.email).First(&existing).Error
		if err == nil {
			userIDs[userData.email] = existing.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := &model.UserModel{
			Email:       userData.email,
			FullName:    userData.fullName,
			Password:    string(hashedPassword),
			Role:        userData.role,
			MemberSince: &now,
		}
		if userData.role == "librarian" {
			user.AppointedAt = &now
		}

		if err := db.Create(user).Error; err != nil {
			return err
		}
		userIDs[userData.email] = user.ID
		log.Info("Created user %s (%s)", userData.email, userData.role)
	}

	categories := []struct {
		name        string
		description string
	}{
		{"Computer Science", "Programming, algorithms and systems"},
		{"Fiction", "Novels and short stories"},
		{"History", "Historical works and biographies"},
		{"Science", "Natural sciences and mathematics"},
	}

	categoryIDs := make(map[string]string, len(categories))

	for _, categoryData := range categories {
		var existing model.CategoryModel
		err := db.Where("name = ?", categoryData.name).First(&existing).Error
		if err == nil {
			categoryIDs[categoryData.name] = existing.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		category := &model.CategoryModel{
			Name:        categoryData.name,
			Description: categoryData.description,
		}
		if err := db.Create(category).Error; err != nil {
			return err
		}
		categoryIDs[categoryData.name] = category.ID
		log.Info("Created category %s", categoryData.name)
	}

	librarianID := userIDs["head.librarian@openshelf.test"]
	sampleWorks := []struct {
		title    string
		author   string
		workType string
		status   string
		email    string
		category string
	}{
		{"The Go Programming Language", "Donovan & Kernighan", "book", "approved", "alice@openshelf.test", "Computer Science"},
		{"Distributed Systems Notes", "M. van Steen", "document", "approved", "bob@openshelf.test", "Computer Science"},
		{"A Short History of Nearly Everything", "Bill Bryson", "book", "approved", "carol@openshelf.test", "Science"},
		{"Unreviewed Thesis on Caching", "A. Tanaka", "thesis", "pending", "alice@openshelf.test", "Computer Science"},
	}

	for _, workData := range sampleWorks {
		var existing model.WorkModel
		err := db.Where("title = ?", workData.title).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		work := &model.WorkModel{
			Title:       workData.title,
			Author:      workData.author,
			Type:        workData.workType,
			Status:      workData.status,
			SubmittedBy: userIDs[workData.email],
		}
		if workData.status == "approved" {
			work.ApprovedBy = &librarianID
			work.ApprovedAt = &now
		}

		if err := db.Create(work).Error; err != nil {
			return err
		}

		join := &model.WorkCategoryModel{
			WorkID:     work.ID,
			CategoryID: categoryIDs[workData.category],
		}
		if err := db.Create(join).Error; err != nil {
			return err
		}
		log.Info("Created work %q (%s)", workData.title, workData.status)
	}

	return nil
}
