package utils

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"lms/config"
	"lms/database"
	"lms/models"
	assessmentModels "lms/models/assessment"
	courseModels "lms/models/course"

	"github.com/robfig/cron/v3"
)

// InitializeBackupScheduler sets up the scheduled database backup
func InitializeBackupScheduler() {
	log.Println("[BACKUP-SCHEDULER] Initializing backup scheduler...")

	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.BackupCron, func() {
		log.Println("[BACKUP-SCHEDULER] Running scheduled backup...")
		if path, err := RunBackup(); err != nil {
			log.Printf("[BACKUP-SCHEDULER] Backup failed: %v", err)
		} else {
			log.Printf("[BACKUP-SCHEDULER] Backup saved to %s", path)
		}
	}); err != nil {
		log.Printf("[BACKUP-SCHEDULER] Invalid cron expression %q: %v", config.AppConfig.BackupCron, err)
		return
	}

	c.Start()
	log.Printf("[BACKUP-SCHEDULER] Backup scheduler started with schedule %q", config.AppConfig.BackupCron)
}

// RunBackup dumps the whole dataset to a gzip compressed JSON file and
// returns the path of the written file
func RunBackup() (string, error) {
	db := database.Database.Db

	dataset := make(map[string]interface{})

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return "", err
	}
	dataset["users"] = users

	var courses []courseModels.Course
	if err := db.Find(&courses).Error; err != nil {
		return "", err
	}
	dataset["courses"] = courses

	var modules []courseModels.Module
	if err := db.Find(&modules).Error; err != nil {
		return "", err
	}
	dataset["modules"] = modules

	var enrollments []courseModels.Enrollment
	if err := db.Find(&enrollments).Error; err != nil {
		return "", err
	}
	dataset["enrollments"] = enrollments

	var banks []assessmentModels.QuestionBank
	if err := db.Find(&banks).Error; err != nil {
		return "", err
	}
	dataset["question_banks"] = banks

	var quizzes []assessmentModels.Quiz
	if err := db.Find(&quizzes).Error; err != nil {
		return "", err
	}
	dataset["quizzes"] = quizzes

	var responses []assessmentModels.Response
	if err := db.Find(&responses).Error; err != nil {
		return "", err
	}
	dataset["responses"] = responses

	if err := os.MkdirAll(config.AppConfig.BackupDir, 0o755); err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("backup-%s.json.gz", time.Now().Format("2006-01-02"))
	backupPath := filepath.Join(config.AppConfig.BackupDir, fileName)

	file, err := os.Create(backupPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	gz := gzip.NewWriter(file)
	encoder := json.NewEncoder(gz)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(dataset); err != nil {
		gz.Close()
		return "", err
	}

	if err := gz.Close(); err != nil {
		return "", err
	}

	return backupPath, nil
}
