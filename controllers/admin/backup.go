package adminController

import (
	"log"

	"lms/middleware"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// RunBackup triggers an immediate backup dump
func RunBackup(c *fiber.Ctx) error {
	path, err := utils.RunBackup()
	if err != nil {
		log.Printf("Error running backup: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to run backup!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Backup completed successfully!", fiber.Map{
		"path": path,
	})
}
