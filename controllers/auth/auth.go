package authController

import (
	"coursehub/config"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	authValidator "coursehub/validators/auth"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func RegisterStudent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegisterStudent").(*authValidator.RegisterStudentRequest)
	if !ok {
		return middleware.Message(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	if err := db.Where("student_id = ?", reqData.StudentID).First(&models.Student{}).Error; err == nil {
		return middleware.Message(c, fiber.StatusConflict, "Student ID is already registered!")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to process your request!")
	}

	student := models.Student{
		StudentID:    reqData.StudentID,
		Name:         reqData.Name,
		Gender:       reqData.Gender,
		Age:          reqData.Age,
		Email:        reqData.Email,
		PasswordHash: string(hashedPassword),
	}

	if err := db.Create(&student).Error; err != nil {
		log.Printf("Error saving student to database: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to register student!")
	}

	return middleware.Message(c, fiber.StatusCreated, "Student registered successfully.")
}

func RegisterTeacher(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegisterTeacher").(*authValidator.RegisterTeacherRequest)
	if !ok {
		return middleware.Message(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	if err := db.Where("teacher_id = ?", reqData.TeacherID).First(&models.Teacher{}).Error; err == nil {
		return middleware.Message(c, fiber.StatusConflict, "Teacher ID is already registered!")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to process your request!")
	}

	teacher := models.Teacher{
		TeacherID:    reqData.TeacherID,
		Name:         reqData.Name,
		Age:          reqData.Age,
		Title:        reqData.Title,
		Email:        reqData.Email,
		PasswordHash: string(hashedPassword),
	}

	if err := db.Create(&teacher).Error; err != nil {
		log.Printf("Error saving teacher to database: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to register teacher!")
	}

	return middleware.Message(c, fiber.StatusCreated, "Teacher registered successfully.")
}

func loginResponse(c *fiber.Ctx, id, name, role string) error {
	token, err := middleware.GenerateJWT(id, name, role)
	if err != nil {
		log.Printf("Error generating JWT for %s %s: %v", role, id, err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to complete login!")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user": fiber.Map{
			"id":   id,
			"name": name,
			"role": role,
		},
	})
}

func LoginStudent(c *fiber.Ctx) error {
	id, _ := c.Locals("loginId").(string)
	password, _ := c.Locals("loginPassword").(string)

	var student models.Student
	if err := database.Database.Db.Where("student_id = ?", id).First(&student).Error; err != nil {
		return middleware.Message(c, fiber.StatusUnauthorized, "Incorrect student ID or password!")
	}

	if bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(password)) != nil {
		return middleware.Message(c, fiber.StatusUnauthorized, "Incorrect student ID or password!")
	}

	return loginResponse(c, student.StudentID, student.Name, models.RoleStudent)
}

func LoginTeacher(c *fiber.Ctx) error {
	id, _ := c.Locals("loginId").(string)
	password, _ := c.Locals("loginPassword").(string)

	var teacher models.Teacher
	if err := database.Database.Db.Where("teacher_id = ?", id).First(&teacher).Error; err != nil {
		return middleware.Message(c, fiber.StatusUnauthorized, "Incorrect teacher ID or password!")
	}

	if bcrypt.CompareHashAndPassword([]byte(teacher.PasswordHash), []byte(password)) != nil {
		return middleware.Message(c, fiber.StatusUnauthorized, "Incorrect teacher ID or password!")
	}

	return loginResponse(c, teacher.TeacherID, teacher.Name, models.RoleTeacher)
}

func LoginAdmin(c *fiber.Ctx) error {
	id, _ := c.Locals("loginId").(string)
	password, _ := c.Locals("loginPassword").(string)

	var admin models.Administrator
	if err := database.Database.Db.Where("admin_id = ?", id).First(&admin).Error; err != nil {
		return middleware.Message(c, fiber.StatusUnauthorized, "Incorrect admin ID or password!")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return middleware.Message(c, fiber.StatusUnauthorized, "Incorrect admin ID or password!")
	}

	return loginResponse(c, admin.AdminID, admin.Name, models.RoleAdmin)
}
