package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/edubase/studenthub/internal/app/models/dto"
	"github.com/edubase/studenthub/internal/app/services"
	"github.com/edubase/studenthub/internal/middleware"
	"github.com/edubase/studenthub/internal/pkg/apperrors"
)

// StudentController handles student profile operations
type StudentController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// GetAll lists students with pagination
// @Summary List students
// @Description Returns one page of students with pagination metadata
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(25)
// @Success 200 {object} dto.ListResponse{data=[]models.Student} "Students page"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /students [get]
func (c *StudentController) GetAll(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(services.DefaultPageSize)))

	result, err := c.studentService.GetAllStudents(ctx.Request.Context(), page, limit)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list students")
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewListResponse(result.Count, result.Students)
	resp.Total = result.Total
	resp.Page = result.Page
	resp.Pages = result.Pages
	ctx.JSON(http.StatusOK, resp)
}

// GetByID returns a single student
// @Summary Get student
// @Description Returns a student with its batch and course enrollments
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// GetByBatch lists students of a batch
// @Summary List students by batch
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param batchId path int true "Batch ID"
// @Success 200 {object} dto.ListResponse{data=[]models.Student} "Students in the batch"
// @Failure 404 {object} dto.ErrorResponse "Batch not found"
// @Router /students/batch/{batchId} [get]
func (c *StudentController) GetByBatch(ctx *gin.Context) {
	batchID, ok := pathIDParam(ctx, "batchId")
	if !ok {
		return
	}

	students, err := c.studentService.GetStudentsByBatch(ctx.Request.Context(), batchID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(students), students))
}

// GetByCourse lists students enrolled in a course
// @Summary List students by course
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.ListResponse{data=[]models.Student} "Students in the course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /students/course/{courseId} [get]
func (c *StudentController) GetByCourse(ctx *gin.Context) {
	courseID, ok := pathIDParam(ctx, "courseId")
	if !ok {
		return
	}

	students, err := c.studentService.GetStudentsByCourse(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(students), students))
}

// Update applies a partial profile update
// @Summary Update student
// @Description Updates the provided profile fields; omitted fields are left unchanged
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Updated student"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("student_id", id).Msg("Student update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// Delete removes a student account
// @Summary Delete student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponseWithMessage(nil, "Student deleted"))
}

// UploadImage stores a new profile image
// @Summary Upload profile image
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param image formData file true "Image file (jpg, jpeg, png, webp)"
// @Success 200 {object} dto.APIResponse{data=dto.UploadImageResponse} "Image stored"
// @Failure 400 {object} dto.ErrorResponse "Missing file or unsupported type"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/image [post]
func (c *StudentController) UploadImage(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("image file is required"))
		return
	}

	path, err := c.studentService.UploadImage(ctx.Request.Context(), id, fileHeader)
	if err != nil {
		c.logger.Warn().Err(err).Int64("student_id", id).Msg("Image upload failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.UploadImageResponse{Filename: path}))
}

// pathID parses the ":id" path parameter
func pathID(ctx *gin.Context) (int64, bool) {
	return pathIDParam(ctx, "id")
}

// pathIDParam parses a positive integer path parameter and writes a 400
// response when it is malformed.
func pathIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}
