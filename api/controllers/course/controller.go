package course_controller

import (
	coursemodel "github.com/sinaridesa/sinari-api/api/model/courseModel"
	usermodel "github.com/sinaridesa/sinari-api/api/model/userModel"
)

// CourseController handles course-related HTTP requests
type CourseController struct {
	courseRepo coursemodel.ICourseRepository
	userRepo   usermodel.IUserRepository
}

// NewCourseController creates a new course controller with injected dependencies
func NewCourseController(courseRepo coursemodel.ICourseRepository, userRepo usermodel.IUserRepository) *CourseController {
	return &CourseController{
		courseRepo: courseRepo,
		userRepo:   userRepo,
	}
}
