package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/exambank/backend/internal/app/controllers"
	"github.com/exambank/backend/internal/middleware"
	"github.com/exambank/backend/internal/pkg/auth"
)

// Controllers bundles every controller the router needs
type Controllers struct {
	Auth       *controllers.AuthController
	Course     *controllers.CourseController
	QA         *controllers.QAController
	Feedback   *controllers.FeedbackController
	Account    *controllers.AccountController
	Department *controllers.DepartmentController
	Category   *controllers.CategoryController
}

// SetupRoutes registers every endpoint on the engine. Several paths keep
// legacy spellings (add-cours, answer-quation) because the deployed portals
// already call them.
func SetupRoutes(router *gin.Engine, ctrl Controllers, authMw *middleware.AuthMiddleware) {
	// Reference data needed before login
	router.GET("/departments", ctrl.Department.GetDepartments)
	router.GET("/categories", ctrl.Category.GetCategories)

	student := router.Group("/student")
	{
		student.POST("/student-sign-up", ctrl.Auth.StudentSignUp)
		student.POST("/login", ctrl.Auth.Login(auth.RoleStudent))

		protected := student.Group("")
		protected.Use(authMw.Require(auth.RoleStudent))
		{
			protected.GET("/get-all-course", ctrl.Course.BrowseCourses)
			protected.GET("/course/:id", ctrl.Course.GetCourse)
			protected.GET("/get-QA/:course_id", ctrl.QA.GetCourseQA)
			protected.POST("/ask-question", ctrl.QA.AskQuestion)
			protected.POST("/rate-course", ctrl.Feedback.RateCourse)
			protected.GET("/rating/:course_id", ctrl.Feedback.GetRating)
			protected.POST("/add-comment", ctrl.Feedback.AddComment)
			protected.GET("/comments/:course_id", ctrl.Feedback.GetComments)
			protected.GET("/profile", ctrl.Account.GetProfile(auth.RoleStudent))
			protected.PUT("/profile", ctrl.Account.UpdateProfile(auth.RoleStudent))
		}
	}

	teacher := router.Group("/teacher")
	{
		teacher.POST("/login", ctrl.Auth.Login(auth.RoleTeacher))

		protected := teacher.Group("")
		protected.Use(authMw.Require(auth.RoleTeacher))
		{
			protected.GET("/get-all-course", ctrl.Course.GetTeacherCourses)
			protected.POST("/add-cours", ctrl.Course.AddCourse)
			protected.GET("/course/:id", ctrl.Course.GetCourse)
			protected.PUT("/course/:id", ctrl.Course.UpdateCourse)
			protected.DELETE("/course/:id", ctrl.Course.DeleteCourse)
			protected.GET("/get-QA/:course_id", ctrl.QA.GetCourseQA)
			protected.POST("/answer-quation", ctrl.QA.AnswerQuestion)
			protected.GET("/profile", ctrl.Account.GetProfile(auth.RoleTeacher))
			protected.PUT("/profile", ctrl.Account.UpdateProfile(auth.RoleTeacher))
		}
	}

	admin := router.Group("/admin")
	{
		admin.POST("/login", ctrl.Auth.Login(auth.RoleAdmin))

		protected := admin.Group("")
		protected.Use(authMw.Require(auth.RoleAdmin))
		{
			protected.GET("/get-account", ctrl.Account.GetAccounts)
			protected.POST("/add-account", ctrl.Account.AddAccount)
			protected.DELETE("/delete-student/:id", ctrl.Account.DeleteStudent)
			protected.DELETE("/delete-teacher/:id", ctrl.Account.DeleteTeacher)
			protected.GET("/profile", ctrl.Account.GetProfile(auth.RoleAdmin))

			protected.GET("/department", ctrl.Department.GetDepartments)
			protected.POST("/department", ctrl.Department.CreateDepartment)
			protected.PUT("/department/:id", ctrl.Department.UpdateDepartment)
			protected.DELETE("/department/:id", ctrl.Department.DeleteDepartment)

			protected.GET("/category", ctrl.Category.GetCategories)
			protected.POST("/category", ctrl.Category.CreateCategory)
			protected.PUT("/category/:id", ctrl.Category.UpdateCategory)
			protected.DELETE("/category/:id", ctrl.Category.DeleteCategory)
		}
	}
}
