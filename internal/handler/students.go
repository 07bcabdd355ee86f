package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/ledger"
	"github.com/osse101/ClassPoint_Go/internal/logger"
	"github.com/osse101/ClassPoint_Go/internal/stats"
)

// AddStudentRequest is the body for adding one student
type AddStudentRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=100"`
	OrderNumber int    `json:"order_number" validate:"min=0"`
}

// ImportRowRequest is one roster line of a bulk import
type ImportRowRequest struct {
	Name        string  `json:"name" validate:"max=100"`
	OrderNumber int     `json:"order_number" validate:"min=0"`
	ClassName   *string `json:"class_name,omitempty" validate:"omitempty,max=100"`
}

// ImportStudentsRequest is the body of a bulk import. Rows without a class
// name go to DefaultClassID.
type ImportStudentsRequest struct {
	DefaultClassID string             `json:"default_class_id" validate:"omitempty,uuid"`
	Rows           []ImportRowRequest `json:"rows" validate:"required,min=1,max=1000,dive"`
}

// ImportPartialResponse is returned with 207 when some groups failed
type ImportPartialResponse struct {
	Error  string               `json:"error"`
	Result *domain.ImportResult `json:"result"`
}

// HandleListStudents lists a class roster
// @Summary List students of a class
// @Tags students
// @Produce json
// @Param classID path string true "Class ID"
// @Param sort query string false "points (default), name or order"
// @Success 200 {array} domain.Student
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/classes/{classID}/students [get]
func HandleListStudents(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classID, ok := GetPathParam(r, w, ParamClassID)
		if !ok {
			return
		}
		sort := domain.StudentSort(GetOptionalQueryParam(r, QueryParamSort, ""))

		students, err := svc.ListStudents(r.Context(), classID, sort)
		if err != nil {
			respondServiceError(w, r, OpListStudents, err)
			return
		}
		respondJSON(w, http.StatusOK, students)
	}
}

// HandleAddStudent adds a student with a zero balance
// @Summary Add student
// @Tags students
// @Accept json
// @Produce json
// @Param classID path string true "Class ID"
// @Param request body AddStudentRequest true "Student"
// @Success 201 {object} domain.Student
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/classes/{classID}/students [post]
func HandleAddStudent(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classID, ok := GetPathParam(r, w, ParamClassID)
		if !ok {
			return
		}
		var req AddStudentRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add student"); err != nil {
			return
		}

		student, err := svc.AddStudent(r.Context(), classID, req.Name, req.OrderNumber)
		if err != nil {
			respondServiceError(w, r, OpAddStudent, err)
			return
		}

		logger.FromContext(r.Context()).Info("Student added", "student_id", student.ID, "class_id", classID)
		respondJSON(w, http.StatusCreated, student)
	}
}

// HandleGetStudent returns one student
// @Summary Get student
// @Tags students
// @Produce json
// @Param studentID path string true "Student ID"
// @Success 200 {object} domain.Student
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/students/{studentID} [get]
func HandleGetStudent(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, ok := GetPathParam(r, w, ParamStudentID)
		if !ok {
			return
		}
		student, err := svc.GetStudent(r.Context(), studentID)
		if err != nil {
			respondServiceError(w, r, OpGetStudent, err)
			return
		}
		respondJSON(w, http.StatusOK, student)
	}
}

// HandleDeleteStudent deletes a student with their history and redemptions
// @Summary Delete student
// @Tags students
// @Produce json
// @Param studentID path string true "Student ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/students/{studentID} [delete]
func HandleDeleteStudent(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, ok := GetPathParam(r, w, ParamStudentID)
		if !ok {
			return
		}
		if err := svc.DeleteStudent(r.Context(), studentID); err != nil {
			respondServiceError(w, r, OpDeleteStudent, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgStudentDeleted})
	}
}

// HandleStudentHistory returns the most recent point changes first
// @Summary Student point history
// @Tags students
// @Produce json
// @Param studentID path string true "Student ID"
// @Param limit query int false "Maximum entries (default 50)"
// @Success 200 {array} domain.PointHistoryEntry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/students/{studentID}/history [get]
func HandleStudentHistory(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, ok := GetPathParam(r, w, ParamStudentID)
		if !ok {
			return
		}
		limit, ok := GetLimitParam(r, w, domain.StudentHistoryLimit)
		if !ok {
			return
		}

		history, err := svc.StudentHistory(r.Context(), studentID, limit)
		if err != nil {
			respondServiceError(w, r, OpStudentHistory, err)
			return
		}
		respondJSON(w, http.StatusOK, history)
	}
}

// HandleStudentRedemptions lists a student's redemptions
// @Summary Student redemptions
// @Tags students
// @Produce json
// @Param studentID path string true "Student ID"
// @Success 200 {array} domain.RewardRedemption
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/students/{studentID}/redemptions [get]
func HandleStudentRedemptions(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, ok := GetPathParam(r, w, ParamStudentID)
		if !ok {
			return
		}
		redemptions, err := svc.StudentRedemptions(r.Context(), studentID)
		if err != nil {
			respondServiceError(w, r, OpStudentRedemptions, err)
			return
		}
		respondJSON(w, http.StatusOK, redemptions)
	}
}

// HandleStudentSummary returns the student's progress and ledger totals
// @Summary Student summary
// @Tags students
// @Produce json
// @Param studentID path string true "Student ID"
// @Success 200 {object} domain.StudentSummary
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/students/{studentID}/summary [get]
func HandleStudentSummary(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, ok := GetPathParam(r, w, ParamStudentID)
		if !ok {
			return
		}
		summary, err := svc.StudentSummary(r.Context(), studentID)
		if err != nil {
			respondServiceError(w, r, OpStudentSummary, err)
			return
		}
		respondJSON(w, http.StatusOK, summary)
	}
}

// HandleImportStudents bulk-imports a roster grouped by class name
// @Summary Import students
// @Description Each class group commits on its own. 207 means some groups failed; the body lists every group.
// @Tags students
// @Accept json
// @Produce json
// @Param request body ImportStudentsRequest true "Rows"
// @Success 201 {object} domain.ImportResult
// @Success 207 {object} ImportPartialResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/students/import [post]
func HandleImportStudents(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ImportStudentsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Import students"); err != nil {
			return
		}

		rows := make([]domain.ImportRow, len(req.Rows))
		for i, row := range req.Rows {
			rows[i] = domain.ImportRow{Name: row.Name, OrderNumber: row.OrderNumber, ClassName: row.ClassName}
		}

		result, err := svc.ImportStudents(r.Context(), req.DefaultClassID, rows)
		var importErr *domain.ImportError
		switch {
		case err == nil:
			logger.FromContext(r.Context()).Info("Students imported", "imported", result.TotalImported, "groups", len(result.Groups))
			respondJSON(w, http.StatusCreated, result)
		case errors.As(err, &importErr) && result != nil:
			logger.FromContext(r.Context()).Warn("Import partially applied", "error", err)
			respondJSON(w, http.StatusMultiStatus, ImportPartialResponse{Error: ErrMsgImportPartial, Result: result})
		default:
			respondServiceError(w, r, OpImportStudents, err)
		}
	}
}
