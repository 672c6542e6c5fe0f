// file: controllers/test_helpers.go
package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"gym-admin/services"
)

// setupTestRouter wires the full API over a throwaway storage directory.
func setupTestRouter(t *testing.T) (*gin.Engine, *services.FileStorageService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterValidations()

	storage, err := services.NewFileStorageService(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, storage.SeedDefaults())

	memberService := services.NewMemberService(storage)
	attendanceService := services.NewAttendanceService(storage)
	statsService := services.NewStatisticsService(storage)
	exportService := services.NewExportService(storage)

	memberController := NewMemberController(memberService)
	attendanceController := NewAttendanceController(attendanceService)
	paymentController := NewPaymentController(memberService)
	reportController := NewReportController(statsService, exportService)

	router := gin.New()
	api := router.Group("/api")
	{
		api.GET("/members", memberController.GetAll)
		api.GET("/members/:id", memberController.GetOne)
		api.POST("/members", memberController.Create)
		api.PUT("/members/:id", memberController.Update)
		api.DELETE("/members/:id", memberController.Delete)
		api.POST("/members/:id/photo", memberController.UploadPhoto)
		api.GET("/members/:id/qrcode", memberController.QRCode)

		api.GET("/plans", memberController.GetPlans)

		api.GET("/attendance/date/:date", attendanceController.ForDate)
		api.POST("/attendance/date/:date", attendanceController.Save)
		api.GET("/attendance/member/:id", attendanceController.MemberHistory)
		api.GET("/attendance/daily/:date", attendanceController.DailySummary)
		api.GET("/attendance/recent/:days", attendanceController.Recent)

		api.POST("/payments/update/:id", paymentController.UpdateStatus)
		api.GET("/payments/overdue", paymentController.Overdue)
		api.GET("/payments/pending", paymentController.Pending)
		api.GET("/payments/revenue/:month", paymentController.Revenue)

		api.GET("/reports/dashboard", reportController.Dashboard)
		api.GET("/reports/monthly/:year/:month", reportController.Monthly)
		api.GET("/reports/attendance/:year/:month", reportController.Attendance)
		api.GET("/reports/export/members", reportController.ExportMembers)
	}
	return router, storage
}

// performJSON issues a request with an optional JSON body and returns the
// recorder.
func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response body into out.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// multipartUpload builds a multipart body with one file field.
func multipartUpload(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}
