// file: controllers/member_controller_test.go
package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gym-admin/models"
)

func memberPayload(email string) map[string]interface{} {
	return map[string]interface{}{
		"name":    "Test Member",
		"age":     30,
		"contact": "+61400000000",
		"email":   email,
		"plan":    "Basic (3 Months)",
		"fees":    4500,
	}
}

func createTestMember(t *testing.T, router *gin.Engine, email string) models.Member {
	t.Helper()
	w := performJSON(router, "POST", "/api/members", memberPayload(email))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var member models.Member
	decodeBody(t, w, &member)
	return member
}

func TestCreateMemberEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	member := createTestMember(t, router, "a@x.com")
	assert.Equal(t, "M001", member.ID)
	assert.Equal(t, models.PaymentPaid, member.PaymentStatus)
	assert.Equal(t, member.JoinDate, member.LastPayment)
}

func TestCreateMemberEndpoint_DuplicateEmail(t *testing.T) {
	router, _ := setupTestRouter(t)
	createTestMember(t, router, "a@x.com")

	w := performJSON(router, "POST", "/api/members", memberPayload("A@X.com"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already exists")
}

func TestCreateMemberEndpoint_Validation(t *testing.T) {
	router, _ := setupTestRouter(t)

	payload := memberPayload("a@x.com")
	payload["age"] = 17
	w := performJSON(router, "POST", "/api/members", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code, "age below 18 must be rejected")

	payload = memberPayload("not-an-email")
	w = performJSON(router, "POST", "/api/members", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMemberEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	created := createTestMember(t, router, "a@x.com")

	w := performJSON(router, "GET", "/api/members/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var member models.Member
	decodeBody(t, w, &member)
	assert.Equal(t, created, member)

	w = performJSON(router, "GET", "/api/members/M999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListMembersEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	createTestMember(t, router, "a@x.com")
	createTestMember(t, router, "b@x.com")

	w := performJSON(router, "GET", "/api/members", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var members []models.Member
	decodeBody(t, w, &members)
	assert.Len(t, members, 2)
}

func TestUpdateMemberEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	created := createTestMember(t, router, "a@x.com")

	w := performJSON(router, "PUT", "/api/members/"+created.ID, map[string]interface{}{
		"name": "Renamed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var member models.Member
	decodeBody(t, w, &member)
	assert.Equal(t, "Renamed", member.Name)
	assert.Equal(t, created.Email, member.Email, "unsupplied fields untouched")

	w = performJSON(router, "PUT", "/api/members/M999", map[string]interface{}{"name": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMemberEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	created := createTestMember(t, router, "a@x.com")

	w := performJSON(router, "DELETE", "/api/members/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, "GET", "/api/members/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(router, "DELETE", "/api/members/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadPhotoEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	created := createTestMember(t, router, "a@x.com")

	body, contentType := multipartUpload(t, "file", "face.png", "image/png", []byte{0x89, 'P', 'N', 'G'})
	req, _ := http.NewRequest("POST", "/api/members/"+created.ID+"/photo", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp map[string]string
	decodeBody(t, w, &resp)
	assert.Regexp(t, `^/uploads/photos/M001_[0-9a-f]{8}\.png$`, resp["photo_url"])
}

func TestUploadPhotoEndpoint_RejectsNonImage(t *testing.T) {
	router, _ := setupTestRouter(t)
	created := createTestMember(t, router, "a@x.com")

	body, contentType := multipartUpload(t, "file", "notes.txt", "text/plain", []byte("hello"))
	req, _ := http.NewRequest("POST", "/api/members/"+created.ID+"/photo", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must be an image")
}

func TestMemberQRCodeEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	created := createTestMember(t, router, "a@x.com")

	w := performJSON(router, "GET", "/api/members/"+created.ID+"/qrcode", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())

	w = performJSON(router, "GET", "/api/members/M999/qrcode", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPlansEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performJSON(router, "GET", "/api/plans", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var plans []models.Plan
	decodeBody(t, w, &plans)
	assert.Equal(t, models.DefaultPlans, plans)
}
