package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"docuprint/internal/repository"
	"docuprint/internal/seed"
	"docuprint/internal/service"
	"docuprint/internal/session"
	"docuprint/internal/store"
)

// apiEnv spins up the full router on in-memory storage, the same way
// the binary wires it minus postgres/redis.
type apiEnv struct {
	server *httptest.Server
	client *http.Client
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()

	log := zap.NewNop()
	directory := repository.NewMemoryDirectoryRepo(seed.Directory())
	admins := repository.NewMemoryAdminsRepo(seed.Admins())
	signups := repository.NewMemorySignupsRepo()
	residents := repository.NewMemoryResidentsRepo()
	printJobs := repository.NewMemoryPrintJobsRepo()
	notifications := repository.NewMemoryNotificationsRepo()

	sessions := NewSessions(session.NewManager("test-secret", time.Hour))
	signupSvc := service.NewSignupService(signups, residents, admins, notifications, directory, log)
	otpSvc := service.NewOtpService(store.NewMemoryKV(), residents, nil, 5*time.Minute, log)
	printJobSvc := service.NewPrintJobService(printJobs, residents, admins, log)
	notificationSvc := service.NewNotificationService(notifications, log)

	router := NewRouter(Handlers{
		Auth:          NewAuthHandler(otpSvc, residents, admins, sessions, log),
		Signups:       NewSignupHandler(signupSvc, sessions, log),
		PrintJobs:     NewPrintJobHandler(printJobSvc, sessions, log),
		Notifications: NewNotificationHandler(notificationSvc, sessions, log),
		Directory:     NewDirectoryHandler(directory),
		Me:            NewMeHandler(printJobSvc, residents, sessions),
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &apiEnv{
		server: server,
		client: &http.Client{Jar: jar},
	}
}

func (e *apiEnv) do(t *testing.T, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.client.Do(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var decoded map[string]any
	if len(raw) > 0 && resp.Header.Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp, decoded
}

func (e *apiEnv) adminLogin(t *testing.T, email string) {
	t.Helper()
	resp, body := e.do(t, http.MethodPost, "/api/admin/login", map[string]string{
		"email":    email,
		"password": "print@123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "admin login: %v", body)
}

func validSignupBody() map[string]any {
	return map[string]any{
		"fullName":    "A Kumar",
		"mobile":      "9876543210",
		"stateId":     "st-ka",
		"cityId":      "ct-blr",
		"communityId": "cm-lakeview",
		"blockId":     "bl-lakeview-a",
		"flatNumber":  "A-101",
	}
}

func validJobBody() map[string]any {
	return map[string]any{
		"title":     "Lease agreement",
		"pages":     12,
		"copies":    2,
		"colorMode": "mono",
		"paperSize": "A4",
		"fileName":  "lease.pdf",
		"fileSize":  240000,
	}
}

// Walks the whole resident journey: signup, admin approval, OTP login,
// job submission, admin status update.
func TestSignupApprovalAndOtpLoginFlow(t *testing.T) {
	env := newAPIEnv(t)

	resp, body := env.do(t, http.MethodGet, "/api/communities", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body["data"])

	resp, body = env.do(t, http.MethodPost, "/api/resident-signup", validSignupBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Signup submitted for approval", body["message"])
	signup := body["data"].(map[string]any)
	signupID := signup["id"].(string)
	assert.Equal(t, "pending_approval", signup["status"])

	// OTP before approval: the mobile has no resident profile yet.
	resp, _ = env.do(t, http.MethodPost, "/api/auth/request-otp", map[string]string{"mobile": "9876543210"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	env.adminLogin(t, "anita@docuprint.local")

	resp, body = env.do(t, http.MethodGet, "/api/admin/signups", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body["data"], 1)

	resp, body = env.do(t, http.MethodPost, "/api/admin/signups/"+signupID+"/approve", map[string]string{"notes": "ID verified"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decision := body["data"].(map[string]any)
	assert.Equal(t, "approved", decision["signup"].(map[string]any)["status"])
	require.NotNil(t, decision["resident"])

	// Second decision on the same signup conflicts.
	resp, _ = env.do(t, http.MethodPost, "/api/admin/signups/"+signupID+"/reject", map[string]string{"notes": "changed my mind"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = env.do(t, http.MethodPost, "/api/auth/request-otp", map[string]string{"mobile": "9876543210"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body["message"], "demo")
	code := body["data"].(map[string]any)["code"].(string)
	require.Len(t, code, 6)

	resp, body = env.do(t, http.MethodPost, "/api/auth/verify-otp", map[string]string{"mobile": "9876543210", "code": code})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	residentID := body["data"].(map[string]any)["residentId"].(string)
	require.NotEmpty(t, residentID)

	// Codes are single use.
	resp, _ = env.do(t, http.MethodPost, "/api/auth/verify-otp", map[string]string{"mobile": "9876543210", "code": code})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = env.do(t, http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "resident", body["type"])

	resp, body = env.do(t, http.MethodGet, "/api/resident/profile", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, residentID, body["data"].(map[string]any)["id"])

	resp, body = env.do(t, http.MethodPost, "/api/print-jobs", validJobBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	job := body["data"].(map[string]any)
	jobID := job["id"].(string)
	assert.Equal(t, "queued", job["status"])

	resp, body = env.do(t, http.MethodGet, "/api/print-jobs", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body["data"], 1)

	// Admin sees the job and can move it along.
	resp, body = env.do(t, http.MethodGet, "/api/admin/print-jobs", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body["data"], 1)

	resp, body = env.do(t, http.MethodPost, "/api/admin/print-jobs/"+jobID+"/status", map[string]string{"status": "printing"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "printing", body["data"].(map[string]any)["status"])

	resp, body = env.do(t, http.MethodGet, "/api/print-jobs", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	jobs := body["data"].([]any)
	assert.Equal(t, "printing", jobs[0].(map[string]any)["status"])
}

func TestSignupValidationAndDuplicate(t *testing.T) {
	env := newAPIEnv(t)

	bad := validSignupBody()
	bad["mobile"] = "12345"
	resp, body := env.do(t, http.MethodPost, "/api/resident-signup", bad)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["error"])

	resp, _ = env.do(t, http.MethodPost, "/api/resident-signup", validSignupBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// A second signup for the same mobile fails validation, same as
	// any other bad submission.
	resp, body = env.do(t, http.MethodPost, "/api/resident-signup", validSignupBody())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["error"])
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	env := newAPIEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/admin/login", map[string]string{
		"email":    "anita@docuprint.local",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", body["error"])

	resp, _ = env.do(t, http.MethodPost, "/api/admin/login", map[string]string{
		"email":    "nobody@docuprint.local",
		"password": "print@123",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestVerifyOtpRequiresBothFields(t *testing.T) {
	env := newAPIEnv(t)

	for _, payload := range []map[string]string{
		{},
		{"mobile": "9876543210"},
		{"code": "123456"},
	} {
		resp, body := env.do(t, http.MethodPost, "/api/auth/verify-otp", payload)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Mobile and OTP are required", body["error"])
	}

	resp, _ := env.do(t, http.MethodPost, "/api/auth/verify-otp", map[string]string{
		"mobile": "9999999999", "code": "123456",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Every protected endpoint answers a bare 401 to anonymous callers.
func TestProtectedEndpointsRejectAnonymous(t *testing.T) {
	env := newAPIEnv(t)

	endpoints := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/print-jobs"},
		{http.MethodPost, "/api/print-jobs"},
		{http.MethodGet, "/api/resident/profile"},
		{http.MethodGet, "/api/admin/signups"},
		{http.MethodPost, "/api/admin/signups/sg-1/approve"},
		{http.MethodPost, "/api/admin/signups/sg-1/reject"},
		{http.MethodGet, "/api/admin/print-jobs"},
		{http.MethodGet, "/api/admin/print-jobs/export"},
		{http.MethodPost, "/api/admin/print-jobs/pj-1/status"},
		{http.MethodGet, "/api/admin/notifications"},
		{http.MethodPost, "/api/admin/notifications"},
	}
	for _, ep := range endpoints {
		resp, body := env.do(t, ep.method, ep.path, map[string]string{})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", ep.method, ep.path)
		assert.Equal(t, "Unauthorized", body["error"], "%s %s", ep.method, ep.path)
	}
}

// A resident cookie never opens admin endpoints and vice versa.
func TestSessionRoleIsolation(t *testing.T) {
	env := newAPIEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/resident-signup", validSignupBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	signupID := body["data"].(map[string]any)["id"].(string)

	env.adminLogin(t, "anita@docuprint.local")
	resp, _ = env.do(t, http.MethodPost, "/api/admin/signups/"+signupID+"/approve", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Drop the admin cookie, keep none; log in only as resident.
	resp, _ = env.do(t, http.MethodPost, "/api/admin/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = env.do(t, http.MethodPost, "/api/auth/request-otp", map[string]string{"mobile": "9876543210"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	code := body["data"].(map[string]any)["code"].(string)
	resp, _ = env.do(t, http.MethodPost, "/api/auth/verify-otp", map[string]string{"mobile": "9876543210", "code": code})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = env.do(t, http.MethodGet, "/api/admin/signups", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", body["error"])

	resp, _ = env.do(t, http.MethodGet, "/api/print-jobs", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestResidentLogoutEndsSession(t *testing.T) {
	env := newAPIEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/resident-signup", validSignupBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	signupID := body["data"].(map[string]any)["id"].(string)

	env.adminLogin(t, "ravi@docuprint.local")
	resp, _ = env.do(t, http.MethodPost, "/api/admin/signups/"+signupID+"/approve", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Drop the admin cookie so only the resident session is left; the
	// identity probe checks resident first, then admin.
	resp, _ = env.do(t, http.MethodPost, "/api/admin/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = env.do(t, http.MethodPost, "/api/auth/request-otp", map[string]string{"mobile": "9876543210"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	code := body["data"].(map[string]any)["code"].(string)
	resp, _ = env.do(t, http.MethodPost, "/api/auth/verify-otp", map[string]string{"mobile": "9876543210", "code": code})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = env.do(t, http.MethodGet, "/api/resident/profile", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = env.do(t, http.MethodDelete, "/api/auth/verify-otp", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = env.do(t, http.MethodGet, "/api/resident/profile", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = env.do(t, http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "anonymous", body["type"])
	assert.Nil(t, body["data"])
}

func TestSignupNotificationsForAdmin(t *testing.T) {
	env := newAPIEnv(t)

	resp, _ := env.do(t, http.MethodPost, "/api/resident-signup", validSignupBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	env.adminLogin(t, "anita@docuprint.local")

	resp, body := env.do(t, http.MethodGet, "/api/admin/notifications", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ns := body["data"].([]any)
	require.Len(t, ns, 1)
	n := ns[0].(map[string]any)
	assert.Contains(t, n["message"], "A Kumar")
	assert.Equal(t, false, n["isRead"])

	resp, body = env.do(t, http.MethodPost, "/api/admin/notifications", map[string]string{
		"notificationId": n["id"].(string),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["data"].(map[string]any)["isRead"])

	resp, body = env.do(t, http.MethodPost, "/api/admin/notifications", map[string]string{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing notificationId", body["error"])
}

// Admin scoping: meera manages different communities and must not see
// lakeview traffic.
func TestAdminScopingAcrossCommunities(t *testing.T) {
	env := newAPIEnv(t)

	resp, _ := env.do(t, http.MethodPost, "/api/resident-signup", validSignupBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	env.adminLogin(t, "meera@docuprint.local")

	resp, body := env.do(t, http.MethodGet, "/api/admin/signups", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["data"])

	resp, body = env.do(t, http.MethodGet, "/api/admin/notifications", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["data"])
}

func TestPrintJobValidation(t *testing.T) {
	env := newAPIEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/resident-signup", validSignupBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	signupID := body["data"].(map[string]any)["id"].(string)
	env.adminLogin(t, "anita@docuprint.local")
	resp, _ = env.do(t, http.MethodPost, "/api/admin/signups/"+signupID+"/approve", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = env.do(t, http.MethodPost, "/api/auth/request-otp", map[string]string{"mobile": "9876543210"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	code := body["data"].(map[string]any)["code"].(string)
	resp, _ = env.do(t, http.MethodPost, "/api/auth/verify-otp", map[string]string{"mobile": "9876543210", "code": code})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cases := []struct {
		name  string
		patch func(map[string]any)
	}{
		{"zero pages", func(b map[string]any) { b["pages"] = 0 }},
		{"bad color mode", func(b map[string]any) { b["colorMode"] = "sepia" }},
		{"bad paper size", func(b map[string]any) { b["paperSize"] = "A5" }},
		{"oversize file", func(b map[string]any) { b["fileSize"] = 21 * 1024 * 1024 }},
		{"missing title", func(b map[string]any) { delete(b, "title") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validJobBody()
			tc.patch(payload)
			resp, body := env.do(t, http.MethodPost, "/api/print-jobs", payload)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.NotEmpty(t, body["error"])
		})
	}

	// Unknown status values are rejected on the admin side too.
	resp, body = env.do(t, http.MethodPost, "/api/print-jobs", validJobBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	jobID := body["data"].(map[string]any)["id"].(string)

	resp, _ = env.do(t, http.MethodPost, "/api/admin/print-jobs/"+jobID+"/status", map[string]string{"status": "shredded"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, body = env.do(t, http.MethodPost, "/api/admin/print-jobs/"+jobID+"/status", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing status", body["error"])
	resp, _ = env.do(t, http.MethodPost, "/api/admin/print-jobs/pj-missing/status", map[string]string{"status": "ready"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPrintJobExportWorkbook(t *testing.T) {
	env := newAPIEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/resident-signup", validSignupBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	signupID := body["data"].(map[string]any)["id"].(string)
	env.adminLogin(t, "anita@docuprint.local")
	resp, _ = env.do(t, http.MethodPost, "/api/admin/signups/"+signupID+"/approve", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = env.do(t, http.MethodPost, "/api/auth/request-otp", map[string]string{"mobile": "9876543210"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	code := body["data"].(map[string]any)["code"].(string)
	resp, _ = env.do(t, http.MethodPost, "/api/auth/verify-otp", map[string]string{"mobile": "9876543210", "code": code})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = env.do(t, http.MethodPost, "/api/print-jobs", validJobBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	jobID := body["data"].(map[string]any)["id"].(string)

	req, err := http.NewRequest(http.MethodGet, env.server.URL+"/api/admin/print-jobs/export", nil)
	require.NoError(t, err)
	rawResp, err := env.client.Do(req)
	require.NoError(t, err)
	defer rawResp.Body.Close()

	require.Equal(t, http.StatusOK, rawResp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rawResp.Header.Get("Content-Type"))
	assert.Contains(t, rawResp.Header.Get("Content-Disposition"), "attachment")

	data, err := io.ReadAll(rawResp.Body)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Print Jobs")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, printJobExportHeader, rows[0])
	assert.Equal(t, jobID, rows[1][0])
	assert.Equal(t, "Lease agreement", rows[1][2])
}

func TestHealthz(t *testing.T) {
	env := newAPIEnv(t)

	resp, err := env.client.Get(env.server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(raw))
}
